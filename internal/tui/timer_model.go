package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/prodo/internal/models"
)

// Phase is the part of the Pomodoro cycle the timer is in
type Phase int

const (
	PhaseFocus Phase = iota
	PhaseBreak
)

func (p Phase) String() string {
	if p == PhaseBreak {
		return "BREAK"
	}
	return "FOCUS"
}

// FocusSession is a focus interval that ran to completion
type FocusSession struct {
	Minutes    int
	FinishedAt time.Time
}

// TimerOptions configures a Pomodoro timer
type TimerOptions struct {
	Focus time.Duration
	Break time.Duration

	// Task is shown next to the clock when set
	Task *models.Task
}

// TimerModel is the Pomodoro countdown. Finished focus intervals are
// collected in Completed and recorded by the caller after the program exits.
type TimerModel struct {
	width  int
	height int

	opts      TimerOptions
	phase     Phase
	remaining time.Duration
	paused    bool

	// Time of the last tick that counted down
	lastUpdate time.Time

	progress       progress.Model
	timerAnimation int

	Completed []FocusSession
	quitting  bool
}

// timerTickMsg is sent every second to count down
type timerTickMsg struct {
	at time.Time
}

// animationTickMsg is sent for faster animations
type animationTickMsg struct{}

// NewTimerModel creates a timer starting a focus interval at start
func NewTimerModel(opts TimerOptions, start time.Time) TimerModel {
	if opts.Focus <= 0 {
		opts.Focus = 25 * time.Minute
	}
	if opts.Break <= 0 {
		opts.Break = 5 * time.Minute
	}

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40

	return TimerModel{
		opts:       opts,
		phase:      PhaseFocus,
		remaining:  opts.Focus,
		lastUpdate: start,
		progress:   bar,
	}
}

func timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{at: t}
	})
}

func animationTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return animationTickMsg{}
	})
}

// Init starts the timer and animation tickers
func (m TimerModel) Init() tea.Cmd {
	return tea.Batch(timerTick(), animationTick())
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		m = m.advance(msg.at)
		if m.quitting {
			return m, nil
		}
		return m, timerTick()

	case animationTickMsg:
		m.timerAnimation = (m.timerAnimation + 1) % 4
		if m.quitting {
			return m, nil
		}
		return m, animationTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width/2-10, 10), 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case " ", "p":
			m.paused = !m.paused
			return m, nil
		case "s", "S":
			return m.nextPhase(m.lastUpdate, false), nil
		case "r", "R":
			m.remaining = m.phaseLength()
			return m, nil
		case "ctrl+c", "esc", "q":
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// advance counts down the time passed since the last tick
func (m TimerModel) advance(at time.Time) TimerModel {
	elapsed := at.Sub(m.lastUpdate)
	m.lastUpdate = at
	if m.paused || elapsed <= 0 {
		return m
	}

	m.remaining -= elapsed
	if m.remaining <= 0 {
		m = m.nextPhase(at, true)
	}
	return m
}

// nextPhase switches between focus and break. finished records the
// focus interval; a skipped one is not counted.
func (m TimerModel) nextPhase(at time.Time, finished bool) TimerModel {
	if m.phase == PhaseFocus {
		if finished {
			m.Completed = append(m.Completed, FocusSession{
				Minutes:    int(m.opts.Focus / time.Minute),
				FinishedAt: at,
			})
		}
		m.phase = PhaseBreak
	} else {
		m.phase = PhaseFocus
	}
	m.remaining = m.phaseLength()
	return m
}

func (m TimerModel) phaseLength() time.Duration {
	if m.phase == PhaseBreak {
		return m.opts.Break
	}
	return m.opts.Focus
}

// Phase returns the current phase
func (m TimerModel) Phase() Phase {
	return m.phase
}

// Remaining returns the time left in the current phase
func (m TimerModel) Remaining() time.Duration {
	return m.remaining
}

// Paused reports whether the countdown is paused
func (m TimerModel) Paused() bool {
	return m.paused
}

// percent is the share of the current phase already done
func (m TimerModel) percent() float64 {
	total := m.phaseLength()
	if total <= 0 {
		return 0
	}
	done := float64(total-m.remaining) / float64(total)
	return min(max(done, 0), 1)
}

// View renders the timer TUI
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	if m.width < 90 || m.opts.Task == nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderTimerPanel(m.width, contentHeight),
			helpBar,
		)
	}

	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth - 2

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderTimerPanel(leftWidth, contentHeight),
		"  ",
		m.renderTaskPanel(rightWidth, contentHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, helpBar)
}

// renderTimerPanel renders the clock, phase header and progress bar
func (m TimerModel) renderTimerPanel(width, height int) string {
	var components []string

	animChars := []string{"🍅", "⏲", "🍅", "⏲"}
	if m.phase == PhaseBreak {
		animChars = []string{"☕", "☕", "🌿", "🌿"}
	}
	animChar := animChars[m.timerAnimation]
	headerText := fmt.Sprintf("%s  %s  %s", animChar, m.phase, animChar)
	if m.paused {
		headerText = "⏸  PAUSED  ⏸"
	}

	headerColor := ColorAccentBright
	if m.phase == PhaseBreak {
		headerColor = ColorSuccess
	}
	center := lipgloss.NewStyle().Align(lipgloss.Center).Width(width)

	components = append(components, center.
		Foreground(lipgloss.Color(headerColor)).
		Bold(true).
		Render(headerText))

	var clock []string
	for _, line := range strings.Split(renderBigClock(m.remaining), "\n") {
		clock = append(clock, lipgloss.NewStyle().Align(lipgloss.Center).Width(width).Render(line))
	}
	components = append(components, strings.Join(clock, "\n"))

	components = append(components, lipgloss.NewStyle().Align(lipgloss.Center).Width(width).
		Render(m.progress.ViewAs(m.percent())))

	sessions := fmt.Sprintf("%d pomodoro(s) finished this run", len(m.Completed))
	components = append(components, lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(width).
		Render(sessions))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(components, "\n\n"))
}

// renderTaskPanel shows the task being worked on
func (m TimerModel) renderTaskPanel(width, height int) string {
	task := m.opts.Task
	inner := width - 8

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(QuadrantColor(task.Quadrant))).
		Width(inner-4).
		Padding(0, 1)

	line := lipgloss.NewStyle().Align(lipgloss.Center).Width(inner)
	icon, color := PriorityBadge(task.Priority)

	lines := []string{
		titleStyle.Render(task.Title),
		"",
		line.Render(fmt.Sprintf("🧭 %s", lipgloss.NewStyle().
			Foreground(lipgloss.Color(QuadrantColor(task.Quadrant))).Bold(true).
			Render(task.Quadrant.Title()))),
		line.Render(fmt.Sprintf("%s Priority: %s", icon, lipgloss.NewStyle().
			Foreground(lipgloss.Color(color)).Render(string(task.Priority)))),
		line.Render(fmt.Sprintf("📁 Category: %s", lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentBright)).Render(task.Category))),
		line.Render(fmt.Sprintf("📅 Due: %s", lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).Render(task.DueDate.Format("Jan 02, 2006 15:04")))),
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

var bigDigits = map[rune][5]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// renderBigClock renders mm:ss in ASCII art digits
func renderBigClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	// Round up so the clock reads 00:00 only when the phase ends
	secs := int((d + time.Second - 1) / time.Second)
	timeStr := fmt.Sprintf("%02d:%02d", secs/60, secs%60)

	var lines [5]strings.Builder
	for _, char := range timeStr {
		art, ok := bigDigits[char]
		if !ok {
			continue
		}
		for i := range art {
			lines[i].WriteString(art[i])
			lines[i].WriteString(" ")
		}
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	rendered := make([]string, len(lines))
	for i := range lines {
		rendered[i] = clockStyle.Render(lines[i].String())
	}
	return strings.Join(rendered, "\n")
}

// renderHelpBar renders the help bar at the bottom
func (m TimerModel) renderHelpBar() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render("space pause · s skip phase · r restart phase · q quit")
}
