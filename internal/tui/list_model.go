package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/prodo/internal/models"
	"github.com/balkashynov/prodo/internal/parser"
	"github.com/balkashynov/prodo/internal/store"
)

// TaskBoard is the part of the store the task browser reads and mutates
type TaskBoard interface {
	ActiveTasks() []models.Task
	ArchivedTasks() []models.Task
	Search(query string) store.SearchResults
	ToggleTask(id string) bool
	ArchiveTask(id string) bool
	UnarchiveTask(id string) bool
	UpdateTaskQuadrant(id string, quadrant models.Quadrant) bool
	DeleteTask(id string) bool
}

// Focus represents what UI element has focus
type Focus int

const (
	FocusTable Focus = iota
	FocusSearch
)

// ListModel is the interactive task browser
type ListModel struct {
	width  int
	height int

	board    TaskBoard
	archived bool
	now      func() time.Time

	tasks        []models.Task
	selectedTask int

	focus       Focus
	searchQuery string
	status      string

	currentPage  int
	tasksPerPage int
}

// NewListModel creates a browser over the active tasks, or the archived
// ones when archived is set
func NewListModel(board TaskBoard, archived bool, now func() time.Time) ListModel {
	if now == nil {
		now = time.Now
	}
	m := ListModel{
		board:        board,
		archived:     archived,
		now:          now,
		tasksPerPage: 10,
	}
	return m.reload()
}

// Init initializes the model
func (m ListModel) Init() tea.Cmd {
	return nil
}

// reload refetches the visible tasks and keeps the selection in range
func (m ListModel) reload() ListModel {
	if q := strings.TrimSpace(m.searchQuery); q != "" {
		m.tasks = m.tasks[:0:0]
		for _, t := range m.board.Search(q).Tasks {
			if t.IsArchived == m.archived {
				m.tasks = append(m.tasks, t)
			}
		}
	} else if m.archived {
		m.tasks = m.board.ArchivedTasks()
	} else {
		m.tasks = m.board.ActiveTasks()
	}

	if m.selectedTask >= len(m.tasks) {
		m.selectedTask = max(len(m.tasks)-1, 0)
	}
	if m.tasksPerPage > 0 {
		m.currentPage = m.selectedTask / m.tasksPerPage
	}
	return m
}

// Update handles messages
func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tasksPerPage = max(m.height-12, 3)
		m.currentPage = m.selectedTask / m.tasksPerPage
		return m, nil

	case tea.KeyMsg:
		if m.focus == FocusSearch {
			return m.handleSearchKeys(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if msg.String() == "esc" && m.searchQuery != "" {
				m.searchQuery = ""
				return m.reload(), nil
			}
			return m, tea.Quit
		case "up", "k":
			return m.moveSelectionUp(), nil
		case "down", "j":
			return m.moveSelectionDown(), nil
		case "left", "h":
			return m.prevPage(), nil
		case "right", "l":
			return m.nextPage(), nil
		case "/":
			m.focus = FocusSearch
			return m, nil
		case "d", " ":
			return m.act("toggled", m.board.ToggleTask), nil
		case "a":
			if m.archived {
				return m.act("restored", m.board.UnarchiveTask), nil
			}
			return m.act("archived", m.board.ArchiveTask), nil
		case "x":
			return m.act("deleted", m.board.DeleteTask), nil
		case "m":
			return m.act("moved", m.cycleQuadrant), nil
		}
	}

	return m, nil
}

// act applies fn to the selected task and reloads
func (m ListModel) act(verb string, fn func(id string) bool) ListModel {
	task, ok := m.selected()
	if !ok {
		return m
	}
	if fn(task.ID) {
		m.status = fmt.Sprintf("%s %q", verb, task.Title)
	}
	return m.reload()
}

// cycleQuadrant moves the task to the next matrix quadrant
func (m ListModel) cycleQuadrant(id string) bool {
	task, ok := m.selected()
	if !ok || task.ID != id {
		return false
	}
	next := models.Quadrants[0]
	for i, q := range models.Quadrants {
		if q == task.Quadrant {
			next = models.Quadrants[(i+1)%len(models.Quadrants)]
			break
		}
	}
	return m.board.UpdateTaskQuadrant(id, next)
}

// selected returns the highlighted task
func (m ListModel) selected() (models.Task, bool) {
	if m.selectedTask < 0 || m.selectedTask >= len(m.tasks) {
		return models.Task{}, false
	}
	return m.tasks[m.selectedTask], true
}

// handleSearchKeys handles key input when in search mode
func (m ListModel) handleSearchKeys(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.focus = FocusTable
		m.searchQuery = ""
		return m.reload(), nil
	case tea.KeyEnter:
		m.focus = FocusTable
		return m, nil
	case tea.KeyBackspace:
		if r := []rune(m.searchQuery); len(r) > 0 {
			m.searchQuery = string(r[:len(r)-1])
		}
		return m.reload(), nil
	case tea.KeySpace:
		m.searchQuery += " "
		return m.reload(), nil
	case tea.KeyRunes:
		m.searchQuery += string(msg.Runes)
		m.selectedTask = 0
		return m.reload(), nil
	}
	return m, nil
}

func (m ListModel) moveSelectionUp() ListModel {
	if m.selectedTask > 0 {
		m.selectedTask--
		if m.selectedTask < m.currentPage*m.tasksPerPage && m.currentPage > 0 {
			m.currentPage--
		}
	}
	return m
}

func (m ListModel) moveSelectionDown() ListModel {
	if m.selectedTask < len(m.tasks)-1 {
		m.selectedTask++
		if m.selectedTask >= (m.currentPage+1)*m.tasksPerPage {
			m.currentPage++
		}
	}
	return m
}

func (m ListModel) pageCount() int {
	return (len(m.tasks) + m.tasksPerPage - 1) / m.tasksPerPage
}

func (m ListModel) prevPage() ListModel {
	if m.currentPage > 0 {
		m.currentPage--
		m.selectedTask = m.currentPage * m.tasksPerPage
	}
	return m
}

func (m ListModel) nextPage() ListModel {
	if m.currentPage < m.pageCount()-1 {
		m.currentPage++
		m.selectedTask = m.currentPage * m.tasksPerPage
	}
	return m
}

// View renders the TUI
func (m ListModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	leftWidth := m.width * 60 / 100
	rightWidth := m.width - leftWidth - 1

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderTaskTable(leftWidth),
		" ",
		m.renderTaskDetails(rightWidth),
	)

	bottom := m.renderHelpBar()
	if m.focus == FocusSearch {
		bottom = m.renderSearchBar()
	}

	return lipgloss.JoinVertical(lipgloss.Left, "", content, "", bottom)
}

// renderTaskTable renders the left panel with the task table
func (m ListModel) renderTaskTable(width int) string {
	var b strings.Builder

	header := "📋 Tasks"
	if m.archived {
		header = "🗄  Archived tasks"
	}
	if m.searchQuery != "" {
		header += fmt.Sprintf("  (matching %q)", m.searchQuery)
	}
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright)).Render(header))
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true).
			Render("No tasks found"))
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Width(width).
			Render(b.String())
	}

	const (
		statusWidth   = 8
		quadrantWidth = 10
		dueWidth      = 10
	)
	titleWidth := max(width-4-statusWidth-quadrantWidth-dueWidth-4, 20)

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright)).Padding(0, 1).
		Render(fmt.Sprintf("%-*s %-*s %-*s %-*s",
			titleWidth, "TITLE",
			statusWidth, "STATUS",
			quadrantWidth, "QUADRANT",
			dueWidth, "DUE")))
	b.WriteString("\n\n")

	now := m.now()
	start := m.currentPage * m.tasksPerPage
	end := min(start+m.tasksPerPage, len(m.tasks))

	for i := start; i < end; i++ {
		task := m.tasks[i]

		title := task.Title
		if r := []rune(title); len(r) > titleWidth-1 {
			title = string(r[:titleWidth-4]) + "..."
		}

		statusText, statusColor := "○ todo", ColorSecondaryText
		if task.IsCompleted {
			statusText, statusColor = "✓ done", ColorSuccess
		}

		dueText, dueColor := shortDue(task, now)

		row := fmt.Sprintf("%-*s %s %s %s",
			titleWidth, title,
			lipgloss.NewStyle().Width(statusWidth).Foreground(lipgloss.Color(statusColor)).Render(statusText),
			lipgloss.NewStyle().Width(quadrantWidth).Foreground(lipgloss.Color(QuadrantColor(task.Quadrant))).Render(task.Quadrant.Title()),
			lipgloss.NewStyle().Width(dueWidth).Foreground(lipgloss.Color(dueColor)).Render(dueText))

		if i == m.selectedTask {
			b.WriteString(lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorAccentMain)).
				Bold(true).
				Padding(0, 1).
				Render(row))
		} else {
			b.WriteString(" " + row)
		}
		b.WriteString("\n")
	}

	if m.tasksPerPage < len(m.tasks) {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHelpText)).
			Align(lipgloss.Center).
			Width(width-2).
			MarginTop(1).
			Render(fmt.Sprintf("Page %d/%d (%d tasks)", m.currentPage+1, m.pageCount(), len(m.tasks))))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width).
		Render(b.String())
}

// shortDue formats a due date for the table column
func shortDue(task models.Task, now time.Time) (string, string) {
	if task.IsCompleted {
		return task.DueDate.Format("02/01"), ColorDisabledText
	}
	days := int(task.DueDate.Sub(now).Hours() / 24)
	switch {
	case task.IsOverdue(now):
		return "OVERDUE", ColorError
	case days == 0:
		return "TODAY", ColorWarning
	case days == 1:
		return "TOMORROW", ColorWarning
	case days <= 7:
		return fmt.Sprintf("%dd", days), ColorAccentBright
	default:
		return task.DueDate.Format("02/01"), ColorSecondaryText
	}
}

// renderTaskDetails renders the right panel with task details
func (m ListModel) renderTaskDetails(width int) string {
	var b strings.Builder

	task, ok := m.selected()
	if !ok {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentMain)).
			Bold(true).
			Align(lipgloss.Center).
			Width(width).
			Render("prodo"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true).
			Align(lipgloss.Center).
			Width(width).
			MarginTop(2).
			Render("Select a task to view details"))
	} else {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText)).Width(width).
			Render("📋 " + task.Title))
		b.WriteString("\n\n")

		statusColor, statusText := ColorSecondaryText, "todo"
		if task.IsCompleted {
			statusColor, statusText = ColorSuccess, "done"
		}
		b.WriteString("Status: " + lipgloss.NewStyle().Foreground(lipgloss.Color(statusColor)).Bold(true).Render(statusText) + "\n")

		b.WriteString("Quadrant: " + lipgloss.NewStyle().Foreground(lipgloss.Color(QuadrantColor(task.Quadrant))).
			Render(task.Quadrant.Title()) + "\n")

		icon, color := PriorityBadge(task.Priority)
		b.WriteString("Priority: " + icon + " " + lipgloss.NewStyle().Foreground(lipgloss.Color(color)).
			Render(string(task.Priority)) + "\n")

		b.WriteString("Category: " + lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).
			Render(task.Category) + "\n")

		b.WriteString(parser.FormatDueDate(task.DueDate, m.now(), task.IsCompleted) + "\n")

		if len(task.SharedWith) > 0 {
			b.WriteString(fmt.Sprintf("Shared with %d member(s)\n", len(task.SharedWith)))
		}

		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).
			Render("\nid " + task.ID))
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Italic(true).Render("✓ " + m.status))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width).
		Render(b.String())
}

// renderSearchBar renders the search bar when active
func (m ListModel) renderSearchBar() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorBorder)).
		Padding(0, 1).
		Width(m.width - 2).
		Render("Search: " + m.searchQuery + "█")
}

// renderHelpBar renders the help bar with hotkey hints
func (m ListModel) renderHelpBar() string {
	archive := "a archive"
	if m.archived {
		archive = "a restore"
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render("↑/↓ nav · ←/→ page · / search · d done · " + archive + " · m move · x delete · q quit")
}
