package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/prodo/internal/models"
	"github.com/balkashynov/prodo/internal/parser"
)

// Step represents the current step in the wizard
type Step int

const (
	StepTitle Step = iota
	StepCategory
	StepPriority
	StepQuadrant
	StepDueDate
	StepSave
)

var stepLabels = []string{"Title", "Category", "Priority", "Quadrant", "Due date"}

// TaskForm is the data collected by the wizard. Zero fields were skipped.
type TaskForm struct {
	Title    string
	Category string
	Priority models.Priority
	Quadrant models.Quadrant
	DueDate  time.Time
}

// AddTaskModel is the add/edit task wizard
type AddTaskModel struct {
	currentStep Step
	inputs      []textinput.Model
	width       int
	height      int
	now         time.Time

	form       TaskForm
	isEditMode bool

	validationErr string
	completed     bool
	cancelled     bool
}

// NewAddTaskModel creates the wizard with optional prefilled values
func NewAddTaskModel(prefilled TaskForm, now time.Time) AddTaskModel {
	inputs := make([]textinput.Model, len(stepLabels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 60
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[StepTitle].Placeholder = "Enter task title... (required)"
	inputs[StepTitle].CharLimit = 200
	inputs[StepTitle].Focus()

	inputs[StepCategory].Placeholder = strings.Join(models.Categories, "/") + " (Enter for " + models.DefaultCategory + ")"
	inputs[StepCategory].CharLimit = 50

	inputs[StepPriority].Placeholder = "low/medium/high or 1/2/3 (Enter to skip)"
	inputs[StepPriority].CharLimit = 10

	inputs[StepQuadrant].Placeholder = "do/schedule/delegate/eliminate or 1-4 (Enter to skip)"
	inputs[StepQuadrant].CharLimit = 25

	inputs[StepDueDate].Placeholder = "Due: today, tomorrow, dd/mm/yyyy, 3 days, 24 hours (Enter to skip)"
	inputs[StepDueDate].CharLimit = 50

	m := AddTaskModel{inputs: inputs, now: now, form: prefilled}

	inputs[StepTitle].SetValue(prefilled.Title)
	inputs[StepCategory].SetValue(prefilled.Category)
	inputs[StepPriority].SetValue(string(prefilled.Priority))
	inputs[StepQuadrant].SetValue(string(prefilled.Quadrant))
	if !prefilled.DueDate.IsZero() {
		inputs[StepDueDate].SetValue(prefilled.DueDate.Format("02/01/2006"))
	}

	return m
}

// NewEditTaskModel creates the wizard prefilled from an existing task
func NewEditTaskModel(task models.Task, now time.Time) AddTaskModel {
	m := NewAddTaskModel(TaskForm{
		Title:    task.Title,
		Category: task.Category,
		Priority: task.Priority,
		Quadrant: task.Quadrant,
		DueDate:  task.DueDate,
	}, now)
	m.isEditMode = true
	return m
}

// Init starts the cursor blinking
func (m AddTaskModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AddTaskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		inputWidth := min(max(m.width*2/3-10, 30), 80)
		for i := range m.inputs {
			m.inputs[i].Width = inputWidth
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			return m.handleEnter()
		case "tab", "down":
			if m.currentStep == StepTitle && strings.TrimSpace(m.inputs[StepTitle].Value()) == "" {
				m.validationErr = "Task title is required"
				return m, nil
			}
			return m.nextStep()
		case "shift+tab", "up":
			return m.prevStep()
		}
	}

	var cmd tea.Cmd
	if m.currentStep < StepSave {
		m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)
	}
	return m, cmd
}

// handleEnter validates the current field and moves on
func (m AddTaskModel) handleEnter() (AddTaskModel, tea.Cmd) {
	m.validationErr = ""

	if m.currentStep == StepSave {
		m.completed = true
		return m, tea.Quit
	}

	if err := m.applyField(m.currentStep); err != nil {
		m.validationErr = err.Error()
		return m, nil
	}
	return m.nextStep()
}

// applyField parses the input of step into the form
func (m *AddTaskModel) applyField(step Step) error {
	value := strings.TrimSpace(m.inputs[step].Value())

	switch step {
	case StepTitle:
		if value == "" {
			return fmt.Errorf("Task title is required")
		}
		m.form.Title = value
	case StepCategory:
		m.form.Category = ""
		if value != "" {
			m.form.Category = parser.NormalizeCategory(value)
		}
	case StepPriority:
		m.form.Priority = ""
		if value != "" {
			p, ok := models.ParsePriority(value)
			if !ok {
				return fmt.Errorf("Invalid priority. Use: low, medium, high, 1, 2, or 3")
			}
			m.form.Priority = p
		}
	case StepQuadrant:
		m.form.Quadrant = ""
		if value != "" {
			q, ok := models.ParseQuadrant(value)
			if !ok {
				return fmt.Errorf("Invalid quadrant. Use: do, schedule, delegate, eliminate, or 1-4")
			}
			m.form.Quadrant = q
		}
	case StepDueDate:
		m.form.DueDate = time.Time{}
		if value != "" {
			due, err := parser.ParseDueDate(value, m.now)
			if err != nil {
				return fmt.Errorf("Invalid due date: %w", err)
			}
			m.form.DueDate = due
		}
	}
	return nil
}

func (m AddTaskModel) nextStep() (AddTaskModel, tea.Cmd) {
	if m.currentStep < StepSave {
		if err := m.applyField(m.currentStep); err != nil {
			m.validationErr = err.Error()
			return m, nil
		}
		m.inputs[m.currentStep].Blur()
		m.currentStep++
		if m.currentStep < StepSave {
			m.inputs[m.currentStep].Focus()
		}
	}
	return m, textinput.Blink
}

func (m AddTaskModel) prevStep() (AddTaskModel, tea.Cmd) {
	if m.currentStep > StepTitle {
		if m.currentStep < StepSave {
			m.inputs[m.currentStep].Blur()
		}
		m.currentStep--
		m.inputs[m.currentStep].Focus()
	}
	return m, textinput.Blink
}

// Result returns the collected form and whether the user saved it
func (m AddTaskModel) Result() (TaskForm, bool) {
	return m.form, m.completed && !m.cancelled
}

// View renders the wizard
func (m AddTaskModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	title := "✨ New task"
	if m.isEditMode {
		title = "✏️  Edit task"
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Width(12)
	activeLabel := labelStyle.Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)

	for i, label := range stepLabels {
		step := Step(i)
		style := labelStyle
		marker := "  "
		if step == m.currentStep {
			style = activeLabel
			marker = "▸ "
		}
		b.WriteString(marker + style.Render(label) + m.inputs[i].View() + "\n")
	}

	b.WriteString("\n")
	saveStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 2)
	if m.currentStep == StepSave {
		saveStyle = saveStyle.BorderForeground(lipgloss.Color(ColorAccentMain)).Bold(true)
	}
	b.WriteString(saveStyle.Render("Save"))
	b.WriteString("\n")

	if m.validationErr != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render("⚠ " + m.validationErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Render("enter next/save · tab/↓ next · shift+tab/↑ back · esc cancel"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1, 2).
		Render(b.String())
}
