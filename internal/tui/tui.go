package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RunTaskForm runs the add/edit wizard and returns the form when saved
func RunTaskForm(model AddTaskModel) (TaskForm, bool, error) {
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return TaskForm{}, false, err
	}

	m, ok := finalModel.(AddTaskModel)
	if !ok {
		return TaskForm{}, false, nil
	}
	form, saved := m.Result()
	return form, saved, nil
}

// RunTimerTUI runs the Pomodoro timer and returns the focus intervals
// that finished before the user quit
func RunTimerTUI(opts TimerOptions) ([]FocusSession, error) {
	p := tea.NewProgram(NewTimerModel(opts, time.Now()), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(TimerModel)
	if !ok {
		return nil, nil
	}
	return m.Completed, nil
}

// RunTaskBrowser runs the interactive task list
func RunTaskBrowser(model ListModel) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
