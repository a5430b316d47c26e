package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/prodo/internal/models"
	"github.com/balkashynov/prodo/internal/store"
)

var start = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func updateTimer(t *testing.T, m TimerModel, msg tea.Msg) TimerModel {
	t.Helper()
	next, _ := m.Update(msg)
	tm, ok := next.(TimerModel)
	require.True(t, ok)
	return tm
}

func TestTimerCompletesFocusInterval(t *testing.T) {
	m := NewTimerModel(TimerOptions{Focus: time.Minute, Break: 30 * time.Second}, start)

	m = updateTimer(t, m, timerTickMsg{at: start.Add(30 * time.Second)})
	assert.Equal(t, PhaseFocus, m.Phase())
	assert.Equal(t, 30*time.Second, m.Remaining())
	assert.InDelta(t, 0.5, m.percent(), 1e-9)

	m = updateTimer(t, m, timerTickMsg{at: start.Add(time.Minute)})
	assert.Equal(t, PhaseBreak, m.Phase())
	assert.Equal(t, 30*time.Second, m.Remaining())
	assert.Equal(t, []FocusSession{{Minutes: 1, FinishedAt: start.Add(time.Minute)}}, m.Completed)

	// The break ends without recording anything
	m = updateTimer(t, m, timerTickMsg{at: start.Add(90 * time.Second)})
	assert.Equal(t, PhaseFocus, m.Phase())
	assert.Len(t, m.Completed, 1)
}

func TestTimerPauseStopsCountdown(t *testing.T) {
	m := NewTimerModel(TimerOptions{Focus: time.Minute}, start)

	m = updateTimer(t, m, key("p"))
	require.True(t, m.Paused())

	m = updateTimer(t, m, timerTickMsg{at: start.Add(10 * time.Minute)})
	assert.Equal(t, time.Minute, m.Remaining())

	m = updateTimer(t, m, key("p"))
	m = updateTimer(t, m, timerTickMsg{at: start.Add(10*time.Minute + 15*time.Second)})
	assert.Equal(t, 45*time.Second, m.Remaining())
}

func TestTimerSkipDoesNotCount(t *testing.T) {
	m := NewTimerModel(TimerOptions{Focus: time.Minute, Break: 2 * time.Minute}, start)

	m = updateTimer(t, m, key("s"))
	assert.Equal(t, PhaseBreak, m.Phase())
	assert.Equal(t, 2*time.Minute, m.Remaining())
	assert.Empty(t, m.Completed)
}

func TestTimerRestartAndQuit(t *testing.T) {
	m := NewTimerModel(TimerOptions{Focus: time.Minute}, start)
	m = updateTimer(t, m, timerTickMsg{at: start.Add(20 * time.Second)})
	m = updateTimer(t, m, key("r"))
	assert.Equal(t, time.Minute, m.Remaining())

	_, cmd := m.Update(key("q"))
	assert.NotNil(t, cmd)
}

func TestTimerDefaults(t *testing.T) {
	m := NewTimerModel(TimerOptions{}, start)
	assert.Equal(t, 25*time.Minute, m.Remaining())
}

func updateForm(t *testing.T, m AddTaskModel, msgs ...tea.Msg) AddTaskModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(AddTaskModel)
		require.True(t, ok)
	}
	return m
}

func TestFormRequiresTitle(t *testing.T) {
	m := updateForm(t, NewAddTaskModel(TaskForm{}, start), key("enter"))
	assert.Equal(t, StepTitle, m.currentStep)
	assert.Equal(t, "Task title is required", m.validationErr)

	m = updateForm(t, m, key("Write report"), key("enter"))
	assert.Equal(t, StepCategory, m.currentStep)
	assert.Empty(t, m.validationErr)
}

func TestFormRejectsBadPriority(t *testing.T) {
	m := NewAddTaskModel(TaskForm{Title: "Thing", Priority: "urgent"}, start)
	m = updateForm(t, m, key("enter"), key("enter"), key("enter"))

	assert.Equal(t, StepPriority, m.currentStep)
	assert.Contains(t, m.validationErr, "Invalid priority")
}

func TestFormCollectsFields(t *testing.T) {
	m := NewAddTaskModel(TaskForm{
		Title:    "Book dentist",
		Category: "health",
		Priority: models.PriorityHigh,
		Quadrant: models.QuadrantNotUrgentImportant,
	}, start)

	for range 5 {
		m = updateForm(t, m, key("enter"))
	}
	require.Equal(t, StepSave, m.currentStep)

	m = updateForm(t, m, key("tomorrow"))
	_, saved := m.Result()
	assert.False(t, saved)

	m = updateForm(t, m, key("enter"))
	form, saved := m.Result()
	require.True(t, saved)
	assert.Equal(t, TaskForm{
		Title:    "Book dentist",
		Category: "Health",
		Priority: models.PriorityHigh,
		Quadrant: models.QuadrantNotUrgentImportant,
	}, form)
}

func TestEditFormKeepsDueDate(t *testing.T) {
	due := time.Date(2026, 4, 2, 23, 59, 59, 0, time.UTC)
	m := NewEditTaskModel(models.Task{
		Title:    "Ship release",
		Category: "Work",
		Priority: models.PriorityMedium,
		Quadrant: models.QuadrantUrgentImportant,
		DueDate:  due,
	}, start)

	for range 6 {
		m = updateForm(t, m, key("enter"))
	}
	form, saved := m.Result()
	require.True(t, saved)
	assert.Equal(t, due, form.DueDate)
	assert.True(t, m.isEditMode)
}

func TestFormCancel(t *testing.T) {
	m := updateForm(t, NewAddTaskModel(TaskForm{Title: "x"}, start), key("esc"))
	_, saved := m.Result()
	assert.False(t, saved)
}

func newBoard(t *testing.T, titles ...string) *store.Store {
	t.Helper()
	s := store.New(store.Deps{Clock: func() time.Time { return start }})
	for _, title := range titles {
		s.AddTask(store.NewTask{Title: title})
	}
	return s
}

func updateList(t *testing.T, m ListModel, msgs ...tea.Msg) ListModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(ListModel)
		require.True(t, ok)
	}
	return m
}

func TestListActions(t *testing.T) {
	s := newBoard(t, "Buy milk", "Write report", "Call mom")
	clock := func() time.Time { return start }

	m := NewListModel(s, false, clock)
	require.Len(t, m.tasks, 3)
	assert.Equal(t, "Call mom", m.tasks[0].Title)

	m = updateList(t, m, key("d"))
	task, _ := s.Task(m.tasks[0].ID)
	assert.True(t, task.IsCompleted)

	m = updateList(t, m, key("j"), key("m"))
	task, _ = s.Task(m.tasks[1].ID)
	assert.Equal(t, models.QuadrantNotUrgentImportant, task.Quadrant)
	assert.Equal(t, models.PriorityMedium, task.Priority)

	m = updateList(t, m, key("a"))
	assert.Len(t, m.tasks, 2)
	assert.Len(t, s.ArchivedTasks(), 1)

	m = updateList(t, m, key("x"))
	assert.Len(t, m.tasks, 1)
	assert.Len(t, s.Tasks(), 2)

	archived := NewListModel(s, true, clock)
	require.Len(t, archived.tasks, 1)
	archived = updateList(t, archived, key("a"))
	assert.Empty(t, archived.tasks)
	assert.Empty(t, s.ArchivedTasks())
}

func TestListSearch(t *testing.T) {
	s := newBoard(t, "Buy milk", "Milkshake recipe", "Write report")

	m := NewListModel(s, false, nil)
	m = updateList(t, m, key("/"), key("milk"))
	require.Len(t, m.tasks, 2)
	assert.Equal(t, "Buy milk", m.tasks[1].Title)

	m = updateList(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, FocusTable, m.focus)
	assert.Len(t, m.tasks, 3)
}

func TestListEmptyIsSafe(t *testing.T) {
	m := NewListModel(newBoard(t), false, nil)
	m = updateList(t, m, key("d"), key("x"), key("j"))
	assert.Empty(t, m.tasks)
	assert.Empty(t, m.status)
}

func TestRenderMatrix(t *testing.T) {
	s := newBoard(t)
	s.AddTask(store.NewTask{Title: "Fix prod", Quadrant: models.QuadrantUrgentImportant})
	s.AddTask(store.NewTask{Title: "Learn Go", Quadrant: models.QuadrantNotUrgentImportant})

	byQuadrant := make(map[models.Quadrant][]models.Task)
	for _, q := range models.Quadrants {
		byQuadrant[q] = s.TasksInQuadrant(q)
	}

	out := RenderMatrix(byQuadrant, 100, start)
	for _, want := range []string{"Do First (1)", "Schedule (1)", "Delegate (0)", "Eliminate (0)", "Fix prod", "Learn Go"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderStatsAndAchievements(t *testing.T) {
	s := newBoard(t, "One")
	s.CompleteFocusSession(90, start)

	out := RenderStats(s.Stats(start), &models.WeatherSnapshot{Condition: "Rain", Icon: "🌧", Mock: true}, "Stay in")
	assert.Contains(t, out, "Pomodoros")
	assert.Contains(t, out, "1h 30m")
	assert.Contains(t, out, "(sample)")
	assert.Contains(t, out, "Stay in")

	assert.Contains(t, RenderAchievements(s.Achievements()), "Achievements 1/8")
}
