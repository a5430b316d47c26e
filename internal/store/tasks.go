package store

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/balkashynov/prodo/internal/models"
)

// DefaultDueIn is added to the creation time when a task has no due date
const DefaultDueIn = 24 * time.Hour

// NewTask holds the data needed to create a new task.
// Zero fields take the defaults: medium priority, Work category,
// due in 24 hours, urgent-important quadrant.
type NewTask struct {
	Title    string
	Priority models.Priority
	Category string
	DueDate  time.Time
	Quadrant models.Quadrant

	// AddToCalendar asks the Reminder for a calendar entry at DueDate
	AddToCalendar bool
}

// TaskEdit holds the fields UpdateTask overwrites
type TaskEdit struct {
	Title    string
	Priority models.Priority
	Category string
	DueDate  time.Time
}

// AddTask creates a task and inserts it at the head of the list.
// Titles are not validated here.
func (s *Store) AddTask(in NewTask) models.Task {
	now := s.now()

	task := models.Task{
		ID:        uuid.NewString(),
		Title:     in.Title,
		CreatedAt: now,
		DueDate:   in.DueDate,
		Priority:  in.Priority,
		Category:  in.Category,
		Quadrant:  in.Quadrant,
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.Category == "" {
		task.Category = models.DefaultCategory
	}
	if task.DueDate.IsZero() {
		task.DueDate = now.Add(DefaultDueIn)
	}
	if task.Quadrant == "" {
		task.Quadrant = models.QuadrantUrgentImportant
	}

	s.tasks = slices.Insert(s.tasks, 0, task)
	s.changed(FieldTasks)

	if in.AddToCalendar && s.reminder != nil {
		s.reminder.Remind(task.Title, task.DueDate)
	}

	return cloneTask(task)
}

// ToggleTask flips the completion flag
func (s *Store) ToggleTask(id string) bool {
	return s.mutateTask(id, func(t *models.Task) {
		t.IsCompleted = !t.IsCompleted
	})
}

// ArchiveTask flags the task as archived; it stays in the full listing
func (s *Store) ArchiveTask(id string) bool {
	return s.mutateTask(id, func(t *models.Task) {
		t.IsArchived = true
	})
}

// UnarchiveTask moves an archived task back to the active view
func (s *Store) UnarchiveTask(id string) bool {
	return s.mutateTask(id, func(t *models.Task) {
		t.IsArchived = false
	})
}

// UpdateTask overwrites title, priority, category and due date. Completion,
// archive, quadrant and sharing are left alone.
func (s *Store) UpdateTask(id string, edit TaskEdit) bool {
	return s.mutateTask(id, func(t *models.Task) {
		t.Title = edit.Title
		t.Priority = edit.Priority
		t.Category = edit.Category
		t.DueDate = edit.DueDate
	})
}

// UpdateTaskQuadrant moves a task in the matrix. The priority is always
// re-derived from the new quadrant.
func (s *Store) UpdateTaskQuadrant(id string, quadrant models.Quadrant) bool {
	return s.mutateTask(id, func(t *models.Task) {
		t.Quadrant = quadrant
		t.Priority = quadrant.DefaultPriority()
	})
}

// ShareTask replaces the shared-with list wholesale
func (s *Store) ShareTask(id string, memberIDs []string) bool {
	return s.mutateTask(id, func(t *models.Task) {
		t.SharedWith = append([]string{}, memberIDs...)
	})
}

// DeleteTask removes the task
func (s *Store) DeleteTask(id string) bool {
	i := s.indexOfTask(id)
	if i < 0 {
		s.logger.Debug("delete ignored, task not found", zap.String("id", id))
		return false
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.changed(FieldTasks)
	return true
}

// ClearAllTasks empties the task list
func (s *Store) ClearAllTasks() {
	s.tasks = []models.Task{}
	s.changed(FieldTasks)
}

// mutateTask applies fn to the task with id; a miss is a no-op
func (s *Store) mutateTask(id string, fn func(*models.Task)) bool {
	i := s.indexOfTask(id)
	if i < 0 {
		s.logger.Debug("update ignored, task not found", zap.String("id", id))
		return false
	}
	fn(&s.tasks[i])
	s.changed(FieldTasks)
	return true
}

func (s *Store) indexOfTask(id string) int {
	return slices.IndexFunc(s.tasks, func(t models.Task) bool {
		return t.ID == id
	})
}

// Task looks up a task by id
func (s *Store) Task(id string) (models.Task, bool) {
	i := s.indexOfTask(id)
	if i < 0 {
		return models.Task{}, false
	}
	return cloneTask(s.tasks[i]), true
}

// Tasks returns every task, newest first, archived included
func (s *Store) Tasks() []models.Task {
	return s.filterTasks(func(models.Task) bool { return true })
}

// ActiveTasks returns tasks that are not archived
func (s *Store) ActiveTasks() []models.Task {
	return s.filterTasks(func(t models.Task) bool { return !t.IsArchived })
}

// ArchivedTasks returns archived tasks only
func (s *Store) ArchivedTasks() []models.Task {
	return s.filterTasks(func(t models.Task) bool { return t.IsArchived })
}

// TasksInQuadrant returns the active tasks of one matrix bucket
func (s *Store) TasksInQuadrant(q models.Quadrant) []models.Task {
	return s.filterTasks(func(t models.Task) bool {
		return !t.IsArchived && t.Quadrant == q
	})
}

// TasksByCategory returns active tasks in category
func (s *Store) TasksByCategory(category string) []models.Task {
	return s.filterTasks(func(t models.Task) bool {
		return !t.IsArchived && t.Category == category
	})
}

// OverdueTasks returns active tasks past their due date
func (s *Store) OverdueTasks(now time.Time) []models.Task {
	return s.filterTasks(func(t models.Task) bool {
		return !t.IsArchived && t.IsOverdue(now)
	})
}

// SharedMembers resolves a task's shared-with ids; ids that no longer
// match a member are skipped
func (s *Store) SharedMembers(task models.Task) []models.TeamMember {
	var members []models.TeamMember
	for _, id := range task.SharedWith {
		if m, ok := s.Member(id); ok {
			members = append(members, m)
		}
	}
	return members
}

func (s *Store) filterTasks(keep func(models.Task) bool) []models.Task {
	out := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if keep(t) {
			out = append(out, cloneTask(t))
		}
	}
	return out
}

// cloneTask copies the task so callers cannot alias the shared-with slice
func cloneTask(t models.Task) models.Task {
	if t.SharedWith != nil {
		t.SharedWith = append([]string{}, t.SharedWith...)
	}
	return t
}
