package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/balkashynov/prodo/internal/models"
)

// Demo counters
const (
	seedPomodoros    = 12
	seedStreak       = 5
	seedFocusMinutes = 300
)

// seedIfEmpty installs the demo dataset when tasks, notes and team are all
// empty. Counters are seeded only if they are all zero as well.
func (s *Store) seedIfEmpty() bool {
	if len(s.tasks) > 0 || len(s.notes) > 0 || len(s.members) > 0 {
		return false
	}

	now := s.now()
	s.members = demoMembers()
	s.tasks = demoTasks(now, s.members)
	s.notes = demoNotes(now)
	fields := []Field{FieldTeamMembers, FieldTasks, FieldNotes}

	if s.completedPomodoros == 0 && s.focusStreak == 0 && s.totalFocusMinutes == 0 {
		s.completedPomodoros = seedPomodoros
		s.focusStreak = seedStreak
		s.totalFocusMinutes = seedFocusMinutes
		s.lastFocusDay = now.AddDate(0, 0, -1).Format(dayLayout)
		fields = append(fields, FieldCompletedPomodoros, FieldFocusStreak, FieldTotalFocusMinutes, FieldLastFocusDay)
	}

	s.changed(fields...)
	return true
}

func demoMembers() []models.TeamMember {
	members := []models.TeamMember{
		{Name: "Alex Morgan", Email: "alex@example.com", Role: models.RoleOwner, IsOnline: true},
		{Name: "Sam Rivera", Email: "sam@example.com", Role: models.RoleAdmin, IsOnline: true},
		{Name: "Jordan Lee", Email: "jordan@example.com", Role: models.RoleMember},
		{Name: "Casey Kim", Email: "casey@example.com", Role: models.RoleViewer},
	}
	for i := range members {
		members[i].ID = uuid.NewString()
		members[i].Color = models.MemberColors[i%len(models.MemberColors)]
	}
	return members
}

func demoTasks(now time.Time, members []models.TeamMember) []models.Task {
	day := 24 * time.Hour
	task := func(title, category string, q models.Quadrant, due time.Duration) models.Task {
		return models.Task{
			ID:        uuid.NewString(),
			Title:     title,
			CreatedAt: now,
			DueDate:   now.Add(due),
			Priority:  q.DefaultPriority(),
			Category:  category,
			Quadrant:  q,
		}
	}

	tasks := []models.Task{
		task("Finish quarterly report", "Work", models.QuadrantUrgentImportant, 4*time.Hour),
		task("Fix login bug", "Work", models.QuadrantUrgentImportant, -2*time.Hour),
		task("Plan team offsite", "Work", models.QuadrantNotUrgentImportant, 7*day),
		task("Read a chapter of Deep Work", "Learning", models.QuadrantNotUrgentImportant, 3*day),
		task("Book dentist appointment", "Health", models.QuadrantUrgentNotImportant, day),
		task("Buy groceries", "Shopping", models.QuadrantUrgentNotImportant, 6*time.Hour),
		task("Morning run", "Health", models.QuadrantNotUrgentImportant, day),
		task("Sort old photos", "Personal", models.QuadrantNotUrgentNotImportant, 14*day),
	}

	tasks[2].SharedWith = []string{members[1].ID, members[2].ID}
	tasks[0].SharedWith = []string{members[1].ID}
	tasks[6].IsCompleted = true
	return tasks
}

func demoNotes(now time.Time) []models.Note {
	return []models.Note{
		{ID: uuid.NewString(), Title: "Meeting notes", Content: "Discuss Q3 roadmap and hiring plan.", Category: "Work", CreatedAt: now},
		{ID: uuid.NewString(), Title: "Book ideas", Content: "Atomic Habits, Deep Work, Getting Things Done.", Category: "Learning", CreatedAt: now},
		{ID: uuid.NewString(), Title: "Shopping list", Content: "Milk, eggs, bread, coffee.", Category: "Shopping", CreatedAt: now},
	}
}
