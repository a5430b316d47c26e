package store

// Achievement is a derived milestone; nothing about it is stored
type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Progress    float64 // 0-1
	Unlocked    bool
}

type achievementDef struct {
	id          string
	title       string
	description string
	icon        string
	progress    func(s *Store) float64
}

var achievementDefs = []achievementDef{
	{
		id: "first-steps", title: "First Steps", icon: "🌱",
		description: "Complete your first task",
		progress:    func(s *Store) float64 { return ratio(s.completedTaskCount(), 1) },
	},
	{
		id: "task-master", title: "Task Master", icon: "🏆",
		description: "Complete 50 tasks",
		progress:    func(s *Store) float64 { return ratio(s.completedTaskCount(), 50) },
	},
	{
		id: "focus-beginner", title: "Focus Beginner", icon: "🍅",
		description: "Finish a pomodoro",
		progress:    func(s *Store) float64 { return ratio(s.completedPomodoros, 1) },
	},
	{
		id: "pomodoro-pro", title: "Pomodoro Pro", icon: "⏱",
		description: "Finish 25 pomodoros",
		progress:    func(s *Store) float64 { return ratio(s.completedPomodoros, 25) },
	},
	{
		id: "deep-worker", title: "Deep Worker", icon: "🧠",
		description: "Focus for 10 hours in total",
		progress:    func(s *Store) float64 { return ratio(s.totalFocusMinutes, 600) },
	},
	{
		id: "on-fire", title: "On Fire", icon: "🔥",
		description: "Keep a 7-day focus streak",
		progress:    func(s *Store) float64 { return ratio(s.focusStreak, 7) },
	},
	{
		id: "scholar", title: "Scholar", icon: "🎓",
		description: "Complete every lesson",
		progress:    func(s *Store) float64 { return s.CourseProgress() },
	},
	{
		id: "test-ace", title: "Test Ace", icon: "💯",
		description: "Pass every test",
		progress:    func(s *Store) float64 { return ratio(len(s.passedTests), len(s.tests)) },
	},
}

// Achievements evaluates every achievement against the current state
func (s *Store) Achievements() []Achievement {
	out := make([]Achievement, 0, len(achievementDefs))
	for _, def := range achievementDefs {
		p := def.progress(s)
		out = append(out, Achievement{
			ID:          def.id,
			Title:       def.title,
			Description: def.description,
			Icon:        def.icon,
			Progress:    p,
			Unlocked:    p >= 1,
		})
	}
	return out
}

// UnlockedCount returns how many achievements are unlocked
func (s *Store) UnlockedCount() int {
	n := 0
	for _, a := range s.Achievements() {
		if a.Unlocked {
			n++
		}
	}
	return n
}

func (s *Store) completedTaskCount() int {
	n := 0
	for _, t := range s.tasks {
		if t.IsCompleted {
			n++
		}
	}
	return n
}
