package store

import "github.com/balkashynov/prodo/internal/models"

// DefaultLessons returns the built-in curriculum. Each lesson after the
// first requires the one before it.
func DefaultLessons() []models.Lesson {
	return []models.Lesson{
		{
			ID:              "lesson-1",
			Title:           "Getting Things Started",
			Description:     "Capture everything on your mind into one trusted list.",
			Icon:            "📥",
			Color:           "#3B82F6",
			DurationMinutes: 5,
			Difficulty:      models.DifficultyBeginner,
			Order:           1,
			Content: []string{
				"Your head is for having ideas, not for holding them. Write every open loop down.",
				"Keep one inbox. Tasks scattered across apps and sticky notes get lost.",
				"Review the inbox daily and turn each item into a concrete next action.",
			},
		},
		{
			ID:               "lesson-2",
			Title:            "The Eisenhower Matrix",
			Description:      "Sort work by urgency and importance.",
			Icon:             "🧭",
			Color:            "#22C55E",
			DurationMinutes:  8,
			Difficulty:       models.DifficultyBeginner,
			Order:            2,
			RequiredLessonID: "lesson-1",
			Content: []string{
				"Urgent and important: do it first.",
				"Important but not urgent: schedule it. Most meaningful work lives here.",
				"Urgent but not important: delegate it when you can.",
				"Neither: eliminate it.",
			},
		},
		{
			ID:               "lesson-3",
			Title:            "Pomodoro Focus",
			Description:      "Work in short focused intervals with deliberate breaks.",
			Icon:             "🍅",
			Color:            "#EF4444",
			DurationMinutes:  10,
			Difficulty:       models.DifficultyIntermediate,
			Order:            3,
			RequiredLessonID: "lesson-2",
			Content: []string{
				"Pick one task and set a 25 minute timer.",
				"Work until the timer rings. Note distractions instead of acting on them.",
				"Take a 5 minute break. After four rounds take a longer one.",
			},
		},
		{
			ID:               "lesson-4",
			Title:            "Working as a Team",
			Description:      "Share tasks so everyone knows who owns what.",
			Icon:             "🤝",
			Color:            "#F59E0B",
			DurationMinutes:  12,
			Difficulty:       models.DifficultyIntermediate,
			Order:            4,
			RequiredLessonID: "lesson-3",
			Content: []string{
				"Every shared task needs one clear owner.",
				"Share the context with the task, not in a separate message.",
				"Check in on shared work at a fixed cadence.",
			},
		},
		{
			ID:               "lesson-5",
			Title:            "Weekly Review",
			Description:      "Close the loop every week and plan the next one.",
			Icon:             "📅",
			Color:            "#7C3AED",
			DurationMinutes:  15,
			Difficulty:       models.DifficultyAdvanced,
			Order:            5,
			RequiredLessonID: "lesson-4",
			Content: []string{
				"Empty every inbox and archive what is done.",
				"Look at the stats: where did your focus time actually go?",
				"Pick the three most important outcomes for next week.",
			},
		},
	}
}

// DefaultTests returns the built-in quizzes, each gated behind a lesson
func DefaultTests() []models.CourseTest {
	return []models.CourseTest{
		{
			ID:               "test-1",
			Title:            "Prioritization Basics",
			PassingScore:     70,
			RequiredLessonID: "lesson-2",
			Questions: []models.TestQuestion{
				{
					ID:           "q1-1",
					Question:     "Where does an urgent and important task go?",
					Options:      []string{"Do First", "Schedule", "Delegate", "Eliminate"},
					CorrectIndex: 0,
				},
				{
					ID:           "q1-2",
					Question:     "What should you do with tasks that are neither urgent nor important?",
					Options:      []string{"Do them now", "Schedule them", "Eliminate them"},
					CorrectIndex: 2,
				},
				{
					ID:           "q1-3",
					Question:     "Which quadrant holds most long-term meaningful work?",
					Options:      []string{"Urgent and important", "Important but not urgent", "Urgent but not important"},
					CorrectIndex: 1,
				},
			},
		},
		{
			ID:               "test-2",
			Title:            "Focus Techniques",
			PassingScore:     70,
			RequiredLessonID: "lesson-3",
			Questions: []models.TestQuestion{
				{
					ID:           "q2-1",
					Question:     "How long is a classic pomodoro?",
					Options:      []string{"10 minutes", "25 minutes", "60 minutes"},
					CorrectIndex: 1,
				},
				{
					ID:           "q2-2",
					Question:     "What do you do with a distraction during a pomodoro?",
					Options:      []string{"Act on it immediately", "Write it down for later", "Restart the timer"},
					CorrectIndex: 1,
				},
				{
					ID:           "q2-3",
					Question:     "When do you take a longer break?",
					Options:      []string{"After every round", "After four rounds", "Never"},
					CorrectIndex: 1,
				},
			},
		},
		{
			ID:               "test-3",
			Title:            "Productivity Mastery",
			PassingScore:     80,
			RequiredLessonID: "lesson-5",
			Questions: []models.TestQuestion{
				{
					ID:           "q3-1",
					Question:     "How many owners should a shared task have?",
					Options:      []string{"One", "Two", "Everyone on the team"},
					CorrectIndex: 0,
				},
				{
					ID:           "q3-2",
					Question:     "What is the first step of a weekly review?",
					Options:      []string{"Plan next week", "Empty every inbox", "Reset your stats"},
					CorrectIndex: 1,
				},
				{
					ID:           "q3-3",
					Question:     "How many key outcomes should you pick for next week?",
					Options:      []string{"One", "Three", "Ten"},
					CorrectIndex: 1,
				},
				{
					ID:           "q3-4",
					Question:     "Where should the context for a shared task live?",
					Options:      []string{"In a chat message", "With the task", "In your head"},
					CorrectIndex: 1,
				},
			},
		},
	}
}
