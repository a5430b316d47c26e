package models

// Difficulty grades a lesson
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Lesson is an entry of the learning center curriculum
type Lesson struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Icon            string     `json:"icon"`
	Color           string     `json:"color"`
	DurationMinutes int        `json:"durationMinutes"`
	Difficulty      Difficulty `json:"difficulty"`
	Order           int        `json:"order"`
	Content         []string   `json:"content"`

	// Empty means the lesson is always unlocked
	RequiredLessonID string `json:"requiredLessonId,omitempty"`
}

// TestQuestion is a single multiple-choice question
type TestQuestion struct {
	ID           string   `json:"id"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// CourseTest is a quiz gated behind a lesson
type CourseTest struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Questions        []TestQuestion `json:"questions"`
	PassingScore     int            `json:"passingScore"` // percent, 0-100
	RequiredLessonID string         `json:"requiredLessonId,omitempty"`
}
