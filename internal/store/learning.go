package store

import (
	"maps"
	"slices"
	"sort"

	"go.uber.org/zap"

	"github.com/balkashynov/prodo/internal/models"
)

// Lessons returns the curriculum in display order
func (s *Store) Lessons() []models.Lesson {
	lessons := slices.Clone(s.lessons)
	sort.SliceStable(lessons, func(i, j int) bool {
		return lessons[i].Order < lessons[j].Order
	})
	return lessons
}

// Tests returns the quiz catalog
func (s *Store) Tests() []models.CourseTest {
	return slices.Clone(s.tests)
}

// Lesson looks up a lesson by id
func (s *Store) Lesson(id string) (models.Lesson, bool) {
	i := slices.IndexFunc(s.lessons, func(l models.Lesson) bool { return l.ID == id })
	if i < 0 {
		return models.Lesson{}, false
	}
	return s.lessons[i], true
}

// Test looks up a quiz by id
func (s *Store) Test(id string) (models.CourseTest, bool) {
	i := slices.IndexFunc(s.tests, func(t models.CourseTest) bool { return t.ID == id })
	if i < 0 {
		return models.CourseTest{}, false
	}
	return s.tests[i], true
}

// CompleteLesson marks a lesson complete; repeats are no-ops
func (s *Store) CompleteLesson(id string) {
	if slices.Contains(s.completedLessons, id) {
		return
	}
	s.completedLessons = append(s.completedLessons, id)
	s.changed(FieldCompletedLessons)
}

// IsLessonCompleted reports whether id is in the completed set
func (s *Store) IsLessonCompleted(id string) bool {
	return slices.Contains(s.completedLessons, id)
}

// IsLessonUnlocked is true when the lesson has no prerequisite or the
// prerequisite is completed
func (s *Store) IsLessonUnlocked(lesson models.Lesson) bool {
	return s.prerequisiteMet(lesson.RequiredLessonID)
}

// IsTestUnlocked applies the lesson rule to a quiz
func (s *Store) IsTestUnlocked(test models.CourseTest) bool {
	return s.prerequisiteMet(test.RequiredLessonID)
}

func (s *Store) prerequisiteMet(requiredLessonID string) bool {
	return requiredLessonID == "" || s.IsLessonCompleted(requiredLessonID)
}

// PassTest records a passed quiz. The passed set only grows and the
// stored score is replaced only by a strictly greater one.
func (s *Store) PassTest(id string, score int) {
	var fields []Field
	if !slices.Contains(s.passedTests, id) {
		s.passedTests = append(s.passedTests, id)
		fields = append(fields, FieldPassedTests)
	}
	if best, ok := s.testScores[id]; !ok || score > best {
		s.testScores[id] = score
		fields = append(fields, FieldTestScores)
	}
	if len(fields) > 0 {
		s.changed(fields...)
	}
}

// IsTestPassed reports whether id is in the passed set
func (s *Store) IsTestPassed(id string) bool {
	return slices.Contains(s.passedTests, id)
}

// BestScore returns the best recorded percent for a quiz
func (s *Store) BestScore(id string) (int, bool) {
	score, ok := s.testScores[id]
	return score, ok
}

// CompletedLessons returns the completed lesson ids in completion order
func (s *Store) CompletedLessons() []string {
	return slices.Clone(s.completedLessons)
}

// PassedTests returns the passed quiz ids in the order they were passed
func (s *Store) PassedTests() []string {
	return slices.Clone(s.passedTests)
}

// TestScores returns a copy of the best-score map
func (s *Store) TestScores() map[string]int {
	return maps.Clone(s.testScores)
}

// GradeTest returns the percentage of correct answers, rounded down.
// Missing answers count as wrong; a quiz with no questions scores 0.
func GradeTest(test models.CourseTest, answers []int) int {
	if len(test.Questions) == 0 {
		return 0
	}
	correct := 0
	for i, q := range test.Questions {
		if i < len(answers) && answers[i] == q.CorrectIndex {
			correct++
		}
	}
	return correct * 100 / len(test.Questions)
}

// TestResult is the outcome of a submitted quiz
type TestResult struct {
	Score  int
	Passed bool
}

// SubmitTest grades the answers and records a pass when the score meets
// the quiz's passing score. Locked or unknown quizzes are not graded.
func (s *Store) SubmitTest(id string, answers []int) (TestResult, bool) {
	test, ok := s.Test(id)
	if !ok {
		s.logger.Debug("submit ignored, test not found", zap.String("id", id))
		return TestResult{}, false
	}
	if !s.IsTestUnlocked(test) {
		s.logger.Debug("submit ignored, test locked", zap.String("id", id))
		return TestResult{}, false
	}

	score := GradeTest(test, answers)
	result := TestResult{Score: score, Passed: score >= test.PassingScore}
	if result.Passed {
		s.PassTest(id, score)
	}
	return result, true
}
