package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/prodo/internal/models"
)

func TestCompleteLessonIsIdempotent(t *testing.T) {
	kv := newMemKV()
	s := New(Deps{Source: kv, Sink: kv})

	s.CompleteLesson("lesson-1")
	s.CompleteLesson("lesson-1")

	assert.Equal(t, []string{"lesson-1"}, s.CompletedLessons())
	assert.Equal(t, 1, kv.schedules[string(FieldCompletedLessons)])
}

func TestUnlockRule(t *testing.T) {
	s := New(Deps{})

	free := models.Lesson{ID: "free"}
	gated := models.Lesson{ID: "gated", RequiredLessonID: "free"}
	dangling := models.Lesson{ID: "dangling", RequiredLessonID: "renamed"}
	quiz := models.CourseTest{ID: "quiz", RequiredLessonID: "free"}

	assert.True(t, s.IsLessonUnlocked(free))
	assert.False(t, s.IsLessonUnlocked(gated))
	assert.False(t, s.IsLessonUnlocked(dangling))
	assert.False(t, s.IsTestUnlocked(quiz))
	assert.True(t, s.IsTestUnlocked(models.CourseTest{ID: "open"}))

	s.CompleteLesson("free")

	assert.True(t, s.IsLessonUnlocked(gated))
	assert.True(t, s.IsTestUnlocked(quiz))
	assert.False(t, s.IsLessonUnlocked(dangling))
}

func TestDefaultCurriculumUnlocksInOrder(t *testing.T) {
	s := New(Deps{})
	lessons := s.Lessons()

	for i, lesson := range lessons {
		for j, later := range lessons {
			if j == 0 {
				continue
			}
			assert.Equal(t, j <= i, s.IsLessonUnlocked(later), "after %d lessons, lesson %s", i, later.ID)
		}
		s.CompleteLesson(lesson.ID)
	}
}

func TestPassTestKeepsMaximum(t *testing.T) {
	s := New(Deps{})

	s.PassTest("test-1", 80)
	s.PassTest("test-1", 60)
	s.PassTest("test-1", 95)
	s.PassTest("test-1", 90)

	assert.Equal(t, []string{"test-1"}, s.PassedTests())
	score, ok := s.BestScore("test-1")
	require.True(t, ok)
	assert.Equal(t, 95, score)
	assert.True(t, s.IsTestPassed("test-1"))
}

func TestPassTestFirstResultAlwaysRecorded(t *testing.T) {
	s := New(Deps{})

	s.PassTest("test-2", 0)
	score, ok := s.BestScore("test-2")
	require.True(t, ok)
	assert.Zero(t, score)
}

func TestPassTestUnchangedSkipsWrites(t *testing.T) {
	kv := newMemKV()
	s := New(Deps{Source: kv, Sink: kv})

	s.PassTest("test-1", 90)
	s.PassTest("test-1", 90)

	assert.Equal(t, 1, kv.schedules[string(FieldPassedTests)])
	assert.Equal(t, 1, kv.schedules[string(FieldTestScores)])
}

func TestTestScoresReturnsCopy(t *testing.T) {
	s := New(Deps{})
	s.PassTest("test-1", 90)

	scores := s.TestScores()
	scores["test-1"] = 1

	score, _ := s.BestScore("test-1")
	assert.Equal(t, 90, score)
}

func TestGradeTest(t *testing.T) {
	test := models.CourseTest{Questions: []models.TestQuestion{
		{CorrectIndex: 0}, {CorrectIndex: 1}, {CorrectIndex: 2},
	}}

	tests := []struct {
		name    string
		answers []int
		want    int
	}{
		{"all correct", []int{0, 1, 2}, 100},
		{"two of three", []int{0, 1, 0}, 66},
		{"none", []int{1, 2, 0}, 0},
		{"missing answers", []int{0}, 33},
		{"extra answers ignored", []int{0, 1, 2, 3}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GradeTest(test, tt.answers))
		})
	}

	assert.Zero(t, GradeTest(models.CourseTest{}, nil))
}

func TestSubmitTest(t *testing.T) {
	s := New(Deps{})
	quiz, ok := s.Test("test-1")
	require.True(t, ok)

	_, ok = s.SubmitTest("test-1", nil)
	assert.False(t, ok, "locked quiz must not be graded")

	s.CompleteLesson("lesson-1")
	s.CompleteLesson(quiz.RequiredLessonID)

	result, ok := s.SubmitTest("test-1", []int{9, 9, 9})
	require.True(t, ok)
	assert.False(t, result.Passed)
	assert.False(t, s.IsTestPassed("test-1"))

	correct := make([]int, len(quiz.Questions))
	for i, q := range quiz.Questions {
		correct[i] = q.CorrectIndex
	}
	result, ok = s.SubmitTest("test-1", correct)
	require.True(t, ok)
	assert.Equal(t, TestResult{Score: 100, Passed: true}, result)
	assert.True(t, s.IsTestPassed("test-1"))

	_, ok = s.SubmitTest("missing", correct)
	assert.False(t, ok)
}

func TestCompleteFocusSessionStreak(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 3, d, 10, 0, 0, 0, time.UTC) }
	s := New(Deps{})

	s.CompleteFocusSession(25, day(1))
	assert.Equal(t, Counters{CompletedPomodoros: 1, FocusStreak: 1, TotalFocusMinutes: 25}, s.Counters())

	s.CompleteFocusSession(25, day(1).Add(3*time.Hour))
	assert.Equal(t, 1, s.Counters().FocusStreak)

	s.CompleteFocusSession(50, day(2))
	assert.Equal(t, 2, s.Counters().FocusStreak)

	s.CompleteFocusSession(25, day(5))
	assert.Equal(t, Counters{CompletedPomodoros: 4, FocusStreak: 1, TotalFocusMinutes: 125}, s.Counters())
}

func TestResetStatistics(t *testing.T) {
	s := New(Deps{SeedDemo: true})
	s.CompleteLesson("lesson-1")
	tasks := len(s.Tasks())

	s.ResetAchievements()

	assert.Equal(t, Counters{}, s.Counters())
	assert.Equal(t, []string{"lesson-1"}, s.CompletedLessons())
	assert.Len(t, s.Tasks(), tasks)

	s.CompleteFocusSession(25, time.Now())
	assert.Equal(t, 1, s.Counters().FocusStreak)
}
