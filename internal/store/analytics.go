package store

import (
	"sort"
	"time"

	"github.com/balkashynov/prodo/internal/models"
)

// Productivity score weights and the values at which each input saturates
const (
	completionWeight = 0.4
	pomodoroWeight   = 0.3
	streakWeight     = 0.3

	pomodoroTarget = 20
	streakTarget   = 7
)

// UsedCategories returns the distinct categories across all tasks, sorted
func (s *Store) UsedCategories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, t := range s.tasks {
		if seen[t.Category] {
			continue
		}
		seen[t.Category] = true
		categories = append(categories, t.Category)
	}
	sort.Strings(categories)
	return categories
}

// CourseProgress is the completed share of the curriculum in [0, 1]
func (s *Store) CourseProgress() float64 {
	return ratio(len(s.completedLessons), len(s.lessons))
}

// CompletionRate is the completed share of all tasks, archived included
func (s *Store) CompletionRate() float64 {
	completed := 0
	for _, t := range s.tasks {
		if t.IsCompleted {
			completed++
		}
	}
	return ratio(completed, len(s.tasks))
}

// ProductivityScore returns the weighted score in [0, 1] for the current state
func (s *Store) ProductivityScore() float64 {
	return ProductivityScore(s.CompletionRate(), s.completedPomodoros, s.focusStreak)
}

// ProductivityScore weighs task completion against pomodoro and streak
// scores; pomodoros saturate at 20 and the streak at 7 days
func ProductivityScore(completionRate float64, pomodoros, streak int) float64 {
	return completionWeight*clamp01(completionRate) +
		pomodoroWeight*ratio(pomodoros, pomodoroTarget) +
		streakWeight*ratio(streak, streakTarget)
}

// Stats aggregates the analytics view
type Stats struct {
	TotalTasks     int
	CompletedTasks int
	ActiveTasks    int
	ArchivedTasks  int
	OverdueTasks   int

	CompletionRate    float64
	ProductivityScore float64
	CourseProgress    float64

	Counters Counters

	CompletedLessons int
	TotalLessons     int
	PassedTests      int
	TotalTests       int

	// Active tasks only
	ByCategory map[string]int
	ByQuadrant map[models.Quadrant]int
}

// Stats computes the analytics aggregate at now
func (s *Store) Stats(now time.Time) Stats {
	st := Stats{
		TotalTasks:        len(s.tasks),
		CompletionRate:    s.CompletionRate(),
		ProductivityScore: s.ProductivityScore(),
		CourseProgress:    s.CourseProgress(),
		Counters:          s.Counters(),
		CompletedLessons:  len(s.completedLessons),
		TotalLessons:      len(s.lessons),
		PassedTests:       len(s.passedTests),
		TotalTests:        len(s.tests),
		ByCategory:        make(map[string]int),
		ByQuadrant:        make(map[models.Quadrant]int),
	}

	for _, t := range s.tasks {
		if t.IsCompleted {
			st.CompletedTasks++
		}
		if t.IsArchived {
			st.ArchivedTasks++
			continue
		}
		st.ActiveTasks++
		if t.IsOverdue(now) {
			st.OverdueTasks++
		}
		st.ByCategory[t.Category]++
		st.ByQuadrant[t.Quadrant]++
	}

	return st
}

// ratio returns n/total clamped to [0, 1]; a zero total gives 0
func ratio(n, total int) float64 {
	if total <= 0 {
		return 0
	}
	return clamp01(float64(n) / float64(total))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
