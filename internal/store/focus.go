package store

import "time"

const dayLayout = "2006-01-02"

// Counters is a snapshot of the focus statistics
type Counters struct {
	CompletedPomodoros int
	FocusStreak        int
	TotalFocusMinutes  int
}

// CompleteFocusSession records a finished focus interval of minutes.
// The streak counts consecutive local days with at least one session:
// another session on the same day leaves it alone, a session on the day
// after the last one extends it, and anything else restarts it at 1.
func (s *Store) CompleteFocusSession(minutes int, now time.Time) {
	if minutes < 0 {
		minutes = 0
	}

	today := now.Format(dayLayout)
	switch s.lastFocusDay {
	case today:
		if s.focusStreak == 0 {
			s.focusStreak = 1
		}
	case now.AddDate(0, 0, -1).Format(dayLayout):
		s.focusStreak++
	default:
		s.focusStreak = 1
	}

	s.completedPomodoros++
	s.totalFocusMinutes += minutes
	s.lastFocusDay = today

	s.changed(FieldCompletedPomodoros, FieldTotalFocusMinutes, FieldFocusStreak, FieldLastFocusDay)
}

// Counters returns the current focus statistics
func (s *Store) Counters() Counters {
	return Counters{
		CompletedPomodoros: s.completedPomodoros,
		FocusStreak:        s.focusStreak,
		TotalFocusMinutes:  s.totalFocusMinutes,
	}
}

// ResetStatistics zeroes the focus counters. Learning progress, tasks and
// notes are kept.
func (s *Store) ResetStatistics() {
	s.completedPomodoros = 0
	s.focusStreak = 0
	s.totalFocusMinutes = 0
	s.lastFocusDay = ""
	s.changed(FieldCompletedPomodoros, FieldFocusStreak, FieldTotalFocusMinutes, FieldLastFocusDay)
}

// ResetAchievements is the same operation as ResetStatistics; the
// achievements are derived from the counters it clears.
func (s *Store) ResetAchievements() {
	s.ResetStatistics()
}
