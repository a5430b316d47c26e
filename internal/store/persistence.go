package store

import (
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/balkashynov/prodo/internal/db"
	"github.com/balkashynov/prodo/internal/models"
)

// load reads every field independently; missing or corrupt values keep
// their zero default
func (s *Store) load() {
	s.tasks = loadValue(s, FieldTasks, []models.Task(nil))
	s.notes = loadValue(s, FieldNotes, []models.Note(nil))
	s.members = loadValue(s, FieldTeamMembers, []models.TeamMember(nil))
	s.completedPomodoros = loadValue(s, FieldCompletedPomodoros, 0)
	s.focusStreak = loadValue(s, FieldFocusStreak, 0)
	s.totalFocusMinutes = loadValue(s, FieldTotalFocusMinutes, 0)
	s.lastFocusDay = loadValue(s, FieldLastFocusDay, "")
	s.completedLessons = dedupe(loadValue(s, FieldCompletedLessons, []string(nil)))
	s.passedTests = dedupe(loadValue(s, FieldPassedTests, []string(nil)))

	s.testScores = loadValue(s, FieldTestScores, map[string]int(nil))
	if s.testScores == nil {
		s.testScores = make(map[string]int)
	}
}

func loadValue[T any](s *Store, field Field, fallback T) T {
	if s.source == nil {
		return fallback
	}

	data, err := s.source.Get(string(field))
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			s.logger.Warn("failed to load field, using default", zap.String("field", string(field)), zap.Error(err))
		}
		return fallback
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		s.logger.Warn("corrupt field, using default", zap.String("field", string(field)), zap.Error(err))
		return fallback
	}
	return value
}

// persist encodes the current value of field and hands it to the sink
func (s *Store) persist(field Field) {
	if s.sink == nil {
		return
	}

	data, err := json.Marshal(s.fieldValue(field))
	if err != nil {
		s.logger.Warn("failed to encode field, write skipped", zap.String("field", string(field)), zap.Error(err))
		return
	}
	s.sink.Schedule(string(field), data)
}

func (s *Store) fieldValue(field Field) any {
	switch field {
	case FieldTasks:
		return s.tasks
	case FieldNotes:
		return s.notes
	case FieldTeamMembers:
		return s.members
	case FieldCompletedPomodoros:
		return s.completedPomodoros
	case FieldFocusStreak:
		return s.focusStreak
	case FieldTotalFocusMinutes:
		return s.totalFocusMinutes
	case FieldLastFocusDay:
		return s.lastFocusDay
	case FieldCompletedLessons:
		return s.completedLessons
	case FieldPassedTests:
		return s.passedTests
	case FieldTestScores:
		return s.testScores
	default:
		return nil
	}
}

// dedupe drops repeated ids while keeping first-seen order
func dedupe(ids []string) []string {
	if len(ids) == 0 {
		return ids
	}
	seen := make(map[string]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
