package store

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/balkashynov/prodo/internal/db"
	"github.com/balkashynov/prodo/internal/debounce"
	"github.com/balkashynov/prodo/internal/models"
)

func openKV(t *testing.T) *db.DB {
	t.Helper()
	kv, err := db.Open(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

// reopen flushes pending writes and builds a second store over the same data
func reopen(t *testing.T, kv *db.DB, deb *debounce.Debouncer) *Store {
	t.Helper()
	require.NoError(t, deb.Close())
	return New(Deps{Source: kv, Clock: func() time.Time { return fixedNow }})
}

func TestRoundTripNonEmpty(t *testing.T) {
	kv := openKV(t)
	deb := debounce.New(kv, time.Hour, zap.NewNop())
	s := New(Deps{Source: kv, Sink: deb, Clock: func() time.Time { return fixedNow }})

	alex := s.AddTeamMember(models.TeamMember{Name: "Alex Morgan", Email: "alex@example.com", Role: models.RoleOwner, IsOnline: true})
	task := s.AddTask(NewTask{Title: "Write report", Priority: models.PriorityHigh, Category: "Work"})
	s.AddTask(NewTask{Title: "Buy milk", Category: "Shopping", Quadrant: models.QuadrantUrgentNotImportant})
	s.ShareTask(task.ID, []string{alex.ID})
	s.ArchiveTask(task.ID)
	s.AddNote("Ideas", "Ship it", "Work")
	s.CompleteLesson("lesson-1")
	s.PassTest("test-1", 67)
	s.PassTest("test-1", 100)
	s.CompleteFocusSession(25, fixedNow)

	loaded := reopen(t, kv, deb)

	if diff := cmp.Diff(s.Tasks(), loaded.Tasks()); diff != "" {
		t.Errorf("tasks mismatch (-saved +loaded):\n%s", diff)
	}
	if diff := cmp.Diff(s.Notes(), loaded.Notes()); diff != "" {
		t.Errorf("notes mismatch (-saved +loaded):\n%s", diff)
	}
	if diff := cmp.Diff(s.TeamMembers(), loaded.TeamMembers()); diff != "" {
		t.Errorf("members mismatch (-saved +loaded):\n%s", diff)
	}
	if diff := cmp.Diff(s.TestScores(), loaded.TestScores()); diff != "" {
		t.Errorf("scores mismatch (-saved +loaded):\n%s", diff)
	}
	assert.Equal(t, s.Counters(), loaded.Counters())
	assert.Equal(t, []string{"lesson-1"}, loaded.CompletedLessons())
	assert.Equal(t, []string{"test-1"}, loaded.PassedTests())
}

func TestRoundTripEmpty(t *testing.T) {
	kv := openKV(t)
	deb := debounce.New(kv, time.Hour, zap.NewNop())
	s := New(Deps{Source: kv, Sink: deb})

	s.AddTask(NewTask{Title: "temporary"})
	s.AddNote("temporary", "", "Work")
	s.ClearAllTasks()
	s.ClearAllNotes()

	loaded := reopen(t, kv, deb)

	opts := cmpopts.EquateEmpty()
	if diff := cmp.Diff(s.Tasks(), loaded.Tasks(), opts); diff != "" {
		t.Errorf("tasks mismatch (-saved +loaded):\n%s", diff)
	}
	if diff := cmp.Diff(s.Notes(), loaded.Notes(), opts); diff != "" {
		t.Errorf("notes mismatch (-saved +loaded):\n%s", diff)
	}
	if diff := cmp.Diff(s.TeamMembers(), loaded.TeamMembers(), opts); diff != "" {
		t.Errorf("members mismatch (-saved +loaded):\n%s", diff)
	}
	if diff := cmp.Diff(s.TestScores(), loaded.TestScores(), opts); diff != "" {
		t.Errorf("scores mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestBurstCollapsesIntoOneWrite(t *testing.T) {
	kv := openKV(t)
	deb := debounce.New(kv, time.Hour, zap.NewNop())
	s := New(Deps{Source: kv, Sink: deb})

	task := s.AddTask(NewTask{Title: "burst"})
	for range 10 {
		s.ToggleTask(task.ID)
	}
	assert.True(t, deb.Pending(string(FieldTasks)))

	_, err := kv.Get(string(FieldTasks))
	assert.ErrorIs(t, err, db.ErrNotFound)

	require.NoError(t, deb.Flush())
	loaded := New(Deps{Source: kv})
	got, ok := loaded.Task(task.ID)
	require.True(t, ok)
	assert.False(t, got.IsCompleted)
	require.NoError(t, deb.Close())
}

func TestCorruptFieldFallsBack(t *testing.T) {
	kv := openKV(t)
	require.NoError(t, kv.Set(string(FieldTasks), []byte("{not json")))
	require.NoError(t, kv.Set(string(FieldTestScores), []byte(`["wrong shape"]`)))
	require.NoError(t, kv.Set(string(FieldCompletedPomodoros), []byte("7")))
	require.NoError(t, kv.Set(string(FieldNotes), []byte(`[{"id":"n1","title":"kept"}]`)))

	s := New(Deps{Source: kv})

	assert.Empty(t, s.Tasks())
	assert.Empty(t, s.TestScores())
	assert.Equal(t, 7, s.Counters().CompletedPomodoros)
	require.Len(t, s.Notes(), 1)
	assert.Equal(t, "kept", s.Notes()[0].Title)

	// The score map must still accept writes after a corrupt load
	s.PassTest("test-1", 80)
	score, ok := s.BestScore("test-1")
	assert.True(t, ok)
	assert.Equal(t, 80, score)
}

func TestLoadDedupesSets(t *testing.T) {
	kv := openKV(t)
	require.NoError(t, kv.Set(string(FieldCompletedLessons), []byte(`["lesson-1","lesson-2","lesson-1"]`)))

	s := New(Deps{Source: kv})
	assert.Equal(t, []string{"lesson-1", "lesson-2"}, s.CompletedLessons())
}
