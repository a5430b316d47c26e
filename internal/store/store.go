// Package store owns every productivity collection (tasks, notes, team,
// learning progress and focus counters), derives the analytics views from
// them, and persists each field to a key-value store through debounced
// writes.
//
// A Store is not safe for concurrent mutation: it is driven from a single
// goroutine. Persistence values are encoded on that goroutine and handed to
// the Sink, so background writers never read store state. The weather
// snapshot is the only field written from other goroutines.
package store

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/balkashynov/prodo/internal/models"
)

// Field names a persisted piece of state; it doubles as the storage key
type Field string

const (
	FieldTasks              Field = "tasks"
	FieldNotes              Field = "notes"
	FieldTeamMembers        Field = "teamMembers"
	FieldCompletedPomodoros Field = "completedPomodoros"
	FieldFocusStreak        Field = "focusStreak"
	FieldTotalFocusMinutes  Field = "totalFocusMinutes"
	FieldLastFocusDay       Field = "lastFocusDay"
	FieldCompletedLessons   Field = "completedLessons"
	FieldPassedTests        Field = "passedTests"
	FieldTestScores         Field = "testScores"
)

// PersistedFields lists every field loaded at startup
var PersistedFields = []Field{
	FieldTasks,
	FieldNotes,
	FieldTeamMembers,
	FieldCompletedPomodoros,
	FieldFocusStreak,
	FieldTotalFocusMinutes,
	FieldLastFocusDay,
	FieldCompletedLessons,
	FieldPassedTests,
	FieldTestScores,
}

// Source reads previously persisted values
type Source interface {
	Get(key string) ([]byte, error)
}

// Sink accepts encoded values for deferred writing
type Sink interface {
	Schedule(key string, value []byte)
}

// Reminder creates calendar entries for tasks; calls must not block
type Reminder interface {
	Remind(title string, at time.Time)
}

// Change is emitted to subscribers after every mutation
type Change struct {
	Field Field
}

// Deps wires a Store to its collaborators. Every field is optional.
type Deps struct {
	Source   Source
	Sink     Sink
	Reminder Reminder
	Logger   *zap.Logger
	Clock    func() time.Time

	// SeedDemo seeds the demo dataset when tasks, notes and team are empty
	SeedDemo bool

	// Lessons and Tests replace the built-in catalog when non-nil
	Lessons []models.Lesson
	Tests   []models.CourseTest
}

// Store is the single owner of the productivity state
type Store struct {
	source   Source
	sink     Sink
	reminder Reminder
	logger   *zap.Logger
	now      func() time.Time

	tasks   []models.Task
	notes   []models.Note
	members []models.TeamMember

	// Static catalog
	lessons []models.Lesson
	tests   []models.CourseTest

	completedLessons []string
	passedTests      []string
	testScores       map[string]int

	completedPomodoros int
	focusStreak        int
	totalFocusMinutes  int
	lastFocusDay       string

	weather atomic.Pointer[models.WeatherSnapshot]

	subscribers map[int]func(Change)
	nextSubID   int
}

// New builds a store, loads every persisted field and seeds the demo
// dataset on first launch
func New(deps Deps) *Store {
	s := &Store{
		source:      deps.Source,
		sink:        deps.Sink,
		reminder:    deps.Reminder,
		logger:      deps.Logger,
		now:         deps.Clock,
		lessons:     deps.Lessons,
		tests:       deps.Tests,
		testScores:  make(map[string]int),
		subscribers: make(map[int]func(Change)),
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.lessons == nil {
		s.lessons = DefaultLessons()
	}
	if s.tests == nil {
		s.tests = DefaultTests()
	}

	s.load()

	if deps.SeedDemo && s.seedIfEmpty() {
		s.logger.Info("seeded demo dataset",
			zap.Int("tasks", len(s.tasks)),
			zap.Int("notes", len(s.notes)),
			zap.Int("members", len(s.members)))
	}

	return s
}

// Subscribe registers fn for every change; the returned func unsubscribes
func (s *Store) Subscribe(fn func(Change)) func() {
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		delete(s.subscribers, id)
	}
}

// changed persists each field and notifies subscribers
func (s *Store) changed(fields ...Field) {
	for _, field := range fields {
		s.persist(field)
		for _, fn := range s.subscribers {
			fn(Change{Field: field})
		}
	}
}

// Weather returns the last published weather snapshot
func (s *Store) Weather() (models.WeatherSnapshot, bool) {
	snap := s.weather.Load()
	if snap == nil {
		return models.WeatherSnapshot{}, false
	}
	return *snap, true
}

// SetWeather publishes a snapshot; safe to call from any goroutine
func (s *Store) SetWeather(snap models.WeatherSnapshot) {
	s.weather.Store(&snap)
}
