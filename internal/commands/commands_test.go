package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/prodo/internal/models"
	"github.com/balkashynov/prodo/internal/store"
)

var idPattern = regexp.MustCompile(`ID: (\S+)`)

// harness runs the CLI against a temporary config and database, one
// fresh app per invocation so every run reloads from disk
type harness struct {
	t       *testing.T
	cfgPath string
	dbPath  string
	now     time.Time
}

func newHarness(t *testing.T, seedDemo bool) *harness {
	t.Helper()
	dir := t.TempDir()
	h := &harness{
		t:       t,
		cfgPath: filepath.Join(dir, "config.yaml"),
		dbPath:  filepath.Join(dir, "prodo.db"),
		now:     time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}

	cfg := `storage:
  debounce_ms: 10
  seed_demo: ` + strconv.FormatBool(seedDemo) + `
log:
  level: error
calendar:
  enabled: false
weather:
  enabled: true
  share_location: false
`
	require.NoError(t, os.WriteFile(h.cfgPath, []byte(cfg), 0644))
	return h
}

func (h *harness) runWithInput(input string, args ...string) (string, error) {
	h.t.Helper()
	a := newApp()
	a.now = func() time.Time { return h.now }

	root := newRootCmd(a)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(input))
	root.SetArgs(append([]string{"--config=" + h.cfgPath, "--db=" + h.dbPath}, args...))

	err := root.Execute()
	require.NoError(h.t, a.close())
	return out.String(), err
}

func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	return h.runWithInput("", args...)
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run(args...)
	require.NoError(h.t, err, out)
	return out
}

func (h *harness) tasks(args ...string) []models.Task {
	h.t.Helper()
	out := h.mustRun(append([]string{"ls", "--json"}, args...)...)
	var tasks []models.Task
	require.NoError(h.t, json.Unmarshal([]byte(out), &tasks), out)
	return tasks
}

func extractID(t *testing.T, out string) string {
	t.Helper()
	m := idPattern.FindStringSubmatch(out)
	require.Len(t, m, 2, "no id in %q", out)
	return m[1]
}

func TestAddParsesTitleAndPersists(t *testing.T) {
	h := newHarness(t, false)

	out := h.mustRun("add", "--no-ui", "Buy milk @shopping +low !schedule due:tomorrow")
	assert.Contains(t, out, `New task "Buy milk" added`)

	tasks := h.tasks()
	require.Len(t, tasks, 1)
	task := tasks[0]
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, "Shopping", task.Category)
	assert.Equal(t, models.PriorityLow, task.Priority)
	assert.Equal(t, models.QuadrantNotUrgentImportant, task.Quadrant)
	assert.Equal(t, 15, task.DueDate.Day())
	assert.True(t, strings.HasPrefix(task.ID, extractID(t, out)))

	out = h.mustRun("ls")
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "1 task(s)")
}

func TestAddFlagsOverrideParsedValues(t *testing.T) {
	h := newHarness(t, false)

	h.mustRun("add", "--no-ui", "-p", "high", "-q", "delegate", "-c", "health", "Call the dentist +low")

	tasks := h.tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Call the dentist", tasks[0].Title)
	assert.Equal(t, models.PriorityHigh, tasks[0].Priority)
	assert.Equal(t, models.QuadrantUrgentNotImportant, tasks[0].Quadrant)
	assert.Equal(t, "Health", tasks[0].Category)
}

func TestAddWithoutUIRejectsBadInput(t *testing.T) {
	h := newHarness(t, false)

	_, err := h.run("add", "--no-ui")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task title is required")

	_, err = h.run("add", "--no-ui", "Write report +urgent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not parse task")

	assert.Empty(t, h.tasks())
}

func TestTaskLifecycle(t *testing.T) {
	h := newHarness(t, false)

	id := extractID(t, h.mustRun("add", "--no-ui", "Write report"))
	h.mustRun("add", "--no-ui", "Plan sprint")

	out := h.mustRun("done", id)
	assert.Contains(t, out, "as done: Write report")
	out = h.mustRun("done", id)
	assert.Contains(t, out, "back to todo: Write report")
	h.mustRun("done", id)

	out = h.mustRun("archive", id)
	assert.Contains(t, out, "Archived task")
	assert.Len(t, h.tasks(), 1)
	archived := h.tasks("--archived")
	require.Len(t, archived, 1)
	assert.Equal(t, "Write report", archived[0].Title)
	assert.True(t, archived[0].IsCompleted)
	assert.Len(t, h.tasks("--all"), 2)

	out = h.mustRun("archive", id)
	assert.Contains(t, out, "already archived")

	h.mustRun("unarchive", id)
	assert.Len(t, h.tasks(), 2)

	out = h.mustRun("move", id, "eliminate")
	assert.Contains(t, out, "priority low")
	moved := h.tasks("-q", "eliminate")
	require.Len(t, moved, 1)
	assert.Equal(t, models.PriorityLow, moved[0].Priority)

	h.mustRun("edit", id, "--title", "Write final report", "-p", "high")
	edited := h.tasks("-q", "eliminate")
	require.Len(t, edited, 1)
	assert.Equal(t, "Write final report", edited[0].Title)
	assert.Equal(t, models.PriorityHigh, edited[0].Priority)
	assert.Equal(t, models.QuadrantNotUrgentNotImportant, edited[0].Quadrant)

	out = h.mustRun("rm", id)
	assert.Contains(t, out, "Deleted task")
	assert.Len(t, h.tasks("--all"), 1)

	_, err := h.run("clear")
	require.Error(t, err)
	assert.Len(t, h.tasks(), 1)

	h.mustRun("clear", "--force")
	assert.Empty(t, h.tasks("--all"))
	assert.Contains(t, h.mustRun("ls"), "No tasks found.")
}

func TestOverdueFilter(t *testing.T) {
	h := newHarness(t, false)

	h.mustRun("add", "--no-ui", "--due", "14/03/2026", "Pay rent")
	h.mustRun("add", "--no-ui", "--due", "3 days", "Water plants")

	h.now = h.now.Add(48 * time.Hour)
	overdue := h.tasks("--overdue")
	require.Len(t, overdue, 1)
	assert.Equal(t, "Pay rent", overdue[0].Title)
}

func TestShareWithTeamMembers(t *testing.T) {
	h := newHarness(t, false)

	out := h.mustRun("team", "add", "Ada Lovelace", "-e", "ada@example.com", "-r", "admin", "--online")
	assert.Contains(t, out, "Added Ada Lovelace (AL) as admin")
	h.mustRun("team", "add", "Grace Hopper", "-e", "grace@example.com")

	_, err := h.run("team", "add", "Nobody", "-r", "boss")
	require.Error(t, err)

	out = h.mustRun("team", "ls")
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "Grace Hopper")
	out = h.mustRun("team", "ls", "--online")
	assert.Contains(t, out, "Ada Lovelace")
	assert.NotContains(t, out, "Grace Hopper")

	id := extractID(t, h.mustRun("add", "--no-ui", "Review design"))
	out = h.mustRun("share", id, "ADA@example.com", "grace@example.com")
	assert.Contains(t, out, "Ada Lovelace, Grace Hopper")

	tasks := h.tasks()
	require.Len(t, tasks, 1)
	assert.Len(t, tasks[0].SharedWith, 2)
	assert.Contains(t, h.mustRun("ls"), "👥 AL GH")

	out = h.mustRun("share", id)
	assert.Contains(t, out, "no longer shared")
	assert.Empty(t, h.tasks()[0].SharedWith)

	_, err = h.run("share", id, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestNotesAndSearch(t *testing.T) {
	h := newHarness(t, false)

	id := extractID(t, h.mustRun("note", "add", "Meeting ideas", "-m", "Start with the roadmap", "-c", "personal"))
	h.mustRun("add", "--no-ui", "Book meeting room")

	out := h.mustRun("note", "ls")
	assert.Contains(t, out, "Meeting ideas")
	assert.Contains(t, out, "@Personal")
	assert.Contains(t, out, "Start with the roadmap")

	out = h.mustRun("search", "meeting")
	assert.Contains(t, out, "Tasks (1)")
	assert.Contains(t, out, "Notes (1)")

	out = h.mustRun("search", "roadmap")
	assert.Contains(t, out, "Notes (1)")

	out = h.mustRun("search", "zebra")
	assert.Contains(t, out, `No results for "zebra"`)

	_, err := h.run("note", "edit", id)
	require.Error(t, err)
	h.mustRun("note", "edit", id, "-t", "Standup ideas")
	out = h.mustRun("note", "ls")
	assert.Contains(t, out, "Standup ideas")
	assert.Contains(t, out, "Start with the roadmap")

	h.mustRun("note", "add", "Groceries")
	h.mustRun("note", "rm", id)
	out = h.mustRun("note", "ls")
	assert.NotContains(t, out, "Standup ideas")
	assert.Contains(t, out, "Groceries")

	_, err = h.run("note", "clear")
	require.Error(t, err)
	h.mustRun("note", "clear", "--force")
	assert.Contains(t, h.mustRun("note", "ls"), "No notes yet.")
}

func TestLearningUnlocksInOrder(t *testing.T) {
	h := newHarness(t, false)

	_, err := h.run("learn", "complete", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locked")

	_, err = h.run("learn", "pass", "test-1", "90")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locked")

	out := h.mustRun("learn", "show", "1")
	assert.Contains(t, out, "prodo learn complete lesson-1")

	h.mustRun("learn", "complete", "lesson-1")
	out = h.mustRun("learn", "complete", "lesson-1")
	assert.Contains(t, out, "already completed")
	h.mustRun("learn", "complete", "2")

	out = h.mustRun("learn", "lessons")
	assert.Contains(t, out, "✅ 1.")
	assert.Contains(t, out, "✅ 2.")
	assert.Contains(t, out, "📖 3.")

	out = h.mustRun("learn", "pass", "1", "60")
	assert.Contains(t, out, "best 60%")
	out = h.mustRun("learn", "pass", "test-1", "85")
	assert.Contains(t, out, "best 85%")
	out = h.mustRun("learn", "pass", "test-1", "40")
	assert.Contains(t, out, "best 85%")

	_, err = h.run("learn", "pass", "test-1", "101")
	require.Error(t, err)

	out = h.mustRun("learn", "tests")
	assert.Contains(t, out, "Prioritization Basics  ✅ passed  best 85%")
}

func TestLearnTakeReadsAnswers(t *testing.T) {
	h := newHarness(t, false)
	h.mustRun("learn", "complete", "1")
	h.mustRun("learn", "complete", "2")

	out, err := h.runWithInput("1\n3\n2\n", "learn", "take", "test-1")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Passed with 100%")

	out, err = h.runWithInput("2\n", "learn", "take", "test-1")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Scored 0%")

	out = h.mustRun("learn", "tests")
	assert.Contains(t, out, "best 100%")
}

func TestFocusRecordAndStats(t *testing.T) {
	h := newHarness(t, false)

	_, err := h.run("focus", "--record", "0")
	require.Error(t, err)

	out := h.mustRun("focus", "--record", "25")
	assert.Contains(t, out, "Streak 1 day(s) · 1 pomodoros")

	h.now = h.now.Add(24 * time.Hour)
	out = h.mustRun("focus", "--record", "50")
	assert.Contains(t, out, "Streak 2 day(s) · 2 pomodoros")

	h.mustRun("add", "--no-ui", "Write report")

	out = h.mustRun("stats", "--json")
	var report struct {
		Stats   store.Stats             `json:"stats"`
		Weather *models.WeatherSnapshot `json:"weather"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report), out)
	assert.Equal(t, 2, report.Stats.Counters.CompletedPomodoros)
	assert.Equal(t, 75, report.Stats.Counters.TotalFocusMinutes)
	assert.Equal(t, 1, report.Stats.TotalTasks)
	require.NotNil(t, report.Weather)
	assert.True(t, report.Weather.Mock)

	out = h.mustRun("stats")
	assert.Contains(t, out, "(sample)")

	out = h.mustRun("achievements")
	assert.Contains(t, out, "Focus Beginner")

	_, err = h.run("reset")
	require.Error(t, err)

	h.mustRun("reset", "--force")
	out = h.mustRun("stats", "--json")
	require.NoError(t, json.Unmarshal([]byte(out), &report), out)
	assert.Equal(t, store.Counters{}, report.Stats.Counters)
	assert.Equal(t, 1, report.Stats.TotalTasks)
}

func TestDemoSeedOnFirstRun(t *testing.T) {
	h := newHarness(t, true)

	seeded := h.tasks("--all")
	require.NotEmpty(t, seeded)
	assert.Contains(t, h.mustRun("team", "ls"), "online")

	// A second run loads what the first one saved instead of reseeding
	assert.Len(t, h.tasks("--all"), len(seeded))
}

func TestResolveAmbiguousPrefix(t *testing.T) {
	tasks := []models.Task{
		{ID: "abc123", Title: "one"},
		{ID: "abc456", Title: "two"},
	}
	id := func(t models.Task) string { return t.ID }

	got, err := resolve("task", "abc4", tasks, id)
	require.NoError(t, err)
	assert.Equal(t, "two", got.Title)

	got, err = resolve("task", "abc123", tasks, id)
	require.NoError(t, err)
	assert.Equal(t, "one", got.Title)

	_, err = resolve("task", "abc", tasks, id)
	assert.ErrorIs(t, err, ErrAmbiguous)

	_, err = resolve("task", "zzz", tasks, id)
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = resolve("task", " ", tasks, id)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoMatch)
}

func TestConfigInitAndShow(t *testing.T) {
	h := newHarness(t, false)

	out := h.mustRun("config", "show")
	assert.Contains(t, out, "debounce_ms: 10")
	assert.Contains(t, out, "share_location: false")

	_, err := h.run("config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	h.mustRun("config", "init", "--force")
	out = h.mustRun("config", "show")
	assert.NotContains(t, out, "debounce_ms: 10")
}

func TestVersionAndHelp(t *testing.T) {
	h := newHarness(t, false)

	assert.Contains(t, h.mustRun("version"), "prodo dev")
	assert.Contains(t, h.mustRun("help"), "tasks, focus and learning from the terminal")
	assert.Contains(t, h.mustRun("help", "focus"), "--record")

	_, err := os.Stat(h.dbPath)
	assert.True(t, os.IsNotExist(err), "commands that skip the store must not create the database")
}
