package debounce

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordingWriter struct {
	mu     sync.Mutex
	writes map[string][]string
	err    error
}

func newRecordingWriter() *recordingWriter {
	return &recordingWriter{writes: make(map[string][]string)}
}

func (w *recordingWriter) Set(key string, value []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.writes[key] = append(w.writes[key], string(value))
	return nil
}

func (w *recordingWriter) get(key string) []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.writes[key]...)
}

func TestDebouncer_SingleCall(t *testing.T) {
	w := newRecordingWriter()
	d := New(w, 20*time.Millisecond, nil)

	d.Schedule("tasks", []byte("[1]"))
	assert.True(t, d.Pending("tasks"))

	assert.Eventually(t, func() bool {
		return len(w.get("tasks")) == 1
	}, time.Second, 5*time.Millisecond)
	assert.False(t, d.Pending("tasks"))
	require.NoError(t, d.Close())
}

func TestDebouncer_RapidCallsCollapse(t *testing.T) {
	w := newRecordingWriter()
	d := New(w, 50*time.Millisecond, nil)

	// Rapid successive calls
	for _, v := range []string{"1", "2", "3", "4", "5"} {
		d.Schedule("focusStreak", []byte(v))
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		return len(w.get("focusStreak")) > 0
	}, time.Second, 5*time.Millisecond)

	// Should only write once with the last value
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, []string{"5"}, w.get("focusStreak"))
	require.NoError(t, d.Close())
}

func TestDebouncer_KeysAreIndependent(t *testing.T) {
	w := newRecordingWriter()
	d := New(w, time.Hour, nil)

	d.Schedule("tasks", []byte("a"))
	d.Schedule("notes", []byte("b"))
	d.Schedule("tasks", []byte("c"))

	require.NoError(t, d.Flush())
	assert.Equal(t, []string{"c"}, w.get("tasks"))
	assert.Equal(t, []string{"b"}, w.get("notes"))
}

func TestDebouncer_FlushWritesPendingImmediately(t *testing.T) {
	w := newRecordingWriter()
	d := New(w, time.Hour, nil)

	d.Schedule("testScores", []byte(`{"t":1}`))
	require.NoError(t, d.Flush())

	assert.Equal(t, []string{`{"t":1}`}, w.get("testScores"))
	assert.False(t, d.Pending("testScores"))

	// Nothing left to write
	require.NoError(t, d.Flush())
	assert.Len(t, w.get("testScores"), 1)
}

func TestDebouncer_CloseDropsLaterValues(t *testing.T) {
	w := newRecordingWriter()
	d := New(w, time.Hour, nil)

	d.Schedule("notes", []byte("before"))
	require.NoError(t, d.Close())
	d.Schedule("notes", []byte("after"))

	assert.Equal(t, []string{"before"}, w.get("notes"))
	assert.False(t, d.Pending("notes"))
}

func TestDebouncer_FlushReportsWriteErrors(t *testing.T) {
	w := newRecordingWriter()
	w.err = errors.New("disk full")
	d := New(w, time.Hour, nil)

	d.Schedule("tasks", []byte("[]"))
	err := d.Flush()
	assert.ErrorContains(t, err, "disk full")
}

func TestDebouncer_DefaultWindow(t *testing.T) {
	d := New(newRecordingWriter(), 0, nil)
	assert.Equal(t, DefaultWindow, d.window)
}

func BenchmarkDebouncer_Schedule(b *testing.B) {
	d := New(newRecordingWriter(), 10*time.Millisecond, nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Schedule("tasks", []byte("[]"))
	}

	// Flush to clean up
	d.Flush()
}
