// Package debounce coalesces rapid writes of the same key into a single
// deferred write of the latest value.
package debounce

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultWindow is the quiet period before a pending value is written
const DefaultWindow = 500 * time.Millisecond

// Writer receives the coalesced values
type Writer interface {
	Set(key string, value []byte) error
}

type pendingWrite struct {
	value []byte
	timer *time.Timer
}

// Debouncer schedules one timer per key. Rapid successive calls for the
// same key reset that key's timer and replace its value.
type Debouncer struct {
	mu       sync.Mutex
	writeMu  sync.Mutex
	window   time.Duration
	writer   Writer
	logger   *zap.Logger
	pending  map[string]*pendingWrite
	inFlight sync.WaitGroup
	closed   bool
}

// New creates a debouncer writing to w after window of quiet per key
func New(w Writer, window time.Duration, logger *zap.Logger) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Debouncer{
		window:  window,
		writer:  w,
		logger:  logger,
		pending: make(map[string]*pendingWrite),
	}
}

// Schedule replaces the pending value for key and restarts its timer.
// Values scheduled after Close are dropped.
func (d *Debouncer) Schedule(key string, value []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		d.logger.Debug("write dropped after close", zap.String("key", key))
		return
	}

	// Cancel existing timer if any
	if prev, ok := d.pending[key]; ok && prev.timer.Stop() {
		d.inFlight.Done()
	}

	p := &pendingWrite{value: value}
	d.pending[key] = p
	d.inFlight.Add(1)
	p.timer = time.AfterFunc(d.window, func() {
		defer d.inFlight.Done()
		d.fire(key, p)
	})
}

// fire writes p if it is still the latest value for key
func (d *Debouncer) fire(key string, p *pendingWrite) {
	d.mu.Lock()
	if d.pending[key] != p {
		// Superseded or already taken by Flush
		d.mu.Unlock()
		return
	}
	delete(d.pending, key)
	d.mu.Unlock()

	if err := d.write(key, p.value); err != nil {
		d.logger.Warn("debounced write failed", zap.String("key", key), zap.Error(err))
	}
}

func (d *Debouncer) write(key string, value []byte) error {
	d.writeMu.Lock()
	defer d.writeMu.Unlock()
	return d.writer.Set(key, value)
}

// Pending reports whether key has a value waiting to be written
func (d *Debouncer) Pending(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.pending[key]
	return ok
}

// Flush writes every pending value now and waits for timers that already
// fired. It returns the joined write errors.
func (d *Debouncer) Flush() error {
	d.mu.Lock()
	taken := make(map[string][]byte, len(d.pending))
	for key, p := range d.pending {
		if p.timer.Stop() {
			d.inFlight.Done()
		}
		taken[key] = p.value
		delete(d.pending, key)
	}
	d.mu.Unlock()

	var errs []error
	for key, value := range taken {
		if err := d.write(key, value); err != nil {
			errs = append(errs, err)
		}
	}

	d.inFlight.Wait()
	return errors.Join(errs...)
}

// Close stops accepting new values and flushes the pending ones
func (d *Debouncer) Close() error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	return d.Flush()
}
