package calendar

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds one reminder, access request included
const DefaultTimeout = 15 * time.Second

// Reminders dispatches calendar events in the background so task
// creation never waits on the network
type Reminders struct {
	svc     Service
	timeout time.Duration
	logger  *zap.Logger
	wg      sync.WaitGroup
}

// NewReminders wraps svc; a non-positive timeout uses DefaultTimeout
func NewReminders(svc Service, timeout time.Duration, logger *zap.Logger) *Reminders {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reminders{svc: svc, timeout: timeout, logger: logger}
}

// Remind creates an event for title at at without blocking the caller
func (r *Reminders) Remind(title string, at time.Time) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.add(title, at)
	}()
}

func (r *Reminders) add(title string, at time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	granted, err := r.svc.RequestAccess(ctx)
	if err != nil {
		r.logger.Warn("calendar access request failed", zap.Error(err))
		return
	}
	if !granted {
		r.logger.Info("calendar access not granted, reminder skipped", zap.String("title", title))
		return
	}

	if err := r.svc.AddEvent(ctx, title, at); err != nil {
		r.logger.Warn("failed to add calendar event", zap.String("title", title), zap.Error(err))
		return
	}
	r.logger.Debug("calendar event added", zap.String("title", title), zap.Time("start", at))
}

// Wait blocks until every dispatched reminder has finished
func (r *Reminders) Wait() {
	r.wg.Wait()
}
