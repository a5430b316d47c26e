package calendar

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// PrimaryCalendar is the user's default calendar
const PrimaryCalendar = "primary"

// Google adds reminder events to a Google calendar. Access is resolved
// lazily on the first RequestAccess and kept for the process lifetime.
type Google struct {
	auth         *Auth
	calendarName string
	logger       *zap.Logger

	mu         sync.Mutex
	srv        *gcal.Service
	calendarID string
}

// NewGoogle targets the calendar whose summary is calendarName; empty or
// "primary" selects the primary calendar
func NewGoogle(auth *Auth, calendarName string, logger *zap.Logger) *Google {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Google{auth: auth, calendarName: calendarName, logger: logger}
}

// NewGoogleWithService wraps an already authorized service
func NewGoogleWithService(srv *gcal.Service, calendarID string) *Google {
	return &Google{srv: srv, calendarID: calendarID, logger: zap.NewNop()}
}

// RequestAccess authorizes with the cached token. A user who never logged
// in is reported as not granted rather than as an error.
func (g *Google) RequestAccess(ctx context.Context) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.srv != nil {
		return true, nil
	}
	if g.auth == nil {
		return false, nil
	}

	client, err := g.auth.Client(ctx)
	if errors.Is(err, ErrAccessDenied) {
		g.logger.Debug("calendar not authorized", zap.Error(err))
		return false, nil
	}
	if err != nil {
		return false, err
	}

	srv, err := gcal.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return false, fmt.Errorf("failed to create calendar service: %w", err)
	}

	id, err := resolveCalendarID(ctx, srv, g.calendarName)
	if err != nil {
		return false, err
	}

	g.srv = srv
	g.calendarID = id
	return true, nil
}

// AddEvent inserts the reminder event
func (g *Google) AddEvent(ctx context.Context, title string, start time.Time) error {
	g.mu.Lock()
	srv, id := g.srv, g.calendarID
	g.mu.Unlock()

	if srv == nil {
		return ErrAccessDenied
	}

	if _, err := srv.Events.Insert(id, NewEvent(title, start)).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

func resolveCalendarID(ctx context.Context, srv *gcal.Service, name string) (string, error) {
	if name == "" || name == PrimaryCalendar {
		return PrimaryCalendar, nil
	}

	list, err := srv.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to list calendars: %w", err)
	}
	for _, item := range list.Items {
		if item.Summary == name {
			return item.Id, nil
		}
	}
	return "", fmt.Errorf("calendar %q not found", name)
}
