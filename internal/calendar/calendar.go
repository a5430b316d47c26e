// Package calendar creates reminder events for tasks in an external
// calendar. Calls are best effort: failures are logged and never reach
// the task store.
package calendar

import (
	"context"
	"errors"
	"time"

	gcal "google.golang.org/api/calendar/v3"
)

// EventDuration is the length of every reminder event
const EventDuration = time.Hour

// ErrAccessDenied means the user has not authorized calendar access
var ErrAccessDenied = errors.New("calendar access denied")

// Service is an external calendar that accepts reminder events
type Service interface {
	// RequestAccess reports whether events may be created
	RequestAccess(ctx context.Context) (bool, error)
	// AddEvent creates a one-hour event starting at start
	AddEvent(ctx context.Context, title string, start time.Time) error
}

// NewEvent builds the reminder event for a task due at start
func NewEvent(title string, start time.Time) *gcal.Event {
	return &gcal.Event{
		Summary:     title,
		Description: "Task reminder created by prodo",
		Start: &gcal.EventDateTime{
			DateTime: start.UTC().Format(time.RFC3339),
		},
		End: &gcal.EventDateTime{
			DateTime: start.Add(EventDuration).UTC().Format(time.RFC3339),
		},
		Reminders: &gcal.EventReminders{
			UseDefault: true,
		},
	}
}
