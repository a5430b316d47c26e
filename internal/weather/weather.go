// Package weather looks up the current conditions for contextual focus
// hints. Lookups never fail from the caller's point of view: a denied
// location or a failed request yields a locally generated snapshot.
package weather

import (
	"context"
	"errors"

	"github.com/balkashynov/prodo/internal/models"
)

// ErrPermissionDenied means the user has not shared a location
var ErrPermissionDenied = errors.New("location permission denied")

// Location is a point on the globe in decimal degrees
type Location struct {
	Latitude  float64
	Longitude float64
}

// Locator resolves the user's location
type Locator interface {
	Locate(ctx context.Context) (Location, error)
}

// Provider returns current conditions at a location
type Provider interface {
	Current(ctx context.Context, loc Location) (models.WeatherSnapshot, error)
}

// StaticLocator returns a configured location once sharing is allowed
type StaticLocator struct {
	Allowed  bool
	Location Location
}

// Locate returns the configured location or ErrPermissionDenied
func (l StaticLocator) Locate(context.Context) (Location, error) {
	if !l.Allowed {
		return Location{}, ErrPermissionDenied
	}
	return l.Location, nil
}
