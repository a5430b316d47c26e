package weather

import (
	"math/rand/v2"
	"time"

	"github.com/balkashynov/prodo/internal/models"
)

var mockConditions = []struct {
	label string
	icon  string
}{
	{"Clear", "☀️"},
	{"Partly Cloudy", "⛅"},
	{"Cloudy", "☁️"},
	{"Rain", "🌧"},
}

// Mock generates a plausible mild-weather snapshot flagged as mock
func Mock(rng *rand.Rand, now time.Time) models.WeatherSnapshot {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(now.UnixNano()), 0))
	}
	c := mockConditions[rng.IntN(len(mockConditions))]
	return models.WeatherSnapshot{
		Temperature: float64(12 + rng.IntN(17)),
		Condition:   c.label,
		Icon:        c.icon,
		Humidity:    30 + rng.IntN(51),
		WindSpeed:   float64(rng.IntN(26)),
		FetchedAt:   now,
		Mock:        true,
	}
}
