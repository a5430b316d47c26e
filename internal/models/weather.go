package models

import "time"

// WeatherSnapshot is the ambient condition shown next to analytics
type WeatherSnapshot struct {
	Temperature float64   `json:"temperature"` // celsius
	Condition   string    `json:"condition"`
	Icon        string    `json:"icon"`
	Humidity    int       `json:"humidity"`  // percent
	WindSpeed   float64   `json:"windSpeed"` // km/h
	FetchedAt   time.Time `json:"fetchedAt"`
	Mock        bool      `json:"mock"`
}
