package config

import "time"

// Config represents the full prodo configuration
type Config struct {
	// Durable key-value storage
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`

	// Logging
	Log LogConfig `yaml:"log" mapstructure:"log"`

	// Calendar reminders for new tasks
	Calendar CalendarConfig `yaml:"calendar" mapstructure:"calendar"`

	// Weather hints on the stats screen
	Weather WeatherConfig `yaml:"weather" mapstructure:"weather"`

	// Focus timer
	Focus FocusConfig `yaml:"focus" mapstructure:"focus"`
}

// StorageConfig configures the key-value store
type StorageConfig struct {
	Path       string `yaml:"path" mapstructure:"path"` // empty means ~/.prodo/prodo.db
	DebounceMS int    `yaml:"debounce_ms" mapstructure:"debounce_ms"`
	SeedDemo   bool   `yaml:"seed_demo" mapstructure:"seed_demo"`
}

// Debounce returns the write coalescing window
func (s StorageConfig) Debounce() time.Duration {
	return time.Duration(s.DebounceMS) * time.Millisecond
}

// LogConfig configures the zap logger
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	File  string `yaml:"file" mapstructure:"file"`
}

// CalendarConfig configures Google Calendar reminders
type CalendarConfig struct {
	Enabled        bool   `yaml:"enabled" mapstructure:"enabled"`
	Name           string `yaml:"name" mapstructure:"name"`
	CredentialsDir string `yaml:"credentials_dir" mapstructure:"credentials_dir"` // empty means ~/.config/prodo
	TimeoutSeconds int    `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// Timeout bounds a single reminder call
func (c CalendarConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// WeatherConfig configures the weather lookup
type WeatherConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// Location sharing; without it the lookup is denied and a mock is shown
	ShareLocation  bool    `yaml:"share_location" mapstructure:"share_location"`
	Latitude       float64 `yaml:"latitude" mapstructure:"latitude"`
	Longitude      float64 `yaml:"longitude" mapstructure:"longitude"`
	Endpoint       string  `yaml:"endpoint" mapstructure:"endpoint"`
	TimeoutSeconds int     `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// Timeout bounds a single weather lookup
func (w WeatherConfig) Timeout() time.Duration {
	return time.Duration(w.TimeoutSeconds) * time.Second
}

// FocusConfig configures the Pomodoro timer
type FocusConfig struct {
	Minutes      int `yaml:"minutes" mapstructure:"minutes"`
	BreakMinutes int `yaml:"break_minutes" mapstructure:"break_minutes"`
}
