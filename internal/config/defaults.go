package config

import (
	"os"
	"path/filepath"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			DebounceMS: 500,
			SeedDemo:   true,
		},
		Log: LogConfig{
			Level: "warn",
		},
		Calendar: CalendarConfig{
			Name:           "primary",
			TimeoutSeconds: 15,
		},
		Weather: WeatherConfig{
			Enabled:        true,
			Endpoint:       "https://api.open-meteo.com/v1/forecast",
			TimeoutSeconds: 5,
		},
		Focus: FocusConfig{
			Minutes:      25,
			BreakMinutes: 5,
		},
	}
}

// WriteDefault writes the default configuration to a file
func WriteDefault(path string) error {
	content := `# prodo configuration

# Durable key-value storage
storage:
  path: ""          # defaults to ~/.prodo/prodo.db
  debounce_ms: 500  # rapid changes to one field collapse into a single write
  seed_demo: true   # seed demo data on first launch

log:
  level: warn       # debug, info, warn, error
  file: ""          # defaults to stderr

# Google Calendar reminders (run 'prodo calendar login' first)
calendar:
  enabled: false
  name: primary
  credentials_dir: ""  # defaults to ~/.config/prodo
  timeout_seconds: 15

# Weather hints on 'prodo stats'
weather:
  enabled: true
  share_location: false  # when false a mock snapshot is shown
  latitude: 0
  longitude: 0
  endpoint: https://api.open-meteo.com/v1/forecast
  timeout_seconds: 5

# Pomodoro timer
focus:
  minutes: 25
  break_minutes: 5
`
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}
