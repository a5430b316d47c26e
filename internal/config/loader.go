package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. PRODO_STORAGE_PATH
const EnvPrefix = "PRODO"

// Load reads ~/.prodo/config.yaml over the defaults and applies
// environment overrides. A missing file is not an error.
func Load() (*Config, error) {
	return LoadFile(DefaultPath())
}

// LoadFile loads configuration from path (which may not exist)
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindDefaults(v, cfg)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return cfg, err
			}
		} else if !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// bindDefaults registers every key so AutomaticEnv can override it
// even when the file does not mention it
func bindDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("storage.path", cfg.Storage.Path)
	v.SetDefault("storage.debounce_ms", cfg.Storage.DebounceMS)
	v.SetDefault("storage.seed_demo", cfg.Storage.SeedDemo)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("calendar.enabled", cfg.Calendar.Enabled)
	v.SetDefault("calendar.name", cfg.Calendar.Name)
	v.SetDefault("calendar.credentials_dir", cfg.Calendar.CredentialsDir)
	v.SetDefault("calendar.timeout_seconds", cfg.Calendar.TimeoutSeconds)
	v.SetDefault("weather.enabled", cfg.Weather.Enabled)
	v.SetDefault("weather.share_location", cfg.Weather.ShareLocation)
	v.SetDefault("weather.latitude", cfg.Weather.Latitude)
	v.SetDefault("weather.longitude", cfg.Weather.Longitude)
	v.SetDefault("weather.endpoint", cfg.Weather.Endpoint)
	v.SetDefault("weather.timeout_seconds", cfg.Weather.TimeoutSeconds)
	v.SetDefault("focus.minutes", cfg.Focus.Minutes)
	v.SetDefault("focus.break_minutes", cfg.Focus.BreakMinutes)
}

// HomeDir returns the prodo data directory (~/.prodo)
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".prodo")
}

// DefaultPath returns the path to the config file
func DefaultPath() string {
	dir := HomeDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
