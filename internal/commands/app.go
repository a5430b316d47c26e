package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/balkashynov/prodo/internal/calendar"
	"github.com/balkashynov/prodo/internal/config"
	"github.com/balkashynov/prodo/internal/db"
	"github.com/balkashynov/prodo/internal/debounce"
	"github.com/balkashynov/prodo/internal/logging"
	"github.com/balkashynov/prodo/internal/store"
	"github.com/balkashynov/prodo/internal/weather"
)

// app holds everything a command run opens. Commands receive it
// explicitly; nothing here is global.
type app struct {
	// Flags
	configPath string
	dbPath     string
	verbose    bool

	now func() time.Time

	cfg       *config.Config
	logger    *zap.Logger
	db        *db.DB
	writes    *debounce.Debouncer
	reminders *calendar.Reminders
	weather   *weather.Service
	store     *store.Store

	closed bool
}

func newApp() *app {
	return &app{now: time.Now}
}

// loadConfig reads the config file and builds the logger
func (a *app) loadConfig() error {
	path := a.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	logger, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		Verbose: a.verbose,
		File:    cfg.Log.File,
	})
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

// openStore opens the database and wires the store to its collaborators
func (a *app) openStore() error {
	path := a.dbPath
	if path == "" {
		path = a.cfg.Storage.Path
	}
	if path == "" {
		var err error
		if path, err = db.DefaultPath(); err != nil {
			return fmt.Errorf("failed to resolve database path: %w", err)
		}
	}

	d, err := db.Open(path)
	if err != nil {
		return err
	}
	a.db = d
	a.writes = debounce.New(d, a.cfg.Storage.Debounce(), a.logger.Named("debounce"))

	// A nil *Reminders must not reach the store as a non-nil interface
	var reminder store.Reminder
	if a.cfg.Calendar.Enabled {
		auth := calendar.NewAuth(a.credentialsDir(), a.logger.Named("calendar"))
		a.reminders = calendar.NewReminders(
			calendar.NewGoogle(auth, a.cfg.Calendar.Name, a.logger.Named("calendar")),
			a.cfg.Calendar.Timeout(),
			a.logger.Named("calendar"),
		)
		reminder = a.reminders
	}

	if w := a.cfg.Weather; w.Enabled {
		locator := weather.StaticLocator{
			Allowed:  w.ShareLocation,
			Location: weather.Location{Latitude: w.Latitude, Longitude: w.Longitude},
		}
		a.weather = weather.NewService(locator, weather.NewOpenMeteo(w.Endpoint, nil), w.Timeout(), a.logger.Named("weather"))
	}

	a.store = store.New(store.Deps{
		Source:   d,
		Sink:     a.writes,
		Reminder: reminder,
		Logger:   a.logger.Named("store"),
		Clock:    a.now,
		SeedDemo: a.cfg.Storage.SeedDemo,
	})

	a.logger.Debug("store opened", zap.String("path", path))
	return nil
}

// credentialsDir is where OAuth credentials and tokens live
func (a *app) credentialsDir() string {
	if a.cfg != nil && a.cfg.Calendar.CredentialsDir != "" {
		return a.cfg.Calendar.CredentialsDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "prodo")
}

// close waits for background work, flushes pending writes and closes the
// database. It is safe to call more than once.
func (a *app) close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	if a.reminders != nil {
		a.reminders.Wait()
	}
	if a.weather != nil {
		a.weather.Wait()
	}

	var errs []error
	if a.writes != nil {
		if err := a.writes.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to flush pending writes: %w", err))
		}
	}
	if err := a.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close database: %w", err))
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	return errors.Join(errs...)
}
