package db

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// Entry is one persisted key/value pair
type Entry struct {
	Key       string `gorm:"primaryKey;column:entry_key"`
	Value     []byte `gorm:"column:entry_value;not null"`
	UpdatedAt time.Time
}

// TableName keeps the table name stable across struct renames
func (Entry) TableName() string {
	return "kv_entries"
}

// DB is the durable key-value store backing the productivity store
type DB struct {
	conn *gorm.DB
}

// Open sets up the database connection and runs migrations
func Open(dbPath string) (*DB, error) {
	if dbPath != MemoryPath {
		// Ensure the directory exists
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	conn, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Debounced writes arrive from timer goroutines; one connection keeps
	// sqlite from returning SQLITE_BUSY and keeps :memory: a single database.
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	d := &DB{conn: conn}

	// Run auto-migrations
	if err := d.runMigrations(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return d, nil
}

// DefaultPath returns the path to the SQLite database file
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".prodo", "prodo.db"), nil
}

// runMigrations creates/updates the database schema
func (d *DB) runMigrations() error {
	return d.conn.AutoMigrate(&Entry{})
}

// Close closes the database connection
func (d *DB) Close() error {
	if d == nil || d.conn == nil {
		return nil
	}
	sqlDB, err := d.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
