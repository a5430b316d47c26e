package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned by Get when the key was never written
var ErrNotFound = errors.New("key not found")

// Get retrieves the raw value stored under key
func (d *DB) Get(key string) ([]byte, error) {
	var entry Entry

	err := d.conn.Where("entry_key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", key, err)
	}

	return entry.Value, nil
}

// Set inserts or replaces the value stored under key
func (d *DB) Set(key string, value []byte) error {
	entry := Entry{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	err := d.conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"entry_value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}

	return nil
}

// Delete removes key; deleting a missing key is not an error
func (d *DB) Delete(key string) error {
	if err := d.conn.Where("entry_key = ?", key).Delete(&Entry{}).Error; err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// Keys lists every stored key in lexical order
func (d *DB) Keys() ([]string, error) {
	var keys []string

	if err := d.conn.Model(&Entry{}).Order("entry_key ASC").Pluck("entry_key", &keys).Error; err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	return keys, nil
}
