// Package store is the persistence boundary of the core: named JSON snapshots
// written and read whole, backed by a single gorm table.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record keys. Everything the storefront persists lives under these.
const (
	KeyCart         = "giannis_cart"
	KeyUsers        = "giannis_users"
	KeyCurrentUser  = "giannis_current_user"
	KeyOrders       = "giannis_orders"
	KeyCurrentOrder = "giannis_current_order"
)

type Record struct {
	Key   string `gorm:"primaryKey"  json:"key"`
	Value []byte `gorm:"not null"    json:"value"`
}

func (Record) TableName() string {
	return "records"
}

// DecodeError reports a stored value that no longer parses as JSON. Reads
// fail closed on it: the caller gets the error, never a half-decoded value.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("store: corrupt record %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("store: migrate: %w", err)
	}
	return &Store{DB: db}, nil
}

// Get unmarshals the record under key into out. It reports false with a nil
// error when the key is absent.
func (s *Store) Get(ctx context.Context, key string, out any) (bool, error) {
	var rec Record
	err := s.DB.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: read %q: %w", key, err)
	}
	if err := json.Unmarshal(rec.Value, out); err != nil {
		return false, &DecodeError{Key: key, Err: err}
	}
	return true, nil
}

// Set writes the full snapshot for key, replacing whatever was there.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", key, err)
	}
	err = s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&Record{Key: key, Value: data}).Error
	if err != nil {
		return fmt.Errorf("store: write %q: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.DB.WithContext(ctx).Delete(&Record{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("store: remove %q: %w", key, err)
	}
	return nil
}
