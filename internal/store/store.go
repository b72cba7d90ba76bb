// Package store is the persistence boundary for the token keeper. The
// manager only ever sees this interface, so tests can run against an
// in-memory database and deployments can swap the backend.
package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/octalbyte/ssokeeper/internal/db/models"
)

// Store is a string key/value store. Get reports absence via the bool
// rather than an error; real store failures propagate unchanged.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// GormStore persists settings in the SQLite settings table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an initialized gorm database.
func NewGormStore(database *gorm.DB) *GormStore {
	return &GormStore{db: database}
}

func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var setting models.Setting
	err := s.db.WithContext(ctx).First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return setting.Value, true, nil
}

func (s *GormStore) Set(ctx context.Context, key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting).Error
}

func (s *GormStore) Remove(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&models.Setting{}, "key = ?", key).Error
}
