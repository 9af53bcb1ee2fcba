package database

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

// PreferenceModel represents the database model for a stored preference
type PreferenceModel struct {
	Key       string `gorm:"primaryKey;size:191"`
	Value     string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PreferenceModel) TableName() string {
	return "preferences"
}

// PreferenceRepositoryAdapter implements the PreferenceStore port using GORM
type PreferenceRepositoryAdapter struct {
	db *gorm.DB
}

var _ ports.PreferenceStore = (*PreferenceRepositoryAdapter)(nil)

// NewPreferenceRepositoryAdapter creates a new preference repository adapter
func NewPreferenceRepositoryAdapter(db *gorm.DB) *PreferenceRepositoryAdapter {
	return &PreferenceRepositoryAdapter{db: db}
}

// Get retrieves a preference value by key
func (r *PreferenceRepositoryAdapter) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.NewValidationError("preference key cannot be empty")
	}

	var model PreferenceModel
	result := r.db.WithContext(ctx).Where(&PreferenceModel{Key: key}).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", errors.NewNotFoundError("preference not found")
		}
		return "", errors.NewStorageError("failed to read preference", result.Error)
	}

	return model.Value, nil
}

// Set inserts or replaces a preference value
func (r *PreferenceRepositoryAdapter) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.NewValidationError("preference key cannot be empty")
	}

	model := &PreferenceModel{Key: key, Value: value}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(model)
	if result.Error != nil {
		return errors.NewStorageError("failed to save preference", result.Error)
	}

	return nil
}

// Delete removes a preference; deleting a missing key is not an error
func (r *PreferenceRepositoryAdapter) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("preference key cannot be empty")
	}

	result := r.db.WithContext(ctx).Where(&PreferenceModel{Key: key}).Delete(&PreferenceModel{})
	if result.Error != nil {
		return errors.NewStorageError("failed to delete preference", result.Error)
	}

	return nil
}

// Ping checks the underlying connection
func (r *PreferenceRepositoryAdapter) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return errors.NewStorageError("failed to get database handle", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.NewStorageError("database ping failed", err)
	}
	return nil
}
