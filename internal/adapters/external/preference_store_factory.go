package external

import (
	"fmt"

	"gorm.io/gorm"
	"weatherview.app/internal/adapters/database"
	"weatherview.app/internal/config"
	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

type PreferenceStoreFactory struct {
	db *gorm.DB
}

// NewPreferenceStoreFactory creates a factory. db is only needed for the
// database store type.
func NewPreferenceStoreFactory(db *gorm.DB) *PreferenceStoreFactory {
	return &PreferenceStoreFactory{db: db}
}

func (f *PreferenceStoreFactory) CreatePreferenceStore(cfg *config.PreferencesConfig) (ports.PreferenceStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("preferences config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.StoreTypeMemory:
		return NewMemoryPreferenceStore(), nil
	case config.StoreTypeRedis:
		return NewRedisPreferenceStoreAdapter(&cfg.Redis, cfg.KeyPrefix)
	case config.StoreTypeDatabase:
		if f.db == nil {
			return nil, errors.NewConfigurationError("database preference store requires a database connection", nil)
		}
		return database.NewPreferenceRepositoryAdapter(f.db), nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported preferences type: %s", cfg.Type.String()), nil)
	}
}
