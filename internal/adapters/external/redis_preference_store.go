package external

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"weatherview.app/internal/config"
	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

// RedisPreferenceStoreAdapter implements PreferenceStore port using Redis.
// Preferences never expire.
type RedisPreferenceStoreAdapter struct {
	client    *redis.Client
	keyPrefix string
}

var _ ports.PreferenceStore = (*RedisPreferenceStoreAdapter)(nil)

// NewRedisPreferenceStoreAdapter creates a new Redis preference store and
// verifies the connection
func NewRedisPreferenceStoreAdapter(cfg *config.RedisConfig, keyPrefix string) (*RedisPreferenceStoreAdapter, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewStorageError("failed to connect to Redis", err)
	}

	return &RedisPreferenceStoreAdapter{
		client:    client,
		keyPrefix: keyPrefix,
	}, nil
}

func (r *RedisPreferenceStoreAdapter) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.NewValidationError("preference key cannot be empty")
	}

	val, err := r.client.Get(ctx, r.keyPrefix+key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", errors.NewNotFoundError("preference not found")
		}
		return "", errors.NewStorageError("redis get operation failed", err)
	}
	return val, nil
}

func (r *RedisPreferenceStoreAdapter) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.NewValidationError("preference key cannot be empty")
	}

	if err := r.client.Set(ctx, r.keyPrefix+key, value, 0).Err(); err != nil {
		return errors.NewStorageError("redis set operation failed", err)
	}
	return nil
}

func (r *RedisPreferenceStoreAdapter) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("preference key cannot be empty")
	}

	if err := r.client.Del(ctx, r.keyPrefix+key).Err(); err != nil {
		return errors.NewStorageError("redis delete operation failed", err)
	}
	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisPreferenceStoreAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewStorageError("Redis ping failed", err)
	}
	return nil
}

// Close closes the Redis client connection
func (r *RedisPreferenceStoreAdapter) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewStorageError("failed to close Redis connection", err)
	}
	return nil
}
