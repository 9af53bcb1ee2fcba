package external

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherview.app/internal/config"
	"weatherview.app/pkg/errors"
)

// setupMockRedis creates a mock Redis server for testing
func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)

	redisConfig := &config.RedisConfig{
		Addr:         mockRedis.Addr(),
		Password:     "",
		DB:           0,
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
	}

	return mockRedis, redisConfig
}

func TestNewRedisPreferenceStoreAdapter(t *testing.T) {
	_, err := NewRedisPreferenceStoreAdapter(nil, "")
	assert.True(t, errors.IsConfigurationError(err))

	_, err = NewRedisPreferenceStoreAdapter(&config.RedisConfig{
		Addr:         "127.0.0.1:1",
		DialTimeout:  1,
		ReadTimeout:  1,
		WriteTimeout: 1,
	}, "")
	assert.True(t, errors.IsStorageError(err))

	_, cfg := setupMockRedis(t)
	store, err := NewRedisPreferenceStoreAdapter(cfg, "weatherview:")
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}

func TestRedisPreferenceStoreAdapter_Operations(t *testing.T) {
	mockRedis, cfg := setupMockRedis(t)
	store, err := NewRedisPreferenceStoreAdapter(cfg, "weatherview:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ctx := context.Background()

	t.Run("GetMissing", func(t *testing.T) {
		_, err := store.Get(ctx, "theme")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("SetUsesPrefixAndNoExpiry", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "theme", "dark"))

		raw, err := mockRedis.Get("weatherview:theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", raw)
		assert.Zero(t, mockRedis.TTL("weatherview:theme"))

		value, err := store.Get(ctx, "theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", value)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "theme"))
		assert.False(t, mockRedis.Exists("weatherview:theme"))
	})

	t.Run("EmptyKey", func(t *testing.T) {
		assert.True(t, errors.IsValidationError(store.Set(ctx, "", "dark")))
	})

	t.Run("ServerDown", func(t *testing.T) {
		mockRedis.Close()

		_, err := store.Get(ctx, "theme")
		assert.True(t, errors.IsStorageError(err))
		assert.True(t, errors.IsStorageError(store.Ping(ctx)))
	})
}
