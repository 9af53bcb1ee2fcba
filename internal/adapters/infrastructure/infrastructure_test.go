package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherview.app/internal/config"
	"weatherview.app/internal/mocks"
	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

func TestFileLoggerAdapter_NewFileLoggerAdapter(t *testing.T) {
	_, err := NewFileLoggerAdapter("", slog.LevelInfo)
	assert.ErrorContains(t, err, "log file path cannot be empty")

	nested := filepath.Join(t.TempDir(), "deep", "nested", "weatherview.log")
	logger, err := NewFileLoggerAdapter(nested, slog.LevelInfo)
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.DirExists(t, filepath.Dir(nested))
}

func TestFileLoggerAdapter_StructuredLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	logger, err := NewFileLoggerAdapter(logPath, slog.LevelInfo)
	require.NoError(t, err)

	logger.Info("Weather API request completed",
		ports.F("operation", "summary"),
		ports.F("duration_ms", 1250),
		ports.F("error", errors.NewNetworkError("connection refused", nil)))

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(content, &logEntry))

	assert.Equal(t, "INFO", logEntry["level"])
	assert.Equal(t, "Weather API request completed", logEntry["message"])
	assert.Equal(t, "summary", logEntry["operation"])
	assert.Equal(t, float64(1250), logEntry["duration_ms"])
	assert.Equal(t, "NETWORK_ERROR: connection refused", logEntry["error"])

	timestamp, ok := logEntry["timestamp"].(string)
	require.True(t, ok)
	_, err = time.Parse(time.RFC3339, timestamp)
	assert.NoError(t, err)
}

func TestFileLoggerAdapter_MinLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "level.log")
	logger, err := NewFileLoggerAdapter(logPath, slog.LevelWarn)
	require.NoError(t, err)

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")
	logger.Error("kept")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	assert.Len(t, lines, 2)
}

func TestFileLoggerAdapter_ConcurrentLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "concurrent.log")
	logger, err := NewFileLoggerAdapter(logPath, slog.LevelDebug)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				logger.Info("Message", ports.F("goroutine_id", id), ports.F("message_id", j))
			}
		}(i)
	}
	wg.Wait()

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	assert.Len(t, lines, 50)
	for _, line := range lines {
		var logEntry map[string]interface{}
		assert.NoError(t, json.Unmarshal([]byte(line), &logEntry))
	}
}

func TestFileLoggerAdapter_InvalidJSONHandling(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "invalid.log")
	logger, err := NewFileLoggerAdapter(logPath, slog.LevelInfo)
	require.NoError(t, err)

	logger.Info("Test message", ports.F("channel", make(chan int)))

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "failed to marshal log entry")
}

func TestSlogLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	logger.Debug("hidden")
	logger.Info("Favorite saved", ports.F("place", "Paris"), ports.F("error", errors.NewValidationError("bad")))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Favorite saved", entry["msg"])
	assert.Equal(t, "Paris", entry["place"])
	assert.Equal(t, "VALIDATION_ERROR: bad", entry["error"])
}

func TestMultiLogger(t *testing.T) {
	a, b := mocks.NewLogger(), mocks.NewLogger()
	logger := NewMultiLogger(a, b)

	logger.Warn("careful")
	logger.Error("broken")

	assert.Len(t, a.Entries(""), 2)
	assert.Len(t, b.Entries("ERROR"), 1)
}

func TestPrometheusMetricsCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewPrometheusMetricsCollector(reg)

	collector.RecordBackendRequest("summary", "success", 120*time.Millisecond)
	collector.RecordBackendRequest("summary", "success", 80*time.Millisecond)
	collector.RecordBackendRequest("summary", "status_error", 10*time.Millisecond)
	collector.RecordPreferenceOperation("redis", "set", true)
	collector.RecordViewAction("toggle_theme")

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.backendRequests.WithLabelValues("summary", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.backendRequests.WithLabelValues("summary", "status_error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.preferenceOps.WithLabelValues("redis", "set", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.viewActions.WithLabelValues("toggle_theme")))
	assert.Equal(t, 1, testutil.CollectAndCount(collector.backendLatency))
}

func TestConfigProviderAdapter(t *testing.T) {
	provider := NewConfigProviderAdapter(&config.Config{
		Server:      config.ServerConfig{Port: 9090},
		Backend:     config.BackendConfig{BaseURL: "http://localhost:5000/api/weather", TimeoutSeconds: 7, DefaultDays: 3},
		Preferences: config.PreferencesConfig{Type: config.StoreTypeRedis, KeyPrefix: "wv:"},
	})

	backend := provider.GetBackendConfig()
	assert.Equal(t, "http://localhost:5000/api/weather", backend.BaseURL)
	assert.Equal(t, 7*time.Second, backend.Timeout)
	assert.Equal(t, 3, backend.DefaultDays)
	assert.Equal(t, 9090, provider.GetServerConfig().Port)
	assert.Equal(t, ports.PreferencesConfig{Type: "redis", KeyPrefix: "wv:"}, provider.GetPreferencesConfig())
}

func TestSystemHealthChecker_CheckAll(t *testing.T) {
	backend := mocks.NewWeatherBackend(t)
	backend.On("Ping", mock.Anything).Return(nil)
	store := mocks.NewPreferenceStore(t)
	store.On("Ping", mock.Anything).Return(errors.NewStorageError("Redis ping failed", nil))

	checker := NewSystemHealthChecker(SystemHealthCheckerConfig{
		BackendChecker:    NewBackendHealthChecker(backend, "http://localhost:5000/api/weather"),
		PreferenceChecker: NewPreferenceStoreHealthChecker(store, "redis"),
		ConfigProvider: NewConfigProviderAdapter(&config.Config{
			Backend:     config.BackendConfig{BaseURL: "http://localhost:5000/api/weather"},
			Preferences: config.PreferencesConfig{Type: config.StoreTypeRedis},
		}),
	})

	results := checker.CheckAll(context.Background())

	assert.Equal(t, StatusHealthy, results["weatherBackend"].Status)
	assert.Equal(t, StatusUnhealthy, results["preferences"].Status)
	assert.Contains(t, results["preferences"].Error, "Redis ping failed")
	assert.Equal(t, "redis", results["config"].Details["preferencesType"])
	assert.False(t, IsHealthy(results))
}

func TestBackendHealthChecker_Unhealthy(t *testing.T) {
	backend := mocks.NewWeatherBackend(t)
	backend.On("Ping", mock.Anything).Return(errors.NewNetworkError("connection refused", nil))

	status := NewBackendHealthChecker(backend, "").Check(context.Background())

	assert.Equal(t, StatusUnhealthy, status.Status)
	assert.Equal(t, "connection refused", status.Error)

	status = NewBackendHealthChecker(nil, "").Check(context.Background())
	assert.Equal(t, StatusUnhealthy, status.Status)
}
