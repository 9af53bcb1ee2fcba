package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"weatherview.app/internal/adapters/database"
	"weatherview.app/internal/adapters/external"
	"weatherview.app/internal/adapters/infrastructure"
	"weatherview.app/internal/config"
	"weatherview.app/internal/ports"
	"weatherview.app/pkg/logger"
)

const sqliteMemoryPath = ":memory:"

type DependencyContainer struct {
	config  *config.Config
	options DependencyOptions
	db      *gorm.DB
	closers []io.Closer
	ports   *ports.ApplicationPorts
}

// DependencyOptions overrides process-wide defaults, mainly for tests
type DependencyOptions struct {
	// Registerer receives the prometheus collectors; nil uses the default registry
	Registerer prometheus.Registerer
	// HTTPClient replaces the backend http.Client
	HTTPClient external.HTTPClient
	// Tracer replaces the global otel tracer
	Tracer trace.Tracer
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	container := &DependencyContainer{
		config:  cfg,
		options: opts,
	}

	if cfg.Preferences.Type == config.StoreTypeDatabase {
		if err := container.initializeDatabase(); err != nil {
			return nil, fmt.Errorf("initialize database: %w", err)
		}
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeDatabase() error {
	slog.Info("Initializing database connection...", "driver", c.config.Database.Driver)

	dialector, err := c.dialector()
	if err != nil {
		return err
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	c.db = db

	if err := c.runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	slog.Info("Database connection established successfully")
	return nil
}

func (c *DependencyContainer) dialector() (gorm.Dialector, error) {
	dbCfg := c.config.Database
	switch dbCfg.Driver {
	case "postgres":
		return postgres.Open(dbCfg.GetDSN()), nil
	case "sqlite":
		if dbCfg.SQLitePath != sqliteMemoryPath {
			if err := os.MkdirAll(filepath.Dir(dbCfg.SQLitePath), 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite directory: %w", err)
			}
		}
		return sqlite.Open(dbCfg.SQLitePath), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", dbCfg.Driver)
	}
}

func (c *DependencyContainer) runMigrations(db *gorm.DB) error {
	slog.Info("Running database migrations...")

	if err := db.AutoMigrate(&database.PreferenceModel{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	slog.Info("Database migrations completed successfully")
	return nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	appLogger := c.newLogger()
	metrics := infrastructure.NewPrometheusMetricsCollector(c.options.Registerer)

	httpBackend, err := external.NewHTTPWeatherBackendAdapter(external.HTTPWeatherBackendParams{
		BaseURL: c.config.Backend.BaseURL,
		Timeout: time.Duration(c.config.Backend.TimeoutSeconds) * time.Second,
		Client:  c.options.HTTPClient,
		Logger:  appLogger,
	})
	if err != nil {
		return fmt.Errorf("create weather backend: %w", err)
	}

	var backend ports.WeatherBackend = httpBackend
	if c.config.Backend.EnableLogging {
		backend = external.NewWeatherBackendLoggingDecorator(backend, appLogger)
		slog.Info("Weather backend logging enabled")
	}
	backend = external.NewInstrumentedWeatherBackend(backend, metrics, c.options.Tracer)

	storeFactory := external.NewPreferenceStoreFactory(c.db)
	store, err := storeFactory.CreatePreferenceStore(&c.config.Preferences)
	if err != nil {
		slog.Error("Failed to create preference store", "error", err)
		return fmt.Errorf("create preference store: %w", err)
	}
	if closer, ok := store.(io.Closer); ok {
		c.closers = append(c.closers, closer)
	}

	storeType := c.config.Preferences.Type.String()
	slog.Info("Preference store initialized",
		"type", storeType,
		"redis_addr", c.config.Preferences.Redis.Addr)

	c.ports = &ports.ApplicationPorts{
		WeatherBackend:  backend,
		PreferenceStore: external.NewInstrumentedPreferenceStore(store, storeType, metrics),

		// Infrastructure
		ConfigProvider: infrastructure.NewConfigProviderAdapter(c.config),
		Logger:         appLogger,
		Metrics:        metrics,
		Database:       c.db,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

// newLogger builds the core logger: slog, plus a JSON-lines file when enabled
func (c *DependencyContainer) newLogger() ports.Logger {
	base := infrastructure.NewSlogLoggerAdapter(slog.Default())

	logCfg := c.config.Logging
	if !logCfg.EnableFile {
		return base
	}

	fileLogger, err := infrastructure.NewFileLoggerAdapter(logCfg.FilePath, logger.ParseLevel(logCfg.Level))
	if err != nil {
		slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		return base
	}

	slog.Info("File logging enabled", "path", logCfg.FilePath)
	return infrastructure.NewMultiLogger(base, fileLogger)
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// Cleanup releases the preference store and database connections
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil

	if c.db != nil {
		if db, err := c.db.DB(); err == nil {
			if err := db.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
