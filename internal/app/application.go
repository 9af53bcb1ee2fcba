package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"weatherview.app/internal/adapters/api"
	"weatherview.app/internal/adapters/infrastructure"
	"weatherview.app/internal/config"
	"weatherview.app/internal/core/favorite"
	"weatherview.app/internal/core/theme"
	"weatherview.app/internal/core/view"
	"weatherview.app/internal/core/weather"
	"weatherview.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	weatherUseCase  *weather.UseCase
	favoriteUseCase *favorite.UseCase
	themeUseCase    *theme.UseCase
	viewUseCase     *view.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Initial load started by Start
	initMu   sync.Mutex
	initDone chan struct{}

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	slog.Info("Initializing application ports...")
	deps, err := NewDependencyContainer(cfg, DependencyOptions{})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Backend: a.ports.WeatherBackend,
		Logger:  a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	favoriteUseCase, err := favorite.NewUseCase(favorite.UseCaseDependencies{
		Backend: a.ports.WeatherBackend,
		Logger:  a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create favorite use case: %w", err)
	}
	a.favoriteUseCase = favoriteUseCase

	themeUseCase, err := theme.NewUseCase(theme.UseCaseDependencies{
		Store:  a.ports.PreferenceStore,
		Logger: a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create theme use case: %w", err)
	}
	a.themeUseCase = themeUseCase

	viewUseCase, err := view.NewUseCase(view.UseCaseDependencies{
		Weather:     a.weatherUseCase,
		Favorites:   a.favoriteUseCase,
		Themes:      a.themeUseCase,
		Logger:      a.ports.Logger,
		Metrics:     a.ports.Metrics,
		DefaultDays: a.ports.ConfigProvider.GetBackendConfig().DefaultDays,
	})
	if err != nil {
		return fmt.Errorf("create view use case: %w", err)
	}
	a.viewUseCase = viewUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	api.RegisterValidators()

	backendConfig := a.ports.ConfigProvider.GetBackendConfig()
	preferencesConfig := a.ports.ConfigProvider.GetPreferencesConfig()

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		BackendChecker:    infrastructure.NewBackendHealthChecker(a.ports.WeatherBackend, backendConfig.BaseURL),
		PreferenceChecker: infrastructure.NewPreferenceStoreHealthChecker(a.ports.PreferenceStore, preferencesConfig.Type),
		ConfigProvider:    a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		View:                a.viewUseCase,
		SystemHealthChecker: systemHealthChecker,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	// Store router for testing access
	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.ports.ConfigProvider.GetServerConfig().Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start loads the initial page state and serves HTTP until shutdown
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	// The page reports its loading state until the initial load finishes.
	done := make(chan struct{})
	a.initMu.Lock()
	a.initDone = done
	a.initMu.Unlock()
	go func() {
		defer close(done)
		a.viewUseCase.Init(ctx)
	}()

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	a.initMu.Lock()
	done := a.initDone
	a.initMu.Unlock()
	if done != nil {
		select {
		case <-done:
		case <-ctx.Done():
			slog.Warn("Initial load still running at shutdown")
		}
	}

	if a.deps != nil {
		if err := a.deps.Cleanup(); err != nil {
			slog.Warn("Error releasing resources", "error", err)
		}
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetViewUseCase returns the page controller for testing
func (a *Application) GetViewUseCase() *view.UseCase {
	return a.viewUseCase
}
