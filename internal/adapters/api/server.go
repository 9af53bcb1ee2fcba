// Package api provides HTTP adapters for the hexagonal architecture
// These adapters serve the weather page and translate requests to view actions
package api

import (
	"context"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherview.app/internal/core/theme"
	"weatherview.app/internal/core/view"
	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router        *gin.Engine
	view          WeatherView
	healthChecker ports.SystemHealthChecker
}

// WeatherView is the page controller the HTTP adapter drives
type WeatherView interface {
	Search(ctx context.Context, text string, days *int) error
	SaveFavorite(ctx context.Context, searchText string) error
	DeleteFavorite(ctx context.Context, id string) error
	ViewFavorite(ctx context.Context, rawLat, rawLon string) error
	ToggleTheme(ctx context.Context) (theme.Theme, error)
	SetTheme(ctx context.Context, t theme.Theme) (theme.Theme, error)
	Snapshot() view.Snapshot
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	View                WeatherView
	SystemHealthChecker ports.SystemHealthChecker
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	tmpl, err := template.New("").Funcs(pageFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.NewConfigurationError("parse page templates", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	router.SetHTMLTemplate(tmpl)

	server := &HTTPServerAdapter{
		router:        router,
		view:          opts.View,
		healthChecker: opts.SystemHealthChecker,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.View == nil {
		return errors.NewValidationError("weather view is required")
	}
	if opts.SystemHealthChecker == nil {
		return errors.NewValidationError("system health checker is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	s.router.GET("/", s.showPage)
	s.router.POST("/search", s.submitSearch)
	s.router.POST("/favorites", s.submitSaveFavorite)
	s.router.POST("/favorites/view", s.submitViewFavorite)
	s.router.POST("/favorites/:id/delete", s.submitDeleteFavorite)
	s.router.POST("/theme/toggle", s.submitToggleTheme)

	api := s.router.Group("/api")
	{
		api.GET("/state", s.getState)
		api.POST("/search", s.search)
		api.POST("/favorites", s.saveFavorite)
		api.POST("/favorites/view", s.viewFavorite)
		api.DELETE("/favorites/:id", s.deleteFavorite)
		api.PUT("/theme", s.setTheme)
		api.POST("/theme/toggle", s.toggleTheme)
		api.GET("/health", s.getHealth)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
