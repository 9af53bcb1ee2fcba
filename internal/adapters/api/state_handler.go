package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherview.app/internal/core/render"
	"weatherview.app/internal/core/theme"
	"weatherview.app/internal/core/view"
	"weatherview.app/pkg/errors"
)

// SearchRequest represents the JSON body of a search
type SearchRequest struct {
	Query string `json:"q" binding:"max=200"`
	Days  *int   `json:"days" binding:"omitempty,min=0,max=14"`
}

// FavoriteRequest represents the JSON body of a favorite save
type FavoriteRequest struct {
	Query string `json:"q" binding:"max=200"`
}

// CoordinatesRequest represents the JSON body of a favorite view
type CoordinatesRequest struct {
	Lat string `json:"lat" binding:"required,coordinate=lat"`
	Lon string `json:"lon" binding:"required,coordinate=lon"`
}

// ThemeRequest selects a theme explicitly
type ThemeRequest struct {
	Theme string `json:"theme" binding:"required,theme"`
}

// StateResponse is the page as seen by non-HTML clients
type StateResponse struct {
	Theme        string                         `json:"theme"`
	Days         int                            `json:"days"`
	CurrentPlace string                         `json:"current_place,omitempty"`
	Visibility   view.Visibility                `json:"visibility"`
	Elements     map[string]render.ElementState `json:"elements"`
}

func newStateResponse(snap view.Snapshot) StateResponse {
	resp := StateResponse{
		Theme:        snap.Theme,
		Days:         snap.Days,
		CurrentPlace: snap.CurrentPlace,
		Visibility:   snap.Visibility,
		Elements:     map[string]render.ElementState{},
	}
	if snap.Document != nil {
		resp.Elements = snap.Document.Elements()
	}
	return resp
}

// getState handles GET /api/state requests
func (s *HTTPServerAdapter) getState(c *gin.Context) {
	c.JSON(http.StatusOK, newStateResponse(s.view.Snapshot()))
}

// search handles POST /api/search requests
func (s *HTTPServerAdapter) search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	if err := s.view.Search(viewContext(c), req.Query, req.Days); err != nil {
		slog.Error("Search error", "error", err, "query", req.Query)
		s.handleError(c, err)
		return
	}

	s.getState(c)
}

// saveFavorite handles POST /api/favorites requests
func (s *HTTPServerAdapter) saveFavorite(c *gin.Context) {
	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	if err := s.view.SaveFavorite(viewContext(c), req.Query); err != nil {
		slog.Error("Save favorite error", "error", err, "query", req.Query)
		s.handleError(c, err)
		return
	}

	s.getState(c)
}

// viewFavorite handles POST /api/favorites/view requests
func (s *HTTPServerAdapter) viewFavorite(c *gin.Context) {
	var req CoordinatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid favorite coordinates"))
		return
	}

	if err := s.view.ViewFavorite(viewContext(c), req.Lat, req.Lon); err != nil {
		slog.Error("View favorite error", "error", err, "lat", req.Lat, "lon", req.Lon)
		s.handleError(c, err)
		return
	}

	s.getState(c)
}

// deleteFavorite handles DELETE /api/favorites/:id requests
func (s *HTTPServerAdapter) deleteFavorite(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		s.handleError(c, errors.NewValidationError("id parameter is required"))
		return
	}

	if err := s.view.DeleteFavorite(viewContext(c), id); err != nil {
		slog.Error("Delete favorite error", "error", err, "id", id)
		s.handleError(c, err)
		return
	}

	s.getState(c)
}

// setTheme handles PUT /api/theme requests. Requesting the current theme
// persists nothing.
func (s *HTTPServerAdapter) setTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid theme"))
		return
	}

	if _, err := s.view.SetTheme(viewContext(c), theme.Parse(req.Theme)); err != nil {
		slog.Error("Theme persist error", "error", err)
		s.handleError(c, err)
		return
	}

	s.getState(c)
}

// toggleTheme handles POST /api/theme/toggle requests
func (s *HTTPServerAdapter) toggleTheme(c *gin.Context) {
	if _, err := s.view.ToggleTheme(viewContext(c)); err != nil {
		slog.Error("Theme persist error", "error", err)
		s.handleError(c, err)
		return
	}

	s.getState(c)
}
