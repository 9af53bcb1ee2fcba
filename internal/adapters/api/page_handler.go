package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Form posts never fail the request: the view has already put the reason
// in the error banner, so every handler redirects back to the page.

// SearchForm is the search box submission
type SearchForm struct {
	Query string `form:"q"`
	Days  string `form:"days"`
}

// FavoriteForm saves the searched or currently shown place
type FavoriteForm struct {
	Query string `form:"q"`
}

// CoordinatesForm carries a favorite's raw coordinates
type CoordinatesForm struct {
	Lat string `form:"lat"`
	Lon string `form:"lon"`
}

// showPage handles GET /
func (s *HTTPServerAdapter) showPage(c *gin.Context) {
	c.HTML(http.StatusOK, pageTemplate, newPageData(s.view.Snapshot()))
}

// submitSearch handles POST /search
func (s *HTTPServerAdapter) submitSearch(c *gin.Context) {
	var form SearchForm
	_ = c.ShouldBind(&form)

	if err := s.view.Search(viewContext(c), form.Query, parseDays(form.Days)); err != nil {
		slog.Debug("Search failed", "query", form.Query, "error", err)
	}
	backToPage(c)
}

// submitSaveFavorite handles POST /favorites
func (s *HTTPServerAdapter) submitSaveFavorite(c *gin.Context) {
	var form FavoriteForm
	_ = c.ShouldBind(&form)

	if err := s.view.SaveFavorite(viewContext(c), form.Query); err != nil {
		slog.Debug("Save favorite failed", "query", form.Query, "error", err)
	}
	backToPage(c)
}

// submitDeleteFavorite handles POST /favorites/:id/delete
func (s *HTTPServerAdapter) submitDeleteFavorite(c *gin.Context) {
	id := c.Param("id")
	if err := s.view.DeleteFavorite(viewContext(c), id); err != nil {
		slog.Debug("Delete favorite failed", "id", id, "error", err)
	}
	backToPage(c)
}

// submitViewFavorite handles POST /favorites/view
func (s *HTTPServerAdapter) submitViewFavorite(c *gin.Context) {
	var form CoordinatesForm
	_ = c.ShouldBind(&form)

	if err := s.view.ViewFavorite(viewContext(c), form.Lat, form.Lon); err != nil {
		slog.Debug("View favorite failed", "lat", form.Lat, "lon", form.Lon, "error", err)
	}
	backToPage(c)
}

// submitToggleTheme handles POST /theme/toggle
func (s *HTTPServerAdapter) submitToggleTheme(c *gin.Context) {
	if _, err := s.view.ToggleTheme(viewContext(c)); err != nil {
		slog.Warn("Theme preference not saved", "error", err)
	}
	backToPage(c)
}

// viewContext detaches view actions from the client connection: a browser
// navigating away mid-search does not cancel the load.
func viewContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

func backToPage(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

// parseDays reads the days selector. An empty value keeps the current
// selection; a non-numeric value maps to -1 so the view rejects it.
func parseDays(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		n = -1
	}
	return &n
}
