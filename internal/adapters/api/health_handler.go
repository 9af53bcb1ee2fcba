package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherview.app/internal/adapters/infrastructure"
	"weatherview.app/internal/ports"
)

// HealthResponse is the aggregated health of the service
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getHealth handles GET /api/health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	if !infrastructure.IsHealthy(results) {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:     infrastructure.StatusUnhealthy,
			Components: results,
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:     infrastructure.StatusHealthy,
		Components: results,
	})
}
