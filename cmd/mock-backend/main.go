// Command mock-backend serves a canned weather API with in-memory favorites
// for local development of the weather page.
package main

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type favorite struct {
	ID         string   `json:"id"`
	Place      string   `json:"place"`
	LocationID string   `json:"location_id,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

type createFavoriteRequest struct {
	Query string `json:"q" binding:"required"`
}

type location struct {
	Name string
	Lat  float64
	Lon  float64
	Temp int
}

var locations = map[string]location{
	"kyiv":   {Name: "Kyiv", Lat: 50.45, Lon: 30.52, Temp: 14},
	"london": {Name: "London", Lat: 51.51, Lon: -0.13, Temp: 15},
	"paris":  {Name: "Paris", Lat: 48.85, Lon: 2.35, Temp: 18},
	"berlin": {Name: "Berlin", Lat: 52.52, Lon: 13.40, Temp: 12},
}

const defaultLocation = "kyiv"

type favoriteStore struct {
	mu    sync.Mutex
	items []favorite
}

func (s *favoriteStore) list() []favorite {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]favorite{}, s.items...)
}

func (s *favoriteStore) add(loc location) favorite {
	s.mu.Lock()
	defer s.mu.Unlock()

	lat, lon := loc.Lat, loc.Lon
	f := favorite{ID: uuid.NewString(), Place: loc.Name, Latitude: &lat, Longitude: &lon}
	s.items = append(s.items, f)
	return f
}

func (s *favoriteStore) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.items {
		if f.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

func main() {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	store := &favoriteStore{}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Weather API is running"})
	})

	weather := r.Group("/api/weather")
	weather.GET("/summary", func(c *gin.Context) {
		query := strings.ToLower(strings.TrimSpace(c.Query("q")))

		if query == "servererror" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		loc, ok := resolve(query, c.Query("lat"), c.Query("lon"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
			return
		}

		c.JSON(http.StatusOK, summary(loc, c.DefaultQuery("days", "3")))
	})

	weather.GET("/favorites", func(c *gin.Context) {
		c.JSON(http.StatusOK, store.list())
	})

	weather.POST("/favorites", func(c *gin.Context) {
		var req createFavoriteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
			return
		}
		loc, ok := locations[strings.ToLower(strings.TrimSpace(req.Query))]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
			return
		}
		c.JSON(http.StatusCreated, store.add(loc))
	})

	weather.DELETE("/favorites/:id", func(c *gin.Context) {
		if !store.remove(c.Param("id")) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
			return
		}
		c.Status(http.StatusNoContent)
	})

	port := os.Getenv("MOCK_BACKEND_PORT")
	if port == "" {
		port = "8090"
	}

	slog.Info("Starting mock weather backend", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("Failed to start mock backend", "error", err)
		os.Exit(1)
	}
}

// resolve picks a location by name, by the nearest known coordinates, or the
// default when neither is given
func resolve(query, rawLat, rawLon string) (location, bool) {
	if query != "" {
		loc, ok := locations[query]
		return loc, ok
	}
	if rawLat != "" && rawLon != "" {
		for _, loc := range locations {
			if formatCoord(loc.Lat) == rawLat && formatCoord(loc.Lon) == rawLon {
				return loc, true
			}
		}
		return location{Name: rawLat + ", " + rawLon, Temp: 10}, true
	}
	return locations[defaultLocation], true
}

func summary(loc location, days string) gin.H {
	n, err := strconv.Atoi(days)
	if err != nil || n < 1 || n > 14 {
		n = 3
	}

	now := time.Now()
	daily := make([]gin.H, 0, n)
	for i := 0; i < n; i++ {
		day := now.AddDate(0, 0, i)
		daily = append(daily, gin.H{
			"name": day.Format("Mon"),
			"icon": "⛅",
			"hi":   loc.Temp + 3 + i%2,
			"lo":   loc.Temp - 4 - i%3,
		})
	}

	hourly := make([]gin.H, 0, 6)
	for i := 0; i < 6; i++ {
		hourly = append(hourly, gin.H{
			"time": now.Add(time.Duration(i) * time.Hour).Format("15:00"),
			"icon": "☀️",
			"temp": loc.Temp + i/2,
		})
	}

	return gin.H{
		"place": loc.Name,
		"date":  now.Format("Monday, January 2"),
		"current": gin.H{
			"icon":       "⛅",
			"temp":       loc.Temp,
			"feels_like": loc.Temp - 1,
			"humidity":   64,
			"wind":       "12 km/h",
			"precip":     "0 mm",
		},
		"daily":  daily,
		"hourly": hourly,
		"videos": []gin.H{{
			"title":         loc.Name + " weather update",
			"channel_title": "Local News",
			"published_at":  now.Format(time.RFC3339),
			"url":           "https://www.youtube.com/results?search_query=" + strings.ReplaceAll(loc.Name, " ", "+"),
		}},
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
