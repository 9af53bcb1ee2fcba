package validation

import (
	"math"
	"strings"
)

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// IsValidTheme accepts the two persisted theme values
func IsValidTheme(theme string) bool {
	return theme == "light" || theme == "dark"
}

// IsValidLatitude requires a finite value in [-90, 90]
func IsValidLatitude(lat float64) bool {
	return isFinite(lat) && lat >= -90 && lat <= 90
}

// IsValidLongitude requires a finite value in [-180, 180]
func IsValidLongitude(lon float64) bool {
	return isFinite(lon) && lon >= -180 && lon <= 180
}

// IsValidDays checks a forecast length; zero means "not selected"
func IsValidDays(days int) bool {
	return days >= 0 && days <= 14
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
