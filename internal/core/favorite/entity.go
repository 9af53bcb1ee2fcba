package favorite

import (
	"strconv"
	"strings"

	"weatherview.app/pkg/errors"
	"weatherview.app/pkg/validation"
)

// Favorite is a saved named location. The backend owns persistence; the view
// only lists, creates and deletes.
type Favorite struct {
	ID         string
	Place      string
	LocationID string
	Latitude   *float64
	Longitude  *float64
}

// DisplayName prefers the place name and falls back to the location id
func (f Favorite) DisplayName() string {
	if f.Place != "" {
		return f.Place
	}
	return f.LocationID
}

// SaveRequest resolves which place name a save should send
type SaveRequest struct {
	SearchText   string
	CurrentPlace string
}

// Resolve returns the trimmed search text, else the current place. ok is
// false when neither is available.
func (r SaveRequest) Resolve() (string, bool) {
	if q, ok := validation.TrimAndValidate(r.SearchText); ok {
		return q, true
	}
	return validation.TrimAndValidate(r.CurrentPlace)
}

// ParseCoordinates parses the coordinates carried by a "view" action.
// Missing, non-numeric or out-of-range values are rejected instead of being
// forwarded to the backend.
func ParseCoordinates(rawLat, rawLon string) (float64, float64, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(rawLat), 64)
	if err != nil || !validation.IsValidLatitude(lat) {
		return 0, 0, errors.NewValidationError(InvalidCoordinatesMessage)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(rawLon), 64)
	if err != nil || !validation.IsValidLongitude(lon) {
		return 0, 0, errors.NewValidationError(InvalidCoordinatesMessage)
	}
	return lat, lon, nil
}

func formatCoordinate(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
