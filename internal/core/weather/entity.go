package weather

import (
	"fmt"
	"strings"

	"weatherview.app/pkg/validation"
)

// Summary is the combined current + forecast payload for one place.
// String readings are empty when the backend did not report them.
type Summary struct {
	Place   string
	Date    string
	Current *Current
	Daily   []Day
	Hourly  []Hour
	Videos  []Video
}

type Current struct {
	Icon      string
	Temp      string
	FeelsLike string
	Humidity  string
	Wind      string
	Precip    string
}

type Day struct {
	Name string
	Icon string
	Hi   string
	Lo   string
}

type Hour struct {
	Time string
	Icon string
	Temp string
}

type Video struct {
	Title        string
	ChannelTitle string
	PublishedAt  string
	ThumbnailURL string
	URL          string
}

// SummaryQuery selects the location of a summary request. A non-empty Place
// takes precedence over coordinates; coordinates are used only as a pair.
type SummaryQuery struct {
	Place string
	Lat   *float64
	Lon   *float64
	Days  int
}

// ForPlace builds a query for a place name
func ForPlace(place string) SummaryQuery {
	return SummaryQuery{Place: place}
}

// ForCoordinates builds a query for a coordinate pair
func ForCoordinates(lat, lon float64) SummaryQuery {
	return SummaryQuery{Lat: &lat, Lon: &lon}
}

// Normalize trims the place name
func (q *SummaryQuery) Normalize() {
	q.Place = strings.TrimSpace(q.Place)
}

// UsesPlace reports whether the place name wins
func (q SummaryQuery) UsesPlace() bool {
	return q.Place != ""
}

// UsesCoordinates reports whether the coordinate pair is sent
func (q SummaryQuery) UsesCoordinates() bool {
	return !q.UsesPlace() && q.Lat != nil && q.Lon != nil
}

// IsValid validates the parts of the query that will be sent
func (q SummaryQuery) IsValid() error {
	if !validation.IsValidDays(q.Days) {
		return fmt.Errorf("days must be between 0 (unset) and 14")
	}
	if q.UsesCoordinates() {
		if !validation.IsValidLatitude(*q.Lat) || !validation.IsValidLongitude(*q.Lon) {
			return fmt.Errorf("coordinates must be finite numbers within range")
		}
	}
	return nil
}
