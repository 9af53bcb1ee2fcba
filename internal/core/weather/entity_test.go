package weather

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryQuery_Precedence(t *testing.T) {
	lat, lon := 48.85, 2.35

	tests := []struct {
		name            string
		query           SummaryQuery
		usesPlace       bool
		usesCoordinates bool
	}{
		{name: "PlaceOnly", query: SummaryQuery{Place: "Paris"}, usesPlace: true},
		{name: "CoordinatesOnly", query: SummaryQuery{Lat: &lat, Lon: &lon}, usesCoordinates: true},
		{name: "PlaceBeatsCoordinates", query: SummaryQuery{Place: "Paris", Lat: &lat, Lon: &lon}, usesPlace: true},
		{name: "HalfPairIgnored", query: SummaryQuery{Lat: &lat}},
		{name: "Neither", query: SummaryQuery{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.usesPlace, tt.query.UsesPlace())
			assert.Equal(t, tt.usesCoordinates, tt.query.UsesCoordinates())
		})
	}
}

func TestSummaryQuery_IsValid(t *testing.T) {
	nan := math.NaN()
	zero := 0.0

	assert.NoError(t, ForPlace("Paris").IsValid())
	assert.NoError(t, ForCoordinates(0, 0).IsValid())
	assert.Error(t, SummaryQuery{Lat: &nan, Lon: &zero}.IsValid())
	assert.Error(t, SummaryQuery{Days: 30}.IsValid())
	// a bad pair is irrelevant once the place name wins
	assert.NoError(t, SummaryQuery{Place: "Paris", Lat: &nan, Lon: &zero}.IsValid())
}

func TestSummaryQuery_Normalize(t *testing.T) {
	q := ForPlace("  Paris  ")
	q.Normalize()
	assert.Equal(t, "Paris", q.Place)

	blank := ForPlace("   ")
	blank.Normalize()
	assert.False(t, blank.UsesPlace())
}
