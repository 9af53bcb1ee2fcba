package api

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomValidators(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, v.RegisterValidation("theme", validateTheme))
	require.NoError(t, v.RegisterValidation("coordinate", validateCoordinate))

	assert.NoError(t, v.Struct(ThemeRequest{Theme: "dark"}))
	assert.Error(t, v.Struct(ThemeRequest{Theme: "sepia"}))
	assert.Error(t, v.Struct(ThemeRequest{}))

	assert.NoError(t, v.Struct(CoordinatesRequest{Lat: "48.85", Lon: "2.35"}))
	assert.NoError(t, v.Struct(CoordinatesRequest{Lat: "-90", Lon: "180"}))
	assert.Error(t, v.Struct(CoordinatesRequest{Lat: "91", Lon: "2.35"}))
	assert.Error(t, v.Struct(CoordinatesRequest{Lat: "48.85", Lon: "abc"}))
	assert.Error(t, v.Struct(CoordinatesRequest{Lat: "NaN", Lon: "2.35"}))
	assert.Error(t, v.Struct(CoordinatesRequest{Lat: "", Lon: "2.35"}))
}

func TestParseDays(t *testing.T) {
	assert.Nil(t, parseDays(""))
	assert.Nil(t, parseDays("  "))
	assert.Equal(t, 7, *parseDays("7"))
	assert.Equal(t, 0, *parseDays("0"))
	assert.Equal(t, -1, *parseDays("week"))
}
