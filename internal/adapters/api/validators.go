package api

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weatherview.app/pkg/validation"
)

// RegisterValidators installs the custom binding tags used by the JSON
// endpoints on gin's shared validator engine
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	if err := v.RegisterValidation("theme", validateTheme); err != nil {
		slog.Warn("Failed to register theme validator", "error", err)
	}
	if err := v.RegisterValidation("coordinate", validateCoordinate); err != nil {
		slog.Warn("Failed to register coordinate validator", "error", err)
	}
}

// validateTheme accepts the two theme names
func validateTheme(fl validator.FieldLevel) bool {
	return validation.IsValidTheme(fl.Field().String())
}

// validateCoordinate accepts a decimal string within range. The tag
// parameter selects the axis: coordinate=lat or coordinate=lon.
func validateCoordinate(fl validator.FieldLevel) bool {
	v, err := strconv.ParseFloat(fl.Field().String(), 64)
	if err != nil {
		return false
	}
	switch fl.Param() {
	case "lat":
		return validation.IsValidLatitude(v)
	case "lon":
		return validation.IsValidLongitude(v)
	default:
		return validation.IsValidLongitude(v)
	}
}
