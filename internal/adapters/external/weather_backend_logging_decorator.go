package external

import (
	"context"
	"time"

	"weatherview.app/internal/ports"
)

// WeatherBackendLoggingDecorator decorates the weather backend with structured logging
type WeatherBackendLoggingDecorator struct {
	backend ports.WeatherBackend
	logger  ports.Logger
}

// NewWeatherBackendLoggingDecorator creates a new logging decorator for the weather backend
func NewWeatherBackendLoggingDecorator(backend ports.WeatherBackend, logger ports.Logger) ports.WeatherBackend {
	return &WeatherBackendLoggingDecorator{
		backend: backend,
		logger:  logger,
	}
}

// GetSummary wraps the summary call with structured logging
func (d *WeatherBackendLoggingDecorator) GetSummary(ctx context.Context, params ports.SummaryParams) (*ports.SummaryData, error) {
	d.logger.Info("Weather API request started",
		ports.F("operation", "summary"),
		ports.F("place", params.Place),
		ports.F("days", params.Days),
		ports.F("event", "request"))

	startTime := time.Now()
	summary, err := d.backend.GetSummary(ctx, params)
	duration := time.Since(startTime)

	if err != nil {
		d.logFailure("summary", duration, err)
		return nil, err
	}

	fields := []ports.Field{
		ports.F("operation", "summary"),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
	}
	if summary != nil {
		fields = append(fields,
			ports.F("place", summary.Place),
			ports.F("daily", len(summary.Daily)),
			ports.F("hourly", len(summary.Hourly)),
			ports.F("videos", len(summary.Videos)))
	}
	d.logger.Info("Weather API request completed", fields...)

	return summary, nil
}

// ListFavorites wraps the favorites listing with structured logging
func (d *WeatherBackendLoggingDecorator) ListFavorites(ctx context.Context) ([]ports.FavoriteData, error) {
	d.logRequest("list_favorites")

	startTime := time.Now()
	favorites, err := d.backend.ListFavorites(ctx)
	duration := time.Since(startTime)

	if err != nil {
		d.logFailure("list_favorites", duration, err)
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("operation", "list_favorites"),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("count", len(favorites)))
	return favorites, nil
}

func (d *WeatherBackendLoggingDecorator) CreateFavorite(ctx context.Context, place string) error {
	d.logRequest("create_favorite", ports.F("place", place))

	startTime := time.Now()
	err := d.backend.CreateFavorite(ctx, place)
	return d.logResult("create_favorite", time.Since(startTime), err)
}

func (d *WeatherBackendLoggingDecorator) DeleteFavorite(ctx context.Context, id string) error {
	d.logRequest("delete_favorite", ports.F("id", id))

	startTime := time.Now()
	err := d.backend.DeleteFavorite(ctx, id)
	return d.logResult("delete_favorite", time.Since(startTime), err)
}

// Ping is not logged; health probes run often
func (d *WeatherBackendLoggingDecorator) Ping(ctx context.Context) error {
	return d.backend.Ping(ctx)
}

func (d *WeatherBackendLoggingDecorator) logRequest(operation string, extra ...ports.Field) {
	fields := append([]ports.Field{ports.F("operation", operation), ports.F("event", "request")}, extra...)
	d.logger.Info("Weather API request started", fields...)
}

func (d *WeatherBackendLoggingDecorator) logResult(operation string, duration time.Duration, err error) error {
	if err != nil {
		d.logFailure(operation, duration, err)
		return err
	}
	d.logger.Info("Weather API request completed",
		ports.F("operation", operation),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()))
	return nil
}

func (d *WeatherBackendLoggingDecorator) logFailure(operation string, duration time.Duration, err error) {
	d.logger.Error("Weather API request failed",
		ports.F("operation", operation),
		ports.F("event", "error"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("error", err.Error()))
}
