package external

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

const tracerName = "weatherview.app/internal/adapters/external"

// Outcome labels recorded per backend call
const (
	OutcomeSuccess      = "success"
	OutcomeNetworkError = "network_error"
	OutcomeStatusError  = "status_error"
	OutcomeDecodeError  = "decode_error"
	OutcomeOtherError   = "error"
)

// InstrumentedWeatherBackend records metrics and a trace span for every
// backend call
type InstrumentedWeatherBackend struct {
	backend ports.WeatherBackend
	metrics ports.MetricsCollector
	tracer  trace.Tracer
}

// NewInstrumentedWeatherBackend wraps backend. A nil tracer uses the global
// provider.
func NewInstrumentedWeatherBackend(backend ports.WeatherBackend, metrics ports.MetricsCollector, tracer trace.Tracer) ports.WeatherBackend {
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return &InstrumentedWeatherBackend{
		backend: backend,
		metrics: metrics,
		tracer:  tracer,
	}
}

func (b *InstrumentedWeatherBackend) GetSummary(ctx context.Context, params ports.SummaryParams) (*ports.SummaryData, error) {
	var summary *ports.SummaryData
	err := b.observe(ctx, "summary", func(ctx context.Context) error {
		var err error
		summary, err = b.backend.GetSummary(ctx, params)
		return err
	},
		attribute.String("weather.place", params.Place),
		attribute.Int("weather.days", params.Days),
		attribute.Bool("weather.coordinates", params.Lat != nil && params.Lon != nil),
	)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (b *InstrumentedWeatherBackend) ListFavorites(ctx context.Context) ([]ports.FavoriteData, error) {
	var favorites []ports.FavoriteData
	err := b.observe(ctx, "list_favorites", func(ctx context.Context) error {
		var err error
		favorites, err = b.backend.ListFavorites(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (b *InstrumentedWeatherBackend) CreateFavorite(ctx context.Context, place string) error {
	return b.observe(ctx, "create_favorite", func(ctx context.Context) error {
		return b.backend.CreateFavorite(ctx, place)
	}, attribute.String("weather.place", place))
}

func (b *InstrumentedWeatherBackend) DeleteFavorite(ctx context.Context, id string) error {
	return b.observe(ctx, "delete_favorite", func(ctx context.Context) error {
		return b.backend.DeleteFavorite(ctx, id)
	}, attribute.String("weather.favorite_id", id))
}

func (b *InstrumentedWeatherBackend) Ping(ctx context.Context) error {
	return b.observe(ctx, "ping", b.backend.Ping)
}

func (b *InstrumentedWeatherBackend) observe(ctx context.Context, operation string, call func(context.Context) error, attrs ...attribute.KeyValue) error {
	ctx, span := b.tracer.Start(ctx, "weather_backend."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...))
	defer span.End()

	start := time.Now()
	err := call(ctx)
	outcome := Outcome(err)

	if b.metrics != nil {
		b.metrics.RecordBackendRequest(operation, outcome, time.Since(start))
	}

	span.SetAttributes(attribute.String("weather.outcome", outcome))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, errors.Message(err))
	}
	return err
}

// Outcome classifies a backend call result for metrics labels
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.IsNetworkError(err):
		return OutcomeNetworkError
	case errors.IsBackendStatusError(err):
		return OutcomeStatusError
	case errors.IsDecodeError(err):
		return OutcomeDecodeError
	default:
		return OutcomeOtherError
	}
}
