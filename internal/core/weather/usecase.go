package weather

import (
	"context"
	"fmt"

	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

type UseCase struct {
	backend ports.WeatherBackend
	logger  ports.Logger
}

type UseCaseDependencies struct {
	Backend ports.WeatherBackend
	Logger  ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Backend == nil {
		return nil, errors.NewValidationError("weather backend is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		backend: deps.Backend,
		logger:  deps.Logger,
	}, nil
}

// GetSummary fetches a fresh summary. Nothing is cached between calls.
func (uc *UseCase) GetSummary(ctx context.Context, query SummaryQuery) (*Summary, error) {
	query.Normalize()
	if err := query.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid summary query: " + err.Error())
	}

	params := uc.toParams(query)
	uc.logger.Debug("Requesting weather summary",
		ports.F("place", params.Place),
		ports.F("days", params.Days),
		ports.F("coordinates", params.Lat != nil))

	data, err := uc.backend.GetSummary(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("get summary: %w", err)
	}

	return uc.convertFromPortsSummary(data), nil
}

func (uc *UseCase) toParams(query SummaryQuery) ports.SummaryParams {
	params := ports.SummaryParams{Days: query.Days}
	switch {
	case query.UsesPlace():
		params.Place = query.Place
	case query.UsesCoordinates():
		lat, lon := *query.Lat, *query.Lon
		params.Lat = &lat
		params.Lon = &lon
	}
	return params
}

func (uc *UseCase) convertFromPortsSummary(data *ports.SummaryData) *Summary {
	if data == nil {
		return &Summary{}
	}

	summary := &Summary{
		Place: data.Place,
		Date:  data.Date,
	}

	if data.Current != nil {
		summary.Current = &Current{
			Icon:      data.Current.Icon,
			Temp:      data.Current.Temp,
			FeelsLike: data.Current.FeelsLike,
			Humidity:  data.Current.Humidity,
			Wind:      data.Current.Wind,
			Precip:    data.Current.Precip,
		}
	}

	for _, d := range data.Daily {
		summary.Daily = append(summary.Daily, Day{Name: d.Name, Icon: d.Icon, Hi: d.Hi, Lo: d.Lo})
	}
	for _, h := range data.Hourly {
		summary.Hourly = append(summary.Hourly, Hour{Time: h.Time, Icon: h.Icon, Temp: h.Temp})
	}
	for _, v := range data.Videos {
		summary.Videos = append(summary.Videos, Video{
			Title:        v.Title,
			ChannelTitle: v.ChannelTitle,
			PublishedAt:  v.PublishedAt,
			ThumbnailURL: v.ThumbnailURL,
			URL:          v.URL,
		})
	}

	return summary
}
