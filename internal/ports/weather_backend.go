package ports

import "context"

// SummaryParams is the resolved query sent to the summary endpoint.
// Place and the coordinate pair are mutually exclusive; both empty means
// the backend's default location.
type SummaryParams struct {
	Place string
	Lat   *float64
	Lon   *float64
	Days  int
}

// CurrentData holds current conditions. Empty strings mean "not reported".
type CurrentData struct {
	Icon      string
	Temp      string
	FeelsLike string
	Humidity  string
	Wind      string
	Precip    string
}

type DayData struct {
	Name string
	Icon string
	Hi   string
	Lo   string
}

type HourData struct {
	Time string
	Icon string
	Temp string
}

type VideoData struct {
	Title        string
	ChannelTitle string
	PublishedAt  string
	ThumbnailURL string
	URL          string
}

// SummaryData is the combined current + forecast payload for one place
type SummaryData struct {
	Place   string
	Date    string
	Current *CurrentData
	Daily   []DayData
	Hourly  []HourData
	Videos  []VideoData
}

// FavoriteData is a saved location as returned by the backend
type FavoriteData struct {
	ID         string
	Place      string
	LocationID string
	Latitude   *float64
	Longitude  *float64
}

// WeatherBackend defines the REST contract of the remote weather API
type WeatherBackend interface {
	GetSummary(ctx context.Context, params SummaryParams) (*SummaryData, error)
	ListFavorites(ctx context.Context) ([]FavoriteData, error)
	CreateFavorite(ctx context.Context, place string) error
	DeleteFavorite(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
