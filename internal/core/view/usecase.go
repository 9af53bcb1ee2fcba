package view

import (
	"context"
	"strings"
	"sync"

	"weatherview.app/internal/core/favorite"
	"weatherview.app/internal/core/render"
	"weatherview.app/internal/core/theme"
	"weatherview.app/internal/core/weather"
	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
	"weatherview.app/pkg/validation"
)

// UseCase is the weather page controller. It owns all view state and turns
// user actions into backend calls and page updates.
//
// mu guards the document and the fields below it. It is never held across a
// backend call: overlapping loads each apply their own result and the last
// one to finish is what the page shows.
type UseCase struct {
	weather   *weather.UseCase
	favorites *favorite.UseCase
	themes    *theme.UseCase
	logger    ports.Logger
	metrics   ports.MetricsCollector

	// themeMu serializes toggles so two concurrent flips cancel out
	themeMu sync.Mutex

	mu           sync.Mutex
	doc          *render.Document
	theme        theme.Theme
	currentPlace string
	days         int
}

type UseCaseDependencies struct {
	Weather   *weather.UseCase
	Favorites *favorite.UseCase
	Themes    *theme.UseCase
	Logger    ports.Logger
	// Metrics is optional
	Metrics ports.MetricsCollector
	// DefaultDays is the initial forecast length, 0 for the backend default
	DefaultDays int
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Weather == nil {
		return nil, errors.NewValidationError("weather use case is required")
	}
	if deps.Favorites == nil {
		return nil, errors.NewValidationError("favorite use case is required")
	}
	if deps.Themes == nil {
		return nil, errors.NewValidationError("theme use case is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if !validation.IsValidDays(deps.DefaultDays) {
		return nil, errors.NewValidationError("default days must be between 0 and 14")
	}

	uc := &UseCase{
		weather:   deps.Weather,
		favorites: deps.Favorites,
		themes:    deps.Themes,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
		doc:       render.NewDocument(),
		theme:     theme.Light,
		days:      deps.DefaultDays,
	}
	uc.doc.Apply(theme.Render(theme.Light)...)
	return uc, nil
}

// Init mirrors a page load: apply the persisted theme, load the default
// location's weather, then the favorites.
func (uc *UseCase) Init(ctx context.Context) {
	uc.themeMu.Lock()
	t := uc.themes.Load(ctx)
	uc.mu.Lock()
	uc.theme = t
	uc.doc.Apply(theme.Render(t)...)
	days := uc.days
	uc.mu.Unlock()
	uc.themeMu.Unlock()

	_ = uc.LoadWeather(ctx, weather.SummaryQuery{Days: days})
	_ = uc.LoadFavorites(ctx)
}

// Search handles a search submission. Blank text loads the backend's default
// location. A non-nil days replaces the selected forecast length.
func (uc *UseCase) Search(ctx context.Context, text string, days *int) error {
	uc.record("search")

	if days != nil {
		if !validation.IsValidDays(*days) {
			err := errors.NewValidationError("Invalid forecast length")
			uc.showError(errors.Message(err))
			return err
		}
		uc.mu.Lock()
		uc.days = *days
		uc.mu.Unlock()
	}

	uc.mu.Lock()
	query := weather.SummaryQuery{Place: strings.TrimSpace(text), Days: uc.days}
	uc.mu.Unlock()

	return uc.LoadWeather(ctx, query)
}

// LoadWeather fetches and renders a summary. Failures are shown in the error
// banner and also returned.
func (uc *UseCase) LoadWeather(ctx context.Context, query weather.SummaryQuery) error {
	uc.apply(
		render.Show(render.TargetLoading),
		render.Hide(render.TargetError),
		render.Hide(render.TargetWeatherContent),
	)
	defer uc.apply(render.Hide(render.TargetLoading))

	summary, err := uc.weather.GetSummary(ctx, query)
	if err != nil {
		uc.logger.Error("Failed to load weather",
			ports.F("place", query.Place),
			ports.F("error", err))
		uc.showError(errors.Message(err))
		return err
	}

	uc.mu.Lock()
	uc.doc.Apply(weather.Render(summary)...)
	uc.doc.Apply(render.Show(render.TargetWeatherContent))
	if summary.Place != "" {
		uc.currentPlace = summary.Place
	}
	uc.mu.Unlock()

	uc.logger.Debug("Weather rendered", ports.F("place", weather.DisplayPlace(summary)))
	return nil
}

// LoadFavorites refreshes the favorites list. A failure leaves the previous
// list in place and is only logged.
func (uc *UseCase) LoadFavorites(ctx context.Context) error {
	items, err := uc.favorites.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to load favorites", ports.F("error", err))
		return err
	}

	uc.apply(favorite.Render(items)...)
	return nil
}

// SaveFavorite saves the searched place, or the place currently shown. It is
// a no-op when neither is known.
func (uc *UseCase) SaveFavorite(ctx context.Context, searchText string) error {
	uc.record("save_favorite")

	uc.mu.Lock()
	req := favorite.SaveRequest{SearchText: searchText, CurrentPlace: uc.currentPlace}
	uc.mu.Unlock()

	_, saved, err := uc.favorites.Save(ctx, req)
	if err != nil {
		uc.logger.Error("Failed to save favorite", ports.F("error", err))
		uc.showError(favorite.SaveFailedMessage)
		return err
	}
	if !saved {
		return nil
	}

	return uc.LoadFavorites(ctx)
}

// DeleteFavorite removes a favorite and reloads the list whatever the outcome
func (uc *UseCase) DeleteFavorite(ctx context.Context, id string) error {
	uc.record("delete_favorite")

	err := uc.favorites.Delete(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to delete favorite", ports.F("id", id), ports.F("error", err))
		uc.showError(favorite.DeleteFailedMessage)
	}

	_ = uc.LoadFavorites(ctx)
	return err
}

// ViewFavorite loads the weather at a favorite's coordinates
func (uc *UseCase) ViewFavorite(ctx context.Context, rawLat, rawLon string) error {
	uc.record("view_favorite")

	lat, lon, err := favorite.ParseCoordinates(rawLat, rawLon)
	if err != nil {
		uc.logger.Warn("Rejected favorite coordinates",
			ports.F("lat", rawLat),
			ports.F("lon", rawLon))
		uc.showError(errors.Message(err))
		return err
	}

	query := weather.ForCoordinates(lat, lon)
	uc.mu.Lock()
	query.Days = uc.days
	uc.mu.Unlock()

	return uc.LoadWeather(ctx, query)
}

// ToggleTheme flips the theme, persists it and applies it to the page. The
// page follows the new theme even if persisting fails.
func (uc *UseCase) ToggleTheme(ctx context.Context) (theme.Theme, error) {
	uc.record("toggle_theme")

	uc.themeMu.Lock()
	defer uc.themeMu.Unlock()

	uc.mu.Lock()
	current := uc.theme
	uc.mu.Unlock()

	next, err := uc.themes.Toggle(ctx, current)

	uc.mu.Lock()
	uc.theme = next
	uc.doc.Apply(theme.Render(next)...)
	uc.mu.Unlock()

	return next, err
}

// SetTheme switches to t unless it is already applied. The check and the
// switch happen under the toggle lock, so concurrent requests for the same
// theme persist it at most once. Like ToggleTheme, the page follows t even
// if persisting fails.
func (uc *UseCase) SetTheme(ctx context.Context, t theme.Theme) (theme.Theme, error) {
	uc.record("set_theme")

	uc.themeMu.Lock()
	defer uc.themeMu.Unlock()

	uc.mu.Lock()
	current := uc.theme
	uc.mu.Unlock()

	if current == t {
		return t, nil
	}

	err := uc.themes.Save(ctx, t)

	uc.mu.Lock()
	uc.theme = t
	uc.doc.Apply(theme.Render(t)...)
	uc.mu.Unlock()

	return t, err
}

// Snapshot returns a copy of the page that stays valid after later updates
func (uc *UseCase) Snapshot() Snapshot {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return Snapshot{
		Theme:        uc.theme.String(),
		Days:         uc.days,
		CurrentPlace: uc.currentPlace,
		Visibility:   visibilityOf(uc.doc),
		Document:     uc.doc.Clone(),
	}
}

// CurrentPlace is the last successfully rendered non-empty place name
func (uc *UseCase) CurrentPlace() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.currentPlace
}

func (uc *UseCase) showError(message string) {
	uc.apply(
		render.SetText(render.TargetErrorMessage, ErrorPrefix+message),
		render.Show(render.TargetError),
		render.Hide(render.TargetWeatherContent),
	)
}

func (uc *UseCase) apply(instructions ...render.Instruction) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.doc.Apply(instructions...)
}

func (uc *UseCase) record(action string) {
	if uc.metrics != nil {
		uc.metrics.RecordViewAction(action)
	}
}
