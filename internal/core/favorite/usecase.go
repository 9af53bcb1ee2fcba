package favorite

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

// List returns the favorites currently stored by the backend
func (uc *UseCase) List(ctx context.Context) ([]Favorite, error) {
	data, err := uc.backend.ListFavorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	favorites := make([]Favorite, 0, len(data))
	for _, d := range data {
		favorites = append(favorites, Favorite{
			ID:         d.ID,
			Place:      d.Place,
			LocationID: d.LocationID,
			Latitude:   d.Latitude,
			Longitude:  d.Longitude,
		})
	}
	return favorites, nil
}

// Save creates a favorite for the resolved place name. It returns
// saved=false without calling the backend when there is nothing to save.
func (uc *UseCase) Save(ctx context.Context, req SaveRequest) (place string, saved bool, err error) {
	place, ok := req.Resolve()
	if !ok {
		uc.logger.Debug("Nothing to save as favorite")
		return "", false, nil
	}

	if err := uc.backend.CreateFavorite(ctx, place); err != nil {
		return place, false, fmt.Errorf("create favorite %q: %w", place, err)
	}

	uc.logger.Info("Favorite saved", ports.F("place", place))
	return place, true, nil
}

// Delete removes a favorite by id
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewValidationError("favorite id cannot be empty")
	}

	if err := uc.backend.DeleteFavorite(ctx, id); err != nil {
		return fmt.Errorf("delete favorite %s: %w", id, err)
	}

	uc.logger.Info("Favorite deleted", ports.F("id", id))
	return nil
}
