package theme

import (
	"context"

	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

type UseCase struct {
	store  ports.PreferenceStore
	logger ports.Logger
}

type UseCaseDependencies struct {
	Store  ports.PreferenceStore
	Logger ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Store == nil {
		return nil, errors.NewValidationError("preference store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		store:  deps.Store,
		logger: deps.Logger,
	}, nil
}

// Load returns the persisted theme. A missing or unreadable preference
// yields the light theme; storage problems never block the page.
func (uc *UseCase) Load(ctx context.Context) Theme {
	raw, err := uc.store.Get(ctx, StorageKey)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Warn("Failed to read theme preference", ports.F("error", err))
		}
		return Light
	}
	return Parse(raw)
}

// Toggle flips the given theme and persists the result. The new theme is
// returned even when persisting fails.
func (uc *UseCase) Toggle(ctx context.Context, current Theme) (Theme, error) {
	next := current.Toggle()
	return next, uc.Save(ctx, next)
}

// Save persists t as the preferred theme
func (uc *UseCase) Save(ctx context.Context, t Theme) error {
	if err := uc.store.Set(ctx, StorageKey, t.String()); err != nil {
		uc.logger.Warn("Failed to persist theme preference",
			ports.F("theme", t.String()),
			ports.F("error", err))
		return err
	}

	uc.logger.Debug("Theme changed", ports.F("theme", t.String()))
	return nil
}
