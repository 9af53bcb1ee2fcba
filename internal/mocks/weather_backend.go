// Package mocks provides testify mocks of the ports interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"weatherview.app/internal/ports"
)

// WeatherBackend is a mock of ports.WeatherBackend
type WeatherBackend struct {
	mock.Mock
}

var _ ports.WeatherBackend = (*WeatherBackend)(nil)

// NewWeatherBackend creates a mock that asserts its expectations on cleanup
func NewWeatherBackend(t interface {
	mock.TestingT
	Cleanup(func())
}) *WeatherBackend {
	m := &WeatherBackend{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *WeatherBackend) GetSummary(ctx context.Context, params ports.SummaryParams) (*ports.SummaryData, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.SummaryData), args.Error(1)
}

func (m *WeatherBackend) ListFavorites(ctx context.Context) ([]ports.FavoriteData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.FavoriteData), args.Error(1)
}

func (m *WeatherBackend) CreateFavorite(ctx context.Context, place string) error {
	args := m.Called(ctx, place)
	return args.Error(0)
}

func (m *WeatherBackend) DeleteFavorite(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *WeatherBackend) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
