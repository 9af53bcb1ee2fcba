package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"weatherview.app/internal/ports"
)

// PreferenceStore is a mock of ports.PreferenceStore
type PreferenceStore struct {
	mock.Mock
}

var _ ports.PreferenceStore = (*PreferenceStore)(nil)

// NewPreferenceStore creates a mock that asserts its expectations on cleanup
func NewPreferenceStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *PreferenceStore {
	m := &PreferenceStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PreferenceStore) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *PreferenceStore) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *PreferenceStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *PreferenceStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
