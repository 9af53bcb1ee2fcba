package external

import (
	"context"

	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

// InstrumentedPreferenceStore counts store operations per store type
type InstrumentedPreferenceStore struct {
	store     ports.PreferenceStore
	storeType string
	metrics   ports.MetricsCollector
}

func NewInstrumentedPreferenceStore(store ports.PreferenceStore, storeType string, metrics ports.MetricsCollector) ports.PreferenceStore {
	return &InstrumentedPreferenceStore{
		store:     store,
		storeType: storeType,
		metrics:   metrics,
	}
}

// Get treats a missing key as a successful read
func (s *InstrumentedPreferenceStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.store.Get(ctx, key)
	s.record("get", err == nil || errors.IsNotFoundError(err))
	return value, err
}

func (s *InstrumentedPreferenceStore) Set(ctx context.Context, key, value string) error {
	err := s.store.Set(ctx, key, value)
	s.record("set", err == nil)
	return err
}

func (s *InstrumentedPreferenceStore) Delete(ctx context.Context, key string) error {
	err := s.store.Delete(ctx, key)
	s.record("delete", err == nil)
	return err
}

func (s *InstrumentedPreferenceStore) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *InstrumentedPreferenceStore) record(operation string, success bool) {
	if s.metrics != nil {
		s.metrics.RecordPreferenceOperation(s.storeType, operation, success)
	}
}
