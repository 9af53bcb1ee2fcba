package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"
	"weatherview.app/internal/ports"
)

// MetricsCollector is a mock of ports.MetricsCollector
type MetricsCollector struct {
	mock.Mock
}

var _ ports.MetricsCollector = (*MetricsCollector)(nil)

func (m *MetricsCollector) RecordBackendRequest(operation, outcome string, duration time.Duration) {
	m.Called(operation, outcome, duration)
}

func (m *MetricsCollector) RecordPreferenceOperation(store, operation string, success bool) {
	m.Called(store, operation, success)
}

func (m *MetricsCollector) RecordViewAction(action string) {
	m.Called(action)
}
