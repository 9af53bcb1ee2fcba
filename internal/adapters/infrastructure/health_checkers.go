package infrastructure

import (
	"context"
	"time"

	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// BackendHealthChecker pings the remote weather API service root
type BackendHealthChecker struct {
	backend ports.WeatherBackend
	baseURL string
}

// NewBackendHealthChecker creates a new weather backend health checker
func NewBackendHealthChecker(backend ports.WeatherBackend, baseURL string) *BackendHealthChecker {
	return &BackendHealthChecker{backend: backend, baseURL: baseURL}
}

// Check verifies weather backend connectivity
func (b *BackendHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherBackend",
		Details: map[string]interface{}{
			"baseURL": b.baseURL,
		},
	}

	if b.backend == nil {
		status.Status = StatusUnhealthy
		status.Error = "weather backend is not configured"
		return status
	}

	start := time.Now()
	err := b.backend.Ping(ctx)
	status.Details["latency_ms"] = time.Since(start).Milliseconds()
	if err != nil {
		status.Status = StatusUnhealthy
		status.Error = errors.Message(err)
		return status
	}

	status.Status = StatusHealthy
	return status
}

// PreferenceStoreHealthChecker verifies the preference store is reachable
type PreferenceStoreHealthChecker struct {
	store     ports.PreferenceStore
	storeType string
}

// NewPreferenceStoreHealthChecker creates a new preference store health checker
func NewPreferenceStoreHealthChecker(store ports.PreferenceStore, storeType string) *PreferenceStoreHealthChecker {
	return &PreferenceStoreHealthChecker{store: store, storeType: storeType}
}

// Check verifies preference store connectivity
func (p *PreferenceStoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "preferences",
		Details: map[string]interface{}{
			"type": p.storeType,
		},
	}

	if p.store == nil {
		status.Status = StatusUnhealthy
		status.Error = "preference store is nil"
		return status
	}

	if err := p.store.Ping(ctx); err != nil {
		status.Status = StatusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Status = StatusHealthy
	status.Details["connected"] = true
	return status
}
