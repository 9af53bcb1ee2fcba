package infrastructure

import (
	"context"

	"weatherview.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	backendChecker    ports.HealthChecker
	preferenceChecker ports.HealthChecker
	configProvider    ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	BackendChecker    ports.HealthChecker
	PreferenceChecker ports.HealthChecker
	ConfigProvider    ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		backendChecker:    config.BackendChecker,
		preferenceChecker: config.PreferenceChecker,
		configProvider:    config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.backendChecker != nil {
		results["weatherBackend"] = s.backendChecker.Check(ctx)
	}

	if s.preferenceChecker != nil {
		results["preferences"] = s.preferenceChecker.Check(ctx)
	}

	if s.configProvider != nil {
		backend := s.configProvider.GetBackendConfig()
		prefs := s.configProvider.GetPreferencesConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    StatusHealthy,
			Details: map[string]interface{}{
				"backendBaseURL":  backend.BaseURL,
				"defaultDays":     backend.DefaultDays,
				"preferencesType": prefs.Type,
			},
		}
	}

	return results
}

// IsHealthy reports whether every component is healthy
func IsHealthy(results map[string]ports.HealthStatus) bool {
	for _, r := range results {
		if r.Status != StatusHealthy {
			return false
		}
	}
	return true
}
