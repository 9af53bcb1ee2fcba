package infrastructure

import (
	"time"

	"weatherview.app/internal/config"
	"weatherview.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetBackendConfig returns the remote weather API configuration
func (c *ConfigProviderAdapter) GetBackendConfig() ports.BackendConfig {
	return ports.BackendConfig{
		BaseURL:     c.config.Backend.BaseURL,
		Timeout:     time.Duration(c.config.Backend.TimeoutSeconds) * time.Second,
		DefaultDays: c.config.Backend.DefaultDays,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetPreferencesConfig returns preference store configuration
func (c *ConfigProviderAdapter) GetPreferencesConfig() ports.PreferencesConfig {
	return ports.PreferencesConfig{
		Type:      c.config.Preferences.Type.String(),
		KeyPrefix: c.config.Preferences.KeyPrefix,
	}
}
