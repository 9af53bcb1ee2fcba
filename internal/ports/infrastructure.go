package ports

import "time"

// BackendConfig represents remote weather API configuration
type BackendConfig struct {
	BaseURL     string
	Timeout     time.Duration
	DefaultDays int
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// PreferencesConfig represents preference store configuration
type PreferencesConfig struct {
	Type      string
	KeyPrefix string
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetBackendConfig() BackendConfig
	GetServerConfig() ServerConfig
	GetPreferencesConfig() PreferencesConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordBackendRequest(operation, outcome string, duration time.Duration)
	RecordPreferenceOperation(store, operation string, success bool)
	RecordViewAction(action string)
}
