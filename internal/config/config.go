package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weatherview.app/pkg/errors"
	"weatherview.app/pkg/validation"
)

const (
	maxRedisDB            = 15
	maxPortNumber         = 65535
	maxBackendTimeoutSecs = 300
)

// Config represents the application configuration structure
type Config struct {
	Server      ServerConfig      `split_words:"true"`
	Backend     BackendConfig     `split_words:"true"`
	Preferences PreferencesConfig `split_words:"true"`
	Database    DatabaseConfig    `split_words:"true"`
	Logging     LoggingConfig     `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// BackendConfig describes the remote weather API the view consumes.
// TimeoutSeconds of 0 leaves the HTTP client without a timeout.
type BackendConfig struct {
	BaseURL        string `envconfig:"BACKEND_BASE_URL" default:"https://api.weatherdemo.online/api/weather"`
	TimeoutSeconds int    `envconfig:"BACKEND_TIMEOUT_SECONDS" default:"0"`
	DefaultDays    int    `envconfig:"BACKEND_DEFAULT_DAYS" default:"0"`
	EnableLogging  bool   `envconfig:"BACKEND_ENABLE_LOGGING" default:"true"`
}

// StoreType selects where persisted preferences (the theme flag) live
type StoreType int

const (
	StoreTypeUnknown StoreType = iota
	StoreTypeMemory
	StoreTypeRedis
	StoreTypeDatabase
)

// String returns the string representation of store type
func (s StoreType) String() string {
	switch s {
	case StoreTypeMemory:
		return "memory"
	case StoreTypeRedis:
		return "redis"
	case StoreTypeDatabase:
		return "database"
	default:
		return "unknown"
	}
}

// IsValid checks if the store type is valid
func (s StoreType) IsValid() bool {
	return s == StoreTypeMemory || s == StoreTypeRedis || s == StoreTypeDatabase
}

// StoreTypeFromString converts string to StoreType enum
func StoreTypeFromString(s string) StoreType {
	switch s {
	case "memory":
		return StoreTypeMemory
	case "redis":
		return StoreTypeRedis
	case "database":
		return StoreTypeDatabase
	default:
		return StoreTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *StoreType) UnmarshalText(text []byte) error {
	*s = StoreTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s StoreType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type PreferencesConfig struct {
	Type      StoreType   `envconfig:"PREFERENCES_TYPE" default:"database"`
	KeyPrefix string      `envconfig:"PREFERENCES_KEY_PREFIX" default:"weatherview:"`
	Redis     RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type DatabaseConfig struct {
	Driver     string `envconfig:"DB_DRIVER" default:"sqlite"`
	SQLitePath string `envconfig:"DB_SQLITE_PATH" default:"data/weatherview.db"`
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       int    `envconfig:"DB_PORT" default:"5432"`
	User       string `envconfig:"DB_USER" default:"postgres"`
	Password   string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string `envconfig:"DB_NAME" default:"weatherview"`
	SSLMode    string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type LoggingConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	EnableFile bool   `envconfig:"LOG_ENABLE_FILE" default:"false"`
	FilePath   string `envconfig:"LOG_FILE_PATH" default:"logs/weatherview.log"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Backend.Validate(); err != nil {
		return err
	}
	if err := c.Preferences.Validate(); err != nil {
		return err
	}
	if c.Preferences.Type == StoreTypeDatabase {
		if err := c.Database.Validate(); err != nil {
			return err
		}
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (b *BackendConfig) Validate() error {
	if b.BaseURL == "" {
		return errors.NewConfigurationError("BACKEND_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(b.BaseURL, "http://") && !strings.HasPrefix(b.BaseURL, "https://") {
		return errors.NewConfigurationError("BACKEND_BASE_URL must start with http:// or https://", nil)
	}
	if _, err := url.Parse(b.BaseURL); err != nil {
		return errors.NewConfigurationError("BACKEND_BASE_URL is not a valid URL", err)
	}
	if b.TimeoutSeconds < 0 || b.TimeoutSeconds > maxBackendTimeoutSecs {
		return errors.NewConfigurationError("BACKEND_TIMEOUT_SECONDS must be between 0 and 300", nil)
	}
	if !validation.IsValidDays(b.DefaultDays) {
		return errors.NewConfigurationError("BACKEND_DEFAULT_DAYS must be between 0 and 14", nil)
	}
	return nil
}

func (p *PreferencesConfig) Validate() error {
	if !p.Type.IsValid() {
		return errors.NewConfigurationError("PREFERENCES_TYPE must be one of: memory, redis, database", nil)
	}

	if p.Type == StoreTypeRedis {
		return p.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis preferences", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case "sqlite":
		if d.SQLitePath == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty when DB_DRIVER is sqlite", nil)
		}
		return nil
	case "postgres":
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: sqlite, postgres", nil)
	}

	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (l *LoggingConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
	if l.EnableFile && l.FilePath == "" {
		return errors.NewConfigurationError("LOG_FILE_PATH cannot be empty when LOG_ENABLE_FILE is set", nil)
	}
	return nil
}
