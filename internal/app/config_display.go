package app

import (
	"log"
	"os"
	"sort"
	"strings"

	"weatherview.app/internal/config"
)

// ConfigDisplayer handles configuration and environment variable display
type ConfigDisplayer struct{}

// NewConfigDisplayer creates a new configuration displayer
func NewConfigDisplayer() *ConfigDisplayer {
	return &ConfigDisplayer{}
}

// PrintConfig prints the effective configuration with secrets masked
func (cd *ConfigDisplayer) PrintConfig(cfg *config.Config) {
	log.Println("==== APPLICATION CONFIGURATION ====")

	log.Printf("SERVER:\n")
	log.Printf("  Port: %d\n", cfg.Server.Port)

	log.Printf("\nWEATHER BACKEND:\n")
	log.Printf("  Base URL: %s\n", cfg.Backend.BaseURL)
	log.Printf("  Timeout: %d seconds\n", cfg.Backend.TimeoutSeconds)
	log.Printf("  Default Days: %d\n", cfg.Backend.DefaultDays)
	log.Printf("  Request Logging: %t\n", cfg.Backend.EnableLogging)

	log.Printf("\nPREFERENCES:\n")
	log.Printf("  Type: %s\n", cfg.Preferences.Type.String())
	log.Printf("  Key Prefix: %s\n", cfg.Preferences.KeyPrefix)
	if cfg.Preferences.Type == config.StoreTypeRedis {
		log.Printf("  Redis Addr: %s\n", cfg.Preferences.Redis.Addr)
		log.Printf("  Redis Password: %s\n", cd.maskString(cfg.Preferences.Redis.Password))
		log.Printf("  Redis DB: %d\n", cfg.Preferences.Redis.DB)
	}

	if cfg.Preferences.Type == config.StoreTypeDatabase {
		log.Printf("\nDATABASE:\n")
		log.Printf("  Driver: %s\n", cfg.Database.Driver)
		if cfg.Database.Driver == "sqlite" {
			log.Printf("  Path: %s\n", cfg.Database.SQLitePath)
		} else {
			log.Printf("  Host: %s\n", cfg.Database.Host)
			log.Printf("  Port: %d\n", cfg.Database.Port)
			log.Printf("  User: %s\n", cfg.Database.User)
			log.Printf("  Password: %s\n", cd.maskString(cfg.Database.Password))
			log.Printf("  Name: %s\n", cfg.Database.Name)
			log.Printf("  SSLMode: %s\n", cfg.Database.SSLMode)
		}
	}

	log.Printf("\nLOGGING:\n")
	log.Printf("  Level: %s\n", cfg.Logging.Level)
	log.Printf("  File: %t (%s)\n", cfg.Logging.EnableFile, cfg.Logging.FilePath)

	log.Println("===================================")
}

// PrintAllEnvVars prints all environment variables available to the application
func (cd *ConfigDisplayer) PrintAllEnvVars() {
	log.Println("==== ENVIRONMENT VARIABLES ====")

	envVars := os.Environ()
	sort.Strings(envVars)

	for _, env := range envVars {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}

		if cd.isSensitive(key) {
			value = cd.maskString(value)
		}

		log.Printf("%s=%s\n", key, value)
	}

	log.Println("===============================")
}

// maskString masks sensitive information like passwords
func (cd *ConfigDisplayer) maskString(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	visible := len(s) / 4
	return s[:visible] + strings.Repeat("*", len(s)-visible)
}

// isSensitive checks if an environment variable key is considered sensitive
func (cd *ConfigDisplayer) isSensitive(key string) bool {
	sensitiveKeys := []string{
		"PASSWORD", "SECRET", "TOKEN", "KEY", "PASS", "PWD",
	}

	key = strings.ToUpper(key)
	for _, sensitive := range sensitiveKeys {
		if strings.Contains(key, sensitive) {
			return true
		}
	}

	return false
}
