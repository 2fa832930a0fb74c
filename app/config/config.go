package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all application configuration. It is loaded once at startup
// and injected into the components that need it.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Auth   AuthConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DBConfig holds Badger datastore settings
type DBConfig struct {
	Path      string
	BackupDir string
}

// AuthConfig holds session signing settings
type AuthConfig struct {
	// CookieSecret keys the HMAC over session cookie values.
	CookieSecret string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Addr:         ":" + getEnv("PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		DB: DBConfig{
			Path:      getEnv("DB_PATH", "data/badger"),
			BackupDir: getEnv("BACKUP_DIR", "data/backups"),
		},
		Auth: AuthConfig{
			CookieSecret: getEnv("COOKIE_SECRET", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.DB.Path == "" {
		return fmt.Errorf("DB_PATH is required")
	}
	return nil
}

// ValidateServe checks the settings the HTTP server additionally needs
func (c *Config) ValidateServe() error {
	if c.Auth.CookieSecret == "" {
		return fmt.Errorf("COOKIE_SECRET is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
