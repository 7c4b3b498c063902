package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Backend    BackendConfig
	Session    SessionConfig
	Storefront StorefrontConfig
	Probe      ProbeConfig
	Logger     LoggerConfig
}

// ServerConfig holds the gateway's own listener configuration.
// APIKey is optional; when set, browser requests must carry it.
type ServerConfig struct {
	Host          string
	Port          int
	AllowedOrigin string
	APIKey        string
}

// BackendConfig holds the external bakery API configuration.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig holds where the session token is persisted.
type SessionConfig struct {
	TokenFile string
}

// StorefrontConfig holds display and selection settings.
type StorefrontConfig struct {
	CurrencySymbol string
	MaxQuantity    int
}

// ProbeConfig holds the login-screen connectivity probe settings.
type ProbeConfig struct {
	Timeout    time.Duration
	RetryDelay time.Duration
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "127.0.0.1"),
			Port: getEnvAsInt("SERVER_PORT", 8080),

			AllowedOrigin: getEnv("SERVER_ALLOWED_ORIGIN", "*"),
			APIKey:        getEnv("SERVER_API_KEY", ""),
		},
		Backend: BackendConfig{
			BaseURL: getEnv("BACKEND_BASE_URL", "https://ovenaura-server.onrender.com/api"),
			Timeout: getEnvAsDuration("BACKEND_TIMEOUT", 15*time.Second),
		},
		Session: SessionConfig{
			TokenFile: getEnv("SESSION_TOKEN_FILE", defaultTokenFile()),
		},
		Storefront: StorefrontConfig{
			CurrencySymbol: getEnv("STOREFRONT_CURRENCY_SYMBOL", "₹"),
			MaxQuantity:    getEnvAsInt("STOREFRONT_MAX_QUANTITY", 10),
		},
		Probe: ProbeConfig{
			Timeout:    getEnvAsDuration("PROBE_TIMEOUT", 5*time.Second),
			RetryDelay: getEnvAsDuration("PROBE_RETRY_DELAY", 3*time.Second),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.AllowedOrigin == "" {
		return fmt.Errorf("allowed origin is required")
	}

	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend base URL is required")
	}

	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid backend base URL: %s", c.Backend.BaseURL)
	}

	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("backend timeout must be positive")
	}

	if c.Session.TokenFile == "" {
		return fmt.Errorf("session token file is required")
	}

	if c.Storefront.CurrencySymbol == "" {
		return fmt.Errorf("currency symbol is required")
	}

	if c.Storefront.MaxQuantity < 1 {
		return fmt.Errorf("max quantity must be at least 1")
	}

	if c.Probe.Timeout <= 0 {
		return fmt.Errorf("probe timeout must be positive")
	}

	if c.Probe.RetryDelay < 0 {
		return fmt.Errorf("probe retry delay cannot be negative")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".ovenaura-token"
	}
	return filepath.Join(dir, "ovenaura", "token")
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration retrieves an environment variable as a duration ("15s") or returns a default value.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
