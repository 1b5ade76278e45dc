// Package config provides configuration loading and validation for the server.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// API modes.
const (
	APIModeLocal  = "local"
	APIModeRemote = "remote"
)

// Config holds all configuration for the server.
type Config struct {
	App       AppConfig       `koanf:"app"`
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Assets    AssetsConfig    `koanf:"assets"`
	Database  DatabaseConfig  `koanf:"database"`
	API       APIConfig       `koanf:"api"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// AppConfig holds the application settings that end up in the config slice
// of every rendered state tree.
type AppConfig struct {
	Name              string        `koanf:"name"`
	Production        bool          `koanf:"production"`
	DefaultLocale     string        `koanf:"default_locale"`
	Locales           []string      `koanf:"locales"`
	GoogleAnalyticsID string        `koanf:"google_analytics_id"`
	RenderTimeout     time.Duration `koanf:"render_timeout"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// AssetsConfig locates the client bundle and the page templates.
type AssetsConfig struct {
	// Manifest is the path of the bundler's asset manifest. Required in
	// production.
	Manifest string `koanf:"manifest"`

	// PublicDir is served under PublicPath.
	PublicDir  string `koanf:"public_dir"`
	PublicPath string `koanf:"public_path"`

	// TemplatesDir, when set outside production, is re-read on every render.
	TemplatesDir string `koanf:"templates_dir"`
}

// DatabaseConfig holds the sqlite settings.
type DatabaseConfig struct {
	Path string `koanf:"path"`
}

// APIConfig selects the backend the routines call: the in-process services
// over the local database, or a remote API through the instrumented client.
type APIConfig struct {
	Mode string `koanf:"mode"`
}

// ClientConfig holds downstream HTTP client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting. A zero rate disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
