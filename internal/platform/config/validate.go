package config

import (
	"errors"
	"fmt"
	"slices"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.App.validate(),
		c.Server.validate(),
		c.Log.validate(),
		c.Assets.validate(c.App.Production),
		c.API.validate(),
		c.Database.validate(c.API.Mode),
		c.Client.validate(c.API.Mode),
		c.Telemetry.validate(),
	)
}

func (a *AppConfig) validate() error {
	var errs []error

	if a.Name == "" {
		errs = append(errs, errors.New("app.name must not be empty"))
	}
	if len(a.Locales) == 0 {
		errs = append(errs, errors.New("app.locales must not be empty"))
	}
	if !slices.Contains(a.Locales, a.DefaultLocale) {
		errs = append(errs, fmt.Errorf("app.default_locale %q must be one of app.locales %v", a.DefaultLocale, a.Locales))
	}
	if a.RenderTimeout <= 0 {
		errs = append(errs, errors.New("app.render_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (a *AssetsConfig) validate(production bool) error {
	if production && a.Manifest == "" {
		return errors.New("assets.manifest must not be empty in production")
	}
	return nil
}

func (a *APIConfig) validate() error {
	switch a.Mode {
	case APIModeLocal, APIModeRemote:
		return nil
	default:
		return fmt.Errorf("api.mode must be one of: local, remote; got %q", a.Mode)
	}
}

func (d *DatabaseConfig) validate(mode string) error {
	if mode == APIModeLocal && d.Path == "" {
		return errors.New("database.path must not be empty when api.mode is local")
	}
	return nil
}

func (cl *ClientConfig) validate(mode string) error {
	if mode != APIModeRemote {
		return nil
	}

	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must not be negative, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1 when rate limiting, got %d",
			cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
