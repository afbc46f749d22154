package config

import (
	"errors"
	"fmt"
)

func (c *Config) Validate() error {
	var errs []error

	if err := c.Server.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("server: %w", err))
	}

	if err := c.Scoring.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("scoring: %w", err))
	}

	if err := c.Sessions.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("sessions: %w", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	if err := c.Auth.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("auth: %w", err))
	}

	if err := c.validateDebugSecurity(); err != nil {
		errs = append(errs, fmt.Errorf("debug: %w", err))
	}

	return errors.Join(errs...)
}

// validateDebugSecurity refuses debug or profiling endpoints that nothing
// protects.
func (c *Config) validateDebugSecurity() error {
	if !c.Debug.Enabled && !c.Server.Profiling.Enabled {
		return nil
	}
	if c.Debug.Auth.Token != "" || c.Auth.Enabled {
		return nil
	}
	return fmt.Errorf("debug or profiling endpoints require auth.enabled or debug.auth.token")
}

func (s *ServerConfig) Validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("port must be between 1 and 65535, got %d", s.Port))
	}
	if s.MaxBodyBytes < 0 {
		errs = append(errs, fmt.Errorf("max_body_bytes must be non-negative"))
	}
	if s.ShutdownSec < 0 {
		errs = append(errs, fmt.Errorf("shutdown_timeout_sec must be non-negative"))
	}
	if s.RateLimit.Enabled {
		if s.RateLimit.RequestsPerSecond <= 0 {
			errs = append(errs, fmt.Errorf("rate_limit.requests_per_second must be positive"))
		}
		if s.RateLimit.Burst < 1 {
			errs = append(errs, fmt.Errorf("rate_limit.burst must be at least 1"))
		}
	}
	for _, origin := range s.CORS.AllowedOrigins {
		if origin == "*" && s.CORS.AllowCredentials {
			errs = append(errs, fmt.Errorf("cors: wildcard origin cannot be combined with allow_credentials"))
		}
	}

	return errors.Join(errs...)
}

func (s *ScoringConfig) Validate() error {
	t := s.toThresholds()
	return t.Validate()
}

func (s *SessionsConfig) Validate() error {
	var errs []error

	if s.TTLMinutes < 1 {
		errs = append(errs, fmt.Errorf("ttl_minutes must be at least 1"))
	}
	if s.SweepIntervalSec < 1 {
		errs = append(errs, fmt.Errorf("sweep_interval_sec must be at least 1"))
	}
	if s.MaxSessions < 0 {
		errs = append(errs, fmt.Errorf("max_sessions must be non-negative (0 for unlimited)"))
	}

	return errors.Join(errs...)
}

func (l *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[l.Level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", l.Level)
	}

	validFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validFormats[l.Format] {
		return fmt.Errorf("invalid log format: %s (valid: json, text)", l.Format)
	}

	return nil
}

func (a *AuthConfig) Validate() error {
	if a.Enabled {
		if a.User == "" {
			return fmt.Errorf("user cannot be empty when auth is enabled")
		}
		if a.Password == "" {
			return fmt.Errorf("password cannot be empty when auth is enabled")
		}
	}
	return nil
}
