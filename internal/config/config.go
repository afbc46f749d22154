package config

import (
	"net"
	"strconv"
	"time"

	"github.com/haskel/mentalload/internal/hotspot"
	"github.com/haskel/mentalload/internal/session"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Auth     AuthConfig     `yaml:"auth"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Sessions SessionsConfig `yaml:"sessions"`
	Logging  LoggingConfig  `yaml:"logging"`
	Debug    DebugConfig    `yaml:"debug"`
}

// DebugConfig holds debug mode configuration.
type DebugConfig struct {
	// Enabled mounts /debug/status and the sample filler.
	Enabled bool `yaml:"enabled"`
	// Auth holds debug-specific authentication.
	// If set, debug endpoints require this token.
	// If not set but main auth is enabled, main auth is used.
	Auth DebugAuthConfig `yaml:"auth"`
}

// DebugAuthConfig holds debug endpoint authentication.
type DebugAuthConfig struct {
	// Token for Bearer authentication on debug endpoints.
	Token string `yaml:"token"`
}

type ServerConfig struct {
	Host         string          `yaml:"host"`
	Port         int             `yaml:"port"`
	PIDFile      string          `yaml:"pid_file"`
	MaxBodyBytes int64           `yaml:"max_body_bytes"`
	ShutdownSec  int             `yaml:"shutdown_timeout_sec"`
	Profiling    ProfilingConfig `yaml:"profiling"`
	RateLimit    RateLimitConfig `yaml:"rate_limit"`
	CORS         CORSConfig      `yaml:"cors"`
}

type ProfilingConfig struct {
	Enabled bool `yaml:"enabled"`
}

type RateLimitConfig struct {
	Enabled           bool    `yaml:"enabled"`
	PerIP             bool    `yaml:"per_ip"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// CORSConfig controls browser access from other origins. An empty origin
// list disables CORS handling.
type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowCredentials bool     `yaml:"allow_credentials"`
}

type AuthConfig struct {
	Enabled  bool   `yaml:"enabled"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// ScoringConfig holds hotspot thresholds.
type ScoringConfig struct {
	ImbalanceDistance int `yaml:"imbalance_distance"`
	HighBurdenMin     int `yaml:"high_burden_min"`
	LowFairnessMax    int `yaml:"low_fairness_max"`
}

type SessionsConfig struct {
	TTLMinutes       int `yaml:"ttl_minutes"`
	SweepIntervalSec int `yaml:"sweep_interval_sec"`
	MaxSessions      int `yaml:"max_sessions"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownSec) * time.Second
}

// Thresholds converts the scoring section for the detector.
func (c *Config) Thresholds() hotspot.Thresholds {
	return c.Scoring.toThresholds()
}

func (s *ScoringConfig) toThresholds() hotspot.Thresholds {
	return hotspot.Thresholds{
		ImbalanceDistance: s.ImbalanceDistance,
		HighBurdenMin:     s.HighBurdenMin,
		LowFairnessMax:    s.LowFairnessMax,
	}
}

// SessionConfig converts the sessions section for the store.
func (c *Config) SessionConfig() session.Config {
	return session.Config{
		TTL:           time.Duration(c.Sessions.TTLMinutes) * time.Minute,
		SweepInterval: time.Duration(c.Sessions.SweepIntervalSec) * time.Second,
		MaxSessions:   c.Sessions.MaxSessions,
	}
}
