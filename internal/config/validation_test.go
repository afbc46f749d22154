package config

import (
	"testing"
)

func TestValidateDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidateServer(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*ServerConfig)
		wantErr bool
	}{
		{"port zero", func(s *ServerConfig) { s.Port = 0 }, true},
		{"port negative", func(s *ServerConfig) { s.Port = -1 }, true},
		{"port too high", func(s *ServerConfig) { s.Port = 65536 }, true},
		{"port min", func(s *ServerConfig) { s.Port = 1 }, false},
		{"port max", func(s *ServerConfig) { s.Port = 65535 }, false},
		{"negative body limit", func(s *ServerConfig) { s.MaxBodyBytes = -1 }, true},
		{"zero body limit uses default", func(s *ServerConfig) { s.MaxBodyBytes = 0 }, false},
		{"rate limit without rate", func(s *ServerConfig) {
			s.RateLimit.Enabled = true
			s.RateLimit.RequestsPerSecond = 0
		}, true},
		{"rate limit without burst", func(s *ServerConfig) {
			s.RateLimit.Enabled = true
			s.RateLimit.Burst = 0
		}, true},
		{"disabled rate limit ignores values", func(s *ServerConfig) {
			s.RateLimit.RequestsPerSecond = 0
			s.RateLimit.Burst = 0
		}, false},
		{"wildcard origin with credentials", func(s *ServerConfig) {
			s.CORS.AllowedOrigins = []string{"*"}
			s.CORS.AllowCredentials = true
		}, true},
		{"explicit origin with credentials", func(s *ServerConfig) {
			s.CORS.AllowedOrigins = []string{"https://example.org"}
			s.CORS.AllowCredentials = true
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg.Server)
			err := cfg.Server.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("wantErr=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateScoring(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*ScoringConfig)
		wantErr bool
	}{
		{"valid defaults", func(s *ScoringConfig) {}, false},
		{"older fairness rule", func(s *ScoringConfig) { s.LowFairnessMax = 2 }, false},
		{"fairness zero", func(s *ScoringConfig) { s.LowFairnessMax = 0 }, true},
		{"burden over scale", func(s *ScoringConfig) { s.HighBurdenMin = 6 }, true},
		{"distance zero", func(s *ScoringConfig) { s.ImbalanceDistance = 0 }, true},
		{"distance over 50", func(s *ScoringConfig) { s.ImbalanceDistance = 51 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg.Scoring)
			err := cfg.Scoring.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("wantErr=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateSessions(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*SessionsConfig)
		wantErr bool
	}{
		{"valid defaults", func(s *SessionsConfig) {}, false},
		{"unlimited sessions", func(s *SessionsConfig) { s.MaxSessions = 0 }, false},
		{"negative max", func(s *SessionsConfig) { s.MaxSessions = -1 }, true},
		{"zero ttl", func(s *SessionsConfig) { s.TTLMinutes = 0 }, true},
		{"zero sweep", func(s *SessionsConfig) { s.SweepIntervalSec = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg.Sessions)
			err := cfg.Sessions.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("wantErr=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateLogging(t *testing.T) {
	tests := []struct {
		level   string
		format  string
		wantErr bool
	}{
		{"debug", "json", false},
		{"info", "json", false},
		{"warn", "json", false},
		{"error", "json", false},
		{"info", "text", false},
		{"invalid", "json", true},
		{"info", "invalid", true},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.Logging.Level = tt.level
		cfg.Logging.Format = tt.format
		err := cfg.Logging.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("level=%s format=%s: wantErr=%v, got %v", tt.level, tt.format, tt.wantErr, err)
		}
	}
}

func TestValidateAuth(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		user     string
		password string
		wantErr  bool
	}{
		{"disabled no creds", false, "", "", false},
		{"enabled with creds", true, "admin", "secret", false},
		{"enabled no user", true, "", "secret", true},
		{"enabled no password", true, "admin", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Auth.Enabled = tt.enabled
			cfg.Auth.User = tt.user
			cfg.Auth.Password = tt.password
			err := cfg.Auth.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("wantErr=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateDebugSecurity(t *testing.T) {
	tests := []struct {
		name             string
		debugEnabled     bool
		profilingEnabled bool
		authEnabled      bool
		debugToken       string
		wantErr          bool
	}{
		{"no debug no profiling", false, false, false, "", false},
		{"debug enabled with main auth", true, false, true, "", false},
		{"debug enabled with debug token", true, false, false, "secret-token", false},
		{"debug enabled no auth", true, false, false, "", true},
		{"profiling enabled with main auth", false, true, true, "", false},
		{"profiling enabled no auth", false, true, false, "", true},
		{"both enabled with token", true, true, false, "token", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Debug.Enabled = tt.debugEnabled
			cfg.Server.Profiling.Enabled = tt.profilingEnabled
			cfg.Auth.Enabled = tt.authEnabled
			if tt.authEnabled {
				cfg.Auth.User = "admin"
				cfg.Auth.Password = "secret"
			}
			cfg.Debug.Auth.Token = tt.debugToken

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("wantErr=%v, got %v", tt.wantErr, err)
			}
		})
	}
}
