package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected default host 0.0.0.0, got %s", cfg.Server.Host)
	}

	if cfg.Scoring.LowFairnessMax != 3 {
		t.Errorf("expected default low fairness threshold 3, got %d", cfg.Scoring.LowFairnessMax)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Logging.Level)
	}
}

func TestLoad(t *testing.T) {
	content := `
server:
  host: "127.0.0.1"
  port: 9090
  cors:
    allowed_origins: ["http://localhost:3000"]

scoring:
  low_fairness_max: 2

sessions:
  ttl_minutes: 30

logging:
  level: "debug"
  format: "text"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("expected host 127.0.0.1, got %s", cfg.Server.Host)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}

	if len(cfg.Server.CORS.AllowedOrigins) != 1 {
		t.Errorf("expected one CORS origin, got %v", cfg.Server.CORS.AllowedOrigins)
	}

	if cfg.Scoring.LowFairnessMax != 2 {
		t.Errorf("expected low fairness threshold 2, got %d", cfg.Scoring.LowFairnessMax)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}

	// Check that defaults are preserved for unspecified values
	if cfg.Scoring.ImbalanceDistance != 30 {
		t.Errorf("expected default imbalance distance 30, got %d", cfg.Scoring.ImbalanceDistance)
	}
	if cfg.Sessions.MaxSessions != 1000 {
		t.Errorf("expected default max sessions 1000, got %d", cfg.Sessions.MaxSessions)
	}
}

func TestLoadInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	os.WriteFile(configPath, []byte("scoring:\n  high_burden_min: 9\n"), 0644)

	if _, err := Load(configPath); err == nil {
		t.Error("expected validation error")
	}
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	if _, err := Load(""); !errors.Is(err, ErrNoConfig) {
		t.Errorf("expected ErrNoConfig, got %v", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	// Empty path returns defaults
	cfg := LoadOrDefault("")
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}

	// Non-existent file returns defaults
	cfg = LoadOrDefault("/nonexistent/path/config.yaml")
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
}

func TestConversions(t *testing.T) {
	cfg := Default()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 9000

	if got := cfg.Address(); got != "127.0.0.1:9000" {
		t.Errorf("expected 127.0.0.1:9000, got %s", got)
	}

	th := cfg.Thresholds()
	if th.ImbalanceDistance != 30 || th.HighBurdenMin != 4 || th.LowFairnessMax != 3 {
		t.Errorf("unexpected thresholds %+v", th)
	}

	sc := cfg.SessionConfig()
	if sc.TTL != 2*time.Hour || sc.SweepInterval != time.Minute || sc.MaxSessions != 1000 {
		t.Errorf("unexpected session config %+v", sc)
	}

	if cfg.ShutdownTimeout() != 10*time.Second {
		t.Errorf("expected 10s shutdown timeout, got %v", cfg.ShutdownTimeout())
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Scoring.LowFairnessMax = 2

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var back Config
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Scoring.LowFairnessMax != 2 || back.Server.Port != cfg.Server.Port {
		t.Errorf("round trip lost values: %+v", back)
	}
}
