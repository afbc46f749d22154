package config

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			PIDFile:      "/var/run/mentalload.pid",
			MaxBodyBytes: 1 << 20,
			ShutdownSec:  10,
			RateLimit: RateLimitConfig{
				Enabled:           false,
				PerIP:             true,
				RequestsPerSecond: 20,
				Burst:             40,
			},
		},
		Auth: AuthConfig{
			Enabled:  false,
			User:     "",
			Password: "",
		},
		Scoring: ScoringConfig{
			ImbalanceDistance: 30,
			HighBurdenMin:     4,
			LowFairnessMax:    3,
		},
		Sessions: SessionsConfig{
			TTLMinutes:       120,
			SweepIntervalSec: 60,
			MaxSessions:      1000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
