package server

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/haskel/mentalload/internal/catalog"
	"github.com/haskel/mentalload/internal/config"
	"github.com/haskel/mentalload/internal/hotspot"
	"github.com/haskel/mentalload/internal/monitor"
	"github.com/haskel/mentalload/internal/server/middleware"
	"github.com/haskel/mentalload/internal/session"
)

type Server struct {
	httpServer *http.Server
	catalog    *catalog.Catalog
	store      *session.Store
	collector  *monitor.Collector
	config     atomic.Pointer[config.Config]
	detector   atomic.Pointer[hotspot.Detector]
	logger     *slog.Logger
	version    string
	authConfig *middleware.AuthConfig
}

func New(cfg *config.Config, cat *catalog.Catalog, store *session.Store, collector *monitor.Collector, logger *slog.Logger, version string) *Server {
	authConfig := middleware.NewAuthConfig(cfg.Auth.Enabled, cfg.Auth.User, cfg.Auth.Password)

	s := &Server{
		catalog:    cat,
		store:      store,
		collector:  collector,
		logger:     logger,
		version:    version,
		authConfig: authConfig,
	}
	s.config.Store(cfg)
	s.detector.Store(hotspot.NewDetector(cfg.Thresholds()))

	mux := s.setupRoutes(cfg)

	handler := middleware.Chain(
		mux,
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logging(logger, "/health", "/ready"),
		middleware.SecurityHeaders(),
		middleware.CORS(middleware.CORSConfig{
			AllowedOrigins:   cfg.Server.CORS.AllowedOrigins,
			AllowCredentials: cfg.Server.CORS.AllowCredentials,
		}),
		middleware.RateLimit(&middleware.RateLimitConfig{
			Enabled:           cfg.Server.RateLimit.Enabled,
			PerIP:             cfg.Server.RateLimit.PerIP,
			RequestsPerSecond: cfg.Server.RateLimit.RequestsPerSecond,
			Burst:             cfg.Server.RateLimit.Burst,
			ExcludePaths:      []string{"/health", "/ready"},
		}),
		middleware.MaxBody(cfg.Server.MaxBodyBytes),
		// Debug routes carry their own auth.
		middleware.Auth(authConfig, "/health", "/debug/*"),
	)

	s.httpServer = &http.Server{
		Addr:              cfg.Address(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s
}

// ReloadConfig reloads configuration that can be changed at runtime:
// credentials and hotspot thresholds. Listener, middleware limits and
// debug routes require a restart.
func (s *Server) ReloadConfig(cfg *config.Config) {
	s.logger.Info("reloading configuration")

	s.authConfig.Update(cfg.Auth.Enabled, cfg.Auth.User, cfg.Auth.Password)
	s.detector.Store(hotspot.NewDetector(cfg.Thresholds()))
	s.config.Store(cfg)

	s.logger.Info("configuration reloaded",
		"auth_enabled", cfg.Auth.Enabled,
		"imbalance_distance", cfg.Scoring.ImbalanceDistance,
		"high_burden_min", cfg.Scoring.HighBurdenMin,
		"low_fairness_max", cfg.Scoring.LowFairnessMax,
	)
}

// Detector returns the detector built from the current thresholds.
func (s *Server) Detector() *hotspot.Detector {
	return s.detector.Load()
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.logger.Info("server starting",
		"addr", s.httpServer.Addr,
	)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}
