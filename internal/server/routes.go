package server

import (
	"net/http"
	"net/http/pprof"

	"github.com/haskel/mentalload/internal/config"
	"github.com/haskel/mentalload/internal/server/middleware"
)

func (s *Server) setupRoutes(cfg *config.Config) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleInfo)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ready", s.handleReady)
	mux.HandleFunc("GET /catalog", s.handleCatalog)
	mux.HandleFunc("POST /score", s.handleScore)

	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	mux.HandleFunc("DELETE /sessions/{id}", s.handleDeleteSession)
	mux.HandleFunc("POST /sessions/{id}/reset", s.handleResetSession)
	mux.HandleFunc("POST /sessions/{id}/stage", s.handleStage)
	mux.HandleFunc("POST /sessions/{id}/consent", s.handleConsent)
	mux.HandleFunc("PUT /sessions/{id}/household", s.handleHousehold)
	mux.HandleFunc("GET /sessions/{id}/tasks", s.handleTasks)
	mux.HandleFunc("PUT /sessions/{id}/ratings/{task}", s.handlePutRating)
	mux.HandleFunc("DELETE /sessions/{id}/ratings/{task}", s.handleDeleteRating)
	mux.HandleFunc("PUT /sessions/{id}/notes/{section}", s.handleNote)
	mux.HandleFunc("GET /sessions/{id}/results", s.handleResults)
	mux.HandleFunc("GET /sessions/{id}/export", s.handleExport)

	// Setup debug routes with separate authentication
	s.setupDebugRoutes(mux, cfg)

	return mux
}

// setupDebugRoutes configures debug and profiling endpoints with authentication.
func (s *Server) setupDebugRoutes(mux *http.ServeMux, cfg *config.Config) {
	profilingEnabled := cfg.Server.Profiling.Enabled
	debugEnabled := cfg.Debug.Enabled

	if !profilingEnabled && !debugEnabled {
		return
	}

	debugAuth := middleware.DebugAuth(&middleware.DebugAuthConfig{
		Token:    cfg.Debug.Auth.Token,
		Fallback: s.authConfig,
	})

	if profilingEnabled {
		s.logger.Info("profiling endpoints enabled at /debug/pprof/ (auth required)")
		mux.Handle("GET /debug/pprof/{$}", debugAuth(http.HandlerFunc(pprof.Index)))
		mux.Handle("GET /debug/pprof/cmdline", debugAuth(http.HandlerFunc(pprof.Cmdline)))
		mux.Handle("GET /debug/pprof/profile", debugAuth(http.HandlerFunc(pprof.Profile)))
		mux.Handle("GET /debug/pprof/symbol", debugAuth(http.HandlerFunc(pprof.Symbol)))
		mux.Handle("POST /debug/pprof/symbol", debugAuth(http.HandlerFunc(pprof.Symbol)))
		mux.Handle("GET /debug/pprof/trace", debugAuth(http.HandlerFunc(pprof.Trace)))
		// Named profiles: heap, goroutine, allocs, block, mutex, threadcreate.
		mux.Handle("GET /debug/pprof/{name}", debugAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pprof.Handler(r.PathValue("name")).ServeHTTP(w, r)
		})))
	}

	if debugEnabled {
		s.logger.Warn("debug mode enabled - debug endpoints require authentication")
		mux.Handle("GET /debug/status", debugAuth(http.HandlerFunc(s.handleDebugStatus)))
		mux.Handle("POST /debug/sessions/{id}/sample", debugAuth(http.HandlerFunc(s.handleSample)))
	}
}
