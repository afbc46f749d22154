package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/haskel/mentalload/internal/monitor"
	"github.com/haskel/mentalload/internal/rating"
	"github.com/haskel/mentalload/internal/sample"
	"github.com/haskel/mentalload/internal/session"
)

// SampleRequest is the request body for POST /debug/sessions/{id}/sample.
// An empty body fills a balanced scenario with a time-based seed.
type SampleRequest struct {
	Scenario string  `json:"scenario,omitempty"`
	Seed     *uint64 `json:"seed,omitempty"`
}

type DebugStatusResponse struct {
	DebugEnabled bool              `json:"debug_enabled"`
	Version      string            `json:"version"`
	Sessions     int               `json:"sessions"`
	Tasks        int               `json:"tasks"`
	System       *monitor.Snapshot `json:"system"`
}

// handleSample handles POST /debug/sessions/{id}/sample.
// Replaces the session's ratings and notes with generated ones; the stage
// is left alone.
func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	var req SampleRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		s.writeError(w, r, err)
		return
	}

	scenario, err := sample.ParseScenario(req.Scenario)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("%w: %v", errInvalidInput, err))
		return
	}

	seed := uint64(time.Now().UnixNano())
	if req.Seed != nil {
		seed = *req.Seed
	}
	gen := sample.NewGenerator(seed)

	sess, err := s.store.Update(r.PathValue("id"), func(sess *session.Session) error {
		set, err := rating.Resolve(s.catalog, gen.Generate(sess.Tasks(s.catalog), scenario))
		if err != nil {
			return err
		}
		sess.Ratings = set
		sess.Notes = sample.Notes()
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info("session filled with sample answers",
		"session", sess.ID,
		"scenario", scenario,
		"ratings", sess.Ratings.Len(),
	)

	s.writeJSON(w, http.StatusOK, sess.View(s.catalog))
}

// handleDebugStatus handles GET /debug/status.
func (s *Server) handleDebugStatus(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, DebugStatusResponse{
		DebugEnabled: s.config.Load().Debug.Enabled,
		Version:      s.version,
		Sessions:     s.store.Len(),
		Tasks:        s.catalog.Len(),
		System:       s.collector.Collect(),
	})
}
