package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/haskel/mentalload/internal/catalog"
	"github.com/haskel/mentalload/internal/rating"
	"github.com/haskel/mentalload/internal/results"
	"github.com/haskel/mentalload/internal/server/middleware"
	"github.com/haskel/mentalload/internal/session"
)

var (
	// errMalformed marks request bodies that are not valid JSON.
	errMalformed = errors.New("malformed request body")
	// errInvalidInput marks well-formed requests with unusable values.
	errInvalidInput = errors.New("invalid input")
	errNoRating     = errors.New("rating not found")
	errEmptyBody    = errors.New("empty body")
)

type InfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// CatalogResponse lists tasks grouped by pillar.
type CatalogResponse struct {
	Household *catalog.Household `json:"household,omitempty"`
	Count     int                `json:"count"`
	Sections  []catalog.Section  `json:"sections"`
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, InfoResponse{
		Name:    "mentalload",
		Version: s.version,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !s.store.Running() {
		s.writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "not ready"})
		return
	}
	s.writeJSON(w, http.StatusOK, HealthResponse{Status: "ready"})
}

// handleCatalog handles GET /catalog. Any of children, employed_a,
// employed_b, pets or vehicle in the query filters the list for that
// household; unset flags take the fresh-session defaults.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	h, filtered, err := householdFromQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	tasks := s.catalog.All()
	resp := CatalogResponse{}
	if filtered {
		tasks = s.catalog.Filter(h)
		resp.Household = &h
	}
	resp.Count = len(tasks)
	resp.Sections = catalog.GroupByPillar(tasks)

	s.writeJSON(w, http.StatusOK, resp)
}

func householdFromQuery(r *http.Request) (catalog.Household, bool, error) {
	q := r.URL.Query()
	h := catalog.DefaultHousehold()
	filtered := false

	if v := q.Get("children"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return h, false, fmt.Errorf("%w: children must be a non-negative integer", errInvalidInput)
		}
		h.Children = n
		filtered = true
	}

	flags := []struct {
		name string
		dst  *bool
	}{
		{"employed_a", &h.EmployedA},
		{"employed_b", &h.EmployedB},
		{"pets", &h.HasPets},
		{"vehicle", &h.HasVehicle},
	}
	for _, f := range flags {
		v := q.Get(f.name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return h, false, fmt.Errorf("%w: %s must be a boolean", errInvalidInput, f.name)
		}
		*f.dst = b
		filtered = true
	}

	return h, filtered, nil
}

// handleScore handles POST /score. The body is an answers document; only
// its ratings are scored.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var doc rating.Document
	if err := decodeJSON(r, &doc); err != nil {
		s.writeError(w, r, err)
		return
	}

	set, err := doc.Set(s.catalog)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, results.Compute(set.Ratings(), s.Detector()))
}

// decodeJSON reads one JSON value from the body. Unknown fields are
// rejected so typos in rating names do not pass silently.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %w", errMalformed, errEmptyBody)
		}
		return fmt.Errorf("%w: %v", errMalformed, err)
	}
	return nil
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errMalformed):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNotFound),
		errors.Is(err, session.ErrInvalidSection),
		errors.Is(err, errNoRating):
		return http.StatusNotFound
	case errors.Is(err, session.ErrInvalidTransition),
		errors.Is(err, session.ErrConsentRequired),
		errors.Is(err, session.ErrNoRatings):
		return http.StatusConflict
	// Unknown ids inside a body are a validation failure; unknown ids in
	// the path are mapped to 404 by the handler.
	case errors.Is(err, rating.ErrInvalidRating),
		errors.Is(err, rating.ErrUnknownTask),
		errors.Is(err, session.ErrTaskNotApplicable),
		errors.Is(err, errInvalidInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, session.ErrStoreFull):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			"error", err,
			"path", r.URL.Path,
			"request_id", middleware.GetRequestID(r.Context()),
		)
		msg = "internal server error"
	}
	middleware.WriteError(w, r, status, msg)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response",
			"error", err,
			"status", status,
		)
	}
}
