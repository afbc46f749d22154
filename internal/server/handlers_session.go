package server

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/haskel/mentalload/internal/catalog"
	"github.com/haskel/mentalload/internal/export"
	"github.com/haskel/mentalload/internal/rating"
	"github.com/haskel/mentalload/internal/results"
	"github.com/haskel/mentalload/internal/server/middleware"
	"github.com/haskel/mentalload/internal/session"
)

type StageRequest struct {
	Stage string `json:"stage"`
}

type ConsentRequest struct {
	Agreed bool `json:"agreed"`
}

type HouseholdResponse struct {
	Session session.View `json:"session"`
	// Dropped lists ratings removed because their task no longer applies.
	Dropped []string `json:"dropped"`
}

type TasksResponse struct {
	Household catalog.Household `json:"household"`
	Rated     int               `json:"rated"`
	Total     int               `json:"total"`
	Sections  []catalog.Section `json:"sections"`
}

// RatingRequest is the body of PUT /sessions/{id}/ratings/{task}.
type RatingRequest struct {
	Responsibility int  `json:"responsibility"`
	Burden         int  `json:"burden"`
	Fairness       int  `json:"fairness"`
	NotApplicable  bool `json:"not_applicable"`
}

type NoteRequest struct {
	Text string `json:"text"`
}

type ResultsResponse struct {
	SessionID string `json:"session_id"`
	results.Report
	Notes map[string]string `json:"notes"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Create()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/sessions/"+sess.ID)
	s.writeJSON(w, http.StatusCreated, sess.View(s.catalog))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sess.View(s.catalog))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleResetSession(w http.ResponseWriter, r *http.Request) {
	s.updateSession(w, r, func(sess *session.Session) error {
		sess.Reset()
		return nil
	})
}

func (s *Server) handleStage(w http.ResponseWriter, r *http.Request) {
	var req StageRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	next, err := session.ParseStage(req.Stage)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("%w: %v", errInvalidInput, err))
		return
	}

	s.updateSession(w, r, func(sess *session.Session) error {
		return sess.MoveTo(next)
	})
}

func (s *Server) handleConsent(w http.ResponseWriter, r *http.Request) {
	var req ConsentRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.updateSession(w, r, func(sess *session.Session) error {
		sess.Consent(req.Agreed)
		return nil
	})
}

func (s *Server) handleHousehold(w http.ResponseWriter, r *http.Request) {
	var h catalog.Household
	if err := decodeJSON(r, &h); err != nil {
		s.writeError(w, r, err)
		return
	}
	if h.Children < 0 {
		s.writeError(w, r, fmt.Errorf("%w: children must not be negative", errInvalidInput))
		return
	}

	dropped := []string{}
	sess, err := s.store.Update(r.PathValue("id"), func(sess *session.Session) error {
		dropped = append(dropped, sess.SetHousehold(h)...)
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if len(dropped) > 0 {
		s.logger.Debug("ratings dropped after household change",
			"session", sess.ID,
			"dropped", dropped,
		)
	}

	s.writeJSON(w, http.StatusOK, HouseholdResponse{
		Session: sess.View(s.catalog),
		Dropped: dropped,
	})
}

func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rated, total := sess.Progress(s.catalog)
	s.writeJSON(w, http.StatusOK, TasksResponse{
		Household: sess.Household,
		Rated:     rated,
		Total:     total,
		Sections:  catalog.GroupByPillar(sess.Tasks(s.catalog)),
	})
}

func (s *Server) handlePutRating(w http.ResponseWriter, r *http.Request) {
	task, ok := s.lookupTask(w, r)
	if !ok {
		return
	}

	var req RatingRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	rt, err := rating.New(task, req.Responsibility, req.Burden, req.Fairness, req.NotApplicable)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.updateSession(w, r, func(sess *session.Session) error {
		return sess.Rate(rt)
	})
}

func (s *Server) handleDeleteRating(w http.ResponseWriter, r *http.Request) {
	task, ok := s.lookupTask(w, r)
	if !ok {
		return
	}

	s.updateSession(w, r, func(sess *session.Session) error {
		if !sess.Unrate(task.ID) {
			return fmt.Errorf("%w: %s", errNoRating, task.ID)
		}
		return nil
	})
}

func (s *Server) handleNote(w http.ResponseWriter, r *http.Request) {
	var req NoteRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	section := r.PathValue("section")
	s.updateSession(w, r, func(sess *session.Session) error {
		return sess.SetNote(section, req.Text)
	})
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, ResultsResponse{
		SessionID: sess.ID,
		Report:    results.Compute(sess.Ratings.Ratings(), s.Detector()),
		Notes:     sess.Notes,
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	ratings := sess.Ratings.Ratings()
	var buf bytes.Buffer
	err = export.WriteCSV(&buf, export.Input{
		Ratings: ratings,
		Report:  results.Compute(ratings, s.Detector()),
		Notes:   sess.Notes,
	})
	if err != nil {
		s.writeError(w, r, fmt.Errorf("write export: %w", err))
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Error("failed to write export",
			"error", err,
			"session", sess.ID,
		)
	}
}

// lookupTask resolves the {task} path value, writing 404 when unknown.
func (s *Server) lookupTask(w http.ResponseWriter, r *http.Request) (catalog.Task, bool) {
	id := r.PathValue("task")
	task, ok := s.catalog.Lookup(id)
	if !ok {
		middleware.WriteError(w, r, http.StatusNotFound, fmt.Errorf("%w: %q", rating.ErrUnknownTask, id).Error())
		return catalog.Task{}, false
	}
	return task, true
}

// updateSession applies fn to the {id} session and writes its view.
func (s *Server) updateSession(w http.ResponseWriter, r *http.Request, fn func(*session.Session) error) {
	sess, err := s.store.Update(r.PathValue("id"), fn)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sess.View(s.catalog))
}
