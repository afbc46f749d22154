// Package session keeps in-progress questionnaires in memory.
package session

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/haskel/mentalload/internal/catalog"
	"github.com/haskel/mentalload/internal/rating"
)

// ResultsSection is the notes key for the results page.
const ResultsSection = "results"

// Session is one couple's questionnaire.
type Session struct {
	ID        string
	Stage     Stage
	Consented bool
	Household catalog.Household
	Ratings   *rating.Set
	// Notes are keyed by pillar name or ResultsSection.
	Notes map[string]string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Stage:     StageHome,
		Household: catalog.DefaultHousehold(),
		Ratings:   rating.NewSet(),
		Notes:     make(map[string]string),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy.
func (s *Session) Clone() *Session {
	c := *s
	c.Ratings = s.Ratings.Clone()
	c.Notes = maps.Clone(s.Notes)
	if c.Notes == nil {
		c.Notes = make(map[string]string)
	}
	return &c
}

// Reset returns the session to its initial state, keeping the id and
// creation time.
func (s *Session) Reset() {
	s.Stage = StageHome
	s.Consented = false
	s.Household = catalog.DefaultHousehold()
	s.Ratings = rating.NewSet()
	s.Notes = make(map[string]string)
}

// MoveTo changes stage. Leaving consent needs agreement and entering
// results needs at least one rating.
func (s *Session) MoveTo(next Stage) error {
	if !s.Stage.CanMoveTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.Stage, next)
	}
	switch {
	case s.Stage == StageConsent && next == StageSetup && !s.Consented:
		return ErrConsentRequired
	case next == StageResults && s.Ratings.Len() == 0:
		return ErrNoRatings
	}
	s.Stage = next
	return nil
}

// Consent records agreement (or its withdrawal).
func (s *Session) Consent(agreed bool) {
	s.Consented = agreed
}

// SetHousehold replaces the household and drops ratings for tasks that no
// longer apply. It returns the ids of dropped ratings.
func (s *Session) SetHousehold(h catalog.Household) []string {
	s.Household = h

	var dropped []string
	for _, r := range s.Ratings.Ratings() {
		if !r.Task.Applies(h) {
			s.Ratings.Delete(r.Task.ID)
			dropped = append(dropped, r.Task.ID)
		}
	}
	return dropped
}

// Tasks returns the catalog tasks that apply to the household.
func (s *Session) Tasks(c *catalog.Catalog) []catalog.Task {
	return c.Filter(s.Household)
}

// Rate stores or overwrites a rating.
func (s *Session) Rate(r rating.Rating) error {
	if !r.Task.Applies(s.Household) {
		return fmt.Errorf("%w: %s", ErrTaskNotApplicable, r.Task.ID)
	}
	s.Ratings.Put(r)
	return nil
}

// Unrate removes a rating, reporting whether one existed.
func (s *Session) Unrate(taskID string) bool {
	return s.Ratings.Delete(taskID)
}

// SetNote stores a note. Blank text removes it.
func (s *Session) SetNote(section, text string) error {
	if section != ResultsSection {
		if _, err := catalog.ParsePillar(section); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidSection, section)
		}
	}
	if s.Notes == nil {
		s.Notes = make(map[string]string)
	}
	if strings.TrimSpace(text) == "" {
		delete(s.Notes, section)
		return nil
	}
	s.Notes[section] = text
	return nil
}

// Progress counts rated tasks among those that apply.
func (s *Session) Progress(c *catalog.Catalog) (rated, total int) {
	tasks := s.Tasks(c)
	for _, t := range tasks {
		if _, ok := s.Ratings.Get(t.ID); ok {
			rated++
		}
	}
	return rated, len(tasks)
}

// View is the wire form of a session.
type View struct {
	ID        string            `json:"id"`
	Stage     Stage             `json:"stage"`
	Consented bool              `json:"consented"`
	Household catalog.Household `json:"household"`
	Ratings   []rating.Input    `json:"ratings"`
	Notes     map[string]string `json:"notes"`
	Rated     int               `json:"rated"`
	Total     int               `json:"total"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// View renders the session for clients.
func (s *Session) View(c *catalog.Catalog) View {
	rated, total := s.Progress(c)
	return View{
		ID:        s.ID,
		Stage:     s.Stage,
		Consented: s.Consented,
		Household: s.Household,
		Ratings:   s.Ratings.Inputs(),
		Notes:     maps.Clone(s.Notes),
		Rated:     rated,
		Total:     total,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// Document converts the session into a savable answers file.
func (s *Session) Document() *rating.Document {
	return rating.NewDocument(s.Household, s.Ratings, s.Notes)
}
