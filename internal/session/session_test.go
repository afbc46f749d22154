package session

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/haskel/mentalload/internal/catalog"
	"github.com/haskel/mentalload/internal/rating"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestStore(cfg Config) (*Store, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := NewStore(cfg, testLogger())
	s.now = clock.Now
	return s, clock
}

func mustTask(t *testing.T, id string) catalog.Task {
	t.Helper()
	task, ok := catalog.Default().Lookup(id)
	if !ok {
		t.Fatalf("unknown task %s", id)
	}
	return task
}

func mustRate(t *testing.T, id string, responsibility int) rating.Rating {
	t.Helper()
	r, err := rating.New(mustTask(t, id), responsibility, 3, 3, false)
	if err != nil {
		t.Fatalf("rating.New: %v", err)
	}
	return r
}

func TestStage_CanMoveTo(t *testing.T) {
	tests := []struct {
		from, to Stage
		want     bool
	}{
		{StageHome, StageConsent, true},
		{StageHome, StageLearnMore, true},
		{StageLearnMore, StageHome, true},
		{StageConsent, StageSetup, true},
		{StageSetup, StageConsent, true},
		{StageSetup, StageQuestionnaire, true},
		{StageQuestionnaire, StageSetup, true},
		{StageQuestionnaire, StageResults, true},
		{StageResults, StageQuestionnaire, true},
		{StageResults, StageHome, true},
		{StageQuestionnaire, StageHome, true},
		{StageHome, StageResults, false},
		{StageHome, StageQuestionnaire, false},
		{StageConsent, StageResults, false},
		{StageLearnMore, StageConsent, false},
		{StageResults, StageSetup, false},
		{StageHome, Stage("nowhere"), false},
	}

	for _, tt := range tests {
		if got := tt.from.CanMoveTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s: expected %v, got %v", tt.from, tt.to, tt.want, got)
		}
	}
}

func TestParseStage(t *testing.T) {
	if st, err := ParseStage(" Results "); err != nil || st != StageResults {
		t.Errorf("expected results, got %q, %v", st, err)
	}
	if _, err := ParseStage("checkout"); err == nil {
		t.Error("expected error for unknown stage")
	}
}

func TestSession_FullFlow(t *testing.T) {
	s := newSession("s1", time.Now())

	if err := s.MoveTo(StageConsent); err != nil {
		t.Fatalf("home -> consent: %v", err)
	}
	if err := s.MoveTo(StageSetup); !errors.Is(err, ErrConsentRequired) {
		t.Errorf("expected ErrConsentRequired, got %v", err)
	}

	s.Consent(true)
	if err := s.MoveTo(StageSetup); err != nil {
		t.Fatalf("consent -> setup: %v", err)
	}
	if err := s.MoveTo(StageQuestionnaire); err != nil {
		t.Fatalf("setup -> questionnaire: %v", err)
	}
	if err := s.MoveTo(StageResults); !errors.Is(err, ErrNoRatings) {
		t.Errorf("expected ErrNoRatings, got %v", err)
	}

	if err := s.Rate(mustRate(t, "cooking", 70)); err != nil {
		t.Fatalf("Rate: %v", err)
	}
	if err := s.MoveTo(StageResults); err != nil {
		t.Fatalf("questionnaire -> results: %v", err)
	}
	if s.Stage != StageResults {
		t.Errorf("expected results stage, got %s", s.Stage)
	}
}

func TestSession_InvalidTransitionKeepsStage(t *testing.T) {
	s := newSession("s1", time.Now())

	err := s.MoveTo(StageResults)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if s.Stage != StageHome {
		t.Errorf("stage changed to %s", s.Stage)
	}
}

func TestSession_RateRequiresApplicableTask(t *testing.T) {
	s := newSession("s1", time.Now())

	err := s.Rate(mustRate(t, "pet_care", 50))
	if !errors.Is(err, ErrTaskNotApplicable) {
		t.Fatalf("expected ErrTaskNotApplicable, got %v", err)
	}

	s.SetHousehold(catalog.Household{HasPets: true})
	if err := s.Rate(mustRate(t, "pet_care", 50)); err != nil {
		t.Errorf("expected pet task to apply with pets: %v", err)
	}
}

func TestSession_SetHouseholdDropsRatings(t *testing.T) {
	s := newSession("s1", time.Now())
	s.SetHousehold(catalog.Household{Children: 2, HasPets: true, EmployedA: true, EmployedB: true})

	for _, id := range []string{"kids_school", "pet_care", "cooking"} {
		if err := s.Rate(mustRate(t, id, 50)); err != nil {
			t.Fatalf("Rate(%s): %v", id, err)
		}
	}

	dropped := s.SetHousehold(catalog.Household{HasPets: true})
	if len(dropped) != 1 || dropped[0] != "kids_school" {
		t.Errorf("expected kids_school dropped, got %v", dropped)
	}
	if s.Ratings.Len() != 2 {
		t.Errorf("expected 2 ratings left, got %d", s.Ratings.Len())
	}
}

func TestSession_Notes(t *testing.T) {
	s := newSession("s1", time.Now())

	if err := s.SetNote("anticipation", "lots of planning"); err != nil {
		t.Fatalf("SetNote: %v", err)
	}
	if err := s.SetNote(ResultsSection, "talk on sunday"); err != nil {
		t.Fatalf("SetNote results: %v", err)
	}
	if err := s.SetNote("garage", "x"); !errors.Is(err, ErrInvalidSection) {
		t.Errorf("expected ErrInvalidSection, got %v", err)
	}

	if err := s.SetNote("anticipation", "   "); err != nil {
		t.Fatalf("SetNote blank: %v", err)
	}
	if _, ok := s.Notes["anticipation"]; ok {
		t.Error("blank note should remove the entry")
	}
	if s.Notes[ResultsSection] != "talk on sunday" {
		t.Errorf("unexpected notes %v", s.Notes)
	}
}

func TestSession_Reset(t *testing.T) {
	created := time.Now()
	s := newSession("keep-me", created)
	s.MoveTo(StageConsent)
	s.Consent(true)
	s.SetHousehold(catalog.Household{Children: 1})
	s.Rate(mustRate(t, "cooking", 20))
	s.SetNote(ResultsSection, "x")

	s.Reset()

	if s.ID != "keep-me" || !s.CreatedAt.Equal(created) {
		t.Errorf("reset should keep identity, got %s %v", s.ID, s.CreatedAt)
	}
	if s.Stage != StageHome || s.Consented {
		t.Errorf("expected fresh stage and consent, got %s %v", s.Stage, s.Consented)
	}
	if s.Household != catalog.DefaultHousehold() {
		t.Errorf("expected default household, got %+v", s.Household)
	}
	if s.Ratings.Len() != 0 || len(s.Notes) != 0 {
		t.Error("expected ratings and notes cleared")
	}
}

func TestSession_CloneIsDeep(t *testing.T) {
	s := newSession("s1", time.Now())
	s.Rate(mustRate(t, "cooking", 20))
	s.SetNote(ResultsSection, "original")

	c := s.Clone()
	c.Rate(mustRate(t, "laundry", 80))
	c.SetNote(ResultsSection, "changed")

	if s.Ratings.Len() != 1 {
		t.Errorf("original ratings changed: %d", s.Ratings.Len())
	}
	if s.Notes[ResultsSection] != "original" {
		t.Errorf("original notes changed: %v", s.Notes)
	}
}

func TestSession_View(t *testing.T) {
	s := newSession("s1", time.Now())
	s.Rate(mustRate(t, "cooking", 20))

	v := s.View(catalog.Default())
	if v.ID != "s1" || v.Stage != StageHome {
		t.Errorf("unexpected view %+v", v)
	}
	if v.Rated != 1 {
		t.Errorf("expected 1 rated, got %d", v.Rated)
	}
	want := len(catalog.Default().Filter(catalog.DefaultHousehold()))
	if v.Total != want {
		t.Errorf("expected total %d, got %d", want, v.Total)
	}
	if len(v.Ratings) != 1 || v.Ratings[0].TaskID != "cooking" {
		t.Errorf("unexpected ratings %+v", v.Ratings)
	}
}

func TestStore_CreateGet(t *testing.T) {
	s, _ := newTestStore(DefaultConfig())

	sess, err := s.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	id, err := uuid.Parse(sess.ID)
	if err != nil {
		t.Fatalf("expected uuid id, got %q", sess.ID)
	}
	if id.Version() != 7 {
		t.Errorf("expected v7 uuid, got v%d", id.Version())
	}

	got, err := s.Get(sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Stage != StageHome {
		t.Errorf("expected home stage, got %s", got.Stage)
	}

	got.Rate(mustRate(t, "cooking", 10))
	again, _ := s.Get(sess.ID)
	if again.Ratings.Len() != 0 {
		t.Error("mutating a returned copy changed the stored session")
	}
}

func TestStore_GetUnknown(t *testing.T) {
	s, _ := newTestStore(DefaultConfig())

	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Update(t *testing.T) {
	s, clock := newTestStore(DefaultConfig())
	sess, _ := s.Create()

	clock.Advance(time.Minute)
	updated, err := s.Update(sess.ID, func(se *Session) error {
		return se.MoveTo(StageConsent)
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Stage != StageConsent {
		t.Errorf("expected consent, got %s", updated.Stage)
	}
	if !updated.UpdatedAt.After(sess.UpdatedAt) {
		t.Error("expected UpdatedAt to advance")
	}
}

func TestStore_UpdateFailureLeavesSession(t *testing.T) {
	s, _ := newTestStore(DefaultConfig())
	sess, _ := s.Create()

	_, err := s.Update(sess.ID, func(se *Session) error {
		se.Consent(true)
		se.Rate(mustRate(t, "cooking", 10))
		return se.MoveTo(StageResults)
	})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	got, _ := s.Get(sess.ID)
	if got.Consented || got.Ratings.Len() != 0 {
		t.Error("failed update should not be stored")
	}
}

func TestStore_Delete(t *testing.T) {
	s, _ := newTestStore(DefaultConfig())
	sess, _ := s.Create()

	if err := s.Delete(sess.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d", s.Len())
	}
}

func TestStore_Expiry(t *testing.T) {
	s, clock := newTestStore(Config{TTL: time.Hour, SweepInterval: time.Minute})
	sess, _ := s.Create()

	clock.Advance(50 * time.Minute)
	if _, err := s.Get(sess.ID); err != nil {
		t.Fatalf("session should be alive: %v", err)
	}

	// Get refreshed the expiry.
	clock.Advance(50 * time.Minute)
	if _, err := s.Get(sess.ID); err != nil {
		t.Fatalf("session should still be alive: %v", err)
	}

	clock.Advance(61 * time.Minute)
	if _, err := s.Get(sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected expired session, got %v", err)
	}
}

func TestStore_Sweep(t *testing.T) {
	s, clock := newTestStore(Config{TTL: time.Hour})
	old, _ := s.Create()
	clock.Advance(30 * time.Minute)
	fresh, _ := s.Create()
	clock.Advance(45 * time.Minute)

	if n := s.Sweep(); n != 1 {
		t.Errorf("expected 1 removed, got %d", n)
	}
	if _, err := s.Get(old.ID); !errors.Is(err, ErrNotFound) {
		t.Error("old session should be gone")
	}
	if _, err := s.Get(fresh.ID); err != nil {
		t.Errorf("fresh session should remain: %v", err)
	}
}

func TestStore_MaxSessions(t *testing.T) {
	s, clock := newTestStore(Config{TTL: time.Hour, MaxSessions: 2})

	s.Create()
	s.Create()
	if _, err := s.Create(); !errors.Is(err, ErrStoreFull) {
		t.Fatalf("expected ErrStoreFull, got %v", err)
	}

	clock.Advance(2 * time.Hour)
	if _, err := s.Create(); err != nil {
		t.Errorf("expired sessions should free capacity: %v", err)
	}
}

func TestStore_StartStop(t *testing.T) {
	s := NewStore(Config{TTL: time.Millisecond, SweepInterval: 5 * time.Millisecond}, testLogger())
	s.Create()

	s.Start(context.Background())
	if !s.Running() {
		t.Error("expected store to be running")
	}

	deadline := time.Now().Add(2 * time.Second)
	for s.Len() > 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if s.Len() != 0 {
		t.Errorf("expected sweep loop to remove expired session, got %d", s.Len())
	}

	s.Stop()
	if s.Running() {
		t.Error("expected store to be stopped")
	}
	s.Stop()
}

func TestStore_ContextCancelStopsLoop(t *testing.T) {
	s := NewStore(Config{SweepInterval: time.Millisecond}, testLogger())
	ctx, cancel := context.WithCancel(context.Background())

	s.Start(ctx)
	cancel()

	deadline := time.Now().Add(2 * time.Second)
	for s.Running() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if s.Running() {
		t.Error("expected loop to end with its context")
	}
	s.Stop()
}

func TestStore_Concurrent(t *testing.T) {
	s, _ := newTestStore(Config{TTL: time.Hour})
	sess, _ := s.Create()
	task := mustTask(t, "cooking")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Update(sess.ID, func(se *Session) error {
				r, err := rating.New(task, i, 3, 3, false)
				if err != nil {
					return err
				}
				return se.Rate(r)
			})
			s.Get(sess.ID)
		}(i)
	}
	wg.Wait()

	got, _ := s.Get(sess.ID)
	if got.Ratings.Len() != 1 {
		t.Errorf("expected single rating for cooking, got %d", got.Ratings.Len())
	}
}
