package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Config holds store limits.
type Config struct {
	// TTL is how long an untouched session lives.
	TTL time.Duration
	// SweepInterval is how often expired sessions are dropped.
	SweepInterval time.Duration
	// MaxSessions caps live sessions; 0 means unlimited.
	MaxSessions int
}

// DefaultConfig returns the default store limits.
func DefaultConfig() Config {
	return Config{
		TTL:           2 * time.Hour,
		SweepInterval: time.Minute,
		MaxSessions:   1000,
	}
}

// Store holds live sessions in memory.
type Store struct {
	cfg    Config
	logger *slog.Logger
	now    func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
	running  bool
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewStore creates an empty store.
func NewStore(cfg Config, logger *slog.Logger) *Store {
	return &Store{
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session.
func (s *Store) Create() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.cfg.MaxSessions > 0 && len(s.sessions) >= s.cfg.MaxSessions {
		// Expired sessions should not block new ones between sweeps.
		s.sweepLocked(now)
		if len(s.sessions) >= s.cfg.MaxSessions {
			return nil, ErrStoreFull
		}
	}

	sess := newSession(uuid.Must(uuid.NewV7()).String(), now)
	s.sessions[sess.ID] = sess

	s.logger.Debug("session created", "session", sess.ID, "live", len(s.sessions))
	return sess.Clone(), nil
}

// Get returns a copy of the session and refreshes its expiry.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.liveLocked(id)
	if err != nil {
		return nil, err
	}
	sess.UpdatedAt = s.now()
	return sess.Clone(), nil
}

// Update applies fn to a copy of the session and stores it if fn succeeds.
// A failing fn leaves the session untouched.
func (s *Store) Update(id string, fn func(*Session) error) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.liveLocked(id)
	if err != nil {
		return nil, err
	}

	working := sess.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	working.ID = sess.ID
	working.CreatedAt = sess.CreatedAt
	working.UpdatedAt = s.now()

	s.sessions[id] = working
	return working.Clone(), nil
}

// Delete drops a session.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.liveLocked(id); err != nil {
		return err
	}
	delete(s.sessions, id)
	s.logger.Debug("session deleted", "session", id)
	return nil
}

// Len returns the number of stored sessions, including expired ones not
// yet swept.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// liveLocked returns the stored session, dropping it if it has expired.
func (s *Store) liveLocked(id string) (*Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if s.expired(sess, s.now()) {
		delete(s.sessions, id)
		return nil, ErrNotFound
	}
	return sess, nil
}

func (s *Store) expired(sess *Session, now time.Time) bool {
	return s.cfg.TTL > 0 && now.Sub(sess.UpdatedAt) > s.cfg.TTL
}

// Sweep drops expired sessions and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now())
}

func (s *Store) sweepLocked(now time.Time) int {
	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Start starts the periodic sweep goroutine.
func (s *Store) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	s.running = true

	go s.sweepLoop(ctx, s.done)
}

// Stop stops the sweep goroutine and waits for it to exit.
func (s *Store) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.running = false
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// Running reports whether the sweep loop is active.
func (s *Store) Running() bool {
	s.mu.RLock()
	running, done := s.running, s.done
	s.mu.RUnlock()

	if !running {
		return false
	}
	select {
	case <-done:
		return false
	default:
		return true
	}
}

func (s *Store) sweepLoop(ctx context.Context, done chan struct{}) {
	defer close(done)

	interval := s.cfg.SweepInterval
	if interval <= 0 {
		interval = DefaultConfig().SweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.logger.Info("expired sessions removed", "count", n, "live", s.Len())
			}
		}
	}
}
