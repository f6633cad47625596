package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JoeSaf/homeStream/internal/platform/metrics"
)

// CookieName carries the session id. It has no expiry so the curated list
// lives exactly as long as the browser session.
const CookieName = "hs_session"

const defaultTTL = 2 * time.Hour

// Store keeps every live session in memory.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*State
	ttl      time.Duration
	now      func() time.Time
	log      *zap.Logger
	metrics  *metrics.Registry
}

// NewStore creates a store that forgets sessions idle for longer than ttl.
func NewStore(ttl time.Duration, log *zap.Logger, m *metrics.Registry) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		sessions: make(map[string]*State),
		ttl:      ttl,
		now:      time.Now,
		log:      log,
		metrics:  m,
	}
}

// Get returns the session with id and refreshes its idle timer.
func (s *Store) Get(id string) (*State, bool) {
	s.mu.RLock()
	state, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		state.touch(s.now())
	}
	return state, ok
}

// Create starts a new empty session.
func (s *Store) Create() (string, *State) {
	id := uuid.New().String()
	state := newState(s.now())

	s.mu.Lock()
	s.sessions[id] = state
	n := len(s.sessions)
	s.mu.Unlock()

	s.metrics.Sessions(n)
	return id, state
}

// FromRequest resolves the caller's session, creating one and setting the
// cookie when the request carries none or an unknown id.
func (s *Store) FromRequest(w http.ResponseWriter, r *http.Request) *State {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		if state, ok := s.Get(c.Value); ok {
			return state
		}
	}
	id, state := s.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return state
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops idle sessions and returns how many were removed.
func (s *Store) Sweep() int {
	now := s.now()
	s.mu.Lock()
	removed := 0
	for id, state := range s.sessions {
		if state.idleSince(now) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()

	s.metrics.Sessions(n)
	return removed
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.log.Info("expired idle sessions", zap.Int("removed", n), zap.Int("live", s.Len()))
			}
		}
	}
}
