package assistant

import (
	"sync"
	"time"
)

// Session holds the per-client assistant state: the cart ledger and the
// current view path. Sessions live in memory only and are discarded when
// idle past the registry TTL.
type Session struct {
	ID string

	mu     sync.Mutex
	ledger Ledger
	path   string

	lastSeen time.Time
}

// tryAcquire takes the session for an exclusive voice command. It fails
// immediately when another command is in flight; voice commands are never
// queued behind each other.
func (s *Session) tryAcquire() bool {
	return s.mu.TryLock()
}

// acquire blocks until the session is free. Direct cart endpoints use
// this path so they serialize with voice commands instead of rejecting.
func (s *Session) acquire() {
	s.mu.Lock()
}

func (s *Session) release() {
	s.mu.Unlock()
}

// Registry is the in-memory session store, keyed by the client-supplied
// session id.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewRegistry builds an empty registry. A nil clock falls back to
// time.Now.
func NewRegistry(ttl time.Duration, now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      now,
	}
}

// Get returns the session for the id, creating it on first use, and
// marks it as recently seen.
func (r *Registry) Get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[id]
	if !ok {
		sess = &Session{ID: id, path: "/"}
		r.sessions[id] = sess
	}
	sess.lastSeen = r.now()
	return sess
}

// Sweep drops sessions idle longer than the TTL and returns how many
// were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	removed := 0
	for id, sess := range r.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
