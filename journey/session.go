// Package journey exposes the planning engine over HTTP. Each planning
// session owns one itinerary store; sessions live in memory only and die
// with the process.
package journey

import (
	"sync"

	"miyako/checklist"
	"miyako/idgen"
	"miyako/planner"
)

// Session serializes access to one itinerary store. The store itself is
// single-owner; the mutex only guards against overlapping HTTP requests
// from the same client.
type Session struct {
	ID string

	mu    sync.Mutex
	store *planner.Store
}

// With runs fn while holding the session's lock.
func (s *Session) With(fn func(*planner.Store)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.store)
}

// Registry tracks active planning sessions.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ids      idgen.Generator
}

func NewRegistry(ids idgen.Generator) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		ids:      ids,
	}
}

// Create starts a session with today as the sole active date and the
// default packing checklist.
func (r *Registry) Create(today string) *Session {
	sess := &Session{
		ID:    r.ids.NewID(),
		store: planner.NewStore(r.ids, today),
	}
	sess.store.ReplaceChecklist(checklist.Default(r.ids))

	r.mu.Lock()
	r.sessions[sess.ID] = sess
	r.mu.Unlock()
	return sess
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.sessions[id]
	return sess, ok
}
