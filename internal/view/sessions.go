package view

import (
	"sync"

	"github.com/google/uuid"
)

// Sessions keeps one Router per visitor session id. State lives only in
// memory and is lost on restart.
type Sessions struct {
	mu      sync.Mutex
	routers map[string]*Router
}

func NewSessions() *Sessions {
	return &Sessions{routers: make(map[string]*Router)}
}

// Start creates a new visitor session at Home and returns its id.
func (s *Sessions) Start() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.routers[id] = NewRouter()
	s.mu.Unlock()
	return id
}

// With runs fn against the router of session id while holding the registry
// lock. A session id that is unknown (for example after a restart) is
// recreated at Home.
func (s *Sessions) With(id string, fn func(r *Router)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.routers[id]
	if !ok {
		r = NewRouter()
		s.routers[id] = r
	}
	fn(r)
}

// End drops the session.
func (s *Sessions) End(id string) {
	s.mu.Lock()
	delete(s.routers, id)
	s.mu.Unlock()
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.routers)
}
