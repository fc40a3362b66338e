// Package store holds the two pieces of application-lifetime state: the
// session flag and the alert list. Both are injected where needed rather
// than living as package globals, so tests can build isolated instances.
package store

import "sync"

// Session is the process-wide "is there an active session" flag. It starts
// active; the backend rejects stale cookies with a 401 on the first call,
// which flips it off. Mutations come only from a login success or a 401.
type Session struct {
	mu     sync.Mutex
	active bool
	subs   []func(bool)
}

// NewSession returns a session flag in the active state.
func NewSession() *Session {
	return &Session{active: true}
}

// Active reports the current flag value.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// LogIn marks the session active.
func (s *Session) LogIn() { s.set(true) }

// LogOut marks the session inactive.
func (s *Session) LogOut() { s.set(false) }

func (s *Session) set(active bool) {
	s.mu.Lock()
	changed := s.active != active
	s.active = active
	subs := s.subs
	s.mu.Unlock()

	if !changed {
		return
	}
	for _, fn := range subs {
		fn(active)
	}
}

// Subscribe registers fn to run on every state change. Subscribers are never
// removed; the stores live for the whole process.
func (s *Session) Subscribe(fn func(active bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
