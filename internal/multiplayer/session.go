package multiplayer

import (
	"sync"
	"time"
)

// Session is one connected player.
type Session struct {
	ID      SessionID
	User    string
	Started time.Time
}

// SessionRegistry tracks active sessions.
// Safe for concurrent use by SSH handlers.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[SessionID]Session
}

// NewSessionRegistry creates an empty registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[SessionID]Session)}
}

// Register adds a session and returns the number of active sessions.
func (r *SessionRegistry) Register(s Session) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
	return len(r.sessions)
}

// Unregister removes a session and returns it.
func (r *SessionRegistry) Unregister(id SessionID) (Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	return s, ok
}

// Count returns the number of registered sessions.
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
