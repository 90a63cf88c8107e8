package auth

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xelthorlang/xelthor/internal/common"
)

// DefaultSessionTTL is how long a session stays valid after login.
const DefaultSessionTTL = 24 * time.Hour

// Session is an authenticated context identified by an opaque token. The
// role is copied from the account at login time, not re-derived.
type Session struct {
	Token     string
	UserName  string
	Role      string
	ExpiresAt time.Time
}

// SessionRegistry issues, validates, and expires session tokens in process
// memory. Expiry is lazy: an expired session is deleted when it is next
// looked up.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionRegistry(ttl time.Duration) *SessionRegistry {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionRegistry{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create mints a new session for the user and registers it.
func (r *SessionRegistry) Create(username, role string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := &Session{
		Token:     uuid.NewString(),
		UserName:  username,
		Role:      role,
		ExpiresAt: r.now().Add(r.ttl),
	}
	r.sessions[s.Token] = s
	return s
}

// Get returns the session for the token. Unknown tokens yield
// common.ErrInvalidToken; expired sessions are deleted and yield
// common.ErrSessionExpired.
func (r *SessionRegistry) Get(token string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[token]
	if !ok {
		return nil, fmt.Errorf("session: %w", common.ErrInvalidToken)
	}
	if !r.now().Before(s.ExpiresAt) {
		delete(r.sessions, token)
		return nil, fmt.Errorf("session: %w", common.ErrSessionExpired)
	}
	return s, nil
}

// Delete removes the session if present and reports whether it existed.
// Idempotent.
func (r *SessionRegistry) Delete(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sessions[token]
	delete(r.sessions, token)
	return ok
}

// DeleteForUser removes every session owned by the user and returns how
// many were removed. Used when an account is deleted.
func (r *SessionRegistry) DeleteForUser(username string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for token, s := range r.sessions {
		if s.UserName == username {
			delete(r.sessions, token)
			n++
		}
	}
	return n
}
