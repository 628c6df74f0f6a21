package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"
)

const sessionPrefix = "ses_"

// Session represents one connected viewer
type Session struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	StartedAt time.Time `json:"started_at"`
	IsNew     bool      `json:"-"`
}

// generateID creates a new random session ID
func generateID() (string, error) {
	bytes := make([]byte, 3) // 6 hex characters
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return sessionPrefix + hex.EncodeToString(bytes), nil
}

// Registry tracks the sessions of named viewers. A name reconnecting
// gets its existing session back.
type Registry struct {
	mu     sync.Mutex
	byName map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Session)}
}

// GetOrCreate returns the session for name, creating one if necessary.
func (r *Registry) GetOrCreate(name string) (*Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("session name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if sess, ok := r.byName[name]; ok {
		out := *sess
		out.IsNew = false
		return &out, nil
	}

	id, err := generateID()
	if err != nil {
		return nil, err
	}
	sess := &Session{ID: id, Name: name, StartedAt: time.Now()}
	r.byName[name] = sess

	out := *sess
	out.IsNew = true
	return &out, nil
}

// End forgets the session for name.
func (r *Registry) End(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byName, strings.TrimSpace(name))
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byName)
}
