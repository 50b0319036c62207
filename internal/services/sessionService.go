package services

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rukundohamza104/radical-design-ltd/internal/utils"
)

// SessionStore tracks which opaque identifiers currently represent an
// authenticated admin. The in-memory implementation suits a single instance;
// a multi-instance deployment needs a shared store behind the same interface.
type SessionStore interface {
	Create() (string, error)
	IsActive(sessionID string) bool
	Destroy(sessionID string)
}

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]time.Time // session id -> creation time
	ttl      time.Duration        // zero means sessions never expire
}

// NewMemorySessionStore builds a process-local session store. A ttl of zero
// preserves the no-expiry behavior; a positive ttl is checked lazily on
// IsActive.
func NewMemorySessionStore(ttl time.Duration) SessionStore {
	return &memorySessionStore{
		sessions: make(map[string]time.Time),
		ttl:      ttl,
	}
}

// NewSessionStoreFromEnv reads ADMIN_SESSION_TTL (a Go duration, e.g. "24h").
// Unset or invalid values mean no expiry.
func NewSessionStoreFromEnv() SessionStore {
	var ttl time.Duration
	if raw := os.Getenv("ADMIN_SESSION_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Warn().Str("value", raw).Msg("Invalid ADMIN_SESSION_TTL, sessions will not expire")
		} else {
			ttl = parsed
		}
	}
	return NewMemorySessionStore(ttl)
}

func (s *memorySessionStore) Create() (string, error) {
	token, err := utils.GenerateSessionToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.sessions[token] = time.Now()
	s.mu.Unlock()

	return token, nil
}

func (s *memorySessionStore) IsActive(sessionID string) bool {
	s.mu.RLock()
	createdAt, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return false
	}
	if s.ttl > 0 && time.Since(createdAt) > s.ttl {
		s.Destroy(sessionID)
		return false
	}
	return true
}

// Destroy is idempotent; removing an unknown id is a no-op.
func (s *memorySessionStore) Destroy(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}
