// Package session holds the process-wide conversation history with explicit
// capacity bounds: sessions evict LRU, and each session keeps only its most
// recent turns.
package session

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	defaultMaxSessions = 512
	defaultMaxTurns    = 50
)

// Role is a conversation turn author.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one conversation message.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Config bounds the store. Zero values fall back to defaults.
type Config struct {
	// MaxSessions is the LRU capacity across sessions.
	MaxSessions int
	// MaxTurns caps the retained turns per session; older turns are
	// silently dropped, never summarized.
	MaxTurns int
}

// Store is a bounded, concurrency-safe conversation store.
type Store struct {
	mu       sync.Mutex
	sessions *lru.Cache[string, []Turn]
	maxTurns int
}

// NewStore builds a store with the given bounds.
func NewStore(config Config) (*Store, error) {
	if config.MaxSessions <= 0 {
		config.MaxSessions = defaultMaxSessions
	}
	if config.MaxTurns <= 0 {
		config.MaxTurns = defaultMaxTurns
	}
	cache, err := lru.New[string, []Turn](config.MaxSessions)
	if err != nil {
		return nil, err
	}
	return &Store{sessions: cache, maxTurns: config.MaxTurns}, nil
}

// Get returns a copy of the session's history, oldest first. A missing
// session reads as empty history.
func (s *Store) Get(sessionID string) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil
	}
	out := make([]Turn, len(turns))
	copy(out, turns)
	return out
}

// Append adds turns to the session, creating it on first use and trimming
// oldest-first past the turn cap.
func (s *Store) Append(sessionID string, turns ...Turn) {
	if len(turns) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, _ := s.sessions.Get(sessionID)
	combined := make([]Turn, 0, len(existing)+len(turns))
	combined = append(combined, existing...)
	combined = append(combined, turns...)
	if len(combined) > s.maxTurns {
		combined = combined[len(combined)-s.maxTurns:]
	}
	s.sessions.Add(sessionID, combined)
}

// Reset removes the session's history.
func (s *Store) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.Remove(sessionID)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Len()
}
