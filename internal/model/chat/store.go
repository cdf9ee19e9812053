package chat

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"
)

var (
	// ErrSessionNotFound signals an unknown session token.
	ErrSessionNotFound = errors.New("session not found")
	// ErrEmptyContent rejects blank user/assistant message bodies.
	ErrEmptyContent = errors.New("message content is required")
)

// Store persists sessions and their append-only message logs. The memory
// implementation is the reference scope; a durable driver can be swapped in
// behind the same contract.
type Store interface {
	CreateSession(ctx context.Context, token string, personaID int64) (Session, error)
	GetSession(ctx context.Context, token string) (Session, error)
	SetSessionPersona(ctx context.Context, token string, personaID int64) (Session, error)
	AppendMessage(ctx context.Context, token, role, content string, personaID int64) (Message, error)
	ListMessages(ctx context.Context, token string) ([]Message, error)
}

// MemoryStore implements Store with mutex-guarded maps and monotonic
// counters, process-wide lifetime.
type MemoryStore struct {
	mu            sync.RWMutex
	sessions      map[string]Session
	messages      map[string][]Message
	nextSessionID int64
	nextMessageID int64
}

// NewMemoryStore bootstraps the in-memory session/message store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		messages: make(map[string][]Message),
	}
}

// CreateSession registers a session under the given token. Existing tokens
// are returned unchanged rather than duplicated.
func (s *MemoryStore) CreateSession(_ context.Context, token string, personaID int64) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.sessions[token]; ok {
		return existing, nil
	}

	s.nextSessionID++
	session := Session{
		ID:        s.nextSessionID,
		Token:     token,
		PersonaID: personaID,
		CreatedAt: time.Now().UTC(),
	}
	s.sessions[token] = session
	s.messages[token] = make([]Message, 0, 16)
	return session, nil
}

// GetSession retrieves a session by token.
func (s *MemoryStore) GetSession(_ context.Context, token string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[token]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return session, nil
}

// SetSessionPersona overwrites the session's active persona.
func (s *MemoryStore) SetSessionPersona(_ context.Context, token string, personaID int64) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	session.PersonaID = personaID
	s.sessions[token] = session
	return session, nil
}

// AppendMessage assigns the next id and current timestamp and appends to the
// session's log. User and assistant turns must carry content.
func (s *MemoryStore) AppendMessage(_ context.Context, token, role, content string, personaID int64) (Message, error) {
	if (role == RoleUser || role == RoleAssistant) && strings.TrimSpace(content) == "" {
		return Message{}, ErrEmptyContent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return Message{}, ErrSessionNotFound
	}

	s.nextMessageID++
	message := Message{
		ID:        s.nextMessageID,
		SessionID: token,
		Role:      role,
		Content:   content,
		PersonaID: personaID,
		Timestamp: time.Now().UTC(),
	}
	s.messages[token] = append(s.messages[token], message)
	return message, nil
}

// ListMessages returns the session's transcript sorted by timestamp
// ascending, ties broken by id.
func (s *MemoryStore) ListMessages(_ context.Context, token string) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages, ok := s.messages[token]
	if !ok {
		return nil, ErrSessionNotFound
	}

	copied := make([]Message, len(messages))
	copy(copied, messages)
	sort.Slice(copied, func(i, j int) bool {
		if copied[i].Timestamp.Equal(copied[j].Timestamp) {
			return copied[i].ID < copied[j].ID
		}
		return copied[i].Timestamp.Before(copied[j].Timestamp)
	})
	return copied, nil
}
