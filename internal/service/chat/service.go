package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/pastvoices/backend/internal/model/chat"
	"github.com/pastvoices/backend/internal/model/persona"
)

var (
	// ErrPersonaNotFound signals an unresolvable persona id.
	ErrPersonaNotFound = errors.New("persona not found")
	// ErrNoActivePersona signals a session that has not picked a persona yet.
	ErrNoActivePersona = errors.New("no persona selected for this session")
	// ErrResponderUnavailable signals that no generation backend is wired.
	ErrResponderUnavailable = errors.New("responder unavailable")
)

// Responder is the external generation capability: assembled persona plus
// history in, reply text out, or a classified failure.
type Responder interface {
	Generate(ctx context.Context, p persona.Persona, history []chat.Message, userMessage string) (string, error)
}

// PersonaRef selects a persona for SwitchPersona either by catalog id or by
// a fully-formed custom persona value, resolved before any session mutation.
type PersonaRef struct {
	ID     int64
	Custom *persona.Persona
}

// ByID references a persona already in the catalog.
func ByID(id int64) PersonaRef {
	return PersonaRef{ID: id}
}

// ByValue references a custom persona the client invented without a prior
// create round-trip.
func ByValue(p persona.Persona) PersonaRef {
	return PersonaRef{Custom: &p}
}

// Service wires the persona catalog, session/message store, and responder
// into the conversation use cases.
type Service struct {
	personas  persona.Store
	store     chat.Store
	responder Responder

	// Writes against one session token are serialized so message ids and
	// timestamps never interleave for a single conversation.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService builds the orchestrator. The responder may be nil when no
// provider is configured; SendMessage then fails with ErrResponderUnavailable.
func NewService(personas persona.Store, store chat.Store, responder Responder) *Service {
	return &Service{
		personas:  personas,
		store:     store,
		responder: responder,
		locks:     make(map[string]*sync.Mutex),
	}
}

func (s *Service) lockToken(token string) func() {
	s.mu.Lock()
	l, ok := s.locks[token]
	if !ok {
		l = &sync.Mutex{}
		s.locks[token] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

// StartOrGetSession acquires a session idempotently. A blank token mints a
// fresh one; a known token returns the existing session, updating its
// persona as a side effect when a different personaID is supplied. The
// boolean reports whether a new session was created.
func (s *Service) StartOrGetSession(ctx context.Context, token string, personaID int64) (chat.Session, bool, error) {
	if token == "" {
		token = uuid.NewString()
	}
	defer s.lockToken(token)()

	session, err := s.store.GetSession(ctx, token)
	if errors.Is(err, chat.ErrSessionNotFound) {
		created, err := s.store.CreateSession(ctx, token, personaID)
		return created, err == nil, err
	}
	if err != nil {
		return chat.Session{}, false, err
	}

	if personaID != 0 && session.PersonaID != personaID {
		session, err = s.store.SetSessionPersona(ctx, token, personaID)
		return session, false, err
	}
	return session, false, nil
}

// GetSession retrieves a session by token.
func (s *Service) GetSession(ctx context.Context, token string) (chat.Session, error) {
	return s.store.GetSession(ctx, token)
}

// Transcript returns the session's messages in chronological order.
func (s *Service) Transcript(ctx context.Context, token string) ([]chat.Message, error) {
	return s.store.ListMessages(ctx, token)
}

// SwitchPersona resolves the referenced persona, binds it to the session,
// and appends a system message marking the switch in the transcript. The
// persona is resolved before any mutation, so an unknown id leaves the
// session untouched.
func (s *Service) SwitchPersona(ctx context.Context, token string, ref PersonaRef) (chat.Session, error) {
	var p persona.Persona
	if ref.Custom != nil {
		// Custom personas are registered through the catalog so later
		// prompt assembly can resolve them by id.
		created, err := s.personas.CreateCustom(ref.Custom.Name)
		if err != nil {
			return chat.Session{}, err
		}
		p = created
	} else {
		found, ok := s.personas.FindByID(ref.ID)
		if !ok {
			return chat.Session{}, ErrPersonaNotFound
		}
		p = found
	}

	defer s.lockToken(token)()

	if _, err := s.store.GetSession(ctx, token); err != nil {
		return chat.Session{}, err
	}

	session, err := s.store.SetSessionPersona(ctx, token, p.ID)
	if err != nil {
		return chat.Session{}, err
	}

	notice := fmt.Sprintf("You are now chatting with %s. The AI will adapt to this new personality while maintaining conversation context.", p.Name)
	if _, err := s.store.AppendMessage(ctx, token, chat.RoleSystem, notice, p.ID); err != nil {
		return chat.Session{}, err
	}

	log.Printf("[chat] session=%s switched to persona=%d (%s)", token, p.ID, p.Name)
	return session, nil
}

// SendMessage records the user's turn, asks the responder for the persona's
// reply, and records it. A failed generation leaves the user message in the
// log and appends no assistant entry.
func (s *Service) SendMessage(ctx context.Context, token, content string) (chat.Message, chat.Message, error) {
	if strings.TrimSpace(content) == "" {
		return chat.Message{}, chat.Message{}, chat.ErrEmptyContent
	}

	defer s.lockToken(token)()

	session, err := s.store.GetSession(ctx, token)
	if err != nil {
		return chat.Message{}, chat.Message{}, err
	}
	if !session.HasPersona() {
		return chat.Message{}, chat.Message{}, ErrNoActivePersona
	}

	p, ok := s.personas.FindByID(session.PersonaID)
	if !ok {
		return chat.Message{}, chat.Message{}, ErrPersonaNotFound
	}

	userMessage, err := s.store.AppendMessage(ctx, token, chat.RoleUser, content, session.PersonaID)
	if err != nil {
		return chat.Message{}, chat.Message{}, err
	}

	if s.responder == nil {
		return userMessage, chat.Message{}, ErrResponderUnavailable
	}

	transcript, err := s.store.ListMessages(ctx, token)
	if err != nil {
		return userMessage, chat.Message{}, err
	}

	// The prompt replays the history excluding the message being answered;
	// the responder appends the literal input once.
	history := make([]chat.Message, 0, len(transcript))
	for _, msg := range transcript {
		if msg.ID != userMessage.ID {
			history = append(history, msg)
		}
	}

	reply, err := s.responder.Generate(ctx, p, history, content)
	if err != nil {
		return userMessage, chat.Message{}, err
	}

	assistantMessage, err := s.store.AppendMessage(ctx, token, chat.RoleAssistant, reply, session.PersonaID)
	if err != nil {
		return userMessage, chat.Message{}, err
	}

	return userMessage, assistantMessage, nil
}

// ClearChat abandons the caller's token and establishes a fresh empty
// session. Nothing under the old token is deleted; its history simply
// becomes unreachable through normal session acquisition.
func (s *Service) ClearChat(ctx context.Context) (chat.Session, error) {
	token := uuid.NewString()
	defer s.lockToken(token)()
	return s.store.CreateSession(ctx, token, 0)
}
