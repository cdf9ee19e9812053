package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/pastvoices/backend/internal/model/chat"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "chat.db"))
	if err != nil {
		t.Fatalf("New err: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCreateSessionIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.CreateSession(ctx, "token-a", 0)
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}
	second, err := store.CreateSession(ctx, "token-a", 7)
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected the same session row, got ids %d and %d", first.ID, second.ID)
	}
	if second.PersonaID != 0 {
		t.Fatal("re-creation must not overwrite the existing session")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.CreateSession(ctx, "token-a", 2); err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	session, err := store.GetSession(ctx, "token-a")
	if err != nil {
		t.Fatalf("GetSession err: %v", err)
	}
	if session.PersonaID != 2 {
		t.Fatalf("unexpected persona id: %d", session.PersonaID)
	}

	updated, err := store.SetSessionPersona(ctx, "token-a", 5)
	if err != nil {
		t.Fatalf("SetSessionPersona err: %v", err)
	}
	if updated.PersonaID != 5 {
		t.Fatalf("unexpected persona id after update: %d", updated.PersonaID)
	}

	if _, err := store.GetSession(ctx, "missing"); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestMessagesOrderedAndValidated(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.CreateSession(ctx, "token-a", 1); err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	if _, err := store.AppendMessage(ctx, "token-a", chat.RoleUser, "  ", 1); !errors.Is(err, chat.ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
	if _, err := store.AppendMessage(ctx, "missing", chat.RoleUser, "hello", 1); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	for _, content := range []string{"one", "two", "three"} {
		if _, err := store.AppendMessage(ctx, "token-a", chat.RoleUser, content, 1); err != nil {
			t.Fatalf("AppendMessage err: %v", err)
		}
	}

	messages, err := store.ListMessages(ctx, "token-a")
	if err != nil {
		t.Fatalf("ListMessages err: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	for i := 1; i < len(messages); i++ {
		if messages[i].ID <= messages[i-1].ID {
			t.Fatalf("ids not increasing: %d then %d", messages[i-1].ID, messages[i].ID)
		}
		if messages[i].Timestamp.Before(messages[i-1].Timestamp) {
			t.Fatal("messages not ordered by timestamp")
		}
	}
}
