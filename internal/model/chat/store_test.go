package chat

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCreateSessionIdempotent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.CreateSession(ctx, "token-a", 0)
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}
	second, err := store.CreateSession(ctx, "token-a", 7)
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	if first.ID != second.ID || !first.CreatedAt.Equal(second.CreatedAt) {
		t.Fatalf("expected identical session, got %+v and %+v", first, second)
	}
	if second.PersonaID != 0 {
		t.Fatal("re-creation must not overwrite the existing session")
	}
}

func TestGetSessionNotFound(t *testing.T) {
	store := NewMemoryStore()

	if _, err := store.GetSession(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSetSessionPersona(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.CreateSession(ctx, "token-a", 0); err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	updated, err := store.SetSessionPersona(ctx, "token-a", 3)
	if err != nil {
		t.Fatalf("SetSessionPersona err: %v", err)
	}
	if updated.PersonaID != 3 {
		t.Fatalf("unexpected persona id: %d", updated.PersonaID)
	}

	if _, err := store.SetSessionPersona(ctx, "missing", 3); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestAppendMessageAssignsMonotonicIDs(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.CreateSession(ctx, "token-a", 1); err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	first, err := store.AppendMessage(ctx, "token-a", RoleUser, "hello", 1)
	if err != nil {
		t.Fatalf("AppendMessage err: %v", err)
	}
	second, err := store.AppendMessage(ctx, "token-a", RoleAssistant, "greetings", 1)
	if err != nil {
		t.Fatalf("AppendMessage err: %v", err)
	}

	if second.ID <= first.ID {
		t.Fatalf("expected increasing ids, got %d then %d", first.ID, second.ID)
	}
}

func TestAppendMessageRejectsBlankContent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.CreateSession(ctx, "token-a", 1); err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	for _, role := range []string{RoleUser, RoleAssistant} {
		if _, err := store.AppendMessage(ctx, "token-a", role, "  ", 1); !errors.Is(err, ErrEmptyContent) {
			t.Fatalf("role %s: expected ErrEmptyContent, got %v", role, err)
		}
	}
}

func TestListMessagesSortedByTimestampThenID(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.CreateSession(ctx, "token-a", 1); err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	// Seed the log out of order to exercise the sort.
	now := time.Now().UTC()
	store.messages["token-a"] = []Message{
		{ID: 3, SessionID: "token-a", Role: RoleUser, Content: "third", Timestamp: now.Add(2 * time.Second)},
		{ID: 1, SessionID: "token-a", Role: RoleUser, Content: "first", Timestamp: now},
		{ID: 2, SessionID: "token-a", Role: RoleUser, Content: "tied", Timestamp: now},
	}

	messages, err := store.ListMessages(ctx, "token-a")
	if err != nil {
		t.Fatalf("ListMessages err: %v", err)
	}

	want := []int64{1, 2, 3}
	for i, id := range want {
		if messages[i].ID != id {
			t.Fatalf("position %d: got id %d want %d", i, messages[i].ID, id)
		}
	}
}

func TestListMessagesUnknownSession(t *testing.T) {
	store := NewMemoryStore()

	if _, err := store.ListMessages(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
