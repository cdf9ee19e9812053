package ai

import (
	"strings"
	"testing"

	"github.com/pastvoices/backend/internal/model/chat"
	"github.com/pastvoices/backend/internal/model/persona"
)

func TestBuildSystemPromptCurated(t *testing.T) {
	p := persona.Persona{
		ID:          2,
		Name:        "Albert Einstein",
		Lifespan:    "1879-1955",
		Category:    "Scientists",
		Description: "Theoretical physicist who developed the theory of relativity",
		Context:     "One of the most influential scientists of the 20th century.",
	}

	prompt := BuildSystemPrompt(p)

	for _, want := range []string{
		"You are Albert Einstein (1879-1955)",
		p.Context,
		"events after your death",
		"Avoid modern slang",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildSystemPromptCustomOmitsBiography(t *testing.T) {
	p := persona.Persona{ID: 1021, Name: "Captain Nemo", Category: "Custom", IsCustom: true}

	prompt := BuildSystemPrompt(p)

	if !strings.Contains(prompt, "Stay in character as Captain Nemo") {
		t.Fatalf("custom prompt missing stay-in-character directive:\n%s", prompt)
	}
	if strings.Contains(prompt, "historical accuracy") {
		t.Fatal("custom prompt must not carry the curated grounding rules")
	}
}

func TestBuildHistoryMessagesKeepsRolesAndOrder(t *testing.T) {
	history := buildHistoryMessages([]chat.Message{
		{Role: chat.RoleSystem, Content: "You are now chatting with Socrates."},
		{Role: chat.RoleUser, Content: "What is virtue?"},
		{Role: chat.RoleAssistant, Content: "Let us examine the question together."},
	})

	if len(history) != 3 {
		t.Fatalf("expected 3 history entries, got %d", len(history))
	}
	if history[0].Content != "You are now chatting with Socrates." {
		t.Fatalf("unexpected first entry: %+v", history[0])
	}
	if history[1].Role != "user" || history[2].Role != "assistant" {
		t.Fatalf("roles not preserved: %s, %s", history[1].Role, history[2].Role)
	}
}

func TestBuildHistoryMessagesEmpty(t *testing.T) {
	if got := buildHistoryMessages(nil); got != nil {
		t.Fatalf("expected nil history, got %v", got)
	}
}
