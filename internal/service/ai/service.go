package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/pastvoices/backend/internal/config"
	"github.com/pastvoices/backend/internal/model/chat"
	"github.com/pastvoices/backend/internal/model/persona"
)

// fallbackResponse replaces an empty provider body; an empty string is never
// surfaced to the caller as if it were a real answer.
const fallbackResponse = "I'm afraid I couldn't compose a proper response at this moment."

// Service is the responder gateway: it invokes the configured chat model
// with the assembled persona prompt and classifies failures.
type Service struct {
	chain compose.Runnable[map[string]any, *schema.Message]
}

// NewService builds the prompt+model chain for the configured provider.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{chain: runnable}, nil
}

// Generate produces the persona's reply to userMessage. History must exclude
// the message currently being answered; the assembler appends it once.
func (s *Service) Generate(ctx context.Context, p persona.Persona, history []chat.Message, userMessage string) (string, error) {
	input := map[string]any{
		"system":  BuildSystemPrompt(p),
		"history": buildHistoryMessages(history),
		"query":   userMessage,
	}

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", classifyProviderError(err)
	}

	content := response.Content
	if strings.TrimSpace(content) == "" {
		content = fallbackResponse
	}

	log.Printf("[ai] generated response for persona=%d, length=%d", p.ID, len(content))
	return content, nil
}

// buildHistoryMessages replays the transcript in chronological order, each
// turn tagged with its original role. The full history is passed through;
// there is deliberately no truncation or summarization.
func buildHistoryMessages(messages []chat.Message) []*schema.Message {
	if len(messages) == 0 {
		return nil
	}

	history := make([]*schema.Message, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case chat.RoleUser:
			history = append(history, schema.UserMessage(msg.Content))
		case chat.RoleAssistant:
			history = append(history, schema.AssistantMessage(msg.Content, nil))
		case chat.RoleSystem:
			// Persona-switch notices stay visible to the model as context.
			history = append(history, schema.SystemMessage(msg.Content))
		}
	}
	return history
}
