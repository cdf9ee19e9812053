package ai

import (
	"fmt"

	"github.com/pastvoices/backend/internal/model/persona"
)

// BuildSystemPrompt creates the persona instruction handed to the model.
// Curated figures get a grounded biographical prompt; custom ones only a
// generic stay-in-character directive, since no curated context exists.
func BuildSystemPrompt(p persona.Persona) string {
	if p.IsCustom {
		return buildCustomSystemPrompt(p)
	}
	return fmt.Sprintf(`You are %s (%s), %s.

%s

Respond in character as %s, with their personality, speech patterns, knowledge, and beliefs.
Maintain historical accuracy and the correct time period context.
If asked about events after your death or that didn't exist in your time, indicate this politely while staying in character.
Keep responses concise (1-3 paragraphs) but engaging and authentic to your character.

Avoid modern slang or references that wouldn't be appropriate for your time period.`,
		p.Name,
		p.Lifespan,
		p.Description,
		p.Context,
		p.Name,
	)
}

func buildCustomSystemPrompt(p persona.Persona) string {
	return fmt.Sprintf(`You are %s.

Stay in character as %s at all times, with an authentic tone and voice.
Do not fabricate facts about this personality; if you are unsure of something, say so in character.
Keep responses concise (1-3 paragraphs) but engaging.`,
		p.Name,
		p.Name,
	)
}
