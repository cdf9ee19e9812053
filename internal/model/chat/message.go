package chat

import "time"

// Message roles. System messages mark persona switches in the transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is one turn in a session's transcript. PersonaID records the
// persona in effect when the message was produced; zero for pre-persona
// system notices.
type Message struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"sessionId"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	PersonaID int64     `json:"personaId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
