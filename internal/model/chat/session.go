package chat

import "time"

// Session binds a client-held token to the persona currently speaking.
// PersonaID is zero until the client picks one.
type Session struct {
	ID        int64     `json:"id"`
	Token     string    `json:"sessionId"`
	PersonaID int64     `json:"currentPersonaId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// HasPersona reports whether a persona has been selected for the session.
func (s Session) HasPersona() bool {
	return s.PersonaID != 0
}
