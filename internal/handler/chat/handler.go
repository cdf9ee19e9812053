package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pastvoices/backend/internal/model/chat"
	"github.com/pastvoices/backend/internal/model/persona"
	aiService "github.com/pastvoices/backend/internal/service/ai"
	chatService "github.com/pastvoices/backend/internal/service/chat"
	"github.com/pastvoices/backend/pkg/utils"
)

// Handler serves session acquisition, persona switching, and the message
// exchange endpoints.
type Handler struct {
	chatSvc *chatService.Service
}

// New creates the chat handler.
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// RegisterRoutes registers the session/message routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/sessions", h.handleStartOrGetSession)
	r.Patch("/sessions/{sessionID}/persona", h.handleSwitchPersona)
	r.Get("/sessions/{sessionID}/messages", h.handleListMessages)
	r.Post("/sessions/{sessionID}/messages", h.handleSendMessage)
	r.Delete("/sessions/{sessionID}/messages", h.handleClearChat)
}

func (h *Handler) handleStartOrGetSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"sessionId"`
		PersonaID int64  `json:"personaId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, created, err := h.chatSvc.StartOrGetSession(r.Context(), payload.SessionID, payload.PersonaID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to create or get chat session")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	utils.RespondJSON(w, status, session)
}

func (h *Handler) handleSwitchPersona(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "sessionID")

	var payload struct {
		PersonaID     int64            `json:"personaId"`
		CustomPersona *persona.Persona `json:"customPersona"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var ref chatService.PersonaRef
	switch {
	case payload.CustomPersona != nil:
		ref = chatService.ByValue(*payload.CustomPersona)
	case payload.PersonaID != 0:
		ref = chatService.ByID(payload.PersonaID)
	default:
		utils.RespondError(w, http.StatusBadRequest, "invalid persona ID")
		return
	}

	session, err := h.chatSvc.SwitchPersona(r.Context(), token, ref)
	switch {
	case errors.Is(err, persona.ErrInvalidName):
		utils.RespondError(w, http.StatusBadRequest, "valid name is required")
	case errors.Is(err, chat.ErrSessionNotFound):
		utils.RespondError(w, http.StatusNotFound, "chat session not found")
	case errors.Is(err, chatService.ErrPersonaNotFound):
		utils.RespondError(w, http.StatusNotFound, "persona not found")
	case err != nil:
		utils.RespondError(w, http.StatusInternalServerError, "failed to change persona")
	default:
		utils.RespondJSON(w, http.StatusOK, session)
	}
}

func (h *Handler) handleListMessages(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "sessionID")

	messages, err := h.chatSvc.Transcript(r.Context(), token)
	if errors.Is(err, chat.ErrSessionNotFound) {
		utils.RespondError(w, http.StatusNotFound, "chat session not found")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch messages")
		return
	}
	if messages == nil {
		messages = []chat.Message{}
	}
	utils.RespondJSON(w, http.StatusOK, messages)
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "sessionID")

	var payload struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userMessage, assistantMessage, err := h.chatSvc.SendMessage(r.Context(), token, payload.Content)
	switch {
	case errors.Is(err, chat.ErrEmptyContent):
		utils.RespondError(w, http.StatusBadRequest, "message content is required")
	case errors.Is(err, chat.ErrSessionNotFound):
		utils.RespondError(w, http.StatusNotFound, "chat session not found")
	case errors.Is(err, chatService.ErrPersonaNotFound):
		utils.RespondError(w, http.StatusNotFound, "persona not found")
	case errors.Is(err, chatService.ErrNoActivePersona):
		utils.RespondError(w, http.StatusPreconditionFailed, "no persona selected for this chat session")
	case errors.Is(err, aiService.ErrQuotaExceeded):
		utils.RespondTypedError(w, http.StatusPaymentRequired,
			"API quota exceeded. The provider API key has reached its usage limit.", "API_QUOTA_EXCEEDED")
	case errors.Is(err, aiService.ErrProviderFailure), errors.Is(err, chatService.ErrResponderUnavailable):
		utils.RespondTypedError(w, http.StatusServiceUnavailable,
			"Unable to generate response from AI service. Please try again later.", "API_ERROR")
	case err != nil:
		utils.RespondError(w, http.StatusInternalServerError, "failed to process message")
	default:
		utils.RespondJSON(w, http.StatusCreated, map[string]chat.Message{
			"userMessage":      userMessage,
			"assistantMessage": assistantMessage,
		})
	}
}

// handleClearChat abandons the caller's token and responds with a fresh
// empty session. History under the old token is not deleted; it simply
// becomes unreachable through normal acquisition.
func (h *Handler) handleClearChat(w http.ResponseWriter, r *http.Request) {
	session, err := h.chatSvc.ClearChat(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to clear chat")
		return
	}
	utils.RespondJSON(w, http.StatusOK, session)
}
