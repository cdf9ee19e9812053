package persona

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pastvoices/backend/internal/model/persona"
	"github.com/pastvoices/backend/pkg/utils"
)

// Handler serves the persona catalog.
type Handler struct {
	personas persona.Store
}

// New creates the persona handler.
func New(personas persona.Store) *Handler {
	return &Handler{personas: personas}
}

// RegisterRoutes registers persona routes. Static segments must be declared
// before the id parameter so /personas/search is not captured by it.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/personas", h.handleList)
	r.Get("/personas/search", h.handleSearch)
	r.Get("/personas/category/{category}", h.handleByCategory)
	r.Get("/personas/{personaID}", h.handleByID)
	r.Post("/personas/custom", h.handleCreateCustom)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.personas.List())
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	matches := h.personas.Search(query)
	if matches == nil {
		matches = []persona.Persona{}
	}
	utils.RespondJSON(w, http.StatusOK, matches)
}

func (h *Handler) handleByCategory(w http.ResponseWriter, r *http.Request) {
	matches := h.personas.FindByCategory(chi.URLParam(r, "category"))
	if matches == nil {
		matches = []persona.Persona{}
	}
	utils.RespondJSON(w, http.StatusOK, matches)
}

func (h *Handler) handleByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "personaID"), 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid persona ID")
		return
	}

	p, ok := h.personas.FindByID(id)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "persona not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, p)
}

func (h *Handler) handleCreateCustom(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.personas.CreateCustom(payload.Name)
	if errors.Is(err, persona.ErrInvalidName) {
		utils.RespondError(w, http.StatusBadRequest, "valid name is required")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to create custom persona")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, p)
}
