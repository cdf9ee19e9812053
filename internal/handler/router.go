package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chatHandler "github.com/pastvoices/backend/internal/handler/chat"
	personaHandler "github.com/pastvoices/backend/internal/handler/persona"
	middlewarePkg "github.com/pastvoices/backend/internal/middleware"
	personaModel "github.com/pastvoices/backend/internal/model/persona"
	chatService "github.com/pastvoices/backend/internal/service/chat"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(personas personaModel.Store, chatSvc *chatService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Route("/api", func(api chi.Router) {
		personaHandler.New(personas).RegisterRoutes(api)
		chatHandler.New(chatSvc).RegisterRoutes(api)
	})

	return r
}
