package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	authHandler "github.com/designdynasty/site/backend/internal/handler/auth"
	catalogHandler "github.com/designdynasty/site/backend/internal/handler/catalog"
	chatHandler "github.com/designdynasty/site/backend/internal/handler/chat"
	contactHandler "github.com/designdynasty/site/backend/internal/handler/contact"
	seoHandler "github.com/designdynasty/site/backend/internal/handler/seo"
	middlewarePkg "github.com/designdynasty/site/backend/internal/middleware"
	"github.com/designdynasty/site/backend/pkg/utils"
)

// Deps collects everything the router wires together.
type Deps struct {
	Auth      *authHandler.Handler
	Catalog   *catalogHandler.Handler
	Chat      *chatHandler.Handler
	ChatWS    *chatHandler.WebSocketHandler
	Contact   *contactHandler.Handler
	SEO       *seoHandler.Handler
	SessionMW func(http.Handler) http.Handler
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Route("/api", func(api chi.Router) {
		deps.SEO.RegisterRoutes(api)
		deps.Catalog.RegisterRoutes(api)
		deps.Contact.RegisterRoutes(api)
		deps.Auth.RegisterRoutes(api)
		deps.Chat.RegisterRoutes(api)
		deps.ChatWS.RegisterWebSocketRoutes(api)

		// Scripted reply over SSE for clients that prefer a stream.
		api.Get("/chat/stream/{conversationID}", func(w http.ResponseWriter, r *http.Request) {
			conversationID := chi.URLParam(r, "conversationID")
			userMessage := r.URL.Query().Get("message")

			if userMessage == "" {
				utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
				return
			}

			if err := deps.Chat.HandleStreamRequest(r.Context(), w, conversationID, userMessage); err != nil {
				log.Printf("[stream] error handling request: %v", err)
			}
		})

		// Everything below requires a live, unexpired session.
		api.Group(func(protected chi.Router) {
			protected.Use(deps.SessionMW)
			deps.Auth.RegisterProtectedRoutes(protected)

			protected.Route("/admin", func(admin chi.Router) {
				admin.Use(middlewarePkg.RequireRole("admin"))
				deps.Contact.RegisterAdminRoutes(admin)
			})
		})
	})

	return r
}
