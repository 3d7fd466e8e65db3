package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	chatservice "github.com/designdynasty/site/backend/internal/service/chat"
	"github.com/designdynasty/site/backend/pkg/utils"
)

// Handler exposes the support widget's REST surface.
type Handler struct {
	chatSvc    *chatservice.Service
	replyDelay time.Duration
}

// New creates the chat handler.
func New(chatSvc *chatservice.Service, replyDelay time.Duration) *Handler {
	return &Handler{chatSvc: chatSvc, replyDelay: replyDelay}
}

// RegisterRoutes registers the chat REST routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat/conversations", h.handleCreateConversation)
	r.Get("/chat/conversations/{conversationID}/messages", h.handleTranscript)
	r.Post("/chat/conversations/{conversationID}/messages", h.handleSendMessage)
}

func (h *Handler) handleCreateConversation(w http.ResponseWriter, r *http.Request) {
	conversation, err := h.chatSvc.CreateConversation(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to create conversation")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, conversation)
}

func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")

	messages, err := h.chatSvc.Transcript(r.Context(), conversationID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, messages)
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")

	var payload struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userMsg, replyMsg, err := h.chatSvc.SendMessage(r.Context(), conversationID, payload.Content)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, chatservice.ErrConversationNotFound) {
			status = http.StatusNotFound
		}
		utils.RespondError(w, status, err.Error())
		return
	}

	// The widget animates the reply after replyDelayMs; the transcript
	// itself is already settled.
	utils.RespondJSON(w, http.StatusCreated, map[string]any{
		"message":      userMsg,
		"reply":        replyMsg,
		"replyDelayMs": h.replyDelay.Milliseconds(),
	})
}
