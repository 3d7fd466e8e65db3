package contact

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	contactservice "github.com/designdynasty/site/backend/internal/service/contact"
	"github.com/designdynasty/site/backend/pkg/utils"
)

// Handler exposes the lead-capture form endpoint and the admin view of
// received submissions.
type Handler struct {
	contactSvc *contactservice.Service
}

// New creates the contact handler.
func New(contactSvc *contactservice.Service) *Handler {
	return &Handler{contactSvc: contactSvc}
}

// RegisterRoutes registers the public submission route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/contact", h.handleSubmit)
}

// RegisterAdminRoutes registers the submission listing. The caller
// mounts it behind the session guard with the admin role gate.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/submissions", h.handleListSubmissions)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Service string `json:"service"`
		Message string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.contactSvc.Submit(r.Context(), payload.Name, payload.Email, payload.Service, payload.Message); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusAccepted, map[string]string{"status": "received"})
}

func (h *Handler) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.contactSvc.List(r.Context()))
}
