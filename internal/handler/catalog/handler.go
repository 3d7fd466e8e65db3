package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/designdynasty/site/backend/internal/model/catalog"
	"github.com/designdynasty/site/backend/pkg/utils"
)

// Handler serves the static site content: pricing plans, service lines,
// and blog teasers.
type Handler struct {
	store catalog.Store
}

// New creates the catalog handler.
func New(store catalog.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/plans", h.handleListPlans)
	r.Get("/services", h.handleListOfferings)
	r.Get("/services/{offeringID}", h.handleGetOffering)
	r.Get("/posts", h.handleListPosts)
	r.Get("/posts/{slug}", h.handleGetPost)
}

func (h *Handler) handleListPlans(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.store.Plans())
}

func (h *Handler) handleListOfferings(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.store.Offerings())
}

func (h *Handler) handleGetOffering(w http.ResponseWriter, r *http.Request) {
	offering, ok := h.store.FindOffering(chi.URLParam(r, "offeringID"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "service not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, offering)
}

func (h *Handler) handleListPosts(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.store.Posts())
}

func (h *Handler) handleGetPost(w http.ResponseWriter, r *http.Request) {
	post, ok := h.store.FindPost(chi.URLParam(r, "slug"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "post not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, post)
}
