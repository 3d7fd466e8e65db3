package seo

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	seoservice "github.com/designdynasty/site/backend/internal/service/seo"
	"github.com/designdynasty/site/backend/pkg/utils"
)

// Handler exposes route metadata resolution and head rendering so
// crawlers and the prerender pipeline see the same tags the SPA writes.
type Handler struct {
	builder *seoservice.Builder
}

// New creates the SEO handler.
func New(builder *seoservice.Builder) *Handler {
	return &Handler{builder: builder}
}

// RegisterRoutes registers the SEO routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/seo/meta", h.handleMeta)
	r.Get("/seo/head", h.handleHead)
}

func (h *Handler) handleMeta(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")

	meta, ok := h.builder.Resolve(path)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "no metadata registered")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"meta":      meta,
		"canonical": h.builder.AbsoluteURL(path),
	})
}

func (h *Handler) handleHead(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")

	doc, ok := h.builder.HeadFor(path)
	if !ok {
		// Silent-skip policy: missing metadata degrades to no tags.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc.Render()))
}
