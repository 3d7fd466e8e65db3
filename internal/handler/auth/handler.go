package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/designdynasty/site/backend/internal/middleware"
	authservice "github.com/designdynasty/site/backend/internal/service/auth"
	"github.com/designdynasty/site/backend/pkg/utils"
)

// Handler exposes the authentication endpoints.
type Handler struct {
	authSvc *authservice.Service
}

// New creates the auth handler.
func New(authSvc *authservice.Service) *Handler {
	return &Handler{authSvc: authSvc}
}

// RegisterRoutes registers the public auth routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/register", h.handleRegister)
	r.Post("/auth/verify-otp", h.handleVerifyOTP)
	r.Post("/auth/login", h.handleLogin)
}

// RegisterProtectedRoutes registers the routes that require a live
// session. The caller mounts these behind the session guard.
func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Post("/auth/logout", h.handleLogout)
	r.Get("/auth/me", h.handleMe)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	otp, err := h.authSvc.Register(r.Context(), payload.Name, payload.Email, payload.Password)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, authservice.ErrEmailTaken) {
			status = http.StatusConflict
		}
		utils.RespondError(w, status, err.Error())
		return
	}

	// Mail delivery is outside this service; surface the code in the log
	// so operators can relay it in development setups.
	log.Printf("[auth] otp issued for %s: %s", payload.Email, otp)

	utils.RespondJSON(w, http.StatusAccepted, map[string]string{"status": "otp-sent"})
}

func (h *Handler) handleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.authSvc.VerifyOTP(r.Context(), payload.Email, payload.OTP); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "verified"})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.authSvc.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		status := http.StatusUnauthorized
		if errors.Is(err, authservice.ErrNotVerified) {
			status = http.StatusForbidden
		}
		utils.RespondError(w, status, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"token":     record.Token,
		"role":      record.Role,
		"username":  record.Username,
		"email":     record.Email,
		"loginTime": record.LoginTime.UnixMilli(),
	})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	record, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	h.authSvc.Logout(record.Token)
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "logged-out"})
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	record, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"role":      record.Role,
		"username":  record.Username,
		"email":     record.Email,
		"loginTime": record.LoginTime.UnixMilli(),
	})
}
