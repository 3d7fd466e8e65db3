package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/designdynasty/site/backend/internal/middleware"
	authservice "github.com/designdynasty/site/backend/internal/service/auth"
	sessionservice "github.com/designdynasty/site/backend/internal/service/session"
)

func setupRouter(t *testing.T) (*chi.Mux, *sessionservice.Service) {
	t.Helper()

	sessions := sessionservice.New(5*time.Minute, 15*time.Second)
	authSvc := authservice.New(sessions, 10*time.Minute)
	if err := authSvc.SeedAdmin("admin@designdynasty.com", "super-secret"); err != nil {
		t.Fatalf("SeedAdmin err: %v", err)
	}

	handler := New(authSvc)
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	r.Group(func(protected chi.Router) {
		protected.Use(middleware.SessionGuard(sessions))
		handler.RegisterProtectedRoutes(protected)
	})
	return r, sessions
}

func postJSON(r http.Handler, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestLoginIssuesSession(t *testing.T) {
	r, _ := setupRouter(t)

	resp := postJSON(r, "/auth/login", map[string]string{
		"email":    "admin@designdynasty.com",
		"password": "super-secret",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		Token     string `json:"token"`
		Role      string `json:"role"`
		LoginTime int64  `json:"loginTime"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Token == "" || payload.Role != "admin" || payload.LoginTime == 0 {
		t.Fatalf("unexpected login payload: %+v", payload)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	r, _ := setupRouter(t)

	resp := postJSON(r, "/auth/login", map[string]string{
		"email":    "admin@designdynasty.com",
		"password": "wrong",
	})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestRegisterAcceptedAndConflict(t *testing.T) {
	r, _ := setupRouter(t)

	body := map[string]string{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"password": "s3cret-pass",
	}
	if resp := postJSON(r, "/auth/register", body); resp.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", resp.Code, resp.Body.String())
	}
	if resp := postJSON(r, "/auth/register", body); resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate, got %d", resp.Code)
	}
}

func TestMeRequiresSession(t *testing.T) {
	r, sessions := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}

	record := sessions.Create("user", "jane", "jane@example.com")
	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+record.Token)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", resp.Code)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	r, sessions := setupRouter(t)
	record := sessions.Create("user", "jane", "jane@example.com")

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+record.Token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	if _, err := sessions.Validate(record.Token); err == nil {
		t.Fatal("session should be gone after logout")
	}
}
