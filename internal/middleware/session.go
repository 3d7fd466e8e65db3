package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/designdynasty/site/backend/internal/model/session"
	sessionservice "github.com/designdynasty/site/backend/internal/service/session"
	"github.com/designdynasty/site/backend/pkg/utils"
)

type contextKey struct{}

var sessionKey contextKey

// SessionFromContext returns the record the guard attached to a request.
func SessionFromContext(ctx context.Context) (session.Record, bool) {
	record, ok := ctx.Value(sessionKey).(session.Record)
	return record, ok
}

// SessionGuard gates a route subtree behind a valid, unexpired session.
// Every doubt (no token, unknown token, expired record) answers the
// same 401, and an expired record is wiped wholesale before answering.
func SessionGuard(sessions *sessionservice.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			record, err := sessions.Validate(bearerToken(r))
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, record)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole restricts a guarded subtree to one role. It must run after
// SessionGuard.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			record, ok := SessionFromContext(r.Context())
			if !ok {
				utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			if record.Role != role {
				utils.RespondError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
