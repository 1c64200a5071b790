package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
)

// SessionChecker reports whether a bearer token belongs to an active session.
// *session.Gate satisfies it.
type SessionChecker interface {
	Active(token string) bool
}

// RequireSession rejects requests without an active session with 401.
// The token is read from "Authorization: Bearer <token>".
func RequireSession(sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessions.Active(BearerToken(r)) {
				w.Header().Set("WWW-Authenticate", `Bearer realm="hoteladmin"`)
				writeError(w, http.StatusUnauthorized, "unauthorized", "sign in required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// BearerToken extracts the token from the Authorization header, or "".
func BearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// writeError writes the API's standard error body.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
