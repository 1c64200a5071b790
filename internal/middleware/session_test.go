package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/hotel-admin/backend/internal/middleware"
)

// mockSessionChecker accepts exactly one token.
type mockSessionChecker struct {
	valid string
}

func (m mockSessionChecker) Active(token string) bool { return token != "" && token == m.valid }

var _ middleware.SessionChecker = mockSessionChecker{}

func TestRequireSession(t *testing.T) {
	h := middleware.RequireSession(mockSessionChecker{valid: "tok-1"})(trivialHandler)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic tok-1", http.StatusUnauthorized},
		{"unknown token", "Bearer tok-2", http.StatusUnauthorized},
		{"active token", "Bearer tok-1", http.StatusOK},
		{"scheme is case-insensitive", "bearer tok-1", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.want, rec.Code)
			if tc.want == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":{"code":"unauthorized","message":"sign in required"}}`, rec.Body.String())
				assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", middleware.BearerToken(req))

	req.Header.Set("Authorization", "Bearer  abc ")
	assert.Equal(t, "abc", middleware.BearerToken(req))
}
