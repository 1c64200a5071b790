package handler

import (
	"net/http"

	"github.com/pkordes/hotel-admin/backend/internal/middleware"
)

// SignInRequest is the body of POST /session.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionStatus is the body of GET /session.
type SessionStatus struct {
	Active bool `json:"active"`
}

// signIn handles POST /session.
func (s *Server) signIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if !decodeBody(w, r, &req) {
		return
	}
	sess, err := s.sessions.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		s.respondError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

// getSession handles GET /session: whether the bearer token is signed in.
func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SessionStatus{Active: s.sessions.Active(middleware.BearerToken(r))})
}

// signOut handles DELETE /session. It succeeds even without a session.
func (s *Server) signOut(w http.ResponseWriter, r *http.Request) {
	s.sessions.SignOut(middleware.BearerToken(r))
	w.WriteHeader(http.StatusNoContent)
}
