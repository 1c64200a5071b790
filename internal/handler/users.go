package handler

import "net/http"

// listUsers handles GET /users.
func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		s.respondError(w, r, err, "users not found")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// createUser handles POST /users.
func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	fields, ok := decodeFields(w, r)
	if !ok {
		return
	}
	created, err := s.users.Create(r.Context(), fields)
	if err != nil {
		s.respondError(w, r, err, "users not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// updateUser handles PATCH /users/{id}.
func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	fields, ok := decodeFields(w, r)
	if !ok {
		return
	}
	if err := s.users.Update(r.Context(), id, fields); err != nil {
		s.respondError(w, r, err, "user not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// deleteUser handles DELETE /users/{id}.
func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := s.users.Delete(r.Context(), id); err != nil {
		s.respondError(w, r, err, "user not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
