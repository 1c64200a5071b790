package handler

import "net/http"

// getDashboard handles GET /dashboard.
func (s *Server) getDashboard(w http.ResponseWriter, r *http.Request) {
	counts, err := s.dashboard.Overview(r.Context())
	if err != nil {
		s.respondError(w, r, err, "collection not found")
		return
	}
	writeJSON(w, http.StatusOK, counts)
}
