package handler

import "net/http"

// confirmBooking handles POST /bookings/{id}/confirm.
func (s *Server) confirmBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := s.bookings.Confirm(r.Context(), id); err != nil {
		s.respondError(w, r, err, "booking not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// rejectBooking handles POST /bookings/{id}/reject. The booking is deleted.
func (s *Server) rejectBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := s.bookings.Reject(r.Context(), id); err != nil {
		s.respondError(w, r, err, "booking not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
