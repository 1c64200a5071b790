package handler

import (
	"net/http"
)

// listRecords handles GET /collections/{collection}/records.
// The body is always a JSON array, empty when the collection has no records.
func (s *Server) listRecords(w http.ResponseWriter, r *http.Request) {
	collection, ok := s.collectionParam(w, r)
	if !ok {
		return
	}
	records, err := s.collections.List(r.Context(), collection)
	if err != nil {
		s.respondError(w, r, err, "collection not found")
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// createRecord handles POST /collections/{collection}/records.
// An "id" key in the body is ignored; the store assigns the id.
func (s *Server) createRecord(w http.ResponseWriter, r *http.Request) {
	collection, ok := s.collectionParam(w, r)
	if !ok {
		return
	}
	fields, ok := decodeFields(w, r)
	if !ok {
		return
	}
	created, err := s.collections.Create(r.Context(), collection, fields)
	if err != nil {
		s.respondError(w, r, err, "collection not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// updateRecord handles PATCH /collections/{collection}/records/{id}.
// Supplied fields overwrite, the rest are left as they are.
func (s *Server) updateRecord(w http.ResponseWriter, r *http.Request) {
	collection, ok := s.collectionParam(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	fields, ok := decodeFields(w, r)
	if !ok {
		return
	}
	if err := s.collections.Update(r.Context(), collection, id, fields); err != nil {
		s.respondError(w, r, err, "record not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// deleteRecord handles DELETE /collections/{collection}/records/{id}.
func (s *Server) deleteRecord(w http.ResponseWriter, r *http.Request) {
	collection, ok := s.collectionParam(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := s.collections.Delete(r.Context(), collection, id); err != nil {
		s.respondError(w, r, err, "record not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
