package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/hotel-admin/backend/internal/domain"
)

// pathParam binds the chi URL parameter name into a string the same way the
// OpenAPI "simple" style would, rejecting an empty value.
func pathParam(r *http.Request, name string) (string, error) {
	var v string
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &v,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return "", fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}
	if v == "" {
		return "", fmt.Errorf("parameter %s is required", name)
	}
	return v, nil
}

// collectionParam resolves {collection} and enforces the allow-list.
// On failure it has already written the response.
func (s *Server) collectionParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	name, err := pathParam(r, "collection")
	if err != nil {
		badRequest(w, err.Error())
		return "", false
	}
	if !s.allowed[name] {
		notFound(w, "collection not found")
		return "", false
	}
	return name, true
}

// idParam resolves {id}. On failure it has already written the response.
func idParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := pathParam(r, "id")
	if err != nil {
		badRequest(w, err.Error())
		return "", false
	}
	return id, true
}

// decodeFields reads a JSON object body into a field map. It answers 413 when
// the body limit was hit and 400 for anything that is not a single object.
// On failure it has already written the response.
func decodeFields(w http.ResponseWriter, r *http.Request) (domain.Fields, bool) {
	var fields domain.Fields
	if !decodeBody(w, r, &fields) {
		return nil, false
	}
	if fields == nil {
		badRequest(w, "request body must be a JSON object")
		return nil, false
	}
	return fields, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	if err == nil && dec.More() {
		err = errors.New("unexpected data after JSON value")
	}

	var tooLarge *http.MaxBytesError
	switch {
	case err == nil:
		return true
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large")
	case errors.Is(err, io.EOF):
		badRequest(w, "request body is required")
	default:
		badRequest(w, "malformed JSON body: "+err.Error())
	}
	return false
}
