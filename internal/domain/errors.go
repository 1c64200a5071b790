package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the addressed
// record does not exist in its collection.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input is rejected before reaching the store
// (e.g. an empty record ID or a malformed collection name).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrStore is the single failure kind of the document store: network failure,
// permission failure, or any other rejected request. Repos wrap the
// underlying cause with it so callers can match it with errors.Is.
var ErrStore = errors.New("store operation failed")
