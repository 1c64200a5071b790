// Package domain contains the core data types for the hotel admin backend.
// This package has no dependencies on other internal packages and is
// imported by every one of them (repo, service, handler).
package domain

import (
	"encoding/json"
	"maps"
)

// Fields is the open, schema-less field map of a document.
// Values are whatever the JSON decoder produces: string, float64, bool, nil,
// []any or map[string]any.
type Fields map[string]any

// IDField is the key under which a record's identifier appears in its flat
// JSON form. It is never stored as a field.
const IDField = "id"

// Record is one document: a store-assigned identifier plus its fields.
// Its JSON form is the flat object {"id": ..., <fields>}.
type Record struct {
	ID     string
	Fields Fields
}

// Writable returns a copy of f without the reserved id key, which the store
// owns and callers may not overwrite.
func (f Fields) Writable() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		if k == IDField {
			continue
		}
		out[k] = v
	}
	return out
}

// MarshalJSON flattens the record so the id sits beside its fields.
func (r Record) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(r.Fields)+1)
	maps.Copy(flat, r.Fields)
	flat[IDField] = r.ID
	return json.Marshal(flat)
}

// UnmarshalJSON splits a flat object back into ID and Fields.
func (r *Record) UnmarshalJSON(data []byte) error {
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	r.ID, _ = flat[IDField].(string)
	delete(flat, IDField)
	r.Fields = flat
	return nil
}
