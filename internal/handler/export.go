package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/hotel-admin/backend/internal/domain"
)

// exportCollection handles GET /collections/{collection}/export.
// It returns the collection as a flat table: JSON by default, CSV with
// ?format=csv.
func (s *Server) exportCollection(w http.ResponseWriter, r *http.Request) {
	collection, ok := s.collectionParam(w, r)
	if !ok {
		return
	}
	var format *string
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &format); err != nil {
		badRequest(w, "invalid format for parameter format: "+err.Error())
		return
	}
	wantCSV := false
	if format != nil {
		switch *format {
		case "csv":
			wantCSV = true
		case "json":
		default:
			badRequest(w, "format must be json or csv")
			return
		}
	}

	table, err := s.export.Export(r.Context(), collection)
	if err != nil {
		s.respondError(w, r, err, "collection not found")
		return
	}

	if !wantCSV {
		writeJSON(w, http.StatusOK, table)
		return
	}
	body := encodeCSV(table)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+collection+`.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(body.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = body.WriteTo(w)
}

// encodeCSV writes the header row followed by one line per record.
func encodeCSV(t domain.Table) *bytes.Buffer {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(t.Header)
	//nolint:errcheck
	cw.WriteAll(t.Rows)
	return &buf
}
