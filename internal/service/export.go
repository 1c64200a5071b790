package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pkordes/hotel-admin/backend/internal/domain"
)

// ExportService flattens a collection into a table for CSV or JSON download.
type ExportService struct {
	records Collections
}

// NewExportService constructs an ExportService over the given accessor.
func NewExportService(c Collections) *ExportService {
	return &ExportService{records: c}
}

// Export returns one row per record of the collection, in list order.
// The header is "id" followed by the sorted union of every field name.
func (s *ExportService) Export(ctx context.Context, collection string) (domain.Table, error) {
	records, err := s.records.List(ctx, collection)
	if err != nil {
		return domain.Table{}, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	names := map[string]struct{}{}
	for _, rec := range records {
		for k := range rec.Fields {
			if k != domain.IDField {
				names[k] = struct{}{}
			}
		}
	}
	columns := make([]string, 0, len(names))
	for k := range names {
		columns = append(columns, k)
	}
	slices.Sort(columns)

	table := domain.Table{
		Header: append([]string{domain.IDField}, columns...),
		Rows:   make([][]string, 0, len(records)),
	}
	for _, rec := range records {
		row := make([]string, 0, len(table.Header))
		row = append(row, rec.ID)
		for _, col := range columns {
			row = append(row, renderCell(rec.Fields[col]))
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// renderCell formats one field value as plain text. Lists are joined with
// "|", nested objects are written as JSON and missing values are empty.
func renderCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = renderCell(item)
		}
		return strings.Join(parts, "|")
	case []string:
		return strings.Join(val, "|")
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}
