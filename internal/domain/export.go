package domain

// Table is a flat, denormalized view of a collection: one row per record.
// Header always starts with "id", followed by the sorted union of every field
// name seen in the collection. Rows hold the rendered cell values in header
// order; a record lacking a field yields an empty cell.
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}
