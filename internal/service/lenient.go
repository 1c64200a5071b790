package service

import (
	"context"
	"log/slog"

	"github.com/pkordes/hotel-admin/backend/internal/domain"
)

// Lenient wraps a Collections accessor with the dashboard's legacy error
// policy: list, create and delete failures are logged and swallowed (an
// empty list, a zero record, a silent no-op) while update failures still
// reach the caller. With this policy a caller cannot tell "no records" from
// "request failed"; prefer the strict CollectionService for new callers.
type Lenient struct {
	next Collections
	log  *slog.Logger
}

// NewLenient wraps next. A nil logger falls back to slog.Default().
func NewLenient(next Collections, log *slog.Logger) *Lenient {
	if log == nil {
		log = slog.Default()
	}
	return &Lenient{next: next, log: log}
}

var _ Collections = (*Lenient)(nil)

// List returns an empty, non-nil slice when the listing fails.
func (l *Lenient) List(ctx context.Context, collection string) ([]domain.Record, error) {
	records, err := l.next.List(ctx, collection)
	if err != nil {
		l.log.ErrorContext(ctx, "error fetching collection, returning empty list",
			"collection", collection, "error", err)
		return []domain.Record{}, nil
	}
	return records, nil
}

// Create returns a zero Record and no error when the write fails.
func (l *Lenient) Create(ctx context.Context, collection string, fields domain.Fields) (domain.Record, error) {
	rec, err := l.next.Create(ctx, collection, fields)
	if err != nil {
		l.log.ErrorContext(ctx, "error adding document, ignoring",
			"collection", collection, "error", err)
		return domain.Record{}, nil
	}
	return rec, nil
}

// Update always propagates failures.
func (l *Lenient) Update(ctx context.Context, collection, id string, fields domain.Fields) error {
	return l.next.Update(ctx, collection, id, fields)
}

// Delete returns nil when the delete fails.
func (l *Lenient) Delete(ctx context.Context, collection, id string) error {
	if err := l.next.Delete(ctx, collection, id); err != nil {
		l.log.ErrorContext(ctx, "error deleting document, ignoring",
			"collection", collection, "id", id, "error", err)
	}
	return nil
}
