// Package service contains the business logic for the hotel admin API.
// CollectionService is the generic collection access layer; the other
// services are thin, domain-specific helpers built on top of it.
// No queries live here: services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pkordes/hotel-admin/backend/internal/domain"
	"github.com/pkordes/hotel-admin/backend/internal/metrics"
	"github.com/pkordes/hotel-admin/backend/internal/repo"
)

// Collections is the four-operation access contract shared by
// CollectionService and its Lenient decorator. Helpers built on top of it
// (users, bookings, export, dashboard) inherit whichever error policy the
// caller wired in.
type Collections interface {
	List(ctx context.Context, collection string) ([]domain.Record, error)
	Create(ctx context.Context, collection string, fields domain.Fields) (domain.Record, error)
	Update(ctx context.Context, collection, id string, fields domain.Fields) error
	Delete(ctx context.Context, collection, id string) error
}

// CollectionService translates the four collection operations into document
// store calls. Every failure is returned to the caller as a wrapped error:
// domain.ErrValidation, domain.ErrNotFound or domain.ErrStore.
type CollectionService struct {
	repo repo.DocumentRepo
	log  *slog.Logger
}

// NewCollectionService constructs a CollectionService backed by the provided repo.
// A nil logger falls back to slog.Default().
func NewCollectionService(r repo.DocumentRepo, log *slog.Logger) *CollectionService {
	if log == nil {
		log = slog.Default()
	}
	return &CollectionService{repo: r, log: log}
}

var _ Collections = (*CollectionService)(nil)

// List returns every record of the collection. The slice is never nil, but an
// error always means the listing failed, never that the collection is empty.
func (s *CollectionService) List(ctx context.Context, collection string) ([]domain.Record, error) {
	started := time.Now()
	if err := domain.ValidateCollection(collection); err != nil {
		return nil, s.fail(ctx, "list", collection, "", started, fmt.Errorf("service.CollectionService.List: %w", err))
	}

	records, err := s.repo.List(ctx, collection)
	if err != nil {
		return nil, s.fail(ctx, "list", collection, "", started, fmt.Errorf("service.CollectionService.List: %w", err))
	}
	metrics.ObserveStoreOperation(collection, "list", metrics.OutcomeOK, started)
	if records == nil {
		records = []domain.Record{}
	}
	return records, nil
}

// Create stores a new record; the store assigns its id.
func (s *CollectionService) Create(ctx context.Context, collection string, fields domain.Fields) (domain.Record, error) {
	started := time.Now()
	if err := domain.ValidateCollection(collection); err != nil {
		return domain.Record{}, s.fail(ctx, "create", collection, "", started, fmt.Errorf("service.CollectionService.Create: %w", err))
	}

	rec, err := s.repo.Create(ctx, collection, fields.Writable())
	if err != nil {
		return domain.Record{}, s.fail(ctx, "create", collection, "", started, fmt.Errorf("service.CollectionService.Create: %w", err))
	}
	metrics.ObserveStoreOperation(collection, "create", metrics.OutcomeOK, started)
	s.log.DebugContext(ctx, "record created", "collection", collection, "id", rec.ID)
	return rec, nil
}

// Update merge-overwrites the given fields of the record at id.
// Returns domain.ErrNotFound if the record does not exist.
func (s *CollectionService) Update(ctx context.Context, collection, id string, fields domain.Fields) error {
	started := time.Now()
	if err := validateAddress(collection, id); err != nil {
		return s.fail(ctx, "update", collection, id, started, fmt.Errorf("service.CollectionService.Update: %w", err))
	}

	if err := s.repo.Update(ctx, collection, id, fields.Writable()); err != nil {
		return s.fail(ctx, "update", collection, id, started, fmt.Errorf("service.CollectionService.Update: %w", err))
	}
	metrics.ObserveStoreOperation(collection, "update", metrics.OutcomeOK, started)
	return nil
}

// Delete removes the record at id.
// Returns domain.ErrNotFound if the record does not exist.
func (s *CollectionService) Delete(ctx context.Context, collection, id string) error {
	started := time.Now()
	if err := validateAddress(collection, id); err != nil {
		return s.fail(ctx, "delete", collection, id, started, fmt.Errorf("service.CollectionService.Delete: %w", err))
	}

	if err := s.repo.Delete(ctx, collection, id); err != nil {
		return s.fail(ctx, "delete", collection, id, started, fmt.Errorf("service.CollectionService.Delete: %w", err))
	}
	metrics.ObserveStoreOperation(collection, "delete", metrics.OutcomeOK, started)
	return nil
}

// fail records and logs a failed operation and returns err unchanged.
func (s *CollectionService) fail(ctx context.Context, op, collection, id string, started time.Time, err error) error {
	level, outcome := slog.LevelError, metrics.OutcomeError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		level, outcome = slog.LevelWarn, metrics.OutcomeNotFound
	case errors.Is(err, domain.ErrValidation):
		level, outcome = slog.LevelWarn, metrics.OutcomeInvalid
	}
	label := collection
	if domain.ValidateCollection(collection) != nil {
		label = "_invalid" // keeps arbitrary input out of label values
	}
	metrics.ObserveStoreOperation(label, op, outcome, started)
	s.log.Log(ctx, level, "store operation failed",
		"op", op,
		"collection", collection,
		"id", id,
		"error", err,
	)
	return err
}

func validateAddress(collection, id string) error {
	if err := domain.ValidateCollection(collection); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", domain.ErrValidation)
	}
	return nil
}
