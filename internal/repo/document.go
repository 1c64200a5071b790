// Package repo contains all document store access logic for the hotel admin API.
// DocumentRepo is the single boundary to the store; postgres, sqlite and
// in-memory implementations live in their own files. No business logic lives
// here, only queries and type mapping.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/hotel-admin/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DocumentRepo is the document-collection protocol every store backend
// implements. Collections are addressed by name and need no creation step;
// records by a store-assigned string id.
// The service layer depends on this interface, never on a concrete backend.
type DocumentRepo interface {
	// List returns every record in the collection, in store-native order.
	// An unknown or empty collection yields an empty slice.
	List(ctx context.Context, collection string) ([]domain.Record, error)

	// Create stores fields as a new record under a freshly assigned id and
	// returns the persisted record.
	Create(ctx context.Context, collection string, fields domain.Fields) (domain.Record, error)

	// Update overwrites the supplied top-level fields of an existing record,
	// leaving other fields untouched.
	// Returns domain.ErrNotFound if no record with that id exists.
	Update(ctx context.Context, collection, id string, fields domain.Fields) error

	// Delete removes a record by id.
	// Returns domain.ErrNotFound if no record with that id exists.
	Delete(ctx context.Context, collection, id string) error
}

// pgDocumentRepo is the Postgres implementation of DocumentRepo.
// Fields are stored in a JSONB column; merge-update uses the jsonb || operator,
// which replaces top-level keys only.
type pgDocumentRepo struct {
	db db
}

// NewDocumentRepo constructs a DocumentRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewDocumentRepo(db db) DocumentRepo {
	return &pgDocumentRepo{db: db}
}

// List returns all records of a collection in insertion order.
func (r *pgDocumentRepo) List(ctx context.Context, collection string) ([]domain.Record, error) {
	const q = `
		SELECT id, fields
		FROM documents
		WHERE collection = @collection
		ORDER BY seq`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"collection": collection})
	if err != nil {
		return nil, storeErr("repo.DocumentRepo.List", err)
	}
	defer rows.Close()

	records := []domain.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, storeErr("repo.DocumentRepo.List: scan", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("repo.DocumentRepo.List: rows", err)
	}
	return records, nil
}

// Create inserts a new document and returns it as stored.
func (r *pgDocumentRepo) Create(ctx context.Context, collection string, fields domain.Fields) (domain.Record, error) {
	const q = `
		INSERT INTO documents (collection, id, fields)
		VALUES (@collection, @id, @fields::jsonb)
		RETURNING id, fields`

	raw, err := encodeFields(fields.Writable())
	if err != nil {
		return domain.Record{}, fmt.Errorf("repo.DocumentRepo.Create: %w: %w", domain.ErrValidation, err)
	}

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"collection": collection,
		"id":         uuid.NewString(),
		"fields":     raw,
	})
	rec, err := scanRecord(row)
	if err != nil {
		return domain.Record{}, storeErr("repo.DocumentRepo.Create", err)
	}
	return rec, nil
}

// Update merges fields into the stored document.
func (r *pgDocumentRepo) Update(ctx context.Context, collection, id string, fields domain.Fields) error {
	const q = `
		UPDATE documents
		SET fields     = fields || @fields::jsonb,
		    updated_at = now()
		WHERE collection = @collection AND id = @id`

	raw, err := encodeFields(fields.Writable())
	if err != nil {
		return fmt.Errorf("repo.DocumentRepo.Update: %w: %w", domain.ErrValidation, err)
	}

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"collection": collection, "id": id, "fields": raw})
	if err != nil {
		return storeErr("repo.DocumentRepo.Update", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DocumentRepo.Update: %w", domain.ErrNotFound)
	}
	return nil
}

// Delete removes a document by collection and id.
func (r *pgDocumentRepo) Delete(ctx context.Context, collection, id string) error {
	const q = `DELETE FROM documents WHERE collection = @collection AND id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"collection": collection, "id": id})
	if err != nil {
		return storeErr("repo.DocumentRepo.Delete", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DocumentRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by pgx.Row, pgx.Rows, *sql.Row and *sql.Rows, allowing
// scanRecord to be reused by every SQL backend.
type scanner interface {
	Scan(dest ...any) error
}

// scanRecord maps an (id, fields) row into a domain.Record.
func scanRecord(s scanner) (domain.Record, error) {
	var (
		id  string
		raw []byte
	)
	if err := s.Scan(&id, &raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Record{}, domain.ErrNotFound
		}
		return domain.Record{}, err
	}
	fields, err := decodeFields(raw)
	if err != nil {
		return domain.Record{}, err
	}
	return domain.Record{ID: id, Fields: fields}, nil
}

func encodeFields(fields domain.Fields) (string, error) {
	if fields == nil {
		fields = domain.Fields{}
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeFields(raw []byte) (domain.Fields, error) {
	fields := domain.Fields{}
	if len(raw) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode fields: %w", err)
	}
	return fields, nil
}

// storeErr tags a backend failure with domain.ErrStore, keeping the cause in
// the chain. A not-found produced by scanRecord is passed through as is.
func storeErr(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStore, err)
}
