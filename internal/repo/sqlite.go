package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/hotel-admin/backend/internal/domain"
)

// sqliteDocumentRepo stores all collections in a single SQLite table:
//
//	documents(collection, id, fields)  PRIMARY KEY (collection, id)
//
// Fields are JSON text. SQLite has no top-level-only JSON merge (json_patch
// merges recursively and treats null as delete), so Update merges in Go.
type sqliteDocumentRepo struct {
	mu sync.RWMutex
	db *sql.DB
}

// NewSQLiteDocumentRepo constructs a DocumentRepo backed by an open SQLite
// database whose schema has been migrated.
func NewSQLiteDocumentRepo(db *sql.DB) DocumentRepo {
	return &sqliteDocumentRepo{db: db}
}

func (s *sqliteDocumentRepo) List(ctx context.Context, collection string) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, fields FROM documents WHERE collection = ? ORDER BY rowid",
		collection,
	)
	if err != nil {
		return nil, storeErr("repo.sqliteDocumentRepo.List", err)
	}
	defer rows.Close()

	records := []domain.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, storeErr("repo.sqliteDocumentRepo.List: scan", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("repo.sqliteDocumentRepo.List: rows", err)
	}
	return records, nil
}

func (s *sqliteDocumentRepo) Create(ctx context.Context, collection string, fields domain.Fields) (domain.Record, error) {
	writable := fields.Writable()
	raw, err := encodeFields(writable)
	if err != nil {
		return domain.Record{}, fmt.Errorf("repo.sqliteDocumentRepo.Create: %w: %w", domain.ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	if _, err := s.db.ExecContext(ctx,
		"INSERT INTO documents (collection, id, fields) VALUES (?, ?, ?)",
		collection, id, raw,
	); err != nil {
		return domain.Record{}, storeErr("repo.sqliteDocumentRepo.Create", err)
	}

	stored, err := decodeFields([]byte(raw))
	if err != nil {
		return domain.Record{}, storeErr("repo.sqliteDocumentRepo.Create", err)
	}
	return domain.Record{ID: id, Fields: stored}, nil
}

func (s *sqliteDocumentRepo) Update(ctx context.Context, collection, id string, fields domain.Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("repo.sqliteDocumentRepo.Update: begin", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	var raw []byte
	err = tx.QueryRowContext(ctx,
		"SELECT fields FROM documents WHERE collection = ? AND id = ?",
		collection, id,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("repo.sqliteDocumentRepo.Update: %w", domain.ErrNotFound)
	}
	if err != nil {
		return storeErr("repo.sqliteDocumentRepo.Update: select", err)
	}

	current, err := decodeFields(raw)
	if err != nil {
		return storeErr("repo.sqliteDocumentRepo.Update", err)
	}
	maps.Copy(current, fields.Writable())

	merged, err := encodeFields(current)
	if err != nil {
		return fmt.Errorf("repo.sqliteDocumentRepo.Update: %w: %w", domain.ErrValidation, err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE documents
		 SET fields = ?, updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')
		 WHERE collection = ? AND id = ?`,
		merged, collection, id,
	); err != nil {
		return storeErr("repo.sqliteDocumentRepo.Update", err)
	}
	if err := tx.Commit(); err != nil {
		return storeErr("repo.sqliteDocumentRepo.Update: commit", err)
	}
	return nil
}

func (s *sqliteDocumentRepo) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM documents WHERE collection = ? AND id = ?",
		collection, id,
	)
	if err != nil {
		return storeErr("repo.sqliteDocumentRepo.Delete", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("repo.sqliteDocumentRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}
