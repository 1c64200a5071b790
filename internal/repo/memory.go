package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/hotel-admin/backend/internal/domain"
)

// memoryDocumentRepo keeps everything in memory. Data is lost on restart.
// Safe for concurrent use.
type memoryDocumentRepo struct {
	mu          sync.RWMutex
	collections map[string]*memoryCollection
}

// memoryCollection remembers insertion order so List is stable.
type memoryCollection struct {
	order []string
	docs  map[string]domain.Fields
}

// NewMemoryDocumentRepo constructs an empty in-memory DocumentRepo.
func NewMemoryDocumentRepo() DocumentRepo {
	return &memoryDocumentRepo{collections: make(map[string]*memoryCollection)}
}

// deepCopy returns a deep copy of a field map by round-tripping through JSON,
// which also normalizes values to what the SQL backends return (numbers
// become float64).
func deepCopy(src domain.Fields) (domain.Fields, error) {
	raw, err := encodeFields(src)
	if err != nil {
		return nil, err
	}
	return decodeFields([]byte(raw))
}

func (m *memoryDocumentRepo) List(_ context.Context, collection string) ([]domain.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	records := []domain.Record{}
	coll, ok := m.collections[collection]
	if !ok {
		return records, nil
	}
	for _, id := range coll.order {
		fields, err := deepCopy(coll.docs[id])
		if err != nil {
			return nil, storeErr("repo.memoryDocumentRepo.List", err)
		}
		records = append(records, domain.Record{ID: id, Fields: fields})
	}
	return records, nil
}

func (m *memoryDocumentRepo) Create(_ context.Context, collection string, fields domain.Fields) (domain.Record, error) {
	stored, err := deepCopy(fields.Writable())
	if err != nil {
		return domain.Record{}, fmt.Errorf("repo.memoryDocumentRepo.Create: %w: %w", domain.ErrValidation, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	coll, ok := m.collections[collection]
	if !ok {
		coll = &memoryCollection{docs: make(map[string]domain.Fields)}
		m.collections[collection] = coll
	}
	id := uuid.NewString()
	coll.order = append(coll.order, id)
	coll.docs[id] = stored

	out, _ := deepCopy(stored)
	return domain.Record{ID: id, Fields: out}, nil
}

func (m *memoryDocumentRepo) Update(_ context.Context, collection, id string, fields domain.Fields) error {
	patch, err := deepCopy(fields.Writable())
	if err != nil {
		return fmt.Errorf("repo.memoryDocumentRepo.Update: %w: %w", domain.ErrValidation, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	coll, ok := m.collections[collection]
	if !ok {
		return fmt.Errorf("repo.memoryDocumentRepo.Update: %w", domain.ErrNotFound)
	}
	doc, ok := coll.docs[id]
	if !ok {
		return fmt.Errorf("repo.memoryDocumentRepo.Update: %w", domain.ErrNotFound)
	}
	for k, v := range patch {
		doc[k] = v
	}
	return nil
}

func (m *memoryDocumentRepo) Delete(_ context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	coll, ok := m.collections[collection]
	if !ok {
		return fmt.Errorf("repo.memoryDocumentRepo.Delete: %w", domain.ErrNotFound)
	}
	if _, exists := coll.docs[id]; !exists {
		return fmt.Errorf("repo.memoryDocumentRepo.Delete: %w", domain.ErrNotFound)
	}
	delete(coll.docs, id)
	for i, v := range coll.order {
		if v == id {
			coll.order = append(coll.order[:i], coll.order[i+1:]...)
			break
		}
	}
	return nil
}
