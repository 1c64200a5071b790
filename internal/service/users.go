package service

import (
	"context"

	"github.com/pkordes/hotel-admin/backend/internal/domain"
)

// UserService binds the collection operations to the "users" collection.
// It adds no behavior of its own.
type UserService struct {
	records Collections
}

// NewUserService constructs a UserService over the given accessor.
func NewUserService(c Collections) *UserService {
	return &UserService{records: c}
}

func (s *UserService) List(ctx context.Context) ([]domain.Record, error) {
	return s.records.List(ctx, domain.Users)
}

func (s *UserService) Create(ctx context.Context, fields domain.Fields) (domain.Record, error) {
	return s.records.Create(ctx, domain.Users, fields)
}

func (s *UserService) Update(ctx context.Context, id string, fields domain.Fields) error {
	return s.records.Update(ctx, domain.Users, id, fields)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.records.Delete(ctx, domain.Users, id)
}
