package service

import (
	"context"
	"fmt"

	"github.com/pkordes/hotel-admin/backend/internal/domain"
)

// BookingService implements the booking review actions staff take on
// incoming requests.
type BookingService struct {
	records Collections
}

// NewBookingService constructs a BookingService over the given accessor.
func NewBookingService(c Collections) *BookingService {
	return &BookingService{records: c}
}

// Confirm marks the booking as booked. Other fields are left untouched.
// Returns domain.ErrNotFound if the booking does not exist.
func (s *BookingService) Confirm(ctx context.Context, id string) error {
	if err := s.records.Update(ctx, domain.Bookings, id, domain.Fields{"isBooked": true}); err != nil {
		return fmt.Errorf("service.BookingService.Confirm: %w", err)
	}
	return nil
}

// Reject removes the booking request.
// Returns domain.ErrNotFound if the booking does not exist.
func (s *BookingService) Reject(ctx context.Context, id string) error {
	if err := s.records.Delete(ctx, domain.Bookings, id); err != nil {
		return fmt.Errorf("service.BookingService.Reject: %w", err)
	}
	return nil
}
