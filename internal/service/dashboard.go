package service

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/pkordes/hotel-admin/backend/internal/domain"
)

// DashboardService builds the landing-page overview: a record count for each
// managed collection.
type DashboardService struct {
	records     Collections
	collections []string
}

// NewDashboardService constructs a DashboardService reporting on collections,
// in the given order.
func NewDashboardService(c Collections, collections []string) *DashboardService {
	return &DashboardService{records: c, collections: slices.Clone(collections)}
}

// Overview lists every collection concurrently. The first failure cancels
// the remaining listings and is returned.
func (s *DashboardService) Overview(ctx context.Context) ([]domain.CollectionCount, error) {
	counts := make([]domain.CollectionCount, len(s.collections))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range s.collections {
		g.Go(func() error {
			records, err := s.records.List(ctx, name)
			if err != nil {
				return err
			}
			counts[i] = domain.CollectionCount{Collection: name, Count: len(records)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("service.DashboardService.Overview: %w", err)
	}
	return counts, nil
}
