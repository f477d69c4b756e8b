package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/pizzahub/ordering-system/internal/core/domain"
	"github.com/pizzahub/ordering-system/internal/core/ports"
)

const topItemsLimit = 5

// StatsService assembles the admin dashboard aggregates.
type StatsService struct {
	repo   ports.StatsRepository
	logger zerolog.Logger
}

func NewStatsService(repo ports.StatsRepository, logger zerolog.Logger) *StatsService {
	return &StatsService{repo: repo, logger: logger}
}

// Overview runs the four aggregate reads concurrently and responds only once
// all of them have finished. Callers without the admin role are rejected.
func (s *StatsService) Overview(ctx context.Context, role string) (*ports.StatsOverview, error) {
	if role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	var (
		overview ports.StatsOverview
		errs     [4]error
		wg       sync.WaitGroup
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		overview.TotalUsers, errs[0] = s.repo.CountUsers(ctx)
	}()
	go func() {
		defer wg.Done()
		overview.TotalOrders, errs[1] = s.repo.CountOrders(ctx)
	}()
	go func() {
		defer wg.Done()
		overview.TotalRevenue, errs[2] = s.repo.Revenue(ctx)
	}()
	go func() {
		defer wg.Done()
		overview.TopItems, errs[3] = s.repo.TopItems(ctx, topItemsLimit)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			s.logger.Error().Err(err).Msg("stats aggregation failed")
			return nil, err
		}
	}
	return &overview, nil
}
