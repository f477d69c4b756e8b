package ports

import (
	"context"

	"github.com/pizzahub/ordering-system/internal/core/domain"
)

// StatsOverview is the assembled admin dashboard payload.
type StatsOverview struct {
	TotalUsers   int64
	TotalOrders  int64
	TotalRevenue int64
	TopItems     []domain.ItemSales
}

// StatsService assembles the aggregate reads for privileged callers.
type StatsService interface {
	// Overview returns domain.ErrForbidden unless role is domain.RoleAdmin.
	Overview(ctx context.Context, role string) (*StatsOverview, error)
}
