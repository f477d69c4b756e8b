package ports

import (
	"context"

	"github.com/pizzahub/ordering-system/internal/core/domain"
)

// StatsRepository exposes the independent aggregate reads backing the admin
// dashboard.
type StatsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	// Revenue sums order totals, excluding cancelled orders.
	Revenue(ctx context.Context) (int64, error)
	// TopItems returns the best sellers by total quantity sold, descending.
	TopItems(ctx context.Context, limit int) ([]domain.ItemSales, error)
}
