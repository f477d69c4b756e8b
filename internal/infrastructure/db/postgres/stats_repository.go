package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pizzahub/ordering-system/internal/core/domain"
)

// StatsRepository runs the admin dashboard aggregates.
type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

func (r *StatsRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.countRow(ctx, `SELECT COUNT(*) FROM users`)
}

func (r *StatsRepository) CountOrders(ctx context.Context) (int64, error) {
	return r.countRow(ctx, `SELECT COUNT(*) FROM orders`)
}

// Revenue sums order totals, excluding cancelled orders.
func (r *StatsRepository) Revenue(ctx context.Context) (int64, error) {
	return r.countRow(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM orders WHERE status <> 'cancelled'`)
}

// TopItems returns the best sellers by total quantity sold.
func (r *StatsRepository) TopItems(ctx context.Context, limit int) ([]domain.ItemSales, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT m.name, SUM(oi.quantity) AS total_sold
		 FROM order_items oi
		 JOIN menu_items m ON m.id = oi.item_id
		 GROUP BY m.id, m.name
		 ORDER BY total_sold DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("top items: %w", err)
	}
	defer rows.Close()

	items := []domain.ItemSales{}
	for rows.Next() {
		var s domain.ItemSales
		if err := rows.Scan(&s.Name, &s.TotalSold); err != nil {
			return nil, fmt.Errorf("scan top item: %w", err)
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r *StatsRepository) countRow(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("aggregate query: %w", err)
	}
	return n, nil
}
