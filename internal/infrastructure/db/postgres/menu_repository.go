package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pizzahub/ordering-system/internal/core/domain"
)

// MenuRepository reads the seeded catalog from Postgres.
type MenuRepository struct {
	pool *pgxpool.Pool
}

func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{pool: pool}
}

// List returns menu items in insertion order, optionally filtered by exact
// category match.
func (r *MenuRepository) List(ctx context.Context, category string) ([]domain.MenuItem, error) {
	query := `SELECT id, name, description, price, category, image, available
		  FROM menu_items`
	args := []any{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var m domain.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Category, &m.Image, &m.Available); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// FindByIDs returns the requested items keyed by id; unknown ids are absent.
func (r *MenuRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, price, category, image, available
		 FROM menu_items WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("find menu items: %w", err)
	}
	defer rows.Close()

	items := make(map[int64]domain.MenuItem, len(ids))
	for rows.Next() {
		var m domain.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Category, &m.Image, &m.Available); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items[m.ID] = m
	}
	return items, rows.Err()
}
