package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pizzahub/ordering-system/internal/core/domain"
)

// OrderRepository persists orders and their lines in Postgres.
type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// CreateWithLines inserts the order header and every line inside a single
// transaction. The commit happens only after all line inserts succeed; any
// failure rolls the whole order back.
func (r *OrderRepository) CreateWithLines(ctx context.Context, order *domain.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO orders (user_id, total, status, address, phone, comment, delivery_time, idempotency_key, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		order.UserID, order.Total, order.Status, order.Address, order.Phone,
		order.Comment, order.DeliveryTime, order.IdempotencyKey, order.CreatedAt,
	).Scan(&order.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicateOrder
		}
		return fmt.Errorf("insert order: %w", err)
	}

	for i := range order.Lines {
		line := &order.Lines[i]
		line.OrderID = order.ID
		_, err := tx.Exec(ctx,
			`INSERT INTO order_items (order_id, item_id, quantity, price)
			 VALUES ($1, $2, $3, $4)`,
			line.OrderID, line.ItemID, line.Quantity, line.UnitPrice)
		if err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// FindByIdempotencyKey returns the order header previously created with the
// given key.
func (r *OrderRepository) FindByIdempotencyKey(ctx context.Context, key string) (*domain.Order, error) {
	if key == "" {
		return nil, domain.ErrOrderNotFound
	}

	var o domain.Order
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, total, status, address, phone, comment, delivery_time, created_at
		 FROM orders WHERE idempotency_key = $1`, key,
	).Scan(&o.ID, &o.UserID, &o.Total, &o.Status, &o.Address, &o.Phone, &o.Comment, &o.DeliveryTime, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order by key: %w", err)
	}
	return &o, nil
}

// ListByUser runs one join query and folds the flat rows into orders with
// their line sets, newest-first.
func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Order, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT o.id, o.total, o.status, o.address, o.phone, o.comment, o.delivery_time, o.created_at,
		        oi.item_id, oi.quantity, oi.price, m.name
		 FROM orders o
		 LEFT JOIN order_items oi ON oi.order_id = o.id
		 LEFT JOIN menu_items m ON m.id = oi.item_id
		 WHERE o.user_id = $1
		 ORDER BY o.created_at DESC, o.id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	byID := make(map[int64]*domain.Order)
	orders := []*domain.Order{}
	for rows.Next() {
		var (
			o        domain.Order
			itemID   *int64
			quantity *int
			price    *int64
			itemName *string
		)
		err := rows.Scan(&o.ID, &o.Total, &o.Status, &o.Address, &o.Phone, &o.Comment, &o.DeliveryTime, &o.CreatedAt,
			&itemID, &quantity, &price, &itemName)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}

		order, seen := byID[o.ID]
		if !seen {
			o.UserID = userID
			order = &o
			byID[o.ID] = order
			orders = append(orders, order)
		}

		// LEFT JOIN: an order with no lines yields NULL item columns.
		if itemID != nil {
			line := domain.OrderLine{
				OrderID:   order.ID,
				ItemID:    *itemID,
				Quantity:  *quantity,
				UnitPrice: *price,
			}
			if itemName != nil {
				line.ItemName = *itemName
			}
			order.Lines = append(order.Lines, line)
		}
	}
	return orders, rows.Err()
}
