package ports

import (
	"context"

	"github.com/pizzahub/ordering-system/internal/core/domain"
)

// OrderRepository defines persistence operations for placed orders.
type OrderRepository interface {
	// CreateWithLines persists the order header and all of its lines in a
	// single transaction, assigning order.ID and each line's OrderID. If any
	// line insert fails, nothing is committed.
	CreateWithLines(ctx context.Context, order *domain.Order) error
	// FindByIdempotencyKey retrieves the order previously created with the
	// given key, or domain.ErrOrderNotFound.
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Order, error)
	// ListByUser returns the user's orders newest-first, each with its full
	// line set attached.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Order, error)
}
