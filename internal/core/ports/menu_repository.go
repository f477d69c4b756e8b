package ports

import (
	"context"

	"github.com/pizzahub/ordering-system/internal/core/domain"
)

// MenuRepository defines read access to the seeded catalog.
type MenuRepository interface {
	// List returns items in insertion order. An empty category means no
	// filter; otherwise the match is exact.
	List(ctx context.Context, category string) ([]domain.MenuItem, error)
	// FindByIDs returns the items for the given ids, keyed by id. Missing
	// ids are simply absent from the map.
	FindByIDs(ctx context.Context, ids []int64) (map[int64]domain.MenuItem, error)
}
