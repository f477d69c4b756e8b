package ports

import (
	"context"

	"github.com/pizzahub/ordering-system/internal/core/domain"
)

// CatalogService exposes the read-only menu listing.
type CatalogService interface {
	// List returns the catalog, optionally filtered by exact category match.
	// "" and "all" both return the full seeded set, unavailable items
	// included.
	List(ctx context.Context, category string) ([]domain.MenuItem, error)
}
