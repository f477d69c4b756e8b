package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pizzahub/ordering-system/internal/core/domain"
	"github.com/pizzahub/ordering-system/internal/core/ports"
)

// CatalogService serves the read-only menu listing.
type CatalogService struct {
	repo   ports.MenuRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.MenuRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// List returns the catalog in insertion order. "" and "all" disable
// filtering; any other value is an exact category match. Unavailable items
// are intentionally included (the flag is exposed for clients to render).
func (s *CatalogService) List(ctx context.Context, category string) ([]domain.MenuItem, error) {
	if category == domain.CategoryAll {
		category = ""
	}

	items, err := s.repo.List(ctx, category)
	if err != nil {
		s.logger.Error().Err(err).Str("category", category).Msg("failed to list menu")
		return nil, err
	}
	return items, nil
}
