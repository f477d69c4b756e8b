package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pizzahub/ordering-system/internal/core/domain"
)

type recordingMenuRepo struct {
	stubMenuRepo
	lastCategory string
	err          error
}

func (r *recordingMenuRepo) List(ctx context.Context, category string) ([]domain.MenuItem, error) {
	r.lastCategory = category
	if r.err != nil {
		return nil, r.err
	}
	return r.stubMenuRepo.List(ctx, category)
}

func TestCatalogService_List_AllMapsToNoFilter(t *testing.T) {
	repo := &recordingMenuRepo{stubMenuRepo: *testMenu()}
	svc := NewCatalogService(repo, zerolog.Nop())

	items, err := svc.List(context.Background(), domain.CategoryAll)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastCategory != "" {
		t.Fatalf("expected no filter for %q, repo saw %q", domain.CategoryAll, repo.lastCategory)
	}
	if len(items) != 2 {
		t.Fatalf("expected full catalog, got %d items", len(items))
	}
}

func TestCatalogService_List_CategoryPassthrough(t *testing.T) {
	repo := &recordingMenuRepo{stubMenuRepo: *testMenu()}
	svc := NewCatalogService(repo, zerolog.Nop())

	items, err := svc.List(context.Background(), domain.CategoryMeat)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastCategory != domain.CategoryMeat {
		t.Fatalf("category not forwarded: %q", repo.lastCategory)
	}
	for _, it := range items {
		if it.Category != domain.CategoryMeat {
			t.Fatalf("unexpected item in filtered list: %+v", it)
		}
	}
}

func TestCatalogService_List_RepoError(t *testing.T) {
	repoErr := errors.New("db down")
	repo := &recordingMenuRepo{err: repoErr}
	svc := NewCatalogService(repo, zerolog.Nop())

	if _, err := svc.List(context.Background(), ""); !errors.Is(err, repoErr) {
		t.Fatalf("expected repo error to propagate, got %v", err)
	}
}
