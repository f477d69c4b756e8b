package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pizzahub/ordering-system/internal/core/domain"
)

type stubCatalogService struct {
	listFn func(ctx context.Context, category string) ([]domain.MenuItem, error)
}

func (s *stubCatalogService) List(ctx context.Context, category string) ([]domain.MenuItem, error) {
	return s.listFn(ctx, category)
}

func TestMenuHandler_List_All(t *testing.T) {
	stub := &stubCatalogService{
		listFn: func(ctx context.Context, category string) ([]domain.MenuItem, error) {
			if category != "" {
				t.Fatalf("unexpected category: %q", category)
			}
			return []domain.MenuItem{
				{ID: 1, Name: "Margherita", Price: 450, Category: domain.CategoryVegetarian, Available: true},
				{ID: 2, Name: "Pepperoni", Price: 520, Category: domain.CategoryMeat, Available: false},
			}, nil
		},
	}
	h := NewMenuHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/pizzas", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	// The catalog serves unavailable items too.
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[1]["available"] != false {
		t.Fatalf("availability flag lost: %+v", items[1])
	}
}

func TestMenuHandler_List_CategoryForwarded(t *testing.T) {
	stub := &stubCatalogService{
		listFn: func(ctx context.Context, category string) ([]domain.MenuItem, error) {
			if category != "meat" {
				t.Fatalf("category not forwarded: %q", category)
			}
			return []domain.MenuItem{}, nil
		},
	}
	h := NewMenuHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/pizzas?category=meat", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
