package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pizzahub/ordering-system/internal/core/domain"
)

type stubStatsRepo struct {
	users    int64
	orders   int64
	revenue  int64
	topItems []domain.ItemSales

	revenueErr error
}

func (r *stubStatsRepo) CountUsers(context.Context) (int64, error)  { return r.users, nil }
func (r *stubStatsRepo) CountOrders(context.Context) (int64, error) { return r.orders, nil }

func (r *stubStatsRepo) Revenue(context.Context) (int64, error) {
	return r.revenue, r.revenueErr
}

func (r *stubStatsRepo) TopItems(_ context.Context, limit int) ([]domain.ItemSales, error) {
	if len(r.topItems) > limit {
		return r.topItems[:limit], nil
	}
	return r.topItems, nil
}

func TestStatsService_Overview_Forbidden(t *testing.T) {
	svc := NewStatsService(&stubStatsRepo{}, zerolog.Nop())

	if _, err := svc.Overview(context.Background(), domain.RoleCustomer); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Overview(context.Background(), ""); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for empty role, got %v", err)
	}
}

func TestStatsService_Overview_Assembles(t *testing.T) {
	repo := &stubStatsRepo{
		users:   12,
		orders:  34,
		revenue: 56700,
		topItems: []domain.ItemSales{
			{Name: "Pepperoni", TotalSold: 20},
			{Name: "Margherita", TotalSold: 15},
		},
	}
	svc := NewStatsService(repo, zerolog.Nop())

	overview, err := svc.Overview(context.Background(), domain.RoleAdmin)
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if overview.TotalUsers != 12 || overview.TotalOrders != 34 || overview.TotalRevenue != 56700 {
		t.Fatalf("unexpected totals: %+v", overview)
	}
	if len(overview.TopItems) != 2 || overview.TopItems[0].Name != "Pepperoni" {
		t.Fatalf("unexpected top items: %+v", overview.TopItems)
	}
}

func TestStatsService_Overview_ErrorPropagates(t *testing.T) {
	repoErr := errors.New("db down")
	svc := NewStatsService(&stubStatsRepo{revenueErr: repoErr}, zerolog.Nop())

	if _, err := svc.Overview(context.Background(), domain.RoleAdmin); !errors.Is(err, repoErr) {
		t.Fatalf("expected repo error to propagate, got %v", err)
	}
}
