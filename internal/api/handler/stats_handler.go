package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pizzahub/ordering-system/internal/core/domain"
	"github.com/pizzahub/ordering-system/internal/core/ports"
)

type statsResponse struct {
	TotalUsers   int64              `json:"total_users"`
	TotalOrders  int64              `json:"total_orders"`
	TotalRevenue int64              `json:"total_revenue"`
	TopItems     []domain.ItemSales `json:"top_items"`
}

// StatsHandler exposes the admin dashboard aggregates.
type StatsHandler struct {
	service ports.StatsService
}

// NewStatsHandler builds a StatsHandler around the given stats service.
func NewStatsHandler(service ports.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Overview godoc
// @Summary      Store statistics
// @Description  Returns user, order and revenue aggregates. Admin only.
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} statsResponse
// @Failure      401 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Router       /api/stats [get]
func (h *StatsHandler) Overview(c echo.Context) error {
	_, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	overview, err := h.service.Overview(c.Request().Context(), role)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "admin access required"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load statistics"})
	}

	return c.JSON(http.StatusOK, statsResponse{
		TotalUsers:   overview.TotalUsers,
		TotalOrders:  overview.TotalOrders,
		TotalRevenue: overview.TotalRevenue,
		TopItems:     overview.TopItems,
	})
}
