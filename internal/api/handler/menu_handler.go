package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pizzahub/ordering-system/internal/core/ports"
)

// MenuHandler exposes the public pizza catalog.
type MenuHandler struct {
	service ports.CatalogService
}

// NewMenuHandler builds a MenuHandler around the given catalog service.
func NewMenuHandler(service ports.CatalogService) *MenuHandler {
	return &MenuHandler{service: service}
}

// List godoc
// @Summary      List pizzas
// @Description  Returns the catalog, optionally filtered by category.
// @Tags         menu
// @Produce      json
// @Param        category query string false "Category filter (all, meat, vegetarian, spicy)"
// @Success      200 {array} domain.MenuItem
// @Router       /api/pizzas [get]
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load catalog"})
	}

	return c.JSON(http.StatusOK, items)
}
