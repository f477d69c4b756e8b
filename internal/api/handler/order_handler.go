package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pizzahub/ordering-system/internal/api/metrics"
	"github.com/pizzahub/ordering-system/internal/core/domain"
	"github.com/pizzahub/ordering-system/internal/core/ports"
)

// OrderHandler exposes checkout and order history for authenticated users.
type OrderHandler struct {
	service ports.OrderService
}

// NewOrderHandler builds an OrderHandler around the given order service.
func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create godoc
// @Summary      Place an order
// @Description  Commits the submitted cart as an order. The total is always
// @Description  recomputed server-side from catalog prices. An Idempotency-Key
// @Description  header makes the call replay-safe.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key header string false "Client-generated replay key"
// @Param        request body createOrderRequest true "Cart contents and delivery details"
// @Success      201 {object} createOrderResponse
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.service.PlaceOrder(c.Request().Context(), ports.PlaceOrderInput{
		UserID: userID,
		Lines:  toOrderLines(req.Items),
		Delivery: ports.DeliveryInput{
			Address:       req.Address,
			Phone:         req.Phone,
			Comment:       req.Comment,
			ScheduledTime: req.DeliveryTime,
		},
		Extras: ports.ExtrasInput{
			Cheese: req.ExtraCheese,
			Meat:   req.ExtraMeat,
		},
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyOrder), errors.Is(err, domain.ErrInvalidQuantity):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, domain.ErrItemNotFound):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, domain.ErrDuplicateOrder):
			metrics.OrdersPlacedTotal.WithLabelValues("duplicate").Inc()
			return c.JSON(http.StatusConflict, map[string]string{"error": "duplicate order submission"})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to place order"})
		}
	}

	if result.AlreadyExisted {
		metrics.OrdersPlacedTotal.WithLabelValues("replayed").Inc()
	} else {
		metrics.OrdersPlacedTotal.WithLabelValues("placed").Inc()
		metrics.OrderValue.Observe(float64(result.Total))
	}

	return c.JSON(http.StatusCreated, createOrderResponse{
		OrderID:        result.OrderID,
		Total:          result.Total,
		Status:         result.Status,
		CreatedAt:      result.CreatedAt,
		AlreadyExisted: result.AlreadyExisted,
	})
}

// List godoc
// @Summary      List my orders
// @Description  Returns the authenticated user's orders, newest first.
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} orderResponse
// @Failure      401 {object} map[string]string
// @Router       /api/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	views, err := h.service.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load orders"})
	}

	out := make([]orderResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toOrderResponse(v))
	}

	return c.JSON(http.StatusOK, out)
}
