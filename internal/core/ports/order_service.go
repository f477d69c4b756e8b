package ports

import (
	"context"
	"time"
)

// OrderLineInput is one cart line submitted at checkout. Only the item id
// and quantity are trusted; prices are re-read from the catalog.
type OrderLineInput struct {
	ItemID   int64
	Quantity int
}

// DeliveryInput holds the delivery metadata for an order. Comment and
// ScheduledTime are free-text and optional.
type DeliveryInput struct {
	Address       string
	Phone         string
	Comment       string
	ScheduledTime string
}

// ExtrasInput carries the optional paid add-ons for the whole order.
type ExtrasInput struct {
	Cheese bool
	Meat   bool
}

// PlaceOrderInput carries everything needed to place an order.
type PlaceOrderInput struct {
	UserID   int64
	Lines    []OrderLineInput
	Delivery DeliveryInput
	Extras   ExtrasInput
	// IdempotencyKey, when non-empty, makes the call replay-safe: a repeated
	// key returns the originally created order.
	IdempotencyKey string
}

// PlaceOrderResult is returned by the service after checkout.
type PlaceOrderResult struct {
	OrderID   int64
	Total     int64
	Status    string
	CreatedAt time.Time
	// AlreadyExisted is true when the idempotency key matched an existing
	// order and no new rows were written.
	AlreadyExisted bool
}

// OrderLineView is a single line in an order listing.
type OrderLineView struct {
	ItemID    int64
	ItemName  string
	Quantity  int
	UnitPrice int64
}

// OrderView is the order-with-lines shape returned by ListOrders.
type OrderView struct {
	ID           int64
	Total        int64
	Status       string
	Address      string
	Phone        string
	Comment      string
	DeliveryTime string
	CreatedAt    time.Time
	Items        []OrderLineView
}

// OrderService defines the checkout and order history use cases.
type OrderService interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*PlaceOrderResult, error)
	ListOrders(ctx context.Context, userID int64) ([]OrderView, error)
}
