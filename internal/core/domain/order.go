package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order. Only the default
// (pending) is assigned by checkout; no transition machine is enforced.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusDelivering OrderStatus = "delivering"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// Checkout surcharges, in minor-currency units.
const (
	ExtraCheesePrice int64 = 150
	ExtraMeatPrice   int64 = 200
)

var ErrOrderNotFound = errors.New("order not found")
var ErrEmptyOrder = errors.New("order has no items")
var ErrInvalidQuantity = errors.New("line quantity must be at least 1")
var ErrDuplicateOrder = errors.New("duplicate order submission")

// OrderLine is one (item, quantity) entry of a placed order. UnitPrice is
// the catalog price captured at order time; later menu price changes must
// never alter it.
type OrderLine struct {
	ID        int64  `json:"-"`
	OrderID   int64  `json:"order_id"`
	ItemID    int64  `json:"item_id"`
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"price"`
}

// Subtotal returns price x quantity for this line.
func (l OrderLine) Subtotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Order is the durable record of a checkout, created atomically with its
// lines.
type Order struct {
	ID             int64       `json:"id"`
	UserID         int64       `json:"user_id"`
	Total          int64       `json:"total"`
	Status         OrderStatus `json:"status"`
	Address        string      `json:"address"`
	Phone          string      `json:"phone"`
	Comment        string      `json:"comment"`
	DeliveryTime   string      `json:"delivery_time"`
	IdempotencyKey string      `json:"-"`
	CreatedAt      time.Time   `json:"created_at"`
	Lines          []OrderLine `json:"items"`
}

// ItemSales is one row of the top-sellers aggregate.
type ItemSales struct {
	Name      string `json:"name"`
	TotalSold int64  `json:"total_sold"`
}
