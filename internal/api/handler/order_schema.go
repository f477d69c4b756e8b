package handler

import "time"

// orderLineRequest mirrors a single cart line as the browser sends it. Name
// and Price are accepted for wire compatibility but never trusted; the server
// re-reads prices from the catalog.
type orderLineRequest struct {
	ItemID   int64  `json:"id" validate:"required,gt=0"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
}

type createOrderRequest struct {
	Items        []orderLineRequest `json:"items" validate:"required,min=1,dive"`
	Address      string             `json:"address" validate:"required"`
	Phone        string             `json:"phone" validate:"required"`
	Comment      string             `json:"comment"`
	DeliveryTime string             `json:"delivery_time"`
	ExtraCheese  bool               `json:"extra_cheese"`
	ExtraMeat    bool               `json:"extra_meat"`
	// Total is the client-side figure. Ignored; the committed total is
	// always recomputed server-side.
	Total int64 `json:"total"`
}

type createOrderResponse struct {
	OrderID        int64     `json:"order_id"`
	Total          int64     `json:"total"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	AlreadyExisted bool      `json:"already_existed,omitempty"`
}

type orderItemResponse struct {
	PizzaID   int64  `json:"pizza_id"`
	PizzaName string `json:"pizza_name"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}

type orderResponse struct {
	ID           int64               `json:"id"`
	Total        int64               `json:"total"`
	Status       string              `json:"status"`
	Address      string              `json:"address"`
	Phone        string              `json:"phone"`
	Comment      string              `json:"comment,omitempty"`
	DeliveryTime string              `json:"delivery_time,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	Items        []orderItemResponse `json:"items"`
}
