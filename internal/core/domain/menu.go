package domain

import "errors"

// Menu categories. CategoryAll is a query alias, never stored.
const (
	CategoryAll        = "all"
	CategoryMeat       = "meat"
	CategoryVegetarian = "vegetarian"
	CategorySpicy      = "spicy"
)

var ErrItemNotFound = errors.New("menu item not found")

// MenuItem is a purchasable catalog entry. Price is in integer
// minor-currency units.
type MenuItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Available   bool   `json:"available"`
}
