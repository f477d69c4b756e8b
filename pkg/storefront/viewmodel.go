package storefront

import "strconv"

// MenuItem is the catalog entry as delivered by GET /api/pizzas.
type MenuItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Available   bool   `json:"available"`
}

// MenuCard is one rendered catalog tile.
type MenuCard struct {
	Item         MenuItem
	PriceDisplay string
}

// BuildMenuView filters the catalog by category and attaches display prices.
// "" and "all" return every item. Unavailable items stay in the view; the
// renderer decides how to grey them out.
func BuildMenuView(items []MenuItem, category string) []MenuCard {
	cards := make([]MenuCard, 0, len(items))
	for _, item := range items {
		if category != "" && category != "all" && item.Category != category {
			continue
		}
		cards = append(cards, MenuCard{Item: item, PriceDisplay: FormatPrice(item.Price)})
	}
	return cards
}

// FormatPrice renders a price with the tenge sign, e.g. "450 ₸".
func FormatPrice(price int64) string {
	return strconv.FormatInt(price, 10) + " ₸"
}
