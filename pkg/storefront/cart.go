// Package storefront implements the browser-held state of the ordering UI:
// the shopping cart, the persisted session and the menu view models. It has
// no server dependencies so it can back any client embedding.
package storefront

import "encoding/json"

// CartLine is one entry in the cart. Price is the unit price as shown in the
// catalog at the time the item was added.
type CartLine struct {
	ItemID   int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// Cart accumulates items before checkout. Lines keep insertion order; adding
// an item already present increments its quantity instead of appending a
// second line.
type Cart struct {
	lines []CartLine
}

// Add puts one unit of the item into the cart, merging with an existing line
// for the same item id.
func (c *Cart) Add(itemID int64, name string, price int64) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{ItemID: itemID, Name: name, Price: price, Quantity: 1})
}

// Remove drops the line for the given item id, if present.
func (c *Cart) Remove(itemID int64) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// ChangeQuantity adjusts a line's quantity by delta. A resulting quantity of
// zero or less removes the line entirely.
func (c *Cart) ChangeQuantity(itemID int64, delta int) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Quantity += delta
			if c.lines[i].Quantity <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			}
			return
		}
	}
}

// Subtotal returns the sum of price times quantity over all lines.
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, line := range c.lines {
		total += line.Price * int64(line.Quantity)
	}
	return total
}

// Count returns the total number of units in the cart, not the line count.
func (c *Cart) Count() int {
	var n int
	for _, line := range c.lines {
		n += line.Quantity
	}
	return n
}

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// MarshalJSON encodes the cart as a bare array of lines, matching the shape
// submitted at checkout.
func (c *Cart) MarshalJSON() ([]byte, error) {
	if c.lines == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.lines)
}

// UnmarshalJSON restores a cart from its array form.
func (c *Cart) UnmarshalJSON(data []byte) error {
	var lines []CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return err
	}
	c.lines = lines
	return nil
}
