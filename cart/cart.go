// Package cart is the in-memory order builder. A cart lives only
// between "start an order" and "submit"; it is never persisted, and a
// crash simply loses it. There are no error conditions here — this is
// pure bookkeeping on integer minor-unit prices.
package cart

import "warung-pos-api/models"

// Line is one (menu item, quantity, note) entry. Name and UnitPrice
// are copied from the catalog when the line is created, so the cart's
// arithmetic is unaffected by later menu edits.
type Line struct {
	MenuItemID uint   `json:"menu_item_id"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unit_price"`
	Quantity   int    `json:"quantity"`
	Note       string `json:"note"`
}

// Total is the line's price times quantity.
func (l Line) Total() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Cart holds the lines of an order being built. Lines keep insertion
// order. Quantity never drops below 1: decrementing a quantity-1 line
// removes the line entirely.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

func (c *Cart) find(menuItemID uint) int {
	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			return i
		}
	}
	return -1
}

// AddItem adds one unit of the given menu item. An existing line is
// incremented; otherwise a new line with quantity 1 and no note is
// appended.
func (c *Cart) AddItem(item models.MenuItem) {
	if i := c.find(item.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, Line{
		MenuItemID: item.ID,
		Name:       item.Name,
		UnitPrice:  item.UnitPrice,
		Quantity:   1,
	})
}

// Decrement removes one unit of the given menu item. Removing the last
// unit removes the line. Unknown IDs are ignored.
func (c *Cart) Decrement(menuItemID uint) {
	i := c.find(menuItemID)
	if i < 0 {
		return
	}
	if c.lines[i].Quantity > 1 {
		c.lines[i].Quantity--
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// SetNote overwrites the free-text note on the line for the given menu
// item. No validation; unknown IDs are ignored.
func (c *Cart) SetNote(menuItemID uint, text string) {
	if i := c.find(menuItemID); i >= 0 {
		c.lines[i].Note = text
	}
}

// Subtotal is the sum of all line totals.
func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, l := range c.lines {
		sum += l.Total()
	}
	return sum
}

// Lines returns a copy of the current lines.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Clear empties the cart, called after a successful submit.
func (c *Cart) Clear() {
	c.lines = nil
}
