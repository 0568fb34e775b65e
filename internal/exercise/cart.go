package exercise

import "practice/internal/model"

// Cart accumulates line totals until checkout.
type Cart struct {
	total int
}

// Add records a purchase and returns its line total (price * quantity).
func (c *Cart) Add(item model.LineItem) int {
	line := item.Subtotal()
	c.total += line
	return line
}

// Total is the amount due at the next checkout.
func (c *Cart) Total() int { return c.total }

// Checkout returns the amount due and empties the cart.
func (c *Cart) Checkout() int {
	due := c.total
	c.total = 0
	return due
}
