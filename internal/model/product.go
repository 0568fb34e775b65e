package model

// Product is a named item with a unit price, as registered in the console
// catalog. Prices are whole currency units.
type Product struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// LineItem is a product bought in some quantity.
type LineItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal is the unit price times the quantity.
func (l LineItem) Subtotal() int {
	return l.Price * l.Quantity
}
