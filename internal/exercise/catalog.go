package exercise

import "practice/internal/model"

// DefaultCatalogCapacity is the number of slots in a catalog built with a
// non-positive capacity.
const DefaultCatalogCapacity = 10

// Catalog is a fixed-capacity product registry kept in insertion order.
type Catalog struct {
	items    []model.Product
	capacity int
}

// NewCatalog returns an empty catalog holding at most capacity products.
func NewCatalog(capacity int) *Catalog {
	if capacity <= 0 {
		capacity = DefaultCatalogCapacity
	}
	return &Catalog{
		items:    make([]model.Product, 0, capacity),
		capacity: capacity,
	}
}

// Register appends p, failing with ErrCatalogFull once every slot is taken.
func (c *Catalog) Register(p model.Product) error {
	if c.Full() {
		return ErrCatalogFull
	}
	c.items = append(c.items, p)
	return nil
}

// List returns a copy of the registered products.
func (c *Catalog) List() []model.Product {
	out := make([]model.Product, len(c.items))
	copy(out, c.items)
	return out
}

// Len is the number of registered products.
func (c *Catalog) Len() int { return len(c.items) }

// Capacity is the maximum number of products the catalog holds.
func (c *Catalog) Capacity() int { return c.capacity }

// Full reports whether every slot is taken.
func (c *Catalog) Full() bool { return len(c.items) >= c.capacity }
