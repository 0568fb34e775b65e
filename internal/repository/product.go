package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned by backends that have no product to serve.
// The postgres backend reports sql.ErrNoRows instead.
var ErrNotFound = errors.New("product not found")

// ProductRepository is the data access layer of the product demo.
// No business logic here, strictly reads from the backing store.
type ProductRepository interface {
	// GetProduct returns the product string held by the backend.
	GetProduct(ctx context.Context) (string, error)

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}
