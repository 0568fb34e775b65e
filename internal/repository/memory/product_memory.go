package memory

import (
	"context"

	"practice/internal/repository"
)

// ProductMemory serves a fixed product string without any backing store.
type ProductMemory struct {
	product string
}

// NewProductMemory returns a repository that always yields product.
func NewProductMemory(product string) *ProductMemory {
	return &ProductMemory{product: product}
}

var _ repository.ProductRepository = (*ProductMemory)(nil)

func (r *ProductMemory) GetProduct(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return r.product, nil
}

func (r *ProductMemory) Ping(ctx context.Context) error {
	return ctx.Err()
}
