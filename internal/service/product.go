package service

import (
	"context"
	"database/sql"
	"errors"

	"practice/internal/repository"
)

var (
	ErrRepositoryUnavailable = errors.New("product repository is not configured")
	ErrNotFound              = errors.New("product not found")
)

// ProductService defines the use cases of the product demo.
type ProductService interface {
	// GetProduct returns the product string from the repository.
	GetProduct(ctx context.Context) (string, error)

	// Ready reports whether the repository backend is reachable.
	Ready(ctx context.Context) error
}

// productService is a concrete implementation of ProductService.
type productService struct {
	repo repository.ProductRepository
}

// NewProductService constructs a new ProductService. A nil repo is accepted;
// every call then fails with ErrRepositoryUnavailable.
func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

// GetProduct passes through to the repository after a nil check.
func (s *productService) GetProduct(ctx context.Context) (string, error) {
	if s.repo == nil {
		return "", ErrRepositoryUnavailable
	}
	p, err := s.repo.GetProduct(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return p, nil
}

func (s *productService) Ready(ctx context.Context) error {
	if s.repo == nil {
		return ErrRepositoryUnavailable
	}
	return s.repo.Ping(ctx)
}
