package postgres

import (
	"context"
	"database/sql"

	"practice/internal/repository"
)

// ProductPostgres is a PostgreSQL implementation of repository.ProductRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ProductPostgres struct {
	db *sql.DB
}

// NewProductPostgres creates a new ProductPostgres repository.
func NewProductPostgres(db *sql.DB) *ProductPostgres {
	return &ProductPostgres{db: db}
}

var _ repository.ProductRepository = (*ProductPostgres)(nil)

// GetProduct returns the name of the first product row.
// sql.ErrNoRows is returned unchanged when the table is empty.
func (r *ProductPostgres) GetProduct(ctx context.Context) (string, error) {
	const q = `
		SELECT name
		FROM products
		ORDER BY id
		LIMIT 1
	`
	var name string
	if err := r.db.QueryRowContext(ctx, q).Scan(&name); err != nil {
		return "", err
	}
	return name, nil
}

// Ping checks database connectivity.
func (r *ProductPostgres) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
