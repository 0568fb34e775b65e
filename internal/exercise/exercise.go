// Package exercise holds the computations behind the console programs:
// min/max and sums over integer sequences, score reports, the grade switch,
// the product catalog, the shopping cart and the increment demo.
//
// Nothing in this package performs I/O.
package exercise

import "errors"

var (
	ErrEmptySequence = errors.New("sequence is empty")
	ErrInvalidCount  = errors.New("count must not be negative")
	ErrCatalogFull   = errors.New("catalog is full")
)
