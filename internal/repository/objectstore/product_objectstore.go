package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"practice/internal/repository"
	"practice/internal/storage"
)

// maxProductBytes caps how much of the object is read.
const maxProductBytes = 4 << 10

// ProductObjectStore reads the product string from a single object.
type ProductObjectStore struct {
	store storage.Storage
	key   string
}

// NewProductObjectStore returns a repository backed by the object at key.
func NewProductObjectStore(store storage.Storage, key string) *ProductObjectStore {
	return &ProductObjectStore{store: store, key: key}
}

var _ repository.ProductRepository = (*ProductObjectStore)(nil)

// GetProduct returns the object's content with surrounding whitespace trimmed.
func (r *ProductObjectStore) GetProduct(ctx context.Context) (string, error) {
	rc, _, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", repository.ErrNotFound
		}
		return "", err
	}
	defer rc.Close()

	b, err := io.ReadAll(io.LimitReader(rc, maxProductBytes))
	if err != nil {
		return "", fmt.Errorf("read object %s: %w", r.key, err)
	}
	return strings.TrimSpace(string(b)), nil
}

// Seed writes product under the key unless an object already exists there.
// It reports whether an object was written.
func (r *ProductObjectStore) Seed(ctx context.Context, product string) (bool, error) {
	rc, _, err := r.store.Get(ctx, r.key)
	if err == nil {
		rc.Close()
		return false, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return false, err
	}

	_, err = r.store.Put(ctx, r.key, strings.NewReader(product), storage.PutObjectOptions{
		Size:        int64(len(product)),
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return false, fmt.Errorf("seed object %s: %w", r.key, err)
	}
	return true, nil
}

func (r *ProductObjectStore) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}
