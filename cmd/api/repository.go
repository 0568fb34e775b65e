package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"practice/internal/config"
	"practice/internal/database"
	"practice/internal/database/migration"
	"practice/internal/repository"
	"practice/internal/repository/memory"
	"practice/internal/repository/objectstore"
	"practice/internal/repository/postgres"
	"practice/internal/storage"
)

var (
	newPostgres = database.NewPostgres
	newMinIO    = storage.NewMinIO
)

// newProductRepository builds the backend selected by cfg.Product.Driver.
// The returned func releases whatever the backend holds open.
func newProductRepository(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger) (repository.ProductRepository, func(), error) {
	switch cfg.Product.Driver {
	case config.DriverMemory, "":
		return memory.NewProductMemory(cfg.Product.Stub), func() {}, nil

	case config.DriverPostgres:
		db, err := newPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host, cfg.Product.Stub); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return postgres.NewProductPostgres(db), func() { _ = db.Close() }, nil

	case config.DriverObjectStore:
		store, err := newMinIO(cfg.MinIO)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize object storage: %w", err)
		}
		repo := objectstore.NewProductObjectStore(store, cfg.Product.ObjectKey)
		seeded, err := repo.Seed(ctx, cfg.Product.Stub)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("product_object_ready",
			zap.String("bucket", cfg.MinIO.Bucket),
			zap.String("key", cfg.Product.ObjectKey),
			zap.Bool("seeded", seeded),
		)
		return repo, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown repository driver %q", cfg.Product.Driver)
	}
}
