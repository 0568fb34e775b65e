package main

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"practice/internal/config"
	"practice/internal/storage"
	storeMocks "practice/internal/storage/mocks"
)

func TestNewProductRepository_Memory(t *testing.T) {
	cfg := &config.AppConfig{Product: config.ProductConfig{Driver: config.DriverMemory, Stub: "product"}}

	repo, closeFn, err := newProductRepository(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer closeFn()

	got, err := repo.GetProduct(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "product", got)
}

func TestNewProductRepository_UnknownDriver(t *testing.T) {
	cfg := &config.AppConfig{Product: config.ProductConfig{Driver: "cassandra"}}

	repo, _, err := newProductRepository(context.Background(), cfg, zap.NewNop())
	assert.Nil(t, repo)
	assert.EqualError(t, err, `unknown repository driver "cassandra"`)
}

func TestNewProductRepository_Postgres(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)

	orig := newPostgres
	newPostgres = func(context.Context, config.DatabaseConfig) (*sql.DB, error) { return db, nil }
	defer func() { newPostgres = orig }()

	mockDB.ExpectQuery(`SELECT to_regclass`).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mockDB.ExpectQuery("SELECT name FROM products").WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("desk"))
	mockDB.ExpectClose()

	cfg := &config.AppConfig{Product: config.ProductConfig{Driver: config.DriverPostgres, Stub: "product"}}
	repo, closeFn, err := newProductRepository(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	got, err := repo.GetProduct(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "desk", got)

	closeFn()
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestNewProductRepository_PostgresConnectError(t *testing.T) {
	orig := newPostgres
	newPostgres = func(context.Context, config.DatabaseConfig) (*sql.DB, error) { return nil, errors.New("refused") }
	defer func() { newPostgres = orig }()

	cfg := &config.AppConfig{Product: config.ProductConfig{Driver: config.DriverPostgres}}
	_, _, err := newProductRepository(context.Background(), cfg, zap.NewNop())
	assert.EqualError(t, err, "connect to database: refused")
}

func TestNewProductRepository_ObjectStore(t *testing.T) {
	store := new(storeMocks.MockStorage)
	store.On("Get", mock.Anything, "products/current.txt").
		Return(nil, storage.ObjectInfo{}, storage.ErrNotFound).Once()
	store.On("Put", mock.Anything, "products/current.txt", mock.Anything, mock.Anything).
		Return(storage.ObjectInfo{Key: "products/current.txt"}, nil).Once()
	store.On("Get", mock.Anything, "products/current.txt").
		Return(io.NopCloser(strings.NewReader("product")), storage.ObjectInfo{}, nil).Once()

	orig := newMinIO
	newMinIO = func(config.MinIOConfig) (storage.Storage, error) { return store, nil }
	defer func() { newMinIO = orig }()

	cfg := &config.AppConfig{Product: config.ProductConfig{
		Driver:    config.DriverObjectStore,
		Stub:      "product",
		ObjectKey: "products/current.txt",
	}}
	repo, closeFn, err := newProductRepository(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer closeFn()

	got, err := repo.GetProduct(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "product", got)
	store.AssertExpectations(t)
}
