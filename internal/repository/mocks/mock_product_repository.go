package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetProduct(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockProductRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
