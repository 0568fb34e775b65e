package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetProduct(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockProductService) Ready(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
