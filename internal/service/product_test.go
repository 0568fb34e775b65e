package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"practice/internal/repository"
	repoMocks "practice/internal/repository/mocks"
)

func TestProductService_GetProduct(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		setupMocks func(mRepo *repoMocks.MockProductRepository)
		want       string
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "happy path",
			setupMocks: func(mRepo *repoMocks.MockProductRepository) {
				mRepo.On("GetProduct", ctx).Return("product", nil)
			},
			want: "product",
		},
		{
			name: "no rows maps to not found",
			setupMocks: func(mRepo *repoMocks.MockProductRepository) {
				mRepo.On("GetProduct", ctx).Return("", sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "wrapped repository not found",
			setupMocks: func(mRepo *repoMocks.MockProductRepository) {
				mRepo.On("GetProduct", ctx).Return("", fmt.Errorf("objectstore: %w", repository.ErrNotFound))
			},
			wantErr: ErrNotFound,
		},
		{
			name: "repository error",
			setupMocks: func(mRepo *repoMocks.MockProductRepository) {
				mRepo.On("GetProduct", ctx).Return("", errors.New("db fail"))
			},
			wantErrMsg: "db fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockProductRepository)
			tt.setupMocks(mRepo)
			svc := NewProductService(mRepo)

			got, err := svc.GetProduct(ctx)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else if tt.wantErrMsg != "" {
				assert.EqualError(t, err, tt.wantErrMsg)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_NilRepository(t *testing.T) {
	svc := NewProductService(nil)

	_, err := svc.GetProduct(context.Background())
	assert.ErrorIs(t, err, ErrRepositoryUnavailable)
	assert.ErrorIs(t, svc.Ready(context.Background()), ErrRepositoryUnavailable)
}

func TestProductService_Ready(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockProductRepository)
	mRepo.On("Ping", ctx).Return(errors.New("down")).Once()
	mRepo.On("Ping", ctx).Return(nil).Once()

	svc := NewProductService(mRepo)

	assert.EqualError(t, svc.Ready(ctx), "down")
	assert.NoError(t, svc.Ready(ctx))
	mRepo.AssertExpectations(t)
}
