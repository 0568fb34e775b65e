package storage

import (
	"errors"
	"net/http"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"

	"practice/internal/config"
)

func TestNewMinIO_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.MinIOConfig
		want string
	}{
		{name: "missing endpoint", cfg: config.MinIOConfig{}, want: "minio endpoint is required"},
		{name: "missing credentials", cfg: config.MinIOConfig{Endpoint: "localhost:9000"}, want: "minio credentials are required"},
		{name: "missing bucket", cfg: config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"}, want: "minio bucket is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewMinIO(tt.cfg)
			assert.Nil(t, s)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestTranslate(t *testing.T) {
	notFound := minio.ErrorResponse{Code: "NoSuchKey", Key: "products/current.txt", StatusCode: http.StatusNotFound}
	assert.ErrorIs(t, translate(notFound), ErrNotFound)

	noBucket := minio.ErrorResponse{Code: "NoSuchBucket", BucketName: "products", StatusCode: http.StatusNotFound}
	assert.NotErrorIs(t, translate(noBucket), ErrNotFound)

	other := errors.New("connection refused")
	assert.Equal(t, other, translate(other))
}
