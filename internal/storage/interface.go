package storage

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks movie-api/internal/storage Storage

// Storage holds movie images. Clients never stream image bytes through the
// API: they read and write objects through short-lived pre-signed URLs.
type Storage interface {
	// GetPresignedURL signs a GET for the image stored under key.
	GetPresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	// GetPresignedPutURL signs a PUT that must be sent with contentType.
	GetPresignedPutURL(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
	// DeleteObject removes a replaced or orphaned image. Missing keys are not an error.
	DeleteObject(ctx context.Context, key string) error
}

var _ Storage = (*S3Client)(nil)
