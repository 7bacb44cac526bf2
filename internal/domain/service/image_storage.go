package service

import "context"

// ImageStorage writes uploaded images to object storage.
type ImageStorage interface {
	// Put stores data under key and returns its public URL.
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)

	Close() error
}
