package usecase

import (
	"context"
	"io"
)

// UploadResult describes a stored image.
type UploadResult struct {
	URL  string `json:"url"`
	Key  string `json:"key"`
	Size int64  `json:"size"`
}

// UploadUsecase stores owner images referenced by logo and product image URLs.
type UploadUsecase interface {
	UploadImage(ctx context.Context, ownerID string, r io.Reader) (*UploadResult, error)
}
