package storage

import (
	"context"
	"log/slog"
	"strings"

	"whatsorder/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"

	// Bucket URL schemes accepted in configuration.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

const cacheControl = "public, max-age=31536000, immutable"

type blobImageStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// NewBlobImageStorage opens bucketURL and serves objects from publicBaseURL.
// Keys are content-addressed, so objects are cached as immutable.
func NewBlobImageStorage(ctx context.Context, bucketURL, publicBaseURL string, logger *slog.Logger) (service.ImageStorage, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	return newBlobImageStorage(bucket, publicBaseURL, logger), nil
}

func newBlobImageStorage(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) *blobImageStorage {
	return &blobImageStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

func (s *blobImageStorage) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return "", errors.Wrapf(err, "stat %s", key)
	}

	if !exists {
		err = s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
			ContentType:  contentType,
			CacheControl: cacheControl,
		})
		if err != nil {
			return "", errors.Wrapf(err, "write %s", key)
		}
	} else {
		s.logger.Debug("Image already stored", slog.String("key", key))
	}

	return s.publicBaseURL + "/" + key, nil
}

func (s *blobImageStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}
