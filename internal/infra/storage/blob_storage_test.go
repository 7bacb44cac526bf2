package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"whatsorder/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBlobImageStorage_Put(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	storage := newBlobImageStorage(bucket, "https://cdn.whatsorder.test/", newDiscardLogger())
	defer storage.Close()

	url, err := storage.Put(ctx, "3/abc123.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.whatsorder.test/3/abc123.png", url)

	attrs, err := bucket.Attributes(ctx, "3/abc123.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
	assert.Equal(t, cacheControl, attrs.CacheControl)

	data, err := bucket.ReadAll(ctx, "3/abc123.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestBlobImageStorage_PutExistingKeyKeepsObject(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	storage := newBlobImageStorage(bucket, "https://cdn.whatsorder.test", newDiscardLogger())
	defer storage.Close()

	_, err := storage.Put(ctx, "3/same.png", "image/png", []byte("first"))
	require.NoError(t, err)
	url, err := storage.Put(ctx, "3/same.png", "image/png", []byte("second"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.whatsorder.test/3/same.png", url)

	data, err := bucket.ReadAll(ctx, "3/same.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), data)
}

func TestNewImageStorage(t *testing.T) {
	params := func(t *testing.T, cfg *config.StorageConfig) Params {
		return Params{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{Storage: cfg},
			Logger: newDiscardLogger(),
		}
	}

	t.Run("disabled", func(t *testing.T) {
		storage, err := NewImageStorage(params(t, nil))
		require.NoError(t, err)
		assert.Nil(t, storage)
	})

	t.Run("memory bucket", func(t *testing.T) {
		storage, err := NewImageStorage(params(t, &config.StorageConfig{
			BucketURL:     "mem://",
			PublicBaseURL: "http://localhost:3000/uploads",
		}))
		require.NoError(t, err)
		require.NotNil(t, storage)

		url, err := storage.Put(context.Background(), "k.png", "image/png", []byte("x"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:3000/uploads/k.png", url)
		require.NoError(t, storage.Close())
	})

	t.Run("missing public base URL", func(t *testing.T) {
		_, err := NewImageStorage(params(t, &config.StorageConfig{BucketURL: "mem://"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "public base URL")
	})

	t.Run("unknown scheme", func(t *testing.T) {
		_, err := NewImageStorage(params(t, &config.StorageConfig{
			BucketURL:     "nosuch://bucket",
			PublicBaseURL: "http://localhost",
		}))
		require.Error(t, err)
	})
}
