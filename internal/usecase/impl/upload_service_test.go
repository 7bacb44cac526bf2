package impl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"whatsorder/config"
	"whatsorder/internal/domain/entity"
	domainerrors "whatsorder/internal/domain/errors"
	"whatsorder/internal/domain/repository"
	mockRepo "whatsorder/internal/mocks/repository"
	mockService "whatsorder/internal/mocks/service"
	"whatsorder/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type uploadServiceFixtures struct {
	service      usecase.UploadUsecase
	storage      *mockService.MockImageStorage
	businessRepo *mockRepo.MockBusinessRepository
}

func createTestUploadService(t *testing.T, maxSize int64) uploadServiceFixtures {
	cfg := newTestConfig()
	cfg.Storage = &config.StorageConfig{BucketURL: "mem://", MaxUploadSize: maxSize}

	storage := mockService.NewMockImageStorage(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)

	return uploadServiceFixtures{
		service: NewUploadService(UploadServiceParams{
			Storage:      storage,
			BusinessRepo: businessRepo,
			Config:       cfg,
			Logger:       newDiscardLogger(),
		}),
		storage:      storage,
		businessRepo: businessRepo,
	}
}

func TestUploadService_UploadImage_StoresUnderBusiness(t *testing.T) {
	fx := createTestUploadService(t, 1024)
	ctx := context.Background()

	fx.businessRepo.EXPECT().FindBusinessByOwner(ctx, "owner-1").Return(&entity.Business{ID: 12}, nil)
	fx.storage.EXPECT().
		Put(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "12/") && strings.HasSuffix(key, ".png") && len(key) == len("12/")+64+len(".png")
		}), "image/png", pngHeader).
		Return("https://cdn.example/12/abc.png", nil)

	result, err := fx.service.UploadImage(ctx, "owner-1", bytes.NewReader(pngHeader))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/12/abc.png", result.URL)
	assert.Equal(t, int64(len(pngHeader)), result.Size)
}

func TestUploadService_UploadImage_OwnerPrefixBeforeOnboarding(t *testing.T) {
	fx := createTestUploadService(t, 1024)
	ctx := context.Background()

	fx.businessRepo.EXPECT().FindBusinessByOwner(ctx, "auth0|abc").Return(nil, repository.ErrBusinessNotFound)
	fx.storage.EXPECT().
		Put(ctx, mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, "owners/auth0_abc/") }), "image/png", mock.Anything).
		Return("url", nil)

	_, err := fx.service.UploadImage(ctx, "auth0|abc", bytes.NewReader(pngHeader))
	require.NoError(t, err)
}

func TestUploadService_UploadImage_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		details string
	}{
		{name: "empty", payload: nil, details: "file is empty"},
		{name: "too large", payload: bytes.Repeat([]byte("a"), 2048), details: "file exceeds 1.0 KB"},
		{name: "not an image", payload: []byte("plain text content"), details: "unsupported content type text/plain; charset=utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUploadService(t, 1024)

			_, err := fx.service.UploadImage(context.Background(), "owner-1", bytes.NewReader(tt.payload))
			require.ErrorIs(t, err, domainerrors.ErrInvalidUpload)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.details, appErr.Details())
		})
	}
}

func TestUploadService_UploadImage_Disabled(t *testing.T) {
	srv := NewUploadService(UploadServiceParams{
		BusinessRepo: mockRepo.NewMockBusinessRepository(t),
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	_, err := srv.UploadImage(context.Background(), "owner-1", bytes.NewReader(pngHeader))
	assert.ErrorIs(t, err, domainerrors.ErrUploadsDisabled)
}
