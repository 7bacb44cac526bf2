package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"whatsorder/config"
	ctxutil "whatsorder/internal/delivery/context"
	domainerrors "whatsorder/internal/domain/errors"
	"whatsorder/internal/domain/repository"
	"whatsorder/internal/domain/service"
	"whatsorder/internal/usecase"
	"whatsorder/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var imageExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

type uploadService struct {
	storage       service.ImageStorage
	businessRepo  repository.BusinessRepository
	maxUploadSize int64
	logger        *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Storage      service.ImageStorage `optional:"true"`
	BusinessRepo repository.BusinessRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUploadService is the constructor for uploadService. Without a storage
// backend every upload fails with UPLOADS_DISABLED.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	var maxUploadSize int64
	if params.Config.Storage != nil {
		maxUploadSize = params.Config.Storage.MaxUploadSize
	}

	return &uploadService{
		storage:       params.Storage,
		businessRepo:  params.BusinessRepo,
		maxUploadSize: maxUploadSize,
		logger:        params.Logger,
	}
}

func (srv *uploadService) UploadImage(ctx context.Context, ownerID string, r io.Reader) (*usecase.UploadResult, error) {
	if srv.storage == nil {
		return nil, domainerrors.ErrUploadsDisabled
	}

	data, err := io.ReadAll(io.LimitReader(r, srv.maxUploadSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read upload")
	}
	switch {
	case len(data) == 0:
		return nil, domainerrors.ErrInvalidUpload.WithDetails("file is empty")
	case int64(len(data)) > srv.maxUploadSize:
		return nil, domainerrors.ErrInvalidUpload.WithDetails("file exceeds " + util.FormatBytes(srv.maxUploadSize))
	}

	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, domainerrors.ErrInvalidUpload.WithDetails("unsupported content type " + contentType)
	}

	prefix, err := srv.keyPrefix(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	sum, err := util.ContentChecksum(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	key := prefix + "/" + sum + "." + ext

	url, err := srv.storage.Put(ctx, key, contentType, data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store upload")
	}

	ctxutil.GetLoggerOrDefault(ctx, srv.logger).Info("Image uploaded",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	return &usecase.UploadResult{URL: url, Key: key, Size: int64(len(data))}, nil
}

// keyPrefix groups uploads by business, or by owner before onboarding.
func (srv *uploadService) keyPrefix(ctx context.Context, ownerID string) (string, error) {
	business, err := srv.businessRepo.FindBusinessByOwner(ctx, ownerID)
	if err == nil {
		return strconv.FormatInt(business.ID, 10), nil
	}
	if !errors.Is(err, repository.ErrBusinessNotFound) {
		return "", errors.Wrap(err, "failed to find business by owner")
	}

	return "owners/" + sanitizeKeySegment(ownerID), nil
}

func sanitizeKeySegment(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
