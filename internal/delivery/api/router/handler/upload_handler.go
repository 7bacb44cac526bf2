package handler

import (
	"net/http"

	"whatsorder/internal/delivery/api/response"
	domainerrors "whatsorder/internal/domain/errors"
	"whatsorder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const uploadField = "file"

type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
}

type UploadHandler struct {
	uploadUC usecase.UploadUsecase
}

func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		uploadUC: params.UploadUC,
	}
}

// UploadImage accepts a multipart form with a single "file" part.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile(uploadField)
	if err != nil {
		return domainerrors.ErrInvalidUpload.WithDetails("multipart field \"file\" is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domainerrors.ErrInvalidUpload.WithDetails("file could not be read")
	}
	defer file.Close()

	result, err := h.uploadUC.UploadImage(c.Request().Context(), owner, file)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, result)
}
