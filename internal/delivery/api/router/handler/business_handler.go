package handler

import (
	"net/http"

	"whatsorder/internal/delivery/api/response"
	"whatsorder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type BusinessHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
}

// BusinessHandler serves the owner's own business.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
}

func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		businessUC: params.BusinessUC,
	}
}

// BusinessRequest is the body of create and update. Slug is ignored on update.
type BusinessRequest struct {
	Name           string  `json:"name" validate:"required"`
	Slug           string  `json:"slug"`
	WhatsAppNumber string  `json:"whatsappNumber" validate:"required"`
	Description    *string `json:"description"`
	LogoURL        *string `json:"logoUrl"`
}

func (r *BusinessRequest) toInput() *usecase.BusinessInput {
	return &usecase.BusinessInput{
		Name:           r.Name,
		Slug:           r.Slug,
		WhatsAppNumber: r.WhatsAppNumber,
		Description:    r.Description,
		LogoURL:        r.LogoURL,
	}
}

func (h *BusinessHandler) CreateBusiness(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req BusinessRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	business, err := h.businessUC.CreateBusiness(c.Request().Context(), owner, req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, business)
}

func (h *BusinessHandler) GetOwnBusiness(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	business, err := h.businessUC.GetOwnBusiness(c.Request().Context(), owner)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, business)
}

func (h *BusinessHandler) UpdateOwnBusiness(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req BusinessRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	business, err := h.businessUC.UpdateOwnBusiness(c.Request().Context(), owner, req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, business)
}
