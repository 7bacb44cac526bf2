package handler

import (
	"net/http"

	"whatsorder/internal/delivery/api/response"
	"whatsorder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type ServiceHandlerParams struct {
	fx.In

	OfferingUC usecase.OfferingUsecase
}

// ServiceHandler serves the /api/services routes.
type ServiceHandler struct {
	offeringUC usecase.OfferingUsecase
}

func NewServiceHandler(params ServiceHandlerParams) *ServiceHandler {
	return &ServiceHandler{
		offeringUC: params.OfferingUC,
	}
}

type ServiceRequest struct {
	Name          string   `json:"name" validate:"required"`
	StartingPrice *float64 `json:"startingPrice" validate:"required"`
}

func (r *ServiceRequest) toInput() *usecase.OfferingInput {
	return &usecase.OfferingInput{
		Name:          r.Name,
		StartingPrice: *r.StartingPrice,
	}
}

func (h *ServiceHandler) ListServices(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	services, err := h.offeringUC.ListServices(c.Request().Context(), owner)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, services)
}

func (h *ServiceHandler) CreateService(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req ServiceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	svc, err := h.offeringUC.CreateService(c.Request().Context(), owner, req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, svc)
}

func (h *ServiceHandler) UpdateService(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ServiceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	svc, err := h.offeringUC.UpdateService(c.Request().Context(), owner, id, req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, svc)
}

func (h *ServiceHandler) DeleteService(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.offeringUC.DeleteService(c.Request().Context(), owner, id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]bool{"success": true})
}
