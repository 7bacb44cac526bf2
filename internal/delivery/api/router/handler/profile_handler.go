package handler

import (
	"net/http"

	"whatsorder/internal/delivery/api/response"
	"whatsorder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
	}
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), owner)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, profile)
}

func (h *ProfileHandler) CompleteOnboarding(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	profile, err := h.profileUC.CompleteOnboarding(c.Request().Context(), owner)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, profile)
}
