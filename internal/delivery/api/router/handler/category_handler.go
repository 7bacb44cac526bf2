package handler

import (
	"net/http"

	"whatsorder/internal/delivery/api/response"
	"whatsorder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
}

type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
}

func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: params.CategoryUC,
	}
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *CategoryHandler) ListCategories(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	categories, err := h.categoryUC.ListCategories(c.Request().Context(), owner)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, categories)
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), owner, req.Name)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, category)
}

// DeleteCategory succeeds even when nothing matched.
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.categoryUC.DeleteCategory(c.Request().Context(), owner, id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]bool{"success": true})
}
