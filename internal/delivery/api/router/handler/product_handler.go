package handler

import (
	"net/http"

	"whatsorder/internal/delivery/api/response"
	"whatsorder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
}

type ProductHandler struct {
	productUC usecase.ProductUsecase
}

func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
	}
}

// ProductRequest is shared by create and update; omitted optional fields are cleared on update.
type ProductRequest struct {
	Name       string   `json:"name" validate:"required"`
	Price      *float64 `json:"price" validate:"required"`
	CategoryID *int64   `json:"categoryId"`
	ImageURL   *string  `json:"imageUrl"`
}

func (r *ProductRequest) toInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:       r.Name,
		Price:      *r.Price,
		CategoryID: r.CategoryID,
		ImageURL:   r.ImageURL,
	}
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), owner)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, products)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), owner, req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), owner, id, req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), owner, id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]bool{"success": true})
}
