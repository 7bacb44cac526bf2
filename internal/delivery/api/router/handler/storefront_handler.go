package handler

import (
	"net/http"

	"whatsorder/internal/delivery/api/response"
	"whatsorder/internal/storefront"
	"whatsorder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type StorefrontHandlerParams struct {
	fx.In

	StorefrontUC usecase.StorefrontUsecase
}

// StorefrontHandler serves the public pages of a business by slug.
type StorefrontHandler struct {
	storefrontUC usecase.StorefrontUsecase
}

func NewStorefrontHandler(params StorefrontHandlerParams) *StorefrontHandler {
	return &StorefrontHandler{
		storefrontUC: params.StorefrontUC,
	}
}

type CheckoutItemRequest struct {
	ProductID int64 `json:"productId" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required"`
}

type CustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Note  string `json:"note"`
}

type CheckoutRequest struct {
	Items    []CheckoutItemRequest `json:"items" validate:"required,dive"`
	Customer CustomerRequest       `json:"customer"`
}

func (h *StorefrontHandler) GetStorefront(c echo.Context) error {
	sf, err := h.storefrontUC.GetStorefront(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, sf)
}

// GetStorefrontQR returns a PNG linking to the public storefront page.
func (h *StorefrontHandler) GetStorefrontQR(c echo.Context) error {
	png, err := h.storefrontUC.GetStorefrontQR(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}

// Checkout composes the WhatsApp message server-side and returns the deep link.
func (h *StorefrontHandler) Checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	items := make([]usecase.CheckoutItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.CheckoutItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	submission, err := h.storefrontUC.Checkout(c.Request().Context(), c.Param("slug"), &usecase.CheckoutInput{
		Items: items,
		Customer: storefront.Customer{
			Name:  req.Customer.Name,
			Phone: req.Customer.Phone,
			Note:  req.Customer.Note,
		},
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, submission)
}
