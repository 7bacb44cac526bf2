package handler

import (
	"net/http"

	"whatsorder/internal/delivery/api/response"
	"whatsorder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
	}
}

// LogOrderRequest is posted by storefront clients after opening WhatsApp.
type LogOrderRequest struct {
	BusinessID   *int64   `json:"businessId" validate:"required"`
	CustomerNote *string  `json:"customerNote"`
	TotalPrice   *float64 `json:"totalPrice" validate:"required"`
	ItemsSummary string   `json:"itemsSummary" validate:"required"`
}

// LogOrder is public; it records the order as pending.
func (h *OrderHandler) LogOrder(c echo.Context) error {
	var req LogOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.LogOrder(c.Request().Context(), &usecase.LogOrderInput{
		BusinessID:   *req.BusinessID,
		CustomerNote: req.CustomerNote,
		TotalPrice:   *req.TotalPrice,
		ItemsSummary: req.ItemsSummary,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, order)
}

func (h *OrderHandler) ListOwnOrders(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListOwnOrders(c.Request().Context(), owner)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, orders)
}
