package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "rms/internal/errors"
	"rms/internal/model"
	"rms/internal/service"
)

// OrderHandler handles order endpoints.
type OrderHandler struct {
	orders service.ChildService[model.Order]
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orders service.ChildService[model.Order]) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// CreateOrderRequest represents a placed order.
type CreateOrderRequest struct {
	UserName string            `json:"userName" validate:"required,max=255"`
	Items    []model.OrderLine `json:"items" validate:"required,dive"`
	Total    *decimal.Decimal  `json:"total" validate:"required" swaggertype:"number"`
	Method   string            `json:"method" validate:"max=32"`
}

// CreateOrder godoc
// @Summary Place an order
// @Tags orders
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param request body CreateOrderRequest true "Order"
// @Success 201 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /restaurants/{restaurantId}/orders [post]
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	if req.Total.IsNegative() {
		return fail(c, apperrors.InvalidField("total", "must not be negative"))
	}
	for i, line := range req.Items {
		if line.Price.IsNegative() {
			return fail(c, apperrors.InvalidField(fmt.Sprintf("items[%d].price", i), "must not be negative"))
		}
	}

	return createChild(c, h.orders, &model.Order{
		UserName: req.UserName,
		Items:    req.Items,
		Total:    *req.Total,
		Method:   req.Method,
	})
}

// ListOrders godoc
// @Summary List a restaurant's orders
// @Tags orders
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Success 200 {array} model.Order
// @Failure 500 {object} errors.ErrorResponse
// @Router /restaurants/{restaurantId}/orders [get]
func (h *OrderHandler) ListOrders(c echo.Context) error {
	return listChildren(c, h.orders)
}
