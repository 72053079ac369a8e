package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "rms/internal/errors"
	"rms/internal/model"
	"rms/internal/service"
)

// MenuHandler handles menu endpoints.
type MenuHandler struct {
	menu service.ChildService[model.MenuItem]
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(menu service.ChildService[model.MenuItem]) *MenuHandler {
	return &MenuHandler{menu: menu}
}

// CreateMenuItemRequest represents a new menu item.
type CreateMenuItemRequest struct {
	Name  string           `json:"name" validate:"required,max=255"`
	Price *decimal.Decimal `json:"price" validate:"required" swaggertype:"number"`
	Img   string           `json:"img" validate:"max=512"`
}

// CreateMenuItem godoc
// @Summary Add a menu item
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param restaurantId path string true "Restaurant ID"
// @Param request body CreateMenuItemRequest true "Menu item"
// @Success 201 {object} model.MenuItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /restaurants/{restaurantId}/menu [post]
func (h *MenuHandler) CreateMenuItem(c echo.Context) error {
	var req CreateMenuItemRequest
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	if req.Price.IsNegative() {
		return fail(c, apperrors.InvalidField("price", "must not be negative"))
	}

	return createChild(c, h.menu, &model.MenuItem{
		Name:  req.Name,
		Price: *req.Price,
		Img:   req.Img,
	})
}

// ListMenu godoc
// @Summary List a restaurant's menu
// @Tags menu
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Success 200 {array} model.MenuItem
// @Failure 500 {object} errors.ErrorResponse
// @Router /restaurants/{restaurantId}/menu [get]
func (h *MenuHandler) ListMenu(c echo.Context) error {
	return listChildren(c, h.menu)
}
