package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"rms/internal/service"
)

// RestaurantHandler serves restaurant reads.
type RestaurantHandler struct {
	restaurantService service.RestaurantService
}

// NewRestaurantHandler creates a new restaurant handler.
func NewRestaurantHandler(restaurantService service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

// ListRestaurants godoc
// @Summary List restaurants with their menu and tables
// @Tags restaurants
// @Produce json
// @Success 200 {array} model.RestaurantSummary
// @Failure 500 {object} errors.ErrorResponse
// @Router /restaurants [get]
func (h *RestaurantHandler) ListRestaurants(c echo.Context) error {
	restaurants, err := h.restaurantService.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, restaurants)
}

// GetRestaurant godoc
// @Summary Get a restaurant with every child list
// @Tags restaurants
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Success 200 {object} model.Restaurant
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /restaurants/{restaurantId} [get]
func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	id, err := restaurantID(c)
	if err != nil {
		return fail(c, err)
	}
	restaurant, err := h.restaurantService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, restaurant)
}
