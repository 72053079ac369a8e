package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"rms/internal/model"
	"rms/internal/service"
)

// BookingHandler handles booking endpoints.
type BookingHandler struct {
	bookings service.ChildService[model.Booking]
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(bookings service.ChildService[model.Booking]) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// CreateBookingRequest represents a table reservation. Times are RFC 3339.
type CreateBookingRequest struct {
	TableNum int       `json:"tableNum" validate:"required,min=1"`
	Start    time.Time `json:"start" validate:"required"`
	End      time.Time `json:"end" validate:"required,gtfield=Start"`
	UserName string    `json:"userName" validate:"required,max=255"`
}

// CreateBooking godoc
// @Summary Book a table
// @Description Overlapping bookings are accepted.
// @Tags bookings
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param request body CreateBookingRequest true "Booking"
// @Success 201 {object} model.Booking
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /restaurants/{restaurantId}/bookings [post]
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req CreateBookingRequest
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}

	return createChild(c, h.bookings, &model.Booking{
		TableNum: req.TableNum,
		Start:    req.Start,
		End:      req.End,
		UserName: req.UserName,
	})
}

// ListBookings godoc
// @Summary List a restaurant's bookings
// @Tags bookings
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Success 200 {array} model.Booking
// @Failure 500 {object} errors.ErrorResponse
// @Router /restaurants/{restaurantId}/bookings [get]
func (h *BookingHandler) ListBookings(c echo.Context) error {
	return listChildren(c, h.bookings)
}
