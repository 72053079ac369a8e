package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	apperrors "rms/internal/errors"
)

// restaurantIDParam is the route parameter naming the restaurant.
const restaurantIDParam = "restaurantId"

// MessageResponse is a body carrying only a message.
type MessageResponse struct {
	Message string `json:"message"`
}

// restaurantID parses the route's restaurant ID. A malformed ID cannot name a
// stored restaurant, so it is reported as not found.
func restaurantID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(restaurantIDParam))
	if err != nil {
		return uuid.Nil, apperrors.ErrRestaurantNotFound
	}
	return id, nil
}

// bind decodes the request body into req and validates it.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return apperrors.Validation(errors.New(fmt.Sprint(he.Message)))
		}
		return apperrors.Validation(err)
	}
	if err := c.Validate(req); err != nil {
		return apperrors.Validation(err)
	}
	return nil
}

// fail converts err to the JSON error body. Server errors are logged with
// the request ID.
func fail(c echo.Context, err error) error {
	var httpErr *apperrors.HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = apperrors.MapErrorToHTTP(err)
	}
	if httpErr.StatusCode >= http.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"method":     c.Request().Method,
			"path":       c.Path(),
			"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
		}).WithError(err).Error("request failed")
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}
