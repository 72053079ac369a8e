package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"rms/internal/service"
)

// createChild stores record under the route's restaurant and answers 201.
func createChild[T any](c echo.Context, svc service.ChildService[T], record *T) error {
	id, err := restaurantID(c)
	if err != nil {
		return fail(c, err)
	}
	created, err := svc.Create(c.Request().Context(), id, record)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// listChildren answers with the route restaurant's records. An ID that cannot
// name a restaurant has no records.
func listChildren[T any](c echo.Context, svc service.ChildService[T]) error {
	id, err := restaurantID(c)
	if err != nil {
		return c.JSON(http.StatusOK, []T{})
	}
	records, err := svc.ListByRestaurant(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, records)
}
