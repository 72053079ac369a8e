package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"rms/internal/auth"
	apperrors "rms/internal/errors"
)

// RestaurantOwner allows the request only when the token belongs to the
// restaurant named by the route parameter. It must run after RequireToken
// and before the body is read.
func RestaurantOwner(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, _ := ClaimsFromContext(c)
			if !auth.IsOwner(claims, c.Param(param)) {
				return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
					Message: "Unauthorized",
					Code:    "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}
