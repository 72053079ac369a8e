package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	apperrors "rms/internal/errors"
)

// CORS admits local development origins and file:// pages, and rejects
// every other browser origin with 403.
func CORS() echo.MiddlewareFunc {
	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOriginFunc:  allowOrigin,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
	})
}

func allowOrigin(origin string) (bool, error) {
	switch {
	case origin == "",
		strings.Contains(origin, "localhost"),
		strings.Contains(origin, "127.0.0.1"),
		// browsers send "null" for pages opened from disk
		origin == "null",
		strings.HasPrefix(origin, "file://"):
		return true, nil
	}
	return false, echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
		Message: "Not allowed by CORS",
		Code:    "CORS_REJECTED",
	})
}
