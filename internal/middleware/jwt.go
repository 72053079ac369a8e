package middleware

import (
	"errors"
	"net/http"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"rms/internal/auth"
	apperrors "rms/internal/errors"
)

// ContextKeyClaims is the echo context key holding *auth.Claims.
const ContextKeyClaims = "user"

var errTokenMissing = errors.New("access token missing")

// RequireToken verifies the bearer token and stores its claims in the context.
// A missing token is rejected with 401, an invalid or revoked one with 403.
func RequireToken(jwtService *auth.JWTService, tokens auth.TokenStoreInterface) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:       ContextKeyClaims,
		TokenLookupFuncs: []echomw.ValuesExtractor{bearerToken},
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				return nil, err
			}
			if tokens != nil {
				revoked, err := tokens.IsAccessTokenRevoked(c.Request().Context(), claims.ID)
				if err != nil {
					logrus.WithError(err).Warn("token revocation lookup failed")
				}
				if revoked {
					return nil, auth.ErrTokenRevoked
				}
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, echojwt.ErrJWTMissing) {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Message: "Access token required",
					Code:    "TOKEN_REQUIRED",
				})
			}
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Message: "Invalid token",
				Code:    "INVALID_TOKEN",
			})
		},
	})
}

// bearerToken takes the second space-separated word of the Authorization
// header, so "Bearer <token>" yields <token>.
func bearerToken(c echo.Context) ([]string, error) {
	parts := strings.Split(c.Request().Header.Get(echo.HeaderAuthorization), " ")
	if len(parts) < 2 || parts[1] == "" {
		return nil, errTokenMissing
	}
	return []string{parts[1]}, nil
}

// ClaimsFromContext returns the claims stored by RequireToken.
func ClaimsFromContext(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get(ContextKeyClaims).(*auth.Claims)
	return claims, ok && claims != nil
}
