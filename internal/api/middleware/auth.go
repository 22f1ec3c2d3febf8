package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/comisarias/novedades-api/internal/core/domain"
	"github.com/comisarias/novedades-api/internal/core/ports"
)

// Auth verifies the bearer token and injects the claim into context. A missing
// token is a 401; an invalid or expired one is a 403 with the same body ("invalid
// or expired token") so the response does not reveal which check failed.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			claim, err := tokens.Verify(raw)
			if err != nil {
				if errors.Is(err, domain.ErrMissingToken) {
					return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
				}
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			c.Set("claim", *claim)
			c.Set("username", claim.Username)
			c.Set("role", claim.Role)

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", domain.ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", domain.ErrMissingToken
	}
	return parts[1], nil
}
