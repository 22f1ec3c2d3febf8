package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/comisarias/novedades-api/internal/core/domain"
)

// ctxClaim extracts the claim injected by the Auth middleware and performs a
// fast-fail check before any service call: a claim with an empty role means
// the middleware did not run on this route.
func ctxClaim(c echo.Context) (domain.Claim, error) {
	claim, _ := c.Get("claim").(domain.Claim)
	if claim.Role == "" {
		return domain.Claim{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claim, nil
}
