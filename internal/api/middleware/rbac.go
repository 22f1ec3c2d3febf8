package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/comisarias/novedades-api/internal/api/metrics"
)

// RBAC enforces role-based access control by exact-match membership in the
// route's allow-list. Any role not literally listed is denied, admin included.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				metrics.AuthzDeniedTotal.WithLabelValues("insufficient_role").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"message": "access denied: insufficient role"})
			}
			return next(c)
		}
	}
}
