package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the role-gated landing routes the frontend probes
// to decide which panels to show. The role checks live in the router's RBAC
// allow-lists; these handlers only greet the caller.
type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Admin handles GET /admin-dashboard.
func (h *DashboardHandler) Admin(c echo.Context) error {
	return greet(c, "welcome to the admin panel, %s")
}

// User handles GET /user-dashboard.
func (h *DashboardHandler) User(c echo.Context) error {
	return greet(c, "welcome to your panel, %s")
}

// Parte handles GET /novedades_parte.
func (h *DashboardHandler) Parte(c echo.Context) error {
	return greet(c, "welcome to parte de novedades, %s")
}

// VerNovedades handles GET /ver_novedades.
func (h *DashboardHandler) VerNovedades(c echo.Context) error {
	return greet(c, "welcome to ver partes de novedades, %s")
}

func greet(c echo.Context, format string) error {
	claim, err := ctxClaim(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf(format, claim.Username)})
}
