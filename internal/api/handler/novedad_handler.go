package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/comisarias/novedades-api/internal/api/metrics"
	"github.com/comisarias/novedades-api/internal/core/domain"
	"github.com/comisarias/novedades-api/internal/core/ports"
)

// NovedadHandler handles HTTP requests for incident reports.
type NovedadHandler struct {
	service ports.NovedadService
}

func NewNovedadHandler(service ports.NovedadService) *NovedadHandler {
	return &NovedadHandler{service: service}
}

// List handles GET /novedades — records visible to the caller's role.
//
// @Summary      List novedades
// @Tags         novedades
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   novedadResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  messageResponse
// @Router       /novedades [get]
func (h *NovedadHandler) List(c echo.Context) error {
	claim, err := ctxClaim(c)
	if err != nil {
		return err
	}

	novedades, err := h.service.List(c.Request().Context(), claim)
	if err != nil {
		return err
	}

	out := make([]novedadResponse, len(novedades))
	for i, n := range novedades {
		out[i] = toNovedadResponse(n)
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /novedades.
//
// @Summary      Create a novedad
// @Tags         novedades
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createNovedadRequest  true  "Incident report"
// @Success      201   {object}  novedadResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  messageResponse
// @Router       /novedades [post]
func (h *NovedadHandler) Create(c echo.Context) error {
	claim, err := ctxClaim(c)
	if err != nil {
		return err
	}

	var req createNovedadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), claim, toNovedadInput(req.Dependencia, req.Fecha, req.Titulo, req.Descripcion))
	if err != nil {
		return err
	}

	metrics.RecordWritesTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toNovedadResponse(created))
}

// Update handles PUT /novedades/:id — merge-update, id never changes.
//
// @Summary      Update a novedad
// @Tags         novedades
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Novedad id"
// @Param        body  body      updateNovedadRequest  true  "Fields to update"
// @Success      200   {object}  novedadResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /novedades/{id} [put]
func (h *NovedadHandler) Update(c echo.Context) error {
	claim, err := ctxClaim(c)
	if err != nil {
		return err
	}

	var req updateNovedadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	updated, err := h.service.Update(c.Request().Context(), claim, c.Param("id"), toNovedadInput(req.Dependencia, req.Fecha, req.Titulo, req.Descripcion))
	if err != nil {
		if errors.Is(err, domain.ErrNovedadNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "novedad not found"})
		}
		return err
	}

	metrics.RecordWritesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toNovedadResponse(updated))
}

// Delete handles DELETE /novedades/:id.
//
// @Summary      Delete a novedad
// @Tags         novedades
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Novedad id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /novedades/{id} [delete]
func (h *NovedadHandler) Delete(c echo.Context) error {
	claim, err := ctxClaim(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), claim, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNovedadNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "novedad not found"})
		}
		return err
	}

	metrics.RecordWritesTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "novedad deleted"})
}
