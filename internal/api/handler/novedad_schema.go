package handler

import (
	"time"

	"github.com/comisarias/novedades-api/internal/core/domain"
	"github.com/comisarias/novedades-api/internal/core/ports"
)

type createNovedadRequest struct {
	// Dependencia is ignored for precinct-scoped roles: their records are
	// always filed under their own precinct.
	Dependencia string    `json:"dependencia"`
	Fecha       time.Time `json:"fecha"`
	Titulo      string    `json:"titulo"      validate:"required"`
	Descripcion string    `json:"descripcion" validate:"required"`
}

// updateNovedadRequest is a partial update: empty fields keep their stored value.
type updateNovedadRequest struct {
	Dependencia string    `json:"dependencia"`
	Fecha       time.Time `json:"fecha"`
	Titulo      string    `json:"titulo"`
	Descripcion string    `json:"descripcion"`
}

type novedadResponse struct {
	ID          string    `json:"id"`
	Dependencia string    `json:"dependencia"`
	Fecha       time.Time `json:"fecha"`
	Titulo      string    `json:"titulo"`
	Descripcion string    `json:"descripcion"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toNovedadResponse(n *domain.Novedad) novedadResponse {
	return novedadResponse{
		ID:          n.ID,
		Dependencia: n.Dependencia,
		Fecha:       n.Fecha.UTC(),
		Titulo:      n.Titulo,
		Descripcion: n.Descripcion,
		CreatedBy:   n.CreatedBy,
		CreatedAt:   n.CreatedAt.UTC(),
		UpdatedAt:   n.UpdatedAt.UTC(),
	}
}

func toNovedadInput(dependencia string, fecha time.Time, titulo, descripcion string) ports.NovedadInput {
	return ports.NovedadInput{
		Dependencia: dependencia,
		Fecha:       fecha,
		Titulo:      titulo,
		Descripcion: descripcion,
	}
}
