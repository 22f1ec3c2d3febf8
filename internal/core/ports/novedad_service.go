package ports

import (
	"context"
	"time"

	"github.com/comisarias/novedades-api/internal/core/domain"
)

// NovedadInput carries the caller-supplied fields of a novedad.
type NovedadInput struct {
	Dependencia string
	Fecha       time.Time
	Titulo      string
	Descripcion string
}

// NovedadService defines the scoped CRUD operations over novedades. Every
// operation receives the verified claim so the service can apply per-precinct
// visibility without trusting the transport layer.
type NovedadService interface {
	List(ctx context.Context, claim domain.Claim) ([]*domain.Novedad, error)
	Create(ctx context.Context, claim domain.Claim, input NovedadInput) (*domain.Novedad, error)
	Update(ctx context.Context, claim domain.Claim, id string, input NovedadInput) (*domain.Novedad, error)
	Delete(ctx context.Context, claim domain.Claim, id string) error
}
