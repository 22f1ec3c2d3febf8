package ports

import (
	"context"

	"github.com/comisarias/novedades-api/internal/core/domain"
)

// ListNovedadesFilter carries the query parameters for listing novedades.
// Dependencia is always enforced by the service layer (role scoping).
type ListNovedadesFilter struct {
	Dependencia string // empty = no filter (unscoped roles); non-empty = scoped to one precinct
}

// NovedadRepository defines persistence operations for novedades.
type NovedadRepository interface {
	Create(ctx context.Context, n *domain.Novedad) (*domain.Novedad, error)
	// FindByID retrieves a novedad by id. When dependencia is non-empty, the
	// query is additionally filtered by dependencia (for role scoping).
	FindByID(ctx context.Context, id string, dependencia string) (*domain.Novedad, error)
	List(ctx context.Context, filter ListNovedadesFilter) ([]*domain.Novedad, error)
	// Update replaces the mutable fields of an existing novedad. The same
	// dependencia scoping rules as FindByID apply.
	Update(ctx context.Context, n *domain.Novedad, dependencia string) (*domain.Novedad, error)
	Delete(ctx context.Context, id string, dependencia string) error
}
