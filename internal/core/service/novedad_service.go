package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/comisarias/novedades-api/internal/core/domain"
	"github.com/comisarias/novedades-api/internal/core/ports"
)

// NovedadService implements precinct-scoped CRUD over novedades. The scope is
// derived from the claim's role via the precinct table: scoped roles only see
// and touch records of their own dependencia, every other role is unrestricted.
type NovedadService struct {
	repo  ports.NovedadRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewNovedadService(repo ports.NovedadRepository, audit ports.AuditRecorder, log zerolog.Logger) *NovedadService {
	return &NovedadService{repo: repo, audit: audit, log: log}
}

func (s *NovedadService) List(ctx context.Context, claim domain.Claim) ([]*domain.Novedad, error) {
	return s.repo.List(ctx, ports.ListNovedadesFilter{
		Dependencia: domain.PrecinctFor(claim.Role),
	})
}

func (s *NovedadService) Create(ctx context.Context, claim domain.Claim, input ports.NovedadInput) (*domain.Novedad, error) {
	dependencia := input.Dependencia
	// A precinct officer always files under their own dependencia, whatever
	// the payload says.
	if scope := domain.PrecinctFor(claim.Role); scope != "" {
		dependencia = scope
	}

	now := time.Now().UTC()
	fecha := input.Fecha
	if fecha.IsZero() {
		fecha = now
	}

	created, err := s.repo.Create(ctx, &domain.Novedad{
		Dependencia: dependencia,
		Fecha:       fecha,
		Titulo:      input.Titulo,
		Descripcion: input.Descripcion,
		CreatedBy:   claim.Username,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		s.log.Error().Err(err).Str("dependencia", dependencia).Msg("failed to create novedad")
		return nil, err
	}

	s.log.Info().Str("id", created.ID).Str("dependencia", created.Dependencia).Msg("novedad created")
	s.record(claim, "create_novedad", created.ID)
	return created, nil
}

// Update merge-updates an existing novedad. For scoped roles a record outside
// their dependencia is indistinguishable from a missing one (404, not 403).
func (s *NovedadService) Update(ctx context.Context, claim domain.Claim, id string, input ports.NovedadInput) (*domain.Novedad, error) {
	scope := domain.PrecinctFor(claim.Role)

	existing, err := s.repo.FindByID(ctx, id, scope)
	if err != nil {
		return nil, err
	}

	if input.Dependencia != "" && scope == "" {
		existing.Dependencia = input.Dependencia
	}
	if !input.Fecha.IsZero() {
		existing.Fecha = input.Fecha
	}
	if input.Titulo != "" {
		existing.Titulo = input.Titulo
	}
	if input.Descripcion != "" {
		existing.Descripcion = input.Descripcion
	}
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing, scope)
	if err != nil {
		return nil, err
	}

	s.record(claim, "update_novedad", id)
	return updated, nil
}

func (s *NovedadService) Delete(ctx context.Context, claim domain.Claim, id string) error {
	if err := s.repo.Delete(ctx, id, domain.PrecinctFor(claim.Role)); err != nil {
		return err
	}
	s.record(claim, "delete_novedad", id)
	return nil
}

func (s *NovedadService) record(claim domain.Claim, action, target string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEntry{
		Actor:     claim.Username,
		Action:    action,
		Target:    target,
		Success:   true,
		Timestamp: time.Now().UTC(),
	})
}
