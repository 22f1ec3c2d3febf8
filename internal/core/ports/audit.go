package ports

import (
	"context"

	"github.com/comisarias/novedades-api/internal/core/domain"
)

// AuditRepository persists audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}

// AuditRecorder is the fire-and-forget sink services push audit entries to.
// Implementations must never block the request path.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}
