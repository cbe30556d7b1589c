package interfaces

import (
	"context"
	"portal_posvenda/internal/domain/entities"
)

type IAuditLogRepository interface {
	Create(ctx context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error)
	List(ctx context.Context) ([]entities.AuditLogEntry, error)
}
