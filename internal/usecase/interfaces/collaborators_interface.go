package interfaces

import (
	"context"
	"portal_posvenda/internal/domain/entities"
)

// INotifier creates notifications on behalf of the automation layer.
type INotifier interface {
	Notify(ctx context.Context, in entities.NotificationInput) (entities.Notification, error)
}

// IAuditLogger records audit entries. ID and Timestamp are assigned by the implementation.
type IAuditLogger interface {
	Log(ctx context.Context, entry entities.AuditLogEntry) (entities.AuditLogEntry, error)
}

// IClientStageGateway drives the client onboarding stage machine.
type IClientStageGateway interface {
	AdvanceStage(ctx context.Context, clientID string, stage entities.ClientStage, reason, changedBy string, isAutomatic bool) (entities.ClientProfile, error)
	AddEvent(ctx context.Context, event entities.ClientEvent) (entities.ClientEvent, error)
	GetPermissions(ctx context.Context, clientID string) (entities.StagePermissions, error)
}

// IAlertLedger remembers which SLA alerts were already sent.
// MarkOnce returns true only for the first call with a given key.
// Release forgets a key so a later MarkOnce claims it again.
type IAlertLedger interface {
	MarkOnce(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}
