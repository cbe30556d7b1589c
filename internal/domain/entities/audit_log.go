package entities

import "time"

type AuditEntityType string

const (
	AuditEntityInspection AuditEntityType = "inspection"
	AuditEntityWarranty   AuditEntityType = "warranty"
)

type AuditAction string

const (
	AuditActionCreated      AuditAction = "created"
	AuditActionUpdated      AuditAction = "updated"
	AuditActionAccepted     AuditAction = "accepted"
	AuditActionRejected     AuditAction = "rejected"
	AuditActionScheduled    AuditAction = "scheduled"
	AuditActionCompleted    AuditAction = "completed"
	AuditActionCancelled    AuditAction = "cancelled"
	AuditActionStageChanged AuditAction = "stage_changed"
	AuditActionCommentAdded AuditAction = "comment_added"
	AuditActionInfoAdded    AuditAction = "info_added"
	AuditActionAssigned     AuditAction = "assigned"
)

type AuditRole string

const (
	AuditRoleAdmin  AuditRole = "admin"
	AuditRoleClient AuditRole = "client"
)

// AuditLogEntry is an immutable record of who did what to an inspection or warranty.
type AuditLogEntry struct {
	ID              string
	EntityType      AuditEntityType
	EntityID        string
	Action          AuditAction
	PerformedBy     string
	PerformedByName string
	PerformedByRole AuditRole
	Timestamp       time.Time
	Details         string
	Metadata        map[string]string
}
