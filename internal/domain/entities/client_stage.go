package entities

import "time"

// ClientStage gates which portal features a client can use.
// It only moves forward: registered -> inspection_enabled -> warranty_enabled.
type ClientStage string

const (
	ClientStageRegistered        ClientStage = "registered"
	ClientStageInspectionEnabled ClientStage = "inspection_enabled"
	ClientStageWarrantyEnabled   ClientStage = "warranty_enabled"
)

func (s ClientStage) Order() int {
	switch s {
	case ClientStageRegistered:
		return 1
	case ClientStageInspectionEnabled:
		return 2
	case ClientStageWarrantyEnabled:
		return 3
	}
	return 0
}

func (s ClientStage) IsValid() bool { return s.Order() > 0 }

func (s ClientStage) Label() string {
	switch s {
	case ClientStageRegistered:
		return "Cadastrado"
	case ClientStageInspectionEnabled:
		return "Vistoria Liberada"
	case ClientStageWarrantyEnabled:
		return "Garantia Liberada"
	}
	return string(s)
}

type StagePermissions struct {
	CanViewDashboard       bool `json:"can_view_dashboard"`
	CanViewDocuments       bool `json:"can_view_documents"`
	CanViewProperty        bool `json:"can_view_property"`
	CanScheduleInspection  bool `json:"can_schedule_inspection"`
	CanStartInspection     bool `json:"can_start_inspection"`
	CanRequestWarranty     bool `json:"can_request_warranty"`
	CanViewWarrantyHistory bool `json:"can_view_warranty_history"`
}

// Permissions returns what a client at stage s may do. Unknown stages get the registered set.
func (s ClientStage) Permissions() StagePermissions {
	p := StagePermissions{CanViewDashboard: true, CanViewDocuments: true, CanViewProperty: true}
	switch s {
	case ClientStageInspectionEnabled:
		p.CanScheduleInspection = true
		p.CanStartInspection = true
	case ClientStageWarrantyEnabled:
		p.CanScheduleInspection = true
		p.CanStartInspection = true
		p.CanRequestWarranty = true
		p.CanViewWarrantyHistory = true
	}
	return p
}

type ClientStageChange struct {
	ID          string
	FromStage   *ClientStage
	ToStage     ClientStage
	ChangedAt   time.Time
	Reason      string
	ChangedBy   string
	IsAutomatic bool
}

type ClientProfile struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	CurrentStage ClientStage
	PropertyID   string
	PropertyName string
	UnitNumber   string
	CreatedAt    time.Time
	StageHistory []ClientStageChange
}

type ClientEventType string

const (
	ClientEventClientRegistered    ClientEventType = "client_registered"
	ClientEventInspectionEnabled   ClientEventType = "inspection_enabled"
	ClientEventInspectionScheduled ClientEventType = "inspection_scheduled"
	ClientEventInspectionCompleted ClientEventType = "inspection_completed"
	ClientEventInspectionApproved  ClientEventType = "inspection_approved"
	ClientEventInspectionRejected  ClientEventType = "inspection_rejected"
	ClientEventWarrantyEnabled     ClientEventType = "warranty_enabled"
	ClientEventWarrantyRequested   ClientEventType = "warranty_requested"
	ClientEventWarrantyCompleted   ClientEventType = "warranty_completed"
	ClientEventManualRelease       ClientEventType = "manual_release"
)

// EventType returns the event recorded when a client reaches s.
func (s ClientStage) EventType() ClientEventType {
	switch s {
	case ClientStageInspectionEnabled:
		return ClientEventInspectionEnabled
	case ClientStageWarrantyEnabled:
		return ClientEventWarrantyEnabled
	}
	return ClientEventClientRegistered
}

type ClientEventMetadata struct {
	RelatedEntityID   string
	RelatedEntityType RelatedEntityType
	PerformedBy       string
	IsAutomatic       bool
}

type ClientEvent struct {
	ID          string
	ClientID    string
	EventType   ClientEventType
	Title       string
	Description string
	CreatedAt   time.Time
	Metadata    ClientEventMetadata
}

// AutomationResult reports the side effects an automation ran.
// Success reflects the authoritative step; Errors lists best-effort steps that failed.
type AutomationResult struct {
	Success bool     `json:"success"`
	Actions []string `json:"actions"`
	Errors  []string `json:"errors,omitempty"`
}
