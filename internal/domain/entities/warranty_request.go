package entities

import "time"

// WarrantyRequestFlow is the warranty claim aggregate.
//
// ClientID, PropertyID, Category and CreatedAt never change after creation.
// CurrentStage only moves through the flow engine, and every move appends
// one WarrantyStatusHistory entry.
type WarrantyRequestFlow struct {
	ID           string
	ClientID     string
	ClientName   string
	PropertyID   string
	PropertyName string
	UnitNumber   string

	Title       string
	Description string
	Category    string
	Priority    Priority

	CurrentStage   WarrantyStage
	StageStartedAt time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	SLAConfig   SLAConfig
	SLADeadline time.Time
	SLAStatus   SLAStatus

	AssignedTo     string
	AssignedToName string

	Details StageDetails
	History []WarrantyStatusHistory
}

// StageDetails groups the data collected by each stage the request has reached.
// A nil group means the stage was never reached through its dedicated operation.
type StageDetails struct {
	Inspection *InspectionDetails
	Decision   Decision
	Execution  *ExecutionDetails
	Completion *CompletionDetails
}

type InspectionDetails struct {
	ScheduledFor   time.Time
	TechnicianID   string
	TechnicianName string
	Notes          string
}

// Decision is either an ApprovalDecision or a RejectionDecision.
type Decision interface {
	isDecision()
	DecidedStage() WarrantyStage
}

type ApprovalDecision struct {
	ApprovedAt time.Time
	Notes      string
}

func (ApprovalDecision) isDecision()                 {}
func (ApprovalDecision) DecidedStage() WarrantyStage { return WarrantyStageApproved }

type RejectionDecision struct {
	RejectedAt time.Time
	Reason     string
}

func (RejectionDecision) isDecision()                 {}
func (RejectionDecision) DecidedStage() WarrantyStage { return WarrantyStageRejected }

type ExecutionDetails struct {
	StartedAt time.Time
	Notes     string
}

type CompletionDetails struct {
	CompletedAt time.Time
	Notes       string
}

// CompletionDate reports when the request was completed, if it was.
func (r WarrantyRequestFlow) CompletionDate() (time.Time, bool) {
	if r.Details.Completion == nil {
		return time.Time{}, false
	}
	return r.Details.Completion.CompletedAt, true
}

func (r WarrantyRequestFlow) IsFinal() bool {
	return IsFinalStage(r.CurrentStage)
}

// Clone returns a copy that shares no mutable state with r.
func (r WarrantyRequestFlow) Clone() WarrantyRequestFlow {
	out := r
	if r.History != nil {
		out.History = make([]WarrantyStatusHistory, len(r.History))
		for i, h := range r.History {
			out.History[i] = h.clone()
		}
	}
	if r.Details.Inspection != nil {
		v := *r.Details.Inspection
		out.Details.Inspection = &v
	}
	if r.Details.Execution != nil {
		v := *r.Details.Execution
		out.Details.Execution = &v
	}
	if r.Details.Completion != nil {
		v := *r.Details.Completion
		out.Details.Completion = &v
	}
	return out
}

// WarrantyStatusHistory records one stage change. Entries are never edited.
// FromStatus is nil only for the creation entry.
type WarrantyStatusHistory struct {
	ID          string
	RequestID   string
	FromStatus  *WarrantyStage
	ToStatus    WarrantyStage
	ChangedAt   time.Time
	ChangedBy   string
	IsAutomatic bool
	Notes       string
}

func (h WarrantyStatusHistory) clone() WarrantyStatusHistory {
	if h.FromStatus != nil {
		from := *h.FromStatus
		h.FromStatus = &from
	}
	return h
}

// NewWarrantyRequestInput carries the fields supplied when a client opens a claim.
type NewWarrantyRequestInput struct {
	ClientID     string
	ClientName   string
	PropertyID   string
	PropertyName string
	UnitNumber   string
	Title        string
	Description  string
	Category     string
	Priority     Priority
	CreatedBy    string
}

// WarrantyFilters narrows a request listing. Zero values are ignored.
type WarrantyFilters struct {
	Search     string
	PropertyID string
	Category   string
	Priority   Priority
	AssignedTo string
	SLAStatus  SLAStatus
	DateFrom   *time.Time
	DateTo     *time.Time
}
