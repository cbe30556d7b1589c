package request

import (
	"errors"
	"strings"
	"time"

	"portal_posvenda/internal/domain/entities"
)

var (
	ErrInvalidDateFilter = errors.New("invalid date filter")
	ErrInvalidLimit      = errors.New("invalid limit")
)

// CreateWarrantyRequest is the payload a client sends to open a warranty claim.
type CreateWarrantyRequest struct {
	ClientID     string `json:"client_id" binding:"required"`
	ClientName   string `json:"client_name"`
	PropertyID   string `json:"property_id" binding:"required"`
	PropertyName string `json:"property_name"`
	UnitNumber   string `json:"unit_number"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Category     string `json:"category" binding:"required"`
	Priority     string `json:"priority"`
	CreatedBy    string `json:"created_by"`
}

func (r CreateWarrantyRequest) ToInput() entities.NewWarrantyRequestInput {
	createdBy := strings.TrimSpace(r.CreatedBy)
	if createdBy == "" {
		createdBy = strings.TrimSpace(r.ClientID)
	}
	return entities.NewWarrantyRequestInput{
		ClientID:     strings.TrimSpace(r.ClientID),
		ClientName:   strings.TrimSpace(r.ClientName),
		PropertyID:   strings.TrimSpace(r.PropertyID),
		PropertyName: strings.TrimSpace(r.PropertyName),
		UnitNumber:   strings.TrimSpace(r.UnitNumber),
		Title:        strings.TrimSpace(r.Title),
		Description:  r.Description,
		Category:     strings.TrimSpace(r.Category),
		Priority:     entities.Priority(strings.TrimSpace(r.Priority)),
		CreatedBy:    createdBy,
	}
}

// ChangeStageRequest moves a request to Stage. FromStage is set by the kanban
// board and switches the move to a drop, which writes the board note.
type ChangeStageRequest struct {
	Stage     string `json:"stage" binding:"required"`
	FromStage string `json:"from_stage"`
	ChangedBy string `json:"changed_by" binding:"required"`
	Notes     string `json:"notes"`
}

func (r ChangeStageRequest) IsKanbanDrop() bool {
	return strings.TrimSpace(r.FromStage) != ""
}

type AssignTechnicianRequest struct {
	TechnicianID   string `json:"technician_id" binding:"required"`
	TechnicianName string `json:"technician_name"`
	AssignedBy     string `json:"assigned_by" binding:"required"`
}

type ScheduleInspectionRequest struct {
	InspectionDate time.Time `json:"inspection_date" binding:"required"`
	TechnicianID   string    `json:"technician_id" binding:"required"`
	TechnicianName string    `json:"technician_name"`
	ScheduledBy    string    `json:"scheduled_by" binding:"required"`
}

// StageNoteRequest is shared by the transitions that only carry a note.
type StageNoteRequest struct {
	Notes       string `json:"notes"`
	PerformedBy string `json:"performed_by" binding:"required"`
}

type RejectWarrantyRequest struct {
	Reason     string `json:"reason" binding:"required"`
	RejectedBy string `json:"rejected_by" binding:"required"`
}

// WarrantyFilterQuery is bound from the listing query string.
// Dates accept RFC3339 or YYYY-MM-DD.
type WarrantyFilterQuery struct {
	Search     string `form:"search"`
	PropertyID string `form:"property_id"`
	Category   string `form:"category"`
	Priority   string `form:"priority"`
	AssignedTo string `form:"assigned_to"`
	SLAStatus  string `form:"sla_status"`
	DateFrom   string `form:"date_from"`
	DateTo     string `form:"date_to"`
}

func (q WarrantyFilterQuery) ToFilters() (entities.WarrantyFilters, error) {
	f := entities.WarrantyFilters{
		Search:     strings.TrimSpace(q.Search),
		PropertyID: strings.TrimSpace(q.PropertyID),
		Category:   strings.TrimSpace(q.Category),
		Priority:   entities.Priority(strings.TrimSpace(q.Priority)),
		AssignedTo: strings.TrimSpace(q.AssignedTo),
		SLAStatus:  entities.SLAStatus(strings.TrimSpace(q.SLAStatus)),
	}
	from, err := parseDate(q.DateFrom, false)
	if err != nil {
		return entities.WarrantyFilters{}, err
	}
	to, err := parseDate(q.DateTo, true)
	if err != nil {
		return entities.WarrantyFilters{}, err
	}
	f.DateFrom, f.DateTo = from, to
	return f, nil
}

// parseDate accepts RFC3339 or a bare date. A bare upper bound covers the whole day.
func parseDate(raw string, endOfDay bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, ErrInvalidDateFilter
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &t, nil
}
