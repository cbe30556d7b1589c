package response

import (
	"time"

	"portal_posvenda/internal/domain/entities"
)

type InspectionResponse struct {
	ScheduledFor   time.Time `json:"scheduled_for"`
	TechnicianID   string    `json:"technician_id,omitempty"`
	TechnicianName string    `json:"technician_name,omitempty"`
	Notes          string    `json:"notes,omitempty"`
}

// DecisionResponse flattens an approval or a rejection. Outcome is the stage decided.
type DecisionResponse struct {
	Outcome   string    `json:"outcome"`
	DecidedAt time.Time `json:"decided_at"`
	Notes     string    `json:"notes,omitempty"`
	Reason    string    `json:"reason,omitempty"`
}

type StageNoteResponse struct {
	At    time.Time `json:"at"`
	Notes string    `json:"notes,omitempty"`
}

type StatusHistoryResponse struct {
	ID          string    `json:"id"`
	FromStatus  *string   `json:"from_status"`
	ToStatus    string    `json:"to_status"`
	ChangedAt   time.Time `json:"changed_at"`
	ChangedBy   string    `json:"changed_by"`
	IsAutomatic bool      `json:"is_automatic"`
	Notes       string    `json:"notes,omitempty"`
}

type WarrantyRequestResponse struct {
	ID           string `json:"id"`
	ClientID     string `json:"client_id"`
	ClientName   string `json:"client_name"`
	PropertyID   string `json:"property_id"`
	PropertyName string `json:"property_name"`
	UnitNumber   string `json:"unit_number"`

	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`

	CurrentStage      string    `json:"current_stage"`
	CurrentStageLabel string    `json:"current_stage_label"`
	StageStartedAt    time.Time `json:"stage_started_at"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	SLAConfig   entities.SLAConfig `json:"sla_config"`
	SLADeadline time.Time          `json:"sla_deadline"`
	SLAStatus   string             `json:"sla_status"`

	AssignedTo     string `json:"assigned_to,omitempty"`
	AssignedToName string `json:"assigned_to_name,omitempty"`

	Inspection *InspectionResponse `json:"inspection,omitempty"`
	Decision   *DecisionResponse   `json:"decision,omitempty"`
	Execution  *StageNoteResponse  `json:"execution,omitempty"`
	Completion *StageNoteResponse  `json:"completion,omitempty"`

	History    []StatusHistoryResponse `json:"history"`
	NextStages []StageOptionResponse   `json:"next_stages"`
}

func FromWarrantyRequest(r entities.WarrantyRequestFlow) WarrantyRequestResponse {
	res := WarrantyRequestResponse{
		ID:                r.ID,
		ClientID:          r.ClientID,
		ClientName:        r.ClientName,
		PropertyID:        r.PropertyID,
		PropertyName:      r.PropertyName,
		UnitNumber:        r.UnitNumber,
		Title:             r.Title,
		Description:       r.Description,
		Category:          r.Category,
		Priority:          string(r.Priority),
		CurrentStage:      string(r.CurrentStage),
		CurrentStageLabel: r.CurrentStage.Label(),
		StageStartedAt:    r.StageStartedAt,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		SLAConfig:         r.SLAConfig,
		SLADeadline:       r.SLADeadline,
		SLAStatus:         string(r.SLAStatus),
		AssignedTo:        r.AssignedTo,
		AssignedToName:    r.AssignedToName,
		History:           FromStatusHistory(r.History),
		NextStages:        FromStageOptions(entities.NextValidStages(r.CurrentStage)),
	}

	if in := r.Details.Inspection; in != nil {
		res.Inspection = &InspectionResponse{
			ScheduledFor:   in.ScheduledFor,
			TechnicianID:   in.TechnicianID,
			TechnicianName: in.TechnicianName,
			Notes:          in.Notes,
		}
	}
	switch d := r.Details.Decision.(type) {
	case entities.ApprovalDecision:
		res.Decision = &DecisionResponse{Outcome: string(d.DecidedStage()), DecidedAt: d.ApprovedAt, Notes: d.Notes}
	case entities.RejectionDecision:
		res.Decision = &DecisionResponse{Outcome: string(d.DecidedStage()), DecidedAt: d.RejectedAt, Reason: d.Reason}
	}
	if ex := r.Details.Execution; ex != nil {
		res.Execution = &StageNoteResponse{At: ex.StartedAt, Notes: ex.Notes}
	}
	if c := r.Details.Completion; c != nil {
		res.Completion = &StageNoteResponse{At: c.CompletedAt, Notes: c.Notes}
	}
	return res
}

func FromWarrantyRequests(list []entities.WarrantyRequestFlow) []WarrantyRequestResponse {
	out := make([]WarrantyRequestResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromWarrantyRequest(r))
	}
	return out
}

func FromStatusHistory(history []entities.WarrantyStatusHistory) []StatusHistoryResponse {
	out := make([]StatusHistoryResponse, 0, len(history))
	for _, h := range history {
		item := StatusHistoryResponse{
			ID:          h.ID,
			ToStatus:    string(h.ToStatus),
			ChangedAt:   h.ChangedAt,
			ChangedBy:   h.ChangedBy,
			IsAutomatic: h.IsAutomatic,
			Notes:       h.Notes,
		}
		if h.FromStatus != nil {
			from := string(*h.FromStatus)
			item.FromStatus = &from
		}
		out = append(out, item)
	}
	return out
}

// WarrantyActionResponse is returned by writes that run automations.
type WarrantyActionResponse struct {
	Request    WarrantyRequestResponse   `json:"request"`
	Automation entities.AutomationResult `json:"automation"`
}

func FromWarrantyAction(r entities.WarrantyRequestFlow, res entities.AutomationResult) WarrantyActionResponse {
	return WarrantyActionResponse{Request: FromWarrantyRequest(r), Automation: res}
}

type KanbanCardResponse struct {
	Request      WarrantyRequestResponse  `json:"request"`
	SLAInfo      entities.SLADeadlineInfo `json:"sla_info"`
	DragDisabled bool                     `json:"drag_disabled"`
}

type KanbanColumnResponse struct {
	Stage string               `json:"stage"`
	Label string               `json:"label"`
	Cards []KanbanCardResponse `json:"cards"`
}

func FromKanban(columns []entities.KanbanColumn) []KanbanColumnResponse {
	out := make([]KanbanColumnResponse, 0, len(columns))
	for _, col := range columns {
		cards := make([]KanbanCardResponse, 0, len(col.Cards))
		for _, card := range col.Cards {
			cards = append(cards, KanbanCardResponse{
				Request:      FromWarrantyRequest(card.Request),
				SLAInfo:      card.SLAInfo,
				DragDisabled: card.DragDisabled,
			})
		}
		out = append(out, KanbanColumnResponse{Stage: string(col.Stage), Label: col.Label, Cards: cards})
	}
	return out
}

type CategoryBreakdownResponse struct {
	Total         int `json:"total"`
	AvgTime       int `json:"avg_time"`
	SLACompliance int `json:"sla_compliance"`
}

type WarrantyMetricsResponse struct {
	TotalOpen          int `json:"total_open"`
	OpenedToday        int `json:"opened_today"`
	OpenedThisWeek     int `json:"opened_this_week"`
	OpenedThisMonth    int `json:"opened_this_month"`
	CompletedThisMonth int `json:"completed_this_month"`

	OnTrackCount      int `json:"on_track_count"`
	WarningCount      int `json:"warning_count"`
	ExpiredCount      int `json:"expired_count"`
	SLAComplianceRate int `json:"sla_compliance_rate"`

	AverageResolutionTime int            `json:"average_resolution_time"`
	AverageTimeByStage    map[string]int `json:"average_time_by_stage"`
	AverageTimeByType     map[string]int `json:"average_time_by_type"`

	BottleneckStage   string         `json:"bottleneck_stage,omitempty"`
	StageDistribution map[string]int `json:"stage_distribution"`

	ByType     map[string]CategoryBreakdownResponse `json:"by_type"`
	ByPriority map[string]int                       `json:"by_priority"`
}

func FromWarrantyMetrics(m entities.WarrantyMetrics) WarrantyMetricsResponse {
	res := WarrantyMetricsResponse{
		TotalOpen:             m.TotalOpen,
		OpenedToday:           m.OpenedToday,
		OpenedThisWeek:        m.OpenedThisWeek,
		OpenedThisMonth:       m.OpenedThisMonth,
		CompletedThisMonth:    m.CompletedThisMonth,
		OnTrackCount:          m.OnTrackCount,
		WarningCount:          m.WarningCount,
		ExpiredCount:          m.ExpiredCount,
		SLAComplianceRate:     m.SLAComplianceRate,
		AverageResolutionTime: m.AverageResolutionTime,
		AverageTimeByStage:    stageMap(m.AverageTimeByStage),
		AverageTimeByType:     m.AverageTimeByType,
		BottleneckStage:       string(m.BottleneckStage),
		StageDistribution:     stageMap(m.StageDistribution),
		ByType:                make(map[string]CategoryBreakdownResponse, len(m.ByType)),
		ByPriority:            make(map[string]int, len(m.ByPriority)),
	}
	for k, v := range m.ByType {
		res.ByType[k] = CategoryBreakdownResponse{Total: v.Total, AvgTime: v.AvgTime, SLACompliance: v.SLACompliance}
	}
	for k, v := range m.ByPriority {
		res.ByPriority[string(k)] = v
	}
	return res
}

func stageMap(in map[entities.WarrantyStage]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[string(k)] = v
	}
	return out
}

// StageOptionResponse lists a stage the request may move to next.
type StageOptionResponse struct {
	Stage string `json:"stage"`
	Label string `json:"label"`
}

func FromStageOptions(stages []entities.WarrantyStage) []StageOptionResponse {
	out := make([]StageOptionResponse, 0, len(stages))
	for _, s := range stages {
		out = append(out, StageOptionResponse{Stage: string(s), Label: s.Label()})
	}
	return out
}
