package entities

import "time"

type SLAStatus string

const (
	SLAStatusOnTrack SLAStatus = "on_track"
	SLAStatusWarning SLAStatus = "warning"
	SLAStatusExpired SLAStatus = "expired"
)

// Rank orders statuses by urgency (lower is more urgent).
func (s SLAStatus) Rank() int {
	switch s {
	case SLAStatusExpired:
		return 1
	case SLAStatusWarning:
		return 2
	case SLAStatusOnTrack:
		return 3
	}
	return 4
}

func (s SLAStatus) IsValid() bool {
	return s == SLAStatusOnTrack || s == SLAStatusWarning || s == SLAStatusExpired
}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func AllPriorities() []Priority {
	return []Priority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}
}

// Rank orders priorities by urgency; unknown values sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 1
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 3
	case PriorityLow:
		return 4
	}
	return 5
}

func (p Priority) IsValid() bool {
	return p.Rank() < 5
}

// SLAConfig holds the business-hour budget of each timed stage for a warranty category.
//
// TotalHours is always the sum of the four stage budgets.
type SLAConfig struct {
	Category        string `json:"category"`
	AnalysisHours   int    `json:"analysis_hours"`
	InspectionHours int    `json:"inspection_hours"`
	DecisionHours   int    `json:"decision_hours"`
	ExecutionHours  int    `json:"execution_hours"`
	TotalHours      int    `json:"total_hours"`
}

func (c SLAConfig) Sum() int {
	return c.AnalysisHours + c.InspectionHours + c.DecisionHours + c.ExecutionHours
}

// WithTotal returns c with TotalHours recomputed.
func (c SLAConfig) WithTotal() SLAConfig {
	c.TotalHours = c.Sum()
	return c
}

// HoursForStage maps a stage to the budget that governs it.
func (c SLAConfig) HoursForStage(stage WarrantyStage) int {
	switch stage {
	case WarrantyStageInAnalysis:
		return c.AnalysisHours
	case WarrantyStageInspectionScheduled:
		return c.InspectionHours
	case WarrantyStageInspectionCompleted:
		return c.DecisionHours
	case WarrantyStageInExecution:
		return c.ExecutionHours
	case WarrantyStageOpened, WarrantyStageApproved, WarrantyStageRejected, WarrantyStageCompleted:
		return 0
	}
	return 0
}

// FallbackSLAConfig is used for categories with no stored configuration.
func FallbackSLAConfig(category string) SLAConfig {
	return SLAConfig{
		Category:        category,
		AnalysisHours:   48,
		InspectionHours: 72,
		DecisionHours:   24,
		ExecutionHours:  168,
	}.WithTotal()
}

func DefaultSLAConfigs() []SLAConfig {
	defaults := []SLAConfig{
		{Category: "Estrutural", AnalysisHours: 72, InspectionHours: 120, DecisionHours: 48, ExecutionHours: 720},
		{Category: "Instalações Hidráulicas", AnalysisHours: 48, InspectionHours: 72, DecisionHours: 24, ExecutionHours: 168},
		{Category: "Elétrica", AnalysisHours: 48, InspectionHours: 72, DecisionHours: 24, ExecutionHours: 168},
		{Category: "Impermeabilização", AnalysisHours: 72, InspectionHours: 120, DecisionHours: 48, ExecutionHours: 360},
		{Category: "Acabamentos", AnalysisHours: 48, InspectionHours: 72, DecisionHours: 24, ExecutionHours: 120},
		{Category: "Esquadrias", AnalysisHours: 48, InspectionHours: 72, DecisionHours: 24, ExecutionHours: 240},
		{Category: "Revestimentos Cerâmicos", AnalysisHours: 48, InspectionHours: 72, DecisionHours: 24, ExecutionHours: 168},
		{Category: "Equipamentos", AnalysisHours: 48, InspectionHours: 72, DecisionHours: 24, ExecutionHours: 168},
	}
	for i := range defaults {
		defaults[i] = defaults[i].WithTotal()
	}
	return defaults
}

// SLADeadlineInfo is derived on demand and never persisted.
type SLADeadlineInfo struct {
	Stage               WarrantyStage `json:"stage"`
	StartedAt           time.Time     `json:"started_at"`
	Deadline            time.Time     `json:"deadline"`
	HoursRemaining      int           `json:"hours_remaining"`
	PercentageRemaining float64       `json:"percentage_remaining"`
	Status              SLAStatus     `json:"status"`
}
