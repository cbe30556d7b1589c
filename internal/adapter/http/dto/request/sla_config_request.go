package request

import (
	"portal_posvenda/internal/domain/entities"
)

type SLAConfigRequest struct {
	AnalysisHours   int `json:"analysis_hours"`
	InspectionHours int `json:"inspection_hours"`
	DecisionHours   int `json:"decision_hours"`
	ExecutionHours  int `json:"execution_hours"`
}

// ToEntity builds the config for category. TotalHours is left to the store.
func (r SLAConfigRequest) ToEntity(category string) entities.SLAConfig {
	return entities.SLAConfig{
		Category:        category,
		AnalysisHours:   r.AnalysisHours,
		InspectionHours: r.InspectionHours,
		DecisionHours:   r.DecisionHours,
		ExecutionHours:  r.ExecutionHours,
	}
}
