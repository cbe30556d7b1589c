package response

import (
	"testing"
	"time"

	"portal_posvenda/internal/domain/entities"
)

func TestFromWarrantyRequest(t *testing.T) {
	now := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	opened := entities.WarrantyStageOpened
	r := entities.WarrantyRequestFlow{
		ID:             "req-1",
		ClientID:       "client-1",
		Category:       "Elétrica",
		Priority:       entities.PriorityHigh,
		CurrentStage:   entities.WarrantyStageInspectionCompleted,
		StageStartedAt: now,
		CreatedAt:      now,
		SLAStatus:      entities.SLAStatusOnTrack,
		Details: entities.StageDetails{
			Inspection: &entities.InspectionDetails{ScheduledFor: now, TechnicianID: "tech-1", Notes: "ok"},
			Decision:   entities.RejectionDecision{RejectedAt: now, Reason: "mau uso"},
		},
		History: []entities.WarrantyStatusHistory{
			{ID: "h1", ToStatus: entities.WarrantyStageOpened, ChangedAt: now},
			{ID: "h2", FromStatus: &opened, ToStatus: entities.WarrantyStageInAnalysis, ChangedAt: now},
		},
	}

	res := FromWarrantyRequest(r)
	if res.ID != "req-1" || res.Priority != "high" || res.CurrentStageLabel != "Vistoria Realizada" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Inspection == nil || res.Inspection.TechnicianID != "tech-1" {
		t.Fatalf("inspection not mapped: %+v", res.Inspection)
	}
	if res.Decision == nil || res.Decision.Outcome != "rejected" || res.Decision.Reason != "mau uso" {
		t.Fatalf("decision not mapped: %+v", res.Decision)
	}
	if res.Execution != nil || res.Completion != nil {
		t.Fatalf("unreached stages should be omitted: %+v", res)
	}
	if len(res.History) != 2 || res.History[0].FromStatus != nil || *res.History[1].FromStatus != "opened" {
		t.Fatalf("unexpected history: %+v", res.History)
	}
	if len(res.NextStages) != 2 {
		t.Fatalf("expected approve/reject fork, got %+v", res.NextStages)
	}
}

func TestFromWarrantyMetrics(t *testing.T) {
	m := entities.WarrantyMetrics{
		TotalOpen:         3,
		StageDistribution: map[entities.WarrantyStage]int{entities.WarrantyStageOpened: 3},
		ByPriority:        map[entities.Priority]int{entities.PriorityLow: 1},
		ByType:            map[string]entities.CategoryBreakdown{"Elétrica": {Total: 2, AvgTime: 10, SLACompliance: 50}},
	}

	res := FromWarrantyMetrics(m)
	if res.TotalOpen != 3 || res.StageDistribution["opened"] != 3 || res.ByPriority["low"] != 1 {
		t.Fatalf("unexpected metrics: %+v", res)
	}
	if res.ByType["Elétrica"].SLACompliance != 50 {
		t.Fatalf("unexpected breakdown: %+v", res.ByType)
	}
}

func TestFromNotifications(t *testing.T) {
	res := FromNotifications([]entities.Notification{{ID: "n1"}, {ID: "n2", Read: true}})
	if len(res.Items) != 2 || res.UnreadCount != 1 {
		t.Fatalf("unexpected list: %+v", res)
	}
}
