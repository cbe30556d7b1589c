package entities

import (
	"testing"
	"time"
)

func TestWarrantyStage_Registry(t *testing.T) {
	t.Run("every stage has a definition", func(t *testing.T) {
		for _, s := range AllStages() {
			def, ok := s.Definition()
			if !ok || def.Stage != s || def.Order == 0 {
				t.Fatalf("missing definition for %s", s)
			}
		}
		if len(AllStages()) != 8 {
			t.Fatalf("expected 8 stages, got %d", len(AllStages()))
		}
	})

	t.Run("final stages", func(t *testing.T) {
		for _, s := range AllStages() {
			want := s == WarrantyStageRejected || s == WarrantyStageCompleted
			if IsFinalStage(s) != want {
				t.Fatalf("IsFinalStage(%s) = %v, want %v", s, IsFinalStage(s), want)
			}
		}
		if IsFinalStage(WarrantyStage("unknown")) {
			t.Fatalf("unknown stage must not be final")
		}
	})

	t.Run("next stages are empty only for final stages", func(t *testing.T) {
		for _, s := range AllStages() {
			next := NextValidStages(s)
			if IsFinalStage(s) && len(next) != 0 {
				t.Fatalf("final stage %s has successors %v", s, next)
			}
			if !IsFinalStage(s) && len(next) == 0 {
				t.Fatalf("non-final stage %s has no successor", s)
			}
		}
	})

	t.Run("only inspection_completed forks", func(t *testing.T) {
		for _, s := range AllStages() {
			n := len(NextValidStages(s))
			if s == WarrantyStageInspectionCompleted {
				if n != 2 {
					t.Fatalf("expected fork, got %v", NextValidStages(s))
				}
				continue
			}
			if n > 1 {
				t.Fatalf("stage %s has %d successors", s, n)
			}
		}
		if !IsValidTransition(WarrantyStageInspectionCompleted, WarrantyStageApproved) ||
			!IsValidTransition(WarrantyStageInspectionCompleted, WarrantyStageRejected) {
			t.Fatalf("expected both decision transitions to be valid")
		}
	})

	t.Run("main path", func(t *testing.T) {
		path := []WarrantyStage{
			WarrantyStageOpened,
			WarrantyStageInAnalysis,
			WarrantyStageInspectionScheduled,
			WarrantyStageInspectionCompleted,
			WarrantyStageApproved,
			WarrantyStageInExecution,
			WarrantyStageCompleted,
		}
		for i := 0; i < len(path)-1; i++ {
			if !IsValidTransition(path[i], path[i+1]) {
				t.Fatalf("expected %s -> %s to be valid", path[i], path[i+1])
			}
		}
	})

	t.Run("no backward or skip transitions", func(t *testing.T) {
		cases := [][2]WarrantyStage{
			{WarrantyStageInAnalysis, WarrantyStageOpened},
			{WarrantyStageOpened, WarrantyStageInspectionScheduled},
			{WarrantyStageApproved, WarrantyStageRejected},
			{WarrantyStageApproved, WarrantyStageCompleted},
			{WarrantyStageInAnalysis, WarrantyStageInAnalysis},
			{WarrantyStageCompleted, WarrantyStageOpened},
		}
		for _, c := range cases {
			if IsValidTransition(c[0], c[1]) {
				t.Fatalf("expected %s -> %s to be invalid", c[0], c[1])
			}
		}
	})

	t.Run("label falls back to key", func(t *testing.T) {
		if WarrantyStageInAnalysis.Label() != "Em Análise" {
			t.Fatalf("unexpected label %s", WarrantyStageInAnalysis.Label())
		}
		if WarrantyStage("x").Label() != "x" {
			t.Fatalf("expected raw key")
		}
	})
}

func TestSLAConfig(t *testing.T) {
	t.Run("hours for stage", func(t *testing.T) {
		c := SLAConfig{AnalysisHours: 1, InspectionHours: 2, DecisionHours: 3, ExecutionHours: 4}
		want := map[WarrantyStage]int{
			WarrantyStageOpened:              0,
			WarrantyStageInAnalysis:          1,
			WarrantyStageInspectionScheduled: 2,
			WarrantyStageInspectionCompleted: 3,
			WarrantyStageApproved:            0,
			WarrantyStageInExecution:         4,
			WarrantyStageRejected:            0,
			WarrantyStageCompleted:           0,
		}
		for _, s := range AllStages() {
			if got := c.HoursForStage(s); got != want[s] {
				t.Fatalf("HoursForStage(%s) = %d, want %d", s, got, want[s])
			}
		}
	})

	t.Run("fallback", func(t *testing.T) {
		c := FallbackSLAConfig("Outros")
		if c.Category != "Outros" || c.AnalysisHours != 48 || c.InspectionHours != 72 || c.DecisionHours != 24 || c.ExecutionHours != 168 || c.TotalHours != 312 {
			t.Fatalf("unexpected fallback: %+v", c)
		}
	})

	t.Run("defaults carry consistent totals", func(t *testing.T) {
		defaults := DefaultSLAConfigs()
		if len(defaults) != 8 {
			t.Fatalf("expected 8 defaults, got %d", len(defaults))
		}
		for _, c := range defaults {
			if c.TotalHours != c.Sum() {
				t.Fatalf("inconsistent total for %s", c.Category)
			}
		}
		if defaults[0].Category != "Estrutural" || defaults[0].TotalHours != 960 {
			t.Fatalf("unexpected first default: %+v", defaults[0])
		}
	})
}

func TestRanks(t *testing.T) {
	if !(SLAStatusExpired.Rank() < SLAStatusWarning.Rank() && SLAStatusWarning.Rank() < SLAStatusOnTrack.Rank()) {
		t.Fatalf("unexpected status ranks")
	}
	if !(PriorityCritical.Rank() < PriorityHigh.Rank() && PriorityHigh.Rank() < PriorityMedium.Rank() && PriorityMedium.Rank() < PriorityLow.Rank()) {
		t.Fatalf("unexpected priority ranks")
	}
	if Priority("urgent").IsValid() {
		t.Fatalf("unknown priority must be invalid")
	}
}

func TestWarrantyRequestFlow_Clone(t *testing.T) {
	opened := WarrantyStageOpened
	r := WarrantyRequestFlow{
		ID:      "w-1",
		Details: StageDetails{Inspection: &InspectionDetails{TechnicianID: "tec-1"}, Decision: ApprovalDecision{Notes: "ok"}},
		History: []WarrantyStatusHistory{{ID: "h-1", FromStatus: &opened, ToStatus: WarrantyStageInAnalysis}},
	}
	c := r.Clone()
	c.Details.Inspection.TechnicianID = "tec-2"
	c.History[0].Notes = "changed"
	*c.History[0].FromStatus = WarrantyStageCompleted

	if r.Details.Inspection.TechnicianID != "tec-1" {
		t.Fatalf("inspection details shared")
	}
	if r.History[0].Notes != "" || *r.History[0].FromStatus != WarrantyStageOpened {
		t.Fatalf("history shared")
	}
	if _, ok := c.Details.Decision.(ApprovalDecision); !ok {
		t.Fatalf("decision lost")
	}
}

func TestWarrantyRequestFlow_CompletionDate(t *testing.T) {
	r := WarrantyRequestFlow{}
	if _, ok := r.CompletionDate(); ok {
		t.Fatalf("expected no completion date")
	}
	now := time.Now()
	r.Details.Completion = &CompletionDetails{CompletedAt: now}
	if got, ok := r.CompletionDate(); !ok || !got.Equal(now) {
		t.Fatalf("unexpected completion date %v", got)
	}
}
