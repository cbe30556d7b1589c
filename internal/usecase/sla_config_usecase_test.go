package usecase

import (
	"context"
	"errors"
	"testing"

	"portal_posvenda/internal/domain/entities"
)

func TestSLAConfigStore_Get(t *testing.T) {
	s := NewSLAConfigStore(nil, entities.DefaultSLAConfigs())

	t.Run("stored category", func(t *testing.T) {
		c := s.Get("Estrutural")
		if c.AnalysisHours != 72 || c.TotalHours != 960 {
			t.Fatalf("unexpected config: %+v", c)
		}
	})

	t.Run("unknown category uses fallback without storing it", func(t *testing.T) {
		c := s.Get("Paisagismo")
		if c.Category != "Paisagismo" || c.TotalHours != 312 {
			t.Fatalf("unexpected fallback: %+v", c)
		}
		for _, stored := range s.GetAll() {
			if stored.Category == "Paisagismo" {
				t.Fatalf("fallback must not be persisted")
			}
		}
	})

	t.Run("get all keeps seed order", func(t *testing.T) {
		all := s.GetAll()
		if len(all) != 8 || all[0].Category != "Estrutural" || all[7].Category != "Equipamentos" {
			t.Fatalf("unexpected configs: %+v", all)
		}
	})

	t.Run("hours for stage", func(t *testing.T) {
		if got := s.HoursForStage("Elétrica", entities.WarrantyStageInExecution); got != 168 {
			t.Fatalf("expected 168, got %d", got)
		}
		if got := s.HoursForStage("Elétrica", entities.WarrantyStageApproved); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})
}

func TestSLAConfigStore_Update(t *testing.T) {
	t.Run("recomputes total", func(t *testing.T) {
		s := NewSLAConfigStore(nil, nil)
		c, err := s.Update(context.Background(), entities.SLAConfig{
			Category: " Elétrica ", AnalysisHours: 10, InspectionHours: 20, DecisionHours: 30, ExecutionHours: 40, TotalHours: 999,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.TotalHours != 100 || c.Category != "Elétrica" {
			t.Fatalf("unexpected stored config: %+v", c)
		}
		if s.Get("Elétrica").TotalHours != 100 {
			t.Fatalf("expected stored total 100")
		}
	})

	t.Run("rejects non-positive durations", func(t *testing.T) {
		s := NewSLAConfigStore(nil, entities.DefaultSLAConfigs())
		cases := []entities.SLAConfig{
			{Category: "Elétrica", AnalysisHours: 0, InspectionHours: 1, DecisionHours: 1, ExecutionHours: 1},
			{Category: "Elétrica", AnalysisHours: 1, InspectionHours: -1, DecisionHours: 1, ExecutionHours: 1},
			{Category: "Elétrica", AnalysisHours: 1, InspectionHours: 1, DecisionHours: 0, ExecutionHours: 1},
			{Category: "Elétrica", AnalysisHours: 1, InspectionHours: 1, DecisionHours: 1, ExecutionHours: 0},
			{Category: "  ", AnalysisHours: 1, InspectionHours: 1, DecisionHours: 1, ExecutionHours: 1},
		}
		for _, c := range cases {
			if _, err := s.Update(context.Background(), c); !errors.Is(err, ErrInvalidSLAConfig) {
				t.Fatalf("expected ErrInvalidSLAConfig for %+v, got %v", c, err)
			}
		}
		if s.Get("Elétrica").AnalysisHours != 48 {
			t.Fatalf("rejected update must not change the store")
		}
	})

	t.Run("put does not validate", func(t *testing.T) {
		s := NewSLAConfigStore(nil, nil)
		c := s.Put(entities.SLAConfig{Category: "X", AnalysisHours: 0, ExecutionHours: 5, TotalHours: 1})
		if c.TotalHours != 5 {
			t.Fatalf("expected recomputed total 5, got %d", c.TotalHours)
		}
	})
}
