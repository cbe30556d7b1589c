package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"portal_posvenda/internal/domain/entities"
	mock_interfaces "portal_posvenda/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuditLogUseCase_Log(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps id and timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := NewAuditLogUseCase(repo, nil)
		fixed := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return fixed }

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error) { return e, nil })

		e, err := uc.Log(ctx, entities.AuditLogEntry{ID: "ignored", EntityID: "req-1", Action: entities.AuditActionCreated})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.ID == "" || e.ID == "ignored" || !e.Timestamp.Equal(fixed) {
			t.Fatalf("unexpected entry: %+v", e)
		}
	})

	t.Run("requires entity and action", func(t *testing.T) {
		uc := NewAuditLogUseCase(nil, nil)
		if _, err := uc.Log(ctx, entities.AuditLogEntry{EntityID: "req-1"}); !errors.Is(err, ErrInvalidRequestInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
	})
}

func TestAuditLogUseCase_Queries(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIAuditLogRepository(ctrl)
	uc := NewAuditLogUseCase(repo, nil)

	t0 := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	entries := []entities.AuditLogEntry{
		{ID: "a1", EntityType: entities.AuditEntityWarranty, EntityID: "req-1", PerformedBy: "admin", Timestamp: t0},
		{ID: "a2", EntityType: entities.AuditEntityInspection, EntityID: "insp-1", PerformedBy: "c1", Timestamp: t0.Add(time.Hour)},
		{ID: "a3", EntityType: entities.AuditEntityWarranty, EntityID: "req-1", PerformedBy: "admin", Timestamp: t0.Add(2 * time.Hour)},
	}
	repo.EXPECT().List(gomock.Any()).AnyTimes().
		DoAndReturn(func(context.Context) ([]entities.AuditLogEntry, error) {
			out := make([]entities.AuditLogEntry, len(entries))
			copy(out, entries)
			return out, nil
		})

	ids := func(list []entities.AuditLogEntry) []string {
		out := make([]string, len(list))
		for i, e := range list {
			out[i] = e.ID
		}
		return out
	}
	check := func(t *testing.T, got []entities.AuditLogEntry, err error, want ...string) {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		g := ids(got)
		if len(g) != len(want) {
			t.Fatalf("expected %v, got %v", want, g)
		}
		for i := range want {
			if g[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, g)
			}
		}
	}

	t.Run("by entity newest first", func(t *testing.T) {
		got, err := uc.ByEntity(ctx, entities.AuditEntityWarranty, "req-1")
		check(t, got, err, "a3", "a1")
	})
	t.Run("by user", func(t *testing.T) {
		got, err := uc.ByUser(ctx, "c1")
		check(t, got, err, "a2")
	})
	t.Run("by date range is inclusive", func(t *testing.T) {
		got, err := uc.ByDateRange(ctx, t0.Add(time.Hour), t0.Add(2*time.Hour))
		check(t, got, err, "a3", "a2")
	})
	t.Run("recent applies limit", func(t *testing.T) {
		got, err := uc.Recent(ctx, 2)
		check(t, got, err, "a3", "a2")
		got, err = uc.Recent(ctx, 0)
		check(t, got, err, "a3", "a2", "a1")
	})
}
