package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"portal_posvenda/internal/adapter/persistence/repository"
	"portal_posvenda/internal/domain/entities"
	"portal_posvenda/internal/infrastructure/metrics"
	mock_interfaces "portal_posvenda/internal/usecase/interfaces/mocks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"
)

type automationFixture struct {
	engine   *WarrantyFlowUseCase
	clock    *fakeClock
	clients  *ClientStageUseCase
	notifier *mock_interfaces.MockINotifier
	audit    *mock_interfaces.MockIAuditLogger
	metrics  *metrics.Metrics
	uc       *WarrantyAutomationUseCase
}

func newAutomationFixture(t *testing.T, start time.Time) *automationFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	engine, clock, _ := newTestEngine(start)
	m := metrics.New(prometheus.NewRegistry())
	f := &automationFixture{
		engine:   engine,
		clock:    clock,
		clients:  NewClientStageUseCase(nil),
		notifier: mock_interfaces.NewMockINotifier(ctrl),
		audit:    mock_interfaces.NewMockIAuditLogger(ctrl),
		metrics:  m,
	}
	f.uc = NewWarrantyAutomationUseCase(engine, engine.calc, f.notifier, f.audit, f.clients,
		repository.NewSLAAlertMemoryLedger(), AutomationOptions{AdminRecipientID: "admin"}, nil, m)
	f.uc.now = clock.Now
	return f
}

func (f *automationFixture) register(t *testing.T, id string, stage entities.ClientStage) {
	t.Helper()
	if _, err := f.clients.RegisterClient(context.Background(), RegisterClientInput{ID: id, Name: "Maria", Stage: stage}); err != nil {
		t.Fatalf("register client: %v", err)
	}
}

func TestWarrantyAutomationUseCase_OnInspectionAccepted(t *testing.T) {
	ctx := context.Background()

	t.Run("unlocks warranty module and fans out", func(t *testing.T) {
		f := newAutomationFixture(t, date(2025, 1, 6, 9, 0))
		f.register(t, "client-1", entities.ClientStageInspectionEnabled)

		var sent []entities.NotificationType
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(2).
			DoAndReturn(func(_ context.Context, in entities.NotificationInput) (entities.Notification, error) {
				if in.RecipientID != "client-1" {
					t.Fatalf("unexpected recipient %q", in.RecipientID)
				}
				sent = append(sent, in.Type)
				return entities.Notification{ID: "n"}, nil
			})
		f.audit.EXPECT().Log(gomock.Any(), gomock.Any()).Times(1).
			DoAndReturn(func(_ context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error) {
				if e.Action != entities.AuditActionAccepted || e.PerformedByRole != entities.AuditRoleClient || e.EntityID != "insp-1" {
					t.Fatalf("unexpected audit entry: %+v", e)
				}
				return e, nil
			})

		res, err := f.uc.OnInspectionAccepted(ctx, "insp-1", "client-1")
		if err != nil || !res.Success || len(res.Errors) != 0 {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
		if len(sent) != 2 || sent[0] != entities.NotificationTypeInspectionApproved || sent[1] != entities.NotificationTypeWarrantyEnabled {
			t.Fatalf("unexpected notifications: %v", sent)
		}

		profile, _ := f.clients.GetProfile(ctx, "client-1")
		if profile.CurrentStage != entities.ClientStageWarrantyEnabled {
			t.Fatalf("expected warranty_enabled, got %s", profile.CurrentStage)
		}
		last := profile.StageHistory[len(profile.StageHistory)-1]
		if last.ChangedBy != "Cliente" || !last.IsAutomatic {
			t.Fatalf("unexpected stage change: %+v", last)
		}
		found := false
		for _, e := range f.clients.GetEvents(ctx, "client-1") {
			if e.EventType == entities.ClientEventInspectionApproved && e.Title == "Vistoria Aceita pelo Cliente" {
				found = true
			}
		}
		if !found {
			t.Fatalf("inspection_approved event not recorded")
		}
	})

	t.Run("unknown client aborts before side effects", func(t *testing.T) {
		f := newAutomationFixture(t, date(2025, 1, 6, 9, 0))
		res, err := f.uc.OnInspectionAccepted(ctx, "insp-1", "ghost")
		if !errors.Is(err, ErrClientNotFound) || res.Success {
			t.Fatalf("expected client not found, got %+v %v", res, err)
		}
	})

	t.Run("side effect failure does not undo the advance", func(t *testing.T) {
		f := newAutomationFixture(t, date(2025, 1, 6, 9, 0))
		f.register(t, "client-1", entities.ClientStageInspectionEnabled)
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(2).Return(entities.Notification{}, errors.New("smtp down"))
		f.audit.EXPECT().Log(gomock.Any(), gomock.Any()).Return(entities.AuditLogEntry{}, nil)

		res, err := f.uc.OnInspectionAccepted(ctx, "insp-1", "client-1")
		if err != nil || !res.Success || len(res.Errors) != 2 {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
		if got := testutil.ToFloat64(f.metrics.AutomationStepFailures.WithLabelValues("notify_warranty_enabled")); got != 1 {
			t.Fatalf("expected 1 recorded failure, got %v", got)
		}
	})
}

func TestWarrantyAutomationUseCase_InspectionEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("rejected keeps stage and audits default motive", func(t *testing.T) {
		f := newAutomationFixture(t, date(2025, 1, 6, 9, 0))
		f.register(t, "client-1", entities.ClientStageInspectionEnabled)
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(entities.Notification{}, nil)
		f.audit.EXPECT().Log(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error) {
				if e.Action != entities.AuditActionRejected || e.Details != "Vistoria recusada pelo cliente. Motivo: Não informado" {
					t.Fatalf("unexpected audit entry: %+v", e)
				}
				return e, nil
			})

		res := f.uc.OnInspectionRejected(ctx, "insp-1", "client-1", "")
		if !res.Success || len(res.Errors) != 0 {
			t.Fatalf("unexpected result: %+v", res)
		}
		profile, _ := f.clients.GetProfile(ctx, "client-1")
		if profile.CurrentStage != entities.ClientStageInspectionEnabled {
			t.Fatalf("client stage changed: %s", profile.CurrentStage)
		}
	})

	t.Run("process event routes and falls back", func(t *testing.T) {
		f := newAutomationFixture(t, date(2025, 1, 6, 9, 0))
		f.register(t, "client-1", entities.ClientStageWarrantyEnabled)
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in entities.NotificationInput) (entities.Notification, error) {
				if in.Type != entities.NotificationTypeInspectionScheduled {
					t.Fatalf("unexpected type %s", in.Type)
				}
				return entities.Notification{}, nil
			})

		res := f.uc.ProcessEvent(ctx, ClientFlowEvent{
			Type: entities.ClientEventInspectionScheduled, ClientID: "client-1", EntityID: "insp-1",
			ScheduledDate: date(2025, 5, 15, 10, 0),
		})
		if !res.Success || len(res.Actions) != 2 {
			t.Fatalf("unexpected result: %+v", res)
		}
		events := f.clients.GetEvents(ctx, "client-1")
		if last := events[len(events)-1]; last.Description != "Vistoria agendada para 15/05/2025" {
			t.Fatalf("unexpected event: %+v", last)
		}

		res = f.uc.ProcessEvent(ctx, ClientFlowEvent{Type: entities.ClientEventManualRelease, ClientID: "client-1"})
		if !res.Success || len(res.Actions) != 1 || res.Actions[0] != noAutomationConfigured {
			t.Fatalf("unexpected fallback: %+v", res)
		}
	})
}

func TestWarrantyAutomationUseCase_OnStatusChange(t *testing.T) {
	ctx := context.Background()

	t.Run("notification failure does not block audit", func(t *testing.T) {
		f := newAutomationFixture(t, date(2025, 1, 6, 9, 0))
		r, _ := f.engine.Create(ctx, newInput("Elétrica"))
		moved, err := f.engine.ChangeStatus(ctx, r.ID, entities.WarrantyStageInAnalysis, "admin", false, "")
		if err != nil {
			t.Fatalf("change status: %v", err)
		}

		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(entities.Notification{}, errors.New("boom"))
		f.audit.EXPECT().Log(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error) {
				if e.Action != entities.AuditActionStageChanged || e.Metadata["to"] != "in_analysis" {
					t.Fatalf("unexpected audit entry: %+v", e)
				}
				return e, nil
			})

		res := f.uc.OnStatusChange(ctx, moved, entities.WarrantyStageOpened, entities.WarrantyStageInAnalysis, "admin", false)
		if !res.Success || len(res.Errors) != 1 || len(res.Actions) != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
		after, _ := f.engine.GetByID(ctx, r.ID)
		if after.CurrentStage != entities.WarrantyStageInAnalysis {
			t.Fatalf("transition reverted: %s", after.CurrentStage)
		}
	})

	t.Run("client message carries the request title", func(t *testing.T) {
		f := newAutomationFixture(t, date(2025, 1, 6, 9, 0))
		r, _ := f.engine.Create(ctx, newInput("Elétrica"))
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in entities.NotificationInput) (entities.Notification, error) {
				if in.Type != entities.NotificationTypeWarrantyUpdated || !strings.HasSuffix(in.Message, " - Tomada sem energia") || in.Metadata.ActionURL != "/client/warranty" {
					t.Fatalf("unexpected notification: %+v", in)
				}
				return entities.Notification{}, nil
			})
		f.audit.EXPECT().Log(gomock.Any(), gomock.Any()).Return(entities.AuditLogEntry{}, nil)

		if _, _, err := f.uc.OnKanbanDrop(ctx, r.ID, entities.WarrantyStageOpened, entities.WarrantyStageInAnalysis, "admin"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		after, _ := f.engine.GetByID(ctx, r.ID)
		if note := after.History[len(after.History)-1].Notes; note != "Movido via Kanban de Solicitação Aberta para Em Análise" {
			t.Fatalf("unexpected note %q", note)
		}
	})

	t.Run("invalid drop runs no side effects", func(t *testing.T) {
		f := newAutomationFixture(t, date(2025, 1, 6, 9, 0))
		r, _ := f.engine.Create(ctx, newInput("Elétrica"))
		_, res, err := f.uc.OnKanbanDrop(ctx, r.ID, entities.WarrantyStageOpened, entities.WarrantyStageCompleted, "admin")
		if !errors.Is(err, ErrInvalidStageTransition) || res.Success {
			t.Fatalf("expected invalid transition, got %+v %v", res, err)
		}
	})

	t.Run("inspection completed notifies admin for decision", func(t *testing.T) {
		f := newAutomationFixture(t, date(2025, 1, 6, 9, 0))
		r, _ := f.engine.Create(ctx, newInput("Elétrica"))
		_, _ = f.engine.ChangeStatus(ctx, r.ID, entities.WarrantyStageInAnalysis, "admin", false, "")
		_, _ = f.engine.ChangeStatus(ctx, r.ID, entities.WarrantyStageInspectionScheduled, "admin", false, "")

		var recipients []string
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(2).
			DoAndReturn(func(_ context.Context, in entities.NotificationInput) (entities.Notification, error) {
				recipients = append(recipients, in.RecipientID)
				return entities.Notification{}, nil
			})
		f.audit.EXPECT().Log(gomock.Any(), gomock.Any()).Return(entities.AuditLogEntry{}, nil)

		_, res, err := f.uc.CompleteInspection(ctx, r.ID, "ok", "tech-1")
		if err != nil || len(res.Errors) != 0 {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
		if len(recipients) != 2 || recipients[0] != "client-1" || recipients[1] != "admin" {
			t.Fatalf("unexpected recipients: %v", recipients)
		}
	})
}

func TestWarrantyAutomationUseCase_RequestWarranty(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked until warranty is enabled", func(t *testing.T) {
		f := newAutomationFixture(t, date(2025, 1, 6, 9, 0))
		f.register(t, "client-1", entities.ClientStageInspectionEnabled)
		if _, _, err := f.uc.RequestWarranty(ctx, newInput("Elétrica")); !errors.Is(err, ErrWarrantyNotEnabled) {
			t.Fatalf("expected ErrWarrantyNotEnabled, got %v", err)
		}
		if got := f.engine.ListByClient(ctx, "client-1"); len(got) != 0 {
			t.Fatalf("request created while blocked")
		}
	})

	t.Run("creates request with event notification and audit", func(t *testing.T) {
		f := newAutomationFixture(t, date(2025, 1, 6, 9, 0))
		f.register(t, "client-1", entities.ClientStageWarrantyEnabled)
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(entities.Notification{}, nil)
		f.audit.EXPECT().Log(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error) {
				if e.Action != entities.AuditActionCreated || e.PerformedByRole != entities.AuditRoleClient {
					t.Fatalf("unexpected audit entry: %+v", e)
				}
				return e, nil
			})

		r, res, err := f.uc.RequestWarranty(ctx, newInput("Elétrica"))
		if err != nil || !res.Success || len(res.Errors) != 0 {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
		if r.CurrentStage != entities.WarrantyStageOpened {
			t.Fatalf("unexpected stage %s", r.CurrentStage)
		}
		events := f.clients.GetEvents(ctx, "client-1")
		if last := events[len(events)-1]; last.EventType != entities.ClientEventWarrantyRequested || last.Metadata.RelatedEntityID != r.ID {
			t.Fatalf("unexpected event: %+v", last)
		}
	})
}

func TestWarrantyAutomationUseCase_SweepSLA(t *testing.T) {
	ctx := context.Background()
	t0 := date(2025, 1, 6, 9, 0)

	f := newAutomationFixture(t, t0)
	late, _ := f.engine.Create(ctx, newInput("Elétrica"))
	_, _ = f.engine.ChangeStatus(ctx, late.ID, entities.WarrantyStageInAnalysis, "admin", false, "")
	_, _ = f.engine.Create(ctx, newInput("Elétrica"))

	t.Run("expired request alerts client and admin once", func(t *testing.T) {
		f.clock.Set(date(2025, 1, 21, 9, 0))

		var recipients []string
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(2).
			DoAndReturn(func(_ context.Context, in entities.NotificationInput) (entities.Notification, error) {
				if in.Type != entities.NotificationTypeSLAExpired || in.Metadata.RelatedEntityID != late.ID {
					t.Fatalf("unexpected notification: %+v", in)
				}
				recipients = append(recipients, in.RecipientID)
				return entities.Notification{}, nil
			})

		first := f.uc.SweepSLA(ctx)
		if first.Checked != 1 || first.ExpiredSent != 1 || first.WarningsSent != 0 {
			t.Fatalf("unexpected first report: %+v", first)
		}
		if len(recipients) != 2 || recipients[0] != "client-1" || recipients[1] != "admin" {
			t.Fatalf("unexpected recipients: %v", recipients)
		}

		second := f.uc.SweepSLA(ctx)
		if second.ExpiredSent != 0 || second.Suppressed != 1 {
			t.Fatalf("unexpected second report: %+v", second)
		}
		if got := testutil.ToFloat64(f.metrics.SLAAlerts.WithLabelValues("expired")); got != 1 {
			t.Fatalf("expected 1 expired alert metric, got %v", got)
		}
	})

	t.Run("new stage entry gets its own warning", func(t *testing.T) {
		f.clock.Set(t0)
		moved, err := f.engine.ChangeStatus(ctx, late.ID, entities.WarrantyStageInspectionScheduled, "admin", false, "")
		if err != nil {
			t.Fatalf("change status: %v", err)
		}
		deadline := CalculateDeadline(moved.StageStartedAt, moved.SLAConfig.InspectionHours)
		f.clock.Set(deadline.Add(-5 * time.Hour))

		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(1).
			DoAndReturn(func(_ context.Context, in entities.NotificationInput) (entities.Notification, error) {
				if in.Type != entities.NotificationTypeSLAWarning || in.RecipientID != "admin" {
					t.Fatalf("unexpected notification: %+v", in)
				}
				return entities.Notification{}, nil
			})

		report := f.uc.SweepSLA(ctx)
		if report.WarningsSent != 1 || report.ExpiredSent != 0 {
			t.Fatalf("unexpected report: %+v", report)
		}
		if again := f.uc.SweepSLA(ctx); again.WarningsSent != 0 || again.Suppressed != 1 {
			t.Fatalf("warning repeated: %+v", again)
		}
	})
}

func TestWarrantyAutomationUseCase_SweepSLARetriesUndelivered(t *testing.T) {
	ctx := context.Background()
	t0 := date(2025, 1, 6, 9, 0)

	t.Run("failed delivery is retried on the next sweep", func(t *testing.T) {
		f := newAutomationFixture(t, t0)
		late, _ := f.engine.Create(ctx, newInput("Elétrica"))
		_, _ = f.engine.ChangeStatus(ctx, late.ID, entities.WarrantyStageInAnalysis, "admin", false, "")
		f.clock.Set(date(2025, 1, 21, 9, 0))

		gomock.InOrder(
			f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(2).
				Return(entities.Notification{}, errors.New("dynamodb down")),
			f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(2).
				Return(entities.Notification{}, nil),
		)

		first := f.uc.SweepSLA(ctx)
		if first.ExpiredSent != 0 || first.Failures != 2 || first.Suppressed != 0 {
			t.Fatalf("unexpected first report: %+v", first)
		}
		if got := testutil.ToFloat64(f.metrics.SLAAlerts.WithLabelValues("expired")); got != 0 {
			t.Fatalf("undelivered alert counted: %v", got)
		}

		second := f.uc.SweepSLA(ctx)
		if second.ExpiredSent != 1 || second.Failures != 0 || second.Suppressed != 0 {
			t.Fatalf("unexpected second report: %+v", second)
		}

		if third := f.uc.SweepSLA(ctx); third.ExpiredSent != 0 || third.Suppressed != 1 {
			t.Fatalf("delivered alert repeated: %+v", third)
		}
	})

	t.Run("partial delivery keeps the key", func(t *testing.T) {
		f := newAutomationFixture(t, t0)
		late, _ := f.engine.Create(ctx, newInput("Elétrica"))
		_, _ = f.engine.ChangeStatus(ctx, late.ID, entities.WarrantyStageInAnalysis, "admin", false, "")
		f.clock.Set(date(2025, 1, 21, 9, 0))

		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(2).
			DoAndReturn(func(_ context.Context, in entities.NotificationInput) (entities.Notification, error) {
				if in.RecipientID == "admin" {
					return entities.Notification{}, errors.New("dynamodb down")
				}
				return entities.Notification{}, nil
			})

		first := f.uc.SweepSLA(ctx)
		if first.ExpiredSent != 1 || first.Failures != 1 {
			t.Fatalf("unexpected first report: %+v", first)
		}
		if second := f.uc.SweepSLA(ctx); second.Suppressed != 1 {
			t.Fatalf("expected suppression after partial delivery: %+v", second)
		}
	})

	t.Run("release failure is reported", func(t *testing.T) {
		f := newAutomationFixture(t, t0)
		late, _ := f.engine.Create(ctx, newInput("Elétrica"))
		_, _ = f.engine.ChangeStatus(ctx, late.ID, entities.WarrantyStageInAnalysis, "admin", false, "")
		f.clock.Set(date(2025, 1, 21, 9, 0))

		ledger := mock_interfaces.NewMockIAlertLedger(gomock.NewController(t))
		uc := NewWarrantyAutomationUseCase(f.engine, f.engine.calc, f.notifier, f.audit, f.clients,
			ledger, AutomationOptions{AdminRecipientID: "admin"}, nil, f.metrics)
		uc.now = f.clock.Now

		ledger.EXPECT().MarkOnce(gomock.Any(), gomock.Any()).Return(true, nil)
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(2).
			Return(entities.Notification{}, errors.New("dynamodb down"))
		ledger.EXPECT().Release(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		if report := uc.SweepSLA(ctx); report.Failures != 3 || report.ExpiredSent != 0 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})
}

func TestWarrantyAutomationUseCase_OnKanbanDropUnknownOrigin(t *testing.T) {
	ctx := context.Background()
	f := newAutomationFixture(t, date(2025, 1, 6, 9, 0))
	created, _ := f.engine.Create(ctx, newInput("Elétrica"))

	_, res, err := f.uc.OnKanbanDrop(ctx, created.ID, "nowhere", entities.WarrantyStageInAnalysis, "admin")
	if !errors.Is(err, ErrInvalidStage) || res.Success {
		t.Fatalf("expected ErrInvalidStage, got %v (%+v)", err, res)
	}
	if got, _ := f.engine.GetByID(ctx, created.ID); got.CurrentStage != entities.WarrantyStageOpened {
		t.Fatalf("request moved: %s", got.CurrentStage)
	}
}
