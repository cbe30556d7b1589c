package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"portal_posvenda/internal/domain/entities"
	"portal_posvenda/internal/infrastructure/logger"
	"portal_posvenda/internal/infrastructure/metrics"
	"portal_posvenda/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrWarrantyNotEnabled = errors.New("warranty module not enabled for client")

const (
	clientWarrantyURL = "/client/warranty"
	adminWarrantyURL  = "/admin/warranty"

	alertKindWarning = "warning"
	alertKindExpired = "expired"

	noAutomationConfigured = "No automation configured for this event type"
)

type AutomationOptions struct {
	AdminRecipientID      string
	WarningThresholdHours int
}

// ClientFlowEvent is an inspection or warranty event raised by the client portal.
type ClientFlowEvent struct {
	Type          entities.ClientEventType
	ClientID      string
	EntityID      string
	Reason        string
	ScheduledDate time.Time
	ItemName      string
}

type SweepReport struct {
	Checked      int `json:"checked"`
	WarningsSent int `json:"warnings_sent"`
	ExpiredSent  int `json:"expired_sent"`
	Suppressed   int `json:"suppressed"`
	Failures     int `json:"failures"`
}

// IWarrantyAutomationUseCase wraps flow engine writes with their side effects.
//
// Operations that change a request return the engine error unchanged; side
// effects never turn a committed transition into a failure.
type IWarrantyAutomationUseCase interface {
	OnStatusChange(ctx context.Context, r entities.WarrantyRequestFlow, from, to entities.WarrantyStage, changedBy string, isAutomatic bool) entities.AutomationResult
	OnKanbanDrop(ctx context.Context, id string, from, to entities.WarrantyStage, movedBy string) (entities.WarrantyRequestFlow, entities.AutomationResult, error)
	ChangeStatus(ctx context.Context, id string, to entities.WarrantyStage, changedBy, notes string) (entities.WarrantyRequestFlow, entities.AutomationResult, error)
	ScheduleInspection(ctx context.Context, id string, inspectionDate time.Time, technicianID, technicianName, scheduledBy string) (entities.WarrantyRequestFlow, entities.AutomationResult, error)
	CompleteInspection(ctx context.Context, id, notes, completedBy string) (entities.WarrantyRequestFlow, entities.AutomationResult, error)
	ApproveWarranty(ctx context.Context, id, notes, approvedBy string) (entities.WarrantyRequestFlow, entities.AutomationResult, error)
	RejectWarranty(ctx context.Context, id, reason, rejectedBy string) (entities.WarrantyRequestFlow, entities.AutomationResult, error)
	StartExecution(ctx context.Context, id, notes, startedBy string) (entities.WarrantyRequestFlow, entities.AutomationResult, error)
	CompleteWarranty(ctx context.Context, id, notes, completedBy string) (entities.WarrantyRequestFlow, entities.AutomationResult, error)
	RequestWarranty(ctx context.Context, in entities.NewWarrantyRequestInput) (entities.WarrantyRequestFlow, entities.AutomationResult, error)
	SweepSLA(ctx context.Context) SweepReport

	OnInspectionAccepted(ctx context.Context, inspectionID, clientID string) (entities.AutomationResult, error)
	OnInspectionApproved(ctx context.Context, inspectionID, clientID string) (entities.AutomationResult, error)
	OnInspectionRejected(ctx context.Context, inspectionID, clientID, reason string) entities.AutomationResult
	OnInspectionScheduled(ctx context.Context, inspectionID, clientID string, scheduledDate time.Time) entities.AutomationResult
	OnWarrantyRequested(ctx context.Context, warrantyID, clientID, itemName string) entities.AutomationResult
	OnWarrantyCompleted(ctx context.Context, warrantyID, clientID string) entities.AutomationResult
	ProcessEvent(ctx context.Context, event ClientFlowEvent) entities.AutomationResult
}

type WarrantyAutomationUseCase struct {
	flow     IWarrantyFlowUseCase
	calc     *SLACalculator
	notifier interfaces.INotifier
	audit    interfaces.IAuditLogger
	clients  interfaces.IClientStageGateway
	ledger   interfaces.IAlertLedger
	opts     AutomationOptions
	logger   *zap.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

var _ IWarrantyAutomationUseCase = (*WarrantyAutomationUseCase)(nil)

func NewWarrantyAutomationUseCase(
	flow IWarrantyFlowUseCase,
	calc *SLACalculator,
	notifier interfaces.INotifier,
	audit interfaces.IAuditLogger,
	clients interfaces.IClientStageGateway,
	ledger interfaces.IAlertLedger,
	opts AutomationOptions,
	log *zap.Logger,
	m *metrics.Metrics,
) *WarrantyAutomationUseCase {
	if opts.WarningThresholdHours <= 0 {
		opts.WarningThresholdHours = DefaultWarningThresholdHours
	}
	return &WarrantyAutomationUseCase{
		flow:     flow,
		calc:     calc,
		notifier: notifier,
		audit:    audit,
		clients:  clients,
		ledger:   ledger,
		opts:     opts,
		logger:   logger.OrNop(log),
		metrics:  m,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// step runs one best-effort side effect. A failure is logged and recorded in res.
func (u *WarrantyAutomationUseCase) step(res *entities.AutomationResult, name, action string, fn func() error) {
	if err := fn(); err != nil {
		u.logger.Warn("[automation][usecase] step failed", zap.String("step", name), zap.Error(err))
		u.metrics.ObserveStepFailure(name)
		res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", name, err))
		return
	}
	res.Actions = append(res.Actions, action)
}

func auditActionFor(stage entities.WarrantyStage) entities.AuditAction {
	switch stage {
	case entities.WarrantyStageInspectionScheduled:
		return entities.AuditActionScheduled
	case entities.WarrantyStageApproved:
		return entities.AuditActionAccepted
	case entities.WarrantyStageRejected:
		return entities.AuditActionRejected
	case entities.WarrantyStageCompleted:
		return entities.AuditActionCompleted
	}
	return entities.AuditActionStageChanged
}

func roleFor(r entities.WarrantyRequestFlow, actor string) entities.AuditRole {
	if actor != "" && actor == r.ClientID {
		return entities.AuditRoleClient
	}
	return entities.AuditRoleAdmin
}

// OnStatusChange emits the notification, audit entry and stage hooks for a committed transition.
func (u *WarrantyAutomationUseCase) OnStatusChange(ctx context.Context, r entities.WarrantyRequestFlow, from, to entities.WarrantyStage, changedBy string, isAutomatic bool) entities.AutomationResult {
	res := entities.AutomationResult{Success: true, Actions: []string{}}

	if tpl, ok := entities.StageNotification(to); ok && tpl.ForClient {
		u.step(&res, "notify_client", "Notificação enviada ao cliente", func() error {
			_, err := u.notifier.Notify(ctx, entities.NotificationInput{
				RecipientID: r.ClientID,
				Type:        tpl.ClientType,
				Title:       tpl.Title,
				Message:     tpl.Message + " - " + r.Title,
				Metadata: entities.NotificationMetadata{
					RelatedEntityID:   r.ID,
					RelatedEntityType: entities.RelatedEntityWarranty,
					ActionURL:         clientWarrantyURL,
				},
			})
			return err
		})
	}

	u.step(&res, "audit", "Log de auditoria registrado", func() error {
		_, err := u.audit.Log(ctx, entities.AuditLogEntry{
			EntityType:      entities.AuditEntityWarranty,
			EntityID:        r.ID,
			Action:          auditActionFor(to),
			PerformedBy:     changedBy,
			PerformedByName: changedBy,
			PerformedByRole: roleFor(r, changedBy),
			Details:         fmt.Sprintf("Etapa alterada de %s para %s", from.Label(), to.Label()),
			Metadata: map[string]string{
				"from":         string(from),
				"to":           string(to),
				"is_automatic": strconv.FormatBool(isAutomatic),
			},
		})
		return err
	})

	switch to {
	case entities.WarrantyStageInspectionCompleted:
		u.step(&res, "notify_admin_decision", "Administrador notificado para decisão", func() error {
			_, err := u.notifier.Notify(ctx, entities.NotificationInput{
				RecipientID: u.opts.AdminRecipientID,
				Type:        entities.NotificationTypeWarrantyUpdated,
				Title:       "Decisão Necessária",
				Message:     "Vistoria realizada aguardando aprovação ou reprovação - " + r.Title,
				Metadata: entities.NotificationMetadata{
					RelatedEntityID:   r.ID,
					RelatedEntityType: entities.RelatedEntityWarranty,
					ActionURL:         adminWarrantyURL,
				},
			})
			return err
		})
	case entities.WarrantyStageCompleted:
		u.step(&res, "client_event", "Evento registrado no histórico", func() error {
			_, err := u.clients.AddEvent(ctx, entities.ClientEvent{
				ClientID:    r.ClientID,
				EventType:   entities.ClientEventWarrantyCompleted,
				Title:       "Garantia Concluída",
				Description: "Solicitação de garantia concluída com sucesso",
				Metadata: entities.ClientEventMetadata{
					RelatedEntityID:   r.ID,
					RelatedEntityType: entities.RelatedEntityWarranty,
					PerformedBy:       changedBy,
					IsAutomatic:       true,
				},
			})
			return err
		})
	}

	u.logger.Info("[automation][usecase] status change processed",
		zap.String("request_id", r.ID),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
		zap.Int("actions", len(res.Actions)),
		zap.Int("errors", len(res.Errors)),
	)
	return res
}

// afterTransition runs OnStatusChange for a request the engine just moved.
// The origin stage is read from the history entry the engine appended.
func (u *WarrantyAutomationUseCase) afterTransition(ctx context.Context, r entities.WarrantyRequestFlow, err error, changedBy string) (entities.WarrantyRequestFlow, entities.AutomationResult, error) {
	if err != nil {
		return entities.WarrantyRequestFlow{}, entities.AutomationResult{Success: false, Errors: []string{err.Error()}}, err
	}
	last := r.History[len(r.History)-1]
	var from entities.WarrantyStage
	if last.FromStatus != nil {
		from = *last.FromStatus
	}
	return r, u.OnStatusChange(ctx, r, from, r.CurrentStage, changedBy, last.IsAutomatic), nil
}

func (u *WarrantyAutomationUseCase) OnKanbanDrop(ctx context.Context, id string, from, to entities.WarrantyStage, movedBy string) (entities.WarrantyRequestFlow, entities.AutomationResult, error) {
	if !from.IsValid() {
		err := fmt.Errorf("%w: %q", ErrInvalidStage, from)
		return entities.WarrantyRequestFlow{}, entities.AutomationResult{Success: false, Errors: []string{err.Error()}}, err
	}
	notes := fmt.Sprintf("Movido via Kanban de %s para %s", from.Label(), to.Label())
	r, err := u.flow.ChangeStatus(ctx, id, to, movedBy, false, notes)
	return u.afterTransition(ctx, r, err, movedBy)
}

func (u *WarrantyAutomationUseCase) ChangeStatus(ctx context.Context, id string, to entities.WarrantyStage, changedBy, notes string) (entities.WarrantyRequestFlow, entities.AutomationResult, error) {
	r, err := u.flow.ChangeStatus(ctx, id, to, changedBy, false, notes)
	return u.afterTransition(ctx, r, err, changedBy)
}

func (u *WarrantyAutomationUseCase) ScheduleInspection(ctx context.Context, id string, inspectionDate time.Time, technicianID, technicianName, scheduledBy string) (entities.WarrantyRequestFlow, entities.AutomationResult, error) {
	r, err := u.flow.ScheduleInspection(ctx, id, inspectionDate, technicianID, technicianName, scheduledBy)
	return u.afterTransition(ctx, r, err, scheduledBy)
}

func (u *WarrantyAutomationUseCase) CompleteInspection(ctx context.Context, id, notes, completedBy string) (entities.WarrantyRequestFlow, entities.AutomationResult, error) {
	r, err := u.flow.CompleteInspection(ctx, id, notes, completedBy)
	return u.afterTransition(ctx, r, err, completedBy)
}

func (u *WarrantyAutomationUseCase) ApproveWarranty(ctx context.Context, id, notes, approvedBy string) (entities.WarrantyRequestFlow, entities.AutomationResult, error) {
	r, err := u.flow.ApproveWarranty(ctx, id, notes, approvedBy)
	return u.afterTransition(ctx, r, err, approvedBy)
}

func (u *WarrantyAutomationUseCase) RejectWarranty(ctx context.Context, id, reason, rejectedBy string) (entities.WarrantyRequestFlow, entities.AutomationResult, error) {
	r, err := u.flow.RejectWarranty(ctx, id, reason, rejectedBy)
	return u.afterTransition(ctx, r, err, rejectedBy)
}

func (u *WarrantyAutomationUseCase) StartExecution(ctx context.Context, id, notes, startedBy string) (entities.WarrantyRequestFlow, entities.AutomationResult, error) {
	r, err := u.flow.StartExecution(ctx, id, notes, startedBy)
	return u.afterTransition(ctx, r, err, startedBy)
}

func (u *WarrantyAutomationUseCase) CompleteWarranty(ctx context.Context, id, notes, completedBy string) (entities.WarrantyRequestFlow, entities.AutomationResult, error) {
	r, err := u.flow.CompleteWarranty(ctx, id, notes, completedBy)
	return u.afterTransition(ctx, r, err, completedBy)
}

// RequestWarranty opens a request for a client whose warranty module is enabled.
func (u *WarrantyAutomationUseCase) RequestWarranty(ctx context.Context, in entities.NewWarrantyRequestInput) (entities.WarrantyRequestFlow, entities.AutomationResult, error) {
	perms, err := u.clients.GetPermissions(ctx, in.ClientID)
	if err != nil {
		return entities.WarrantyRequestFlow{}, entities.AutomationResult{Errors: []string{err.Error()}}, err
	}
	if !perms.CanRequestWarranty {
		u.logger.Info("[automation][usecase] request-warranty blocked", zap.String("client_id", in.ClientID))
		return entities.WarrantyRequestFlow{}, entities.AutomationResult{Errors: []string{ErrWarrantyNotEnabled.Error()}}, ErrWarrantyNotEnabled
	}

	r, err := u.flow.Create(ctx, in)
	if err != nil {
		return entities.WarrantyRequestFlow{}, entities.AutomationResult{Errors: []string{err.Error()}}, err
	}

	res := u.OnWarrantyRequested(ctx, r.ID, r.ClientID, r.Title)
	createdBy := r.History[0].ChangedBy
	u.step(&res, "audit", "Log de auditoria registrado", func() error {
		_, err := u.audit.Log(ctx, entities.AuditLogEntry{
			EntityType:      entities.AuditEntityWarranty,
			EntityID:        r.ID,
			Action:          entities.AuditActionCreated,
			PerformedBy:     createdBy,
			PerformedByName: r.ClientName,
			PerformedByRole: roleFor(r, createdBy),
			Details:         fmt.Sprintf("Solicitação de garantia criada: %s (%s)", r.Title, r.Category),
		})
		return err
	})
	return r, res, nil
}

func alertKey(r entities.WarrantyRequestFlow, kind string) string {
	return fmt.Sprintf("%s:%s:%s:%s", r.ID, r.CurrentStage, r.StageStartedAt.UTC().Format(time.RFC3339Nano), kind)
}

// SweepSLA sends warning and expiry alerts for requests still running against a budget.
// Each alert is sent at most once per stage entry.
func (u *WarrantyAutomationUseCase) SweepSLA(ctx context.Context) SweepReport {
	started := time.Now()
	defer u.metrics.ObserveSweep(started)

	now := u.now()
	var candidates []entities.WarrantyRequestFlow
	for _, r := range u.flow.List(ctx, entities.WarrantyFilters{}) {
		if r.IsFinal() || u.calc.StageBudget(r) <= 0 {
			continue
		}
		candidates = append(candidates, r)
	}

	report := SweepReport{Checked: len(candidates)}
	for _, r := range u.calc.CheckExpiredSLAs(candidates, now) {
		u.alert(ctx, r, alertKindExpired, entities.WarrantyNotificationSLAExpired, &report)
	}
	for _, r := range u.calc.CheckSLAWarnings(candidates, u.opts.WarningThresholdHours, now) {
		u.alert(ctx, r, alertKindWarning, entities.WarrantyNotificationSLAWarning, &report)
	}

	u.logger.Info("[automation][usecase] sla sweep finished",
		zap.Int("checked", report.Checked),
		zap.Int("warnings_sent", report.WarningsSent),
		zap.Int("expired_sent", report.ExpiredSent),
		zap.Int("suppressed", report.Suppressed),
		zap.Int("failures", report.Failures),
	)
	return report
}

func (u *WarrantyAutomationUseCase) alert(ctx context.Context, r entities.WarrantyRequestFlow, kind string, typ entities.WarrantyNotificationType, report *SweepReport) {
	key := alertKey(r, kind)
	first, err := u.ledger.MarkOnce(ctx, key)
	if err != nil {
		u.logger.Error("[automation][usecase] alert ledger unavailable", zap.String("request_id", r.ID), zap.Error(err))
		report.Failures++
		return
	}
	if !first {
		report.Suppressed++
		return
	}

	tpl, _ := typ.Template()
	delivered := 0
	send := func(recipient, url string) {
		_, err := u.notifier.Notify(ctx, entities.NotificationInput{
			RecipientID: recipient,
			Type:        tpl.ClientType,
			Title:       tpl.Title,
			Message:     tpl.Message + " - " + r.Title,
			Metadata: entities.NotificationMetadata{
				RelatedEntityID:   r.ID,
				RelatedEntityType: entities.RelatedEntityWarranty,
				ActionURL:         url,
			},
		})
		if err != nil {
			u.logger.Warn("[automation][usecase] sla alert not delivered",
				zap.String("request_id", r.ID), zap.String("kind", kind), zap.String("recipient_id", recipient), zap.Error(err))
			u.metrics.ObserveStepFailure("sla_" + kind)
			report.Failures++
			return
		}
		delivered++
	}
	if tpl.ForClient {
		send(r.ClientID, clientWarrantyURL)
	}
	if tpl.ForAdmin {
		send(u.opts.AdminRecipientID, adminWarrantyURL)
	}

	if delivered == 0 {
		// nothing reached anyone: free the key so the next sweep retries
		if err := u.ledger.Release(ctx, key); err != nil {
			u.logger.Error("[automation][usecase] alert ledger release failed", zap.String("request_id", r.ID), zap.Error(err))
			report.Failures++
		}
		return
	}

	u.metrics.ObserveSLAAlert(kind)
	if kind == alertKindExpired {
		report.ExpiredSent++
	} else {
		report.WarningsSent++
	}
}

// unlockWarranty advances the client to warranty_enabled, then records the
// event, notifications and audit entry. A failed advance stops the sequence.
func (u *WarrantyAutomationUseCase) unlockWarranty(ctx context.Context, inspectionID, clientID, reason, changedBy, eventTitle, eventDescription string, audit entities.AuditLogEntry) (entities.AutomationResult, error) {
	res := entities.AutomationResult{Actions: []string{}}

	if _, err := u.clients.AdvanceStage(ctx, clientID, entities.ClientStageWarrantyEnabled, reason, changedBy, true); err != nil {
		u.logger.Warn("[automation][usecase] client stage advance failed",
			zap.String("client_id", clientID), zap.String("inspection_id", inspectionID), zap.Error(err))
		res.Errors = append(res.Errors, err.Error())
		return res, err
	}
	res.Success = true
	res.Actions = append(res.Actions, `Etapa do cliente atualizada para "Garantia Liberada"`)

	u.step(&res, "client_event", "Evento registrado no histórico", func() error {
		_, err := u.clients.AddEvent(ctx, entities.ClientEvent{
			ClientID:    clientID,
			EventType:   entities.ClientEventInspectionApproved,
			Title:       eventTitle,
			Description: eventDescription,
			Metadata: entities.ClientEventMetadata{
				RelatedEntityID:   inspectionID,
				RelatedEntityType: entities.RelatedEntityInspection,
				IsAutomatic:       true,
			},
		})
		return err
	})
	u.step(&res, "notify_inspection_approved", "Notificação de vistoria aprovada criada", func() error {
		_, err := u.notifier.Notify(ctx, entities.NotificationInput{
			RecipientID: clientID,
			Type:        entities.NotificationTypeInspectionApproved,
			Metadata:    entities.NotificationMetadata{RelatedEntityID: inspectionID, RelatedEntityType: entities.RelatedEntityInspection},
		})
		return err
	})
	u.step(&res, "notify_warranty_enabled", "Notificação de garantia liberada criada", func() error {
		_, err := u.notifier.Notify(ctx, entities.NotificationInput{
			RecipientID: clientID,
			Type:        entities.NotificationTypeWarrantyEnabled,
			Metadata:    entities.NotificationMetadata{RelatedEntityType: entities.RelatedEntityStage},
		})
		return err
	})
	u.step(&res, "audit", "Log de auditoria registrado", func() error {
		_, err := u.audit.Log(ctx, audit)
		return err
	})
	return res, nil
}

func (u *WarrantyAutomationUseCase) OnInspectionAccepted(ctx context.Context, inspectionID, clientID string) (entities.AutomationResult, error) {
	return u.unlockWarranty(ctx, inspectionID, clientID,
		"Vistoria aceita pelo cliente - Garantia liberada automaticamente", "Cliente",
		"Vistoria Aceita pelo Cliente", "O cliente aceitou a vistoria e confirmou as condições do imóvel.",
		entities.AuditLogEntry{
			EntityType:      entities.AuditEntityInspection,
			EntityID:        inspectionID,
			Action:          entities.AuditActionAccepted,
			PerformedBy:     clientID,
			PerformedByName: "Cliente",
			PerformedByRole: entities.AuditRoleClient,
			Details:         "Vistoria aceita pelo cliente. Módulo de garantias liberado.",
		})
}

func (u *WarrantyAutomationUseCase) OnInspectionApproved(ctx context.Context, inspectionID, clientID string) (entities.AutomationResult, error) {
	return u.unlockWarranty(ctx, inspectionID, clientID,
		"Vistoria aprovada - Garantia liberada automaticamente", "Sistema",
		"Vistoria Aprovada", "A vistoria foi aprovada pela equipe técnica",
		entities.AuditLogEntry{
			EntityType:      entities.AuditEntityInspection,
			EntityID:        inspectionID,
			Action:          entities.AuditActionAccepted,
			PerformedBy:     u.opts.AdminRecipientID,
			PerformedByName: "Sistema",
			PerformedByRole: entities.AuditRoleAdmin,
			Details:         "Vistoria aprovada pela equipe técnica. Módulo de garantias liberado.",
		})
}

// OnInspectionRejected keeps the client at its current stage.
func (u *WarrantyAutomationUseCase) OnInspectionRejected(ctx context.Context, inspectionID, clientID, reason string) entities.AutomationResult {
	res := entities.AutomationResult{Success: true, Actions: []string{"Cliente mantido na etapa atual"}}

	description := reason
	if description == "" {
		description = "A vistoria identificou itens que precisam de ajustes"
	}
	u.step(&res, "client_event", "Evento registrado no histórico", func() error {
		_, err := u.clients.AddEvent(ctx, entities.ClientEvent{
			ClientID:    clientID,
			EventType:   entities.ClientEventInspectionRejected,
			Title:       "Vistoria com Pendências",
			Description: description,
			Metadata: entities.ClientEventMetadata{
				RelatedEntityID:   inspectionID,
				RelatedEntityType: entities.RelatedEntityInspection,
				IsAutomatic:       true,
			},
		})
		return err
	})
	u.step(&res, "notify_inspection_rejected", "Notificação de pendência criada", func() error {
		_, err := u.notifier.Notify(ctx, entities.NotificationInput{
			RecipientID: clientID,
			Type:        entities.NotificationTypeInspectionRejected,
			Metadata:    entities.NotificationMetadata{RelatedEntityID: inspectionID, RelatedEntityType: entities.RelatedEntityInspection},
		})
		return err
	})

	motive := reason
	if motive == "" {
		motive = "Não informado"
	}
	u.step(&res, "audit", "Log de auditoria registrado", func() error {
		_, err := u.audit.Log(ctx, entities.AuditLogEntry{
			EntityType:      entities.AuditEntityInspection,
			EntityID:        inspectionID,
			Action:          entities.AuditActionRejected,
			PerformedBy:     clientID,
			PerformedByName: "Cliente",
			PerformedByRole: entities.AuditRoleClient,
			Details:         "Vistoria recusada pelo cliente. Motivo: " + motive,
		})
		return err
	})
	return res
}

// clientEventWithNotification records a client event and sends one notification.
func (u *WarrantyAutomationUseCase) clientEventWithNotification(ctx context.Context, event entities.ClientEvent, typ entities.NotificationType, notifyAction string) entities.AutomationResult {
	res := entities.AutomationResult{Success: true, Actions: []string{}}
	u.step(&res, "client_event", "Evento registrado no histórico", func() error {
		_, err := u.clients.AddEvent(ctx, event)
		return err
	})
	u.step(&res, "notify_"+string(typ), notifyAction, func() error {
		_, err := u.notifier.Notify(ctx, entities.NotificationInput{
			RecipientID: event.ClientID,
			Type:        typ,
			Metadata: entities.NotificationMetadata{
				RelatedEntityID:   event.Metadata.RelatedEntityID,
				RelatedEntityType: event.Metadata.RelatedEntityType,
			},
		})
		return err
	})
	return res
}

func (u *WarrantyAutomationUseCase) OnInspectionScheduled(ctx context.Context, inspectionID, clientID string, scheduledDate time.Time) entities.AutomationResult {
	return u.clientEventWithNotification(ctx, entities.ClientEvent{
		ClientID:    clientID,
		EventType:   entities.ClientEventInspectionScheduled,
		Title:       "Vistoria Agendada",
		Description: "Vistoria agendada para " + scheduledDate.Format("02/01/2006"),
		Metadata: entities.ClientEventMetadata{
			RelatedEntityID:   inspectionID,
			RelatedEntityType: entities.RelatedEntityInspection,
			IsAutomatic:       true,
		},
	}, entities.NotificationTypeInspectionScheduled, "Notificação de agendamento criada")
}

func (u *WarrantyAutomationUseCase) OnWarrantyRequested(ctx context.Context, warrantyID, clientID, itemName string) entities.AutomationResult {
	return u.clientEventWithNotification(ctx, entities.ClientEvent{
		ClientID:    clientID,
		EventType:   entities.ClientEventWarrantyRequested,
		Title:       "Solicitação de Garantia",
		Description: "Nova solicitação de garantia para: " + itemName,
		Metadata: entities.ClientEventMetadata{
			RelatedEntityID:   warrantyID,
			RelatedEntityType: entities.RelatedEntityWarranty,
			IsAutomatic:       true,
		},
	}, entities.NotificationTypeWarrantyCreated, "Notificação de solicitação criada")
}

func (u *WarrantyAutomationUseCase) OnWarrantyCompleted(ctx context.Context, warrantyID, clientID string) entities.AutomationResult {
	return u.clientEventWithNotification(ctx, entities.ClientEvent{
		ClientID:    clientID,
		EventType:   entities.ClientEventWarrantyCompleted,
		Title:       "Garantia Concluída",
		Description: "Solicitação de garantia concluída com sucesso",
		Metadata: entities.ClientEventMetadata{
			RelatedEntityID:   warrantyID,
			RelatedEntityType: entities.RelatedEntityWarranty,
			IsAutomatic:       true,
		},
	}, entities.NotificationTypeWarrantyCompleted, "Notificação de conclusão criada")
}

// ProcessEvent routes a client portal event to its automation.
func (u *WarrantyAutomationUseCase) ProcessEvent(ctx context.Context, event ClientFlowEvent) entities.AutomationResult {
	switch event.Type {
	case entities.ClientEventInspectionApproved:
		res, _ := u.OnInspectionApproved(ctx, event.EntityID, event.ClientID)
		return res
	case entities.ClientEventInspectionRejected:
		return u.OnInspectionRejected(ctx, event.EntityID, event.ClientID, event.Reason)
	case entities.ClientEventInspectionScheduled:
		return u.OnInspectionScheduled(ctx, event.EntityID, event.ClientID, event.ScheduledDate)
	case entities.ClientEventWarrantyRequested:
		return u.OnWarrantyRequested(ctx, event.EntityID, event.ClientID, event.ItemName)
	case entities.ClientEventWarrantyCompleted:
		return u.OnWarrantyCompleted(ctx, event.EntityID, event.ClientID)
	}
	return entities.AutomationResult{Success: true, Actions: []string{noAutomationConfigured}}
}
