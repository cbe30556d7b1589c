package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"portal_posvenda/internal/domain/entities"
	"portal_posvenda/internal/infrastructure/logger"
	"portal_posvenda/internal/infrastructure/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrWarrantyRequestNotFound = errors.New("warranty request not found")
	ErrRequestAlreadyFinal     = errors.New("warranty request already final")
	ErrInvalidStageTransition  = errors.New("invalid stage transition")
	ErrInvalidRequestInput     = errors.New("invalid warranty request input")
	ErrInvalidPriority         = errors.New("invalid priority")
	ErrInvalidStage            = errors.New("invalid warranty stage")
)

// TransitionError describes a rejected stage change. It matches ErrInvalidStageTransition.
type TransitionError struct {
	From entities.WarrantyStage
	To   entities.WarrantyStage
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidStageTransition, e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidStageTransition }

// Localized renders the message shown to portal users.
func (e *TransitionError) Localized() string {
	return fmt.Sprintf("Transição inválida de %s para %s", e.From.Label(), e.To.Label())
}

// IWarrantyFlowUseCase owns warranty requests and their stage machine.
//
// Every mutation goes through the stage registry; reads return copies that
// may be stale by the time the caller uses them.
type IWarrantyFlowUseCase interface {
	Create(ctx context.Context, in entities.NewWarrantyRequestInput) (entities.WarrantyRequestFlow, error)
	GetByID(ctx context.Context, id string) (entities.WarrantyRequestFlow, error)
	List(ctx context.Context, filters entities.WarrantyFilters) []entities.WarrantyRequestFlow
	ListByClient(ctx context.Context, clientID string) []entities.WarrantyRequestFlow
	ListByStage(ctx context.Context, stage entities.WarrantyStage) []entities.WarrantyRequestFlow
	Timeline(ctx context.Context, id string) ([]entities.WarrantyStatusHistory, error)
	SLAInfo(ctx context.Context, id string) (entities.SLADeadlineInfo, error)
	AssignTechnician(ctx context.Context, id, technicianID, technicianName, assignedBy string) (entities.WarrantyRequestFlow, error)

	ChangeStatus(ctx context.Context, id string, to entities.WarrantyStage, changedBy string, isAutomatic bool, notes string) (entities.WarrantyRequestFlow, error)
	ScheduleInspection(ctx context.Context, id string, inspectionDate time.Time, technicianID, technicianName, scheduledBy string) (entities.WarrantyRequestFlow, error)
	CompleteInspection(ctx context.Context, id, notes, completedBy string) (entities.WarrantyRequestFlow, error)
	ApproveWarranty(ctx context.Context, id, notes, approvedBy string) (entities.WarrantyRequestFlow, error)
	RejectWarranty(ctx context.Context, id, reason, rejectedBy string) (entities.WarrantyRequestFlow, error)
	StartExecution(ctx context.Context, id, notes, startedBy string) (entities.WarrantyRequestFlow, error)
	CompleteWarranty(ctx context.Context, id, notes, completedBy string) (entities.WarrantyRequestFlow, error)

	KanbanData(ctx context.Context) []entities.KanbanColumn
	CalculateMetrics(ctx context.Context) entities.WarrantyMetrics
}

type snapshotPublisher interface {
	Publish(r entities.WarrantyRequestFlow)
}

type stamper func(r *entities.WarrantyRequestFlow, now time.Time)

// WarrantyFlowUseCase keeps requests in memory.
//
// Writers on the same request id are serialized by a per-id lock. Stored
// records are never mutated in place: a writer builds a new copy and swaps
// it in, so readers only need the map lock.
type WarrantyFlowUseCase struct {
	configs   slaConfigSource
	calc      *SLACalculator
	publisher snapshotPublisher
	logger    *zap.Logger
	metrics   *metrics.Metrics
	now       func() time.Time

	mu       sync.RWMutex
	requests map[string]*entities.WarrantyRequestFlow
	ordering []string
	locks    keyedMutex
}

var _ IWarrantyFlowUseCase = (*WarrantyFlowUseCase)(nil)

func NewWarrantyFlowUseCase(configs slaConfigSource, calc *SLACalculator, publisher snapshotPublisher, log *zap.Logger, m *metrics.Metrics) *WarrantyFlowUseCase {
	return &WarrantyFlowUseCase{
		configs:   configs,
		calc:      calc,
		publisher: publisher,
		logger:    logger.OrNop(log),
		metrics:   m,
		now:       func() time.Time { return time.Now().UTC() },
		requests:  make(map[string]*entities.WarrantyRequestFlow),
	}
}

// Restore loads previously persisted requests. Records with an unknown stage are skipped.
func (u *WarrantyFlowUseCase) Restore(requests []entities.WarrantyRequestFlow) int {
	sorted := make([]entities.WarrantyRequestFlow, len(requests))
	copy(sorted, requests)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreatedAt.Before(sorted[j].CreatedAt) })

	loaded := 0
	for _, r := range sorted {
		if r.ID == "" || !r.CurrentStage.IsValid() {
			u.logger.Warn("[warranty][usecase] restore skipped invalid record", zap.String("request_id", r.ID))
			continue
		}
		c := r.Clone()
		u.store(&c)
		loaded++
	}
	return loaded
}

func (u *WarrantyFlowUseCase) Create(_ context.Context, in entities.NewWarrantyRequestInput) (entities.WarrantyRequestFlow, error) {
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.PropertyID = strings.TrimSpace(in.PropertyID)
	in.Category = strings.TrimSpace(in.Category)
	in.Title = strings.TrimSpace(in.Title)

	switch {
	case in.ClientID == "":
		return entities.WarrantyRequestFlow{}, fmt.Errorf("%w: client_id is required", ErrInvalidRequestInput)
	case in.PropertyID == "":
		return entities.WarrantyRequestFlow{}, fmt.Errorf("%w: property_id is required", ErrInvalidRequestInput)
	case in.Category == "":
		return entities.WarrantyRequestFlow{}, fmt.Errorf("%w: category is required", ErrInvalidRequestInput)
	case in.Title == "":
		return entities.WarrantyRequestFlow{}, fmt.Errorf("%w: title is required", ErrInvalidRequestInput)
	}
	if in.Priority == "" {
		in.Priority = entities.PriorityMedium
	}
	if !in.Priority.IsValid() {
		return entities.WarrantyRequestFlow{}, fmt.Errorf("%w: %q", ErrInvalidPriority, in.Priority)
	}
	createdBy := strings.TrimSpace(in.CreatedBy)
	if createdBy == "" {
		createdBy = in.ClientID
	}

	now := u.now()
	id := uuid.NewString()
	r := entities.WarrantyRequestFlow{
		ID:             id,
		ClientID:       in.ClientID,
		ClientName:     in.ClientName,
		PropertyID:     in.PropertyID,
		PropertyName:   in.PropertyName,
		UnitNumber:     in.UnitNumber,
		Title:          in.Title,
		Description:    in.Description,
		Category:       in.Category,
		Priority:       in.Priority,
		CurrentStage:   entities.WarrantyStageOpened,
		StageStartedAt: now,
		CreatedAt:      now,
		UpdatedAt:      now,
		SLAConfig:      u.configs.Get(in.Category),
		History: []entities.WarrantyStatusHistory{{
			ID:        uuid.NewString(),
			RequestID: id,
			ToStatus:  entities.WarrantyStageOpened,
			ChangedAt: now,
			ChangedBy: createdBy,
			Notes:     "Solicitação criada",
		}},
	}
	u.refreshSLA(&r, now)
	u.store(&r)
	u.publish(r)

	u.logger.Info("[warranty][usecase] create success",
		zap.String("request_id", id),
		zap.String("client_id", r.ClientID),
		zap.String("category", r.Category),
	)
	return r.Clone(), nil
}

func (u *WarrantyFlowUseCase) GetByID(_ context.Context, id string) (entities.WarrantyRequestFlow, error) {
	r, ok := u.load(strings.TrimSpace(id))
	if !ok {
		return entities.WarrantyRequestFlow{}, ErrWarrantyRequestNotFound
	}
	return r.Clone(), nil
}

func (u *WarrantyFlowUseCase) List(_ context.Context, f entities.WarrantyFilters) []entities.WarrantyRequestFlow {
	now := u.now()
	search := strings.ToLower(strings.TrimSpace(f.Search))

	var out []entities.WarrantyRequestFlow
	for _, r := range u.snapshot() {
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		if f.PropertyID != "" && r.PropertyID != f.PropertyID {
			continue
		}
		if f.Category != "" && r.Category != f.Category {
			continue
		}
		if f.Priority != "" && r.Priority != f.Priority {
			continue
		}
		if f.AssignedTo != "" && r.AssignedTo != f.AssignedTo {
			continue
		}
		if f.DateFrom != nil && r.CreatedAt.Before(*f.DateFrom) {
			continue
		}
		if f.DateTo != nil && r.CreatedAt.After(*f.DateTo) {
			continue
		}
		if f.SLAStatus != "" && u.calc.DeadlineInfo(r, now).Status != f.SLAStatus {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesSearch(r entities.WarrantyRequestFlow, term string) bool {
	for _, field := range []string{r.Title, r.Description, r.ClientName, r.ID} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func (u *WarrantyFlowUseCase) ListByClient(_ context.Context, clientID string) []entities.WarrantyRequestFlow {
	var out []entities.WarrantyRequestFlow
	for _, r := range u.snapshot() {
		if r.ClientID == clientID {
			out = append(out, r)
		}
	}
	return out
}

func (u *WarrantyFlowUseCase) ListByStage(_ context.Context, stage entities.WarrantyStage) []entities.WarrantyRequestFlow {
	var out []entities.WarrantyRequestFlow
	for _, r := range u.snapshot() {
		if r.CurrentStage == stage {
			out = append(out, r)
		}
	}
	return out
}

// Timeline returns the request history ordered by change time.
func (u *WarrantyFlowUseCase) Timeline(ctx context.Context, id string) ([]entities.WarrantyStatusHistory, error) {
	r, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	history := r.History
	sort.SliceStable(history, func(i, j int) bool { return history[i].ChangedAt.Before(history[j].ChangedAt) })
	return history, nil
}

func (u *WarrantyFlowUseCase) SLAInfo(ctx context.Context, id string) (entities.SLADeadlineInfo, error) {
	r, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.SLADeadlineInfo{}, err
	}
	return u.calc.DeadlineInfo(r, u.now()), nil
}

// AssignTechnician sets the responsible technician. It is not a stage change.
func (u *WarrantyFlowUseCase) AssignTechnician(_ context.Context, id, technicianID, technicianName, assignedBy string) (entities.WarrantyRequestFlow, error) {
	id = strings.TrimSpace(id)
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return entities.WarrantyRequestFlow{}, fmt.Errorf("%w: technician_id is required", ErrInvalidRequestInput)
	}

	unlock := u.locks.Lock(id)
	defer unlock()

	current, ok := u.load(id)
	if !ok {
		return entities.WarrantyRequestFlow{}, ErrWarrantyRequestNotFound
	}
	next := current.Clone()
	next.AssignedTo = technicianID
	next.AssignedToName = technicianName
	next.UpdatedAt = u.now()
	u.store(&next)
	u.publish(next)

	u.logger.Info("[warranty][usecase] technician assigned",
		zap.String("request_id", id),
		zap.String("technician_id", technicianID),
		zap.String("assigned_by", assignedBy),
	)
	return next.Clone(), nil
}

func (u *WarrantyFlowUseCase) ChangeStatus(_ context.Context, id string, to entities.WarrantyStage, changedBy string, isAutomatic bool, notes string) (entities.WarrantyRequestFlow, error) {
	return u.transition(id, to, changedBy, isAutomatic, notes, nil)
}

func (u *WarrantyFlowUseCase) ScheduleInspection(_ context.Context, id string, inspectionDate time.Time, technicianID, technicianName, scheduledBy string) (entities.WarrantyRequestFlow, error) {
	if inspectionDate.IsZero() {
		return entities.WarrantyRequestFlow{}, fmt.Errorf("%w: inspection date is required", ErrInvalidRequestInput)
	}
	notes := fmt.Sprintf("Vistoria agendada para %s", inspectionDate.Format("02/01/2006"))
	return u.transition(id, entities.WarrantyStageInspectionScheduled, scheduledBy, false, notes, func(r *entities.WarrantyRequestFlow, _ time.Time) {
		r.Details.Inspection = &entities.InspectionDetails{
			ScheduledFor:   inspectionDate,
			TechnicianID:   technicianID,
			TechnicianName: technicianName,
		}
	})
}

func (u *WarrantyFlowUseCase) CompleteInspection(_ context.Context, id, notes, completedBy string) (entities.WarrantyRequestFlow, error) {
	return u.transition(id, entities.WarrantyStageInspectionCompleted, completedBy, false, notes, func(r *entities.WarrantyRequestFlow, _ time.Time) {
		if r.Details.Inspection == nil {
			r.Details.Inspection = &entities.InspectionDetails{}
		}
		r.Details.Inspection.Notes = notes
	})
}

func (u *WarrantyFlowUseCase) ApproveWarranty(_ context.Context, id, notes, approvedBy string) (entities.WarrantyRequestFlow, error) {
	return u.transition(id, entities.WarrantyStageApproved, approvedBy, false, notes, func(r *entities.WarrantyRequestFlow, now time.Time) {
		r.Details.Decision = entities.ApprovalDecision{ApprovedAt: now, Notes: notes}
	})
}

func (u *WarrantyFlowUseCase) RejectWarranty(_ context.Context, id, reason, rejectedBy string) (entities.WarrantyRequestFlow, error) {
	return u.transition(id, entities.WarrantyStageRejected, rejectedBy, false, reason, func(r *entities.WarrantyRequestFlow, now time.Time) {
		r.Details.Decision = entities.RejectionDecision{RejectedAt: now, Reason: reason}
	})
}

func (u *WarrantyFlowUseCase) StartExecution(_ context.Context, id, notes, startedBy string) (entities.WarrantyRequestFlow, error) {
	return u.transition(id, entities.WarrantyStageInExecution, startedBy, false, notes, func(r *entities.WarrantyRequestFlow, now time.Time) {
		r.Details.Execution = &entities.ExecutionDetails{StartedAt: now, Notes: notes}
	})
}

func (u *WarrantyFlowUseCase) CompleteWarranty(_ context.Context, id, notes, completedBy string) (entities.WarrantyRequestFlow, error) {
	return u.transition(id, entities.WarrantyStageCompleted, completedBy, false, notes, func(r *entities.WarrantyRequestFlow, now time.Time) {
		r.Details.Completion = &entities.CompletionDetails{CompletedAt: now, Notes: notes}
	})
}

// transition validates and applies a stage change while holding the request lock.
// stamp runs on the new copy before it is stored.
func (u *WarrantyFlowUseCase) transition(id string, to entities.WarrantyStage, changedBy string, isAutomatic bool, notes string, stamp stamper) (entities.WarrantyRequestFlow, error) {
	id = strings.TrimSpace(id)
	if !to.IsValid() {
		return entities.WarrantyRequestFlow{}, fmt.Errorf("%w: %q", ErrInvalidStage, to)
	}

	unlock := u.locks.Lock(id)
	defer unlock()

	current, ok := u.load(id)
	if !ok {
		u.metrics.ObserveTransition("", string(to), "not_found")
		return entities.WarrantyRequestFlow{}, ErrWarrantyRequestNotFound
	}
	from := current.CurrentStage
	if entities.IsFinalStage(from) {
		u.metrics.ObserveTransition(string(from), string(to), "already_final")
		u.logger.Info("[warranty][usecase] change-status blocked: final stage",
			zap.String("request_id", id), zap.String("from", string(from)), zap.String("to", string(to)))
		return entities.WarrantyRequestFlow{}, ErrRequestAlreadyFinal
	}
	if !entities.IsValidTransition(from, to) {
		u.metrics.ObserveTransition(string(from), string(to), "invalid")
		u.logger.Info("[warranty][usecase] change-status blocked: invalid transition",
			zap.String("request_id", id), zap.String("from", string(from)), zap.String("to", string(to)))
		return entities.WarrantyRequestFlow{}, &TransitionError{From: from, To: to}
	}

	now := u.now()
	next := current.Clone()
	fromStage := from
	next.History = append(next.History, entities.WarrantyStatusHistory{
		ID:          uuid.NewString(),
		RequestID:   id,
		FromStatus:  &fromStage,
		ToStatus:    to,
		ChangedAt:   now,
		ChangedBy:   changedBy,
		IsAutomatic: isAutomatic,
		Notes:       notes,
	})
	next.CurrentStage = to
	next.StageStartedAt = now
	next.UpdatedAt = now
	if stamp != nil {
		stamp(&next, now)
	}
	u.refreshSLA(&next, now)
	u.store(&next)
	u.publish(next)

	u.metrics.ObserveTransition(string(from), string(to), "success")
	u.logger.Info("[warranty][usecase] change-status success",
		zap.String("request_id", id),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
		zap.String("changed_by", changedBy),
		zap.Bool("automatic", isAutomatic),
	)
	return next.Clone(), nil
}

// KanbanData returns one column per stage, each sorted by urgency.
func (u *WarrantyFlowUseCase) KanbanData(_ context.Context) []entities.KanbanColumn {
	now := u.now()
	byStage := make(map[entities.WarrantyStage][]entities.WarrantyRequestFlow)
	for _, r := range u.snapshot() {
		byStage[r.CurrentStage] = append(byStage[r.CurrentStage], r)
	}

	stages := entities.AllStages()
	columns := make([]entities.KanbanColumn, 0, len(stages))
	for _, stage := range stages {
		col := entities.KanbanColumn{Stage: stage, Label: stage.Label(), Cards: []entities.KanbanCard{}}
		for _, r := range u.calc.SortByUrgency(byStage[stage], now) {
			col.Cards = append(col.Cards, entities.KanbanCard{
				Request:      r,
				SLAInfo:      u.calc.DeadlineInfo(r, now),
				DragDisabled: entities.IsFinalStage(stage),
			})
		}
		columns = append(columns, col)
	}
	return columns
}

func (u *WarrantyFlowUseCase) CalculateMetrics(_ context.Context) entities.WarrantyMetrics {
	return buildMetrics(u.snapshot(), u.calc, u.now())
}

func (u *WarrantyFlowUseCase) refreshSLA(r *entities.WarrantyRequestFlow, now time.Time) {
	info := u.calc.DeadlineInfo(*r, now)
	r.SLADeadline = info.Deadline
	r.SLAStatus = info.Status
}

func (u *WarrantyFlowUseCase) load(id string) (*entities.WarrantyRequestFlow, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	r, ok := u.requests[id]
	return r, ok
}

func (u *WarrantyFlowUseCase) store(r *entities.WarrantyRequestFlow) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, exists := u.requests[r.ID]; !exists {
		u.ordering = append(u.ordering, r.ID)
	}
	u.requests[r.ID] = r
}

// snapshot returns copies of every request in creation order.
func (u *WarrantyFlowUseCase) snapshot() []entities.WarrantyRequestFlow {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]entities.WarrantyRequestFlow, 0, len(u.ordering))
	for _, id := range u.ordering {
		out = append(out, u.requests[id].Clone())
	}
	return out
}

func (u *WarrantyFlowUseCase) publish(r entities.WarrantyRequestFlow) {
	if u.publisher == nil {
		return
	}
	u.publisher.Publish(r.Clone())
}

// keyedMutex hands out one mutex per key. Entries are reference counted and
// removed by the last holder, so unknown ids leave nothing behind.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*refMutex)
	}
	l, ok := k.locks[key]
	if !ok {
		l = &refMutex{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
