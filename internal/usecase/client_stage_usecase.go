package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"portal_posvenda/internal/domain/entities"
	"portal_posvenda/internal/infrastructure/logger"
	"portal_posvenda/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrClientNotFound        = errors.New("client not found")
	ErrClientStageRegression = errors.New("client stage cannot move backwards")
	ErrInvalidClientStage    = errors.New("invalid client stage")
	ErrInvalidClientInput    = errors.New("invalid client input")
)

type RegisterClientInput struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	PropertyID   string
	PropertyName string
	UnitNumber   string
	Stage        entities.ClientStage
	RegisteredBy string
}

// IClientStageUseCase manages client onboarding stages and the client event history.
type IClientStageUseCase interface {
	interfaces.IClientStageGateway
	RegisterClient(ctx context.Context, in RegisterClientInput) (entities.ClientProfile, error)
	GetProfile(ctx context.Context, clientID string) (entities.ClientProfile, error)
	CanScheduleInspection(ctx context.Context, clientID string) bool
	CanRequestWarranty(ctx context.Context, clientID string) bool
	GetEvents(ctx context.Context, clientID string) []entities.ClientEvent
}

type ClientStageUseCase struct {
	mu       sync.Mutex
	profiles map[string]*entities.ClientProfile
	events   map[string][]entities.ClientEvent
	logger   *zap.Logger
	now      func() time.Time
}

var _ IClientStageUseCase = (*ClientStageUseCase)(nil)

func NewClientStageUseCase(log *zap.Logger) *ClientStageUseCase {
	return &ClientStageUseCase{
		profiles: make(map[string]*entities.ClientProfile),
		events:   make(map[string][]entities.ClientEvent),
		logger:   logger.OrNop(log),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// RegisterClient creates a client profile. The initial stage defaults to registered.
func (u *ClientStageUseCase) RegisterClient(_ context.Context, in RegisterClientInput) (entities.ClientProfile, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.ClientProfile{}, fmt.Errorf("%w: name is required", ErrInvalidClientInput)
	}
	if in.Stage == "" {
		in.Stage = entities.ClientStageRegistered
	}
	if !in.Stage.IsValid() {
		return entities.ClientProfile{}, fmt.Errorf("%w: %q", ErrInvalidClientStage, in.Stage)
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	if in.RegisteredBy == "" {
		in.RegisteredBy = "Sistema"
	}

	now := u.now()
	p := &entities.ClientProfile{
		ID:           in.ID,
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		CurrentStage: in.Stage,
		PropertyID:   in.PropertyID,
		PropertyName: in.PropertyName,
		UnitNumber:   in.UnitNumber,
		CreatedAt:    now,
		StageHistory: []entities.ClientStageChange{{
			ID:          uuid.NewString(),
			ToStage:     in.Stage,
			ChangedAt:   now,
			Reason:      "Cadastro inicial do cliente",
			ChangedBy:   in.RegisteredBy,
			IsAutomatic: true,
		}},
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if _, exists := u.profiles[p.ID]; exists {
		return entities.ClientProfile{}, fmt.Errorf("%w: client %s already registered", ErrInvalidClientInput, p.ID)
	}
	u.profiles[p.ID] = p
	u.events[p.ID] = append(u.events[p.ID], entities.ClientEvent{
		ID:          uuid.NewString(),
		ClientID:    p.ID,
		EventType:   entities.ClientEventClientRegistered,
		Title:       "Cadastro Realizado",
		Description: "Cliente cadastrado no sistema",
		CreatedAt:   now,
		Metadata:    entities.ClientEventMetadata{PerformedBy: in.RegisteredBy, IsAutomatic: true},
	})

	u.logger.Info("[client][usecase] registered", zap.String("client_id", p.ID), zap.String("stage", string(p.CurrentStage)))
	return cloneProfile(p), nil
}

func (u *ClientStageUseCase) GetProfile(_ context.Context, clientID string) (entities.ClientProfile, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	p, ok := u.profiles[clientID]
	if !ok {
		return entities.ClientProfile{}, ErrClientNotFound
	}
	return cloneProfile(p), nil
}

// AdvanceStage moves the client to stage. Staying at the current stage is
// allowed and still recorded.
func (u *ClientStageUseCase) AdvanceStage(_ context.Context, clientID string, stage entities.ClientStage, reason, changedBy string, isAutomatic bool) (entities.ClientProfile, error) {
	if !stage.IsValid() {
		return entities.ClientProfile{}, fmt.Errorf("%w: %q", ErrInvalidClientStage, stage)
	}
	if changedBy == "" {
		changedBy = "Sistema"
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	p, ok := u.profiles[clientID]
	if !ok {
		return entities.ClientProfile{}, ErrClientNotFound
	}
	if stage.Order() < p.CurrentStage.Order() {
		u.logger.Info("[client][usecase] advance blocked: regression",
			zap.String("client_id", clientID),
			zap.String("from", string(p.CurrentStage)),
			zap.String("to", string(stage)),
		)
		return entities.ClientProfile{}, ErrClientStageRegression
	}

	now := u.now()
	from := p.CurrentStage
	p.StageHistory = append(p.StageHistory, entities.ClientStageChange{
		ID:          uuid.NewString(),
		FromStage:   &from,
		ToStage:     stage,
		ChangedAt:   now,
		Reason:      reason,
		ChangedBy:   changedBy,
		IsAutomatic: isAutomatic,
	})
	p.CurrentStage = stage
	u.events[clientID] = append(u.events[clientID], entities.ClientEvent{
		ID:          uuid.NewString(),
		ClientID:    clientID,
		EventType:   stage.EventType(),
		Title:       "Etapa atualizada: " + stage.Label(),
		Description: reason,
		CreatedAt:   now,
		Metadata:    entities.ClientEventMetadata{PerformedBy: changedBy, IsAutomatic: isAutomatic},
	})

	u.logger.Info("[client][usecase] stage advanced",
		zap.String("client_id", clientID),
		zap.String("from", string(from)),
		zap.String("to", string(stage)),
		zap.Bool("automatic", isAutomatic),
	)
	return cloneProfile(p), nil
}

// GetPermissions returns the registered permission set for unknown clients.
func (u *ClientStageUseCase) GetPermissions(_ context.Context, clientID string) (entities.StagePermissions, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if p, ok := u.profiles[clientID]; ok {
		return p.CurrentStage.Permissions(), nil
	}
	return entities.ClientStageRegistered.Permissions(), nil
}

func (u *ClientStageUseCase) CanScheduleInspection(ctx context.Context, clientID string) bool {
	p, _ := u.GetPermissions(ctx, clientID)
	return p.CanScheduleInspection
}

func (u *ClientStageUseCase) CanRequestWarranty(ctx context.Context, clientID string) bool {
	p, _ := u.GetPermissions(ctx, clientID)
	return p.CanRequestWarranty
}

func (u *ClientStageUseCase) AddEvent(_ context.Context, event entities.ClientEvent) (entities.ClientEvent, error) {
	if event.ClientID == "" {
		return entities.ClientEvent{}, fmt.Errorf("%w: client_id is required", ErrInvalidClientInput)
	}
	event.ID = uuid.NewString()
	event.CreatedAt = u.now()

	u.mu.Lock()
	defer u.mu.Unlock()
	u.events[event.ClientID] = append(u.events[event.ClientID], event)
	return event, nil
}

func (u *ClientStageUseCase) GetEvents(_ context.Context, clientID string) []entities.ClientEvent {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]entities.ClientEvent, len(u.events[clientID]))
	copy(out, u.events[clientID])
	return out
}

func cloneProfile(p *entities.ClientProfile) entities.ClientProfile {
	out := *p
	out.StageHistory = make([]entities.ClientStageChange, len(p.StageHistory))
	copy(out.StageHistory, p.StageHistory)
	return out
}
