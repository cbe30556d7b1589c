package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"portal_posvenda/internal/domain/entities"
	"portal_posvenda/internal/infrastructure/logger"
	"portal_posvenda/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultRecentAuditLimit = 20

type AuditLogQuery struct {
	EntityType entities.AuditEntityType
	EntityID   string
	UserID     string
	From       *time.Time
	To         *time.Time
	Limit      int
}

type IAuditLogUseCase interface {
	interfaces.IAuditLogger
	Query(ctx context.Context, q AuditLogQuery) ([]entities.AuditLogEntry, error)
	ByEntity(ctx context.Context, entityType entities.AuditEntityType, entityID string) ([]entities.AuditLogEntry, error)
	ByUser(ctx context.Context, userID string) ([]entities.AuditLogEntry, error)
	ByDateRange(ctx context.Context, from, to time.Time) ([]entities.AuditLogEntry, error)
	Recent(ctx context.Context, limit int) ([]entities.AuditLogEntry, error)
}

type AuditLogUseCase struct {
	repo   interfaces.IAuditLogRepository
	logger *zap.Logger
	now    func() time.Time
}

var _ IAuditLogUseCase = (*AuditLogUseCase)(nil)

func NewAuditLogUseCase(repo interfaces.IAuditLogRepository, log *zap.Logger) *AuditLogUseCase {
	return &AuditLogUseCase{
		repo:   repo,
		logger: logger.OrNop(log),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Log stores entry with a fresh ID and timestamp.
func (u *AuditLogUseCase) Log(ctx context.Context, entry entities.AuditLogEntry) (entities.AuditLogEntry, error) {
	if entry.EntityID == "" || entry.Action == "" {
		return entities.AuditLogEntry{}, fmt.Errorf("%w: entity_id and action are required", ErrInvalidRequestInput)
	}
	entry.ID = uuid.NewString()
	entry.Timestamp = u.now()

	created, err := u.repo.Create(ctx, entry)
	if err != nil {
		u.logger.Error("[audit][usecase] create failed",
			zap.String("entity_id", entry.EntityID),
			zap.String("action", string(entry.Action)),
			zap.Error(err),
		)
		return entities.AuditLogEntry{}, err
	}
	return created, nil
}

// Query filters entries and returns them newest first. A zero Limit means no limit.
func (u *AuditLogUseCase) Query(ctx context.Context, q AuditLogQuery) ([]entities.AuditLogEntry, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.AuditLogEntry, 0, len(all))
	for _, e := range all {
		if q.EntityType != "" && e.EntityType != q.EntityType {
			continue
		}
		if q.EntityID != "" && e.EntityID != q.EntityID {
			continue
		}
		if q.UserID != "" && e.PerformedBy != q.UserID {
			continue
		}
		if q.From != nil && e.Timestamp.Before(*q.From) {
			continue
		}
		if q.To != nil && e.Timestamp.After(*q.To) {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (u *AuditLogUseCase) ByEntity(ctx context.Context, entityType entities.AuditEntityType, entityID string) ([]entities.AuditLogEntry, error) {
	return u.Query(ctx, AuditLogQuery{EntityType: entityType, EntityID: entityID})
}

func (u *AuditLogUseCase) ByUser(ctx context.Context, userID string) ([]entities.AuditLogEntry, error) {
	return u.Query(ctx, AuditLogQuery{UserID: userID})
}

func (u *AuditLogUseCase) ByDateRange(ctx context.Context, from, to time.Time) ([]entities.AuditLogEntry, error) {
	return u.Query(ctx, AuditLogQuery{From: &from, To: &to})
}

func (u *AuditLogUseCase) Recent(ctx context.Context, limit int) ([]entities.AuditLogEntry, error) {
	if limit <= 0 {
		limit = defaultRecentAuditLimit
	}
	return u.Query(ctx, AuditLogQuery{Limit: limit})
}
