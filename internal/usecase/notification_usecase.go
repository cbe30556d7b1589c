package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"portal_posvenda/internal/domain/entities"
	"portal_posvenda/internal/infrastructure/logger"
	"portal_posvenda/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNotificationNotFound    = errors.New("notification not found")
	ErrUnknownNotificationType = errors.New("unknown notification type")
)

type INotificationUseCase interface {
	interfaces.INotifier
	ListByRecipient(ctx context.Context, recipientID string) ([]entities.Notification, error)
	UnreadCount(ctx context.Context, recipientID string) (int, error)
	MarkAsRead(ctx context.Context, recipientID, notificationID string) (entities.Notification, error)
}

// NotificationUseCase renders notification templates and stores the result.
// Delivery to email or push is left to whoever reads the repository.
type NotificationUseCase struct {
	repo   interfaces.INotificationRepository
	logger *zap.Logger
	now    func() time.Time
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository, log *zap.Logger) *NotificationUseCase {
	return &NotificationUseCase{
		repo:   repo,
		logger: logger.OrNop(log),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (u *NotificationUseCase) Notify(ctx context.Context, in entities.NotificationInput) (entities.Notification, error) {
	recipient := strings.TrimSpace(in.RecipientID)
	if recipient == "" {
		return entities.Notification{}, fmt.Errorf("%w: recipient is required", ErrInvalidRequestInput)
	}
	tpl, ok := in.Type.Template()
	if !ok {
		return entities.Notification{}, fmt.Errorf("%w: %q", ErrUnknownNotificationType, in.Type)
	}

	n := entities.Notification{
		ID:          uuid.NewString(),
		RecipientID: recipient,
		Type:        in.Type,
		Title:       tpl.Title,
		Message:     tpl.Message,
		Urgent:      tpl.Urgent,
		CreatedAt:   u.now(),
		Metadata:    in.Metadata,
	}
	if in.Title != "" {
		n.Title = in.Title
	}
	if in.Message != "" {
		n.Message = in.Message
	}

	created, err := u.repo.Create(ctx, n)
	if err != nil {
		u.logger.Error("[notification][usecase] create failed",
			zap.String("recipient_id", recipient),
			zap.String("type", string(in.Type)),
			zap.Error(err),
		)
		return entities.Notification{}, err
	}
	u.logger.Debug("[notification][usecase] created",
		zap.String("notification_id", created.ID),
		zap.String("recipient_id", recipient),
		zap.String("type", string(in.Type)),
	)
	return created, nil
}

// ListByRecipient returns the recipient's notifications, newest first.
func (u *NotificationUseCase) ListByRecipient(ctx context.Context, recipientID string) ([]entities.Notification, error) {
	items, err := u.repo.ListByRecipient(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (u *NotificationUseCase) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	items, err := u.repo.ListByRecipient(ctx, recipientID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range items {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

func (u *NotificationUseCase) MarkAsRead(ctx context.Context, recipientID, notificationID string) (entities.Notification, error) {
	n, err := u.repo.MarkAsRead(ctx, recipientID, notificationID)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}
