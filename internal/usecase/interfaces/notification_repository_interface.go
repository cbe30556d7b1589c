package interfaces

import (
	"context"
	"portal_posvenda/internal/domain/entities"
)

// INotificationRepository persists client and admin notifications.
// MarkAsRead returns a zero Notification when the id does not belong to the recipient.

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	ListByRecipient(ctx context.Context, recipientID string) ([]entities.Notification, error)
	MarkAsRead(ctx context.Context, recipientID, id string) (entities.Notification, error)
}
