package repository

import (
	"context"
	"sync"

	"portal_posvenda/internal/domain/entities"
	"portal_posvenda/internal/usecase/interfaces"
)

// In-memory repositories used by the "memory" storage driver and in tests.

type WarrantyRequestMemoryRepository struct {
	mu       sync.RWMutex
	items    map[string]entities.WarrantyRequestFlow
	ordering []string
}

var _ interfaces.IWarrantyRequestRepository = (*WarrantyRequestMemoryRepository)(nil)

func NewWarrantyRequestMemoryRepository() *WarrantyRequestMemoryRepository {
	return &WarrantyRequestMemoryRepository{items: make(map[string]entities.WarrantyRequestFlow)}
}

func (r *WarrantyRequestMemoryRepository) Save(_ context.Context, req entities.WarrantyRequestFlow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[req.ID]; !ok {
		r.ordering = append(r.ordering, req.ID)
	}
	r.items[req.ID] = req.Clone()
	return nil
}

func (r *WarrantyRequestMemoryRepository) List(_ context.Context) ([]entities.WarrantyRequestFlow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.WarrantyRequestFlow, 0, len(r.ordering))
	for _, id := range r.ordering {
		out = append(out, r.items[id].Clone())
	}
	return out, nil
}

type NotificationMemoryRepository struct {
	mu    sync.Mutex
	items []entities.Notification
}

var _ interfaces.INotificationRepository = (*NotificationMemoryRepository)(nil)

func NewNotificationMemoryRepository() *NotificationMemoryRepository {
	return &NotificationMemoryRepository{}
}

func (r *NotificationMemoryRepository) Create(_ context.Context, n entities.Notification) (entities.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
	return n, nil
}

func (r *NotificationMemoryRepository) ListByRecipient(_ context.Context, recipientID string) ([]entities.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Notification
	for _, n := range r.items {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *NotificationMemoryRepository) MarkAsRead(_ context.Context, recipientID, id string) (entities.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id && r.items[i].RecipientID == recipientID {
			r.items[i].Read = true
			return r.items[i], nil
		}
	}
	return entities.Notification{}, nil
}

type AuditLogMemoryRepository struct {
	mu    sync.Mutex
	items []entities.AuditLogEntry
}

var _ interfaces.IAuditLogRepository = (*AuditLogMemoryRepository)(nil)

func NewAuditLogMemoryRepository() *AuditLogMemoryRepository {
	return &AuditLogMemoryRepository{}
}

func (r *AuditLogMemoryRepository) Create(_ context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, e)
	return e, nil
}

func (r *AuditLogMemoryRepository) List(_ context.Context) ([]entities.AuditLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.AuditLogEntry, len(r.items))
	copy(out, r.items)
	return out, nil
}
