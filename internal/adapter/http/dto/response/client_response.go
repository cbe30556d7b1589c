package response

import (
	"time"

	"portal_posvenda/internal/domain/entities"
)

type ClientStageChangeResponse struct {
	ID          string    `json:"id"`
	FromStage   *string   `json:"from_stage"`
	ToStage     string    `json:"to_stage"`
	ChangedAt   time.Time `json:"changed_at"`
	Reason      string    `json:"reason"`
	ChangedBy   string    `json:"changed_by"`
	IsAutomatic bool      `json:"is_automatic"`
}

type ClientEventResponse struct {
	ID                string    `json:"id"`
	EventType         string    `json:"event_type"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	CreatedAt         time.Time `json:"created_at"`
	RelatedEntityID   string    `json:"related_entity_id,omitempty"`
	RelatedEntityType string    `json:"related_entity_type,omitempty"`
	PerformedBy       string    `json:"performed_by,omitempty"`
	IsAutomatic       bool      `json:"is_automatic"`
}

type ClientProfileResponse struct {
	ID                string                      `json:"id"`
	Name              string                      `json:"name"`
	Email             string                      `json:"email,omitempty"`
	Phone             string                      `json:"phone,omitempty"`
	CurrentStage      string                      `json:"current_stage"`
	CurrentStageLabel string                      `json:"current_stage_label"`
	PropertyID        string                      `json:"property_id,omitempty"`
	PropertyName      string                      `json:"property_name,omitempty"`
	UnitNumber        string                      `json:"unit_number,omitempty"`
	CreatedAt         time.Time                   `json:"created_at"`
	Permissions       entities.StagePermissions   `json:"permissions"`
	StageHistory      []ClientStageChangeResponse `json:"stage_history"`
	Events            []ClientEventResponse       `json:"events,omitempty"`
}

func FromClientProfile(p entities.ClientProfile, events []entities.ClientEvent) ClientProfileResponse {
	res := ClientProfileResponse{
		ID:                p.ID,
		Name:              p.Name,
		Email:             p.Email,
		Phone:             p.Phone,
		CurrentStage:      string(p.CurrentStage),
		CurrentStageLabel: p.CurrentStage.Label(),
		PropertyID:        p.PropertyID,
		PropertyName:      p.PropertyName,
		UnitNumber:        p.UnitNumber,
		CreatedAt:         p.CreatedAt,
		Permissions:       p.CurrentStage.Permissions(),
		StageHistory:      make([]ClientStageChangeResponse, 0, len(p.StageHistory)),
	}
	for _, h := range p.StageHistory {
		item := ClientStageChangeResponse{
			ID:          h.ID,
			ToStage:     string(h.ToStage),
			ChangedAt:   h.ChangedAt,
			Reason:      h.Reason,
			ChangedBy:   h.ChangedBy,
			IsAutomatic: h.IsAutomatic,
		}
		if h.FromStage != nil {
			from := string(*h.FromStage)
			item.FromStage = &from
		}
		res.StageHistory = append(res.StageHistory, item)
	}
	for _, e := range events {
		res.Events = append(res.Events, ClientEventResponse{
			ID:                e.ID,
			EventType:         string(e.EventType),
			Title:             e.Title,
			Description:       e.Description,
			CreatedAt:         e.CreatedAt,
			RelatedEntityID:   e.Metadata.RelatedEntityID,
			RelatedEntityType: string(e.Metadata.RelatedEntityType),
			PerformedBy:       e.Metadata.PerformedBy,
			IsAutomatic:       e.Metadata.IsAutomatic,
		})
	}
	return res
}

type NotificationResponse struct {
	ID                string    `json:"id"`
	RecipientID       string    `json:"recipient_id"`
	Type              string    `json:"type"`
	Title             string    `json:"title"`
	Message           string    `json:"message"`
	Urgent            bool      `json:"urgent"`
	Read              bool      `json:"read"`
	CreatedAt         time.Time `json:"created_at"`
	RelatedEntityID   string    `json:"related_entity_id,omitempty"`
	RelatedEntityType string    `json:"related_entity_type,omitempty"`
	ActionURL         string    `json:"action_url,omitempty"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:                n.ID,
		RecipientID:       n.RecipientID,
		Type:              string(n.Type),
		Title:             n.Title,
		Message:           n.Message,
		Urgent:            n.Urgent,
		Read:              n.Read,
		CreatedAt:         n.CreatedAt,
		RelatedEntityID:   n.Metadata.RelatedEntityID,
		RelatedEntityType: string(n.Metadata.RelatedEntityType),
		ActionURL:         n.Metadata.ActionURL,
	}
}

type NotificationListResponse struct {
	Items       []NotificationResponse `json:"items"`
	UnreadCount int                    `json:"unread_count"`
}

// FromNotifications counts unread items from list itself.
func FromNotifications(list []entities.Notification) NotificationListResponse {
	res := NotificationListResponse{Items: make([]NotificationResponse, 0, len(list))}
	for _, n := range list {
		if !n.Read {
			res.UnreadCount++
		}
		res.Items = append(res.Items, FromNotification(n))
	}
	return res
}

type AuditLogResponse struct {
	ID              string            `json:"id"`
	EntityType      string            `json:"entity_type"`
	EntityID        string            `json:"entity_id"`
	Action          string            `json:"action"`
	PerformedBy     string            `json:"performed_by"`
	PerformedByName string            `json:"performed_by_name,omitempty"`
	PerformedByRole string            `json:"performed_by_role"`
	Timestamp       time.Time         `json:"timestamp"`
	Details         string            `json:"details,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

func FromAuditLogs(list []entities.AuditLogEntry) []AuditLogResponse {
	out := make([]AuditLogResponse, 0, len(list))
	for _, e := range list {
		out = append(out, AuditLogResponse{
			ID:              e.ID,
			EntityType:      string(e.EntityType),
			EntityID:        e.EntityID,
			Action:          string(e.Action),
			PerformedBy:     e.PerformedBy,
			PerformedByName: e.PerformedByName,
			PerformedByRole: string(e.PerformedByRole),
			Timestamp:       e.Timestamp,
			Details:         e.Details,
			Metadata:        e.Metadata,
		})
	}
	return out
}
