package request

import (
	"strings"
	"time"

	"portal_posvenda/internal/domain/entities"
	"portal_posvenda/internal/usecase"
)

type RegisterClientRequest struct {
	ID           string `json:"id"`
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PropertyID   string `json:"property_id"`
	PropertyName string `json:"property_name"`
	UnitNumber   string `json:"unit_number"`
	Stage        string `json:"stage"`
	RegisteredBy string `json:"registered_by"`
}

func (r RegisterClientRequest) ToInput() usecase.RegisterClientInput {
	return usecase.RegisterClientInput{
		ID:           strings.TrimSpace(r.ID),
		Name:         r.Name,
		Email:        strings.TrimSpace(r.Email),
		Phone:        strings.TrimSpace(r.Phone),
		PropertyID:   strings.TrimSpace(r.PropertyID),
		PropertyName: r.PropertyName,
		UnitNumber:   strings.TrimSpace(r.UnitNumber),
		Stage:        entities.ClientStage(strings.TrimSpace(r.Stage)),
		RegisteredBy: strings.TrimSpace(r.RegisteredBy),
	}
}

// InspectionDecisionRequest is the body of the accept and reject inspection routes.
// Reason is only read on reject.
type InspectionDecisionRequest struct {
	Reason string `json:"reason"`
}

// ClientFlowEventRequest feeds a portal event into the automation router.
type ClientFlowEventRequest struct {
	Type          string    `json:"type" binding:"required"`
	EntityID      string    `json:"entity_id" binding:"required"`
	Reason        string    `json:"reason"`
	ScheduledDate time.Time `json:"scheduled_date"`
	ItemName      string    `json:"item_name"`
}

func (r ClientFlowEventRequest) ToEvent(clientID string) usecase.ClientFlowEvent {
	return usecase.ClientFlowEvent{
		Type:          entities.ClientEventType(strings.TrimSpace(r.Type)),
		ClientID:      clientID,
		EntityID:      strings.TrimSpace(r.EntityID),
		Reason:        r.Reason,
		ScheduledDate: r.ScheduledDate,
		ItemName:      r.ItemName,
	}
}
