package handlers

import (
	"net/http"

	request "portal_posvenda/internal/adapter/http/dto/request"
	response "portal_posvenda/internal/adapter/http/dto/response"
	"portal_posvenda/internal/infrastructure/logger"
	"portal_posvenda/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientHandler serves the client portal: onboarding stage, inspection
// decisions and the notification inbox.
type ClientHandler struct {
	clients       usecase.IClientStageUseCase
	automation    usecase.IWarrantyAutomationUseCase
	notifications usecase.INotificationUseCase
	logger        *zap.Logger
}

func NewClientHandler(
	clients usecase.IClientStageUseCase,
	automation usecase.IWarrantyAutomationUseCase,
	notifications usecase.INotificationUseCase,
	log *zap.Logger,
) *ClientHandler {
	return &ClientHandler{clients: clients, automation: automation, notifications: notifications, logger: logger.OrNop(log)}
}

func (h *ClientHandler) RegisterClient(c *gin.Context) {
	var payload request.RegisterClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	profile, err := h.clients.RegisterClient(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromClientProfile(profile, h.clients.GetEvents(c.Request.Context(), profile.ID)))
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	clientID := c.Param("client_id")
	profile, err := h.clients.GetProfile(c.Request.Context(), clientID)
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClientProfile(profile, h.clients.GetEvents(c.Request.Context(), clientID)))
}

// AcceptInspection is the client accepting the delivery inspection, which unlocks warranties.
func (h *ClientHandler) AcceptInspection(c *gin.Context) {
	clientID, inspectionID := c.Param("client_id"), c.Param("inspection_id")

	result, err := h.automation.OnInspectionAccepted(c.Request.Context(), inspectionID, clientID)
	if err != nil {
		h.logger.Warn("[client][handler] accept inspection failed",
			zap.String("client_id", clientID), zap.String("inspection_id", inspectionID), zap.Error(err))
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

// ApproveInspection is the admin approving an inspection on the client's behalf.
func (h *ClientHandler) ApproveInspection(c *gin.Context) {
	clientID, inspectionID := c.Param("client_id"), c.Param("inspection_id")

	result, err := h.automation.OnInspectionApproved(c.Request.Context(), inspectionID, clientID)
	if err != nil {
		h.logger.Warn("[client][handler] approve inspection failed",
			zap.String("client_id", clientID), zap.String("inspection_id", inspectionID), zap.Error(err))
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ClientHandler) RejectInspection(c *gin.Context) {
	var payload request.InspectionDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	result := h.automation.OnInspectionRejected(c.Request.Context(), c.Param("inspection_id"), c.Param("client_id"), payload.Reason)
	c.JSON(http.StatusOK, result)
}

// PostEvent routes a portal event to its automation. Unknown types succeed with no action.
func (h *ClientHandler) PostEvent(c *gin.Context) {
	var payload request.ClientFlowEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	c.JSON(http.StatusOK, h.automation.ProcessEvent(c.Request.Context(), payload.ToEvent(c.Param("client_id"))))
}

func (h *ClientHandler) ListNotifications(c *gin.Context) {
	list, err := h.notifications.ListByRecipient(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(list))
}

func (h *ClientHandler) MarkNotificationAsRead(c *gin.Context) {
	n, err := h.notifications.MarkAsRead(c.Request.Context(), c.Param("client_id"), c.Param("notification_id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotification(n))
}
