package handlers

import (
	"context"
	"net/http"

	request "portal_posvenda/internal/adapter/http/dto/request"
	response "portal_posvenda/internal/adapter/http/dto/response"
	"portal_posvenda/internal/domain/entities"
	"portal_posvenda/internal/infrastructure/logger"
	"portal_posvenda/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WarrantyHandler serves the warranty board. Reads go to the flow engine;
// writes go through the automation use case so every transition fans out.
type WarrantyHandler struct {
	flow       usecase.IWarrantyFlowUseCase
	automation usecase.IWarrantyAutomationUseCase
	logger     *zap.Logger
}

func NewWarrantyHandler(flow usecase.IWarrantyFlowUseCase, automation usecase.IWarrantyAutomationUseCase, log *zap.Logger) *WarrantyHandler {
	return &WarrantyHandler{flow: flow, automation: automation, logger: logger.OrNop(log)}
}

// CreateWarranty opens a claim for a client with the warranty module enabled.
func (h *WarrantyHandler) CreateWarranty(c *gin.Context) {
	var payload request.CreateWarrantyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	created, result, err := h.automation.RequestWarranty(c.Request.Context(), payload.ToInput())
	if err != nil {
		h.logger.Warn("[warranty][handler] create failed", zap.String("client_id", payload.ClientID), zap.Error(err))
		writeError(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromWarrantyAction(created, result))
}

func (h *WarrantyHandler) ListWarranties(c *gin.Context) {
	var query request.WarrantyFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, errInvalidQuery)
		return
	}
	filters, err := query.ToFilters()
	if err != nil {
		writeError(c, errInvalidQuery)
		return
	}

	c.JSON(http.StatusOK, response.FromWarrantyRequests(h.flow.List(c.Request.Context(), filters)))
}

func (h *WarrantyHandler) ListClientWarranties(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromWarrantyRequests(h.flow.ListByClient(c.Request.Context(), c.Param("client_id"))))
}

func (h *WarrantyHandler) Kanban(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromKanban(h.flow.KanbanData(c.Request.Context())))
}

func (h *WarrantyHandler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromWarrantyMetrics(h.flow.CalculateMetrics(c.Request.Context())))
}

func (h *WarrantyHandler) GetWarranty(c *gin.Context) {
	r, err := h.flow.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWarrantyRequest(r))
}

func (h *WarrantyHandler) Timeline(c *gin.Context) {
	history, err := h.flow.Timeline(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromStatusHistory(history))
}

func (h *WarrantyHandler) SLAInfo(c *gin.Context) {
	info, err := h.flow.SLAInfo(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, info)
}

// ChangeStage moves a request. A from_stage in the body marks a kanban drop.
func (h *WarrantyHandler) ChangeStage(c *gin.Context) {
	var payload request.ChangeStageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	id := c.Param("id")
	to := entities.WarrantyStage(payload.Stage)
	ctx := c.Request.Context()

	var (
		updated entities.WarrantyRequestFlow
		result  entities.AutomationResult
		err     error
	)
	if payload.IsKanbanDrop() {
		updated, result, err = h.automation.OnKanbanDrop(ctx, id, entities.WarrantyStage(payload.FromStage), to, payload.ChangedBy)
	} else {
		updated, result, err = h.automation.ChangeStatus(ctx, id, to, payload.ChangedBy, payload.Notes)
	}
	if err != nil {
		h.logger.Info("[warranty][handler] change-stage rejected",
			zap.String("request_id", id), zap.String("to", payload.Stage), zap.Error(err))
		writeError(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromWarrantyAction(updated, result))
}

func (h *WarrantyHandler) AssignTechnician(c *gin.Context) {
	var payload request.AssignTechnicianRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	updated, err := h.flow.AssignTechnician(c.Request.Context(), c.Param("id"), payload.TechnicianID, payload.TechnicianName, payload.AssignedBy)
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWarrantyRequest(updated))
}

func (h *WarrantyHandler) ScheduleInspection(c *gin.Context) {
	var payload request.ScheduleInspectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	updated, result, err := h.automation.ScheduleInspection(c.Request.Context(), c.Param("id"),
		payload.InspectionDate, payload.TechnicianID, payload.TechnicianName, payload.ScheduledBy)
	h.writeAction(c, updated, result, err)
}

func (h *WarrantyHandler) CompleteInspection(c *gin.Context) {
	h.noteTransition(c, h.automation.CompleteInspection)
}

func (h *WarrantyHandler) ApproveWarranty(c *gin.Context) {
	h.noteTransition(c, h.automation.ApproveWarranty)
}

func (h *WarrantyHandler) RejectWarranty(c *gin.Context) {
	var payload request.RejectWarrantyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	updated, result, err := h.automation.RejectWarranty(c.Request.Context(), c.Param("id"), payload.Reason, payload.RejectedBy)
	h.writeAction(c, updated, result, err)
}

func (h *WarrantyHandler) StartExecution(c *gin.Context) {
	h.noteTransition(c, h.automation.StartExecution)
}

func (h *WarrantyHandler) CompleteWarranty(c *gin.Context) {
	h.noteTransition(c, h.automation.CompleteWarranty)
}

func (h *WarrantyHandler) noteTransition(
	c *gin.Context,
	transition func(ctx context.Context, id, notes, performedBy string) (entities.WarrantyRequestFlow, entities.AutomationResult, error),
) {
	var payload request.StageNoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	updated, result, err := transition(c.Request.Context(), c.Param("id"), payload.Notes, payload.PerformedBy)
	h.writeAction(c, updated, result, err)
}

func (h *WarrantyHandler) writeAction(c *gin.Context, updated entities.WarrantyRequestFlow, result entities.AutomationResult, err error) {
	if err != nil {
		h.logger.Info("[warranty][handler] transition rejected", zap.String("request_id", c.Param("id")), zap.Error(err))
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWarrantyAction(updated, result))
}

// SweepSLA runs one SLA alert pass on demand. The background ticker runs the same pass.
func (h *WarrantyHandler) SweepSLA(c *gin.Context) {
	c.JSON(http.StatusOK, h.automation.SweepSLA(c.Request.Context()))
}
