package handlers

import (
	"net/http"

	request "portal_posvenda/internal/adapter/http/dto/request"
	response "portal_posvenda/internal/adapter/http/dto/response"
	"portal_posvenda/internal/domain/entities"
	"portal_posvenda/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuditLogHandler struct {
	usecase usecase.IAuditLogUseCase
}

func NewAuditLogHandler(uc usecase.IAuditLogUseCase) *AuditLogHandler {
	return &AuditLogHandler{usecase: uc}
}

// ListAuditLogs filters by entity, user and date range; with no filter it returns the most recent entries.
func (h *AuditLogHandler) ListAuditLogs(c *gin.Context) {
	var params request.AuditLogQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		writeError(c, errInvalidQuery)
		return
	}
	query, err := params.ToQuery()
	if err != nil {
		writeError(c, errInvalidQuery)
		return
	}

	var entries []entities.AuditLogEntry
	if query == (usecase.AuditLogQuery{}) {
		entries, err = h.usecase.Recent(c.Request.Context(), 0)
	} else {
		entries, err = h.usecase.Query(c.Request.Context(), query)
	}
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAuditLogs(entries))
}
