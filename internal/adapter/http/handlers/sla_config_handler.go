package handlers

import (
	"net/http"

	request "portal_posvenda/internal/adapter/http/dto/request"
	"portal_posvenda/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SLAConfigHandler struct {
	usecase usecase.ISLAConfigUseCase
}

func NewSLAConfigHandler(uc usecase.ISLAConfigUseCase) *SLAConfigHandler {
	return &SLAConfigHandler{usecase: uc}
}

func (h *SLAConfigHandler) ListConfigs(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.GetAll())
}

// GetConfig returns the stored config, or the fallback budgets for an unknown category.
func (h *SLAConfigHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Get(c.Param("category")))
}

// UpdateConfig replaces a category's budgets. Requests already open keep their snapshot.
func (h *SLAConfigHandler) UpdateConfig(c *gin.Context) {
	var payload request.SLAConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("category")))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, updated)
}
