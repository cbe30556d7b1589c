package handlers

import (
	"errors"
	"net/http"

	"portal_posvenda/internal/usecase"
	"portal_posvenda/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida", http.StatusBadRequest)
	errInvalidQuery   = pkg.NewDomainErrorSimple("INVALID_QUERY", "Parâmetros de consulta inválidos", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapDomainError turns use case errors into the localized envelope shown by the portal.
func mapDomainError(err error) *pkg.AppError {
	var transitionErr *usecase.TransitionError
	switch {
	case errors.Is(err, usecase.ErrWarrantyRequestNotFound):
		return pkg.NewDomainError("WARRANTY_NOT_FOUND", "Solicitação não encontrada", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestAlreadyFinal):
		return pkg.NewDomainError("WARRANTY_ALREADY_FINAL", "Não é possível alterar uma solicitação finalizada", err, http.StatusConflict)
	case errors.As(err, &transitionErr):
		return pkg.NewDomainError("INVALID_STAGE_TRANSITION", transitionErr.Localized(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStageTransition):
		return pkg.NewDomainError("INVALID_STAGE_TRANSITION", "Transição de etapa inválida", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainError("CLIENT_NOT_FOUND", "Cliente não encontrado", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientStageRegression):
		return pkg.NewDomainError("CLIENT_STAGE_REGRESSION", "Não é possível retroceder etapas", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrWarrantyNotEnabled):
		return pkg.NewDomainError("WARRANTY_NOT_ENABLED", "Módulo de garantia não liberado para este cliente", err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainError("NOTIFICATION_NOT_FOUND", "Notificação não encontrada", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidSLAConfig):
		return pkg.NewDomainError("INVALID_SLA_CONFIG", "Configuração de SLA inválida", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPriority):
		return pkg.NewDomainError("INVALID_PRIORITY", "Prioridade inválida", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStage), errors.Is(err, usecase.ErrInvalidClientStage):
		return pkg.NewDomainError("INVALID_STAGE", "Etapa inválida", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRequestInput), errors.Is(err, usecase.ErrInvalidClientInput):
		return pkg.NewDomainError("INVALID_REQUEST", "Requisição inválida", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocorreu um erro interno", err, http.StatusInternalServerError)
	}
}
