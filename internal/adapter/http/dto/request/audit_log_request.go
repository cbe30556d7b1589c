package request

import (
	"strconv"
	"strings"

	"portal_posvenda/internal/domain/entities"
	"portal_posvenda/internal/usecase"
)

type AuditLogQueryParams struct {
	EntityType string `form:"entity_type"`
	EntityID   string `form:"entity_id"`
	UserID     string `form:"user_id"`
	From       string `form:"from"`
	To         string `form:"to"`
	Limit      string `form:"limit"`
}

func (q AuditLogQueryParams) ToQuery() (usecase.AuditLogQuery, error) {
	out := usecase.AuditLogQuery{
		EntityType: entities.AuditEntityType(strings.TrimSpace(q.EntityType)),
		EntityID:   strings.TrimSpace(q.EntityID),
		UserID:     strings.TrimSpace(q.UserID),
	}
	if raw := strings.TrimSpace(q.Limit); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return usecase.AuditLogQuery{}, ErrInvalidLimit
		}
		out.Limit = limit
	}
	var err error
	if out.From, err = parseDate(q.From, false); err != nil {
		return usecase.AuditLogQuery{}, err
	}
	if out.To, err = parseDate(q.To, true); err != nil {
		return usecase.AuditLogQuery{}, err
	}
	return out, nil
}
