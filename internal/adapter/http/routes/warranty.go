package routes

import (
	"portal_posvenda/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWarranties = "/warranties"
	PathSLAConfigs = "/sla-configs"
	PathClients    = "/clients"
	PathAuditLogs  = "/audit-logs"
)

func addWarrantyRoutes(rg *gin.RouterGroup, h *handlers.WarrantyHandler) {
	warranties := rg.Group(PathWarranties)
	{
		warranties.POST("", h.CreateWarranty)
		warranties.GET("", h.ListWarranties)
		// Board views, registered before /:id.
		warranties.GET("/kanban", h.Kanban)
		warranties.GET("/metrics", h.Metrics)
		warranties.POST("/sla-sweep", h.SweepSLA)

		warranties.GET("/:id", h.GetWarranty)
		warranties.GET("/:id/timeline", h.Timeline)
		warranties.GET("/:id/sla", h.SLAInfo)
		warranties.PATCH("/:id/stage", h.ChangeStage)
		warranties.PATCH("/:id/assignee", h.AssignTechnician)
		warranties.POST("/:id/inspection/schedule", h.ScheduleInspection)
		warranties.POST("/:id/inspection/complete", h.CompleteInspection)
		warranties.POST("/:id/approve", h.ApproveWarranty)
		warranties.POST("/:id/reject", h.RejectWarranty)
		warranties.POST("/:id/execution/start", h.StartExecution)
		warranties.POST("/:id/complete", h.CompleteWarranty)
	}
}

func addSLAConfigRoutes(rg *gin.RouterGroup, h *handlers.SLAConfigHandler) {
	configs := rg.Group(PathSLAConfigs)
	{
		configs.GET("", h.ListConfigs)
		configs.GET("/:category", h.GetConfig)
		configs.PUT("/:category", h.UpdateConfig)
	}
}

func addClientRoutes(rg *gin.RouterGroup, h *handlers.ClientHandler, warranties *handlers.WarrantyHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", h.RegisterClient)
		clients.GET("/:client_id", h.GetClient)
		clients.GET("/:client_id/warranties", warranties.ListClientWarranties)
		clients.POST("/:client_id/events", h.PostEvent)
		clients.POST("/:client_id/inspections/:inspection_id/accept", h.AcceptInspection)
		clients.POST("/:client_id/inspections/:inspection_id/approve", h.ApproveInspection)
		clients.POST("/:client_id/inspections/:inspection_id/reject", h.RejectInspection)
		clients.GET("/:client_id/notifications", h.ListNotifications)
		clients.PATCH("/:client_id/notifications/:notification_id/read", h.MarkNotificationAsRead)
	}
}

func addAuditRoutes(rg *gin.RouterGroup, h *handlers.AuditLogHandler) {
	rg.GET(PathAuditLogs, h.ListAuditLogs)
}
