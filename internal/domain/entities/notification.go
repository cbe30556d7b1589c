package entities

import "time"

// NotificationType identifies a client-facing notification template.
type NotificationType string

const (
	NotificationTypeInspectionEnabled   NotificationType = "inspection_enabled"
	NotificationTypeInspectionScheduled NotificationType = "inspection_scheduled"
	NotificationTypeInspectionReminder  NotificationType = "inspection_reminder"
	NotificationTypeInspectionApproved  NotificationType = "inspection_approved"
	NotificationTypeInspectionRejected  NotificationType = "inspection_rejected"
	NotificationTypeWarrantyEnabled     NotificationType = "warranty_enabled"
	NotificationTypeWarrantyCreated     NotificationType = "warranty_created"
	NotificationTypeWarrantyUpdated     NotificationType = "warranty_updated"
	NotificationTypeWarrantyCompleted   NotificationType = "warranty_completed"
	NotificationTypeStageChanged        NotificationType = "stage_changed"
	NotificationTypeSLAWarning          NotificationType = "sla_warning"
	NotificationTypeSLAExpired          NotificationType = "sla_expired"
)

type NotificationTemplate struct {
	Title   string
	Message string
	Urgent  bool
}

// Template returns the default Portuguese text of t.
func (t NotificationType) Template() (NotificationTemplate, bool) {
	switch t {
	case NotificationTypeInspectionEnabled:
		return NotificationTemplate{"Vistoria Liberada!", "Você já pode agendar sua vistoria de pré-entrega.", true}, true
	case NotificationTypeInspectionScheduled:
		return NotificationTemplate{"Vistoria Agendada", "Sua vistoria foi agendada com sucesso.", false}, true
	case NotificationTypeInspectionReminder:
		return NotificationTemplate{"Lembrete de Vistoria", "Sua vistoria está agendada para amanhã.", true}, true
	case NotificationTypeInspectionApproved:
		return NotificationTemplate{"Vistoria Aprovada!", "Sua vistoria foi aprovada. Garantia liberada!", true}, true
	case NotificationTypeInspectionRejected:
		return NotificationTemplate{"Vistoria com Pendências", "Sua vistoria identificou itens que precisam de ajustes.", true}, true
	case NotificationTypeWarrantyEnabled:
		return NotificationTemplate{"Garantia Liberada", "Você já pode solicitar garantias para seu imóvel.", false}, true
	case NotificationTypeWarrantyCreated:
		return NotificationTemplate{"Solicitação Registrada", "Sua solicitação de garantia foi registrada com sucesso.", false}, true
	case NotificationTypeWarrantyUpdated:
		return NotificationTemplate{"Atualização na Solicitação", "Há uma atualização na sua solicitação de garantia.", false}, true
	case NotificationTypeWarrantyCompleted:
		return NotificationTemplate{"Garantia Concluída", "Sua solicitação de garantia foi concluída.", false}, true
	case NotificationTypeStageChanged:
		return NotificationTemplate{"Atualização de Status", "O status do seu cadastro foi atualizado.", false}, true
	case NotificationTypeSLAWarning:
		return NotificationTemplate{"Prazo Próximo do Limite", "Uma solicitação está com menos de 20% do prazo SLA restante.", true}, true
	case NotificationTypeSLAExpired:
		return NotificationTemplate{"SLA Estourado", "O prazo SLA de uma solicitação foi excedido.", true}, true
	}
	return NotificationTemplate{}, false
}

type RelatedEntityType string

const (
	RelatedEntityInspection RelatedEntityType = "inspection"
	RelatedEntityWarranty   RelatedEntityType = "warranty"
	RelatedEntityStage      RelatedEntityType = "stage"
)

type NotificationMetadata struct {
	RelatedEntityID   string
	RelatedEntityType RelatedEntityType
	ActionURL         string
}

type Notification struct {
	ID          string
	RecipientID string
	Type        NotificationType
	Title       string
	Message     string
	Urgent      bool
	Read        bool
	CreatedAt   time.Time
	Metadata    NotificationMetadata
}

// NotificationInput asks the notification collaborator for a new notification.
// Title and Message override the template text when set.
type NotificationInput struct {
	RecipientID string
	Type        NotificationType
	Metadata    NotificationMetadata
	Title       string
	Message     string
}

// WarrantyNotificationType is the per-stage template a transition maps to.
type WarrantyNotificationType string

const (
	WarrantyNotificationOpened              WarrantyNotificationType = "warranty_opened"
	WarrantyNotificationInAnalysis          WarrantyNotificationType = "warranty_in_analysis"
	WarrantyNotificationInspectionScheduled WarrantyNotificationType = "warranty_inspection_scheduled"
	WarrantyNotificationInspectionDone      WarrantyNotificationType = "warranty_inspection_done"
	WarrantyNotificationApproved            WarrantyNotificationType = "warranty_approved"
	WarrantyNotificationRejected            WarrantyNotificationType = "warranty_rejected"
	WarrantyNotificationInExecution         WarrantyNotificationType = "warranty_in_execution"
	WarrantyNotificationCompleted           WarrantyNotificationType = "warranty_completed"
	WarrantyNotificationSLAWarning          WarrantyNotificationType = "sla_warning"
	WarrantyNotificationSLAExpired          WarrantyNotificationType = "sla_expired"
)

type WarrantyNotificationTemplate struct {
	Type      WarrantyNotificationType
	Title     string
	Message   string
	Urgent    bool
	ForClient bool
	ForAdmin  bool
	// ClientType is the client-flow notification used to deliver this template.
	ClientType NotificationType
}

// StageNotification returns the template emitted when a request enters stage.
func StageNotification(stage WarrantyStage) (WarrantyNotificationTemplate, bool) {
	switch stage {
	case WarrantyStageOpened:
		return WarrantyNotificationOpened.Template()
	case WarrantyStageInAnalysis:
		return WarrantyNotificationInAnalysis.Template()
	case WarrantyStageInspectionScheduled:
		return WarrantyNotificationInspectionScheduled.Template()
	case WarrantyStageInspectionCompleted:
		return WarrantyNotificationInspectionDone.Template()
	case WarrantyStageApproved:
		return WarrantyNotificationApproved.Template()
	case WarrantyStageRejected:
		return WarrantyNotificationRejected.Template()
	case WarrantyStageInExecution:
		return WarrantyNotificationInExecution.Template()
	case WarrantyStageCompleted:
		return WarrantyNotificationCompleted.Template()
	}
	return WarrantyNotificationTemplate{}, false
}

func (t WarrantyNotificationType) Template() (WarrantyNotificationTemplate, bool) {
	switch t {
	case WarrantyNotificationOpened:
		return WarrantyNotificationTemplate{t, "Solicitação Registrada", "Sua solicitação de garantia foi registrada com sucesso.", false, true, false, NotificationTypeWarrantyCreated}, true
	case WarrantyNotificationInAnalysis:
		return WarrantyNotificationTemplate{t, "Em Análise", "Sua solicitação está sendo analisada pela equipe técnica.", false, true, false, NotificationTypeWarrantyUpdated}, true
	case WarrantyNotificationInspectionScheduled:
		return WarrantyNotificationTemplate{t, "Vistoria Agendada", "Uma vistoria técnica foi agendada para seu imóvel.", true, true, false, NotificationTypeWarrantyUpdated}, true
	case WarrantyNotificationInspectionDone:
		return WarrantyNotificationTemplate{t, "Vistoria Realizada", "A vistoria foi concluída e está aguardando decisão.", false, true, false, NotificationTypeWarrantyUpdated}, true
	case WarrantyNotificationApproved:
		return WarrantyNotificationTemplate{t, "Garantia Aprovada", "Sua solicitação foi aprovada e será executada.", true, true, false, NotificationTypeWarrantyUpdated}, true
	case WarrantyNotificationRejected:
		return WarrantyNotificationTemplate{t, "Garantia Não Aprovada", "Sua solicitação foi analisada e não foi aprovada.", true, true, false, NotificationTypeWarrantyUpdated}, true
	case WarrantyNotificationInExecution:
		return WarrantyNotificationTemplate{t, "Reparo Iniciado", "O reparo da sua garantia foi iniciado.", false, true, false, NotificationTypeWarrantyUpdated}, true
	case WarrantyNotificationCompleted:
		return WarrantyNotificationTemplate{t, "Garantia Concluída", "O atendimento da sua garantia foi finalizado com sucesso.", false, true, false, NotificationTypeWarrantyCompleted}, true
	case WarrantyNotificationSLAWarning:
		return WarrantyNotificationTemplate{t, "Prazo Próximo do Limite", "Uma solicitação está com menos de 20% do prazo SLA restante.", true, false, true, NotificationTypeSLAWarning}, true
	case WarrantyNotificationSLAExpired:
		return WarrantyNotificationTemplate{t, "SLA Estourado", "O prazo SLA de uma solicitação foi excedido.", true, true, true, NotificationTypeSLAExpired}, true
	}
	return WarrantyNotificationTemplate{}, false
}
