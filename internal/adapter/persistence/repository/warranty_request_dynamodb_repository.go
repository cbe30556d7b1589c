package repository

import (
	"context"

	"portal_posvenda/internal/domain/entities"
	"portal_posvenda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultWarrantyRequestsTableName = "warranty_requests"

type warrantyRequestItem struct {
	ID             string `dynamodbav:"id"`
	ClientID       string `dynamodbav:"client_id"`
	ClientName     string `dynamodbav:"client_name,omitempty"`
	PropertyID     string `dynamodbav:"property_id"`
	PropertyName   string `dynamodbav:"property_name,omitempty"`
	UnitNumber     string `dynamodbav:"unit_number,omitempty"`
	Title          string `dynamodbav:"title"`
	Description    string `dynamodbav:"description,omitempty"`
	Category       string `dynamodbav:"category"`
	Priority       string `dynamodbav:"priority"`
	CurrentStage   string `dynamodbav:"current_stage"`
	StageStartedAt string `dynamodbav:"stage_started_at"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
	SLADeadline    string `dynamodbav:"sla_deadline,omitempty"`
	SLAStatus      string `dynamodbav:"sla_status,omitempty"`
	AssignedTo     string `dynamodbav:"assigned_to,omitempty"`
	AssignedToName string `dynamodbav:"assigned_to_name,omitempty"`

	SLAConfig slaConfigItem `dynamodbav:"sla_config"`

	Inspection *inspectionItem `dynamodbav:"inspection,omitempty"`
	Decision   *decisionItem   `dynamodbav:"decision,omitempty"`
	Execution  *noteItem       `dynamodbav:"execution,omitempty"`
	Completion *noteItem       `dynamodbav:"completion,omitempty"`

	History []historyItem `dynamodbav:"history"`
}

type slaConfigItem struct {
	Category        string `dynamodbav:"category"`
	AnalysisHours   int    `dynamodbav:"analysis_hours"`
	InspectionHours int    `dynamodbav:"inspection_hours"`
	DecisionHours   int    `dynamodbav:"decision_hours"`
	ExecutionHours  int    `dynamodbav:"execution_hours"`
	TotalHours      int    `dynamodbav:"total_hours"`
}

type inspectionItem struct {
	ScheduledFor   string `dynamodbav:"scheduled_for,omitempty"`
	TechnicianID   string `dynamodbav:"technician_id,omitempty"`
	TechnicianName string `dynamodbav:"technician_name,omitempty"`
	Notes          string `dynamodbav:"notes,omitempty"`
}

type decisionItem struct {
	Stage     string `dynamodbav:"stage"`
	DecidedAt string `dynamodbav:"decided_at"`
	Text      string `dynamodbav:"text,omitempty"`
}

type noteItem struct {
	At    string `dynamodbav:"at"`
	Notes string `dynamodbav:"notes,omitempty"`
}

type historyItem struct {
	ID          string `dynamodbav:"id"`
	FromStatus  string `dynamodbav:"from_status,omitempty"`
	ToStatus    string `dynamodbav:"to_status"`
	ChangedAt   string `dynamodbav:"changed_at"`
	ChangedBy   string `dynamodbav:"changed_by"`
	IsAutomatic bool   `dynamodbav:"is_automatic"`
	Notes       string `dynamodbav:"notes,omitempty"`
}

// WarrantyRequestDynamoRepository stores whole request snapshots.
//
// Table requirements:
//   - PK: id (string)
//
// History is embedded in the item. A request accumulates at most one entry per
// stage, so the item stays far below the 400KB limit.
type WarrantyRequestDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IWarrantyRequestRepository = (*WarrantyRequestDynamoRepository)(nil)

func NewWarrantyRequestDynamoRepository(ddb *dynamodb.Client, tableName string) *WarrantyRequestDynamoRepository {
	return &WarrantyRequestDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultWarrantyRequestsTableName),
	}
}

func (r *WarrantyRequestDynamoRepository) Save(ctx context.Context, req entities.WarrantyRequestFlow) error {
	av, err := attributevalue.MarshalMap(toWarrantyRequestItem(req))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *WarrantyRequestDynamoRepository) List(ctx context.Context) ([]entities.WarrantyRequestFlow, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	var items []warrantyRequestItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, err
	}
	out := make([]entities.WarrantyRequestFlow, 0, len(items))
	for _, it := range items {
		out = append(out, fromWarrantyRequestItem(it))
	}
	return out, nil
}

func toWarrantyRequestItem(r entities.WarrantyRequestFlow) warrantyRequestItem {
	it := warrantyRequestItem{
		ID:             r.ID,
		ClientID:       r.ClientID,
		ClientName:     r.ClientName,
		PropertyID:     r.PropertyID,
		PropertyName:   r.PropertyName,
		UnitNumber:     r.UnitNumber,
		Title:          r.Title,
		Description:    r.Description,
		Category:       r.Category,
		Priority:       string(r.Priority),
		CurrentStage:   string(r.CurrentStage),
		StageStartedAt: formatTime(r.StageStartedAt),
		CreatedAt:      formatTime(r.CreatedAt),
		UpdatedAt:      formatTime(r.UpdatedAt),
		SLADeadline:    formatTime(r.SLADeadline),
		SLAStatus:      string(r.SLAStatus),
		AssignedTo:     r.AssignedTo,
		AssignedToName: r.AssignedToName,
		SLAConfig: slaConfigItem{
			Category:        r.SLAConfig.Category,
			AnalysisHours:   r.SLAConfig.AnalysisHours,
			InspectionHours: r.SLAConfig.InspectionHours,
			DecisionHours:   r.SLAConfig.DecisionHours,
			ExecutionHours:  r.SLAConfig.ExecutionHours,
			TotalHours:      r.SLAConfig.TotalHours,
		},
		History: make([]historyItem, 0, len(r.History)),
	}

	if in := r.Details.Inspection; in != nil {
		it.Inspection = &inspectionItem{
			ScheduledFor:   formatTime(in.ScheduledFor),
			TechnicianID:   in.TechnicianID,
			TechnicianName: in.TechnicianName,
			Notes:          in.Notes,
		}
	}
	switch d := r.Details.Decision.(type) {
	case entities.ApprovalDecision:
		it.Decision = &decisionItem{Stage: string(d.DecidedStage()), DecidedAt: formatTime(d.ApprovedAt), Text: d.Notes}
	case entities.RejectionDecision:
		it.Decision = &decisionItem{Stage: string(d.DecidedStage()), DecidedAt: formatTime(d.RejectedAt), Text: d.Reason}
	}
	if ex := r.Details.Execution; ex != nil {
		it.Execution = &noteItem{At: formatTime(ex.StartedAt), Notes: ex.Notes}
	}
	if c := r.Details.Completion; c != nil {
		it.Completion = &noteItem{At: formatTime(c.CompletedAt), Notes: c.Notes}
	}

	for _, h := range r.History {
		hi := historyItem{
			ID:          h.ID,
			ToStatus:    string(h.ToStatus),
			ChangedAt:   formatTime(h.ChangedAt),
			ChangedBy:   h.ChangedBy,
			IsAutomatic: h.IsAutomatic,
			Notes:       h.Notes,
		}
		if h.FromStatus != nil {
			hi.FromStatus = string(*h.FromStatus)
		}
		it.History = append(it.History, hi)
	}
	return it
}

func fromWarrantyRequestItem(it warrantyRequestItem) entities.WarrantyRequestFlow {
	r := entities.WarrantyRequestFlow{
		ID:             it.ID,
		ClientID:       it.ClientID,
		ClientName:     it.ClientName,
		PropertyID:     it.PropertyID,
		PropertyName:   it.PropertyName,
		UnitNumber:     it.UnitNumber,
		Title:          it.Title,
		Description:    it.Description,
		Category:       it.Category,
		Priority:       entities.Priority(it.Priority),
		CurrentStage:   entities.WarrantyStage(it.CurrentStage),
		StageStartedAt: parseTime(it.StageStartedAt),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
		SLADeadline:    parseTime(it.SLADeadline),
		SLAStatus:      entities.SLAStatus(it.SLAStatus),
		AssignedTo:     it.AssignedTo,
		AssignedToName: it.AssignedToName,
		SLAConfig: entities.SLAConfig{
			Category:        it.SLAConfig.Category,
			AnalysisHours:   it.SLAConfig.AnalysisHours,
			InspectionHours: it.SLAConfig.InspectionHours,
			DecisionHours:   it.SLAConfig.DecisionHours,
			ExecutionHours:  it.SLAConfig.ExecutionHours,
			TotalHours:      it.SLAConfig.TotalHours,
		},
	}

	if in := it.Inspection; in != nil {
		r.Details.Inspection = &entities.InspectionDetails{
			ScheduledFor:   parseTime(in.ScheduledFor),
			TechnicianID:   in.TechnicianID,
			TechnicianName: in.TechnicianName,
			Notes:          in.Notes,
		}
	}
	if d := it.Decision; d != nil {
		switch entities.WarrantyStage(d.Stage) {
		case entities.WarrantyStageApproved:
			r.Details.Decision = entities.ApprovalDecision{ApprovedAt: parseTime(d.DecidedAt), Notes: d.Text}
		case entities.WarrantyStageRejected:
			r.Details.Decision = entities.RejectionDecision{RejectedAt: parseTime(d.DecidedAt), Reason: d.Text}
		}
	}
	if ex := it.Execution; ex != nil {
		r.Details.Execution = &entities.ExecutionDetails{StartedAt: parseTime(ex.At), Notes: ex.Notes}
	}
	if c := it.Completion; c != nil {
		r.Details.Completion = &entities.CompletionDetails{CompletedAt: parseTime(c.At), Notes: c.Notes}
	}

	for _, h := range it.History {
		entry := entities.WarrantyStatusHistory{
			ID:          h.ID,
			RequestID:   it.ID,
			ToStatus:    entities.WarrantyStage(h.ToStatus),
			ChangedAt:   parseTime(h.ChangedAt),
			ChangedBy:   h.ChangedBy,
			IsAutomatic: h.IsAutomatic,
			Notes:       h.Notes,
		}
		if h.FromStatus != "" {
			from := entities.WarrantyStage(h.FromStatus)
			entry.FromStatus = &from
		}
		r.History = append(r.History, entry)
	}
	return r
}
