package repository

import (
	"context"

	"portal_posvenda/internal/domain/entities"
	"portal_posvenda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultAuditLogsTableName = "audit_logs"

type auditLogItem struct {
	ID              string            `dynamodbav:"id"`
	EntityType      string            `dynamodbav:"entity_type"`
	EntityID        string            `dynamodbav:"entity_id"`
	Action          string            `dynamodbav:"action"`
	PerformedBy     string            `dynamodbav:"performed_by"`
	PerformedByName string            `dynamodbav:"performed_by_name,omitempty"`
	PerformedByRole string            `dynamodbav:"performed_by_role"`
	Timestamp       string            `dynamodbav:"timestamp"`
	Details         string            `dynamodbav:"details,omitempty"`
	Metadata        map[string]string `dynamodbav:"metadata,omitempty"`
}

// AuditLogDynamoRepository appends audit entries. Entries are never updated.
//
// Table requirements:
//   - PK: id (string)
type AuditLogDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IAuditLogRepository = (*AuditLogDynamoRepository)(nil)

func NewAuditLogDynamoRepository(ddb *dynamodb.Client, tableName string) *AuditLogDynamoRepository {
	return &AuditLogDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultAuditLogsTableName),
	}
}

func (r *AuditLogDynamoRepository) Create(ctx context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error) {
	av, err := attributevalue.MarshalMap(auditLogItem{
		ID:              e.ID,
		EntityType:      string(e.EntityType),
		EntityID:        e.EntityID,
		Action:          string(e.Action),
		PerformedBy:     e.PerformedBy,
		PerformedByName: e.PerformedByName,
		PerformedByRole: string(e.PerformedByRole),
		Timestamp:       formatTime(e.Timestamp),
		Details:         e.Details,
		Metadata:        e.Metadata,
	})
	if err != nil {
		return entities.AuditLogEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.AuditLogEntry{}, err
	}
	return e, nil
}

func (r *AuditLogDynamoRepository) List(ctx context.Context) ([]entities.AuditLogEntry, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	var items []auditLogItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, err
	}

	out := make([]entities.AuditLogEntry, 0, len(items))
	for _, it := range items {
		out = append(out, entities.AuditLogEntry{
			ID:              it.ID,
			EntityType:      entities.AuditEntityType(it.EntityType),
			EntityID:        it.EntityID,
			Action:          entities.AuditAction(it.Action),
			PerformedBy:     it.PerformedBy,
			PerformedByName: it.PerformedByName,
			PerformedByRole: entities.AuditRole(it.PerformedByRole),
			Timestamp:       parseTime(it.Timestamp),
			Details:         it.Details,
			Metadata:        it.Metadata,
		})
	}
	return out, nil
}
