package repository

import (
	"context"
	"errors"

	"portal_posvenda/internal/domain/entities"
	"portal_posvenda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNotificationsTableName = "notifications"
	notificationsRecipientIndex   = "recipient_id-index"
)

type notificationItem struct {
	ID                string `dynamodbav:"id"`
	RecipientID       string `dynamodbav:"recipient_id"`
	Type              string `dynamodbav:"type"`
	Title             string `dynamodbav:"title"`
	Message           string `dynamodbav:"message"`
	Urgent            bool   `dynamodbav:"urgent"`
	Read              bool   `dynamodbav:"read"`
	CreatedAt         string `dynamodbav:"created_at"`
	RelatedEntityID   string `dynamodbav:"related_entity_id,omitempty"`
	RelatedEntityType string `dynamodbav:"related_entity_type,omitempty"`
	ActionURL         string `dynamodbav:"action_url,omitempty"`
}

// NotificationDynamoRepository persists notifications in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI recipient_id-index: PK recipient_id (string), SK created_at (string)
type NotificationDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client, tableName string) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return entities.Notification{}, err
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
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) ListByRecipient(ctx context.Context, recipientID string) ([]entities.Notification, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsRecipientIndex),
		KeyConditionExpression: aws.String("#recipient_id = :recipient_id"),
		ExpressionAttributeNames: map[string]string{
			"#recipient_id": "recipient_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":recipient_id": &types.AttributeValueMemberS{Value: recipientID},
		},
		ScanIndexForward: aws.Bool(false),
	})

	var out []entities.Notification
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []notificationItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromNotificationItem(it))
		}
	}
	return out, nil
}

// MarkAsRead returns a zero Notification when id is unknown or belongs to another recipient.
func (r *NotificationDynamoRepository) MarkAsRead(ctx context.Context, recipientID, id string) (entities.Notification, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #recipient_id = :recipient_id"),
		UpdateExpression:    aws.String("SET #read = :read"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":read":         &types.AttributeValueMemberBOOL{Value: true},
			":recipient_id": &types.AttributeValueMemberS{Value: recipientID},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#read": "read", "#recipient_id": "recipient_id"},
			map[string]string{"#id": "id"},
		),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Notification{}, nil
		}
		return entities.Notification{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Notification{}, nil
	}
	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:                n.ID,
		RecipientID:       n.RecipientID,
		Type:              string(n.Type),
		Title:             n.Title,
		Message:           n.Message,
		Urgent:            n.Urgent,
		Read:              n.Read,
		CreatedAt:         formatTime(n.CreatedAt),
		RelatedEntityID:   n.Metadata.RelatedEntityID,
		RelatedEntityType: string(n.Metadata.RelatedEntityType),
		ActionURL:         n.Metadata.ActionURL,
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	return entities.Notification{
		ID:          it.ID,
		RecipientID: it.RecipientID,
		Type:        entities.NotificationType(it.Type),
		Title:       it.Title,
		Message:     it.Message,
		Urgent:      it.Urgent,
		Read:        it.Read,
		CreatedAt:   parseTime(it.CreatedAt),
		Metadata: entities.NotificationMetadata{
			RelatedEntityID:   it.RelatedEntityID,
			RelatedEntityType: entities.RelatedEntityType(it.RelatedEntityType),
			ActionURL:         it.ActionURL,
		},
	}
}
