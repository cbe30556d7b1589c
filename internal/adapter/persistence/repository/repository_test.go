package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"portal_posvenda/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeDynamo struct {
	puts       []*dynamodb.PutItemInput
	updates    []*dynamodb.UpdateItemInput
	queries    []*dynamodb.QueryInput
	scanPages  [][]map[string]types.AttributeValue
	scanCalls  int
	queryItems []map[string]types.AttributeValue
	updateOut  *dynamodb.UpdateItemOutput
	updateErr  error
	putErr     error
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	return &dynamodb.PutItemOutput{}, f.putErr
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut == nil {
		return &dynamodb.UpdateItemOutput{}, nil
	}
	return f.updateOut, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	return &dynamodb.QueryOutput{Items: f.queryItems}, nil
}

// Scan serves one page per call and sets LastEvaluatedKey while pages remain.
func (f *fakeDynamo) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.scanCalls >= len(f.scanPages) {
		return &dynamodb.ScanOutput{}, nil
	}
	out := &dynamodb.ScanOutput{Items: f.scanPages[f.scanCalls]}
	f.scanCalls++
	if f.scanCalls < len(f.scanPages) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: "cursor"},
		}
	}
	return out, nil
}

func sampleRequest() entities.WarrantyRequestFlow {
	t0 := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	opened := entities.WarrantyStageOpened
	analysis := entities.WarrantyStageInAnalysis
	return entities.WarrantyRequestFlow{
		ID:             "req-1",
		ClientID:       "client-1",
		PropertyID:     "prop-1",
		Title:          "Infiltração",
		Category:       "Impermeabilização",
		Priority:       entities.PriorityHigh,
		CurrentStage:   entities.WarrantyStageInspectionCompleted,
		StageStartedAt: t0.Add(48 * time.Hour),
		CreatedAt:      t0,
		UpdatedAt:      t0.Add(48 * time.Hour),
		SLAConfig:      entities.FallbackSLAConfig("Impermeabilização"),
		Details: entities.StageDetails{
			Inspection: &entities.InspectionDetails{ScheduledFor: t0.Add(24 * time.Hour), TechnicianID: "tech-1", Notes: "ok"},
			Decision:   entities.RejectionDecision{RejectedAt: t0.Add(72 * time.Hour), Reason: "mau uso"},
		},
		History: []entities.WarrantyStatusHistory{
			{ID: "h1", RequestID: "req-1", ToStatus: opened, ChangedAt: t0, ChangedBy: "client-1"},
			{ID: "h2", RequestID: "req-1", FromStatus: &opened, ToStatus: analysis, ChangedAt: t0.Add(time.Hour), ChangedBy: "admin", IsAutomatic: true},
		},
	}
}

func TestWarrantyRequestDynamoRepository_SaveAndList(t *testing.T) {
	ctx := context.Background()
	fake := &fakeDynamo{}
	repo := &WarrantyRequestDynamoRepository{ddb: fake, tableName: "warranty_requests"}

	req := sampleRequest()
	if err := repo.Save(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.puts) != 1 || aws.ToString(fake.puts[0].TableName) != "warranty_requests" {
		t.Fatalf("unexpected put calls: %+v", fake.puts)
	}

	second, err := attributevalue.MarshalMap(toWarrantyRequestItem(entities.WarrantyRequestFlow{ID: "req-2", CurrentStage: entities.WarrantyStageOpened}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	fake.scanPages = [][]map[string]types.AttributeValue{{fake.puts[0].Item}, {second}}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || fake.scanCalls != 2 {
		t.Fatalf("expected both pages, got %d items in %d calls", len(got), fake.scanCalls)
	}

	r := got[0]
	if r.CurrentStage != req.CurrentStage || !r.CreatedAt.Equal(req.CreatedAt) || r.SLAConfig.TotalHours != req.SLAConfig.TotalHours {
		t.Fatalf("unexpected request: %+v", r)
	}
	if len(r.History) != 2 || r.History[0].FromStatus != nil || r.History[1].FromStatus == nil || *r.History[1].FromStatus != entities.WarrantyStageOpened {
		t.Fatalf("history not preserved: %+v", r.History)
	}
	rejection, ok := r.Details.Decision.(entities.RejectionDecision)
	if !ok || rejection.Reason != "mau uso" {
		t.Fatalf("decision not preserved: %#v", r.Details.Decision)
	}
	if r.Details.Inspection == nil || r.Details.Inspection.TechnicianID != "tech-1" || r.Details.Execution != nil {
		t.Fatalf("stage details not preserved: %+v", r.Details)
	}
}

func TestNotificationDynamoRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("list queries recipient index newest first", func(t *testing.T) {
		item, _ := attributevalue.MarshalMap(toNotificationItem(entities.Notification{ID: "n1", RecipientID: "client-1", Type: entities.NotificationTypeWarrantyUpdated}))
		fake := &fakeDynamo{queryItems: []map[string]types.AttributeValue{item}}
		repo := &NotificationDynamoRepository{ddb: fake, tableName: "notifications"}

		got, err := repo.ListByRecipient(ctx, "client-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "n1" {
			t.Fatalf("unexpected notifications: %+v", got)
		}
		q := fake.queries[0]
		if aws.ToString(q.IndexName) != notificationsRecipientIndex || aws.ToBool(q.ScanIndexForward) {
			t.Fatalf("unexpected query: %+v", q)
		}
	})

	t.Run("mark as read on foreign id returns zero value", func(t *testing.T) {
		fake := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{Message: aws.String("failed")}}
		repo := &NotificationDynamoRepository{ddb: fake, tableName: "notifications"}

		got, err := repo.MarkAsRead(ctx, "client-2", "n1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero notification, got %+v", got)
		}
	})

	t.Run("mark as read propagates other errors", func(t *testing.T) {
		boom := errors.New("boom")
		repo := &NotificationDynamoRepository{ddb: &fakeDynamo{updateErr: boom}, tableName: "notifications"}
		if _, err := repo.MarkAsRead(ctx, "client-1", "n1"); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	})

	t.Run("mark as read returns updated item", func(t *testing.T) {
		attrs, _ := attributevalue.MarshalMap(toNotificationItem(entities.Notification{ID: "n1", RecipientID: "client-1", Read: true}))
		repo := &NotificationDynamoRepository{ddb: &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: attrs}}, tableName: "notifications"}
		got, err := repo.MarkAsRead(ctx, "client-1", "n1")
		if err != nil || !got.Read {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})
}

func TestAuditLogDynamoRepository(t *testing.T) {
	ctx := context.Background()
	fake := &fakeDynamo{}
	repo := &AuditLogDynamoRepository{ddb: fake, tableName: "audit_logs"}

	entry := entities.AuditLogEntry{
		ID: "a1", EntityType: entities.AuditEntityWarranty, EntityID: "req-1",
		Action: entities.AuditActionStageChanged, PerformedBy: "admin", PerformedByRole: entities.AuditRoleAdmin,
		Timestamp: time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC), Metadata: map[string]string{"to": "approved"},
	}
	if _, err := repo.Create(ctx, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fake.scanPages = [][]map[string]types.AttributeValue{{fake.puts[0].Item}}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Action != entities.AuditActionStageChanged || got[0].Metadata["to"] != "approved" || !got[0].Timestamp.Equal(entry.Timestamp) {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestMemoryRepositories(t *testing.T) {
	ctx := context.Background()

	t.Run("warranty requests upsert keeps order", func(t *testing.T) {
		repo := NewWarrantyRequestMemoryRepository()
		_ = repo.Save(ctx, entities.WarrantyRequestFlow{ID: "a", Title: "v1"})
		_ = repo.Save(ctx, entities.WarrantyRequestFlow{ID: "b"})
		_ = repo.Save(ctx, entities.WarrantyRequestFlow{ID: "a", Title: "v2"})
		got, _ := repo.List(ctx)
		if len(got) != 2 || got[0].ID != "a" || got[0].Title != "v2" {
			t.Fatalf("unexpected list: %+v", got)
		}
	})

	t.Run("notifications mark as read checks recipient", func(t *testing.T) {
		repo := NewNotificationMemoryRepository()
		_, _ = repo.Create(ctx, entities.Notification{ID: "n1", RecipientID: "client-1"})
		if got, _ := repo.MarkAsRead(ctx, "client-2", "n1"); got.ID != "" {
			t.Fatalf("foreign recipient marked notification")
		}
		if got, _ := repo.MarkAsRead(ctx, "client-1", "n1"); !got.Read {
			t.Fatalf("notification not marked")
		}
		list, _ := repo.ListByRecipient(ctx, "client-1")
		if len(list) != 1 || !list[0].Read {
			t.Fatalf("unexpected list: %+v", list)
		}
	})

	t.Run("audit log returns copy", func(t *testing.T) {
		repo := NewAuditLogMemoryRepository()
		_, _ = repo.Create(ctx, entities.AuditLogEntry{ID: "a1"})
		list, _ := repo.List(ctx)
		list[0].ID = "changed"
		again, _ := repo.List(ctx)
		if again[0].ID != "a1" {
			t.Fatalf("stored entry mutated")
		}
	})
}

func TestSLAAlertMemoryLedger(t *testing.T) {
	ctx := context.Background()
	l := NewSLAAlertMemoryLedger()
	first, _ := l.MarkOnce(ctx, "req-1:in_analysis:t:expired")
	second, _ := l.MarkOnce(ctx, "req-1:in_analysis:t:expired")
	other, _ := l.MarkOnce(ctx, "req-1:in_analysis:t:warning")
	if !first || second || !other {
		t.Fatalf("unexpected ledger results: %v %v %v", first, second, other)
	}
}

func TestSLAAlertMemoryLedger_Release(t *testing.T) {
	ctx := context.Background()
	l := NewSLAAlertMemoryLedger()
	_, _ = l.MarkOnce(ctx, "req-1:in_analysis:t:expired")
	if err := l.Release(ctx, "req-1:in_analysis:t:expired"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, _ := l.MarkOnce(ctx, "req-1:in_analysis:t:expired")
	if !again {
		t.Fatal("released key should be claimable again")
	}
}
