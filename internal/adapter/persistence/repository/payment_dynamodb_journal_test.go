package repository

import (
	"context"
	"strings"
	"testing"

	"choco_checkout/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func TestPaymentDynamoJournal_RecordUpserts(t *testing.T) {
	ddb := &fakeDynamoDB{}
	journal := NewPaymentDynamoJournal(ddb, "payments")

	err := journal.Record(context.Background(), entities.PaymentJournalEntry{
		PaymentID: "pay-1",
		SessionID: "sess-1",
		Status:    entities.PaymentStatusApproved,
		Amount:    decimal.RequireFromString("10.00"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := ddb.updateIn
	if in == nil {
		t.Fatalf("expected UpdateItem call")
	}
	if in.ConditionExpression != nil {
		t.Fatalf("record must upsert, got condition %s", aws.ToString(in.ConditionExpression))
	}
	if !strings.Contains(aws.ToString(in.UpdateExpression), "if_not_exists(#created_at, :now)") {
		t.Fatalf("created_at must be preserved: %s", aws.ToString(in.UpdateExpression))
	}
	key := in.Key["payment_id"].(*types.AttributeValueMemberS)
	if key.Value != "pay-1" {
		t.Fatalf("unexpected key: %s", key.Value)
	}
	status := in.ExpressionAttributeValues[":status"].(*types.AttributeValueMemberS)
	if status.Value != "approved" {
		t.Fatalf("unexpected status: %s", status.Value)
	}
}

func TestPaymentDynamoJournal_ListByStatusPaginates(t *testing.T) {
	page1, _ := attributevalue.MarshalMap(paymentJournalItem{PaymentID: "pay-1", Status: "completed", Amount: "10"})
	page2, _ := attributevalue.MarshalMap(paymentJournalItem{PaymentID: "pay-2", Status: "completed", Amount: "4.5", OrderID: "ord-2"})
	lastKey := map[string]types.AttributeValue{"payment_id": &types.AttributeValueMemberS{Value: "pay-1"}}

	ddb := &fakeDynamoDB{queryOut: []*dynamodb.QueryOutput{
		{Items: []map[string]types.AttributeValue{page1}, LastEvaluatedKey: lastKey},
		{Items: []map[string]types.AttributeValue{page2}},
	}}
	journal := NewPaymentDynamoJournal(ddb, "payments")

	entries, err := journal.ListByStatus(context.Background(), entities.PaymentStatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if len(ddb.queryIns) != 2 || ddb.queryIns[1].ExclusiveStartKey == nil {
		t.Fatalf("expected a second page request")
	}
	if aws.ToString(ddb.queryIns[0].IndexName) != "status-index" {
		t.Fatalf("unexpected index: %s", aws.ToString(ddb.queryIns[0].IndexName))
	}
	if !entries[0].Unrecorded() || entries[1].Unrecorded() {
		t.Fatalf("unexpected unrecorded flags: %+v", entries)
	}
}

func TestPaymentDynamoJournal_GetByIDNotFound(t *testing.T) {
	journal := NewPaymentDynamoJournal(&fakeDynamoDB{}, "payments")

	got, err := journal.GetByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PaymentID != "" {
		t.Fatalf("expected zero entry, got %+v", got)
	}
}
