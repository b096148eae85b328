package repository

import (
	"context"
	"log"
	"time"

	"choco_checkout/internal/domain/entities"
	"choco_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsStatusIndex = "status-index"

type paymentJournalItem struct {
	PaymentID string `dynamodbav:"payment_id"`
	SessionID string `dynamodbav:"session_id,omitempty"`
	Status    string `dynamodbav:"status"`
	Amount    string `dynamodbav:"amount"`
	TxID      string `dynamodbav:"txid,omitempty"`
	OrderID   string `dynamodbav:"order_id,omitempty"`
	LastError string `dynamodbav:"last_error,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PaymentDynamoJournal keeps the last known state of every payment this
// service has touched.
//
// Table requirements:
//   - PK: payment_id (string)
//   - GSI: status-index (PK: status)
type PaymentDynamoJournal struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPaymentJournal = (*PaymentDynamoJournal)(nil)

func NewPaymentDynamoJournal(ddb DynamoDBAPI, tableName string) *PaymentDynamoJournal {
	return &PaymentDynamoJournal{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoJournal) Available() bool { return r.ddb != nil }

// Record upserts the entry. created_at is only written the first time a payment is seen.
func (r *PaymentDynamoJournal) Record(ctx context.Context, e entities.PaymentJournalEntry) error {
	_, err := r.update(ctx, e.PaymentID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #amount = :amount, #session_id = :session_id, #txid = :txid, " +
			"#order_id = :order_id, #last_error = :last_error, #updated_at = :now, " +
			"#created_at = if_not_exists(#created_at, :now)"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(e.Status)},
			":amount":     &types.AttributeValueMemberS{Value: e.Amount.String()},
			":session_id": &types.AttributeValueMemberS{Value: e.SessionID},
			":txid":       &types.AttributeValueMemberS{Value: e.TxID},
			":order_id":   &types.AttributeValueMemberS{Value: e.OrderID},
			":last_error": &types.AttributeValueMemberS{Value: e.LastError},
			":now":        &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#amount":     "amount",
			"#session_id": "session_id",
			"#txid":       "txid",
			"#order_id":   "order_id",
			"#last_error": "last_error",
			"#updated_at": "updated_at",
			"#created_at": "created_at",
		}
		return expr, vals, names
	})
	if err != nil {
		log.Printf("[payment][journal] record failed payment_id=%s status=%s err=%v", e.PaymentID, e.Status, err)
	}
	return err
}

func (r *PaymentDynamoJournal) GetByID(ctx context.Context, paymentID string) (entities.PaymentJournalEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"payment_id": &types.AttributeValueMemberS{Value: paymentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentJournalEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentJournalEntry{}, nil
	}

	var it paymentJournalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentJournalEntry{}, err
	}
	return fromPaymentJournalItem(it), nil
}

func (r *PaymentDynamoJournal) ListByStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.PaymentJournalEntry, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	}

	var entries []entities.PaymentJournalEntry
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it paymentJournalItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			entries = append(entries, fromPaymentJournalItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return entries, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *PaymentDynamoJournal) update(
	ctx context.Context,
	paymentID string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.PaymentJournalEntry, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"payment_id": &types.AttributeValueMemberS{Value: paymentID},
		},
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.PaymentJournalEntry{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PaymentJournalEntry{}, nil
	}
	var it paymentJournalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentJournalEntry{}, err
	}
	return fromPaymentJournalItem(it), nil
}

func fromPaymentJournalItem(it paymentJournalItem) entities.PaymentJournalEntry {
	return entities.PaymentJournalEntry{
		PaymentID: it.PaymentID,
		SessionID: it.SessionID,
		Status:    entities.PaymentStatus(it.Status),
		Amount:    parseDecimal(it.Amount),
		TxID:      it.TxID,
		OrderID:   it.OrderID,
		LastError: it.LastError,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
