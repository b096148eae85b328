package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"choco_checkout/internal/domain/entities"
	"choco_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var (
	ErrLedgerUnavailable = errors.New("order ledger unavailable: database not configured")
	ErrOrderExists       = errors.New("order already recorded")
	ErrInvalidOrder      = errors.New("order is missing required fields")
)

type orderLineItem struct {
	ProductID string `dynamodbav:"product_id"`
	Quantity  int    `dynamodbav:"quantity"`
	UnitPrice string `dynamodbav:"unit_price"`
}

type orderItem struct {
	ID         string          `dynamodbav:"id"`
	PaymentID  string          `dynamodbav:"payment_id"`
	TxID       string          `dynamodbav:"txid"`
	Items      []orderLineItem `dynamodbav:"items"`
	TotalPrice string          `dynamodbav:"total_price"`
	CreatedAt  string          `dynamodbav:"created_at"`
}

// OrderDynamoLedger is the append-only order store.
//
// Table requirements:
//   - PK: id (string)
//
// Records are only ever inserted; there is no update or delete path.
type OrderDynamoLedger struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IOrderLedger = (*OrderDynamoLedger)(nil)

func NewOrderDynamoLedger(ddb DynamoDBAPI, tableName string) *OrderDynamoLedger {
	return &OrderDynamoLedger{ddb: ddb, tableName: tableName}
}

func (r *OrderDynamoLedger) Available() bool { return r.ddb != nil }

func (r *OrderDynamoLedger) Append(ctx context.Context, o entities.Order) error {
	if o.ID == "" || o.PaymentID == "" || o.TxID == "" || len(o.Items) == 0 {
		return ErrInvalidOrder
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}

	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return ErrOrderExists
		}
		log.Printf("[order][ledger] append failed order_id=%s payment_id=%s err=%v", o.ID, o.PaymentID, err)
		return err
	}
	log.Printf("[order][ledger] appended order_id=%s payment_id=%s txid=%s", o.ID, o.PaymentID, o.TxID)
	return nil
}

func (r *OrderDynamoLedger) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	lines := make([]orderLineItem, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, orderLineItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.String(),
		})
	}
	return orderItem{
		ID:         o.ID,
		PaymentID:  o.PaymentID,
		TxID:       o.TxID,
		Items:      lines,
		TotalPrice: o.TotalPrice.String(),
		CreatedAt:  formatTime(o.CreatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	items := make([]entities.OrderItem, 0, len(it.Items))
	for _, l := range it.Items {
		items = append(items, entities.OrderItem{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: parseDecimal(l.UnitPrice),
		})
	}
	return entities.Order{
		ID:         it.ID,
		PaymentID:  it.PaymentID,
		TxID:       it.TxID,
		Items:      items,
		TotalPrice: parseDecimal(it.TotalPrice),
		CreatedAt:  parseTime(it.CreatedAt),
	}
}
