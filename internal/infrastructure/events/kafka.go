package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"choco_checkout/internal/config"
	"choco_checkout/internal/domain/entities"
	"choco_checkout/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

const (
	EventOrderCompleted    = "order.completed"
	EventLedgerWriteFailed = "payment.ledger_write_failed"

	eventVersion = "1"
)

// Envelope is the schema of every event this service publishes.
type Envelope struct {
	EventType    string    `json:"eventType"`
	EventVersion string    `json:"eventVersion"`
	OccurredAt   time.Time `json:"occurredAt"`
	AggregateID  string    `json:"aggregateId"`
	Data         any       `json:"data"`
}

// messageWriter is the subset of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	w                   messageWriter
	ordersTopic         string
	reconciliationTopic string
	now                 func() time.Time
}

var _ interfaces.IEventPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{}, // same key, same partition
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}
	log.Printf("[events][kafka] writer ready brokers=%v orders_topic=%s reconciliation_topic=%s", cfg.Brokers, cfg.OrdersTopic, cfg.ReconciliationTopic)
	return newKafkaPublisher(w, cfg)
}

func newKafkaPublisher(w messageWriter, cfg config.KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{
		w:                   w,
		ordersTopic:         cfg.OrdersTopic,
		reconciliationTopic: cfg.ReconciliationTopic,
		now:                 func() time.Time { return time.Now().UTC() },
	}
}

func (p *KafkaPublisher) Close() error { return p.w.Close() }

func (p *KafkaPublisher) PublishOrderCompleted(ctx context.Context, order entities.Order) error {
	return p.publish(ctx, p.ordersTopic, order.ID, Envelope{
		EventType:   EventOrderCompleted,
		AggregateID: order.ID,
		Data:        order,
	})
}

// PublishLedgerWriteFailed is keyed by payment id: there is no order id yet.
func (p *KafkaPublisher) PublishLedgerWriteFailed(ctx context.Context, entry entities.PaymentJournalEntry) error {
	return p.publish(ctx, p.reconciliationTopic, entry.PaymentID, Envelope{
		EventType:   EventLedgerWriteFailed,
		AggregateID: entry.PaymentID,
		Data:        entry,
	})
}

func (p *KafkaPublisher) publish(ctx context.Context, topic, key string, evt Envelope) error {
	evt.EventVersion = eventVersion
	evt.OccurredAt = p.now()
	val, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	if err := p.w.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: val,
	}); err != nil {
		log.Printf("[events][kafka] publish failed topic=%s event=%s key=%s err=%v", topic, evt.EventType, key, err)
		return err
	}
	log.Printf("[events][kafka] published topic=%s event=%s key=%s", topic, evt.EventType, key)
	return nil
}
