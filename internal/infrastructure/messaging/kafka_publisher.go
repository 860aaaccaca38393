package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"os-service-api/internal/domain/entities"
	"os-service-api/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaServiceOrderPublisher emits service order events keyed by order id, so
// every event of one order lands on the same partition in order.
type KafkaServiceOrderPublisher struct {
	writer MessageWriter
	topic  string
}

var _ interfaces.IServiceOrderEventPublisher = (*KafkaServiceOrderPublisher)(nil)

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

func NewKafkaServiceOrderPublisher(writer MessageWriter, topic string) *KafkaServiceOrderPublisher {
	return &KafkaServiceOrderPublisher{writer: writer, topic: topic}
}

type serviceOrderEventPayload struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OrderID    int64     `json:"order_id"`
	ClientID   int64     `json:"client_id"`
	VehicleID  int64     `json:"vehicle_id"`
	Status     string    `json:"status"`
	Services   []int64   `json:"services"`
	Supplies   []int64   `json:"supplies"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (p *KafkaServiceOrderPublisher) Publish(ctx context.Context, event entities.ServiceOrderEvent) error {
	msg, err := buildMessage(event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write %s to %s: %w", event.Type, p.topic, err)
	}
	zap.L().Debug("[service-order][kafka] event published", zap.String("type", string(event.Type)), zap.Int64("order_id", event.OrderID))
	return nil
}

func (p *KafkaServiceOrderPublisher) Close() error {
	return p.writer.Close()
}

func buildMessage(event entities.ServiceOrderEvent) (kafka.Message, error) {
	payload := serviceOrderEventPayload{
		ID:         event.ID,
		Type:       string(event.Type),
		OrderID:    event.OrderID,
		ClientID:   event.ClientID,
		VehicleID:  event.VehicleID,
		Status:     string(event.Status),
		Services:   nonNil(event.Services),
		Supplies:   nonNil(event.Supplies),
		OccurredAt: event.OccurredAt.UTC(),
	}
	value, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: value,
		Time:  payload.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(payload.Type)},
			{Key: "event_id", Value: []byte(payload.ID)},
		},
	}, nil
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

var _ interfaces.IServiceOrderEventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, entities.ServiceOrderEvent) error { return nil }
