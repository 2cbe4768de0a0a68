package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"crawingo-delivery/catalog-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes review events keyed by dish id and order events
// keyed by order id.
type KafkaPublisher struct {
	Reviews *kafka.Writer
	Orders  *kafka.Writer
}

func NewKafkaPublisher(reviews, orders *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Reviews: reviews, Orders: orders}
}

func (p *KafkaPublisher) PublishReview(ctx context.Context, msg domain.KafkaMessage) error {
	return write(ctx, p.Reviews, strconv.Itoa(msg.DishID), msg)
}

func (p *KafkaPublisher) PublishOrder(ctx context.Context, msg domain.KafkaMessage) error {
	return write(ctx, p.Orders, strconv.Itoa(msg.OrderID), msg)
}

func (p *KafkaPublisher) Close() error {
	if err := p.Reviews.Close(); err != nil {
		return err
	}
	return p.Orders.Close()
}

func write(ctx context.Context, w *kafka.Writer, key string, msg domain.KafkaMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
	})
}

// NoopPublisher drops events. Used when KAFKA_ENABLED is false.
type NoopPublisher struct{}

func (NoopPublisher) PublishReview(context.Context, domain.KafkaMessage) error { return nil }
func (NoopPublisher) PublishOrder(context.Context, domain.KafkaMessage) error  { return nil }
