package order_events

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"orderhub/internal/entities"
)

// Gateway публикует события жизненного цикла заказа в Kafka.
// Ключ сообщения - id заказа, чтобы события одного заказа шли в одну партицию
// и сохраняли порядок.
type Gateway struct {
	producer sarama.SyncProducer
	topic    string
}

func New(producer sarama.SyncProducer, topic string) *Gateway {
	return &Gateway{
		producer: producer,
		topic:    topic,
	}
}

func (g *Gateway) Publish(ctx context.Context, event entities.OrderEvent) error {
	// SyncProducer контекст не принимает, проверяем отмену до отправки
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(event.Payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type.String())},
		},
	}

	_, _, err := g.producer.SendMessage(msg)
	if err != nil {
		EventsPublishFailedTotal.WithLabelValues(event.Type.String()).Inc()
		return fmt.Errorf("gateway order_events, publish %s for order %s: %w", event.Type, event.OrderID, err)
	}

	EventsPublishedTotal.WithLabelValues(event.Type.String()).Inc()
	return nil
}
