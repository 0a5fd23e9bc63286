package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pahana/bookshop-order-service/internal/config"
	"github.com/pahana/bookshop-order-service/internal/entities"
	"github.com/segmentio/kafka-go"
)

type kafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg config.Kafka) *kafkaPublisher {
	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.EventsTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

// ключ - order id, события одного заказа попадают в одну партицию
func (p *kafkaPublisher) Publish(ctx context.Context, e entities.OrderEvent) error {
	data, err := json.Marshal(NewMessage(e))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.OrderID),
		Value: data,
		Time:  time.Now().UTC(),
	})
	if err != nil {
		published.WithLabelValues("kafka", "error").Inc()
		return fmt.Errorf("failed to write event: %w", err)
	}

	published.WithLabelValues("kafka", "ok").Inc()
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
