package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"whatsorder/internal/domain/service"

	"github.com/pkg/errors"
	kafkaGo "github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafkaGo.Writer used by the publisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkaGo.Message) error
	Close() error
}

type kafkaPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewKafkaPublisher writes order events to topic, keyed by business so a
// tenant's events stay ordered within a partition.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	return &kafkaPublisher{
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafkaGo.Hash{},
			AllowAutoTopicCreation: true,
		},
		logger: logger,
	}
}

func (p *kafkaPublisher) PublishOrderLogged(ctx context.Context, event *service.OrderLoggedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	attrs := orderAttributes(event)
	headers := make([]kafkaGo.Header, 0, len(attrs))
	for k, v := range attrs {
		headers = append(headers, kafkaGo.Header{Key: k, Value: []byte(v)})
	}

	err = p.writer.WriteMessages(ctx, kafkaGo.Message{
		Key:     []byte(strconv.FormatInt(event.BusinessID, 10)),
		Value:   payload,
		Headers: headers,
	})
	if err != nil {
		return errors.Wrap(err, "write order event")
	}

	p.logger.Debug("Order event written to kafka",
		slog.Int64("order_id", event.OrderID),
	)

	return nil
}

func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
