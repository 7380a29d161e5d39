// Package rabbitmq publishes parcel lifecycle events to a RabbitMQ topic
// exchange for downstream consumers.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"parcelhub/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

// EventPublisher implements ports.EventPublisher on top of a RabbitMQ
// topic exchange. Events are published persistent as JSON with the routing
// key "parcel.delivery.<action>".
type EventPublisher struct {
	conn     *amqp091.Connection
	exchange string
	log      *slog.Logger
}

// NewEventPublisher dials the broker and declares the topic exchange.
func NewEventPublisher(url, exchange string, logger *slog.Logger) (*EventPublisher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	defer ch.Close()

	if err = ch.ExchangeDeclare(
		exchange, "topic", true, false, false, false, nil,
	); err != nil {
		conn.Close()
		return nil, err
	}

	if err = ch.Confirm(false); err != nil {
		conn.Close()
		return nil, err
	}

	return &EventPublisher{
		conn:     conn,
		exchange: exchange,
		log:      logger,
	}, nil
}

// PublishDeliveryEvent publishes a committed lifecycle transition.
func (p *EventPublisher) PublishDeliveryEvent(ctx context.Context, event ports.DeliveryEvent) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("parcel.delivery.%s", event.Action)

	err = ch.PublishWithContext(
		ctx, p.exchange, key, false, false,
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err == nil {
		p.log.Info("published", slog.String("key", key), slog.String("exchange", p.exchange))
	}
	return err
}

// Close closes the broker connection.
func (p *EventPublisher) Close() error {
	return p.conn.Close()
}
