package export

import (
	"context"
	"encoding/json"
	"fmt"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RoutingKey is the key every archived order snapshot is published with.
const RoutingKey = "order.archived"

// Channel is the part of *amqp.Channel the exporter needs.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitExporter publishes snapshots as persistent JSON messages to a
// durable topic exchange. The order id is the message id, so consumers can
// drop repeated exports.
type RabbitExporter struct {
	ch       Channel
	exchange string
}

// NewRabbitExporter declares the exchange once at startup.
func NewRabbitExporter(ch Channel, exchange string) (*RabbitExporter, error) {
	if exchange == "" {
		return nil, errs.NewValueIsRequiredError("exchange")
	}

	if err := ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &RabbitExporter{ch: ch, exchange: exchange}, nil
}

func (e *RabbitExporter) Export(ctx context.Context, snapshot order.Snapshot) error {
	body, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    snapshot.ID,
		Timestamp:    snapshot.UpdatedOn,
		Type:         RoutingKey,
		Body:         body,
	}

	if err = e.ch.PublishWithContext(ctx, e.exchange, RoutingKey, false, false, msg); err != nil {
		return fmt.Errorf("publish snapshot %s: %w", snapshot.ID, err)
	}
	return nil
}
