package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Radithya02/Catering-Food/internal/usecase"
)

const (
	exchangeName = "catering.orders"
	routingKey   = "order.settled"

	// SettledQueue is bound to the exchange at startup; the kitchen consumer
	// reads fulfilment tickets from it.
	SettledQueue = "order.settled.q"
)

var _ usecase.OrderEvents = (*RabbitProducer)(nil)

// RabbitProducer implements usecase.OrderEvents.
type RabbitProducer struct {
	ch *amqp.Channel
}

// NewRabbitProducer sets up the exchange, queue, and binding once at startup.
func NewRabbitProducer(ch *amqp.Channel) (*RabbitProducer, error) {
	// 1. declare exchange (topic type, durable)
	if err := ch.ExchangeDeclare(
		exchangeName,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	// 2. declare queue
	q, err := ch.QueueDeclare(
		SettledQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	// 3. bind queue → exchange
	if err := ch.QueueBind(
		q.Name,
		routingKey,
		exchangeName,
		false, // no-wait
		nil,
	); err != nil {
		return nil, fmt.Errorf("queue bind: %w", err)
	}

	// 4. enable publisher confirms
	if err := ch.Confirm(false); err != nil {
		return nil, fmt.Errorf("enable confirm mode: %w", err)
	}

	return &RabbitProducer{ch: ch}, nil
}

// PublishSettled sends an "order.settled" event to the exchange.
func (p *RabbitProducer) PublishSettled(ctx context.Context, msg usecase.SettledMsg) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // survive broker restarts
		Body:         body,
	}

	if err := p.ch.PublishWithContext(
		ctx,
		exchangeName, // exchange
		routingKey,   // routing key
		false,        // mandatory
		false,        // immediate
		pub,
	); err != nil {
		return fmt.Errorf("publish: %w", err)
	}

	return nil
}
