package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/CimeM/shellLeatherStore/internal/app/store/contracts"
)

// eventEnvelope is the wire shape published to the events queue.
type eventEnvelope struct {
	EventID     string          `json:"event_id"`
	EventType   string          `json:"event_type"`
	AggregateID string          `json:"aggregate_id"`
	Payload     json.RawMessage `json:"payload,omitempty"`
}

// AMQPEventPublisher publishes outbox events to a RabbitMQ queue for
// downstream consumers.
type AMQPEventPublisher struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	queueName string
	logger    *zap.Logger
}

// NewAMQPEventPublisher connects to the broker and declares the events
// queue. The queue is durable so events survive a broker restart.
func NewAMQPEventPublisher(url, queueName string, logger *zap.Logger) (*AMQPEventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &AMQPEventPublisher{
		conn:      conn,
		channel:   ch,
		queueName: queueName,
		logger:    logger,
	}, nil
}

// Publish sends the event as a persistent JSON message.
func (p *AMQPEventPublisher) Publish(ctx context.Context, event *contracts.OutboxEvent) error {
	envelope := eventEnvelope{
		EventID:     event.EventID,
		EventType:   event.EventType,
		AggregateID: event.AggregateID,
	}
	if event.Payload != "" {
		envelope.Payload = json.RawMessage(event.Payload)
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx,
		"",          // exchange
		p.queueName, // routing key (queue name)
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    event.EventID,
			Type:         event.EventType,
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debug("published outbox event",
		zap.String("queue", p.queueName),
		zap.String("event_id", event.EventID),
		zap.String("event_type", event.EventType),
	)
	return nil
}

// Close releases the channel and connection.
func (p *AMQPEventPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

var _ EventPublisher = (*AMQPEventPublisher)(nil)
