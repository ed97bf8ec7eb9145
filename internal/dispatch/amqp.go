package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/CimeM/shellLeatherStore/internal/app/store/checkout"
)

const publishTimeout = 5 * time.Second

// orderMessage is the wire shape published to the orders queue.
type orderMessage struct {
	Customer   orderCustomer `json:"customer"`
	Lines      []orderLine   `json:"lines"`
	Total      string        `json:"total"`
	MailtoLink string        `json:"mailto_link"`
	PlacedAt   time.Time     `json:"placed_at"`
}

type orderCustomer struct {
	FullName            string `json:"full_name"`
	Email               string `json:"email"`
	Phone               string `json:"phone,omitempty"`
	Address             string `json:"address"`
	City                string `json:"city"`
	PostalCode          string `json:"postal_code"`
	Country             string `json:"country"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

type orderLine struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	Color         string  `json:"color"`
	Quantity      int64   `json:"quantity"`
	Customization string  `json:"customization,omitempty"`
	UnitPrice     string  `json:"unit_price"`
	LineTotal     string  `json:"line_total"`
	DiscountName  string  `json:"discount_name,omitempty"`
	DiscountPct   float64 `json:"discount_percent,omitempty"`
}

// AMQPDispatcher publishes placed orders to a RabbitMQ queue for
// downstream fulfilment.
type AMQPDispatcher struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	queueName string
	logger    *zap.Logger
}

// NewAMQPDispatcher connects to the broker and declares the orders
// queue. The queue is durable so orders survive a broker restart.
func NewAMQPDispatcher(url, queueName string, logger *zap.Logger) (*AMQPDispatcher, error) {
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

	return &AMQPDispatcher{
		conn:      conn,
		channel:   ch,
		queueName: queueName,
		logger:    logger,
	}, nil
}

// Dispatch publishes the order summary as a persistent JSON message.
func (d *AMQPDispatcher) Dispatch(ctx context.Context, summary *checkout.OrderSummary, mailtoLink string) error {
	msg := orderMessage{
		Customer: orderCustomer{
			FullName:            summary.Customer.FullName,
			Email:               summary.Customer.Email,
			Phone:               summary.Customer.Phone,
			Address:             summary.Customer.Address,
			City:                summary.Customer.City,
			PostalCode:          summary.Customer.PostalCode,
			Country:             summary.Customer.Country,
			SpecialInstructions: summary.Customer.SpecialInstructions,
		},
		Lines:      make([]orderLine, 0, len(summary.Lines)),
		Total:      summary.Total.String(),
		MailtoLink: mailtoLink,
		PlacedAt:   summary.PlacedAt,
	}
	for _, line := range summary.Lines {
		msg.Lines = append(msg.Lines, orderLine{
			ProductID:     line.ProductID,
			Name:          line.ProductName,
			Color:         line.Color,
			Quantity:      line.Quantity,
			Customization: line.Customization,
			UnitPrice:     line.UnitPrice.String(),
			LineTotal:     line.LineTotal.String(),
			DiscountName:  line.DiscountName,
			DiscountPct:   line.DiscountPercent,
		})
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = d.channel.PublishWithContext(ctx,
		"",          // exchange
		d.queueName, // routing key (queue name)
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish order: %w", err)
	}

	d.logger.Info("published order notification",
		zap.String("queue", d.queueName),
		zap.String("customer", summary.Customer.Email),
	)
	return nil
}

// Close releases the channel and connection.
func (d *AMQPDispatcher) Close() {
	if d.channel != nil {
		d.channel.Close()
	}
	if d.conn != nil {
		d.conn.Close()
	}
}
