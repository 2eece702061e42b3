package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

const (
	// Exchange is the topic exchange CV events are published to
	Exchange = "cv_events"

	// RoutingKeyCVGenerated is used for every generated CV
	RoutingKeyCVGenerated = "cv.generated"
)

// CVGenerated is published after a CV has been stored
type CVGenerated struct {
	UserID      string    `json:"user_id"`
	FileName    string    `json:"file_name"`
	Location    string    `json:"location"`
	Pages       int       `json:"pages"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Publisher sends CV events to interested consumers
type Publisher interface {
	PublishCVGenerated(ctx context.Context, event CVGenerated) error
	Close() error
}

// AMQPPublisher publishes events to a RabbitMQ topic exchange
type AMQPPublisher struct {
	conn *amqp.Connection
}

// NewAMQPPublisher dials url and declares the CV exchange
func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("error dialling rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("error opening rabbitmq channel: %w", err)
	}
	defer ch.Close()

	err = ch.ExchangeDeclare(
		Exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // auto-delete
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &AMQPPublisher{conn: conn}, nil
}

// PublishCVGenerated publishes event as JSON with the cv.generated routing key
func (p *AMQPPublisher) PublishCVGenerated(ctx context.Context, event CVGenerated) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("error opening rabbitmq channel: %w", err)
	}
	defer ch.Close()

	return ch.Publish(
		Exchange,
		RoutingKeyCVGenerated,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.GeneratedAt,
			Body:         body,
		},
	)
}

// Close closes the broker connection
func (p *AMQPPublisher) Close() error {
	return p.conn.Close()
}

// NopPublisher drops every event
type NopPublisher struct{}

func (NopPublisher) PublishCVGenerated(context.Context, CVGenerated) error { return nil }

func (NopPublisher) Close() error { return nil }

// New returns an AMQP publisher when url is set and a NopPublisher otherwise
func New(url string) (Publisher, error) {
	if url == "" {
		return NopPublisher{}, nil
	}
	return NewAMQPPublisher(url)
}
