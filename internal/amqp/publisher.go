package amqp

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dafibh/fintrack/fintrack-backend/internal/websocket"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const (
	defaultBufferSize     = 256
	defaultPublishTimeout = 5 * time.Second
)

// channel is the part of *amqp091.Channel the publisher uses
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Publisher forwards ledger events to a RabbitMQ topic exchange. Publish never
// blocks the caller: events are buffered and sent by a single goroutine, and
// an event that does not fit in the buffer is dropped with a warning.
type Publisher struct {
	conn       *amqp091.Connection
	channel    channel
	exchange   string
	routingKey string
	logger     zerolog.Logger
	timeout    time.Duration

	events chan websocket.Event
	doneCh chan struct{}
	mu     sync.RWMutex
	closed bool
}

// Ensure Publisher implements EventPublisher
var _ websocket.EventPublisher = (*Publisher)(nil)

// NewPublisher dials url, declares exchange and starts the send loop
func NewPublisher(url, exchange, routingKey string, logger zerolog.Logger) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	p := newPublisher(ch, exchange, routingKey, logger, defaultBufferSize)
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, exchange, routingKey string, logger zerolog.Logger, bufferSize int) *Publisher {
	p := &Publisher{
		channel:    ch,
		exchange:   exchange,
		routingKey: routingKey,
		logger:     logger.With().Str("component", "amqp_publisher").Logger(),
		timeout:    defaultPublishTimeout,
		events:     make(chan websocket.Event, bufferSize),
		doneCh:     make(chan struct{}),
	}
	go p.run()
	return p
}

// Publish queues event for delivery
func (p *Publisher) Publish(event websocket.Event) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return
	}

	select {
	case p.events <- event:
	default:
		p.logger.Warn().Str("type", event.Type).Msg("AMQP buffer full, dropping event")
	}
}

// RoutingKey returns the key an event is published under, e.g. "ledger.transaction.created"
func (p *Publisher) RoutingKey(event websocket.Event) string {
	if p.routingKey == "" {
		return event.Type
	}
	return p.routingKey + "." + event.Type
}

func (p *Publisher) run() {
	defer close(p.doneCh)
	for event := range p.events {
		if err := p.send(event); err != nil {
			p.logger.Warn().Err(err).Str("type", event.Type).Msg("Failed to publish event")
		}
	}
}

func (p *Publisher) send(event websocket.Event) error {
	body, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	return p.channel.PublishWithContext(
		ctx,
		p.exchange,          // exchange
		p.RoutingKey(event), // routing key
		false,               // mandatory
		false,               // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.Timestamp,
			Type:         event.Type,
			Body:         body,
		},
	)
}

// Close flushes queued events and closes the channel and connection
func (p *Publisher) Close(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.events)
	p.mu.Unlock()

	select {
	case <-p.doneCh:
	case <-ctx.Done():
		return ctx.Err()
	}

	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
