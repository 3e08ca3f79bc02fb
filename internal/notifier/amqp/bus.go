// Package amqp is an alternate Bus transport for deployments that need
// durable fan-out of pipeline lifecycle events across processes, instead
// of the in-memory implementation. It speaks the same topic-matched
// contract as notifier.Bus: publish is fire-and-forget, delivery is
// best-effort, and pattern matching happens on this side rather than via
// the broker's own routing-key wildcards (our topic segments are ":"-
// joined, not AMQP's "."-joined topic syntax), so every event is published
// to a single fanout exchange and each subscriber filters locally.
package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/hotelforge/aggregator/internal/notifier"
	"github.com/hotelforge/aggregator/internal/platform/logger"
)

const exchangeName = "hotelforge.pipeline.events"

// Config dials a RabbitMQ broker.
type Config struct {
	Host           string
	Port           string
	User           string
	Password       string
	VHost          string
	ReconnectDelay time.Duration
}

// Bus implements notifier.Bus over a RabbitMQ fanout exchange.
type Bus struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	mu      sync.Mutex
}

// New dials the broker, declares the fanout exchange, and returns a Bus.
func New(cfg Config) (*Bus, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s%s", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.VHost)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rabbitmq: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	if err := channel.ExchangeDeclare(exchangeName, "fanout", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	logger.Infof("amqp bus connected, exchange %s declared", exchangeName)
	return &Bus{conn: conn, channel: channel}, nil
}

// Close tears down the channel and connection.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.channel != nil {
		b.channel.Close()
	}
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}

// Publish serializes the event and fans it out; publish errors are logged,
// never returned, matching the fire-and-forget contract of the in-memory bus.
func (b *Bus) Publish(ctx context.Context, event notifier.Event) {
	body, err := json.Marshal(event)
	if err != nil {
		logger.Errorf("amqp bus: failed to marshal event: %v", err)
		return
	}

	b.mu.Lock()
	err = b.channel.PublishWithContext(ctx, exchangeName, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
		Timestamp:   time.Now(),
	})
	b.mu.Unlock()

	if err != nil {
		logger.Errorf("amqp bus: failed to publish event: %v", err)
	}
}

// Subscribe declares a private, auto-deleting queue bound to the fanout
// exchange and starts a consumer goroutine that filters deliveries by
// pattern locally. The returned func stops that local goroutine only; it
// does not cancel the broker-side consumer or delete the queue, which goes
// away when the bus's connection closes.
func (b *Bus) Subscribe(pattern string, handler notifier.Handler) func() {
	b.mu.Lock()
	queue, err := b.channel.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		b.mu.Unlock()
		logger.Errorf("amqp bus: failed to declare subscriber queue: %v", err)
		return func() {}
	}
	if err := b.channel.QueueBind(queue.Name, "", exchangeName, false, nil); err != nil {
		b.mu.Unlock()
		logger.Errorf("amqp bus: failed to bind subscriber queue: %v", err)
		return func() {}
	}
	deliveries, err := b.channel.Consume(queue.Name, "", true, true, false, false, nil)
	b.mu.Unlock()
	if err != nil {
		logger.Errorf("amqp bus: failed to consume subscriber queue: %v", err)
		return func() {}
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				var event notifier.Event
				if err := json.Unmarshal(d.Body, &event); err != nil {
					logger.Errorf("amqp bus: failed to unmarshal event: %v", err)
					continue
				}
				if notifier.MatchesPattern(pattern, event.Topic()) {
					handler(context.Background(), event)
				}
			}
		}
	}()

	return func() { close(done) }
}

var _ notifier.Bus = (*Bus)(nil)
