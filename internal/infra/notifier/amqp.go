package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the subset of *amqp.Channel used for publishing
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type envelope struct {
	Topic      string    `json:"topic"`
	Roles      []string  `json:"roles"`
	Payload    any       `json:"payload"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AMQPNotifier publishes events to a topic exchange with the event topic as routing key
type AMQPNotifier struct {
	mu       sync.Mutex
	wg       sync.WaitGroup
	conn     *amqp.Connection
	ch       Channel
	exchange string
	timeout  time.Duration
	logger   *slog.Logger
}

func DialAMQP(url, exchange string, timeout time.Duration, logger *slog.Logger) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "declare exchange")
	}

	n := NewAMQPNotifier(ch, exchange, timeout, logger)
	n.conn = conn
	return n, nil
}

func NewAMQPNotifier(ch Channel, exchange string, timeout time.Duration, logger *slog.Logger) *AMQPNotifier {
	return &AMQPNotifier{
		ch:       ch,
		exchange: exchange,
		timeout:  timeout,
		logger:   logger,
	}
}

// Publish returns immediately; delivery runs detached from the request context.
func (n *AMQPNotifier) Publish(ctx context.Context, event commands.Event) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
		defer cancel()

		if err := n.publish(pubCtx, event); err != nil {
			n.logger.Warn("failed to publish event",
				"topic", event.Topic,
				"error", err.Error())
		}
	}()
}

func (n *AMQPNotifier) publish(ctx context.Context, event commands.Event) error {
	body, err := json.Marshal(envelope{
		Topic:      event.Topic,
		Roles:      event.Roles,
		Payload:    event.Payload,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return errs.Wrap(err, "marshal event")
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	return n.ch.PublishWithContext(ctx, n.exchange, event.Topic, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
}

// Close waits for in-flight publishes before closing the channel and connection.
func (n *AMQPNotifier) Close() error {
	n.wg.Wait()
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
