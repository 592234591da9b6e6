// Package broker mirrors hub notifications onto a RabbitMQ topic exchange so
// that displays and other services outside the engine process can follow
// queue changes.
package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	exchangeKind       = "topic"
	defaultDialTimeout = 5 * time.Second
	heartbeat          = 10 * time.Second
)

var errBrokerClosed = errors.New("broker closed")

type connection interface {
	IsClosed() bool
	Close() error
}

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

type dialer func(url string) (connection, channel, error)

type Broker struct {
	mu       sync.Mutex
	conn     connection
	channel  channel
	redial   chan struct{}
	dialErr  error
	closed   bool
	exchange string
	url      string
	dial     dialer
	logger   logger.Logger
}

// NewBroker connects and declares the exchange. Every dial, the first one
// included, is bounded by dialTimeout.
func NewBroker(ctx context.Context, url, exchange string, dialTimeout time.Duration, log logger.Logger) (*Broker, error) {
	if dialTimeout <= 0 {
		dialTimeout = defaultDialTimeout
	}
	b := &Broker{
		exchange: exchange,
		url:      url,
		dial:     dialExchange(exchange, dialTimeout),
		logger:   log,
	}
	if err := b.ensureConnection(ctx); err != nil {
		return nil, err
	}
	return b, nil
}

func dialExchange(exchange string, timeout time.Duration) dialer {
	return func(url string) (connection, channel, error) {
		conn, err := amqp.DialConfig(url, amqp.Config{
			Heartbeat: heartbeat,
			Locale:    "en_US",
			Dial:      amqp.DefaultDial(timeout),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("dial rabbitmq: %w", err)
		}

		ch, err := conn.Channel()
		if err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("open channel: %w", err)
		}

		err = ch.ExchangeDeclare(
			exchange,
			exchangeKind,
			true,
			false,
			false,
			false,
			nil,
		)
		if err != nil {
			ch.Close()
			conn.Close()
			return nil, nil, fmt.Errorf("declare exchange: %w", err)
		}

		return conn, ch, nil
	}
}

func (b *Broker) healthy() bool {
	return b.channel != nil && !b.channel.IsClosed() && (b.conn == nil || !b.conn.IsClosed())
}

// ensureConnection redials when the connection or just the channel was closed
// by the server. A single dial runs at a time; callers wait for it only until
// their ctx ends.
func (b *Broker) ensureConnection(ctx context.Context) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return errBrokerClosed
	}
	if b.healthy() {
		b.mu.Unlock()
		return nil
	}
	if b.redial == nil {
		b.redial = make(chan struct{})
		go b.reconnect(b.redial, b.conn, b.channel)
		b.conn, b.channel = nil, nil
	}
	done := b.redial
	b.mu.Unlock()

	select {
	case <-done:
	case <-ctx.Done():
		return fmt.Errorf("connect rabbitmq: %w", ctx.Err())
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.channel == nil {
		if b.dialErr != nil {
			return b.dialErr
		}
		return errBrokerClosed
	}
	return nil
}

func (b *Broker) reconnect(done chan struct{}, staleConn connection, staleCh channel) {
	defer close(done)

	if staleCh != nil {
		_ = staleCh.Close()
	}
	if staleConn != nil {
		_ = staleConn.Close()
	}

	conn, ch, err := b.dial(b.url)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.redial = nil
	b.dialErr = err
	if err != nil {
		b.logger.Error("failed to connect to rabbitmq", logger.String("error", err.Error()))
		return
	}
	if b.closed {
		_ = ch.Close()
		if conn != nil {
			_ = conn.Close()
		}
		return
	}
	b.conn, b.channel = conn, ch
}

// Deliver publishes n with a routing key derived from its topic, e.g.
// "queue/<experience>" becomes "queue.<experience>".
func (b *Broker) Deliver(ctx context.Context, n domain.Notification) error {
	if err := b.ensureConnection(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	b.mu.Lock()
	ch := b.channel
	b.mu.Unlock()
	if ch == nil {
		return errBrokerClosed
	}

	err = ch.PublishWithContext(
		ctx,
		b.exchange,
		RoutingKey(n.Topic),
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Transient,
			Timestamp:    n.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", n.Topic, err)
	}

	b.logger.Debug("notification published",
		logger.String("topic", n.Topic),
		logger.Int64("version", n.Version),
	)
	return nil
}

func RoutingKey(topic string) string {
	return strings.ReplaceAll(strings.TrimSuffix(topic, "/"), "/", ".")
}

func (b *Broker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true

	if b.channel != nil && !b.channel.IsClosed() {
		if err := b.channel.Close(); err != nil {
			return fmt.Errorf("close channel: %w", err)
		}
	}
	b.channel = nil
	if b.conn != nil && !b.conn.IsClosed() {
		if err := b.conn.Close(); err != nil {
			return fmt.Errorf("close connection: %w", err)
		}
	}
	b.conn = nil
	return nil
}
