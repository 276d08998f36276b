package rabbit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	"github.com/Temutjin2k/delivery-pricing/pkg/logger"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
	amqp "github.com/rabbitmq/amqp091-go"
)

var (
	ErrClosed       = errors.New("rabbitmq connection is closed")
	ErrReconnecting = errors.New("rabbitmq reconnect already in progress")
)

const (
	heartbeat         = 10 * time.Second
	dialTimeout       = 5 * time.Second
	reconnectAttempts = 5
)

type RabbitMQ struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	closed  bool
	mu      sync.RWMutex
	dsn     string

	// reconnecting is set while a single goroutine owns the reconnect loop
	reconnecting atomic.Bool

	log logger.Logger
}

// New creates rabbitMQ client
func New(ctx context.Context, dsn string, log logger.Logger) (*RabbitMQ, error) {
	r := &RabbitMQ{
		dsn: dsn,
		log: log,
	}

	if err := r.connect(); err != nil {
		return nil, err
	}

	log.Info(wrap.WithAction(ctx, types.ActionRabbitMQConnected), "connected to rabbitMQ")

	return r, nil
}

// connect dials without holding the lock and only takes it to install the new connection.
func (r *RabbitMQ) connect() error {
	conn, err := amqp.DialConfig(r.dsn, amqp.Config{
		Heartbeat: heartbeat,
		Dial:      amqp.DefaultDial(dialTimeout),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open a channel: %w", err)
	}

	closeCh := conn.NotifyClose(make(chan *amqp.Error, 1))

	r.mu.Lock()
	r.conn = conn
	r.channel = ch
	r.closed = false
	r.mu.Unlock()

	go r.monitorConnection(closeCh)

	return nil
}

// monitorConnection marks the client closed once the broker drops the connection
func (r *RabbitMQ) monitorConnection(closeCh <-chan *amqp.Error) {
	closeErr := <-closeCh

	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	ctx := wrap.WithAction(context.Background(), types.ActionRabbitConnectionClosed)
	if closeErr != nil {
		r.log.Error(ctx, "RabbitMQ connection closed with error", closeErr)
		return
	}
	r.log.Debug(ctx, "RabbitMQ connection closed gracefully")
}

// IsConnectionClosed checks if the connection is closed
func (r *RabbitMQ) IsConnectionClosed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.closed || r.conn == nil || r.conn.IsClosed() || r.channel == nil || r.channel.IsClosed()
}

// DeclareExchange declares a durable exchange of the given kind (topic, fanout, direct)
func (r *RabbitMQ) DeclareExchange(name, kind string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.channel == nil {
		return ErrClosed
	}
	return r.channel.ExchangeDeclare(name, kind, true, false, false, false, nil)
}

// Publish sends msg to the exchange with routing key
func (r *RabbitMQ) Publish(ctx context.Context, exchange, key string, msg amqp.Publishing) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.channel == nil {
		return ErrClosed
	}
	return r.channel.PublishWithContext(ctx, exchange, key, false, false, msg)
}

// Reconnect dials the broker again with linear backoff. Only one reconnect
// runs at a time, concurrent callers get ErrReconnecting instead of waiting.
// No lock is held while dialing or sleeping.
func (r *RabbitMQ) Reconnect(ctx context.Context) error {
	if r.dsn == "" {
		return errors.New("dsn is empty: can't reconnect")
	}

	if !r.reconnecting.CompareAndSwap(false, true) {
		return ErrReconnecting
	}
	defer r.reconnecting.Store(false)

	ctx = wrap.WithAction(ctx, types.ActionRabbitReconnecting)

	var err error
	for i := range reconnectAttempts {
		if !r.IsConnectionClosed() {
			return nil
		}

		if err = r.connect(); err == nil {
			r.log.Info(wrap.WithAction(ctx, types.ActionRabbitReconnected), "RabbitMQ reconnected successfully")
			return nil
		}
		if i == reconnectAttempts-1 {
			break
		}

		wait := time.Duration(i+1) * 2 * time.Second
		r.log.Debug(ctx, fmt.Sprintf("reconnect attempt %d failed, retrying in %v", i+1, wait))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	return fmt.Errorf("failed to reconnect to RabbitMQ: %w", err)
}

func (r *RabbitMQ) EnsureConnection(ctx context.Context) error {
	if !r.IsConnectionClosed() {
		return nil
	}

	r.log.Warn(ctx, "rabbit connection closed, reconnecting...")
	return r.Reconnect(ctx)
}

// Close closes channel and connection, honoring ctx deadline
func (r *RabbitMQ) Close(ctx context.Context) error {
	ctx = wrap.WithAction(ctx, types.ActionRabbitConnectionClosing)

	r.mu.Lock()
	ch, conn := r.channel, r.conn
	r.channel, r.conn = nil, nil
	r.closed = true
	r.mu.Unlock()

	if ch != nil {
		if err := closeWithCtx(ctx, ch.Close); err != nil && !errors.Is(err, amqp.ErrClosed) {
			r.log.Error(ctx, "error closing channel", err)
		}
	}

	if conn != nil {
		if err := closeWithCtx(ctx, conn.Close); err != nil && !errors.Is(err, amqp.ErrClosed) {
			return fmt.Errorf("failed to close connection: %w", err)
		}
	}

	r.log.Info(wrap.WithAction(ctx, types.ActionRabbitConnectionClosed), "rabbitMQ closed")
	return nil
}

func closeWithCtx(ctx context.Context, fn func() error) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- fn()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
