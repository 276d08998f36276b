package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	"github.com/Temutjin2k/delivery-pricing/pkg/logger"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
	"github.com/Temutjin2k/delivery-pricing/pkg/metrics"
)

const (
	PricingExchange = "pricing_topic"

	KeyQuoteCalculated = "delivery.quote.calculated"

	serviceName = "pricing-service"

	publishAttempts = 3
	publishBackoff  = 200 * time.Millisecond
)

// Broker is the part of pkg/rabbit used by producers.
type Broker interface {
	EnsureConnection(ctx context.Context) error
	DeclareExchange(name, kind string) error
	Publish(ctx context.Context, exchange, key string, msg amqp091.Publishing) error
}

type QuoteProducer struct {
	client   Broker
	exchange string

	l logger.Logger
}

// NewQuoteProducer declares the topic exchange and returns a producer publishing into it.
func NewQuoteProducer(client Broker, exchange string, log logger.Logger) (*QuoteProducer, error) {
	if exchange == "" {
		exchange = PricingExchange
	}

	if err := client.DeclareExchange(exchange, "topic"); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return &QuoteProducer{
		client:   client,
		exchange: exchange,
		l:        log,
	}, nil
}

// PublishQuoteCalculated sends the event to the pricing exchange with key 'delivery.quote.calculated'.
func (p *QuoteProducer) PublishQuoteCalculated(ctx context.Context, evt models.QuoteCalculatedEvent) (err error) {
	const op = "QuoteProducer.PublishQuoteCalculated"
	ctx = wrap.WithAction(ctx, types.ActionPublishQuote)

	defer func() { metrics.RecordRabbitMQPublish(serviceName, p.exchange, err) }()

	if err := p.client.EnsureConnection(ctx); err != nil {
		p.l.Error(ctx, "ensure connection failed", err)
		return wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	body, err := json.Marshal(evt)
	if err != nil {
		return wrap.Error(ctx, fmt.Errorf("%s: failed to marshal message: %w", op, err))
	}

	msg := amqp091.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp091.Persistent,
		MessageId:     evt.QuoteID,
		CorrelationId: evt.CorrelationID,
		Timestamp:     evt.Timestamp,
		Body:          body,
	}

	err = retry(ctx, publishAttempts, publishBackoff, func() error {
		return p.client.Publish(ctx, p.exchange, KeyQuoteCalculated, msg)
	})
	if err != nil {
		return wrap.Error(ctx, fmt.Errorf("%s: failed to publish: %w", op, err))
	}

	p.l.Debug(ctx, "quote event published", "quote_id", evt.QuoteID, "routing_key", KeyQuoteCalculated)
	return nil
}

// NoopPublisher is used when the broker is disabled.
type NoopPublisher struct{}

func (NoopPublisher) PublishQuoteCalculated(context.Context, models.QuoteCalculatedEvent) error {
	return nil
}
