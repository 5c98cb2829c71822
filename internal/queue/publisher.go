package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/unstakeportal/portal-api-service/internal/config"
)

// Publisher emits lifecycle events to a topic exchange for downstream
// consumers (indexers, analytics). Publishing is best effort from the
// portal's perspective: a failed publish is logged, never surfaced to the
// user flow.
type Publisher interface {
	PublishUnstakeConfirmed(ctx context.Context, event *UnstakeConfirmedEvent)
	PublishWithdrawalClaimed(ctx context.Context, event *WithdrawalClaimedEvent)
	IsConnectionHealthy() error
	Close()
}

type amqpPublisher struct {
	cfg     *config.QueueConfig
	conn    *amqp.Connection
	channel *amqp.Channel
}

// New connects to the configured broker and declares the portal exchange.
// With an empty queue config it returns a no-op publisher.
func New(cfg *config.QueueConfig) (Publisher, error) {
	if !cfg.Enabled() {
		return &noopPublisher{}, nil
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to queue broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close() // nolint:errcheck
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		cfg.Exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close() // nolint:errcheck
		conn.Close()    // nolint:errcheck
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &amqpPublisher{cfg: cfg, conn: conn, channel: channel}, nil
}

func (p *amqpPublisher) PublishUnstakeConfirmed(ctx context.Context, event *UnstakeConfirmedEvent) {
	p.publish(ctx, UnstakeConfirmedRoutingKey, event)
}

func (p *amqpPublisher) PublishWithdrawalClaimed(ctx context.Context, event *WithdrawalClaimedEvent) {
	p.publish(ctx, WithdrawalClaimedRoutingKey, event)
}

func (p *amqpPublisher) publish(ctx context.Context, routingKey string, event interface{}) {
	body, err := json.Marshal(event)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("routingKey", routingKey).Msg("failed to marshal lifecycle event")
		return
	}

	err = p.channel.PublishWithContext(
		ctx,
		p.cfg.Exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("routingKey", routingKey).Msg("failed to publish lifecycle event")
	}
}

func (p *amqpPublisher) IsConnectionHealthy() error {
	if p.conn == nil || p.conn.IsClosed() {
		return fmt.Errorf("queue connection is closed")
	}
	return nil
}

func (p *amqpPublisher) Close() {
	if p.channel != nil {
		p.channel.Close() // nolint:errcheck
	}
	if p.conn != nil {
		p.conn.Close() // nolint:errcheck
	}
}

type noopPublisher struct{}

func (n *noopPublisher) PublishUnstakeConfirmed(ctx context.Context, event *UnstakeConfirmedEvent) {
}
func (n *noopPublisher) PublishWithdrawalClaimed(ctx context.Context, event *WithdrawalClaimedEvent) {
}
func (n *noopPublisher) IsConnectionHealthy() error { return nil }
func (n *noopPublisher) Close()                     {}
