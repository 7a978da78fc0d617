package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/perchsocial/perch/internal/domain"
	"github.com/perchsocial/perch/internal/metrics"
	"github.com/redis/go-redis/v9"
)

// RescoreChannel is the pub/sub channel carrying item IDs that need rescoring.
const RescoreChannel = "scores:rescore"

// Publisher publishes rescore triggers onto the pub/sub channel.
type Publisher struct {
	client *redis.Client
}

var _ domain.RescorePublisher = (*Publisher)(nil)

func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

// PublishRescore signals that the given item's score must be recomputed.
// Publishing is best-effort: the caller's write has already been committed,
// so a lost trigger only delays the recomputation until the next one.
func (p *Publisher) PublishRescore(ctx context.Context, itemID uuid.UUID) error {
	if err := p.client.Publish(ctx, RescoreChannel, itemID.String()).Err(); err != nil {
		metrics.RescoreMessagesTotal.WithLabelValues("publish_error").Inc()
		return fmt.Errorf("failed to publish rescore trigger: %w", err)
	}

	metrics.RescoreMessagesTotal.WithLabelValues("published").Inc()
	return nil
}

// Listener subscribes to the rescore channel and hands each item to the
// scoring orchestrator.
type Listener struct {
	client   *redis.Client
	rescorer domain.Rescorer
}

func NewListener(client *redis.Client, rescorer domain.Rescorer) *Listener {
	return &Listener{client: client, rescorer: rescorer}
}

// Start consumes rescore triggers until the context is cancelled. It
// resubscribes after transient failures instead of giving up.
func (l *Listener) Start(ctx context.Context) {
	for {
		if err := l.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Error("Rescore subscription lost, retrying", "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	pubsub := l.client.Subscribe(ctx, RescoreChannel)
	defer pubsub.Close()

	// Force the subscription to be established before consuming.
	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", RescoreChannel, err)
	}

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return fmt.Errorf("subscription channel closed")
			}
			l.handle(ctx, msg.Payload)
		}
	}
}

func (l *Listener) handle(ctx context.Context, payload string) {
	itemID, err := uuid.Parse(payload)
	if err != nil {
		metrics.RescoreMessagesTotal.WithLabelValues("invalid").Inc()
		slog.Warn("Ignoring malformed rescore trigger", "payload", payload)
		return
	}

	metrics.RescoreMessagesTotal.WithLabelValues("received").Inc()
	l.rescorer.Rescore(ctx, itemID)
}
