// Package redis provides the Redis-backed adapters: the live progress
// publisher and the per-bundle advisory lock.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"spktrack/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const progressChannelPattern = "orders.%s.progress"

// RedisProgressPublisher broadcasts order progress snapshots over Redis
// pub/sub. Each order has its own channel so dashboards subscribe only to
// the orders they display.
type RedisProgressPublisher struct {
	client *redis.Client
}

// NewRedisProgressPublisher creates a publisher on the given Redis client.
func NewRedisProgressPublisher(client *redis.Client) *RedisProgressPublisher {
	return &RedisProgressPublisher{client: client}
}

// Publish broadcasts the progress snapshot for the event's order.
// Subscribers that joined late simply pick up from the next event; the
// progress query serves the full current state.
func (p *RedisProgressPublisher) Publish(ctx context.Context, event ports.OrderProgressEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	channel := fmt.Sprintf(progressChannelPattern, event.OrderID)
	return p.client.Publish(ctx, channel, payload).Err()
}
