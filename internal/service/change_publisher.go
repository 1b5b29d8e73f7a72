package service

import (
	"context"
	"encoding/json"
	"fmt"

	"clinic-registry/internal/domain/entity"

	"github.com/redis/go-redis/v9"
)

// ChangePublisher fans committed writes out to interested subscribers.
type ChangePublisher interface {
	Publish(ctx context.Context, event entity.ChangeEvent) error
}

type redisChangePublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisChangePublisher publishes every event as JSON on a Redis pub/sub
// channel.
func NewRedisChangePublisher(client *redis.Client, channel string) ChangePublisher {
	return &redisChangePublisher{client: client, channel: channel}
}

func (p *redisChangePublisher) Publish(ctx context.Context, event entity.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal change event: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", p.channel, err)
	}
	return nil
}

type noopChangePublisher struct{}

// NewNoopChangePublisher is used when no Redis server is configured.
func NewNoopChangePublisher() ChangePublisher {
	return noopChangePublisher{}
}

func (noopChangePublisher) Publish(context.Context, entity.ChangeEvent) error {
	return nil
}
