// Package cache holds the Redis client and the features built on it.
package cache

import (
	"context"
	"log/slog"
	"time"

	"orderbot/config"
	"orderbot/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	dedupKeyPrefix  = "orderbot:msg:"
	defaultDedupTTL = 24 * time.Hour
)

// ClientParams holds dependencies for the Redis client, injected by Fx
type ClientParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient connects to Redis. It returns nil when Redis is not configured.
func NewRedisClient(params ClientParams) *redis.Client {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, message deduplication disabled")

		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Redis connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Redis client")

			return client.Close()
		},
	})

	return client
}

// setNX is the part of the Redis API the deduplicator uses.
type setNX interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
}

type redisDeduplicator struct {
	client setNX
	ttl    time.Duration
}

func (d *redisDeduplicator) FirstSeen(ctx context.Context, messageID string) (bool, error) {
	first, err := d.client.SetNX(ctx, dedupKeyPrefix+messageID, "1", d.ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to record message id")
	}

	return first, nil
}

// noopDeduplicator treats every message as new.
type noopDeduplicator struct{}

func (noopDeduplicator) FirstSeen(context.Context, string) (bool, error) {
	return true, nil
}

// NewMessageDeduplicator uses Redis when a client is available.
func NewMessageDeduplicator(client *redis.Client, cfg *config.Config) service.MessageDeduplicator {
	if client == nil {
		return noopDeduplicator{}
	}

	ttl := defaultDedupTTL
	if cfg.Redis != nil && cfg.Redis.DedupTTL > 0 {
		ttl = cfg.Redis.DedupTTL
	}

	return &redisDeduplicator{client: client, ttl: ttl}
}

// Module provides the cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRedisClient,
		NewMessageDeduplicator,
	),
)
