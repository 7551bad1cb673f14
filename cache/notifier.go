package cache

import (
	"context"
	"time"

	"github.com/5urf/carrot-challenge/config"
	"github.com/5urf/carrot-challenge/telemetry"
	"github.com/redis/go-redis/v9"
)

const (
	tagKeyPrefix  = "cache:tag:"
	pathKeyPrefix = "cache:path:"

	DefaultChannel = "revalidations"
)

// Notifier tells rendered-page caches that dependent data changed. Both
// methods are fire-and-forget: failures are logged and never surfaced to the
// mutation that emitted the signal.
type Notifier interface {
	Tag(ctx context.Context, tags ...string)
	Path(ctx context.Context, paths ...string)
}

type redisNotifier struct {
	client  *redis.Client
	logger  telemetry.Logger
	channel string
}

// Dial builds a redis client from the cache config and verifies the
// connection before handing it out.
func Dial(cfg config.Cache) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.DSN)
	if err != nil {
		return nil, err
	}

	opt.DialTimeout = 5 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}

func NewRedisNotifier(client *redis.Client, channel string, logger telemetry.Logger) Notifier {
	if channel == "" {
		channel = DefaultChannel
	}

	return &redisNotifier{
		client:  client,
		logger:  logger,
		channel: channel,
	}
}

// Tag implements Notifier.
func (n *redisNotifier) Tag(ctx context.Context, tags ...string) {
	for _, tag := range tags {
		n.invalidate(ctx, tagKeyPrefix+tag, "tag:"+tag)
	}
}

// Path implements Notifier.
func (n *redisNotifier) Path(ctx context.Context, paths ...string) {
	for _, path := range paths {
		n.invalidate(ctx, pathKeyPrefix+path, "path:"+path)
	}
}

func (n *redisNotifier) invalidate(ctx context.Context, key, signal string) {
	if err := n.client.Del(ctx, key).Err(); err != nil {
		n.logger.Err(err).Str("key", key).Msg("cache invalidation delete failed")
	}

	if err := n.client.Publish(ctx, n.channel, signal).Err(); err != nil {
		n.logger.Err(err).Str("signal", signal).Msg("cache invalidation publish failed")
	}
}
