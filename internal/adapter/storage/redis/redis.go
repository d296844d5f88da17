package redis

import (
	"context"
	"fmt"
	"time"

	"wallet-settings/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// dialTimeout keeps startup from hanging when Redis is down; rate limiting
// and the notification queue are useless without it.
const dialTimeout = 3 * time.Second

// Options maps the redis config section onto client options.
func Options(cfg config.RedisConfig) *goredis.Options {
	return &goredis.Options{
		Addr:        cfg.Addr(),
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: dialTimeout,
	}
}

// NewClient connects the client shared by the rate cache, the notification
// queue and the rate limiter. The client is closed again if the first ping
// fails.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(Options(cfg))

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr(), err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Str("key_prefix", keyPrefix).
		Msg("redis ready")

	return client, nil
}
