package bootstrap

import (
	"context"
	"log/slog"

	"grooming-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is empty; consumers treat that as disabled.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	if cfg.Redis.Addr == "" {
		logger.Info("redis disabled, write rate limiting is off")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Username:     cfg.Redis.Username,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// an unreachable redis is not fatal; the limiter decides via RATE_LIMIT_FAIL_OPEN
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis ping failed", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}
