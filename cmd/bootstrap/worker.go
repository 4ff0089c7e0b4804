package bootstrap

import (
	"context"
	"log/slog"
	"sync"

	"grooming-booking/internal/infra/outbox"
	"grooming-booking/internal/infra/repository"
	sqlc "grooming-booking/internal/infra/sqlc/generated"
	"grooming-booking/internal/pkg/clock"
	"grooming-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(
		StartOutboxPublisher,
	),
)

// StartOutboxPublisher runs the publisher for the app lifetime. No brokers, no worker.
func StartOutboxPublisher(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool, q *sqlc.Queries, clk clock.Clock, logger *slog.Logger) {
	if len(outbox.SplitBrokers(cfg.Kafka.Brokers)) == 0 {
		logger.Info("kafka brokers not configured, outbox publisher disabled")
		return
	}

	store := repository.NewNotificationRepository(q, pool)
	publisher := outbox.NewPublisher(pool, store, outbox.NewKafkaWriter(cfg.Kafka), clk, logger, cfg.Outbox)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				publisher.Run(ctx)
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			wg.Wait()
			return publisher.Close()
		},
	})
}
