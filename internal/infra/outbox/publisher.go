package outbox

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	sqlc "grooming-booking/internal/infra/sqlc/generated"
	"grooming-booking/internal/pkg/clock"
	"grooming-booking/internal/pkg/config"
	"grooming-booking/internal/pkg/telemetry"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const maxRetryDelay = 5 * time.Minute

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type JobStore interface {
	ClaimQueued(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]sqlc.NotificationJobs, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error
	MarkRetry(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, lastError string, nextRun time.Time, exhausted bool) error
}

type Publisher struct {
	db          TxBeginner
	store       JobStore
	writer      MessageWriter
	clock       clock.Clock
	logger      *slog.Logger
	pollEvery   time.Duration
	batchSize   int32
	maxAttempts int32
}

func NewPublisher(db TxBeginner, store JobStore, writer MessageWriter, clk clock.Clock, logger *slog.Logger, cfg config.OutboxConfig) *Publisher {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	return &Publisher{
		db:          db,
		store:       store,
		writer:      writer,
		clock:       clk,
		logger:      logger,
		pollEvery:   cfg.PollInterval,
		batchSize:   cfg.BatchSize,
		maxAttempts: cfg.MaxAttempts,
	}
}

func NewKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(SplitBrokers(cfg.Brokers)...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		WriteTimeout:           cfg.WriteTimeout,
		AllowAutoTopicCreation: true,
	}
}

func SplitBrokers(raw string) []string {
	var out []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// Run polls until ctx is cancelled.
func (p *Publisher) Run(ctx context.Context) {
	ticker := time.NewTicker(p.pollEvery)
	defer ticker.Stop()

	p.logger.Info("outbox publisher started", "poll_interval", p.pollEvery.String(), "batch_size", p.batchSize)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("outbox publisher stopped")
			return
		case <-ticker.C:
			if _, err := p.PublishBatch(ctx); err != nil && !errors.Is(err, context.Canceled) {
				p.logger.Error("outbox publish failed", "error", err.Error())
			}
		}
	}
}

// PublishBatch sends one batch of due jobs and returns how many were delivered.
func (p *Publisher) PublishBatch(ctx context.Context) (int, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "outbox.publish_batch", trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()

	tx, err := p.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := p.clock.Now()
	jobs, err := p.store.ClaimQueued(ctx, tx, now, p.batchSize)
	if err != nil {
		return 0, err
	}
	span.SetAttributes(attribute.Int("outbox.claimed", len(jobs)))
	if len(jobs) == 0 {
		return 0, tx.Commit(ctx)
	}

	sent := 0
	for _, job := range jobs {
		if werr := p.writer.WriteMessages(ctx, p.message(ctx, job)); werr != nil {
			attempts := job.Attempts + 1
			exhausted := attempts >= p.maxAttempts
			p.logger.Warn("outbox delivery failed",
				"job_id", job.ID.String(),
				"kind", job.Kind,
				"attempts", attempts,
				"exhausted", exhausted,
				"error", werr.Error())
			if err := p.store.MarkRetry(ctx, tx, job.ID, werr.Error(), now.Add(retryDelay(p.pollEvery, attempts)), exhausted); err != nil {
				return sent, err
			}
			continue
		}
		if err := p.store.MarkSent(ctx, tx, job.ID); err != nil {
			return sent, err
		}
		sent++
	}

	if err := tx.Commit(ctx); err != nil {
		return sent, err
	}
	return sent, nil
}

func (p *Publisher) message(ctx context.Context, job sqlc.NotificationJobs) kafka.Message {
	msg := kafka.Message{
		Topic: job.Topic,
		Key:   []byte(job.ID.String()),
		Value: job.Payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(job.ID.String())},
			{Key: "event_type", Value: []byte(job.Kind)},
		},
	}
	msg.Headers = InjectTraceHeaders(ctx, msg.Headers)
	return msg
}

func retryDelay(base time.Duration, attempts int32) time.Duration {
	d := base
	for i := int32(1); i < attempts; i++ {
		d *= 2
		if d >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return d
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
