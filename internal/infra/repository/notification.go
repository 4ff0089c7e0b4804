package repository

import (
	"context"
	"time"

	"grooming-booking/internal/infra"
	sqlc "grooming-booking/internal/infra/sqlc/generated"
	"grooming-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimQueuedNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimQueuedNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	MarkNotificationJobRetry(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobRetryParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
		Status:  JobStatusQueued,
	}

	if err := r.queries.CreateNotificationJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// ClaimQueued locks up to limit due jobs; other claimers skip them until tx ends.
func (r *NotificationRepository) ClaimQueued(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]sqlc.NotificationJobs, error) {
	jobs, err := r.queries.ClaimQueuedNotificationJobs(ctx, tx, sqlc.ClaimQueuedNotificationJobsParams{
		Now:       pgconv.TimeToPgtype(now),
		BatchSize: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error {
	if err := r.queries.MarkNotificationJobSent(ctx, tx, jobID); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

// MarkRetry re-queues the job at nextRun, or fails it permanently when exhausted is set.
func (r *NotificationRepository) MarkRetry(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, lastError string, nextRun time.Time, exhausted bool) error {
	status := JobStatusQueued
	if exhausted {
		status = JobStatusFailed
	}
	params := sqlc.MarkNotificationJobRetryParams{
		ID:        jobID,
		Status:    status,
		LastError: pgconv.StringToPgtype(lastError),
		RunAt:     pgconv.TimeToPgtype(nextRun),
	}
	if err := r.queries.MarkNotificationJobRetry(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update notification job", err)
	}
	return nil
}
