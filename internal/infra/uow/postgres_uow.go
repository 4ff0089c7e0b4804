package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"grooming-booking/internal/domain/appointment"
	"grooming-booking/internal/infra/readstore"
	"grooming-booking/internal/infra/repository"
	sqlc "grooming-booking/internal/infra/sqlc/generated"
	"grooming-booking/internal/pkg/errs"
	"grooming-booking/internal/pkg/telemetry"
	"grooming-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	defaultMaxRetries = 3
	defaultBaseDelay  = 100 * time.Millisecond
)

type PostgresUoW struct {
	pool       *pgxpool.Pool
	q          *sqlc.Queries
	maxRetries int
	baseDelay  time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool:       pool,
		q:          q,
		maxRetries: defaultMaxRetries,
		baseDelay:  defaultBaseDelay,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Serializable makes an overlap check and the write that follows it atomic against concurrent bookings
func (u *PostgresUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	ctx, span := telemetry.Tracer().Start(ctx, "uow.transaction")
	defer span.End()
	span.SetAttributes(attribute.String("db.isolation_level", string(options.IsoLevel)))

	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		span.SetAttributes(attribute.Int("db.tx.attempt", attempt+1))

		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "begin failed")
			return errs.Mark(err, shared.ErrTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, shared.ErrTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryableError(err) {
			return err
		}
		if attempt == u.maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			span.RecordError(err)
			span.SetStatus(codes.Error, "max retries exceeded")
			return errs.Mark(err, shared.ErrMaxRetriesExceeded)
		}

		waitTime := calculateBackoff(attempt, u.baseDelay)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return shared.ErrMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, shared.ErrTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	appointmentRepo  shared.AppointmentRepository
	customerRepo     shared.CustomerRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Appointments() shared.AppointmentRepository {
	if t.appointmentRepo == nil {
		t.appointmentRepo = repository.NewAppointmentRepository(t.uow.q, t.dbtx)
	}
	return t.appointmentRepo
}

func (t *pgTx) Customers() shared.CustomerRepository {
	if t.customerRepo == nil {
		t.customerRepo = repository.NewCustomerRepository(t.uow.q, t.dbtx)
	}
	return t.customerRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	appointmentStore *readstore.AppointmentReadStore
	customerStore    *readstore.CustomerReadStore
}

func (r *commandReads) appointments() *readstore.AppointmentReadStore {
	if r.appointmentStore == nil {
		r.appointmentStore = readstore.NewAppointmentReadStore(r.uow.q, r.dbtx)
	}
	return r.appointmentStore
}

func (r *commandReads) customers() *readstore.CustomerReadStore {
	if r.customerStore == nil {
		r.customerStore = readstore.NewCustomerReadStore(r.uow.q, r.dbtx)
	}
	return r.customerStore
}

func (r *commandReads) AppointmentByID(ctx context.Context, id int64) (*shared.AppointmentSnapshot, error) {
	return r.appointments().SnapshotByID(ctx, id)
}

func (r *commandReads) AppointmentByIDForUpdate(ctx context.Context, id int64) (*shared.AppointmentSnapshot, error) {
	return r.appointments().SnapshotByIDForUpdate(ctx, id)
}

func (r *commandReads) CountPastAppointments(ctx context.Context, customerID uuid.UUID, now time.Time) (int, error) {
	return r.appointments().CountPast(ctx, customerID, now)
}

func (r *commandReads) OverlapExists(ctx context.Context, window appointment.OccupancyWindow, excludeID *int64) (bool, error) {
	return r.appointments().OverlapExists(ctx, window, excludeID)
}

func (r *commandReads) CustomerByID(ctx context.Context, id uuid.UUID) (*shared.CustomerSnapshot, error) {
	return r.customers().SnapshotByID(ctx, id)
}

func (r *commandReads) CustomerByUsername(ctx context.Context, username string) (*shared.CustomerSnapshot, error) {
	return r.customers().SnapshotByUsername(ctx, username)
}
