package readstore

import (
	"context"
	"time"

	"grooming-booking/internal/domain/appointment"
	"grooming-booking/internal/infra"
	sqlc "grooming-booking/internal/infra/sqlc/generated"
	"grooming-booking/internal/pkg/pgconv"
	"grooming-booking/internal/usecase/queries"
	"grooming-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentReadQueries interface {
	GetAppointmentByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Appointments, error)
	GetAppointmentForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Appointments, error)
	CountPastAppointments(ctx context.Context, db sqlc.DBTX, arg sqlc.CountPastAppointmentsParams) (int64, error)
	AppointmentOverlapExists(ctx context.Context, db sqlc.DBTX, arg sqlc.AppointmentOverlapExistsParams) (bool, error)
	GetAppointmentViewByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetAppointmentViewByIDRow, error)
	ListAppointmentViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentViewsParams) ([]sqlc.ListAppointmentViewsRow, error)
}

type AppointmentReadStore struct {
	queries AppointmentReadQueries
	db      sqlc.DBTX
}

func NewAppointmentReadStore(queries AppointmentReadQueries, db sqlc.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id int64) (*queries.AppointmentView, error) {
	row, err := r.queries.GetAppointmentViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get appointment view by id", err)
	}
	return viewFromRow(sqlc.ListAppointmentViewsRow(row))
}

func (r *AppointmentReadStore) List(ctx context.Context, filter queries.AppointmentFilter) ([]*queries.AppointmentView, error) {
	params := sqlc.ListAppointmentViewsParams{
		StartFrom:    pgconv.TimePtrToPgtype(filter.StartFrom),
		StartTo:      pgconv.TimePtrToPgtype(filter.StartTo),
		CustomerName: pgconv.StringPtrToPgtype(filter.CustomerName),
	}
	rows, err := r.queries.ListAppointmentViews(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}

	views := make([]*queries.AppointmentView, 0, len(rows))
	for _, row := range rows {
		v, err := viewFromRow(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// Snapshot reads used by the booking commands inside their transaction.

func (r *AppointmentReadStore) SnapshotByID(ctx context.Context, id int64) (*shared.AppointmentSnapshot, error) {
	row, err := r.queries.GetAppointmentByID(ctx, r.db, id)
	if err != nil {
		return nil, snapshotErr(err)
	}
	return snapshotFromRow(row)
}

func (r *AppointmentReadStore) SnapshotByIDForUpdate(ctx context.Context, id int64) (*shared.AppointmentSnapshot, error) {
	row, err := r.queries.GetAppointmentForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, snapshotErr(err)
	}
	return snapshotFromRow(row)
}

func (r *AppointmentReadStore) CountPast(ctx context.Context, customerID uuid.UUID, now time.Time) (int, error) {
	n, err := r.queries.CountPastAppointments(ctx, r.db, sqlc.CountPastAppointmentsParams{
		CustomerID: customerID,
		Now:        pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count past appointments", err)
	}
	return int(n), nil
}

func (r *AppointmentReadStore) OverlapExists(ctx context.Context, window appointment.OccupancyWindow, excludeID *int64) (bool, error) {
	exists, err := r.queries.AppointmentOverlapExists(ctx, r.db, sqlc.AppointmentOverlapExistsParams{
		WindowStart: pgconv.TimeToPgtype(window.Start()),
		WindowEnd:   pgconv.TimeToPgtype(window.End()),
		ExcludeID:   pgconv.Int8PtrToPgtype(excludeID),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check appointment overlap", err)
	}
	return exists, nil
}

func snapshotErr(err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to get appointment", err)
}

func snapshotFromRow(row sqlc.Appointments) (*shared.AppointmentSnapshot, error) {
	base, err := pgconv.DecimalFromNumeric(row.BasePrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid base price", err)
	}
	final, err := pgconv.DecimalFromNumeric(row.FinalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid final price", err)
	}
	return &shared.AppointmentSnapshot{
		ID:              row.ID,
		CustomerID:      row.CustomerID,
		SizeClass:       row.SizeClass,
		Start:           pgconv.TimeFromPgtype(row.StartsAt),
		DurationMinutes: int(row.DurationMinutes),
		BasePrice:       base,
		FinalPrice:      final,
		DiscountApplied: row.DiscountApplied,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func viewFromRow(row sqlc.ListAppointmentViewsRow) (*queries.AppointmentView, error) {
	base, err := pgconv.DecimalFromNumeric(row.BasePrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid base price", err)
	}
	final, err := pgconv.DecimalFromNumeric(row.FinalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid final price", err)
	}
	return &queries.AppointmentView{
		ID:              row.ID,
		CustomerID:      row.CustomerID,
		CustomerName:    row.CustomerName,
		Start:           pgconv.TimeFromPgtype(row.StartsAt),
		SizeClass:       row.SizeClass,
		DurationMinutes: int(row.DurationMinutes),
		BasePrice:       base,
		FinalPrice:      final,
		DiscountApplied: row.DiscountApplied,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
