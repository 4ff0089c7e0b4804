package repository

import (
	"context"

	"grooming-booking/internal/domain/appointment"
	"grooming-booking/internal/infra"
	"grooming-booking/internal/infra/repository/converter"
	sqlc "grooming-booking/internal/infra/sqlc/generated"
	"grooming-booking/internal/pkg/pgconv"
)

type AppointmentWriteQueries interface {
	CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) (sqlc.CreateAppointmentRow, error)
	UpdateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentParams) (int64, error)
	DeleteAppointment(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
	db      sqlc.DBTX
}

func NewAppointmentRepository(queries AppointmentWriteQueries, db sqlc.DBTX) *AppointmentRepository {
	return &AppointmentRepository{
		queries: queries,
		db:      db,
	}
}

// Create returns the stored appointment carrying its assigned id and creation time.
func (r *AppointmentRepository) Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) (*appointment.Appointment, error) {
	row, err := r.queries.CreateAppointment(ctx, tx, converter.AppointmentToCreateParams(a))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create appointment", err)
	}
	return appointment.ReconstructAppointment(
		row.ID,
		a.CustomerID(),
		a.SizeClass(),
		a.Start(),
		a.Duration(),
		a.BasePrice(),
		a.FinalPrice(),
		a.DiscountApplied(),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func (r *AppointmentRepository) Update(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error {
	affected, err := r.queries.UpdateAppointment(ctx, tx, converter.AppointmentToUpdateParams(a))
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	affected, err := r.queries.DeleteAppointment(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete appointment", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}
