package components

import (
	"grooming-booking/internal/handler"
	"grooming-booking/internal/infra/db"
	"grooming-booking/internal/infra/readstore"
	sqlc "grooming-booking/internal/infra/sqlc/generated"
	"grooming-booking/internal/infra/uow"
	"grooming-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are built per transaction inside the UnitOfWork.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	NewReadyCheck,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Customer
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CustomerReadQueries)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
		// Appointment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AppointmentReadQueries)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewReadyCheck(pool *pgxpool.Pool) handler.ReadyCheck {
	return db.ReadyCheck(pool)
}
