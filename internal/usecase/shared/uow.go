package shared

import (
	"context"
	"time"

	"grooming-booking/internal/domain/appointment"
	"grooming-booking/internal/domain/customer"
	sqlc "grooming-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: read committed write transaction with retry on serialization/deadlock errors
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: serializable write transaction for check-then-write sequences
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Appointments() AppointmentRepository
	Customers() CustomerRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	AppointmentByID(ctx context.Context, id int64) (*AppointmentSnapshot, error)
	// AppointmentByIDForUpdate locks the row until the surrounding transaction ends.
	AppointmentByIDForUpdate(ctx context.Context, id int64) (*AppointmentSnapshot, error)
	CountPastAppointments(ctx context.Context, customerID uuid.UUID, now time.Time) (int, error)
	// OverlapExists evaluates the half-open overlap test against every stored appointment except excludeID.
	OverlapExists(ctx context.Context, window appointment.OccupancyWindow, excludeID *int64) (bool, error)
	CustomerByID(ctx context.Context, id uuid.UUID) (*CustomerSnapshot, error)
	CustomerByUsername(ctx context.Context, username string) (*CustomerSnapshot, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) (*appointment.Appointment, error)
	Update(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}

type CustomerRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) (*customer.Customer, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
