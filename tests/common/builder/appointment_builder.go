//go:build unit || e2e

package builder

import (
	"time"

	"grooming-booking/internal/domain/appointment"
	reqdto "grooming-booking/internal/handler/dto/request"
	sqlc "grooming-booking/internal/infra/sqlc/generated"
	"grooming-booking/internal/pkg/pgconv"
	"grooming-booking/internal/usecase/commands"
	"grooming-booking/internal/usecase/queries"
	"grooming-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AppointmentBuilder struct {
	ID              int64
	CustomerID      uuid.UUID
	CustomerName    string
	SizeClass       string
	Start           time.Time
	DurationMinutes int
	BasePrice       decimal.Decimal
	FinalPrice      decimal.Decimal
	DiscountApplied bool
	CreatedAt       time.Time
}

// NewAppointmentBuilder starts from a Small booking tomorrow at 10:00 UTC.
func NewAppointmentBuilder() *AppointmentBuilder {
	now := time.Now().UTC()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day()+1, 10, 0, 0, 0, time.UTC)
	return &AppointmentBuilder{
		ID:              1,
		CustomerID:      uuid.New(),
		CustomerName:    "Alice",
		SizeClass:       string(appointment.SizeSmall),
		Start:           tomorrow,
		DurationMinutes: 30,
		BasePrice:       decimal.NewFromInt(100),
		FinalPrice:      decimal.NewFromInt(100),
		CreatedAt:       now,
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *AppointmentBuilder) BuildDomain() (*appointment.Appointment, error) {
	base, err := appointment.NewMoney(b.BasePrice)
	if err != nil {
		return nil, err
	}
	final, err := appointment.NewMoney(b.FinalPrice)
	if err != nil {
		return nil, err
	}
	return appointment.ReconstructAppointment(
		b.ID,
		b.CustomerID,
		appointment.SizeClass(b.SizeClass),
		b.Start,
		time.Duration(b.DurationMinutes)*time.Minute,
		base,
		final,
		b.DiscountApplied,
		b.CreatedAt,
	)
}

func (b *AppointmentBuilder) BuildInfra() sqlc.Appointments {
	return sqlc.Appointments{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		SizeClass:       b.SizeClass,
		StartsAt:        pgconv.TimeToPgtype(b.Start),
		DurationMinutes: int32(b.DurationMinutes), // #nosec G115 -- test data
		BasePrice:       pgconv.DecimalToNumeric(b.BasePrice),
		FinalPrice:      pgconv.DecimalToNumeric(b.FinalPrice),
		DiscountApplied: b.DiscountApplied,
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *AppointmentBuilder) BuildViewRow() sqlc.ListAppointmentViewsRow {
	return sqlc.ListAppointmentViewsRow{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		CustomerName:    b.CustomerName,
		SizeClass:       b.SizeClass,
		StartsAt:        pgconv.TimeToPgtype(b.Start),
		DurationMinutes: int32(b.DurationMinutes), // #nosec G115 -- test data
		BasePrice:       pgconv.DecimalToNumeric(b.BasePrice),
		FinalPrice:      pgconv.DecimalToNumeric(b.FinalPrice),
		DiscountApplied: b.DiscountApplied,
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *AppointmentBuilder) BuildRequestDTO() reqdto.AppointmentRequest {
	return reqdto.AppointmentRequest{
		AppointmentTime: b.Start,
		DogSize:         b.SizeClass,
	}
}

func (b *AppointmentBuilder) BuildCommand() commands.BookAppointmentRequest {
	return commands.BookAppointmentRequest{
		Start:     b.Start,
		SizeClass: b.SizeClass,
	}
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		CustomerName:    b.CustomerName,
		Start:           b.Start,
		SizeClass:       b.SizeClass,
		DurationMinutes: b.DurationMinutes,
		BasePrice:       b.BasePrice,
		FinalPrice:      b.FinalPrice,
		DiscountApplied: b.DiscountApplied,
		CreatedAt:       b.CreatedAt,
	}
}

func (b *AppointmentBuilder) BuildSnapshot() *shared.AppointmentSnapshot {
	return &shared.AppointmentSnapshot{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		SizeClass:       b.SizeClass,
		Start:           b.Start,
		DurationMinutes: b.DurationMinutes,
		BasePrice:       b.BasePrice,
		FinalPrice:      b.FinalPrice,
		DiscountApplied: b.DiscountApplied,
		CreatedAt:       b.CreatedAt,
	}
}

// Fluent builder methods
func (b *AppointmentBuilder) WithID(id int64) *AppointmentBuilder {
	b.ID = id
	return b
}

func (b *AppointmentBuilder) WithCustomerID(id uuid.UUID) *AppointmentBuilder {
	b.CustomerID = id
	return b
}

func (b *AppointmentBuilder) WithCustomerName(name string) *AppointmentBuilder {
	b.CustomerName = name
	return b
}

func (b *AppointmentBuilder) WithStart(start time.Time) *AppointmentBuilder {
	b.Start = start
	return b
}

func (b *AppointmentBuilder) WithSizeClass(size string) *AppointmentBuilder {
	b.SizeClass = size
	return b
}

func (b *AppointmentBuilder) AsMedium() *AppointmentBuilder {
	b.SizeClass = string(appointment.SizeMedium)
	b.DurationMinutes = 45
	b.BasePrice = decimal.NewFromInt(150)
	b.FinalPrice = decimal.NewFromInt(150)
	return b
}

func (b *AppointmentBuilder) AsLarge() *AppointmentBuilder {
	b.SizeClass = string(appointment.SizeLarge)
	b.DurationMinutes = 60
	b.BasePrice = decimal.NewFromInt(200)
	b.FinalPrice = decimal.NewFromInt(200)
	return b
}

// AsDiscounted applies the default 10% loyalty discount to the current base price.
func (b *AppointmentBuilder) AsDiscounted() *AppointmentBuilder {
	b.DiscountApplied = true
	b.FinalPrice = b.BasePrice.Mul(decimal.RequireFromString("0.9")).Round(2)
	return b
}
