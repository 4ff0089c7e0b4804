package converter

import (
	"grooming-booking/internal/domain/appointment"
	"grooming-booking/internal/domain/customer"
	sqlc "grooming-booking/internal/infra/sqlc/generated"
	"grooming-booking/internal/pkg/pgconv"
)

func AppointmentToCreateParams(a *appointment.Appointment) sqlc.CreateAppointmentParams {
	return sqlc.CreateAppointmentParams{
		CustomerID:      a.CustomerID(),
		SizeClass:       a.SizeClass().String(),
		StartsAt:        pgconv.TimeToPgtype(a.Start()),
		DurationMinutes: int32(a.DurationMinutes()), // #nosec G115 -- bounded by the rate table
		BasePrice:       pgconv.DecimalToNumeric(a.BasePrice().Amount()),
		FinalPrice:      pgconv.DecimalToNumeric(a.FinalPrice().Amount()),
		DiscountApplied: a.DiscountApplied(),
	}
}

func AppointmentToUpdateParams(a *appointment.Appointment) sqlc.UpdateAppointmentParams {
	return sqlc.UpdateAppointmentParams{
		ID:              a.ID(),
		SizeClass:       a.SizeClass().String(),
		StartsAt:        pgconv.TimeToPgtype(a.Start()),
		DurationMinutes: int32(a.DurationMinutes()), // #nosec G115 -- bounded by the rate table
		BasePrice:       pgconv.DecimalToNumeric(a.BasePrice().Amount()),
		FinalPrice:      pgconv.DecimalToNumeric(a.FinalPrice().Amount()),
		DiscountApplied: a.DiscountApplied(),
	}
}

func CustomerToCreateParams(c *customer.Customer) sqlc.CreateCustomerParams {
	return sqlc.CreateCustomerParams{
		Username:     c.Username().Value(),
		PasswordHash: c.PasswordHash(),
		FirstName:    c.FirstName().Value(),
	}
}

func CustomerFromRow(row sqlc.Customers) (*customer.Customer, error) {
	username, err := customer.NewUsername(row.Username)
	if err != nil {
		return nil, err
	}
	firstName, err := customer.NewFirstName(row.FirstName)
	if err != nil {
		return nil, err
	}
	return customer.ReconstructCustomer(row.ID, username, firstName, row.PasswordHash, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}
