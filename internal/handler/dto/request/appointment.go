package request

import (
	"time"

	"grooming-booking/internal/pkg/errs"
	"grooming-booking/internal/usecase/commands"
	"grooming-booking/internal/usecase/queries"
)

var ErrInvalidDateFilter = errs.New("startDate and endDate must be RFC3339 or YYYY-MM-DD")

// AppointmentRequest is the body of both create and reschedule.
type AppointmentRequest struct {
	AppointmentTime time.Time `json:"appointmentTime" binding:"required"`
	DogSize         string    `json:"dogSize" binding:"required"`
}

func (r AppointmentRequest) ToCommand() commands.BookAppointmentRequest {
	return commands.BookAppointmentRequest{
		Start:     r.AppointmentTime,
		SizeClass: r.DogSize,
	}
}

type ListAppointmentsQuery struct {
	StartDate    string `form:"startDate"`
	EndDate      string `form:"endDate"`
	CustomerName string `form:"customerName"`
}

// ToFilter accepts full timestamps or plain dates. A plain endDate covers the whole day.
func (q ListAppointmentsQuery) ToFilter(loc *time.Location) (queries.AppointmentFilter, error) {
	var filter queries.AppointmentFilter
	if loc == nil {
		loc = time.UTC
	}

	if q.StartDate != "" {
		from, _, err := parseDateParam(q.StartDate, loc)
		if err != nil {
			return filter, err
		}
		filter.StartFrom = &from
	}
	if q.EndDate != "" {
		to, dateOnly, err := parseDateParam(q.EndDate, loc)
		if err != nil {
			return filter, err
		}
		if dateOnly {
			to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		filter.StartTo = &to
	}
	if q.CustomerName != "" {
		name := q.CustomerName
		filter.CustomerName = &name
	}
	return filter, nil
}

func parseDateParam(raw string, loc *time.Location) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, false, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, raw, loc)
	if err != nil {
		return time.Time{}, false, errs.Mark(err, ErrInvalidDateFilter)
	}
	return t, true, nil
}
