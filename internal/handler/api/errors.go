package api

import (
	"net/http"

	reqdto "grooming-booking/internal/handler/dto/request"
	"grooming-booking/internal/handler/httperr"
	"grooming-booking/internal/usecase/commands"
	"grooming-booking/internal/usecase/queries"
)

var appointmentErrorRules = []httperr.Rule{
	{Target: commands.ErrInvalidInput, Status: http.StatusBadRequest, Message: "Invalid request"},
	{Target: queries.ErrInvalidDateRange, Status: http.StatusBadRequest, Message: "startDate must not be after endDate"},
	{Target: reqdto.ErrInvalidDateFilter, Status: http.StatusBadRequest, Message: "Invalid date filter"},
	{Target: commands.ErrAppointmentForbidden, Status: http.StatusForbidden, Message: "Appointment belongs to another customer"},
	{Target: commands.ErrAppointmentNotFound, Status: http.StatusNotFound, Message: "Appointment not found"},
	{Target: queries.ErrAppointmentNotFound, Status: http.StatusNotFound, Message: "Appointment not found"},
	{Target: commands.ErrSlotConflict, Status: http.StatusConflict, Message: "The requested time slot is already booked"},
	{Target: commands.ErrSameDayLock, Status: http.StatusUnprocessableEntity, Message: "Appointments cannot be cancelled on the same day"},
	{Target: commands.ErrTransientFailure, Status: http.StatusServiceUnavailable, Message: "Booking is busy, please retry"},
}

var authErrorRules = []httperr.Rule{
	{Target: commands.ErrInvalidInput, Status: http.StatusBadRequest, Message: "Invalid request"},
	{Target: commands.ErrInvalidCredentials, Status: http.StatusUnauthorized, Message: "Invalid username or password"},
	{Target: commands.ErrUsernameTaken, Status: http.StatusConflict, Message: "Username already taken"},
	{Target: queries.ErrCustomerNotFound, Status: http.StatusUnauthorized, Message: "Customer no longer exists"},
}
