package commands

import (
	"context"
	"encoding/json"
	"time"

	"grooming-booking/internal/domain/appointment"
	"grooming-booking/internal/infra"
	"grooming-booking/internal/pkg/errs"
	"grooming-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput         = errs.New("invalid input")
	ErrSlotConflict         = errs.New("requested time overlaps an existing appointment")
	ErrAppointmentNotFound  = errs.New("appointment not found")
	ErrAppointmentForbidden = errs.New("appointment belongs to another customer")
	ErrSameDayLock          = errs.New("appointment cannot be cancelled on the day it is scheduled")
	ErrTransientFailure     = errs.New("booking could not be completed, retry later")
)

const (
	EventAppointmentBooked      = "appointment.booked"
	EventAppointmentRescheduled = "appointment.rescheduled"
	EventAppointmentCancelled   = "appointment.cancelled"
)

type BookAppointmentRequest struct {
	Start     time.Time
	SizeClass string
}

type CreateAppointmentResult struct {
	AppointmentID int64
}

type AppointmentCommands interface {
	Create(ctx context.Context, req BookAppointmentRequest, customerID uuid.UUID) (*CreateAppointmentResult, error)
	Update(ctx context.Context, appointmentID int64, req BookAppointmentRequest, customerID uuid.UUID) error
	Delete(ctx context.Context, appointmentID int64, customerID uuid.UUID) error
}

// AppointmentSettings carries the schedule zone used for "today" and the outbox topic.
type AppointmentSettings struct {
	Location   *time.Location
	EventTopic string
}

type appointmentCommandsImpl struct {
	uow      shared.UnitOfWork
	services *appointment.Services
	settings AppointmentSettings
}

func NewAppointmentCommands(uow shared.UnitOfWork, services *appointment.Services, settings AppointmentSettings) AppointmentCommands {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	return &appointmentCommandsImpl{uow: uow, services: services, settings: settings}
}

func (uc *appointmentCommandsImpl) Create(ctx context.Context, req BookAppointmentRequest, customerID uuid.UUID) (*CreateAppointmentResult, error) {
	size, err := parseBooking(req)
	if err != nil {
		return nil, err
	}

	var created *appointment.Appointment
	err = uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		past, derr := tx.Reads().CountPastAppointments(ctx, customerID, uc.services.Clock.Now())
		if derr != nil {
			return derr
		}

		appt, derr := appointment.NewAppointment(uc.services, customerID, req.Start, size, past)
		if derr != nil {
			return markDomainErr(derr)
		}

		overlap, derr := tx.Reads().OverlapExists(ctx, appt.Window(), nil)
		if derr != nil {
			return derr
		}
		if overlap {
			return ErrSlotConflict
		}

		created, derr = tx.Appointments().Create(ctx, tx.DB(), appt)
		if derr != nil {
			return derr
		}
		return uc.enqueue(ctx, tx, EventAppointmentBooked, created)
	})
	if err != nil {
		return nil, translateTxErr(err)
	}
	return &CreateAppointmentResult{AppointmentID: created.ID()}, nil
}

func (uc *appointmentCommandsImpl) Update(ctx context.Context, appointmentID int64, req BookAppointmentRequest, customerID uuid.UUID) error {
	size, err := parseBooking(req)
	if err != nil {
		return err
	}

	err = uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().AppointmentByID(ctx, appointmentID)
		if derr != nil {
			return derr
		}
		appt, derr := snapshotToDomain(snap)
		if derr != nil {
			return derr
		}
		if !appt.IsOwnedBy(customerID) {
			return ErrAppointmentForbidden
		}

		// the count includes this appointment when it already lies in the past
		past, derr := tx.Reads().CountPastAppointments(ctx, customerID, uc.services.Clock.Now())
		if derr != nil {
			return derr
		}
		if derr = appt.Reschedule(uc.services, req.Start, size, past); derr != nil {
			return markDomainErr(derr)
		}

		id := appt.ID()
		overlap, derr := tx.Reads().OverlapExists(ctx, appt.Window(), &id)
		if derr != nil {
			return derr
		}
		if overlap {
			return ErrSlotConflict
		}

		if derr = tx.Appointments().Update(ctx, tx.DB(), appt); derr != nil {
			return derr
		}
		return uc.enqueue(ctx, tx, EventAppointmentRescheduled, appt)
	})
	return translateTxErr(err)
}

func (uc *appointmentCommandsImpl) Delete(ctx context.Context, appointmentID int64, customerID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().AppointmentByIDForUpdate(ctx, appointmentID)
		if derr != nil {
			return derr
		}
		appt, derr := snapshotToDomain(snap)
		if derr != nil {
			return derr
		}
		if !appt.IsOwnedBy(customerID) {
			return ErrAppointmentForbidden
		}
		if derr = appt.EnsureCancellable(uc.services.Clock.Now(), uc.settings.Location); derr != nil {
			return errs.Mark(derr, ErrSameDayLock)
		}

		if derr = tx.Appointments().Delete(ctx, tx.DB(), appointmentID); derr != nil {
			return derr
		}
		return uc.enqueue(ctx, tx, EventAppointmentCancelled, appt)
	})
	return translateTxErr(err)
}

type appointmentEvent struct {
	AppointmentID   int64     `json:"appointmentId"`
	CustomerID      uuid.UUID `json:"customerId"`
	AppointmentTime time.Time `json:"appointmentTime"`
	DogSize         string    `json:"dogSize"`
	DurationMinutes int       `json:"durationMinutes"`
	FinalPrice      string    `json:"finalPrice"`
	DiscountApplied bool      `json:"discountApplied"`
	OccurredAt      time.Time `json:"occurredAt"`
}

func (uc *appointmentCommandsImpl) enqueue(ctx context.Context, tx shared.Tx, kind string, appt *appointment.Appointment) error {
	now := uc.services.Clock.Now()
	payload, err := json.Marshal(appointmentEvent{
		AppointmentID:   appt.ID(),
		CustomerID:      appt.CustomerID(),
		AppointmentTime: appt.Start().UTC(),
		DogSize:         appt.SizeClass().String(),
		DurationMinutes: appt.DurationMinutes(),
		FinalPrice:      appt.FinalPrice().String(),
		DiscountApplied: appt.DiscountApplied(),
		OccurredAt:      now.UTC(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode appointment event")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), kind, uc.settings.EventTopic, payload, now)
}

func parseBooking(req BookAppointmentRequest) (appointment.SizeClass, error) {
	size, err := appointment.ParseSizeClass(req.SizeClass)
	if err != nil {
		return "", errs.Mark(err, ErrInvalidInput)
	}
	if req.Start.IsZero() {
		return "", errs.Mark(appointment.ErrInvalidStart, ErrInvalidInput)
	}
	return size, nil
}

func markDomainErr(err error) error {
	if errs.IsAny(err,
		appointment.ErrInvalidSizeClass,
		appointment.ErrInvalidStart,
		appointment.ErrInvalidDuration,
		appointment.ErrInvalidCustomer,
	) {
		return errs.Mark(err, ErrInvalidInput)
	}
	return err
}

func snapshotToDomain(s *shared.AppointmentSnapshot) (*appointment.Appointment, error) {
	base, err := appointment.NewMoney(s.BasePrice)
	if err != nil {
		return nil, err
	}
	final, err := appointment.NewMoney(s.FinalPrice)
	if err != nil {
		return nil, err
	}
	return appointment.ReconstructAppointment(
		s.ID,
		s.CustomerID,
		appointment.SizeClass(s.SizeClass),
		s.Start,
		time.Duration(s.DurationMinutes)*time.Minute,
		base,
		final,
		s.DiscountApplied,
		s.CreatedAt,
	)
}

func translateTxErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrAppointmentNotFound)
	case errs.Is(err, shared.ErrMaxRetriesExceeded):
		return errs.Mark(err, ErrTransientFailure)
	default:
		return err
	}
}
