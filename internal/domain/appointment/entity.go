package appointment

import (
	"errors"
	"time"

	"grooming-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidSizeClass     = errors.New("invalid size class")
	ErrInvalidStart         = errors.New("invalid appointment start")
	ErrInvalidDuration      = errors.New("invalid appointment duration")
	ErrNegativePrice        = errors.New("price cannot be negative")
	ErrInvalidRateTable     = errors.New("rate table must cover every size class")
	ErrInvalidLoyaltyPolicy = errors.New("invalid loyalty policy")
	ErrInvalidCustomer      = errors.New("appointment requires a customer")
	ErrCancellationLocked   = errors.New("appointment cannot be cancelled on its own date")
)

type Services struct {
	Clock   clock.Clock
	Pricing PriceCalculator
}

type Appointment struct {
	id              int64
	customerID      uuid.UUID
	sizeClass       SizeClass
	window          OccupancyWindow
	basePrice       Money
	finalPrice      Money
	discountApplied bool
	createdAt       time.Time
}

// NewAppointment prices the booking from pastAppointments and derives its window from the rate table.
func NewAppointment(
	services *Services,
	customerID uuid.UUID,
	start time.Time,
	size SizeClass,
	pastAppointments int,
) (*Appointment, error) {
	if customerID == uuid.Nil {
		return nil, ErrInvalidCustomer
	}
	a := &Appointment{
		customerID: customerID,
		createdAt:  services.Clock.Now(),
	}
	if err := a.apply(services, start, size, pastAppointments); err != nil {
		return nil, err
	}
	return a, nil
}

func ReconstructAppointment(
	id int64,
	customerID uuid.UUID,
	size SizeClass,
	start time.Time,
	duration time.Duration,
	basePrice Money,
	finalPrice Money,
	discountApplied bool,
	createdAt time.Time,
) (*Appointment, error) {
	if !size.IsValid() {
		return nil, ErrInvalidSizeClass
	}
	w, err := NewOccupancyWindow(start, duration)
	if err != nil {
		return nil, err
	}
	return &Appointment{
		id:              id,
		customerID:      customerID,
		sizeClass:       size,
		window:          w,
		basePrice:       basePrice,
		finalPrice:      finalPrice,
		discountApplied: discountApplied,
		createdAt:       createdAt,
	}, nil
}

// Reschedule replaces start and size and reprices; id, owner and createdAt are kept.
func (a *Appointment) Reschedule(services *Services, start time.Time, size SizeClass, pastAppointments int) error {
	return a.apply(services, start, size, pastAppointments)
}

func (a *Appointment) apply(services *Services, start time.Time, size SizeClass, pastAppointments int) error {
	if !size.IsValid() {
		return ErrInvalidSizeClass
	}
	q, err := services.Pricing.Quote(size, pastAppointments)
	if err != nil {
		return err
	}
	w, err := NewOccupancyWindow(start, q.Duration)
	if err != nil {
		return err
	}
	a.sizeClass = size
	a.window = w
	a.basePrice = q.BasePrice
	a.finalPrice = q.FinalPrice
	a.discountApplied = q.DiscountApplied
	return nil
}

// EnsureCancellable rejects cancelling on the appointment's own calendar date in loc.
func (a *Appointment) EnsureCancellable(now time.Time, loc *time.Location) error {
	if a.window.StartsOnDate(now, loc) {
		return ErrCancellationLocked
	}
	return nil
}

func (a *Appointment) IsOwnedBy(customerID uuid.UUID) bool {
	return a.customerID == customerID
}

func (a *Appointment) ID() int64               { return a.id }
func (a *Appointment) CustomerID() uuid.UUID   { return a.customerID }
func (a *Appointment) SizeClass() SizeClass    { return a.sizeClass }
func (a *Appointment) Window() OccupancyWindow { return a.window }
func (a *Appointment) Start() time.Time        { return a.window.Start() }
func (a *Appointment) Duration() time.Duration { return a.window.Duration() }
func (a *Appointment) BasePrice() Money        { return a.basePrice }
func (a *Appointment) FinalPrice() Money       { return a.finalPrice }
func (a *Appointment) DiscountApplied() bool   { return a.discountApplied }
func (a *Appointment) CreatedAt() time.Time    { return a.createdAt }

func (a *Appointment) DurationMinutes() int {
	return int(a.window.Duration() / time.Minute)
}
