package queries

import (
	"context"
	"strings"
	"time"

	"grooming-booking/internal/infra"
	"grooming-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAppointmentNotFound = errs.New("appointment not found")
	ErrInvalidDateRange    = errs.New("start date must not be after end date")
)

// Read models (DTO for read side)
type AppointmentView struct {
	ID              int64           `json:"id"`
	CustomerID      uuid.UUID       `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	Start           time.Time       `json:"start"`
	SizeClass       string          `json:"size_class"`
	DurationMinutes int             `json:"duration_minutes"`
	BasePrice       decimal.Decimal `json:"base_price"`
	FinalPrice      decimal.Decimal `json:"final_price"`
	DiscountApplied bool            `json:"discount_applied"`
	CreatedAt       time.Time       `json:"created_at"`
}

// AppointmentFilter bounds are inclusive; CustomerName matches any part of the owner's first name, ignoring case.
type AppointmentFilter struct {
	StartFrom    *time.Time
	StartTo      *time.Time
	CustomerName *string
}

type AppointmentQueries interface {
	List(ctx context.Context, filter AppointmentFilter) ([]*AppointmentView, error)
	GetByID(ctx context.Context, id int64) (*AppointmentView, error)
}

type AppointmentReadStore interface {
	List(ctx context.Context, filter AppointmentFilter) ([]*AppointmentView, error)
	FindByID(ctx context.Context, id int64) (*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	readStore AppointmentReadStore
}

func NewAppointmentQueries(readStore AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{readStore: readStore}
}

func (q *appointmentQueriesImpl) List(ctx context.Context, filter AppointmentFilter) ([]*AppointmentView, error) {
	if filter.StartFrom != nil && filter.StartTo != nil && filter.StartFrom.After(*filter.StartTo) {
		return nil, ErrInvalidDateRange
	}
	if filter.CustomerName != nil && strings.TrimSpace(*filter.CustomerName) == "" {
		filter.CustomerName = nil
	}

	views, err := q.readStore.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []*AppointmentView{}
	}
	return views, nil
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id int64) (*AppointmentView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrAppointmentNotFound)
		}
		return nil, err
	}
	return view, nil
}
