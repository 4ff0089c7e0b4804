package queries

import (
	"context"
	"time"

	"grooming-booking/internal/infra"
	"grooming-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCustomerNotFound = errs.New("customer not found")

type CustomerView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	CreatedAt time.Time `json:"created_at"`
}

type CustomerQueries interface {
	GetCurrentCustomer(ctx context.Context, customerID uuid.UUID) (*CustomerView, error)
}

type CustomerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
}

type customerQueriesImpl struct {
	readStore CustomerReadStore
}

func NewCustomerQueries(readStore CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{readStore: readStore}
}

func (q *customerQueriesImpl) GetCurrentCustomer(ctx context.Context, customerID uuid.UUID) (*CustomerView, error) {
	c, err := q.readStore.FindByID(ctx, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCustomerNotFound)
		}
		return nil, err
	}
	return c, nil
}
