package repository

import (
	"context"

	"grooming-booking/internal/domain/customer"
	"grooming-booking/internal/infra"
	"grooming-booking/internal/infra/repository/converter"
	sqlc "grooming-booking/internal/infra/sqlc/generated"
)

type CustomerWriteQueries interface {
	CreateCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCustomerParams) (sqlc.Customers, error)
}

type CustomerRepository struct {
	queries CustomerWriteQueries
	db      sqlc.DBTX
}

func NewCustomerRepository(queries CustomerWriteQueries, db sqlc.DBTX) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) (*customer.Customer, error) {
	row, err := r.queries.CreateCustomer(ctx, tx, converter.CustomerToCreateParams(c))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create customer", err)
	}
	return converter.CustomerFromRow(row)
}
