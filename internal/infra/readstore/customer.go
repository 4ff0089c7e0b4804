package readstore

import (
	"context"

	"grooming-booking/internal/infra"
	sqlc "grooming-booking/internal/infra/sqlc/generated"
	"grooming-booking/internal/pkg/pgconv"
	"grooming-booking/internal/usecase/queries"
	"grooming-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomerReadQueries interface {
	GetCustomerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Customers, error)
	GetCustomerByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Customers, error)
}

type CustomerReadStore struct {
	queries CustomerReadQueries
	db      sqlc.DBTX
}

func NewCustomerReadStore(queries CustomerReadQueries, db sqlc.DBTX) *CustomerReadStore {
	return &CustomerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	row, err := r.queries.GetCustomerByID(ctx, r.db, id)
	if err != nil {
		return nil, customerErr(err, "failed to find customer by id")
	}
	return &queries.CustomerView{
		ID:        row.ID,
		Username:  row.Username,
		FirstName: row.FirstName,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *CustomerReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.CustomerSnapshot, error) {
	row, err := r.queries.GetCustomerByID(ctx, r.db, id)
	if err != nil {
		return nil, customerErr(err, "failed to find customer by id")
	}
	return customerSnapshot(row), nil
}

// SnapshotByUsername includes the password hash and is used for credential checks only.
func (r *CustomerReadStore) SnapshotByUsername(ctx context.Context, username string) (*shared.CustomerSnapshot, error) {
	row, err := r.queries.GetCustomerByUsername(ctx, r.db, username)
	if err != nil {
		return nil, customerErr(err, "failed to find customer by username")
	}
	return customerSnapshot(row), nil
}

func customerErr(err error, msg string) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(msg, err)
}

func customerSnapshot(row sqlc.Customers) *shared.CustomerSnapshot {
	return &shared.CustomerSnapshot{
		ID:           row.ID,
		Username:     row.Username,
		FirstName:    row.FirstName,
		PasswordHash: row.PasswordHash,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
