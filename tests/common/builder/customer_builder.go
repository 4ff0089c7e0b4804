//go:build unit || e2e

package builder

import (
	"time"

	"grooming-booking/internal/domain/customer"
	reqdto "grooming-booking/internal/handler/dto/request"
	sqlc "grooming-booking/internal/infra/sqlc/generated"
	"grooming-booking/internal/pkg/pgconv"
	"grooming-booking/internal/usecase/commands"
	"grooming-booking/internal/usecase/queries"
	"grooming-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	ID           uuid.UUID
	Username     string
	Password     string
	PasswordHash string
	FirstName    string
	CreatedAt    time.Time
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:           uuid.New(),
		Username:     "alice",
		Password:     "password123",
		PasswordHash: "hashed_password",
		FirstName:    "Alice",
		CreatedAt:    time.Now().UTC(),
	}
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CustomerBuilder) BuildDomain() (*customer.Customer, error) {
	username, err := customer.NewUsername(b.Username)
	if err != nil {
		return nil, err
	}
	firstName, err := customer.NewFirstName(b.FirstName)
	if err != nil {
		return nil, err
	}
	return customer.ReconstructCustomer(b.ID, username, firstName, b.PasswordHash, b.CreatedAt), nil
}

func (b *CustomerBuilder) BuildInfra() sqlc.Customers {
	return sqlc.Customers{
		ID:           b.ID,
		Username:     b.Username,
		PasswordHash: b.PasswordHash,
		FirstName:    b.FirstName,
		CreatedAt:    pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *CustomerBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Username:  b.Username,
		Password:  b.Password,
		FirstName: b.FirstName,
	}
}

func (b *CustomerBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{Username: b.Username, Password: b.Password}
}

func (b *CustomerBuilder) BuildAuthResult(token string, expiresAt time.Time) *commands.AuthResult {
	return &commands.AuthResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Customer: commands.CustomerProfile{
			ID:        b.ID,
			Username:  b.Username,
			FirstName: b.FirstName,
		},
	}
}

func (b *CustomerBuilder) BuildView() *queries.CustomerView {
	return &queries.CustomerView{
		ID:        b.ID,
		Username:  b.Username,
		FirstName: b.FirstName,
		CreatedAt: b.CreatedAt,
	}
}

func (b *CustomerBuilder) BuildSnapshot() *shared.CustomerSnapshot {
	return &shared.CustomerSnapshot{
		ID:           b.ID,
		Username:     b.Username,
		FirstName:    b.FirstName,
		PasswordHash: b.PasswordHash,
		CreatedAt:    b.CreatedAt,
	}
}

// Fluent builder methods
func (b *CustomerBuilder) WithUsername(username string) *CustomerBuilder {
	b.Username = username
	return b
}

func (b *CustomerBuilder) WithFirstName(name string) *CustomerBuilder {
	b.FirstName = name
	return b
}

func (b *CustomerBuilder) WithPassword(password string) *CustomerBuilder {
	b.Password = password
	return b
}

func (b *CustomerBuilder) WithPasswordHash(hash string) *CustomerBuilder {
	b.PasswordHash = hash
	return b
}
