package customer

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	id           uuid.UUID
	username     Username
	firstName    FirstName
	passwordHash string
	createdAt    time.Time
}

func NewCustomer(username Username, firstName FirstName, passwordHash string, now time.Time) *Customer {
	return &Customer{
		id:           uuid.New(),
		username:     username,
		firstName:    firstName,
		passwordHash: passwordHash,
		createdAt:    now,
	}
}

func ReconstructCustomer(id uuid.UUID, username Username, firstName FirstName, passwordHash string, createdAt time.Time) *Customer {
	return &Customer{
		id:           id,
		username:     username,
		firstName:    firstName,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Username() Username   { return c.username }
func (c *Customer) FirstName() FirstName { return c.firstName }
func (c *Customer) PasswordHash() string { return c.passwordHash }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
