package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Minimal snapshot for command read operations
type AppointmentSnapshot struct {
	ID              int64
	CustomerID      uuid.UUID
	SizeClass       string
	Start           time.Time
	DurationMinutes int
	BasePrice       decimal.Decimal
	FinalPrice      decimal.Decimal
	DiscountApplied bool
	CreatedAt       time.Time
}

type CustomerSnapshot struct {
	ID           uuid.UUID
	Username     string
	FirstName    string
	PasswordHash string
	CreatedAt    time.Time
}
