package response

import (
	"time"

	"grooming-booking/internal/usecase/commands"
	"grooming-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
}

type AuthResponse struct {
	Token     string            `json:"token,omitempty"`
	ExpiresAt *time.Time        `json:"expiresAt,omitempty"`
	Customer  *CustomerResponse `json:"customer"`
}

func FromAuthResult(r *commands.AuthResult) *AuthResponse {
	expiresAt := r.ExpiresAt
	return &AuthResponse{
		Token:     r.Token,
		ExpiresAt: &expiresAt,
		Customer: &CustomerResponse{
			ID:        r.Customer.ID,
			Username:  r.Customer.Username,
			FirstName: r.Customer.FirstName,
		},
	}
}

func FromCustomerView(v *queries.CustomerView, token string) *AuthResponse {
	return &AuthResponse{
		Token: token,
		Customer: &CustomerResponse{
			ID:        v.ID,
			Username:  v.Username,
			FirstName: v.FirstName,
		},
	}
}
