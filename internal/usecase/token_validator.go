package usecase

import (
	"grooming-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*ValidatedToken, error)
}

type ValidatedToken struct {
	CustomerID uuid.UUID
	Username   string
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*ValidatedToken, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &ValidatedToken{CustomerID: claims.CustomerID, Username: claims.Username}, nil
}
