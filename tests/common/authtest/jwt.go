//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"grooming-booking/internal/pkg/config"
	"grooming-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, customerID uuid.UUID, username string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration, h.cfg.Issuer)
	token, err := service.GenerateToken(customerID, username)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, customerID uuid.UUID, username string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond, h.cfg.Issuer)
	token, err := service.GenerateToken(customerID, username)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
