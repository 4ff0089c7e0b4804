package bootstrap

import (
	"fmt"
	"time"

	"grooming-booking/internal/pkg/config"
	"grooming-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_DURATION: %w", err)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("invalid JWT_DURATION: must be positive, got %s", duration)
	}

	return jwt.NewService(cfg.JWT.Secret, duration, cfg.JWT.Issuer), nil
}
