package bootstrap

import (
	"context"
	"log/slog"

	"grooming-booking/internal/pkg/config"
	"grooming-booking/internal/pkg/telemetry"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(
		StartTelemetry,
	),
)

func StartTelemetry(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) error {
	shutdown, err := telemetry.Setup(context.Background(), cfg.Telemetry)
	if err != nil {
		return err
	}
	if cfg.Telemetry.Enabled {
		logger.Info("tracing enabled",
			"endpoint", cfg.Telemetry.OTLPEndpoint,
			"protocol", cfg.Telemetry.Protocol,
			"sample_ratio", cfg.Telemetry.SampleRatio,
		)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}
