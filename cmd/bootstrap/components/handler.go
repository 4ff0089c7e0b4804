package components

import (
	"grooming-booking/internal/handler"
	"grooming-booking/internal/handler/api"
	"grooming-booking/internal/handler/middleware"
	"grooming-booking/internal/pkg/config"
	"grooming-booking/internal/usecase/commands"
	"grooming-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		NewAppointmentHandler,
		NewRateLimiter,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, appt *api.AppointmentHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, Appointment: appt}
		},
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(cmds commands.AuthCommands, q queries.CustomerQueries, cfg config.Config) *api.AuthHandler {
	return api.NewAuthHandler(cmds, q, cfg.Cookie)
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, q queries.AppointmentQueries, settings commands.AppointmentSettings) *api.AppointmentHandler {
	return api.NewAppointmentHandler(cmds, q, settings.Location)
}

// a nil client leaves the limiter disabled
func NewRateLimiter(client *redis.Client, cfg config.Config) *middleware.RateLimiter {
	var scripter redis.Scripter
	if client != nil {
		scripter = client
	}
	return middleware.NewRateLimiter(scripter, cfg.RateLimit)
}
