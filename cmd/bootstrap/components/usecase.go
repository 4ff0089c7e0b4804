package components

import (
	"grooming-booking/internal/domain/appointment"
	"grooming-booking/internal/pkg/clock"
	"grooming-booking/internal/pkg/config"
	"grooming-booking/internal/pkg/jwt"
	"grooming-booking/internal/pkg/password"
	"grooming-booking/internal/usecase"
	"grooming-booking/internal/usecase/commands"
	"grooming-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewPricingEngine,
		fx.As(new(appointment.PriceCalculator)),
	),
	func(clock clock.Clock, calc appointment.PriceCalculator) *appointment.Services {
		return &appointment.Services{
			Clock:   clock,
			Pricing: calc,
		}
	},
	fx.Annotate(
		func(s *jwt.Service) *jwt.Service { return s },
		fx.As(new(commands.TokenIssuer)),
	),
	fx.Annotate(
		password.NewHasher,
		fx.As(new(commands.PasswordHasher)),
	),
	NewAppointmentSettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAppointmentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCustomerQueries,
		queries.NewAppointmentQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewAppointmentSettings(cfg config.Config) (commands.AppointmentSettings, error) {
	loc, err := cfg.Schedule.Location()
	if err != nil {
		return commands.AppointmentSettings{}, err
	}
	return commands.AppointmentSettings{
		Location:   loc,
		EventTopic: cfg.Outbox.Topic,
	}, nil
}
