package bootstrap

import (
	"errors"
	"io/fs"

	"grooming-booking/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

// NewConfig loads an optional .env file, then reads the environment.
// Variables already set in the environment win over the file.
func NewConfig() (config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config.Config{}, err
	}
	return config.LoadConfig()
}
