//go:build unit

package components_test

import (
	"testing"
	"time"

	"grooming-booking/cmd/bootstrap/components"
	"grooming-booking/internal/domain/appointment"
	"grooming-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPricingEngine(t *testing.T) {
	t.Run("success: defaults reproduce the standard price list", func(t *testing.T) {
		engine, err := components.NewPricingEngine(config.Config{Pricing: config.DefaultPricingConfig()})
		require.NoError(t, err)

		q, err := engine.Quote(appointment.SizeMedium, 4)
		require.NoError(t, err)
		assert.Equal(t, 45*time.Minute, q.Duration)
		assert.Equal(t, "150.00", q.BasePrice.String())
		assert.Equal(t, "135.00", q.FinalPrice.String())
		assert.True(t, q.DiscountApplied)
	})

	t.Run("success: overrides are honoured", func(t *testing.T) {
		p := config.DefaultPricingConfig()
		p.LargeBasePrice = "250.50"
		p.LargeDurationMinutes = 90
		p.LoyaltyThreshold = 0
		engine, err := components.NewPricingEngine(config.Config{Pricing: p})
		require.NoError(t, err)

		q, err := engine.Quote(appointment.SizeLarge, 1)
		require.NoError(t, err)
		assert.Equal(t, 90*time.Minute, q.Duration)
		assert.Equal(t, "250.50", q.BasePrice.String())
		assert.True(t, q.DiscountApplied)
	})

	t.Run("error: malformed price", func(t *testing.T) {
		p := config.DefaultPricingConfig()
		p.SmallBasePrice = "ten"
		_, err := components.NewPricingEngine(config.Config{Pricing: p})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Small")
	})

	t.Run("error: discount rate out of range", func(t *testing.T) {
		p := config.DefaultPricingConfig()
		p.LoyaltyDiscountRate = 1.5
		_, err := components.NewPricingEngine(config.Config{Pricing: p})
		require.Error(t, err)
	})
}
