//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"grooming-booking/internal/domain/appointment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingEngineQuote(t *testing.T) {
	engine := appointment.DefaultPricingEngine()

	cases := []struct {
		name     string
		size     appointment.SizeClass
		past     int
		duration time.Duration
		base     string
		final    string
		discount bool
	}{
		{"small first visit", appointment.SizeSmall, 0, 30 * time.Minute, "100.00", "100.00", false},
		{"medium at threshold", appointment.SizeMedium, 3, 45 * time.Minute, "150.00", "150.00", false},
		{"medium above threshold", appointment.SizeMedium, 4, 45 * time.Minute, "150.00", "135.00", true},
		{"large above threshold", appointment.SizeLarge, 10, 60 * time.Minute, "200.00", "180.00", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q, err := engine.Quote(c.size, c.past)
			require.NoError(t, err)
			assert.Equal(t, c.duration, q.Duration)
			assert.Equal(t, c.base, q.BasePrice.String())
			assert.Equal(t, c.final, q.FinalPrice.String())
			assert.Equal(t, c.discount, q.DiscountApplied)
			assert.True(t, q.FinalPrice.LessThanOrEqual(q.BasePrice))
		})
	}

	t.Run("unknown size", func(t *testing.T) {
		_, err := engine.Quote(appointment.SizeClass("XL"), 0)
		assert.ErrorIs(t, err, appointment.ErrInvalidSizeClass)
	})
}

func TestPricingEngineRoundsToCents(t *testing.T) {
	rates, err := appointment.NewRateTable(map[appointment.SizeClass]appointment.Rate{
		appointment.SizeSmall:  {Duration: 30 * time.Minute, BasePrice: appointment.MustMoney("99.99")},
		appointment.SizeMedium: {Duration: 45 * time.Minute, BasePrice: appointment.MustMoney("150")},
		appointment.SizeLarge:  {Duration: 60 * time.Minute, BasePrice: appointment.MustMoney("200")},
	})
	require.NoError(t, err)
	policy, err := appointment.NewLoyaltyPolicy(3, decimal.RequireFromString("0.10"))
	require.NoError(t, err)

	q, err := appointment.NewPricingEngine(rates, policy).Quote(appointment.SizeSmall, 4)
	require.NoError(t, err)
	assert.Equal(t, "89.99", q.FinalPrice.String())
}

func TestNewRateTable(t *testing.T) {
	t.Run("missing size class", func(t *testing.T) {
		_, err := appointment.NewRateTable(map[appointment.SizeClass]appointment.Rate{
			appointment.SizeSmall: {Duration: 30 * time.Minute, BasePrice: appointment.MustMoney("100")},
		})
		assert.ErrorIs(t, err, appointment.ErrInvalidRateTable)
	})

	t.Run("sub-minute duration", func(t *testing.T) {
		_, err := appointment.NewRateTable(map[appointment.SizeClass]appointment.Rate{
			appointment.SizeSmall:  {Duration: 90 * time.Second, BasePrice: appointment.MustMoney("100")},
			appointment.SizeMedium: {Duration: 45 * time.Minute, BasePrice: appointment.MustMoney("150")},
			appointment.SizeLarge:  {Duration: 60 * time.Minute, BasePrice: appointment.MustMoney("200")},
		})
		assert.ErrorIs(t, err, appointment.ErrInvalidDuration)
	})
}

func TestNewLoyaltyPolicy(t *testing.T) {
	_, err := appointment.NewLoyaltyPolicy(-1, decimal.RequireFromString("0.1"))
	assert.ErrorIs(t, err, appointment.ErrInvalidLoyaltyPolicy)

	_, err = appointment.NewLoyaltyPolicy(3, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, appointment.ErrInvalidLoyaltyPolicy)

	p, err := appointment.NewLoyaltyPolicy(0, decimal.Zero)
	require.NoError(t, err)
	assert.False(t, p.Applies(0))
	assert.True(t, p.Applies(1))
}
