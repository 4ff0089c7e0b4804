package components

import (
	"fmt"
	"time"

	"grooming-booking/internal/domain/appointment"
	"grooming-booking/internal/pkg/config"

	"github.com/shopspring/decimal"
)

// NewPricingEngine builds the rate table and loyalty policy from PRICING_* settings.
func NewPricingEngine(cfg config.Config) (*appointment.PricingEngine, error) {
	p := cfg.Pricing

	rates := map[appointment.SizeClass]appointment.Rate{}
	entries := []struct {
		size    appointment.SizeClass
		minutes int
		price   string
	}{
		{appointment.SizeSmall, p.SmallDurationMinutes, p.SmallBasePrice},
		{appointment.SizeMedium, p.MediumDurationMinutes, p.MediumBasePrice},
		{appointment.SizeLarge, p.LargeDurationMinutes, p.LargeBasePrice},
	}
	for _, e := range entries {
		amount, err := decimal.NewFromString(e.price)
		if err != nil {
			return nil, fmt.Errorf("invalid base price for %s: %w", e.size, err)
		}
		price, err := appointment.NewMoney(amount)
		if err != nil {
			return nil, fmt.Errorf("invalid base price for %s: %w", e.size, err)
		}
		rates[e.size] = appointment.Rate{
			Duration:  time.Duration(e.minutes) * time.Minute,
			BasePrice: price,
		}
	}

	table, err := appointment.NewRateTable(rates)
	if err != nil {
		return nil, err
	}
	loyalty, err := appointment.NewLoyaltyPolicy(p.LoyaltyThreshold, decimal.NewFromFloat(p.LoyaltyDiscountRate))
	if err != nil {
		return nil, err
	}
	return appointment.NewPricingEngine(table, loyalty), nil
}
