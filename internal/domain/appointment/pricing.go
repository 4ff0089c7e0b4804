package appointment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Rate struct {
	Duration  time.Duration
	BasePrice Money
}

// RateTable is immutable once built; Rate returns copies.
type RateTable struct {
	rates map[SizeClass]Rate
}

func NewRateTable(rates map[SizeClass]Rate) (RateTable, error) {
	table := make(map[SizeClass]Rate, len(rates))
	for _, size := range AllSizeClasses() {
		r, ok := rates[size]
		if !ok {
			return RateTable{}, ErrInvalidRateTable
		}
		if r.Duration <= 0 || r.Duration%time.Minute != 0 {
			return RateTable{}, ErrInvalidDuration
		}
		table[size] = r
	}
	return RateTable{rates: table}, nil
}

func DefaultRateTable() RateTable {
	t, err := NewRateTable(map[SizeClass]Rate{
		SizeSmall:  {Duration: 30 * time.Minute, BasePrice: MustMoney("100")},
		SizeMedium: {Duration: 45 * time.Minute, BasePrice: MustMoney("150")},
		SizeLarge:  {Duration: 60 * time.Minute, BasePrice: MustMoney("200")},
	})
	if err != nil {
		panic(err)
	}
	return t
}

func (t RateTable) Rate(size SizeClass) (Rate, error) {
	r, ok := t.rates[size]
	if !ok {
		return Rate{}, ErrInvalidSizeClass
	}
	return r, nil
}

// LoyaltyPolicy discounts a booking when the customer has strictly more than Threshold past appointments.
type LoyaltyPolicy struct {
	threshold int
	rate      decimal.Decimal
}

func NewLoyaltyPolicy(threshold int, rate decimal.Decimal) (LoyaltyPolicy, error) {
	if threshold < 0 || rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return LoyaltyPolicy{}, ErrInvalidLoyaltyPolicy
	}
	return LoyaltyPolicy{threshold: threshold, rate: rate}, nil
}

func DefaultLoyaltyPolicy() LoyaltyPolicy {
	return LoyaltyPolicy{threshold: 3, rate: decimal.RequireFromString("0.10")}
}

func (p LoyaltyPolicy) Threshold() int             { return p.threshold }
func (p LoyaltyPolicy) Rate() decimal.Decimal      { return p.rate }
func (p LoyaltyPolicy) Applies(pastCount int) bool { return pastCount > p.threshold }

type Quote struct {
	Duration        time.Duration
	BasePrice       Money
	FinalPrice      Money
	DiscountApplied bool
}

type PriceCalculator interface {
	Quote(size SizeClass, pastAppointments int) (Quote, error)
}

type PricingEngine struct {
	rates   RateTable
	loyalty LoyaltyPolicy
}

func NewPricingEngine(rates RateTable, loyalty LoyaltyPolicy) *PricingEngine {
	return &PricingEngine{rates: rates, loyalty: loyalty}
}

func DefaultPricingEngine() *PricingEngine {
	return NewPricingEngine(DefaultRateTable(), DefaultLoyaltyPolicy())
}

func (e *PricingEngine) Quote(size SizeClass, pastAppointments int) (Quote, error) {
	rate, err := e.rates.Rate(size)
	if err != nil {
		return Quote{}, err
	}

	q := Quote{
		Duration:   rate.Duration,
		BasePrice:  rate.BasePrice,
		FinalPrice: rate.BasePrice,
	}
	if e.loyalty.Applies(pastAppointments) {
		factor := decimal.NewFromInt(1).Sub(e.loyalty.rate)
		final, err := NewMoney(rate.BasePrice.Amount().Mul(factor))
		if err != nil {
			return Quote{}, err
		}
		q.FinalPrice = final
		q.DiscountApplied = true
	}
	return q, nil
}
