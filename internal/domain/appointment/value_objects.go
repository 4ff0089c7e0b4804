package appointment

import (
	"time"

	"github.com/shopspring/decimal"
)

// OccupancyWindow is the half-open interval [start, end) an appointment reserves.
type OccupancyWindow struct {
	start time.Time
	end   time.Time
}

func NewOccupancyWindow(start time.Time, duration time.Duration) (OccupancyWindow, error) {
	if start.IsZero() {
		return OccupancyWindow{}, ErrInvalidStart
	}
	if duration <= 0 {
		return OccupancyWindow{}, ErrInvalidDuration
	}
	return OccupancyWindow{start: start, end: start.Add(duration)}, nil
}

func (w OccupancyWindow) Start() time.Time { return w.start }
func (w OccupancyWindow) End() time.Time   { return w.end }

func (w OccupancyWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Overlaps reports S < e && s < E. Touching windows do not overlap.
func (w OccupancyWindow) Overlaps(other OccupancyWindow) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

// StartsOnDate reports whether the window starts on the same calendar date as t, both read in loc.
func (w OccupancyWindow) StartsOnDate(t time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.UTC
	}
	sy, sm, sd := w.start.In(loc).Date()
	ty, tm, td := t.In(loc).Date()
	return sy == ty && sm == tm && sd == td
}

// Money is a non-negative currency amount kept at cent precision.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativePrice
	}
	return Money{amount: amount.Round(2)}, nil
}

func MustMoney(s string) Money {
	m, err := NewMoney(decimal.RequireFromString(s))
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) LessThanOrEqual(other Money) bool {
	return m.amount.LessThanOrEqual(other.amount)
}

// Float is for JSON rendering only.
func (m Money) Float() float64 {
	f, _ := m.amount.Float64()
	return f
}
