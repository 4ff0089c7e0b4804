//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"grooming-booking/internal/domain/appointment"
	"grooming-booking/internal/pkg/clock"
	"grooming-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.AppointmentBuilder)
	errIs  error
}

func newServices(now time.Time) *appointment.Services {
	return &appointment.Services{
		Clock:   clock.NewMockClock(now),
		Pricing: appointment.DefaultPricingEngine(),
	}
}

func TestNewAppointment(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	start := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)
	customerID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		actual, err := appointment.NewAppointment(newServices(now), customerID, start, appointment.SizeSmall, 0)
		require.NoError(t, err)

		assert.Equal(t, int64(0), actual.ID())
		assert.Equal(t, customerID, actual.CustomerID())
		assert.Equal(t, start, actual.Start())
		assert.Equal(t, start.Add(30*time.Minute), actual.Window().End())
		assert.Equal(t, 30, actual.DurationMinutes())
		assert.Equal(t, "100.00", actual.BasePrice().String())
		assert.Equal(t, "100.00", actual.FinalPrice().String())
		assert.False(t, actual.DiscountApplied())
		assert.Equal(t, now, actual.CreatedAt())
	})

	t.Run("size drives duration and price", func(t *testing.T) {
		cases := []struct {
			size     appointment.SizeClass
			minutes  int
			expected string
		}{
			{appointment.SizeSmall, 30, "100.00"},
			{appointment.SizeMedium, 45, "150.00"},
			{appointment.SizeLarge, 60, "200.00"},
		}
		for _, c := range cases {
			t.Run(c.size.String(), func(t *testing.T) {
				actual, err := appointment.NewAppointment(newServices(now), customerID, start, c.size, 0)
				require.NoError(t, err)
				assert.Equal(t, c.minutes, actual.DurationMinutes())
				assert.Equal(t, c.expected, actual.FinalPrice().String())
			})
		}
	})

	t.Run("loyalty discount", func(t *testing.T) {
		cases := []struct {
			name     string
			past     int
			discount bool
			final    string
		}{
			{"three past appointments pay full price", 3, false, "200.00"},
			{"four past appointments get discount", 4, true, "180.00"},
			{"many past appointments get discount", 20, true, "180.00"},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := appointment.NewAppointment(newServices(now), customerID, start, appointment.SizeLarge, c.past)
				require.NoError(t, err)
				assert.Equal(t, c.discount, actual.DiscountApplied())
				assert.Equal(t, "200.00", actual.BasePrice().String())
				assert.Equal(t, c.final, actual.FinalPrice().String())
			})
		}
	})

	t.Run("rejects missing customer", func(t *testing.T) {
		_, err := appointment.NewAppointment(newServices(now), uuid.Nil, start, appointment.SizeSmall, 0)
		assert.ErrorIs(t, err, appointment.ErrInvalidCustomer)
	})

	t.Run("rejects unknown size", func(t *testing.T) {
		_, err := appointment.NewAppointment(newServices(now), customerID, start, appointment.SizeClass("Huge"), 0)
		assert.ErrorIs(t, err, appointment.ErrInvalidSizeClass)
	})

	t.Run("rejects zero start", func(t *testing.T) {
		_, err := appointment.NewAppointment(newServices(now), customerID, time.Time{}, appointment.SizeSmall, 0)
		assert.ErrorIs(t, err, appointment.ErrInvalidStart)
	})
}

func TestReschedule(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	orig, err := builder.NewAppointmentBuilder().WithID(42).BuildDomain()
	require.NoError(t, err)
	createdAt := orig.CreatedAt()
	owner := orig.CustomerID()

	newStart := time.Date(2026, 4, 1, 14, 0, 0, 0, time.UTC)
	require.NoError(t, orig.Reschedule(newServices(now), newStart, appointment.SizeMedium, 5))

	assert.Equal(t, int64(42), orig.ID())
	assert.Equal(t, owner, orig.CustomerID())
	assert.Equal(t, createdAt, orig.CreatedAt())
	assert.Equal(t, newStart, orig.Start())
	assert.Equal(t, 45, orig.DurationMinutes())
	assert.True(t, orig.DiscountApplied())
	assert.Equal(t, "135.00", orig.FinalPrice().String())

	t.Run("invalid size leaves appointment unchanged", func(t *testing.T) {
		err := orig.Reschedule(newServices(now), newStart.Add(time.Hour), appointment.SizeClass(""), 0)
		assert.ErrorIs(t, err, appointment.ErrInvalidSizeClass)
		assert.Equal(t, newStart, orig.Start())
	})
}

func TestEnsureCancellable(t *testing.T) {
	start := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)
	a, err := builder.NewAppointmentBuilder().WithStart(start).BuildDomain()
	require.NoError(t, err)

	t.Run("same day is locked", func(t *testing.T) {
		now := time.Date(2026, 3, 11, 0, 1, 0, 0, time.UTC)
		assert.ErrorIs(t, a.EnsureCancellable(now, time.UTC), appointment.ErrCancellationLocked)
	})

	t.Run("later the same day is locked", func(t *testing.T) {
		now := time.Date(2026, 3, 11, 23, 59, 0, 0, time.UTC)
		assert.ErrorIs(t, a.EnsureCancellable(now, time.UTC), appointment.ErrCancellationLocked)
	})

	t.Run("day before is allowed", func(t *testing.T) {
		now := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
		assert.NoError(t, a.EnsureCancellable(now, time.UTC))
	})

	t.Run("past appointment is allowed", func(t *testing.T) {
		now := time.Date(2026, 3, 12, 8, 0, 0, 0, time.UTC)
		assert.NoError(t, a.EnsureCancellable(now, time.UTC))
	})

	t.Run("date is read in the schedule zone", func(t *testing.T) {
		loc := time.FixedZone("UTC+10", 10*60*60)
		// 2026-03-10 20:00 UTC is already 2026-03-11 06:00 in UTC+10.
		now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
		assert.NoError(t, a.EnsureCancellable(now, time.UTC))
		assert.ErrorIs(t, a.EnsureCancellable(now, loc), appointment.ErrCancellationLocked)
	})
}

func TestIsOwnedBy(t *testing.T) {
	owner := uuid.New()
	a, err := builder.NewAppointmentBuilder().WithCustomerID(owner).BuildDomain()
	require.NoError(t, err)

	assert.True(t, a.IsOwnedBy(owner))
	assert.False(t, a.IsOwnedBy(uuid.New()))
}

func TestReconstructAppointment(t *testing.T) {
	runCases(t, []testCase{
		{
			name:   "small",
			mutate: func(b *builder.AppointmentBuilder) {},
		},
		{
			name:   "large discounted",
			mutate: func(b *builder.AppointmentBuilder) { b.AsLarge().AsDiscounted() },
		},
		{
			name:   "unknown size",
			mutate: func(b *builder.AppointmentBuilder) { b.WithSizeClass("XL") },
			errIs:  appointment.ErrInvalidSizeClass,
		},
		{
			name:   "zero duration",
			mutate: func(b *builder.AppointmentBuilder) { b.DurationMinutes = 0 },
			errIs:  appointment.ErrInvalidDuration,
		},
		{
			name:   "zero start",
			mutate: func(b *builder.AppointmentBuilder) { b.WithStart(time.Time{}) },
			errIs:  appointment.ErrInvalidStart,
		},
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewAppointmentBuilder().With(c.mutate).BuildDomain()
			if c.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, c.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
