//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"grooming-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"deadlock detected", &pgconn.PgError{Code: "40P01"}, true},
		{"wrapped serialization failure", errs.Wrap(&pgconn.PgError{Code: "40001"}, "commit"), true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, isRetryableError(tc.err))
		})
	}
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 0; attempt < 4; attempt++ {
		floor := time.Duration(1<<attempt) * base
		ceil := floor + floor/5
		for i := 0; i < 20; i++ {
			d := calculateBackoff(attempt, base)
			assert.GreaterOrEqual(t, d, floor)
			assert.Less(t, d, ceil)
		}
	}
}

func TestCryptoRandInt63n(t *testing.T) {
	assert.Equal(t, int64(0), cryptoRandInt63n(0))
	assert.Equal(t, int64(0), cryptoRandInt63n(-5))
	for i := 0; i < 50; i++ {
		v := cryptoRandInt63n(10)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(10))
	}
}
