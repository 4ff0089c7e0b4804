//go:build unit

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"
	"time"

	"grooming-booking/internal/handler/middleware"
	"grooming-booking/internal/pkg/config"
	"grooming-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newRecorder() *stdhttptest.ResponseRecorder {
	return stdhttptest.NewRecorder()
}

// fakeScripter counts script runs per key the way the fixed window script does.
type fakeScripter struct {
	redis.Scripter
	counts map[string]int64
	err    error
}

func newFakeScripter() *fakeScripter {
	return &fakeScripter{counts: map[string]int64{}}
}

func (f *fakeScripter) EvalSha(_ context.Context, _ string, keys []string, _ ...any) *redis.Cmd {
	if f.err != nil {
		return redis.NewCmdResult(nil, f.err)
	}
	f.counts[keys[0]]++
	return redis.NewCmdResult(f.counts[keys[0]], nil)
}

func (f *fakeScripter) Eval(ctx context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return f.EvalSha(ctx, "", keys, args...)
}

func newLimitedRouter(rl *middleware.RateLimiter, customerID *uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/book", func(c *gin.Context) {
		if customerID != nil {
			middleware.SetCustomerContext(c, *customerID, "alice")
		}
	}, rl.Limit(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func TestRateLimiter_Limit(t *testing.T) {
	cfg := config.RateLimitConfig{Limit: 2, Window: time.Minute, Prefix: "test"}

	t.Run("success: requests under the limit pass with headers", func(t *testing.T) {
		router := newLimitedRouter(middleware.NewRateLimiter(newFakeScripter(), cfg), nil)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/book", nil, "")
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("error: 429 once the window is exhausted", func(t *testing.T) {
		router := newLimitedRouter(middleware.NewRateLimiter(newFakeScripter(), cfg), nil)

		for range 2 {
			rec := httptest.PerformRequest(t, router, http.MethodPost, "/book", nil, "")
			assert.Equal(t, http.StatusCreated, rec.Code)
		}
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/book", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Rate limit exceeded")
		assert.Equal(t, "60", rec.Header().Get("Retry-After"))
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("success: customers are counted separately", func(t *testing.T) {
		scripter := newFakeScripter()
		rl := middleware.NewRateLimiter(scripter, cfg)
		first, second := uuid.New(), uuid.New()

		for range 2 {
			httptest.PerformRequest(t, newLimitedRouter(rl, &first), http.MethodPost, "/book", nil, "")
		}
		rec := httptest.PerformRequest(t, newLimitedRouter(rl, &second), http.MethodPost, "/book", nil, "")
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, int64(2), scripter.counts["test:c:"+first.String()])
		assert.Equal(t, int64(1), scripter.counts["test:c:"+second.String()])
	})

	t.Run("success: nil client disables limiting", func(t *testing.T) {
		router := newLimitedRouter(middleware.NewRateLimiter(nil, cfg), nil)
		for range 5 {
			rec := httptest.PerformRequest(t, router, http.MethodPost, "/book", nil, "")
			assert.Equal(t, http.StatusCreated, rec.Code)
		}
	})

	t.Run("redis failure", func(t *testing.T) {
		scripter := newFakeScripter()
		scripter.err = errors.New("connection refused")

		closed := newLimitedRouter(middleware.NewRateLimiter(scripter, cfg), nil)
		rec := httptest.PerformRequest(t, closed, http.MethodPost, "/book", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusServiceUnavailable, "Rate limiter unavailable")

		openCfg := cfg
		openCfg.FailOpen = true
		open := newLimitedRouter(middleware.NewRateLimiter(scripter, openCfg), nil)
		rec = httptest.PerformRequest(t, open, http.MethodPost, "/book", nil, "")
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}
