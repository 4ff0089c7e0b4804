package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"grooming-booking/internal/handler/httperr"
	"grooming-booking/internal/pkg/config"
	"grooming-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var (
	errRateLimited        = errs.New("rate limit exceeded")
	errLimiterUnavailable = errs.New("rate limiter unavailable")
)

// RateLimiter is a fixed-window limiter shared by every instance through Redis.
// A nil client disables it.
type RateLimiter struct {
	rdb      redis.Scripter
	limit    int
	window   time.Duration
	prefix   string
	failOpen bool
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

func NewRateLimiter(rdb redis.Scripter, cfg config.RateLimitConfig) *RateLimiter {
	limit := cfg.Limit
	if limit <= 0 {
		limit = 60
	}
	window := cfg.Window
	if window <= 0 {
		window = time.Minute
	}
	prefix := strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		prefix = "rl"
	}
	return &RateLimiter{rdb: rdb, limit: limit, window: window, prefix: prefix, failOpen: cfg.FailOpen}
}

// Limit does not call c.Next so it can sit in a per-route handler chain.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.rdb == nil {
			return
		}

		count, err := rl.incr(c.Request.Context(), rl.key(c))
		if err != nil {
			slog.Warn("redis rate limiter error", "error", err, "request_id", GetRequestID(c))
			if rl.failOpen {
				return
			}
			httperr.AbortWithError(c, http.StatusServiceUnavailable, errs.Mark(err, errLimiterUnavailable), "Rate limiter unavailable", nil)
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(max(int64(rl.limit)-count, 0), 10))
		if count > int64(rl.limit) {
			c.Header("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Rate limit exceeded", nil)
		}
	}
}

// per customer when authenticated, otherwise per client ip
func (rl *RateLimiter) key(c *gin.Context) string {
	if id, ok := GetCustomerID(c); ok {
		return rl.prefix + ":c:" + id.String()
	}
	return rl.prefix + ":ip:" + c.ClientIP()
}

func (rl *RateLimiter) incr(ctx context.Context, key string) (int64, error) {
	res, err := fixedWindowScript.Run(ctx, rl.rdb, []string{key}, rl.window.Milliseconds()).Result()
	if err != nil {
		return 0, err
	}
	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected redis script result type %T", res)
	}
}
