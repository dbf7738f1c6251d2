// Package middleware provides request logging, tracing and rate limiting middleware.
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"time"

	"moodrealm/internal/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// FailPolicy defines the behavior when the rate limit store (Redis) is unavailable.
type FailPolicy int

const (
	// FailOpen allows the request to proceed if Redis is unavailable.
	FailOpen FailPolicy = iota
	// FailClosed blocks the request (503 Service Unavailable) if Redis is unavailable.
	FailClosed
)

// Limit allows Requests per Window for one named action.
type Limit struct {
	Name     string
	Requests int
	Window   time.Duration
}

// Route limits.
var (
	SignupLimit      = Limit{Name: "signup", Requests: 5, Window: 10 * time.Minute}
	LoginLimit       = Limit{Name: "login", Requests: 10, Window: 5 * time.Minute}
	CreatePostLimit  = Limit{Name: "create_post", Requests: 10, Window: time.Minute}
	CreateStoryLimit = Limit{Name: "create_story", Requests: 10, Window: time.Minute}
	CommentLimit     = Limit{Name: "comment", Requests: 20, Window: time.Minute}
	ChatLimit        = Limit{Name: "ai_chat", Requests: 20, Window: time.Minute}
)

// rateLimitEnforced is false when APP_ENV is "test" or "development" (or unset).
func rateLimitEnforced() bool {
	switch os.Getenv("APP_ENV") {
	case "", "test", "development":
		return false
	}
	return true
}

// CheckRateLimit counts one hit for id against limit. When the hit is over the
// limit it also returns how long until the window resets.
func CheckRateLimit(ctx context.Context, rdb *redis.Client, limit Limit, id string) (bool, time.Duration, error) {
	if !rateLimitEnforced() {
		return true, 0, nil
	}
	if rdb == nil {
		return false, 0, fmt.Errorf("redis client is nil")
	}

	key := fmt.Sprintf("rl:%s:%s", limit.Name, id)

	cnt, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, err
	}
	if cnt == 1 {
		if err := rdb.Expire(ctx, key, limit.Window).Err(); err != nil {
			return false, 0, err
		}
	}
	if cnt <= int64(limit.Requests) {
		return true, 0, nil
	}

	ttl, err := rdb.TTL(ctx, key).Result()
	if err != nil || ttl <= 0 {
		ttl = limit.Window
	}
	return false, ttl, nil
}

// RateLimit enforces limit per authenticated user, or per remote IP for
// anonymous routes. It fails open.
func RateLimit(rdb *redis.Client, limit Limit) fiber.Handler {
	return RateLimitWithPolicy(rdb, limit, FailOpen)
}

func RateLimitWithPolicy(rdb *redis.Client, limit Limit, policy FailPolicy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var id string
		if uid := c.Locals("userID"); uid != nil {
			id = fmt.Sprintf("user:%v", uid)
		} else {
			id = fmt.Sprintf("ip:%s", c.IP())
		}

		allowed, retryAfter, err := CheckRateLimit(c.UserContext(), rdb, limit, id)
		if err != nil {
			Logger.WarnContext(c.UserContext(), "rate limit store unavailable",
				slog.String("limit", limit.Name),
				slog.String("error", err.Error()),
			)
			if policy == FailClosed {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"message": "Service temporarily unavailable",
				})
			}
			return c.Next()
		}

		if !allowed {
			observability.RateLimited.WithLabelValues(limit.Name).Inc()
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many requests, please try again later",
			})
		}
		return c.Next()
	}
}
