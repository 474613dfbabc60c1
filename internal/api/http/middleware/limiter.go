package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"
)

// ContactLimiter caps requests per client IP over a one minute sliding
// window. Counters live in Redis when rdb is set and in memory otherwise.
// A non-positive perMinute disables limiting.
func ContactLimiter(rdb *redis.Client, perMinute int) fiber.Handler {
	if perMinute <= 0 {
		return func(c fiber.Ctx) error { return c.Next() }
	}

	cfg := limiter.Config{
		// sliding window
		Max:               perMinute,
		Expiration:        time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many requests"})
		},
	}
	if rdb != nil {
		cfg.Storage = fiberredis.NewFromConnection(rdb)
	}
	return limiter.New(cfg)
}
