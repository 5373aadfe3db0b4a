package middlewares

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	goredis "github.com/redis/go-redis/v9"

	"dicebet/logger"
)

// RateLimit is a fixed-window per-IP limiter backed by redis. With a nil
// client the limiter is a no-op, so the server degrades open when redis is
// not deployed.
func RateLimit(rdb *goredis.Client, perMinute int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rdb == nil || perMinute <= 0 {
			return c.Next()
		}

		window := time.Now().Unix() / 60
		key := fmt.Sprintf("ratelimit:%s:%d", c.IP(), window)

		ctx := c.UserContext()
		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			logger.Log.Warnw("rate limit check failed, allowing request", "error", err)
			return c.Next()
		}
		if count == 1 {
			rdb.Expire(ctx, key, time.Minute)
		}

		if count > int64(perMinute) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "TOO_MANY_REQUESTS",
				"data":    nil,
			})
		}
		return c.Next()
	}
}
