package database

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"dicebet/config"
	"dicebet/logger"
)

// NewRedis builds the redis client used by the rate limiter. Returns nil when
// no address is configured; callers treat a nil client as "limiter disabled".
func NewRedis(cfg config.Config) *goredis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	rdb := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Warnw("redis unreachable, rate limiting disabled", "addr", cfg.RedisAddr, "error", err)
		return nil
	}
	return rdb
}
