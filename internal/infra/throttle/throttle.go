// Package throttle implements the per-IP page-view dedup window.
package throttle

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Limiter interface {
	// Allow reports whether the (ip, page) pair may record a view, and
	// claims the window when it does.
	Allow(ctx context.Context, ip, page string, window time.Duration) (bool, error)
}

type RedisLimiter struct {
	rdb *redis.Client
}

func NewRedisLimiter(rdb *redis.Client) *RedisLimiter {
	return &RedisLimiter{rdb: rdb}
}

func (l *RedisLimiter) Allow(ctx context.Context, ip, page string, window time.Duration) (bool, error) {
	key := fmt.Sprintf("pageview:%s:%s", ip, page)
	return l.rdb.SetNX(ctx, key, 1, window).Result()
}

var _ Limiter = (*RedisLimiter)(nil)
