package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/portify/portify/internal/domain/portfolio"
	"github.com/portify/portify/pkg/apperror"
	"github.com/portify/portify/pkg/logger"
)

const (
	portfolioCacheKeyPrefix = "portfolio:cache:"
	portfolioViewsKeyPrefix = "portfolio:views:"
)

// RedisPortfolioCache keeps assembled public portfolios hot for the TTL and
// tracks the per-slug view counters the worker increments.
type RedisPortfolioCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewRedisPortfolioCache(rdb *redis.Client, ttl time.Duration, log logger.Logger) *RedisPortfolioCache {
	return &RedisPortfolioCache{rdb: rdb, ttl: ttl, logger: log}
}

func (c *RedisPortfolioCache) Get(ctx context.Context, slug string) (*portfolio.Portfolio, error) {
	raw, err := c.rdb.Get(ctx, portfolioCacheKeyPrefix+slug).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to read portfolio cache", err)
	}

	p := &portfolio.Portfolio{}
	if err := json.Unmarshal(raw, p); err != nil {
		// A stale or corrupt entry is treated as a miss.
		c.logger.Warn("Dropping unreadable portfolio cache entry", zap.String("slug", slug), zap.Error(err))
		c.rdb.Del(ctx, portfolioCacheKeyPrefix+slug)
		return nil, nil
	}
	return p, nil
}

func (c *RedisPortfolioCache) Set(ctx context.Context, slug string, p *portfolio.Portfolio) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return apperror.NewInternal("failed to marshal portfolio for cache", err)
	}
	if err := c.rdb.Set(ctx, portfolioCacheKeyPrefix+slug, raw, c.ttl).Err(); err != nil {
		return apperror.NewInternal("failed to write portfolio cache", err)
	}
	return nil
}

func (c *RedisPortfolioCache) Invalidate(ctx context.Context, slugs ...string) error {
	keys := make([]string, 0, len(slugs))
	for _, s := range slugs {
		if s == "" {
			continue
		}
		keys = append(keys, portfolioCacheKeyPrefix+s)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return apperror.NewInternal("failed to invalidate portfolio cache", err)
	}
	return nil
}

func (c *RedisPortfolioCache) Increment(ctx context.Context, slug string) (int64, error) {
	n, err := c.rdb.Incr(ctx, portfolioViewsKeyPrefix+slug).Result()
	if err != nil {
		return 0, apperror.NewInternal("failed to increment view counter", err)
	}
	return n, nil
}

func (c *RedisPortfolioCache) Views(ctx context.Context, slug string) (int64, error) {
	n, err := c.rdb.Get(ctx, portfolioViewsKeyPrefix+slug).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, apperror.NewInternal("failed to read view counter", err)
	}
	return n, nil
}
