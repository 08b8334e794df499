package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/flightasset/config"
	"github.com/Domenick1991/flightasset/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return NewRedisCacheWithClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL,
	)
}

func NewRedisCacheWithClient(client *redis.Client, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, flightsTTL: flightsTTL}
}

// GetFlight returns the cached response for place/date, or nil on a miss.
func (c *RedisCache) GetFlight(ctx context.Context, place string, date domain.Date) (*domain.FlightResponse, error) {
	var resp domain.FlightResponse
	ok, err := c.get(ctx, flightKey(place, date), &resp)
	if err != nil || !ok {
		return nil, err
	}
	return &resp, nil
}

func (c *RedisCache) SetFlight(ctx context.Context, place string, date domain.Date, resp domain.FlightResponse) error {
	return c.set(ctx, flightKey(place, date), resp)
}

// GetSummary returns the cached summary for date, or nil on a miss.
func (c *RedisCache) GetSummary(ctx context.Context, date domain.Date) ([]domain.FlightResponse, error) {
	var summary []domain.FlightResponse
	ok, err := c.get(ctx, summaryKey(date), &summary)
	if err != nil || !ok {
		return nil, err
	}
	return summary, nil
}

func (c *RedisCache) SetSummary(ctx context.Context, date domain.Date, summary []domain.FlightResponse) error {
	return c.set(ctx, summaryKey(date), summary)
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisCache) set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, c.flightsTTL).Err()
}

func flightKey(place string, date domain.Date) string {
	if place == "" {
		place = "*"
	}
	return fmt.Sprintf("cache:flights:%s:%s", place, date)
}

func summaryKey(date domain.Date) string {
	return fmt.Sprintf("cache:flights:summary:%s", date)
}
