package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/flightasset/internal/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *RedisCache) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewRedisCacheWithClient(client, time.Minute)
}

func TestRedisCache_FlightRoundTrip(t *testing.T) {
	mr, c := setupTestRedis(t)
	ctx := context.Background()
	date := domain.NewDate(2024, time.May, 1)

	miss, err := c.GetFlight(ctx, "JFK", date)
	require.NoError(t, err)
	assert.Nil(t, miss)

	resp := domain.FlightResponse{Place: "JFK", Date: date, NumberOfDepartures: 12, NumberOfArrivals: 9}
	require.NoError(t, c.SetFlight(ctx, "JFK", date, resp))
	assert.True(t, mr.Exists("cache:flights:JFK:2024-05-01"))

	hit, err := c.GetFlight(ctx, "JFK", date)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, resp, *hit)
	assert.Equal(t, time.Minute, mr.TTL("cache:flights:JFK:2024-05-01"))
}

func TestRedisCache_FlightExpires(t *testing.T) {
	mr, c := setupTestRedis(t)
	ctx := context.Background()
	date := domain.NewDate(2024, time.May, 1)

	require.NoError(t, c.SetFlight(ctx, "", date, domain.FlightResponse{Date: date}))
	assert.True(t, mr.Exists("cache:flights:*:2024-05-01"))

	mr.FastForward(2 * time.Minute)

	miss, err := c.GetFlight(ctx, "", date)
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestRedisCache_SummaryRoundTrip(t *testing.T) {
	_, c := setupTestRedis(t)
	ctx := context.Background()
	date := domain.NewDate(2024, time.May, 1)

	summary := []domain.FlightResponse{
		{Place: "JFK", Date: date, NumberOfDepartures: 3, NumberOfArrivals: 4},
		{Place: "LAX", Date: date, NumberOfDepartures: 5, NumberOfArrivals: 6},
	}
	require.NoError(t, c.SetSummary(ctx, date, summary))

	got, err := c.GetSummary(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, summary, got)

	other, err := c.GetSummary(ctx, domain.NewDate(2024, time.May, 2))
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestRedisCache_CorruptEntry(t *testing.T) {
	mr, c := setupTestRedis(t)
	require.NoError(t, mr.Set("cache:flights:JFK:2024-05-01", "{not json"))

	_, err := c.GetFlight(context.Background(), "JFK", domain.NewDate(2024, time.May, 1))
	assert.Error(t, err)
}

func TestRedisCache_Ping(t *testing.T) {
	mr, c := setupTestRedis(t)
	assert.NoError(t, c.Ping(context.Background()))

	mr.Close()
	assert.Error(t, c.Ping(context.Background()))
}
