package service

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	testRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func setupRedis(t *testing.T, c context.Context) *redis.Client {
	t.Helper()

	redisContainer, err := testRedis.Run(c, "redis:7.4.2-alpine3.21")
	if err != nil {
		t.Fatalf("failed running redis container with error: %s", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(redisContainer); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	})

	redisConnStr, err := redisContainer.ConnectionString(c)
	if err != nil {
		t.Fatalf("failed getting redis connection string with error: %s", err)
	}

	redisOpt, err := redis.ParseURL(redisConnStr)
	if err != nil {
		t.Fatalf("failed parsing redis connection string with error: %s", err)
	}

	redisClient := redis.NewClient(redisOpt)
	t.Cleanup(func() { redisClient.Close() })
	if err = redisClient.Ping(c).Err(); err != nil {
		t.Fatalf("failed ping redis client with error: %s", err)
	}

	return redisClient
}

func TestRedisSnapshotsRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	c := context.Background()
	snapshots := NewRedisSnapshots(setupRedis(t, c))

	_, ok, err := snapshots.Get(c, "carts:sessions:missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, snapshots.Set(c, "carts:sessions:abc", `[{"quantity":2}]`))
	value, ok, err := snapshots.Get(c, "carts:sessions:abc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"quantity":2}]`, value)

	require.NoError(t, snapshots.Del(c, "carts:sessions:abc"))
	_, ok, err = snapshots.Get(c, "carts:sessions:abc")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, snapshots.Del(c, "carts:sessions:abc"))
}
