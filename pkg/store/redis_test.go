package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakemap/stakemap/pkg/stakemap"
)

// setupRedisBackend starts an in-process Redis and returns a backend
// connected to it. Cleanup is registered on t.
func setupRedisBackend(t *testing.T) *RedisBackend {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	backend := NewRedisBackend(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { backend.Close() })

	require.NoError(t, backend.Ping(context.Background()))
	return backend
}

func TestRedisBackendRoundTrip(t *testing.T) {
	backend := setupRedisBackend(t)
	ctx := context.Background()

	_, found, err := backend.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found, "found before first save")

	maps := []stakemap.Map{{ID: "m1", Name: "Shared", Sector: "research"}}
	require.NoError(t, backend.Save(ctx, maps))

	got, found, err := backend.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, got, 1)
	assert.Equal(t, "Shared", got[0].Name)
	assert.Equal(t, "research", got[0].Sector)
}

func TestRedisBackendClear(t *testing.T) {
	backend := setupRedisBackend(t)
	ctx := context.Background()

	require.NoError(t, backend.Save(ctx, []stakemap.Map{{ID: "m1"}}))
	require.NoError(t, backend.Clear(ctx))

	_, found, err := backend.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found, "found after clear")

	assert.NoError(t, backend.Clear(ctx), "clearing empty key")
}

func TestRedisBackendCorruptPayload(t *testing.T) {
	backend := setupRedisBackend(t)
	ctx := context.Background()

	require.NoError(t, backend.rdb.Set(ctx, redisKey, "{not json", 0).Err())
	_, _, err := backend.Load(ctx)
	assert.Error(t, err)
}

func TestStoreOverRedis(t *testing.T) {
	backend := setupRedisBackend(t)
	s := New(backend, nil)
	ctx := context.Background()

	m, err := s.Create(ctx, stakemap.Map{Name: "Over Redis"})
	require.NoError(t, err)

	_, err = s.AddStakeholder(ctx, m.ID, stakemap.Stakeholder{Name: "Alice"})
	require.NoError(t, err)

	got, err := s.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Len(t, got.Stakeholders, 1)
}
