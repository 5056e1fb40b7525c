package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverLocationStore_SetAndGet(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewDriverLocationStore(client, 2*time.Minute)
	ctx := context.Background()
	driverID := uuid.New()

	// Get before set => nil
	loc, err := store.Get(ctx, driverID)
	assert.NoError(t, err)
	assert.Nil(t, loc)

	err = store.Set(ctx, driverID, 48.8566, 2.3522)
	require.NoError(t, err)

	loc, err = store.Get(ctx, driverID)
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, 48.8566, loc.Lat)
	assert.Equal(t, 2.3522, loc.Lng)
	assert.False(t, loc.UpdatedAt.IsZero())
}

func TestDriverLocationStore_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewDriverLocationStore(client, 1*time.Second)
	ctx := context.Background()
	driverID := uuid.New()

	err := store.Set(ctx, driverID, 48.8566, 2.3522)
	require.NoError(t, err)

	// Fast-forward time in miniredis
	s.FastForward(2 * time.Second)

	loc, err := store.Get(ctx, driverID)
	assert.NoError(t, err)
	assert.Nil(t, loc, "expired sample should return nil")
}

func TestDriverLocationStore_OverwriteSample(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewDriverLocationStore(client, 2*time.Minute)
	ctx := context.Background()
	driverID := uuid.New()

	require.NoError(t, store.Set(ctx, driverID, 48.85, 2.35))
	require.NoError(t, store.Set(ctx, driverID, 48.90, 2.40))

	loc, err := store.Get(ctx, driverID)
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, 48.90, loc.Lat)
	assert.Equal(t, 2.40, loc.Lng)
}

func TestDriverLocationStore_IsolatedPerDriver(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewDriverLocationStore(client, 2*time.Minute)
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	require.NoError(t, store.Set(ctx, a, 48.85, 2.35))

	loc, err := store.Get(ctx, b)
	assert.NoError(t, err)
	assert.Nil(t, loc)
}
