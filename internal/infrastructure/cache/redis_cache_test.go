package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

type kpi struct {
	Total int `json:"total"`
}

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, time.Minute), mr
}

func TestFetchJSON_CacheHastaBump(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	calls := 0
	loader := func(context.Context) (any, error) {
		calls++
		return kpi{Total: calls}, nil
	}

	key, err := c.BuildKey(ctx, "dashboard", "kpis")
	require.NoError(t, err)
	assert.Equal(t, "dashboard:kpis:v1", key)

	var first, second kpi
	require.NoError(t, c.FetchJSON(ctx, key, &first, loader))
	require.NoError(t, c.FetchJSON(ctx, key, &second, loader))
	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)

	ver, err := c.Bump(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, ver)

	key, err = c.BuildKey(ctx, "dashboard", "kpis")
	require.NoError(t, err)
	var third kpi
	require.NoError(t, c.FetchJSON(ctx, key, &third, loader))
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, third.Total)
}

func TestFetchJSON_ErrorDelLoaderNoSeCachea(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	boom := errors.New("db caída")

	var out kpi
	err := c.FetchJSON(ctx, "k", &out, func(context.Context) (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("k"))
}

func TestFetchJSON_TTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	var out kpi
	require.NoError(t, c.FetchJSON(ctx, "k", &out, func(context.Context) (any, error) { return kpi{Total: 3}, nil }))
	assert.Equal(t, time.Minute, mr.TTL("k"))
}

func TestCacheNil_PassThrough(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	key, err := c.BuildKey(ctx, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "a:b", key)

	var out kpi
	require.NoError(t, c.FetchJSON(ctx, key, &out, func(context.Context) (any, error) { return kpi{Total: 7}, nil }))
	assert.Equal(t, 7, out.Total)

	_, err = c.Bump(ctx)
	assert.NoError(t, err)
}

func TestAlertsSnapshot(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	var got []string
	found, err := c.LatestAlerts(ctx, &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.SaveAlerts(ctx, []string{"SKU-1", "SKU-2"}))
	found, err = c.LatestAlerts(ctx, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"SKU-1", "SKU-2"}, got)
}

type countingEnqueuer struct{ n int }

func (e *countingEnqueuer) EnqueueKPIWarmup(context.Context) error {
	e.n++
	return nil
}

func TestInvalidator_SubeVersionYEncolaWarmup(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	_, err := c.Version(ctx)
	require.NoError(t, err)

	enq := &countingEnqueuer{}
	NewInvalidator(c, enq).StockChanged(ctx, &entity.Document{Reference: "WH/IN/000001"})

	ver, err := c.Version(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, ver)
	assert.Equal(t, 1, enq.n)
}

func TestInvalidator_RedisCaidoNoEntraEnPanico(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()
	enq := &countingEnqueuer{}
	assert.NotPanics(t, func() {
		NewInvalidator(c, enq).StockChanged(context.Background(), &entity.Document{Reference: "X"})
	})
	assert.Equal(t, 1, enq.n)
}
