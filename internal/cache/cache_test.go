package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *RistrettoCache {
	t.Helper()
	c, err := New(nil)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestSetThenGet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.True(t, c.Set(ctx, "/api/programmes", "cached", time.Minute))

	value, found := c.Get(ctx, "/api/programmes")
	assert.True(t, found)
	assert.Equal(t, "cached", value)

	c.Delete(ctx, "/api/programmes")
	_, found = c.Get(ctx, "/api/programmes")
	assert.False(t, found)
}

func TestGetOrSetLoadsOnce(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()
	var calls atomic.Int32

	loader := func() (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := c.GetOrSet(ctx, "key", time.Minute, loader)
			assert.NoError(t, err)
			assert.Equal(t, "value", value)
		}()
	}
	wg.Wait()

	value, err := c.GetOrSet(ctx, "key", time.Minute, loader)
	require.NoError(t, err)
	assert.Equal(t, "value", value)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGetOrSetDoesNotCacheErrors(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := c.GetOrSet(ctx, "key", time.Minute, func() (any, error) { return nil, boom })
	require.ErrorIs(t, err, boom)

	_, found := c.Get(ctx, "key")
	assert.False(t, found)
}

func TestCancelledContextMisses(t *testing.T) {
	c := newTestCache(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, c.Set(ctx, "key", "value", time.Minute))
	_, found := c.Get(ctx, "key")
	assert.False(t, found)
}

func TestGetOrSetLeaderCancelDoesNotFailFollowers(t *testing.T) {
	c := newTestCache(t)
	started := make(chan struct{})
	release := make(chan struct{})

	loader := func() (any, error) {
		close(started)
		<-release
		return "value", nil
	}

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := c.GetOrSet(leaderCtx, "key", time.Minute, loader)
		leaderErr <- err
	}()
	<-started

	type result struct {
		value any
		err   error
	}
	follower := make(chan result, 1)
	go func() {
		value, err := c.GetOrSet(context.Background(), "key", time.Minute, func() (any, error) {
			return nil, errors.New("second load")
		})
		follower <- result{value, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancelLeader()
	require.ErrorIs(t, <-leaderErr, context.Canceled)

	close(release)
	res := <-follower
	require.NoError(t, res.err)
	assert.Equal(t, "value", res.value)
}
