package modelcache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadzzz/voicebox/internal/engine"
	"github.com/nadzzz/voicebox/internal/engine/enginetest"
)

func TestGetOrLoad_Idempotent(t *testing.T) {
	loader := enginetest.New()
	c := New(loader)
	ctx := context.Background()

	first, err := c.GetOrLoad(ctx, "m1", false)
	require.NoError(t, err)
	second, err := c.GetOrLoad(ctx, "m1", false)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Same(t, first.Model, second.Model)
	assert.Equal(t, 1, loader.Loads("m1"))
	assert.True(t, c.Contains("m1"))
	assert.Equal(t, 1, c.Len())
}

func TestGetOrLoad_CapabilitiesCapturedAtLoad(t *testing.T) {
	caps := engine.Capabilities{MultiSpeaker: true, Speakers: []string{"a", "b"}}
	loader := enginetest.New().WithModel("ms", caps)
	c := New(loader)

	e, err := c.GetOrLoad(context.Background(), "ms", false)
	require.NoError(t, err)
	assert.Equal(t, caps, e.Capabilities)
	assert.Equal(t, "ms", e.ID)
	assert.False(t, e.LoadedAt.IsZero())
}

func TestGetOrLoad_Concurrent(t *testing.T) {
	loader := enginetest.New()
	loader.Gate = make(chan struct{})
	c := New(loader)

	const callers = 32
	var wg sync.WaitGroup
	entries := make([]*Entry, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			entries[i], errs[i] = c.GetOrLoad(context.Background(), "shared", false)
		}(i)
	}

	require.Eventually(t, func() bool {
		return c.waiting.Load() == callers
	}, 5*time.Second, time.Millisecond, "all callers waiting on the load")
	assert.Equal(t, 0, loader.TotalLoads())

	close(loader.Gate)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, entries[0], entries[i])
	}
	assert.Equal(t, 1, loader.Loads("shared"))
}

func TestGetOrLoad_CancelledCallerDoesNotAbortSharedLoad(t *testing.T) {
	loader := enginetest.New()
	loader.Gate = make(chan struct{})
	c := New(loader)

	ctxA, cancelA := context.WithCancel(context.Background())
	defer cancelA()

	errA := make(chan error, 1)
	go func() {
		_, err := c.GetOrLoad(ctxA, "m1", false)
		errA <- err
	}()
	require.Eventually(t, func() bool { return c.waiting.Load() == 1 }, 5*time.Second, time.Millisecond)

	type result struct {
		e   *Entry
		err error
	}
	resB := make(chan result, 1)
	go func() {
		e, err := c.GetOrLoad(context.Background(), "m1", false)
		resB <- result{e, err}
	}()
	require.Eventually(t, func() bool { return c.waiting.Load() == 2 }, 5*time.Second, time.Millisecond)

	cancelA()
	select {
	case err := <-errA:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("cancelled caller still waiting")
	}

	close(loader.Gate)
	select {
	case r := <-resB:
		require.NoError(t, r.err)
		assert.Equal(t, "m1", r.e.ID)
	case <-time.After(5 * time.Second):
		t.Fatal("second caller never received the entry")
	}
	assert.Equal(t, 1, loader.Loads("m1"))
	assert.True(t, c.Contains("m1"))
}

func TestGetOrLoad_CancelledBeforeLoadCompletes(t *testing.T) {
	loader := enginetest.New()
	loader.Gate = make(chan struct{})
	c := New(loader)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.GetOrLoad(ctx, "m1", false)
	assert.ErrorIs(t, err, context.Canceled)

	// The abandoned load still completes and publishes the entry.
	close(loader.Gate)
	require.Eventually(t, func() bool { return c.Contains("m1") }, 5*time.Second, time.Millisecond)
	assert.Equal(t, 1, loader.Loads("m1"))
}

func TestGetOrLoad_DistinctIDs(t *testing.T) {
	loader := enginetest.New()
	c := New(loader)
	ctx := context.Background()

	a, err := c.GetOrLoad(ctx, "a", false)
	require.NoError(t, err)
	b, err := c.GetOrLoad(ctx, "b", false)
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Equal(t, []string{"a", "b"}, c.IDs())
}

func TestGetOrLoad_Accelerate(t *testing.T) {
	loader := enginetest.New()
	c := New(loader)
	ctx := context.Background()

	e, err := c.GetOrLoad(ctx, "gpu", true)
	require.NoError(t, err)
	assert.True(t, e.Accelerated)
	assert.Equal(t, 1, loader.Model("gpu").Accelerations())

	// A hit never places the model again.
	_, err = c.GetOrLoad(ctx, "gpu", true)
	require.NoError(t, err)
	assert.Equal(t, 1, loader.Model("gpu").Accelerations())
}

func TestGetOrLoad_FailureNotCached(t *testing.T) {
	boom := errors.New("weights missing")
	loader := enginetest.New().FailLoad("broken", boom)
	c := New(loader)
	ctx := context.Background()

	_, err := c.GetOrLoad(ctx, "broken", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrModelLoad)
	assert.ErrorIs(t, err, boom)
	assert.False(t, c.Contains("broken"))

	_, err = c.GetOrLoad(ctx, "broken", false)
	require.Error(t, err)
	assert.Equal(t, 2, loader.Loads("broken"))

	// Other models are unaffected.
	_, err = c.GetOrLoad(ctx, "fine", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"fine"}, c.IDs())
}

func TestGetOrLoad_AcceleratorFailure(t *testing.T) {
	loader := enginetest.New()
	loader.AccelErr = errors.New("no device")
	c := New(loader)

	_, err := c.GetOrLoad(context.Background(), "m", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrModelLoad)
	assert.False(t, c.Contains("m"))
}

func TestShared(t *testing.T) {
	a := Shared(enginetest.New())
	b := Shared(enginetest.New())
	assert.Same(t, a, b)
}
