// Package modelcache keeps loaded synthesis models for the lifetime of the
// process.
//
// Loading a model is far more expensive than keeping it in memory, so entries
// are never evicted. Each model identifier is loaded at most once: concurrent
// callers for an identifier that is not yet loaded wait for the single
// in-flight load and all receive the same entry. A failed load stores nothing,
// so a later call may try again.
package modelcache

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/nadzzz/voicebox/internal/engine"
)

// Entry is a loaded model and the capabilities it declared at load time.
type Entry struct {
	ID           string
	Model        engine.Model
	Capabilities engine.Capabilities
	Accelerated  bool
	LoadedAt     time.Time
}

// Cache maps model identifiers to loaded entries.
type Cache struct {
	loader engine.Loader

	mu      sync.RWMutex
	entries map[string]*Entry

	// loads claims an identifier for the duration of its load.
	loads singleflight.Group
	// waiting counts callers blocked on an in-flight load.
	waiting atomic.Int32
}

// New creates an empty cache backed by loader.
func New(loader engine.Loader) *Cache {
	return &Cache{
		loader:  loader,
		entries: make(map[string]*Entry),
	}
}

var (
	sharedOnce sync.Once
	shared     *Cache
)

// Shared returns the process-wide cache. The first call creates it with
// loader; later calls return the same cache and ignore their argument.
func Shared(loader engine.Loader) *Cache {
	sharedOnce.Do(func() {
		shared = New(loader)
	})
	return shared
}

// GetOrLoad returns the entry for id, loading it on first use. When
// accelerate is set a freshly loaded model is placed on the accelerator before
// it is published. An existing entry is returned unchanged.
//
// The load itself is not tied to any one caller: cancelling ctx returns
// ctx.Err() to this caller only, while the load continues for the others.
func (c *Cache) GetOrLoad(ctx context.Context, id string, accelerate bool) (*Entry, error) {
	if e, ok := c.Get(id); ok {
		return e, nil
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := c.loads.DoChan(id, func() (any, error) {
		// A load for id may have completed between Get and DoChan.
		if e, ok := c.Get(id); ok {
			return e, nil
		}
		return c.load(loadCtx, id, accelerate)
	})

	c.waiting.Add(1)
	defer c.waiting.Add(-1)

	select {
	case <-ctx.Done():
		slog.Debug("stopped waiting for model load", "model", id, "error", ctx.Err())
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		if r.Shared {
			slog.Debug("model load shared", "model", id)
		}
		return r.Val.(*Entry), nil
	}
}

func (c *Cache) load(ctx context.Context, id string, accelerate bool) (*Entry, error) {
	start := time.Now()
	slog.Info("loading model", "model", id, "accelerate", accelerate)

	m, err := c.loader.Load(ctx, id)
	if err != nil {
		slog.Error("model load failed", "model", id, "error", err)
		return nil, fmt.Errorf("%w: %s: %w", engine.ErrModelLoad, id, err)
	}
	if accelerate {
		if err := m.PlaceOnAccelerator(ctx); err != nil {
			slog.Error("accelerator placement failed", "model", id, "error", err)
			return nil, fmt.Errorf("%w: %s: placing on accelerator: %w", engine.ErrModelLoad, id, err)
		}
	}

	e := &Entry{
		ID:           id,
		Model:        m,
		Capabilities: m.Capabilities(),
		Accelerated:  accelerate,
		LoadedAt:     time.Now(),
	}

	c.mu.Lock()
	c.entries[id] = e
	c.mu.Unlock()

	slog.Info("model loaded", "model", id,
		"multi_speaker", e.Capabilities.MultiSpeaker,
		"multi_lingual", e.Capabilities.MultiLingual,
		"duration", time.Since(start))
	return e, nil
}

// Get returns the entry for id without loading it.
func (c *Cache) Get(id string) (*Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[id]
	return e, ok
}

// Contains reports whether id is loaded.
func (c *Cache) Contains(id string) bool {
	_, ok := c.Get(id)
	return ok
}

// Len returns the number of loaded models.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// IDs returns the sorted identifiers of all loaded models.
func (c *Cache) IDs() []string {
	c.mu.RLock()
	ids := make([]string, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	c.mu.RUnlock()
	sort.Strings(ids)
	return ids
}
