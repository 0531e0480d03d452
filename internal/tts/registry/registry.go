// Package registry maps backend names to constructors so that wrapping
// backends and the service layer can build a backend from configuration.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/nadzzz/voicebox/internal/modelcache"
	"github.com/nadzzz/voicebox/internal/tts"
)

// Constructor builds a backend for lang. Constructors may load models into
// cache before returning.
type Constructor func(ctx context.Context, lang string, opts tts.Options, cache *modelcache.Cache) (tts.Synthesizer, error)

// Registry is a concurrency-safe name -> Constructor table.
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{constructors: make(map[string]Constructor)}
}

// Register adds a constructor under name.
func (r *Registry) Register(name string, c Constructor) error {
	if name == "" {
		return errors.New("backend name cannot be empty")
	}
	if c == nil {
		return fmt.Errorf("backend %q: constructor cannot be nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.constructors[name]; exists {
		return fmt.Errorf("backend already registered: %s", name)
	}
	r.constructors[name] = c
	return nil
}

// Lookup returns the constructor registered under name.
func (r *Registry) Lookup(name string) (Constructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", tts.ErrBackendNotFound, name)
	}
	return c, nil
}

// Build looks up name and constructs the backend.
func (r *Registry) Build(ctx context.Context, name, lang string, opts tts.Options, cache *modelcache.Cache) (tts.Synthesizer, error) {
	c, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return c(ctx, lang, opts, cache)
}

// Names returns the sorted registered names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
