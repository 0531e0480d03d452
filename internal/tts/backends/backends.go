// Package backends registers the built-in synthesis backends.
package backends

import (
	"context"

	"github.com/nadzzz/voicebox/internal/modelcache"
	"github.com/nadzzz/voicebox/internal/tts"
	"github.com/nadzzz/voicebox/internal/tts/coqui"
	"github.com/nadzzz/voicebox/internal/tts/fairseq"
	"github.com/nadzzz/voicebox/internal/tts/freevc"
	"github.com/nadzzz/voicebox/internal/tts/registry"
	"github.com/nadzzz/voicebox/internal/tts/xtts"
)

// Backend names.
const (
	Coqui   = "coqui"
	XTTS    = "coqui-xtts"
	FreeVC  = "coqui-freevc"
	Fairseq = "coqui-fairseq"
)

// Register adds every built-in backend to r. The conversion backend resolves
// its base backend through r.
func Register(r *registry.Registry) error {
	builtins := []struct {
		name string
		ctor registry.Constructor
	}{
		{Coqui, func(ctx context.Context, lang string, opts tts.Options, cache *modelcache.Cache) (tts.Synthesizer, error) {
			return coqui.New(ctx, lang, opts, cache)
		}},
		{XTTS, func(ctx context.Context, lang string, opts tts.Options, cache *modelcache.Cache) (tts.Synthesizer, error) {
			return xtts.New(ctx, lang, opts, cache)
		}},
		{FreeVC, func(ctx context.Context, lang string, opts tts.Options, cache *modelcache.Cache) (tts.Synthesizer, error) {
			return freevc.New(ctx, lang, opts, cache, r)
		}},
		{Fairseq, func(ctx context.Context, lang string, opts tts.Options, cache *modelcache.Cache) (tts.Synthesizer, error) {
			return fairseq.New(ctx, lang, opts, cache)
		}},
	}

	for _, b := range builtins {
		if err := r.Register(b.name, b.ctor); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry holding the built-in backends.
func NewRegistry() *registry.Registry {
	r := registry.New()
	if err := Register(r); err != nil {
		// Names are constants and the registry is fresh.
		panic(err)
	}
	return r
}
