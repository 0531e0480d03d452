// Package fairseq routes each request to the FairSeq MMS model of its
// language. Model identifiers are built from the ISO 639-3 code of the
// request language, so any language the family covers can be served without
// a catalog entry.
package fairseq

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/nadzzz/voicebox/internal/catalog"
	"github.com/nadzzz/voicebox/internal/langtag"
	"github.com/nadzzz/voicebox/internal/modelcache"
	"github.com/nadzzz/voicebox/internal/tts"
	"github.com/nadzzz/voicebox/internal/tts/coqui"
)

// ModelID returns the FairSeq model identifier for an ISO 639-3 code.
func ModelID(code string) string {
	return fmt.Sprintf("tts_models/%s/fairseq/vits", code)
}

// Synthesizer is the FairSeq router. Nothing is loaded until the first
// request for a language.
type Synthesizer struct {
	lang  string
	opts  tts.Options
	cache *modelcache.Cache
	langs []string

	mu     sync.Mutex
	routes map[string]*coqui.Synthesizer
}

// New creates the router. lang is the language used for requests that name
// none.
func New(_ context.Context, lang string, opts tts.Options, cache *modelcache.Cache) (*Synthesizer, error) {
	if lang == "" {
		lang = catalog.DefaultLang
	}

	// Advertised as ISO 639-3 so every listed code routes to its own model.
	langs := slices.Clone(catalog.FairseqLanguages)
	slices.Sort(langs)
	langs = slices.Compact(langs)

	return &Synthesizer{
		lang:   lang,
		opts:   opts,
		cache:  cache,
		langs:  langs,
		routes: make(map[string]*coqui.Synthesizer),
	}, nil
}

// AvailableLanguages returns the advertised FairSeq language codes.
func (s *Synthesizer) AvailableLanguages() []string {
	return slices.Clone(s.langs)
}

// Synthesize renders req with the model for its language.
func (s *Synthesizer) Synthesize(ctx context.Context, req tts.Request) (*tts.Result, error) {
	lang := req.Language
	if lang == "" {
		lang = s.lang
	}
	id := ModelID(langtag.Alpha3(lang))

	route, err := s.route(ctx, lang, id)
	if err != nil {
		return nil, err
	}

	req.Language = lang
	req.ModelOverride = id
	return route.Synthesize(ctx, req)
}

// route returns the base backend bound to model id, building it on first use.
// Concurrent first requests may both build; the cache loads the model once.
func (s *Synthesizer) route(ctx context.Context, lang, id string) (*coqui.Synthesizer, error) {
	s.mu.Lock()
	r, ok := s.routes[id]
	s.mu.Unlock()
	if ok {
		return r, nil
	}

	opts := s.opts
	opts.Model = id
	r, err := coqui.New(ctx, lang, opts, s.cache)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.routes[id]; ok {
		return existing, nil
	}
	s.routes[id] = r
	slog.Debug("fairseq route added", "lang", lang, "model", id)
	return r, nil
}
