// Package dispatch implements the request routing engine.
//
// The dispatcher receives synthesis requests from transports, picks the
// backend that serves them, assigns the output file and runs the backend.
// Backends are built on first use and kept for the life of the process; they
// share one model cache.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/nadzzz/voicebox/internal/config"
	"github.com/nadzzz/voicebox/internal/message"
	"github.com/nadzzz/voicebox/internal/modelcache"
	"github.com/nadzzz/voicebox/internal/tts"
	"github.com/nadzzz/voicebox/internal/tts/registry"
)

// ErrEmptyText is returned for requests without text.
var ErrEmptyText = errors.New("empty text for synthesis")

// Dispatcher is the central routing engine.
type Dispatcher struct {
	registry *registry.Registry
	cache    *modelcache.Cache
	cfg      config.TTSConfig

	mu       sync.RWMutex
	backends map[string]tts.Synthesizer
	builds   singleflight.Group
	// waiting counts callers blocked on an in-flight build.
	waiting atomic.Int32
}

// New creates a Dispatcher that builds backends from reg with cfg.
func New(reg *registry.Registry, cache *modelcache.Cache, cfg config.TTSConfig) *Dispatcher {
	return &Dispatcher{
		registry: reg,
		cache:    cache,
		cfg:      cfg,
		backends: make(map[string]tts.Synthesizer),
	}
}

// DefaultBackend returns the configured backend name.
func (d *Dispatcher) DefaultBackend() string { return d.cfg.Backend }

// Warm builds the configured backend so its default model is loaded before
// the first request.
func (d *Dispatcher) Warm(ctx context.Context) error {
	_, err := d.Backend(ctx, "")
	return err
}

// Backend returns the backend registered under name, building it on first
// use. An empty name selects the configured backend. Cancelling ctx stops
// this caller waiting; a build already under way finishes for the others.
func (d *Dispatcher) Backend(ctx context.Context, name string) (tts.Synthesizer, error) {
	if name == "" {
		name = d.cfg.Backend
	}

	d.mu.RLock()
	s, ok := d.backends[name]
	d.mu.RUnlock()
	if ok {
		return s, nil
	}

	buildCtx := context.WithoutCancel(ctx)
	ch := d.builds.DoChan(name, func() (any, error) {
		d.mu.RLock()
		s, ok := d.backends[name]
		d.mu.RUnlock()
		if ok {
			return s, nil
		}

		start := time.Now()
		s, err := d.registry.Build(buildCtx, name, d.cfg.LangFor(name), d.cfg.OptionsFor(name), d.cache)
		if err != nil {
			return nil, err
		}

		d.mu.Lock()
		d.backends[name] = s
		d.mu.Unlock()
		slog.Info("backend built", "backend", name, "duration", time.Since(start))
		return s, nil
	})

	d.waiting.Add(1)
	defer d.waiting.Add(-1)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.(tts.Synthesizer), nil
	}
}

// Synthesize renders req. The output file is written under the configured
// output directory with a generated name.
func (d *Dispatcher) Synthesize(ctx context.Context, req *message.SynthesisRequest) (*message.SynthesisResult, error) {
	start := time.Now()
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.Timestamp.IsZero() {
		req.Timestamp = start
	}

	backend := req.Backend
	if backend == "" {
		backend = d.cfg.Backend
	}

	logger := slog.With("request_id", req.ID, "backend", backend)
	logger.Info("synthesis started", "language", req.Language, "text_length", len(req.Text))

	result := &message.SynthesisResult{
		RequestID: req.ID,
		Backend:   backend,
	}
	fail := func(err error) (*message.SynthesisResult, error) {
		result.Error = err.Error()
		result.DurationMS = time.Since(start).Milliseconds()
		logger.Error("synthesis failed", "error", err)
		return result, err
	}

	if req.Text == "" {
		return fail(ErrEmptyText)
	}

	s, err := d.Backend(ctx, backend)
	if err != nil {
		return fail(err)
	}

	if err := os.MkdirAll(d.cfg.OutputDir, 0o755); err != nil {
		return fail(fmt.Errorf("creating output dir: %w", err))
	}
	// The request ID is client-supplied; file names never are.
	out := filepath.Join(d.cfg.OutputDir, uuid.NewString()+".wav")

	res, err := s.Synthesize(ctx, tts.Request{
		Text:             req.Text,
		OutputPath:       out,
		Language:         req.Language,
		Voice:            req.Voice,
		ReferenceSpeaker: req.ReferenceSpeaker,
		ModelOverride:    req.Model,
	})
	if err != nil {
		return fail(err)
	}

	result.Path = res.Path
	result.Phonemes = res.Phonemes

	if req.ReturnAudio {
		audio, err := os.ReadFile(res.Path)
		if err != nil {
			return fail(fmt.Errorf("reading output: %w", err))
		}
		result.SetAudioBytes(audio, "audio/wav")
	}

	result.DurationMS = time.Since(start).Milliseconds()
	logger.Info("synthesis complete", "path", result.Path, "duration", time.Since(start))
	return result, nil
}

// Languages lists the languages of backend. An empty name selects the
// configured backend.
func (d *Dispatcher) Languages(ctx context.Context, backend string) (*message.LanguagesResult, error) {
	if backend == "" {
		backend = d.cfg.Backend
	}
	s, err := d.Backend(ctx, backend)
	if err != nil {
		return nil, err
	}
	return &message.LanguagesResult{Backend: backend, Languages: s.AvailableLanguages()}, nil
}
