// Package coqui implements the base synthesis backend: it resolves a model
// from the language catalog, loads it through the shared model cache and
// renders the request with it.
package coqui

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/nadzzz/voicebox/internal/catalog"
	"github.com/nadzzz/voicebox/internal/engine"
	"github.com/nadzzz/voicebox/internal/langtag"
	"github.com/nadzzz/voicebox/internal/modelcache"
	"github.com/nadzzz/voicebox/internal/tts"
)

// Synthesizer implements tts.Synthesizer over a language catalog.
type Synthesizer struct {
	lang         string
	defaultModel string
	opts         tts.Options
	catalog      *catalog.Catalog
	cache        *modelcache.Cache
}

// New creates a backend for lang using the base catalog. The default model
// is loaded into cache before New returns.
func New(ctx context.Context, lang string, opts tts.Options, cache *modelcache.Cache) (*Synthesizer, error) {
	return NewWithCatalog(ctx, lang, opts, cache, catalog.Coqui())
}

// NewWithCatalog is New with an explicit catalog.
func NewWithCatalog(ctx context.Context, lang string, opts tts.Options, cache *modelcache.Cache, cat *catalog.Catalog) (*Synthesizer, error) {
	if lang == "" {
		lang = catalog.DefaultLang
	}

	model := opts.Model
	if model == "" {
		model, _ = cat.Default(lang)
	}
	if model == "" {
		return nil, fmt.Errorf("%w: %s, pass 'model' explicitly in config", tts.ErrUnsupportedLanguage, lang)
	}
	if isFile(model) {
		return nil, fmt.Errorf("%w: model loading from file %q", engine.ErrUnsupportedOperation, model)
	}

	s := &Synthesizer{
		lang:         lang,
		defaultModel: model,
		opts:         opts,
		catalog:      cat,
		cache:        cache,
	}

	// Warm up so the first request does not pay the load.
	if _, err := cache.GetOrLoad(ctx, model, opts.GPU); err != nil {
		return nil, err
	}

	slog.Info("coqui backend ready", "lang", lang, "default_model", model, "gpu", opts.GPU)
	return s, nil
}

// DefaultModel returns the model used when a request names no language.
func (s *Synthesizer) DefaultModel() string { return s.defaultModel }

// Language returns the backend's default language.
func (s *Synthesizer) Language() string { return s.lang }

// AvailableLanguages returns the normalized catalog languages.
func (s *Synthesizer) AvailableLanguages() []string { return s.catalog.Languages() }

// Synthesize renders req with the model resolved for it.
func (s *Synthesizer) Synthesize(ctx context.Context, req tts.Request) (*tts.Result, error) {
	model, lang, err := s.resolve(req)
	if err != nil {
		return nil, err
	}

	entry, err := s.cache.GetOrLoad(ctx, model, s.opts.GPU)
	if err != nil {
		return nil, err
	}

	voice, macro, err := tts.Validate(entry.Capabilities, req.Voice, lang)
	if err != nil {
		return nil, err
	}

	opts := engine.SynthesizeOpts{Language: macro, Speaker: voice}

	reference := req.ReferenceSpeaker
	if reference == "" {
		reference = s.opts.ReferenceSpeaker
	}

	slog.Debug("coqui synthesize",
		"model", model,
		"language", macro,
		"speaker", voice,
		"text_length", len(req.Text),
		"cross_voice", reference != "" && s.opts.UseCrossVoiceMode)

	if reference != "" && s.opts.UseCrossVoiceMode {
		err = entry.Model.SynthesizeWithConversionToFile(ctx, req.Text, reference, req.OutputPath, opts)
	} else {
		opts.ReferenceAudio = reference
		err = entry.Model.SynthesizeToFile(ctx, req.Text, req.OutputPath, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("synthesizing with %s: %w", model, err)
	}

	return &tts.Result{Path: req.OutputPath}, nil
}

// resolve picks the model and the effective language tag for req.
func (s *Synthesizer) resolve(req tts.Request) (model, lang string, err error) {
	switch {
	case req.ModelOverride != "":
		if isFile(req.ModelOverride) {
			return "", "", fmt.Errorf("%w: model loading from file %q", engine.ErrUnsupportedOperation, req.ModelOverride)
		}
		lang = req.Language
		if lang == "" {
			lang = s.lang
		}
		return req.ModelOverride, lang, nil
	case req.Language == "":
		return s.defaultModel, s.lang, nil
	}

	lang = langtag.Normalize(req.Language, false)
	model, ok := s.catalog.Default(lang)
	if !ok {
		return "", "", fmt.Errorf("%w: %s", tts.ErrUnsupportedLanguage, req.Language)
	}
	return model, lang, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
