// Package freevc chains a base backend with a FreeVC voice-conversion model:
// the base backend renders the text to an intermediate file, which is then
// re-rendered in the timbre of a reference speaker.
package freevc

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/nadzzz/voicebox/internal/catalog"
	"github.com/nadzzz/voicebox/internal/modelcache"
	"github.com/nadzzz/voicebox/internal/tts"
	"github.com/nadzzz/voicebox/internal/tts/registry"
)

// DefaultBackend is the base backend used when none is configured.
const DefaultBackend = "coqui"

// intermediateSuffix is inserted before the extension of the output path to
// name the base backend's file.
const intermediateSuffix = "_original"

// BackendLoader locates base backends by name.
type BackendLoader interface {
	Lookup(name string) (registry.Constructor, error)
}

// Synthesizer converts the output of a base backend to a reference voice.
type Synthesizer struct {
	base      tts.Synthesizer
	baseName  string
	vc        *modelcache.Entry
	reference string
	voice     string
}

// New builds the base backend named by opts.BackendName and loads the
// conversion model. opts.ReferenceSpeaker is required.
func New(ctx context.Context, lang string, opts tts.Options, cache *modelcache.Cache, backends BackendLoader) (*Synthesizer, error) {
	if opts.ReferenceSpeaker == "" {
		return nil, fmt.Errorf("%w: 'reference_speaker' must be set to the absolute path of a wav file containing the voice to clone",
			tts.ErrMissingReferenceAudio)
	}

	name := opts.BackendName
	if name == "" {
		name = DefaultBackend
	}
	build, err := backends.Lookup(name)
	if err != nil {
		return nil, err
	}

	// Conversion happens here; the base renders the plain voice.
	baseOpts := opts
	baseOpts.ReferenceSpeaker = ""
	baseOpts.UseCrossVoiceMode = false
	baseOpts.BackendName = ""

	base, err := build(ctx, lang, baseOpts, cache)
	if err != nil {
		return nil, fmt.Errorf("building base backend %s: %w", name, err)
	}

	vc, err := cache.GetOrLoad(ctx, catalog.FreeVCModel, opts.GPU)
	if err != nil {
		return nil, err
	}

	slog.Info("freevc backend ready", "base", name, "reference", opts.ReferenceSpeaker)
	return &Synthesizer{
		base:      base,
		baseName:  name,
		vc:        vc,
		reference: opts.ReferenceSpeaker,
		voice:     opts.Voice,
	}, nil
}

// AvailableLanguages returns the languages of the base backend.
func (s *Synthesizer) AvailableLanguages() []string {
	return s.base.AvailableLanguages()
}

// Synthesize renders req with the base backend and converts the result.
// Errors from the base backend are returned as they are.
func (s *Synthesizer) Synthesize(ctx context.Context, req tts.Request) (*tts.Result, error) {
	tmp := IntermediatePath(req.OutputPath)

	baseReq := req
	baseReq.OutputPath = tmp
	baseReq.ReferenceSpeaker = ""
	if baseReq.Voice == "" {
		baseReq.Voice = s.voice
	}

	res, err := s.base.Synthesize(ctx, baseReq)
	if err != nil {
		return nil, err
	}

	reference := req.ReferenceSpeaker
	if reference == "" {
		reference = s.reference
	}

	slog.Debug("freevc convert", "base", s.baseName, "source", res.Path, "reference", reference, "output", req.OutputPath)
	if err := s.vc.Model.ConvertVoiceToFile(ctx, res.Path, reference, req.OutputPath); err != nil {
		return nil, fmt.Errorf("%w: %w", tts.ErrConversionFailed, err)
	}

	return &tts.Result{Path: req.OutputPath, Phonemes: res.Phonemes}, nil
}

// IntermediatePath inserts the intermediate suffix before the extension of
// path ("out.wav" -> "out_original.wav").
func IntermediatePath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + intermediateSuffix + ext
}
