// Package xtts restricts the base backend to the languages the XTTS
// cross-lingual models speak.
package xtts

import (
	"context"
	"fmt"
	"slices"

	"github.com/nadzzz/voicebox/internal/catalog"
	"github.com/nadzzz/voicebox/internal/langtag"
	"github.com/nadzzz/voicebox/internal/modelcache"
	"github.com/nadzzz/voicebox/internal/tts"
	"github.com/nadzzz/voicebox/internal/tts/coqui"
)

// Synthesizer renders every supported language with one XTTS model.
type Synthesizer struct {
	lang  string
	langs []string
	model *coqui.Synthesizer
}

// New creates an XTTS backend. opts.Model selects the XTTS model, default
// xtts_v2. The model is loaded before New returns.
func New(ctx context.Context, lang string, opts tts.Options, cache *modelcache.Cache) (*Synthesizer, error) {
	if lang == "" {
		lang = catalog.DefaultLang
	}
	if opts.Model == "" {
		opts.Model = catalog.XTTSv2Model
	}

	langs := make([]string, 0, len(catalog.XTTSLanguages))
	for _, l := range catalog.XTTSLanguages {
		langs = append(langs, langtag.Macro(l))
	}
	slices.Sort(langs)

	s := &Synthesizer{lang: lang, langs: langs}
	if err := s.check(lang); err != nil {
		return nil, err
	}

	base, err := coqui.NewWithCatalog(ctx, lang, opts, cache, catalog.XTTS(opts.Model))
	if err != nil {
		return nil, err
	}
	s.model = base
	return s, nil
}

func (s *Synthesizer) check(lang string) error {
	if _, found := slices.BinarySearch(s.langs, langtag.Macro(lang)); !found {
		return fmt.Errorf("%w: %s is not supported for selected model, valid: %v",
			tts.ErrUnsupportedLanguage, lang, s.langs)
	}
	return nil
}

// AvailableLanguages returns the XTTS languages.
func (s *Synthesizer) AvailableLanguages() []string {
	return append([]string(nil), s.langs...)
}

// Synthesize rejects languages outside the XTTS set and delegates the rest.
func (s *Synthesizer) Synthesize(ctx context.Context, req tts.Request) (*tts.Result, error) {
	lang := req.Language
	if lang == "" {
		lang = s.lang
	}
	if err := s.check(lang); err != nil {
		return nil, err
	}

	return s.model.Synthesize(ctx, tts.Request{
		Text:             req.Text,
		OutputPath:       req.OutputPath,
		Language:         lang,
		Voice:            req.Voice,
		ReferenceSpeaker: req.ReferenceSpeaker,
		ModelOverride:    req.ModelOverride,
	})
}
