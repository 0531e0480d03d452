package xtts

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadzzz/voicebox/internal/catalog"
	"github.com/nadzzz/voicebox/internal/engine"
	"github.com/nadzzz/voicebox/internal/engine/enginetest"
	"github.com/nadzzz/voicebox/internal/modelcache"
	"github.com/nadzzz/voicebox/internal/tts"
)

func xttsLoader() *enginetest.Loader {
	return enginetest.New().WithModel(catalog.XTTSv2Model, engine.Capabilities{
		MultiSpeaker: true,
		Speakers:     []string{"Ana Florence", "Claribel Dervla"},
		MultiLingual: true,
		Languages:    catalog.XTTSLanguages,
	})
}

func TestNew_LoadsDefaultModel(t *testing.T) {
	loader := xttsLoader()
	cache := modelcache.New(loader)

	_, err := New(context.Background(), "en-us", tts.Options{}, cache)
	require.NoError(t, err)
	assert.True(t, cache.Contains(catalog.XTTSv2Model))
}

func TestNew_DefaultLanguageOutsideSet(t *testing.T) {
	_, err := New(context.Background(), "fi", tts.Options{}, modelcache.New(xttsLoader()))
	assert.ErrorIs(t, err, tts.ErrUnsupportedLanguage)
}

func TestSynthesize(t *testing.T) {
	loader := xttsLoader()
	s, err := New(context.Background(), "en-us", tts.Options{}, modelcache.New(loader))
	require.NoError(t, err)
	dir := t.TempDir()

	_, err = s.Synthesize(context.Background(), tts.Request{Text: "ola", Language: "pt-BR", Voice: "Claribel Dervla", OutputPath: filepath.Join(dir, "a.wav")})
	require.NoError(t, err)

	call, ok := loader.LastCall()
	require.True(t, ok)
	assert.Equal(t, catalog.XTTSv2Model, call.ModelID)
	assert.Equal(t, engine.SynthesizeOpts{Language: "pt", Speaker: "Claribel Dervla"}, call.Opts)

	_, err = s.Synthesize(context.Background(), tts.Request{Text: "hi", OutputPath: filepath.Join(dir, "b.wav")})
	require.NoError(t, err)
	call, _ = loader.LastCall()
	assert.Equal(t, engine.SynthesizeOpts{Language: "en", Speaker: "Ana Florence"}, call.Opts)

	assert.Equal(t, 1, loader.Loads(catalog.XTTSv2Model))
}

func TestSynthesize_UnsupportedLanguage(t *testing.T) {
	loader := xttsLoader()
	s, err := New(context.Background(), "en", tts.Options{}, modelcache.New(loader))
	require.NoError(t, err)

	_, err = s.Synthesize(context.Background(), tts.Request{Text: "moi", Language: "fi", OutputPath: filepath.Join(t.TempDir(), "x.wav")})
	assert.ErrorIs(t, err, tts.ErrUnsupportedLanguage)
	assert.Empty(t, loader.Calls())
}

func TestAvailableLanguages(t *testing.T) {
	s, err := New(context.Background(), "en", tts.Options{}, modelcache.New(xttsLoader()))
	require.NoError(t, err)

	langs := s.AvailableLanguages()
	assert.Len(t, langs, len(catalog.XTTSLanguages))
	assert.Contains(t, langs, "ja")
}
