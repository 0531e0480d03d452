package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadzzz/voicebox/internal/modelcache"
	"github.com/nadzzz/voicebox/internal/tts"
)

type nopSynth struct{ lang string }

func (n nopSynth) Synthesize(context.Context, tts.Request) (*tts.Result, error) {
	return &tts.Result{}, nil
}

func (n nopSynth) AvailableLanguages() []string { return []string{n.lang} }

func nopConstructor(_ context.Context, lang string, _ tts.Options, _ *modelcache.Cache) (tts.Synthesizer, error) {
	return nopSynth{lang: lang}, nil
}

func TestRegister(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("nop", nopConstructor))

	err := r.Register("nop", nopConstructor)
	assert.ErrorContains(t, err, "already registered")

	assert.Error(t, r.Register("", nopConstructor))
	assert.Error(t, r.Register("nil", nil))

	assert.Equal(t, []string{"nop"}, r.Names())
}

func TestLookup_NotFound(t *testing.T) {
	r := New()
	_, err := r.Lookup("missing")
	assert.ErrorIs(t, err, tts.ErrBackendNotFound)

	_, err = r.Build(context.Background(), "missing", "en", tts.Options{}, nil)
	assert.ErrorIs(t, err, tts.ErrBackendNotFound)
}

func TestBuild(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("nop", nopConstructor))

	s, err := r.Build(context.Background(), "nop", "fr", tts.Options{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"fr"}, s.AvailableLanguages())
}
