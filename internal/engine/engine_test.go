package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadzzz/voicebox/internal/engine"
	"github.com/nadzzz/voicebox/internal/engine/enginetest"
)

func TestCapabilities(t *testing.T) {
	caps := engine.Capabilities{
		MultiSpeaker: true,
		Speakers:     []string{"a", "b"},
		MultiLingual: true,
		Languages:    []string{"en", "fr"},
	}

	assert.True(t, caps.HasSpeaker("b"))
	assert.False(t, caps.HasSpeaker("c"))
	assert.True(t, caps.HasLanguage("fr"))
	assert.False(t, caps.HasLanguage("de"))

	var none engine.Capabilities
	assert.False(t, none.HasSpeaker(""))
	assert.False(t, none.HasLanguage(""))
}

func TestLoaderFunc(t *testing.T) {
	stub := enginetest.New()
	var seen string
	loader := engine.LoaderFunc(func(ctx context.Context, id string) (engine.Model, error) {
		seen = id
		return stub.Load(ctx, id)
	})

	m, err := loader.Load(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, "m1", seen)
	assert.Equal(t, engine.Capabilities{}, m.Capabilities())
	assert.Equal(t, 1, stub.Loads("m1"))
}
