// Package engine defines the boundary between voicebox and the neural
// speech-synthesis engines that actually render audio.
//
// voicebox never looks inside a model. It asks a Loader for a Model by
// identifier, reads the model's Capabilities once, and calls one of the
// rendering primitives with a text and a destination file.
package engine

import (
	"context"
	"errors"
)

var (
	// ErrModelLoad is returned when an engine fails to initialize a model
	// (missing weights, unreachable server, device errors).
	ErrModelLoad = errors.New("model load failed")

	// ErrUnsupportedOperation is returned for operations an engine or a
	// configuration cannot perform, such as loading a model from a local
	// file path.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// Capabilities are the declared traits of a loaded model.
//
// Speakers is non-empty iff MultiSpeaker, Languages is non-empty iff
// MultiLingual. The first speaker is the model's default voice.
type Capabilities struct {
	MultiSpeaker bool
	Speakers     []string
	MultiLingual bool
	Languages    []string
}

// HasSpeaker reports whether voice is one of the declared speakers.
func (c Capabilities) HasSpeaker(voice string) bool {
	for _, s := range c.Speakers {
		if s == voice {
			return true
		}
	}
	return false
}

// HasLanguage reports whether lang is one of the declared languages.
func (c Capabilities) HasLanguage(lang string) bool {
	for _, l := range c.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// SynthesizeOpts are the optional rendering parameters. Empty fields are
// not forwarded to the engine.
type SynthesizeOpts struct {
	// Language is the macro-language code, set only for multi-lingual models.
	Language string

	// Speaker is the voice id, set only for multi-speaker models.
	Speaker string

	// ReferenceAudio is a path to a short clip to clone the voice from.
	ReferenceAudio string
}

// Loader instantiates models by identifier.
type Loader interface {
	Load(ctx context.Context, modelID string) (Model, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, modelID string) (Model, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, modelID string) (Model, error) {
	return f(ctx, modelID)
}

// Model is a loaded synthesis model.
type Model interface {
	// Capabilities returns the declared speaker and language traits.
	Capabilities() Capabilities

	// SynthesizeToFile renders text into an audio file at path, replacing
	// any existing file.
	SynthesizeToFile(ctx context.Context, text, path string, opts SynthesizeOpts) error

	// SynthesizeWithConversionToFile renders text and converts it to the
	// timbre of the speaker in referencePath in one pass.
	SynthesizeWithConversionToFile(ctx context.Context, text, referencePath, path string, opts SynthesizeOpts) error

	// ConvertVoiceToFile re-renders sourcePath in the timbre of the speaker
	// in referencePath.
	ConvertVoiceToFile(ctx context.Context, sourcePath, referencePath, path string) error

	// PlaceOnAccelerator moves the model to an accelerator device. It is
	// called at most once, right after loading.
	PlaceOnAccelerator(ctx context.Context) error
}
