// Package tts defines the contract shared by every synthesis backend.
//
// A backend turns a Request into an audio file. Backends resolve which model
// renders the request, load it through the process-wide model cache, check
// the requested voice and language against what the model declares, and then
// render. Some backends wrap others (voice conversion, cross-lingual subsets,
// dynamically routed language families).
package tts

import "context"

// Request is a single synthesis request.
type Request struct {
	// Text is the sentence to render.
	Text string

	// OutputPath is where the audio file is written. An existing file is
	// overwritten.
	OutputPath string

	// Language is the requested language tag (e.g., "en-us"). Empty selects
	// the backend's default language and model.
	Language string

	// Voice is the requested speaker id for multi-speaker models.
	Voice string

	// ReferenceSpeaker is a path to a short clip of the voice to clone.
	ReferenceSpeaker string

	// ModelOverride bypasses catalog resolution.
	ModelOverride string
}

// Result is the outcome of a synthesis request.
type Result struct {
	// Path is the audio file written.
	Path string

	// Phonemes is always nil; no backend produces phoneme timing.
	Phonemes []string
}

// Options is the request-independent configuration of a backend.
type Options struct {
	// Model is an explicit model identifier, overriding catalog defaults.
	Model string

	// GPU requests accelerator placement for every model the backend loads.
	GPU bool

	// ReferenceSpeaker is the default reference clip for cloning and voice
	// conversion.
	ReferenceSpeaker string

	// UseCrossVoiceMode renders with the conversion-aware primitive when a
	// reference clip is available.
	UseCrossVoiceMode bool

	// BackendName names the delegate backend of wrapping backends.
	BackendName string

	// Voice is the default speaker of wrapping backends.
	Voice string
}

// Synthesizer converts text to an audio file.
type Synthesizer interface {
	// Synthesize renders req and returns the written file. It blocks for the
	// full duration of the synthesis.
	Synthesize(ctx context.Context, req Request) (*Result, error)

	// AvailableLanguages returns the normalized languages the backend can
	// resolve a model for.
	AvailableLanguages() []string
}
