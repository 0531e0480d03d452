package tts

import "errors"

var (
	// ErrUnsupportedLanguage means no model is cataloged for a language.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrInvalidSpeaker means a voice is not among a multi-speaker model's
	// speakers.
	ErrInvalidSpeaker = errors.New("invalid speaker")

	// ErrInvalidLanguageForModel means a language is not among a
	// multi-lingual model's languages.
	ErrInvalidLanguageForModel = errors.New("invalid language for model")

	// ErrMissingReferenceAudio means voice conversion was configured
	// without a reference clip.
	ErrMissingReferenceAudio = errors.New("missing reference audio")

	// ErrBackendNotFound means a named backend is not registered.
	ErrBackendNotFound = errors.New("backend not found")

	// ErrConversionFailed means the voice-conversion stage failed after a
	// successful base synthesis.
	ErrConversionFailed = errors.New("voice conversion failed")
)
