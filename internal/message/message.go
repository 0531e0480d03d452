// Package message defines the wire types of the voicebox service surface.
package message

import (
	"encoding/base64"
	"time"
)

// SynthesisRequest asks for one utterance to be rendered.
type SynthesisRequest struct {
	// ID is a unique identifier for this request (UUID). Assigned when empty.
	ID string `json:"id,omitempty"`

	// Text is the text to speak.
	Text string `json:"text"`

	// Language is a BCP-47 style tag (e.g., "en-US", "pt-br", "ewe").
	// The backend's configured language is used when empty.
	Language string `json:"language,omitempty"`

	// Voice selects a speaker of a multi-speaker model.
	Voice string `json:"voice,omitempty"`

	// ReferenceSpeaker is the path of a wav file whose voice is cloned.
	ReferenceSpeaker string `json:"reference_speaker,omitempty"`

	// Model bypasses catalog resolution and names the model to use.
	Model string `json:"model,omitempty"`

	// Backend selects a registered backend other than the configured one.
	Backend string `json:"backend,omitempty"`

	// ReturnAudio embeds the rendered file in the result as base64.
	ReturnAudio bool `json:"return_audio,omitempty"`

	// Timestamp is when the request was received.
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// SynthesisResult is the outcome of a synthesis request.
type SynthesisResult struct {
	// RequestID is the request's ID.
	RequestID string `json:"request_id"`

	// Backend is the backend that handled the request.
	Backend string `json:"backend"`

	// Path is where the audio file was written.
	Path string `json:"path,omitempty"`

	// Phonemes is the phoneme sequence, when the backend produces one.
	Phonemes []string `json:"phonemes,omitempty"`

	// Audio is the rendered file as a base64-encoded string.
	// Populated when return_audio is set.
	Audio string `json:"audio,omitempty"`

	// ContentType is the MIME type of Audio.
	ContentType string `json:"content_type,omitempty"`

	// DurationMS is the wall time spent handling the request.
	DurationMS int64 `json:"duration_ms"`

	// Error is set if synthesis failed.
	Error string `json:"error,omitempty"`
}

// SetAudioBytes base64-encodes raw audio bytes into Audio.
func (r *SynthesisResult) SetAudioBytes(audio []byte, contentType string) {
	if len(audio) > 0 {
		r.Audio = base64.StdEncoding.EncodeToString(audio)
		r.ContentType = contentType
	}
}

// LanguagesResult lists the languages a backend advertises.
type LanguagesResult struct {
	Backend   string   `json:"backend"`
	Languages []string `json:"languages"`
}

// ErrorResponse is the body of a failed HTTP request.
type ErrorResponse struct {
	Error string `json:"error"`
}
