// Package transport defines the interface for pluggable request transports.
//
// Each transport (HTTP, gRPC) implements this interface and is started by the
// daemon with the dispatcher as its handler. Transports don't care how a
// request is rendered; they only work with the Handler contract.
package transport

import (
	"context"

	"github.com/nadzzz/voicebox/internal/message"
)

// Handler serves requests arriving on any transport. The dispatcher
// implements it.
type Handler interface {
	// Synthesize renders one request. On failure the result carries the
	// error text and err is the typed error.
	Synthesize(ctx context.Context, req *message.SynthesisRequest) (*message.SynthesisResult, error)

	// Languages lists the languages of backend, or of the configured backend
	// when backend is empty.
	Languages(ctx context.Context, backend string) (*message.LanguagesResult, error)
}

// Transport is the interface that every transport adapter must implement.
type Transport interface {
	// Name returns the transport identifier (e.g., "grpc", "http").
	Name() string

	// Listen starts accepting requests and dispatches them to the handler.
	// It blocks until the context is cancelled.
	Listen(ctx context.Context, handler Handler) error

	// Close gracefully shuts down the transport, draining in-flight work.
	Close() error
}
