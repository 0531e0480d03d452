// Package http implements the HTTP transport for voicebox.
//
// This transport exposes a REST API for synthesis and language discovery and
// serves the OpenAPI docs through Swagger UI. It is best suited for web
// clients, home automation and services that prefer HTTP.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/nadzzz/voicebox/internal/dispatch"
	"github.com/nadzzz/voicebox/internal/engine"
	"github.com/nadzzz/voicebox/internal/message"
	"github.com/nadzzz/voicebox/internal/transport"
	"github.com/nadzzz/voicebox/internal/tts"
)

// maxBodyBytes bounds a JSON request body.
const maxBodyBytes = 1 << 20

// Transport implements transport.Transport over HTTP.
type Transport struct {
	port   int
	server *http.Server
}

// New creates a new HTTP transport on the given port.
func New(port int) *Transport {
	return &Transport{port: port}
}

// Name returns the transport identifier.
func (t *Transport) Name() string { return "http" }

// Routes builds the request multiplexer for handler.
func Routes(handler transport.Handler) http.Handler {
	mux := http.NewServeMux()

	// POST /synthesize renders text to a wav file.
	mux.HandleFunc("POST /synthesize", func(w http.ResponseWriter, r *http.Request) {
		handleSynthesize(w, r, handler)
	})

	// GET /languages lists the languages of a backend.
	mux.HandleFunc("GET /languages", func(w http.ResponseWriter, r *http.Request) {
		handleLanguages(w, r, handler)
	})

	// Swagger UI serves the registered OpenAPI docs.
	mux.Handle("GET /swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return mux
}

// Listen starts the HTTP server and routes incoming requests to the handler.
func (t *Transport) Listen(ctx context.Context, handler transport.Handler) error {
	t.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", t.port),
		Handler:           Routes(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("http transport listening", "port", t.port)

	go func() {
		<-ctx.Done()
		slog.Info("http transport shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = t.server.Shutdown(shutdownCtx)
	}()

	if err := t.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("http listen: %w", err)
	}
	return nil
}

// handleSynthesize processes a POST /synthesize request.
//
// @Summary     Synthesize speech
// @Description Renders the text with the configured backend (or the one named in the request) and writes a wav
// @Description file to the output directory. The file is embedded as base64 when return_audio is set.
// @Tags        synthesis
// @Accept      json
// @Produce     json
// @Param       request  body      message.SynthesisRequest  true  "Synthesis request"
// @Success     200  {object}  message.SynthesisResult  "Rendered audio"
// @Failure     400  {object}  message.ErrorResponse    "Invalid request body or empty text"
// @Failure     404  {object}  message.SynthesisResult  "Unknown backend"
// @Failure     422  {object}  message.SynthesisResult  "Unsupported language, speaker or reference audio"
// @Failure     500  {object}  message.SynthesisResult  "Model load or synthesis failure"
// @Failure     501  {object}  message.SynthesisResult  "Operation not supported by the engine"
// @Router      /synthesize [post]
func handleSynthesize(w http.ResponseWriter, r *http.Request, handler transport.Handler) {
	var req message.SynthesisRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, message.ErrorResponse{Error: "invalid json: " + err.Error()})
		return
	}

	result, err := handler.Synthesize(r.Context(), &req)
	if err != nil {
		status := StatusFor(err)
		if status >= http.StatusInternalServerError {
			slog.Error("synthesis failed", "request_id", req.ID, "error", err)
		}
		if result == nil {
			writeJSON(w, status, message.ErrorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, status, result)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleLanguages processes a GET /languages request.
//
// @Summary     List languages
// @Description Lists the normalized language tags a backend advertises.
// @Tags        synthesis
// @Produce     json
// @Param       backend  query     string  false  "Backend name (defaults to the configured backend)"
// @Success     200  {object}  message.LanguagesResult
// @Failure     404  {object}  message.ErrorResponse  "Unknown backend"
// @Failure     500  {object}  message.ErrorResponse  "Backend could not be built"
// @Router      /languages [get]
func handleLanguages(w http.ResponseWriter, r *http.Request, handler transport.Handler) {
	res, err := handler.Languages(r.Context(), r.URL.Query().Get("backend"))
	if err != nil {
		writeJSON(w, StatusFor(err), message.ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// StatusFor maps a synthesis error to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, dispatch.ErrEmptyText):
		return http.StatusBadRequest
	case errors.Is(err, tts.ErrBackendNotFound):
		return http.StatusNotFound
	case errors.Is(err, tts.ErrUnsupportedLanguage),
		errors.Is(err, tts.ErrInvalidSpeaker),
		errors.Is(err, tts.ErrInvalidLanguageForModel),
		errors.Is(err, tts.ErrMissingReferenceAudio):
		return http.StatusUnprocessableEntity
	case errors.Is(err, engine.ErrUnsupportedOperation):
		return http.StatusNotImplemented
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Close gracefully shuts down the HTTP server.
func (t *Transport) Close() error {
	if t.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return t.server.Shutdown(ctx)
	}
	return nil
}
