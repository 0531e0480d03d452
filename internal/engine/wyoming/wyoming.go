// Package wyoming implements the synthesis engine over the Wyoming protocol.
//
// A Wyoming TTS server (piper, coqui-tts wrappers) listens on TCP and speaks
// newline-framed JSON events:
//
//	<json_length> <payload_length>\n
//	<json_bytes>\n
//	<payload_bytes>   (if payload_length > 0)
//
// A model identifier names a voice offered by a server. Loading a model asks
// the server to describe itself and records the voice's speakers and
// languages; each synthesis opens its own connection.
package wyoming

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strings"
	"time"

	"github.com/nadzzz/voicebox/internal/engine"
	"github.com/nadzzz/voicebox/internal/langtag"
)

// DefaultDialTimeout bounds the TCP connect when none is configured.
const DefaultDialTimeout = 10 * time.Second

// Config selects the servers a Loader talks to.
type Config struct {
	// Endpoint is the default host:port.
	Endpoint string
	// Endpoints maps model identifiers to dedicated host:port values. Keys
	// match case-insensitively.
	Endpoints   map[string]string
	DialTimeout time.Duration
}

// Loader implements engine.Loader against Wyoming servers.
type Loader struct {
	endpoint    string
	endpoints   map[string]string
	dialTimeout time.Duration
}

// NewLoader creates a Loader from cfg.
func NewLoader(cfg Config) *Loader {
	endpoints := make(map[string]string, len(cfg.Endpoints))
	for id, ep := range cfg.Endpoints {
		endpoints[strings.ToLower(id)] = cleanEndpoint(ep)
	}
	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = DefaultDialTimeout
	}
	return &Loader{
		endpoint:    cleanEndpoint(cfg.Endpoint),
		endpoints:   endpoints,
		dialTimeout: timeout,
	}
}

func cleanEndpoint(ep string) string {
	ep = strings.TrimPrefix(ep, "tcp://")
	ep = strings.TrimPrefix(ep, "http://")
	return ep
}

// EndpointFor returns the server address used for modelID.
func (l *Loader) EndpointFor(modelID string) string {
	if ep := l.endpoints[strings.ToLower(modelID)]; ep != "" {
		return ep
	}
	return l.endpoint
}

// Load implements engine.Loader.
func (l *Loader) Load(ctx context.Context, modelID string) (engine.Model, error) {
	endpoint := l.EndpointFor(modelID)
	if endpoint == "" {
		return nil, fmt.Errorf("no wyoming endpoint configured for model %q", modelID)
	}

	conn, err := l.dial(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if err := writeEvent(conn, event{Type: typeDescribe}, nil); err != nil {
		return nil, fmt.Errorf("sending describe event: %w", err)
	}

	var desc info
	for {
		evt, _, err := readEvent(conn)
		if err != nil {
			return nil, fmt.Errorf("reading wyoming event: %w", err)
		}
		if evt.Type == typeInfo {
			if err := decodeData(evt, &desc); err != nil {
				return nil, fmt.Errorf("decoding info: %w", err)
			}
			break
		}
		slog.Debug("wyoming event before info", "type", evt.Type)
	}

	v, ok := findVoice(desc, modelID)
	if !ok {
		return nil, fmt.Errorf("voice %q not offered by %s", modelID, endpoint)
	}

	return &Model{
		id:       modelID,
		endpoint: endpoint,
		caps:     capabilitiesOf(v),
		loader:   l,
	}, nil
}

func (l *Loader) dial(ctx context.Context, endpoint string) (net.Conn, error) {
	dialer := net.Dialer{Timeout: l.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", endpoint)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", endpoint, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	// Unblock reads when the caller gives up.
	stop := context.AfterFunc(ctx, func() { _ = conn.SetDeadline(time.Now()) })
	return &ctxConn{Conn: conn, stop: stop}, nil
}

type ctxConn struct {
	net.Conn
	stop func() bool
}

func (c *ctxConn) Close() error {
	c.stop()
	return c.Conn.Close()
}

func findVoice(desc info, name string) (voice, bool) {
	for _, p := range desc.TTS {
		for _, v := range p.Voices {
			if v.Name == name {
				return v, true
			}
		}
	}
	return voice{}, false
}

func capabilitiesOf(v voice) engine.Capabilities {
	var caps engine.Capabilities
	for _, s := range v.Speakers {
		caps.Speakers = append(caps.Speakers, s.Name)
	}
	caps.MultiSpeaker = len(caps.Speakers) > 0

	seen := make(map[string]bool, len(v.Languages))
	for _, l := range v.Languages {
		m := langtag.Macro(l)
		if !seen[m] {
			seen[m] = true
			caps.Languages = append(caps.Languages, m)
		}
	}
	if len(caps.Languages) > 1 {
		caps.MultiLingual = true
	} else {
		caps.Languages = nil
	}
	return caps
}

// Model is one voice on a Wyoming server.
type Model struct {
	id       string
	endpoint string
	caps     engine.Capabilities
	loader   *Loader
}

// Capabilities implements engine.Model.
func (m *Model) Capabilities() engine.Capabilities { return m.caps }

// SynthesizeToFile implements engine.Model. Cloning from reference audio is
// not part of the protocol.
func (m *Model) SynthesizeToFile(ctx context.Context, text, path string, opts engine.SynthesizeOpts) error {
	if opts.ReferenceAudio != "" {
		return fmt.Errorf("%w: voice cloning over wyoming", engine.ErrUnsupportedOperation)
	}
	if text == "" {
		return fmt.Errorf("empty text for synthesis")
	}

	v := map[string]any{"name": m.id}
	if opts.Language != "" {
		v["language"] = opts.Language
	}
	if opts.Speaker != "" {
		v["speaker"] = opts.Speaker
	}

	slog.Debug("wyoming synthesize", "model", m.id, "endpoint", m.endpoint,
		"text_length", len(text), "language", opts.Language, "speaker", opts.Speaker)

	conn, err := m.loader.dial(ctx, m.endpoint)
	if err != nil {
		return err
	}
	defer conn.Close()

	req := event{Type: typeSynthesize, Data: map[string]any{"text": text, "voice": v}}
	if err := writeEvent(conn, req, nil); err != nil {
		return fmt.Errorf("sending synthesize event: %w", err)
	}

	var (
		pcm        bytes.Buffer
		sampleRate = 22050
		channels   = 1
		width      = 2
	)
	for {
		evt, payload, err := readEvent(conn)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("reading wyoming event: %w", err)
		}

		switch evt.Type {
		case typeAudioStart:
			sampleRate = intField(evt.Data, "rate", sampleRate)
			channels = intField(evt.Data, "channels", channels)
			width = intField(evt.Data, "width", width)
		case typeAudioChunk:
			pcm.Write(payload)
		case typeAudioStop:
			slog.Debug("wyoming audio-stop", "model", m.id, "pcm_bytes", pcm.Len())
			if err := os.WriteFile(path, pcmToWAV(pcm.Bytes(), sampleRate, channels, width), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			return nil
		case typeError:
			msg := "unknown error"
			if s, ok := evt.Data["text"].(string); ok {
				msg = s
			}
			return fmt.Errorf("wyoming error: %s", msg)
		default:
			slog.Debug("wyoming unknown event", "type", evt.Type)
		}
	}
}

// SynthesizeWithConversionToFile implements engine.Model.
func (m *Model) SynthesizeWithConversionToFile(context.Context, string, string, string, engine.SynthesizeOpts) error {
	return fmt.Errorf("%w: conversion-aware synthesis over wyoming", engine.ErrUnsupportedOperation)
}

// ConvertVoiceToFile implements engine.Model.
func (m *Model) ConvertVoiceToFile(context.Context, string, string, string) error {
	return fmt.Errorf("%w: voice conversion over wyoming", engine.ErrUnsupportedOperation)
}

// PlaceOnAccelerator implements engine.Model. Placement is decided by the
// server.
func (m *Model) PlaceOnAccelerator(context.Context) error {
	return fmt.Errorf("%w: accelerator placement over wyoming", engine.ErrUnsupportedOperation)
}
