package wyoming

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadzzz/voicebox/internal/engine"
)

// fakeServer answers describe with a fixed voice list and synthesize with
// two PCM chunks.
type fakeServer struct {
	ln net.Listener
	wg sync.WaitGroup

	mu       sync.Mutex
	requests []map[string]any
	failWith string
}

func startFakeServer(t *testing.T) *fakeServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &fakeServer{ln: ln}
	s.wg.Add(1)
	go s.serve()
	t.Cleanup(func() {
		_ = ln.Close()
		s.wg.Wait()
	})
	return s
}

func (s *fakeServer) addr() string { return s.ln.Addr().String() }

func (s *fakeServer) serve() {
	defer s.wg.Done()
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer conn.Close()
			s.handle(conn)
		}()
	}
}

func (s *fakeServer) handle(conn net.Conn) {
	evt, _, err := readEvent(conn)
	if err != nil {
		return
	}

	switch evt.Type {
	case typeDescribe:
		_ = writeEvent(conn, event{Type: "run-pipeline"}, nil)
		_ = writeEvent(conn, event{Type: typeInfo, Data: map[string]any{
			"tts": []any{map[string]any{
				"name": "piper",
				"voices": []any{
					map[string]any{"name": "en_US-lessac-medium", "languages": []any{"en_US"}},
					map[string]any{
						"name":      "multi-vctk",
						"languages": []any{"en", "fr-FR", "en-GB"},
						"speakers":  []any{map[string]any{"name": "p225"}, map[string]any{"name": "p232"}},
					},
				},
			}},
		}}, nil)

	case typeSynthesize:
		s.mu.Lock()
		s.requests = append(s.requests, evt.Data)
		fail := s.failWith
		s.mu.Unlock()

		if fail != "" {
			_ = writeEvent(conn, event{Type: typeError, Data: map[string]any{"text": fail}}, nil)
			return
		}
		_ = writeEvent(conn, event{Type: typeAudioStart, Data: map[string]any{"rate": 16000, "width": 2, "channels": 1}}, nil)
		_ = writeEvent(conn, event{Type: typeAudioChunk}, []byte{1, 2, 3, 4})
		_ = writeEvent(conn, event{Type: typeAudioChunk}, []byte{5, 6})
		_ = writeEvent(conn, event{Type: typeAudioStop}, nil)
	}
}

func (s *fakeServer) lastRequest() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return nil
	}
	return s.requests[len(s.requests)-1]
}

func TestEventRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeEvent(&buf, event{Type: typeAudioChunk, Data: map[string]any{"rate": 22050}}, []byte("pcm")))

	evt, payload, err := readEvent(&buf)
	require.NoError(t, err)
	assert.Equal(t, typeAudioChunk, evt.Type)
	assert.Equal(t, float64(22050), evt.Data["rate"])
	assert.Equal(t, []byte("pcm"), payload)
}

func TestReadEvent_BadHeader(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no separator", "garbage\n"},
		{"negative json length", "-5 0\n{}\n"},
		{"negative payload length", "2 -1\n{}\n"},
		{"json length over cap", fmt.Sprintf("%d 0\n{}\n", maxJSONBytes+1)},
		{"payload length over cap", fmt.Sprintf("2 %d\n{}\n", maxPayloadBytes+1)},
		{"header too long", strings.Repeat("1", maxHeaderBytes+1) + " 0\n"},
		{"truncated", "10 0\n{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				_, _, err := readEvent(strings.NewReader(tt.input))
				assert.Error(t, err)
			})
		})
	}
}

func TestLoad_MalformedServerReply(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		_, _, _ = readEvent(conn)
		_, _ = conn.Write([]byte("-5 0\n{}\n"))
	}()

	_, err = NewLoader(Config{Endpoint: ln.Addr().String()}).Load(context.Background(), "v")
	assert.ErrorContains(t, err, "out of range")
}

func TestPCMToWAV(t *testing.T) {
	wav := pcmToWAV([]byte{1, 2, 3, 4}, 16000, 1, 2)
	require.Len(t, wav, 48)
	assert.Equal(t, "RIFF", string(wav[0:4]))
	assert.Equal(t, "WAVE", string(wav[8:12]))
	assert.Equal(t, uint32(16000), binary.LittleEndian.Uint32(wav[24:28]))
	assert.Equal(t, uint32(4), binary.LittleEndian.Uint32(wav[40:44]))
}

func TestLoader_EndpointFor(t *testing.T) {
	l := NewLoader(Config{
		Endpoint:  "tcp://piper:10200",
		Endpoints: map[string]string{"fr_FR-siwis-medium": "http://piper-fr:10200"},
	})
	assert.Equal(t, "piper:10200", l.EndpointFor("en_US-lessac-medium"))
	assert.Equal(t, "piper-fr:10200", l.EndpointFor("fr_FR-siwis-medium"))
}

func TestLoad_NoEndpoint(t *testing.T) {
	_, err := NewLoader(Config{}).Load(context.Background(), "x")
	assert.Error(t, err)
}

func TestLoad_Capabilities(t *testing.T) {
	srv := startFakeServer(t)
	l := NewLoader(Config{Endpoint: srv.addr()})
	ctx := context.Background()

	single, err := l.Load(ctx, "en_US-lessac-medium")
	require.NoError(t, err)
	assert.Equal(t, engine.Capabilities{}, single.Capabilities())

	multi, err := l.Load(ctx, "multi-vctk")
	require.NoError(t, err)
	assert.Equal(t, engine.Capabilities{
		MultiSpeaker: true,
		Speakers:     []string{"p225", "p232"},
		MultiLingual: true,
		Languages:    []string{"en", "fr"},
	}, multi.Capabilities())

	_, err = l.Load(ctx, "missing-voice")
	assert.ErrorContains(t, err, "not offered")
}

func TestSynthesizeToFile(t *testing.T) {
	srv := startFakeServer(t)
	m, err := NewLoader(Config{Endpoint: srv.addr()}).Load(context.Background(), "multi-vctk")
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.wav")
	require.NoError(t, os.WriteFile(out, []byte("stale"), 0o644))

	err = m.SynthesizeToFile(context.Background(), "hello", out, engine.SynthesizeOpts{Language: "fr", Speaker: "p232"})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, pcmToWAV([]byte{1, 2, 3, 4, 5, 6}, 16000, 1, 2), data)

	req := srv.lastRequest()
	require.NotNil(t, req)
	assert.Equal(t, "hello", req["text"])
	assert.Equal(t, map[string]any{"name": "multi-vctk", "language": "fr", "speaker": "p232"}, req["voice"])
}

func TestSynthesizeToFile_ServerError(t *testing.T) {
	srv := startFakeServer(t)
	srv.mu.Lock()
	srv.failWith = "voice exploded"
	srv.mu.Unlock()
	m, err := NewLoader(Config{Endpoint: srv.addr()}).Load(context.Background(), "en_US-lessac-medium")
	require.NoError(t, err)

	err = m.SynthesizeToFile(context.Background(), "hi", filepath.Join(t.TempDir(), "x.wav"), engine.SynthesizeOpts{})
	assert.ErrorContains(t, err, "voice exploded")
}

func TestSynthesizeToFile_Cancelled(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	// Accept and never answer.
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			defer conn.Close()
			time.Sleep(2 * time.Second)
		}
	}()

	m := &Model{id: "v", endpoint: ln.Addr().String(), loader: NewLoader(Config{})}
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	err = m.SynthesizeToFile(ctx, "hi", filepath.Join(t.TempDir(), "x.wav"), engine.SynthesizeOpts{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUnsupportedOperations(t *testing.T) {
	m := &Model{id: "v", loader: NewLoader(Config{})}
	ctx := context.Background()

	err := m.SynthesizeToFile(ctx, "hi", "x.wav", engine.SynthesizeOpts{ReferenceAudio: "/ref.wav"})
	assert.ErrorIs(t, err, engine.ErrUnsupportedOperation)
	assert.ErrorIs(t, m.SynthesizeWithConversionToFile(ctx, "hi", "/ref.wav", "x.wav", engine.SynthesizeOpts{}), engine.ErrUnsupportedOperation)
	assert.ErrorIs(t, m.ConvertVoiceToFile(ctx, "a.wav", "/ref.wav", "x.wav"), engine.ErrUnsupportedOperation)
	assert.ErrorIs(t, m.PlaceOnAccelerator(ctx), engine.ErrUnsupportedOperation)
}
