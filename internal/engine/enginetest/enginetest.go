// Package enginetest provides an in-memory engine for tests. It counts loads,
// records every rendering call and writes a small placeholder file so callers
// can assert on output artifacts.
package enginetest

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/nadzzz/voicebox/internal/engine"
)

// Call is one recorded rendering call.
type Call struct {
	Op            string // "synthesize", "synthesize_vc", "convert"
	ModelID       string
	Text          string
	Source        string
	ReferencePath string
	Path          string
	Opts          engine.SynthesizeOpts
}

// Loader is a counting engine.Loader. The zero value is not usable; use New.
type Loader struct {
	mu     sync.Mutex
	caps   map[string]engine.Capabilities
	fail   map[string]error
	loads  map[string]int
	models map[string]*Model
	calls  []Call

	total atomic.Int64

	// Gate, when set, blocks every Load until it is closed.
	Gate chan struct{}

	// SynthErr, ConvertErr and AccelErr are returned by the corresponding
	// model operations when non-nil.
	SynthErr   error
	ConvertErr error
	AccelErr   error
}

// New returns an empty stub loader. Unknown model ids load as single-speaker,
// single-language models.
func New() *Loader {
	return &Loader{
		caps:   make(map[string]engine.Capabilities),
		fail:   make(map[string]error),
		loads:  make(map[string]int),
		models: make(map[string]*Model),
	}
}

// WithModel declares the capabilities of modelID.
func (l *Loader) WithModel(modelID string, caps engine.Capabilities) *Loader {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.caps[modelID] = caps
	return l
}

// FailLoad makes every Load of modelID return err.
func (l *Loader) FailLoad(modelID string, err error) *Loader {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fail[modelID] = err
	return l
}

// Load implements engine.Loader.
func (l *Loader) Load(ctx context.Context, modelID string) (engine.Model, error) {
	if l.Gate != nil {
		select {
		case <-l.Gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	l.total.Add(1)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.loads[modelID]++
	if err := l.fail[modelID]; err != nil {
		return nil, err
	}
	m := &Model{id: modelID, caps: l.caps[modelID], loader: l}
	l.models[modelID] = m
	return m, nil
}

// Loads returns how many times modelID was loaded.
func (l *Loader) Loads(modelID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loads[modelID]
}

// TotalLoads returns the number of Load calls that passed the gate.
func (l *Loader) TotalLoads() int {
	return int(l.total.Load())
}

// Model returns the last instance loaded for modelID.
func (l *Loader) Model(modelID string) *Model {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.models[modelID]
}

// Calls returns a copy of all recorded rendering calls.
func (l *Loader) Calls() []Call {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Call(nil), l.calls...)
}

// LastCall returns the most recent rendering call.
func (l *Loader) LastCall() (Call, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.calls) == 0 {
		return Call{}, false
	}
	return l.calls[len(l.calls)-1], true
}

func (l *Loader) record(c Call) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, c)
}

// Model is a stub engine.Model.
type Model struct {
	id          string
	caps        engine.Capabilities
	loader      *Loader
	accelerated atomic.Int32
}

// ID returns the model identifier.
func (m *Model) ID() string { return m.id }

// Accelerations returns how many times PlaceOnAccelerator was called.
func (m *Model) Accelerations() int { return int(m.accelerated.Load()) }

// Capabilities implements engine.Model.
func (m *Model) Capabilities() engine.Capabilities { return m.caps }

// SynthesizeToFile implements engine.Model.
func (m *Model) SynthesizeToFile(_ context.Context, text, path string, opts engine.SynthesizeOpts) error {
	m.loader.record(Call{Op: "synthesize", ModelID: m.id, Text: text, Path: path, Opts: opts})
	if m.loader.SynthErr != nil {
		return m.loader.SynthErr
	}
	return writeStub(path, m.id, text)
}

// SynthesizeWithConversionToFile implements engine.Model.
func (m *Model) SynthesizeWithConversionToFile(_ context.Context, text, referencePath, path string, opts engine.SynthesizeOpts) error {
	m.loader.record(Call{Op: "synthesize_vc", ModelID: m.id, Text: text, ReferencePath: referencePath, Path: path, Opts: opts})
	if m.loader.SynthErr != nil {
		return m.loader.SynthErr
	}
	return writeStub(path, m.id, text)
}

// ConvertVoiceToFile implements engine.Model.
func (m *Model) ConvertVoiceToFile(_ context.Context, sourcePath, referencePath, path string) error {
	m.loader.record(Call{Op: "convert", ModelID: m.id, Source: sourcePath, ReferencePath: referencePath, Path: path})
	if m.loader.ConvertErr != nil {
		return m.loader.ConvertErr
	}
	src, err := os.ReadFile(sourcePath)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append([]byte("converted:"), src...), 0o644)
}

// PlaceOnAccelerator implements engine.Model.
func (m *Model) PlaceOnAccelerator(context.Context) error {
	if m.loader.AccelErr != nil {
		return m.loader.AccelErr
	}
	m.accelerated.Add(1)
	return nil
}

func writeStub(path, modelID, text string) error {
	return os.WriteFile(path, []byte(fmt.Sprintf("%s|%s", modelID, text)), 0o644)
}
