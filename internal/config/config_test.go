package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadzzz/voicebox/internal/tts"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "voicebox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.HealthPort)
	assert.True(t, cfg.Transports.HTTP.Enabled)
	assert.Equal(t, 8080, cfg.Transports.HTTP.Port)
	assert.Equal(t, 50051, cfg.Transports.GRPC.Port)
	assert.Equal(t, "localhost:10200", cfg.Engine.Wyoming.Endpoint)
	assert.Equal(t, 10*time.Second, cfg.Engine.Wyoming.DialTimeout)
	assert.Equal(t, "coqui", cfg.TTS.Backend)
	assert.Equal(t, "en-us", cfg.TTS.Lang)
	assert.Equal(t, "coqui", cfg.TTS.TTSModule)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
engine:
  wyoming:
    endpoint: tcp://piper:10200
    endpoints:
      fr_FR-siwis-medium: piper-fr:10200
    dial_timeout: 3s
tts:
  backend: coqui-freevc
  lang: fr
  gpu: true
  reference_speaker: /voices/me.wav
  tts_module: coqui-xtts
  backends:
    coqui-xtts:
      model: tts_models/multilingual/multi-dataset/xtts_v1.1
      gpu: false
logging:
  level: debug
  format: text
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "tcp://piper:10200", cfg.Engine.Wyoming.Endpoint)
	assert.Equal(t, "piper-fr:10200", cfg.Engine.Wyoming.Endpoints["fr_fr-siwis-medium"])
	assert.Equal(t, 3*time.Second, cfg.Engine.Wyoming.DialTimeout)
	assert.Equal(t, "coqui-freevc", cfg.TTS.Backend)
	assert.Equal(t, "debug", cfg.Logging.Level)

	assert.Equal(t, tts.Options{
		GPU:              true,
		ReferenceSpeaker: "/voices/me.wav",
		BackendName:      "coqui-xtts",
	}, cfg.TTS.OptionsFor("coqui-freevc"))

	assert.Equal(t, tts.Options{
		Model:            "tts_models/multilingual/multi-dataset/xtts_v1.1",
		GPU:              false,
		ReferenceSpeaker: "/voices/me.wav",
		BackendName:      "coqui-xtts",
	}, cfg.TTS.OptionsFor("coqui-xtts"))
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("VOICEBOX_TTS_BACKEND", "coqui-fairseq")
	t.Setenv("VOICEBOX_ENGINE_WYOMING_ENDPOINT", "tts.internal:10200")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "coqui-fairseq", cfg.TTS.Backend)
	assert.Equal(t, "tts.internal:10200", cfg.Engine.Wyoming.Endpoint)
}

func TestLoad_EnvReferences(t *testing.T) {
	t.Setenv("VOICE_DIR", "/srv/voices")
	path := writeConfig(t, `
tts:
  reference_speaker: ${VOICE_DIR}/me.wav
  output_dir: ${UNSET_VOICEBOX_DIR}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/voices/me.wav", cfg.TTS.ReferenceSpeaker)
	assert.Equal(t, "${UNSET_VOICEBOX_DIR}", cfg.TTS.OutputDir)
}

func TestLoad_BadFile(t *testing.T) {
	path := writeConfig(t, "tts: [unclosed")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLangFor(t *testing.T) {
	c := TTSConfig{Lang: "en-us", Backends: map[string]BackendConfig{"coqui-fairseq": {Lang: "ewe"}}}
	assert.Equal(t, "ewe", c.LangFor("coqui-fairseq"))
	assert.Equal(t, "en-us", c.LangFor("coqui"))
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "tts.backend")
	assert.ErrorContains(t, err, "tts.output_dir")
	assert.ErrorContains(t, err, "engine.wyoming")
}

func TestResolveEnvRef(t *testing.T) {
	t.Setenv("VB_TEST_HOME", "/home/vb")
	assert.Equal(t, "/home/vb/out", resolveEnvRef("${VB_TEST_HOME}/out"))
	assert.Equal(t, "plain", resolveEnvRef("plain"))
}
