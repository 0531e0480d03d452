// Package config handles loading and validating the voicebox configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/nadzzz/voicebox/internal/tts"
)

// Config is the root configuration for the voicebox daemon.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Transports TransportsConfig `mapstructure:"transports"`
	Engine     EngineConfig     `mapstructure:"engine"`
	TTS        TTSConfig        `mapstructure:"tts"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig holds the health check server settings.
type ServerConfig struct {
	HealthPort int `mapstructure:"health_port"`
}

// TransportsConfig holds the configuration for each transport layer.
type TransportsConfig struct {
	GRPC GRPCConfig `mapstructure:"grpc"`
	HTTP HTTPConfig `mapstructure:"http"`
}

// GRPCConfig configures the gRPC transport.
type GRPCConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// HTTPConfig configures the HTTP transport.
type HTTPConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// EngineConfig configures the synthesis engine the models run on.
type EngineConfig struct {
	Wyoming WyomingConfig `mapstructure:"wyoming"`
}

// WyomingConfig holds Wyoming protocol server settings.
//
// Endpoint serves every model unless Endpoints maps the model identifier to
// a dedicated server.
type WyomingConfig struct {
	Endpoint    string            `mapstructure:"endpoint"`
	Endpoints   map[string]string `mapstructure:"endpoints"` // model id -> host:port
	DialTimeout time.Duration     `mapstructure:"dial_timeout"`
}

// TTSConfig selects and configures the synthesis backend.
type TTSConfig struct {
	Backend           string `mapstructure:"backend"` // coqui, coqui-xtts, coqui-freevc, coqui-fairseq
	Lang              string `mapstructure:"lang"`
	Model             string `mapstructure:"model"`
	GPU               bool   `mapstructure:"gpu"`
	ReferenceSpeaker  string `mapstructure:"reference_speaker"`
	UseCrossVoiceMode bool   `mapstructure:"use_cross_voice_mode"`
	TTSModule         string `mapstructure:"tts_module"` // base backend of coqui-freevc
	Voice             string `mapstructure:"voice"`
	OutputDir         string `mapstructure:"output_dir"`

	// Backends holds per-backend overrides merged over the fields above.
	Backends map[string]BackendConfig `mapstructure:"backends"`
}

// BackendConfig overrides TTSConfig fields for one backend. Unset fields
// inherit the shared value.
type BackendConfig struct {
	Lang              string `mapstructure:"lang"`
	Model             string `mapstructure:"model"`
	GPU               *bool  `mapstructure:"gpu"`
	ReferenceSpeaker  string `mapstructure:"reference_speaker"`
	UseCrossVoiceMode *bool  `mapstructure:"use_cross_voice_mode"`
	TTSModule         string `mapstructure:"tts_module"`
	Voice             string `mapstructure:"voice"`
}

// OptionsFor returns the backend options for name with its overrides applied.
func (c TTSConfig) OptionsFor(name string) tts.Options {
	opts := tts.Options{
		Model:             c.Model,
		GPU:               c.GPU,
		ReferenceSpeaker:  c.ReferenceSpeaker,
		UseCrossVoiceMode: c.UseCrossVoiceMode,
		BackendName:       c.TTSModule,
		Voice:             c.Voice,
	}

	b, ok := c.Backends[name]
	if !ok {
		return opts
	}
	if b.Model != "" {
		opts.Model = b.Model
	}
	if b.GPU != nil {
		opts.GPU = *b.GPU
	}
	if b.ReferenceSpeaker != "" {
		opts.ReferenceSpeaker = b.ReferenceSpeaker
	}
	if b.UseCrossVoiceMode != nil {
		opts.UseCrossVoiceMode = *b.UseCrossVoiceMode
	}
	if b.TTSModule != "" {
		opts.BackendName = b.TTSModule
	}
	if b.Voice != "" {
		opts.Voice = b.Voice
	}
	return opts
}

// LangFor returns the default language for backend name.
func (c TTSConfig) LangFor(name string) string {
	if b, ok := c.Backends[name]; ok && b.Lang != "" {
		return b.Lang
	}
	return c.Lang
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// Validate reports configuration that cannot work.
func (c *Config) Validate() error {
	var errs []error
	if c.TTS.Backend == "" {
		errs = append(errs, errors.New("tts.backend must be set"))
	}
	if c.TTS.OutputDir == "" {
		errs = append(errs, errors.New("tts.output_dir must be set"))
	}
	if c.Engine.Wyoming.Endpoint == "" && len(c.Engine.Wyoming.Endpoints) == 0 {
		errs = append(errs, errors.New("engine.wyoming.endpoint or engine.wyoming.endpoints must be set"))
	}
	if c.Transports.HTTP.Enabled && c.Transports.HTTP.Port <= 0 {
		errs = append(errs, fmt.Errorf("transports.http.port: invalid port %d", c.Transports.HTTP.Port))
	}
	if c.Transports.GRPC.Enabled && c.Transports.GRPC.Port <= 0 {
		errs = append(errs, fmt.Errorf("transports.grpc.port: invalid port %d", c.Transports.GRPC.Port))
	}
	return errors.Join(errs...)
}

// Load reads the configuration from file, environment variables, and defaults.
// If configFile is non-empty it is used directly; otherwise the standard
// search order applies: ./voicebox.yaml, ./configs/voicebox.yaml, /etc/voicebox/voicebox.yaml.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.health_port", 8081)
	v.SetDefault("transports.grpc.enabled", true)
	v.SetDefault("transports.grpc.port", 50051)
	v.SetDefault("transports.http.enabled", true)
	v.SetDefault("transports.http.port", 8080)
	v.SetDefault("engine.wyoming.endpoint", "localhost:10200")
	v.SetDefault("engine.wyoming.dial_timeout", "10s")
	v.SetDefault("tts.backend", "coqui")
	v.SetDefault("tts.lang", "en-us")
	v.SetDefault("tts.gpu", false)
	v.SetDefault("tts.use_cross_voice_mode", false)
	v.SetDefault("tts.tts_module", "coqui")
	v.SetDefault("tts.output_dir", os.TempDir())
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("voicebox")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/voicebox")
	}

	// Environment variables: VOICEBOX_TTS_BACKEND, VOICEBOX_ENGINE_WYOMING_ENDPOINT, etc.
	v.SetEnvPrefix("VOICEBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (optional, env vars and defaults are sufficient)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		slog.Info("no config file found, using defaults and environment variables")
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Resolve env var references in path fields (e.g., "${VOICE_DIR}/me.wav").
	cfg.TTS.ReferenceSpeaker = resolveEnvRef(cfg.TTS.ReferenceSpeaker)
	cfg.TTS.OutputDir = resolveEnvRef(cfg.TTS.OutputDir)
	for name, b := range cfg.TTS.Backends {
		b.ReferenceSpeaker = resolveEnvRef(b.ReferenceSpeaker)
		cfg.TTS.Backends[name] = b
	}

	return &cfg, nil
}

// resolveEnvRef expands "${VAR_NAME}" references. Unset variables are left
// as written.
func resolveEnvRef(val string) string {
	if !strings.Contains(val, "${") {
		return val
	}
	return os.Expand(val, func(key string) string {
		if envVal, ok := os.LookupEnv(key); ok {
			return envVal
		}
		return "${" + key + "}"
	})
}

// SetupLogging configures the global slog logger based on config.
func SetupLogging(cfg LoggingConfig) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
