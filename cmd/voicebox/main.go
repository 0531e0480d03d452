// Voicebox is a multilingual text-to-speech daemon. It resolves a model for
// each request's language, keeps loaded models in a process-wide cache and
// renders speech to wav files.
//
// Usage:
//
//	voicebox serve --config /path/to/voicebox.yaml
//	voicebox synth --lang fr "Bonjour tout le monde"
//	voicebox languages --backend coqui-xtts
//	voicebox version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/nadzzz/voicebox/docs"
	"github.com/nadzzz/voicebox/internal/config"
	"github.com/nadzzz/voicebox/internal/dispatch"
	"github.com/nadzzz/voicebox/internal/engine/wyoming"
	"github.com/nadzzz/voicebox/internal/modelcache"
	"github.com/nadzzz/voicebox/internal/tts/backends"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:          "voicebox",
		Short:        "Multilingual text-to-speech daemon",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to config file (e.g. configs/voicebox.local.yaml)")

	cmd.AddCommand(
		newServeCommand(&configFile),
		newSynthCommand(&configFile),
		newLanguagesCommand(&configFile),
		newVersionCommand(),
	)
	return cmd
}

// loadConfig reads the configuration and installs the logger.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	config.SetupLogging(cfg.Logging)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newDispatcher wires the engine, the shared model cache and the built-in
// backends.
func newDispatcher(cfg *config.Config) (*dispatch.Dispatcher, *modelcache.Cache) {
	loader := wyoming.NewLoader(wyoming.Config{
		Endpoint:    cfg.Engine.Wyoming.Endpoint,
		Endpoints:   cfg.Engine.Wyoming.Endpoints,
		DialTimeout: cfg.Engine.Wyoming.DialTimeout,
	})
	cache := modelcache.Shared(loader)
	return dispatch.New(backends.NewRegistry(), cache, cfg.TTS), cache
}
