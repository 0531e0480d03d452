package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nadzzz/voicebox/internal/config"
	"github.com/nadzzz/voicebox/internal/health"
	"github.com/nadzzz/voicebox/internal/transport"
	grpctransport "github.com/nadzzz/voicebox/internal/transport/grpc"
	httptransport "github.com/nadzzz/voicebox/internal/transport/http"
)

func newServeCommand(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the synthesis daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configFile)
			if err != nil {
				return err
			}

			// Create root context with signal handling for graceful shutdown.
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	slog.Info("voicebox starting", "version", version, "backend", cfg.TTS.Backend)

	var transports []transport.Transport
	if cfg.Transports.GRPC.Enabled {
		transports = append(transports, grpctransport.New(cfg.Transports.GRPC.Port))
	}
	if cfg.Transports.HTTP.Enabled {
		transports = append(transports, httptransport.New(cfg.Transports.HTTP.Port))
	}
	if len(transports) == 0 {
		return errors.New("no transports enabled, enable at least one in config")
	}

	dispatcher, cache := newDispatcher(cfg)
	healthServer := health.New(cfg.Server.HealthPort, cache)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return healthServer.ListenAndServe(groupCtx)
	})

	// Load the default model before accepting traffic.
	if err := dispatcher.Warm(groupCtx); err != nil {
		slog.Error("failed to warm backend", "backend", cfg.TTS.Backend, "error", err)
		return fmt.Errorf("warming backend %s: %w", cfg.TTS.Backend, err)
	}

	for _, t := range transports {
		group.Go(func() error {
			slog.Info("starting transport", "name", t.Name())
			if err := t.Listen(groupCtx, dispatcher); err != nil {
				return fmt.Errorf("transport %s: %w", t.Name(), err)
			}
			return nil
		})
	}

	healthServer.SetReady(true)
	slog.Info("voicebox ready",
		"transports", len(transports),
		"health_port", cfg.Server.HealthPort,
		"models", cache.IDs())

	<-groupCtx.Done()
	slog.Info("shutdown signal received, draining...")
	healthServer.SetReady(false)

	for _, t := range transports {
		if err := t.Close(); err != nil {
			slog.Error("transport close error", "name", t.Name(), "error", err)
		}
	}

	if err := group.Wait(); err != nil {
		return err
	}
	slog.Info("voicebox stopped")
	return nil
}
