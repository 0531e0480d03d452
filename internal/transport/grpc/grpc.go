// Package grpc implements the gRPC transport for voicebox.
//
// This transport exposes the standard gRPC health service and server
// reflection so that orchestrators and grpcurl can probe the daemon. The
// synthesis service reports SERVING once the configured backend answers.
package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/nadzzz/voicebox/internal/transport"
)

// ServiceName is the health-checked name of the synthesis service.
const ServiceName = "voicebox.v1.Synthesizer"

// Transport implements transport.Transport over gRPC.
type Transport struct {
	port   int
	server *grpc.Server
	health *health.Server
}

// New creates a new gRPC transport on the given port.
func New(port int) *Transport {
	return &Transport{
		port:   port,
		server: grpc.NewServer(),
		health: health.NewServer(),
	}
}

// Name returns the transport identifier.
func (t *Transport) Name() string { return "grpc" }

// Listen starts the gRPC server on the configured port.
func (t *Transport) Listen(ctx context.Context, handler transport.Handler) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", t.port))
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}
	slog.Info("grpc transport listening", "port", t.port)
	return t.Serve(ctx, lis, handler)
}

// Serve runs the server on lis until ctx is cancelled.
func (t *Transport) Serve(ctx context.Context, lis net.Listener, handler transport.Handler) error {
	healthpb.RegisterHealthServer(t.server, t.health)
	reflection.Register(t.server)

	t.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	t.health.SetServingStatus(ServiceName, statusOf(ctx, handler))

	go func() {
		<-ctx.Done()
		slog.Info("grpc transport shutting down")
		t.health.Shutdown()
		t.server.GracefulStop()
	}()

	if err := t.server.Serve(lis); err != nil && err != grpc.ErrServerStopped {
		return fmt.Errorf("grpc serve: %w", err)
	}
	return nil
}

// statusOf reports SERVING when the configured backend can list languages.
func statusOf(ctx context.Context, handler transport.Handler) healthpb.HealthCheckResponse_ServingStatus {
	res, err := handler.Languages(ctx, "")
	if err != nil {
		slog.Warn("synthesis service not serving", "error", err)
		return healthpb.HealthCheckResponse_NOT_SERVING
	}
	slog.Debug("synthesis service serving", "backend", res.Backend, "languages", len(res.Languages))
	return healthpb.HealthCheckResponse_SERVING
}

// Close gracefully stops the gRPC server.
func (t *Transport) Close() error {
	t.health.Shutdown()
	t.server.GracefulStop()
	return nil
}
