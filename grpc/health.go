package grpc

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	ServiceName          = "chat.relay"
	defaultProbeInterval = 10 * time.Second
)

// Probe reports whether a dependency of the relay is usable.
type Probe func(ctx context.Context) error

// HealthWorker exposes the standard gRPC health service for orchestrators.
// The relay is SERVING as long as every probe succeeds.
type HealthWorker struct {
	log      *slog.Logger
	address  string
	interval time.Duration
	probes   []Probe
	health   *health.Server
}

func NewHealthWorker(log *slog.Logger, address string, interval time.Duration, probes ...Probe) *HealthWorker {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	return &HealthWorker{
		log:      log,
		address:  address,
		interval: interval,
		probes:   probes,
		health:   health.NewServer(),
	}
}

func (w *HealthWorker) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", w.address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", w.address, err)
	}

	s := grpc.NewServer()
	healthpb.RegisterHealthServer(s, w.health)
	w.check(ctx)

	errChan := make(chan error, 1)
	go func() {
		w.log.Info("Starting gRPC health server", "address", w.address)
		if err := s.Serve(listener); err != nil && !stderrors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC health server error: %w", err)
		}
	}()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.health.Shutdown()
			s.GracefulStop()
			w.log.Info("gRPC health server stopped")
			return nil
		case err := <-errChan:
			return err
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

func (w *HealthWorker) check(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	for _, probe := range w.probes {
		if err := probe(ctx); err != nil {
			w.log.Warn("Health probe failed", "error", err)
			status = healthpb.HealthCheckResponse_NOT_SERVING
			break
		}
	}
	w.health.SetServingStatus("", status)
	w.health.SetServingStatus(ServiceName, status)
}
