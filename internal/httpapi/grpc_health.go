package httpapi

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"verifind.org/internal/obs"
)

// GRPCHealth publishes readiness through the standard gRPC health service,
// both for the whole server ("") and for serviceName.
type GRPCHealth struct {
	srv   *health.Server
	ready ReadyProbe
}

// NewGRPCHealth starts in NOT_SERVING until the first probe succeeds.
func NewGRPCHealth(ready ReadyProbe) *GRPCHealth {
	if ready == nil {
		ready = ReadyFunc(nil)
	}
	h := &GRPCHealth{srv: health.NewServer(), ready: ready}
	h.set(healthpb.HealthCheckResponse_NOT_SERVING)
	return h
}

// Register attaches the health service to s.
func (h *GRPCHealth) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.srv)
}

// Probe runs the readiness check once and updates the serving status.
func (h *GRPCHealth) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.ready.Check(ctx); err != nil {
		obs.Logger().Warn("readiness probe failed", zap.Error(err))
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.set(status)
	return status
}

// Watch probes every interval until ctx ends, then marks the server as
// shutting down.
func (h *GRPCHealth) Watch(ctx context.Context, interval time.Duration) {
	h.Probe(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			h.srv.Shutdown()
			return
		case <-ticker.C:
			h.Probe(ctx)
		}
	}
}

func (h *GRPCHealth) set(status healthpb.HealthCheckResponse_ServingStatus) {
	h.srv.SetServingStatus("", status)
	h.srv.SetServingStatus(serviceName, status)
}
