// Package grpc exposes the standard gRPC health service of the habit
// tracker. Orchestrators probe it to learn whether the process can reach its
// database.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-habit-tracker/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the service name reported next to the overall "" status.
const ServiceName = "habittracker.v1.HabitTracker"

const defaultProbeTimeout = 2 * time.Second

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// It owns a health server whose status follows the result of the last probe.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	health *health.Server
	probe  Pinger

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. A nil probe leaves the status SERVING
// for the whole life of the process.
func NewHandler(probe Pinger, logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		probe:  probe,
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Probe pings the dependency once and updates the reported status.
func (h *Handler) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	if h.probe == nil {
		return healthpb.HealthCheckResponse_SERVING
	}

	ctx, cancel := context.WithTimeout(ctx, defaultProbeTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.probe.PingContext(ctx); err != nil {
		h.logger.Warn().Err(err).Str("func", "grpc.Handler.Probe").Msg("health probe failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.setStatus(status)
	return status
}

// RunProbes calls Probe every interval until ctx is done.
func (h *Handler) RunProbes(ctx context.Context, interval time.Duration) {
	if h.probe == nil || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Probe(ctx)
		}
	}
}

// Shutdown switches every service to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
