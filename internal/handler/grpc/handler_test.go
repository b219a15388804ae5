package grpc

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-habit-tracker/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

type fakePinger struct {
	failing atomic.Bool
	calls   atomic.Int32
}

func (p *fakePinger) PingContext(ctx context.Context) error {
	p.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("probe without deadline")
	}
	if p.failing.Load() {
		return errors.New("connection refused")
	}
	return nil
}

func startHealthServer(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	h.Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func check(t *testing.T, client healthpb.HealthClient, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHandler_ServingWithoutProbe(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	client := startHealthServer(t, h)

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ServiceName))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, h.Probe(context.Background()))
}

func TestHandler_ProbeFollowsDependency(t *testing.T) {
	pinger := &fakePinger{}
	h := NewHandler(pinger, logger.Nop())
	client := startHealthServer(t, h)

	pinger.failing.Store(true)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, h.Probe(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ServiceName))

	pinger.failing.Store(false)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, h.Probe(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ""))
}

func TestHandler_Shutdown(t *testing.T) {
	h := NewHandler(&fakePinger{}, logger.Nop())
	client := startHealthServer(t, h)

	h.Shutdown()
	h.Probe(context.Background())

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))
}

func TestHandler_RunProbes(t *testing.T) {
	pinger := &fakePinger{}
	h := NewHandler(pinger, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.RunProbes(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return pinger.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunProbes did not return after cancel")
	}
}

func TestHandler_RunProbesWithoutProbeReturns(t *testing.T) {
	h := NewHandler(nil, logger.Nop())

	done := make(chan struct{})
	go func() {
		h.RunProbes(context.Background(), time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunProbes blocked without a probe")
	}
}
