package server

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/MKhiriev/go-habit-tracker/internal/config"
	myGRPC "github.com/MKhiriev/go-habit-tracker/internal/handler/grpc"
	"github.com/MKhiriev/go-habit-tracker/internal/logger"

	"google.golang.org/grpc"
)

const healthProbeInterval = 15 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server *grpc.Server

	mu       sync.Mutex
	listener net.Listener
	ready    chan struct{}

	stopProbes context.CancelFunc
	probesDone chan struct{}

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler:    handler,
		address:    cfg.GRPCAddress,
		server:     server,
		ready:      make(chan struct{}),
		probesDone: make(chan struct{}),
		logger:     logger,
	}
}

func (g *grpcServer) RunServer() {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Error().Err(err).Str("address", g.address).Msg("gRPC server Listen")
		close(g.ready)
		close(g.probesDone)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	g.mu.Lock()
	g.listener = lis
	g.stopProbes = cancel
	g.mu.Unlock()
	close(g.ready)

	go func() {
		defer close(g.probesDone)
		g.handler.Probe(ctx)
		g.handler.RunProbes(ctx, healthProbeInterval)
	}()

	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")
	if err = g.server.Serve(lis); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) addr() string {
	<-g.ready

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.listener == nil {
		return ""
	}
	return g.listener.Addr().String()
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	g.mu.Lock()
	stop := g.stopProbes
	g.mu.Unlock()
	if stop != nil {
		stop()
		<-g.probesDone
	}

	g.server.GracefulStop()
}
