package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-habit-tracker/internal/config"
	"github.com/MKhiriev/go-habit-tracker/internal/logger"
)

const (
	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
)

type httpServer struct {
	server          *http.Server
	shutdownTimeout time.Duration

	mu       sync.Mutex
	listener net.Listener
	ready    chan struct{}

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
		},
		shutdownTimeout: shutdownTimeout,
		ready:           make(chan struct{}),
		logger:          logger,
	}
}

func (h *httpServer) RunServer() {
	lis, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		h.logger.Error().Err(err).Str("address", h.server.Addr).Msg("HTTP server Listen")
		close(h.ready)
		return
	}

	h.mu.Lock()
	h.listener = lis
	h.mu.Unlock()
	close(h.ready)

	h.logger.Info().Str("address", lis.Addr().String()).Msg("HTTP server listening")
	if err = h.server.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Error().Err(err).Msg("HTTP server Serve")
	}
}

// addr blocks until RunServer has tried to listen and returns the bound
// address, empty when listening failed.
func (h *httpServer) addr() string {
	<-h.ready

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.listener == nil {
		return ""
	}
	return h.listener.Addr().String()
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Error().Err(err).Msg("HTTP server Shutdown")
	}
}
