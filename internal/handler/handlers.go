package handler

import (
	"github.com/MKhiriev/go-habit-tracker/internal/config"
	"github.com/MKhiriev/go-habit-tracker/internal/handler/grpc"
	"github.com/MKhiriev/go-habit-tracker/internal/handler/http"
	"github.com/MKhiriev/go-habit-tracker/internal/logger"
	"github.com/MKhiriev/go-habit-tracker/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds a handler for every transport with a configured address.
// probe backs the gRPC health status and may be nil.
func NewHandlers(services *service.Services, probe grpc.Pinger, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(probe, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
