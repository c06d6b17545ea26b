// Package grpc exposes the note-keeper health probe over gRPC using the
// standard grpc.health.v1 protocol, so orchestrators can check the server
// without speaking HTTP.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/note-keeper/internal/logger"
	"github.com/MKhiriev/note-keeper/internal/service"
)

// ServiceName is the name under which the note service reports its health.
// The empty name reports the server as a whole and answers the same way.
const ServiceName = "notekeeper"

// Handler is the root gRPC transport handler.
//
// It implements [healthpb.HealthServer] on top of [service.HealthService].
// Watch and List are left to the embedded unimplemented server.
type Handler struct {
	healthpb.UnimplementedHealthServer

	// services provides access to all application business operations.
	services *service.Services

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register attaches the health service and server reflection to srv.
func (h *Handler) Register(srv *grpc.Server) {
	healthpb.RegisterHealthServer(srv, h)
	reflection.Register(srv)
}

// Check reports SERVING while the note store answers a ping.
func (h *Handler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if name := req.GetService(); name != "" && name != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", name)
	}

	if err := h.services.HealthService.Check(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("health check failed")
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}

	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}
