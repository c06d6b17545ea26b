package server

import (
	"errors"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/note-keeper/internal/config"
	myGRPC "github.com/MKhiriev/note-keeper/internal/handler/grpc"
	"github.com/MKhiriev/note-keeper/internal/logger"
	"github.com/MKhiriev/note-keeper/internal/metrics"
)

type grpcServer struct {
	address string
	server  *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) *grpcServer {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			handler.UnaryLoggingInterceptor,
			metrics.UnaryServerInterceptor(m),
		),
	)
	handler.Register(srv)

	return &grpcServer{
		address: cfg.GRPCAddress,
		server:  srv,
		logger:  logger,
	}
}

func (g *grpcServer) serve() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return err
	}

	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")
	if err = g.server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

func (g *grpcServer) shutdown() {
	g.logger.Info().Msg("gRPC server shutdown")
	g.server.GracefulStop()
}
