package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/note-keeper/internal/config"
	"github.com/MKhiriev/note-keeper/internal/handler"
	"github.com/MKhiriev/note-keeper/internal/logger"
	"github.com/MKhiriev/note-keeper/internal/metrics"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, m, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.shutdown()
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.shutdown()
	}
}

// run serves every created transport until ctx is done or one of them fails,
// then shuts all of them down.
func (s *server) run(ctx context.Context) error {
	errCh := make(chan error, 2)

	// launch all created servers
	if s.httpServer != nil {
		go func() { errCh <- s.httpServer.serve() }()
	}
	if s.gRPCServer != nil {
		go func() { errCh <- s.gRPCServer.serve() }()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-errCh:
		s.logger.Err(runErr).Msg("transport stopped unexpectedly")
	}

	s.Shutdown()
	s.logger.Info().Msg("server shutdown gracefully")

	return runErr
}
