package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/note-keeper/internal/config"
	"github.com/MKhiriev/note-keeper/internal/handler"
	"github.com/MKhiriev/note-keeper/internal/logger"
	"github.com/MKhiriev/note-keeper/internal/metrics"
	"github.com/MKhiriev/note-keeper/internal/service"
)

func newTestServer(t *testing.T, cfg config.Server) *server {
	t.Helper()

	m := metrics.NewMetrics()
	handlers, err := handler.NewHandlers(&service.Services{}, m, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, m, cfg, logger.Nop())
	require.NoError(t, err)

	return srv.(*server)
}

func TestNewServer_NoTransports(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, metrics.NewMetrics(), config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_Transports(t *testing.T) {
	s := newTestServer(t, config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"})

	assert.NotNil(t, s.httpServer)
	assert.NotNil(t, s.gRPCServer)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	s := newTestServer(t, config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	s := newTestServer(t, config.Server{GRPCAddress: "127.0.0.1:99999"})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.Error(t, s.run(ctx))
}
