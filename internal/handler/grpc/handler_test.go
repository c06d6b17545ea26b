package grpc

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/note-keeper/internal/logger"
	"github.com/MKhiriev/note-keeper/internal/mock"
	"github.com/MKhiriev/note-keeper/internal/service"
)

// startBufServer serves h over an in-memory listener and returns a health
// client connected to it.
func startBufServer(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(h.UnaryLoggingInterceptor))
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

func newTestHandler(t *testing.T) (*Handler, *mock.MockHealthService) {
	t.Helper()

	health := mock.NewMockHealthService(gomock.NewController(t))
	return NewHandler(&service.Services{HealthService: health}, logger.Nop()), health
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name       string
		service    string
		pingErr    error
		wantStatus healthpb.HealthCheckResponse_ServingStatus
	}{
		{name: "server serving", wantStatus: healthpb.HealthCheckResponse_SERVING},
		{name: "named service serving", service: ServiceName, wantStatus: healthpb.HealthCheckResponse_SERVING},
		{name: "store down", pingErr: errors.New("connection refused"), wantStatus: healthpb.HealthCheckResponse_NOT_SERVING},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, health := newTestHandler(t)
			health.EXPECT().Check(gomock.Any()).Return(tt.pingErr)

			client := startBufServer(t, h)
			resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: tt.service})

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.GetStatus())
		})
	}
}

func TestCheck_UnknownService(t *testing.T) {
	h, _ := newTestHandler(t)

	client := startBufServer(t, h)
	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "billing"})

	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestWatch_Unimplemented(t *testing.T) {
	h, _ := newTestHandler(t)

	client := startBufServer(t, h)
	stream, err := client.Watch(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)

	_, err = stream.Recv()
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestUnaryLoggingInterceptor_TraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(traceIDKey, "abc-123"))
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	var inner *logger.Logger
	resp, err := h.UnaryLoggingInterceptor(ctx, nil, info, func(ctx context.Context, req any) (any, error) {
		inner = logger.FromContext(ctx)
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	require.NotNil(t, inner)
	assert.Contains(t, buf.String(), `"trace_id":"abc-123"`)
	assert.Contains(t, buf.String(), `"method":"/grpc.health.v1.Health/Check"`)
	assert.Contains(t, buf.String(), `"code":"OK"`)
}

func TestUnaryLoggingInterceptor_Error(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}
	info := &grpc.UnaryServerInfo{FullMethod: "/svc/Method"}

	_, err := h.UnaryLoggingInterceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.Unavailable, "down")
	})

	assert.Equal(t, codes.Unavailable, status.Code(err))
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"code":"Unavailable"`)
	assert.Contains(t, buf.String(), `"trace_id":`)
}
