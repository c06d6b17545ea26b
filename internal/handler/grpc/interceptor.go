package grpc

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/note-keeper/internal/utils"
)

// traceIDKey is the metadata key carrying the caller's trace ID. gRPC
// metadata keys are lower case.
const traceIDKey = "x-trace-id"

// UnaryLoggingInterceptor attaches a request-scoped logger tagged with a
// trace ID to the context and writes one log entry per call.
func (h *Handler) UnaryLoggingInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	traceID := traceIDFromMetadata(ctx)

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = l.WithContext(ctx)

	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))

	start := time.Now()
	resp, err := handler(ctx, req)

	event := l.Info()
	if err != nil {
		event = l.Error().Err(err)
	}
	event.
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Msg("gRPC request")

	return resp, err
}

func traceIDFromMetadata(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDKey); len(values) > 0 && values[0] != "" {
			return values[0]
		}
	}
	return utils.NewTraceID()
}
