package server

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ForestKatsch/phosphor/core/logger"
)

type requestIDContextKey struct{}

// maxRequestIDLength caps incoming ids echoed back to the client.
const maxRequestIDLength = 128

// RequestIDFromContext returns the id assigned to the current request.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey{}).(string)
	return id, ok && id != ""
}

// RequestIDExtractor adds request_id to log records. Pass it to
// logger.WithContextExtractors.
func RequestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id, ok := RequestIDFromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.RequestID(id), true
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, id)
}

// requestID reuses a sane incoming id or generates a UUID v4.
func requestID(incoming string) string {
	if incoming != "" && len(incoming) <= maxRequestIDLength {
		return incoming
	}
	return uuid.NewString()
}
