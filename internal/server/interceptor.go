package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/veridoc/ocr-review/internal/common"
)

// RequestLogger tags every unary call with a request id and logs its outcome.
// The id rides the context so downstream logging can correlate.
func RequestLogger(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		rid := common.RequestIDFromContext(ctx)
		if rid == "" {
			rid = uuid.NewString()
			ctx = common.WithRequestID(ctx, rid)
		}

		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Error("rpc failed",
				"method", info.FullMethod,
				"request_id", rid,
				"code", status.Code(err).String(),
				"elapsed_ms", time.Since(start).Milliseconds(),
				"error", err)
			return resp, err
		}
		logger.Info("rpc ok",
			"method", info.FullMethod,
			"request_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds())
		return resp, nil
	}
}
