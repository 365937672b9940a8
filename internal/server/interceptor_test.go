package server

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/veridoc/ocr-review/internal/common"
)

func TestRequestLogger_TagsContext(t *testing.T) {
	interceptor := RequestLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var seen string
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = common.RequestIDFromContext(ctx)
		return "done", nil
	}

	resp, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/review.v1.ReviewService/GetDocument"}, handler)
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if resp != "done" {
		t.Errorf("resp = %v, want handler result", resp)
	}
	if seen == "" {
		t.Error("handler context carries no request id")
	}
}

func TestRequestLogger_KeepsExistingID(t *testing.T) {
	interceptor := RequestLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx := common.WithRequestID(context.Background(), "req-42")
	var seen string
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = common.RequestIDFromContext(ctx)
		return nil, nil
	}

	if _, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/review.v1.ReviewService/GetLexicon"}, handler); err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if seen != "req-42" {
		t.Errorf("request id = %q, want req-42", seen)
	}
}

func TestRequestLogger_PassesErrorThrough(t *testing.T) {
	interceptor := RequestLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	want := status.Error(codes.NotFound, "document missing")
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, want
	}

	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/review.v1.ReviewService/GetDocument"}, handler)
	if status.Code(err) != codes.NotFound {
		t.Errorf("code = %v, want NotFound", status.Code(err))
	}
}
