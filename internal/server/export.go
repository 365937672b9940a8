package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	reviewpb "github.com/veridoc/ocr-review/gen/proto/review/v1"
	"github.com/veridoc/ocr-review/internal/export"
)

type ExportServer struct {
	reviewpb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportDocument(ctx context.Context, req *reviewpb.ExportDocumentRequest) (*reviewpb.ExportDocumentResponse, error) {
	documentID, err := uuid.Parse(strings.TrimSpace(req.GetDocumentId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}

	xlsx, err := s.svc.ExportWordsXLSX(ctx, documentID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "document_id", documentID, "error", err)
		if status.Code(err) == codes.NotFound {
			return nil, status.Errorf(codes.NotFound, "document %s not found", documentID)
		}
		return nil, status.Errorf(codes.Internal, "export document: %v", err)
	}

	return &reviewpb.ExportDocumentResponse{
		Xlsx:     xlsx,
		Filename: fmt.Sprintf("%s-words.xlsx", documentID),
	}, nil
}
