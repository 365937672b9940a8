package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/veridoc/ocr-review/constants"
	"github.com/veridoc/ocr-review/gen/ent"
	"github.com/veridoc/ocr-review/gen/ent/document"
	"github.com/veridoc/ocr-review/gen/ent/page"
	"github.com/veridoc/ocr-review/internal/common"
	"github.com/veridoc/ocr-review/internal/entity"
	"github.com/veridoc/ocr-review/internal/utils"
)

// CreateDocumentRequest wraps parameters for registering an uploaded document.
type CreateDocumentRequest struct {
	Filename    string
	ContentType string
	StoragePath string
}

type DocumentRepository interface {
	Create(ctx context.Context, request *CreateDocumentRequest) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	MarkProcessed(ctx context.Context, id uuid.UUID, documentType string, qualityScore float64) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
	List(ctx context.Context, limit int) ([]entity.Document, error)
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{
		client: client,
		logger: logger,
	}
}

func (r *documentRepository) Create(ctx context.Context, request *CreateDocumentRequest) (*entity.Document, error) {
	builder := r.client.Document.Create().
		SetFilename(request.Filename).
		SetStoragePath(request.StoragePath).
		SetStatus(string(constants.StatusUploaded))
	if request.ContentType != "" {
		builder = builder.SetContentType(request.ContentType)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "filename", request.Filename, "error", err)
		return nil, err
	}
	r.logger.Info("document created", "document_id", row.ID, "filename", row.Filename)

	doc := utils.ToDocument(row)
	return &doc, nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.client.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundErrorf("document %s not found", id)
		}
		r.logger.Error("failed to get document", "document_id", id, "error", err)
		return nil, err
	}

	pageCount, err := r.client.Page.Query().Where(page.DocumentID(id)).Count(ctx)
	if err != nil {
		r.logger.Error("failed to count pages", "document_id", id, "error", err)
		return nil, err
	}

	doc := utils.ToDocument(row)
	doc.PageCount = pageCount
	return &doc, nil
}

func (r *documentRepository) MarkProcessed(ctx context.Context, id uuid.UUID, documentType string, qualityScore float64) error {
	err := r.client.Document.UpdateOneID(id).
		SetStatus(string(constants.StatusProcessed)).
		SetDocumentType(documentType).
		SetQualityScore(qualityScore).
		SetProcessedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark document processed", "document_id", id, "error", err)
		return err
	}
	r.logger.Info("document processed", "document_id", id, "document_type", documentType, "quality_score", qualityScore)
	return nil
}

func (r *documentRepository) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	err := r.client.Document.UpdateOneID(id).
		SetStatus(string(constants.StatusFailed)).
		SetProcessedAt(time.Now()).
		SetProcessingError(message).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark document failed", "document_id", id, "error", err)
		return err
	}
	r.logger.Warn("document failed", "document_id", id, "error", message)
	return nil
}

func (r *documentRepository) List(ctx context.Context, limit int) ([]entity.Document, error) {
	q := r.client.Document.Query().Order(document.ByUploadedAt(entsql.OrderDesc()))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "error", err)
		return nil, err
	}

	result := make([]entity.Document, len(rows))
	for i, row := range rows {
		result[i] = utils.ToDocument(row)
	}
	return result, nil
}
