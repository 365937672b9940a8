package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/veridoc/ocr-review/gen/ent"
	"github.com/veridoc/ocr-review/gen/ent/page"
	"github.com/veridoc/ocr-review/internal/common"
	"github.com/veridoc/ocr-review/internal/entity"
	"github.com/veridoc/ocr-review/internal/utils"
)

type PageRepository interface {
	Create(ctx context.Context, documentID uuid.UUID, pageIndex int, imagePath string, width, height int) (*entity.Page, error)
	GetByDocumentAndIndex(ctx context.Context, documentID uuid.UUID, pageIndex int) (*entity.Page, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]entity.Page, error)
}

type pageRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPageRepository(client *ent.Client, logger *slog.Logger) PageRepository {
	return &pageRepository{
		client: client,
		logger: logger,
	}
}

func (r *pageRepository) Create(ctx context.Context, documentID uuid.UUID, pageIndex int, imagePath string, width, height int) (*entity.Page, error) {
	row, err := r.client.Page.Create().
		SetDocumentID(documentID).
		SetPageIndex(pageIndex).
		SetImagePath(imagePath).
		SetWidth(width).
		SetHeight(height).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create page", "document_id", documentID, "page_index", pageIndex, "error", err)
		return nil, err
	}

	p := utils.ToPage(row)
	return &p, nil
}

func (r *pageRepository) GetByDocumentAndIndex(ctx context.Context, documentID uuid.UUID, pageIndex int) (*entity.Page, error) {
	row, err := r.client.Page.Query().
		Where(
			page.DocumentID(documentID),
			page.PageIndex(pageIndex),
		).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundErrorf("page %d of document %s not found", pageIndex, documentID)
		}
		r.logger.Error("failed to get page", "document_id", documentID, "page_index", pageIndex, "error", err)
		return nil, err
	}

	p := utils.ToPage(row)
	return &p, nil
}

func (r *pageRepository) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]entity.Page, error) {
	rows, err := r.client.Page.Query().
		Where(page.DocumentID(documentID)).
		Order(page.ByPageIndex()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list pages", "document_id", documentID, "error", err)
		return nil, err
	}

	result := make([]entity.Page, len(rows))
	for i, row := range rows {
		result[i] = utils.ToPage(row)
	}
	return result, nil
}
