package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/veridoc/ocr-review/gen/ent"
	"github.com/veridoc/ocr-review/gen/ent/page"
	"github.com/veridoc/ocr-review/gen/ent/word"
	"github.com/veridoc/ocr-review/internal/common"
	"github.com/veridoc/ocr-review/internal/entity"
	"github.com/veridoc/ocr-review/internal/utils"
)

// ReviewState is the reviewed word state persisted after a correction is
// applied. A nil OriginalText leaves the stored value alone; callers set it
// exactly once, on the first rewrite.
type ReviewState struct {
	Text                     string
	OriginalText             *string
	AutoCorrected            bool
	ManuallyCorrected        bool
	AutoCorrectionOverridden bool
}

type WordRepository interface {
	CreateBatch(ctx context.Context, pageID uuid.UUID, words []entity.Word) ([]entity.Word, error)
	ListByDocumentPage(ctx context.Context, documentID uuid.UUID, pageIndex int) ([]entity.Word, error)
	GetByRef(ctx context.Context, documentID uuid.UUID, ref string) (*entity.Word, error)
	UpdateReviewState(ctx context.Context, id uuid.UUID, state ReviewState) error
	UpdateGeometry(ctx context.Context, id uuid.UUID, points [][]float64) error
}

type wordRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewWordRepository(client *ent.Client, logger *slog.Logger) WordRepository {
	return &wordRepository{
		client: client,
		logger: logger,
	}
}

func (r *wordRepository) CreateBatch(ctx context.Context, pageID uuid.UUID, words []entity.Word) ([]entity.Word, error) {
	if len(words) == 0 {
		return nil, nil
	}

	builders := make([]*ent.WordCreate, len(words))
	for i, w := range words {
		b := r.client.Word.Create().
			SetPageID(pageID).
			SetBlockIndex(w.BlockIndex).
			SetLineIndex(w.LineIndex).
			SetWordIndex(w.WordIndex).
			SetText(w.Text).
			SetNillableConfidence(w.Confidence)
		if w.Geometry != nil {
			b = b.SetGeometry(w.Geometry.Points())
		}
		builders[i] = b
	}

	rows, err := r.client.Word.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("failed to create words", "page_id", pageID, "count", len(words), "error", err)
		return nil, err
	}

	result := make([]entity.Word, len(rows))
	for i, row := range rows {
		result[i] = utils.ToWord(row, words[i].PageIndex)
	}
	return result, nil
}

func (r *wordRepository) ListByDocumentPage(ctx context.Context, documentID uuid.UUID, pageIndex int) ([]entity.Word, error) {
	rows, err := r.client.Word.Query().
		Where(word.HasPageWith(
			page.DocumentID(documentID),
			page.PageIndex(pageIndex),
		)).
		Order(word.ByBlockIndex(), word.ByLineIndex(), word.ByWordIndex()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list words", "document_id", documentID, "page_index", pageIndex, "error", err)
		return nil, err
	}

	result := make([]entity.Word, len(rows))
	for i, row := range rows {
		result[i] = utils.ToWord(row, pageIndex)
	}
	return result, nil
}

func (r *wordRepository) GetByRef(ctx context.Context, documentID uuid.UUID, ref string) (*entity.Word, error) {
	pageIndex, blockIndex, lineIndex, wordIndex, err := entity.ParseWordRef(ref)
	if err != nil {
		return nil, common.NewAppError("WORD_REF", err.Error(), common.ErrInvalidReference)
	}

	row, err := r.client.Word.Query().
		Where(
			word.HasPageWith(
				page.DocumentID(documentID),
				page.PageIndex(pageIndex),
			),
			word.BlockIndex(blockIndex),
			word.LineIndex(lineIndex),
			word.WordIndex(wordIndex),
		).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("WORD_REF",
				"word "+ref+" not found in document "+documentID.String(), common.ErrInvalidReference)
		}
		r.logger.Error("failed to get word by ref", "document_id", documentID, "word_ref", ref, "error", err)
		return nil, err
	}

	w := utils.ToWord(row, pageIndex)
	return &w, nil
}

func (r *wordRepository) UpdateReviewState(ctx context.Context, id uuid.UUID, state ReviewState) error {
	builder := r.client.Word.UpdateOneID(id).
		SetText(state.Text).
		SetAutoCorrected(state.AutoCorrected).
		SetManuallyCorrected(state.ManuallyCorrected).
		SetAutoCorrectionOverridden(state.AutoCorrectionOverridden)
	if state.OriginalText != nil {
		builder = builder.SetOriginalText(*state.OriginalText)
	}

	if err := builder.Exec(ctx); err != nil {
		r.logger.Error("failed to update word review state", "word_id", id, "error", err)
		return err
	}
	return nil
}

func (r *wordRepository) UpdateGeometry(ctx context.Context, id uuid.UUID, points [][]float64) error {
	err := r.client.Word.UpdateOneID(id).
		SetGeometry(points).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to update word geometry", "word_id", id, "error", err)
		return err
	}
	return nil
}
