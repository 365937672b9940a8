package repository

import (
	"context"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/veridoc/ocr-review/constants"
	"github.com/veridoc/ocr-review/gen/ent"
	"github.com/veridoc/ocr-review/gen/ent/correction"
	"github.com/veridoc/ocr-review/gen/ent/document"
	"github.com/veridoc/ocr-review/internal/entity"
	"github.com/veridoc/ocr-review/internal/utils"
)

// CorrectionRepository is the append-only correction log. Rows are never
// updated or deleted through this interface.
type CorrectionRepository interface {
	Append(ctx context.Context, c entity.Correction) (*entity.Correction, error)
	// ListByDocument returns the document's log ordered by created_at then
	// id, oldest first, the order the resolver folds it in.
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]entity.Correction, error)
	// CountPair counts log entries with identical texts. Scope "global"
	// counts across all documents, any other scope only counts corrections
	// on documents of that type.
	CountPair(ctx context.Context, originalText, correctedText, scope string) (int, error)
	// Stats aggregates the log; a nil documentID covers the whole log.
	Stats(ctx context.Context, documentID *uuid.UUID) (*entity.CorrectionStats, error)
}

type correctionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCorrectionRepository(client *ent.Client, logger *slog.Logger) CorrectionRepository {
	return &correctionRepository{
		client: client,
		logger: logger,
	}
}

func (r *correctionRepository) Append(ctx context.Context, c entity.Correction) (*entity.Correction, error) {
	builder := r.client.Correction.Create().
		SetDocumentID(c.DocumentID).
		SetPageIndex(c.PageIndex).
		SetWordRef(c.WordRef).
		SetOriginalText(c.OriginalText).
		SetCorrectedText(c.CorrectedText)
	if c.Author != "" {
		builder = builder.SetAuthor(c.Author)
	}
	if c.CorrectionType != "" {
		builder = builder.SetCorrectionType(c.CorrectionType)
	}
	if c.BBoxSnapshot != nil {
		builder = builder.SetBboxSnapshot(c.BBoxSnapshot.Points())
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to append correction", "document_id", c.DocumentID, "word_ref", c.WordRef, "error", err)
		return nil, err
	}
	r.logger.Info("correction appended",
		"correction_id", row.ID,
		"document_id", row.DocumentID,
		"word_ref", row.WordRef,
		"author", row.Author)

	out := utils.ToCorrection(row)
	return &out, nil
}

func (r *correctionRepository) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]entity.Correction, error) {
	rows, err := r.client.Correction.Query().
		Where(correction.DocumentID(documentID)).
		Order(correction.ByCreatedAt(), correction.ByID()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list corrections", "document_id", documentID, "error", err)
		return nil, err
	}

	result := make([]entity.Correction, len(rows))
	for i, row := range rows {
		result[i] = utils.ToCorrection(row)
	}
	return result, nil
}

func (r *correctionRepository) CountPair(ctx context.Context, originalText, correctedText, scope string) (int, error) {
	q := r.client.Correction.Query().
		Where(
			correction.OriginalText(originalText),
			correction.CorrectedText(correctedText),
		)

	if scope != constants.ScopeGlobal {
		ids, err := r.client.Document.Query().
			Where(document.DocumentType(scope)).
			IDs(ctx)
		if err != nil {
			r.logger.Error("failed to scope pair count", "scope", scope, "error", err)
			return 0, err
		}
		if len(ids) == 0 {
			return 0, nil
		}
		q = q.Where(correction.DocumentIDIn(ids...))
	}

	n, err := q.Count(ctx)
	if err != nil {
		r.logger.Error("failed to count correction pair", "original", originalText, "error", err)
		return 0, err
	}
	return n, nil
}

func (r *correctionRepository) Stats(ctx context.Context, documentID *uuid.UUID) (*entity.CorrectionStats, error) {
	base := func() *ent.CorrectionQuery {
		q := r.client.Correction.Query()
		if documentID != nil {
			q = q.Where(correction.DocumentID(*documentID))
		}
		return q
	}

	total, err := base().Count(ctx)
	if err != nil {
		r.logger.Error("failed to count corrections", "error", err)
		return nil, err
	}

	stats := &entity.CorrectionStats{
		TotalCorrections: total,
		ByAuthor:         map[string]int{},
		ByPattern:        map[string]int{},
	}
	if total == 0 {
		return stats, nil
	}

	var authorCounts []struct {
		Author string `json:"author"`
		Count  int    `json:"count"`
	}
	err = base().
		GroupBy(correction.FieldAuthor).
		Aggregate(ent.Count()).
		Scan(ctx, &authorCounts)
	if err != nil {
		r.logger.Error("failed to group corrections by author", "error", err)
		return nil, err
	}
	for _, row := range authorCounts {
		stats.ByAuthor[row.Author] = row.Count
	}

	var pairCounts []struct {
		OriginalText  string `json:"original_text"`
		CorrectedText string `json:"corrected_text"`
		Count         int    `json:"count"`
	}
	err = base().
		GroupBy(correction.FieldOriginalText, correction.FieldCorrectedText).
		Aggregate(ent.Count()).
		Scan(ctx, &pairCounts)
	if err != nil {
		r.logger.Error("failed to group corrections by pattern", "error", err)
		return nil, err
	}
	originals := make(map[string]struct{}, len(pairCounts))
	for _, row := range pairCounts {
		stats.ByPattern[row.OriginalText+" -> "+row.CorrectedText] = row.Count
		originals[row.OriginalText] = struct{}{}
	}
	stats.UniqueOriginals = len(originals)

	first, err := base().Order(correction.ByCreatedAt(), correction.ByID()).First(ctx)
	if err != nil {
		r.logger.Error("failed to load first correction", "error", err)
		return nil, err
	}
	last, err := base().Order(correction.ByCreatedAt(entsql.OrderDesc()), correction.ByID(entsql.OrderDesc())).First(ctx)
	if err != nil {
		r.logger.Error("failed to load last correction", "error", err)
		return nil, err
	}
	firstAt, lastAt := first.CreatedAt, last.CreatedAt
	stats.FirstAt = &firstAt
	stats.LastAt = &lastAt

	return stats, nil
}
