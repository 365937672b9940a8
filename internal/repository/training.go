package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/veridoc/ocr-review/gen/ent"
	"github.com/veridoc/ocr-review/gen/ent/trainingsample"
	"github.com/veridoc/ocr-review/internal/entity"
	"github.com/veridoc/ocr-review/internal/utils"
)

type TrainingSampleRepository interface {
	Save(ctx context.Context, sample entity.TrainingSample) (*entity.TrainingSample, error)
	CountByDocument(ctx context.Context, documentID uuid.UUID) (int, error)
}

type trainingSampleRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTrainingSampleRepository(client *ent.Client, logger *slog.Logger) TrainingSampleRepository {
	return &trainingSampleRepository{
		client: client,
		logger: logger,
	}
}

func (r *trainingSampleRepository) Save(ctx context.Context, sample entity.TrainingSample) (*entity.TrainingSample, error) {
	row, err := r.client.TrainingSample.Create().
		SetDocumentID(sample.DocumentID).
		SetWordRef(sample.WordRef).
		SetImagePath(sample.ImagePath).
		SetOriginalText(sample.OriginalText).
		SetCorrectedText(sample.CorrectedText).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to save training sample", "document_id", sample.DocumentID, "error", err)
		return nil, err
	}

	out := utils.ToTrainingSample(row)
	return &out, nil
}

func (r *trainingSampleRepository) CountByDocument(ctx context.Context, documentID uuid.UUID) (int, error) {
	n, err := r.client.TrainingSample.Query().
		Where(trainingsample.DocumentID(documentID)).
		Count(ctx)
	if err != nil {
		r.logger.Error("failed to count training samples", "document_id", documentID, "error", err)
		return 0, err
	}
	return n, nil
}
