package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/joho/godotenv"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/veridoc/ocr-review/gen/ent"
	"github.com/veridoc/ocr-review/internal/classify"
	"github.com/veridoc/ocr-review/internal/common"
	"github.com/veridoc/ocr-review/internal/lexicon"
	"github.com/veridoc/ocr-review/internal/metrics"
	"github.com/veridoc/ocr-review/internal/ocr"
	"github.com/veridoc/ocr-review/internal/quality"
	repo "github.com/veridoc/ocr-review/internal/repository"
	"github.com/veridoc/ocr-review/internal/resolve"
	"github.com/veridoc/ocr-review/internal/review"
	"github.com/veridoc/ocr-review/internal/training"
)

// legacyCorrection is one record from the pre-migration review tool. Field
// names follow its export format, not ours.
type legacyCorrection struct {
	DocumentID     string          `json:"document_id"`
	Page           int             `json:"page"`
	WordID         string          `json:"word_id"`
	OriginalText   string          `json:"original_text"`
	CorrectedText  string          `json:"corrected_text"`
	CorrectedBBox  json.RawMessage `json:"corrected_bbox"`
	UserID         string          `json:"user_id"`
	Timestamp      string          `json:"timestamp"`
	CorrectionType string          `json:"correction_type"`
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage", "cmd", "importcorrections <corrections.json> [...]")
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer func(entc *ent.Client) {
		if cerr := entc.Close(); cerr != nil {
			logger.Error("close ent client", "error", cerr)
		}
	}(entc)
	defer pool.Close()

	documentsRepo := repo.NewDocumentRepository(entc, logger)
	pagesRepo := repo.NewPageRepository(entc, logger)
	wordsRepo := repo.NewWordRepository(entc, logger)
	correctionsRepo := repo.NewCorrectionRepository(entc, logger)
	lexiconRepo := repo.NewLexiconRepository(entc, logger)
	samplesRepo := repo.NewTrainingSampleRepository(entc, logger)

	// Imports run through the same path as live corrections so no-op
	// rejection, word updates, and lexicon learning all apply.
	reviewSvc := review.NewService(review.Deps{
		Documents:   documentsRepo,
		Pages:       pagesRepo,
		Words:       wordsRepo,
		Corrections: correctionsRepo,
		Lexicon:     lexiconRepo,
		Extractor:   ocr.NewExtractor(logger),
		Classifier:  classify.NewClassifier(classify.DefaultThreshold, logger),
		Scorer:      quality.NewScorer(logger),
		Resolver: resolve.NewResolver(correctionsRepo, lexiconRepo, resolve.Config{
			PaddingMarkers: cfg.Resolver.PaddingMarkers,
			AutoCorrection: cfg.Lexicon.AutoCorrectionEnabled,
		}, logger),
		Learner:   lexicon.NewLearner(correctionsRepo, lexiconRepo, cfg.Lexicon, logger),
		Collector: training.NewCollector(samplesRepo, cfg.Training, logger),
		Metrics:   metrics.NewRecorder(),
	}, logger)

	schema := ocr.BuildCorrectionImportJSONSchema()
	var migrated, skipped, orphaned int

	for _, path := range os.Args[1:] {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("read file", "path", path, "error", err)
			os.Exit(1)
		}
		records, err := splitRecords(data)
		if err != nil {
			logger.Error("parse file", "path", path, "error", err)
			os.Exit(1)
		}

		for i, raw := range records {
			if err := ocr.ValidateJSONAgainstSchema(schema, raw); err != nil {
				logger.Warn("record rejected by schema", "path", path, "record", i, "error", err)
				skipped++
				continue
			}
			var rec legacyCorrection
			if err := sonic.Unmarshal(raw, &rec); err != nil {
				logger.Warn("record not decodable", "path", path, "record", i, "error", err)
				skipped++
				continue
			}

			res, err := reviewSvc.RecordCorrection(ctx, review.RecordCorrectionRequest{
				DocumentID:     rec.DocumentID,
				PageIndex:      rec.Page,
				WordRef:        rec.WordID,
				OriginalText:   rec.OriginalText,
				CorrectedText:  rec.CorrectedText,
				Author:         rec.UserID,
				CorrectionType: rec.CorrectionType,
				BBox:           decodeBBox(rec.CorrectedBBox),
			})
			switch status.Code(err) {
			case codes.OK:
				migrated++
				if res.Orphaned {
					orphaned++
				}
			case codes.InvalidArgument:
				logger.Warn("record skipped", "path", path, "record", i, "error", err)
				skipped++
			default:
				logger.Error("import aborted", "path", path, "record", i, "error", err)
				os.Exit(1)
			}
		}
	}

	logger.Info("import finished", "migrated", migrated, "skipped", skipped, "orphaned", orphaned)
}

// splitRecords accepts the three legacy export shapes: a single object, a
// bare list, or {"corrections": [...]}.
func splitRecords(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []json.RawMessage
		if err := sonic.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		return list, nil
	}
	var wrapper struct {
		Corrections []json.RawMessage `json:"corrections"`
	}
	if err := sonic.Unmarshal(trimmed, &wrapper); err == nil && wrapper.Corrections != nil {
		return wrapper.Corrections, nil
	}
	var single map[string]json.RawMessage
	if err := sonic.Unmarshal(trimmed, &single); err != nil {
		return nil, err
	}
	return []json.RawMessage{trimmed}, nil
}

// decodeBBox accepts both geometry encodings: point rows or one flat
// [x1, y1, x2, y2]. Undecodable boxes import as no geometry.
func decodeBBox(raw json.RawMessage) [][]float64 {
	if len(raw) == 0 {
		return nil
	}
	var rows [][]float64
	if err := sonic.Unmarshal(raw, &rows); err == nil {
		return rows
	}
	var flat []float64
	if err := sonic.Unmarshal(raw, &flat); err == nil && len(flat) > 0 {
		return [][]float64{flat}
	}
	return nil
}
