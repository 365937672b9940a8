package review

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/veridoc/ocr-review/constants"
	"github.com/veridoc/ocr-review/internal/classify"
	"github.com/veridoc/ocr-review/internal/common"
	"github.com/veridoc/ocr-review/internal/entity"
	"github.com/veridoc/ocr-review/internal/geometry"
	"github.com/veridoc/ocr-review/internal/lexicon"
	"github.com/veridoc/ocr-review/internal/metrics"
	"github.com/veridoc/ocr-review/internal/ocr"
	"github.com/veridoc/ocr-review/internal/quality"
	"github.com/veridoc/ocr-review/internal/repository"
	"github.com/veridoc/ocr-review/internal/resolve"
	"github.com/veridoc/ocr-review/internal/training"
)

// Service handles review business logic: payload ingestion, correction
// recording, deterministic resolution, and read-side aggregation.
type Service struct {
	documents   repository.DocumentRepository
	pages       repository.PageRepository
	words       repository.WordRepository
	corrections repository.CorrectionRepository
	lexiconRepo repository.LexiconRepository
	extractor   *ocr.Extractor
	classifier  *classify.Classifier
	scorer      *quality.Scorer
	resolver    *resolve.Resolver
	learner     *lexicon.Learner
	collector   *training.Collector
	metrics     *metrics.Recorder
	logger      *slog.Logger
}

// Deps bundles the service's collaborators. All fields are required.
type Deps struct {
	Documents   repository.DocumentRepository
	Pages       repository.PageRepository
	Words       repository.WordRepository
	Corrections repository.CorrectionRepository
	Lexicon     repository.LexiconRepository
	Extractor   *ocr.Extractor
	Classifier  *classify.Classifier
	Scorer      *quality.Scorer
	Resolver    *resolve.Resolver
	Learner     *lexicon.Learner
	Collector   *training.Collector
	Metrics     *metrics.Recorder
}

// NewService creates a new review service.
func NewService(deps Deps, logger *slog.Logger) *Service {
	return &Service{
		documents:   deps.Documents,
		pages:       deps.Pages,
		words:       deps.Words,
		corrections: deps.Corrections,
		lexiconRepo: deps.Lexicon,
		extractor:   deps.Extractor,
		classifier:  deps.Classifier,
		scorer:      deps.Scorer,
		resolver:    deps.Resolver,
		learner:     deps.Learner,
		collector:   deps.Collector,
		metrics:     deps.Metrics,
		logger:      logger,
	}
}

// IngestDocumentRequest represents an OCR payload submission.
type IngestDocumentRequest struct {
	Filename    string
	ContentType string
	StoragePath string
	// Payload is the OCR engine's JSON export.
	Payload []byte
	// PageImagePaths aligns by page index with the payload's pages; the
	// training collector crops corrected words out of these images.
	PageImagePaths []string
}

// IngestDocumentResult reports what ingestion stored and decided.
type IngestDocumentResult struct {
	Document *entity.Document
	Pages    int
	Words    int
	Quality  quality.Metrics
	Decision quality.Decision
}

// IngestDocument validates and decodes an OCR payload, persists its pages and
// words, classifies the document, and scores its quality. A schema or decode
// failure rejects the request; a persistence failure after the document row
// exists marks the document FAILED.
func (s *Service) IngestDocument(ctx context.Context, req IngestDocumentRequest) (*IngestDocumentResult, error) {
	filename := strings.TrimSpace(req.Filename)
	if filename == "" {
		s.logger.Error("ingest request missing filename")
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}
	if len(req.Payload) == 0 {
		s.logger.Error("ingest request missing payload", "filename", filename)
		return nil, status.Error(codes.InvalidArgument, "payload is required")
	}

	if err := ocr.ValidateJSONAgainstSchema(ocr.BuildPayloadJSONSchema(), req.Payload); err != nil {
		s.logger.Error("payload failed schema validation", "filename", filename, "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "invalid payload: %v", err)
	}
	payload, err := ocr.DecodePayload(req.Payload)
	if err != nil {
		s.logger.Error("failed to decode payload", "filename", filename, "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "decode payload: %v", err)
	}

	doc, err := s.documents.Create(ctx, &repository.CreateDocumentRequest{
		Filename:    filename,
		ContentType: strings.TrimSpace(req.ContentType),
		StoragePath: strings.TrimSpace(req.StoragePath),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "create document: %v", err)
	}

	extracted := s.extractor.ExtractPages(payload)

	var all []entity.Word
	for _, page := range extracted {
		imagePath := ""
		if page.PageIndex < len(req.PageImagePaths) {
			imagePath = req.PageImagePaths[page.PageIndex]
		}

		pageRow, err := s.pages.Create(ctx, doc.ID, page.PageIndex, imagePath, page.Width, page.Height)
		if err != nil {
			return nil, s.failIngest(ctx, doc.ID, "create page", err)
		}
		stored, err := s.words.CreateBatch(ctx, pageRow.ID, page.Words)
		if err != nil {
			return nil, s.failIngest(ctx, doc.ID, "store words", err)
		}
		all = append(all, stored...)
	}

	classified := s.classifier.Classify(ocr.FullText(all), anyGeometry(all))
	qm := s.scorer.Score(all)
	decision := s.scorer.Route(doc.ID, qm)

	if err := s.documents.MarkProcessed(ctx, doc.ID, string(classified.Type), qm.Overall); err != nil {
		return nil, s.failIngest(ctx, doc.ID, "finalize document", err)
	}

	doc.Status = string(constants.StatusProcessed)
	doc.DocumentType = string(classified.Type)
	doc.QualityScore = &qm.Overall
	doc.PageCount = len(extracted)

	s.logger.Info("document ingested",
		"document_id", doc.ID,
		"filename", filename,
		"pages", len(extracted),
		"words", len(all),
		"document_type", doc.DocumentType,
		"quality", qm.Overall,
		"queue", decision.Queue)

	return &IngestDocumentResult{
		Document: doc,
		Pages:    len(extracted),
		Words:    len(all),
		Quality:  qm,
		Decision: decision,
	}, nil
}

func (s *Service) failIngest(ctx context.Context, id uuid.UUID, stage string, err error) error {
	if markErr := s.documents.MarkFailed(ctx, id, fmt.Sprintf("%s: %v", stage, err)); markErr != nil {
		s.logger.Error("failed to mark document failed", "document_id", id, "error", markErr)
	}
	return status.Errorf(codes.Internal, "%s: %v", stage, err)
}

func anyGeometry(words []entity.Word) bool {
	for _, w := range words {
		if w.Geometry != nil {
			return true
		}
	}
	return false
}

// RecordCorrectionRequest represents one reviewer edit.
type RecordCorrectionRequest struct {
	DocumentID     string
	PageIndex      int
	WordRef        string
	OriginalText   string
	CorrectedText  string
	Author         string
	CorrectionType string
	// BBox optionally snapshots the word geometry at review time, in either
	// accepted encoding.
	BBox [][]float64
}

// RecordCorrectionResult reports what the ingest did beyond the log append.
type RecordCorrectionResult struct {
	Correction      *entity.Correction
	Orphaned        bool
	WordUpdated     bool
	LexiconEntry    *entity.LexiconEntry
	SampleCollected bool
}

// RecordCorrection appends one correction to the log and applies its side
// effects: the word row update, lexicon learning, and training-sample
// collection. The append is the source of truth; learner and collector
// failures are logged but never fail the request. A correction whose document
// does not resolve is still stored, flagged Orphaned, and feeds nothing else.
func (s *Service) RecordCorrection(ctx context.Context, req RecordCorrectionRequest) (*RecordCorrectionResult, error) {
	documentID, err := uuid.Parse(strings.TrimSpace(req.DocumentID))
	if err != nil {
		s.logger.Error("invalid document_id format for correction", "document_id", req.DocumentID, "error", err)
		return nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}
	if req.PageIndex < 0 {
		return nil, status.Error(codes.InvalidArgument, "page_index must be >= 0")
	}
	if req.OriginalText == "" || req.CorrectedText == "" {
		return nil, status.Error(codes.InvalidArgument, "original_text and corrected_text are required")
	}
	if req.OriginalText == req.CorrectedText {
		s.metrics.NoopRejected.Inc()
		s.logger.Info("correction.noop_rejected",
			"document_id", documentID,
			"word_ref", req.WordRef,
			"text", req.OriginalText)
		return nil, status.Error(codes.InvalidArgument, common.ErrNoChange.Error())
	}
	correctionType := strings.TrimSpace(req.CorrectionType)
	switch constants.CorrectionType(correctionType) {
	case "", constants.CorrectionTextEdit, constants.CorrectionBBoxAdjust:
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unknown correction_type %q", correctionType)
	}

	c := entity.Correction{
		DocumentID:     documentID,
		PageIndex:      req.PageIndex,
		WordRef:        strings.TrimSpace(req.WordRef),
		OriginalText:   req.OriginalText,
		CorrectedText:  req.CorrectedText,
		Author:         strings.TrimSpace(req.Author),
		CorrectionType: correctionType,
	}
	if len(req.BBox) > 0 {
		box, err := geometry.FromPoints(req.BBox)
		if err != nil {
			s.logger.Warn("correction bbox ignored",
				"document_id", documentID,
				"word_ref", c.WordRef,
				"error", err)
		} else {
			c.BBoxSnapshot = &box
		}
	}

	var doc *entity.Document
	switch row, err := s.documents.GetByID(ctx, documentID); {
	case err == nil:
		doc = row
	case status.Code(err) == codes.NotFound:
		s.logger.Warn("correction.orphaned", "document_id", documentID, "word_ref", c.WordRef)
	default:
		return nil, status.Errorf(codes.Internal, "load document: %v", err)
	}

	var word *entity.Word
	if doc != nil && c.WordRef != "" {
		row, err := s.words.GetByRef(ctx, documentID, c.WordRef)
		switch {
		case err == nil:
			word = row
		case errors.Is(err, common.ErrInvalidReference):
			s.logger.Warn("correction word not found", "document_id", documentID, "word_ref", c.WordRef)
		default:
			return nil, status.Errorf(codes.Internal, "load word: %v", err)
		}
	}

	wordUpdated := false
	if word != nil {
		state := repository.ReviewState{
			Text:                     req.CorrectedText,
			AutoCorrected:            word.AutoCorrected,
			ManuallyCorrected:        true,
			AutoCorrectionOverridden: word.AutoCorrectionOverridden,
		}
		if word.OriginalText == nil {
			before := word.Text
			state.OriginalText = &before
		}
		if word.AutoCorrected && word.Text != req.CorrectedText {
			state.AutoCorrectionOverridden = true
		}
		if err := s.words.UpdateReviewState(ctx, word.ID, state); err != nil {
			return nil, status.Errorf(codes.Internal, "update word: %v", err)
		}
		wordUpdated = true
	}

	stored, err := s.corrections.Append(ctx, c)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "append correction: %v", err)
	}
	s.metrics.CorrectionsRecorded.Inc()

	result := &RecordCorrectionResult{
		Correction:  stored,
		Orphaned:    doc == nil,
		WordUpdated: wordUpdated,
	}
	if doc != nil {
		entry, overwrote, err := s.learner.Observe(ctx, *stored, doc.DocumentType)
		if err != nil {
			s.logger.Error("failed to learn from correction", "document_id", documentID, "error", err)
		} else if entry != nil {
			result.LexiconEntry = entry
			s.metrics.LexiconPromotions.Inc()
			if overwrote {
				s.metrics.LexiconOverwrites.Inc()
			}
		}

		result.SampleCollected = s.collectSample(ctx, stored, word)
	}

	s.logger.Info("correction recorded",
		"document_id", documentID,
		"word_ref", stored.WordRef,
		"author", stored.Author,
		"orphaned", result.Orphaned,
		"word_updated", wordUpdated)

	return result, nil
}

// collectSample crops the corrected word from the stored page image. Geometry
// comes from the correction snapshot, falling back to the word row.
func (s *Service) collectSample(ctx context.Context, c *entity.Correction, word *entity.Word) bool {
	bbox := c.BBoxSnapshot
	if bbox == nil && word != nil {
		bbox = word.Geometry
	}
	if bbox == nil {
		return false
	}

	page, err := s.pages.GetByDocumentAndIndex(ctx, c.DocumentID, c.PageIndex)
	if err != nil {
		s.logger.Debug("no page for training sample",
			"document_id", c.DocumentID,
			"page_index", c.PageIndex,
			"error", err)
		return false
	}
	if page.ImagePath == "" {
		return false
	}

	if _, err := s.collector.Collect(ctx, training.Request{
		DocumentID:    c.DocumentID,
		PageIndex:     c.PageIndex,
		WordRef:       c.WordRef,
		OriginalText:  c.OriginalText,
		CorrectedText: c.CorrectedText,
		BBox:          bbox,
		PageImagePath: page.ImagePath,
	}); err != nil {
		s.logger.Error("failed to collect training sample",
			"document_id", c.DocumentID,
			"word_ref", c.WordRef,
			"error", err)
		return false
	}
	s.metrics.TrainingSamples.Inc()
	return true
}

// DocumentDetail pairs a document with its pages.
type DocumentDetail struct {
	Document *entity.Document
	Pages    []entity.Page
}

// GetDocument loads one document and its pages.
func (s *Service) GetDocument(ctx context.Context, id string) (*DocumentDetail, error) {
	documentID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		s.logger.Error("invalid document_id format", "document_id", id, "error", err)
		return nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}

	doc, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, err
		}
		return nil, status.Errorf(codes.Internal, "load document: %v", err)
	}
	pages, err := s.pages.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "load pages: %v", err)
	}

	return &DocumentDetail{Document: doc, Pages: pages}, nil
}

// GetCorrectedWordsRequest identifies one page of one document.
type GetCorrectedWordsRequest struct {
	DocumentID string
	PageIndex  int
}

// GetCorrectedWords loads a page's words, applies the document's correction
// history and the learned lexicon, and returns the rewritten words. The read
// never mutates stored state.
func (s *Service) GetCorrectedWords(ctx context.Context, req GetCorrectedWordsRequest) (*resolve.PageResult, error) {
	documentID, err := uuid.Parse(strings.TrimSpace(req.DocumentID))
	if err != nil {
		s.logger.Error("invalid document_id format", "document_id", req.DocumentID, "error", err)
		return nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}
	if req.PageIndex < 0 {
		return nil, status.Error(codes.InvalidArgument, "page_index must be >= 0")
	}

	doc, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, err
		}
		return nil, status.Errorf(codes.Internal, "load document: %v", err)
	}

	words, err := s.words.ListByDocumentPage(ctx, documentID, req.PageIndex)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "load words: %v", err)
	}

	result, err := s.resolver.ResolvePage(ctx, documentID, doc.DocumentType, words)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "resolve page: %v", err)
	}
	for _, rw := range result.Rewrites {
		s.metrics.WordsRewritten.WithLabelValues(rw.Strategy).Inc()
	}

	s.logger.Info("page resolved",
		"document_id", documentID,
		"page_index", req.PageIndex,
		"words", len(result.Words),
		"rewrites", len(result.Rewrites))

	return result, nil
}

// LexiconRule is the read-side view of one learned entry.
type LexiconRule struct {
	Corrected string `json:"corrected"`
	Frequency int    `json:"frequency"`
}

// GetLexicon returns the learned rules for one scope, keyed by misspelling.
// An empty scope means global.
func (s *Service) GetLexicon(ctx context.Context, scope string) (map[string]LexiconRule, error) {
	scope = strings.TrimSpace(scope)
	if scope == "" {
		scope = constants.ScopeGlobal
	}
	if scope != constants.ScopeGlobal {
		if _, ok := constants.CanonicalType(scope); !ok {
			return nil, status.Errorf(codes.InvalidArgument, "unknown lexicon scope %q", scope)
		}
	}

	entries, err := s.lexiconRepo.Snapshot(ctx, []string{scope})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "load lexicon: %v", err)
	}

	rules := make(map[string]LexiconRule, len(entries))
	for _, e := range entries {
		rules[e.Misspelled] = LexiconRule{Corrected: e.Corrected, Frequency: e.Frequency}
	}
	return rules, nil
}

// GetCorrectionStats aggregates the correction log. An empty documentID
// covers the whole log.
func (s *Service) GetCorrectionStats(ctx context.Context, documentID string) (*entity.CorrectionStats, error) {
	var filter *uuid.UUID
	if trimmed := strings.TrimSpace(documentID); trimmed != "" {
		id, err := uuid.Parse(trimmed)
		if err != nil {
			s.logger.Error("invalid document_id format for stats", "document_id", documentID, "error", err)
			return nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
		}
		filter = &id
	}

	stats, err := s.corrections.Stats(ctx, filter)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "aggregate corrections: %v", err)
	}
	return stats, nil
}
