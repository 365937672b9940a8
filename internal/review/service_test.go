package review

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
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

type fakeDocumentRepo struct {
	rows      map[uuid.UUID]*entity.Document
	createErr error
}

func (f *fakeDocumentRepo) Create(_ context.Context, req *repository.CreateDocumentRequest) (*entity.Document, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	doc := &entity.Document{
		ID:           uuid.New(),
		Filename:     req.Filename,
		ContentType:  req.ContentType,
		StoragePath:  req.StoragePath,
		Status:       string(constants.StatusUploaded),
		DocumentType: string(constants.TypeUnknown),
		UploadedAt:   time.Now(),
	}
	f.rows[doc.ID] = doc
	out := *doc
	return &out, nil
}

func (f *fakeDocumentRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	doc, ok := f.rows[id]
	if !ok {
		return nil, common.NotFoundErrorf("document %s not found", id)
	}
	out := *doc
	return &out, nil
}

func (f *fakeDocumentRepo) MarkProcessed(_ context.Context, id uuid.UUID, documentType string, qualityScore float64) error {
	doc, ok := f.rows[id]
	if !ok {
		return common.NotFoundErrorf("document %s not found", id)
	}
	doc.Status = string(constants.StatusProcessed)
	doc.DocumentType = documentType
	doc.QualityScore = &qualityScore
	return nil
}

func (f *fakeDocumentRepo) MarkFailed(_ context.Context, id uuid.UUID, message string) error {
	doc, ok := f.rows[id]
	if !ok {
		return common.NotFoundErrorf("document %s not found", id)
	}
	doc.Status = string(constants.StatusFailed)
	doc.ProcessingError = &message
	return nil
}

func (f *fakeDocumentRepo) List(_ context.Context, _ int) ([]entity.Document, error) {
	out := make([]entity.Document, 0, len(f.rows))
	for _, doc := range f.rows {
		out = append(out, *doc)
	}
	return out, nil
}

type fakePageRepo struct {
	rows      []entity.Page
	createErr error
}

func (f *fakePageRepo) Create(_ context.Context, documentID uuid.UUID, pageIndex int, imagePath string, width, height int) (*entity.Page, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	page := entity.Page{
		ID:         uuid.New(),
		DocumentID: documentID,
		PageIndex:  pageIndex,
		ImagePath:  imagePath,
		Width:      width,
		Height:     height,
	}
	f.rows = append(f.rows, page)
	out := page
	return &out, nil
}

func (f *fakePageRepo) GetByDocumentAndIndex(_ context.Context, documentID uuid.UUID, pageIndex int) (*entity.Page, error) {
	for _, page := range f.rows {
		if page.DocumentID == documentID && page.PageIndex == pageIndex {
			out := page
			return &out, nil
		}
	}
	return nil, common.NotFoundErrorf("page %d of document %s not found", pageIndex, documentID)
}

func (f *fakePageRepo) ListByDocument(_ context.Context, documentID uuid.UUID) ([]entity.Page, error) {
	var out []entity.Page
	for _, page := range f.rows {
		if page.DocumentID == documentID {
			out = append(out, page)
		}
	}
	return out, nil
}

type fakeWordRepo struct {
	pages    *fakePageRepo
	rows     []entity.Word
	batchErr error
	updated  map[uuid.UUID]repository.ReviewState
}

func (f *fakeWordRepo) CreateBatch(_ context.Context, pageID uuid.UUID, words []entity.Word) ([]entity.Word, error) {
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	out := make([]entity.Word, len(words))
	for i, w := range words {
		w.ID = uuid.New()
		w.PageID = pageID
		out[i] = w
	}
	f.rows = append(f.rows, out...)
	return out, nil
}

func (f *fakeWordRepo) pageIDs(documentID uuid.UUID, pageIndex int) map[uuid.UUID]bool {
	ids := map[uuid.UUID]bool{}
	for _, page := range f.pages.rows {
		if page.DocumentID == documentID && (pageIndex < 0 || page.PageIndex == pageIndex) {
			ids[page.ID] = true
		}
	}
	return ids
}

func (f *fakeWordRepo) ListByDocumentPage(_ context.Context, documentID uuid.UUID, pageIndex int) ([]entity.Word, error) {
	ids := f.pageIDs(documentID, pageIndex)
	var out []entity.Word
	for _, w := range f.rows {
		if ids[w.PageID] {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWordRepo) GetByRef(_ context.Context, documentID uuid.UUID, ref string) (*entity.Word, error) {
	page, block, line, word, err := entity.ParseWordRef(ref)
	if err != nil {
		return nil, common.NewAppError("WORD_REF", ref, common.ErrInvalidReference)
	}
	ids := f.pageIDs(documentID, page)
	for _, w := range f.rows {
		if ids[w.PageID] && w.BlockIndex == block && w.LineIndex == line && w.WordIndex == word {
			out := w
			return &out, nil
		}
	}
	return nil, common.NewAppError("WORD_REF", ref, common.ErrInvalidReference)
}

func (f *fakeWordRepo) UpdateReviewState(_ context.Context, id uuid.UUID, state repository.ReviewState) error {
	for i := range f.rows {
		if f.rows[i].ID != id {
			continue
		}
		f.rows[i].Text = state.Text
		if state.OriginalText != nil {
			f.rows[i].OriginalText = state.OriginalText
		}
		f.rows[i].AutoCorrected = state.AutoCorrected
		f.rows[i].ManuallyCorrected = state.ManuallyCorrected
		f.rows[i].AutoCorrectionOverridden = state.AutoCorrectionOverridden
		if f.updated == nil {
			f.updated = map[uuid.UUID]repository.ReviewState{}
		}
		f.updated[id] = state
		return nil
	}
	return common.NotFoundErrorf("word %s not found", id)
}

func (f *fakeWordRepo) UpdateGeometry(_ context.Context, id uuid.UUID, points [][]float64) error {
	for i := range f.rows {
		if f.rows[i].ID != id {
			continue
		}
		box, err := geometry.FromPoints(points)
		if err != nil {
			return err
		}
		f.rows[i].Geometry = &box
		return nil
	}
	return common.NotFoundErrorf("word %s not found", id)
}

type fakeCorrectionRepo struct {
	log       []entity.Correction
	appendErr error
	seq       int
}

func (f *fakeCorrectionRepo) Append(_ context.Context, c entity.Correction) (*entity.Correction, error) {
	if f.appendErr != nil {
		return nil, f.appendErr
	}
	f.seq++
	c.ID = uuid.New()
	c.CreatedAt = time.Unix(int64(1700000000+f.seq), 0)
	if c.Author == "" {
		c.Author = "system"
	}
	if c.CorrectionType == "" {
		c.CorrectionType = string(constants.CorrectionTextEdit)
	}
	f.log = append(f.log, c)
	out := c
	return &out, nil
}

func (f *fakeCorrectionRepo) ListByDocument(_ context.Context, documentID uuid.UUID) ([]entity.Correction, error) {
	var out []entity.Correction
	for _, c := range f.log {
		if c.DocumentID == documentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCorrectionRepo) CountPair(_ context.Context, originalText, correctedText, _ string) (int, error) {
	n := 0
	for _, c := range f.log {
		if c.OriginalText == originalText && c.CorrectedText == correctedText {
			n++
		}
	}
	return n, nil
}

func (f *fakeCorrectionRepo) Stats(_ context.Context, documentID *uuid.UUID) (*entity.CorrectionStats, error) {
	stats := &entity.CorrectionStats{
		ByAuthor:  map[string]int{},
		ByPattern: map[string]int{},
	}
	originals := map[string]struct{}{}
	for _, c := range f.log {
		if documentID != nil && c.DocumentID != *documentID {
			continue
		}
		stats.TotalCorrections++
		stats.ByAuthor[c.Author]++
		stats.ByPattern[c.OriginalText+" -> "+c.CorrectedText]++
		originals[c.OriginalText] = struct{}{}
		ts := c.CreatedAt
		if stats.FirstAt == nil || ts.Before(*stats.FirstAt) {
			first := ts
			stats.FirstAt = &first
		}
		if stats.LastAt == nil || ts.After(*stats.LastAt) {
			last := ts
			stats.LastAt = &last
		}
	}
	stats.UniqueOriginals = len(originals)
	return stats, nil
}

type fakeLexiconRepo struct {
	entries map[string]*entity.LexiconEntry
}

func lexKey(misspelled, scope string) string { return misspelled + "|" + scope }

func (f *fakeLexiconRepo) Get(_ context.Context, misspelled, scope string) (*entity.LexiconEntry, error) {
	entry, ok := f.entries[lexKey(misspelled, scope)]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *entry
	return &out, nil
}

func (f *fakeLexiconRepo) Upsert(_ context.Context, misspelled, corrected, scope string, initialFrequency int) (*entity.LexiconEntry, error) {
	key := lexKey(misspelled, scope)
	if existing, ok := f.entries[key]; ok {
		existing.Corrected = corrected
		existing.Frequency++
		out := *existing
		return &out, nil
	}
	entry := &entity.LexiconEntry{
		ID:         uuid.New(),
		Misspelled: misspelled,
		Corrected:  corrected,
		Scope:      scope,
		Frequency:  initialFrequency,
	}
	f.entries[key] = entry
	out := *entry
	return &out, nil
}

func (f *fakeLexiconRepo) Snapshot(_ context.Context, scopes []string) ([]entity.LexiconEntry, error) {
	wanted := map[string]bool{}
	for _, s := range scopes {
		wanted[s] = true
	}
	var out []entity.LexiconEntry
	for _, entry := range f.entries {
		if wanted[entry.Scope] {
			out = append(out, *entry)
		}
	}
	return out, nil
}

func (f *fakeLexiconRepo) seed(misspelled, corrected, scope string, frequency int) {
	f.entries[lexKey(misspelled, scope)] = &entity.LexiconEntry{
		ID:         uuid.New(),
		Misspelled: misspelled,
		Corrected:  corrected,
		Scope:      scope,
		Frequency:  frequency,
	}
}

type fakeSampleStore struct {
	rows []entity.TrainingSample
}

func (f *fakeSampleStore) Save(_ context.Context, sample entity.TrainingSample) (*entity.TrainingSample, error) {
	sample.ID = uuid.New()
	f.rows = append(f.rows, sample)
	out := sample
	return &out, nil
}

type testEnv struct {
	svc         *Service
	documents   *fakeDocumentRepo
	pages       *fakePageRepo
	words       *fakeWordRepo
	corrections *fakeCorrectionRepo
	lexicon     *fakeLexiconRepo
	samples     *fakeSampleStore
	rec         *metrics.Recorder
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	documents := &fakeDocumentRepo{rows: map[uuid.UUID]*entity.Document{}}
	pages := &fakePageRepo{}
	words := &fakeWordRepo{pages: pages}
	corrections := &fakeCorrectionRepo{}
	lexiconRepo := &fakeLexiconRepo{entries: map[string]*entity.LexiconEntry{}}
	samples := &fakeSampleStore{}
	rec := metrics.NewRecorder()

	svc := NewService(Deps{
		Documents:   documents,
		Pages:       pages,
		Words:       words,
		Corrections: corrections,
		Lexicon:     lexiconRepo,
		Extractor:   ocr.NewExtractor(logger),
		Classifier:  classify.NewClassifier(0, logger),
		Scorer:      quality.NewScorer(logger),
		Resolver:    resolve.NewResolver(corrections, lexiconRepo, resolve.Config{AutoCorrection: true}, logger),
		Learner:     lexicon.NewLearner(corrections, lexiconRepo, common.LexiconConfig{LearningThreshold: 2}, logger),
		Collector:   training.NewCollector(samples, common.TrainingConfig{SamplesDir: t.TempDir(), MinSamples: 10}, logger),
		Metrics:     rec,
	}, logger)

	return &testEnv{
		svc:         svc,
		documents:   documents,
		pages:       pages,
		words:       words,
		corrections: corrections,
		lexicon:     lexiconRepo,
		samples:     samples,
		rec:         rec,
	}
}

func (e *testEnv) seedDocument(docType string) *entity.Document {
	doc := &entity.Document{
		ID:           uuid.New(),
		Filename:     "scan.json",
		Status:       string(constants.StatusProcessed),
		DocumentType: docType,
		UploadedAt:   time.Now(),
	}
	e.documents.rows[doc.ID] = doc
	return doc
}

func (e *testEnv) seedPage(documentID uuid.UUID, pageIndex int, imagePath string) entity.Page {
	page, _ := e.pages.Create(context.Background(), documentID, pageIndex, imagePath, 800, 600)
	return *page
}

func (e *testEnv) seedWord(pageID uuid.UUID, wordIndex int, text string, box *geometry.BBox) entity.Word {
	w := entity.Word{
		ID:        uuid.New(),
		PageID:    pageID,
		WordIndex: wordIndex,
		Text:      text,
		Geometry:  box,
	}
	e.words.rows = append(e.words.rows, w)
	return w
}

func makePageImage(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 100, 80))
	for y := 0; y < 80; y++ {
		for x := 0; x < 100; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 40, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "page0.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create page image: %v", err)
	}
	defer func() { _ = f.Close() }()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode page image: %v", err)
	}
	return path
}

func boxPtr(x1, y1, x2, y2 float64) *geometry.BBox {
	return &geometry.BBox{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

const invoicePayload = `{
  "pages": [
    {
      "page_idx": 0,
      "dimensions": [1000, 800],
      "blocks": [
        {
          "lines": [
            {
              "words": [
                {"value": "Invoice", "confidence": 0.99, "geometry": [[0.1, 0.1], [0.2, 0.12]]},
                {"value": "Number:", "confidence": 0.97, "geometry": [[0.22, 0.1], [0.3, 0.12]]},
                {"value": "INV-2026-001", "confidence": 0.95, "geometry": [[0.32, 0.1], [0.45, 0.12]]}
              ]
            },
            {
              "words": [
                {"value": "Amount", "confidence": 0.98, "geometry": [[0.1, 0.2], [0.18, 0.22]]},
                {"value": "Due:", "confidence": 0.96, "geometry": [[0.2, 0.2], [0.25, 0.22]]},
                {"value": "$1,250.00", "confidence": 0.93, "geometry": [[0.27, 0.2], [0.38, 0.22]]}
              ]
            },
            {
              "words": [
                {"value": "Due", "confidence": 0.98, "geometry": [[0.1, 0.3], [0.14, 0.32]]},
                {"value": "Date:", "confidence": 0.97, "geometry": [[0.16, 0.3], [0.22, 0.32]]},
                {"value": "01/31/2026", "confidence": 0.94, "geometry": [[0.24, 0.3], [0.34, 0.32]]}
              ]
            },
            {
              "words": [
                {"value": "Total", "confidence": 0.99, "geometry": [[0.1, 0.4], [0.16, 0.42]]},
                {"value": "Amount", "confidence": 0.98, "geometry": [[0.18, 0.4], [0.26, 0.42]]},
                {"value": "Bill", "confidence": 0.97, "geometry": [[0.28, 0.4], [0.32, 0.42]]}
              ]
            }
          ]
        }
      ]
    }
  ]
}`

func TestService_IngestDocument(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.svc.IngestDocument(context.Background(), IngestDocumentRequest{
		Filename:       "invoice.json",
		ContentType:    "application/json",
		StoragePath:    "/data/uploads/invoice.json",
		Payload:        []byte(invoicePayload),
		PageImagePaths: []string{"/data/pages/invoice-0.png"},
	})
	if err != nil {
		t.Fatalf("IngestDocument() error = %v", err)
	}

	if res.Pages != 1 || res.Words != 12 {
		t.Errorf("stored %d pages / %d words, want 1 / 12", res.Pages, res.Words)
	}
	if res.Document.Status != string(constants.StatusProcessed) {
		t.Errorf("Status = %q, want %q", res.Document.Status, constants.StatusProcessed)
	}
	if res.Document.DocumentType != string(constants.TypeInvoice) {
		t.Errorf("DocumentType = %q, want %q", res.Document.DocumentType, constants.TypeInvoice)
	}
	if res.Document.QualityScore == nil || *res.Document.QualityScore < 0.8 {
		t.Errorf("QualityScore = %v, want >= 0.8 for clean geometry-backed words", res.Document.QualityScore)
	}
	if res.Decision.Queue != quality.QueueAutoProcess {
		t.Errorf("Queue = %q, want %q", res.Decision.Queue, quality.QueueAutoProcess)
	}

	if len(env.pages.rows) != 1 {
		t.Fatalf("page rows = %d, want 1", len(env.pages.rows))
	}
	page := env.pages.rows[0]
	if page.ImagePath != "/data/pages/invoice-0.png" || page.Width != 800 || page.Height != 1000 {
		t.Errorf("page = %+v, want image path and 800x1000 size", page)
	}
	if len(env.words.rows) != 12 {
		t.Errorf("word rows = %d, want 12", len(env.words.rows))
	}

	stored := env.documents.rows[res.Document.ID]
	if stored.Status != string(constants.StatusProcessed) || stored.DocumentType != string(constants.TypeInvoice) {
		t.Errorf("stored document = %+v, want processed invoice", stored)
	}
}

func TestService_IngestDocument_Rejections(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name    string
		req     IngestDocumentRequest
		message string
	}{
		{
			name:    "missing filename",
			req:     IngestDocumentRequest{Payload: []byte(`{"pages": []}`)},
			message: "filename",
		},
		{
			name:    "missing payload",
			req:     IngestDocumentRequest{Filename: "scan.json"},
			message: "payload",
		},
		{
			name:    "not json",
			req:     IngestDocumentRequest{Filename: "scan.json", Payload: []byte("not json")},
			message: "invalid payload",
		},
		{
			name: "schema violation",
			req: IngestDocumentRequest{
				Filename: "scan.json",
				Payload:  []byte(`{"pages": [{"blocks": [{"lines": [{"words": [{"value": "A", "confidence": 7}]}]}]}]}`),
			},
			message: "invalid payload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.IngestDocument(context.Background(), tt.req)
			if status.Code(err) != codes.InvalidArgument {
				t.Fatalf("IngestDocument() error = %v, want InvalidArgument", err)
			}
		})
	}

	if len(env.documents.rows) != 0 {
		t.Errorf("document rows = %d, want 0 after rejected payloads", len(env.documents.rows))
	}
}

func TestService_IngestDocument_PersistFailureMarksFailed(t *testing.T) {
	env := newTestEnv(t)
	env.pages.createErr = errors.New("connection refused")

	_, err := env.svc.IngestDocument(context.Background(), IngestDocumentRequest{
		Filename: "invoice.json",
		Payload:  []byte(invoicePayload),
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("IngestDocument() error = %v, want Internal", err)
	}

	if len(env.documents.rows) != 1 {
		t.Fatalf("document rows = %d, want 1", len(env.documents.rows))
	}
	for _, doc := range env.documents.rows {
		if doc.Status != string(constants.StatusFailed) {
			t.Errorf("Status = %q, want %q", doc.Status, constants.StatusFailed)
		}
		if doc.ProcessingError == nil {
			t.Error("ProcessingError = nil, want failure message")
		}
	}
}

func TestService_RecordCorrection_UpdatesWordAndLearns(t *testing.T) {
	env := newTestEnv(t)
	doc := env.seedDocument(string(constants.TypeInvoice))
	page := env.seedPage(doc.ID, 0, "")
	word := env.seedWord(page.ID, 0, "Tota1", nil)

	req := RecordCorrectionRequest{
		DocumentID:     doc.ID.String(),
		PageIndex:      0,
		WordRef:        "0:0:0:0",
		OriginalText:   "Tota1",
		CorrectedText:  "Total",
		Author:         "analyst1",
		CorrectionType: string(constants.CorrectionTextEdit),
	}

	res, err := env.svc.RecordCorrection(context.Background(), req)
	if err != nil {
		t.Fatalf("RecordCorrection() error = %v", err)
	}
	if res.Orphaned || !res.WordUpdated {
		t.Errorf("Orphaned = %v, WordUpdated = %v, want false, true", res.Orphaned, res.WordUpdated)
	}
	if res.Correction.Author != "analyst1" {
		t.Errorf("Author = %q, want %q", res.Correction.Author, "analyst1")
	}
	if res.LexiconEntry != nil {
		t.Errorf("LexiconEntry = %+v, want nil on first observation (threshold 2)", res.LexiconEntry)
	}

	state, ok := env.words.updated[word.ID]
	if !ok {
		t.Fatal("word review state not updated")
	}
	if state.Text != "Total" || !state.ManuallyCorrected {
		t.Errorf("state = %+v, want manually corrected text %q", state, "Total")
	}
	if state.OriginalText == nil || *state.OriginalText != "Tota1" {
		t.Errorf("OriginalText = %v, want first-rewrite capture %q", state.OriginalText, "Tota1")
	}

	// The identical correction again crosses the learning threshold.
	res, err = env.svc.RecordCorrection(context.Background(), req)
	if err != nil {
		t.Fatalf("RecordCorrection() second call error = %v", err)
	}
	if res.LexiconEntry == nil {
		t.Fatal("LexiconEntry = nil, want promotion at threshold 2")
	}
	if res.LexiconEntry.Scope != string(constants.TypeInvoice) || res.LexiconEntry.Frequency != 2 {
		t.Errorf("LexiconEntry = %+v, want invoice scope with frequency 2", res.LexiconEntry)
	}

	if got := testutil.ToFloat64(env.rec.CorrectionsRecorded); got != 2 {
		t.Errorf("corrections_recorded_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(env.rec.LexiconPromotions); got != 1 {
		t.Errorf("lexicon_promotions_total = %v, want 1", got)
	}
}

func TestService_RecordCorrection_NoopRejected(t *testing.T) {
	env := newTestEnv(t)
	doc := env.seedDocument(string(constants.TypeInvoice))

	_, err := env.svc.RecordCorrection(context.Background(), RecordCorrectionRequest{
		DocumentID:    doc.ID.String(),
		WordRef:       "0:0:0:0",
		OriginalText:  "Total",
		CorrectedText: "Total",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("RecordCorrection() error = %v, want InvalidArgument", err)
	}
	if len(env.corrections.log) != 0 {
		t.Errorf("log length = %d, want 0 (no-ops never reach the log)", len(env.corrections.log))
	}
	if got := testutil.ToFloat64(env.rec.NoopRejected); got != 1 {
		t.Errorf("noop_corrections_rejected_total = %v, want 1", got)
	}
}

func TestService_RecordCorrection_Validation(t *testing.T) {
	env := newTestEnv(t)
	doc := env.seedDocument(string(constants.TypeInvoice))

	tests := []struct {
		name string
		req  RecordCorrectionRequest
	}{
		{
			name: "bad uuid",
			req:  RecordCorrectionRequest{DocumentID: "not-a-uuid", OriginalText: "a", CorrectedText: "b"},
		},
		{
			name: "negative page",
			req:  RecordCorrectionRequest{DocumentID: doc.ID.String(), PageIndex: -1, OriginalText: "a", CorrectedText: "b"},
		},
		{
			name: "empty original",
			req:  RecordCorrectionRequest{DocumentID: doc.ID.String(), CorrectedText: "b"},
		},
		{
			name: "empty corrected",
			req:  RecordCorrectionRequest{DocumentID: doc.ID.String(), OriginalText: "a"},
		},
		{
			name: "unknown correction type",
			req: RecordCorrectionRequest{
				DocumentID:     doc.ID.String(),
				OriginalText:   "a",
				CorrectedText:  "b",
				CorrectionType: "field_relabel",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.RecordCorrection(context.Background(), tt.req)
			if status.Code(err) != codes.InvalidArgument {
				t.Errorf("RecordCorrection() error = %v, want InvalidArgument", err)
			}
		})
	}
}

func TestService_RecordCorrection_OrphanedStoredButInert(t *testing.T) {
	env := newTestEnv(t)
	missing := uuid.New()

	// A matching pair already in the log would promote on the next
	// observation if the learner ran.
	_, _ = env.corrections.Append(context.Background(), entity.Correction{
		DocumentID:    missing,
		OriginalText:  "Teh",
		CorrectedText: "The",
	})

	res, err := env.svc.RecordCorrection(context.Background(), RecordCorrectionRequest{
		DocumentID:    missing.String(),
		WordRef:       "0:0:0:0",
		OriginalText:  "Teh",
		CorrectedText: "The",
	})
	if err != nil {
		t.Fatalf("RecordCorrection() error = %v", err)
	}
	if !res.Orphaned {
		t.Error("Orphaned = false, want true for a missing document")
	}
	if res.WordUpdated || res.LexiconEntry != nil || res.SampleCollected {
		t.Errorf("result = %+v, want no side effects beyond the log append", res)
	}
	if len(env.corrections.log) != 2 {
		t.Errorf("log length = %d, want 2 (orphaned corrections are kept)", len(env.corrections.log))
	}
	if len(env.lexicon.entries) != 0 {
		t.Errorf("lexicon entries = %d, want 0 (orphans never feed the learner)", len(env.lexicon.entries))
	}
}

func TestService_RecordCorrection_WordMissingStillLearns(t *testing.T) {
	env := newTestEnv(t)
	doc := env.seedDocument(string(constants.TypeReceipt))
	env.seedPage(doc.ID, 0, "")

	_, _ = env.corrections.Append(context.Background(), entity.Correction{
		DocumentID:    doc.ID,
		OriginalText:  "T0TAL",
		CorrectedText: "TOTAL",
	})

	res, err := env.svc.RecordCorrection(context.Background(), RecordCorrectionRequest{
		DocumentID:    doc.ID.String(),
		WordRef:       "0:9:9:9",
		OriginalText:  "T0TAL",
		CorrectedText: "TOTAL",
	})
	if err != nil {
		t.Fatalf("RecordCorrection() error = %v", err)
	}
	if res.WordUpdated {
		t.Error("WordUpdated = true, want false for an unresolved word_ref")
	}
	if res.LexiconEntry == nil || res.LexiconEntry.Scope != string(constants.TypeReceipt) {
		t.Errorf("LexiconEntry = %+v, want receipt-scope promotion", res.LexiconEntry)
	}
}

func TestService_RecordCorrection_OverridesAutoCorrected(t *testing.T) {
	env := newTestEnv(t)
	doc := env.seedDocument(string(constants.TypeInvoice))
	page := env.seedPage(doc.ID, 0, "")

	before := "Teh"
	w := entity.Word{
		ID:            uuid.New(),
		PageID:        page.ID,
		Text:          "The",
		OriginalText:  &before,
		AutoCorrected: true,
	}
	env.words.rows = append(env.words.rows, w)

	_, err := env.svc.RecordCorrection(context.Background(), RecordCorrectionRequest{
		DocumentID:    doc.ID.String(),
		WordRef:       "0:0:0:0",
		OriginalText:  "The",
		CorrectedText: "THE",
	})
	if err != nil {
		t.Fatalf("RecordCorrection() error = %v", err)
	}

	state := env.words.updated[w.ID]
	if !state.AutoCorrected {
		t.Error("AutoCorrected = false, want true (flag survives the override)")
	}
	if !state.AutoCorrectionOverridden {
		t.Error("AutoCorrectionOverridden = false, want true")
	}
	if state.OriginalText != nil {
		t.Errorf("OriginalText = %q, want nil (set once, on the first rewrite)", *state.OriginalText)
	}
}

func TestService_RecordCorrection_CollectsSample(t *testing.T) {
	env := newTestEnv(t)
	doc := env.seedDocument(string(constants.TypeInvoice))
	page := env.seedPage(doc.ID, 0, makePageImage(t))
	env.seedWord(page.ID, 0, "Tota1", boxPtr(0.2, 0.25, 0.6, 0.75))

	res, err := env.svc.RecordCorrection(context.Background(), RecordCorrectionRequest{
		DocumentID:    doc.ID.String(),
		WordRef:       "0:0:0:0",
		OriginalText:  "Tota1",
		CorrectedText: "Total",
	})
	if err != nil {
		t.Fatalf("RecordCorrection() error = %v", err)
	}
	if !res.SampleCollected {
		t.Fatal("SampleCollected = false, want true (word geometry backs the crop)")
	}
	if len(env.samples.rows) != 1 {
		t.Fatalf("sample rows = %d, want 1", len(env.samples.rows))
	}
	sample := env.samples.rows[0]
	if sample.OriginalText != "Tota1" || sample.CorrectedText != "Total" {
		t.Errorf("sample = %+v, want Tota1 -> Total", sample)
	}
	if _, err := os.Stat(sample.ImagePath); err != nil {
		t.Errorf("crop missing on disk: %v", err)
	}
	if got := testutil.ToFloat64(env.rec.TrainingSamples); got != 1 {
		t.Errorf("training_samples_total = %v, want 1", got)
	}
}

func TestService_RecordCorrection_CollectFailureDoesNotFailIngest(t *testing.T) {
	env := newTestEnv(t)
	doc := env.seedDocument(string(constants.TypeInvoice))
	page := env.seedPage(doc.ID, 0, "/nope/missing.png")
	env.seedWord(page.ID, 0, "Tota1", boxPtr(0.2, 0.25, 0.6, 0.75))

	res, err := env.svc.RecordCorrection(context.Background(), RecordCorrectionRequest{
		DocumentID:    doc.ID.String(),
		WordRef:       "0:0:0:0",
		OriginalText:  "Tota1",
		CorrectedText: "Total",
	})
	if err != nil {
		t.Fatalf("RecordCorrection() error = %v", err)
	}
	if res.SampleCollected {
		t.Error("SampleCollected = true, want false when the page image is unreadable")
	}
	if len(env.corrections.log) != 1 {
		t.Errorf("log length = %d, want 1 (append is the source of truth)", len(env.corrections.log))
	}
}

func TestService_GetCorrectedWords(t *testing.T) {
	env := newTestEnv(t)
	doc := env.seedDocument(string(constants.TypeInvoice))
	page := env.seedPage(doc.ID, 0, "")
	env.seedWord(page.ID, 0, "KOWALSKAK<ANNA<<<", boxPtr(0.1, 0.1, 0.5, 0.15))
	env.seedWord(page.ID, 1, "Teh", boxPtr(0.1, 0.2, 0.2, 0.25))

	_, _ = env.corrections.Append(context.Background(), entity.Correction{
		DocumentID:    doc.ID,
		OriginalText:  "KOWALSKAK<ANNA<<<",
		CorrectedText: "KOWALSKA<ANNA<<<<",
		Author:        "analyst1",
	})
	env.lexicon.seed("Teh", "The", constants.ScopeGlobal, 3)

	res, err := env.svc.GetCorrectedWords(context.Background(), GetCorrectedWordsRequest{
		DocumentID: doc.ID.String(),
		PageIndex:  0,
	})
	if err != nil {
		t.Fatalf("GetCorrectedWords() error = %v", err)
	}
	if len(res.Words) != 2 {
		t.Fatalf("len(Words) = %d, want 2", len(res.Words))
	}

	if res.Words[0].Text != "KOWALSKA<ANNA<<<<" || !res.Words[0].ManuallyCorrected {
		t.Errorf("words[0] = %+v, want manual rewrite from the log", res.Words[0])
	}
	if res.Words[1].Text != "The" || !res.Words[1].AutoCorrected {
		t.Errorf("words[1] = %+v, want lexicon auto-correction", res.Words[1])
	}
	if len(res.Rewrites) != 2 {
		t.Errorf("len(Rewrites) = %d, want 2", len(res.Rewrites))
	}

	if got := testutil.ToFloat64(env.rec.WordsRewritten.WithLabelValues(resolve.StrategyExact)); got != 1 {
		t.Errorf("words_rewritten_total{exact} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(env.rec.WordsRewritten.WithLabelValues(resolve.StrategyLexicon)); got != 1 {
		t.Errorf("words_rewritten_total{lexicon} = %v, want 1", got)
	}

	// Stored words are untouched; resolution is read-only.
	if env.words.rows[0].Text != "KOWALSKAK<ANNA<<<" {
		t.Errorf("stored words[0].Text = %q, want original", env.words.rows[0].Text)
	}
}

func TestService_GetCorrectedWords_UnknownDocument(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.GetCorrectedWords(context.Background(), GetCorrectedWordsRequest{
		DocumentID: uuid.New().String(),
	})
	if status.Code(err) != codes.NotFound {
		t.Errorf("GetCorrectedWords() error = %v, want NotFound", err)
	}
}

// Corrections learned on one document auto-correct the same OCR error on a
// document processed later, with no corrections recorded for the second one.
func TestService_LearningLoopPropagates(t *testing.T) {
	env := newTestEnv(t)
	docA := env.seedDocument(string(constants.TypeInvoice))
	pageA := env.seedPage(docA.ID, 0, "")
	env.seedWord(pageA.ID, 0, "Amouut", boxPtr(0.1, 0.1, 0.3, 0.15))

	req := RecordCorrectionRequest{
		DocumentID:    docA.ID.String(),
		PageIndex:     0,
		WordRef:       "0:0:0:0",
		OriginalText:  "Amouut",
		CorrectedText: "Amount",
		Author:        "analyst1",
	}
	for i := 0; i < 2; i++ {
		if _, err := env.svc.RecordCorrection(context.Background(), req); err != nil {
			t.Fatalf("RecordCorrection() #%d error = %v", i+1, err)
		}
	}

	docB := env.seedDocument(string(constants.TypeInvoice))
	pageB := env.seedPage(docB.ID, 0, "")
	env.seedWord(pageB.ID, 0, "Amouut", boxPtr(0.2, 0.2, 0.4, 0.25))

	res, err := env.svc.GetCorrectedWords(context.Background(), GetCorrectedWordsRequest{
		DocumentID: docB.ID.String(),
		PageIndex:  0,
	})
	if err != nil {
		t.Fatalf("GetCorrectedWords() error = %v", err)
	}
	got := res.Words[0]
	if got.Text != "Amount" || !got.AutoCorrected {
		t.Errorf("word = %+v, want lexicon auto-correction to %q", got, "Amount")
	}
	if got.ManuallyCorrected {
		t.Error("ManuallyCorrected = true, want false; no one touched document B")
	}
	if got.OriginalText == nil || *got.OriginalText != "Amouut" {
		t.Errorf("OriginalText = %v, want pre-rewrite capture", got.OriginalText)
	}
	if len(res.Rewrites) != 1 || res.Rewrites[0].Strategy != resolve.StrategyLexicon {
		t.Errorf("Rewrites = %+v, want one lexicon rewrite", res.Rewrites)
	}

	history, _ := env.corrections.ListByDocument(context.Background(), docB.ID)
	if len(history) != 0 {
		t.Errorf("document B has %d corrections, want 0", len(history))
	}
}

func TestService_GetLexicon(t *testing.T) {
	env := newTestEnv(t)
	env.lexicon.seed("Teh", "The", constants.ScopeGlobal, 5)
	env.lexicon.seed("Tota1", "Total", string(constants.TypeInvoice), 2)

	global, err := env.svc.GetLexicon(context.Background(), "")
	if err != nil {
		t.Fatalf("GetLexicon() error = %v", err)
	}
	if len(global) != 1 {
		t.Fatalf("len(global) = %d, want 1", len(global))
	}
	if rule := global["Teh"]; rule.Corrected != "The" || rule.Frequency != 5 {
		t.Errorf("global[Teh] = %+v, want The with frequency 5", rule)
	}

	invoice, err := env.svc.GetLexicon(context.Background(), "invoice")
	if err != nil {
		t.Fatalf("GetLexicon() error = %v", err)
	}
	if rule := invoice["Tota1"]; rule.Corrected != "Total" {
		t.Errorf("invoice[Tota1] = %+v, want Total", rule)
	}

	if _, err := env.svc.GetLexicon(context.Background(), "novel_type"); status.Code(err) != codes.InvalidArgument {
		t.Errorf("GetLexicon(novel_type) error = %v, want InvalidArgument", err)
	}
}

func TestService_GetCorrectionStats(t *testing.T) {
	env := newTestEnv(t)
	doc := env.seedDocument(string(constants.TypeInvoice))
	other := uuid.New()

	for _, c := range []entity.Correction{
		{DocumentID: doc.ID, OriginalText: "Teh", CorrectedText: "The", Author: "analyst1"},
		{DocumentID: doc.ID, OriginalText: "Teh", CorrectedText: "The", Author: "analyst2"},
		{DocumentID: other, OriginalText: "T0TAL", CorrectedText: "TOTAL", Author: "analyst1"},
	} {
		_, _ = env.corrections.Append(context.Background(), c)
	}

	all, err := env.svc.GetCorrectionStats(context.Background(), "")
	if err != nil {
		t.Fatalf("GetCorrectionStats() error = %v", err)
	}
	if all.TotalCorrections != 3 || all.UniqueOriginals != 2 {
		t.Errorf("stats = %+v, want 3 corrections over 2 originals", all)
	}
	if all.ByPattern["Teh -> The"] != 2 {
		t.Errorf("ByPattern[Teh -> The] = %d, want 2", all.ByPattern["Teh -> The"])
	}

	scoped, err := env.svc.GetCorrectionStats(context.Background(), doc.ID.String())
	if err != nil {
		t.Fatalf("GetCorrectionStats(doc) error = %v", err)
	}
	if scoped.TotalCorrections != 2 || scoped.ByAuthor["analyst1"] != 1 {
		t.Errorf("scoped stats = %+v, want 2 corrections with 1 by analyst1", scoped)
	}

	if _, err := env.svc.GetCorrectionStats(context.Background(), "not-a-uuid"); status.Code(err) != codes.InvalidArgument {
		t.Errorf("GetCorrectionStats(bad id) error = %v, want InvalidArgument", err)
	}
}

func TestService_GetDocument(t *testing.T) {
	env := newTestEnv(t)
	doc := env.seedDocument(string(constants.TypeContract))
	env.seedPage(doc.ID, 0, "/data/pages/0.png")
	env.seedPage(doc.ID, 1, "/data/pages/1.png")

	detail, err := env.svc.GetDocument(context.Background(), doc.ID.String())
	if err != nil {
		t.Fatalf("GetDocument() error = %v", err)
	}
	if detail.Document.ID != doc.ID || len(detail.Pages) != 2 {
		t.Errorf("detail = %+v, want document with 2 pages", detail)
	}

	if _, err := env.svc.GetDocument(context.Background(), uuid.New().String()); status.Code(err) != codes.NotFound {
		t.Errorf("GetDocument(missing) error = %v, want NotFound", err)
	}
}
