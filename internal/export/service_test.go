package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/veridoc/ocr-review/constants"
	"github.com/veridoc/ocr-review/internal/common"
	"github.com/veridoc/ocr-review/internal/entity"
	"github.com/veridoc/ocr-review/internal/geometry"
	"github.com/veridoc/ocr-review/internal/repository"
	"github.com/veridoc/ocr-review/internal/resolve"
)

type stubDocuments struct {
	doc *entity.Document
}

func (s *stubDocuments) Create(context.Context, *repository.CreateDocumentRequest) (*entity.Document, error) {
	return nil, common.ErrInternal
}

func (s *stubDocuments) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	if s.doc == nil || s.doc.ID != id {
		return nil, common.NotFoundErrorf("document %s not found", id)
	}
	out := *s.doc
	return &out, nil
}

func (s *stubDocuments) MarkProcessed(context.Context, uuid.UUID, string, float64) error {
	return nil
}

func (s *stubDocuments) MarkFailed(context.Context, uuid.UUID, string) error { return nil }

func (s *stubDocuments) List(context.Context, int) ([]entity.Document, error) { return nil, nil }

type stubPages struct {
	rows []entity.Page
}

func (s *stubPages) Create(context.Context, uuid.UUID, int, string, int, int) (*entity.Page, error) {
	return nil, common.ErrInternal
}

func (s *stubPages) GetByDocumentAndIndex(context.Context, uuid.UUID, int) (*entity.Page, error) {
	return nil, common.ErrNotFound
}

func (s *stubPages) ListByDocument(context.Context, uuid.UUID) ([]entity.Page, error) {
	return s.rows, nil
}

type stubWords struct {
	byPage map[int][]entity.Word
}

func (s *stubWords) CreateBatch(context.Context, uuid.UUID, []entity.Word) ([]entity.Word, error) {
	return nil, common.ErrInternal
}

func (s *stubWords) ListByDocumentPage(_ context.Context, _ uuid.UUID, pageIndex int) ([]entity.Word, error) {
	return s.byPage[pageIndex], nil
}

func (s *stubWords) GetByRef(context.Context, uuid.UUID, string) (*entity.Word, error) {
	return nil, common.ErrNotFound
}

func (s *stubWords) UpdateReviewState(context.Context, uuid.UUID, repository.ReviewState) error {
	return nil
}

func (s *stubWords) UpdateGeometry(context.Context, uuid.UUID, [][]float64) error { return nil }

type stubCorrections struct {
	log []entity.Correction
}

func (s *stubCorrections) ListByDocument(context.Context, uuid.UUID) ([]entity.Correction, error) {
	return s.log, nil
}

type stubLexicon struct{}

func (stubLexicon) Snapshot(context.Context, []string) ([]entity.LexiconEntry, error) {
	return nil, nil
}

func TestExportWordsXLSX(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	docID := uuid.New()

	conf := 0.98
	box := geometry.BBox{X1: 0.1, Y1: 0.2, X2: 0.3, Y2: 0.25}
	words := &stubWords{byPage: map[int][]entity.Word{
		0: {
			{PageIndex: 0, WordIndex: 0, Text: "Tota1", Confidence: &conf, Geometry: &box},
			{PageIndex: 0, WordIndex: 1, Text: "ok"},
		},
	}}
	corrections := &stubCorrections{log: []entity.Correction{
		{DocumentID: docID, OriginalText: "Tota1", CorrectedText: "Total", Author: "analyst1"},
	}}

	resolver := resolve.NewResolver(corrections, stubLexicon{}, resolve.Config{AutoCorrection: true}, logger)
	svc := NewService(
		&stubDocuments{doc: &entity.Document{ID: docID, DocumentType: string(constants.TypeInvoice)}},
		&stubPages{rows: []entity.Page{{ID: uuid.New(), DocumentID: docID, PageIndex: 0}}},
		words,
		resolver,
		logger,
	)

	out, err := svc.ExportWordsXLSX(context.Background(), docID)
	if err != nil {
		t.Fatalf("ExportWordsXLSX() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	const sheet = "Words"
	cell := func(ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", ref, err)
		}
		return v
	}

	if got := cell("A1"); got != "Page" {
		t.Errorf("A1 = %q, want header row", got)
	}
	if got := cell("B2"); got != "0:0:0:0" {
		t.Errorf("B2 = %q, want word ref", got)
	}
	if got := cell("C2"); got != "Total" {
		t.Errorf("C2 = %q, want corrected text %q", got, "Total")
	}
	if got := cell("D2"); got != "Tota1" {
		t.Errorf("D2 = %q, want original text %q", got, "Tota1")
	}
	if got := cell("G2"); got != "TRUE" {
		t.Errorf("G2 = %q, want manually corrected flag", got)
	}
	if got := cell("I2"); got != "0.1000,0.2000,0.3000,0.2500" {
		t.Errorf("I2 = %q, want formatted bbox", got)
	}

	// Second word passes through untouched, without geometry.
	if got := cell("C3"); got != "ok" {
		t.Errorf("C3 = %q, want %q", got, "ok")
	}
	if got := cell("I3"); got != "" {
		t.Errorf("I3 = %q, want empty bbox", got)
	}
}

func TestExportWordsXLSX_UnknownDocument(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	resolver := resolve.NewResolver(&stubCorrections{}, stubLexicon{}, resolve.Config{}, logger)
	svc := NewService(&stubDocuments{}, &stubPages{}, &stubWords{}, resolver, logger)

	if _, err := svc.ExportWordsXLSX(context.Background(), uuid.New()); err == nil {
		t.Error("ExportWordsXLSX() expected error for unknown document")
	}
}
