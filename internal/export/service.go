package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/veridoc/ocr-review/internal/entity"
	"github.com/veridoc/ocr-review/internal/geometry"
	"github.com/veridoc/ocr-review/internal/repository"
	"github.com/veridoc/ocr-review/internal/resolve"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// review exports.
type Service struct {
	documents repository.DocumentRepository
	pages     repository.PageRepository
	words     repository.WordRepository
	resolver  *resolve.Resolver
	logger    *slog.Logger
}

func NewService(documents repository.DocumentRepository, pages repository.PageRepository, words repository.WordRepository, resolver *resolve.Resolver, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{documents: documents, pages: pages, words: words, resolver: resolver, logger: logger}
}

// ExportWordsXLSX returns an XLSX workbook (as bytes) with one row per word,
// in reading order, after the document's correction history and the learned
// lexicon are applied. The export never mutates stored words.
func (s *Service) ExportWordsXLSX(ctx context.Context, documentID uuid.UUID) ([]byte, error) {
	start := time.Now()

	doc, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	pages, err := s.pages.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("load pages: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Words"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Page",
		"Word Ref",
		"Text",
		"Original Text",
		"Confidence",
		"Auto Corrected",
		"Manually Corrected",
		"Override",
		"BBox",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	totalRewrites := 0
	for _, page := range pages {
		words, err := s.words.ListByDocumentPage(ctx, documentID, page.PageIndex)
		if err != nil {
			return nil, fmt.Errorf("load words for page %d: %w", page.PageIndex, err)
		}
		resolved, err := s.resolver.ResolvePage(ctx, documentID, doc.DocumentType, words)
		if err != nil {
			return nil, fmt.Errorf("resolve page %d: %w", page.PageIndex, err)
		}
		totalRewrites += len(resolved.Rewrites)

		for _, w := range resolved.Words {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheet, cell, v)
			}

			write(1, page.PageIndex)
			write(2, entity.WordRefOf(w))
			write(3, w.Text)

			if w.OriginalText != nil {
				write(4, *w.OriginalText)
			} else {
				write(4, "")
			}
			if w.Confidence != nil {
				write(5, *w.Confidence)
			} else {
				write(5, "")
			}

			write(6, w.AutoCorrected)
			write(7, w.ManuallyCorrected)
			write(8, w.AutoCorrectionOverridden)
			write(9, formatBBox(w.Geometry))

			row++
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "B", "B", 14) // word ref
	_ = f.SetColWidth(sheet, "C", "D", 28) // text, original
	_ = f.SetColWidth(sheet, "F", "H", 18) // provenance flags
	_ = f.SetColWidth(sheet, "I", "I", 34) // bbox

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"document_id", documentID.String(),
		"rows", row-2,
		"rewrites", totalRewrites,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func formatBBox(b *geometry.BBox) string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf("%.4f,%.4f,%.4f,%.4f", b.X1, b.Y1, b.X2, b.Y2)
}
