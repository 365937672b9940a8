package utils

import (
	"time"

	"github.com/veridoc/ocr-review/gen/ent"
	reviewpb "github.com/veridoc/ocr-review/gen/proto/review/v1"
	"github.com/veridoc/ocr-review/internal/entity"
	"github.com/veridoc/ocr-review/internal/geometry"
	"github.com/veridoc/ocr-review/internal/quality"
)

// ToDocument maps a documents row to the transfer struct. PageCount is not
// stored on the row; callers that know it fill it in.
func ToDocument(e *ent.Document) entity.Document {
	return entity.Document{
		ID:              e.ID,
		Filename:        e.Filename,
		ContentType:     e.ContentType,
		StoragePath:     e.StoragePath,
		Status:          e.Status,
		DocumentType:    e.DocumentType,
		QualityScore:    e.QualityScore,
		UploadedAt:      e.UploadedAt,
		ProcessedAt:     e.ProcessedAt,
		ProcessingError: e.ProcessingError,
	}
}

func ToPage(e *ent.Page) entity.Page {
	return entity.Page{
		ID:         e.ID,
		DocumentID: e.DocumentID,
		PageIndex:  e.PageIndex,
		ImagePath:  e.ImagePath,
		Width:      e.Width,
		Height:     e.Height,
	}
}

// ToWord maps a words row. pageIndex comes from the owning page; the words
// table does not repeat it.
func ToWord(e *ent.Word, pageIndex int) entity.Word {
	w := entity.Word{
		ID:                       e.ID,
		PageID:                   e.PageID,
		PageIndex:                pageIndex,
		BlockIndex:               e.BlockIndex,
		LineIndex:                e.LineIndex,
		WordIndex:                e.WordIndex,
		Text:                     e.Text,
		Confidence:               e.Confidence,
		OriginalText:             e.OriginalText,
		AutoCorrected:            e.AutoCorrected,
		ManuallyCorrected:        e.ManuallyCorrected,
		AutoCorrectionOverridden: e.AutoCorrectionOverridden,
	}
	w.Geometry = toBBox(e.Geometry)
	return w
}

func ToCorrection(e *ent.Correction) entity.Correction {
	return entity.Correction{
		ID:             e.ID,
		DocumentID:     e.DocumentID,
		PageIndex:      e.PageIndex,
		WordRef:        e.WordRef,
		OriginalText:   e.OriginalText,
		CorrectedText:  e.CorrectedText,
		Author:         e.Author,
		CorrectionType: e.CorrectionType,
		BBoxSnapshot:   toBBox(e.BboxSnapshot),
		CreatedAt:      e.CreatedAt,
	}
}

func ToLexiconEntry(e *ent.LexiconEntry) entity.LexiconEntry {
	return entity.LexiconEntry{
		ID:         e.ID,
		Misspelled: e.Misspelled,
		Corrected:  e.Corrected,
		Scope:      e.Scope,
		Frequency:  e.Frequency,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToTrainingSample(e *ent.TrainingSample) entity.TrainingSample {
	return entity.TrainingSample{
		ID:            e.ID,
		DocumentID:    e.DocumentID,
		WordRef:       e.WordRef,
		ImagePath:     e.ImagePath,
		OriginalText:  e.OriginalText,
		CorrectedText: e.CorrectedText,
		CreatedAt:     e.CreatedAt,
	}
}

// toBBox rebuilds a normalized box from its persisted point form. Rows
// written before geometry validation may hold junk; those map to nil.
func toBBox(points [][]float64) *geometry.BBox {
	if len(points) == 0 {
		return nil
	}
	box, err := geometry.FromPoints(points)
	if err != nil {
		return nil
	}
	return &box
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func timeOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// flattenBBox turns a box into the wire form [x1, y1, x2, y2], nil when the
// word carries no usable geometry.
func flattenBBox(b *geometry.BBox) []float64 {
	if b == nil {
		return nil
	}
	return []float64{b.X1, b.Y1, b.X2, b.Y2}
}

func ToPBDocument(d *entity.Document) *reviewpb.Document {
	return &reviewpb.Document{
		Id:              d.ID.String(),
		Filename:        d.Filename,
		ContentType:     d.ContentType,
		StoragePath:     d.StoragePath,
		Status:          d.Status,
		DocumentType:    d.DocumentType,
		QualityScore:    d.QualityScore,
		PageCount:       int32(d.PageCount),
		UploadedAt:      d.UploadedAt.UTC().Format(time.RFC3339),
		ProcessedAt:     timeOrEmpty(d.ProcessedAt),
		ProcessingError: strOrEmpty(d.ProcessingError),
	}
}

func ToPBPage(p *entity.Page) *reviewpb.Page {
	return &reviewpb.Page{
		Id:         p.ID.String(),
		DocumentId: p.DocumentID.String(),
		PageIndex:  int32(p.PageIndex),
		ImagePath:  p.ImagePath,
		Width:      int32(p.Width),
		Height:     int32(p.Height),
	}
}

func ToPBWord(w *entity.Word) *reviewpb.Word {
	return &reviewpb.Word{
		WordRef:                  entity.WordRefOf(*w),
		PageIndex:                int32(w.PageIndex),
		Text:                     w.Text,
		OriginalText:             strOrEmpty(w.OriginalText),
		Confidence:               w.Confidence,
		Bbox:                     flattenBBox(w.Geometry),
		AutoCorrected:            w.AutoCorrected,
		ManuallyCorrected:        w.ManuallyCorrected,
		AutoCorrectionOverridden: w.AutoCorrectionOverridden,
	}
}

func ToPBCorrection(c *entity.Correction) *reviewpb.Correction {
	return &reviewpb.Correction{
		Id:             c.ID.String(),
		DocumentId:     c.DocumentID.String(),
		PageIndex:      int32(c.PageIndex),
		WordRef:        c.WordRef,
		OriginalText:   c.OriginalText,
		CorrectedText:  c.CorrectedText,
		Author:         c.Author,
		CorrectionType: c.CorrectionType,
		Bbox:           flattenBBox(c.BBoxSnapshot),
		CreatedAt:      c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBLexiconEntry(e *entity.LexiconEntry) *reviewpb.LexiconEntry {
	return &reviewpb.LexiconEntry{
		Misspelled: e.Misspelled,
		Corrected:  e.Corrected,
		Scope:      e.Scope,
		Frequency:  int32(e.Frequency),
	}
}

func ToPBQuality(m quality.Metrics, d quality.Decision) *reviewpb.QualityReport {
	return &reviewpb.QualityReport{
		Confidence:       m.Confidence,
		GeometryCoverage: m.GeometryCoverage,
		CorrectionScore:  m.CorrectionScore,
		Overall:          m.Overall,
		Level:            string(m.Level),
		Queue:            d.Queue,
		Priority:         int32(d.Priority),
		ReviewMinutes:    int32(d.ReviewMinutes),
		Recommendations:  m.Recommendations,
	}
}
