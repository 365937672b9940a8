package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/veridoc/ocr-review/internal/geometry"
)

// Correction represents one user-submitted text override for data transfer
// between layers. Corrections are immutable once created; a newer correction
// for the same original text supersedes an older one by created_at order.
type Correction struct {
	ID             uuid.UUID      `json:"id"`
	DocumentID     uuid.UUID      `json:"document_id"`
	PageIndex      int            `json:"page_index"`
	WordRef        string         `json:"word_ref"`
	OriginalText   string         `json:"original_text"`
	CorrectedText  string         `json:"corrected_text"`
	Author         string         `json:"author"`
	CorrectionType string         `json:"correction_type"`
	BBoxSnapshot   *geometry.BBox `json:"bbox_snapshot,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}
