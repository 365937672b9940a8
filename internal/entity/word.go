package entity

import (
	"github.com/google/uuid"

	"github.com/veridoc/ocr-review/internal/geometry"
)

// Word represents one recognized OCR token for data transfer between layers.
// Geometry is nil when the OCR payload carried a malformed bounding box; such
// words still take part in line reconstruction but are never auto-corrected.
type Word struct {
	ID         uuid.UUID      `json:"id"`
	PageID     uuid.UUID      `json:"page_id"`
	PageIndex  int            `json:"page_index"`
	BlockIndex int            `json:"block_index"`
	LineIndex  int            `json:"line_index"`
	WordIndex  int            `json:"word_index"`
	Text       string         `json:"text"`
	Confidence *float64       `json:"confidence,omitempty"`
	Geometry   *geometry.BBox `json:"geometry,omitempty"`

	// OriginalText is set on the first rewrite only and never overwritten;
	// it is the ground truth the lexicon learns from.
	OriginalText             *string `json:"original_text,omitempty"`
	AutoCorrected            bool    `json:"auto_corrected"`
	ManuallyCorrected        bool    `json:"manually_corrected"`
	AutoCorrectionOverridden bool    `json:"auto_correction_overridden"`
}
