package entity

import (
	"time"

	"github.com/google/uuid"
)

// TrainingSample represents a collected (word image, label) pair for data
// transfer between layers. Never mutated after creation.
type TrainingSample struct {
	ID            uuid.UUID `json:"id"`
	DocumentID    uuid.UUID `json:"document_id"`
	WordRef       string    `json:"word_ref"`
	ImagePath     string    `json:"image_path"`
	OriginalText  string    `json:"original_text"`
	CorrectedText string    `json:"corrected_text"`
	CreatedAt     time.Time `json:"created_at"`
}
