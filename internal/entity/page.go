package entity

import (
	"github.com/google/uuid"
)

// Page represents a single document page for data transfer between layers.
type Page struct {
	ID         uuid.UUID `json:"id"`
	DocumentID uuid.UUID `json:"document_id"`
	PageIndex  int       `json:"page_index"`
	ImagePath  string    `json:"image_path"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
}
