package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document represents an uploaded document for data transfer between layers.
type Document struct {
	ID              uuid.UUID  `json:"id"`
	Filename        string     `json:"filename"`
	ContentType     string     `json:"content_type"`
	StoragePath     string     `json:"storage_path"`
	Status          string     `json:"status"`
	DocumentType    string     `json:"document_type"`
	QualityScore    *float64   `json:"quality_score,omitempty"`
	PageCount       int        `json:"page_count"`
	UploadedAt      time.Time  `json:"uploaded_at"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
	ProcessingError *string    `json:"processing_error,omitempty"`
}
