package entity

import (
	"time"

	"github.com/google/uuid"
)

// LexiconEntry represents a learned correction rule for data transfer between
// layers. Keyed by (misspelled, scope); frequency counts how many times the
// misspelling was corrected, across target overwrites.
type LexiconEntry struct {
	ID         uuid.UUID `json:"id"`
	Misspelled string    `json:"misspelled"`
	Corrected  string    `json:"corrected"`
	Scope      string    `json:"scope"`
	Frequency  int       `json:"frequency"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
