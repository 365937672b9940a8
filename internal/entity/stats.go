package entity

import "time"

// CorrectionStats summarizes correction activity, either for one document or
// across the whole log.
type CorrectionStats struct {
	TotalCorrections int            `json:"total_corrections"`
	UniqueOriginals  int            `json:"unique_originals"`
	ByAuthor         map[string]int `json:"by_author"`
	// ByPattern counts identical rewrites, keyed "original -> corrected".
	ByPattern map[string]int `json:"by_pattern"`
	FirstAt   *time.Time     `json:"first_at,omitempty"`
	LastAt    *time.Time     `json:"last_at,omitempty"`
}
