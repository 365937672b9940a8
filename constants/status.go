package constants

// DocumentStatus is the canonical status for rows in documents.
type DocumentStatus string

// Stable values (store these exact strings in DB).
const (
	StatusUploaded  DocumentStatus = "UPLOADED"  // payload accepted, pages stored
	StatusProcessed DocumentStatus = "PROCESSED" // classified + quality scored
	StatusFailed    DocumentStatus = "FAILED"    // terminal ingest failure
)

// CorrectionType distinguishes the kinds of review edits in the log.
type CorrectionType string

const (
	CorrectionTextEdit   CorrectionType = "text_edit"
	CorrectionBBoxAdjust CorrectionType = "bbox_adjustment"
)
