// Code generated by ent, DO NOT EDIT.

package correction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the correction type in the database.
	Label = "correction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldPageIndex holds the string denoting the page_index field in the database.
	FieldPageIndex = "page_index"
	// FieldWordRef holds the string denoting the word_ref field in the database.
	FieldWordRef = "word_ref"
	// FieldOriginalText holds the string denoting the original_text field in the database.
	FieldOriginalText = "original_text"
	// FieldCorrectedText holds the string denoting the corrected_text field in the database.
	FieldCorrectedText = "corrected_text"
	// FieldAuthor holds the string denoting the author field in the database.
	FieldAuthor = "author"
	// FieldCorrectionType holds the string denoting the correction_type field in the database.
	FieldCorrectionType = "correction_type"
	// FieldBboxSnapshot holds the string denoting the bbox_snapshot field in the database.
	FieldBboxSnapshot = "bbox_snapshot"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the correction in the database.
	Table = "corrections"
)

// Columns holds all SQL columns for correction fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldPageIndex,
	FieldWordRef,
	FieldOriginalText,
	FieldCorrectedText,
	FieldAuthor,
	FieldCorrectionType,
	FieldBboxSnapshot,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPageIndex holds the default value on creation for the "page_index" field.
	DefaultPageIndex int
	// PageIndexValidator is a validator for the "page_index" field. It is called by the builders before save.
	PageIndexValidator func(int) error
	// DefaultWordRef holds the default value on creation for the "word_ref" field.
	DefaultWordRef string
	// OriginalTextValidator is a validator for the "original_text" field. It is called by the builders before save.
	OriginalTextValidator func(string) error
	// CorrectedTextValidator is a validator for the "corrected_text" field. It is called by the builders before save.
	CorrectedTextValidator func(string) error
	// DefaultAuthor holds the default value on creation for the "author" field.
	DefaultAuthor string
	// DefaultCorrectionType holds the default value on creation for the "correction_type" field.
	DefaultCorrectionType string
	// CorrectionTypeValidator is a validator for the "correction_type" field. It is called by the builders before save.
	CorrectionTypeValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Correction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByPageIndex orders the results by the page_index field.
func ByPageIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageIndex, opts...).ToFunc()
}

// ByWordRef orders the results by the word_ref field.
func ByWordRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordRef, opts...).ToFunc()
}

// ByOriginalText orders the results by the original_text field.
func ByOriginalText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalText, opts...).ToFunc()
}

// ByCorrectedText orders the results by the corrected_text field.
func ByCorrectedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectedText, opts...).ToFunc()
}

// ByAuthor orders the results by the author field.
func ByAuthor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthor, opts...).ToFunc()
}

// ByCorrectionType orders the results by the correction_type field.
func ByCorrectionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectionType, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
