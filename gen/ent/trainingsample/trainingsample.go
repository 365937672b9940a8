// Code generated by ent, DO NOT EDIT.

package trainingsample

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the trainingsample type in the database.
	Label = "training_sample"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldWordRef holds the string denoting the word_ref field in the database.
	FieldWordRef = "word_ref"
	// FieldImagePath holds the string denoting the image_path field in the database.
	FieldImagePath = "image_path"
	// FieldOriginalText holds the string denoting the original_text field in the database.
	FieldOriginalText = "original_text"
	// FieldCorrectedText holds the string denoting the corrected_text field in the database.
	FieldCorrectedText = "corrected_text"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the trainingsample in the database.
	Table = "training_samples"
)

// Columns holds all SQL columns for trainingsample fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldWordRef,
	FieldImagePath,
	FieldOriginalText,
	FieldCorrectedText,
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
	// DefaultWordRef holds the default value on creation for the "word_ref" field.
	DefaultWordRef string
	// ImagePathValidator is a validator for the "image_path" field. It is called by the builders before save.
	ImagePathValidator func(string) error
	// OriginalTextValidator is a validator for the "original_text" field. It is called by the builders before save.
	OriginalTextValidator func(string) error
	// CorrectedTextValidator is a validator for the "corrected_text" field. It is called by the builders before save.
	CorrectedTextValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the TrainingSample queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByWordRef orders the results by the word_ref field.
func ByWordRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordRef, opts...).ToFunc()
}

// ByImagePath orders the results by the image_path field.
func ByImagePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImagePath, opts...).ToFunc()
}

// ByOriginalText orders the results by the original_text field.
func ByOriginalText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalText, opts...).ToFunc()
}

// ByCorrectedText orders the results by the corrected_text field.
func ByCorrectedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectedText, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
