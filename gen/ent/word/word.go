// Code generated by ent, DO NOT EDIT.

package word

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the word type in the database.
	Label = "word"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPageID holds the string denoting the page_id field in the database.
	FieldPageID = "page_id"
	// FieldBlockIndex holds the string denoting the block_index field in the database.
	FieldBlockIndex = "block_index"
	// FieldLineIndex holds the string denoting the line_index field in the database.
	FieldLineIndex = "line_index"
	// FieldWordIndex holds the string denoting the word_index field in the database.
	FieldWordIndex = "word_index"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldGeometry holds the string denoting the geometry field in the database.
	FieldGeometry = "geometry"
	// FieldOriginalText holds the string denoting the original_text field in the database.
	FieldOriginalText = "original_text"
	// FieldAutoCorrected holds the string denoting the auto_corrected field in the database.
	FieldAutoCorrected = "auto_corrected"
	// FieldManuallyCorrected holds the string denoting the manually_corrected field in the database.
	FieldManuallyCorrected = "manually_corrected"
	// FieldAutoCorrectionOverridden holds the string denoting the auto_correction_overridden field in the database.
	FieldAutoCorrectionOverridden = "auto_correction_overridden"
	// EdgePage holds the string denoting the page edge name in mutations.
	EdgePage = "page"
	// Table holds the table name of the word in the database.
	Table = "words"
	// PageTable is the table that holds the page relation/edge.
	PageTable = "words"
	// PageInverseTable is the table name for the Page entity.
	// It exists in this package in order to avoid circular dependency with the "page" package.
	PageInverseTable = "pages"
	// PageColumn is the table column denoting the page relation/edge.
	PageColumn = "page_id"
)

// Columns holds all SQL columns for word fields.
var Columns = []string{
	FieldID,
	FieldPageID,
	FieldBlockIndex,
	FieldLineIndex,
	FieldWordIndex,
	FieldText,
	FieldConfidence,
	FieldGeometry,
	FieldOriginalText,
	FieldAutoCorrected,
	FieldManuallyCorrected,
	FieldAutoCorrectionOverridden,
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
	// DefaultBlockIndex holds the default value on creation for the "block_index" field.
	DefaultBlockIndex int
	// BlockIndexValidator is a validator for the "block_index" field. It is called by the builders before save.
	BlockIndexValidator func(int) error
	// DefaultLineIndex holds the default value on creation for the "line_index" field.
	DefaultLineIndex int
	// LineIndexValidator is a validator for the "line_index" field. It is called by the builders before save.
	LineIndexValidator func(int) error
	// DefaultWordIndex holds the default value on creation for the "word_index" field.
	DefaultWordIndex int
	// WordIndexValidator is a validator for the "word_index" field. It is called by the builders before save.
	WordIndexValidator func(int) error
	// DefaultAutoCorrected holds the default value on creation for the "auto_corrected" field.
	DefaultAutoCorrected bool
	// DefaultManuallyCorrected holds the default value on creation for the "manually_corrected" field.
	DefaultManuallyCorrected bool
	// DefaultAutoCorrectionOverridden holds the default value on creation for the "auto_correction_overridden" field.
	DefaultAutoCorrectionOverridden bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Word queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPageID orders the results by the page_id field.
func ByPageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageID, opts...).ToFunc()
}

// ByBlockIndex orders the results by the block_index field.
func ByBlockIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockIndex, opts...).ToFunc()
}

// ByLineIndex orders the results by the line_index field.
func ByLineIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLineIndex, opts...).ToFunc()
}

// ByWordIndex orders the results by the word_index field.
func ByWordIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordIndex, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByOriginalText orders the results by the original_text field.
func ByOriginalText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalText, opts...).ToFunc()
}

// ByAutoCorrected orders the results by the auto_corrected field.
func ByAutoCorrected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoCorrected, opts...).ToFunc()
}

// ByManuallyCorrected orders the results by the manually_corrected field.
func ByManuallyCorrected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldManuallyCorrected, opts...).ToFunc()
}

// ByAutoCorrectionOverridden orders the results by the auto_correction_overridden field.
func ByAutoCorrectionOverridden(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoCorrectionOverridden, opts...).ToFunc()
}

// ByPageField orders the results by page field.
func ByPageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPageStep(), sql.OrderByField(field, opts...))
	}
}
func newPageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PageTable, PageColumn),
	)
}
