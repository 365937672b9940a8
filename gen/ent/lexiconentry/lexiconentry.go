// Code generated by ent, DO NOT EDIT.

package lexiconentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the lexiconentry type in the database.
	Label = "lexicon_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMisspelled holds the string denoting the misspelled field in the database.
	FieldMisspelled = "misspelled"
	// FieldCorrected holds the string denoting the corrected field in the database.
	FieldCorrected = "corrected"
	// FieldScope holds the string denoting the scope field in the database.
	FieldScope = "scope"
	// FieldFrequency holds the string denoting the frequency field in the database.
	FieldFrequency = "frequency"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the lexiconentry in the database.
	Table = "lexicons"
)

// Columns holds all SQL columns for lexiconentry fields.
var Columns = []string{
	FieldID,
	FieldMisspelled,
	FieldCorrected,
	FieldScope,
	FieldFrequency,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// MisspelledValidator is a validator for the "misspelled" field. It is called by the builders before save.
	MisspelledValidator func(string) error
	// CorrectedValidator is a validator for the "corrected" field. It is called by the builders before save.
	CorrectedValidator func(string) error
	// DefaultScope holds the default value on creation for the "scope" field.
	DefaultScope string
	// DefaultFrequency holds the default value on creation for the "frequency" field.
	DefaultFrequency int
	// FrequencyValidator is a validator for the "frequency" field. It is called by the builders before save.
	FrequencyValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the LexiconEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMisspelled orders the results by the misspelled field.
func ByMisspelled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMisspelled, opts...).ToFunc()
}

// ByCorrected orders the results by the corrected field.
func ByCorrected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrected, opts...).ToFunc()
}

// ByScope orders the results by the scope field.
func ByScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScope, opts...).ToFunc()
}

// ByFrequency orders the results by the frequency field.
func ByFrequency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFrequency, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
