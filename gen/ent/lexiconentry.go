// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/veridoc/ocr-review/gen/ent/lexiconentry"
)

// LexiconEntry is the model entity for the LexiconEntry schema.
type LexiconEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Misspelled holds the value of the "misspelled" field.
	Misspelled string `json:"misspelled,omitempty"`
	// Corrected holds the value of the "corrected" field.
	Corrected string `json:"corrected,omitempty"`
	// Scope holds the value of the "scope" field.
	Scope string `json:"scope,omitempty"`
	// Frequency holds the value of the "frequency" field.
	Frequency int `json:"frequency,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LexiconEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lexiconentry.FieldFrequency:
			values[i] = new(sql.NullInt64)
		case lexiconentry.FieldMisspelled, lexiconentry.FieldCorrected, lexiconentry.FieldScope:
			values[i] = new(sql.NullString)
		case lexiconentry.FieldCreatedAt, lexiconentry.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case lexiconentry.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LexiconEntry fields.
func (_m *LexiconEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lexiconentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case lexiconentry.FieldMisspelled:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field misspelled", values[i])
			} else if value.Valid {
				_m.Misspelled = value.String
			}
		case lexiconentry.FieldCorrected:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field corrected", values[i])
			} else if value.Valid {
				_m.Corrected = value.String
			}
		case lexiconentry.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = value.String
			}
		case lexiconentry.FieldFrequency:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field frequency", values[i])
			} else if value.Valid {
				_m.Frequency = int(value.Int64)
			}
		case lexiconentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case lexiconentry.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LexiconEntry.
// This includes values selected through modifiers, order, etc.
func (_m *LexiconEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LexiconEntry.
// Note that you need to call LexiconEntry.Unwrap() before calling this method if this LexiconEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LexiconEntry) Update() *LexiconEntryUpdateOne {
	return NewLexiconEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LexiconEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LexiconEntry) Unwrap() *LexiconEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LexiconEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LexiconEntry) String() string {
	var builder strings.Builder
	builder.WriteString("LexiconEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("misspelled=")
	builder.WriteString(_m.Misspelled)
	builder.WriteString(", ")
	builder.WriteString("corrected=")
	builder.WriteString(_m.Corrected)
	builder.WriteString(", ")
	builder.WriteString("scope=")
	builder.WriteString(_m.Scope)
	builder.WriteString(", ")
	builder.WriteString("frequency=")
	builder.WriteString(fmt.Sprintf("%v", _m.Frequency))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LexiconEntries is a parsable slice of LexiconEntry.
type LexiconEntries []*LexiconEntry
