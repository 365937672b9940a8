// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/veridoc/ocr-review/gen/ent/correction"
)

// Correction is the model entity for the Correction schema.
type Correction struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// PageIndex holds the value of the "page_index" field.
	PageIndex int `json:"page_index,omitempty"`
	// WordRef holds the value of the "word_ref" field.
	WordRef string `json:"word_ref,omitempty"`
	// OriginalText holds the value of the "original_text" field.
	OriginalText string `json:"original_text,omitempty"`
	// CorrectedText holds the value of the "corrected_text" field.
	CorrectedText string `json:"corrected_text,omitempty"`
	// Author holds the value of the "author" field.
	Author string `json:"author,omitempty"`
	// CorrectionType holds the value of the "correction_type" field.
	CorrectionType string `json:"correction_type,omitempty"`
	// BboxSnapshot holds the value of the "bbox_snapshot" field.
	BboxSnapshot [][]float64 `json:"bbox_snapshot,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Correction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case correction.FieldBboxSnapshot:
			values[i] = new([]byte)
		case correction.FieldPageIndex:
			values[i] = new(sql.NullInt64)
		case correction.FieldWordRef, correction.FieldOriginalText, correction.FieldCorrectedText, correction.FieldAuthor, correction.FieldCorrectionType:
			values[i] = new(sql.NullString)
		case correction.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case correction.FieldID, correction.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Correction fields.
func (_m *Correction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case correction.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case correction.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case correction.FieldPageIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_index", values[i])
			} else if value.Valid {
				_m.PageIndex = int(value.Int64)
			}
		case correction.FieldWordRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field word_ref", values[i])
			} else if value.Valid {
				_m.WordRef = value.String
			}
		case correction.FieldOriginalText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_text", values[i])
			} else if value.Valid {
				_m.OriginalText = value.String
			}
		case correction.FieldCorrectedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field corrected_text", values[i])
			} else if value.Valid {
				_m.CorrectedText = value.String
			}
		case correction.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				_m.Author = value.String
			}
		case correction.FieldCorrectionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correction_type", values[i])
			} else if value.Valid {
				_m.CorrectionType = value.String
			}
		case correction.FieldBboxSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field bbox_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BboxSnapshot); err != nil {
					return fmt.Errorf("unmarshal field bbox_snapshot: %w", err)
				}
			}
		case correction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Correction.
// This includes values selected through modifiers, order, etc.
func (_m *Correction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Correction.
// Note that you need to call Correction.Unwrap() before calling this method if this Correction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Correction) Update() *CorrectionUpdateOne {
	return NewCorrectionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Correction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Correction) Unwrap() *Correction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Correction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Correction) String() string {
	var builder strings.Builder
	builder.WriteString("Correction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("page_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageIndex))
	builder.WriteString(", ")
	builder.WriteString("word_ref=")
	builder.WriteString(_m.WordRef)
	builder.WriteString(", ")
	builder.WriteString("original_text=")
	builder.WriteString(_m.OriginalText)
	builder.WriteString(", ")
	builder.WriteString("corrected_text=")
	builder.WriteString(_m.CorrectedText)
	builder.WriteString(", ")
	builder.WriteString("author=")
	builder.WriteString(_m.Author)
	builder.WriteString(", ")
	builder.WriteString("correction_type=")
	builder.WriteString(_m.CorrectionType)
	builder.WriteString(", ")
	builder.WriteString("bbox_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.BboxSnapshot))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Corrections is a parsable slice of Correction.
type Corrections []*Correction
