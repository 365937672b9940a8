// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/veridoc/ocr-review/gen/ent/page"
	"github.com/veridoc/ocr-review/gen/ent/word"
)

// Word is the model entity for the Word schema.
type Word struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PageID holds the value of the "page_id" field.
	PageID uuid.UUID `json:"page_id,omitempty"`
	// BlockIndex holds the value of the "block_index" field.
	BlockIndex int `json:"block_index,omitempty"`
	// LineIndex holds the value of the "line_index" field.
	LineIndex int `json:"line_index,omitempty"`
	// WordIndex holds the value of the "word_index" field.
	WordIndex int `json:"word_index,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float64 `json:"confidence,omitempty"`
	// Geometry holds the value of the "geometry" field.
	Geometry [][]float64 `json:"geometry,omitempty"`
	// OriginalText holds the value of the "original_text" field.
	OriginalText *string `json:"original_text,omitempty"`
	// AutoCorrected holds the value of the "auto_corrected" field.
	AutoCorrected bool `json:"auto_corrected,omitempty"`
	// ManuallyCorrected holds the value of the "manually_corrected" field.
	ManuallyCorrected bool `json:"manually_corrected,omitempty"`
	// AutoCorrectionOverridden holds the value of the "auto_correction_overridden" field.
	AutoCorrectionOverridden bool `json:"auto_correction_overridden,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WordQuery when eager-loading is set.
	Edges        WordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WordEdges holds the relations/edges for other nodes in the graph.
type WordEdges struct {
	// Page holds the value of the page edge.
	Page *Page `json:"page,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PageOrErr returns the Page value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WordEdges) PageOrErr() (*Page, error) {
	if e.Page != nil {
		return e.Page, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: page.Label}
	}
	return nil, &NotLoadedError{edge: "page"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Word) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case word.FieldGeometry:
			values[i] = new([]byte)
		case word.FieldAutoCorrected, word.FieldManuallyCorrected, word.FieldAutoCorrectionOverridden:
			values[i] = new(sql.NullBool)
		case word.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case word.FieldBlockIndex, word.FieldLineIndex, word.FieldWordIndex:
			values[i] = new(sql.NullInt64)
		case word.FieldText, word.FieldOriginalText:
			values[i] = new(sql.NullString)
		case word.FieldID, word.FieldPageID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Word fields.
func (_m *Word) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case word.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case word.FieldPageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field page_id", values[i])
			} else if value != nil {
				_m.PageID = *value
			}
		case word.FieldBlockIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field block_index", values[i])
			} else if value.Valid {
				_m.BlockIndex = int(value.Int64)
			}
		case word.FieldLineIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field line_index", values[i])
			} else if value.Valid {
				_m.LineIndex = int(value.Int64)
			}
		case word.FieldWordIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field word_index", values[i])
			} else if value.Valid {
				_m.WordIndex = int(value.Int64)
			}
		case word.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case word.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float64)
				*_m.Confidence = value.Float64
			}
		case word.FieldGeometry:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field geometry", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Geometry); err != nil {
					return fmt.Errorf("unmarshal field geometry: %w", err)
				}
			}
		case word.FieldOriginalText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_text", values[i])
			} else if value.Valid {
				_m.OriginalText = new(string)
				*_m.OriginalText = value.String
			}
		case word.FieldAutoCorrected:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field auto_corrected", values[i])
			} else if value.Valid {
				_m.AutoCorrected = value.Bool
			}
		case word.FieldManuallyCorrected:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field manually_corrected", values[i])
			} else if value.Valid {
				_m.ManuallyCorrected = value.Bool
			}
		case word.FieldAutoCorrectionOverridden:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field auto_correction_overridden", values[i])
			} else if value.Valid {
				_m.AutoCorrectionOverridden = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Word.
// This includes values selected through modifiers, order, etc.
func (_m *Word) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPage queries the "page" edge of the Word entity.
func (_m *Word) QueryPage() *PageQuery {
	return NewWordClient(_m.config).QueryPage(_m)
}

// Update returns a builder for updating this Word.
// Note that you need to call Word.Unwrap() before calling this method if this Word
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Word) Update() *WordUpdateOne {
	return NewWordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Word entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Word) Unwrap() *Word {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Word is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Word) String() string {
	var builder strings.Builder
	builder.WriteString("Word(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("page_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageID))
	builder.WriteString(", ")
	builder.WriteString("block_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlockIndex))
	builder.WriteString(", ")
	builder.WriteString("line_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.LineIndex))
	builder.WriteString(", ")
	builder.WriteString("word_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.WordIndex))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("geometry=")
	builder.WriteString(fmt.Sprintf("%v", _m.Geometry))
	builder.WriteString(", ")
	if v := _m.OriginalText; v != nil {
		builder.WriteString("original_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("auto_corrected=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoCorrected))
	builder.WriteString(", ")
	builder.WriteString("manually_corrected=")
	builder.WriteString(fmt.Sprintf("%v", _m.ManuallyCorrected))
	builder.WriteString(", ")
	builder.WriteString("auto_correction_overridden=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoCorrectionOverridden))
	builder.WriteByte(')')
	return builder.String()
}

// Words is a parsable slice of Word.
type Words []*Word
