// Code generated by ent, DO NOT EDIT.

package word

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/veridoc/ocr-review/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldID, id))
}

// PageID applies equality check predicate on the "page_id" field. It's identical to PageIDEQ.
func PageID(v uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldPageID, v))
}

// BlockIndex applies equality check predicate on the "block_index" field. It's identical to BlockIndexEQ.
func BlockIndex(v int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldBlockIndex, v))
}

// LineIndex applies equality check predicate on the "line_index" field. It's identical to LineIndexEQ.
func LineIndex(v int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldLineIndex, v))
}

// WordIndex applies equality check predicate on the "word_index" field. It's identical to WordIndexEQ.
func WordIndex(v int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldWordIndex, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldText, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldConfidence, v))
}

// OriginalText applies equality check predicate on the "original_text" field. It's identical to OriginalTextEQ.
func OriginalText(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldOriginalText, v))
}

// AutoCorrected applies equality check predicate on the "auto_corrected" field. It's identical to AutoCorrectedEQ.
func AutoCorrected(v bool) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldAutoCorrected, v))
}

// ManuallyCorrected applies equality check predicate on the "manually_corrected" field. It's identical to ManuallyCorrectedEQ.
func ManuallyCorrected(v bool) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldManuallyCorrected, v))
}

// AutoCorrectionOverridden applies equality check predicate on the "auto_correction_overridden" field. It's identical to AutoCorrectionOverriddenEQ.
func AutoCorrectionOverridden(v bool) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldAutoCorrectionOverridden, v))
}

// PageIDEQ applies the EQ predicate on the "page_id" field.
func PageIDEQ(v uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldPageID, v))
}

// PageIDNEQ applies the NEQ predicate on the "page_id" field.
func PageIDNEQ(v uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldPageID, v))
}

// PageIDIn applies the In predicate on the "page_id" field.
func PageIDIn(vs ...uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldPageID, vs...))
}

// PageIDNotIn applies the NotIn predicate on the "page_id" field.
func PageIDNotIn(vs ...uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldPageID, vs...))
}

// BlockIndexEQ applies the EQ predicate on the "block_index" field.
func BlockIndexEQ(v int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldBlockIndex, v))
}

// BlockIndexNEQ applies the NEQ predicate on the "block_index" field.
func BlockIndexNEQ(v int) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldBlockIndex, v))
}

// BlockIndexIn applies the In predicate on the "block_index" field.
func BlockIndexIn(vs ...int) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldBlockIndex, vs...))
}

// BlockIndexNotIn applies the NotIn predicate on the "block_index" field.
func BlockIndexNotIn(vs ...int) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldBlockIndex, vs...))
}

// BlockIndexGT applies the GT predicate on the "block_index" field.
func BlockIndexGT(v int) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldBlockIndex, v))
}

// BlockIndexGTE applies the GTE predicate on the "block_index" field.
func BlockIndexGTE(v int) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldBlockIndex, v))
}

// BlockIndexLT applies the LT predicate on the "block_index" field.
func BlockIndexLT(v int) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldBlockIndex, v))
}

// BlockIndexLTE applies the LTE predicate on the "block_index" field.
func BlockIndexLTE(v int) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldBlockIndex, v))
}

// LineIndexEQ applies the EQ predicate on the "line_index" field.
func LineIndexEQ(v int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldLineIndex, v))
}

// LineIndexNEQ applies the NEQ predicate on the "line_index" field.
func LineIndexNEQ(v int) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldLineIndex, v))
}

// LineIndexIn applies the In predicate on the "line_index" field.
func LineIndexIn(vs ...int) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldLineIndex, vs...))
}

// LineIndexNotIn applies the NotIn predicate on the "line_index" field.
func LineIndexNotIn(vs ...int) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldLineIndex, vs...))
}

// LineIndexGT applies the GT predicate on the "line_index" field.
func LineIndexGT(v int) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldLineIndex, v))
}

// LineIndexGTE applies the GTE predicate on the "line_index" field.
func LineIndexGTE(v int) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldLineIndex, v))
}

// LineIndexLT applies the LT predicate on the "line_index" field.
func LineIndexLT(v int) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldLineIndex, v))
}

// LineIndexLTE applies the LTE predicate on the "line_index" field.
func LineIndexLTE(v int) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldLineIndex, v))
}

// WordIndexEQ applies the EQ predicate on the "word_index" field.
func WordIndexEQ(v int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldWordIndex, v))
}

// WordIndexNEQ applies the NEQ predicate on the "word_index" field.
func WordIndexNEQ(v int) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldWordIndex, v))
}

// WordIndexIn applies the In predicate on the "word_index" field.
func WordIndexIn(vs ...int) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldWordIndex, vs...))
}

// WordIndexNotIn applies the NotIn predicate on the "word_index" field.
func WordIndexNotIn(vs ...int) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldWordIndex, vs...))
}

// WordIndexGT applies the GT predicate on the "word_index" field.
func WordIndexGT(v int) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldWordIndex, v))
}

// WordIndexGTE applies the GTE predicate on the "word_index" field.
func WordIndexGTE(v int) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldWordIndex, v))
}

// WordIndexLT applies the LT predicate on the "word_index" field.
func WordIndexLT(v int) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldWordIndex, v))
}

// WordIndexLTE applies the LTE predicate on the "word_index" field.
func WordIndexLTE(v int) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldWordIndex, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Word {
	return predicate.Word(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Word {
	return predicate.Word(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Word {
	return predicate.Word(sql.FieldContainsFold(FieldText, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.Word {
	return predicate.Word(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.Word {
	return predicate.Word(sql.FieldNotNull(FieldConfidence))
}

// GeometryIsNil applies the IsNil predicate on the "geometry" field.
func GeometryIsNil() predicate.Word {
	return predicate.Word(sql.FieldIsNull(FieldGeometry))
}

// GeometryNotNil applies the NotNil predicate on the "geometry" field.
func GeometryNotNil() predicate.Word {
	return predicate.Word(sql.FieldNotNull(FieldGeometry))
}

// OriginalTextEQ applies the EQ predicate on the "original_text" field.
func OriginalTextEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldOriginalText, v))
}

// OriginalTextNEQ applies the NEQ predicate on the "original_text" field.
func OriginalTextNEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldOriginalText, v))
}

// OriginalTextIn applies the In predicate on the "original_text" field.
func OriginalTextIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldOriginalText, vs...))
}

// OriginalTextNotIn applies the NotIn predicate on the "original_text" field.
func OriginalTextNotIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldOriginalText, vs...))
}

// OriginalTextGT applies the GT predicate on the "original_text" field.
func OriginalTextGT(v string) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldOriginalText, v))
}

// OriginalTextGTE applies the GTE predicate on the "original_text" field.
func OriginalTextGTE(v string) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldOriginalText, v))
}

// OriginalTextLT applies the LT predicate on the "original_text" field.
func OriginalTextLT(v string) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldOriginalText, v))
}

// OriginalTextLTE applies the LTE predicate on the "original_text" field.
func OriginalTextLTE(v string) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldOriginalText, v))
}

// OriginalTextContains applies the Contains predicate on the "original_text" field.
func OriginalTextContains(v string) predicate.Word {
	return predicate.Word(sql.FieldContains(FieldOriginalText, v))
}

// OriginalTextHasPrefix applies the HasPrefix predicate on the "original_text" field.
func OriginalTextHasPrefix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasPrefix(FieldOriginalText, v))
}

// OriginalTextHasSuffix applies the HasSuffix predicate on the "original_text" field.
func OriginalTextHasSuffix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasSuffix(FieldOriginalText, v))
}

// OriginalTextIsNil applies the IsNil predicate on the "original_text" field.
func OriginalTextIsNil() predicate.Word {
	return predicate.Word(sql.FieldIsNull(FieldOriginalText))
}

// OriginalTextNotNil applies the NotNil predicate on the "original_text" field.
func OriginalTextNotNil() predicate.Word {
	return predicate.Word(sql.FieldNotNull(FieldOriginalText))
}

// OriginalTextEqualFold applies the EqualFold predicate on the "original_text" field.
func OriginalTextEqualFold(v string) predicate.Word {
	return predicate.Word(sql.FieldEqualFold(FieldOriginalText, v))
}

// OriginalTextContainsFold applies the ContainsFold predicate on the "original_text" field.
func OriginalTextContainsFold(v string) predicate.Word {
	return predicate.Word(sql.FieldContainsFold(FieldOriginalText, v))
}

// AutoCorrectedEQ applies the EQ predicate on the "auto_corrected" field.
func AutoCorrectedEQ(v bool) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldAutoCorrected, v))
}

// AutoCorrectedNEQ applies the NEQ predicate on the "auto_corrected" field.
func AutoCorrectedNEQ(v bool) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldAutoCorrected, v))
}

// ManuallyCorrectedEQ applies the EQ predicate on the "manually_corrected" field.
func ManuallyCorrectedEQ(v bool) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldManuallyCorrected, v))
}

// ManuallyCorrectedNEQ applies the NEQ predicate on the "manually_corrected" field.
func ManuallyCorrectedNEQ(v bool) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldManuallyCorrected, v))
}

// AutoCorrectionOverriddenEQ applies the EQ predicate on the "auto_correction_overridden" field.
func AutoCorrectionOverriddenEQ(v bool) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldAutoCorrectionOverridden, v))
}

// AutoCorrectionOverriddenNEQ applies the NEQ predicate on the "auto_correction_overridden" field.
func AutoCorrectionOverriddenNEQ(v bool) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldAutoCorrectionOverridden, v))
}

// HasPage applies the HasEdge predicate on the "page" edge.
func HasPage() predicate.Word {
	return predicate.Word(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PageTable, PageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPageWith applies the HasEdge predicate on the "page" edge with a given conditions (other predicates).
func HasPageWith(preds ...predicate.Page) predicate.Word {
	return predicate.Word(func(s *sql.Selector) {
		step := newPageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Word) predicate.Word {
	return predicate.Word(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Word) predicate.Word {
	return predicate.Word(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Word) predicate.Word {
	return predicate.Word(sql.NotPredicates(p))
}
