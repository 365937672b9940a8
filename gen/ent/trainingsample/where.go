// Code generated by ent, DO NOT EDIT.

package trainingsample

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/veridoc/ocr-review/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEQ(FieldDocumentID, v))
}

// WordRef applies equality check predicate on the "word_ref" field. It's identical to WordRefEQ.
func WordRef(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEQ(FieldWordRef, v))
}

// ImagePath applies equality check predicate on the "image_path" field. It's identical to ImagePathEQ.
func ImagePath(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEQ(FieldImagePath, v))
}

// OriginalText applies equality check predicate on the "original_text" field. It's identical to OriginalTextEQ.
func OriginalText(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEQ(FieldOriginalText, v))
}

// CorrectedText applies equality check predicate on the "corrected_text" field. It's identical to CorrectedTextEQ.
func CorrectedText(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEQ(FieldCorrectedText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldLTE(FieldDocumentID, v))
}

// WordRefEQ applies the EQ predicate on the "word_ref" field.
func WordRefEQ(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEQ(FieldWordRef, v))
}

// WordRefNEQ applies the NEQ predicate on the "word_ref" field.
func WordRefNEQ(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldNEQ(FieldWordRef, v))
}

// WordRefIn applies the In predicate on the "word_ref" field.
func WordRefIn(vs ...string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldIn(FieldWordRef, vs...))
}

// WordRefNotIn applies the NotIn predicate on the "word_ref" field.
func WordRefNotIn(vs ...string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldNotIn(FieldWordRef, vs...))
}

// WordRefGT applies the GT predicate on the "word_ref" field.
func WordRefGT(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldGT(FieldWordRef, v))
}

// WordRefGTE applies the GTE predicate on the "word_ref" field.
func WordRefGTE(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldGTE(FieldWordRef, v))
}

// WordRefLT applies the LT predicate on the "word_ref" field.
func WordRefLT(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldLT(FieldWordRef, v))
}

// WordRefLTE applies the LTE predicate on the "word_ref" field.
func WordRefLTE(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldLTE(FieldWordRef, v))
}

// WordRefContains applies the Contains predicate on the "word_ref" field.
func WordRefContains(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldContains(FieldWordRef, v))
}

// WordRefHasPrefix applies the HasPrefix predicate on the "word_ref" field.
func WordRefHasPrefix(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldHasPrefix(FieldWordRef, v))
}

// WordRefHasSuffix applies the HasSuffix predicate on the "word_ref" field.
func WordRefHasSuffix(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldHasSuffix(FieldWordRef, v))
}

// WordRefEqualFold applies the EqualFold predicate on the "word_ref" field.
func WordRefEqualFold(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEqualFold(FieldWordRef, v))
}

// WordRefContainsFold applies the ContainsFold predicate on the "word_ref" field.
func WordRefContainsFold(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldContainsFold(FieldWordRef, v))
}

// ImagePathEQ applies the EQ predicate on the "image_path" field.
func ImagePathEQ(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEQ(FieldImagePath, v))
}

// ImagePathNEQ applies the NEQ predicate on the "image_path" field.
func ImagePathNEQ(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldNEQ(FieldImagePath, v))
}

// ImagePathIn applies the In predicate on the "image_path" field.
func ImagePathIn(vs ...string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldIn(FieldImagePath, vs...))
}

// ImagePathNotIn applies the NotIn predicate on the "image_path" field.
func ImagePathNotIn(vs ...string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldNotIn(FieldImagePath, vs...))
}

// ImagePathGT applies the GT predicate on the "image_path" field.
func ImagePathGT(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldGT(FieldImagePath, v))
}

// ImagePathGTE applies the GTE predicate on the "image_path" field.
func ImagePathGTE(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldGTE(FieldImagePath, v))
}

// ImagePathLT applies the LT predicate on the "image_path" field.
func ImagePathLT(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldLT(FieldImagePath, v))
}

// ImagePathLTE applies the LTE predicate on the "image_path" field.
func ImagePathLTE(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldLTE(FieldImagePath, v))
}

// ImagePathContains applies the Contains predicate on the "image_path" field.
func ImagePathContains(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldContains(FieldImagePath, v))
}

// ImagePathHasPrefix applies the HasPrefix predicate on the "image_path" field.
func ImagePathHasPrefix(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldHasPrefix(FieldImagePath, v))
}

// ImagePathHasSuffix applies the HasSuffix predicate on the "image_path" field.
func ImagePathHasSuffix(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldHasSuffix(FieldImagePath, v))
}

// ImagePathEqualFold applies the EqualFold predicate on the "image_path" field.
func ImagePathEqualFold(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEqualFold(FieldImagePath, v))
}

// ImagePathContainsFold applies the ContainsFold predicate on the "image_path" field.
func ImagePathContainsFold(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldContainsFold(FieldImagePath, v))
}

// OriginalTextEQ applies the EQ predicate on the "original_text" field.
func OriginalTextEQ(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEQ(FieldOriginalText, v))
}

// OriginalTextNEQ applies the NEQ predicate on the "original_text" field.
func OriginalTextNEQ(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldNEQ(FieldOriginalText, v))
}

// OriginalTextIn applies the In predicate on the "original_text" field.
func OriginalTextIn(vs ...string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldIn(FieldOriginalText, vs...))
}

// OriginalTextNotIn applies the NotIn predicate on the "original_text" field.
func OriginalTextNotIn(vs ...string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldNotIn(FieldOriginalText, vs...))
}

// OriginalTextGT applies the GT predicate on the "original_text" field.
func OriginalTextGT(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldGT(FieldOriginalText, v))
}

// OriginalTextGTE applies the GTE predicate on the "original_text" field.
func OriginalTextGTE(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldGTE(FieldOriginalText, v))
}

// OriginalTextLT applies the LT predicate on the "original_text" field.
func OriginalTextLT(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldLT(FieldOriginalText, v))
}

// OriginalTextLTE applies the LTE predicate on the "original_text" field.
func OriginalTextLTE(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldLTE(FieldOriginalText, v))
}

// OriginalTextContains applies the Contains predicate on the "original_text" field.
func OriginalTextContains(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldContains(FieldOriginalText, v))
}

// OriginalTextHasPrefix applies the HasPrefix predicate on the "original_text" field.
func OriginalTextHasPrefix(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldHasPrefix(FieldOriginalText, v))
}

// OriginalTextHasSuffix applies the HasSuffix predicate on the "original_text" field.
func OriginalTextHasSuffix(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldHasSuffix(FieldOriginalText, v))
}

// OriginalTextEqualFold applies the EqualFold predicate on the "original_text" field.
func OriginalTextEqualFold(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEqualFold(FieldOriginalText, v))
}

// OriginalTextContainsFold applies the ContainsFold predicate on the "original_text" field.
func OriginalTextContainsFold(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldContainsFold(FieldOriginalText, v))
}

// CorrectedTextEQ applies the EQ predicate on the "corrected_text" field.
func CorrectedTextEQ(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEQ(FieldCorrectedText, v))
}

// CorrectedTextNEQ applies the NEQ predicate on the "corrected_text" field.
func CorrectedTextNEQ(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldNEQ(FieldCorrectedText, v))
}

// CorrectedTextIn applies the In predicate on the "corrected_text" field.
func CorrectedTextIn(vs ...string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldIn(FieldCorrectedText, vs...))
}

// CorrectedTextNotIn applies the NotIn predicate on the "corrected_text" field.
func CorrectedTextNotIn(vs ...string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldNotIn(FieldCorrectedText, vs...))
}

// CorrectedTextGT applies the GT predicate on the "corrected_text" field.
func CorrectedTextGT(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldGT(FieldCorrectedText, v))
}

// CorrectedTextGTE applies the GTE predicate on the "corrected_text" field.
func CorrectedTextGTE(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldGTE(FieldCorrectedText, v))
}

// CorrectedTextLT applies the LT predicate on the "corrected_text" field.
func CorrectedTextLT(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldLT(FieldCorrectedText, v))
}

// CorrectedTextLTE applies the LTE predicate on the "corrected_text" field.
func CorrectedTextLTE(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldLTE(FieldCorrectedText, v))
}

// CorrectedTextContains applies the Contains predicate on the "corrected_text" field.
func CorrectedTextContains(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldContains(FieldCorrectedText, v))
}

// CorrectedTextHasPrefix applies the HasPrefix predicate on the "corrected_text" field.
func CorrectedTextHasPrefix(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldHasPrefix(FieldCorrectedText, v))
}

// CorrectedTextHasSuffix applies the HasSuffix predicate on the "corrected_text" field.
func CorrectedTextHasSuffix(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldHasSuffix(FieldCorrectedText, v))
}

// CorrectedTextEqualFold applies the EqualFold predicate on the "corrected_text" field.
func CorrectedTextEqualFold(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEqualFold(FieldCorrectedText, v))
}

// CorrectedTextContainsFold applies the ContainsFold predicate on the "corrected_text" field.
func CorrectedTextContainsFold(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldContainsFold(FieldCorrectedText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrainingSample) predicate.TrainingSample {
	return predicate.TrainingSample(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrainingSample) predicate.TrainingSample {
	return predicate.TrainingSample(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrainingSample) predicate.TrainingSample {
	return predicate.TrainingSample(sql.NotPredicates(p))
}
