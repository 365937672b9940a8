// Code generated by ent, DO NOT EDIT.

package correction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/veridoc/ocr-review/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldDocumentID, v))
}

// PageIndex applies equality check predicate on the "page_index" field. It's identical to PageIndexEQ.
func PageIndex(v int) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldPageIndex, v))
}

// WordRef applies equality check predicate on the "word_ref" field. It's identical to WordRefEQ.
func WordRef(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldWordRef, v))
}

// OriginalText applies equality check predicate on the "original_text" field. It's identical to OriginalTextEQ.
func OriginalText(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldOriginalText, v))
}

// CorrectedText applies equality check predicate on the "corrected_text" field. It's identical to CorrectedTextEQ.
func CorrectedText(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldCorrectedText, v))
}

// Author applies equality check predicate on the "author" field. It's identical to AuthorEQ.
func Author(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldAuthor, v))
}

// CorrectionType applies equality check predicate on the "correction_type" field. It's identical to CorrectionTypeEQ.
func CorrectionType(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldCorrectionType, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldLTE(FieldDocumentID, v))
}

// PageIndexEQ applies the EQ predicate on the "page_index" field.
func PageIndexEQ(v int) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldPageIndex, v))
}

// PageIndexNEQ applies the NEQ predicate on the "page_index" field.
func PageIndexNEQ(v int) predicate.Correction {
	return predicate.Correction(sql.FieldNEQ(FieldPageIndex, v))
}

// PageIndexIn applies the In predicate on the "page_index" field.
func PageIndexIn(vs ...int) predicate.Correction {
	return predicate.Correction(sql.FieldIn(FieldPageIndex, vs...))
}

// PageIndexNotIn applies the NotIn predicate on the "page_index" field.
func PageIndexNotIn(vs ...int) predicate.Correction {
	return predicate.Correction(sql.FieldNotIn(FieldPageIndex, vs...))
}

// PageIndexGT applies the GT predicate on the "page_index" field.
func PageIndexGT(v int) predicate.Correction {
	return predicate.Correction(sql.FieldGT(FieldPageIndex, v))
}

// PageIndexGTE applies the GTE predicate on the "page_index" field.
func PageIndexGTE(v int) predicate.Correction {
	return predicate.Correction(sql.FieldGTE(FieldPageIndex, v))
}

// PageIndexLT applies the LT predicate on the "page_index" field.
func PageIndexLT(v int) predicate.Correction {
	return predicate.Correction(sql.FieldLT(FieldPageIndex, v))
}

// PageIndexLTE applies the LTE predicate on the "page_index" field.
func PageIndexLTE(v int) predicate.Correction {
	return predicate.Correction(sql.FieldLTE(FieldPageIndex, v))
}

// WordRefEQ applies the EQ predicate on the "word_ref" field.
func WordRefEQ(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldWordRef, v))
}

// WordRefNEQ applies the NEQ predicate on the "word_ref" field.
func WordRefNEQ(v string) predicate.Correction {
	return predicate.Correction(sql.FieldNEQ(FieldWordRef, v))
}

// WordRefIn applies the In predicate on the "word_ref" field.
func WordRefIn(vs ...string) predicate.Correction {
	return predicate.Correction(sql.FieldIn(FieldWordRef, vs...))
}

// WordRefNotIn applies the NotIn predicate on the "word_ref" field.
func WordRefNotIn(vs ...string) predicate.Correction {
	return predicate.Correction(sql.FieldNotIn(FieldWordRef, vs...))
}

// WordRefGT applies the GT predicate on the "word_ref" field.
func WordRefGT(v string) predicate.Correction {
	return predicate.Correction(sql.FieldGT(FieldWordRef, v))
}

// WordRefGTE applies the GTE predicate on the "word_ref" field.
func WordRefGTE(v string) predicate.Correction {
	return predicate.Correction(sql.FieldGTE(FieldWordRef, v))
}

// WordRefLT applies the LT predicate on the "word_ref" field.
func WordRefLT(v string) predicate.Correction {
	return predicate.Correction(sql.FieldLT(FieldWordRef, v))
}

// WordRefLTE applies the LTE predicate on the "word_ref" field.
func WordRefLTE(v string) predicate.Correction {
	return predicate.Correction(sql.FieldLTE(FieldWordRef, v))
}

// WordRefContains applies the Contains predicate on the "word_ref" field.
func WordRefContains(v string) predicate.Correction {
	return predicate.Correction(sql.FieldContains(FieldWordRef, v))
}

// WordRefHasPrefix applies the HasPrefix predicate on the "word_ref" field.
func WordRefHasPrefix(v string) predicate.Correction {
	return predicate.Correction(sql.FieldHasPrefix(FieldWordRef, v))
}

// WordRefHasSuffix applies the HasSuffix predicate on the "word_ref" field.
func WordRefHasSuffix(v string) predicate.Correction {
	return predicate.Correction(sql.FieldHasSuffix(FieldWordRef, v))
}

// WordRefEqualFold applies the EqualFold predicate on the "word_ref" field.
func WordRefEqualFold(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEqualFold(FieldWordRef, v))
}

// WordRefContainsFold applies the ContainsFold predicate on the "word_ref" field.
func WordRefContainsFold(v string) predicate.Correction {
	return predicate.Correction(sql.FieldContainsFold(FieldWordRef, v))
}

// OriginalTextEQ applies the EQ predicate on the "original_text" field.
func OriginalTextEQ(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldOriginalText, v))
}

// OriginalTextNEQ applies the NEQ predicate on the "original_text" field.
func OriginalTextNEQ(v string) predicate.Correction {
	return predicate.Correction(sql.FieldNEQ(FieldOriginalText, v))
}

// OriginalTextIn applies the In predicate on the "original_text" field.
func OriginalTextIn(vs ...string) predicate.Correction {
	return predicate.Correction(sql.FieldIn(FieldOriginalText, vs...))
}

// OriginalTextNotIn applies the NotIn predicate on the "original_text" field.
func OriginalTextNotIn(vs ...string) predicate.Correction {
	return predicate.Correction(sql.FieldNotIn(FieldOriginalText, vs...))
}

// OriginalTextGT applies the GT predicate on the "original_text" field.
func OriginalTextGT(v string) predicate.Correction {
	return predicate.Correction(sql.FieldGT(FieldOriginalText, v))
}

// OriginalTextGTE applies the GTE predicate on the "original_text" field.
func OriginalTextGTE(v string) predicate.Correction {
	return predicate.Correction(sql.FieldGTE(FieldOriginalText, v))
}

// OriginalTextLT applies the LT predicate on the "original_text" field.
func OriginalTextLT(v string) predicate.Correction {
	return predicate.Correction(sql.FieldLT(FieldOriginalText, v))
}

// OriginalTextLTE applies the LTE predicate on the "original_text" field.
func OriginalTextLTE(v string) predicate.Correction {
	return predicate.Correction(sql.FieldLTE(FieldOriginalText, v))
}

// OriginalTextContains applies the Contains predicate on the "original_text" field.
func OriginalTextContains(v string) predicate.Correction {
	return predicate.Correction(sql.FieldContains(FieldOriginalText, v))
}

// OriginalTextHasPrefix applies the HasPrefix predicate on the "original_text" field.
func OriginalTextHasPrefix(v string) predicate.Correction {
	return predicate.Correction(sql.FieldHasPrefix(FieldOriginalText, v))
}

// OriginalTextHasSuffix applies the HasSuffix predicate on the "original_text" field.
func OriginalTextHasSuffix(v string) predicate.Correction {
	return predicate.Correction(sql.FieldHasSuffix(FieldOriginalText, v))
}

// OriginalTextEqualFold applies the EqualFold predicate on the "original_text" field.
func OriginalTextEqualFold(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEqualFold(FieldOriginalText, v))
}

// OriginalTextContainsFold applies the ContainsFold predicate on the "original_text" field.
func OriginalTextContainsFold(v string) predicate.Correction {
	return predicate.Correction(sql.FieldContainsFold(FieldOriginalText, v))
}

// CorrectedTextEQ applies the EQ predicate on the "corrected_text" field.
func CorrectedTextEQ(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldCorrectedText, v))
}

// CorrectedTextNEQ applies the NEQ predicate on the "corrected_text" field.
func CorrectedTextNEQ(v string) predicate.Correction {
	return predicate.Correction(sql.FieldNEQ(FieldCorrectedText, v))
}

// CorrectedTextIn applies the In predicate on the "corrected_text" field.
func CorrectedTextIn(vs ...string) predicate.Correction {
	return predicate.Correction(sql.FieldIn(FieldCorrectedText, vs...))
}

// CorrectedTextNotIn applies the NotIn predicate on the "corrected_text" field.
func CorrectedTextNotIn(vs ...string) predicate.Correction {
	return predicate.Correction(sql.FieldNotIn(FieldCorrectedText, vs...))
}

// CorrectedTextGT applies the GT predicate on the "corrected_text" field.
func CorrectedTextGT(v string) predicate.Correction {
	return predicate.Correction(sql.FieldGT(FieldCorrectedText, v))
}

// CorrectedTextGTE applies the GTE predicate on the "corrected_text" field.
func CorrectedTextGTE(v string) predicate.Correction {
	return predicate.Correction(sql.FieldGTE(FieldCorrectedText, v))
}

// CorrectedTextLT applies the LT predicate on the "corrected_text" field.
func CorrectedTextLT(v string) predicate.Correction {
	return predicate.Correction(sql.FieldLT(FieldCorrectedText, v))
}

// CorrectedTextLTE applies the LTE predicate on the "corrected_text" field.
func CorrectedTextLTE(v string) predicate.Correction {
	return predicate.Correction(sql.FieldLTE(FieldCorrectedText, v))
}

// CorrectedTextContains applies the Contains predicate on the "corrected_text" field.
func CorrectedTextContains(v string) predicate.Correction {
	return predicate.Correction(sql.FieldContains(FieldCorrectedText, v))
}

// CorrectedTextHasPrefix applies the HasPrefix predicate on the "corrected_text" field.
func CorrectedTextHasPrefix(v string) predicate.Correction {
	return predicate.Correction(sql.FieldHasPrefix(FieldCorrectedText, v))
}

// CorrectedTextHasSuffix applies the HasSuffix predicate on the "corrected_text" field.
func CorrectedTextHasSuffix(v string) predicate.Correction {
	return predicate.Correction(sql.FieldHasSuffix(FieldCorrectedText, v))
}

// CorrectedTextEqualFold applies the EqualFold predicate on the "corrected_text" field.
func CorrectedTextEqualFold(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEqualFold(FieldCorrectedText, v))
}

// CorrectedTextContainsFold applies the ContainsFold predicate on the "corrected_text" field.
func CorrectedTextContainsFold(v string) predicate.Correction {
	return predicate.Correction(sql.FieldContainsFold(FieldCorrectedText, v))
}

// AuthorEQ applies the EQ predicate on the "author" field.
func AuthorEQ(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldAuthor, v))
}

// AuthorNEQ applies the NEQ predicate on the "author" field.
func AuthorNEQ(v string) predicate.Correction {
	return predicate.Correction(sql.FieldNEQ(FieldAuthor, v))
}

// AuthorIn applies the In predicate on the "author" field.
func AuthorIn(vs ...string) predicate.Correction {
	return predicate.Correction(sql.FieldIn(FieldAuthor, vs...))
}

// AuthorNotIn applies the NotIn predicate on the "author" field.
func AuthorNotIn(vs ...string) predicate.Correction {
	return predicate.Correction(sql.FieldNotIn(FieldAuthor, vs...))
}

// AuthorGT applies the GT predicate on the "author" field.
func AuthorGT(v string) predicate.Correction {
	return predicate.Correction(sql.FieldGT(FieldAuthor, v))
}

// AuthorGTE applies the GTE predicate on the "author" field.
func AuthorGTE(v string) predicate.Correction {
	return predicate.Correction(sql.FieldGTE(FieldAuthor, v))
}

// AuthorLT applies the LT predicate on the "author" field.
func AuthorLT(v string) predicate.Correction {
	return predicate.Correction(sql.FieldLT(FieldAuthor, v))
}

// AuthorLTE applies the LTE predicate on the "author" field.
func AuthorLTE(v string) predicate.Correction {
	return predicate.Correction(sql.FieldLTE(FieldAuthor, v))
}

// AuthorContains applies the Contains predicate on the "author" field.
func AuthorContains(v string) predicate.Correction {
	return predicate.Correction(sql.FieldContains(FieldAuthor, v))
}

// AuthorHasPrefix applies the HasPrefix predicate on the "author" field.
func AuthorHasPrefix(v string) predicate.Correction {
	return predicate.Correction(sql.FieldHasPrefix(FieldAuthor, v))
}

// AuthorHasSuffix applies the HasSuffix predicate on the "author" field.
func AuthorHasSuffix(v string) predicate.Correction {
	return predicate.Correction(sql.FieldHasSuffix(FieldAuthor, v))
}

// AuthorEqualFold applies the EqualFold predicate on the "author" field.
func AuthorEqualFold(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEqualFold(FieldAuthor, v))
}

// AuthorContainsFold applies the ContainsFold predicate on the "author" field.
func AuthorContainsFold(v string) predicate.Correction {
	return predicate.Correction(sql.FieldContainsFold(FieldAuthor, v))
}

// CorrectionTypeEQ applies the EQ predicate on the "correction_type" field.
func CorrectionTypeEQ(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldCorrectionType, v))
}

// CorrectionTypeNEQ applies the NEQ predicate on the "correction_type" field.
func CorrectionTypeNEQ(v string) predicate.Correction {
	return predicate.Correction(sql.FieldNEQ(FieldCorrectionType, v))
}

// CorrectionTypeIn applies the In predicate on the "correction_type" field.
func CorrectionTypeIn(vs ...string) predicate.Correction {
	return predicate.Correction(sql.FieldIn(FieldCorrectionType, vs...))
}

// CorrectionTypeNotIn applies the NotIn predicate on the "correction_type" field.
func CorrectionTypeNotIn(vs ...string) predicate.Correction {
	return predicate.Correction(sql.FieldNotIn(FieldCorrectionType, vs...))
}

// CorrectionTypeGT applies the GT predicate on the "correction_type" field.
func CorrectionTypeGT(v string) predicate.Correction {
	return predicate.Correction(sql.FieldGT(FieldCorrectionType, v))
}

// CorrectionTypeGTE applies the GTE predicate on the "correction_type" field.
func CorrectionTypeGTE(v string) predicate.Correction {
	return predicate.Correction(sql.FieldGTE(FieldCorrectionType, v))
}

// CorrectionTypeLT applies the LT predicate on the "correction_type" field.
func CorrectionTypeLT(v string) predicate.Correction {
	return predicate.Correction(sql.FieldLT(FieldCorrectionType, v))
}

// CorrectionTypeLTE applies the LTE predicate on the "correction_type" field.
func CorrectionTypeLTE(v string) predicate.Correction {
	return predicate.Correction(sql.FieldLTE(FieldCorrectionType, v))
}

// CorrectionTypeContains applies the Contains predicate on the "correction_type" field.
func CorrectionTypeContains(v string) predicate.Correction {
	return predicate.Correction(sql.FieldContains(FieldCorrectionType, v))
}

// CorrectionTypeHasPrefix applies the HasPrefix predicate on the "correction_type" field.
func CorrectionTypeHasPrefix(v string) predicate.Correction {
	return predicate.Correction(sql.FieldHasPrefix(FieldCorrectionType, v))
}

// CorrectionTypeHasSuffix applies the HasSuffix predicate on the "correction_type" field.
func CorrectionTypeHasSuffix(v string) predicate.Correction {
	return predicate.Correction(sql.FieldHasSuffix(FieldCorrectionType, v))
}

// CorrectionTypeEqualFold applies the EqualFold predicate on the "correction_type" field.
func CorrectionTypeEqualFold(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEqualFold(FieldCorrectionType, v))
}

// CorrectionTypeContainsFold applies the ContainsFold predicate on the "correction_type" field.
func CorrectionTypeContainsFold(v string) predicate.Correction {
	return predicate.Correction(sql.FieldContainsFold(FieldCorrectionType, v))
}

// BboxSnapshotIsNil applies the IsNil predicate on the "bbox_snapshot" field.
func BboxSnapshotIsNil() predicate.Correction {
	return predicate.Correction(sql.FieldIsNull(FieldBboxSnapshot))
}

// BboxSnapshotNotNil applies the NotNil predicate on the "bbox_snapshot" field.
func BboxSnapshotNotNil() predicate.Correction {
	return predicate.Correction(sql.FieldNotNull(FieldBboxSnapshot))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Correction) predicate.Correction {
	return predicate.Correction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Correction) predicate.Correction {
	return predicate.Correction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Correction) predicate.Correction {
	return predicate.Correction(sql.NotPredicates(p))
}
