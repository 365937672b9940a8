// Code generated by ent, DO NOT EDIT.

package lexiconentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/veridoc/ocr-review/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldLTE(FieldID, id))
}

// Misspelled applies equality check predicate on the "misspelled" field. It's identical to MisspelledEQ.
func Misspelled(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldEQ(FieldMisspelled, v))
}

// Corrected applies equality check predicate on the "corrected" field. It's identical to CorrectedEQ.
func Corrected(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldEQ(FieldCorrected, v))
}

// Scope applies equality check predicate on the "scope" field. It's identical to ScopeEQ.
func Scope(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldEQ(FieldScope, v))
}

// Frequency applies equality check predicate on the "frequency" field. It's identical to FrequencyEQ.
func Frequency(v int) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldEQ(FieldFrequency, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// MisspelledEQ applies the EQ predicate on the "misspelled" field.
func MisspelledEQ(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldEQ(FieldMisspelled, v))
}

// MisspelledNEQ applies the NEQ predicate on the "misspelled" field.
func MisspelledNEQ(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldNEQ(FieldMisspelled, v))
}

// MisspelledIn applies the In predicate on the "misspelled" field.
func MisspelledIn(vs ...string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldIn(FieldMisspelled, vs...))
}

// MisspelledNotIn applies the NotIn predicate on the "misspelled" field.
func MisspelledNotIn(vs ...string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldNotIn(FieldMisspelled, vs...))
}

// MisspelledGT applies the GT predicate on the "misspelled" field.
func MisspelledGT(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldGT(FieldMisspelled, v))
}

// MisspelledGTE applies the GTE predicate on the "misspelled" field.
func MisspelledGTE(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldGTE(FieldMisspelled, v))
}

// MisspelledLT applies the LT predicate on the "misspelled" field.
func MisspelledLT(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldLT(FieldMisspelled, v))
}

// MisspelledLTE applies the LTE predicate on the "misspelled" field.
func MisspelledLTE(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldLTE(FieldMisspelled, v))
}

// MisspelledContains applies the Contains predicate on the "misspelled" field.
func MisspelledContains(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldContains(FieldMisspelled, v))
}

// MisspelledHasPrefix applies the HasPrefix predicate on the "misspelled" field.
func MisspelledHasPrefix(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldHasPrefix(FieldMisspelled, v))
}

// MisspelledHasSuffix applies the HasSuffix predicate on the "misspelled" field.
func MisspelledHasSuffix(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldHasSuffix(FieldMisspelled, v))
}

// MisspelledEqualFold applies the EqualFold predicate on the "misspelled" field.
func MisspelledEqualFold(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldEqualFold(FieldMisspelled, v))
}

// MisspelledContainsFold applies the ContainsFold predicate on the "misspelled" field.
func MisspelledContainsFold(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldContainsFold(FieldMisspelled, v))
}

// CorrectedEQ applies the EQ predicate on the "corrected" field.
func CorrectedEQ(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldEQ(FieldCorrected, v))
}

// CorrectedNEQ applies the NEQ predicate on the "corrected" field.
func CorrectedNEQ(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldNEQ(FieldCorrected, v))
}

// CorrectedIn applies the In predicate on the "corrected" field.
func CorrectedIn(vs ...string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldIn(FieldCorrected, vs...))
}

// CorrectedNotIn applies the NotIn predicate on the "corrected" field.
func CorrectedNotIn(vs ...string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldNotIn(FieldCorrected, vs...))
}

// CorrectedGT applies the GT predicate on the "corrected" field.
func CorrectedGT(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldGT(FieldCorrected, v))
}

// CorrectedGTE applies the GTE predicate on the "corrected" field.
func CorrectedGTE(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldGTE(FieldCorrected, v))
}

// CorrectedLT applies the LT predicate on the "corrected" field.
func CorrectedLT(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldLT(FieldCorrected, v))
}

// CorrectedLTE applies the LTE predicate on the "corrected" field.
func CorrectedLTE(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldLTE(FieldCorrected, v))
}

// CorrectedContains applies the Contains predicate on the "corrected" field.
func CorrectedContains(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldContains(FieldCorrected, v))
}

// CorrectedHasPrefix applies the HasPrefix predicate on the "corrected" field.
func CorrectedHasPrefix(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldHasPrefix(FieldCorrected, v))
}

// CorrectedHasSuffix applies the HasSuffix predicate on the "corrected" field.
func CorrectedHasSuffix(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldHasSuffix(FieldCorrected, v))
}

// CorrectedEqualFold applies the EqualFold predicate on the "corrected" field.
func CorrectedEqualFold(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldEqualFold(FieldCorrected, v))
}

// CorrectedContainsFold applies the ContainsFold predicate on the "corrected" field.
func CorrectedContainsFold(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldContainsFold(FieldCorrected, v))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldEQ(FieldScope, v))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldNEQ(FieldScope, v))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldIn(FieldScope, vs...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldNotIn(FieldScope, vs...))
}

// ScopeGT applies the GT predicate on the "scope" field.
func ScopeGT(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldGT(FieldScope, v))
}

// ScopeGTE applies the GTE predicate on the "scope" field.
func ScopeGTE(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldGTE(FieldScope, v))
}

// ScopeLT applies the LT predicate on the "scope" field.
func ScopeLT(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldLT(FieldScope, v))
}

// ScopeLTE applies the LTE predicate on the "scope" field.
func ScopeLTE(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldLTE(FieldScope, v))
}

// ScopeContains applies the Contains predicate on the "scope" field.
func ScopeContains(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldContains(FieldScope, v))
}

// ScopeHasPrefix applies the HasPrefix predicate on the "scope" field.
func ScopeHasPrefix(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldHasPrefix(FieldScope, v))
}

// ScopeHasSuffix applies the HasSuffix predicate on the "scope" field.
func ScopeHasSuffix(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldHasSuffix(FieldScope, v))
}

// ScopeEqualFold applies the EqualFold predicate on the "scope" field.
func ScopeEqualFold(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldEqualFold(FieldScope, v))
}

// ScopeContainsFold applies the ContainsFold predicate on the "scope" field.
func ScopeContainsFold(v string) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldContainsFold(FieldScope, v))
}

// FrequencyEQ applies the EQ predicate on the "frequency" field.
func FrequencyEQ(v int) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldEQ(FieldFrequency, v))
}

// FrequencyNEQ applies the NEQ predicate on the "frequency" field.
func FrequencyNEQ(v int) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldNEQ(FieldFrequency, v))
}

// FrequencyIn applies the In predicate on the "frequency" field.
func FrequencyIn(vs ...int) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldIn(FieldFrequency, vs...))
}

// FrequencyNotIn applies the NotIn predicate on the "frequency" field.
func FrequencyNotIn(vs ...int) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldNotIn(FieldFrequency, vs...))
}

// FrequencyGT applies the GT predicate on the "frequency" field.
func FrequencyGT(v int) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldGT(FieldFrequency, v))
}

// FrequencyGTE applies the GTE predicate on the "frequency" field.
func FrequencyGTE(v int) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldGTE(FieldFrequency, v))
}

// FrequencyLT applies the LT predicate on the "frequency" field.
func FrequencyLT(v int) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldLT(FieldFrequency, v))
}

// FrequencyLTE applies the LTE predicate on the "frequency" field.
func FrequencyLTE(v int) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldLTE(FieldFrequency, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LexiconEntry) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LexiconEntry) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LexiconEntry) predicate.LexiconEntry {
	return predicate.LexiconEntry(sql.NotPredicates(p))
}
