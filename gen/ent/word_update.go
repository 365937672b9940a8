// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/veridoc/ocr-review/gen/ent/page"
	"github.com/veridoc/ocr-review/gen/ent/predicate"
	"github.com/veridoc/ocr-review/gen/ent/word"
)

// WordUpdate is the builder for updating Word entities.
type WordUpdate struct {
	config
	hooks    []Hook
	mutation *WordMutation
}

// Where appends a list predicates to the WordUpdate builder.
func (_u *WordUpdate) Where(ps ...predicate.Word) *WordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPageID sets the "page_id" field.
func (_u *WordUpdate) SetPageID(v uuid.UUID) *WordUpdate {
	_u.mutation.SetPageID(v)
	return _u
}

// SetNillablePageID sets the "page_id" field if the given value is not nil.
func (_u *WordUpdate) SetNillablePageID(v *uuid.UUID) *WordUpdate {
	if v != nil {
		_u.SetPageID(*v)
	}
	return _u
}

// SetBlockIndex sets the "block_index" field.
func (_u *WordUpdate) SetBlockIndex(v int) *WordUpdate {
	_u.mutation.ResetBlockIndex()
	_u.mutation.SetBlockIndex(v)
	return _u
}

// SetNillableBlockIndex sets the "block_index" field if the given value is not nil.
func (_u *WordUpdate) SetNillableBlockIndex(v *int) *WordUpdate {
	if v != nil {
		_u.SetBlockIndex(*v)
	}
	return _u
}

// AddBlockIndex adds value to the "block_index" field.
func (_u *WordUpdate) AddBlockIndex(v int) *WordUpdate {
	_u.mutation.AddBlockIndex(v)
	return _u
}

// SetLineIndex sets the "line_index" field.
func (_u *WordUpdate) SetLineIndex(v int) *WordUpdate {
	_u.mutation.ResetLineIndex()
	_u.mutation.SetLineIndex(v)
	return _u
}

// SetNillableLineIndex sets the "line_index" field if the given value is not nil.
func (_u *WordUpdate) SetNillableLineIndex(v *int) *WordUpdate {
	if v != nil {
		_u.SetLineIndex(*v)
	}
	return _u
}

// AddLineIndex adds value to the "line_index" field.
func (_u *WordUpdate) AddLineIndex(v int) *WordUpdate {
	_u.mutation.AddLineIndex(v)
	return _u
}

// SetWordIndex sets the "word_index" field.
func (_u *WordUpdate) SetWordIndex(v int) *WordUpdate {
	_u.mutation.ResetWordIndex()
	_u.mutation.SetWordIndex(v)
	return _u
}

// SetNillableWordIndex sets the "word_index" field if the given value is not nil.
func (_u *WordUpdate) SetNillableWordIndex(v *int) *WordUpdate {
	if v != nil {
		_u.SetWordIndex(*v)
	}
	return _u
}

// AddWordIndex adds value to the "word_index" field.
func (_u *WordUpdate) AddWordIndex(v int) *WordUpdate {
	_u.mutation.AddWordIndex(v)
	return _u
}

// SetText sets the "text" field.
func (_u *WordUpdate) SetText(v string) *WordUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *WordUpdate) SetNillableText(v *string) *WordUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *WordUpdate) SetConfidence(v float64) *WordUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *WordUpdate) SetNillableConfidence(v *float64) *WordUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *WordUpdate) AddConfidence(v float64) *WordUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *WordUpdate) ClearConfidence() *WordUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetGeometry sets the "geometry" field.
func (_u *WordUpdate) SetGeometry(v [][]float64) *WordUpdate {
	_u.mutation.SetGeometry(v)
	return _u
}

// AppendGeometry appends value to the "geometry" field.
func (_u *WordUpdate) AppendGeometry(v [][]float64) *WordUpdate {
	_u.mutation.AppendGeometry(v)
	return _u
}

// ClearGeometry clears the value of the "geometry" field.
func (_u *WordUpdate) ClearGeometry() *WordUpdate {
	_u.mutation.ClearGeometry()
	return _u
}

// SetOriginalText sets the "original_text" field.
func (_u *WordUpdate) SetOriginalText(v string) *WordUpdate {
	_u.mutation.SetOriginalText(v)
	return _u
}

// SetNillableOriginalText sets the "original_text" field if the given value is not nil.
func (_u *WordUpdate) SetNillableOriginalText(v *string) *WordUpdate {
	if v != nil {
		_u.SetOriginalText(*v)
	}
	return _u
}

// ClearOriginalText clears the value of the "original_text" field.
func (_u *WordUpdate) ClearOriginalText() *WordUpdate {
	_u.mutation.ClearOriginalText()
	return _u
}

// SetAutoCorrected sets the "auto_corrected" field.
func (_u *WordUpdate) SetAutoCorrected(v bool) *WordUpdate {
	_u.mutation.SetAutoCorrected(v)
	return _u
}

// SetNillableAutoCorrected sets the "auto_corrected" field if the given value is not nil.
func (_u *WordUpdate) SetNillableAutoCorrected(v *bool) *WordUpdate {
	if v != nil {
		_u.SetAutoCorrected(*v)
	}
	return _u
}

// SetManuallyCorrected sets the "manually_corrected" field.
func (_u *WordUpdate) SetManuallyCorrected(v bool) *WordUpdate {
	_u.mutation.SetManuallyCorrected(v)
	return _u
}

// SetNillableManuallyCorrected sets the "manually_corrected" field if the given value is not nil.
func (_u *WordUpdate) SetNillableManuallyCorrected(v *bool) *WordUpdate {
	if v != nil {
		_u.SetManuallyCorrected(*v)
	}
	return _u
}

// SetAutoCorrectionOverridden sets the "auto_correction_overridden" field.
func (_u *WordUpdate) SetAutoCorrectionOverridden(v bool) *WordUpdate {
	_u.mutation.SetAutoCorrectionOverridden(v)
	return _u
}

// SetNillableAutoCorrectionOverridden sets the "auto_correction_overridden" field if the given value is not nil.
func (_u *WordUpdate) SetNillableAutoCorrectionOverridden(v *bool) *WordUpdate {
	if v != nil {
		_u.SetAutoCorrectionOverridden(*v)
	}
	return _u
}

// SetPage sets the "page" edge to the Page entity.
func (_u *WordUpdate) SetPage(v *Page) *WordUpdate {
	return _u.SetPageID(v.ID)
}

// Mutation returns the WordMutation object of the builder.
func (_u *WordUpdate) Mutation() *WordMutation {
	return _u.mutation
}

// ClearPage clears the "page" edge to the Page entity.
func (_u *WordUpdate) ClearPage() *WordUpdate {
	_u.mutation.ClearPage()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WordUpdate) check() error {
	if v, ok := _u.mutation.BlockIndex(); ok {
		if err := word.BlockIndexValidator(v); err != nil {
			return &ValidationError{Name: "block_index", err: fmt.Errorf(`ent: validator failed for field "Word.block_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LineIndex(); ok {
		if err := word.LineIndexValidator(v); err != nil {
			return &ValidationError{Name: "line_index", err: fmt.Errorf(`ent: validator failed for field "Word.line_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WordIndex(); ok {
		if err := word.WordIndexValidator(v); err != nil {
			return &ValidationError{Name: "word_index", err: fmt.Errorf(`ent: validator failed for field "Word.word_index": %w`, err)}
		}
	}
	if _u.mutation.PageCleared() && len(_u.mutation.PageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Word.page"`)
	}
	return nil
}

func (_u *WordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(word.Table, word.Columns, sqlgraph.NewFieldSpec(word.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BlockIndex(); ok {
		_spec.SetField(word.FieldBlockIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBlockIndex(); ok {
		_spec.AddField(word.FieldBlockIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LineIndex(); ok {
		_spec.SetField(word.FieldLineIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLineIndex(); ok {
		_spec.AddField(word.FieldLineIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WordIndex(); ok {
		_spec.SetField(word.FieldWordIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordIndex(); ok {
		_spec.AddField(word.FieldWordIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(word.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(word.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(word.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(word.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Geometry(); ok {
		_spec.SetField(word.FieldGeometry, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGeometry(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, word.FieldGeometry, value)
		})
	}
	if _u.mutation.GeometryCleared() {
		_spec.ClearField(word.FieldGeometry, field.TypeJSON)
	}
	if value, ok := _u.mutation.OriginalText(); ok {
		_spec.SetField(word.FieldOriginalText, field.TypeString, value)
	}
	if _u.mutation.OriginalTextCleared() {
		_spec.ClearField(word.FieldOriginalText, field.TypeString)
	}
	if value, ok := _u.mutation.AutoCorrected(); ok {
		_spec.SetField(word.FieldAutoCorrected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ManuallyCorrected(); ok {
		_spec.SetField(word.FieldManuallyCorrected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AutoCorrectionOverridden(); ok {
		_spec.SetField(word.FieldAutoCorrectionOverridden, field.TypeBool, value)
	}
	if _u.mutation.PageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   word.PageTable,
			Columns: []string{word.PageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(page.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   word.PageTable,
			Columns: []string{word.PageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(page.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{word.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WordUpdateOne is the builder for updating a single Word entity.
type WordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WordMutation
}

// SetPageID sets the "page_id" field.
func (_u *WordUpdateOne) SetPageID(v uuid.UUID) *WordUpdateOne {
	_u.mutation.SetPageID(v)
	return _u
}

// SetNillablePageID sets the "page_id" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillablePageID(v *uuid.UUID) *WordUpdateOne {
	if v != nil {
		_u.SetPageID(*v)
	}
	return _u
}

// SetBlockIndex sets the "block_index" field.
func (_u *WordUpdateOne) SetBlockIndex(v int) *WordUpdateOne {
	_u.mutation.ResetBlockIndex()
	_u.mutation.SetBlockIndex(v)
	return _u
}

// SetNillableBlockIndex sets the "block_index" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableBlockIndex(v *int) *WordUpdateOne {
	if v != nil {
		_u.SetBlockIndex(*v)
	}
	return _u
}

// AddBlockIndex adds value to the "block_index" field.
func (_u *WordUpdateOne) AddBlockIndex(v int) *WordUpdateOne {
	_u.mutation.AddBlockIndex(v)
	return _u
}

// SetLineIndex sets the "line_index" field.
func (_u *WordUpdateOne) SetLineIndex(v int) *WordUpdateOne {
	_u.mutation.ResetLineIndex()
	_u.mutation.SetLineIndex(v)
	return _u
}

// SetNillableLineIndex sets the "line_index" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableLineIndex(v *int) *WordUpdateOne {
	if v != nil {
		_u.SetLineIndex(*v)
	}
	return _u
}

// AddLineIndex adds value to the "line_index" field.
func (_u *WordUpdateOne) AddLineIndex(v int) *WordUpdateOne {
	_u.mutation.AddLineIndex(v)
	return _u
}

// SetWordIndex sets the "word_index" field.
func (_u *WordUpdateOne) SetWordIndex(v int) *WordUpdateOne {
	_u.mutation.ResetWordIndex()
	_u.mutation.SetWordIndex(v)
	return _u
}

// SetNillableWordIndex sets the "word_index" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableWordIndex(v *int) *WordUpdateOne {
	if v != nil {
		_u.SetWordIndex(*v)
	}
	return _u
}

// AddWordIndex adds value to the "word_index" field.
func (_u *WordUpdateOne) AddWordIndex(v int) *WordUpdateOne {
	_u.mutation.AddWordIndex(v)
	return _u
}

// SetText sets the "text" field.
func (_u *WordUpdateOne) SetText(v string) *WordUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableText(v *string) *WordUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *WordUpdateOne) SetConfidence(v float64) *WordUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableConfidence(v *float64) *WordUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *WordUpdateOne) AddConfidence(v float64) *WordUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *WordUpdateOne) ClearConfidence() *WordUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetGeometry sets the "geometry" field.
func (_u *WordUpdateOne) SetGeometry(v [][]float64) *WordUpdateOne {
	_u.mutation.SetGeometry(v)
	return _u
}

// AppendGeometry appends value to the "geometry" field.
func (_u *WordUpdateOne) AppendGeometry(v [][]float64) *WordUpdateOne {
	_u.mutation.AppendGeometry(v)
	return _u
}

// ClearGeometry clears the value of the "geometry" field.
func (_u *WordUpdateOne) ClearGeometry() *WordUpdateOne {
	_u.mutation.ClearGeometry()
	return _u
}

// SetOriginalText sets the "original_text" field.
func (_u *WordUpdateOne) SetOriginalText(v string) *WordUpdateOne {
	_u.mutation.SetOriginalText(v)
	return _u
}

// SetNillableOriginalText sets the "original_text" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableOriginalText(v *string) *WordUpdateOne {
	if v != nil {
		_u.SetOriginalText(*v)
	}
	return _u
}

// ClearOriginalText clears the value of the "original_text" field.
func (_u *WordUpdateOne) ClearOriginalText() *WordUpdateOne {
	_u.mutation.ClearOriginalText()
	return _u
}

// SetAutoCorrected sets the "auto_corrected" field.
func (_u *WordUpdateOne) SetAutoCorrected(v bool) *WordUpdateOne {
	_u.mutation.SetAutoCorrected(v)
	return _u
}

// SetNillableAutoCorrected sets the "auto_corrected" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableAutoCorrected(v *bool) *WordUpdateOne {
	if v != nil {
		_u.SetAutoCorrected(*v)
	}
	return _u
}

// SetManuallyCorrected sets the "manually_corrected" field.
func (_u *WordUpdateOne) SetManuallyCorrected(v bool) *WordUpdateOne {
	_u.mutation.SetManuallyCorrected(v)
	return _u
}

// SetNillableManuallyCorrected sets the "manually_corrected" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableManuallyCorrected(v *bool) *WordUpdateOne {
	if v != nil {
		_u.SetManuallyCorrected(*v)
	}
	return _u
}

// SetAutoCorrectionOverridden sets the "auto_correction_overridden" field.
func (_u *WordUpdateOne) SetAutoCorrectionOverridden(v bool) *WordUpdateOne {
	_u.mutation.SetAutoCorrectionOverridden(v)
	return _u
}

// SetNillableAutoCorrectionOverridden sets the "auto_correction_overridden" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableAutoCorrectionOverridden(v *bool) *WordUpdateOne {
	if v != nil {
		_u.SetAutoCorrectionOverridden(*v)
	}
	return _u
}

// SetPage sets the "page" edge to the Page entity.
func (_u *WordUpdateOne) SetPage(v *Page) *WordUpdateOne {
	return _u.SetPageID(v.ID)
}

// Mutation returns the WordMutation object of the builder.
func (_u *WordUpdateOne) Mutation() *WordMutation {
	return _u.mutation
}

// ClearPage clears the "page" edge to the Page entity.
func (_u *WordUpdateOne) ClearPage() *WordUpdateOne {
	_u.mutation.ClearPage()
	return _u
}

// Where appends a list predicates to the WordUpdate builder.
func (_u *WordUpdateOne) Where(ps ...predicate.Word) *WordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WordUpdateOne) Select(field string, fields ...string) *WordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Word entity.
func (_u *WordUpdateOne) Save(ctx context.Context) (*Word, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WordUpdateOne) SaveX(ctx context.Context) *Word {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WordUpdateOne) check() error {
	if v, ok := _u.mutation.BlockIndex(); ok {
		if err := word.BlockIndexValidator(v); err != nil {
			return &ValidationError{Name: "block_index", err: fmt.Errorf(`ent: validator failed for field "Word.block_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LineIndex(); ok {
		if err := word.LineIndexValidator(v); err != nil {
			return &ValidationError{Name: "line_index", err: fmt.Errorf(`ent: validator failed for field "Word.line_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WordIndex(); ok {
		if err := word.WordIndexValidator(v); err != nil {
			return &ValidationError{Name: "word_index", err: fmt.Errorf(`ent: validator failed for field "Word.word_index": %w`, err)}
		}
	}
	if _u.mutation.PageCleared() && len(_u.mutation.PageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Word.page"`)
	}
	return nil
}

func (_u *WordUpdateOne) sqlSave(ctx context.Context) (_node *Word, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(word.Table, word.Columns, sqlgraph.NewFieldSpec(word.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Word.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, word.FieldID)
		for _, f := range fields {
			if !word.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != word.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BlockIndex(); ok {
		_spec.SetField(word.FieldBlockIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBlockIndex(); ok {
		_spec.AddField(word.FieldBlockIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LineIndex(); ok {
		_spec.SetField(word.FieldLineIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLineIndex(); ok {
		_spec.AddField(word.FieldLineIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WordIndex(); ok {
		_spec.SetField(word.FieldWordIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordIndex(); ok {
		_spec.AddField(word.FieldWordIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(word.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(word.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(word.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(word.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Geometry(); ok {
		_spec.SetField(word.FieldGeometry, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGeometry(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, word.FieldGeometry, value)
		})
	}
	if _u.mutation.GeometryCleared() {
		_spec.ClearField(word.FieldGeometry, field.TypeJSON)
	}
	if value, ok := _u.mutation.OriginalText(); ok {
		_spec.SetField(word.FieldOriginalText, field.TypeString, value)
	}
	if _u.mutation.OriginalTextCleared() {
		_spec.ClearField(word.FieldOriginalText, field.TypeString)
	}
	if value, ok := _u.mutation.AutoCorrected(); ok {
		_spec.SetField(word.FieldAutoCorrected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ManuallyCorrected(); ok {
		_spec.SetField(word.FieldManuallyCorrected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AutoCorrectionOverridden(); ok {
		_spec.SetField(word.FieldAutoCorrectionOverridden, field.TypeBool, value)
	}
	if _u.mutation.PageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   word.PageTable,
			Columns: []string{word.PageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(page.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   word.PageTable,
			Columns: []string{word.PageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(page.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Word{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{word.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
