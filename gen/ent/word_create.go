// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/veridoc/ocr-review/gen/ent/page"
	"github.com/veridoc/ocr-review/gen/ent/word"
)

// WordCreate is the builder for creating a Word entity.
type WordCreate struct {
	config
	mutation *WordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPageID sets the "page_id" field.
func (_c *WordCreate) SetPageID(v uuid.UUID) *WordCreate {
	_c.mutation.SetPageID(v)
	return _c
}

// SetBlockIndex sets the "block_index" field.
func (_c *WordCreate) SetBlockIndex(v int) *WordCreate {
	_c.mutation.SetBlockIndex(v)
	return _c
}

// SetNillableBlockIndex sets the "block_index" field if the given value is not nil.
func (_c *WordCreate) SetNillableBlockIndex(v *int) *WordCreate {
	if v != nil {
		_c.SetBlockIndex(*v)
	}
	return _c
}

// SetLineIndex sets the "line_index" field.
func (_c *WordCreate) SetLineIndex(v int) *WordCreate {
	_c.mutation.SetLineIndex(v)
	return _c
}

// SetNillableLineIndex sets the "line_index" field if the given value is not nil.
func (_c *WordCreate) SetNillableLineIndex(v *int) *WordCreate {
	if v != nil {
		_c.SetLineIndex(*v)
	}
	return _c
}

// SetWordIndex sets the "word_index" field.
func (_c *WordCreate) SetWordIndex(v int) *WordCreate {
	_c.mutation.SetWordIndex(v)
	return _c
}

// SetNillableWordIndex sets the "word_index" field if the given value is not nil.
func (_c *WordCreate) SetNillableWordIndex(v *int) *WordCreate {
	if v != nil {
		_c.SetWordIndex(*v)
	}
	return _c
}

// SetText sets the "text" field.
func (_c *WordCreate) SetText(v string) *WordCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *WordCreate) SetConfidence(v float64) *WordCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *WordCreate) SetNillableConfidence(v *float64) *WordCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetGeometry sets the "geometry" field.
func (_c *WordCreate) SetGeometry(v [][]float64) *WordCreate {
	_c.mutation.SetGeometry(v)
	return _c
}

// SetOriginalText sets the "original_text" field.
func (_c *WordCreate) SetOriginalText(v string) *WordCreate {
	_c.mutation.SetOriginalText(v)
	return _c
}

// SetNillableOriginalText sets the "original_text" field if the given value is not nil.
func (_c *WordCreate) SetNillableOriginalText(v *string) *WordCreate {
	if v != nil {
		_c.SetOriginalText(*v)
	}
	return _c
}

// SetAutoCorrected sets the "auto_corrected" field.
func (_c *WordCreate) SetAutoCorrected(v bool) *WordCreate {
	_c.mutation.SetAutoCorrected(v)
	return _c
}

// SetNillableAutoCorrected sets the "auto_corrected" field if the given value is not nil.
func (_c *WordCreate) SetNillableAutoCorrected(v *bool) *WordCreate {
	if v != nil {
		_c.SetAutoCorrected(*v)
	}
	return _c
}

// SetManuallyCorrected sets the "manually_corrected" field.
func (_c *WordCreate) SetManuallyCorrected(v bool) *WordCreate {
	_c.mutation.SetManuallyCorrected(v)
	return _c
}

// SetNillableManuallyCorrected sets the "manually_corrected" field if the given value is not nil.
func (_c *WordCreate) SetNillableManuallyCorrected(v *bool) *WordCreate {
	if v != nil {
		_c.SetManuallyCorrected(*v)
	}
	return _c
}

// SetAutoCorrectionOverridden sets the "auto_correction_overridden" field.
func (_c *WordCreate) SetAutoCorrectionOverridden(v bool) *WordCreate {
	_c.mutation.SetAutoCorrectionOverridden(v)
	return _c
}

// SetNillableAutoCorrectionOverridden sets the "auto_correction_overridden" field if the given value is not nil.
func (_c *WordCreate) SetNillableAutoCorrectionOverridden(v *bool) *WordCreate {
	if v != nil {
		_c.SetAutoCorrectionOverridden(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WordCreate) SetID(v uuid.UUID) *WordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WordCreate) SetNillableID(v *uuid.UUID) *WordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPage sets the "page" edge to the Page entity.
func (_c *WordCreate) SetPage(v *Page) *WordCreate {
	return _c.SetPageID(v.ID)
}

// Mutation returns the WordMutation object of the builder.
func (_c *WordCreate) Mutation() *WordMutation {
	return _c.mutation
}

// Save creates the Word in the database.
func (_c *WordCreate) Save(ctx context.Context) (*Word, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WordCreate) SaveX(ctx context.Context) *Word {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WordCreate) defaults() {
	if _, ok := _c.mutation.BlockIndex(); !ok {
		v := word.DefaultBlockIndex
		_c.mutation.SetBlockIndex(v)
	}
	if _, ok := _c.mutation.LineIndex(); !ok {
		v := word.DefaultLineIndex
		_c.mutation.SetLineIndex(v)
	}
	if _, ok := _c.mutation.WordIndex(); !ok {
		v := word.DefaultWordIndex
		_c.mutation.SetWordIndex(v)
	}
	if _, ok := _c.mutation.AutoCorrected(); !ok {
		v := word.DefaultAutoCorrected
		_c.mutation.SetAutoCorrected(v)
	}
	if _, ok := _c.mutation.ManuallyCorrected(); !ok {
		v := word.DefaultManuallyCorrected
		_c.mutation.SetManuallyCorrected(v)
	}
	if _, ok := _c.mutation.AutoCorrectionOverridden(); !ok {
		v := word.DefaultAutoCorrectionOverridden
		_c.mutation.SetAutoCorrectionOverridden(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := word.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WordCreate) check() error {
	if _, ok := _c.mutation.PageID(); !ok {
		return &ValidationError{Name: "page_id", err: errors.New(`ent: missing required field "Word.page_id"`)}
	}
	if _, ok := _c.mutation.BlockIndex(); !ok {
		return &ValidationError{Name: "block_index", err: errors.New(`ent: missing required field "Word.block_index"`)}
	}
	if v, ok := _c.mutation.BlockIndex(); ok {
		if err := word.BlockIndexValidator(v); err != nil {
			return &ValidationError{Name: "block_index", err: fmt.Errorf(`ent: validator failed for field "Word.block_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LineIndex(); !ok {
		return &ValidationError{Name: "line_index", err: errors.New(`ent: missing required field "Word.line_index"`)}
	}
	if v, ok := _c.mutation.LineIndex(); ok {
		if err := word.LineIndexValidator(v); err != nil {
			return &ValidationError{Name: "line_index", err: fmt.Errorf(`ent: validator failed for field "Word.line_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WordIndex(); !ok {
		return &ValidationError{Name: "word_index", err: errors.New(`ent: missing required field "Word.word_index"`)}
	}
	if v, ok := _c.mutation.WordIndex(); ok {
		if err := word.WordIndexValidator(v); err != nil {
			return &ValidationError{Name: "word_index", err: fmt.Errorf(`ent: validator failed for field "Word.word_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Word.text"`)}
	}
	if _, ok := _c.mutation.AutoCorrected(); !ok {
		return &ValidationError{Name: "auto_corrected", err: errors.New(`ent: missing required field "Word.auto_corrected"`)}
	}
	if _, ok := _c.mutation.ManuallyCorrected(); !ok {
		return &ValidationError{Name: "manually_corrected", err: errors.New(`ent: missing required field "Word.manually_corrected"`)}
	}
	if _, ok := _c.mutation.AutoCorrectionOverridden(); !ok {
		return &ValidationError{Name: "auto_correction_overridden", err: errors.New(`ent: missing required field "Word.auto_correction_overridden"`)}
	}
	if len(_c.mutation.PageIDs()) == 0 {
		return &ValidationError{Name: "page", err: errors.New(`ent: missing required edge "Word.page"`)}
	}
	return nil
}

func (_c *WordCreate) sqlSave(ctx context.Context) (*Word, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WordCreate) createSpec() (*Word, *sqlgraph.CreateSpec) {
	var (
		_node = &Word{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(word.Table, sqlgraph.NewFieldSpec(word.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.BlockIndex(); ok {
		_spec.SetField(word.FieldBlockIndex, field.TypeInt, value)
		_node.BlockIndex = value
	}
	if value, ok := _c.mutation.LineIndex(); ok {
		_spec.SetField(word.FieldLineIndex, field.TypeInt, value)
		_node.LineIndex = value
	}
	if value, ok := _c.mutation.WordIndex(); ok {
		_spec.SetField(word.FieldWordIndex, field.TypeInt, value)
		_node.WordIndex = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(word.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(word.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.Geometry(); ok {
		_spec.SetField(word.FieldGeometry, field.TypeJSON, value)
		_node.Geometry = value
	}
	if value, ok := _c.mutation.OriginalText(); ok {
		_spec.SetField(word.FieldOriginalText, field.TypeString, value)
		_node.OriginalText = &value
	}
	if value, ok := _c.mutation.AutoCorrected(); ok {
		_spec.SetField(word.FieldAutoCorrected, field.TypeBool, value)
		_node.AutoCorrected = value
	}
	if value, ok := _c.mutation.ManuallyCorrected(); ok {
		_spec.SetField(word.FieldManuallyCorrected, field.TypeBool, value)
		_node.ManuallyCorrected = value
	}
	if value, ok := _c.mutation.AutoCorrectionOverridden(); ok {
		_spec.SetField(word.FieldAutoCorrectionOverridden, field.TypeBool, value)
		_node.AutoCorrectionOverridden = value
	}
	if nodes := _c.mutation.PageIDs(); len(nodes) > 0 {
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
		_node.PageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Word.Create().
//		SetPageID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WordUpsert) {
//			SetPageID(v+v).
//		}).
//		Exec(ctx)
func (_c *WordCreate) OnConflict(opts ...sql.ConflictOption) *WordUpsertOne {
	_c.conflict = opts
	return &WordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Word.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WordCreate) OnConflictColumns(columns ...string) *WordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WordUpsertOne{
		create: _c,
	}
}

type (
	// WordUpsertOne is the builder for "upsert"-ing
	//  one Word node.
	WordUpsertOne struct {
		create *WordCreate
	}

	// WordUpsert is the "OnConflict" setter.
	WordUpsert struct {
		*sql.UpdateSet
	}
)

// SetPageID sets the "page_id" field.
func (u *WordUpsert) SetPageID(v uuid.UUID) *WordUpsert {
	u.Set(word.FieldPageID, v)
	return u
}

// UpdatePageID sets the "page_id" field to the value that was provided on create.
func (u *WordUpsert) UpdatePageID() *WordUpsert {
	u.SetExcluded(word.FieldPageID)
	return u
}

// SetBlockIndex sets the "block_index" field.
func (u *WordUpsert) SetBlockIndex(v int) *WordUpsert {
	u.Set(word.FieldBlockIndex, v)
	return u
}

// UpdateBlockIndex sets the "block_index" field to the value that was provided on create.
func (u *WordUpsert) UpdateBlockIndex() *WordUpsert {
	u.SetExcluded(word.FieldBlockIndex)
	return u
}

// AddBlockIndex adds v to the "block_index" field.
func (u *WordUpsert) AddBlockIndex(v int) *WordUpsert {
	u.Add(word.FieldBlockIndex, v)
	return u
}

// SetLineIndex sets the "line_index" field.
func (u *WordUpsert) SetLineIndex(v int) *WordUpsert {
	u.Set(word.FieldLineIndex, v)
	return u
}

// UpdateLineIndex sets the "line_index" field to the value that was provided on create.
func (u *WordUpsert) UpdateLineIndex() *WordUpsert {
	u.SetExcluded(word.FieldLineIndex)
	return u
}

// AddLineIndex adds v to the "line_index" field.
func (u *WordUpsert) AddLineIndex(v int) *WordUpsert {
	u.Add(word.FieldLineIndex, v)
	return u
}

// SetWordIndex sets the "word_index" field.
func (u *WordUpsert) SetWordIndex(v int) *WordUpsert {
	u.Set(word.FieldWordIndex, v)
	return u
}

// UpdateWordIndex sets the "word_index" field to the value that was provided on create.
func (u *WordUpsert) UpdateWordIndex() *WordUpsert {
	u.SetExcluded(word.FieldWordIndex)
	return u
}

// AddWordIndex adds v to the "word_index" field.
func (u *WordUpsert) AddWordIndex(v int) *WordUpsert {
	u.Add(word.FieldWordIndex, v)
	return u
}

// SetText sets the "text" field.
func (u *WordUpsert) SetText(v string) *WordUpsert {
	u.Set(word.FieldText, v)
	return u
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *WordUpsert) UpdateText() *WordUpsert {
	u.SetExcluded(word.FieldText)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *WordUpsert) SetConfidence(v float64) *WordUpsert {
	u.Set(word.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *WordUpsert) UpdateConfidence() *WordUpsert {
	u.SetExcluded(word.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *WordUpsert) AddConfidence(v float64) *WordUpsert {
	u.Add(word.FieldConfidence, v)
	return u
}

// ClearConfidence clears the value of the "confidence" field.
func (u *WordUpsert) ClearConfidence() *WordUpsert {
	u.SetNull(word.FieldConfidence)
	return u
}

// SetGeometry sets the "geometry" field.
func (u *WordUpsert) SetGeometry(v [][]float64) *WordUpsert {
	u.Set(word.FieldGeometry, v)
	return u
}

// UpdateGeometry sets the "geometry" field to the value that was provided on create.
func (u *WordUpsert) UpdateGeometry() *WordUpsert {
	u.SetExcluded(word.FieldGeometry)
	return u
}

// ClearGeometry clears the value of the "geometry" field.
func (u *WordUpsert) ClearGeometry() *WordUpsert {
	u.SetNull(word.FieldGeometry)
	return u
}

// SetOriginalText sets the "original_text" field.
func (u *WordUpsert) SetOriginalText(v string) *WordUpsert {
	u.Set(word.FieldOriginalText, v)
	return u
}

// UpdateOriginalText sets the "original_text" field to the value that was provided on create.
func (u *WordUpsert) UpdateOriginalText() *WordUpsert {
	u.SetExcluded(word.FieldOriginalText)
	return u
}

// ClearOriginalText clears the value of the "original_text" field.
func (u *WordUpsert) ClearOriginalText() *WordUpsert {
	u.SetNull(word.FieldOriginalText)
	return u
}

// SetAutoCorrected sets the "auto_corrected" field.
func (u *WordUpsert) SetAutoCorrected(v bool) *WordUpsert {
	u.Set(word.FieldAutoCorrected, v)
	return u
}

// UpdateAutoCorrected sets the "auto_corrected" field to the value that was provided on create.
func (u *WordUpsert) UpdateAutoCorrected() *WordUpsert {
	u.SetExcluded(word.FieldAutoCorrected)
	return u
}

// SetManuallyCorrected sets the "manually_corrected" field.
func (u *WordUpsert) SetManuallyCorrected(v bool) *WordUpsert {
	u.Set(word.FieldManuallyCorrected, v)
	return u
}

// UpdateManuallyCorrected sets the "manually_corrected" field to the value that was provided on create.
func (u *WordUpsert) UpdateManuallyCorrected() *WordUpsert {
	u.SetExcluded(word.FieldManuallyCorrected)
	return u
}

// SetAutoCorrectionOverridden sets the "auto_correction_overridden" field.
func (u *WordUpsert) SetAutoCorrectionOverridden(v bool) *WordUpsert {
	u.Set(word.FieldAutoCorrectionOverridden, v)
	return u
}

// UpdateAutoCorrectionOverridden sets the "auto_correction_overridden" field to the value that was provided on create.
func (u *WordUpsert) UpdateAutoCorrectionOverridden() *WordUpsert {
	u.SetExcluded(word.FieldAutoCorrectionOverridden)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Word.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(word.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WordUpsertOne) UpdateNewValues() *WordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(word.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Word.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WordUpsertOne) Ignore() *WordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WordUpsertOne) DoNothing() *WordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WordCreate.OnConflict
// documentation for more info.
func (u *WordUpsertOne) Update(set func(*WordUpsert)) *WordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WordUpsert{UpdateSet: update})
	}))
	return u
}

// SetPageID sets the "page_id" field.
func (u *WordUpsertOne) SetPageID(v uuid.UUID) *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.SetPageID(v)
	})
}

// UpdatePageID sets the "page_id" field to the value that was provided on create.
func (u *WordUpsertOne) UpdatePageID() *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.UpdatePageID()
	})
}

// SetBlockIndex sets the "block_index" field.
func (u *WordUpsertOne) SetBlockIndex(v int) *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.SetBlockIndex(v)
	})
}

// AddBlockIndex adds v to the "block_index" field.
func (u *WordUpsertOne) AddBlockIndex(v int) *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.AddBlockIndex(v)
	})
}

// UpdateBlockIndex sets the "block_index" field to the value that was provided on create.
func (u *WordUpsertOne) UpdateBlockIndex() *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.UpdateBlockIndex()
	})
}

// SetLineIndex sets the "line_index" field.
func (u *WordUpsertOne) SetLineIndex(v int) *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.SetLineIndex(v)
	})
}

// AddLineIndex adds v to the "line_index" field.
func (u *WordUpsertOne) AddLineIndex(v int) *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.AddLineIndex(v)
	})
}

// UpdateLineIndex sets the "line_index" field to the value that was provided on create.
func (u *WordUpsertOne) UpdateLineIndex() *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.UpdateLineIndex()
	})
}

// SetWordIndex sets the "word_index" field.
func (u *WordUpsertOne) SetWordIndex(v int) *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.SetWordIndex(v)
	})
}

// AddWordIndex adds v to the "word_index" field.
func (u *WordUpsertOne) AddWordIndex(v int) *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.AddWordIndex(v)
	})
}

// UpdateWordIndex sets the "word_index" field to the value that was provided on create.
func (u *WordUpsertOne) UpdateWordIndex() *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.UpdateWordIndex()
	})
}

// SetText sets the "text" field.
func (u *WordUpsertOne) SetText(v string) *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *WordUpsertOne) UpdateText() *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.UpdateText()
	})
}

// SetConfidence sets the "confidence" field.
func (u *WordUpsertOne) SetConfidence(v float64) *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *WordUpsertOne) AddConfidence(v float64) *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *WordUpsertOne) UpdateConfidence() *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.UpdateConfidence()
	})
}

// ClearConfidence clears the value of the "confidence" field.
func (u *WordUpsertOne) ClearConfidence() *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.ClearConfidence()
	})
}

// SetGeometry sets the "geometry" field.
func (u *WordUpsertOne) SetGeometry(v [][]float64) *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.SetGeometry(v)
	})
}

// UpdateGeometry sets the "geometry" field to the value that was provided on create.
func (u *WordUpsertOne) UpdateGeometry() *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.UpdateGeometry()
	})
}

// ClearGeometry clears the value of the "geometry" field.
func (u *WordUpsertOne) ClearGeometry() *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.ClearGeometry()
	})
}

// SetOriginalText sets the "original_text" field.
func (u *WordUpsertOne) SetOriginalText(v string) *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.SetOriginalText(v)
	})
}

// UpdateOriginalText sets the "original_text" field to the value that was provided on create.
func (u *WordUpsertOne) UpdateOriginalText() *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.UpdateOriginalText()
	})
}

// ClearOriginalText clears the value of the "original_text" field.
func (u *WordUpsertOne) ClearOriginalText() *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.ClearOriginalText()
	})
}

// SetAutoCorrected sets the "auto_corrected" field.
func (u *WordUpsertOne) SetAutoCorrected(v bool) *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.SetAutoCorrected(v)
	})
}

// UpdateAutoCorrected sets the "auto_corrected" field to the value that was provided on create.
func (u *WordUpsertOne) UpdateAutoCorrected() *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.UpdateAutoCorrected()
	})
}

// SetManuallyCorrected sets the "manually_corrected" field.
func (u *WordUpsertOne) SetManuallyCorrected(v bool) *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.SetManuallyCorrected(v)
	})
}

// UpdateManuallyCorrected sets the "manually_corrected" field to the value that was provided on create.
func (u *WordUpsertOne) UpdateManuallyCorrected() *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.UpdateManuallyCorrected()
	})
}

// SetAutoCorrectionOverridden sets the "auto_correction_overridden" field.
func (u *WordUpsertOne) SetAutoCorrectionOverridden(v bool) *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.SetAutoCorrectionOverridden(v)
	})
}

// UpdateAutoCorrectionOverridden sets the "auto_correction_overridden" field to the value that was provided on create.
func (u *WordUpsertOne) UpdateAutoCorrectionOverridden() *WordUpsertOne {
	return u.Update(func(s *WordUpsert) {
		s.UpdateAutoCorrectionOverridden()
	})
}

// Exec executes the query.
func (u *WordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WordUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WordUpsertOne.ID is not supported by MySQL driver. Use WordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WordUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WordCreateBulk is the builder for creating many Word entities in bulk.
type WordCreateBulk struct {
	config
	err      error
	builders []*WordCreate
	conflict []sql.ConflictOption
}

// Save creates the Word entities in the database.
func (_c *WordCreateBulk) Save(ctx context.Context) ([]*Word, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Word, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *WordCreateBulk) SaveX(ctx context.Context) []*Word {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Word.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WordUpsert) {
//			SetPageID(v+v).
//		}).
//		Exec(ctx)
func (_c *WordCreateBulk) OnConflict(opts ...sql.ConflictOption) *WordUpsertBulk {
	_c.conflict = opts
	return &WordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Word.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WordCreateBulk) OnConflictColumns(columns ...string) *WordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WordUpsertBulk{
		create: _c,
	}
}

// WordUpsertBulk is the builder for "upsert"-ing
// a bulk of Word nodes.
type WordUpsertBulk struct {
	create *WordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Word.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(word.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WordUpsertBulk) UpdateNewValues() *WordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(word.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Word.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WordUpsertBulk) Ignore() *WordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WordUpsertBulk) DoNothing() *WordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WordCreateBulk.OnConflict
// documentation for more info.
func (u *WordUpsertBulk) Update(set func(*WordUpsert)) *WordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WordUpsert{UpdateSet: update})
	}))
	return u
}

// SetPageID sets the "page_id" field.
func (u *WordUpsertBulk) SetPageID(v uuid.UUID) *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.SetPageID(v)
	})
}

// UpdatePageID sets the "page_id" field to the value that was provided on create.
func (u *WordUpsertBulk) UpdatePageID() *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.UpdatePageID()
	})
}

// SetBlockIndex sets the "block_index" field.
func (u *WordUpsertBulk) SetBlockIndex(v int) *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.SetBlockIndex(v)
	})
}

// AddBlockIndex adds v to the "block_index" field.
func (u *WordUpsertBulk) AddBlockIndex(v int) *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.AddBlockIndex(v)
	})
}

// UpdateBlockIndex sets the "block_index" field to the value that was provided on create.
func (u *WordUpsertBulk) UpdateBlockIndex() *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.UpdateBlockIndex()
	})
}

// SetLineIndex sets the "line_index" field.
func (u *WordUpsertBulk) SetLineIndex(v int) *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.SetLineIndex(v)
	})
}

// AddLineIndex adds v to the "line_index" field.
func (u *WordUpsertBulk) AddLineIndex(v int) *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.AddLineIndex(v)
	})
}

// UpdateLineIndex sets the "line_index" field to the value that was provided on create.
func (u *WordUpsertBulk) UpdateLineIndex() *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.UpdateLineIndex()
	})
}

// SetWordIndex sets the "word_index" field.
func (u *WordUpsertBulk) SetWordIndex(v int) *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.SetWordIndex(v)
	})
}

// AddWordIndex adds v to the "word_index" field.
func (u *WordUpsertBulk) AddWordIndex(v int) *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.AddWordIndex(v)
	})
}

// UpdateWordIndex sets the "word_index" field to the value that was provided on create.
func (u *WordUpsertBulk) UpdateWordIndex() *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.UpdateWordIndex()
	})
}

// SetText sets the "text" field.
func (u *WordUpsertBulk) SetText(v string) *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *WordUpsertBulk) UpdateText() *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.UpdateText()
	})
}

// SetConfidence sets the "confidence" field.
func (u *WordUpsertBulk) SetConfidence(v float64) *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *WordUpsertBulk) AddConfidence(v float64) *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *WordUpsertBulk) UpdateConfidence() *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.UpdateConfidence()
	})
}

// ClearConfidence clears the value of the "confidence" field.
func (u *WordUpsertBulk) ClearConfidence() *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.ClearConfidence()
	})
}

// SetGeometry sets the "geometry" field.
func (u *WordUpsertBulk) SetGeometry(v [][]float64) *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.SetGeometry(v)
	})
}

// UpdateGeometry sets the "geometry" field to the value that was provided on create.
func (u *WordUpsertBulk) UpdateGeometry() *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.UpdateGeometry()
	})
}

// ClearGeometry clears the value of the "geometry" field.
func (u *WordUpsertBulk) ClearGeometry() *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.ClearGeometry()
	})
}

// SetOriginalText sets the "original_text" field.
func (u *WordUpsertBulk) SetOriginalText(v string) *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.SetOriginalText(v)
	})
}

// UpdateOriginalText sets the "original_text" field to the value that was provided on create.
func (u *WordUpsertBulk) UpdateOriginalText() *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.UpdateOriginalText()
	})
}

// ClearOriginalText clears the value of the "original_text" field.
func (u *WordUpsertBulk) ClearOriginalText() *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.ClearOriginalText()
	})
}

// SetAutoCorrected sets the "auto_corrected" field.
func (u *WordUpsertBulk) SetAutoCorrected(v bool) *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.SetAutoCorrected(v)
	})
}

// UpdateAutoCorrected sets the "auto_corrected" field to the value that was provided on create.
func (u *WordUpsertBulk) UpdateAutoCorrected() *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.UpdateAutoCorrected()
	})
}

// SetManuallyCorrected sets the "manually_corrected" field.
func (u *WordUpsertBulk) SetManuallyCorrected(v bool) *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.SetManuallyCorrected(v)
	})
}

// UpdateManuallyCorrected sets the "manually_corrected" field to the value that was provided on create.
func (u *WordUpsertBulk) UpdateManuallyCorrected() *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.UpdateManuallyCorrected()
	})
}

// SetAutoCorrectionOverridden sets the "auto_correction_overridden" field.
func (u *WordUpsertBulk) SetAutoCorrectionOverridden(v bool) *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.SetAutoCorrectionOverridden(v)
	})
}

// UpdateAutoCorrectionOverridden sets the "auto_correction_overridden" field to the value that was provided on create.
func (u *WordUpsertBulk) UpdateAutoCorrectionOverridden() *WordUpsertBulk {
	return u.Update(func(s *WordUpsert) {
		s.UpdateAutoCorrectionOverridden()
	})
}

// Exec executes the query.
func (u *WordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
