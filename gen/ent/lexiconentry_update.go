// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/veridoc/ocr-review/gen/ent/lexiconentry"
	"github.com/veridoc/ocr-review/gen/ent/predicate"
)

// LexiconEntryUpdate is the builder for updating LexiconEntry entities.
type LexiconEntryUpdate struct {
	config
	hooks    []Hook
	mutation *LexiconEntryMutation
}

// Where appends a list predicates to the LexiconEntryUpdate builder.
func (_u *LexiconEntryUpdate) Where(ps ...predicate.LexiconEntry) *LexiconEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMisspelled sets the "misspelled" field.
func (_u *LexiconEntryUpdate) SetMisspelled(v string) *LexiconEntryUpdate {
	_u.mutation.SetMisspelled(v)
	return _u
}

// SetNillableMisspelled sets the "misspelled" field if the given value is not nil.
func (_u *LexiconEntryUpdate) SetNillableMisspelled(v *string) *LexiconEntryUpdate {
	if v != nil {
		_u.SetMisspelled(*v)
	}
	return _u
}

// SetCorrected sets the "corrected" field.
func (_u *LexiconEntryUpdate) SetCorrected(v string) *LexiconEntryUpdate {
	_u.mutation.SetCorrected(v)
	return _u
}

// SetNillableCorrected sets the "corrected" field if the given value is not nil.
func (_u *LexiconEntryUpdate) SetNillableCorrected(v *string) *LexiconEntryUpdate {
	if v != nil {
		_u.SetCorrected(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *LexiconEntryUpdate) SetScope(v string) *LexiconEntryUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *LexiconEntryUpdate) SetNillableScope(v *string) *LexiconEntryUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *LexiconEntryUpdate) SetFrequency(v int) *LexiconEntryUpdate {
	_u.mutation.ResetFrequency()
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *LexiconEntryUpdate) SetNillableFrequency(v *int) *LexiconEntryUpdate {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// AddFrequency adds value to the "frequency" field.
func (_u *LexiconEntryUpdate) AddFrequency(v int) *LexiconEntryUpdate {
	_u.mutation.AddFrequency(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LexiconEntryUpdate) SetUpdatedAt(v time.Time) *LexiconEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LexiconEntryMutation object of the builder.
func (_u *LexiconEntryUpdate) Mutation() *LexiconEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LexiconEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LexiconEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LexiconEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LexiconEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LexiconEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lexiconentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LexiconEntryUpdate) check() error {
	if v, ok := _u.mutation.Misspelled(); ok {
		if err := lexiconentry.MisspelledValidator(v); err != nil {
			return &ValidationError{Name: "misspelled", err: fmt.Errorf(`ent: validator failed for field "LexiconEntry.misspelled": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Corrected(); ok {
		if err := lexiconentry.CorrectedValidator(v); err != nil {
			return &ValidationError{Name: "corrected", err: fmt.Errorf(`ent: validator failed for field "LexiconEntry.corrected": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Frequency(); ok {
		if err := lexiconentry.FrequencyValidator(v); err != nil {
			return &ValidationError{Name: "frequency", err: fmt.Errorf(`ent: validator failed for field "LexiconEntry.frequency": %w`, err)}
		}
	}
	return nil
}

func (_u *LexiconEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lexiconentry.Table, lexiconentry.Columns, sqlgraph.NewFieldSpec(lexiconentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Misspelled(); ok {
		_spec.SetField(lexiconentry.FieldMisspelled, field.TypeString, value)
	}
	if value, ok := _u.mutation.Corrected(); ok {
		_spec.SetField(lexiconentry.FieldCorrected, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(lexiconentry.FieldScope, field.TypeString, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(lexiconentry.FieldFrequency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFrequency(); ok {
		_spec.AddField(lexiconentry.FieldFrequency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lexiconentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lexiconentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LexiconEntryUpdateOne is the builder for updating a single LexiconEntry entity.
type LexiconEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LexiconEntryMutation
}

// SetMisspelled sets the "misspelled" field.
func (_u *LexiconEntryUpdateOne) SetMisspelled(v string) *LexiconEntryUpdateOne {
	_u.mutation.SetMisspelled(v)
	return _u
}

// SetNillableMisspelled sets the "misspelled" field if the given value is not nil.
func (_u *LexiconEntryUpdateOne) SetNillableMisspelled(v *string) *LexiconEntryUpdateOne {
	if v != nil {
		_u.SetMisspelled(*v)
	}
	return _u
}

// SetCorrected sets the "corrected" field.
func (_u *LexiconEntryUpdateOne) SetCorrected(v string) *LexiconEntryUpdateOne {
	_u.mutation.SetCorrected(v)
	return _u
}

// SetNillableCorrected sets the "corrected" field if the given value is not nil.
func (_u *LexiconEntryUpdateOne) SetNillableCorrected(v *string) *LexiconEntryUpdateOne {
	if v != nil {
		_u.SetCorrected(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *LexiconEntryUpdateOne) SetScope(v string) *LexiconEntryUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *LexiconEntryUpdateOne) SetNillableScope(v *string) *LexiconEntryUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *LexiconEntryUpdateOne) SetFrequency(v int) *LexiconEntryUpdateOne {
	_u.mutation.ResetFrequency()
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *LexiconEntryUpdateOne) SetNillableFrequency(v *int) *LexiconEntryUpdateOne {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// AddFrequency adds value to the "frequency" field.
func (_u *LexiconEntryUpdateOne) AddFrequency(v int) *LexiconEntryUpdateOne {
	_u.mutation.AddFrequency(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LexiconEntryUpdateOne) SetUpdatedAt(v time.Time) *LexiconEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LexiconEntryMutation object of the builder.
func (_u *LexiconEntryUpdateOne) Mutation() *LexiconEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the LexiconEntryUpdate builder.
func (_u *LexiconEntryUpdateOne) Where(ps ...predicate.LexiconEntry) *LexiconEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LexiconEntryUpdateOne) Select(field string, fields ...string) *LexiconEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LexiconEntry entity.
func (_u *LexiconEntryUpdateOne) Save(ctx context.Context) (*LexiconEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LexiconEntryUpdateOne) SaveX(ctx context.Context) *LexiconEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LexiconEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LexiconEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LexiconEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lexiconentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LexiconEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Misspelled(); ok {
		if err := lexiconentry.MisspelledValidator(v); err != nil {
			return &ValidationError{Name: "misspelled", err: fmt.Errorf(`ent: validator failed for field "LexiconEntry.misspelled": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Corrected(); ok {
		if err := lexiconentry.CorrectedValidator(v); err != nil {
			return &ValidationError{Name: "corrected", err: fmt.Errorf(`ent: validator failed for field "LexiconEntry.corrected": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Frequency(); ok {
		if err := lexiconentry.FrequencyValidator(v); err != nil {
			return &ValidationError{Name: "frequency", err: fmt.Errorf(`ent: validator failed for field "LexiconEntry.frequency": %w`, err)}
		}
	}
	return nil
}

func (_u *LexiconEntryUpdateOne) sqlSave(ctx context.Context) (_node *LexiconEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lexiconentry.Table, lexiconentry.Columns, sqlgraph.NewFieldSpec(lexiconentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LexiconEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lexiconentry.FieldID)
		for _, f := range fields {
			if !lexiconentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lexiconentry.FieldID {
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
	if value, ok := _u.mutation.Misspelled(); ok {
		_spec.SetField(lexiconentry.FieldMisspelled, field.TypeString, value)
	}
	if value, ok := _u.mutation.Corrected(); ok {
		_spec.SetField(lexiconentry.FieldCorrected, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(lexiconentry.FieldScope, field.TypeString, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(lexiconentry.FieldFrequency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFrequency(); ok {
		_spec.AddField(lexiconentry.FieldFrequency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lexiconentry.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LexiconEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lexiconentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
