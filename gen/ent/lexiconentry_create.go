// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/veridoc/ocr-review/gen/ent/lexiconentry"
)

// LexiconEntryCreate is the builder for creating a LexiconEntry entity.
type LexiconEntryCreate struct {
	config
	mutation *LexiconEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMisspelled sets the "misspelled" field.
func (_c *LexiconEntryCreate) SetMisspelled(v string) *LexiconEntryCreate {
	_c.mutation.SetMisspelled(v)
	return _c
}

// SetCorrected sets the "corrected" field.
func (_c *LexiconEntryCreate) SetCorrected(v string) *LexiconEntryCreate {
	_c.mutation.SetCorrected(v)
	return _c
}

// SetScope sets the "scope" field.
func (_c *LexiconEntryCreate) SetScope(v string) *LexiconEntryCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_c *LexiconEntryCreate) SetNillableScope(v *string) *LexiconEntryCreate {
	if v != nil {
		_c.SetScope(*v)
	}
	return _c
}

// SetFrequency sets the "frequency" field.
func (_c *LexiconEntryCreate) SetFrequency(v int) *LexiconEntryCreate {
	_c.mutation.SetFrequency(v)
	return _c
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_c *LexiconEntryCreate) SetNillableFrequency(v *int) *LexiconEntryCreate {
	if v != nil {
		_c.SetFrequency(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LexiconEntryCreate) SetCreatedAt(v time.Time) *LexiconEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LexiconEntryCreate) SetNillableCreatedAt(v *time.Time) *LexiconEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LexiconEntryCreate) SetUpdatedAt(v time.Time) *LexiconEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LexiconEntryCreate) SetNillableUpdatedAt(v *time.Time) *LexiconEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LexiconEntryCreate) SetID(v uuid.UUID) *LexiconEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LexiconEntryCreate) SetNillableID(v *uuid.UUID) *LexiconEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the LexiconEntryMutation object of the builder.
func (_c *LexiconEntryCreate) Mutation() *LexiconEntryMutation {
	return _c.mutation
}

// Save creates the LexiconEntry in the database.
func (_c *LexiconEntryCreate) Save(ctx context.Context) (*LexiconEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LexiconEntryCreate) SaveX(ctx context.Context) *LexiconEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LexiconEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LexiconEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LexiconEntryCreate) defaults() {
	if _, ok := _c.mutation.Scope(); !ok {
		v := lexiconentry.DefaultScope
		_c.mutation.SetScope(v)
	}
	if _, ok := _c.mutation.Frequency(); !ok {
		v := lexiconentry.DefaultFrequency
		_c.mutation.SetFrequency(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lexiconentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lexiconentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := lexiconentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LexiconEntryCreate) check() error {
	if _, ok := _c.mutation.Misspelled(); !ok {
		return &ValidationError{Name: "misspelled", err: errors.New(`ent: missing required field "LexiconEntry.misspelled"`)}
	}
	if v, ok := _c.mutation.Misspelled(); ok {
		if err := lexiconentry.MisspelledValidator(v); err != nil {
			return &ValidationError{Name: "misspelled", err: fmt.Errorf(`ent: validator failed for field "LexiconEntry.misspelled": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Corrected(); !ok {
		return &ValidationError{Name: "corrected", err: errors.New(`ent: missing required field "LexiconEntry.corrected"`)}
	}
	if v, ok := _c.mutation.Corrected(); ok {
		if err := lexiconentry.CorrectedValidator(v); err != nil {
			return &ValidationError{Name: "corrected", err: fmt.Errorf(`ent: validator failed for field "LexiconEntry.corrected": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "LexiconEntry.scope"`)}
	}
	if _, ok := _c.mutation.Frequency(); !ok {
		return &ValidationError{Name: "frequency", err: errors.New(`ent: missing required field "LexiconEntry.frequency"`)}
	}
	if v, ok := _c.mutation.Frequency(); ok {
		if err := lexiconentry.FrequencyValidator(v); err != nil {
			return &ValidationError{Name: "frequency", err: fmt.Errorf(`ent: validator failed for field "LexiconEntry.frequency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LexiconEntry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LexiconEntry.updated_at"`)}
	}
	return nil
}

func (_c *LexiconEntryCreate) sqlSave(ctx context.Context) (*LexiconEntry, error) {
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

func (_c *LexiconEntryCreate) createSpec() (*LexiconEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &LexiconEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lexiconentry.Table, sqlgraph.NewFieldSpec(lexiconentry.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Misspelled(); ok {
		_spec.SetField(lexiconentry.FieldMisspelled, field.TypeString, value)
		_node.Misspelled = value
	}
	if value, ok := _c.mutation.Corrected(); ok {
		_spec.SetField(lexiconentry.FieldCorrected, field.TypeString, value)
		_node.Corrected = value
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(lexiconentry.FieldScope, field.TypeString, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.Frequency(); ok {
		_spec.SetField(lexiconentry.FieldFrequency, field.TypeInt, value)
		_node.Frequency = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lexiconentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lexiconentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LexiconEntry.Create().
//		SetMisspelled(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LexiconEntryUpsert) {
//			SetMisspelled(v+v).
//		}).
//		Exec(ctx)
func (_c *LexiconEntryCreate) OnConflict(opts ...sql.ConflictOption) *LexiconEntryUpsertOne {
	_c.conflict = opts
	return &LexiconEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LexiconEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LexiconEntryCreate) OnConflictColumns(columns ...string) *LexiconEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LexiconEntryUpsertOne{
		create: _c,
	}
}

type (
	// LexiconEntryUpsertOne is the builder for "upsert"-ing
	//  one LexiconEntry node.
	LexiconEntryUpsertOne struct {
		create *LexiconEntryCreate
	}

	// LexiconEntryUpsert is the "OnConflict" setter.
	LexiconEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetMisspelled sets the "misspelled" field.
func (u *LexiconEntryUpsert) SetMisspelled(v string) *LexiconEntryUpsert {
	u.Set(lexiconentry.FieldMisspelled, v)
	return u
}

// UpdateMisspelled sets the "misspelled" field to the value that was provided on create.
func (u *LexiconEntryUpsert) UpdateMisspelled() *LexiconEntryUpsert {
	u.SetExcluded(lexiconentry.FieldMisspelled)
	return u
}

// SetCorrected sets the "corrected" field.
func (u *LexiconEntryUpsert) SetCorrected(v string) *LexiconEntryUpsert {
	u.Set(lexiconentry.FieldCorrected, v)
	return u
}

// UpdateCorrected sets the "corrected" field to the value that was provided on create.
func (u *LexiconEntryUpsert) UpdateCorrected() *LexiconEntryUpsert {
	u.SetExcluded(lexiconentry.FieldCorrected)
	return u
}

// SetScope sets the "scope" field.
func (u *LexiconEntryUpsert) SetScope(v string) *LexiconEntryUpsert {
	u.Set(lexiconentry.FieldScope, v)
	return u
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *LexiconEntryUpsert) UpdateScope() *LexiconEntryUpsert {
	u.SetExcluded(lexiconentry.FieldScope)
	return u
}

// SetFrequency sets the "frequency" field.
func (u *LexiconEntryUpsert) SetFrequency(v int) *LexiconEntryUpsert {
	u.Set(lexiconentry.FieldFrequency, v)
	return u
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *LexiconEntryUpsert) UpdateFrequency() *LexiconEntryUpsert {
	u.SetExcluded(lexiconentry.FieldFrequency)
	return u
}

// AddFrequency adds v to the "frequency" field.
func (u *LexiconEntryUpsert) AddFrequency(v int) *LexiconEntryUpsert {
	u.Add(lexiconentry.FieldFrequency, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LexiconEntryUpsert) SetUpdatedAt(v time.Time) *LexiconEntryUpsert {
	u.Set(lexiconentry.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LexiconEntryUpsert) UpdateUpdatedAt() *LexiconEntryUpsert {
	u.SetExcluded(lexiconentry.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LexiconEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lexiconentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LexiconEntryUpsertOne) UpdateNewValues() *LexiconEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(lexiconentry.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(lexiconentry.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LexiconEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LexiconEntryUpsertOne) Ignore() *LexiconEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LexiconEntryUpsertOne) DoNothing() *LexiconEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LexiconEntryCreate.OnConflict
// documentation for more info.
func (u *LexiconEntryUpsertOne) Update(set func(*LexiconEntryUpsert)) *LexiconEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LexiconEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetMisspelled sets the "misspelled" field.
func (u *LexiconEntryUpsertOne) SetMisspelled(v string) *LexiconEntryUpsertOne {
	return u.Update(func(s *LexiconEntryUpsert) {
		s.SetMisspelled(v)
	})
}

// UpdateMisspelled sets the "misspelled" field to the value that was provided on create.
func (u *LexiconEntryUpsertOne) UpdateMisspelled() *LexiconEntryUpsertOne {
	return u.Update(func(s *LexiconEntryUpsert) {
		s.UpdateMisspelled()
	})
}

// SetCorrected sets the "corrected" field.
func (u *LexiconEntryUpsertOne) SetCorrected(v string) *LexiconEntryUpsertOne {
	return u.Update(func(s *LexiconEntryUpsert) {
		s.SetCorrected(v)
	})
}

// UpdateCorrected sets the "corrected" field to the value that was provided on create.
func (u *LexiconEntryUpsertOne) UpdateCorrected() *LexiconEntryUpsertOne {
	return u.Update(func(s *LexiconEntryUpsert) {
		s.UpdateCorrected()
	})
}

// SetScope sets the "scope" field.
func (u *LexiconEntryUpsertOne) SetScope(v string) *LexiconEntryUpsertOne {
	return u.Update(func(s *LexiconEntryUpsert) {
		s.SetScope(v)
	})
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *LexiconEntryUpsertOne) UpdateScope() *LexiconEntryUpsertOne {
	return u.Update(func(s *LexiconEntryUpsert) {
		s.UpdateScope()
	})
}

// SetFrequency sets the "frequency" field.
func (u *LexiconEntryUpsertOne) SetFrequency(v int) *LexiconEntryUpsertOne {
	return u.Update(func(s *LexiconEntryUpsert) {
		s.SetFrequency(v)
	})
}

// AddFrequency adds v to the "frequency" field.
func (u *LexiconEntryUpsertOne) AddFrequency(v int) *LexiconEntryUpsertOne {
	return u.Update(func(s *LexiconEntryUpsert) {
		s.AddFrequency(v)
	})
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *LexiconEntryUpsertOne) UpdateFrequency() *LexiconEntryUpsertOne {
	return u.Update(func(s *LexiconEntryUpsert) {
		s.UpdateFrequency()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LexiconEntryUpsertOne) SetUpdatedAt(v time.Time) *LexiconEntryUpsertOne {
	return u.Update(func(s *LexiconEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LexiconEntryUpsertOne) UpdateUpdatedAt() *LexiconEntryUpsertOne {
	return u.Update(func(s *LexiconEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LexiconEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LexiconEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LexiconEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LexiconEntryUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LexiconEntryUpsertOne.ID is not supported by MySQL driver. Use LexiconEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LexiconEntryUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LexiconEntryCreateBulk is the builder for creating many LexiconEntry entities in bulk.
type LexiconEntryCreateBulk struct {
	config
	err      error
	builders []*LexiconEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the LexiconEntry entities in the database.
func (_c *LexiconEntryCreateBulk) Save(ctx context.Context) ([]*LexiconEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LexiconEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LexiconEntryMutation)
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
func (_c *LexiconEntryCreateBulk) SaveX(ctx context.Context) []*LexiconEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LexiconEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LexiconEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LexiconEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LexiconEntryUpsert) {
//			SetMisspelled(v+v).
//		}).
//		Exec(ctx)
func (_c *LexiconEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *LexiconEntryUpsertBulk {
	_c.conflict = opts
	return &LexiconEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LexiconEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LexiconEntryCreateBulk) OnConflictColumns(columns ...string) *LexiconEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LexiconEntryUpsertBulk{
		create: _c,
	}
}

// LexiconEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of LexiconEntry nodes.
type LexiconEntryUpsertBulk struct {
	create *LexiconEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LexiconEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lexiconentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LexiconEntryUpsertBulk) UpdateNewValues() *LexiconEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(lexiconentry.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(lexiconentry.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LexiconEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LexiconEntryUpsertBulk) Ignore() *LexiconEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LexiconEntryUpsertBulk) DoNothing() *LexiconEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LexiconEntryCreateBulk.OnConflict
// documentation for more info.
func (u *LexiconEntryUpsertBulk) Update(set func(*LexiconEntryUpsert)) *LexiconEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LexiconEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetMisspelled sets the "misspelled" field.
func (u *LexiconEntryUpsertBulk) SetMisspelled(v string) *LexiconEntryUpsertBulk {
	return u.Update(func(s *LexiconEntryUpsert) {
		s.SetMisspelled(v)
	})
}

// UpdateMisspelled sets the "misspelled" field to the value that was provided on create.
func (u *LexiconEntryUpsertBulk) UpdateMisspelled() *LexiconEntryUpsertBulk {
	return u.Update(func(s *LexiconEntryUpsert) {
		s.UpdateMisspelled()
	})
}

// SetCorrected sets the "corrected" field.
func (u *LexiconEntryUpsertBulk) SetCorrected(v string) *LexiconEntryUpsertBulk {
	return u.Update(func(s *LexiconEntryUpsert) {
		s.SetCorrected(v)
	})
}

// UpdateCorrected sets the "corrected" field to the value that was provided on create.
func (u *LexiconEntryUpsertBulk) UpdateCorrected() *LexiconEntryUpsertBulk {
	return u.Update(func(s *LexiconEntryUpsert) {
		s.UpdateCorrected()
	})
}

// SetScope sets the "scope" field.
func (u *LexiconEntryUpsertBulk) SetScope(v string) *LexiconEntryUpsertBulk {
	return u.Update(func(s *LexiconEntryUpsert) {
		s.SetScope(v)
	})
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *LexiconEntryUpsertBulk) UpdateScope() *LexiconEntryUpsertBulk {
	return u.Update(func(s *LexiconEntryUpsert) {
		s.UpdateScope()
	})
}

// SetFrequency sets the "frequency" field.
func (u *LexiconEntryUpsertBulk) SetFrequency(v int) *LexiconEntryUpsertBulk {
	return u.Update(func(s *LexiconEntryUpsert) {
		s.SetFrequency(v)
	})
}

// AddFrequency adds v to the "frequency" field.
func (u *LexiconEntryUpsertBulk) AddFrequency(v int) *LexiconEntryUpsertBulk {
	return u.Update(func(s *LexiconEntryUpsert) {
		s.AddFrequency(v)
	})
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *LexiconEntryUpsertBulk) UpdateFrequency() *LexiconEntryUpsertBulk {
	return u.Update(func(s *LexiconEntryUpsert) {
		s.UpdateFrequency()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LexiconEntryUpsertBulk) SetUpdatedAt(v time.Time) *LexiconEntryUpsertBulk {
	return u.Update(func(s *LexiconEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LexiconEntryUpsertBulk) UpdateUpdatedAt() *LexiconEntryUpsertBulk {
	return u.Update(func(s *LexiconEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LexiconEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LexiconEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LexiconEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LexiconEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
