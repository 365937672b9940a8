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
	"github.com/veridoc/ocr-review/gen/ent/trainingsample"
)

// TrainingSampleCreate is the builder for creating a TrainingSample entity.
type TrainingSampleCreate struct {
	config
	mutation *TrainingSampleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDocumentID sets the "document_id" field.
func (_c *TrainingSampleCreate) SetDocumentID(v uuid.UUID) *TrainingSampleCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetWordRef sets the "word_ref" field.
func (_c *TrainingSampleCreate) SetWordRef(v string) *TrainingSampleCreate {
	_c.mutation.SetWordRef(v)
	return _c
}

// SetNillableWordRef sets the "word_ref" field if the given value is not nil.
func (_c *TrainingSampleCreate) SetNillableWordRef(v *string) *TrainingSampleCreate {
	if v != nil {
		_c.SetWordRef(*v)
	}
	return _c
}

// SetImagePath sets the "image_path" field.
func (_c *TrainingSampleCreate) SetImagePath(v string) *TrainingSampleCreate {
	_c.mutation.SetImagePath(v)
	return _c
}

// SetOriginalText sets the "original_text" field.
func (_c *TrainingSampleCreate) SetOriginalText(v string) *TrainingSampleCreate {
	_c.mutation.SetOriginalText(v)
	return _c
}

// SetCorrectedText sets the "corrected_text" field.
func (_c *TrainingSampleCreate) SetCorrectedText(v string) *TrainingSampleCreate {
	_c.mutation.SetCorrectedText(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TrainingSampleCreate) SetCreatedAt(v time.Time) *TrainingSampleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TrainingSampleCreate) SetNillableCreatedAt(v *time.Time) *TrainingSampleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TrainingSampleCreate) SetID(v uuid.UUID) *TrainingSampleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TrainingSampleCreate) SetNillableID(v *uuid.UUID) *TrainingSampleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TrainingSampleMutation object of the builder.
func (_c *TrainingSampleCreate) Mutation() *TrainingSampleMutation {
	return _c.mutation
}

// Save creates the TrainingSample in the database.
func (_c *TrainingSampleCreate) Save(ctx context.Context) (*TrainingSample, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrainingSampleCreate) SaveX(ctx context.Context) *TrainingSample {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrainingSampleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrainingSampleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrainingSampleCreate) defaults() {
	if _, ok := _c.mutation.WordRef(); !ok {
		v := trainingsample.DefaultWordRef
		_c.mutation.SetWordRef(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := trainingsample.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := trainingsample.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrainingSampleCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "TrainingSample.document_id"`)}
	}
	if _, ok := _c.mutation.WordRef(); !ok {
		return &ValidationError{Name: "word_ref", err: errors.New(`ent: missing required field "TrainingSample.word_ref"`)}
	}
	if _, ok := _c.mutation.ImagePath(); !ok {
		return &ValidationError{Name: "image_path", err: errors.New(`ent: missing required field "TrainingSample.image_path"`)}
	}
	if v, ok := _c.mutation.ImagePath(); ok {
		if err := trainingsample.ImagePathValidator(v); err != nil {
			return &ValidationError{Name: "image_path", err: fmt.Errorf(`ent: validator failed for field "TrainingSample.image_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OriginalText(); !ok {
		return &ValidationError{Name: "original_text", err: errors.New(`ent: missing required field "TrainingSample.original_text"`)}
	}
	if v, ok := _c.mutation.OriginalText(); ok {
		if err := trainingsample.OriginalTextValidator(v); err != nil {
			return &ValidationError{Name: "original_text", err: fmt.Errorf(`ent: validator failed for field "TrainingSample.original_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectedText(); !ok {
		return &ValidationError{Name: "corrected_text", err: errors.New(`ent: missing required field "TrainingSample.corrected_text"`)}
	}
	if v, ok := _c.mutation.CorrectedText(); ok {
		if err := trainingsample.CorrectedTextValidator(v); err != nil {
			return &ValidationError{Name: "corrected_text", err: fmt.Errorf(`ent: validator failed for field "TrainingSample.corrected_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TrainingSample.created_at"`)}
	}
	return nil
}

func (_c *TrainingSampleCreate) sqlSave(ctx context.Context) (*TrainingSample, error) {
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

func (_c *TrainingSampleCreate) createSpec() (*TrainingSample, *sqlgraph.CreateSpec) {
	var (
		_node = &TrainingSample{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trainingsample.Table, sqlgraph.NewFieldSpec(trainingsample.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(trainingsample.FieldDocumentID, field.TypeUUID, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.WordRef(); ok {
		_spec.SetField(trainingsample.FieldWordRef, field.TypeString, value)
		_node.WordRef = value
	}
	if value, ok := _c.mutation.ImagePath(); ok {
		_spec.SetField(trainingsample.FieldImagePath, field.TypeString, value)
		_node.ImagePath = value
	}
	if value, ok := _c.mutation.OriginalText(); ok {
		_spec.SetField(trainingsample.FieldOriginalText, field.TypeString, value)
		_node.OriginalText = value
	}
	if value, ok := _c.mutation.CorrectedText(); ok {
		_spec.SetField(trainingsample.FieldCorrectedText, field.TypeString, value)
		_node.CorrectedText = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trainingsample.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TrainingSample.Create().
//		SetDocumentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TrainingSampleUpsert) {
//			SetDocumentID(v+v).
//		}).
//		Exec(ctx)
func (_c *TrainingSampleCreate) OnConflict(opts ...sql.ConflictOption) *TrainingSampleUpsertOne {
	_c.conflict = opts
	return &TrainingSampleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TrainingSample.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TrainingSampleCreate) OnConflictColumns(columns ...string) *TrainingSampleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TrainingSampleUpsertOne{
		create: _c,
	}
}

type (
	// TrainingSampleUpsertOne is the builder for "upsert"-ing
	//  one TrainingSample node.
	TrainingSampleUpsertOne struct {
		create *TrainingSampleCreate
	}

	// TrainingSampleUpsert is the "OnConflict" setter.
	TrainingSampleUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TrainingSample.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(trainingsample.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TrainingSampleUpsertOne) UpdateNewValues() *TrainingSampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(trainingsample.FieldID)
		}
		if _, exists := u.create.mutation.DocumentID(); exists {
			s.SetIgnore(trainingsample.FieldDocumentID)
		}
		if _, exists := u.create.mutation.WordRef(); exists {
			s.SetIgnore(trainingsample.FieldWordRef)
		}
		if _, exists := u.create.mutation.ImagePath(); exists {
			s.SetIgnore(trainingsample.FieldImagePath)
		}
		if _, exists := u.create.mutation.OriginalText(); exists {
			s.SetIgnore(trainingsample.FieldOriginalText)
		}
		if _, exists := u.create.mutation.CorrectedText(); exists {
			s.SetIgnore(trainingsample.FieldCorrectedText)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(trainingsample.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TrainingSample.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TrainingSampleUpsertOne) Ignore() *TrainingSampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TrainingSampleUpsertOne) DoNothing() *TrainingSampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TrainingSampleCreate.OnConflict
// documentation for more info.
func (u *TrainingSampleUpsertOne) Update(set func(*TrainingSampleUpsert)) *TrainingSampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TrainingSampleUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *TrainingSampleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TrainingSampleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TrainingSampleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TrainingSampleUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TrainingSampleUpsertOne.ID is not supported by MySQL driver. Use TrainingSampleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TrainingSampleUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TrainingSampleCreateBulk is the builder for creating many TrainingSample entities in bulk.
type TrainingSampleCreateBulk struct {
	config
	err      error
	builders []*TrainingSampleCreate
	conflict []sql.ConflictOption
}

// Save creates the TrainingSample entities in the database.
func (_c *TrainingSampleCreateBulk) Save(ctx context.Context) ([]*TrainingSample, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrainingSample, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrainingSampleMutation)
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
func (_c *TrainingSampleCreateBulk) SaveX(ctx context.Context) []*TrainingSample {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrainingSampleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrainingSampleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TrainingSample.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TrainingSampleUpsert) {
//			SetDocumentID(v+v).
//		}).
//		Exec(ctx)
func (_c *TrainingSampleCreateBulk) OnConflict(opts ...sql.ConflictOption) *TrainingSampleUpsertBulk {
	_c.conflict = opts
	return &TrainingSampleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TrainingSample.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TrainingSampleCreateBulk) OnConflictColumns(columns ...string) *TrainingSampleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TrainingSampleUpsertBulk{
		create: _c,
	}
}

// TrainingSampleUpsertBulk is the builder for "upsert"-ing
// a bulk of TrainingSample nodes.
type TrainingSampleUpsertBulk struct {
	create *TrainingSampleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TrainingSample.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(trainingsample.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TrainingSampleUpsertBulk) UpdateNewValues() *TrainingSampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(trainingsample.FieldID)
			}
			if _, exists := b.mutation.DocumentID(); exists {
				s.SetIgnore(trainingsample.FieldDocumentID)
			}
			if _, exists := b.mutation.WordRef(); exists {
				s.SetIgnore(trainingsample.FieldWordRef)
			}
			if _, exists := b.mutation.ImagePath(); exists {
				s.SetIgnore(trainingsample.FieldImagePath)
			}
			if _, exists := b.mutation.OriginalText(); exists {
				s.SetIgnore(trainingsample.FieldOriginalText)
			}
			if _, exists := b.mutation.CorrectedText(); exists {
				s.SetIgnore(trainingsample.FieldCorrectedText)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(trainingsample.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TrainingSample.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TrainingSampleUpsertBulk) Ignore() *TrainingSampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TrainingSampleUpsertBulk) DoNothing() *TrainingSampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TrainingSampleCreateBulk.OnConflict
// documentation for more info.
func (u *TrainingSampleUpsertBulk) Update(set func(*TrainingSampleUpsert)) *TrainingSampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TrainingSampleUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *TrainingSampleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TrainingSampleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TrainingSampleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TrainingSampleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
