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
	"github.com/veridoc/ocr-review/gen/ent/correction"
)

// CorrectionCreate is the builder for creating a Correction entity.
type CorrectionCreate struct {
	config
	mutation *CorrectionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDocumentID sets the "document_id" field.
func (_c *CorrectionCreate) SetDocumentID(v uuid.UUID) *CorrectionCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetPageIndex sets the "page_index" field.
func (_c *CorrectionCreate) SetPageIndex(v int) *CorrectionCreate {
	_c.mutation.SetPageIndex(v)
	return _c
}

// SetNillablePageIndex sets the "page_index" field if the given value is not nil.
func (_c *CorrectionCreate) SetNillablePageIndex(v *int) *CorrectionCreate {
	if v != nil {
		_c.SetPageIndex(*v)
	}
	return _c
}

// SetWordRef sets the "word_ref" field.
func (_c *CorrectionCreate) SetWordRef(v string) *CorrectionCreate {
	_c.mutation.SetWordRef(v)
	return _c
}

// SetNillableWordRef sets the "word_ref" field if the given value is not nil.
func (_c *CorrectionCreate) SetNillableWordRef(v *string) *CorrectionCreate {
	if v != nil {
		_c.SetWordRef(*v)
	}
	return _c
}

// SetOriginalText sets the "original_text" field.
func (_c *CorrectionCreate) SetOriginalText(v string) *CorrectionCreate {
	_c.mutation.SetOriginalText(v)
	return _c
}

// SetCorrectedText sets the "corrected_text" field.
func (_c *CorrectionCreate) SetCorrectedText(v string) *CorrectionCreate {
	_c.mutation.SetCorrectedText(v)
	return _c
}

// SetAuthor sets the "author" field.
func (_c *CorrectionCreate) SetAuthor(v string) *CorrectionCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_c *CorrectionCreate) SetNillableAuthor(v *string) *CorrectionCreate {
	if v != nil {
		_c.SetAuthor(*v)
	}
	return _c
}

// SetCorrectionType sets the "correction_type" field.
func (_c *CorrectionCreate) SetCorrectionType(v string) *CorrectionCreate {
	_c.mutation.SetCorrectionType(v)
	return _c
}

// SetNillableCorrectionType sets the "correction_type" field if the given value is not nil.
func (_c *CorrectionCreate) SetNillableCorrectionType(v *string) *CorrectionCreate {
	if v != nil {
		_c.SetCorrectionType(*v)
	}
	return _c
}

// SetBboxSnapshot sets the "bbox_snapshot" field.
func (_c *CorrectionCreate) SetBboxSnapshot(v [][]float64) *CorrectionCreate {
	_c.mutation.SetBboxSnapshot(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CorrectionCreate) SetCreatedAt(v time.Time) *CorrectionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CorrectionCreate) SetNillableCreatedAt(v *time.Time) *CorrectionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CorrectionCreate) SetID(v uuid.UUID) *CorrectionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CorrectionCreate) SetNillableID(v *uuid.UUID) *CorrectionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the CorrectionMutation object of the builder.
func (_c *CorrectionCreate) Mutation() *CorrectionMutation {
	return _c.mutation
}

// Save creates the Correction in the database.
func (_c *CorrectionCreate) Save(ctx context.Context) (*Correction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CorrectionCreate) SaveX(ctx context.Context) *Correction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CorrectionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CorrectionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CorrectionCreate) defaults() {
	if _, ok := _c.mutation.PageIndex(); !ok {
		v := correction.DefaultPageIndex
		_c.mutation.SetPageIndex(v)
	}
	if _, ok := _c.mutation.WordRef(); !ok {
		v := correction.DefaultWordRef
		_c.mutation.SetWordRef(v)
	}
	if _, ok := _c.mutation.Author(); !ok {
		v := correction.DefaultAuthor
		_c.mutation.SetAuthor(v)
	}
	if _, ok := _c.mutation.CorrectionType(); !ok {
		v := correction.DefaultCorrectionType
		_c.mutation.SetCorrectionType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := correction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := correction.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CorrectionCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "Correction.document_id"`)}
	}
	if _, ok := _c.mutation.PageIndex(); !ok {
		return &ValidationError{Name: "page_index", err: errors.New(`ent: missing required field "Correction.page_index"`)}
	}
	if v, ok := _c.mutation.PageIndex(); ok {
		if err := correction.PageIndexValidator(v); err != nil {
			return &ValidationError{Name: "page_index", err: fmt.Errorf(`ent: validator failed for field "Correction.page_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WordRef(); !ok {
		return &ValidationError{Name: "word_ref", err: errors.New(`ent: missing required field "Correction.word_ref"`)}
	}
	if _, ok := _c.mutation.OriginalText(); !ok {
		return &ValidationError{Name: "original_text", err: errors.New(`ent: missing required field "Correction.original_text"`)}
	}
	if v, ok := _c.mutation.OriginalText(); ok {
		if err := correction.OriginalTextValidator(v); err != nil {
			return &ValidationError{Name: "original_text", err: fmt.Errorf(`ent: validator failed for field "Correction.original_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectedText(); !ok {
		return &ValidationError{Name: "corrected_text", err: errors.New(`ent: missing required field "Correction.corrected_text"`)}
	}
	if v, ok := _c.mutation.CorrectedText(); ok {
		if err := correction.CorrectedTextValidator(v); err != nil {
			return &ValidationError{Name: "corrected_text", err: fmt.Errorf(`ent: validator failed for field "Correction.corrected_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Author(); !ok {
		return &ValidationError{Name: "author", err: errors.New(`ent: missing required field "Correction.author"`)}
	}
	if _, ok := _c.mutation.CorrectionType(); !ok {
		return &ValidationError{Name: "correction_type", err: errors.New(`ent: missing required field "Correction.correction_type"`)}
	}
	if v, ok := _c.mutation.CorrectionType(); ok {
		if err := correction.CorrectionTypeValidator(v); err != nil {
			return &ValidationError{Name: "correction_type", err: fmt.Errorf(`ent: validator failed for field "Correction.correction_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Correction.created_at"`)}
	}
	return nil
}

func (_c *CorrectionCreate) sqlSave(ctx context.Context) (*Correction, error) {
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

func (_c *CorrectionCreate) createSpec() (*Correction, *sqlgraph.CreateSpec) {
	var (
		_node = &Correction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(correction.Table, sqlgraph.NewFieldSpec(correction.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(correction.FieldDocumentID, field.TypeUUID, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.PageIndex(); ok {
		_spec.SetField(correction.FieldPageIndex, field.TypeInt, value)
		_node.PageIndex = value
	}
	if value, ok := _c.mutation.WordRef(); ok {
		_spec.SetField(correction.FieldWordRef, field.TypeString, value)
		_node.WordRef = value
	}
	if value, ok := _c.mutation.OriginalText(); ok {
		_spec.SetField(correction.FieldOriginalText, field.TypeString, value)
		_node.OriginalText = value
	}
	if value, ok := _c.mutation.CorrectedText(); ok {
		_spec.SetField(correction.FieldCorrectedText, field.TypeString, value)
		_node.CorrectedText = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(correction.FieldAuthor, field.TypeString, value)
		_node.Author = value
	}
	if value, ok := _c.mutation.CorrectionType(); ok {
		_spec.SetField(correction.FieldCorrectionType, field.TypeString, value)
		_node.CorrectionType = value
	}
	if value, ok := _c.mutation.BboxSnapshot(); ok {
		_spec.SetField(correction.FieldBboxSnapshot, field.TypeJSON, value)
		_node.BboxSnapshot = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(correction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Correction.Create().
//		SetDocumentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CorrectionUpsert) {
//			SetDocumentID(v+v).
//		}).
//		Exec(ctx)
func (_c *CorrectionCreate) OnConflict(opts ...sql.ConflictOption) *CorrectionUpsertOne {
	_c.conflict = opts
	return &CorrectionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Correction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CorrectionCreate) OnConflictColumns(columns ...string) *CorrectionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CorrectionUpsertOne{
		create: _c,
	}
}

type (
	// CorrectionUpsertOne is the builder for "upsert"-ing
	//  one Correction node.
	CorrectionUpsertOne struct {
		create *CorrectionCreate
	}

	// CorrectionUpsert is the "OnConflict" setter.
	CorrectionUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Correction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(correction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CorrectionUpsertOne) UpdateNewValues() *CorrectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(correction.FieldID)
		}
		if _, exists := u.create.mutation.DocumentID(); exists {
			s.SetIgnore(correction.FieldDocumentID)
		}
		if _, exists := u.create.mutation.PageIndex(); exists {
			s.SetIgnore(correction.FieldPageIndex)
		}
		if _, exists := u.create.mutation.WordRef(); exists {
			s.SetIgnore(correction.FieldWordRef)
		}
		if _, exists := u.create.mutation.OriginalText(); exists {
			s.SetIgnore(correction.FieldOriginalText)
		}
		if _, exists := u.create.mutation.CorrectedText(); exists {
			s.SetIgnore(correction.FieldCorrectedText)
		}
		if _, exists := u.create.mutation.Author(); exists {
			s.SetIgnore(correction.FieldAuthor)
		}
		if _, exists := u.create.mutation.CorrectionType(); exists {
			s.SetIgnore(correction.FieldCorrectionType)
		}
		if _, exists := u.create.mutation.BboxSnapshot(); exists {
			s.SetIgnore(correction.FieldBboxSnapshot)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(correction.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Correction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CorrectionUpsertOne) Ignore() *CorrectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CorrectionUpsertOne) DoNothing() *CorrectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CorrectionCreate.OnConflict
// documentation for more info.
func (u *CorrectionUpsertOne) Update(set func(*CorrectionUpsert)) *CorrectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CorrectionUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *CorrectionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CorrectionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CorrectionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CorrectionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CorrectionUpsertOne.ID is not supported by MySQL driver. Use CorrectionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CorrectionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CorrectionCreateBulk is the builder for creating many Correction entities in bulk.
type CorrectionCreateBulk struct {
	config
	err      error
	builders []*CorrectionCreate
	conflict []sql.ConflictOption
}

// Save creates the Correction entities in the database.
func (_c *CorrectionCreateBulk) Save(ctx context.Context) ([]*Correction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Correction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CorrectionMutation)
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
func (_c *CorrectionCreateBulk) SaveX(ctx context.Context) []*Correction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CorrectionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CorrectionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Correction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CorrectionUpsert) {
//			SetDocumentID(v+v).
//		}).
//		Exec(ctx)
func (_c *CorrectionCreateBulk) OnConflict(opts ...sql.ConflictOption) *CorrectionUpsertBulk {
	_c.conflict = opts
	return &CorrectionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Correction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CorrectionCreateBulk) OnConflictColumns(columns ...string) *CorrectionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CorrectionUpsertBulk{
		create: _c,
	}
}

// CorrectionUpsertBulk is the builder for "upsert"-ing
// a bulk of Correction nodes.
type CorrectionUpsertBulk struct {
	create *CorrectionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Correction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(correction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CorrectionUpsertBulk) UpdateNewValues() *CorrectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(correction.FieldID)
			}
			if _, exists := b.mutation.DocumentID(); exists {
				s.SetIgnore(correction.FieldDocumentID)
			}
			if _, exists := b.mutation.PageIndex(); exists {
				s.SetIgnore(correction.FieldPageIndex)
			}
			if _, exists := b.mutation.WordRef(); exists {
				s.SetIgnore(correction.FieldWordRef)
			}
			if _, exists := b.mutation.OriginalText(); exists {
				s.SetIgnore(correction.FieldOriginalText)
			}
			if _, exists := b.mutation.CorrectedText(); exists {
				s.SetIgnore(correction.FieldCorrectedText)
			}
			if _, exists := b.mutation.Author(); exists {
				s.SetIgnore(correction.FieldAuthor)
			}
			if _, exists := b.mutation.CorrectionType(); exists {
				s.SetIgnore(correction.FieldCorrectionType)
			}
			if _, exists := b.mutation.BboxSnapshot(); exists {
				s.SetIgnore(correction.FieldBboxSnapshot)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(correction.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Correction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CorrectionUpsertBulk) Ignore() *CorrectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CorrectionUpsertBulk) DoNothing() *CorrectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CorrectionCreateBulk.OnConflict
// documentation for more info.
func (u *CorrectionUpsertBulk) Update(set func(*CorrectionUpsert)) *CorrectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CorrectionUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *CorrectionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CorrectionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CorrectionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CorrectionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
