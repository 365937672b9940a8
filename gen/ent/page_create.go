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
	"github.com/veridoc/ocr-review/gen/ent/document"
	"github.com/veridoc/ocr-review/gen/ent/page"
	"github.com/veridoc/ocr-review/gen/ent/word"
)

// PageCreate is the builder for creating a Page entity.
type PageCreate struct {
	config
	mutation *PageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDocumentID sets the "document_id" field.
func (_c *PageCreate) SetDocumentID(v uuid.UUID) *PageCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetPageIndex sets the "page_index" field.
func (_c *PageCreate) SetPageIndex(v int) *PageCreate {
	_c.mutation.SetPageIndex(v)
	return _c
}

// SetImagePath sets the "image_path" field.
func (_c *PageCreate) SetImagePath(v string) *PageCreate {
	_c.mutation.SetImagePath(v)
	return _c
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_c *PageCreate) SetNillableImagePath(v *string) *PageCreate {
	if v != nil {
		_c.SetImagePath(*v)
	}
	return _c
}

// SetWidth sets the "width" field.
func (_c *PageCreate) SetWidth(v int) *PageCreate {
	_c.mutation.SetWidth(v)
	return _c
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_c *PageCreate) SetNillableWidth(v *int) *PageCreate {
	if v != nil {
		_c.SetWidth(*v)
	}
	return _c
}

// SetHeight sets the "height" field.
func (_c *PageCreate) SetHeight(v int) *PageCreate {
	_c.mutation.SetHeight(v)
	return _c
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_c *PageCreate) SetNillableHeight(v *int) *PageCreate {
	if v != nil {
		_c.SetHeight(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PageCreate) SetID(v uuid.UUID) *PageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PageCreate) SetNillableID(v *uuid.UUID) *PageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *PageCreate) SetDocument(v *Document) *PageCreate {
	return _c.SetDocumentID(v.ID)
}

// AddWordIDs adds the "words" edge to the Word entity by IDs.
func (_c *PageCreate) AddWordIDs(ids ...uuid.UUID) *PageCreate {
	_c.mutation.AddWordIDs(ids...)
	return _c
}

// AddWords adds the "words" edges to the Word entity.
func (_c *PageCreate) AddWords(v ...*Word) *PageCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWordIDs(ids...)
}

// Mutation returns the PageMutation object of the builder.
func (_c *PageCreate) Mutation() *PageMutation {
	return _c.mutation
}

// Save creates the Page in the database.
func (_c *PageCreate) Save(ctx context.Context) (*Page, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PageCreate) SaveX(ctx context.Context) *Page {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PageCreate) defaults() {
	if _, ok := _c.mutation.ImagePath(); !ok {
		v := page.DefaultImagePath
		_c.mutation.SetImagePath(v)
	}
	if _, ok := _c.mutation.Width(); !ok {
		v := page.DefaultWidth
		_c.mutation.SetWidth(v)
	}
	if _, ok := _c.mutation.Height(); !ok {
		v := page.DefaultHeight
		_c.mutation.SetHeight(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := page.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PageCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "Page.document_id"`)}
	}
	if _, ok := _c.mutation.PageIndex(); !ok {
		return &ValidationError{Name: "page_index", err: errors.New(`ent: missing required field "Page.page_index"`)}
	}
	if v, ok := _c.mutation.PageIndex(); ok {
		if err := page.PageIndexValidator(v); err != nil {
			return &ValidationError{Name: "page_index", err: fmt.Errorf(`ent: validator failed for field "Page.page_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ImagePath(); !ok {
		return &ValidationError{Name: "image_path", err: errors.New(`ent: missing required field "Page.image_path"`)}
	}
	if _, ok := _c.mutation.Width(); !ok {
		return &ValidationError{Name: "width", err: errors.New(`ent: missing required field "Page.width"`)}
	}
	if v, ok := _c.mutation.Width(); ok {
		if err := page.WidthValidator(v); err != nil {
			return &ValidationError{Name: "width", err: fmt.Errorf(`ent: validator failed for field "Page.width": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Height(); !ok {
		return &ValidationError{Name: "height", err: errors.New(`ent: missing required field "Page.height"`)}
	}
	if v, ok := _c.mutation.Height(); ok {
		if err := page.HeightValidator(v); err != nil {
			return &ValidationError{Name: "height", err: fmt.Errorf(`ent: validator failed for field "Page.height": %w`, err)}
		}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "Page.document"`)}
	}
	return nil
}

func (_c *PageCreate) sqlSave(ctx context.Context) (*Page, error) {
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

func (_c *PageCreate) createSpec() (*Page, *sqlgraph.CreateSpec) {
	var (
		_node = &Page{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(page.Table, sqlgraph.NewFieldSpec(page.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PageIndex(); ok {
		_spec.SetField(page.FieldPageIndex, field.TypeInt, value)
		_node.PageIndex = value
	}
	if value, ok := _c.mutation.ImagePath(); ok {
		_spec.SetField(page.FieldImagePath, field.TypeString, value)
		_node.ImagePath = value
	}
	if value, ok := _c.mutation.Width(); ok {
		_spec.SetField(page.FieldWidth, field.TypeInt, value)
		_node.Width = value
	}
	if value, ok := _c.mutation.Height(); ok {
		_spec.SetField(page.FieldHeight, field.TypeInt, value)
		_node.Height = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   page.DocumentTable,
			Columns: []string{page.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   page.WordsTable,
			Columns: []string{page.WordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(word.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Page.Create().
//		SetDocumentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PageUpsert) {
//			SetDocumentID(v+v).
//		}).
//		Exec(ctx)
func (_c *PageCreate) OnConflict(opts ...sql.ConflictOption) *PageUpsertOne {
	_c.conflict = opts
	return &PageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Page.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PageCreate) OnConflictColumns(columns ...string) *PageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PageUpsertOne{
		create: _c,
	}
}

type (
	// PageUpsertOne is the builder for "upsert"-ing
	//  one Page node.
	PageUpsertOne struct {
		create *PageCreate
	}

	// PageUpsert is the "OnConflict" setter.
	PageUpsert struct {
		*sql.UpdateSet
	}
)

// SetDocumentID sets the "document_id" field.
func (u *PageUpsert) SetDocumentID(v uuid.UUID) *PageUpsert {
	u.Set(page.FieldDocumentID, v)
	return u
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *PageUpsert) UpdateDocumentID() *PageUpsert {
	u.SetExcluded(page.FieldDocumentID)
	return u
}

// SetPageIndex sets the "page_index" field.
func (u *PageUpsert) SetPageIndex(v int) *PageUpsert {
	u.Set(page.FieldPageIndex, v)
	return u
}

// UpdatePageIndex sets the "page_index" field to the value that was provided on create.
func (u *PageUpsert) UpdatePageIndex() *PageUpsert {
	u.SetExcluded(page.FieldPageIndex)
	return u
}

// AddPageIndex adds v to the "page_index" field.
func (u *PageUpsert) AddPageIndex(v int) *PageUpsert {
	u.Add(page.FieldPageIndex, v)
	return u
}

// SetImagePath sets the "image_path" field.
func (u *PageUpsert) SetImagePath(v string) *PageUpsert {
	u.Set(page.FieldImagePath, v)
	return u
}

// UpdateImagePath sets the "image_path" field to the value that was provided on create.
func (u *PageUpsert) UpdateImagePath() *PageUpsert {
	u.SetExcluded(page.FieldImagePath)
	return u
}

// SetWidth sets the "width" field.
func (u *PageUpsert) SetWidth(v int) *PageUpsert {
	u.Set(page.FieldWidth, v)
	return u
}

// UpdateWidth sets the "width" field to the value that was provided on create.
func (u *PageUpsert) UpdateWidth() *PageUpsert {
	u.SetExcluded(page.FieldWidth)
	return u
}

// AddWidth adds v to the "width" field.
func (u *PageUpsert) AddWidth(v int) *PageUpsert {
	u.Add(page.FieldWidth, v)
	return u
}

// SetHeight sets the "height" field.
func (u *PageUpsert) SetHeight(v int) *PageUpsert {
	u.Set(page.FieldHeight, v)
	return u
}

// UpdateHeight sets the "height" field to the value that was provided on create.
func (u *PageUpsert) UpdateHeight() *PageUpsert {
	u.SetExcluded(page.FieldHeight)
	return u
}

// AddHeight adds v to the "height" field.
func (u *PageUpsert) AddHeight(v int) *PageUpsert {
	u.Add(page.FieldHeight, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Page.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(page.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PageUpsertOne) UpdateNewValues() *PageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(page.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Page.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PageUpsertOne) Ignore() *PageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PageUpsertOne) DoNothing() *PageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PageCreate.OnConflict
// documentation for more info.
func (u *PageUpsertOne) Update(set func(*PageUpsert)) *PageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PageUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocumentID sets the "document_id" field.
func (u *PageUpsertOne) SetDocumentID(v uuid.UUID) *PageUpsertOne {
	return u.Update(func(s *PageUpsert) {
		s.SetDocumentID(v)
	})
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *PageUpsertOne) UpdateDocumentID() *PageUpsertOne {
	return u.Update(func(s *PageUpsert) {
		s.UpdateDocumentID()
	})
}

// SetPageIndex sets the "page_index" field.
func (u *PageUpsertOne) SetPageIndex(v int) *PageUpsertOne {
	return u.Update(func(s *PageUpsert) {
		s.SetPageIndex(v)
	})
}

// AddPageIndex adds v to the "page_index" field.
func (u *PageUpsertOne) AddPageIndex(v int) *PageUpsertOne {
	return u.Update(func(s *PageUpsert) {
		s.AddPageIndex(v)
	})
}

// UpdatePageIndex sets the "page_index" field to the value that was provided on create.
func (u *PageUpsertOne) UpdatePageIndex() *PageUpsertOne {
	return u.Update(func(s *PageUpsert) {
		s.UpdatePageIndex()
	})
}

// SetImagePath sets the "image_path" field.
func (u *PageUpsertOne) SetImagePath(v string) *PageUpsertOne {
	return u.Update(func(s *PageUpsert) {
		s.SetImagePath(v)
	})
}

// UpdateImagePath sets the "image_path" field to the value that was provided on create.
func (u *PageUpsertOne) UpdateImagePath() *PageUpsertOne {
	return u.Update(func(s *PageUpsert) {
		s.UpdateImagePath()
	})
}

// SetWidth sets the "width" field.
func (u *PageUpsertOne) SetWidth(v int) *PageUpsertOne {
	return u.Update(func(s *PageUpsert) {
		s.SetWidth(v)
	})
}

// AddWidth adds v to the "width" field.
func (u *PageUpsertOne) AddWidth(v int) *PageUpsertOne {
	return u.Update(func(s *PageUpsert) {
		s.AddWidth(v)
	})
}

// UpdateWidth sets the "width" field to the value that was provided on create.
func (u *PageUpsertOne) UpdateWidth() *PageUpsertOne {
	return u.Update(func(s *PageUpsert) {
		s.UpdateWidth()
	})
}

// SetHeight sets the "height" field.
func (u *PageUpsertOne) SetHeight(v int) *PageUpsertOne {
	return u.Update(func(s *PageUpsert) {
		s.SetHeight(v)
	})
}

// AddHeight adds v to the "height" field.
func (u *PageUpsertOne) AddHeight(v int) *PageUpsertOne {
	return u.Update(func(s *PageUpsert) {
		s.AddHeight(v)
	})
}

// UpdateHeight sets the "height" field to the value that was provided on create.
func (u *PageUpsertOne) UpdateHeight() *PageUpsertOne {
	return u.Update(func(s *PageUpsert) {
		s.UpdateHeight()
	})
}

// Exec executes the query.
func (u *PageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PageUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PageUpsertOne.ID is not supported by MySQL driver. Use PageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PageUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PageCreateBulk is the builder for creating many Page entities in bulk.
type PageCreateBulk struct {
	config
	err      error
	builders []*PageCreate
	conflict []sql.ConflictOption
}

// Save creates the Page entities in the database.
func (_c *PageCreateBulk) Save(ctx context.Context) ([]*Page, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Page, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PageMutation)
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
func (_c *PageCreateBulk) SaveX(ctx context.Context) []*Page {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Page.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PageUpsert) {
//			SetDocumentID(v+v).
//		}).
//		Exec(ctx)
func (_c *PageCreateBulk) OnConflict(opts ...sql.ConflictOption) *PageUpsertBulk {
	_c.conflict = opts
	return &PageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Page.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PageCreateBulk) OnConflictColumns(columns ...string) *PageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PageUpsertBulk{
		create: _c,
	}
}

// PageUpsertBulk is the builder for "upsert"-ing
// a bulk of Page nodes.
type PageUpsertBulk struct {
	create *PageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Page.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(page.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PageUpsertBulk) UpdateNewValues() *PageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(page.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Page.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PageUpsertBulk) Ignore() *PageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PageUpsertBulk) DoNothing() *PageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PageCreateBulk.OnConflict
// documentation for more info.
func (u *PageUpsertBulk) Update(set func(*PageUpsert)) *PageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PageUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocumentID sets the "document_id" field.
func (u *PageUpsertBulk) SetDocumentID(v uuid.UUID) *PageUpsertBulk {
	return u.Update(func(s *PageUpsert) {
		s.SetDocumentID(v)
	})
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *PageUpsertBulk) UpdateDocumentID() *PageUpsertBulk {
	return u.Update(func(s *PageUpsert) {
		s.UpdateDocumentID()
	})
}

// SetPageIndex sets the "page_index" field.
func (u *PageUpsertBulk) SetPageIndex(v int) *PageUpsertBulk {
	return u.Update(func(s *PageUpsert) {
		s.SetPageIndex(v)
	})
}

// AddPageIndex adds v to the "page_index" field.
func (u *PageUpsertBulk) AddPageIndex(v int) *PageUpsertBulk {
	return u.Update(func(s *PageUpsert) {
		s.AddPageIndex(v)
	})
}

// UpdatePageIndex sets the "page_index" field to the value that was provided on create.
func (u *PageUpsertBulk) UpdatePageIndex() *PageUpsertBulk {
	return u.Update(func(s *PageUpsert) {
		s.UpdatePageIndex()
	})
}

// SetImagePath sets the "image_path" field.
func (u *PageUpsertBulk) SetImagePath(v string) *PageUpsertBulk {
	return u.Update(func(s *PageUpsert) {
		s.SetImagePath(v)
	})
}

// UpdateImagePath sets the "image_path" field to the value that was provided on create.
func (u *PageUpsertBulk) UpdateImagePath() *PageUpsertBulk {
	return u.Update(func(s *PageUpsert) {
		s.UpdateImagePath()
	})
}

// SetWidth sets the "width" field.
func (u *PageUpsertBulk) SetWidth(v int) *PageUpsertBulk {
	return u.Update(func(s *PageUpsert) {
		s.SetWidth(v)
	})
}

// AddWidth adds v to the "width" field.
func (u *PageUpsertBulk) AddWidth(v int) *PageUpsertBulk {
	return u.Update(func(s *PageUpsert) {
		s.AddWidth(v)
	})
}

// UpdateWidth sets the "width" field to the value that was provided on create.
func (u *PageUpsertBulk) UpdateWidth() *PageUpsertBulk {
	return u.Update(func(s *PageUpsert) {
		s.UpdateWidth()
	})
}

// SetHeight sets the "height" field.
func (u *PageUpsertBulk) SetHeight(v int) *PageUpsertBulk {
	return u.Update(func(s *PageUpsert) {
		s.SetHeight(v)
	})
}

// AddHeight adds v to the "height" field.
func (u *PageUpsertBulk) AddHeight(v int) *PageUpsertBulk {
	return u.Update(func(s *PageUpsert) {
		s.AddHeight(v)
	})
}

// UpdateHeight sets the "height" field to the value that was provided on create.
func (u *PageUpsertBulk) UpdateHeight() *PageUpsertBulk {
	return u.Update(func(s *PageUpsert) {
		s.UpdateHeight()
	})
}

// Exec executes the query.
func (u *PageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
