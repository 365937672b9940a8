// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/veridoc/ocr-review/gen/ent/document"
	"github.com/veridoc/ocr-review/gen/ent/page"
	"github.com/veridoc/ocr-review/gen/ent/predicate"
	"github.com/veridoc/ocr-review/gen/ent/word"
)

// PageUpdate is the builder for updating Page entities.
type PageUpdate struct {
	config
	hooks    []Hook
	mutation *PageMutation
}

// Where appends a list predicates to the PageUpdate builder.
func (_u *PageUpdate) Where(ps ...predicate.Page) *PageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *PageUpdate) SetDocumentID(v uuid.UUID) *PageUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *PageUpdate) SetNillableDocumentID(v *uuid.UUID) *PageUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPageIndex sets the "page_index" field.
func (_u *PageUpdate) SetPageIndex(v int) *PageUpdate {
	_u.mutation.ResetPageIndex()
	_u.mutation.SetPageIndex(v)
	return _u
}

// SetNillablePageIndex sets the "page_index" field if the given value is not nil.
func (_u *PageUpdate) SetNillablePageIndex(v *int) *PageUpdate {
	if v != nil {
		_u.SetPageIndex(*v)
	}
	return _u
}

// AddPageIndex adds value to the "page_index" field.
func (_u *PageUpdate) AddPageIndex(v int) *PageUpdate {
	_u.mutation.AddPageIndex(v)
	return _u
}

// SetImagePath sets the "image_path" field.
func (_u *PageUpdate) SetImagePath(v string) *PageUpdate {
	_u.mutation.SetImagePath(v)
	return _u
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_u *PageUpdate) SetNillableImagePath(v *string) *PageUpdate {
	if v != nil {
		_u.SetImagePath(*v)
	}
	return _u
}

// SetWidth sets the "width" field.
func (_u *PageUpdate) SetWidth(v int) *PageUpdate {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *PageUpdate) SetNillableWidth(v *int) *PageUpdate {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *PageUpdate) AddWidth(v int) *PageUpdate {
	_u.mutation.AddWidth(v)
	return _u
}

// SetHeight sets the "height" field.
func (_u *PageUpdate) SetHeight(v int) *PageUpdate {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *PageUpdate) SetNillableHeight(v *int) *PageUpdate {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *PageUpdate) AddHeight(v int) *PageUpdate {
	_u.mutation.AddHeight(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *PageUpdate) SetDocument(v *Document) *PageUpdate {
	return _u.SetDocumentID(v.ID)
}

// AddWordIDs adds the "words" edge to the Word entity by IDs.
func (_u *PageUpdate) AddWordIDs(ids ...uuid.UUID) *PageUpdate {
	_u.mutation.AddWordIDs(ids...)
	return _u
}

// AddWords adds the "words" edges to the Word entity.
func (_u *PageUpdate) AddWords(v ...*Word) *PageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWordIDs(ids...)
}

// Mutation returns the PageMutation object of the builder.
func (_u *PageUpdate) Mutation() *PageMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *PageUpdate) ClearDocument() *PageUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearWords clears all "words" edges to the Word entity.
func (_u *PageUpdate) ClearWords() *PageUpdate {
	_u.mutation.ClearWords()
	return _u
}

// RemoveWordIDs removes the "words" edge to Word entities by IDs.
func (_u *PageUpdate) RemoveWordIDs(ids ...uuid.UUID) *PageUpdate {
	_u.mutation.RemoveWordIDs(ids...)
	return _u
}

// RemoveWords removes "words" edges to Word entities.
func (_u *PageUpdate) RemoveWords(v ...*Word) *PageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PageUpdate) check() error {
	if v, ok := _u.mutation.PageIndex(); ok {
		if err := page.PageIndexValidator(v); err != nil {
			return &ValidationError{Name: "page_index", err: fmt.Errorf(`ent: validator failed for field "Page.page_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Width(); ok {
		if err := page.WidthValidator(v); err != nil {
			return &ValidationError{Name: "width", err: fmt.Errorf(`ent: validator failed for field "Page.width": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Height(); ok {
		if err := page.HeightValidator(v); err != nil {
			return &ValidationError{Name: "height", err: fmt.Errorf(`ent: validator failed for field "Page.height": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Page.document"`)
	}
	return nil
}

func (_u *PageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(page.Table, page.Columns, sqlgraph.NewFieldSpec(page.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PageIndex(); ok {
		_spec.SetField(page.FieldPageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageIndex(); ok {
		_spec.AddField(page.FieldPageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ImagePath(); ok {
		_spec.SetField(page.FieldImagePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(page.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(page.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(page.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(page.FieldHeight, field.TypeInt, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWordsIDs(); len(nodes) > 0 && !_u.mutation.WordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{page.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PageUpdateOne is the builder for updating a single Page entity.
type PageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PageMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *PageUpdateOne) SetDocumentID(v uuid.UUID) *PageUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableDocumentID(v *uuid.UUID) *PageUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPageIndex sets the "page_index" field.
func (_u *PageUpdateOne) SetPageIndex(v int) *PageUpdateOne {
	_u.mutation.ResetPageIndex()
	_u.mutation.SetPageIndex(v)
	return _u
}

// SetNillablePageIndex sets the "page_index" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillablePageIndex(v *int) *PageUpdateOne {
	if v != nil {
		_u.SetPageIndex(*v)
	}
	return _u
}

// AddPageIndex adds value to the "page_index" field.
func (_u *PageUpdateOne) AddPageIndex(v int) *PageUpdateOne {
	_u.mutation.AddPageIndex(v)
	return _u
}

// SetImagePath sets the "image_path" field.
func (_u *PageUpdateOne) SetImagePath(v string) *PageUpdateOne {
	_u.mutation.SetImagePath(v)
	return _u
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableImagePath(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetImagePath(*v)
	}
	return _u
}

// SetWidth sets the "width" field.
func (_u *PageUpdateOne) SetWidth(v int) *PageUpdateOne {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableWidth(v *int) *PageUpdateOne {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *PageUpdateOne) AddWidth(v int) *PageUpdateOne {
	_u.mutation.AddWidth(v)
	return _u
}

// SetHeight sets the "height" field.
func (_u *PageUpdateOne) SetHeight(v int) *PageUpdateOne {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableHeight(v *int) *PageUpdateOne {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *PageUpdateOne) AddHeight(v int) *PageUpdateOne {
	_u.mutation.AddHeight(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *PageUpdateOne) SetDocument(v *Document) *PageUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// AddWordIDs adds the "words" edge to the Word entity by IDs.
func (_u *PageUpdateOne) AddWordIDs(ids ...uuid.UUID) *PageUpdateOne {
	_u.mutation.AddWordIDs(ids...)
	return _u
}

// AddWords adds the "words" edges to the Word entity.
func (_u *PageUpdateOne) AddWords(v ...*Word) *PageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWordIDs(ids...)
}

// Mutation returns the PageMutation object of the builder.
func (_u *PageUpdateOne) Mutation() *PageMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *PageUpdateOne) ClearDocument() *PageUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearWords clears all "words" edges to the Word entity.
func (_u *PageUpdateOne) ClearWords() *PageUpdateOne {
	_u.mutation.ClearWords()
	return _u
}

// RemoveWordIDs removes the "words" edge to Word entities by IDs.
func (_u *PageUpdateOne) RemoveWordIDs(ids ...uuid.UUID) *PageUpdateOne {
	_u.mutation.RemoveWordIDs(ids...)
	return _u
}

// RemoveWords removes "words" edges to Word entities.
func (_u *PageUpdateOne) RemoveWords(v ...*Word) *PageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWordIDs(ids...)
}

// Where appends a list predicates to the PageUpdate builder.
func (_u *PageUpdateOne) Where(ps ...predicate.Page) *PageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PageUpdateOne) Select(field string, fields ...string) *PageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Page entity.
func (_u *PageUpdateOne) Save(ctx context.Context) (*Page, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PageUpdateOne) SaveX(ctx context.Context) *Page {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PageUpdateOne) check() error {
	if v, ok := _u.mutation.PageIndex(); ok {
		if err := page.PageIndexValidator(v); err != nil {
			return &ValidationError{Name: "page_index", err: fmt.Errorf(`ent: validator failed for field "Page.page_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Width(); ok {
		if err := page.WidthValidator(v); err != nil {
			return &ValidationError{Name: "width", err: fmt.Errorf(`ent: validator failed for field "Page.width": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Height(); ok {
		if err := page.HeightValidator(v); err != nil {
			return &ValidationError{Name: "height", err: fmt.Errorf(`ent: validator failed for field "Page.height": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Page.document"`)
	}
	return nil
}

func (_u *PageUpdateOne) sqlSave(ctx context.Context) (_node *Page, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(page.Table, page.Columns, sqlgraph.NewFieldSpec(page.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Page.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, page.FieldID)
		for _, f := range fields {
			if !page.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != page.FieldID {
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
	if value, ok := _u.mutation.PageIndex(); ok {
		_spec.SetField(page.FieldPageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageIndex(); ok {
		_spec.AddField(page.FieldPageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ImagePath(); ok {
		_spec.SetField(page.FieldImagePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(page.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(page.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(page.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(page.FieldHeight, field.TypeInt, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWordsIDs(); len(nodes) > 0 && !_u.mutation.WordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Page{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{page.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
