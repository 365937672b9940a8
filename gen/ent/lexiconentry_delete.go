// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/veridoc/ocr-review/gen/ent/lexiconentry"
	"github.com/veridoc/ocr-review/gen/ent/predicate"
)

// LexiconEntryDelete is the builder for deleting a LexiconEntry entity.
type LexiconEntryDelete struct {
	config
	hooks    []Hook
	mutation *LexiconEntryMutation
}

// Where appends a list predicates to the LexiconEntryDelete builder.
func (_d *LexiconEntryDelete) Where(ps ...predicate.LexiconEntry) *LexiconEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LexiconEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LexiconEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LexiconEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(lexiconentry.Table, sqlgraph.NewFieldSpec(lexiconentry.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// LexiconEntryDeleteOne is the builder for deleting a single LexiconEntry entity.
type LexiconEntryDeleteOne struct {
	_d *LexiconEntryDelete
}

// Where appends a list predicates to the LexiconEntryDelete builder.
func (_d *LexiconEntryDeleteOne) Where(ps ...predicate.LexiconEntry) *LexiconEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LexiconEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{lexiconentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LexiconEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
