// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thoth-ai/thoth/ent/predicate"
	"github.com/thoth-ai/thoth/ent/sqlcolumn"
)

// SqlColumnDelete is the builder for deleting a SqlColumn entity.
type SqlColumnDelete struct {
	config
	hooks    []Hook
	mutation *SqlColumnMutation
}

// Where appends a list predicates to the SqlColumnDelete builder.
func (_d *SqlColumnDelete) Where(ps ...predicate.SqlColumn) *SqlColumnDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SqlColumnDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SqlColumnDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SqlColumnDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(sqlcolumn.Table, sqlgraph.NewFieldSpec(sqlcolumn.FieldID, field.TypeString))
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

// SqlColumnDeleteOne is the builder for deleting a single SqlColumn entity.
type SqlColumnDeleteOne struct {
	_d *SqlColumnDelete
}

// Where appends a list predicates to the SqlColumnDelete builder.
func (_d *SqlColumnDeleteOne) Where(ps ...predicate.SqlColumn) *SqlColumnDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SqlColumnDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{sqlcolumn.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SqlColumnDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
