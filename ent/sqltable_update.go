// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thoth-ai/thoth/ent/predicate"
	"github.com/thoth-ai/thoth/ent/sqlcolumn"
	"github.com/thoth-ai/thoth/ent/sqldb"
	"github.com/thoth-ai/thoth/ent/sqltable"
)

// SqlTableUpdate is the builder for updating SqlTable entities.
type SqlTableUpdate struct {
	config
	hooks    []Hook
	mutation *SqlTableMutation
}

// Where appends a list predicates to the SqlTableUpdate builder.
func (_u *SqlTableUpdate) Where(ps ...predicate.SqlTable) *SqlTableUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SqlTableUpdate) SetName(v string) *SqlTableUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SqlTableUpdate) SetNillableName(v *string) *SqlTableUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SqlTableUpdate) SetDescription(v string) *SqlTableUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SqlTableUpdate) SetNillableDescription(v *string) *SqlTableUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SqlTableUpdate) ClearDescription() *SqlTableUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetAiDescription sets the "ai_description" field.
func (_u *SqlTableUpdate) SetAiDescription(v string) *SqlTableUpdate {
	_u.mutation.SetAiDescription(v)
	return _u
}

// SetNillableAiDescription sets the "ai_description" field if the given value is not nil.
func (_u *SqlTableUpdate) SetNillableAiDescription(v *string) *SqlTableUpdate {
	if v != nil {
		_u.SetAiDescription(*v)
	}
	return _u
}

// ClearAiDescription clears the value of the "ai_description" field.
func (_u *SqlTableUpdate) ClearAiDescription() *SqlTableUpdate {
	_u.mutation.ClearAiDescription()
	return _u
}

// SetGeneratedComment sets the "generated_comment" field.
func (_u *SqlTableUpdate) SetGeneratedComment(v string) *SqlTableUpdate {
	_u.mutation.SetGeneratedComment(v)
	return _u
}

// SetNillableGeneratedComment sets the "generated_comment" field if the given value is not nil.
func (_u *SqlTableUpdate) SetNillableGeneratedComment(v *string) *SqlTableUpdate {
	if v != nil {
		_u.SetGeneratedComment(*v)
	}
	return _u
}

// ClearGeneratedComment clears the value of the "generated_comment" field.
func (_u *SqlTableUpdate) ClearGeneratedComment() *SqlTableUpdate {
	_u.mutation.ClearGeneratedComment()
	return _u
}

// SetSQLDbID sets the "sql_db" edge to the SqlDb entity by ID.
func (_u *SqlTableUpdate) SetSQLDbID(id string) *SqlTableUpdate {
	_u.mutation.SetSQLDbID(id)
	return _u
}

// SetSQLDb sets the "sql_db" edge to the SqlDb entity.
func (_u *SqlTableUpdate) SetSQLDb(v *SqlDb) *SqlTableUpdate {
	return _u.SetSQLDbID(v.ID)
}

// AddColumnIDs adds the "columns" edge to the SqlColumn entity by IDs.
func (_u *SqlTableUpdate) AddColumnIDs(ids ...string) *SqlTableUpdate {
	_u.mutation.AddColumnIDs(ids...)
	return _u
}

// AddColumns adds the "columns" edges to the SqlColumn entity.
func (_u *SqlTableUpdate) AddColumns(v ...*SqlColumn) *SqlTableUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddColumnIDs(ids...)
}

// Mutation returns the SqlTableMutation object of the builder.
func (_u *SqlTableUpdate) Mutation() *SqlTableMutation {
	return _u.mutation
}

// ClearSQLDb clears the "sql_db" edge to the SqlDb entity.
func (_u *SqlTableUpdate) ClearSQLDb() *SqlTableUpdate {
	_u.mutation.ClearSQLDb()
	return _u
}

// ClearColumns clears all "columns" edges to the SqlColumn entity.
func (_u *SqlTableUpdate) ClearColumns() *SqlTableUpdate {
	_u.mutation.ClearColumns()
	return _u
}

// RemoveColumnIDs removes the "columns" edge to SqlColumn entities by IDs.
func (_u *SqlTableUpdate) RemoveColumnIDs(ids ...string) *SqlTableUpdate {
	_u.mutation.RemoveColumnIDs(ids...)
	return _u
}

// RemoveColumns removes "columns" edges to SqlColumn entities.
func (_u *SqlTableUpdate) RemoveColumns(v ...*SqlColumn) *SqlTableUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveColumnIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SqlTableUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SqlTableUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SqlTableUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SqlTableUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SqlTableUpdate) check() error {
	if _u.mutation.SQLDbCleared() && len(_u.mutation.SQLDbIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SqlTable.sql_db"`)
	}
	return nil
}

func (_u *SqlTableUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sqltable.Table, sqltable.Columns, sqlgraph.NewFieldSpec(sqltable.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(sqltable.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(sqltable.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(sqltable.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.AiDescription(); ok {
		_spec.SetField(sqltable.FieldAiDescription, field.TypeString, value)
	}
	if _u.mutation.AiDescriptionCleared() {
		_spec.ClearField(sqltable.FieldAiDescription, field.TypeString)
	}
	if value, ok := _u.mutation.GeneratedComment(); ok {
		_spec.SetField(sqltable.FieldGeneratedComment, field.TypeString, value)
	}
	if _u.mutation.GeneratedCommentCleared() {
		_spec.ClearField(sqltable.FieldGeneratedComment, field.TypeString)
	}
	if _u.mutation.SQLDbCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sqltable.SQLDbTable,
			Columns: []string{sqltable.SQLDbColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sqldb.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SQLDbIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sqltable.SQLDbTable,
			Columns: []string{sqltable.SQLDbColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sqldb.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ColumnsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sqltable.ColumnsTable,
			Columns: []string{sqltable.ColumnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sqlcolumn.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedColumnsIDs(); len(nodes) > 0 && !_u.mutation.ColumnsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sqltable.ColumnsTable,
			Columns: []string{sqltable.ColumnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sqlcolumn.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ColumnsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sqltable.ColumnsTable,
			Columns: []string{sqltable.ColumnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sqlcolumn.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sqltable.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SqlTableUpdateOne is the builder for updating a single SqlTable entity.
type SqlTableUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SqlTableMutation
}

// SetName sets the "name" field.
func (_u *SqlTableUpdateOne) SetName(v string) *SqlTableUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SqlTableUpdateOne) SetNillableName(v *string) *SqlTableUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SqlTableUpdateOne) SetDescription(v string) *SqlTableUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SqlTableUpdateOne) SetNillableDescription(v *string) *SqlTableUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SqlTableUpdateOne) ClearDescription() *SqlTableUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetAiDescription sets the "ai_description" field.
func (_u *SqlTableUpdateOne) SetAiDescription(v string) *SqlTableUpdateOne {
	_u.mutation.SetAiDescription(v)
	return _u
}

// SetNillableAiDescription sets the "ai_description" field if the given value is not nil.
func (_u *SqlTableUpdateOne) SetNillableAiDescription(v *string) *SqlTableUpdateOne {
	if v != nil {
		_u.SetAiDescription(*v)
	}
	return _u
}

// ClearAiDescription clears the value of the "ai_description" field.
func (_u *SqlTableUpdateOne) ClearAiDescription() *SqlTableUpdateOne {
	_u.mutation.ClearAiDescription()
	return _u
}

// SetGeneratedComment sets the "generated_comment" field.
func (_u *SqlTableUpdateOne) SetGeneratedComment(v string) *SqlTableUpdateOne {
	_u.mutation.SetGeneratedComment(v)
	return _u
}

// SetNillableGeneratedComment sets the "generated_comment" field if the given value is not nil.
func (_u *SqlTableUpdateOne) SetNillableGeneratedComment(v *string) *SqlTableUpdateOne {
	if v != nil {
		_u.SetGeneratedComment(*v)
	}
	return _u
}

// ClearGeneratedComment clears the value of the "generated_comment" field.
func (_u *SqlTableUpdateOne) ClearGeneratedComment() *SqlTableUpdateOne {
	_u.mutation.ClearGeneratedComment()
	return _u
}

// SetSQLDbID sets the "sql_db" edge to the SqlDb entity by ID.
func (_u *SqlTableUpdateOne) SetSQLDbID(id string) *SqlTableUpdateOne {
	_u.mutation.SetSQLDbID(id)
	return _u
}

// SetSQLDb sets the "sql_db" edge to the SqlDb entity.
func (_u *SqlTableUpdateOne) SetSQLDb(v *SqlDb) *SqlTableUpdateOne {
	return _u.SetSQLDbID(v.ID)
}

// AddColumnIDs adds the "columns" edge to the SqlColumn entity by IDs.
func (_u *SqlTableUpdateOne) AddColumnIDs(ids ...string) *SqlTableUpdateOne {
	_u.mutation.AddColumnIDs(ids...)
	return _u
}

// AddColumns adds the "columns" edges to the SqlColumn entity.
func (_u *SqlTableUpdateOne) AddColumns(v ...*SqlColumn) *SqlTableUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddColumnIDs(ids...)
}

// Mutation returns the SqlTableMutation object of the builder.
func (_u *SqlTableUpdateOne) Mutation() *SqlTableMutation {
	return _u.mutation
}

// ClearSQLDb clears the "sql_db" edge to the SqlDb entity.
func (_u *SqlTableUpdateOne) ClearSQLDb() *SqlTableUpdateOne {
	_u.mutation.ClearSQLDb()
	return _u
}

// ClearColumns clears all "columns" edges to the SqlColumn entity.
func (_u *SqlTableUpdateOne) ClearColumns() *SqlTableUpdateOne {
	_u.mutation.ClearColumns()
	return _u
}

// RemoveColumnIDs removes the "columns" edge to SqlColumn entities by IDs.
func (_u *SqlTableUpdateOne) RemoveColumnIDs(ids ...string) *SqlTableUpdateOne {
	_u.mutation.RemoveColumnIDs(ids...)
	return _u
}

// RemoveColumns removes "columns" edges to SqlColumn entities.
func (_u *SqlTableUpdateOne) RemoveColumns(v ...*SqlColumn) *SqlTableUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveColumnIDs(ids...)
}

// Where appends a list predicates to the SqlTableUpdate builder.
func (_u *SqlTableUpdateOne) Where(ps ...predicate.SqlTable) *SqlTableUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SqlTableUpdateOne) Select(field string, fields ...string) *SqlTableUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SqlTable entity.
func (_u *SqlTableUpdateOne) Save(ctx context.Context) (*SqlTable, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SqlTableUpdateOne) SaveX(ctx context.Context) *SqlTable {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SqlTableUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SqlTableUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SqlTableUpdateOne) check() error {
	if _u.mutation.SQLDbCleared() && len(_u.mutation.SQLDbIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SqlTable.sql_db"`)
	}
	return nil
}

func (_u *SqlTableUpdateOne) sqlSave(ctx context.Context) (_node *SqlTable, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sqltable.Table, sqltable.Columns, sqlgraph.NewFieldSpec(sqltable.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SqlTable.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sqltable.FieldID)
		for _, f := range fields {
			if !sqltable.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sqltable.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(sqltable.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(sqltable.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(sqltable.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.AiDescription(); ok {
		_spec.SetField(sqltable.FieldAiDescription, field.TypeString, value)
	}
	if _u.mutation.AiDescriptionCleared() {
		_spec.ClearField(sqltable.FieldAiDescription, field.TypeString)
	}
	if value, ok := _u.mutation.GeneratedComment(); ok {
		_spec.SetField(sqltable.FieldGeneratedComment, field.TypeString, value)
	}
	if _u.mutation.GeneratedCommentCleared() {
		_spec.ClearField(sqltable.FieldGeneratedComment, field.TypeString)
	}
	if _u.mutation.SQLDbCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sqltable.SQLDbTable,
			Columns: []string{sqltable.SQLDbColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sqldb.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SQLDbIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sqltable.SQLDbTable,
			Columns: []string{sqltable.SQLDbColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sqldb.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ColumnsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sqltable.ColumnsTable,
			Columns: []string{sqltable.ColumnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sqlcolumn.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedColumnsIDs(); len(nodes) > 0 && !_u.mutation.ColumnsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sqltable.ColumnsTable,
			Columns: []string{sqltable.ColumnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sqlcolumn.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ColumnsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sqltable.ColumnsTable,
			Columns: []string{sqltable.ColumnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sqlcolumn.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SqlTable{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sqltable.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
