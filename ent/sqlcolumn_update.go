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
	"github.com/thoth-ai/thoth/ent/sqltable"
)

// SqlColumnUpdate is the builder for updating SqlColumn entities.
type SqlColumnUpdate struct {
	config
	hooks    []Hook
	mutation *SqlColumnMutation
}

// Where appends a list predicates to the SqlColumnUpdate builder.
func (_u *SqlColumnUpdate) Where(ps ...predicate.SqlColumn) *SqlColumnUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOriginalName sets the "original_name" field.
func (_u *SqlColumnUpdate) SetOriginalName(v string) *SqlColumnUpdate {
	_u.mutation.SetOriginalName(v)
	return _u
}

// SetNillableOriginalName sets the "original_name" field if the given value is not nil.
func (_u *SqlColumnUpdate) SetNillableOriginalName(v *string) *SqlColumnUpdate {
	if v != nil {
		_u.SetOriginalName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *SqlColumnUpdate) SetNormalizedName(v string) *SqlColumnUpdate {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *SqlColumnUpdate) SetNillableNormalizedName(v *string) *SqlColumnUpdate {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetDataFormat sets the "data_format" field.
func (_u *SqlColumnUpdate) SetDataFormat(v string) *SqlColumnUpdate {
	_u.mutation.SetDataFormat(v)
	return _u
}

// SetNillableDataFormat sets the "data_format" field if the given value is not nil.
func (_u *SqlColumnUpdate) SetNillableDataFormat(v *string) *SqlColumnUpdate {
	if v != nil {
		_u.SetDataFormat(*v)
	}
	return _u
}

// ClearDataFormat clears the value of the "data_format" field.
func (_u *SqlColumnUpdate) ClearDataFormat() *SqlColumnUpdate {
	_u.mutation.ClearDataFormat()
	return _u
}

// SetDescription sets the "description" field.
func (_u *SqlColumnUpdate) SetDescription(v string) *SqlColumnUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SqlColumnUpdate) SetNillableDescription(v *string) *SqlColumnUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SqlColumnUpdate) ClearDescription() *SqlColumnUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetAiDescription sets the "ai_description" field.
func (_u *SqlColumnUpdate) SetAiDescription(v string) *SqlColumnUpdate {
	_u.mutation.SetAiDescription(v)
	return _u
}

// SetNillableAiDescription sets the "ai_description" field if the given value is not nil.
func (_u *SqlColumnUpdate) SetNillableAiDescription(v *string) *SqlColumnUpdate {
	if v != nil {
		_u.SetAiDescription(*v)
	}
	return _u
}

// ClearAiDescription clears the value of the "ai_description" field.
func (_u *SqlColumnUpdate) ClearAiDescription() *SqlColumnUpdate {
	_u.mutation.ClearAiDescription()
	return _u
}

// SetValueDescription sets the "value_description" field.
func (_u *SqlColumnUpdate) SetValueDescription(v string) *SqlColumnUpdate {
	_u.mutation.SetValueDescription(v)
	return _u
}

// SetNillableValueDescription sets the "value_description" field if the given value is not nil.
func (_u *SqlColumnUpdate) SetNillableValueDescription(v *string) *SqlColumnUpdate {
	if v != nil {
		_u.SetValueDescription(*v)
	}
	return _u
}

// ClearValueDescription clears the value of the "value_description" field.
func (_u *SqlColumnUpdate) ClearValueDescription() *SqlColumnUpdate {
	_u.mutation.ClearValueDescription()
	return _u
}

// SetPrimaryKey sets the "primary_key" field.
func (_u *SqlColumnUpdate) SetPrimaryKey(v string) *SqlColumnUpdate {
	_u.mutation.SetPrimaryKey(v)
	return _u
}

// SetNillablePrimaryKey sets the "primary_key" field if the given value is not nil.
func (_u *SqlColumnUpdate) SetNillablePrimaryKey(v *string) *SqlColumnUpdate {
	if v != nil {
		_u.SetPrimaryKey(*v)
	}
	return _u
}

// ClearPrimaryKey clears the value of the "primary_key" field.
func (_u *SqlColumnUpdate) ClearPrimaryKey() *SqlColumnUpdate {
	_u.mutation.ClearPrimaryKey()
	return _u
}

// SetForeignKey sets the "foreign_key" field.
func (_u *SqlColumnUpdate) SetForeignKey(v string) *SqlColumnUpdate {
	_u.mutation.SetForeignKey(v)
	return _u
}

// SetNillableForeignKey sets the "foreign_key" field if the given value is not nil.
func (_u *SqlColumnUpdate) SetNillableForeignKey(v *string) *SqlColumnUpdate {
	if v != nil {
		_u.SetForeignKey(*v)
	}
	return _u
}

// ClearForeignKey clears the value of the "foreign_key" field.
func (_u *SqlColumnUpdate) ClearForeignKey() *SqlColumnUpdate {
	_u.mutation.ClearForeignKey()
	return _u
}

// SetGeneratedComment sets the "generated_comment" field.
func (_u *SqlColumnUpdate) SetGeneratedComment(v string) *SqlColumnUpdate {
	_u.mutation.SetGeneratedComment(v)
	return _u
}

// SetNillableGeneratedComment sets the "generated_comment" field if the given value is not nil.
func (_u *SqlColumnUpdate) SetNillableGeneratedComment(v *string) *SqlColumnUpdate {
	if v != nil {
		_u.SetGeneratedComment(*v)
	}
	return _u
}

// ClearGeneratedComment clears the value of the "generated_comment" field.
func (_u *SqlColumnUpdate) ClearGeneratedComment() *SqlColumnUpdate {
	_u.mutation.ClearGeneratedComment()
	return _u
}

// SetSQLTableID sets the "sql_table" edge to the SqlTable entity by ID.
func (_u *SqlColumnUpdate) SetSQLTableID(id string) *SqlColumnUpdate {
	_u.mutation.SetSQLTableID(id)
	return _u
}

// SetSQLTable sets the "sql_table" edge to the SqlTable entity.
func (_u *SqlColumnUpdate) SetSQLTable(v *SqlTable) *SqlColumnUpdate {
	return _u.SetSQLTableID(v.ID)
}

// Mutation returns the SqlColumnMutation object of the builder.
func (_u *SqlColumnUpdate) Mutation() *SqlColumnMutation {
	return _u.mutation
}

// ClearSQLTable clears the "sql_table" edge to the SqlTable entity.
func (_u *SqlColumnUpdate) ClearSQLTable() *SqlColumnUpdate {
	_u.mutation.ClearSQLTable()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SqlColumnUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SqlColumnUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SqlColumnUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SqlColumnUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SqlColumnUpdate) check() error {
	if _u.mutation.SQLTableCleared() && len(_u.mutation.SQLTableIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SqlColumn.sql_table"`)
	}
	return nil
}

func (_u *SqlColumnUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sqlcolumn.Table, sqlcolumn.Columns, sqlgraph.NewFieldSpec(sqlcolumn.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OriginalName(); ok {
		_spec.SetField(sqlcolumn.FieldOriginalName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(sqlcolumn.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DataFormat(); ok {
		_spec.SetField(sqlcolumn.FieldDataFormat, field.TypeString, value)
	}
	if _u.mutation.DataFormatCleared() {
		_spec.ClearField(sqlcolumn.FieldDataFormat, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(sqlcolumn.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(sqlcolumn.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.AiDescription(); ok {
		_spec.SetField(sqlcolumn.FieldAiDescription, field.TypeString, value)
	}
	if _u.mutation.AiDescriptionCleared() {
		_spec.ClearField(sqlcolumn.FieldAiDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ValueDescription(); ok {
		_spec.SetField(sqlcolumn.FieldValueDescription, field.TypeString, value)
	}
	if _u.mutation.ValueDescriptionCleared() {
		_spec.ClearField(sqlcolumn.FieldValueDescription, field.TypeString)
	}
	if value, ok := _u.mutation.PrimaryKey(); ok {
		_spec.SetField(sqlcolumn.FieldPrimaryKey, field.TypeString, value)
	}
	if _u.mutation.PrimaryKeyCleared() {
		_spec.ClearField(sqlcolumn.FieldPrimaryKey, field.TypeString)
	}
	if value, ok := _u.mutation.ForeignKey(); ok {
		_spec.SetField(sqlcolumn.FieldForeignKey, field.TypeString, value)
	}
	if _u.mutation.ForeignKeyCleared() {
		_spec.ClearField(sqlcolumn.FieldForeignKey, field.TypeString)
	}
	if value, ok := _u.mutation.GeneratedComment(); ok {
		_spec.SetField(sqlcolumn.FieldGeneratedComment, field.TypeString, value)
	}
	if _u.mutation.GeneratedCommentCleared() {
		_spec.ClearField(sqlcolumn.FieldGeneratedComment, field.TypeString)
	}
	if _u.mutation.SQLTableCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sqlcolumn.SQLTableTable,
			Columns: []string{sqlcolumn.SQLTableColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sqltable.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SQLTableIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sqlcolumn.SQLTableTable,
			Columns: []string{sqlcolumn.SQLTableColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sqltable.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sqlcolumn.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SqlColumnUpdateOne is the builder for updating a single SqlColumn entity.
type SqlColumnUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SqlColumnMutation
}

// SetOriginalName sets the "original_name" field.
func (_u *SqlColumnUpdateOne) SetOriginalName(v string) *SqlColumnUpdateOne {
	_u.mutation.SetOriginalName(v)
	return _u
}

// SetNillableOriginalName sets the "original_name" field if the given value is not nil.
func (_u *SqlColumnUpdateOne) SetNillableOriginalName(v *string) *SqlColumnUpdateOne {
	if v != nil {
		_u.SetOriginalName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *SqlColumnUpdateOne) SetNormalizedName(v string) *SqlColumnUpdateOne {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *SqlColumnUpdateOne) SetNillableNormalizedName(v *string) *SqlColumnUpdateOne {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetDataFormat sets the "data_format" field.
func (_u *SqlColumnUpdateOne) SetDataFormat(v string) *SqlColumnUpdateOne {
	_u.mutation.SetDataFormat(v)
	return _u
}

// SetNillableDataFormat sets the "data_format" field if the given value is not nil.
func (_u *SqlColumnUpdateOne) SetNillableDataFormat(v *string) *SqlColumnUpdateOne {
	if v != nil {
		_u.SetDataFormat(*v)
	}
	return _u
}

// ClearDataFormat clears the value of the "data_format" field.
func (_u *SqlColumnUpdateOne) ClearDataFormat() *SqlColumnUpdateOne {
	_u.mutation.ClearDataFormat()
	return _u
}

// SetDescription sets the "description" field.
func (_u *SqlColumnUpdateOne) SetDescription(v string) *SqlColumnUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SqlColumnUpdateOne) SetNillableDescription(v *string) *SqlColumnUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SqlColumnUpdateOne) ClearDescription() *SqlColumnUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetAiDescription sets the "ai_description" field.
func (_u *SqlColumnUpdateOne) SetAiDescription(v string) *SqlColumnUpdateOne {
	_u.mutation.SetAiDescription(v)
	return _u
}

// SetNillableAiDescription sets the "ai_description" field if the given value is not nil.
func (_u *SqlColumnUpdateOne) SetNillableAiDescription(v *string) *SqlColumnUpdateOne {
	if v != nil {
		_u.SetAiDescription(*v)
	}
	return _u
}

// ClearAiDescription clears the value of the "ai_description" field.
func (_u *SqlColumnUpdateOne) ClearAiDescription() *SqlColumnUpdateOne {
	_u.mutation.ClearAiDescription()
	return _u
}

// SetValueDescription sets the "value_description" field.
func (_u *SqlColumnUpdateOne) SetValueDescription(v string) *SqlColumnUpdateOne {
	_u.mutation.SetValueDescription(v)
	return _u
}

// SetNillableValueDescription sets the "value_description" field if the given value is not nil.
func (_u *SqlColumnUpdateOne) SetNillableValueDescription(v *string) *SqlColumnUpdateOne {
	if v != nil {
		_u.SetValueDescription(*v)
	}
	return _u
}

// ClearValueDescription clears the value of the "value_description" field.
func (_u *SqlColumnUpdateOne) ClearValueDescription() *SqlColumnUpdateOne {
	_u.mutation.ClearValueDescription()
	return _u
}

// SetPrimaryKey sets the "primary_key" field.
func (_u *SqlColumnUpdateOne) SetPrimaryKey(v string) *SqlColumnUpdateOne {
	_u.mutation.SetPrimaryKey(v)
	return _u
}

// SetNillablePrimaryKey sets the "primary_key" field if the given value is not nil.
func (_u *SqlColumnUpdateOne) SetNillablePrimaryKey(v *string) *SqlColumnUpdateOne {
	if v != nil {
		_u.SetPrimaryKey(*v)
	}
	return _u
}

// ClearPrimaryKey clears the value of the "primary_key" field.
func (_u *SqlColumnUpdateOne) ClearPrimaryKey() *SqlColumnUpdateOne {
	_u.mutation.ClearPrimaryKey()
	return _u
}

// SetForeignKey sets the "foreign_key" field.
func (_u *SqlColumnUpdateOne) SetForeignKey(v string) *SqlColumnUpdateOne {
	_u.mutation.SetForeignKey(v)
	return _u
}

// SetNillableForeignKey sets the "foreign_key" field if the given value is not nil.
func (_u *SqlColumnUpdateOne) SetNillableForeignKey(v *string) *SqlColumnUpdateOne {
	if v != nil {
		_u.SetForeignKey(*v)
	}
	return _u
}

// ClearForeignKey clears the value of the "foreign_key" field.
func (_u *SqlColumnUpdateOne) ClearForeignKey() *SqlColumnUpdateOne {
	_u.mutation.ClearForeignKey()
	return _u
}

// SetGeneratedComment sets the "generated_comment" field.
func (_u *SqlColumnUpdateOne) SetGeneratedComment(v string) *SqlColumnUpdateOne {
	_u.mutation.SetGeneratedComment(v)
	return _u
}

// SetNillableGeneratedComment sets the "generated_comment" field if the given value is not nil.
func (_u *SqlColumnUpdateOne) SetNillableGeneratedComment(v *string) *SqlColumnUpdateOne {
	if v != nil {
		_u.SetGeneratedComment(*v)
	}
	return _u
}

// ClearGeneratedComment clears the value of the "generated_comment" field.
func (_u *SqlColumnUpdateOne) ClearGeneratedComment() *SqlColumnUpdateOne {
	_u.mutation.ClearGeneratedComment()
	return _u
}

// SetSQLTableID sets the "sql_table" edge to the SqlTable entity by ID.
func (_u *SqlColumnUpdateOne) SetSQLTableID(id string) *SqlColumnUpdateOne {
	_u.mutation.SetSQLTableID(id)
	return _u
}

// SetSQLTable sets the "sql_table" edge to the SqlTable entity.
func (_u *SqlColumnUpdateOne) SetSQLTable(v *SqlTable) *SqlColumnUpdateOne {
	return _u.SetSQLTableID(v.ID)
}

// Mutation returns the SqlColumnMutation object of the builder.
func (_u *SqlColumnUpdateOne) Mutation() *SqlColumnMutation {
	return _u.mutation
}

// ClearSQLTable clears the "sql_table" edge to the SqlTable entity.
func (_u *SqlColumnUpdateOne) ClearSQLTable() *SqlColumnUpdateOne {
	_u.mutation.ClearSQLTable()
	return _u
}

// Where appends a list predicates to the SqlColumnUpdate builder.
func (_u *SqlColumnUpdateOne) Where(ps ...predicate.SqlColumn) *SqlColumnUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SqlColumnUpdateOne) Select(field string, fields ...string) *SqlColumnUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SqlColumn entity.
func (_u *SqlColumnUpdateOne) Save(ctx context.Context) (*SqlColumn, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SqlColumnUpdateOne) SaveX(ctx context.Context) *SqlColumn {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SqlColumnUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SqlColumnUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SqlColumnUpdateOne) check() error {
	if _u.mutation.SQLTableCleared() && len(_u.mutation.SQLTableIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SqlColumn.sql_table"`)
	}
	return nil
}

func (_u *SqlColumnUpdateOne) sqlSave(ctx context.Context) (_node *SqlColumn, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sqlcolumn.Table, sqlcolumn.Columns, sqlgraph.NewFieldSpec(sqlcolumn.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SqlColumn.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sqlcolumn.FieldID)
		for _, f := range fields {
			if !sqlcolumn.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sqlcolumn.FieldID {
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
	if value, ok := _u.mutation.OriginalName(); ok {
		_spec.SetField(sqlcolumn.FieldOriginalName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(sqlcolumn.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DataFormat(); ok {
		_spec.SetField(sqlcolumn.FieldDataFormat, field.TypeString, value)
	}
	if _u.mutation.DataFormatCleared() {
		_spec.ClearField(sqlcolumn.FieldDataFormat, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(sqlcolumn.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(sqlcolumn.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.AiDescription(); ok {
		_spec.SetField(sqlcolumn.FieldAiDescription, field.TypeString, value)
	}
	if _u.mutation.AiDescriptionCleared() {
		_spec.ClearField(sqlcolumn.FieldAiDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ValueDescription(); ok {
		_spec.SetField(sqlcolumn.FieldValueDescription, field.TypeString, value)
	}
	if _u.mutation.ValueDescriptionCleared() {
		_spec.ClearField(sqlcolumn.FieldValueDescription, field.TypeString)
	}
	if value, ok := _u.mutation.PrimaryKey(); ok {
		_spec.SetField(sqlcolumn.FieldPrimaryKey, field.TypeString, value)
	}
	if _u.mutation.PrimaryKeyCleared() {
		_spec.ClearField(sqlcolumn.FieldPrimaryKey, field.TypeString)
	}
	if value, ok := _u.mutation.ForeignKey(); ok {
		_spec.SetField(sqlcolumn.FieldForeignKey, field.TypeString, value)
	}
	if _u.mutation.ForeignKeyCleared() {
		_spec.ClearField(sqlcolumn.FieldForeignKey, field.TypeString)
	}
	if value, ok := _u.mutation.GeneratedComment(); ok {
		_spec.SetField(sqlcolumn.FieldGeneratedComment, field.TypeString, value)
	}
	if _u.mutation.GeneratedCommentCleared() {
		_spec.ClearField(sqlcolumn.FieldGeneratedComment, field.TypeString)
	}
	if _u.mutation.SQLTableCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sqlcolumn.SQLTableTable,
			Columns: []string{sqlcolumn.SQLTableColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sqltable.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SQLTableIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sqlcolumn.SQLTableTable,
			Columns: []string{sqlcolumn.SQLTableColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sqltable.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SqlColumn{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sqlcolumn.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
