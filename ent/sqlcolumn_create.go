// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thoth-ai/thoth/ent/sqlcolumn"
	"github.com/thoth-ai/thoth/ent/sqltable"
)

// SqlColumnCreate is the builder for creating a SqlColumn entity.
type SqlColumnCreate struct {
	config
	mutation *SqlColumnMutation
	hooks    []Hook
}

// SetOriginalName sets the "original_name" field.
func (_c *SqlColumnCreate) SetOriginalName(v string) *SqlColumnCreate {
	_c.mutation.SetOriginalName(v)
	return _c
}

// SetNormalizedName sets the "normalized_name" field.
func (_c *SqlColumnCreate) SetNormalizedName(v string) *SqlColumnCreate {
	_c.mutation.SetNormalizedName(v)
	return _c
}

// SetDataFormat sets the "data_format" field.
func (_c *SqlColumnCreate) SetDataFormat(v string) *SqlColumnCreate {
	_c.mutation.SetDataFormat(v)
	return _c
}

// SetNillableDataFormat sets the "data_format" field if the given value is not nil.
func (_c *SqlColumnCreate) SetNillableDataFormat(v *string) *SqlColumnCreate {
	if v != nil {
		_c.SetDataFormat(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *SqlColumnCreate) SetDescription(v string) *SqlColumnCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SqlColumnCreate) SetNillableDescription(v *string) *SqlColumnCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetAiDescription sets the "ai_description" field.
func (_c *SqlColumnCreate) SetAiDescription(v string) *SqlColumnCreate {
	_c.mutation.SetAiDescription(v)
	return _c
}

// SetNillableAiDescription sets the "ai_description" field if the given value is not nil.
func (_c *SqlColumnCreate) SetNillableAiDescription(v *string) *SqlColumnCreate {
	if v != nil {
		_c.SetAiDescription(*v)
	}
	return _c
}

// SetValueDescription sets the "value_description" field.
func (_c *SqlColumnCreate) SetValueDescription(v string) *SqlColumnCreate {
	_c.mutation.SetValueDescription(v)
	return _c
}

// SetNillableValueDescription sets the "value_description" field if the given value is not nil.
func (_c *SqlColumnCreate) SetNillableValueDescription(v *string) *SqlColumnCreate {
	if v != nil {
		_c.SetValueDescription(*v)
	}
	return _c
}

// SetPrimaryKey sets the "primary_key" field.
func (_c *SqlColumnCreate) SetPrimaryKey(v string) *SqlColumnCreate {
	_c.mutation.SetPrimaryKey(v)
	return _c
}

// SetNillablePrimaryKey sets the "primary_key" field if the given value is not nil.
func (_c *SqlColumnCreate) SetNillablePrimaryKey(v *string) *SqlColumnCreate {
	if v != nil {
		_c.SetPrimaryKey(*v)
	}
	return _c
}

// SetForeignKey sets the "foreign_key" field.
func (_c *SqlColumnCreate) SetForeignKey(v string) *SqlColumnCreate {
	_c.mutation.SetForeignKey(v)
	return _c
}

// SetNillableForeignKey sets the "foreign_key" field if the given value is not nil.
func (_c *SqlColumnCreate) SetNillableForeignKey(v *string) *SqlColumnCreate {
	if v != nil {
		_c.SetForeignKey(*v)
	}
	return _c
}

// SetGeneratedComment sets the "generated_comment" field.
func (_c *SqlColumnCreate) SetGeneratedComment(v string) *SqlColumnCreate {
	_c.mutation.SetGeneratedComment(v)
	return _c
}

// SetNillableGeneratedComment sets the "generated_comment" field if the given value is not nil.
func (_c *SqlColumnCreate) SetNillableGeneratedComment(v *string) *SqlColumnCreate {
	if v != nil {
		_c.SetGeneratedComment(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SqlColumnCreate) SetID(v string) *SqlColumnCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSQLTableID sets the "sql_table" edge to the SqlTable entity by ID.
func (_c *SqlColumnCreate) SetSQLTableID(id string) *SqlColumnCreate {
	_c.mutation.SetSQLTableID(id)
	return _c
}

// SetSQLTable sets the "sql_table" edge to the SqlTable entity.
func (_c *SqlColumnCreate) SetSQLTable(v *SqlTable) *SqlColumnCreate {
	return _c.SetSQLTableID(v.ID)
}

// Mutation returns the SqlColumnMutation object of the builder.
func (_c *SqlColumnCreate) Mutation() *SqlColumnMutation {
	return _c.mutation
}

// Save creates the SqlColumn in the database.
func (_c *SqlColumnCreate) Save(ctx context.Context) (*SqlColumn, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SqlColumnCreate) SaveX(ctx context.Context) *SqlColumn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SqlColumnCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SqlColumnCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SqlColumnCreate) check() error {
	if _, ok := _c.mutation.OriginalName(); !ok {
		return &ValidationError{Name: "original_name", err: errors.New(`ent: missing required field "SqlColumn.original_name"`)}
	}
	if _, ok := _c.mutation.NormalizedName(); !ok {
		return &ValidationError{Name: "normalized_name", err: errors.New(`ent: missing required field "SqlColumn.normalized_name"`)}
	}
	if len(_c.mutation.SQLTableIDs()) == 0 {
		return &ValidationError{Name: "sql_table", err: errors.New(`ent: missing required edge "SqlColumn.sql_table"`)}
	}
	return nil
}

func (_c *SqlColumnCreate) sqlSave(ctx context.Context) (*SqlColumn, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SqlColumn.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SqlColumnCreate) createSpec() (*SqlColumn, *sqlgraph.CreateSpec) {
	var (
		_node = &SqlColumn{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sqlcolumn.Table, sqlgraph.NewFieldSpec(sqlcolumn.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OriginalName(); ok {
		_spec.SetField(sqlcolumn.FieldOriginalName, field.TypeString, value)
		_node.OriginalName = value
	}
	if value, ok := _c.mutation.NormalizedName(); ok {
		_spec.SetField(sqlcolumn.FieldNormalizedName, field.TypeString, value)
		_node.NormalizedName = value
	}
	if value, ok := _c.mutation.DataFormat(); ok {
		_spec.SetField(sqlcolumn.FieldDataFormat, field.TypeString, value)
		_node.DataFormat = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(sqlcolumn.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.AiDescription(); ok {
		_spec.SetField(sqlcolumn.FieldAiDescription, field.TypeString, value)
		_node.AiDescription = value
	}
	if value, ok := _c.mutation.ValueDescription(); ok {
		_spec.SetField(sqlcolumn.FieldValueDescription, field.TypeString, value)
		_node.ValueDescription = value
	}
	if value, ok := _c.mutation.PrimaryKey(); ok {
		_spec.SetField(sqlcolumn.FieldPrimaryKey, field.TypeString, value)
		_node.PrimaryKey = value
	}
	if value, ok := _c.mutation.ForeignKey(); ok {
		_spec.SetField(sqlcolumn.FieldForeignKey, field.TypeString, value)
		_node.ForeignKey = value
	}
	if value, ok := _c.mutation.GeneratedComment(); ok {
		_spec.SetField(sqlcolumn.FieldGeneratedComment, field.TypeString, value)
		_node.GeneratedComment = value
	}
	if nodes := _c.mutation.SQLTableIDs(); len(nodes) > 0 {
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
		_node.sql_table_columns = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SqlColumnCreateBulk is the builder for creating many SqlColumn entities in bulk.
type SqlColumnCreateBulk struct {
	config
	err      error
	builders []*SqlColumnCreate
}

// Save creates the SqlColumn entities in the database.
func (_c *SqlColumnCreateBulk) Save(ctx context.Context) ([]*SqlColumn, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SqlColumn, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SqlColumnMutation)
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
func (_c *SqlColumnCreateBulk) SaveX(ctx context.Context) []*SqlColumn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SqlColumnCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SqlColumnCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
