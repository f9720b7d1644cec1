// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thoth-ai/thoth/ent/sqlcolumn"
	"github.com/thoth-ai/thoth/ent/sqldb"
	"github.com/thoth-ai/thoth/ent/sqltable"
)

// SqlTableCreate is the builder for creating a SqlTable entity.
type SqlTableCreate struct {
	config
	mutation *SqlTableMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *SqlTableCreate) SetName(v string) *SqlTableCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SqlTableCreate) SetDescription(v string) *SqlTableCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SqlTableCreate) SetNillableDescription(v *string) *SqlTableCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetAiDescription sets the "ai_description" field.
func (_c *SqlTableCreate) SetAiDescription(v string) *SqlTableCreate {
	_c.mutation.SetAiDescription(v)
	return _c
}

// SetNillableAiDescription sets the "ai_description" field if the given value is not nil.
func (_c *SqlTableCreate) SetNillableAiDescription(v *string) *SqlTableCreate {
	if v != nil {
		_c.SetAiDescription(*v)
	}
	return _c
}

// SetGeneratedComment sets the "generated_comment" field.
func (_c *SqlTableCreate) SetGeneratedComment(v string) *SqlTableCreate {
	_c.mutation.SetGeneratedComment(v)
	return _c
}

// SetNillableGeneratedComment sets the "generated_comment" field if the given value is not nil.
func (_c *SqlTableCreate) SetNillableGeneratedComment(v *string) *SqlTableCreate {
	if v != nil {
		_c.SetGeneratedComment(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SqlTableCreate) SetID(v string) *SqlTableCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSQLDbID sets the "sql_db" edge to the SqlDb entity by ID.
func (_c *SqlTableCreate) SetSQLDbID(id string) *SqlTableCreate {
	_c.mutation.SetSQLDbID(id)
	return _c
}

// SetSQLDb sets the "sql_db" edge to the SqlDb entity.
func (_c *SqlTableCreate) SetSQLDb(v *SqlDb) *SqlTableCreate {
	return _c.SetSQLDbID(v.ID)
}

// AddColumnIDs adds the "columns" edge to the SqlColumn entity by IDs.
func (_c *SqlTableCreate) AddColumnIDs(ids ...string) *SqlTableCreate {
	_c.mutation.AddColumnIDs(ids...)
	return _c
}

// AddColumns adds the "columns" edges to the SqlColumn entity.
func (_c *SqlTableCreate) AddColumns(v ...*SqlColumn) *SqlTableCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddColumnIDs(ids...)
}

// Mutation returns the SqlTableMutation object of the builder.
func (_c *SqlTableCreate) Mutation() *SqlTableMutation {
	return _c.mutation
}

// Save creates the SqlTable in the database.
func (_c *SqlTableCreate) Save(ctx context.Context) (*SqlTable, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SqlTableCreate) SaveX(ctx context.Context) *SqlTable {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SqlTableCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SqlTableCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SqlTableCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SqlTable.name"`)}
	}
	if len(_c.mutation.SQLDbIDs()) == 0 {
		return &ValidationError{Name: "sql_db", err: errors.New(`ent: missing required edge "SqlTable.sql_db"`)}
	}
	return nil
}

func (_c *SqlTableCreate) sqlSave(ctx context.Context) (*SqlTable, error) {
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
			return nil, fmt.Errorf("unexpected SqlTable.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SqlTableCreate) createSpec() (*SqlTable, *sqlgraph.CreateSpec) {
	var (
		_node = &SqlTable{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sqltable.Table, sqlgraph.NewFieldSpec(sqltable.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(sqltable.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(sqltable.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.AiDescription(); ok {
		_spec.SetField(sqltable.FieldAiDescription, field.TypeString, value)
		_node.AiDescription = value
	}
	if value, ok := _c.mutation.GeneratedComment(); ok {
		_spec.SetField(sqltable.FieldGeneratedComment, field.TypeString, value)
		_node.GeneratedComment = value
	}
	if nodes := _c.mutation.SQLDbIDs(); len(nodes) > 0 {
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
		_node.sql_db_tables = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ColumnsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SqlTableCreateBulk is the builder for creating many SqlTable entities in bulk.
type SqlTableCreateBulk struct {
	config
	err      error
	builders []*SqlTableCreate
}

// Save creates the SqlTable entities in the database.
func (_c *SqlTableCreateBulk) Save(ctx context.Context) ([]*SqlTable, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SqlTable, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SqlTableMutation)
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
func (_c *SqlTableCreateBulk) SaveX(ctx context.Context) []*SqlTable {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SqlTableCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SqlTableCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
