// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thoth-ai/thoth/ent/relationship"
	"github.com/thoth-ai/thoth/ent/sqldb"
)

// RelationshipCreate is the builder for creating a Relationship entity.
type RelationshipCreate struct {
	config
	mutation *RelationshipMutation
	hooks    []Hook
}

// SetSourceTable sets the "source_table" field.
func (_c *RelationshipCreate) SetSourceTable(v string) *RelationshipCreate {
	_c.mutation.SetSourceTable(v)
	return _c
}

// SetSourceColumn sets the "source_column" field.
func (_c *RelationshipCreate) SetSourceColumn(v string) *RelationshipCreate {
	_c.mutation.SetSourceColumn(v)
	return _c
}

// SetTargetTable sets the "target_table" field.
func (_c *RelationshipCreate) SetTargetTable(v string) *RelationshipCreate {
	_c.mutation.SetTargetTable(v)
	return _c
}

// SetTargetColumn sets the "target_column" field.
func (_c *RelationshipCreate) SetTargetColumn(v string) *RelationshipCreate {
	_c.mutation.SetTargetColumn(v)
	return _c
}

// SetID sets the "id" field.
func (_c *RelationshipCreate) SetID(v string) *RelationshipCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSQLDbID sets the "sql_db" edge to the SqlDb entity by ID.
func (_c *RelationshipCreate) SetSQLDbID(id string) *RelationshipCreate {
	_c.mutation.SetSQLDbID(id)
	return _c
}

// SetSQLDb sets the "sql_db" edge to the SqlDb entity.
func (_c *RelationshipCreate) SetSQLDb(v *SqlDb) *RelationshipCreate {
	return _c.SetSQLDbID(v.ID)
}

// Mutation returns the RelationshipMutation object of the builder.
func (_c *RelationshipCreate) Mutation() *RelationshipMutation {
	return _c.mutation
}

// Save creates the Relationship in the database.
func (_c *RelationshipCreate) Save(ctx context.Context) (*Relationship, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RelationshipCreate) SaveX(ctx context.Context) *Relationship {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RelationshipCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RelationshipCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RelationshipCreate) check() error {
	if _, ok := _c.mutation.SourceTable(); !ok {
		return &ValidationError{Name: "source_table", err: errors.New(`ent: missing required field "Relationship.source_table"`)}
	}
	if _, ok := _c.mutation.SourceColumn(); !ok {
		return &ValidationError{Name: "source_column", err: errors.New(`ent: missing required field "Relationship.source_column"`)}
	}
	if _, ok := _c.mutation.TargetTable(); !ok {
		return &ValidationError{Name: "target_table", err: errors.New(`ent: missing required field "Relationship.target_table"`)}
	}
	if _, ok := _c.mutation.TargetColumn(); !ok {
		return &ValidationError{Name: "target_column", err: errors.New(`ent: missing required field "Relationship.target_column"`)}
	}
	if len(_c.mutation.SQLDbIDs()) == 0 {
		return &ValidationError{Name: "sql_db", err: errors.New(`ent: missing required edge "Relationship.sql_db"`)}
	}
	return nil
}

func (_c *RelationshipCreate) sqlSave(ctx context.Context) (*Relationship, error) {
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
			return nil, fmt.Errorf("unexpected Relationship.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RelationshipCreate) createSpec() (*Relationship, *sqlgraph.CreateSpec) {
	var (
		_node = &Relationship{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(relationship.Table, sqlgraph.NewFieldSpec(relationship.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SourceTable(); ok {
		_spec.SetField(relationship.FieldSourceTable, field.TypeString, value)
		_node.SourceTable = value
	}
	if value, ok := _c.mutation.SourceColumn(); ok {
		_spec.SetField(relationship.FieldSourceColumn, field.TypeString, value)
		_node.SourceColumn = value
	}
	if value, ok := _c.mutation.TargetTable(); ok {
		_spec.SetField(relationship.FieldTargetTable, field.TypeString, value)
		_node.TargetTable = value
	}
	if value, ok := _c.mutation.TargetColumn(); ok {
		_spec.SetField(relationship.FieldTargetColumn, field.TypeString, value)
		_node.TargetColumn = value
	}
	if nodes := _c.mutation.SQLDbIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   relationship.SQLDbTable,
			Columns: []string{relationship.SQLDbColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sqldb.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.sql_db_relationships = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RelationshipCreateBulk is the builder for creating many Relationship entities in bulk.
type RelationshipCreateBulk struct {
	config
	err      error
	builders []*RelationshipCreate
}

// Save creates the Relationship entities in the database.
func (_c *RelationshipCreateBulk) Save(ctx context.Context) ([]*Relationship, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Relationship, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RelationshipMutation)
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
func (_c *RelationshipCreateBulk) SaveX(ctx context.Context) []*Relationship {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RelationshipCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RelationshipCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
