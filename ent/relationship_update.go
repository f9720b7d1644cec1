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
	"github.com/thoth-ai/thoth/ent/relationship"
	"github.com/thoth-ai/thoth/ent/sqldb"
)

// RelationshipUpdate is the builder for updating Relationship entities.
type RelationshipUpdate struct {
	config
	hooks    []Hook
	mutation *RelationshipMutation
}

// Where appends a list predicates to the RelationshipUpdate builder.
func (_u *RelationshipUpdate) Where(ps ...predicate.Relationship) *RelationshipUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceTable sets the "source_table" field.
func (_u *RelationshipUpdate) SetSourceTable(v string) *RelationshipUpdate {
	_u.mutation.SetSourceTable(v)
	return _u
}

// SetNillableSourceTable sets the "source_table" field if the given value is not nil.
func (_u *RelationshipUpdate) SetNillableSourceTable(v *string) *RelationshipUpdate {
	if v != nil {
		_u.SetSourceTable(*v)
	}
	return _u
}

// SetSourceColumn sets the "source_column" field.
func (_u *RelationshipUpdate) SetSourceColumn(v string) *RelationshipUpdate {
	_u.mutation.SetSourceColumn(v)
	return _u
}

// SetNillableSourceColumn sets the "source_column" field if the given value is not nil.
func (_u *RelationshipUpdate) SetNillableSourceColumn(v *string) *RelationshipUpdate {
	if v != nil {
		_u.SetSourceColumn(*v)
	}
	return _u
}

// SetTargetTable sets the "target_table" field.
func (_u *RelationshipUpdate) SetTargetTable(v string) *RelationshipUpdate {
	_u.mutation.SetTargetTable(v)
	return _u
}

// SetNillableTargetTable sets the "target_table" field if the given value is not nil.
func (_u *RelationshipUpdate) SetNillableTargetTable(v *string) *RelationshipUpdate {
	if v != nil {
		_u.SetTargetTable(*v)
	}
	return _u
}

// SetTargetColumn sets the "target_column" field.
func (_u *RelationshipUpdate) SetTargetColumn(v string) *RelationshipUpdate {
	_u.mutation.SetTargetColumn(v)
	return _u
}

// SetNillableTargetColumn sets the "target_column" field if the given value is not nil.
func (_u *RelationshipUpdate) SetNillableTargetColumn(v *string) *RelationshipUpdate {
	if v != nil {
		_u.SetTargetColumn(*v)
	}
	return _u
}

// SetSQLDbID sets the "sql_db" edge to the SqlDb entity by ID.
func (_u *RelationshipUpdate) SetSQLDbID(id string) *RelationshipUpdate {
	_u.mutation.SetSQLDbID(id)
	return _u
}

// SetSQLDb sets the "sql_db" edge to the SqlDb entity.
func (_u *RelationshipUpdate) SetSQLDb(v *SqlDb) *RelationshipUpdate {
	return _u.SetSQLDbID(v.ID)
}

// Mutation returns the RelationshipMutation object of the builder.
func (_u *RelationshipUpdate) Mutation() *RelationshipMutation {
	return _u.mutation
}

// ClearSQLDb clears the "sql_db" edge to the SqlDb entity.
func (_u *RelationshipUpdate) ClearSQLDb() *RelationshipUpdate {
	_u.mutation.ClearSQLDb()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RelationshipUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RelationshipUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RelationshipUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RelationshipUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RelationshipUpdate) check() error {
	if _u.mutation.SQLDbCleared() && len(_u.mutation.SQLDbIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Relationship.sql_db"`)
	}
	return nil
}

func (_u *RelationshipUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(relationship.Table, relationship.Columns, sqlgraph.NewFieldSpec(relationship.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceTable(); ok {
		_spec.SetField(relationship.FieldSourceTable, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceColumn(); ok {
		_spec.SetField(relationship.FieldSourceColumn, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetTable(); ok {
		_spec.SetField(relationship.FieldTargetTable, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetColumn(); ok {
		_spec.SetField(relationship.FieldTargetColumn, field.TypeString, value)
	}
	if _u.mutation.SQLDbCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SQLDbIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{relationship.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RelationshipUpdateOne is the builder for updating a single Relationship entity.
type RelationshipUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RelationshipMutation
}

// SetSourceTable sets the "source_table" field.
func (_u *RelationshipUpdateOne) SetSourceTable(v string) *RelationshipUpdateOne {
	_u.mutation.SetSourceTable(v)
	return _u
}

// SetNillableSourceTable sets the "source_table" field if the given value is not nil.
func (_u *RelationshipUpdateOne) SetNillableSourceTable(v *string) *RelationshipUpdateOne {
	if v != nil {
		_u.SetSourceTable(*v)
	}
	return _u
}

// SetSourceColumn sets the "source_column" field.
func (_u *RelationshipUpdateOne) SetSourceColumn(v string) *RelationshipUpdateOne {
	_u.mutation.SetSourceColumn(v)
	return _u
}

// SetNillableSourceColumn sets the "source_column" field if the given value is not nil.
func (_u *RelationshipUpdateOne) SetNillableSourceColumn(v *string) *RelationshipUpdateOne {
	if v != nil {
		_u.SetSourceColumn(*v)
	}
	return _u
}

// SetTargetTable sets the "target_table" field.
func (_u *RelationshipUpdateOne) SetTargetTable(v string) *RelationshipUpdateOne {
	_u.mutation.SetTargetTable(v)
	return _u
}

// SetNillableTargetTable sets the "target_table" field if the given value is not nil.
func (_u *RelationshipUpdateOne) SetNillableTargetTable(v *string) *RelationshipUpdateOne {
	if v != nil {
		_u.SetTargetTable(*v)
	}
	return _u
}

// SetTargetColumn sets the "target_column" field.
func (_u *RelationshipUpdateOne) SetTargetColumn(v string) *RelationshipUpdateOne {
	_u.mutation.SetTargetColumn(v)
	return _u
}

// SetNillableTargetColumn sets the "target_column" field if the given value is not nil.
func (_u *RelationshipUpdateOne) SetNillableTargetColumn(v *string) *RelationshipUpdateOne {
	if v != nil {
		_u.SetTargetColumn(*v)
	}
	return _u
}

// SetSQLDbID sets the "sql_db" edge to the SqlDb entity by ID.
func (_u *RelationshipUpdateOne) SetSQLDbID(id string) *RelationshipUpdateOne {
	_u.mutation.SetSQLDbID(id)
	return _u
}

// SetSQLDb sets the "sql_db" edge to the SqlDb entity.
func (_u *RelationshipUpdateOne) SetSQLDb(v *SqlDb) *RelationshipUpdateOne {
	return _u.SetSQLDbID(v.ID)
}

// Mutation returns the RelationshipMutation object of the builder.
func (_u *RelationshipUpdateOne) Mutation() *RelationshipMutation {
	return _u.mutation
}

// ClearSQLDb clears the "sql_db" edge to the SqlDb entity.
func (_u *RelationshipUpdateOne) ClearSQLDb() *RelationshipUpdateOne {
	_u.mutation.ClearSQLDb()
	return _u
}

// Where appends a list predicates to the RelationshipUpdate builder.
func (_u *RelationshipUpdateOne) Where(ps ...predicate.Relationship) *RelationshipUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RelationshipUpdateOne) Select(field string, fields ...string) *RelationshipUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Relationship entity.
func (_u *RelationshipUpdateOne) Save(ctx context.Context) (*Relationship, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RelationshipUpdateOne) SaveX(ctx context.Context) *Relationship {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RelationshipUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RelationshipUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RelationshipUpdateOne) check() error {
	if _u.mutation.SQLDbCleared() && len(_u.mutation.SQLDbIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Relationship.sql_db"`)
	}
	return nil
}

func (_u *RelationshipUpdateOne) sqlSave(ctx context.Context) (_node *Relationship, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(relationship.Table, relationship.Columns, sqlgraph.NewFieldSpec(relationship.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Relationship.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, relationship.FieldID)
		for _, f := range fields {
			if !relationship.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != relationship.FieldID {
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
	if value, ok := _u.mutation.SourceTable(); ok {
		_spec.SetField(relationship.FieldSourceTable, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceColumn(); ok {
		_spec.SetField(relationship.FieldSourceColumn, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetTable(); ok {
		_spec.SetField(relationship.FieldTargetTable, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetColumn(); ok {
		_spec.SetField(relationship.FieldTargetColumn, field.TypeString, value)
	}
	if _u.mutation.SQLDbCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SQLDbIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Relationship{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{relationship.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
