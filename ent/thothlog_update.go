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
	"github.com/thoth-ai/thoth/ent/thothlog"
	"github.com/thoth-ai/thoth/ent/workspace"
)

// ThothLogUpdate is the builder for updating ThothLog entities.
type ThothLogUpdate struct {
	config
	hooks    []Hook
	mutation *ThothLogMutation
}

// Where appends a list predicates to the ThothLogUpdate builder.
func (_u *ThothLogUpdate) Where(ps ...predicate.ThothLog) *ThothLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace" edge to the Workspace entity by ID.
func (_u *ThothLogUpdate) SetWorkspaceID(id string) *ThothLogUpdate {
	_u.mutation.SetWorkspaceID(id)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *ThothLogUpdate) SetWorkspace(v *Workspace) *ThothLogUpdate {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the ThothLogMutation object of the builder.
func (_u *ThothLogUpdate) Mutation() *ThothLogMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *ThothLogUpdate) ClearWorkspace() *ThothLogUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ThothLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThothLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ThothLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThothLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ThothLogUpdate) check() error {
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ThothLog.workspace"`)
	}
	return nil
}

func (_u *ThothLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(thothlog.Table, thothlog.Columns, sqlgraph.NewFieldSpec(thothlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(thothlog.FieldUsername, field.TypeString)
	}
	if _u.mutation.AgentNameCleared() {
		_spec.ClearField(thothlog.FieldAgentName, field.TypeString)
	}
	if _u.mutation.EvaluationCaseCleared() {
		_spec.ClearField(thothlog.FieldEvaluationCase, field.TypeString)
	}
	if _u.mutation.PassRatesCleared() {
		_spec.ClearField(thothlog.FieldPassRates, field.TypeJSON)
	}
	if _u.mutation.TestsUsedCleared() {
		_spec.ClearField(thothlog.FieldTestsUsed, field.TypeJSON)
	}
	if _u.mutation.EvidenceUsedCleared() {
		_spec.ClearField(thothlog.FieldEvidenceUsed, field.TypeJSON)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   thothlog.WorkspaceTable,
			Columns: []string{thothlog.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   thothlog.WorkspaceTable,
			Columns: []string{thothlog.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{thothlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ThothLogUpdateOne is the builder for updating a single ThothLog entity.
type ThothLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ThothLogMutation
}

// SetWorkspaceID sets the "workspace" edge to the Workspace entity by ID.
func (_u *ThothLogUpdateOne) SetWorkspaceID(id string) *ThothLogUpdateOne {
	_u.mutation.SetWorkspaceID(id)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *ThothLogUpdateOne) SetWorkspace(v *Workspace) *ThothLogUpdateOne {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the ThothLogMutation object of the builder.
func (_u *ThothLogUpdateOne) Mutation() *ThothLogMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *ThothLogUpdateOne) ClearWorkspace() *ThothLogUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// Where appends a list predicates to the ThothLogUpdate builder.
func (_u *ThothLogUpdateOne) Where(ps ...predicate.ThothLog) *ThothLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ThothLogUpdateOne) Select(field string, fields ...string) *ThothLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ThothLog entity.
func (_u *ThothLogUpdateOne) Save(ctx context.Context) (*ThothLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThothLogUpdateOne) SaveX(ctx context.Context) *ThothLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ThothLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThothLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ThothLogUpdateOne) check() error {
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ThothLog.workspace"`)
	}
	return nil
}

func (_u *ThothLogUpdateOne) sqlSave(ctx context.Context) (_node *ThothLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(thothlog.Table, thothlog.Columns, sqlgraph.NewFieldSpec(thothlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ThothLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, thothlog.FieldID)
		for _, f := range fields {
			if !thothlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != thothlog.FieldID {
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
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(thothlog.FieldUsername, field.TypeString)
	}
	if _u.mutation.AgentNameCleared() {
		_spec.ClearField(thothlog.FieldAgentName, field.TypeString)
	}
	if _u.mutation.EvaluationCaseCleared() {
		_spec.ClearField(thothlog.FieldEvaluationCase, field.TypeString)
	}
	if _u.mutation.PassRatesCleared() {
		_spec.ClearField(thothlog.FieldPassRates, field.TypeJSON)
	}
	if _u.mutation.TestsUsedCleared() {
		_spec.ClearField(thothlog.FieldTestsUsed, field.TypeJSON)
	}
	if _u.mutation.EvidenceUsedCleared() {
		_spec.ClearField(thothlog.FieldEvidenceUsed, field.TypeJSON)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   thothlog.WorkspaceTable,
			Columns: []string{thothlog.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   thothlog.WorkspaceTable,
			Columns: []string{thothlog.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ThothLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{thothlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
