// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thoth-ai/thoth/ent/thothlog"
	"github.com/thoth-ai/thoth/ent/workspace"
)

// ThothLogCreate is the builder for creating a ThothLog entity.
type ThothLogCreate struct {
	config
	mutation *ThothLogMutation
	hooks    []Hook
}

// SetQuestion sets the "question" field.
func (_c *ThothLogCreate) SetQuestion(v string) *ThothLogCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetSQL sets the "sql" field.
func (_c *ThothLogCreate) SetSQL(v string) *ThothLogCreate {
	_c.mutation.SetSQL(v)
	return _c
}

// SetUsername sets the "username" field.
func (_c *ThothLogCreate) SetUsername(v string) *ThothLogCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_c *ThothLogCreate) SetNillableUsername(v *string) *ThothLogCreate {
	if v != nil {
		_c.SetUsername(*v)
	}
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *ThothLogCreate) SetAgentName(v string) *ThothLogCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_c *ThothLogCreate) SetNillableAgentName(v *string) *ThothLogCreate {
	if v != nil {
		_c.SetAgentName(*v)
	}
	return _c
}

// SetSQLStatus sets the "sql_status" field.
func (_c *ThothLogCreate) SetSQLStatus(v thothlog.SQLStatus) *ThothLogCreate {
	_c.mutation.SetSQLStatus(v)
	return _c
}

// SetEvaluationCase sets the "evaluation_case" field.
func (_c *ThothLogCreate) SetEvaluationCase(v string) *ThothLogCreate {
	_c.mutation.SetEvaluationCase(v)
	return _c
}

// SetNillableEvaluationCase sets the "evaluation_case" field if the given value is not nil.
func (_c *ThothLogCreate) SetNillableEvaluationCase(v *string) *ThothLogCreate {
	if v != nil {
		_c.SetEvaluationCase(*v)
	}
	return _c
}

// SetPassRate sets the "pass_rate" field.
func (_c *ThothLogCreate) SetPassRate(v float64) *ThothLogCreate {
	_c.mutation.SetPassRate(v)
	return _c
}

// SetNillablePassRate sets the "pass_rate" field if the given value is not nil.
func (_c *ThothLogCreate) SetNillablePassRate(v *float64) *ThothLogCreate {
	if v != nil {
		_c.SetPassRate(*v)
	}
	return _c
}

// SetPassRates sets the "pass_rates" field.
func (_c *ThothLogCreate) SetPassRates(v []float64) *ThothLogCreate {
	_c.mutation.SetPassRates(v)
	return _c
}

// SetTestsUsed sets the "tests_used" field.
func (_c *ThothLogCreate) SetTestsUsed(v []string) *ThothLogCreate {
	_c.mutation.SetTestsUsed(v)
	return _c
}

// SetEvidenceUsed sets the "evidence_used" field.
func (_c *ThothLogCreate) SetEvidenceUsed(v []string) *ThothLogCreate {
	_c.mutation.SetEvidenceUsed(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ThothLogCreate) SetStartedAt(v time.Time) *ThothLogCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ThothLogCreate) SetDurationMs(v int64) *ThothLogCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ThothLogCreate) SetNillableDurationMs(v *int64) *ThothLogCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ThothLogCreate) SetCreatedAt(v time.Time) *ThothLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ThothLogCreate) SetNillableCreatedAt(v *time.Time) *ThothLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ThothLogCreate) SetID(v string) *ThothLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkspaceID sets the "workspace" edge to the Workspace entity by ID.
func (_c *ThothLogCreate) SetWorkspaceID(id string) *ThothLogCreate {
	_c.mutation.SetWorkspaceID(id)
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *ThothLogCreate) SetWorkspace(v *Workspace) *ThothLogCreate {
	return _c.SetWorkspaceID(v.ID)
}

// Mutation returns the ThothLogMutation object of the builder.
func (_c *ThothLogCreate) Mutation() *ThothLogMutation {
	return _c.mutation
}

// Save creates the ThothLog in the database.
func (_c *ThothLogCreate) Save(ctx context.Context) (*ThothLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ThothLogCreate) SaveX(ctx context.Context) *ThothLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThothLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThothLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ThothLogCreate) defaults() {
	if _, ok := _c.mutation.PassRate(); !ok {
		v := thothlog.DefaultPassRate
		_c.mutation.SetPassRate(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := thothlog.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := thothlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ThothLogCreate) check() error {
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "ThothLog.question"`)}
	}
	if _, ok := _c.mutation.SQL(); !ok {
		return &ValidationError{Name: "sql", err: errors.New(`ent: missing required field "ThothLog.sql"`)}
	}
	if _, ok := _c.mutation.SQLStatus(); !ok {
		return &ValidationError{Name: "sql_status", err: errors.New(`ent: missing required field "ThothLog.sql_status"`)}
	}
	if v, ok := _c.mutation.SQLStatus(); ok {
		if err := thothlog.SQLStatusValidator(v); err != nil {
			return &ValidationError{Name: "sql_status", err: fmt.Errorf(`ent: validator failed for field "ThothLog.sql_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PassRate(); !ok {
		return &ValidationError{Name: "pass_rate", err: errors.New(`ent: missing required field "ThothLog.pass_rate"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ThothLog.started_at"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "ThothLog.duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ThothLog.created_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "ThothLog.workspace"`)}
	}
	return nil
}

func (_c *ThothLogCreate) sqlSave(ctx context.Context) (*ThothLog, error) {
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
			return nil, fmt.Errorf("unexpected ThothLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ThothLogCreate) createSpec() (*ThothLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ThothLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(thothlog.Table, sqlgraph.NewFieldSpec(thothlog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(thothlog.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.SQL(); ok {
		_spec.SetField(thothlog.FieldSQL, field.TypeString, value)
		_node.SQL = value
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(thothlog.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(thothlog.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.SQLStatus(); ok {
		_spec.SetField(thothlog.FieldSQLStatus, field.TypeEnum, value)
		_node.SQLStatus = value
	}
	if value, ok := _c.mutation.EvaluationCase(); ok {
		_spec.SetField(thothlog.FieldEvaluationCase, field.TypeString, value)
		_node.EvaluationCase = value
	}
	if value, ok := _c.mutation.PassRate(); ok {
		_spec.SetField(thothlog.FieldPassRate, field.TypeFloat64, value)
		_node.PassRate = value
	}
	if value, ok := _c.mutation.PassRates(); ok {
		_spec.SetField(thothlog.FieldPassRates, field.TypeJSON, value)
		_node.PassRates = value
	}
	if value, ok := _c.mutation.TestsUsed(); ok {
		_spec.SetField(thothlog.FieldTestsUsed, field.TypeJSON, value)
		_node.TestsUsed = value
	}
	if value, ok := _c.mutation.EvidenceUsed(); ok {
		_spec.SetField(thothlog.FieldEvidenceUsed, field.TypeJSON, value)
		_node.EvidenceUsed = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(thothlog.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(thothlog.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(thothlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_node.workspace_thoth_logs = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ThothLogCreateBulk is the builder for creating many ThothLog entities in bulk.
type ThothLogCreateBulk struct {
	config
	err      error
	builders []*ThothLogCreate
}

// Save creates the ThothLog entities in the database.
func (_c *ThothLogCreateBulk) Save(ctx context.Context) ([]*ThothLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ThothLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ThothLogMutation)
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
func (_c *ThothLogCreateBulk) SaveX(ctx context.Context) []*ThothLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThothLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThothLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
