// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thoth-ai/thoth/ent/sqldb"
	"github.com/thoth-ai/thoth/ent/thothlog"
	"github.com/thoth-ai/thoth/ent/workspace"
)

// WorkspaceCreate is the builder for creating a Workspace entity.
type WorkspaceCreate struct {
	config
	mutation *WorkspaceMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *WorkspaceCreate) SetName(v string) *WorkspaceCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDefaultModel sets the "default_model" field.
func (_c *WorkspaceCreate) SetDefaultModel(v string) *WorkspaceCreate {
	_c.mutation.SetDefaultModel(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *WorkspaceCreate) SetLanguage(v string) *WorkspaceCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableLanguage(v *string) *WorkspaceCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetAgentSlots sets the "agent_slots" field.
func (_c *WorkspaceCreate) SetAgentSlots(v map[string]string) *WorkspaceCreate {
	_c.mutation.SetAgentSlots(v)
	return _c
}

// SetLastPreprocess sets the "last_preprocess" field.
func (_c *WorkspaceCreate) SetLastPreprocess(v time.Time) *WorkspaceCreate {
	_c.mutation.SetLastPreprocess(v)
	return _c
}

// SetNillableLastPreprocess sets the "last_preprocess" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableLastPreprocess(v *time.Time) *WorkspaceCreate {
	if v != nil {
		_c.SetLastPreprocess(*v)
	}
	return _c
}

// SetLastEvidenceLoad sets the "last_evidence_load" field.
func (_c *WorkspaceCreate) SetLastEvidenceLoad(v time.Time) *WorkspaceCreate {
	_c.mutation.SetLastEvidenceLoad(v)
	return _c
}

// SetNillableLastEvidenceLoad sets the "last_evidence_load" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableLastEvidenceLoad(v *time.Time) *WorkspaceCreate {
	if v != nil {
		_c.SetLastEvidenceLoad(*v)
	}
	return _c
}

// SetLastSQLLoaded sets the "last_sql_loaded" field.
func (_c *WorkspaceCreate) SetLastSQLLoaded(v time.Time) *WorkspaceCreate {
	_c.mutation.SetLastSQLLoaded(v)
	return _c
}

// SetNillableLastSQLLoaded sets the "last_sql_loaded" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableLastSQLLoaded(v *time.Time) *WorkspaceCreate {
	if v != nil {
		_c.SetLastSQLLoaded(*v)
	}
	return _c
}

// SetUsers sets the "users" field.
func (_c *WorkspaceCreate) SetUsers(v []string) *WorkspaceCreate {
	_c.mutation.SetUsers(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkspaceCreate) SetCreatedAt(v time.Time) *WorkspaceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableCreatedAt(v *time.Time) *WorkspaceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkspaceCreate) SetUpdatedAt(v time.Time) *WorkspaceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableUpdatedAt(v *time.Time) *WorkspaceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkspaceCreate) SetID(v string) *WorkspaceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSQLDbID sets the "sql_db" edge to the SqlDb entity by ID.
func (_c *WorkspaceCreate) SetSQLDbID(id string) *WorkspaceCreate {
	_c.mutation.SetSQLDbID(id)
	return _c
}

// SetNillableSQLDbID sets the "sql_db" edge to the SqlDb entity by ID if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableSQLDbID(id *string) *WorkspaceCreate {
	if id != nil {
		_c = _c.SetSQLDbID(*id)
	}
	return _c
}

// SetSQLDb sets the "sql_db" edge to the SqlDb entity.
func (_c *WorkspaceCreate) SetSQLDb(v *SqlDb) *WorkspaceCreate {
	return _c.SetSQLDbID(v.ID)
}

// AddThothLogIDs adds the "thoth_logs" edge to the ThothLog entity by IDs.
func (_c *WorkspaceCreate) AddThothLogIDs(ids ...string) *WorkspaceCreate {
	_c.mutation.AddThothLogIDs(ids...)
	return _c
}

// AddThothLogs adds the "thoth_logs" edges to the ThothLog entity.
func (_c *WorkspaceCreate) AddThothLogs(v ...*ThothLog) *WorkspaceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddThothLogIDs(ids...)
}

// Mutation returns the WorkspaceMutation object of the builder.
func (_c *WorkspaceCreate) Mutation() *WorkspaceMutation {
	return _c.mutation
}

// Save creates the Workspace in the database.
func (_c *WorkspaceCreate) Save(ctx context.Context) (*Workspace, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkspaceCreate) SaveX(ctx context.Context) *Workspace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkspaceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkspaceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkspaceCreate) defaults() {
	if _, ok := _c.mutation.Language(); !ok {
		v := workspace.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workspace.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workspace.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkspaceCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Workspace.name"`)}
	}
	if _, ok := _c.mutation.DefaultModel(); !ok {
		return &ValidationError{Name: "default_model", err: errors.New(`ent: missing required field "Workspace.default_model"`)}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "Workspace.language"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Workspace.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Workspace.updated_at"`)}
	}
	return nil
}

func (_c *WorkspaceCreate) sqlSave(ctx context.Context) (*Workspace, error) {
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
			return nil, fmt.Errorf("unexpected Workspace.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkspaceCreate) createSpec() (*Workspace, *sqlgraph.CreateSpec) {
	var (
		_node = &Workspace{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workspace.Table, sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(workspace.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.DefaultModel(); ok {
		_spec.SetField(workspace.FieldDefaultModel, field.TypeString, value)
		_node.DefaultModel = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(workspace.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.AgentSlots(); ok {
		_spec.SetField(workspace.FieldAgentSlots, field.TypeJSON, value)
		_node.AgentSlots = value
	}
	if value, ok := _c.mutation.LastPreprocess(); ok {
		_spec.SetField(workspace.FieldLastPreprocess, field.TypeTime, value)
		_node.LastPreprocess = &value
	}
	if value, ok := _c.mutation.LastEvidenceLoad(); ok {
		_spec.SetField(workspace.FieldLastEvidenceLoad, field.TypeTime, value)
		_node.LastEvidenceLoad = &value
	}
	if value, ok := _c.mutation.LastSQLLoaded(); ok {
		_spec.SetField(workspace.FieldLastSQLLoaded, field.TypeTime, value)
		_node.LastSQLLoaded = &value
	}
	if value, ok := _c.mutation.Users(); ok {
		_spec.SetField(workspace.FieldUsers, field.TypeJSON, value)
		_node.Users = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workspace.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workspace.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SQLDbIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   workspace.SQLDbTable,
			Columns: []string{workspace.SQLDbColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sqldb.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ThothLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.ThothLogsTable,
			Columns: []string{workspace.ThothLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thothlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkspaceCreateBulk is the builder for creating many Workspace entities in bulk.
type WorkspaceCreateBulk struct {
	config
	err      error
	builders []*WorkspaceCreate
}

// Save creates the Workspace entities in the database.
func (_c *WorkspaceCreateBulk) Save(ctx context.Context) ([]*Workspace, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Workspace, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkspaceMutation)
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
func (_c *WorkspaceCreateBulk) SaveX(ctx context.Context) []*Workspace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkspaceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkspaceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
