// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/thoth-ai/thoth/ent/predicate"
	"github.com/thoth-ai/thoth/ent/sqldb"
	"github.com/thoth-ai/thoth/ent/thothlog"
	"github.com/thoth-ai/thoth/ent/workspace"
)

// WorkspaceUpdate is the builder for updating Workspace entities.
type WorkspaceUpdate struct {
	config
	hooks    []Hook
	mutation *WorkspaceMutation
}

// Where appends a list predicates to the WorkspaceUpdate builder.
func (_u *WorkspaceUpdate) Where(ps ...predicate.Workspace) *WorkspaceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *WorkspaceUpdate) SetName(v string) *WorkspaceUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableName(v *string) *WorkspaceUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDefaultModel sets the "default_model" field.
func (_u *WorkspaceUpdate) SetDefaultModel(v string) *WorkspaceUpdate {
	_u.mutation.SetDefaultModel(v)
	return _u
}

// SetNillableDefaultModel sets the "default_model" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableDefaultModel(v *string) *WorkspaceUpdate {
	if v != nil {
		_u.SetDefaultModel(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *WorkspaceUpdate) SetLanguage(v string) *WorkspaceUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableLanguage(v *string) *WorkspaceUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetAgentSlots sets the "agent_slots" field.
func (_u *WorkspaceUpdate) SetAgentSlots(v map[string]string) *WorkspaceUpdate {
	_u.mutation.SetAgentSlots(v)
	return _u
}

// ClearAgentSlots clears the value of the "agent_slots" field.
func (_u *WorkspaceUpdate) ClearAgentSlots() *WorkspaceUpdate {
	_u.mutation.ClearAgentSlots()
	return _u
}

// SetLastPreprocess sets the "last_preprocess" field.
func (_u *WorkspaceUpdate) SetLastPreprocess(v time.Time) *WorkspaceUpdate {
	_u.mutation.SetLastPreprocess(v)
	return _u
}

// SetNillableLastPreprocess sets the "last_preprocess" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableLastPreprocess(v *time.Time) *WorkspaceUpdate {
	if v != nil {
		_u.SetLastPreprocess(*v)
	}
	return _u
}

// ClearLastPreprocess clears the value of the "last_preprocess" field.
func (_u *WorkspaceUpdate) ClearLastPreprocess() *WorkspaceUpdate {
	_u.mutation.ClearLastPreprocess()
	return _u
}

// SetLastEvidenceLoad sets the "last_evidence_load" field.
func (_u *WorkspaceUpdate) SetLastEvidenceLoad(v time.Time) *WorkspaceUpdate {
	_u.mutation.SetLastEvidenceLoad(v)
	return _u
}

// SetNillableLastEvidenceLoad sets the "last_evidence_load" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableLastEvidenceLoad(v *time.Time) *WorkspaceUpdate {
	if v != nil {
		_u.SetLastEvidenceLoad(*v)
	}
	return _u
}

// ClearLastEvidenceLoad clears the value of the "last_evidence_load" field.
func (_u *WorkspaceUpdate) ClearLastEvidenceLoad() *WorkspaceUpdate {
	_u.mutation.ClearLastEvidenceLoad()
	return _u
}

// SetLastSQLLoaded sets the "last_sql_loaded" field.
func (_u *WorkspaceUpdate) SetLastSQLLoaded(v time.Time) *WorkspaceUpdate {
	_u.mutation.SetLastSQLLoaded(v)
	return _u
}

// SetNillableLastSQLLoaded sets the "last_sql_loaded" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableLastSQLLoaded(v *time.Time) *WorkspaceUpdate {
	if v != nil {
		_u.SetLastSQLLoaded(*v)
	}
	return _u
}

// ClearLastSQLLoaded clears the value of the "last_sql_loaded" field.
func (_u *WorkspaceUpdate) ClearLastSQLLoaded() *WorkspaceUpdate {
	_u.mutation.ClearLastSQLLoaded()
	return _u
}

// SetUsers sets the "users" field.
func (_u *WorkspaceUpdate) SetUsers(v []string) *WorkspaceUpdate {
	_u.mutation.SetUsers(v)
	return _u
}

// AppendUsers appends value to the "users" field.
func (_u *WorkspaceUpdate) AppendUsers(v []string) *WorkspaceUpdate {
	_u.mutation.AppendUsers(v)
	return _u
}

// ClearUsers clears the value of the "users" field.
func (_u *WorkspaceUpdate) ClearUsers() *WorkspaceUpdate {
	_u.mutation.ClearUsers()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkspaceUpdate) SetUpdatedAt(v time.Time) *WorkspaceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSQLDbID sets the "sql_db" edge to the SqlDb entity by ID.
func (_u *WorkspaceUpdate) SetSQLDbID(id string) *WorkspaceUpdate {
	_u.mutation.SetSQLDbID(id)
	return _u
}

// SetNillableSQLDbID sets the "sql_db" edge to the SqlDb entity by ID if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableSQLDbID(id *string) *WorkspaceUpdate {
	if id != nil {
		_u = _u.SetSQLDbID(*id)
	}
	return _u
}

// SetSQLDb sets the "sql_db" edge to the SqlDb entity.
func (_u *WorkspaceUpdate) SetSQLDb(v *SqlDb) *WorkspaceUpdate {
	return _u.SetSQLDbID(v.ID)
}

// AddThothLogIDs adds the "thoth_logs" edge to the ThothLog entity by IDs.
func (_u *WorkspaceUpdate) AddThothLogIDs(ids ...string) *WorkspaceUpdate {
	_u.mutation.AddThothLogIDs(ids...)
	return _u
}

// AddThothLogs adds the "thoth_logs" edges to the ThothLog entity.
func (_u *WorkspaceUpdate) AddThothLogs(v ...*ThothLog) *WorkspaceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddThothLogIDs(ids...)
}

// Mutation returns the WorkspaceMutation object of the builder.
func (_u *WorkspaceUpdate) Mutation() *WorkspaceMutation {
	return _u.mutation
}

// ClearSQLDb clears the "sql_db" edge to the SqlDb entity.
func (_u *WorkspaceUpdate) ClearSQLDb() *WorkspaceUpdate {
	_u.mutation.ClearSQLDb()
	return _u
}

// ClearThothLogs clears all "thoth_logs" edges to the ThothLog entity.
func (_u *WorkspaceUpdate) ClearThothLogs() *WorkspaceUpdate {
	_u.mutation.ClearThothLogs()
	return _u
}

// RemoveThothLogIDs removes the "thoth_logs" edge to ThothLog entities by IDs.
func (_u *WorkspaceUpdate) RemoveThothLogIDs(ids ...string) *WorkspaceUpdate {
	_u.mutation.RemoveThothLogIDs(ids...)
	return _u
}

// RemoveThothLogs removes "thoth_logs" edges to ThothLog entities.
func (_u *WorkspaceUpdate) RemoveThothLogs(v ...*ThothLog) *WorkspaceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveThothLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkspaceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkspaceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkspaceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkspaceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkspaceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workspace.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *WorkspaceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(workspace.Table, workspace.Columns, sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workspace.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultModel(); ok {
		_spec.SetField(workspace.FieldDefaultModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(workspace.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentSlots(); ok {
		_spec.SetField(workspace.FieldAgentSlots, field.TypeJSON, value)
	}
	if _u.mutation.AgentSlotsCleared() {
		_spec.ClearField(workspace.FieldAgentSlots, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastPreprocess(); ok {
		_spec.SetField(workspace.FieldLastPreprocess, field.TypeTime, value)
	}
	if _u.mutation.LastPreprocessCleared() {
		_spec.ClearField(workspace.FieldLastPreprocess, field.TypeTime)
	}
	if value, ok := _u.mutation.LastEvidenceLoad(); ok {
		_spec.SetField(workspace.FieldLastEvidenceLoad, field.TypeTime, value)
	}
	if _u.mutation.LastEvidenceLoadCleared() {
		_spec.ClearField(workspace.FieldLastEvidenceLoad, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSQLLoaded(); ok {
		_spec.SetField(workspace.FieldLastSQLLoaded, field.TypeTime, value)
	}
	if _u.mutation.LastSQLLoadedCleared() {
		_spec.ClearField(workspace.FieldLastSQLLoaded, field.TypeTime)
	}
	if value, ok := _u.mutation.Users(); ok {
		_spec.SetField(workspace.FieldUsers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUsers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workspace.FieldUsers, value)
		})
	}
	if _u.mutation.UsersCleared() {
		_spec.ClearField(workspace.FieldUsers, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workspace.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SQLDbCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SQLDbIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ThothLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedThothLogsIDs(); len(nodes) > 0 && !_u.mutation.ThothLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ThothLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workspace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkspaceUpdateOne is the builder for updating a single Workspace entity.
type WorkspaceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkspaceMutation
}

// SetName sets the "name" field.
func (_u *WorkspaceUpdateOne) SetName(v string) *WorkspaceUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableName(v *string) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDefaultModel sets the "default_model" field.
func (_u *WorkspaceUpdateOne) SetDefaultModel(v string) *WorkspaceUpdateOne {
	_u.mutation.SetDefaultModel(v)
	return _u
}

// SetNillableDefaultModel sets the "default_model" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableDefaultModel(v *string) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetDefaultModel(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *WorkspaceUpdateOne) SetLanguage(v string) *WorkspaceUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableLanguage(v *string) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetAgentSlots sets the "agent_slots" field.
func (_u *WorkspaceUpdateOne) SetAgentSlots(v map[string]string) *WorkspaceUpdateOne {
	_u.mutation.SetAgentSlots(v)
	return _u
}

// ClearAgentSlots clears the value of the "agent_slots" field.
func (_u *WorkspaceUpdateOne) ClearAgentSlots() *WorkspaceUpdateOne {
	_u.mutation.ClearAgentSlots()
	return _u
}

// SetLastPreprocess sets the "last_preprocess" field.
func (_u *WorkspaceUpdateOne) SetLastPreprocess(v time.Time) *WorkspaceUpdateOne {
	_u.mutation.SetLastPreprocess(v)
	return _u
}

// SetNillableLastPreprocess sets the "last_preprocess" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableLastPreprocess(v *time.Time) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetLastPreprocess(*v)
	}
	return _u
}

// ClearLastPreprocess clears the value of the "last_preprocess" field.
func (_u *WorkspaceUpdateOne) ClearLastPreprocess() *WorkspaceUpdateOne {
	_u.mutation.ClearLastPreprocess()
	return _u
}

// SetLastEvidenceLoad sets the "last_evidence_load" field.
func (_u *WorkspaceUpdateOne) SetLastEvidenceLoad(v time.Time) *WorkspaceUpdateOne {
	_u.mutation.SetLastEvidenceLoad(v)
	return _u
}

// SetNillableLastEvidenceLoad sets the "last_evidence_load" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableLastEvidenceLoad(v *time.Time) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetLastEvidenceLoad(*v)
	}
	return _u
}

// ClearLastEvidenceLoad clears the value of the "last_evidence_load" field.
func (_u *WorkspaceUpdateOne) ClearLastEvidenceLoad() *WorkspaceUpdateOne {
	_u.mutation.ClearLastEvidenceLoad()
	return _u
}

// SetLastSQLLoaded sets the "last_sql_loaded" field.
func (_u *WorkspaceUpdateOne) SetLastSQLLoaded(v time.Time) *WorkspaceUpdateOne {
	_u.mutation.SetLastSQLLoaded(v)
	return _u
}

// SetNillableLastSQLLoaded sets the "last_sql_loaded" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableLastSQLLoaded(v *time.Time) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetLastSQLLoaded(*v)
	}
	return _u
}

// ClearLastSQLLoaded clears the value of the "last_sql_loaded" field.
func (_u *WorkspaceUpdateOne) ClearLastSQLLoaded() *WorkspaceUpdateOne {
	_u.mutation.ClearLastSQLLoaded()
	return _u
}

// SetUsers sets the "users" field.
func (_u *WorkspaceUpdateOne) SetUsers(v []string) *WorkspaceUpdateOne {
	_u.mutation.SetUsers(v)
	return _u
}

// AppendUsers appends value to the "users" field.
func (_u *WorkspaceUpdateOne) AppendUsers(v []string) *WorkspaceUpdateOne {
	_u.mutation.AppendUsers(v)
	return _u
}

// ClearUsers clears the value of the "users" field.
func (_u *WorkspaceUpdateOne) ClearUsers() *WorkspaceUpdateOne {
	_u.mutation.ClearUsers()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkspaceUpdateOne) SetUpdatedAt(v time.Time) *WorkspaceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSQLDbID sets the "sql_db" edge to the SqlDb entity by ID.
func (_u *WorkspaceUpdateOne) SetSQLDbID(id string) *WorkspaceUpdateOne {
	_u.mutation.SetSQLDbID(id)
	return _u
}

// SetNillableSQLDbID sets the "sql_db" edge to the SqlDb entity by ID if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableSQLDbID(id *string) *WorkspaceUpdateOne {
	if id != nil {
		_u = _u.SetSQLDbID(*id)
	}
	return _u
}

// SetSQLDb sets the "sql_db" edge to the SqlDb entity.
func (_u *WorkspaceUpdateOne) SetSQLDb(v *SqlDb) *WorkspaceUpdateOne {
	return _u.SetSQLDbID(v.ID)
}

// AddThothLogIDs adds the "thoth_logs" edge to the ThothLog entity by IDs.
func (_u *WorkspaceUpdateOne) AddThothLogIDs(ids ...string) *WorkspaceUpdateOne {
	_u.mutation.AddThothLogIDs(ids...)
	return _u
}

// AddThothLogs adds the "thoth_logs" edges to the ThothLog entity.
func (_u *WorkspaceUpdateOne) AddThothLogs(v ...*ThothLog) *WorkspaceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddThothLogIDs(ids...)
}

// Mutation returns the WorkspaceMutation object of the builder.
func (_u *WorkspaceUpdateOne) Mutation() *WorkspaceMutation {
	return _u.mutation
}

// ClearSQLDb clears the "sql_db" edge to the SqlDb entity.
func (_u *WorkspaceUpdateOne) ClearSQLDb() *WorkspaceUpdateOne {
	_u.mutation.ClearSQLDb()
	return _u
}

// ClearThothLogs clears all "thoth_logs" edges to the ThothLog entity.
func (_u *WorkspaceUpdateOne) ClearThothLogs() *WorkspaceUpdateOne {
	_u.mutation.ClearThothLogs()
	return _u
}

// RemoveThothLogIDs removes the "thoth_logs" edge to ThothLog entities by IDs.
func (_u *WorkspaceUpdateOne) RemoveThothLogIDs(ids ...string) *WorkspaceUpdateOne {
	_u.mutation.RemoveThothLogIDs(ids...)
	return _u
}

// RemoveThothLogs removes "thoth_logs" edges to ThothLog entities.
func (_u *WorkspaceUpdateOne) RemoveThothLogs(v ...*ThothLog) *WorkspaceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveThothLogIDs(ids...)
}

// Where appends a list predicates to the WorkspaceUpdate builder.
func (_u *WorkspaceUpdateOne) Where(ps ...predicate.Workspace) *WorkspaceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkspaceUpdateOne) Select(field string, fields ...string) *WorkspaceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Workspace entity.
func (_u *WorkspaceUpdateOne) Save(ctx context.Context) (*Workspace, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkspaceUpdateOne) SaveX(ctx context.Context) *Workspace {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkspaceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkspaceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkspaceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workspace.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *WorkspaceUpdateOne) sqlSave(ctx context.Context) (_node *Workspace, err error) {
	_spec := sqlgraph.NewUpdateSpec(workspace.Table, workspace.Columns, sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Workspace.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workspace.FieldID)
		for _, f := range fields {
			if !workspace.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workspace.FieldID {
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
		_spec.SetField(workspace.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultModel(); ok {
		_spec.SetField(workspace.FieldDefaultModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(workspace.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentSlots(); ok {
		_spec.SetField(workspace.FieldAgentSlots, field.TypeJSON, value)
	}
	if _u.mutation.AgentSlotsCleared() {
		_spec.ClearField(workspace.FieldAgentSlots, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastPreprocess(); ok {
		_spec.SetField(workspace.FieldLastPreprocess, field.TypeTime, value)
	}
	if _u.mutation.LastPreprocessCleared() {
		_spec.ClearField(workspace.FieldLastPreprocess, field.TypeTime)
	}
	if value, ok := _u.mutation.LastEvidenceLoad(); ok {
		_spec.SetField(workspace.FieldLastEvidenceLoad, field.TypeTime, value)
	}
	if _u.mutation.LastEvidenceLoadCleared() {
		_spec.ClearField(workspace.FieldLastEvidenceLoad, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSQLLoaded(); ok {
		_spec.SetField(workspace.FieldLastSQLLoaded, field.TypeTime, value)
	}
	if _u.mutation.LastSQLLoadedCleared() {
		_spec.ClearField(workspace.FieldLastSQLLoaded, field.TypeTime)
	}
	if value, ok := _u.mutation.Users(); ok {
		_spec.SetField(workspace.FieldUsers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUsers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workspace.FieldUsers, value)
		})
	}
	if _u.mutation.UsersCleared() {
		_spec.ClearField(workspace.FieldUsers, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workspace.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SQLDbCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SQLDbIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ThothLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedThothLogsIDs(); len(nodes) > 0 && !_u.mutation.ThothLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ThothLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Workspace{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workspace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
