// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thoth-ai/thoth/ent/relationship"
	"github.com/thoth-ai/thoth/ent/sqldb"
	"github.com/thoth-ai/thoth/ent/sqltable"
	"github.com/thoth-ai/thoth/ent/vectordb"
	"github.com/thoth-ai/thoth/ent/workspace"
)

// SqlDbCreate is the builder for creating a SqlDb entity.
type SqlDbCreate struct {
	config
	mutation *SqlDbMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *SqlDbCreate) SetName(v string) *SqlDbCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDialect sets the "dialect" field.
func (_c *SqlDbCreate) SetDialect(v sqldb.Dialect) *SqlDbCreate {
	_c.mutation.SetDialect(v)
	return _c
}

// SetHost sets the "host" field.
func (_c *SqlDbCreate) SetHost(v string) *SqlDbCreate {
	_c.mutation.SetHost(v)
	return _c
}

// SetNillableHost sets the "host" field if the given value is not nil.
func (_c *SqlDbCreate) SetNillableHost(v *string) *SqlDbCreate {
	if v != nil {
		_c.SetHost(*v)
	}
	return _c
}

// SetPort sets the "port" field.
func (_c *SqlDbCreate) SetPort(v int) *SqlDbCreate {
	_c.mutation.SetPort(v)
	return _c
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_c *SqlDbCreate) SetNillablePort(v *int) *SqlDbCreate {
	if v != nil {
		_c.SetPort(*v)
	}
	return _c
}

// SetDatabase sets the "database" field.
func (_c *SqlDbCreate) SetDatabase(v string) *SqlDbCreate {
	_c.mutation.SetDatabase(v)
	return _c
}

// SetNillableDatabase sets the "database" field if the given value is not nil.
func (_c *SqlDbCreate) SetNillableDatabase(v *string) *SqlDbCreate {
	if v != nil {
		_c.SetDatabase(*v)
	}
	return _c
}

// SetUsername sets the "username" field.
func (_c *SqlDbCreate) SetUsername(v string) *SqlDbCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_c *SqlDbCreate) SetNillableUsername(v *string) *SqlDbCreate {
	if v != nil {
		_c.SetUsername(*v)
	}
	return _c
}

// SetPassword sets the "password" field.
func (_c *SqlDbCreate) SetPassword(v string) *SqlDbCreate {
	_c.mutation.SetPassword(v)
	return _c
}

// SetNillablePassword sets the "password" field if the given value is not nil.
func (_c *SqlDbCreate) SetNillablePassword(v *string) *SqlDbCreate {
	if v != nil {
		_c.SetPassword(*v)
	}
	return _c
}

// SetDbSchema sets the "db_schema" field.
func (_c *SqlDbCreate) SetDbSchema(v string) *SqlDbCreate {
	_c.mutation.SetDbSchema(v)
	return _c
}

// SetNillableDbSchema sets the "db_schema" field if the given value is not nil.
func (_c *SqlDbCreate) SetNillableDbSchema(v *string) *SqlDbCreate {
	if v != nil {
		_c.SetDbSchema(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SqlDbCreate) SetCreatedAt(v time.Time) *SqlDbCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SqlDbCreate) SetNillableCreatedAt(v *time.Time) *SqlDbCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDbElementsStatus sets the "db_elements_status" field.
func (_c *SqlDbCreate) SetDbElementsStatus(v sqldb.DbElementsStatus) *SqlDbCreate {
	_c.mutation.SetDbElementsStatus(v)
	return _c
}

// SetNillableDbElementsStatus sets the "db_elements_status" field if the given value is not nil.
func (_c *SqlDbCreate) SetNillableDbElementsStatus(v *sqldb.DbElementsStatus) *SqlDbCreate {
	if v != nil {
		_c.SetDbElementsStatus(*v)
	}
	return _c
}

// SetDbElementsTaskID sets the "db_elements_task_id" field.
func (_c *SqlDbCreate) SetDbElementsTaskID(v string) *SqlDbCreate {
	_c.mutation.SetDbElementsTaskID(v)
	return _c
}

// SetNillableDbElementsTaskID sets the "db_elements_task_id" field if the given value is not nil.
func (_c *SqlDbCreate) SetNillableDbElementsTaskID(v *string) *SqlDbCreate {
	if v != nil {
		_c.SetDbElementsTaskID(*v)
	}
	return _c
}

// SetDbElementsLog sets the "db_elements_log" field.
func (_c *SqlDbCreate) SetDbElementsLog(v string) *SqlDbCreate {
	_c.mutation.SetDbElementsLog(v)
	return _c
}

// SetNillableDbElementsLog sets the "db_elements_log" field if the given value is not nil.
func (_c *SqlDbCreate) SetNillableDbElementsLog(v *string) *SqlDbCreate {
	if v != nil {
		_c.SetDbElementsLog(*v)
	}
	return _c
}

// SetDbElementsStartTime sets the "db_elements_start_time" field.
func (_c *SqlDbCreate) SetDbElementsStartTime(v time.Time) *SqlDbCreate {
	_c.mutation.SetDbElementsStartTime(v)
	return _c
}

// SetNillableDbElementsStartTime sets the "db_elements_start_time" field if the given value is not nil.
func (_c *SqlDbCreate) SetNillableDbElementsStartTime(v *time.Time) *SqlDbCreate {
	if v != nil {
		_c.SetDbElementsStartTime(*v)
	}
	return _c
}

// SetDbElementsEndTime sets the "db_elements_end_time" field.
func (_c *SqlDbCreate) SetDbElementsEndTime(v time.Time) *SqlDbCreate {
	_c.mutation.SetDbElementsEndTime(v)
	return _c
}

// SetNillableDbElementsEndTime sets the "db_elements_end_time" field if the given value is not nil.
func (_c *SqlDbCreate) SetNillableDbElementsEndTime(v *time.Time) *SqlDbCreate {
	if v != nil {
		_c.SetDbElementsEndTime(*v)
	}
	return _c
}

// SetTableCommentStatus sets the "table_comment_status" field.
func (_c *SqlDbCreate) SetTableCommentStatus(v sqldb.TableCommentStatus) *SqlDbCreate {
	_c.mutation.SetTableCommentStatus(v)
	return _c
}

// SetNillableTableCommentStatus sets the "table_comment_status" field if the given value is not nil.
func (_c *SqlDbCreate) SetNillableTableCommentStatus(v *sqldb.TableCommentStatus) *SqlDbCreate {
	if v != nil {
		_c.SetTableCommentStatus(*v)
	}
	return _c
}

// SetTableCommentTaskID sets the "table_comment_task_id" field.
func (_c *SqlDbCreate) SetTableCommentTaskID(v string) *SqlDbCreate {
	_c.mutation.SetTableCommentTaskID(v)
	return _c
}

// SetNillableTableCommentTaskID sets the "table_comment_task_id" field if the given value is not nil.
func (_c *SqlDbCreate) SetNillableTableCommentTaskID(v *string) *SqlDbCreate {
	if v != nil {
		_c.SetTableCommentTaskID(*v)
	}
	return _c
}

// SetTableCommentLog sets the "table_comment_log" field.
func (_c *SqlDbCreate) SetTableCommentLog(v string) *SqlDbCreate {
	_c.mutation.SetTableCommentLog(v)
	return _c
}

// SetNillableTableCommentLog sets the "table_comment_log" field if the given value is not nil.
func (_c *SqlDbCreate) SetNillableTableCommentLog(v *string) *SqlDbCreate {
	if v != nil {
		_c.SetTableCommentLog(*v)
	}
	return _c
}

// SetTableCommentStartTime sets the "table_comment_start_time" field.
func (_c *SqlDbCreate) SetTableCommentStartTime(v time.Time) *SqlDbCreate {
	_c.mutation.SetTableCommentStartTime(v)
	return _c
}

// SetNillableTableCommentStartTime sets the "table_comment_start_time" field if the given value is not nil.
func (_c *SqlDbCreate) SetNillableTableCommentStartTime(v *time.Time) *SqlDbCreate {
	if v != nil {
		_c.SetTableCommentStartTime(*v)
	}
	return _c
}

// SetTableCommentEndTime sets the "table_comment_end_time" field.
func (_c *SqlDbCreate) SetTableCommentEndTime(v time.Time) *SqlDbCreate {
	_c.mutation.SetTableCommentEndTime(v)
	return _c
}

// SetNillableTableCommentEndTime sets the "table_comment_end_time" field if the given value is not nil.
func (_c *SqlDbCreate) SetNillableTableCommentEndTime(v *time.Time) *SqlDbCreate {
	if v != nil {
		_c.SetTableCommentEndTime(*v)
	}
	return _c
}

// SetColumnCommentStatus sets the "column_comment_status" field.
func (_c *SqlDbCreate) SetColumnCommentStatus(v sqldb.ColumnCommentStatus) *SqlDbCreate {
	_c.mutation.SetColumnCommentStatus(v)
	return _c
}

// SetNillableColumnCommentStatus sets the "column_comment_status" field if the given value is not nil.
func (_c *SqlDbCreate) SetNillableColumnCommentStatus(v *sqldb.ColumnCommentStatus) *SqlDbCreate {
	if v != nil {
		_c.SetColumnCommentStatus(*v)
	}
	return _c
}

// SetColumnCommentTaskID sets the "column_comment_task_id" field.
func (_c *SqlDbCreate) SetColumnCommentTaskID(v string) *SqlDbCreate {
	_c.mutation.SetColumnCommentTaskID(v)
	return _c
}

// SetNillableColumnCommentTaskID sets the "column_comment_task_id" field if the given value is not nil.
func (_c *SqlDbCreate) SetNillableColumnCommentTaskID(v *string) *SqlDbCreate {
	if v != nil {
		_c.SetColumnCommentTaskID(*v)
	}
	return _c
}

// SetColumnCommentLog sets the "column_comment_log" field.
func (_c *SqlDbCreate) SetColumnCommentLog(v string) *SqlDbCreate {
	_c.mutation.SetColumnCommentLog(v)
	return _c
}

// SetNillableColumnCommentLog sets the "column_comment_log" field if the given value is not nil.
func (_c *SqlDbCreate) SetNillableColumnCommentLog(v *string) *SqlDbCreate {
	if v != nil {
		_c.SetColumnCommentLog(*v)
	}
	return _c
}

// SetColumnCommentStartTime sets the "column_comment_start_time" field.
func (_c *SqlDbCreate) SetColumnCommentStartTime(v time.Time) *SqlDbCreate {
	_c.mutation.SetColumnCommentStartTime(v)
	return _c
}

// SetNillableColumnCommentStartTime sets the "column_comment_start_time" field if the given value is not nil.
func (_c *SqlDbCreate) SetNillableColumnCommentStartTime(v *time.Time) *SqlDbCreate {
	if v != nil {
		_c.SetColumnCommentStartTime(*v)
	}
	return _c
}

// SetColumnCommentEndTime sets the "column_comment_end_time" field.
func (_c *SqlDbCreate) SetColumnCommentEndTime(v time.Time) *SqlDbCreate {
	_c.mutation.SetColumnCommentEndTime(v)
	return _c
}

// SetNillableColumnCommentEndTime sets the "column_comment_end_time" field if the given value is not nil.
func (_c *SqlDbCreate) SetNillableColumnCommentEndTime(v *time.Time) *SqlDbCreate {
	if v != nil {
		_c.SetColumnCommentEndTime(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SqlDbCreate) SetID(v string) *SqlDbCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkspaceID sets the "workspace" edge to the Workspace entity by ID.
func (_c *SqlDbCreate) SetWorkspaceID(id string) *SqlDbCreate {
	_c.mutation.SetWorkspaceID(id)
	return _c
}

// SetNillableWorkspaceID sets the "workspace" edge to the Workspace entity by ID if the given value is not nil.
func (_c *SqlDbCreate) SetNillableWorkspaceID(id *string) *SqlDbCreate {
	if id != nil {
		_c = _c.SetWorkspaceID(*id)
	}
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *SqlDbCreate) SetWorkspace(v *Workspace) *SqlDbCreate {
	return _c.SetWorkspaceID(v.ID)
}

// SetVectorDbID sets the "vector_db" edge to the VectorDb entity by ID.
func (_c *SqlDbCreate) SetVectorDbID(id string) *SqlDbCreate {
	_c.mutation.SetVectorDbID(id)
	return _c
}

// SetNillableVectorDbID sets the "vector_db" edge to the VectorDb entity by ID if the given value is not nil.
func (_c *SqlDbCreate) SetNillableVectorDbID(id *string) *SqlDbCreate {
	if id != nil {
		_c = _c.SetVectorDbID(*id)
	}
	return _c
}

// SetVectorDb sets the "vector_db" edge to the VectorDb entity.
func (_c *SqlDbCreate) SetVectorDb(v *VectorDb) *SqlDbCreate {
	return _c.SetVectorDbID(v.ID)
}

// AddTableIDs adds the "tables" edge to the SqlTable entity by IDs.
func (_c *SqlDbCreate) AddTableIDs(ids ...string) *SqlDbCreate {
	_c.mutation.AddTableIDs(ids...)
	return _c
}

// AddTables adds the "tables" edges to the SqlTable entity.
func (_c *SqlDbCreate) AddTables(v ...*SqlTable) *SqlDbCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTableIDs(ids...)
}

// AddRelationshipIDs adds the "relationships" edge to the Relationship entity by IDs.
func (_c *SqlDbCreate) AddRelationshipIDs(ids ...string) *SqlDbCreate {
	_c.mutation.AddRelationshipIDs(ids...)
	return _c
}

// AddRelationships adds the "relationships" edges to the Relationship entity.
func (_c *SqlDbCreate) AddRelationships(v ...*Relationship) *SqlDbCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRelationshipIDs(ids...)
}

// Mutation returns the SqlDbMutation object of the builder.
func (_c *SqlDbCreate) Mutation() *SqlDbMutation {
	return _c.mutation
}

// Save creates the SqlDb in the database.
func (_c *SqlDbCreate) Save(ctx context.Context) (*SqlDb, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SqlDbCreate) SaveX(ctx context.Context) *SqlDb {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SqlDbCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SqlDbCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SqlDbCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sqldb.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.DbElementsStatus(); !ok {
		v := sqldb.DefaultDbElementsStatus
		_c.mutation.SetDbElementsStatus(v)
	}
	if _, ok := _c.mutation.TableCommentStatus(); !ok {
		v := sqldb.DefaultTableCommentStatus
		_c.mutation.SetTableCommentStatus(v)
	}
	if _, ok := _c.mutation.ColumnCommentStatus(); !ok {
		v := sqldb.DefaultColumnCommentStatus
		_c.mutation.SetColumnCommentStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SqlDbCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SqlDb.name"`)}
	}
	if _, ok := _c.mutation.Dialect(); !ok {
		return &ValidationError{Name: "dialect", err: errors.New(`ent: missing required field "SqlDb.dialect"`)}
	}
	if v, ok := _c.mutation.Dialect(); ok {
		if err := sqldb.DialectValidator(v); err != nil {
			return &ValidationError{Name: "dialect", err: fmt.Errorf(`ent: validator failed for field "SqlDb.dialect": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SqlDb.created_at"`)}
	}
	if _, ok := _c.mutation.DbElementsStatus(); !ok {
		return &ValidationError{Name: "db_elements_status", err: errors.New(`ent: missing required field "SqlDb.db_elements_status"`)}
	}
	if v, ok := _c.mutation.DbElementsStatus(); ok {
		if err := sqldb.DbElementsStatusValidator(v); err != nil {
			return &ValidationError{Name: "db_elements_status", err: fmt.Errorf(`ent: validator failed for field "SqlDb.db_elements_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TableCommentStatus(); !ok {
		return &ValidationError{Name: "table_comment_status", err: errors.New(`ent: missing required field "SqlDb.table_comment_status"`)}
	}
	if v, ok := _c.mutation.TableCommentStatus(); ok {
		if err := sqldb.TableCommentStatusValidator(v); err != nil {
			return &ValidationError{Name: "table_comment_status", err: fmt.Errorf(`ent: validator failed for field "SqlDb.table_comment_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ColumnCommentStatus(); !ok {
		return &ValidationError{Name: "column_comment_status", err: errors.New(`ent: missing required field "SqlDb.column_comment_status"`)}
	}
	if v, ok := _c.mutation.ColumnCommentStatus(); ok {
		if err := sqldb.ColumnCommentStatusValidator(v); err != nil {
			return &ValidationError{Name: "column_comment_status", err: fmt.Errorf(`ent: validator failed for field "SqlDb.column_comment_status": %w`, err)}
		}
	}
	return nil
}

func (_c *SqlDbCreate) sqlSave(ctx context.Context) (*SqlDb, error) {
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
			return nil, fmt.Errorf("unexpected SqlDb.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SqlDbCreate) createSpec() (*SqlDb, *sqlgraph.CreateSpec) {
	var (
		_node = &SqlDb{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sqldb.Table, sqlgraph.NewFieldSpec(sqldb.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(sqldb.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Dialect(); ok {
		_spec.SetField(sqldb.FieldDialect, field.TypeEnum, value)
		_node.Dialect = value
	}
	if value, ok := _c.mutation.Host(); ok {
		_spec.SetField(sqldb.FieldHost, field.TypeString, value)
		_node.Host = value
	}
	if value, ok := _c.mutation.Port(); ok {
		_spec.SetField(sqldb.FieldPort, field.TypeInt, value)
		_node.Port = value
	}
	if value, ok := _c.mutation.Database(); ok {
		_spec.SetField(sqldb.FieldDatabase, field.TypeString, value)
		_node.Database = value
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(sqldb.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.Password(); ok {
		_spec.SetField(sqldb.FieldPassword, field.TypeString, value)
		_node.Password = value
	}
	if value, ok := _c.mutation.DbSchema(); ok {
		_spec.SetField(sqldb.FieldDbSchema, field.TypeString, value)
		_node.DbSchema = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sqldb.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DbElementsStatus(); ok {
		_spec.SetField(sqldb.FieldDbElementsStatus, field.TypeEnum, value)
		_node.DbElementsStatus = value
	}
	if value, ok := _c.mutation.DbElementsTaskID(); ok {
		_spec.SetField(sqldb.FieldDbElementsTaskID, field.TypeString, value)
		_node.DbElementsTaskID = value
	}
	if value, ok := _c.mutation.DbElementsLog(); ok {
		_spec.SetField(sqldb.FieldDbElementsLog, field.TypeString, value)
		_node.DbElementsLog = value
	}
	if value, ok := _c.mutation.DbElementsStartTime(); ok {
		_spec.SetField(sqldb.FieldDbElementsStartTime, field.TypeTime, value)
		_node.DbElementsStartTime = &value
	}
	if value, ok := _c.mutation.DbElementsEndTime(); ok {
		_spec.SetField(sqldb.FieldDbElementsEndTime, field.TypeTime, value)
		_node.DbElementsEndTime = &value
	}
	if value, ok := _c.mutation.TableCommentStatus(); ok {
		_spec.SetField(sqldb.FieldTableCommentStatus, field.TypeEnum, value)
		_node.TableCommentStatus = value
	}
	if value, ok := _c.mutation.TableCommentTaskID(); ok {
		_spec.SetField(sqldb.FieldTableCommentTaskID, field.TypeString, value)
		_node.TableCommentTaskID = value
	}
	if value, ok := _c.mutation.TableCommentLog(); ok {
		_spec.SetField(sqldb.FieldTableCommentLog, field.TypeString, value)
		_node.TableCommentLog = value
	}
	if value, ok := _c.mutation.TableCommentStartTime(); ok {
		_spec.SetField(sqldb.FieldTableCommentStartTime, field.TypeTime, value)
		_node.TableCommentStartTime = &value
	}
	if value, ok := _c.mutation.TableCommentEndTime(); ok {
		_spec.SetField(sqldb.FieldTableCommentEndTime, field.TypeTime, value)
		_node.TableCommentEndTime = &value
	}
	if value, ok := _c.mutation.ColumnCommentStatus(); ok {
		_spec.SetField(sqldb.FieldColumnCommentStatus, field.TypeEnum, value)
		_node.ColumnCommentStatus = value
	}
	if value, ok := _c.mutation.ColumnCommentTaskID(); ok {
		_spec.SetField(sqldb.FieldColumnCommentTaskID, field.TypeString, value)
		_node.ColumnCommentTaskID = value
	}
	if value, ok := _c.mutation.ColumnCommentLog(); ok {
		_spec.SetField(sqldb.FieldColumnCommentLog, field.TypeString, value)
		_node.ColumnCommentLog = value
	}
	if value, ok := _c.mutation.ColumnCommentStartTime(); ok {
		_spec.SetField(sqldb.FieldColumnCommentStartTime, field.TypeTime, value)
		_node.ColumnCommentStartTime = &value
	}
	if value, ok := _c.mutation.ColumnCommentEndTime(); ok {
		_spec.SetField(sqldb.FieldColumnCommentEndTime, field.TypeTime, value)
		_node.ColumnCommentEndTime = &value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   sqldb.WorkspaceTable,
			Columns: []string{sqldb.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.workspace_sql_db = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VectorDbIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   sqldb.VectorDbTable,
			Columns: []string{sqldb.VectorDbColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vectordb.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.sql_db_vector_db = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TablesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sqldb.TablesTable,
			Columns: []string{sqldb.TablesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sqltable.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RelationshipsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sqldb.RelationshipsTable,
			Columns: []string{sqldb.RelationshipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(relationship.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SqlDbCreateBulk is the builder for creating many SqlDb entities in bulk.
type SqlDbCreateBulk struct {
	config
	err      error
	builders []*SqlDbCreate
}

// Save creates the SqlDb entities in the database.
func (_c *SqlDbCreateBulk) Save(ctx context.Context) ([]*SqlDb, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SqlDb, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SqlDbMutation)
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
func (_c *SqlDbCreateBulk) SaveX(ctx context.Context) []*SqlDb {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SqlDbCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SqlDbCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
