// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thoth-ai/thoth/ent/predicate"
	"github.com/thoth-ai/thoth/ent/relationship"
	"github.com/thoth-ai/thoth/ent/sqldb"
	"github.com/thoth-ai/thoth/ent/sqltable"
	"github.com/thoth-ai/thoth/ent/vectordb"
	"github.com/thoth-ai/thoth/ent/workspace"
)

// SqlDbUpdate is the builder for updating SqlDb entities.
type SqlDbUpdate struct {
	config
	hooks    []Hook
	mutation *SqlDbMutation
}

// Where appends a list predicates to the SqlDbUpdate builder.
func (_u *SqlDbUpdate) Where(ps ...predicate.SqlDb) *SqlDbUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SqlDbUpdate) SetName(v string) *SqlDbUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SqlDbUpdate) SetNillableName(v *string) *SqlDbUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDialect sets the "dialect" field.
func (_u *SqlDbUpdate) SetDialect(v sqldb.Dialect) *SqlDbUpdate {
	_u.mutation.SetDialect(v)
	return _u
}

// SetNillableDialect sets the "dialect" field if the given value is not nil.
func (_u *SqlDbUpdate) SetNillableDialect(v *sqldb.Dialect) *SqlDbUpdate {
	if v != nil {
		_u.SetDialect(*v)
	}
	return _u
}

// SetHost sets the "host" field.
func (_u *SqlDbUpdate) SetHost(v string) *SqlDbUpdate {
	_u.mutation.SetHost(v)
	return _u
}

// SetNillableHost sets the "host" field if the given value is not nil.
func (_u *SqlDbUpdate) SetNillableHost(v *string) *SqlDbUpdate {
	if v != nil {
		_u.SetHost(*v)
	}
	return _u
}

// ClearHost clears the value of the "host" field.
func (_u *SqlDbUpdate) ClearHost() *SqlDbUpdate {
	_u.mutation.ClearHost()
	return _u
}

// SetPort sets the "port" field.
func (_u *SqlDbUpdate) SetPort(v int) *SqlDbUpdate {
	_u.mutation.ResetPort()
	_u.mutation.SetPort(v)
	return _u
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_u *SqlDbUpdate) SetNillablePort(v *int) *SqlDbUpdate {
	if v != nil {
		_u.SetPort(*v)
	}
	return _u
}

// AddPort adds value to the "port" field.
func (_u *SqlDbUpdate) AddPort(v int) *SqlDbUpdate {
	_u.mutation.AddPort(v)
	return _u
}

// ClearPort clears the value of the "port" field.
func (_u *SqlDbUpdate) ClearPort() *SqlDbUpdate {
	_u.mutation.ClearPort()
	return _u
}

// SetDatabase sets the "database" field.
func (_u *SqlDbUpdate) SetDatabase(v string) *SqlDbUpdate {
	_u.mutation.SetDatabase(v)
	return _u
}

// SetNillableDatabase sets the "database" field if the given value is not nil.
func (_u *SqlDbUpdate) SetNillableDatabase(v *string) *SqlDbUpdate {
	if v != nil {
		_u.SetDatabase(*v)
	}
	return _u
}

// ClearDatabase clears the value of the "database" field.
func (_u *SqlDbUpdate) ClearDatabase() *SqlDbUpdate {
	_u.mutation.ClearDatabase()
	return _u
}

// SetUsername sets the "username" field.
func (_u *SqlDbUpdate) SetUsername(v string) *SqlDbUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *SqlDbUpdate) SetNillableUsername(v *string) *SqlDbUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// ClearUsername clears the value of the "username" field.
func (_u *SqlDbUpdate) ClearUsername() *SqlDbUpdate {
	_u.mutation.ClearUsername()
	return _u
}

// SetPassword sets the "password" field.
func (_u *SqlDbUpdate) SetPassword(v string) *SqlDbUpdate {
	_u.mutation.SetPassword(v)
	return _u
}

// SetNillablePassword sets the "password" field if the given value is not nil.
func (_u *SqlDbUpdate) SetNillablePassword(v *string) *SqlDbUpdate {
	if v != nil {
		_u.SetPassword(*v)
	}
	return _u
}

// ClearPassword clears the value of the "password" field.
func (_u *SqlDbUpdate) ClearPassword() *SqlDbUpdate {
	_u.mutation.ClearPassword()
	return _u
}

// SetDbSchema sets the "db_schema" field.
func (_u *SqlDbUpdate) SetDbSchema(v string) *SqlDbUpdate {
	_u.mutation.SetDbSchema(v)
	return _u
}

// SetNillableDbSchema sets the "db_schema" field if the given value is not nil.
func (_u *SqlDbUpdate) SetNillableDbSchema(v *string) *SqlDbUpdate {
	if v != nil {
		_u.SetDbSchema(*v)
	}
	return _u
}

// ClearDbSchema clears the value of the "db_schema" field.
func (_u *SqlDbUpdate) ClearDbSchema() *SqlDbUpdate {
	_u.mutation.ClearDbSchema()
	return _u
}

// SetDbElementsStatus sets the "db_elements_status" field.
func (_u *SqlDbUpdate) SetDbElementsStatus(v sqldb.DbElementsStatus) *SqlDbUpdate {
	_u.mutation.SetDbElementsStatus(v)
	return _u
}

// SetNillableDbElementsStatus sets the "db_elements_status" field if the given value is not nil.
func (_u *SqlDbUpdate) SetNillableDbElementsStatus(v *sqldb.DbElementsStatus) *SqlDbUpdate {
	if v != nil {
		_u.SetDbElementsStatus(*v)
	}
	return _u
}

// SetDbElementsTaskID sets the "db_elements_task_id" field.
func (_u *SqlDbUpdate) SetDbElementsTaskID(v string) *SqlDbUpdate {
	_u.mutation.SetDbElementsTaskID(v)
	return _u
}

// SetNillableDbElementsTaskID sets the "db_elements_task_id" field if the given value is not nil.
func (_u *SqlDbUpdate) SetNillableDbElementsTaskID(v *string) *SqlDbUpdate {
	if v != nil {
		_u.SetDbElementsTaskID(*v)
	}
	return _u
}

// ClearDbElementsTaskID clears the value of the "db_elements_task_id" field.
func (_u *SqlDbUpdate) ClearDbElementsTaskID() *SqlDbUpdate {
	_u.mutation.ClearDbElementsTaskID()
	return _u
}

// SetDbElementsLog sets the "db_elements_log" field.
func (_u *SqlDbUpdate) SetDbElementsLog(v string) *SqlDbUpdate {
	_u.mutation.SetDbElementsLog(v)
	return _u
}

// SetNillableDbElementsLog sets the "db_elements_log" field if the given value is not nil.
func (_u *SqlDbUpdate) SetNillableDbElementsLog(v *string) *SqlDbUpdate {
	if v != nil {
		_u.SetDbElementsLog(*v)
	}
	return _u
}

// ClearDbElementsLog clears the value of the "db_elements_log" field.
func (_u *SqlDbUpdate) ClearDbElementsLog() *SqlDbUpdate {
	_u.mutation.ClearDbElementsLog()
	return _u
}

// SetDbElementsStartTime sets the "db_elements_start_time" field.
func (_u *SqlDbUpdate) SetDbElementsStartTime(v time.Time) *SqlDbUpdate {
	_u.mutation.SetDbElementsStartTime(v)
	return _u
}

// SetNillableDbElementsStartTime sets the "db_elements_start_time" field if the given value is not nil.
func (_u *SqlDbUpdate) SetNillableDbElementsStartTime(v *time.Time) *SqlDbUpdate {
	if v != nil {
		_u.SetDbElementsStartTime(*v)
	}
	return _u
}

// ClearDbElementsStartTime clears the value of the "db_elements_start_time" field.
func (_u *SqlDbUpdate) ClearDbElementsStartTime() *SqlDbUpdate {
	_u.mutation.ClearDbElementsStartTime()
	return _u
}

// SetDbElementsEndTime sets the "db_elements_end_time" field.
func (_u *SqlDbUpdate) SetDbElementsEndTime(v time.Time) *SqlDbUpdate {
	_u.mutation.SetDbElementsEndTime(v)
	return _u
}

// SetNillableDbElementsEndTime sets the "db_elements_end_time" field if the given value is not nil.
func (_u *SqlDbUpdate) SetNillableDbElementsEndTime(v *time.Time) *SqlDbUpdate {
	if v != nil {
		_u.SetDbElementsEndTime(*v)
	}
	return _u
}

// ClearDbElementsEndTime clears the value of the "db_elements_end_time" field.
func (_u *SqlDbUpdate) ClearDbElementsEndTime() *SqlDbUpdate {
	_u.mutation.ClearDbElementsEndTime()
	return _u
}

// SetTableCommentStatus sets the "table_comment_status" field.
func (_u *SqlDbUpdate) SetTableCommentStatus(v sqldb.TableCommentStatus) *SqlDbUpdate {
	_u.mutation.SetTableCommentStatus(v)
	return _u
}

// SetNillableTableCommentStatus sets the "table_comment_status" field if the given value is not nil.
func (_u *SqlDbUpdate) SetNillableTableCommentStatus(v *sqldb.TableCommentStatus) *SqlDbUpdate {
	if v != nil {
		_u.SetTableCommentStatus(*v)
	}
	return _u
}

// SetTableCommentTaskID sets the "table_comment_task_id" field.
func (_u *SqlDbUpdate) SetTableCommentTaskID(v string) *SqlDbUpdate {
	_u.mutation.SetTableCommentTaskID(v)
	return _u
}

// SetNillableTableCommentTaskID sets the "table_comment_task_id" field if the given value is not nil.
func (_u *SqlDbUpdate) SetNillableTableCommentTaskID(v *string) *SqlDbUpdate {
	if v != nil {
		_u.SetTableCommentTaskID(*v)
	}
	return _u
}

// ClearTableCommentTaskID clears the value of the "table_comment_task_id" field.
func (_u *SqlDbUpdate) ClearTableCommentTaskID() *SqlDbUpdate {
	_u.mutation.ClearTableCommentTaskID()
	return _u
}

// SetTableCommentLog sets the "table_comment_log" field.
func (_u *SqlDbUpdate) SetTableCommentLog(v string) *SqlDbUpdate {
	_u.mutation.SetTableCommentLog(v)
	return _u
}

// SetNillableTableCommentLog sets the "table_comment_log" field if the given value is not nil.
func (_u *SqlDbUpdate) SetNillableTableCommentLog(v *string) *SqlDbUpdate {
	if v != nil {
		_u.SetTableCommentLog(*v)
	}
	return _u
}

// ClearTableCommentLog clears the value of the "table_comment_log" field.
func (_u *SqlDbUpdate) ClearTableCommentLog() *SqlDbUpdate {
	_u.mutation.ClearTableCommentLog()
	return _u
}

// SetTableCommentStartTime sets the "table_comment_start_time" field.
func (_u *SqlDbUpdate) SetTableCommentStartTime(v time.Time) *SqlDbUpdate {
	_u.mutation.SetTableCommentStartTime(v)
	return _u
}

// SetNillableTableCommentStartTime sets the "table_comment_start_time" field if the given value is not nil.
func (_u *SqlDbUpdate) SetNillableTableCommentStartTime(v *time.Time) *SqlDbUpdate {
	if v != nil {
		_u.SetTableCommentStartTime(*v)
	}
	return _u
}

// ClearTableCommentStartTime clears the value of the "table_comment_start_time" field.
func (_u *SqlDbUpdate) ClearTableCommentStartTime() *SqlDbUpdate {
	_u.mutation.ClearTableCommentStartTime()
	return _u
}

// SetTableCommentEndTime sets the "table_comment_end_time" field.
func (_u *SqlDbUpdate) SetTableCommentEndTime(v time.Time) *SqlDbUpdate {
	_u.mutation.SetTableCommentEndTime(v)
	return _u
}

// SetNillableTableCommentEndTime sets the "table_comment_end_time" field if the given value is not nil.
func (_u *SqlDbUpdate) SetNillableTableCommentEndTime(v *time.Time) *SqlDbUpdate {
	if v != nil {
		_u.SetTableCommentEndTime(*v)
	}
	return _u
}

// ClearTableCommentEndTime clears the value of the "table_comment_end_time" field.
func (_u *SqlDbUpdate) ClearTableCommentEndTime() *SqlDbUpdate {
	_u.mutation.ClearTableCommentEndTime()
	return _u
}

// SetColumnCommentStatus sets the "column_comment_status" field.
func (_u *SqlDbUpdate) SetColumnCommentStatus(v sqldb.ColumnCommentStatus) *SqlDbUpdate {
	_u.mutation.SetColumnCommentStatus(v)
	return _u
}

// SetNillableColumnCommentStatus sets the "column_comment_status" field if the given value is not nil.
func (_u *SqlDbUpdate) SetNillableColumnCommentStatus(v *sqldb.ColumnCommentStatus) *SqlDbUpdate {
	if v != nil {
		_u.SetColumnCommentStatus(*v)
	}
	return _u
}

// SetColumnCommentTaskID sets the "column_comment_task_id" field.
func (_u *SqlDbUpdate) SetColumnCommentTaskID(v string) *SqlDbUpdate {
	_u.mutation.SetColumnCommentTaskID(v)
	return _u
}

// SetNillableColumnCommentTaskID sets the "column_comment_task_id" field if the given value is not nil.
func (_u *SqlDbUpdate) SetNillableColumnCommentTaskID(v *string) *SqlDbUpdate {
	if v != nil {
		_u.SetColumnCommentTaskID(*v)
	}
	return _u
}

// ClearColumnCommentTaskID clears the value of the "column_comment_task_id" field.
func (_u *SqlDbUpdate) ClearColumnCommentTaskID() *SqlDbUpdate {
	_u.mutation.ClearColumnCommentTaskID()
	return _u
}

// SetColumnCommentLog sets the "column_comment_log" field.
func (_u *SqlDbUpdate) SetColumnCommentLog(v string) *SqlDbUpdate {
	_u.mutation.SetColumnCommentLog(v)
	return _u
}

// SetNillableColumnCommentLog sets the "column_comment_log" field if the given value is not nil.
func (_u *SqlDbUpdate) SetNillableColumnCommentLog(v *string) *SqlDbUpdate {
	if v != nil {
		_u.SetColumnCommentLog(*v)
	}
	return _u
}

// ClearColumnCommentLog clears the value of the "column_comment_log" field.
func (_u *SqlDbUpdate) ClearColumnCommentLog() *SqlDbUpdate {
	_u.mutation.ClearColumnCommentLog()
	return _u
}

// SetColumnCommentStartTime sets the "column_comment_start_time" field.
func (_u *SqlDbUpdate) SetColumnCommentStartTime(v time.Time) *SqlDbUpdate {
	_u.mutation.SetColumnCommentStartTime(v)
	return _u
}

// SetNillableColumnCommentStartTime sets the "column_comment_start_time" field if the given value is not nil.
func (_u *SqlDbUpdate) SetNillableColumnCommentStartTime(v *time.Time) *SqlDbUpdate {
	if v != nil {
		_u.SetColumnCommentStartTime(*v)
	}
	return _u
}

// ClearColumnCommentStartTime clears the value of the "column_comment_start_time" field.
func (_u *SqlDbUpdate) ClearColumnCommentStartTime() *SqlDbUpdate {
	_u.mutation.ClearColumnCommentStartTime()
	return _u
}

// SetColumnCommentEndTime sets the "column_comment_end_time" field.
func (_u *SqlDbUpdate) SetColumnCommentEndTime(v time.Time) *SqlDbUpdate {
	_u.mutation.SetColumnCommentEndTime(v)
	return _u
}

// SetNillableColumnCommentEndTime sets the "column_comment_end_time" field if the given value is not nil.
func (_u *SqlDbUpdate) SetNillableColumnCommentEndTime(v *time.Time) *SqlDbUpdate {
	if v != nil {
		_u.SetColumnCommentEndTime(*v)
	}
	return _u
}

// ClearColumnCommentEndTime clears the value of the "column_comment_end_time" field.
func (_u *SqlDbUpdate) ClearColumnCommentEndTime() *SqlDbUpdate {
	_u.mutation.ClearColumnCommentEndTime()
	return _u
}

// SetWorkspaceID sets the "workspace" edge to the Workspace entity by ID.
func (_u *SqlDbUpdate) SetWorkspaceID(id string) *SqlDbUpdate {
	_u.mutation.SetWorkspaceID(id)
	return _u
}

// SetNillableWorkspaceID sets the "workspace" edge to the Workspace entity by ID if the given value is not nil.
func (_u *SqlDbUpdate) SetNillableWorkspaceID(id *string) *SqlDbUpdate {
	if id != nil {
		_u = _u.SetWorkspaceID(*id)
	}
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *SqlDbUpdate) SetWorkspace(v *Workspace) *SqlDbUpdate {
	return _u.SetWorkspaceID(v.ID)
}

// SetVectorDbID sets the "vector_db" edge to the VectorDb entity by ID.
func (_u *SqlDbUpdate) SetVectorDbID(id string) *SqlDbUpdate {
	_u.mutation.SetVectorDbID(id)
	return _u
}

// SetNillableVectorDbID sets the "vector_db" edge to the VectorDb entity by ID if the given value is not nil.
func (_u *SqlDbUpdate) SetNillableVectorDbID(id *string) *SqlDbUpdate {
	if id != nil {
		_u = _u.SetVectorDbID(*id)
	}
	return _u
}

// SetVectorDb sets the "vector_db" edge to the VectorDb entity.
func (_u *SqlDbUpdate) SetVectorDb(v *VectorDb) *SqlDbUpdate {
	return _u.SetVectorDbID(v.ID)
}

// AddTableIDs adds the "tables" edge to the SqlTable entity by IDs.
func (_u *SqlDbUpdate) AddTableIDs(ids ...string) *SqlDbUpdate {
	_u.mutation.AddTableIDs(ids...)
	return _u
}

// AddTables adds the "tables" edges to the SqlTable entity.
func (_u *SqlDbUpdate) AddTables(v ...*SqlTable) *SqlDbUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTableIDs(ids...)
}

// AddRelationshipIDs adds the "relationships" edge to the Relationship entity by IDs.
func (_u *SqlDbUpdate) AddRelationshipIDs(ids ...string) *SqlDbUpdate {
	_u.mutation.AddRelationshipIDs(ids...)
	return _u
}

// AddRelationships adds the "relationships" edges to the Relationship entity.
func (_u *SqlDbUpdate) AddRelationships(v ...*Relationship) *SqlDbUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRelationshipIDs(ids...)
}

// Mutation returns the SqlDbMutation object of the builder.
func (_u *SqlDbUpdate) Mutation() *SqlDbMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *SqlDbUpdate) ClearWorkspace() *SqlDbUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// ClearVectorDb clears the "vector_db" edge to the VectorDb entity.
func (_u *SqlDbUpdate) ClearVectorDb() *SqlDbUpdate {
	_u.mutation.ClearVectorDb()
	return _u
}

// ClearTables clears all "tables" edges to the SqlTable entity.
func (_u *SqlDbUpdate) ClearTables() *SqlDbUpdate {
	_u.mutation.ClearTables()
	return _u
}

// RemoveTableIDs removes the "tables" edge to SqlTable entities by IDs.
func (_u *SqlDbUpdate) RemoveTableIDs(ids ...string) *SqlDbUpdate {
	_u.mutation.RemoveTableIDs(ids...)
	return _u
}

// RemoveTables removes "tables" edges to SqlTable entities.
func (_u *SqlDbUpdate) RemoveTables(v ...*SqlTable) *SqlDbUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTableIDs(ids...)
}

// ClearRelationships clears all "relationships" edges to the Relationship entity.
func (_u *SqlDbUpdate) ClearRelationships() *SqlDbUpdate {
	_u.mutation.ClearRelationships()
	return _u
}

// RemoveRelationshipIDs removes the "relationships" edge to Relationship entities by IDs.
func (_u *SqlDbUpdate) RemoveRelationshipIDs(ids ...string) *SqlDbUpdate {
	_u.mutation.RemoveRelationshipIDs(ids...)
	return _u
}

// RemoveRelationships removes "relationships" edges to Relationship entities.
func (_u *SqlDbUpdate) RemoveRelationships(v ...*Relationship) *SqlDbUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRelationshipIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SqlDbUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SqlDbUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SqlDbUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SqlDbUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SqlDbUpdate) check() error {
	if v, ok := _u.mutation.Dialect(); ok {
		if err := sqldb.DialectValidator(v); err != nil {
			return &ValidationError{Name: "dialect", err: fmt.Errorf(`ent: validator failed for field "SqlDb.dialect": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DbElementsStatus(); ok {
		if err := sqldb.DbElementsStatusValidator(v); err != nil {
			return &ValidationError{Name: "db_elements_status", err: fmt.Errorf(`ent: validator failed for field "SqlDb.db_elements_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TableCommentStatus(); ok {
		if err := sqldb.TableCommentStatusValidator(v); err != nil {
			return &ValidationError{Name: "table_comment_status", err: fmt.Errorf(`ent: validator failed for field "SqlDb.table_comment_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ColumnCommentStatus(); ok {
		if err := sqldb.ColumnCommentStatusValidator(v); err != nil {
			return &ValidationError{Name: "column_comment_status", err: fmt.Errorf(`ent: validator failed for field "SqlDb.column_comment_status": %w`, err)}
		}
	}
	return nil
}

func (_u *SqlDbUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sqldb.Table, sqldb.Columns, sqlgraph.NewFieldSpec(sqldb.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(sqldb.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dialect(); ok {
		_spec.SetField(sqldb.FieldDialect, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Host(); ok {
		_spec.SetField(sqldb.FieldHost, field.TypeString, value)
	}
	if _u.mutation.HostCleared() {
		_spec.ClearField(sqldb.FieldHost, field.TypeString)
	}
	if value, ok := _u.mutation.Port(); ok {
		_spec.SetField(sqldb.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPort(); ok {
		_spec.AddField(sqldb.FieldPort, field.TypeInt, value)
	}
	if _u.mutation.PortCleared() {
		_spec.ClearField(sqldb.FieldPort, field.TypeInt)
	}
	if value, ok := _u.mutation.Database(); ok {
		_spec.SetField(sqldb.FieldDatabase, field.TypeString, value)
	}
	if _u.mutation.DatabaseCleared() {
		_spec.ClearField(sqldb.FieldDatabase, field.TypeString)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(sqldb.FieldUsername, field.TypeString, value)
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(sqldb.FieldUsername, field.TypeString)
	}
	if value, ok := _u.mutation.Password(); ok {
		_spec.SetField(sqldb.FieldPassword, field.TypeString, value)
	}
	if _u.mutation.PasswordCleared() {
		_spec.ClearField(sqldb.FieldPassword, field.TypeString)
	}
	if value, ok := _u.mutation.DbSchema(); ok {
		_spec.SetField(sqldb.FieldDbSchema, field.TypeString, value)
	}
	if _u.mutation.DbSchemaCleared() {
		_spec.ClearField(sqldb.FieldDbSchema, field.TypeString)
	}
	if value, ok := _u.mutation.DbElementsStatus(); ok {
		_spec.SetField(sqldb.FieldDbElementsStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DbElementsTaskID(); ok {
		_spec.SetField(sqldb.FieldDbElementsTaskID, field.TypeString, value)
	}
	if _u.mutation.DbElementsTaskIDCleared() {
		_spec.ClearField(sqldb.FieldDbElementsTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.DbElementsLog(); ok {
		_spec.SetField(sqldb.FieldDbElementsLog, field.TypeString, value)
	}
	if _u.mutation.DbElementsLogCleared() {
		_spec.ClearField(sqldb.FieldDbElementsLog, field.TypeString)
	}
	if value, ok := _u.mutation.DbElementsStartTime(); ok {
		_spec.SetField(sqldb.FieldDbElementsStartTime, field.TypeTime, value)
	}
	if _u.mutation.DbElementsStartTimeCleared() {
		_spec.ClearField(sqldb.FieldDbElementsStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.DbElementsEndTime(); ok {
		_spec.SetField(sqldb.FieldDbElementsEndTime, field.TypeTime, value)
	}
	if _u.mutation.DbElementsEndTimeCleared() {
		_spec.ClearField(sqldb.FieldDbElementsEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.TableCommentStatus(); ok {
		_spec.SetField(sqldb.FieldTableCommentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TableCommentTaskID(); ok {
		_spec.SetField(sqldb.FieldTableCommentTaskID, field.TypeString, value)
	}
	if _u.mutation.TableCommentTaskIDCleared() {
		_spec.ClearField(sqldb.FieldTableCommentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.TableCommentLog(); ok {
		_spec.SetField(sqldb.FieldTableCommentLog, field.TypeString, value)
	}
	if _u.mutation.TableCommentLogCleared() {
		_spec.ClearField(sqldb.FieldTableCommentLog, field.TypeString)
	}
	if value, ok := _u.mutation.TableCommentStartTime(); ok {
		_spec.SetField(sqldb.FieldTableCommentStartTime, field.TypeTime, value)
	}
	if _u.mutation.TableCommentStartTimeCleared() {
		_spec.ClearField(sqldb.FieldTableCommentStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.TableCommentEndTime(); ok {
		_spec.SetField(sqldb.FieldTableCommentEndTime, field.TypeTime, value)
	}
	if _u.mutation.TableCommentEndTimeCleared() {
		_spec.ClearField(sqldb.FieldTableCommentEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.ColumnCommentStatus(); ok {
		_spec.SetField(sqldb.FieldColumnCommentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ColumnCommentTaskID(); ok {
		_spec.SetField(sqldb.FieldColumnCommentTaskID, field.TypeString, value)
	}
	if _u.mutation.ColumnCommentTaskIDCleared() {
		_spec.ClearField(sqldb.FieldColumnCommentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.ColumnCommentLog(); ok {
		_spec.SetField(sqldb.FieldColumnCommentLog, field.TypeString, value)
	}
	if _u.mutation.ColumnCommentLogCleared() {
		_spec.ClearField(sqldb.FieldColumnCommentLog, field.TypeString)
	}
	if value, ok := _u.mutation.ColumnCommentStartTime(); ok {
		_spec.SetField(sqldb.FieldColumnCommentStartTime, field.TypeTime, value)
	}
	if _u.mutation.ColumnCommentStartTimeCleared() {
		_spec.ClearField(sqldb.FieldColumnCommentStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.ColumnCommentEndTime(); ok {
		_spec.SetField(sqldb.FieldColumnCommentEndTime, field.TypeTime, value)
	}
	if _u.mutation.ColumnCommentEndTimeCleared() {
		_spec.ClearField(sqldb.FieldColumnCommentEndTime, field.TypeTime)
	}
	if _u.mutation.WorkspaceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VectorDbCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VectorDbIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TablesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTablesIDs(); len(nodes) > 0 && !_u.mutation.TablesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TablesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RelationshipsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRelationshipsIDs(); len(nodes) > 0 && !_u.mutation.RelationshipsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RelationshipsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sqldb.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SqlDbUpdateOne is the builder for updating a single SqlDb entity.
type SqlDbUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SqlDbMutation
}

// SetName sets the "name" field.
func (_u *SqlDbUpdateOne) SetName(v string) *SqlDbUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillableName(v *string) *SqlDbUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDialect sets the "dialect" field.
func (_u *SqlDbUpdateOne) SetDialect(v sqldb.Dialect) *SqlDbUpdateOne {
	_u.mutation.SetDialect(v)
	return _u
}

// SetNillableDialect sets the "dialect" field if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillableDialect(v *sqldb.Dialect) *SqlDbUpdateOne {
	if v != nil {
		_u.SetDialect(*v)
	}
	return _u
}

// SetHost sets the "host" field.
func (_u *SqlDbUpdateOne) SetHost(v string) *SqlDbUpdateOne {
	_u.mutation.SetHost(v)
	return _u
}

// SetNillableHost sets the "host" field if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillableHost(v *string) *SqlDbUpdateOne {
	if v != nil {
		_u.SetHost(*v)
	}
	return _u
}

// ClearHost clears the value of the "host" field.
func (_u *SqlDbUpdateOne) ClearHost() *SqlDbUpdateOne {
	_u.mutation.ClearHost()
	return _u
}

// SetPort sets the "port" field.
func (_u *SqlDbUpdateOne) SetPort(v int) *SqlDbUpdateOne {
	_u.mutation.ResetPort()
	_u.mutation.SetPort(v)
	return _u
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillablePort(v *int) *SqlDbUpdateOne {
	if v != nil {
		_u.SetPort(*v)
	}
	return _u
}

// AddPort adds value to the "port" field.
func (_u *SqlDbUpdateOne) AddPort(v int) *SqlDbUpdateOne {
	_u.mutation.AddPort(v)
	return _u
}

// ClearPort clears the value of the "port" field.
func (_u *SqlDbUpdateOne) ClearPort() *SqlDbUpdateOne {
	_u.mutation.ClearPort()
	return _u
}

// SetDatabase sets the "database" field.
func (_u *SqlDbUpdateOne) SetDatabase(v string) *SqlDbUpdateOne {
	_u.mutation.SetDatabase(v)
	return _u
}

// SetNillableDatabase sets the "database" field if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillableDatabase(v *string) *SqlDbUpdateOne {
	if v != nil {
		_u.SetDatabase(*v)
	}
	return _u
}

// ClearDatabase clears the value of the "database" field.
func (_u *SqlDbUpdateOne) ClearDatabase() *SqlDbUpdateOne {
	_u.mutation.ClearDatabase()
	return _u
}

// SetUsername sets the "username" field.
func (_u *SqlDbUpdateOne) SetUsername(v string) *SqlDbUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillableUsername(v *string) *SqlDbUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// ClearUsername clears the value of the "username" field.
func (_u *SqlDbUpdateOne) ClearUsername() *SqlDbUpdateOne {
	_u.mutation.ClearUsername()
	return _u
}

// SetPassword sets the "password" field.
func (_u *SqlDbUpdateOne) SetPassword(v string) *SqlDbUpdateOne {
	_u.mutation.SetPassword(v)
	return _u
}

// SetNillablePassword sets the "password" field if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillablePassword(v *string) *SqlDbUpdateOne {
	if v != nil {
		_u.SetPassword(*v)
	}
	return _u
}

// ClearPassword clears the value of the "password" field.
func (_u *SqlDbUpdateOne) ClearPassword() *SqlDbUpdateOne {
	_u.mutation.ClearPassword()
	return _u
}

// SetDbSchema sets the "db_schema" field.
func (_u *SqlDbUpdateOne) SetDbSchema(v string) *SqlDbUpdateOne {
	_u.mutation.SetDbSchema(v)
	return _u
}

// SetNillableDbSchema sets the "db_schema" field if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillableDbSchema(v *string) *SqlDbUpdateOne {
	if v != nil {
		_u.SetDbSchema(*v)
	}
	return _u
}

// ClearDbSchema clears the value of the "db_schema" field.
func (_u *SqlDbUpdateOne) ClearDbSchema() *SqlDbUpdateOne {
	_u.mutation.ClearDbSchema()
	return _u
}

// SetDbElementsStatus sets the "db_elements_status" field.
func (_u *SqlDbUpdateOne) SetDbElementsStatus(v sqldb.DbElementsStatus) *SqlDbUpdateOne {
	_u.mutation.SetDbElementsStatus(v)
	return _u
}

// SetNillableDbElementsStatus sets the "db_elements_status" field if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillableDbElementsStatus(v *sqldb.DbElementsStatus) *SqlDbUpdateOne {
	if v != nil {
		_u.SetDbElementsStatus(*v)
	}
	return _u
}

// SetDbElementsTaskID sets the "db_elements_task_id" field.
func (_u *SqlDbUpdateOne) SetDbElementsTaskID(v string) *SqlDbUpdateOne {
	_u.mutation.SetDbElementsTaskID(v)
	return _u
}

// SetNillableDbElementsTaskID sets the "db_elements_task_id" field if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillableDbElementsTaskID(v *string) *SqlDbUpdateOne {
	if v != nil {
		_u.SetDbElementsTaskID(*v)
	}
	return _u
}

// ClearDbElementsTaskID clears the value of the "db_elements_task_id" field.
func (_u *SqlDbUpdateOne) ClearDbElementsTaskID() *SqlDbUpdateOne {
	_u.mutation.ClearDbElementsTaskID()
	return _u
}

// SetDbElementsLog sets the "db_elements_log" field.
func (_u *SqlDbUpdateOne) SetDbElementsLog(v string) *SqlDbUpdateOne {
	_u.mutation.SetDbElementsLog(v)
	return _u
}

// SetNillableDbElementsLog sets the "db_elements_log" field if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillableDbElementsLog(v *string) *SqlDbUpdateOne {
	if v != nil {
		_u.SetDbElementsLog(*v)
	}
	return _u
}

// ClearDbElementsLog clears the value of the "db_elements_log" field.
func (_u *SqlDbUpdateOne) ClearDbElementsLog() *SqlDbUpdateOne {
	_u.mutation.ClearDbElementsLog()
	return _u
}

// SetDbElementsStartTime sets the "db_elements_start_time" field.
func (_u *SqlDbUpdateOne) SetDbElementsStartTime(v time.Time) *SqlDbUpdateOne {
	_u.mutation.SetDbElementsStartTime(v)
	return _u
}

// SetNillableDbElementsStartTime sets the "db_elements_start_time" field if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillableDbElementsStartTime(v *time.Time) *SqlDbUpdateOne {
	if v != nil {
		_u.SetDbElementsStartTime(*v)
	}
	return _u
}

// ClearDbElementsStartTime clears the value of the "db_elements_start_time" field.
func (_u *SqlDbUpdateOne) ClearDbElementsStartTime() *SqlDbUpdateOne {
	_u.mutation.ClearDbElementsStartTime()
	return _u
}

// SetDbElementsEndTime sets the "db_elements_end_time" field.
func (_u *SqlDbUpdateOne) SetDbElementsEndTime(v time.Time) *SqlDbUpdateOne {
	_u.mutation.SetDbElementsEndTime(v)
	return _u
}

// SetNillableDbElementsEndTime sets the "db_elements_end_time" field if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillableDbElementsEndTime(v *time.Time) *SqlDbUpdateOne {
	if v != nil {
		_u.SetDbElementsEndTime(*v)
	}
	return _u
}

// ClearDbElementsEndTime clears the value of the "db_elements_end_time" field.
func (_u *SqlDbUpdateOne) ClearDbElementsEndTime() *SqlDbUpdateOne {
	_u.mutation.ClearDbElementsEndTime()
	return _u
}

// SetTableCommentStatus sets the "table_comment_status" field.
func (_u *SqlDbUpdateOne) SetTableCommentStatus(v sqldb.TableCommentStatus) *SqlDbUpdateOne {
	_u.mutation.SetTableCommentStatus(v)
	return _u
}

// SetNillableTableCommentStatus sets the "table_comment_status" field if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillableTableCommentStatus(v *sqldb.TableCommentStatus) *SqlDbUpdateOne {
	if v != nil {
		_u.SetTableCommentStatus(*v)
	}
	return _u
}

// SetTableCommentTaskID sets the "table_comment_task_id" field.
func (_u *SqlDbUpdateOne) SetTableCommentTaskID(v string) *SqlDbUpdateOne {
	_u.mutation.SetTableCommentTaskID(v)
	return _u
}

// SetNillableTableCommentTaskID sets the "table_comment_task_id" field if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillableTableCommentTaskID(v *string) *SqlDbUpdateOne {
	if v != nil {
		_u.SetTableCommentTaskID(*v)
	}
	return _u
}

// ClearTableCommentTaskID clears the value of the "table_comment_task_id" field.
func (_u *SqlDbUpdateOne) ClearTableCommentTaskID() *SqlDbUpdateOne {
	_u.mutation.ClearTableCommentTaskID()
	return _u
}

// SetTableCommentLog sets the "table_comment_log" field.
func (_u *SqlDbUpdateOne) SetTableCommentLog(v string) *SqlDbUpdateOne {
	_u.mutation.SetTableCommentLog(v)
	return _u
}

// SetNillableTableCommentLog sets the "table_comment_log" field if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillableTableCommentLog(v *string) *SqlDbUpdateOne {
	if v != nil {
		_u.SetTableCommentLog(*v)
	}
	return _u
}

// ClearTableCommentLog clears the value of the "table_comment_log" field.
func (_u *SqlDbUpdateOne) ClearTableCommentLog() *SqlDbUpdateOne {
	_u.mutation.ClearTableCommentLog()
	return _u
}

// SetTableCommentStartTime sets the "table_comment_start_time" field.
func (_u *SqlDbUpdateOne) SetTableCommentStartTime(v time.Time) *SqlDbUpdateOne {
	_u.mutation.SetTableCommentStartTime(v)
	return _u
}

// SetNillableTableCommentStartTime sets the "table_comment_start_time" field if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillableTableCommentStartTime(v *time.Time) *SqlDbUpdateOne {
	if v != nil {
		_u.SetTableCommentStartTime(*v)
	}
	return _u
}

// ClearTableCommentStartTime clears the value of the "table_comment_start_time" field.
func (_u *SqlDbUpdateOne) ClearTableCommentStartTime() *SqlDbUpdateOne {
	_u.mutation.ClearTableCommentStartTime()
	return _u
}

// SetTableCommentEndTime sets the "table_comment_end_time" field.
func (_u *SqlDbUpdateOne) SetTableCommentEndTime(v time.Time) *SqlDbUpdateOne {
	_u.mutation.SetTableCommentEndTime(v)
	return _u
}

// SetNillableTableCommentEndTime sets the "table_comment_end_time" field if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillableTableCommentEndTime(v *time.Time) *SqlDbUpdateOne {
	if v != nil {
		_u.SetTableCommentEndTime(*v)
	}
	return _u
}

// ClearTableCommentEndTime clears the value of the "table_comment_end_time" field.
func (_u *SqlDbUpdateOne) ClearTableCommentEndTime() *SqlDbUpdateOne {
	_u.mutation.ClearTableCommentEndTime()
	return _u
}

// SetColumnCommentStatus sets the "column_comment_status" field.
func (_u *SqlDbUpdateOne) SetColumnCommentStatus(v sqldb.ColumnCommentStatus) *SqlDbUpdateOne {
	_u.mutation.SetColumnCommentStatus(v)
	return _u
}

// SetNillableColumnCommentStatus sets the "column_comment_status" field if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillableColumnCommentStatus(v *sqldb.ColumnCommentStatus) *SqlDbUpdateOne {
	if v != nil {
		_u.SetColumnCommentStatus(*v)
	}
	return _u
}

// SetColumnCommentTaskID sets the "column_comment_task_id" field.
func (_u *SqlDbUpdateOne) SetColumnCommentTaskID(v string) *SqlDbUpdateOne {
	_u.mutation.SetColumnCommentTaskID(v)
	return _u
}

// SetNillableColumnCommentTaskID sets the "column_comment_task_id" field if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillableColumnCommentTaskID(v *string) *SqlDbUpdateOne {
	if v != nil {
		_u.SetColumnCommentTaskID(*v)
	}
	return _u
}

// ClearColumnCommentTaskID clears the value of the "column_comment_task_id" field.
func (_u *SqlDbUpdateOne) ClearColumnCommentTaskID() *SqlDbUpdateOne {
	_u.mutation.ClearColumnCommentTaskID()
	return _u
}

// SetColumnCommentLog sets the "column_comment_log" field.
func (_u *SqlDbUpdateOne) SetColumnCommentLog(v string) *SqlDbUpdateOne {
	_u.mutation.SetColumnCommentLog(v)
	return _u
}

// SetNillableColumnCommentLog sets the "column_comment_log" field if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillableColumnCommentLog(v *string) *SqlDbUpdateOne {
	if v != nil {
		_u.SetColumnCommentLog(*v)
	}
	return _u
}

// ClearColumnCommentLog clears the value of the "column_comment_log" field.
func (_u *SqlDbUpdateOne) ClearColumnCommentLog() *SqlDbUpdateOne {
	_u.mutation.ClearColumnCommentLog()
	return _u
}

// SetColumnCommentStartTime sets the "column_comment_start_time" field.
func (_u *SqlDbUpdateOne) SetColumnCommentStartTime(v time.Time) *SqlDbUpdateOne {
	_u.mutation.SetColumnCommentStartTime(v)
	return _u
}

// SetNillableColumnCommentStartTime sets the "column_comment_start_time" field if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillableColumnCommentStartTime(v *time.Time) *SqlDbUpdateOne {
	if v != nil {
		_u.SetColumnCommentStartTime(*v)
	}
	return _u
}

// ClearColumnCommentStartTime clears the value of the "column_comment_start_time" field.
func (_u *SqlDbUpdateOne) ClearColumnCommentStartTime() *SqlDbUpdateOne {
	_u.mutation.ClearColumnCommentStartTime()
	return _u
}

// SetColumnCommentEndTime sets the "column_comment_end_time" field.
func (_u *SqlDbUpdateOne) SetColumnCommentEndTime(v time.Time) *SqlDbUpdateOne {
	_u.mutation.SetColumnCommentEndTime(v)
	return _u
}

// SetNillableColumnCommentEndTime sets the "column_comment_end_time" field if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillableColumnCommentEndTime(v *time.Time) *SqlDbUpdateOne {
	if v != nil {
		_u.SetColumnCommentEndTime(*v)
	}
	return _u
}

// ClearColumnCommentEndTime clears the value of the "column_comment_end_time" field.
func (_u *SqlDbUpdateOne) ClearColumnCommentEndTime() *SqlDbUpdateOne {
	_u.mutation.ClearColumnCommentEndTime()
	return _u
}

// SetWorkspaceID sets the "workspace" edge to the Workspace entity by ID.
func (_u *SqlDbUpdateOne) SetWorkspaceID(id string) *SqlDbUpdateOne {
	_u.mutation.SetWorkspaceID(id)
	return _u
}

// SetNillableWorkspaceID sets the "workspace" edge to the Workspace entity by ID if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillableWorkspaceID(id *string) *SqlDbUpdateOne {
	if id != nil {
		_u = _u.SetWorkspaceID(*id)
	}
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *SqlDbUpdateOne) SetWorkspace(v *Workspace) *SqlDbUpdateOne {
	return _u.SetWorkspaceID(v.ID)
}

// SetVectorDbID sets the "vector_db" edge to the VectorDb entity by ID.
func (_u *SqlDbUpdateOne) SetVectorDbID(id string) *SqlDbUpdateOne {
	_u.mutation.SetVectorDbID(id)
	return _u
}

// SetNillableVectorDbID sets the "vector_db" edge to the VectorDb entity by ID if the given value is not nil.
func (_u *SqlDbUpdateOne) SetNillableVectorDbID(id *string) *SqlDbUpdateOne {
	if id != nil {
		_u = _u.SetVectorDbID(*id)
	}
	return _u
}

// SetVectorDb sets the "vector_db" edge to the VectorDb entity.
func (_u *SqlDbUpdateOne) SetVectorDb(v *VectorDb) *SqlDbUpdateOne {
	return _u.SetVectorDbID(v.ID)
}

// AddTableIDs adds the "tables" edge to the SqlTable entity by IDs.
func (_u *SqlDbUpdateOne) AddTableIDs(ids ...string) *SqlDbUpdateOne {
	_u.mutation.AddTableIDs(ids...)
	return _u
}

// AddTables adds the "tables" edges to the SqlTable entity.
func (_u *SqlDbUpdateOne) AddTables(v ...*SqlTable) *SqlDbUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTableIDs(ids...)
}

// AddRelationshipIDs adds the "relationships" edge to the Relationship entity by IDs.
func (_u *SqlDbUpdateOne) AddRelationshipIDs(ids ...string) *SqlDbUpdateOne {
	_u.mutation.AddRelationshipIDs(ids...)
	return _u
}

// AddRelationships adds the "relationships" edges to the Relationship entity.
func (_u *SqlDbUpdateOne) AddRelationships(v ...*Relationship) *SqlDbUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRelationshipIDs(ids...)
}

// Mutation returns the SqlDbMutation object of the builder.
func (_u *SqlDbUpdateOne) Mutation() *SqlDbMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *SqlDbUpdateOne) ClearWorkspace() *SqlDbUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// ClearVectorDb clears the "vector_db" edge to the VectorDb entity.
func (_u *SqlDbUpdateOne) ClearVectorDb() *SqlDbUpdateOne {
	_u.mutation.ClearVectorDb()
	return _u
}

// ClearTables clears all "tables" edges to the SqlTable entity.
func (_u *SqlDbUpdateOne) ClearTables() *SqlDbUpdateOne {
	_u.mutation.ClearTables()
	return _u
}

// RemoveTableIDs removes the "tables" edge to SqlTable entities by IDs.
func (_u *SqlDbUpdateOne) RemoveTableIDs(ids ...string) *SqlDbUpdateOne {
	_u.mutation.RemoveTableIDs(ids...)
	return _u
}

// RemoveTables removes "tables" edges to SqlTable entities.
func (_u *SqlDbUpdateOne) RemoveTables(v ...*SqlTable) *SqlDbUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTableIDs(ids...)
}

// ClearRelationships clears all "relationships" edges to the Relationship entity.
func (_u *SqlDbUpdateOne) ClearRelationships() *SqlDbUpdateOne {
	_u.mutation.ClearRelationships()
	return _u
}

// RemoveRelationshipIDs removes the "relationships" edge to Relationship entities by IDs.
func (_u *SqlDbUpdateOne) RemoveRelationshipIDs(ids ...string) *SqlDbUpdateOne {
	_u.mutation.RemoveRelationshipIDs(ids...)
	return _u
}

// RemoveRelationships removes "relationships" edges to Relationship entities.
func (_u *SqlDbUpdateOne) RemoveRelationships(v ...*Relationship) *SqlDbUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRelationshipIDs(ids...)
}

// Where appends a list predicates to the SqlDbUpdate builder.
func (_u *SqlDbUpdateOne) Where(ps ...predicate.SqlDb) *SqlDbUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SqlDbUpdateOne) Select(field string, fields ...string) *SqlDbUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SqlDb entity.
func (_u *SqlDbUpdateOne) Save(ctx context.Context) (*SqlDb, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SqlDbUpdateOne) SaveX(ctx context.Context) *SqlDb {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SqlDbUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SqlDbUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SqlDbUpdateOne) check() error {
	if v, ok := _u.mutation.Dialect(); ok {
		if err := sqldb.DialectValidator(v); err != nil {
			return &ValidationError{Name: "dialect", err: fmt.Errorf(`ent: validator failed for field "SqlDb.dialect": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DbElementsStatus(); ok {
		if err := sqldb.DbElementsStatusValidator(v); err != nil {
			return &ValidationError{Name: "db_elements_status", err: fmt.Errorf(`ent: validator failed for field "SqlDb.db_elements_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TableCommentStatus(); ok {
		if err := sqldb.TableCommentStatusValidator(v); err != nil {
			return &ValidationError{Name: "table_comment_status", err: fmt.Errorf(`ent: validator failed for field "SqlDb.table_comment_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ColumnCommentStatus(); ok {
		if err := sqldb.ColumnCommentStatusValidator(v); err != nil {
			return &ValidationError{Name: "column_comment_status", err: fmt.Errorf(`ent: validator failed for field "SqlDb.column_comment_status": %w`, err)}
		}
	}
	return nil
}

func (_u *SqlDbUpdateOne) sqlSave(ctx context.Context) (_node *SqlDb, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sqldb.Table, sqldb.Columns, sqlgraph.NewFieldSpec(sqldb.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SqlDb.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sqldb.FieldID)
		for _, f := range fields {
			if !sqldb.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sqldb.FieldID {
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
		_spec.SetField(sqldb.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dialect(); ok {
		_spec.SetField(sqldb.FieldDialect, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Host(); ok {
		_spec.SetField(sqldb.FieldHost, field.TypeString, value)
	}
	if _u.mutation.HostCleared() {
		_spec.ClearField(sqldb.FieldHost, field.TypeString)
	}
	if value, ok := _u.mutation.Port(); ok {
		_spec.SetField(sqldb.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPort(); ok {
		_spec.AddField(sqldb.FieldPort, field.TypeInt, value)
	}
	if _u.mutation.PortCleared() {
		_spec.ClearField(sqldb.FieldPort, field.TypeInt)
	}
	if value, ok := _u.mutation.Database(); ok {
		_spec.SetField(sqldb.FieldDatabase, field.TypeString, value)
	}
	if _u.mutation.DatabaseCleared() {
		_spec.ClearField(sqldb.FieldDatabase, field.TypeString)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(sqldb.FieldUsername, field.TypeString, value)
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(sqldb.FieldUsername, field.TypeString)
	}
	if value, ok := _u.mutation.Password(); ok {
		_spec.SetField(sqldb.FieldPassword, field.TypeString, value)
	}
	if _u.mutation.PasswordCleared() {
		_spec.ClearField(sqldb.FieldPassword, field.TypeString)
	}
	if value, ok := _u.mutation.DbSchema(); ok {
		_spec.SetField(sqldb.FieldDbSchema, field.TypeString, value)
	}
	if _u.mutation.DbSchemaCleared() {
		_spec.ClearField(sqldb.FieldDbSchema, field.TypeString)
	}
	if value, ok := _u.mutation.DbElementsStatus(); ok {
		_spec.SetField(sqldb.FieldDbElementsStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DbElementsTaskID(); ok {
		_spec.SetField(sqldb.FieldDbElementsTaskID, field.TypeString, value)
	}
	if _u.mutation.DbElementsTaskIDCleared() {
		_spec.ClearField(sqldb.FieldDbElementsTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.DbElementsLog(); ok {
		_spec.SetField(sqldb.FieldDbElementsLog, field.TypeString, value)
	}
	if _u.mutation.DbElementsLogCleared() {
		_spec.ClearField(sqldb.FieldDbElementsLog, field.TypeString)
	}
	if value, ok := _u.mutation.DbElementsStartTime(); ok {
		_spec.SetField(sqldb.FieldDbElementsStartTime, field.TypeTime, value)
	}
	if _u.mutation.DbElementsStartTimeCleared() {
		_spec.ClearField(sqldb.FieldDbElementsStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.DbElementsEndTime(); ok {
		_spec.SetField(sqldb.FieldDbElementsEndTime, field.TypeTime, value)
	}
	if _u.mutation.DbElementsEndTimeCleared() {
		_spec.ClearField(sqldb.FieldDbElementsEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.TableCommentStatus(); ok {
		_spec.SetField(sqldb.FieldTableCommentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TableCommentTaskID(); ok {
		_spec.SetField(sqldb.FieldTableCommentTaskID, field.TypeString, value)
	}
	if _u.mutation.TableCommentTaskIDCleared() {
		_spec.ClearField(sqldb.FieldTableCommentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.TableCommentLog(); ok {
		_spec.SetField(sqldb.FieldTableCommentLog, field.TypeString, value)
	}
	if _u.mutation.TableCommentLogCleared() {
		_spec.ClearField(sqldb.FieldTableCommentLog, field.TypeString)
	}
	if value, ok := _u.mutation.TableCommentStartTime(); ok {
		_spec.SetField(sqldb.FieldTableCommentStartTime, field.TypeTime, value)
	}
	if _u.mutation.TableCommentStartTimeCleared() {
		_spec.ClearField(sqldb.FieldTableCommentStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.TableCommentEndTime(); ok {
		_spec.SetField(sqldb.FieldTableCommentEndTime, field.TypeTime, value)
	}
	if _u.mutation.TableCommentEndTimeCleared() {
		_spec.ClearField(sqldb.FieldTableCommentEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.ColumnCommentStatus(); ok {
		_spec.SetField(sqldb.FieldColumnCommentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ColumnCommentTaskID(); ok {
		_spec.SetField(sqldb.FieldColumnCommentTaskID, field.TypeString, value)
	}
	if _u.mutation.ColumnCommentTaskIDCleared() {
		_spec.ClearField(sqldb.FieldColumnCommentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.ColumnCommentLog(); ok {
		_spec.SetField(sqldb.FieldColumnCommentLog, field.TypeString, value)
	}
	if _u.mutation.ColumnCommentLogCleared() {
		_spec.ClearField(sqldb.FieldColumnCommentLog, field.TypeString)
	}
	if value, ok := _u.mutation.ColumnCommentStartTime(); ok {
		_spec.SetField(sqldb.FieldColumnCommentStartTime, field.TypeTime, value)
	}
	if _u.mutation.ColumnCommentStartTimeCleared() {
		_spec.ClearField(sqldb.FieldColumnCommentStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.ColumnCommentEndTime(); ok {
		_spec.SetField(sqldb.FieldColumnCommentEndTime, field.TypeTime, value)
	}
	if _u.mutation.ColumnCommentEndTimeCleared() {
		_spec.ClearField(sqldb.FieldColumnCommentEndTime, field.TypeTime)
	}
	if _u.mutation.WorkspaceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VectorDbCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VectorDbIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TablesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTablesIDs(); len(nodes) > 0 && !_u.mutation.TablesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TablesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RelationshipsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRelationshipsIDs(); len(nodes) > 0 && !_u.mutation.RelationshipsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RelationshipsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SqlDb{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sqldb.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
