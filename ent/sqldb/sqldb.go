// Code generated by ent, DO NOT EDIT.

package sqldb

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the sqldb type in the database.
	Label = "sql_db"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDialect holds the string denoting the dialect field in the database.
	FieldDialect = "dialect"
	// FieldHost holds the string denoting the host field in the database.
	FieldHost = "host"
	// FieldPort holds the string denoting the port field in the database.
	FieldPort = "port"
	// FieldDatabase holds the string denoting the database field in the database.
	FieldDatabase = "database"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldPassword holds the string denoting the password field in the database.
	FieldPassword = "password"
	// FieldDbSchema holds the string denoting the db_schema field in the database.
	FieldDbSchema = "db_schema"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldDbElementsStatus holds the string denoting the db_elements_status field in the database.
	FieldDbElementsStatus = "db_elements_status"
	// FieldDbElementsTaskID holds the string denoting the db_elements_task_id field in the database.
	FieldDbElementsTaskID = "db_elements_task_id"
	// FieldDbElementsLog holds the string denoting the db_elements_log field in the database.
	FieldDbElementsLog = "db_elements_log"
	// FieldDbElementsStartTime holds the string denoting the db_elements_start_time field in the database.
	FieldDbElementsStartTime = "db_elements_start_time"
	// FieldDbElementsEndTime holds the string denoting the db_elements_end_time field in the database.
	FieldDbElementsEndTime = "db_elements_end_time"
	// FieldTableCommentStatus holds the string denoting the table_comment_status field in the database.
	FieldTableCommentStatus = "table_comment_status"
	// FieldTableCommentTaskID holds the string denoting the table_comment_task_id field in the database.
	FieldTableCommentTaskID = "table_comment_task_id"
	// FieldTableCommentLog holds the string denoting the table_comment_log field in the database.
	FieldTableCommentLog = "table_comment_log"
	// FieldTableCommentStartTime holds the string denoting the table_comment_start_time field in the database.
	FieldTableCommentStartTime = "table_comment_start_time"
	// FieldTableCommentEndTime holds the string denoting the table_comment_end_time field in the database.
	FieldTableCommentEndTime = "table_comment_end_time"
	// FieldColumnCommentStatus holds the string denoting the column_comment_status field in the database.
	FieldColumnCommentStatus = "column_comment_status"
	// FieldColumnCommentTaskID holds the string denoting the column_comment_task_id field in the database.
	FieldColumnCommentTaskID = "column_comment_task_id"
	// FieldColumnCommentLog holds the string denoting the column_comment_log field in the database.
	FieldColumnCommentLog = "column_comment_log"
	// FieldColumnCommentStartTime holds the string denoting the column_comment_start_time field in the database.
	FieldColumnCommentStartTime = "column_comment_start_time"
	// FieldColumnCommentEndTime holds the string denoting the column_comment_end_time field in the database.
	FieldColumnCommentEndTime = "column_comment_end_time"
	// EdgeWorkspace holds the string denoting the workspace edge name in mutations.
	EdgeWorkspace = "workspace"
	// EdgeVectorDb holds the string denoting the vector_db edge name in mutations.
	EdgeVectorDb = "vector_db"
	// EdgeTables holds the string denoting the tables edge name in mutations.
	EdgeTables = "tables"
	// EdgeRelationships holds the string denoting the relationships edge name in mutations.
	EdgeRelationships = "relationships"
	// Table holds the table name of the sqldb in the database.
	Table = "sql_dbs"
	// WorkspaceTable is the table that holds the workspace relation/edge.
	WorkspaceTable = "sql_dbs"
	// WorkspaceInverseTable is the table name for the Workspace entity.
	// It exists in this package in order to avoid circular dependency with the "workspace" package.
	WorkspaceInverseTable = "workspaces"
	// WorkspaceColumn is the table column denoting the workspace relation/edge.
	WorkspaceColumn = "workspace_sql_db"
	// VectorDbTable is the table that holds the vector_db relation/edge.
	VectorDbTable = "sql_dbs"
	// VectorDbInverseTable is the table name for the VectorDb entity.
	// It exists in this package in order to avoid circular dependency with the "vectordb" package.
	VectorDbInverseTable = "vector_dbs"
	// VectorDbColumn is the table column denoting the vector_db relation/edge.
	VectorDbColumn = "sql_db_vector_db"
	// TablesTable is the table that holds the tables relation/edge.
	TablesTable = "sql_tables"
	// TablesInverseTable is the table name for the SqlTable entity.
	// It exists in this package in order to avoid circular dependency with the "sqltable" package.
	TablesInverseTable = "sql_tables"
	// TablesColumn is the table column denoting the tables relation/edge.
	TablesColumn = "sql_db_tables"
	// RelationshipsTable is the table that holds the relationships relation/edge.
	RelationshipsTable = "relationships"
	// RelationshipsInverseTable is the table name for the Relationship entity.
	// It exists in this package in order to avoid circular dependency with the "relationship" package.
	RelationshipsInverseTable = "relationships"
	// RelationshipsColumn is the table column denoting the relationships relation/edge.
	RelationshipsColumn = "sql_db_relationships"
)

// Columns holds all SQL columns for sqldb fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDialect,
	FieldHost,
	FieldPort,
	FieldDatabase,
	FieldUsername,
	FieldPassword,
	FieldDbSchema,
	FieldCreatedAt,
	FieldDbElementsStatus,
	FieldDbElementsTaskID,
	FieldDbElementsLog,
	FieldDbElementsStartTime,
	FieldDbElementsEndTime,
	FieldTableCommentStatus,
	FieldTableCommentTaskID,
	FieldTableCommentLog,
	FieldTableCommentStartTime,
	FieldTableCommentEndTime,
	FieldColumnCommentStatus,
	FieldColumnCommentTaskID,
	FieldColumnCommentLog,
	FieldColumnCommentStartTime,
	FieldColumnCommentEndTime,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "sql_dbs"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"sql_db_vector_db",
	"workspace_sql_db",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Dialect defines the type for the "dialect" enum field.
type Dialect string

// Dialect values.
const (
	DialectPostgreSQL Dialect = "PostgreSQL"
	DialectMySQL      Dialect = "MySQL"
	DialectMariaDB    Dialect = "MariaDB"
	DialectSQLite     Dialect = "SQLite"
	DialectSQLServer  Dialect = "SQLServer"
	DialectOracle     Dialect = "Oracle"
)

func (d Dialect) String() string {
	return string(d)
}

// DialectValidator is a validator for the "dialect" field enum values. It is called by the builders before save.
func DialectValidator(d Dialect) error {
	switch d {
	case DialectPostgreSQL, DialectMySQL, DialectMariaDB, DialectSQLite, DialectSQLServer, DialectOracle:
		return nil
	default:
		return fmt.Errorf("sqldb: invalid enum value for dialect field: %q", d)
	}
}

// DbElementsStatus defines the type for the "db_elements_status" enum field.
type DbElementsStatus string

// DbElementsStatusIDLE is the default value of the DbElementsStatus enum.
const DefaultDbElementsStatus = DbElementsStatusIDLE

// DbElementsStatus values.
const (
	DbElementsStatusIDLE      DbElementsStatus = "IDLE"
	DbElementsStatusRUNNING   DbElementsStatus = "RUNNING"
	DbElementsStatusCOMPLETED DbElementsStatus = "COMPLETED"
	DbElementsStatusFAILED    DbElementsStatus = "FAILED"
)

func (des DbElementsStatus) String() string {
	return string(des)
}

// DbElementsStatusValidator is a validator for the "db_elements_status" field enum values. It is called by the builders before save.
func DbElementsStatusValidator(des DbElementsStatus) error {
	switch des {
	case DbElementsStatusIDLE, DbElementsStatusRUNNING, DbElementsStatusCOMPLETED, DbElementsStatusFAILED:
		return nil
	default:
		return fmt.Errorf("sqldb: invalid enum value for db_elements_status field: %q", des)
	}
}

// TableCommentStatus defines the type for the "table_comment_status" enum field.
type TableCommentStatus string

// TableCommentStatusIDLE is the default value of the TableCommentStatus enum.
const DefaultTableCommentStatus = TableCommentStatusIDLE

// TableCommentStatus values.
const (
	TableCommentStatusIDLE      TableCommentStatus = "IDLE"
	TableCommentStatusRUNNING   TableCommentStatus = "RUNNING"
	TableCommentStatusCOMPLETED TableCommentStatus = "COMPLETED"
	TableCommentStatusFAILED    TableCommentStatus = "FAILED"
)

func (tcs TableCommentStatus) String() string {
	return string(tcs)
}

// TableCommentStatusValidator is a validator for the "table_comment_status" field enum values. It is called by the builders before save.
func TableCommentStatusValidator(tcs TableCommentStatus) error {
	switch tcs {
	case TableCommentStatusIDLE, TableCommentStatusRUNNING, TableCommentStatusCOMPLETED, TableCommentStatusFAILED:
		return nil
	default:
		return fmt.Errorf("sqldb: invalid enum value for table_comment_status field: %q", tcs)
	}
}

// ColumnCommentStatus defines the type for the "column_comment_status" enum field.
type ColumnCommentStatus string

// ColumnCommentStatusIDLE is the default value of the ColumnCommentStatus enum.
const DefaultColumnCommentStatus = ColumnCommentStatusIDLE

// ColumnCommentStatus values.
const (
	ColumnCommentStatusIDLE      ColumnCommentStatus = "IDLE"
	ColumnCommentStatusRUNNING   ColumnCommentStatus = "RUNNING"
	ColumnCommentStatusCOMPLETED ColumnCommentStatus = "COMPLETED"
	ColumnCommentStatusFAILED    ColumnCommentStatus = "FAILED"
)

func (ccs ColumnCommentStatus) String() string {
	return string(ccs)
}

// ColumnCommentStatusValidator is a validator for the "column_comment_status" field enum values. It is called by the builders before save.
func ColumnCommentStatusValidator(ccs ColumnCommentStatus) error {
	switch ccs {
	case ColumnCommentStatusIDLE, ColumnCommentStatusRUNNING, ColumnCommentStatusCOMPLETED, ColumnCommentStatusFAILED:
		return nil
	default:
		return fmt.Errorf("sqldb: invalid enum value for column_comment_status field: %q", ccs)
	}
}

// OrderOption defines the ordering options for the SqlDb queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDialect orders the results by the dialect field.
func ByDialect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDialect, opts...).ToFunc()
}

// ByHost orders the results by the host field.
func ByHost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHost, opts...).ToFunc()
}

// ByPort orders the results by the port field.
func ByPort(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPort, opts...).ToFunc()
}

// ByDatabase orders the results by the database field.
func ByDatabase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDatabase, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByPassword orders the results by the password field.
func ByPassword(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassword, opts...).ToFunc()
}

// ByDbSchema orders the results by the db_schema field.
func ByDbSchema(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDbSchema, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDbElementsStatus orders the results by the db_elements_status field.
func ByDbElementsStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDbElementsStatus, opts...).ToFunc()
}

// ByDbElementsTaskID orders the results by the db_elements_task_id field.
func ByDbElementsTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDbElementsTaskID, opts...).ToFunc()
}

// ByDbElementsLog orders the results by the db_elements_log field.
func ByDbElementsLog(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDbElementsLog, opts...).ToFunc()
}

// ByDbElementsStartTime orders the results by the db_elements_start_time field.
func ByDbElementsStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDbElementsStartTime, opts...).ToFunc()
}

// ByDbElementsEndTime orders the results by the db_elements_end_time field.
func ByDbElementsEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDbElementsEndTime, opts...).ToFunc()
}

// ByTableCommentStatus orders the results by the table_comment_status field.
func ByTableCommentStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTableCommentStatus, opts...).ToFunc()
}

// ByTableCommentTaskID orders the results by the table_comment_task_id field.
func ByTableCommentTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTableCommentTaskID, opts...).ToFunc()
}

// ByTableCommentLog orders the results by the table_comment_log field.
func ByTableCommentLog(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTableCommentLog, opts...).ToFunc()
}

// ByTableCommentStartTime orders the results by the table_comment_start_time field.
func ByTableCommentStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTableCommentStartTime, opts...).ToFunc()
}

// ByTableCommentEndTime orders the results by the table_comment_end_time field.
func ByTableCommentEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTableCommentEndTime, opts...).ToFunc()
}

// ByColumnCommentStatus orders the results by the column_comment_status field.
func ByColumnCommentStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColumnCommentStatus, opts...).ToFunc()
}

// ByColumnCommentTaskID orders the results by the column_comment_task_id field.
func ByColumnCommentTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColumnCommentTaskID, opts...).ToFunc()
}

// ByColumnCommentLog orders the results by the column_comment_log field.
func ByColumnCommentLog(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColumnCommentLog, opts...).ToFunc()
}

// ByColumnCommentStartTime orders the results by the column_comment_start_time field.
func ByColumnCommentStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColumnCommentStartTime, opts...).ToFunc()
}

// ByColumnCommentEndTime orders the results by the column_comment_end_time field.
func ByColumnCommentEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColumnCommentEndTime, opts...).ToFunc()
}

// ByWorkspaceField orders the results by workspace field.
func ByWorkspaceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkspaceStep(), sql.OrderByField(field, opts...))
	}
}

// ByVectorDbField orders the results by vector_db field.
func ByVectorDbField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVectorDbStep(), sql.OrderByField(field, opts...))
	}
}

// ByTablesCount orders the results by tables count.
func ByTablesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTablesStep(), opts...)
	}
}

// ByTables orders the results by tables terms.
func ByTables(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTablesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRelationshipsCount orders the results by relationships count.
func ByRelationshipsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRelationshipsStep(), opts...)
	}
}

// ByRelationships orders the results by relationships terms.
func ByRelationships(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRelationshipsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newWorkspaceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkspaceInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, WorkspaceTable, WorkspaceColumn),
	)
}
func newVectorDbStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VectorDbInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, VectorDbTable, VectorDbColumn),
	)
}
func newTablesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TablesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TablesTable, TablesColumn),
	)
}
func newRelationshipsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RelationshipsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RelationshipsTable, RelationshipsColumn),
	)
}
