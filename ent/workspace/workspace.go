// Code generated by ent, DO NOT EDIT.

package workspace

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workspace type in the database.
	Label = "workspace"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDefaultModel holds the string denoting the default_model field in the database.
	FieldDefaultModel = "default_model"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldAgentSlots holds the string denoting the agent_slots field in the database.
	FieldAgentSlots = "agent_slots"
	// FieldLastPreprocess holds the string denoting the last_preprocess field in the database.
	FieldLastPreprocess = "last_preprocess"
	// FieldLastEvidenceLoad holds the string denoting the last_evidence_load field in the database.
	FieldLastEvidenceLoad = "last_evidence_load"
	// FieldLastSQLLoaded holds the string denoting the last_sql_loaded field in the database.
	FieldLastSQLLoaded = "last_sql_loaded"
	// FieldUsers holds the string denoting the users field in the database.
	FieldUsers = "users"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSQLDb holds the string denoting the sql_db edge name in mutations.
	EdgeSQLDb = "sql_db"
	// EdgeThothLogs holds the string denoting the thoth_logs edge name in mutations.
	EdgeThothLogs = "thoth_logs"
	// Table holds the table name of the workspace in the database.
	Table = "workspaces"
	// SQLDbTable is the table that holds the sql_db relation/edge.
	SQLDbTable = "sql_dbs"
	// SQLDbInverseTable is the table name for the SqlDb entity.
	// It exists in this package in order to avoid circular dependency with the "sqldb" package.
	SQLDbInverseTable = "sql_dbs"
	// SQLDbColumn is the table column denoting the sql_db relation/edge.
	SQLDbColumn = "workspace_sql_db"
	// ThothLogsTable is the table that holds the thoth_logs relation/edge.
	ThothLogsTable = "thoth_logs"
	// ThothLogsInverseTable is the table name for the ThothLog entity.
	// It exists in this package in order to avoid circular dependency with the "thothlog" package.
	ThothLogsInverseTable = "thoth_logs"
	// ThothLogsColumn is the table column denoting the thoth_logs relation/edge.
	ThothLogsColumn = "workspace_thoth_logs"
)

// Columns holds all SQL columns for workspace fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDefaultModel,
	FieldLanguage,
	FieldAgentSlots,
	FieldLastPreprocess,
	FieldLastEvidenceLoad,
	FieldLastSQLLoaded,
	FieldUsers,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultLanguage holds the default value on creation for the "language" field.
	DefaultLanguage string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Workspace queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDefaultModel orders the results by the default_model field.
func ByDefaultModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultModel, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByLastPreprocess orders the results by the last_preprocess field.
func ByLastPreprocess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPreprocess, opts...).ToFunc()
}

// ByLastEvidenceLoad orders the results by the last_evidence_load field.
func ByLastEvidenceLoad(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastEvidenceLoad, opts...).ToFunc()
}

// ByLastSQLLoaded orders the results by the last_sql_loaded field.
func ByLastSQLLoaded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSQLLoaded, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySQLDbField orders the results by sql_db field.
func BySQLDbField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSQLDbStep(), sql.OrderByField(field, opts...))
	}
}

// ByThothLogsCount orders the results by thoth_logs count.
func ByThothLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newThothLogsStep(), opts...)
	}
}

// ByThothLogs orders the results by thoth_logs terms.
func ByThothLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newThothLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSQLDbStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SQLDbInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, SQLDbTable, SQLDbColumn),
	)
}
func newThothLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ThothLogsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ThothLogsTable, ThothLogsColumn),
	)
}
