// Code generated by ent, DO NOT EDIT.

package thothlog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the thothlog type in the database.
	Label = "thoth_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQuestion holds the string denoting the question field in the database.
	FieldQuestion = "question"
	// FieldSQL holds the string denoting the sql field in the database.
	FieldSQL = "sql"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldAgentName holds the string denoting the agent_name field in the database.
	FieldAgentName = "agent_name"
	// FieldSQLStatus holds the string denoting the sql_status field in the database.
	FieldSQLStatus = "sql_status"
	// FieldEvaluationCase holds the string denoting the evaluation_case field in the database.
	FieldEvaluationCase = "evaluation_case"
	// FieldPassRate holds the string denoting the pass_rate field in the database.
	FieldPassRate = "pass_rate"
	// FieldPassRates holds the string denoting the pass_rates field in the database.
	FieldPassRates = "pass_rates"
	// FieldTestsUsed holds the string denoting the tests_used field in the database.
	FieldTestsUsed = "tests_used"
	// FieldEvidenceUsed holds the string denoting the evidence_used field in the database.
	FieldEvidenceUsed = "evidence_used"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeWorkspace holds the string denoting the workspace edge name in mutations.
	EdgeWorkspace = "workspace"
	// Table holds the table name of the thothlog in the database.
	Table = "thoth_logs"
	// WorkspaceTable is the table that holds the workspace relation/edge.
	WorkspaceTable = "thoth_logs"
	// WorkspaceInverseTable is the table name for the Workspace entity.
	// It exists in this package in order to avoid circular dependency with the "workspace" package.
	WorkspaceInverseTable = "workspaces"
	// WorkspaceColumn is the table column denoting the workspace relation/edge.
	WorkspaceColumn = "workspace_thoth_logs"
)

// Columns holds all SQL columns for thothlog fields.
var Columns = []string{
	FieldID,
	FieldQuestion,
	FieldSQL,
	FieldUsername,
	FieldAgentName,
	FieldSQLStatus,
	FieldEvaluationCase,
	FieldPassRate,
	FieldPassRates,
	FieldTestsUsed,
	FieldEvidenceUsed,
	FieldStartedAt,
	FieldDurationMs,
	FieldCreatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "thoth_logs"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"workspace_thoth_logs",
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
	// DefaultPassRate holds the default value on creation for the "pass_rate" field.
	DefaultPassRate float64
	// DefaultDurationMs holds the default value on creation for the "duration_ms" field.
	DefaultDurationMs int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// SQLStatus defines the type for the "sql_status" enum field.
type SQLStatus string

// SQLStatus values.
const (
	SQLStatusGOLD   SQLStatus = "GOLD"
	SQLStatusSILVER SQLStatus = "SILVER"
	SQLStatusFAILED SQLStatus = "FAILED"
)

func (ss SQLStatus) String() string {
	return string(ss)
}

// SQLStatusValidator is a validator for the "sql_status" field enum values. It is called by the builders before save.
func SQLStatusValidator(ss SQLStatus) error {
	switch ss {
	case SQLStatusGOLD, SQLStatusSILVER, SQLStatusFAILED:
		return nil
	default:
		return fmt.Errorf("thothlog: invalid enum value for sql_status field: %q", ss)
	}
}

// OrderOption defines the ordering options for the ThothLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQuestion orders the results by the question field.
func ByQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestion, opts...).ToFunc()
}

// BySQL orders the results by the sql field.
func BySQL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSQL, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByAgentName orders the results by the agent_name field.
func ByAgentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentName, opts...).ToFunc()
}

// BySQLStatus orders the results by the sql_status field.
func BySQLStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSQLStatus, opts...).ToFunc()
}

// ByEvaluationCase orders the results by the evaluation_case field.
func ByEvaluationCase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluationCase, opts...).ToFunc()
}

// ByPassRate orders the results by the pass_rate field.
func ByPassRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassRate, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByWorkspaceField orders the results by workspace field.
func ByWorkspaceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkspaceStep(), sql.OrderByField(field, opts...))
	}
}
func newWorkspaceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkspaceInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
	)
}
