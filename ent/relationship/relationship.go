// Code generated by ent, DO NOT EDIT.

package relationship

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the relationship type in the database.
	Label = "relationship"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceTable holds the string denoting the source_table field in the database.
	FieldSourceTable = "source_table"
	// FieldSourceColumn holds the string denoting the source_column field in the database.
	FieldSourceColumn = "source_column"
	// FieldTargetTable holds the string denoting the target_table field in the database.
	FieldTargetTable = "target_table"
	// FieldTargetColumn holds the string denoting the target_column field in the database.
	FieldTargetColumn = "target_column"
	// EdgeSQLDb holds the string denoting the sql_db edge name in mutations.
	EdgeSQLDb = "sql_db"
	// Table holds the table name of the relationship in the database.
	Table = "relationships"
	// SQLDbTable is the table that holds the sql_db relation/edge.
	SQLDbTable = "relationships"
	// SQLDbInverseTable is the table name for the SqlDb entity.
	// It exists in this package in order to avoid circular dependency with the "sqldb" package.
	SQLDbInverseTable = "sql_dbs"
	// SQLDbColumn is the table column denoting the sql_db relation/edge.
	SQLDbColumn = "sql_db_relationships"
)

// Columns holds all SQL columns for relationship fields.
var Columns = []string{
	FieldID,
	FieldSourceTable,
	FieldSourceColumn,
	FieldTargetTable,
	FieldTargetColumn,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "relationships"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"sql_db_relationships",
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

// OrderOption defines the ordering options for the Relationship queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceTable orders the results by the source_table field.
func BySourceTable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceTable, opts...).ToFunc()
}

// BySourceColumn orders the results by the source_column field.
func BySourceColumn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceColumn, opts...).ToFunc()
}

// ByTargetTable orders the results by the target_table field.
func ByTargetTable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetTable, opts...).ToFunc()
}

// ByTargetColumn orders the results by the target_column field.
func ByTargetColumn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetColumn, opts...).ToFunc()
}

// BySQLDbField orders the results by sql_db field.
func BySQLDbField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSQLDbStep(), sql.OrderByField(field, opts...))
	}
}
func newSQLDbStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SQLDbInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SQLDbTable, SQLDbColumn),
	)
}
