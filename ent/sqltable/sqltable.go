// Code generated by ent, DO NOT EDIT.

package sqltable

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the sqltable type in the database.
	Label = "sql_table"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldAiDescription holds the string denoting the ai_description field in the database.
	FieldAiDescription = "ai_description"
	// FieldGeneratedComment holds the string denoting the generated_comment field in the database.
	FieldGeneratedComment = "generated_comment"
	// EdgeSQLDb holds the string denoting the sql_db edge name in mutations.
	EdgeSQLDb = "sql_db"
	// EdgeColumns holds the string denoting the columns edge name in mutations.
	EdgeColumns = "columns"
	// Table holds the table name of the sqltable in the database.
	Table = "sql_tables"
	// SQLDbTable is the table that holds the sql_db relation/edge.
	SQLDbTable = "sql_tables"
	// SQLDbInverseTable is the table name for the SqlDb entity.
	// It exists in this package in order to avoid circular dependency with the "sqldb" package.
	SQLDbInverseTable = "sql_dbs"
	// SQLDbColumn is the table column denoting the sql_db relation/edge.
	SQLDbColumn = "sql_db_tables"
	// ColumnsTable is the table that holds the columns relation/edge.
	ColumnsTable = "sql_columns"
	// ColumnsInverseTable is the table name for the SqlColumn entity.
	// It exists in this package in order to avoid circular dependency with the "sqlcolumn" package.
	ColumnsInverseTable = "sql_columns"
	// ColumnsColumn is the table column denoting the columns relation/edge.
	ColumnsColumn = "sql_table_columns"
)

// Columns holds all SQL columns for sqltable fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
	FieldAiDescription,
	FieldGeneratedComment,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "sql_tables"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"sql_db_tables",
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

// OrderOption defines the ordering options for the SqlTable queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByAiDescription orders the results by the ai_description field.
func ByAiDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiDescription, opts...).ToFunc()
}

// ByGeneratedComment orders the results by the generated_comment field.
func ByGeneratedComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedComment, opts...).ToFunc()
}

// BySQLDbField orders the results by sql_db field.
func BySQLDbField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSQLDbStep(), sql.OrderByField(field, opts...))
	}
}

// ByColumnsCount orders the results by columns count.
func ByColumnsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newColumnsStep(), opts...)
	}
}

// ByColumns orders the results by columns terms.
func ByColumns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newColumnsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSQLDbStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SQLDbInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SQLDbTable, SQLDbColumn),
	)
}
func newColumnsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ColumnsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ColumnsTable, ColumnsColumn),
	)
}
