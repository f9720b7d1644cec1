// Code generated by ent, DO NOT EDIT.

package sqlcolumn

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the sqlcolumn type in the database.
	Label = "sql_column"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOriginalName holds the string denoting the original_name field in the database.
	FieldOriginalName = "original_name"
	// FieldNormalizedName holds the string denoting the normalized_name field in the database.
	FieldNormalizedName = "normalized_name"
	// FieldDataFormat holds the string denoting the data_format field in the database.
	FieldDataFormat = "data_format"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldAiDescription holds the string denoting the ai_description field in the database.
	FieldAiDescription = "ai_description"
	// FieldValueDescription holds the string denoting the value_description field in the database.
	FieldValueDescription = "value_description"
	// FieldPrimaryKey holds the string denoting the primary_key field in the database.
	FieldPrimaryKey = "primary_key"
	// FieldForeignKey holds the string denoting the foreign_key field in the database.
	FieldForeignKey = "foreign_key"
	// FieldGeneratedComment holds the string denoting the generated_comment field in the database.
	FieldGeneratedComment = "generated_comment"
	// EdgeSQLTable holds the string denoting the sql_table edge name in mutations.
	EdgeSQLTable = "sql_table"
	// Table holds the table name of the sqlcolumn in the database.
	Table = "sql_columns"
	// SQLTableTable is the table that holds the sql_table relation/edge.
	SQLTableTable = "sql_columns"
	// SQLTableInverseTable is the table name for the SqlTable entity.
	// It exists in this package in order to avoid circular dependency with the "sqltable" package.
	SQLTableInverseTable = "sql_tables"
	// SQLTableColumn is the table column denoting the sql_table relation/edge.
	SQLTableColumn = "sql_table_columns"
)

// Columns holds all SQL columns for sqlcolumn fields.
var Columns = []string{
	FieldID,
	FieldOriginalName,
	FieldNormalizedName,
	FieldDataFormat,
	FieldDescription,
	FieldAiDescription,
	FieldValueDescription,
	FieldPrimaryKey,
	FieldForeignKey,
	FieldGeneratedComment,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "sql_columns"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"sql_table_columns",
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

// OrderOption defines the ordering options for the SqlColumn queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOriginalName orders the results by the original_name field.
func ByOriginalName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalName, opts...).ToFunc()
}

// ByNormalizedName orders the results by the normalized_name field.
func ByNormalizedName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedName, opts...).ToFunc()
}

// ByDataFormat orders the results by the data_format field.
func ByDataFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataFormat, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByAiDescription orders the results by the ai_description field.
func ByAiDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiDescription, opts...).ToFunc()
}

// ByValueDescription orders the results by the value_description field.
func ByValueDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueDescription, opts...).ToFunc()
}

// ByPrimaryKey orders the results by the primary_key field.
func ByPrimaryKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimaryKey, opts...).ToFunc()
}

// ByForeignKey orders the results by the foreign_key field.
func ByForeignKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldForeignKey, opts...).ToFunc()
}

// ByGeneratedComment orders the results by the generated_comment field.
func ByGeneratedComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedComment, opts...).ToFunc()
}

// BySQLTableField orders the results by sql_table field.
func BySQLTableField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSQLTableStep(), sql.OrderByField(field, opts...))
	}
}
func newSQLTableStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SQLTableInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SQLTableTable, SQLTableColumn),
	)
}
