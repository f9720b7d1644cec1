// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/thoth-ai/thoth/ent/sqldb"
	"github.com/thoth-ai/thoth/ent/sqltable"
)

// SqlTable is the model entity for the SqlTable schema.
type SqlTable struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Human-authored description
	Description string `json:"description,omitempty"`
	// LLM-generated description
	AiDescription string `json:"ai_description,omitempty"`
	// LLM-generated table comment from the comment job
	GeneratedComment string `json:"generated_comment,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SqlTableQuery when eager-loading is set.
	Edges         SqlTableEdges `json:"edges"`
	sql_db_tables *string
	selectValues  sql.SelectValues
}

// SqlTableEdges holds the relations/edges for other nodes in the graph.
type SqlTableEdges struct {
	// SQLDb holds the value of the sql_db edge.
	SQLDb *SqlDb `json:"sql_db,omitempty"`
	// Columns holds the value of the columns edge.
	Columns []*SqlColumn `json:"columns,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SQLDbOrErr returns the SQLDb value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SqlTableEdges) SQLDbOrErr() (*SqlDb, error) {
	if e.SQLDb != nil {
		return e.SQLDb, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: sqldb.Label}
	}
	return nil, &NotLoadedError{edge: "sql_db"}
}

// ColumnsOrErr returns the Columns value or an error if the edge
// was not loaded in eager-loading.
func (e SqlTableEdges) ColumnsOrErr() ([]*SqlColumn, error) {
	if e.loadedTypes[1] {
		return e.Columns, nil
	}
	return nil, &NotLoadedError{edge: "columns"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SqlTable) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sqltable.FieldID, sqltable.FieldName, sqltable.FieldDescription, sqltable.FieldAiDescription, sqltable.FieldGeneratedComment:
			values[i] = new(sql.NullString)
		case sqltable.ForeignKeys[0]: // sql_db_tables
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SqlTable fields.
func (_m *SqlTable) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sqltable.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sqltable.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case sqltable.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case sqltable.FieldAiDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ai_description", values[i])
			} else if value.Valid {
				_m.AiDescription = value.String
			}
		case sqltable.FieldGeneratedComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field generated_comment", values[i])
			} else if value.Valid {
				_m.GeneratedComment = value.String
			}
		case sqltable.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sql_db_tables", values[i])
			} else if value.Valid {
				_m.sql_db_tables = new(string)
				*_m.sql_db_tables = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SqlTable.
// This includes values selected through modifiers, order, etc.
func (_m *SqlTable) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySQLDb queries the "sql_db" edge of the SqlTable entity.
func (_m *SqlTable) QuerySQLDb() *SqlDbQuery {
	return NewSqlTableClient(_m.config).QuerySQLDb(_m)
}

// QueryColumns queries the "columns" edge of the SqlTable entity.
func (_m *SqlTable) QueryColumns() *SqlColumnQuery {
	return NewSqlTableClient(_m.config).QueryColumns(_m)
}

// Update returns a builder for updating this SqlTable.
// Note that you need to call SqlTable.Unwrap() before calling this method if this SqlTable
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SqlTable) Update() *SqlTableUpdateOne {
	return NewSqlTableClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SqlTable entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SqlTable) Unwrap() *SqlTable {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SqlTable is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SqlTable) String() string {
	var builder strings.Builder
	builder.WriteString("SqlTable(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("ai_description=")
	builder.WriteString(_m.AiDescription)
	builder.WriteString(", ")
	builder.WriteString("generated_comment=")
	builder.WriteString(_m.GeneratedComment)
	builder.WriteByte(')')
	return builder.String()
}

// SqlTables is a parsable slice of SqlTable.
type SqlTables []*SqlTable
