// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/thoth-ai/thoth/ent/sqlcolumn"
	"github.com/thoth-ai/thoth/ent/sqltable"
)

// SqlColumn is the model entity for the SqlColumn schema.
type SqlColumn struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Column name as it appears in the target database
	OriginalName string `json:"original_name,omitempty"`
	// Lower-cased, underscore-normalized name used in prompts
	NormalizedName string `json:"normalized_name,omitempty"`
	// Declared column type, e.g. INTEGER, VARCHAR(40)
	DataFormat string `json:"data_format,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// AiDescription holds the value of the "ai_description" field.
	AiDescription string `json:"ai_description,omitempty"`
	// Explanation of value semantics, e.g. code lists
	ValueDescription string `json:"value_description,omitempty"`
	// Non-empty when the column is part of the primary key
	PrimaryKey string `json:"primary_key,omitempty"`
	// Non-empty when the column participates in a foreign key
	ForeignKey string `json:"foreign_key,omitempty"`
	// GeneratedComment holds the value of the "generated_comment" field.
	GeneratedComment string `json:"generated_comment,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SqlColumnQuery when eager-loading is set.
	Edges             SqlColumnEdges `json:"edges"`
	sql_table_columns *string
	selectValues      sql.SelectValues
}

// SqlColumnEdges holds the relations/edges for other nodes in the graph.
type SqlColumnEdges struct {
	// SQLTable holds the value of the sql_table edge.
	SQLTable *SqlTable `json:"sql_table,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SQLTableOrErr returns the SQLTable value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SqlColumnEdges) SQLTableOrErr() (*SqlTable, error) {
	if e.SQLTable != nil {
		return e.SQLTable, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: sqltable.Label}
	}
	return nil, &NotLoadedError{edge: "sql_table"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SqlColumn) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sqlcolumn.FieldID, sqlcolumn.FieldOriginalName, sqlcolumn.FieldNormalizedName, sqlcolumn.FieldDataFormat, sqlcolumn.FieldDescription, sqlcolumn.FieldAiDescription, sqlcolumn.FieldValueDescription, sqlcolumn.FieldPrimaryKey, sqlcolumn.FieldForeignKey, sqlcolumn.FieldGeneratedComment:
			values[i] = new(sql.NullString)
		case sqlcolumn.ForeignKeys[0]: // sql_table_columns
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SqlColumn fields.
func (_m *SqlColumn) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sqlcolumn.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sqlcolumn.FieldOriginalName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_name", values[i])
			} else if value.Valid {
				_m.OriginalName = value.String
			}
		case sqlcolumn.FieldNormalizedName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_name", values[i])
			} else if value.Valid {
				_m.NormalizedName = value.String
			}
		case sqlcolumn.FieldDataFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field data_format", values[i])
			} else if value.Valid {
				_m.DataFormat = value.String
			}
		case sqlcolumn.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case sqlcolumn.FieldAiDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ai_description", values[i])
			} else if value.Valid {
				_m.AiDescription = value.String
			}
		case sqlcolumn.FieldValueDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value_description", values[i])
			} else if value.Valid {
				_m.ValueDescription = value.String
			}
		case sqlcolumn.FieldPrimaryKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_key", values[i])
			} else if value.Valid {
				_m.PrimaryKey = value.String
			}
		case sqlcolumn.FieldForeignKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field foreign_key", values[i])
			} else if value.Valid {
				_m.ForeignKey = value.String
			}
		case sqlcolumn.FieldGeneratedComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field generated_comment", values[i])
			} else if value.Valid {
				_m.GeneratedComment = value.String
			}
		case sqlcolumn.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sql_table_columns", values[i])
			} else if value.Valid {
				_m.sql_table_columns = new(string)
				*_m.sql_table_columns = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SqlColumn.
// This includes values selected through modifiers, order, etc.
func (_m *SqlColumn) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySQLTable queries the "sql_table" edge of the SqlColumn entity.
func (_m *SqlColumn) QuerySQLTable() *SqlTableQuery {
	return NewSqlColumnClient(_m.config).QuerySQLTable(_m)
}

// Update returns a builder for updating this SqlColumn.
// Note that you need to call SqlColumn.Unwrap() before calling this method if this SqlColumn
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SqlColumn) Update() *SqlColumnUpdateOne {
	return NewSqlColumnClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SqlColumn entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SqlColumn) Unwrap() *SqlColumn {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SqlColumn is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SqlColumn) String() string {
	var builder strings.Builder
	builder.WriteString("SqlColumn(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("original_name=")
	builder.WriteString(_m.OriginalName)
	builder.WriteString(", ")
	builder.WriteString("normalized_name=")
	builder.WriteString(_m.NormalizedName)
	builder.WriteString(", ")
	builder.WriteString("data_format=")
	builder.WriteString(_m.DataFormat)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("ai_description=")
	builder.WriteString(_m.AiDescription)
	builder.WriteString(", ")
	builder.WriteString("value_description=")
	builder.WriteString(_m.ValueDescription)
	builder.WriteString(", ")
	builder.WriteString("primary_key=")
	builder.WriteString(_m.PrimaryKey)
	builder.WriteString(", ")
	builder.WriteString("foreign_key=")
	builder.WriteString(_m.ForeignKey)
	builder.WriteString(", ")
	builder.WriteString("generated_comment=")
	builder.WriteString(_m.GeneratedComment)
	builder.WriteByte(')')
	return builder.String()
}

// SqlColumns is a parsable slice of SqlColumn.
type SqlColumns []*SqlColumn
