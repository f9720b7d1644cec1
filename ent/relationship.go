// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/thoth-ai/thoth/ent/relationship"
	"github.com/thoth-ai/thoth/ent/sqldb"
)

// Relationship is the model entity for the Relationship schema.
type Relationship struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SourceTable holds the value of the "source_table" field.
	SourceTable string `json:"source_table,omitempty"`
	// SourceColumn holds the value of the "source_column" field.
	SourceColumn string `json:"source_column,omitempty"`
	// TargetTable holds the value of the "target_table" field.
	TargetTable string `json:"target_table,omitempty"`
	// TargetColumn holds the value of the "target_column" field.
	TargetColumn string `json:"target_column,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RelationshipQuery when eager-loading is set.
	Edges                RelationshipEdges `json:"edges"`
	sql_db_relationships *string
	selectValues         sql.SelectValues
}

// RelationshipEdges holds the relations/edges for other nodes in the graph.
type RelationshipEdges struct {
	// SQLDb holds the value of the sql_db edge.
	SQLDb *SqlDb `json:"sql_db,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SQLDbOrErr returns the SQLDb value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RelationshipEdges) SQLDbOrErr() (*SqlDb, error) {
	if e.SQLDb != nil {
		return e.SQLDb, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: sqldb.Label}
	}
	return nil, &NotLoadedError{edge: "sql_db"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Relationship) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case relationship.FieldID, relationship.FieldSourceTable, relationship.FieldSourceColumn, relationship.FieldTargetTable, relationship.FieldTargetColumn:
			values[i] = new(sql.NullString)
		case relationship.ForeignKeys[0]: // sql_db_relationships
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Relationship fields.
func (_m *Relationship) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case relationship.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case relationship.FieldSourceTable:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_table", values[i])
			} else if value.Valid {
				_m.SourceTable = value.String
			}
		case relationship.FieldSourceColumn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_column", values[i])
			} else if value.Valid {
				_m.SourceColumn = value.String
			}
		case relationship.FieldTargetTable:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_table", values[i])
			} else if value.Valid {
				_m.TargetTable = value.String
			}
		case relationship.FieldTargetColumn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_column", values[i])
			} else if value.Valid {
				_m.TargetColumn = value.String
			}
		case relationship.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sql_db_relationships", values[i])
			} else if value.Valid {
				_m.sql_db_relationships = new(string)
				*_m.sql_db_relationships = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Relationship.
// This includes values selected through modifiers, order, etc.
func (_m *Relationship) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySQLDb queries the "sql_db" edge of the Relationship entity.
func (_m *Relationship) QuerySQLDb() *SqlDbQuery {
	return NewRelationshipClient(_m.config).QuerySQLDb(_m)
}

// Update returns a builder for updating this Relationship.
// Note that you need to call Relationship.Unwrap() before calling this method if this Relationship
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Relationship) Update() *RelationshipUpdateOne {
	return NewRelationshipClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Relationship entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Relationship) Unwrap() *Relationship {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Relationship is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Relationship) String() string {
	var builder strings.Builder
	builder.WriteString("Relationship(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_table=")
	builder.WriteString(_m.SourceTable)
	builder.WriteString(", ")
	builder.WriteString("source_column=")
	builder.WriteString(_m.SourceColumn)
	builder.WriteString(", ")
	builder.WriteString("target_table=")
	builder.WriteString(_m.TargetTable)
	builder.WriteString(", ")
	builder.WriteString("target_column=")
	builder.WriteString(_m.TargetColumn)
	builder.WriteByte(')')
	return builder.String()
}

// Relationships is a parsable slice of Relationship.
type Relationships []*Relationship
