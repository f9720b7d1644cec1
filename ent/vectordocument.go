// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/thoth-ai/thoth/ent/vectordocument"
)

// VectorDocument is the model entity for the VectorDocument schema.
type VectorDocument struct {
	config `json:"-"`
	// ID of the ent.
	// Stable document ID, also stored as metadata in the backend
	ID string `json:"id,omitempty"`
	// Collection holds the value of the "collection" field.
	Collection string `json:"collection,omitempty"`
	// DocType holds the value of the "doc_type" field.
	DocType vectordocument.DocType `json:"doc_type,omitempty"`
	// Text that was embedded
	Content string `json:"content,omitempty"`
	// Typed payload: evidence/column/sql specific fields
	Fields map[string]interface{} `json:"fields,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VectorDocument) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vectordocument.FieldFields:
			values[i] = new([]byte)
		case vectordocument.FieldID, vectordocument.FieldCollection, vectordocument.FieldDocType, vectordocument.FieldContent:
			values[i] = new(sql.NullString)
		case vectordocument.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VectorDocument fields.
func (_m *VectorDocument) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vectordocument.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case vectordocument.FieldCollection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field collection", values[i])
			} else if value.Valid {
				_m.Collection = value.String
			}
		case vectordocument.FieldDocType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_type", values[i])
			} else if value.Valid {
				_m.DocType = vectordocument.DocType(value.String)
			}
		case vectordocument.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case vectordocument.FieldFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Fields); err != nil {
					return fmt.Errorf("unmarshal field fields: %w", err)
				}
			}
		case vectordocument.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VectorDocument.
// This includes values selected through modifiers, order, etc.
func (_m *VectorDocument) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this VectorDocument.
// Note that you need to call VectorDocument.Unwrap() before calling this method if this VectorDocument
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VectorDocument) Update() *VectorDocumentUpdateOne {
	return NewVectorDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VectorDocument entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VectorDocument) Unwrap() *VectorDocument {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VectorDocument is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VectorDocument) String() string {
	var builder strings.Builder
	builder.WriteString("VectorDocument(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("collection=")
	builder.WriteString(_m.Collection)
	builder.WriteString(", ")
	builder.WriteString("doc_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocType))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fields))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// VectorDocuments is a parsable slice of VectorDocument.
type VectorDocuments []*VectorDocument
