// Code generated by ent, DO NOT EDIT.

package vectordocument

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the vectordocument type in the database.
	Label = "vector_document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCollection holds the string denoting the collection field in the database.
	FieldCollection = "collection"
	// FieldDocType holds the string denoting the doc_type field in the database.
	FieldDocType = "doc_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldFields holds the string denoting the fields field in the database.
	FieldFields = "fields"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the vectordocument in the database.
	Table = "vector_documents"
)

// Columns holds all SQL columns for vectordocument fields.
var Columns = []string{
	FieldID,
	FieldCollection,
	FieldDocType,
	FieldContent,
	FieldFields,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// DocType defines the type for the "doc_type" enum field.
type DocType string

// DocType values.
const (
	DocTypeEvidence DocType = "evidence"
	DocTypeColumn   DocType = "column"
	DocTypeSQL      DocType = "sql"
)

func (dt DocType) String() string {
	return string(dt)
}

// DocTypeValidator is a validator for the "doc_type" field enum values. It is called by the builders before save.
func DocTypeValidator(dt DocType) error {
	switch dt {
	case DocTypeEvidence, DocTypeColumn, DocTypeSQL:
		return nil
	default:
		return fmt.Errorf("vectordocument: invalid enum value for doc_type field: %q", dt)
	}
}

// OrderOption defines the ordering options for the VectorDocument queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCollection orders the results by the collection field.
func ByCollection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCollection, opts...).ToFunc()
}

// ByDocType orders the results by the doc_type field.
func ByDocType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocType, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
