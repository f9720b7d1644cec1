// Code generated by ent, DO NOT EDIT.

package vectordb

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the vectordb type in the database.
	Label = "vector_db"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBackend holds the string denoting the backend field in the database.
	FieldBackend = "backend"
	// FieldHost holds the string denoting the host field in the database.
	FieldHost = "host"
	// FieldPort holds the string denoting the port field in the database.
	FieldPort = "port"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldPassword holds the string denoting the password field in the database.
	FieldPassword = "password"
	// FieldAPIKey holds the string denoting the api_key field in the database.
	FieldAPIKey = "api_key"
	// FieldTenant holds the string denoting the tenant field in the database.
	FieldTenant = "tenant"
	// FieldCollection holds the string denoting the collection field in the database.
	FieldCollection = "collection"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the vectordb in the database.
	Table = "vector_dbs"
)

// Columns holds all SQL columns for vectordb fields.
var Columns = []string{
	FieldID,
	FieldBackend,
	FieldHost,
	FieldPort,
	FieldUsername,
	FieldPassword,
	FieldAPIKey,
	FieldTenant,
	FieldCollection,
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

// Backend defines the type for the "backend" enum field.
type Backend string

// Backend values.
const (
	BackendQdrant   Backend = "Qdrant"
	BackendChroma   Backend = "Chroma"
	BackendPGVector Backend = "PGVector"
	BackendMilvus   Backend = "Milvus"
)

func (b Backend) String() string {
	return string(b)
}

// BackendValidator is a validator for the "backend" field enum values. It is called by the builders before save.
func BackendValidator(b Backend) error {
	switch b {
	case BackendQdrant, BackendChroma, BackendPGVector, BackendMilvus:
		return nil
	default:
		return fmt.Errorf("vectordb: invalid enum value for backend field: %q", b)
	}
}

// OrderOption defines the ordering options for the VectorDb queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBackend orders the results by the backend field.
func ByBackend(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBackend, opts...).ToFunc()
}

// ByHost orders the results by the host field.
func ByHost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHost, opts...).ToFunc()
}

// ByPort orders the results by the port field.
func ByPort(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPort, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByPassword orders the results by the password field.
func ByPassword(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassword, opts...).ToFunc()
}

// ByAPIKey orders the results by the api_key field.
func ByAPIKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPIKey, opts...).ToFunc()
}

// ByTenant orders the results by the tenant field.
func ByTenant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenant, opts...).ToFunc()
}

// ByCollection orders the results by the collection field.
func ByCollection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCollection, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
