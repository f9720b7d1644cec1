// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/thoth-ai/thoth/ent/predicate"
	"github.com/thoth-ai/thoth/ent/relationship"
	"github.com/thoth-ai/thoth/ent/sqlcolumn"
	"github.com/thoth-ai/thoth/ent/sqldb"
	"github.com/thoth-ai/thoth/ent/sqltable"
	"github.com/thoth-ai/thoth/ent/thothlog"
	"github.com/thoth-ai/thoth/ent/vectordb"
	"github.com/thoth-ai/thoth/ent/vectordocument"
	"github.com/thoth-ai/thoth/ent/workspace"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeRelationship   = "Relationship"
	TypeSqlColumn      = "SqlColumn"
	TypeSqlDb          = "SqlDb"
	TypeSqlTable       = "SqlTable"
	TypeThothLog       = "ThothLog"
	TypeVectorDb       = "VectorDb"
	TypeVectorDocument = "VectorDocument"
	TypeWorkspace      = "Workspace"
)

// RelationshipMutation represents an operation that mutates the Relationship nodes in the graph.
type RelationshipMutation struct {
	config
	op            Op
	typ           string
	id            *string
	source_table  *string
	source_column *string
	target_table  *string
	target_column *string
	clearedFields map[string]struct{}
	sql_db        *string
	clearedsql_db bool
	done          bool
	oldValue      func(context.Context) (*Relationship, error)
	predicates    []predicate.Relationship
}

var _ ent.Mutation = (*RelationshipMutation)(nil)

// relationshipOption allows management of the mutation configuration using functional options.
type relationshipOption func(*RelationshipMutation)

// newRelationshipMutation creates new mutation for the Relationship entity.
func newRelationshipMutation(c config, op Op, opts ...relationshipOption) *RelationshipMutation {
	m := &RelationshipMutation{
		config:        c,
		op:            op,
		typ:           TypeRelationship,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRelationshipID sets the ID field of the mutation.
func withRelationshipID(id string) relationshipOption {
	return func(m *RelationshipMutation) {
		var (
			err   error
			once  sync.Once
			value *Relationship
		)
		m.oldValue = func(ctx context.Context) (*Relationship, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Relationship.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRelationship sets the old Relationship of the mutation.
func withRelationship(node *Relationship) relationshipOption {
	return func(m *RelationshipMutation) {
		m.oldValue = func(context.Context) (*Relationship, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RelationshipMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RelationshipMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Relationship entities.
func (m *RelationshipMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RelationshipMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RelationshipMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Relationship.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceTable sets the "source_table" field.
func (m *RelationshipMutation) SetSourceTable(s string) {
	m.source_table = &s
}

// SourceTable returns the value of the "source_table" field in the mutation.
func (m *RelationshipMutation) SourceTable() (r string, exists bool) {
	v := m.source_table
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceTable returns the old "source_table" field's value of the Relationship entity.
// If the Relationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelationshipMutation) OldSourceTable(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceTable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceTable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceTable: %w", err)
	}
	return oldValue.SourceTable, nil
}

// ResetSourceTable resets all changes to the "source_table" field.
func (m *RelationshipMutation) ResetSourceTable() {
	m.source_table = nil
}

// SetSourceColumn sets the "source_column" field.
func (m *RelationshipMutation) SetSourceColumn(s string) {
	m.source_column = &s
}

// SourceColumn returns the value of the "source_column" field in the mutation.
func (m *RelationshipMutation) SourceColumn() (r string, exists bool) {
	v := m.source_column
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceColumn returns the old "source_column" field's value of the Relationship entity.
// If the Relationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelationshipMutation) OldSourceColumn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceColumn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceColumn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceColumn: %w", err)
	}
	return oldValue.SourceColumn, nil
}

// ResetSourceColumn resets all changes to the "source_column" field.
func (m *RelationshipMutation) ResetSourceColumn() {
	m.source_column = nil
}

// SetTargetTable sets the "target_table" field.
func (m *RelationshipMutation) SetTargetTable(s string) {
	m.target_table = &s
}

// TargetTable returns the value of the "target_table" field in the mutation.
func (m *RelationshipMutation) TargetTable() (r string, exists bool) {
	v := m.target_table
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetTable returns the old "target_table" field's value of the Relationship entity.
// If the Relationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelationshipMutation) OldTargetTable(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetTable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetTable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetTable: %w", err)
	}
	return oldValue.TargetTable, nil
}

// ResetTargetTable resets all changes to the "target_table" field.
func (m *RelationshipMutation) ResetTargetTable() {
	m.target_table = nil
}

// SetTargetColumn sets the "target_column" field.
func (m *RelationshipMutation) SetTargetColumn(s string) {
	m.target_column = &s
}

// TargetColumn returns the value of the "target_column" field in the mutation.
func (m *RelationshipMutation) TargetColumn() (r string, exists bool) {
	v := m.target_column
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetColumn returns the old "target_column" field's value of the Relationship entity.
// If the Relationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelationshipMutation) OldTargetColumn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetColumn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetColumn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetColumn: %w", err)
	}
	return oldValue.TargetColumn, nil
}

// ResetTargetColumn resets all changes to the "target_column" field.
func (m *RelationshipMutation) ResetTargetColumn() {
	m.target_column = nil
}

// SetSQLDbID sets the "sql_db" edge to the SqlDb entity by id.
func (m *RelationshipMutation) SetSQLDbID(id string) {
	m.sql_db = &id
}

// ClearSQLDb clears the "sql_db" edge to the SqlDb entity.
func (m *RelationshipMutation) ClearSQLDb() {
	m.clearedsql_db = true
}

// SQLDbCleared reports if the "sql_db" edge to the SqlDb entity was cleared.
func (m *RelationshipMutation) SQLDbCleared() bool {
	return m.clearedsql_db
}

// SQLDbID returns the "sql_db" edge ID in the mutation.
func (m *RelationshipMutation) SQLDbID() (id string, exists bool) {
	if m.sql_db != nil {
		return *m.sql_db, true
	}
	return
}

// SQLDbIDs returns the "sql_db" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SQLDbID instead. It exists only for internal usage by the builders.
func (m *RelationshipMutation) SQLDbIDs() (ids []string) {
	if id := m.sql_db; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSQLDb resets all changes to the "sql_db" edge.
func (m *RelationshipMutation) ResetSQLDb() {
	m.sql_db = nil
	m.clearedsql_db = false
}

// Where appends a list predicates to the RelationshipMutation builder.
func (m *RelationshipMutation) Where(ps ...predicate.Relationship) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RelationshipMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RelationshipMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Relationship, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RelationshipMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RelationshipMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Relationship).
func (m *RelationshipMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RelationshipMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.source_table != nil {
		fields = append(fields, relationship.FieldSourceTable)
	}
	if m.source_column != nil {
		fields = append(fields, relationship.FieldSourceColumn)
	}
	if m.target_table != nil {
		fields = append(fields, relationship.FieldTargetTable)
	}
	if m.target_column != nil {
		fields = append(fields, relationship.FieldTargetColumn)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RelationshipMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case relationship.FieldSourceTable:
		return m.SourceTable()
	case relationship.FieldSourceColumn:
		return m.SourceColumn()
	case relationship.FieldTargetTable:
		return m.TargetTable()
	case relationship.FieldTargetColumn:
		return m.TargetColumn()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RelationshipMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case relationship.FieldSourceTable:
		return m.OldSourceTable(ctx)
	case relationship.FieldSourceColumn:
		return m.OldSourceColumn(ctx)
	case relationship.FieldTargetTable:
		return m.OldTargetTable(ctx)
	case relationship.FieldTargetColumn:
		return m.OldTargetColumn(ctx)
	}
	return nil, fmt.Errorf("unknown Relationship field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RelationshipMutation) SetField(name string, value ent.Value) error {
	switch name {
	case relationship.FieldSourceTable:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceTable(v)
		return nil
	case relationship.FieldSourceColumn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceColumn(v)
		return nil
	case relationship.FieldTargetTable:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetTable(v)
		return nil
	case relationship.FieldTargetColumn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetColumn(v)
		return nil
	}
	return fmt.Errorf("unknown Relationship field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RelationshipMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RelationshipMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RelationshipMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Relationship numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RelationshipMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RelationshipMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RelationshipMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Relationship nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RelationshipMutation) ResetField(name string) error {
	switch name {
	case relationship.FieldSourceTable:
		m.ResetSourceTable()
		return nil
	case relationship.FieldSourceColumn:
		m.ResetSourceColumn()
		return nil
	case relationship.FieldTargetTable:
		m.ResetTargetTable()
		return nil
	case relationship.FieldTargetColumn:
		m.ResetTargetColumn()
		return nil
	}
	return fmt.Errorf("unknown Relationship field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RelationshipMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.sql_db != nil {
		edges = append(edges, relationship.EdgeSQLDb)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RelationshipMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case relationship.EdgeSQLDb:
		if id := m.sql_db; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RelationshipMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RelationshipMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RelationshipMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsql_db {
		edges = append(edges, relationship.EdgeSQLDb)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RelationshipMutation) EdgeCleared(name string) bool {
	switch name {
	case relationship.EdgeSQLDb:
		return m.clearedsql_db
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RelationshipMutation) ClearEdge(name string) error {
	switch name {
	case relationship.EdgeSQLDb:
		m.ClearSQLDb()
		return nil
	}
	return fmt.Errorf("unknown Relationship unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RelationshipMutation) ResetEdge(name string) error {
	switch name {
	case relationship.EdgeSQLDb:
		m.ResetSQLDb()
		return nil
	}
	return fmt.Errorf("unknown Relationship edge %s", name)
}

// SqlColumnMutation represents an operation that mutates the SqlColumn nodes in the graph.
type SqlColumnMutation struct {
	config
	op                Op
	typ               string
	id                *string
	original_name     *string
	normalized_name   *string
	data_format       *string
	description       *string
	ai_description    *string
	value_description *string
	primary_key       *string
	foreign_key       *string
	generated_comment *string
	clearedFields     map[string]struct{}
	sql_table         *string
	clearedsql_table  bool
	done              bool
	oldValue          func(context.Context) (*SqlColumn, error)
	predicates        []predicate.SqlColumn
}

var _ ent.Mutation = (*SqlColumnMutation)(nil)

// sqlcolumnOption allows management of the mutation configuration using functional options.
type sqlcolumnOption func(*SqlColumnMutation)

// newSqlColumnMutation creates new mutation for the SqlColumn entity.
func newSqlColumnMutation(c config, op Op, opts ...sqlcolumnOption) *SqlColumnMutation {
	m := &SqlColumnMutation{
		config:        c,
		op:            op,
		typ:           TypeSqlColumn,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSqlColumnID sets the ID field of the mutation.
func withSqlColumnID(id string) sqlcolumnOption {
	return func(m *SqlColumnMutation) {
		var (
			err   error
			once  sync.Once
			value *SqlColumn
		)
		m.oldValue = func(ctx context.Context) (*SqlColumn, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SqlColumn.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSqlColumn sets the old SqlColumn of the mutation.
func withSqlColumn(node *SqlColumn) sqlcolumnOption {
	return func(m *SqlColumnMutation) {
		m.oldValue = func(context.Context) (*SqlColumn, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SqlColumnMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SqlColumnMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SqlColumn entities.
func (m *SqlColumnMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SqlColumnMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SqlColumnMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SqlColumn.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOriginalName sets the "original_name" field.
func (m *SqlColumnMutation) SetOriginalName(s string) {
	m.original_name = &s
}

// OriginalName returns the value of the "original_name" field in the mutation.
func (m *SqlColumnMutation) OriginalName() (r string, exists bool) {
	v := m.original_name
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalName returns the old "original_name" field's value of the SqlColumn entity.
// If the SqlColumn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlColumnMutation) OldOriginalName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalName: %w", err)
	}
	return oldValue.OriginalName, nil
}

// ResetOriginalName resets all changes to the "original_name" field.
func (m *SqlColumnMutation) ResetOriginalName() {
	m.original_name = nil
}

// SetNormalizedName sets the "normalized_name" field.
func (m *SqlColumnMutation) SetNormalizedName(s string) {
	m.normalized_name = &s
}

// NormalizedName returns the value of the "normalized_name" field in the mutation.
func (m *SqlColumnMutation) NormalizedName() (r string, exists bool) {
	v := m.normalized_name
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedName returns the old "normalized_name" field's value of the SqlColumn entity.
// If the SqlColumn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlColumnMutation) OldNormalizedName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedName: %w", err)
	}
	return oldValue.NormalizedName, nil
}

// ResetNormalizedName resets all changes to the "normalized_name" field.
func (m *SqlColumnMutation) ResetNormalizedName() {
	m.normalized_name = nil
}

// SetDataFormat sets the "data_format" field.
func (m *SqlColumnMutation) SetDataFormat(s string) {
	m.data_format = &s
}

// DataFormat returns the value of the "data_format" field in the mutation.
func (m *SqlColumnMutation) DataFormat() (r string, exists bool) {
	v := m.data_format
	if v == nil {
		return
	}
	return *v, true
}

// OldDataFormat returns the old "data_format" field's value of the SqlColumn entity.
// If the SqlColumn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlColumnMutation) OldDataFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataFormat: %w", err)
	}
	return oldValue.DataFormat, nil
}

// ClearDataFormat clears the value of the "data_format" field.
func (m *SqlColumnMutation) ClearDataFormat() {
	m.data_format = nil
	m.clearedFields[sqlcolumn.FieldDataFormat] = struct{}{}
}

// DataFormatCleared returns if the "data_format" field was cleared in this mutation.
func (m *SqlColumnMutation) DataFormatCleared() bool {
	_, ok := m.clearedFields[sqlcolumn.FieldDataFormat]
	return ok
}

// ResetDataFormat resets all changes to the "data_format" field.
func (m *SqlColumnMutation) ResetDataFormat() {
	m.data_format = nil
	delete(m.clearedFields, sqlcolumn.FieldDataFormat)
}

// SetDescription sets the "description" field.
func (m *SqlColumnMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SqlColumnMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the SqlColumn entity.
// If the SqlColumn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlColumnMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SqlColumnMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[sqlcolumn.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SqlColumnMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[sqlcolumn.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SqlColumnMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, sqlcolumn.FieldDescription)
}

// SetAiDescription sets the "ai_description" field.
func (m *SqlColumnMutation) SetAiDescription(s string) {
	m.ai_description = &s
}

// AiDescription returns the value of the "ai_description" field in the mutation.
func (m *SqlColumnMutation) AiDescription() (r string, exists bool) {
	v := m.ai_description
	if v == nil {
		return
	}
	return *v, true
}

// OldAiDescription returns the old "ai_description" field's value of the SqlColumn entity.
// If the SqlColumn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlColumnMutation) OldAiDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiDescription: %w", err)
	}
	return oldValue.AiDescription, nil
}

// ClearAiDescription clears the value of the "ai_description" field.
func (m *SqlColumnMutation) ClearAiDescription() {
	m.ai_description = nil
	m.clearedFields[sqlcolumn.FieldAiDescription] = struct{}{}
}

// AiDescriptionCleared returns if the "ai_description" field was cleared in this mutation.
func (m *SqlColumnMutation) AiDescriptionCleared() bool {
	_, ok := m.clearedFields[sqlcolumn.FieldAiDescription]
	return ok
}

// ResetAiDescription resets all changes to the "ai_description" field.
func (m *SqlColumnMutation) ResetAiDescription() {
	m.ai_description = nil
	delete(m.clearedFields, sqlcolumn.FieldAiDescription)
}

// SetValueDescription sets the "value_description" field.
func (m *SqlColumnMutation) SetValueDescription(s string) {
	m.value_description = &s
}

// ValueDescription returns the value of the "value_description" field in the mutation.
func (m *SqlColumnMutation) ValueDescription() (r string, exists bool) {
	v := m.value_description
	if v == nil {
		return
	}
	return *v, true
}

// OldValueDescription returns the old "value_description" field's value of the SqlColumn entity.
// If the SqlColumn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlColumnMutation) OldValueDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueDescription: %w", err)
	}
	return oldValue.ValueDescription, nil
}

// ClearValueDescription clears the value of the "value_description" field.
func (m *SqlColumnMutation) ClearValueDescription() {
	m.value_description = nil
	m.clearedFields[sqlcolumn.FieldValueDescription] = struct{}{}
}

// ValueDescriptionCleared returns if the "value_description" field was cleared in this mutation.
func (m *SqlColumnMutation) ValueDescriptionCleared() bool {
	_, ok := m.clearedFields[sqlcolumn.FieldValueDescription]
	return ok
}

// ResetValueDescription resets all changes to the "value_description" field.
func (m *SqlColumnMutation) ResetValueDescription() {
	m.value_description = nil
	delete(m.clearedFields, sqlcolumn.FieldValueDescription)
}

// SetPrimaryKey sets the "primary_key" field.
func (m *SqlColumnMutation) SetPrimaryKey(s string) {
	m.primary_key = &s
}

// PrimaryKey returns the value of the "primary_key" field in the mutation.
func (m *SqlColumnMutation) PrimaryKey() (r string, exists bool) {
	v := m.primary_key
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimaryKey returns the old "primary_key" field's value of the SqlColumn entity.
// If the SqlColumn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlColumnMutation) OldPrimaryKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimaryKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimaryKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimaryKey: %w", err)
	}
	return oldValue.PrimaryKey, nil
}

// ClearPrimaryKey clears the value of the "primary_key" field.
func (m *SqlColumnMutation) ClearPrimaryKey() {
	m.primary_key = nil
	m.clearedFields[sqlcolumn.FieldPrimaryKey] = struct{}{}
}

// PrimaryKeyCleared returns if the "primary_key" field was cleared in this mutation.
func (m *SqlColumnMutation) PrimaryKeyCleared() bool {
	_, ok := m.clearedFields[sqlcolumn.FieldPrimaryKey]
	return ok
}

// ResetPrimaryKey resets all changes to the "primary_key" field.
func (m *SqlColumnMutation) ResetPrimaryKey() {
	m.primary_key = nil
	delete(m.clearedFields, sqlcolumn.FieldPrimaryKey)
}

// SetForeignKey sets the "foreign_key" field.
func (m *SqlColumnMutation) SetForeignKey(s string) {
	m.foreign_key = &s
}

// ForeignKey returns the value of the "foreign_key" field in the mutation.
func (m *SqlColumnMutation) ForeignKey() (r string, exists bool) {
	v := m.foreign_key
	if v == nil {
		return
	}
	return *v, true
}

// OldForeignKey returns the old "foreign_key" field's value of the SqlColumn entity.
// If the SqlColumn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlColumnMutation) OldForeignKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForeignKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForeignKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForeignKey: %w", err)
	}
	return oldValue.ForeignKey, nil
}

// ClearForeignKey clears the value of the "foreign_key" field.
func (m *SqlColumnMutation) ClearForeignKey() {
	m.foreign_key = nil
	m.clearedFields[sqlcolumn.FieldForeignKey] = struct{}{}
}

// ForeignKeyCleared returns if the "foreign_key" field was cleared in this mutation.
func (m *SqlColumnMutation) ForeignKeyCleared() bool {
	_, ok := m.clearedFields[sqlcolumn.FieldForeignKey]
	return ok
}

// ResetForeignKey resets all changes to the "foreign_key" field.
func (m *SqlColumnMutation) ResetForeignKey() {
	m.foreign_key = nil
	delete(m.clearedFields, sqlcolumn.FieldForeignKey)
}

// SetGeneratedComment sets the "generated_comment" field.
func (m *SqlColumnMutation) SetGeneratedComment(s string) {
	m.generated_comment = &s
}

// GeneratedComment returns the value of the "generated_comment" field in the mutation.
func (m *SqlColumnMutation) GeneratedComment() (r string, exists bool) {
	v := m.generated_comment
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedComment returns the old "generated_comment" field's value of the SqlColumn entity.
// If the SqlColumn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlColumnMutation) OldGeneratedComment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedComment: %w", err)
	}
	return oldValue.GeneratedComment, nil
}

// ClearGeneratedComment clears the value of the "generated_comment" field.
func (m *SqlColumnMutation) ClearGeneratedComment() {
	m.generated_comment = nil
	m.clearedFields[sqlcolumn.FieldGeneratedComment] = struct{}{}
}

// GeneratedCommentCleared returns if the "generated_comment" field was cleared in this mutation.
func (m *SqlColumnMutation) GeneratedCommentCleared() bool {
	_, ok := m.clearedFields[sqlcolumn.FieldGeneratedComment]
	return ok
}

// ResetGeneratedComment resets all changes to the "generated_comment" field.
func (m *SqlColumnMutation) ResetGeneratedComment() {
	m.generated_comment = nil
	delete(m.clearedFields, sqlcolumn.FieldGeneratedComment)
}

// SetSQLTableID sets the "sql_table" edge to the SqlTable entity by id.
func (m *SqlColumnMutation) SetSQLTableID(id string) {
	m.sql_table = &id
}

// ClearSQLTable clears the "sql_table" edge to the SqlTable entity.
func (m *SqlColumnMutation) ClearSQLTable() {
	m.clearedsql_table = true
}

// SQLTableCleared reports if the "sql_table" edge to the SqlTable entity was cleared.
func (m *SqlColumnMutation) SQLTableCleared() bool {
	return m.clearedsql_table
}

// SQLTableID returns the "sql_table" edge ID in the mutation.
func (m *SqlColumnMutation) SQLTableID() (id string, exists bool) {
	if m.sql_table != nil {
		return *m.sql_table, true
	}
	return
}

// SQLTableIDs returns the "sql_table" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SQLTableID instead. It exists only for internal usage by the builders.
func (m *SqlColumnMutation) SQLTableIDs() (ids []string) {
	if id := m.sql_table; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSQLTable resets all changes to the "sql_table" edge.
func (m *SqlColumnMutation) ResetSQLTable() {
	m.sql_table = nil
	m.clearedsql_table = false
}

// Where appends a list predicates to the SqlColumnMutation builder.
func (m *SqlColumnMutation) Where(ps ...predicate.SqlColumn) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SqlColumnMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SqlColumnMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SqlColumn, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SqlColumnMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SqlColumnMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SqlColumn).
func (m *SqlColumnMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SqlColumnMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.original_name != nil {
		fields = append(fields, sqlcolumn.FieldOriginalName)
	}
	if m.normalized_name != nil {
		fields = append(fields, sqlcolumn.FieldNormalizedName)
	}
	if m.data_format != nil {
		fields = append(fields, sqlcolumn.FieldDataFormat)
	}
	if m.description != nil {
		fields = append(fields, sqlcolumn.FieldDescription)
	}
	if m.ai_description != nil {
		fields = append(fields, sqlcolumn.FieldAiDescription)
	}
	if m.value_description != nil {
		fields = append(fields, sqlcolumn.FieldValueDescription)
	}
	if m.primary_key != nil {
		fields = append(fields, sqlcolumn.FieldPrimaryKey)
	}
	if m.foreign_key != nil {
		fields = append(fields, sqlcolumn.FieldForeignKey)
	}
	if m.generated_comment != nil {
		fields = append(fields, sqlcolumn.FieldGeneratedComment)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SqlColumnMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sqlcolumn.FieldOriginalName:
		return m.OriginalName()
	case sqlcolumn.FieldNormalizedName:
		return m.NormalizedName()
	case sqlcolumn.FieldDataFormat:
		return m.DataFormat()
	case sqlcolumn.FieldDescription:
		return m.Description()
	case sqlcolumn.FieldAiDescription:
		return m.AiDescription()
	case sqlcolumn.FieldValueDescription:
		return m.ValueDescription()
	case sqlcolumn.FieldPrimaryKey:
		return m.PrimaryKey()
	case sqlcolumn.FieldForeignKey:
		return m.ForeignKey()
	case sqlcolumn.FieldGeneratedComment:
		return m.GeneratedComment()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SqlColumnMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sqlcolumn.FieldOriginalName:
		return m.OldOriginalName(ctx)
	case sqlcolumn.FieldNormalizedName:
		return m.OldNormalizedName(ctx)
	case sqlcolumn.FieldDataFormat:
		return m.OldDataFormat(ctx)
	case sqlcolumn.FieldDescription:
		return m.OldDescription(ctx)
	case sqlcolumn.FieldAiDescription:
		return m.OldAiDescription(ctx)
	case sqlcolumn.FieldValueDescription:
		return m.OldValueDescription(ctx)
	case sqlcolumn.FieldPrimaryKey:
		return m.OldPrimaryKey(ctx)
	case sqlcolumn.FieldForeignKey:
		return m.OldForeignKey(ctx)
	case sqlcolumn.FieldGeneratedComment:
		return m.OldGeneratedComment(ctx)
	}
	return nil, fmt.Errorf("unknown SqlColumn field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SqlColumnMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sqlcolumn.FieldOriginalName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalName(v)
		return nil
	case sqlcolumn.FieldNormalizedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedName(v)
		return nil
	case sqlcolumn.FieldDataFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataFormat(v)
		return nil
	case sqlcolumn.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case sqlcolumn.FieldAiDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiDescription(v)
		return nil
	case sqlcolumn.FieldValueDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueDescription(v)
		return nil
	case sqlcolumn.FieldPrimaryKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimaryKey(v)
		return nil
	case sqlcolumn.FieldForeignKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForeignKey(v)
		return nil
	case sqlcolumn.FieldGeneratedComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedComment(v)
		return nil
	}
	return fmt.Errorf("unknown SqlColumn field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SqlColumnMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SqlColumnMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SqlColumnMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SqlColumn numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SqlColumnMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sqlcolumn.FieldDataFormat) {
		fields = append(fields, sqlcolumn.FieldDataFormat)
	}
	if m.FieldCleared(sqlcolumn.FieldDescription) {
		fields = append(fields, sqlcolumn.FieldDescription)
	}
	if m.FieldCleared(sqlcolumn.FieldAiDescription) {
		fields = append(fields, sqlcolumn.FieldAiDescription)
	}
	if m.FieldCleared(sqlcolumn.FieldValueDescription) {
		fields = append(fields, sqlcolumn.FieldValueDescription)
	}
	if m.FieldCleared(sqlcolumn.FieldPrimaryKey) {
		fields = append(fields, sqlcolumn.FieldPrimaryKey)
	}
	if m.FieldCleared(sqlcolumn.FieldForeignKey) {
		fields = append(fields, sqlcolumn.FieldForeignKey)
	}
	if m.FieldCleared(sqlcolumn.FieldGeneratedComment) {
		fields = append(fields, sqlcolumn.FieldGeneratedComment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SqlColumnMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SqlColumnMutation) ClearField(name string) error {
	switch name {
	case sqlcolumn.FieldDataFormat:
		m.ClearDataFormat()
		return nil
	case sqlcolumn.FieldDescription:
		m.ClearDescription()
		return nil
	case sqlcolumn.FieldAiDescription:
		m.ClearAiDescription()
		return nil
	case sqlcolumn.FieldValueDescription:
		m.ClearValueDescription()
		return nil
	case sqlcolumn.FieldPrimaryKey:
		m.ClearPrimaryKey()
		return nil
	case sqlcolumn.FieldForeignKey:
		m.ClearForeignKey()
		return nil
	case sqlcolumn.FieldGeneratedComment:
		m.ClearGeneratedComment()
		return nil
	}
	return fmt.Errorf("unknown SqlColumn nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SqlColumnMutation) ResetField(name string) error {
	switch name {
	case sqlcolumn.FieldOriginalName:
		m.ResetOriginalName()
		return nil
	case sqlcolumn.FieldNormalizedName:
		m.ResetNormalizedName()
		return nil
	case sqlcolumn.FieldDataFormat:
		m.ResetDataFormat()
		return nil
	case sqlcolumn.FieldDescription:
		m.ResetDescription()
		return nil
	case sqlcolumn.FieldAiDescription:
		m.ResetAiDescription()
		return nil
	case sqlcolumn.FieldValueDescription:
		m.ResetValueDescription()
		return nil
	case sqlcolumn.FieldPrimaryKey:
		m.ResetPrimaryKey()
		return nil
	case sqlcolumn.FieldForeignKey:
		m.ResetForeignKey()
		return nil
	case sqlcolumn.FieldGeneratedComment:
		m.ResetGeneratedComment()
		return nil
	}
	return fmt.Errorf("unknown SqlColumn field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SqlColumnMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.sql_table != nil {
		edges = append(edges, sqlcolumn.EdgeSQLTable)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SqlColumnMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sqlcolumn.EdgeSQLTable:
		if id := m.sql_table; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SqlColumnMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SqlColumnMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SqlColumnMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsql_table {
		edges = append(edges, sqlcolumn.EdgeSQLTable)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SqlColumnMutation) EdgeCleared(name string) bool {
	switch name {
	case sqlcolumn.EdgeSQLTable:
		return m.clearedsql_table
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SqlColumnMutation) ClearEdge(name string) error {
	switch name {
	case sqlcolumn.EdgeSQLTable:
		m.ClearSQLTable()
		return nil
	}
	return fmt.Errorf("unknown SqlColumn unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SqlColumnMutation) ResetEdge(name string) error {
	switch name {
	case sqlcolumn.EdgeSQLTable:
		m.ResetSQLTable()
		return nil
	}
	return fmt.Errorf("unknown SqlColumn edge %s", name)
}

// SqlDbMutation represents an operation that mutates the SqlDb nodes in the graph.
type SqlDbMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	name                      *string
	dialect                   *sqldb.Dialect
	host                      *string
	port                      *int
	addport                   *int
	database                  *string
	username                  *string
	password                  *string
	db_schema                 *string
	created_at                *time.Time
	db_elements_status        *sqldb.DbElementsStatus
	db_elements_task_id       *string
	db_elements_log           *string
	db_elements_start_time    *time.Time
	db_elements_end_time      *time.Time
	table_comment_status      *sqldb.TableCommentStatus
	table_comment_task_id     *string
	table_comment_log         *string
	table_comment_start_time  *time.Time
	table_comment_end_time    *time.Time
	column_comment_status     *sqldb.ColumnCommentStatus
	column_comment_task_id    *string
	column_comment_log        *string
	column_comment_start_time *time.Time
	column_comment_end_time   *time.Time
	clearedFields             map[string]struct{}
	workspace                 *string
	clearedworkspace          bool
	vector_db                 *string
	clearedvector_db          bool
	tables                    map[string]struct{}
	removedtables             map[string]struct{}
	clearedtables             bool
	relationships             map[string]struct{}
	removedrelationships      map[string]struct{}
	clearedrelationships      bool
	done                      bool
	oldValue                  func(context.Context) (*SqlDb, error)
	predicates                []predicate.SqlDb
}

var _ ent.Mutation = (*SqlDbMutation)(nil)

// sqldbOption allows management of the mutation configuration using functional options.
type sqldbOption func(*SqlDbMutation)

// newSqlDbMutation creates new mutation for the SqlDb entity.
func newSqlDbMutation(c config, op Op, opts ...sqldbOption) *SqlDbMutation {
	m := &SqlDbMutation{
		config:        c,
		op:            op,
		typ:           TypeSqlDb,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSqlDbID sets the ID field of the mutation.
func withSqlDbID(id string) sqldbOption {
	return func(m *SqlDbMutation) {
		var (
			err   error
			once  sync.Once
			value *SqlDb
		)
		m.oldValue = func(ctx context.Context) (*SqlDb, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SqlDb.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSqlDb sets the old SqlDb of the mutation.
func withSqlDb(node *SqlDb) sqldbOption {
	return func(m *SqlDbMutation) {
		m.oldValue = func(context.Context) (*SqlDb, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SqlDbMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SqlDbMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SqlDb entities.
func (m *SqlDbMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SqlDbMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SqlDbMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SqlDb.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SqlDbMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SqlDbMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the SqlDb entity.
// If the SqlDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlDbMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SqlDbMutation) ResetName() {
	m.name = nil
}

// SetDialect sets the "dialect" field.
func (m *SqlDbMutation) SetDialect(s sqldb.Dialect) {
	m.dialect = &s
}

// Dialect returns the value of the "dialect" field in the mutation.
func (m *SqlDbMutation) Dialect() (r sqldb.Dialect, exists bool) {
	v := m.dialect
	if v == nil {
		return
	}
	return *v, true
}

// OldDialect returns the old "dialect" field's value of the SqlDb entity.
// If the SqlDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlDbMutation) OldDialect(ctx context.Context) (v sqldb.Dialect, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDialect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDialect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDialect: %w", err)
	}
	return oldValue.Dialect, nil
}

// ResetDialect resets all changes to the "dialect" field.
func (m *SqlDbMutation) ResetDialect() {
	m.dialect = nil
}

// SetHost sets the "host" field.
func (m *SqlDbMutation) SetHost(s string) {
	m.host = &s
}

// Host returns the value of the "host" field in the mutation.
func (m *SqlDbMutation) Host() (r string, exists bool) {
	v := m.host
	if v == nil {
		return
	}
	return *v, true
}

// OldHost returns the old "host" field's value of the SqlDb entity.
// If the SqlDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlDbMutation) OldHost(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHost: %w", err)
	}
	return oldValue.Host, nil
}

// ClearHost clears the value of the "host" field.
func (m *SqlDbMutation) ClearHost() {
	m.host = nil
	m.clearedFields[sqldb.FieldHost] = struct{}{}
}

// HostCleared returns if the "host" field was cleared in this mutation.
func (m *SqlDbMutation) HostCleared() bool {
	_, ok := m.clearedFields[sqldb.FieldHost]
	return ok
}

// ResetHost resets all changes to the "host" field.
func (m *SqlDbMutation) ResetHost() {
	m.host = nil
	delete(m.clearedFields, sqldb.FieldHost)
}

// SetPort sets the "port" field.
func (m *SqlDbMutation) SetPort(i int) {
	m.port = &i
	m.addport = nil
}

// Port returns the value of the "port" field in the mutation.
func (m *SqlDbMutation) Port() (r int, exists bool) {
	v := m.port
	if v == nil {
		return
	}
	return *v, true
}

// OldPort returns the old "port" field's value of the SqlDb entity.
// If the SqlDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlDbMutation) OldPort(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPort: %w", err)
	}
	return oldValue.Port, nil
}

// AddPort adds i to the "port" field.
func (m *SqlDbMutation) AddPort(i int) {
	if m.addport != nil {
		*m.addport += i
	} else {
		m.addport = &i
	}
}

// AddedPort returns the value that was added to the "port" field in this mutation.
func (m *SqlDbMutation) AddedPort() (r int, exists bool) {
	v := m.addport
	if v == nil {
		return
	}
	return *v, true
}

// ClearPort clears the value of the "port" field.
func (m *SqlDbMutation) ClearPort() {
	m.port = nil
	m.addport = nil
	m.clearedFields[sqldb.FieldPort] = struct{}{}
}

// PortCleared returns if the "port" field was cleared in this mutation.
func (m *SqlDbMutation) PortCleared() bool {
	_, ok := m.clearedFields[sqldb.FieldPort]
	return ok
}

// ResetPort resets all changes to the "port" field.
func (m *SqlDbMutation) ResetPort() {
	m.port = nil
	m.addport = nil
	delete(m.clearedFields, sqldb.FieldPort)
}

// SetDatabase sets the "database" field.
func (m *SqlDbMutation) SetDatabase(s string) {
	m.database = &s
}

// Database returns the value of the "database" field in the mutation.
func (m *SqlDbMutation) Database() (r string, exists bool) {
	v := m.database
	if v == nil {
		return
	}
	return *v, true
}

// OldDatabase returns the old "database" field's value of the SqlDb entity.
// If the SqlDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlDbMutation) OldDatabase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatabase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatabase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatabase: %w", err)
	}
	return oldValue.Database, nil
}

// ClearDatabase clears the value of the "database" field.
func (m *SqlDbMutation) ClearDatabase() {
	m.database = nil
	m.clearedFields[sqldb.FieldDatabase] = struct{}{}
}

// DatabaseCleared returns if the "database" field was cleared in this mutation.
func (m *SqlDbMutation) DatabaseCleared() bool {
	_, ok := m.clearedFields[sqldb.FieldDatabase]
	return ok
}

// ResetDatabase resets all changes to the "database" field.
func (m *SqlDbMutation) ResetDatabase() {
	m.database = nil
	delete(m.clearedFields, sqldb.FieldDatabase)
}

// SetUsername sets the "username" field.
func (m *SqlDbMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *SqlDbMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the SqlDb entity.
// If the SqlDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlDbMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ClearUsername clears the value of the "username" field.
func (m *SqlDbMutation) ClearUsername() {
	m.username = nil
	m.clearedFields[sqldb.FieldUsername] = struct{}{}
}

// UsernameCleared returns if the "username" field was cleared in this mutation.
func (m *SqlDbMutation) UsernameCleared() bool {
	_, ok := m.clearedFields[sqldb.FieldUsername]
	return ok
}

// ResetUsername resets all changes to the "username" field.
func (m *SqlDbMutation) ResetUsername() {
	m.username = nil
	delete(m.clearedFields, sqldb.FieldUsername)
}

// SetPassword sets the "password" field.
func (m *SqlDbMutation) SetPassword(s string) {
	m.password = &s
}

// Password returns the value of the "password" field in the mutation.
func (m *SqlDbMutation) Password() (r string, exists bool) {
	v := m.password
	if v == nil {
		return
	}
	return *v, true
}

// OldPassword returns the old "password" field's value of the SqlDb entity.
// If the SqlDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlDbMutation) OldPassword(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassword is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassword requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassword: %w", err)
	}
	return oldValue.Password, nil
}

// ClearPassword clears the value of the "password" field.
func (m *SqlDbMutation) ClearPassword() {
	m.password = nil
	m.clearedFields[sqldb.FieldPassword] = struct{}{}
}

// PasswordCleared returns if the "password" field was cleared in this mutation.
func (m *SqlDbMutation) PasswordCleared() bool {
	_, ok := m.clearedFields[sqldb.FieldPassword]
	return ok
}

// ResetPassword resets all changes to the "password" field.
func (m *SqlDbMutation) ResetPassword() {
	m.password = nil
	delete(m.clearedFields, sqldb.FieldPassword)
}

// SetDbSchema sets the "db_schema" field.
func (m *SqlDbMutation) SetDbSchema(s string) {
	m.db_schema = &s
}

// DbSchema returns the value of the "db_schema" field in the mutation.
func (m *SqlDbMutation) DbSchema() (r string, exists bool) {
	v := m.db_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldDbSchema returns the old "db_schema" field's value of the SqlDb entity.
// If the SqlDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlDbMutation) OldDbSchema(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDbSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDbSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDbSchema: %w", err)
	}
	return oldValue.DbSchema, nil
}

// ClearDbSchema clears the value of the "db_schema" field.
func (m *SqlDbMutation) ClearDbSchema() {
	m.db_schema = nil
	m.clearedFields[sqldb.FieldDbSchema] = struct{}{}
}

// DbSchemaCleared returns if the "db_schema" field was cleared in this mutation.
func (m *SqlDbMutation) DbSchemaCleared() bool {
	_, ok := m.clearedFields[sqldb.FieldDbSchema]
	return ok
}

// ResetDbSchema resets all changes to the "db_schema" field.
func (m *SqlDbMutation) ResetDbSchema() {
	m.db_schema = nil
	delete(m.clearedFields, sqldb.FieldDbSchema)
}

// SetCreatedAt sets the "created_at" field.
func (m *SqlDbMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SqlDbMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SqlDb entity.
// If the SqlDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlDbMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SqlDbMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDbElementsStatus sets the "db_elements_status" field.
func (m *SqlDbMutation) SetDbElementsStatus(ses sqldb.DbElementsStatus) {
	m.db_elements_status = &ses
}

// DbElementsStatus returns the value of the "db_elements_status" field in the mutation.
func (m *SqlDbMutation) DbElementsStatus() (r sqldb.DbElementsStatus, exists bool) {
	v := m.db_elements_status
	if v == nil {
		return
	}
	return *v, true
}

// OldDbElementsStatus returns the old "db_elements_status" field's value of the SqlDb entity.
// If the SqlDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlDbMutation) OldDbElementsStatus(ctx context.Context) (v sqldb.DbElementsStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDbElementsStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDbElementsStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDbElementsStatus: %w", err)
	}
	return oldValue.DbElementsStatus, nil
}

// ResetDbElementsStatus resets all changes to the "db_elements_status" field.
func (m *SqlDbMutation) ResetDbElementsStatus() {
	m.db_elements_status = nil
}

// SetDbElementsTaskID sets the "db_elements_task_id" field.
func (m *SqlDbMutation) SetDbElementsTaskID(s string) {
	m.db_elements_task_id = &s
}

// DbElementsTaskID returns the value of the "db_elements_task_id" field in the mutation.
func (m *SqlDbMutation) DbElementsTaskID() (r string, exists bool) {
	v := m.db_elements_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDbElementsTaskID returns the old "db_elements_task_id" field's value of the SqlDb entity.
// If the SqlDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlDbMutation) OldDbElementsTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDbElementsTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDbElementsTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDbElementsTaskID: %w", err)
	}
	return oldValue.DbElementsTaskID, nil
}

// ClearDbElementsTaskID clears the value of the "db_elements_task_id" field.
func (m *SqlDbMutation) ClearDbElementsTaskID() {
	m.db_elements_task_id = nil
	m.clearedFields[sqldb.FieldDbElementsTaskID] = struct{}{}
}

// DbElementsTaskIDCleared returns if the "db_elements_task_id" field was cleared in this mutation.
func (m *SqlDbMutation) DbElementsTaskIDCleared() bool {
	_, ok := m.clearedFields[sqldb.FieldDbElementsTaskID]
	return ok
}

// ResetDbElementsTaskID resets all changes to the "db_elements_task_id" field.
func (m *SqlDbMutation) ResetDbElementsTaskID() {
	m.db_elements_task_id = nil
	delete(m.clearedFields, sqldb.FieldDbElementsTaskID)
}

// SetDbElementsLog sets the "db_elements_log" field.
func (m *SqlDbMutation) SetDbElementsLog(s string) {
	m.db_elements_log = &s
}

// DbElementsLog returns the value of the "db_elements_log" field in the mutation.
func (m *SqlDbMutation) DbElementsLog() (r string, exists bool) {
	v := m.db_elements_log
	if v == nil {
		return
	}
	return *v, true
}

// OldDbElementsLog returns the old "db_elements_log" field's value of the SqlDb entity.
// If the SqlDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlDbMutation) OldDbElementsLog(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDbElementsLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDbElementsLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDbElementsLog: %w", err)
	}
	return oldValue.DbElementsLog, nil
}

// ClearDbElementsLog clears the value of the "db_elements_log" field.
func (m *SqlDbMutation) ClearDbElementsLog() {
	m.db_elements_log = nil
	m.clearedFields[sqldb.FieldDbElementsLog] = struct{}{}
}

// DbElementsLogCleared returns if the "db_elements_log" field was cleared in this mutation.
func (m *SqlDbMutation) DbElementsLogCleared() bool {
	_, ok := m.clearedFields[sqldb.FieldDbElementsLog]
	return ok
}

// ResetDbElementsLog resets all changes to the "db_elements_log" field.
func (m *SqlDbMutation) ResetDbElementsLog() {
	m.db_elements_log = nil
	delete(m.clearedFields, sqldb.FieldDbElementsLog)
}

// SetDbElementsStartTime sets the "db_elements_start_time" field.
func (m *SqlDbMutation) SetDbElementsStartTime(t time.Time) {
	m.db_elements_start_time = &t
}

// DbElementsStartTime returns the value of the "db_elements_start_time" field in the mutation.
func (m *SqlDbMutation) DbElementsStartTime() (r time.Time, exists bool) {
	v := m.db_elements_start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldDbElementsStartTime returns the old "db_elements_start_time" field's value of the SqlDb entity.
// If the SqlDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlDbMutation) OldDbElementsStartTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDbElementsStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDbElementsStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDbElementsStartTime: %w", err)
	}
	return oldValue.DbElementsStartTime, nil
}

// ClearDbElementsStartTime clears the value of the "db_elements_start_time" field.
func (m *SqlDbMutation) ClearDbElementsStartTime() {
	m.db_elements_start_time = nil
	m.clearedFields[sqldb.FieldDbElementsStartTime] = struct{}{}
}

// DbElementsStartTimeCleared returns if the "db_elements_start_time" field was cleared in this mutation.
func (m *SqlDbMutation) DbElementsStartTimeCleared() bool {
	_, ok := m.clearedFields[sqldb.FieldDbElementsStartTime]
	return ok
}

// ResetDbElementsStartTime resets all changes to the "db_elements_start_time" field.
func (m *SqlDbMutation) ResetDbElementsStartTime() {
	m.db_elements_start_time = nil
	delete(m.clearedFields, sqldb.FieldDbElementsStartTime)
}

// SetDbElementsEndTime sets the "db_elements_end_time" field.
func (m *SqlDbMutation) SetDbElementsEndTime(t time.Time) {
	m.db_elements_end_time = &t
}

// DbElementsEndTime returns the value of the "db_elements_end_time" field in the mutation.
func (m *SqlDbMutation) DbElementsEndTime() (r time.Time, exists bool) {
	v := m.db_elements_end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldDbElementsEndTime returns the old "db_elements_end_time" field's value of the SqlDb entity.
// If the SqlDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlDbMutation) OldDbElementsEndTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDbElementsEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDbElementsEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDbElementsEndTime: %w", err)
	}
	return oldValue.DbElementsEndTime, nil
}

// ClearDbElementsEndTime clears the value of the "db_elements_end_time" field.
func (m *SqlDbMutation) ClearDbElementsEndTime() {
	m.db_elements_end_time = nil
	m.clearedFields[sqldb.FieldDbElementsEndTime] = struct{}{}
}

// DbElementsEndTimeCleared returns if the "db_elements_end_time" field was cleared in this mutation.
func (m *SqlDbMutation) DbElementsEndTimeCleared() bool {
	_, ok := m.clearedFields[sqldb.FieldDbElementsEndTime]
	return ok
}

// ResetDbElementsEndTime resets all changes to the "db_elements_end_time" field.
func (m *SqlDbMutation) ResetDbElementsEndTime() {
	m.db_elements_end_time = nil
	delete(m.clearedFields, sqldb.FieldDbElementsEndTime)
}

// SetTableCommentStatus sets the "table_comment_status" field.
func (m *SqlDbMutation) SetTableCommentStatus(scs sqldb.TableCommentStatus) {
	m.table_comment_status = &scs
}

// TableCommentStatus returns the value of the "table_comment_status" field in the mutation.
func (m *SqlDbMutation) TableCommentStatus() (r sqldb.TableCommentStatus, exists bool) {
	v := m.table_comment_status
	if v == nil {
		return
	}
	return *v, true
}

// OldTableCommentStatus returns the old "table_comment_status" field's value of the SqlDb entity.
// If the SqlDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlDbMutation) OldTableCommentStatus(ctx context.Context) (v sqldb.TableCommentStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTableCommentStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTableCommentStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTableCommentStatus: %w", err)
	}
	return oldValue.TableCommentStatus, nil
}

// ResetTableCommentStatus resets all changes to the "table_comment_status" field.
func (m *SqlDbMutation) ResetTableCommentStatus() {
	m.table_comment_status = nil
}

// SetTableCommentTaskID sets the "table_comment_task_id" field.
func (m *SqlDbMutation) SetTableCommentTaskID(s string) {
	m.table_comment_task_id = &s
}

// TableCommentTaskID returns the value of the "table_comment_task_id" field in the mutation.
func (m *SqlDbMutation) TableCommentTaskID() (r string, exists bool) {
	v := m.table_comment_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTableCommentTaskID returns the old "table_comment_task_id" field's value of the SqlDb entity.
// If the SqlDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlDbMutation) OldTableCommentTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTableCommentTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTableCommentTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTableCommentTaskID: %w", err)
	}
	return oldValue.TableCommentTaskID, nil
}

// ClearTableCommentTaskID clears the value of the "table_comment_task_id" field.
func (m *SqlDbMutation) ClearTableCommentTaskID() {
	m.table_comment_task_id = nil
	m.clearedFields[sqldb.FieldTableCommentTaskID] = struct{}{}
}

// TableCommentTaskIDCleared returns if the "table_comment_task_id" field was cleared in this mutation.
func (m *SqlDbMutation) TableCommentTaskIDCleared() bool {
	_, ok := m.clearedFields[sqldb.FieldTableCommentTaskID]
	return ok
}

// ResetTableCommentTaskID resets all changes to the "table_comment_task_id" field.
func (m *SqlDbMutation) ResetTableCommentTaskID() {
	m.table_comment_task_id = nil
	delete(m.clearedFields, sqldb.FieldTableCommentTaskID)
}

// SetTableCommentLog sets the "table_comment_log" field.
func (m *SqlDbMutation) SetTableCommentLog(s string) {
	m.table_comment_log = &s
}

// TableCommentLog returns the value of the "table_comment_log" field in the mutation.
func (m *SqlDbMutation) TableCommentLog() (r string, exists bool) {
	v := m.table_comment_log
	if v == nil {
		return
	}
	return *v, true
}

// OldTableCommentLog returns the old "table_comment_log" field's value of the SqlDb entity.
// If the SqlDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlDbMutation) OldTableCommentLog(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTableCommentLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTableCommentLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTableCommentLog: %w", err)
	}
	return oldValue.TableCommentLog, nil
}

// ClearTableCommentLog clears the value of the "table_comment_log" field.
func (m *SqlDbMutation) ClearTableCommentLog() {
	m.table_comment_log = nil
	m.clearedFields[sqldb.FieldTableCommentLog] = struct{}{}
}

// TableCommentLogCleared returns if the "table_comment_log" field was cleared in this mutation.
func (m *SqlDbMutation) TableCommentLogCleared() bool {
	_, ok := m.clearedFields[sqldb.FieldTableCommentLog]
	return ok
}

// ResetTableCommentLog resets all changes to the "table_comment_log" field.
func (m *SqlDbMutation) ResetTableCommentLog() {
	m.table_comment_log = nil
	delete(m.clearedFields, sqldb.FieldTableCommentLog)
}

// SetTableCommentStartTime sets the "table_comment_start_time" field.
func (m *SqlDbMutation) SetTableCommentStartTime(t time.Time) {
	m.table_comment_start_time = &t
}

// TableCommentStartTime returns the value of the "table_comment_start_time" field in the mutation.
func (m *SqlDbMutation) TableCommentStartTime() (r time.Time, exists bool) {
	v := m.table_comment_start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldTableCommentStartTime returns the old "table_comment_start_time" field's value of the SqlDb entity.
// If the SqlDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlDbMutation) OldTableCommentStartTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTableCommentStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTableCommentStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTableCommentStartTime: %w", err)
	}
	return oldValue.TableCommentStartTime, nil
}

// ClearTableCommentStartTime clears the value of the "table_comment_start_time" field.
func (m *SqlDbMutation) ClearTableCommentStartTime() {
	m.table_comment_start_time = nil
	m.clearedFields[sqldb.FieldTableCommentStartTime] = struct{}{}
}

// TableCommentStartTimeCleared returns if the "table_comment_start_time" field was cleared in this mutation.
func (m *SqlDbMutation) TableCommentStartTimeCleared() bool {
	_, ok := m.clearedFields[sqldb.FieldTableCommentStartTime]
	return ok
}

// ResetTableCommentStartTime resets all changes to the "table_comment_start_time" field.
func (m *SqlDbMutation) ResetTableCommentStartTime() {
	m.table_comment_start_time = nil
	delete(m.clearedFields, sqldb.FieldTableCommentStartTime)
}

// SetTableCommentEndTime sets the "table_comment_end_time" field.
func (m *SqlDbMutation) SetTableCommentEndTime(t time.Time) {
	m.table_comment_end_time = &t
}

// TableCommentEndTime returns the value of the "table_comment_end_time" field in the mutation.
func (m *SqlDbMutation) TableCommentEndTime() (r time.Time, exists bool) {
	v := m.table_comment_end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldTableCommentEndTime returns the old "table_comment_end_time" field's value of the SqlDb entity.
// If the SqlDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlDbMutation) OldTableCommentEndTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTableCommentEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTableCommentEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTableCommentEndTime: %w", err)
	}
	return oldValue.TableCommentEndTime, nil
}

// ClearTableCommentEndTime clears the value of the "table_comment_end_time" field.
func (m *SqlDbMutation) ClearTableCommentEndTime() {
	m.table_comment_end_time = nil
	m.clearedFields[sqldb.FieldTableCommentEndTime] = struct{}{}
}

// TableCommentEndTimeCleared returns if the "table_comment_end_time" field was cleared in this mutation.
func (m *SqlDbMutation) TableCommentEndTimeCleared() bool {
	_, ok := m.clearedFields[sqldb.FieldTableCommentEndTime]
	return ok
}

// ResetTableCommentEndTime resets all changes to the "table_comment_end_time" field.
func (m *SqlDbMutation) ResetTableCommentEndTime() {
	m.table_comment_end_time = nil
	delete(m.clearedFields, sqldb.FieldTableCommentEndTime)
}

// SetColumnCommentStatus sets the "column_comment_status" field.
func (m *SqlDbMutation) SetColumnCommentStatus(scs sqldb.ColumnCommentStatus) {
	m.column_comment_status = &scs
}

// ColumnCommentStatus returns the value of the "column_comment_status" field in the mutation.
func (m *SqlDbMutation) ColumnCommentStatus() (r sqldb.ColumnCommentStatus, exists bool) {
	v := m.column_comment_status
	if v == nil {
		return
	}
	return *v, true
}

// OldColumnCommentStatus returns the old "column_comment_status" field's value of the SqlDb entity.
// If the SqlDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlDbMutation) OldColumnCommentStatus(ctx context.Context) (v sqldb.ColumnCommentStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColumnCommentStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColumnCommentStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColumnCommentStatus: %w", err)
	}
	return oldValue.ColumnCommentStatus, nil
}

// ResetColumnCommentStatus resets all changes to the "column_comment_status" field.
func (m *SqlDbMutation) ResetColumnCommentStatus() {
	m.column_comment_status = nil
}

// SetColumnCommentTaskID sets the "column_comment_task_id" field.
func (m *SqlDbMutation) SetColumnCommentTaskID(s string) {
	m.column_comment_task_id = &s
}

// ColumnCommentTaskID returns the value of the "column_comment_task_id" field in the mutation.
func (m *SqlDbMutation) ColumnCommentTaskID() (r string, exists bool) {
	v := m.column_comment_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldColumnCommentTaskID returns the old "column_comment_task_id" field's value of the SqlDb entity.
// If the SqlDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlDbMutation) OldColumnCommentTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColumnCommentTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColumnCommentTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColumnCommentTaskID: %w", err)
	}
	return oldValue.ColumnCommentTaskID, nil
}

// ClearColumnCommentTaskID clears the value of the "column_comment_task_id" field.
func (m *SqlDbMutation) ClearColumnCommentTaskID() {
	m.column_comment_task_id = nil
	m.clearedFields[sqldb.FieldColumnCommentTaskID] = struct{}{}
}

// ColumnCommentTaskIDCleared returns if the "column_comment_task_id" field was cleared in this mutation.
func (m *SqlDbMutation) ColumnCommentTaskIDCleared() bool {
	_, ok := m.clearedFields[sqldb.FieldColumnCommentTaskID]
	return ok
}

// ResetColumnCommentTaskID resets all changes to the "column_comment_task_id" field.
func (m *SqlDbMutation) ResetColumnCommentTaskID() {
	m.column_comment_task_id = nil
	delete(m.clearedFields, sqldb.FieldColumnCommentTaskID)
}

// SetColumnCommentLog sets the "column_comment_log" field.
func (m *SqlDbMutation) SetColumnCommentLog(s string) {
	m.column_comment_log = &s
}

// ColumnCommentLog returns the value of the "column_comment_log" field in the mutation.
func (m *SqlDbMutation) ColumnCommentLog() (r string, exists bool) {
	v := m.column_comment_log
	if v == nil {
		return
	}
	return *v, true
}

// OldColumnCommentLog returns the old "column_comment_log" field's value of the SqlDb entity.
// If the SqlDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlDbMutation) OldColumnCommentLog(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColumnCommentLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColumnCommentLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColumnCommentLog: %w", err)
	}
	return oldValue.ColumnCommentLog, nil
}

// ClearColumnCommentLog clears the value of the "column_comment_log" field.
func (m *SqlDbMutation) ClearColumnCommentLog() {
	m.column_comment_log = nil
	m.clearedFields[sqldb.FieldColumnCommentLog] = struct{}{}
}

// ColumnCommentLogCleared returns if the "column_comment_log" field was cleared in this mutation.
func (m *SqlDbMutation) ColumnCommentLogCleared() bool {
	_, ok := m.clearedFields[sqldb.FieldColumnCommentLog]
	return ok
}

// ResetColumnCommentLog resets all changes to the "column_comment_log" field.
func (m *SqlDbMutation) ResetColumnCommentLog() {
	m.column_comment_log = nil
	delete(m.clearedFields, sqldb.FieldColumnCommentLog)
}

// SetColumnCommentStartTime sets the "column_comment_start_time" field.
func (m *SqlDbMutation) SetColumnCommentStartTime(t time.Time) {
	m.column_comment_start_time = &t
}

// ColumnCommentStartTime returns the value of the "column_comment_start_time" field in the mutation.
func (m *SqlDbMutation) ColumnCommentStartTime() (r time.Time, exists bool) {
	v := m.column_comment_start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldColumnCommentStartTime returns the old "column_comment_start_time" field's value of the SqlDb entity.
// If the SqlDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlDbMutation) OldColumnCommentStartTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColumnCommentStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColumnCommentStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColumnCommentStartTime: %w", err)
	}
	return oldValue.ColumnCommentStartTime, nil
}

// ClearColumnCommentStartTime clears the value of the "column_comment_start_time" field.
func (m *SqlDbMutation) ClearColumnCommentStartTime() {
	m.column_comment_start_time = nil
	m.clearedFields[sqldb.FieldColumnCommentStartTime] = struct{}{}
}

// ColumnCommentStartTimeCleared returns if the "column_comment_start_time" field was cleared in this mutation.
func (m *SqlDbMutation) ColumnCommentStartTimeCleared() bool {
	_, ok := m.clearedFields[sqldb.FieldColumnCommentStartTime]
	return ok
}

// ResetColumnCommentStartTime resets all changes to the "column_comment_start_time" field.
func (m *SqlDbMutation) ResetColumnCommentStartTime() {
	m.column_comment_start_time = nil
	delete(m.clearedFields, sqldb.FieldColumnCommentStartTime)
}

// SetColumnCommentEndTime sets the "column_comment_end_time" field.
func (m *SqlDbMutation) SetColumnCommentEndTime(t time.Time) {
	m.column_comment_end_time = &t
}

// ColumnCommentEndTime returns the value of the "column_comment_end_time" field in the mutation.
func (m *SqlDbMutation) ColumnCommentEndTime() (r time.Time, exists bool) {
	v := m.column_comment_end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldColumnCommentEndTime returns the old "column_comment_end_time" field's value of the SqlDb entity.
// If the SqlDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlDbMutation) OldColumnCommentEndTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColumnCommentEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColumnCommentEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColumnCommentEndTime: %w", err)
	}
	return oldValue.ColumnCommentEndTime, nil
}

// ClearColumnCommentEndTime clears the value of the "column_comment_end_time" field.
func (m *SqlDbMutation) ClearColumnCommentEndTime() {
	m.column_comment_end_time = nil
	m.clearedFields[sqldb.FieldColumnCommentEndTime] = struct{}{}
}

// ColumnCommentEndTimeCleared returns if the "column_comment_end_time" field was cleared in this mutation.
func (m *SqlDbMutation) ColumnCommentEndTimeCleared() bool {
	_, ok := m.clearedFields[sqldb.FieldColumnCommentEndTime]
	return ok
}

// ResetColumnCommentEndTime resets all changes to the "column_comment_end_time" field.
func (m *SqlDbMutation) ResetColumnCommentEndTime() {
	m.column_comment_end_time = nil
	delete(m.clearedFields, sqldb.FieldColumnCommentEndTime)
}

// SetWorkspaceID sets the "workspace" edge to the Workspace entity by id.
func (m *SqlDbMutation) SetWorkspaceID(id string) {
	m.workspace = &id
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *SqlDbMutation) ClearWorkspace() {
	m.clearedworkspace = true
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *SqlDbMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceID returns the "workspace" edge ID in the mutation.
func (m *SqlDbMutation) WorkspaceID() (id string, exists bool) {
	if m.workspace != nil {
		return *m.workspace, true
	}
	return
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *SqlDbMutation) WorkspaceIDs() (ids []string) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *SqlDbMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// SetVectorDbID sets the "vector_db" edge to the VectorDb entity by id.
func (m *SqlDbMutation) SetVectorDbID(id string) {
	m.vector_db = &id
}

// ClearVectorDb clears the "vector_db" edge to the VectorDb entity.
func (m *SqlDbMutation) ClearVectorDb() {
	m.clearedvector_db = true
}

// VectorDbCleared reports if the "vector_db" edge to the VectorDb entity was cleared.
func (m *SqlDbMutation) VectorDbCleared() bool {
	return m.clearedvector_db
}

// VectorDbID returns the "vector_db" edge ID in the mutation.
func (m *SqlDbMutation) VectorDbID() (id string, exists bool) {
	if m.vector_db != nil {
		return *m.vector_db, true
	}
	return
}

// VectorDbIDs returns the "vector_db" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VectorDbID instead. It exists only for internal usage by the builders.
func (m *SqlDbMutation) VectorDbIDs() (ids []string) {
	if id := m.vector_db; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVectorDb resets all changes to the "vector_db" edge.
func (m *SqlDbMutation) ResetVectorDb() {
	m.vector_db = nil
	m.clearedvector_db = false
}

// AddTableIDs adds the "tables" edge to the SqlTable entity by ids.
func (m *SqlDbMutation) AddTableIDs(ids ...string) {
	if m.tables == nil {
		m.tables = make(map[string]struct{})
	}
	for i := range ids {
		m.tables[ids[i]] = struct{}{}
	}
}

// ClearTables clears the "tables" edge to the SqlTable entity.
func (m *SqlDbMutation) ClearTables() {
	m.clearedtables = true
}

// TablesCleared reports if the "tables" edge to the SqlTable entity was cleared.
func (m *SqlDbMutation) TablesCleared() bool {
	return m.clearedtables
}

// RemoveTableIDs removes the "tables" edge to the SqlTable entity by IDs.
func (m *SqlDbMutation) RemoveTableIDs(ids ...string) {
	if m.removedtables == nil {
		m.removedtables = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tables, ids[i])
		m.removedtables[ids[i]] = struct{}{}
	}
}

// RemovedTables returns the removed IDs of the "tables" edge to the SqlTable entity.
func (m *SqlDbMutation) RemovedTablesIDs() (ids []string) {
	for id := range m.removedtables {
		ids = append(ids, id)
	}
	return
}

// TablesIDs returns the "tables" edge IDs in the mutation.
func (m *SqlDbMutation) TablesIDs() (ids []string) {
	for id := range m.tables {
		ids = append(ids, id)
	}
	return
}

// ResetTables resets all changes to the "tables" edge.
func (m *SqlDbMutation) ResetTables() {
	m.tables = nil
	m.clearedtables = false
	m.removedtables = nil
}

// AddRelationshipIDs adds the "relationships" edge to the Relationship entity by ids.
func (m *SqlDbMutation) AddRelationshipIDs(ids ...string) {
	if m.relationships == nil {
		m.relationships = make(map[string]struct{})
	}
	for i := range ids {
		m.relationships[ids[i]] = struct{}{}
	}
}

// ClearRelationships clears the "relationships" edge to the Relationship entity.
func (m *SqlDbMutation) ClearRelationships() {
	m.clearedrelationships = true
}

// RelationshipsCleared reports if the "relationships" edge to the Relationship entity was cleared.
func (m *SqlDbMutation) RelationshipsCleared() bool {
	return m.clearedrelationships
}

// RemoveRelationshipIDs removes the "relationships" edge to the Relationship entity by IDs.
func (m *SqlDbMutation) RemoveRelationshipIDs(ids ...string) {
	if m.removedrelationships == nil {
		m.removedrelationships = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.relationships, ids[i])
		m.removedrelationships[ids[i]] = struct{}{}
	}
}

// RemovedRelationships returns the removed IDs of the "relationships" edge to the Relationship entity.
func (m *SqlDbMutation) RemovedRelationshipsIDs() (ids []string) {
	for id := range m.removedrelationships {
		ids = append(ids, id)
	}
	return
}

// RelationshipsIDs returns the "relationships" edge IDs in the mutation.
func (m *SqlDbMutation) RelationshipsIDs() (ids []string) {
	for id := range m.relationships {
		ids = append(ids, id)
	}
	return
}

// ResetRelationships resets all changes to the "relationships" edge.
func (m *SqlDbMutation) ResetRelationships() {
	m.relationships = nil
	m.clearedrelationships = false
	m.removedrelationships = nil
}

// Where appends a list predicates to the SqlDbMutation builder.
func (m *SqlDbMutation) Where(ps ...predicate.SqlDb) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SqlDbMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SqlDbMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SqlDb, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SqlDbMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SqlDbMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SqlDb).
func (m *SqlDbMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SqlDbMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.name != nil {
		fields = append(fields, sqldb.FieldName)
	}
	if m.dialect != nil {
		fields = append(fields, sqldb.FieldDialect)
	}
	if m.host != nil {
		fields = append(fields, sqldb.FieldHost)
	}
	if m.port != nil {
		fields = append(fields, sqldb.FieldPort)
	}
	if m.database != nil {
		fields = append(fields, sqldb.FieldDatabase)
	}
	if m.username != nil {
		fields = append(fields, sqldb.FieldUsername)
	}
	if m.password != nil {
		fields = append(fields, sqldb.FieldPassword)
	}
	if m.db_schema != nil {
		fields = append(fields, sqldb.FieldDbSchema)
	}
	if m.created_at != nil {
		fields = append(fields, sqldb.FieldCreatedAt)
	}
	if m.db_elements_status != nil {
		fields = append(fields, sqldb.FieldDbElementsStatus)
	}
	if m.db_elements_task_id != nil {
		fields = append(fields, sqldb.FieldDbElementsTaskID)
	}
	if m.db_elements_log != nil {
		fields = append(fields, sqldb.FieldDbElementsLog)
	}
	if m.db_elements_start_time != nil {
		fields = append(fields, sqldb.FieldDbElementsStartTime)
	}
	if m.db_elements_end_time != nil {
		fields = append(fields, sqldb.FieldDbElementsEndTime)
	}
	if m.table_comment_status != nil {
		fields = append(fields, sqldb.FieldTableCommentStatus)
	}
	if m.table_comment_task_id != nil {
		fields = append(fields, sqldb.FieldTableCommentTaskID)
	}
	if m.table_comment_log != nil {
		fields = append(fields, sqldb.FieldTableCommentLog)
	}
	if m.table_comment_start_time != nil {
		fields = append(fields, sqldb.FieldTableCommentStartTime)
	}
	if m.table_comment_end_time != nil {
		fields = append(fields, sqldb.FieldTableCommentEndTime)
	}
	if m.column_comment_status != nil {
		fields = append(fields, sqldb.FieldColumnCommentStatus)
	}
	if m.column_comment_task_id != nil {
		fields = append(fields, sqldb.FieldColumnCommentTaskID)
	}
	if m.column_comment_log != nil {
		fields = append(fields, sqldb.FieldColumnCommentLog)
	}
	if m.column_comment_start_time != nil {
		fields = append(fields, sqldb.FieldColumnCommentStartTime)
	}
	if m.column_comment_end_time != nil {
		fields = append(fields, sqldb.FieldColumnCommentEndTime)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SqlDbMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sqldb.FieldName:
		return m.Name()
	case sqldb.FieldDialect:
		return m.Dialect()
	case sqldb.FieldHost:
		return m.Host()
	case sqldb.FieldPort:
		return m.Port()
	case sqldb.FieldDatabase:
		return m.Database()
	case sqldb.FieldUsername:
		return m.Username()
	case sqldb.FieldPassword:
		return m.Password()
	case sqldb.FieldDbSchema:
		return m.DbSchema()
	case sqldb.FieldCreatedAt:
		return m.CreatedAt()
	case sqldb.FieldDbElementsStatus:
		return m.DbElementsStatus()
	case sqldb.FieldDbElementsTaskID:
		return m.DbElementsTaskID()
	case sqldb.FieldDbElementsLog:
		return m.DbElementsLog()
	case sqldb.FieldDbElementsStartTime:
		return m.DbElementsStartTime()
	case sqldb.FieldDbElementsEndTime:
		return m.DbElementsEndTime()
	case sqldb.FieldTableCommentStatus:
		return m.TableCommentStatus()
	case sqldb.FieldTableCommentTaskID:
		return m.TableCommentTaskID()
	case sqldb.FieldTableCommentLog:
		return m.TableCommentLog()
	case sqldb.FieldTableCommentStartTime:
		return m.TableCommentStartTime()
	case sqldb.FieldTableCommentEndTime:
		return m.TableCommentEndTime()
	case sqldb.FieldColumnCommentStatus:
		return m.ColumnCommentStatus()
	case sqldb.FieldColumnCommentTaskID:
		return m.ColumnCommentTaskID()
	case sqldb.FieldColumnCommentLog:
		return m.ColumnCommentLog()
	case sqldb.FieldColumnCommentStartTime:
		return m.ColumnCommentStartTime()
	case sqldb.FieldColumnCommentEndTime:
		return m.ColumnCommentEndTime()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SqlDbMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sqldb.FieldName:
		return m.OldName(ctx)
	case sqldb.FieldDialect:
		return m.OldDialect(ctx)
	case sqldb.FieldHost:
		return m.OldHost(ctx)
	case sqldb.FieldPort:
		return m.OldPort(ctx)
	case sqldb.FieldDatabase:
		return m.OldDatabase(ctx)
	case sqldb.FieldUsername:
		return m.OldUsername(ctx)
	case sqldb.FieldPassword:
		return m.OldPassword(ctx)
	case sqldb.FieldDbSchema:
		return m.OldDbSchema(ctx)
	case sqldb.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sqldb.FieldDbElementsStatus:
		return m.OldDbElementsStatus(ctx)
	case sqldb.FieldDbElementsTaskID:
		return m.OldDbElementsTaskID(ctx)
	case sqldb.FieldDbElementsLog:
		return m.OldDbElementsLog(ctx)
	case sqldb.FieldDbElementsStartTime:
		return m.OldDbElementsStartTime(ctx)
	case sqldb.FieldDbElementsEndTime:
		return m.OldDbElementsEndTime(ctx)
	case sqldb.FieldTableCommentStatus:
		return m.OldTableCommentStatus(ctx)
	case sqldb.FieldTableCommentTaskID:
		return m.OldTableCommentTaskID(ctx)
	case sqldb.FieldTableCommentLog:
		return m.OldTableCommentLog(ctx)
	case sqldb.FieldTableCommentStartTime:
		return m.OldTableCommentStartTime(ctx)
	case sqldb.FieldTableCommentEndTime:
		return m.OldTableCommentEndTime(ctx)
	case sqldb.FieldColumnCommentStatus:
		return m.OldColumnCommentStatus(ctx)
	case sqldb.FieldColumnCommentTaskID:
		return m.OldColumnCommentTaskID(ctx)
	case sqldb.FieldColumnCommentLog:
		return m.OldColumnCommentLog(ctx)
	case sqldb.FieldColumnCommentStartTime:
		return m.OldColumnCommentStartTime(ctx)
	case sqldb.FieldColumnCommentEndTime:
		return m.OldColumnCommentEndTime(ctx)
	}
	return nil, fmt.Errorf("unknown SqlDb field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SqlDbMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sqldb.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case sqldb.FieldDialect:
		v, ok := value.(sqldb.Dialect)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDialect(v)
		return nil
	case sqldb.FieldHost:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHost(v)
		return nil
	case sqldb.FieldPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPort(v)
		return nil
	case sqldb.FieldDatabase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatabase(v)
		return nil
	case sqldb.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case sqldb.FieldPassword:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassword(v)
		return nil
	case sqldb.FieldDbSchema:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDbSchema(v)
		return nil
	case sqldb.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sqldb.FieldDbElementsStatus:
		v, ok := value.(sqldb.DbElementsStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDbElementsStatus(v)
		return nil
	case sqldb.FieldDbElementsTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDbElementsTaskID(v)
		return nil
	case sqldb.FieldDbElementsLog:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDbElementsLog(v)
		return nil
	case sqldb.FieldDbElementsStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDbElementsStartTime(v)
		return nil
	case sqldb.FieldDbElementsEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDbElementsEndTime(v)
		return nil
	case sqldb.FieldTableCommentStatus:
		v, ok := value.(sqldb.TableCommentStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTableCommentStatus(v)
		return nil
	case sqldb.FieldTableCommentTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTableCommentTaskID(v)
		return nil
	case sqldb.FieldTableCommentLog:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTableCommentLog(v)
		return nil
	case sqldb.FieldTableCommentStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTableCommentStartTime(v)
		return nil
	case sqldb.FieldTableCommentEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTableCommentEndTime(v)
		return nil
	case sqldb.FieldColumnCommentStatus:
		v, ok := value.(sqldb.ColumnCommentStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColumnCommentStatus(v)
		return nil
	case sqldb.FieldColumnCommentTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColumnCommentTaskID(v)
		return nil
	case sqldb.FieldColumnCommentLog:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColumnCommentLog(v)
		return nil
	case sqldb.FieldColumnCommentStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColumnCommentStartTime(v)
		return nil
	case sqldb.FieldColumnCommentEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColumnCommentEndTime(v)
		return nil
	}
	return fmt.Errorf("unknown SqlDb field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SqlDbMutation) AddedFields() []string {
	var fields []string
	if m.addport != nil {
		fields = append(fields, sqldb.FieldPort)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SqlDbMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sqldb.FieldPort:
		return m.AddedPort()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SqlDbMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sqldb.FieldPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPort(v)
		return nil
	}
	return fmt.Errorf("unknown SqlDb numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SqlDbMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sqldb.FieldHost) {
		fields = append(fields, sqldb.FieldHost)
	}
	if m.FieldCleared(sqldb.FieldPort) {
		fields = append(fields, sqldb.FieldPort)
	}
	if m.FieldCleared(sqldb.FieldDatabase) {
		fields = append(fields, sqldb.FieldDatabase)
	}
	if m.FieldCleared(sqldb.FieldUsername) {
		fields = append(fields, sqldb.FieldUsername)
	}
	if m.FieldCleared(sqldb.FieldPassword) {
		fields = append(fields, sqldb.FieldPassword)
	}
	if m.FieldCleared(sqldb.FieldDbSchema) {
		fields = append(fields, sqldb.FieldDbSchema)
	}
	if m.FieldCleared(sqldb.FieldDbElementsTaskID) {
		fields = append(fields, sqldb.FieldDbElementsTaskID)
	}
	if m.FieldCleared(sqldb.FieldDbElementsLog) {
		fields = append(fields, sqldb.FieldDbElementsLog)
	}
	if m.FieldCleared(sqldb.FieldDbElementsStartTime) {
		fields = append(fields, sqldb.FieldDbElementsStartTime)
	}
	if m.FieldCleared(sqldb.FieldDbElementsEndTime) {
		fields = append(fields, sqldb.FieldDbElementsEndTime)
	}
	if m.FieldCleared(sqldb.FieldTableCommentTaskID) {
		fields = append(fields, sqldb.FieldTableCommentTaskID)
	}
	if m.FieldCleared(sqldb.FieldTableCommentLog) {
		fields = append(fields, sqldb.FieldTableCommentLog)
	}
	if m.FieldCleared(sqldb.FieldTableCommentStartTime) {
		fields = append(fields, sqldb.FieldTableCommentStartTime)
	}
	if m.FieldCleared(sqldb.FieldTableCommentEndTime) {
		fields = append(fields, sqldb.FieldTableCommentEndTime)
	}
	if m.FieldCleared(sqldb.FieldColumnCommentTaskID) {
		fields = append(fields, sqldb.FieldColumnCommentTaskID)
	}
	if m.FieldCleared(sqldb.FieldColumnCommentLog) {
		fields = append(fields, sqldb.FieldColumnCommentLog)
	}
	if m.FieldCleared(sqldb.FieldColumnCommentStartTime) {
		fields = append(fields, sqldb.FieldColumnCommentStartTime)
	}
	if m.FieldCleared(sqldb.FieldColumnCommentEndTime) {
		fields = append(fields, sqldb.FieldColumnCommentEndTime)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SqlDbMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SqlDbMutation) ClearField(name string) error {
	switch name {
	case sqldb.FieldHost:
		m.ClearHost()
		return nil
	case sqldb.FieldPort:
		m.ClearPort()
		return nil
	case sqldb.FieldDatabase:
		m.ClearDatabase()
		return nil
	case sqldb.FieldUsername:
		m.ClearUsername()
		return nil
	case sqldb.FieldPassword:
		m.ClearPassword()
		return nil
	case sqldb.FieldDbSchema:
		m.ClearDbSchema()
		return nil
	case sqldb.FieldDbElementsTaskID:
		m.ClearDbElementsTaskID()
		return nil
	case sqldb.FieldDbElementsLog:
		m.ClearDbElementsLog()
		return nil
	case sqldb.FieldDbElementsStartTime:
		m.ClearDbElementsStartTime()
		return nil
	case sqldb.FieldDbElementsEndTime:
		m.ClearDbElementsEndTime()
		return nil
	case sqldb.FieldTableCommentTaskID:
		m.ClearTableCommentTaskID()
		return nil
	case sqldb.FieldTableCommentLog:
		m.ClearTableCommentLog()
		return nil
	case sqldb.FieldTableCommentStartTime:
		m.ClearTableCommentStartTime()
		return nil
	case sqldb.FieldTableCommentEndTime:
		m.ClearTableCommentEndTime()
		return nil
	case sqldb.FieldColumnCommentTaskID:
		m.ClearColumnCommentTaskID()
		return nil
	case sqldb.FieldColumnCommentLog:
		m.ClearColumnCommentLog()
		return nil
	case sqldb.FieldColumnCommentStartTime:
		m.ClearColumnCommentStartTime()
		return nil
	case sqldb.FieldColumnCommentEndTime:
		m.ClearColumnCommentEndTime()
		return nil
	}
	return fmt.Errorf("unknown SqlDb nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SqlDbMutation) ResetField(name string) error {
	switch name {
	case sqldb.FieldName:
		m.ResetName()
		return nil
	case sqldb.FieldDialect:
		m.ResetDialect()
		return nil
	case sqldb.FieldHost:
		m.ResetHost()
		return nil
	case sqldb.FieldPort:
		m.ResetPort()
		return nil
	case sqldb.FieldDatabase:
		m.ResetDatabase()
		return nil
	case sqldb.FieldUsername:
		m.ResetUsername()
		return nil
	case sqldb.FieldPassword:
		m.ResetPassword()
		return nil
	case sqldb.FieldDbSchema:
		m.ResetDbSchema()
		return nil
	case sqldb.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sqldb.FieldDbElementsStatus:
		m.ResetDbElementsStatus()
		return nil
	case sqldb.FieldDbElementsTaskID:
		m.ResetDbElementsTaskID()
		return nil
	case sqldb.FieldDbElementsLog:
		m.ResetDbElementsLog()
		return nil
	case sqldb.FieldDbElementsStartTime:
		m.ResetDbElementsStartTime()
		return nil
	case sqldb.FieldDbElementsEndTime:
		m.ResetDbElementsEndTime()
		return nil
	case sqldb.FieldTableCommentStatus:
		m.ResetTableCommentStatus()
		return nil
	case sqldb.FieldTableCommentTaskID:
		m.ResetTableCommentTaskID()
		return nil
	case sqldb.FieldTableCommentLog:
		m.ResetTableCommentLog()
		return nil
	case sqldb.FieldTableCommentStartTime:
		m.ResetTableCommentStartTime()
		return nil
	case sqldb.FieldTableCommentEndTime:
		m.ResetTableCommentEndTime()
		return nil
	case sqldb.FieldColumnCommentStatus:
		m.ResetColumnCommentStatus()
		return nil
	case sqldb.FieldColumnCommentTaskID:
		m.ResetColumnCommentTaskID()
		return nil
	case sqldb.FieldColumnCommentLog:
		m.ResetColumnCommentLog()
		return nil
	case sqldb.FieldColumnCommentStartTime:
		m.ResetColumnCommentStartTime()
		return nil
	case sqldb.FieldColumnCommentEndTime:
		m.ResetColumnCommentEndTime()
		return nil
	}
	return fmt.Errorf("unknown SqlDb field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SqlDbMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.workspace != nil {
		edges = append(edges, sqldb.EdgeWorkspace)
	}
	if m.vector_db != nil {
		edges = append(edges, sqldb.EdgeVectorDb)
	}
	if m.tables != nil {
		edges = append(edges, sqldb.EdgeTables)
	}
	if m.relationships != nil {
		edges = append(edges, sqldb.EdgeRelationships)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SqlDbMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sqldb.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	case sqldb.EdgeVectorDb:
		if id := m.vector_db; id != nil {
			return []ent.Value{*id}
		}
	case sqldb.EdgeTables:
		ids := make([]ent.Value, 0, len(m.tables))
		for id := range m.tables {
			ids = append(ids, id)
		}
		return ids
	case sqldb.EdgeRelationships:
		ids := make([]ent.Value, 0, len(m.relationships))
		for id := range m.relationships {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SqlDbMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedtables != nil {
		edges = append(edges, sqldb.EdgeTables)
	}
	if m.removedrelationships != nil {
		edges = append(edges, sqldb.EdgeRelationships)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SqlDbMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case sqldb.EdgeTables:
		ids := make([]ent.Value, 0, len(m.removedtables))
		for id := range m.removedtables {
			ids = append(ids, id)
		}
		return ids
	case sqldb.EdgeRelationships:
		ids := make([]ent.Value, 0, len(m.removedrelationships))
		for id := range m.removedrelationships {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SqlDbMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedworkspace {
		edges = append(edges, sqldb.EdgeWorkspace)
	}
	if m.clearedvector_db {
		edges = append(edges, sqldb.EdgeVectorDb)
	}
	if m.clearedtables {
		edges = append(edges, sqldb.EdgeTables)
	}
	if m.clearedrelationships {
		edges = append(edges, sqldb.EdgeRelationships)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SqlDbMutation) EdgeCleared(name string) bool {
	switch name {
	case sqldb.EdgeWorkspace:
		return m.clearedworkspace
	case sqldb.EdgeVectorDb:
		return m.clearedvector_db
	case sqldb.EdgeTables:
		return m.clearedtables
	case sqldb.EdgeRelationships:
		return m.clearedrelationships
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SqlDbMutation) ClearEdge(name string) error {
	switch name {
	case sqldb.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	case sqldb.EdgeVectorDb:
		m.ClearVectorDb()
		return nil
	}
	return fmt.Errorf("unknown SqlDb unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SqlDbMutation) ResetEdge(name string) error {
	switch name {
	case sqldb.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	case sqldb.EdgeVectorDb:
		m.ResetVectorDb()
		return nil
	case sqldb.EdgeTables:
		m.ResetTables()
		return nil
	case sqldb.EdgeRelationships:
		m.ResetRelationships()
		return nil
	}
	return fmt.Errorf("unknown SqlDb edge %s", name)
}

// SqlTableMutation represents an operation that mutates the SqlTable nodes in the graph.
type SqlTableMutation struct {
	config
	op                Op
	typ               string
	id                *string
	name              *string
	description       *string
	ai_description    *string
	generated_comment *string
	clearedFields     map[string]struct{}
	sql_db            *string
	clearedsql_db     bool
	columns           map[string]struct{}
	removedcolumns    map[string]struct{}
	clearedcolumns    bool
	done              bool
	oldValue          func(context.Context) (*SqlTable, error)
	predicates        []predicate.SqlTable
}

var _ ent.Mutation = (*SqlTableMutation)(nil)

// sqltableOption allows management of the mutation configuration using functional options.
type sqltableOption func(*SqlTableMutation)

// newSqlTableMutation creates new mutation for the SqlTable entity.
func newSqlTableMutation(c config, op Op, opts ...sqltableOption) *SqlTableMutation {
	m := &SqlTableMutation{
		config:        c,
		op:            op,
		typ:           TypeSqlTable,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSqlTableID sets the ID field of the mutation.
func withSqlTableID(id string) sqltableOption {
	return func(m *SqlTableMutation) {
		var (
			err   error
			once  sync.Once
			value *SqlTable
		)
		m.oldValue = func(ctx context.Context) (*SqlTable, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SqlTable.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSqlTable sets the old SqlTable of the mutation.
func withSqlTable(node *SqlTable) sqltableOption {
	return func(m *SqlTableMutation) {
		m.oldValue = func(context.Context) (*SqlTable, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SqlTableMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SqlTableMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SqlTable entities.
func (m *SqlTableMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SqlTableMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SqlTableMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SqlTable.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SqlTableMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SqlTableMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the SqlTable entity.
// If the SqlTable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlTableMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SqlTableMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *SqlTableMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SqlTableMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the SqlTable entity.
// If the SqlTable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlTableMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SqlTableMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[sqltable.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SqlTableMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[sqltable.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SqlTableMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, sqltable.FieldDescription)
}

// SetAiDescription sets the "ai_description" field.
func (m *SqlTableMutation) SetAiDescription(s string) {
	m.ai_description = &s
}

// AiDescription returns the value of the "ai_description" field in the mutation.
func (m *SqlTableMutation) AiDescription() (r string, exists bool) {
	v := m.ai_description
	if v == nil {
		return
	}
	return *v, true
}

// OldAiDescription returns the old "ai_description" field's value of the SqlTable entity.
// If the SqlTable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlTableMutation) OldAiDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiDescription: %w", err)
	}
	return oldValue.AiDescription, nil
}

// ClearAiDescription clears the value of the "ai_description" field.
func (m *SqlTableMutation) ClearAiDescription() {
	m.ai_description = nil
	m.clearedFields[sqltable.FieldAiDescription] = struct{}{}
}

// AiDescriptionCleared returns if the "ai_description" field was cleared in this mutation.
func (m *SqlTableMutation) AiDescriptionCleared() bool {
	_, ok := m.clearedFields[sqltable.FieldAiDescription]
	return ok
}

// ResetAiDescription resets all changes to the "ai_description" field.
func (m *SqlTableMutation) ResetAiDescription() {
	m.ai_description = nil
	delete(m.clearedFields, sqltable.FieldAiDescription)
}

// SetGeneratedComment sets the "generated_comment" field.
func (m *SqlTableMutation) SetGeneratedComment(s string) {
	m.generated_comment = &s
}

// GeneratedComment returns the value of the "generated_comment" field in the mutation.
func (m *SqlTableMutation) GeneratedComment() (r string, exists bool) {
	v := m.generated_comment
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedComment returns the old "generated_comment" field's value of the SqlTable entity.
// If the SqlTable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SqlTableMutation) OldGeneratedComment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedComment: %w", err)
	}
	return oldValue.GeneratedComment, nil
}

// ClearGeneratedComment clears the value of the "generated_comment" field.
func (m *SqlTableMutation) ClearGeneratedComment() {
	m.generated_comment = nil
	m.clearedFields[sqltable.FieldGeneratedComment] = struct{}{}
}

// GeneratedCommentCleared returns if the "generated_comment" field was cleared in this mutation.
func (m *SqlTableMutation) GeneratedCommentCleared() bool {
	_, ok := m.clearedFields[sqltable.FieldGeneratedComment]
	return ok
}

// ResetGeneratedComment resets all changes to the "generated_comment" field.
func (m *SqlTableMutation) ResetGeneratedComment() {
	m.generated_comment = nil
	delete(m.clearedFields, sqltable.FieldGeneratedComment)
}

// SetSQLDbID sets the "sql_db" edge to the SqlDb entity by id.
func (m *SqlTableMutation) SetSQLDbID(id string) {
	m.sql_db = &id
}

// ClearSQLDb clears the "sql_db" edge to the SqlDb entity.
func (m *SqlTableMutation) ClearSQLDb() {
	m.clearedsql_db = true
}

// SQLDbCleared reports if the "sql_db" edge to the SqlDb entity was cleared.
func (m *SqlTableMutation) SQLDbCleared() bool {
	return m.clearedsql_db
}

// SQLDbID returns the "sql_db" edge ID in the mutation.
func (m *SqlTableMutation) SQLDbID() (id string, exists bool) {
	if m.sql_db != nil {
		return *m.sql_db, true
	}
	return
}

// SQLDbIDs returns the "sql_db" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SQLDbID instead. It exists only for internal usage by the builders.
func (m *SqlTableMutation) SQLDbIDs() (ids []string) {
	if id := m.sql_db; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSQLDb resets all changes to the "sql_db" edge.
func (m *SqlTableMutation) ResetSQLDb() {
	m.sql_db = nil
	m.clearedsql_db = false
}

// AddColumnIDs adds the "columns" edge to the SqlColumn entity by ids.
func (m *SqlTableMutation) AddColumnIDs(ids ...string) {
	if m.columns == nil {
		m.columns = make(map[string]struct{})
	}
	for i := range ids {
		m.columns[ids[i]] = struct{}{}
	}
}

// ClearColumns clears the "columns" edge to the SqlColumn entity.
func (m *SqlTableMutation) ClearColumns() {
	m.clearedcolumns = true
}

// ColumnsCleared reports if the "columns" edge to the SqlColumn entity was cleared.
func (m *SqlTableMutation) ColumnsCleared() bool {
	return m.clearedcolumns
}

// RemoveColumnIDs removes the "columns" edge to the SqlColumn entity by IDs.
func (m *SqlTableMutation) RemoveColumnIDs(ids ...string) {
	if m.removedcolumns == nil {
		m.removedcolumns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.columns, ids[i])
		m.removedcolumns[ids[i]] = struct{}{}
	}
}

// RemovedColumns returns the removed IDs of the "columns" edge to the SqlColumn entity.
func (m *SqlTableMutation) RemovedColumnsIDs() (ids []string) {
	for id := range m.removedcolumns {
		ids = append(ids, id)
	}
	return
}

// ColumnsIDs returns the "columns" edge IDs in the mutation.
func (m *SqlTableMutation) ColumnsIDs() (ids []string) {
	for id := range m.columns {
		ids = append(ids, id)
	}
	return
}

// ResetColumns resets all changes to the "columns" edge.
func (m *SqlTableMutation) ResetColumns() {
	m.columns = nil
	m.clearedcolumns = false
	m.removedcolumns = nil
}

// Where appends a list predicates to the SqlTableMutation builder.
func (m *SqlTableMutation) Where(ps ...predicate.SqlTable) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SqlTableMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SqlTableMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SqlTable, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SqlTableMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SqlTableMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SqlTable).
func (m *SqlTableMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SqlTableMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, sqltable.FieldName)
	}
	if m.description != nil {
		fields = append(fields, sqltable.FieldDescription)
	}
	if m.ai_description != nil {
		fields = append(fields, sqltable.FieldAiDescription)
	}
	if m.generated_comment != nil {
		fields = append(fields, sqltable.FieldGeneratedComment)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SqlTableMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sqltable.FieldName:
		return m.Name()
	case sqltable.FieldDescription:
		return m.Description()
	case sqltable.FieldAiDescription:
		return m.AiDescription()
	case sqltable.FieldGeneratedComment:
		return m.GeneratedComment()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SqlTableMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sqltable.FieldName:
		return m.OldName(ctx)
	case sqltable.FieldDescription:
		return m.OldDescription(ctx)
	case sqltable.FieldAiDescription:
		return m.OldAiDescription(ctx)
	case sqltable.FieldGeneratedComment:
		return m.OldGeneratedComment(ctx)
	}
	return nil, fmt.Errorf("unknown SqlTable field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SqlTableMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sqltable.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case sqltable.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case sqltable.FieldAiDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiDescription(v)
		return nil
	case sqltable.FieldGeneratedComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedComment(v)
		return nil
	}
	return fmt.Errorf("unknown SqlTable field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SqlTableMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SqlTableMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SqlTableMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SqlTable numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SqlTableMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sqltable.FieldDescription) {
		fields = append(fields, sqltable.FieldDescription)
	}
	if m.FieldCleared(sqltable.FieldAiDescription) {
		fields = append(fields, sqltable.FieldAiDescription)
	}
	if m.FieldCleared(sqltable.FieldGeneratedComment) {
		fields = append(fields, sqltable.FieldGeneratedComment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SqlTableMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SqlTableMutation) ClearField(name string) error {
	switch name {
	case sqltable.FieldDescription:
		m.ClearDescription()
		return nil
	case sqltable.FieldAiDescription:
		m.ClearAiDescription()
		return nil
	case sqltable.FieldGeneratedComment:
		m.ClearGeneratedComment()
		return nil
	}
	return fmt.Errorf("unknown SqlTable nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SqlTableMutation) ResetField(name string) error {
	switch name {
	case sqltable.FieldName:
		m.ResetName()
		return nil
	case sqltable.FieldDescription:
		m.ResetDescription()
		return nil
	case sqltable.FieldAiDescription:
		m.ResetAiDescription()
		return nil
	case sqltable.FieldGeneratedComment:
		m.ResetGeneratedComment()
		return nil
	}
	return fmt.Errorf("unknown SqlTable field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SqlTableMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.sql_db != nil {
		edges = append(edges, sqltable.EdgeSQLDb)
	}
	if m.columns != nil {
		edges = append(edges, sqltable.EdgeColumns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SqlTableMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sqltable.EdgeSQLDb:
		if id := m.sql_db; id != nil {
			return []ent.Value{*id}
		}
	case sqltable.EdgeColumns:
		ids := make([]ent.Value, 0, len(m.columns))
		for id := range m.columns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SqlTableMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcolumns != nil {
		edges = append(edges, sqltable.EdgeColumns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SqlTableMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case sqltable.EdgeColumns:
		ids := make([]ent.Value, 0, len(m.removedcolumns))
		for id := range m.removedcolumns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SqlTableMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsql_db {
		edges = append(edges, sqltable.EdgeSQLDb)
	}
	if m.clearedcolumns {
		edges = append(edges, sqltable.EdgeColumns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SqlTableMutation) EdgeCleared(name string) bool {
	switch name {
	case sqltable.EdgeSQLDb:
		return m.clearedsql_db
	case sqltable.EdgeColumns:
		return m.clearedcolumns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SqlTableMutation) ClearEdge(name string) error {
	switch name {
	case sqltable.EdgeSQLDb:
		m.ClearSQLDb()
		return nil
	}
	return fmt.Errorf("unknown SqlTable unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SqlTableMutation) ResetEdge(name string) error {
	switch name {
	case sqltable.EdgeSQLDb:
		m.ResetSQLDb()
		return nil
	case sqltable.EdgeColumns:
		m.ResetColumns()
		return nil
	}
	return fmt.Errorf("unknown SqlTable edge %s", name)
}

// ThothLogMutation represents an operation that mutates the ThothLog nodes in the graph.
type ThothLogMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	question            *string
	sql                 *string
	username            *string
	agent_name          *string
	sql_status          *thothlog.SQLStatus
	evaluation_case     *string
	pass_rate           *float64
	addpass_rate        *float64
	pass_rates          *[]float64
	appendpass_rates    []float64
	tests_used          *[]string
	appendtests_used    []string
	evidence_used       *[]string
	appendevidence_used []string
	started_at          *time.Time
	duration_ms         *int64
	addduration_ms      *int64
	created_at          *time.Time
	clearedFields       map[string]struct{}
	workspace           *string
	clearedworkspace    bool
	done                bool
	oldValue            func(context.Context) (*ThothLog, error)
	predicates          []predicate.ThothLog
}

var _ ent.Mutation = (*ThothLogMutation)(nil)

// thothlogOption allows management of the mutation configuration using functional options.
type thothlogOption func(*ThothLogMutation)

// newThothLogMutation creates new mutation for the ThothLog entity.
func newThothLogMutation(c config, op Op, opts ...thothlogOption) *ThothLogMutation {
	m := &ThothLogMutation{
		config:        c,
		op:            op,
		typ:           TypeThothLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withThothLogID sets the ID field of the mutation.
func withThothLogID(id string) thothlogOption {
	return func(m *ThothLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ThothLog
		)
		m.oldValue = func(ctx context.Context) (*ThothLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ThothLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withThothLog sets the old ThothLog of the mutation.
func withThothLog(node *ThothLog) thothlogOption {
	return func(m *ThothLogMutation) {
		m.oldValue = func(context.Context) (*ThothLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ThothLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ThothLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ThothLog entities.
func (m *ThothLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ThothLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ThothLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ThothLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuestion sets the "question" field.
func (m *ThothLogMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *ThothLogMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the ThothLog entity.
// If the ThothLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThothLogMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *ThothLogMutation) ResetQuestion() {
	m.question = nil
}

// SetSQL sets the "sql" field.
func (m *ThothLogMutation) SetSQL(s string) {
	m.sql = &s
}

// SQL returns the value of the "sql" field in the mutation.
func (m *ThothLogMutation) SQL() (r string, exists bool) {
	v := m.sql
	if v == nil {
		return
	}
	return *v, true
}

// OldSQL returns the old "sql" field's value of the ThothLog entity.
// If the ThothLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThothLogMutation) OldSQL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSQL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSQL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSQL: %w", err)
	}
	return oldValue.SQL, nil
}

// ResetSQL resets all changes to the "sql" field.
func (m *ThothLogMutation) ResetSQL() {
	m.sql = nil
}

// SetUsername sets the "username" field.
func (m *ThothLogMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *ThothLogMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the ThothLog entity.
// If the ThothLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThothLogMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ClearUsername clears the value of the "username" field.
func (m *ThothLogMutation) ClearUsername() {
	m.username = nil
	m.clearedFields[thothlog.FieldUsername] = struct{}{}
}

// UsernameCleared returns if the "username" field was cleared in this mutation.
func (m *ThothLogMutation) UsernameCleared() bool {
	_, ok := m.clearedFields[thothlog.FieldUsername]
	return ok
}

// ResetUsername resets all changes to the "username" field.
func (m *ThothLogMutation) ResetUsername() {
	m.username = nil
	delete(m.clearedFields, thothlog.FieldUsername)
}

// SetAgentName sets the "agent_name" field.
func (m *ThothLogMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *ThothLogMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the ThothLog entity.
// If the ThothLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThothLogMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ClearAgentName clears the value of the "agent_name" field.
func (m *ThothLogMutation) ClearAgentName() {
	m.agent_name = nil
	m.clearedFields[thothlog.FieldAgentName] = struct{}{}
}

// AgentNameCleared returns if the "agent_name" field was cleared in this mutation.
func (m *ThothLogMutation) AgentNameCleared() bool {
	_, ok := m.clearedFields[thothlog.FieldAgentName]
	return ok
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *ThothLogMutation) ResetAgentName() {
	m.agent_name = nil
	delete(m.clearedFields, thothlog.FieldAgentName)
}

// SetSQLStatus sets the "sql_status" field.
func (m *ThothLogMutation) SetSQLStatus(ts thothlog.SQLStatus) {
	m.sql_status = &ts
}

// SQLStatus returns the value of the "sql_status" field in the mutation.
func (m *ThothLogMutation) SQLStatus() (r thothlog.SQLStatus, exists bool) {
	v := m.sql_status
	if v == nil {
		return
	}
	return *v, true
}

// OldSQLStatus returns the old "sql_status" field's value of the ThothLog entity.
// If the ThothLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThothLogMutation) OldSQLStatus(ctx context.Context) (v thothlog.SQLStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSQLStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSQLStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSQLStatus: %w", err)
	}
	return oldValue.SQLStatus, nil
}

// ResetSQLStatus resets all changes to the "sql_status" field.
func (m *ThothLogMutation) ResetSQLStatus() {
	m.sql_status = nil
}

// SetEvaluationCase sets the "evaluation_case" field.
func (m *ThothLogMutation) SetEvaluationCase(s string) {
	m.evaluation_case = &s
}

// EvaluationCase returns the value of the "evaluation_case" field in the mutation.
func (m *ThothLogMutation) EvaluationCase() (r string, exists bool) {
	v := m.evaluation_case
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluationCase returns the old "evaluation_case" field's value of the ThothLog entity.
// If the ThothLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThothLogMutation) OldEvaluationCase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluationCase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluationCase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluationCase: %w", err)
	}
	return oldValue.EvaluationCase, nil
}

// ClearEvaluationCase clears the value of the "evaluation_case" field.
func (m *ThothLogMutation) ClearEvaluationCase() {
	m.evaluation_case = nil
	m.clearedFields[thothlog.FieldEvaluationCase] = struct{}{}
}

// EvaluationCaseCleared returns if the "evaluation_case" field was cleared in this mutation.
func (m *ThothLogMutation) EvaluationCaseCleared() bool {
	_, ok := m.clearedFields[thothlog.FieldEvaluationCase]
	return ok
}

// ResetEvaluationCase resets all changes to the "evaluation_case" field.
func (m *ThothLogMutation) ResetEvaluationCase() {
	m.evaluation_case = nil
	delete(m.clearedFields, thothlog.FieldEvaluationCase)
}

// SetPassRate sets the "pass_rate" field.
func (m *ThothLogMutation) SetPassRate(f float64) {
	m.pass_rate = &f
	m.addpass_rate = nil
}

// PassRate returns the value of the "pass_rate" field in the mutation.
func (m *ThothLogMutation) PassRate() (r float64, exists bool) {
	v := m.pass_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldPassRate returns the old "pass_rate" field's value of the ThothLog entity.
// If the ThothLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThothLogMutation) OldPassRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassRate: %w", err)
	}
	return oldValue.PassRate, nil
}

// AddPassRate adds f to the "pass_rate" field.
func (m *ThothLogMutation) AddPassRate(f float64) {
	if m.addpass_rate != nil {
		*m.addpass_rate += f
	} else {
		m.addpass_rate = &f
	}
}

// AddedPassRate returns the value that was added to the "pass_rate" field in this mutation.
func (m *ThothLogMutation) AddedPassRate() (r float64, exists bool) {
	v := m.addpass_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetPassRate resets all changes to the "pass_rate" field.
func (m *ThothLogMutation) ResetPassRate() {
	m.pass_rate = nil
	m.addpass_rate = nil
}

// SetPassRates sets the "pass_rates" field.
func (m *ThothLogMutation) SetPassRates(f []float64) {
	m.pass_rates = &f
	m.appendpass_rates = nil
}

// PassRates returns the value of the "pass_rates" field in the mutation.
func (m *ThothLogMutation) PassRates() (r []float64, exists bool) {
	v := m.pass_rates
	if v == nil {
		return
	}
	return *v, true
}

// OldPassRates returns the old "pass_rates" field's value of the ThothLog entity.
// If the ThothLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThothLogMutation) OldPassRates(ctx context.Context) (v []float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassRates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassRates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassRates: %w", err)
	}
	return oldValue.PassRates, nil
}

// AppendPassRates adds f to the "pass_rates" field.
func (m *ThothLogMutation) AppendPassRates(f []float64) {
	m.appendpass_rates = append(m.appendpass_rates, f...)
}

// AppendedPassRates returns the list of values that were appended to the "pass_rates" field in this mutation.
func (m *ThothLogMutation) AppendedPassRates() ([]float64, bool) {
	if len(m.appendpass_rates) == 0 {
		return nil, false
	}
	return m.appendpass_rates, true
}

// ClearPassRates clears the value of the "pass_rates" field.
func (m *ThothLogMutation) ClearPassRates() {
	m.pass_rates = nil
	m.appendpass_rates = nil
	m.clearedFields[thothlog.FieldPassRates] = struct{}{}
}

// PassRatesCleared returns if the "pass_rates" field was cleared in this mutation.
func (m *ThothLogMutation) PassRatesCleared() bool {
	_, ok := m.clearedFields[thothlog.FieldPassRates]
	return ok
}

// ResetPassRates resets all changes to the "pass_rates" field.
func (m *ThothLogMutation) ResetPassRates() {
	m.pass_rates = nil
	m.appendpass_rates = nil
	delete(m.clearedFields, thothlog.FieldPassRates)
}

// SetTestsUsed sets the "tests_used" field.
func (m *ThothLogMutation) SetTestsUsed(s []string) {
	m.tests_used = &s
	m.appendtests_used = nil
}

// TestsUsed returns the value of the "tests_used" field in the mutation.
func (m *ThothLogMutation) TestsUsed() (r []string, exists bool) {
	v := m.tests_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTestsUsed returns the old "tests_used" field's value of the ThothLog entity.
// If the ThothLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThothLogMutation) OldTestsUsed(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestsUsed: %w", err)
	}
	return oldValue.TestsUsed, nil
}

// AppendTestsUsed adds s to the "tests_used" field.
func (m *ThothLogMutation) AppendTestsUsed(s []string) {
	m.appendtests_used = append(m.appendtests_used, s...)
}

// AppendedTestsUsed returns the list of values that were appended to the "tests_used" field in this mutation.
func (m *ThothLogMutation) AppendedTestsUsed() ([]string, bool) {
	if len(m.appendtests_used) == 0 {
		return nil, false
	}
	return m.appendtests_used, true
}

// ClearTestsUsed clears the value of the "tests_used" field.
func (m *ThothLogMutation) ClearTestsUsed() {
	m.tests_used = nil
	m.appendtests_used = nil
	m.clearedFields[thothlog.FieldTestsUsed] = struct{}{}
}

// TestsUsedCleared returns if the "tests_used" field was cleared in this mutation.
func (m *ThothLogMutation) TestsUsedCleared() bool {
	_, ok := m.clearedFields[thothlog.FieldTestsUsed]
	return ok
}

// ResetTestsUsed resets all changes to the "tests_used" field.
func (m *ThothLogMutation) ResetTestsUsed() {
	m.tests_used = nil
	m.appendtests_used = nil
	delete(m.clearedFields, thothlog.FieldTestsUsed)
}

// SetEvidenceUsed sets the "evidence_used" field.
func (m *ThothLogMutation) SetEvidenceUsed(s []string) {
	m.evidence_used = &s
	m.appendevidence_used = nil
}

// EvidenceUsed returns the value of the "evidence_used" field in the mutation.
func (m *ThothLogMutation) EvidenceUsed() (r []string, exists bool) {
	v := m.evidence_used
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceUsed returns the old "evidence_used" field's value of the ThothLog entity.
// If the ThothLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThothLogMutation) OldEvidenceUsed(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceUsed: %w", err)
	}
	return oldValue.EvidenceUsed, nil
}

// AppendEvidenceUsed adds s to the "evidence_used" field.
func (m *ThothLogMutation) AppendEvidenceUsed(s []string) {
	m.appendevidence_used = append(m.appendevidence_used, s...)
}

// AppendedEvidenceUsed returns the list of values that were appended to the "evidence_used" field in this mutation.
func (m *ThothLogMutation) AppendedEvidenceUsed() ([]string, bool) {
	if len(m.appendevidence_used) == 0 {
		return nil, false
	}
	return m.appendevidence_used, true
}

// ClearEvidenceUsed clears the value of the "evidence_used" field.
func (m *ThothLogMutation) ClearEvidenceUsed() {
	m.evidence_used = nil
	m.appendevidence_used = nil
	m.clearedFields[thothlog.FieldEvidenceUsed] = struct{}{}
}

// EvidenceUsedCleared returns if the "evidence_used" field was cleared in this mutation.
func (m *ThothLogMutation) EvidenceUsedCleared() bool {
	_, ok := m.clearedFields[thothlog.FieldEvidenceUsed]
	return ok
}

// ResetEvidenceUsed resets all changes to the "evidence_used" field.
func (m *ThothLogMutation) ResetEvidenceUsed() {
	m.evidence_used = nil
	m.appendevidence_used = nil
	delete(m.clearedFields, thothlog.FieldEvidenceUsed)
}

// SetStartedAt sets the "started_at" field.
func (m *ThothLogMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ThothLogMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ThothLog entity.
// If the ThothLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThothLogMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ThothLogMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *ThothLogMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ThothLogMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ThothLog entity.
// If the ThothLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThothLogMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ThothLogMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ThothLogMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ThothLogMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ThothLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ThothLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ThothLog entity.
// If the ThothLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThothLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ThothLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetWorkspaceID sets the "workspace" edge to the Workspace entity by id.
func (m *ThothLogMutation) SetWorkspaceID(id string) {
	m.workspace = &id
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *ThothLogMutation) ClearWorkspace() {
	m.clearedworkspace = true
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *ThothLogMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceID returns the "workspace" edge ID in the mutation.
func (m *ThothLogMutation) WorkspaceID() (id string, exists bool) {
	if m.workspace != nil {
		return *m.workspace, true
	}
	return
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *ThothLogMutation) WorkspaceIDs() (ids []string) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *ThothLogMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// Where appends a list predicates to the ThothLogMutation builder.
func (m *ThothLogMutation) Where(ps ...predicate.ThothLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ThothLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ThothLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ThothLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ThothLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ThothLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ThothLog).
func (m *ThothLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ThothLogMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.question != nil {
		fields = append(fields, thothlog.FieldQuestion)
	}
	if m.sql != nil {
		fields = append(fields, thothlog.FieldSQL)
	}
	if m.username != nil {
		fields = append(fields, thothlog.FieldUsername)
	}
	if m.agent_name != nil {
		fields = append(fields, thothlog.FieldAgentName)
	}
	if m.sql_status != nil {
		fields = append(fields, thothlog.FieldSQLStatus)
	}
	if m.evaluation_case != nil {
		fields = append(fields, thothlog.FieldEvaluationCase)
	}
	if m.pass_rate != nil {
		fields = append(fields, thothlog.FieldPassRate)
	}
	if m.pass_rates != nil {
		fields = append(fields, thothlog.FieldPassRates)
	}
	if m.tests_used != nil {
		fields = append(fields, thothlog.FieldTestsUsed)
	}
	if m.evidence_used != nil {
		fields = append(fields, thothlog.FieldEvidenceUsed)
	}
	if m.started_at != nil {
		fields = append(fields, thothlog.FieldStartedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, thothlog.FieldDurationMs)
	}
	if m.created_at != nil {
		fields = append(fields, thothlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ThothLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case thothlog.FieldQuestion:
		return m.Question()
	case thothlog.FieldSQL:
		return m.SQL()
	case thothlog.FieldUsername:
		return m.Username()
	case thothlog.FieldAgentName:
		return m.AgentName()
	case thothlog.FieldSQLStatus:
		return m.SQLStatus()
	case thothlog.FieldEvaluationCase:
		return m.EvaluationCase()
	case thothlog.FieldPassRate:
		return m.PassRate()
	case thothlog.FieldPassRates:
		return m.PassRates()
	case thothlog.FieldTestsUsed:
		return m.TestsUsed()
	case thothlog.FieldEvidenceUsed:
		return m.EvidenceUsed()
	case thothlog.FieldStartedAt:
		return m.StartedAt()
	case thothlog.FieldDurationMs:
		return m.DurationMs()
	case thothlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ThothLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case thothlog.FieldQuestion:
		return m.OldQuestion(ctx)
	case thothlog.FieldSQL:
		return m.OldSQL(ctx)
	case thothlog.FieldUsername:
		return m.OldUsername(ctx)
	case thothlog.FieldAgentName:
		return m.OldAgentName(ctx)
	case thothlog.FieldSQLStatus:
		return m.OldSQLStatus(ctx)
	case thothlog.FieldEvaluationCase:
		return m.OldEvaluationCase(ctx)
	case thothlog.FieldPassRate:
		return m.OldPassRate(ctx)
	case thothlog.FieldPassRates:
		return m.OldPassRates(ctx)
	case thothlog.FieldTestsUsed:
		return m.OldTestsUsed(ctx)
	case thothlog.FieldEvidenceUsed:
		return m.OldEvidenceUsed(ctx)
	case thothlog.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case thothlog.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case thothlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ThothLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThothLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case thothlog.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case thothlog.FieldSQL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSQL(v)
		return nil
	case thothlog.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case thothlog.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case thothlog.FieldSQLStatus:
		v, ok := value.(thothlog.SQLStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSQLStatus(v)
		return nil
	case thothlog.FieldEvaluationCase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluationCase(v)
		return nil
	case thothlog.FieldPassRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassRate(v)
		return nil
	case thothlog.FieldPassRates:
		v, ok := value.([]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassRates(v)
		return nil
	case thothlog.FieldTestsUsed:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestsUsed(v)
		return nil
	case thothlog.FieldEvidenceUsed:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceUsed(v)
		return nil
	case thothlog.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case thothlog.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case thothlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ThothLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ThothLogMutation) AddedFields() []string {
	var fields []string
	if m.addpass_rate != nil {
		fields = append(fields, thothlog.FieldPassRate)
	}
	if m.addduration_ms != nil {
		fields = append(fields, thothlog.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ThothLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case thothlog.FieldPassRate:
		return m.AddedPassRate()
	case thothlog.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThothLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case thothlog.FieldPassRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPassRate(v)
		return nil
	case thothlog.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ThothLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ThothLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(thothlog.FieldUsername) {
		fields = append(fields, thothlog.FieldUsername)
	}
	if m.FieldCleared(thothlog.FieldAgentName) {
		fields = append(fields, thothlog.FieldAgentName)
	}
	if m.FieldCleared(thothlog.FieldEvaluationCase) {
		fields = append(fields, thothlog.FieldEvaluationCase)
	}
	if m.FieldCleared(thothlog.FieldPassRates) {
		fields = append(fields, thothlog.FieldPassRates)
	}
	if m.FieldCleared(thothlog.FieldTestsUsed) {
		fields = append(fields, thothlog.FieldTestsUsed)
	}
	if m.FieldCleared(thothlog.FieldEvidenceUsed) {
		fields = append(fields, thothlog.FieldEvidenceUsed)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ThothLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ThothLogMutation) ClearField(name string) error {
	switch name {
	case thothlog.FieldUsername:
		m.ClearUsername()
		return nil
	case thothlog.FieldAgentName:
		m.ClearAgentName()
		return nil
	case thothlog.FieldEvaluationCase:
		m.ClearEvaluationCase()
		return nil
	case thothlog.FieldPassRates:
		m.ClearPassRates()
		return nil
	case thothlog.FieldTestsUsed:
		m.ClearTestsUsed()
		return nil
	case thothlog.FieldEvidenceUsed:
		m.ClearEvidenceUsed()
		return nil
	}
	return fmt.Errorf("unknown ThothLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ThothLogMutation) ResetField(name string) error {
	switch name {
	case thothlog.FieldQuestion:
		m.ResetQuestion()
		return nil
	case thothlog.FieldSQL:
		m.ResetSQL()
		return nil
	case thothlog.FieldUsername:
		m.ResetUsername()
		return nil
	case thothlog.FieldAgentName:
		m.ResetAgentName()
		return nil
	case thothlog.FieldSQLStatus:
		m.ResetSQLStatus()
		return nil
	case thothlog.FieldEvaluationCase:
		m.ResetEvaluationCase()
		return nil
	case thothlog.FieldPassRate:
		m.ResetPassRate()
		return nil
	case thothlog.FieldPassRates:
		m.ResetPassRates()
		return nil
	case thothlog.FieldTestsUsed:
		m.ResetTestsUsed()
		return nil
	case thothlog.FieldEvidenceUsed:
		m.ResetEvidenceUsed()
		return nil
	case thothlog.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case thothlog.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case thothlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ThothLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ThothLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workspace != nil {
		edges = append(edges, thothlog.EdgeWorkspace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ThothLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case thothlog.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ThothLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ThothLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ThothLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkspace {
		edges = append(edges, thothlog.EdgeWorkspace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ThothLogMutation) EdgeCleared(name string) bool {
	switch name {
	case thothlog.EdgeWorkspace:
		return m.clearedworkspace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ThothLogMutation) ClearEdge(name string) error {
	switch name {
	case thothlog.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown ThothLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ThothLogMutation) ResetEdge(name string) error {
	switch name {
	case thothlog.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	}
	return fmt.Errorf("unknown ThothLog edge %s", name)
}

// VectorDbMutation represents an operation that mutates the VectorDb nodes in the graph.
type VectorDbMutation struct {
	config
	op            Op
	typ           string
	id            *string
	backend       *vectordb.Backend
	host          *string
	port          *int
	addport       *int
	username      *string
	password      *string
	api_key       *string
	tenant        *string
	collection    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*VectorDb, error)
	predicates    []predicate.VectorDb
}

var _ ent.Mutation = (*VectorDbMutation)(nil)

// vectordbOption allows management of the mutation configuration using functional options.
type vectordbOption func(*VectorDbMutation)

// newVectorDbMutation creates new mutation for the VectorDb entity.
func newVectorDbMutation(c config, op Op, opts ...vectordbOption) *VectorDbMutation {
	m := &VectorDbMutation{
		config:        c,
		op:            op,
		typ:           TypeVectorDb,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVectorDbID sets the ID field of the mutation.
func withVectorDbID(id string) vectordbOption {
	return func(m *VectorDbMutation) {
		var (
			err   error
			once  sync.Once
			value *VectorDb
		)
		m.oldValue = func(ctx context.Context) (*VectorDb, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VectorDb.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVectorDb sets the old VectorDb of the mutation.
func withVectorDb(node *VectorDb) vectordbOption {
	return func(m *VectorDbMutation) {
		m.oldValue = func(context.Context) (*VectorDb, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VectorDbMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VectorDbMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VectorDb entities.
func (m *VectorDbMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VectorDbMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VectorDbMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VectorDb.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBackend sets the "backend" field.
func (m *VectorDbMutation) SetBackend(v vectordb.Backend) {
	m.backend = &v
}

// Backend returns the value of the "backend" field in the mutation.
func (m *VectorDbMutation) Backend() (r vectordb.Backend, exists bool) {
	v := m.backend
	if v == nil {
		return
	}
	return *v, true
}

// OldBackend returns the old "backend" field's value of the VectorDb entity.
// If the VectorDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorDbMutation) OldBackend(ctx context.Context) (v vectordb.Backend, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackend is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackend requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackend: %w", err)
	}
	return oldValue.Backend, nil
}

// ResetBackend resets all changes to the "backend" field.
func (m *VectorDbMutation) ResetBackend() {
	m.backend = nil
}

// SetHost sets the "host" field.
func (m *VectorDbMutation) SetHost(s string) {
	m.host = &s
}

// Host returns the value of the "host" field in the mutation.
func (m *VectorDbMutation) Host() (r string, exists bool) {
	v := m.host
	if v == nil {
		return
	}
	return *v, true
}

// OldHost returns the old "host" field's value of the VectorDb entity.
// If the VectorDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorDbMutation) OldHost(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHost: %w", err)
	}
	return oldValue.Host, nil
}

// ResetHost resets all changes to the "host" field.
func (m *VectorDbMutation) ResetHost() {
	m.host = nil
}

// SetPort sets the "port" field.
func (m *VectorDbMutation) SetPort(i int) {
	m.port = &i
	m.addport = nil
}

// Port returns the value of the "port" field in the mutation.
func (m *VectorDbMutation) Port() (r int, exists bool) {
	v := m.port
	if v == nil {
		return
	}
	return *v, true
}

// OldPort returns the old "port" field's value of the VectorDb entity.
// If the VectorDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorDbMutation) OldPort(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPort: %w", err)
	}
	return oldValue.Port, nil
}

// AddPort adds i to the "port" field.
func (m *VectorDbMutation) AddPort(i int) {
	if m.addport != nil {
		*m.addport += i
	} else {
		m.addport = &i
	}
}

// AddedPort returns the value that was added to the "port" field in this mutation.
func (m *VectorDbMutation) AddedPort() (r int, exists bool) {
	v := m.addport
	if v == nil {
		return
	}
	return *v, true
}

// ClearPort clears the value of the "port" field.
func (m *VectorDbMutation) ClearPort() {
	m.port = nil
	m.addport = nil
	m.clearedFields[vectordb.FieldPort] = struct{}{}
}

// PortCleared returns if the "port" field was cleared in this mutation.
func (m *VectorDbMutation) PortCleared() bool {
	_, ok := m.clearedFields[vectordb.FieldPort]
	return ok
}

// ResetPort resets all changes to the "port" field.
func (m *VectorDbMutation) ResetPort() {
	m.port = nil
	m.addport = nil
	delete(m.clearedFields, vectordb.FieldPort)
}

// SetUsername sets the "username" field.
func (m *VectorDbMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *VectorDbMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the VectorDb entity.
// If the VectorDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorDbMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ClearUsername clears the value of the "username" field.
func (m *VectorDbMutation) ClearUsername() {
	m.username = nil
	m.clearedFields[vectordb.FieldUsername] = struct{}{}
}

// UsernameCleared returns if the "username" field was cleared in this mutation.
func (m *VectorDbMutation) UsernameCleared() bool {
	_, ok := m.clearedFields[vectordb.FieldUsername]
	return ok
}

// ResetUsername resets all changes to the "username" field.
func (m *VectorDbMutation) ResetUsername() {
	m.username = nil
	delete(m.clearedFields, vectordb.FieldUsername)
}

// SetPassword sets the "password" field.
func (m *VectorDbMutation) SetPassword(s string) {
	m.password = &s
}

// Password returns the value of the "password" field in the mutation.
func (m *VectorDbMutation) Password() (r string, exists bool) {
	v := m.password
	if v == nil {
		return
	}
	return *v, true
}

// OldPassword returns the old "password" field's value of the VectorDb entity.
// If the VectorDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorDbMutation) OldPassword(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassword is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassword requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassword: %w", err)
	}
	return oldValue.Password, nil
}

// ClearPassword clears the value of the "password" field.
func (m *VectorDbMutation) ClearPassword() {
	m.password = nil
	m.clearedFields[vectordb.FieldPassword] = struct{}{}
}

// PasswordCleared returns if the "password" field was cleared in this mutation.
func (m *VectorDbMutation) PasswordCleared() bool {
	_, ok := m.clearedFields[vectordb.FieldPassword]
	return ok
}

// ResetPassword resets all changes to the "password" field.
func (m *VectorDbMutation) ResetPassword() {
	m.password = nil
	delete(m.clearedFields, vectordb.FieldPassword)
}

// SetAPIKey sets the "api_key" field.
func (m *VectorDbMutation) SetAPIKey(s string) {
	m.api_key = &s
}

// APIKey returns the value of the "api_key" field in the mutation.
func (m *VectorDbMutation) APIKey() (r string, exists bool) {
	v := m.api_key
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIKey returns the old "api_key" field's value of the VectorDb entity.
// If the VectorDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorDbMutation) OldAPIKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIKey: %w", err)
	}
	return oldValue.APIKey, nil
}

// ClearAPIKey clears the value of the "api_key" field.
func (m *VectorDbMutation) ClearAPIKey() {
	m.api_key = nil
	m.clearedFields[vectordb.FieldAPIKey] = struct{}{}
}

// APIKeyCleared returns if the "api_key" field was cleared in this mutation.
func (m *VectorDbMutation) APIKeyCleared() bool {
	_, ok := m.clearedFields[vectordb.FieldAPIKey]
	return ok
}

// ResetAPIKey resets all changes to the "api_key" field.
func (m *VectorDbMutation) ResetAPIKey() {
	m.api_key = nil
	delete(m.clearedFields, vectordb.FieldAPIKey)
}

// SetTenant sets the "tenant" field.
func (m *VectorDbMutation) SetTenant(s string) {
	m.tenant = &s
}

// Tenant returns the value of the "tenant" field in the mutation.
func (m *VectorDbMutation) Tenant() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenant returns the old "tenant" field's value of the VectorDb entity.
// If the VectorDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorDbMutation) OldTenant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenant: %w", err)
	}
	return oldValue.Tenant, nil
}

// ClearTenant clears the value of the "tenant" field.
func (m *VectorDbMutation) ClearTenant() {
	m.tenant = nil
	m.clearedFields[vectordb.FieldTenant] = struct{}{}
}

// TenantCleared returns if the "tenant" field was cleared in this mutation.
func (m *VectorDbMutation) TenantCleared() bool {
	_, ok := m.clearedFields[vectordb.FieldTenant]
	return ok
}

// ResetTenant resets all changes to the "tenant" field.
func (m *VectorDbMutation) ResetTenant() {
	m.tenant = nil
	delete(m.clearedFields, vectordb.FieldTenant)
}

// SetCollection sets the "collection" field.
func (m *VectorDbMutation) SetCollection(s string) {
	m.collection = &s
}

// Collection returns the value of the "collection" field in the mutation.
func (m *VectorDbMutation) Collection() (r string, exists bool) {
	v := m.collection
	if v == nil {
		return
	}
	return *v, true
}

// OldCollection returns the old "collection" field's value of the VectorDb entity.
// If the VectorDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorDbMutation) OldCollection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollection: %w", err)
	}
	return oldValue.Collection, nil
}

// ResetCollection resets all changes to the "collection" field.
func (m *VectorDbMutation) ResetCollection() {
	m.collection = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *VectorDbMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VectorDbMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VectorDb entity.
// If the VectorDb object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorDbMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VectorDbMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the VectorDbMutation builder.
func (m *VectorDbMutation) Where(ps ...predicate.VectorDb) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VectorDbMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VectorDbMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VectorDb, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VectorDbMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VectorDbMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VectorDb).
func (m *VectorDbMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VectorDbMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.backend != nil {
		fields = append(fields, vectordb.FieldBackend)
	}
	if m.host != nil {
		fields = append(fields, vectordb.FieldHost)
	}
	if m.port != nil {
		fields = append(fields, vectordb.FieldPort)
	}
	if m.username != nil {
		fields = append(fields, vectordb.FieldUsername)
	}
	if m.password != nil {
		fields = append(fields, vectordb.FieldPassword)
	}
	if m.api_key != nil {
		fields = append(fields, vectordb.FieldAPIKey)
	}
	if m.tenant != nil {
		fields = append(fields, vectordb.FieldTenant)
	}
	if m.collection != nil {
		fields = append(fields, vectordb.FieldCollection)
	}
	if m.created_at != nil {
		fields = append(fields, vectordb.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VectorDbMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vectordb.FieldBackend:
		return m.Backend()
	case vectordb.FieldHost:
		return m.Host()
	case vectordb.FieldPort:
		return m.Port()
	case vectordb.FieldUsername:
		return m.Username()
	case vectordb.FieldPassword:
		return m.Password()
	case vectordb.FieldAPIKey:
		return m.APIKey()
	case vectordb.FieldTenant:
		return m.Tenant()
	case vectordb.FieldCollection:
		return m.Collection()
	case vectordb.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VectorDbMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vectordb.FieldBackend:
		return m.OldBackend(ctx)
	case vectordb.FieldHost:
		return m.OldHost(ctx)
	case vectordb.FieldPort:
		return m.OldPort(ctx)
	case vectordb.FieldUsername:
		return m.OldUsername(ctx)
	case vectordb.FieldPassword:
		return m.OldPassword(ctx)
	case vectordb.FieldAPIKey:
		return m.OldAPIKey(ctx)
	case vectordb.FieldTenant:
		return m.OldTenant(ctx)
	case vectordb.FieldCollection:
		return m.OldCollection(ctx)
	case vectordb.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VectorDb field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VectorDbMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vectordb.FieldBackend:
		v, ok := value.(vectordb.Backend)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackend(v)
		return nil
	case vectordb.FieldHost:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHost(v)
		return nil
	case vectordb.FieldPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPort(v)
		return nil
	case vectordb.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case vectordb.FieldPassword:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassword(v)
		return nil
	case vectordb.FieldAPIKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIKey(v)
		return nil
	case vectordb.FieldTenant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenant(v)
		return nil
	case vectordb.FieldCollection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollection(v)
		return nil
	case vectordb.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VectorDb field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VectorDbMutation) AddedFields() []string {
	var fields []string
	if m.addport != nil {
		fields = append(fields, vectordb.FieldPort)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VectorDbMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case vectordb.FieldPort:
		return m.AddedPort()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VectorDbMutation) AddField(name string, value ent.Value) error {
	switch name {
	case vectordb.FieldPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPort(v)
		return nil
	}
	return fmt.Errorf("unknown VectorDb numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VectorDbMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vectordb.FieldPort) {
		fields = append(fields, vectordb.FieldPort)
	}
	if m.FieldCleared(vectordb.FieldUsername) {
		fields = append(fields, vectordb.FieldUsername)
	}
	if m.FieldCleared(vectordb.FieldPassword) {
		fields = append(fields, vectordb.FieldPassword)
	}
	if m.FieldCleared(vectordb.FieldAPIKey) {
		fields = append(fields, vectordb.FieldAPIKey)
	}
	if m.FieldCleared(vectordb.FieldTenant) {
		fields = append(fields, vectordb.FieldTenant)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VectorDbMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VectorDbMutation) ClearField(name string) error {
	switch name {
	case vectordb.FieldPort:
		m.ClearPort()
		return nil
	case vectordb.FieldUsername:
		m.ClearUsername()
		return nil
	case vectordb.FieldPassword:
		m.ClearPassword()
		return nil
	case vectordb.FieldAPIKey:
		m.ClearAPIKey()
		return nil
	case vectordb.FieldTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown VectorDb nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VectorDbMutation) ResetField(name string) error {
	switch name {
	case vectordb.FieldBackend:
		m.ResetBackend()
		return nil
	case vectordb.FieldHost:
		m.ResetHost()
		return nil
	case vectordb.FieldPort:
		m.ResetPort()
		return nil
	case vectordb.FieldUsername:
		m.ResetUsername()
		return nil
	case vectordb.FieldPassword:
		m.ResetPassword()
		return nil
	case vectordb.FieldAPIKey:
		m.ResetAPIKey()
		return nil
	case vectordb.FieldTenant:
		m.ResetTenant()
		return nil
	case vectordb.FieldCollection:
		m.ResetCollection()
		return nil
	case vectordb.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown VectorDb field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VectorDbMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VectorDbMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VectorDbMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VectorDbMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VectorDbMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VectorDbMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VectorDbMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown VectorDb unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VectorDbMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown VectorDb edge %s", name)
}

// VectorDocumentMutation represents an operation that mutates the VectorDocument nodes in the graph.
type VectorDocumentMutation struct {
	config
	op            Op
	typ           string
	id            *string
	collection    *string
	doc_type      *vectordocument.DocType
	content       *string
	fields        *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*VectorDocument, error)
	predicates    []predicate.VectorDocument
}

var _ ent.Mutation = (*VectorDocumentMutation)(nil)

// vectordocumentOption allows management of the mutation configuration using functional options.
type vectordocumentOption func(*VectorDocumentMutation)

// newVectorDocumentMutation creates new mutation for the VectorDocument entity.
func newVectorDocumentMutation(c config, op Op, opts ...vectordocumentOption) *VectorDocumentMutation {
	m := &VectorDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeVectorDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVectorDocumentID sets the ID field of the mutation.
func withVectorDocumentID(id string) vectordocumentOption {
	return func(m *VectorDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *VectorDocument
		)
		m.oldValue = func(ctx context.Context) (*VectorDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VectorDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVectorDocument sets the old VectorDocument of the mutation.
func withVectorDocument(node *VectorDocument) vectordocumentOption {
	return func(m *VectorDocumentMutation) {
		m.oldValue = func(context.Context) (*VectorDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VectorDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VectorDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VectorDocument entities.
func (m *VectorDocumentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VectorDocumentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VectorDocumentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VectorDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCollection sets the "collection" field.
func (m *VectorDocumentMutation) SetCollection(s string) {
	m.collection = &s
}

// Collection returns the value of the "collection" field in the mutation.
func (m *VectorDocumentMutation) Collection() (r string, exists bool) {
	v := m.collection
	if v == nil {
		return
	}
	return *v, true
}

// OldCollection returns the old "collection" field's value of the VectorDocument entity.
// If the VectorDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorDocumentMutation) OldCollection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollection: %w", err)
	}
	return oldValue.Collection, nil
}

// ResetCollection resets all changes to the "collection" field.
func (m *VectorDocumentMutation) ResetCollection() {
	m.collection = nil
}

// SetDocType sets the "doc_type" field.
func (m *VectorDocumentMutation) SetDocType(vt vectordocument.DocType) {
	m.doc_type = &vt
}

// DocType returns the value of the "doc_type" field in the mutation.
func (m *VectorDocumentMutation) DocType() (r vectordocument.DocType, exists bool) {
	v := m.doc_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocType returns the old "doc_type" field's value of the VectorDocument entity.
// If the VectorDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorDocumentMutation) OldDocType(ctx context.Context) (v vectordocument.DocType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocType: %w", err)
	}
	return oldValue.DocType, nil
}

// ResetDocType resets all changes to the "doc_type" field.
func (m *VectorDocumentMutation) ResetDocType() {
	m.doc_type = nil
}

// SetContent sets the "content" field.
func (m *VectorDocumentMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *VectorDocumentMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the VectorDocument entity.
// If the VectorDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorDocumentMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *VectorDocumentMutation) ResetContent() {
	m.content = nil
}

// SetFields sets the "fields" field.
func (m *VectorDocumentMutation) SetFields(value map[string]interface{}) {
	m.fields = &value
}

// GetFields returns the value of the "fields" field in the mutation.
func (m *VectorDocumentMutation) GetFields() (r map[string]interface{}, exists bool) {
	v := m.fields
	if v == nil {
		return
	}
	return *v, true
}

// OldFields returns the old "fields" field's value of the VectorDocument entity.
// If the VectorDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorDocumentMutation) OldFields(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFields: %w", err)
	}
	return oldValue.Fields, nil
}

// ClearFields clears the value of the "fields" field.
func (m *VectorDocumentMutation) ClearFields() {
	m.fields = nil
	m.clearedFields[vectordocument.FieldFields] = struct{}{}
}

// FieldsCleared returns if the "fields" field was cleared in this mutation.
func (m *VectorDocumentMutation) FieldsCleared() bool {
	_, ok := m.clearedFields[vectordocument.FieldFields]
	return ok
}

// ResetFields resets all changes to the "fields" field.
func (m *VectorDocumentMutation) ResetFields() {
	m.fields = nil
	delete(m.clearedFields, vectordocument.FieldFields)
}

// SetCreatedAt sets the "created_at" field.
func (m *VectorDocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VectorDocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VectorDocument entity.
// If the VectorDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorDocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VectorDocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the VectorDocumentMutation builder.
func (m *VectorDocumentMutation) Where(ps ...predicate.VectorDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VectorDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VectorDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VectorDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VectorDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VectorDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VectorDocument).
func (m *VectorDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VectorDocumentMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.collection != nil {
		fields = append(fields, vectordocument.FieldCollection)
	}
	if m.doc_type != nil {
		fields = append(fields, vectordocument.FieldDocType)
	}
	if m.content != nil {
		fields = append(fields, vectordocument.FieldContent)
	}
	if m.fields != nil {
		fields = append(fields, vectordocument.FieldFields)
	}
	if m.created_at != nil {
		fields = append(fields, vectordocument.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VectorDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vectordocument.FieldCollection:
		return m.Collection()
	case vectordocument.FieldDocType:
		return m.DocType()
	case vectordocument.FieldContent:
		return m.Content()
	case vectordocument.FieldFields:
		return m.GetFields()
	case vectordocument.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VectorDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vectordocument.FieldCollection:
		return m.OldCollection(ctx)
	case vectordocument.FieldDocType:
		return m.OldDocType(ctx)
	case vectordocument.FieldContent:
		return m.OldContent(ctx)
	case vectordocument.FieldFields:
		return m.OldFields(ctx)
	case vectordocument.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VectorDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VectorDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vectordocument.FieldCollection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollection(v)
		return nil
	case vectordocument.FieldDocType:
		v, ok := value.(vectordocument.DocType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocType(v)
		return nil
	case vectordocument.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case vectordocument.FieldFields:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFields(v)
		return nil
	case vectordocument.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VectorDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VectorDocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VectorDocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VectorDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown VectorDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VectorDocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vectordocument.FieldFields) {
		fields = append(fields, vectordocument.FieldFields)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VectorDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VectorDocumentMutation) ClearField(name string) error {
	switch name {
	case vectordocument.FieldFields:
		m.ClearFields()
		return nil
	}
	return fmt.Errorf("unknown VectorDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VectorDocumentMutation) ResetField(name string) error {
	switch name {
	case vectordocument.FieldCollection:
		m.ResetCollection()
		return nil
	case vectordocument.FieldDocType:
		m.ResetDocType()
		return nil
	case vectordocument.FieldContent:
		m.ResetContent()
		return nil
	case vectordocument.FieldFields:
		m.ResetFields()
		return nil
	case vectordocument.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown VectorDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VectorDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VectorDocumentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VectorDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VectorDocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VectorDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VectorDocumentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VectorDocumentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown VectorDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VectorDocumentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown VectorDocument edge %s", name)
}

// WorkspaceMutation represents an operation that mutates the Workspace nodes in the graph.
type WorkspaceMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	name               *string
	default_model      *string
	language           *string
	agent_slots        *map[string]string
	last_preprocess    *time.Time
	last_evidence_load *time.Time
	last_sql_loaded    *time.Time
	users              *[]string
	appendusers        []string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	sql_db             *string
	clearedsql_db      bool
	thoth_logs         map[string]struct{}
	removedthoth_logs  map[string]struct{}
	clearedthoth_logs  bool
	done               bool
	oldValue           func(context.Context) (*Workspace, error)
	predicates         []predicate.Workspace
}

var _ ent.Mutation = (*WorkspaceMutation)(nil)

// workspaceOption allows management of the mutation configuration using functional options.
type workspaceOption func(*WorkspaceMutation)

// newWorkspaceMutation creates new mutation for the Workspace entity.
func newWorkspaceMutation(c config, op Op, opts ...workspaceOption) *WorkspaceMutation {
	m := &WorkspaceMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkspace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkspaceID sets the ID field of the mutation.
func withWorkspaceID(id string) workspaceOption {
	return func(m *WorkspaceMutation) {
		var (
			err   error
			once  sync.Once
			value *Workspace
		)
		m.oldValue = func(ctx context.Context) (*Workspace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workspace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkspace sets the old Workspace of the mutation.
func withWorkspace(node *Workspace) workspaceOption {
	return func(m *WorkspaceMutation) {
		m.oldValue = func(context.Context) (*Workspace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkspaceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkspaceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Workspace entities.
func (m *WorkspaceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkspaceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkspaceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workspace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *WorkspaceMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorkspaceMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WorkspaceMutation) ResetName() {
	m.name = nil
}

// SetDefaultModel sets the "default_model" field.
func (m *WorkspaceMutation) SetDefaultModel(s string) {
	m.default_model = &s
}

// DefaultModel returns the value of the "default_model" field in the mutation.
func (m *WorkspaceMutation) DefaultModel() (r string, exists bool) {
	v := m.default_model
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultModel returns the old "default_model" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldDefaultModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultModel: %w", err)
	}
	return oldValue.DefaultModel, nil
}

// ResetDefaultModel resets all changes to the "default_model" field.
func (m *WorkspaceMutation) ResetDefaultModel() {
	m.default_model = nil
}

// SetLanguage sets the "language" field.
func (m *WorkspaceMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *WorkspaceMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *WorkspaceMutation) ResetLanguage() {
	m.language = nil
}

// SetAgentSlots sets the "agent_slots" field.
func (m *WorkspaceMutation) SetAgentSlots(value map[string]string) {
	m.agent_slots = &value
}

// AgentSlots returns the value of the "agent_slots" field in the mutation.
func (m *WorkspaceMutation) AgentSlots() (r map[string]string, exists bool) {
	v := m.agent_slots
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentSlots returns the old "agent_slots" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldAgentSlots(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentSlots is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentSlots requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentSlots: %w", err)
	}
	return oldValue.AgentSlots, nil
}

// ClearAgentSlots clears the value of the "agent_slots" field.
func (m *WorkspaceMutation) ClearAgentSlots() {
	m.agent_slots = nil
	m.clearedFields[workspace.FieldAgentSlots] = struct{}{}
}

// AgentSlotsCleared returns if the "agent_slots" field was cleared in this mutation.
func (m *WorkspaceMutation) AgentSlotsCleared() bool {
	_, ok := m.clearedFields[workspace.FieldAgentSlots]
	return ok
}

// ResetAgentSlots resets all changes to the "agent_slots" field.
func (m *WorkspaceMutation) ResetAgentSlots() {
	m.agent_slots = nil
	delete(m.clearedFields, workspace.FieldAgentSlots)
}

// SetLastPreprocess sets the "last_preprocess" field.
func (m *WorkspaceMutation) SetLastPreprocess(t time.Time) {
	m.last_preprocess = &t
}

// LastPreprocess returns the value of the "last_preprocess" field in the mutation.
func (m *WorkspaceMutation) LastPreprocess() (r time.Time, exists bool) {
	v := m.last_preprocess
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPreprocess returns the old "last_preprocess" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldLastPreprocess(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPreprocess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPreprocess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPreprocess: %w", err)
	}
	return oldValue.LastPreprocess, nil
}

// ClearLastPreprocess clears the value of the "last_preprocess" field.
func (m *WorkspaceMutation) ClearLastPreprocess() {
	m.last_preprocess = nil
	m.clearedFields[workspace.FieldLastPreprocess] = struct{}{}
}

// LastPreprocessCleared returns if the "last_preprocess" field was cleared in this mutation.
func (m *WorkspaceMutation) LastPreprocessCleared() bool {
	_, ok := m.clearedFields[workspace.FieldLastPreprocess]
	return ok
}

// ResetLastPreprocess resets all changes to the "last_preprocess" field.
func (m *WorkspaceMutation) ResetLastPreprocess() {
	m.last_preprocess = nil
	delete(m.clearedFields, workspace.FieldLastPreprocess)
}

// SetLastEvidenceLoad sets the "last_evidence_load" field.
func (m *WorkspaceMutation) SetLastEvidenceLoad(t time.Time) {
	m.last_evidence_load = &t
}

// LastEvidenceLoad returns the value of the "last_evidence_load" field in the mutation.
func (m *WorkspaceMutation) LastEvidenceLoad() (r time.Time, exists bool) {
	v := m.last_evidence_load
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEvidenceLoad returns the old "last_evidence_load" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldLastEvidenceLoad(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEvidenceLoad is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEvidenceLoad requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEvidenceLoad: %w", err)
	}
	return oldValue.LastEvidenceLoad, nil
}

// ClearLastEvidenceLoad clears the value of the "last_evidence_load" field.
func (m *WorkspaceMutation) ClearLastEvidenceLoad() {
	m.last_evidence_load = nil
	m.clearedFields[workspace.FieldLastEvidenceLoad] = struct{}{}
}

// LastEvidenceLoadCleared returns if the "last_evidence_load" field was cleared in this mutation.
func (m *WorkspaceMutation) LastEvidenceLoadCleared() bool {
	_, ok := m.clearedFields[workspace.FieldLastEvidenceLoad]
	return ok
}

// ResetLastEvidenceLoad resets all changes to the "last_evidence_load" field.
func (m *WorkspaceMutation) ResetLastEvidenceLoad() {
	m.last_evidence_load = nil
	delete(m.clearedFields, workspace.FieldLastEvidenceLoad)
}

// SetLastSQLLoaded sets the "last_sql_loaded" field.
func (m *WorkspaceMutation) SetLastSQLLoaded(t time.Time) {
	m.last_sql_loaded = &t
}

// LastSQLLoaded returns the value of the "last_sql_loaded" field in the mutation.
func (m *WorkspaceMutation) LastSQLLoaded() (r time.Time, exists bool) {
	v := m.last_sql_loaded
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSQLLoaded returns the old "last_sql_loaded" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldLastSQLLoaded(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSQLLoaded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSQLLoaded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSQLLoaded: %w", err)
	}
	return oldValue.LastSQLLoaded, nil
}

// ClearLastSQLLoaded clears the value of the "last_sql_loaded" field.
func (m *WorkspaceMutation) ClearLastSQLLoaded() {
	m.last_sql_loaded = nil
	m.clearedFields[workspace.FieldLastSQLLoaded] = struct{}{}
}

// LastSQLLoadedCleared returns if the "last_sql_loaded" field was cleared in this mutation.
func (m *WorkspaceMutation) LastSQLLoadedCleared() bool {
	_, ok := m.clearedFields[workspace.FieldLastSQLLoaded]
	return ok
}

// ResetLastSQLLoaded resets all changes to the "last_sql_loaded" field.
func (m *WorkspaceMutation) ResetLastSQLLoaded() {
	m.last_sql_loaded = nil
	delete(m.clearedFields, workspace.FieldLastSQLLoaded)
}

// SetUsers sets the "users" field.
func (m *WorkspaceMutation) SetUsers(s []string) {
	m.users = &s
	m.appendusers = nil
}

// Users returns the value of the "users" field in the mutation.
func (m *WorkspaceMutation) Users() (r []string, exists bool) {
	v := m.users
	if v == nil {
		return
	}
	return *v, true
}

// OldUsers returns the old "users" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldUsers(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsers: %w", err)
	}
	return oldValue.Users, nil
}

// AppendUsers adds s to the "users" field.
func (m *WorkspaceMutation) AppendUsers(s []string) {
	m.appendusers = append(m.appendusers, s...)
}

// AppendedUsers returns the list of values that were appended to the "users" field in this mutation.
func (m *WorkspaceMutation) AppendedUsers() ([]string, bool) {
	if len(m.appendusers) == 0 {
		return nil, false
	}
	return m.appendusers, true
}

// ClearUsers clears the value of the "users" field.
func (m *WorkspaceMutation) ClearUsers() {
	m.users = nil
	m.appendusers = nil
	m.clearedFields[workspace.FieldUsers] = struct{}{}
}

// UsersCleared returns if the "users" field was cleared in this mutation.
func (m *WorkspaceMutation) UsersCleared() bool {
	_, ok := m.clearedFields[workspace.FieldUsers]
	return ok
}

// ResetUsers resets all changes to the "users" field.
func (m *WorkspaceMutation) ResetUsers() {
	m.users = nil
	m.appendusers = nil
	delete(m.clearedFields, workspace.FieldUsers)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkspaceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkspaceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkspaceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkspaceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkspaceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkspaceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSQLDbID sets the "sql_db" edge to the SqlDb entity by id.
func (m *WorkspaceMutation) SetSQLDbID(id string) {
	m.sql_db = &id
}

// ClearSQLDb clears the "sql_db" edge to the SqlDb entity.
func (m *WorkspaceMutation) ClearSQLDb() {
	m.clearedsql_db = true
}

// SQLDbCleared reports if the "sql_db" edge to the SqlDb entity was cleared.
func (m *WorkspaceMutation) SQLDbCleared() bool {
	return m.clearedsql_db
}

// SQLDbID returns the "sql_db" edge ID in the mutation.
func (m *WorkspaceMutation) SQLDbID() (id string, exists bool) {
	if m.sql_db != nil {
		return *m.sql_db, true
	}
	return
}

// SQLDbIDs returns the "sql_db" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SQLDbID instead. It exists only for internal usage by the builders.
func (m *WorkspaceMutation) SQLDbIDs() (ids []string) {
	if id := m.sql_db; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSQLDb resets all changes to the "sql_db" edge.
func (m *WorkspaceMutation) ResetSQLDb() {
	m.sql_db = nil
	m.clearedsql_db = false
}

// AddThothLogIDs adds the "thoth_logs" edge to the ThothLog entity by ids.
func (m *WorkspaceMutation) AddThothLogIDs(ids ...string) {
	if m.thoth_logs == nil {
		m.thoth_logs = make(map[string]struct{})
	}
	for i := range ids {
		m.thoth_logs[ids[i]] = struct{}{}
	}
}

// ClearThothLogs clears the "thoth_logs" edge to the ThothLog entity.
func (m *WorkspaceMutation) ClearThothLogs() {
	m.clearedthoth_logs = true
}

// ThothLogsCleared reports if the "thoth_logs" edge to the ThothLog entity was cleared.
func (m *WorkspaceMutation) ThothLogsCleared() bool {
	return m.clearedthoth_logs
}

// RemoveThothLogIDs removes the "thoth_logs" edge to the ThothLog entity by IDs.
func (m *WorkspaceMutation) RemoveThothLogIDs(ids ...string) {
	if m.removedthoth_logs == nil {
		m.removedthoth_logs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.thoth_logs, ids[i])
		m.removedthoth_logs[ids[i]] = struct{}{}
	}
}

// RemovedThothLogs returns the removed IDs of the "thoth_logs" edge to the ThothLog entity.
func (m *WorkspaceMutation) RemovedThothLogsIDs() (ids []string) {
	for id := range m.removedthoth_logs {
		ids = append(ids, id)
	}
	return
}

// ThothLogsIDs returns the "thoth_logs" edge IDs in the mutation.
func (m *WorkspaceMutation) ThothLogsIDs() (ids []string) {
	for id := range m.thoth_logs {
		ids = append(ids, id)
	}
	return
}

// ResetThothLogs resets all changes to the "thoth_logs" edge.
func (m *WorkspaceMutation) ResetThothLogs() {
	m.thoth_logs = nil
	m.clearedthoth_logs = false
	m.removedthoth_logs = nil
}

// Where appends a list predicates to the WorkspaceMutation builder.
func (m *WorkspaceMutation) Where(ps ...predicate.Workspace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkspaceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkspaceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workspace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkspaceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkspaceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workspace).
func (m *WorkspaceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkspaceMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.name != nil {
		fields = append(fields, workspace.FieldName)
	}
	if m.default_model != nil {
		fields = append(fields, workspace.FieldDefaultModel)
	}
	if m.language != nil {
		fields = append(fields, workspace.FieldLanguage)
	}
	if m.agent_slots != nil {
		fields = append(fields, workspace.FieldAgentSlots)
	}
	if m.last_preprocess != nil {
		fields = append(fields, workspace.FieldLastPreprocess)
	}
	if m.last_evidence_load != nil {
		fields = append(fields, workspace.FieldLastEvidenceLoad)
	}
	if m.last_sql_loaded != nil {
		fields = append(fields, workspace.FieldLastSQLLoaded)
	}
	if m.users != nil {
		fields = append(fields, workspace.FieldUsers)
	}
	if m.created_at != nil {
		fields = append(fields, workspace.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workspace.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkspaceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workspace.FieldName:
		return m.Name()
	case workspace.FieldDefaultModel:
		return m.DefaultModel()
	case workspace.FieldLanguage:
		return m.Language()
	case workspace.FieldAgentSlots:
		return m.AgentSlots()
	case workspace.FieldLastPreprocess:
		return m.LastPreprocess()
	case workspace.FieldLastEvidenceLoad:
		return m.LastEvidenceLoad()
	case workspace.FieldLastSQLLoaded:
		return m.LastSQLLoaded()
	case workspace.FieldUsers:
		return m.Users()
	case workspace.FieldCreatedAt:
		return m.CreatedAt()
	case workspace.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkspaceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workspace.FieldName:
		return m.OldName(ctx)
	case workspace.FieldDefaultModel:
		return m.OldDefaultModel(ctx)
	case workspace.FieldLanguage:
		return m.OldLanguage(ctx)
	case workspace.FieldAgentSlots:
		return m.OldAgentSlots(ctx)
	case workspace.FieldLastPreprocess:
		return m.OldLastPreprocess(ctx)
	case workspace.FieldLastEvidenceLoad:
		return m.OldLastEvidenceLoad(ctx)
	case workspace.FieldLastSQLLoaded:
		return m.OldLastSQLLoaded(ctx)
	case workspace.FieldUsers:
		return m.OldUsers(ctx)
	case workspace.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workspace.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workspace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workspace.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case workspace.FieldDefaultModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultModel(v)
		return nil
	case workspace.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case workspace.FieldAgentSlots:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentSlots(v)
		return nil
	case workspace.FieldLastPreprocess:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPreprocess(v)
		return nil
	case workspace.FieldLastEvidenceLoad:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEvidenceLoad(v)
		return nil
	case workspace.FieldLastSQLLoaded:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSQLLoaded(v)
		return nil
	case workspace.FieldUsers:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsers(v)
		return nil
	case workspace.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workspace.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workspace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkspaceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkspaceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Workspace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkspaceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workspace.FieldAgentSlots) {
		fields = append(fields, workspace.FieldAgentSlots)
	}
	if m.FieldCleared(workspace.FieldLastPreprocess) {
		fields = append(fields, workspace.FieldLastPreprocess)
	}
	if m.FieldCleared(workspace.FieldLastEvidenceLoad) {
		fields = append(fields, workspace.FieldLastEvidenceLoad)
	}
	if m.FieldCleared(workspace.FieldLastSQLLoaded) {
		fields = append(fields, workspace.FieldLastSQLLoaded)
	}
	if m.FieldCleared(workspace.FieldUsers) {
		fields = append(fields, workspace.FieldUsers)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkspaceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkspaceMutation) ClearField(name string) error {
	switch name {
	case workspace.FieldAgentSlots:
		m.ClearAgentSlots()
		return nil
	case workspace.FieldLastPreprocess:
		m.ClearLastPreprocess()
		return nil
	case workspace.FieldLastEvidenceLoad:
		m.ClearLastEvidenceLoad()
		return nil
	case workspace.FieldLastSQLLoaded:
		m.ClearLastSQLLoaded()
		return nil
	case workspace.FieldUsers:
		m.ClearUsers()
		return nil
	}
	return fmt.Errorf("unknown Workspace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkspaceMutation) ResetField(name string) error {
	switch name {
	case workspace.FieldName:
		m.ResetName()
		return nil
	case workspace.FieldDefaultModel:
		m.ResetDefaultModel()
		return nil
	case workspace.FieldLanguage:
		m.ResetLanguage()
		return nil
	case workspace.FieldAgentSlots:
		m.ResetAgentSlots()
		return nil
	case workspace.FieldLastPreprocess:
		m.ResetLastPreprocess()
		return nil
	case workspace.FieldLastEvidenceLoad:
		m.ResetLastEvidenceLoad()
		return nil
	case workspace.FieldLastSQLLoaded:
		m.ResetLastSQLLoaded()
		return nil
	case workspace.FieldUsers:
		m.ResetUsers()
		return nil
	case workspace.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workspace.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Workspace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkspaceMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.sql_db != nil {
		edges = append(edges, workspace.EdgeSQLDb)
	}
	if m.thoth_logs != nil {
		edges = append(edges, workspace.EdgeThothLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkspaceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workspace.EdgeSQLDb:
		if id := m.sql_db; id != nil {
			return []ent.Value{*id}
		}
	case workspace.EdgeThothLogs:
		ids := make([]ent.Value, 0, len(m.thoth_logs))
		for id := range m.thoth_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkspaceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedthoth_logs != nil {
		edges = append(edges, workspace.EdgeThothLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkspaceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workspace.EdgeThothLogs:
		ids := make([]ent.Value, 0, len(m.removedthoth_logs))
		for id := range m.removedthoth_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkspaceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsql_db {
		edges = append(edges, workspace.EdgeSQLDb)
	}
	if m.clearedthoth_logs {
		edges = append(edges, workspace.EdgeThothLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkspaceMutation) EdgeCleared(name string) bool {
	switch name {
	case workspace.EdgeSQLDb:
		return m.clearedsql_db
	case workspace.EdgeThothLogs:
		return m.clearedthoth_logs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkspaceMutation) ClearEdge(name string) error {
	switch name {
	case workspace.EdgeSQLDb:
		m.ClearSQLDb()
		return nil
	}
	return fmt.Errorf("unknown Workspace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkspaceMutation) ResetEdge(name string) error {
	switch name {
	case workspace.EdgeSQLDb:
		m.ResetSQLDb()
		return nil
	case workspace.EdgeThothLogs:
		m.ResetThothLogs()
		return nil
	}
	return fmt.Errorf("unknown Workspace edge %s", name)
}
