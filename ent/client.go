// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/thoth-ai/thoth/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/thoth-ai/thoth/ent/relationship"
	"github.com/thoth-ai/thoth/ent/sqlcolumn"
	"github.com/thoth-ai/thoth/ent/sqldb"
	"github.com/thoth-ai/thoth/ent/sqltable"
	"github.com/thoth-ai/thoth/ent/thothlog"
	"github.com/thoth-ai/thoth/ent/vectordb"
	"github.com/thoth-ai/thoth/ent/vectordocument"
	"github.com/thoth-ai/thoth/ent/workspace"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Relationship is the client for interacting with the Relationship builders.
	Relationship *RelationshipClient
	// SqlColumn is the client for interacting with the SqlColumn builders.
	SqlColumn *SqlColumnClient
	// SqlDb is the client for interacting with the SqlDb builders.
	SqlDb *SqlDbClient
	// SqlTable is the client for interacting with the SqlTable builders.
	SqlTable *SqlTableClient
	// ThothLog is the client for interacting with the ThothLog builders.
	ThothLog *ThothLogClient
	// VectorDb is the client for interacting with the VectorDb builders.
	VectorDb *VectorDbClient
	// VectorDocument is the client for interacting with the VectorDocument builders.
	VectorDocument *VectorDocumentClient
	// Workspace is the client for interacting with the Workspace builders.
	Workspace *WorkspaceClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Relationship = NewRelationshipClient(c.config)
	c.SqlColumn = NewSqlColumnClient(c.config)
	c.SqlDb = NewSqlDbClient(c.config)
	c.SqlTable = NewSqlTableClient(c.config)
	c.ThothLog = NewThothLogClient(c.config)
	c.VectorDb = NewVectorDbClient(c.config)
	c.VectorDocument = NewVectorDocumentClient(c.config)
	c.Workspace = NewWorkspaceClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		Relationship:   NewRelationshipClient(cfg),
		SqlColumn:      NewSqlColumnClient(cfg),
		SqlDb:          NewSqlDbClient(cfg),
		SqlTable:       NewSqlTableClient(cfg),
		ThothLog:       NewThothLogClient(cfg),
		VectorDb:       NewVectorDbClient(cfg),
		VectorDocument: NewVectorDocumentClient(cfg),
		Workspace:      NewWorkspaceClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		Relationship:   NewRelationshipClient(cfg),
		SqlColumn:      NewSqlColumnClient(cfg),
		SqlDb:          NewSqlDbClient(cfg),
		SqlTable:       NewSqlTableClient(cfg),
		ThothLog:       NewThothLogClient(cfg),
		VectorDb:       NewVectorDbClient(cfg),
		VectorDocument: NewVectorDocumentClient(cfg),
		Workspace:      NewWorkspaceClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Relationship.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Relationship, c.SqlColumn, c.SqlDb, c.SqlTable, c.ThothLog, c.VectorDb,
		c.VectorDocument, c.Workspace,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Relationship, c.SqlColumn, c.SqlDb, c.SqlTable, c.ThothLog, c.VectorDb,
		c.VectorDocument, c.Workspace,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *RelationshipMutation:
		return c.Relationship.mutate(ctx, m)
	case *SqlColumnMutation:
		return c.SqlColumn.mutate(ctx, m)
	case *SqlDbMutation:
		return c.SqlDb.mutate(ctx, m)
	case *SqlTableMutation:
		return c.SqlTable.mutate(ctx, m)
	case *ThothLogMutation:
		return c.ThothLog.mutate(ctx, m)
	case *VectorDbMutation:
		return c.VectorDb.mutate(ctx, m)
	case *VectorDocumentMutation:
		return c.VectorDocument.mutate(ctx, m)
	case *WorkspaceMutation:
		return c.Workspace.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// RelationshipClient is a client for the Relationship schema.
type RelationshipClient struct {
	config
}

// NewRelationshipClient returns a client for the Relationship from the given config.
func NewRelationshipClient(c config) *RelationshipClient {
	return &RelationshipClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `relationship.Hooks(f(g(h())))`.
func (c *RelationshipClient) Use(hooks ...Hook) {
	c.hooks.Relationship = append(c.hooks.Relationship, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `relationship.Intercept(f(g(h())))`.
func (c *RelationshipClient) Intercept(interceptors ...Interceptor) {
	c.inters.Relationship = append(c.inters.Relationship, interceptors...)
}

// Create returns a builder for creating a Relationship entity.
func (c *RelationshipClient) Create() *RelationshipCreate {
	mutation := newRelationshipMutation(c.config, OpCreate)
	return &RelationshipCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Relationship entities.
func (c *RelationshipClient) CreateBulk(builders ...*RelationshipCreate) *RelationshipCreateBulk {
	return &RelationshipCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RelationshipClient) MapCreateBulk(slice any, setFunc func(*RelationshipCreate, int)) *RelationshipCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RelationshipCreateBulk{err: fmt.Errorf("calling to RelationshipClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RelationshipCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RelationshipCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Relationship.
func (c *RelationshipClient) Update() *RelationshipUpdate {
	mutation := newRelationshipMutation(c.config, OpUpdate)
	return &RelationshipUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RelationshipClient) UpdateOne(_m *Relationship) *RelationshipUpdateOne {
	mutation := newRelationshipMutation(c.config, OpUpdateOne, withRelationship(_m))
	return &RelationshipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RelationshipClient) UpdateOneID(id string) *RelationshipUpdateOne {
	mutation := newRelationshipMutation(c.config, OpUpdateOne, withRelationshipID(id))
	return &RelationshipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Relationship.
func (c *RelationshipClient) Delete() *RelationshipDelete {
	mutation := newRelationshipMutation(c.config, OpDelete)
	return &RelationshipDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RelationshipClient) DeleteOne(_m *Relationship) *RelationshipDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RelationshipClient) DeleteOneID(id string) *RelationshipDeleteOne {
	builder := c.Delete().Where(relationship.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RelationshipDeleteOne{builder}
}

// Query returns a query builder for Relationship.
func (c *RelationshipClient) Query() *RelationshipQuery {
	return &RelationshipQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRelationship},
		inters: c.Interceptors(),
	}
}

// Get returns a Relationship entity by its id.
func (c *RelationshipClient) Get(ctx context.Context, id string) (*Relationship, error) {
	return c.Query().Where(relationship.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RelationshipClient) GetX(ctx context.Context, id string) *Relationship {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySQLDb queries the sql_db edge of a Relationship.
func (c *RelationshipClient) QuerySQLDb(_m *Relationship) *SqlDbQuery {
	query := (&SqlDbClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(relationship.Table, relationship.FieldID, id),
			sqlgraph.To(sqldb.Table, sqldb.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, relationship.SQLDbTable, relationship.SQLDbColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RelationshipClient) Hooks() []Hook {
	return c.hooks.Relationship
}

// Interceptors returns the client interceptors.
func (c *RelationshipClient) Interceptors() []Interceptor {
	return c.inters.Relationship
}

func (c *RelationshipClient) mutate(ctx context.Context, m *RelationshipMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RelationshipCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RelationshipUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RelationshipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RelationshipDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Relationship mutation op: %q", m.Op())
	}
}

// SqlColumnClient is a client for the SqlColumn schema.
type SqlColumnClient struct {
	config
}

// NewSqlColumnClient returns a client for the SqlColumn from the given config.
func NewSqlColumnClient(c config) *SqlColumnClient {
	return &SqlColumnClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sqlcolumn.Hooks(f(g(h())))`.
func (c *SqlColumnClient) Use(hooks ...Hook) {
	c.hooks.SqlColumn = append(c.hooks.SqlColumn, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sqlcolumn.Intercept(f(g(h())))`.
func (c *SqlColumnClient) Intercept(interceptors ...Interceptor) {
	c.inters.SqlColumn = append(c.inters.SqlColumn, interceptors...)
}

// Create returns a builder for creating a SqlColumn entity.
func (c *SqlColumnClient) Create() *SqlColumnCreate {
	mutation := newSqlColumnMutation(c.config, OpCreate)
	return &SqlColumnCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SqlColumn entities.
func (c *SqlColumnClient) CreateBulk(builders ...*SqlColumnCreate) *SqlColumnCreateBulk {
	return &SqlColumnCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SqlColumnClient) MapCreateBulk(slice any, setFunc func(*SqlColumnCreate, int)) *SqlColumnCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SqlColumnCreateBulk{err: fmt.Errorf("calling to SqlColumnClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SqlColumnCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SqlColumnCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SqlColumn.
func (c *SqlColumnClient) Update() *SqlColumnUpdate {
	mutation := newSqlColumnMutation(c.config, OpUpdate)
	return &SqlColumnUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SqlColumnClient) UpdateOne(_m *SqlColumn) *SqlColumnUpdateOne {
	mutation := newSqlColumnMutation(c.config, OpUpdateOne, withSqlColumn(_m))
	return &SqlColumnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SqlColumnClient) UpdateOneID(id string) *SqlColumnUpdateOne {
	mutation := newSqlColumnMutation(c.config, OpUpdateOne, withSqlColumnID(id))
	return &SqlColumnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SqlColumn.
func (c *SqlColumnClient) Delete() *SqlColumnDelete {
	mutation := newSqlColumnMutation(c.config, OpDelete)
	return &SqlColumnDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SqlColumnClient) DeleteOne(_m *SqlColumn) *SqlColumnDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SqlColumnClient) DeleteOneID(id string) *SqlColumnDeleteOne {
	builder := c.Delete().Where(sqlcolumn.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SqlColumnDeleteOne{builder}
}

// Query returns a query builder for SqlColumn.
func (c *SqlColumnClient) Query() *SqlColumnQuery {
	return &SqlColumnQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSqlColumn},
		inters: c.Interceptors(),
	}
}

// Get returns a SqlColumn entity by its id.
func (c *SqlColumnClient) Get(ctx context.Context, id string) (*SqlColumn, error) {
	return c.Query().Where(sqlcolumn.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SqlColumnClient) GetX(ctx context.Context, id string) *SqlColumn {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySQLTable queries the sql_table edge of a SqlColumn.
func (c *SqlColumnClient) QuerySQLTable(_m *SqlColumn) *SqlTableQuery {
	query := (&SqlTableClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sqlcolumn.Table, sqlcolumn.FieldID, id),
			sqlgraph.To(sqltable.Table, sqltable.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sqlcolumn.SQLTableTable, sqlcolumn.SQLTableColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SqlColumnClient) Hooks() []Hook {
	return c.hooks.SqlColumn
}

// Interceptors returns the client interceptors.
func (c *SqlColumnClient) Interceptors() []Interceptor {
	return c.inters.SqlColumn
}

func (c *SqlColumnClient) mutate(ctx context.Context, m *SqlColumnMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SqlColumnCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SqlColumnUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SqlColumnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SqlColumnDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SqlColumn mutation op: %q", m.Op())
	}
}

// SqlDbClient is a client for the SqlDb schema.
type SqlDbClient struct {
	config
}

// NewSqlDbClient returns a client for the SqlDb from the given config.
func NewSqlDbClient(c config) *SqlDbClient {
	return &SqlDbClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sqldb.Hooks(f(g(h())))`.
func (c *SqlDbClient) Use(hooks ...Hook) {
	c.hooks.SqlDb = append(c.hooks.SqlDb, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sqldb.Intercept(f(g(h())))`.
func (c *SqlDbClient) Intercept(interceptors ...Interceptor) {
	c.inters.SqlDb = append(c.inters.SqlDb, interceptors...)
}

// Create returns a builder for creating a SqlDb entity.
func (c *SqlDbClient) Create() *SqlDbCreate {
	mutation := newSqlDbMutation(c.config, OpCreate)
	return &SqlDbCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SqlDb entities.
func (c *SqlDbClient) CreateBulk(builders ...*SqlDbCreate) *SqlDbCreateBulk {
	return &SqlDbCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SqlDbClient) MapCreateBulk(slice any, setFunc func(*SqlDbCreate, int)) *SqlDbCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SqlDbCreateBulk{err: fmt.Errorf("calling to SqlDbClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SqlDbCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SqlDbCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SqlDb.
func (c *SqlDbClient) Update() *SqlDbUpdate {
	mutation := newSqlDbMutation(c.config, OpUpdate)
	return &SqlDbUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SqlDbClient) UpdateOne(_m *SqlDb) *SqlDbUpdateOne {
	mutation := newSqlDbMutation(c.config, OpUpdateOne, withSqlDb(_m))
	return &SqlDbUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SqlDbClient) UpdateOneID(id string) *SqlDbUpdateOne {
	mutation := newSqlDbMutation(c.config, OpUpdateOne, withSqlDbID(id))
	return &SqlDbUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SqlDb.
func (c *SqlDbClient) Delete() *SqlDbDelete {
	mutation := newSqlDbMutation(c.config, OpDelete)
	return &SqlDbDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SqlDbClient) DeleteOne(_m *SqlDb) *SqlDbDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SqlDbClient) DeleteOneID(id string) *SqlDbDeleteOne {
	builder := c.Delete().Where(sqldb.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SqlDbDeleteOne{builder}
}

// Query returns a query builder for SqlDb.
func (c *SqlDbClient) Query() *SqlDbQuery {
	return &SqlDbQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSqlDb},
		inters: c.Interceptors(),
	}
}

// Get returns a SqlDb entity by its id.
func (c *SqlDbClient) Get(ctx context.Context, id string) (*SqlDb, error) {
	return c.Query().Where(sqldb.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SqlDbClient) GetX(ctx context.Context, id string) *SqlDb {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a SqlDb.
func (c *SqlDbClient) QueryWorkspace(_m *SqlDb) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sqldb.Table, sqldb.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, sqldb.WorkspaceTable, sqldb.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVectorDb queries the vector_db edge of a SqlDb.
func (c *SqlDbClient) QueryVectorDb(_m *SqlDb) *VectorDbQuery {
	query := (&VectorDbClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sqldb.Table, sqldb.FieldID, id),
			sqlgraph.To(vectordb.Table, vectordb.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, sqldb.VectorDbTable, sqldb.VectorDbColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTables queries the tables edge of a SqlDb.
func (c *SqlDbClient) QueryTables(_m *SqlDb) *SqlTableQuery {
	query := (&SqlTableClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sqldb.Table, sqldb.FieldID, id),
			sqlgraph.To(sqltable.Table, sqltable.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sqldb.TablesTable, sqldb.TablesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRelationships queries the relationships edge of a SqlDb.
func (c *SqlDbClient) QueryRelationships(_m *SqlDb) *RelationshipQuery {
	query := (&RelationshipClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sqldb.Table, sqldb.FieldID, id),
			sqlgraph.To(relationship.Table, relationship.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sqldb.RelationshipsTable, sqldb.RelationshipsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SqlDbClient) Hooks() []Hook {
	return c.hooks.SqlDb
}

// Interceptors returns the client interceptors.
func (c *SqlDbClient) Interceptors() []Interceptor {
	return c.inters.SqlDb
}

func (c *SqlDbClient) mutate(ctx context.Context, m *SqlDbMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SqlDbCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SqlDbUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SqlDbUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SqlDbDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SqlDb mutation op: %q", m.Op())
	}
}

// SqlTableClient is a client for the SqlTable schema.
type SqlTableClient struct {
	config
}

// NewSqlTableClient returns a client for the SqlTable from the given config.
func NewSqlTableClient(c config) *SqlTableClient {
	return &SqlTableClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sqltable.Hooks(f(g(h())))`.
func (c *SqlTableClient) Use(hooks ...Hook) {
	c.hooks.SqlTable = append(c.hooks.SqlTable, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sqltable.Intercept(f(g(h())))`.
func (c *SqlTableClient) Intercept(interceptors ...Interceptor) {
	c.inters.SqlTable = append(c.inters.SqlTable, interceptors...)
}

// Create returns a builder for creating a SqlTable entity.
func (c *SqlTableClient) Create() *SqlTableCreate {
	mutation := newSqlTableMutation(c.config, OpCreate)
	return &SqlTableCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SqlTable entities.
func (c *SqlTableClient) CreateBulk(builders ...*SqlTableCreate) *SqlTableCreateBulk {
	return &SqlTableCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SqlTableClient) MapCreateBulk(slice any, setFunc func(*SqlTableCreate, int)) *SqlTableCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SqlTableCreateBulk{err: fmt.Errorf("calling to SqlTableClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SqlTableCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SqlTableCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SqlTable.
func (c *SqlTableClient) Update() *SqlTableUpdate {
	mutation := newSqlTableMutation(c.config, OpUpdate)
	return &SqlTableUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SqlTableClient) UpdateOne(_m *SqlTable) *SqlTableUpdateOne {
	mutation := newSqlTableMutation(c.config, OpUpdateOne, withSqlTable(_m))
	return &SqlTableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SqlTableClient) UpdateOneID(id string) *SqlTableUpdateOne {
	mutation := newSqlTableMutation(c.config, OpUpdateOne, withSqlTableID(id))
	return &SqlTableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SqlTable.
func (c *SqlTableClient) Delete() *SqlTableDelete {
	mutation := newSqlTableMutation(c.config, OpDelete)
	return &SqlTableDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SqlTableClient) DeleteOne(_m *SqlTable) *SqlTableDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SqlTableClient) DeleteOneID(id string) *SqlTableDeleteOne {
	builder := c.Delete().Where(sqltable.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SqlTableDeleteOne{builder}
}

// Query returns a query builder for SqlTable.
func (c *SqlTableClient) Query() *SqlTableQuery {
	return &SqlTableQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSqlTable},
		inters: c.Interceptors(),
	}
}

// Get returns a SqlTable entity by its id.
func (c *SqlTableClient) Get(ctx context.Context, id string) (*SqlTable, error) {
	return c.Query().Where(sqltable.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SqlTableClient) GetX(ctx context.Context, id string) *SqlTable {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySQLDb queries the sql_db edge of a SqlTable.
func (c *SqlTableClient) QuerySQLDb(_m *SqlTable) *SqlDbQuery {
	query := (&SqlDbClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sqltable.Table, sqltable.FieldID, id),
			sqlgraph.To(sqldb.Table, sqldb.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sqltable.SQLDbTable, sqltable.SQLDbColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryColumns queries the columns edge of a SqlTable.
func (c *SqlTableClient) QueryColumns(_m *SqlTable) *SqlColumnQuery {
	query := (&SqlColumnClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sqltable.Table, sqltable.FieldID, id),
			sqlgraph.To(sqlcolumn.Table, sqlcolumn.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sqltable.ColumnsTable, sqltable.ColumnsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SqlTableClient) Hooks() []Hook {
	return c.hooks.SqlTable
}

// Interceptors returns the client interceptors.
func (c *SqlTableClient) Interceptors() []Interceptor {
	return c.inters.SqlTable
}

func (c *SqlTableClient) mutate(ctx context.Context, m *SqlTableMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SqlTableCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SqlTableUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SqlTableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SqlTableDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SqlTable mutation op: %q", m.Op())
	}
}

// ThothLogClient is a client for the ThothLog schema.
type ThothLogClient struct {
	config
}

// NewThothLogClient returns a client for the ThothLog from the given config.
func NewThothLogClient(c config) *ThothLogClient {
	return &ThothLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `thothlog.Hooks(f(g(h())))`.
func (c *ThothLogClient) Use(hooks ...Hook) {
	c.hooks.ThothLog = append(c.hooks.ThothLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `thothlog.Intercept(f(g(h())))`.
func (c *ThothLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ThothLog = append(c.inters.ThothLog, interceptors...)
}

// Create returns a builder for creating a ThothLog entity.
func (c *ThothLogClient) Create() *ThothLogCreate {
	mutation := newThothLogMutation(c.config, OpCreate)
	return &ThothLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ThothLog entities.
func (c *ThothLogClient) CreateBulk(builders ...*ThothLogCreate) *ThothLogCreateBulk {
	return &ThothLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ThothLogClient) MapCreateBulk(slice any, setFunc func(*ThothLogCreate, int)) *ThothLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ThothLogCreateBulk{err: fmt.Errorf("calling to ThothLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ThothLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ThothLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ThothLog.
func (c *ThothLogClient) Update() *ThothLogUpdate {
	mutation := newThothLogMutation(c.config, OpUpdate)
	return &ThothLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ThothLogClient) UpdateOne(_m *ThothLog) *ThothLogUpdateOne {
	mutation := newThothLogMutation(c.config, OpUpdateOne, withThothLog(_m))
	return &ThothLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ThothLogClient) UpdateOneID(id string) *ThothLogUpdateOne {
	mutation := newThothLogMutation(c.config, OpUpdateOne, withThothLogID(id))
	return &ThothLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ThothLog.
func (c *ThothLogClient) Delete() *ThothLogDelete {
	mutation := newThothLogMutation(c.config, OpDelete)
	return &ThothLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ThothLogClient) DeleteOne(_m *ThothLog) *ThothLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ThothLogClient) DeleteOneID(id string) *ThothLogDeleteOne {
	builder := c.Delete().Where(thothlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ThothLogDeleteOne{builder}
}

// Query returns a query builder for ThothLog.
func (c *ThothLogClient) Query() *ThothLogQuery {
	return &ThothLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeThothLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ThothLog entity by its id.
func (c *ThothLogClient) Get(ctx context.Context, id string) (*ThothLog, error) {
	return c.Query().Where(thothlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ThothLogClient) GetX(ctx context.Context, id string) *ThothLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a ThothLog.
func (c *ThothLogClient) QueryWorkspace(_m *ThothLog) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(thothlog.Table, thothlog.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, thothlog.WorkspaceTable, thothlog.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ThothLogClient) Hooks() []Hook {
	return c.hooks.ThothLog
}

// Interceptors returns the client interceptors.
func (c *ThothLogClient) Interceptors() []Interceptor {
	return c.inters.ThothLog
}

func (c *ThothLogClient) mutate(ctx context.Context, m *ThothLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ThothLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ThothLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ThothLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ThothLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ThothLog mutation op: %q", m.Op())
	}
}

// VectorDbClient is a client for the VectorDb schema.
type VectorDbClient struct {
	config
}

// NewVectorDbClient returns a client for the VectorDb from the given config.
func NewVectorDbClient(c config) *VectorDbClient {
	return &VectorDbClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vectordb.Hooks(f(g(h())))`.
func (c *VectorDbClient) Use(hooks ...Hook) {
	c.hooks.VectorDb = append(c.hooks.VectorDb, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vectordb.Intercept(f(g(h())))`.
func (c *VectorDbClient) Intercept(interceptors ...Interceptor) {
	c.inters.VectorDb = append(c.inters.VectorDb, interceptors...)
}

// Create returns a builder for creating a VectorDb entity.
func (c *VectorDbClient) Create() *VectorDbCreate {
	mutation := newVectorDbMutation(c.config, OpCreate)
	return &VectorDbCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VectorDb entities.
func (c *VectorDbClient) CreateBulk(builders ...*VectorDbCreate) *VectorDbCreateBulk {
	return &VectorDbCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VectorDbClient) MapCreateBulk(slice any, setFunc func(*VectorDbCreate, int)) *VectorDbCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VectorDbCreateBulk{err: fmt.Errorf("calling to VectorDbClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VectorDbCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VectorDbCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VectorDb.
func (c *VectorDbClient) Update() *VectorDbUpdate {
	mutation := newVectorDbMutation(c.config, OpUpdate)
	return &VectorDbUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VectorDbClient) UpdateOne(_m *VectorDb) *VectorDbUpdateOne {
	mutation := newVectorDbMutation(c.config, OpUpdateOne, withVectorDb(_m))
	return &VectorDbUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VectorDbClient) UpdateOneID(id string) *VectorDbUpdateOne {
	mutation := newVectorDbMutation(c.config, OpUpdateOne, withVectorDbID(id))
	return &VectorDbUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VectorDb.
func (c *VectorDbClient) Delete() *VectorDbDelete {
	mutation := newVectorDbMutation(c.config, OpDelete)
	return &VectorDbDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VectorDbClient) DeleteOne(_m *VectorDb) *VectorDbDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VectorDbClient) DeleteOneID(id string) *VectorDbDeleteOne {
	builder := c.Delete().Where(vectordb.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VectorDbDeleteOne{builder}
}

// Query returns a query builder for VectorDb.
func (c *VectorDbClient) Query() *VectorDbQuery {
	return &VectorDbQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVectorDb},
		inters: c.Interceptors(),
	}
}

// Get returns a VectorDb entity by its id.
func (c *VectorDbClient) Get(ctx context.Context, id string) (*VectorDb, error) {
	return c.Query().Where(vectordb.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VectorDbClient) GetX(ctx context.Context, id string) *VectorDb {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VectorDbClient) Hooks() []Hook {
	return c.hooks.VectorDb
}

// Interceptors returns the client interceptors.
func (c *VectorDbClient) Interceptors() []Interceptor {
	return c.inters.VectorDb
}

func (c *VectorDbClient) mutate(ctx context.Context, m *VectorDbMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VectorDbCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VectorDbUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VectorDbUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VectorDbDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VectorDb mutation op: %q", m.Op())
	}
}

// VectorDocumentClient is a client for the VectorDocument schema.
type VectorDocumentClient struct {
	config
}

// NewVectorDocumentClient returns a client for the VectorDocument from the given config.
func NewVectorDocumentClient(c config) *VectorDocumentClient {
	return &VectorDocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vectordocument.Hooks(f(g(h())))`.
func (c *VectorDocumentClient) Use(hooks ...Hook) {
	c.hooks.VectorDocument = append(c.hooks.VectorDocument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vectordocument.Intercept(f(g(h())))`.
func (c *VectorDocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.VectorDocument = append(c.inters.VectorDocument, interceptors...)
}

// Create returns a builder for creating a VectorDocument entity.
func (c *VectorDocumentClient) Create() *VectorDocumentCreate {
	mutation := newVectorDocumentMutation(c.config, OpCreate)
	return &VectorDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VectorDocument entities.
func (c *VectorDocumentClient) CreateBulk(builders ...*VectorDocumentCreate) *VectorDocumentCreateBulk {
	return &VectorDocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VectorDocumentClient) MapCreateBulk(slice any, setFunc func(*VectorDocumentCreate, int)) *VectorDocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VectorDocumentCreateBulk{err: fmt.Errorf("calling to VectorDocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VectorDocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VectorDocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VectorDocument.
func (c *VectorDocumentClient) Update() *VectorDocumentUpdate {
	mutation := newVectorDocumentMutation(c.config, OpUpdate)
	return &VectorDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VectorDocumentClient) UpdateOne(_m *VectorDocument) *VectorDocumentUpdateOne {
	mutation := newVectorDocumentMutation(c.config, OpUpdateOne, withVectorDocument(_m))
	return &VectorDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VectorDocumentClient) UpdateOneID(id string) *VectorDocumentUpdateOne {
	mutation := newVectorDocumentMutation(c.config, OpUpdateOne, withVectorDocumentID(id))
	return &VectorDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VectorDocument.
func (c *VectorDocumentClient) Delete() *VectorDocumentDelete {
	mutation := newVectorDocumentMutation(c.config, OpDelete)
	return &VectorDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VectorDocumentClient) DeleteOne(_m *VectorDocument) *VectorDocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VectorDocumentClient) DeleteOneID(id string) *VectorDocumentDeleteOne {
	builder := c.Delete().Where(vectordocument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VectorDocumentDeleteOne{builder}
}

// Query returns a query builder for VectorDocument.
func (c *VectorDocumentClient) Query() *VectorDocumentQuery {
	return &VectorDocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVectorDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a VectorDocument entity by its id.
func (c *VectorDocumentClient) Get(ctx context.Context, id string) (*VectorDocument, error) {
	return c.Query().Where(vectordocument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VectorDocumentClient) GetX(ctx context.Context, id string) *VectorDocument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VectorDocumentClient) Hooks() []Hook {
	return c.hooks.VectorDocument
}

// Interceptors returns the client interceptors.
func (c *VectorDocumentClient) Interceptors() []Interceptor {
	return c.inters.VectorDocument
}

func (c *VectorDocumentClient) mutate(ctx context.Context, m *VectorDocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VectorDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VectorDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VectorDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VectorDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VectorDocument mutation op: %q", m.Op())
	}
}

// WorkspaceClient is a client for the Workspace schema.
type WorkspaceClient struct {
	config
}

// NewWorkspaceClient returns a client for the Workspace from the given config.
func NewWorkspaceClient(c config) *WorkspaceClient {
	return &WorkspaceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workspace.Hooks(f(g(h())))`.
func (c *WorkspaceClient) Use(hooks ...Hook) {
	c.hooks.Workspace = append(c.hooks.Workspace, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workspace.Intercept(f(g(h())))`.
func (c *WorkspaceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Workspace = append(c.inters.Workspace, interceptors...)
}

// Create returns a builder for creating a Workspace entity.
func (c *WorkspaceClient) Create() *WorkspaceCreate {
	mutation := newWorkspaceMutation(c.config, OpCreate)
	return &WorkspaceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Workspace entities.
func (c *WorkspaceClient) CreateBulk(builders ...*WorkspaceCreate) *WorkspaceCreateBulk {
	return &WorkspaceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkspaceClient) MapCreateBulk(slice any, setFunc func(*WorkspaceCreate, int)) *WorkspaceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkspaceCreateBulk{err: fmt.Errorf("calling to WorkspaceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkspaceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkspaceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Workspace.
func (c *WorkspaceClient) Update() *WorkspaceUpdate {
	mutation := newWorkspaceMutation(c.config, OpUpdate)
	return &WorkspaceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkspaceClient) UpdateOne(_m *Workspace) *WorkspaceUpdateOne {
	mutation := newWorkspaceMutation(c.config, OpUpdateOne, withWorkspace(_m))
	return &WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkspaceClient) UpdateOneID(id string) *WorkspaceUpdateOne {
	mutation := newWorkspaceMutation(c.config, OpUpdateOne, withWorkspaceID(id))
	return &WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Workspace.
func (c *WorkspaceClient) Delete() *WorkspaceDelete {
	mutation := newWorkspaceMutation(c.config, OpDelete)
	return &WorkspaceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkspaceClient) DeleteOne(_m *Workspace) *WorkspaceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkspaceClient) DeleteOneID(id string) *WorkspaceDeleteOne {
	builder := c.Delete().Where(workspace.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkspaceDeleteOne{builder}
}

// Query returns a query builder for Workspace.
func (c *WorkspaceClient) Query() *WorkspaceQuery {
	return &WorkspaceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkspace},
		inters: c.Interceptors(),
	}
}

// Get returns a Workspace entity by its id.
func (c *WorkspaceClient) Get(ctx context.Context, id string) (*Workspace, error) {
	return c.Query().Where(workspace.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkspaceClient) GetX(ctx context.Context, id string) *Workspace {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySQLDb queries the sql_db edge of a Workspace.
func (c *WorkspaceClient) QuerySQLDb(_m *Workspace) *SqlDbQuery {
	query := (&SqlDbClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(sqldb.Table, sqldb.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, workspace.SQLDbTable, workspace.SQLDbColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryThothLogs queries the thoth_logs edge of a Workspace.
func (c *WorkspaceClient) QueryThothLogs(_m *Workspace) *ThothLogQuery {
	query := (&ThothLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(thothlog.Table, thothlog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.ThothLogsTable, workspace.ThothLogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkspaceClient) Hooks() []Hook {
	return c.hooks.Workspace
}

// Interceptors returns the client interceptors.
func (c *WorkspaceClient) Interceptors() []Interceptor {
	return c.inters.Workspace
}

func (c *WorkspaceClient) mutate(ctx context.Context, m *WorkspaceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkspaceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkspaceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkspaceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Workspace mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Relationship, SqlColumn, SqlDb, SqlTable, ThothLog, VectorDb, VectorDocument,
		Workspace []ent.Hook
	}
	inters struct {
		Relationship, SqlColumn, SqlDb, SqlTable, ThothLog, VectorDb, VectorDocument,
		Workspace []ent.Interceptor
	}
)
