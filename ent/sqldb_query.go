// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thoth-ai/thoth/ent/predicate"
	"github.com/thoth-ai/thoth/ent/relationship"
	"github.com/thoth-ai/thoth/ent/sqldb"
	"github.com/thoth-ai/thoth/ent/sqltable"
	"github.com/thoth-ai/thoth/ent/vectordb"
	"github.com/thoth-ai/thoth/ent/workspace"
)

// SqlDbQuery is the builder for querying SqlDb entities.
type SqlDbQuery struct {
	config
	ctx               *QueryContext
	order             []sqldb.OrderOption
	inters            []Interceptor
	predicates        []predicate.SqlDb
	withWorkspace     *WorkspaceQuery
	withVectorDb      *VectorDbQuery
	withTables        *SqlTableQuery
	withRelationships *RelationshipQuery
	withFKs           bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SqlDbQuery builder.
func (_q *SqlDbQuery) Where(ps ...predicate.SqlDb) *SqlDbQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SqlDbQuery) Limit(limit int) *SqlDbQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SqlDbQuery) Offset(offset int) *SqlDbQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SqlDbQuery) Unique(unique bool) *SqlDbQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SqlDbQuery) Order(o ...sqldb.OrderOption) *SqlDbQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryWorkspace chains the current query on the "workspace" edge.
func (_q *SqlDbQuery) QueryWorkspace() *WorkspaceQuery {
	query := (&WorkspaceClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(sqldb.Table, sqldb.FieldID, selector),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, sqldb.WorkspaceTable, sqldb.WorkspaceColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryVectorDb chains the current query on the "vector_db" edge.
func (_q *SqlDbQuery) QueryVectorDb() *VectorDbQuery {
	query := (&VectorDbClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(sqldb.Table, sqldb.FieldID, selector),
			sqlgraph.To(vectordb.Table, vectordb.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, sqldb.VectorDbTable, sqldb.VectorDbColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTables chains the current query on the "tables" edge.
func (_q *SqlDbQuery) QueryTables() *SqlTableQuery {
	query := (&SqlTableClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(sqldb.Table, sqldb.FieldID, selector),
			sqlgraph.To(sqltable.Table, sqltable.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sqldb.TablesTable, sqldb.TablesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRelationships chains the current query on the "relationships" edge.
func (_q *SqlDbQuery) QueryRelationships() *RelationshipQuery {
	query := (&RelationshipClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(sqldb.Table, sqldb.FieldID, selector),
			sqlgraph.To(relationship.Table, relationship.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sqldb.RelationshipsTable, sqldb.RelationshipsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first SqlDb entity from the query.
// Returns a *NotFoundError when no SqlDb was found.
func (_q *SqlDbQuery) First(ctx context.Context) (*SqlDb, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{sqldb.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SqlDbQuery) FirstX(ctx context.Context) *SqlDb {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SqlDb ID from the query.
// Returns a *NotFoundError when no SqlDb ID was found.
func (_q *SqlDbQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{sqldb.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SqlDbQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SqlDb entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SqlDb entity is found.
// Returns a *NotFoundError when no SqlDb entities are found.
func (_q *SqlDbQuery) Only(ctx context.Context) (*SqlDb, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{sqldb.Label}
	default:
		return nil, &NotSingularError{sqldb.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SqlDbQuery) OnlyX(ctx context.Context) *SqlDb {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SqlDb ID in the query.
// Returns a *NotSingularError when more than one SqlDb ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SqlDbQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{sqldb.Label}
	default:
		err = &NotSingularError{sqldb.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SqlDbQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SqlDbs.
func (_q *SqlDbQuery) All(ctx context.Context) ([]*SqlDb, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SqlDb, *SqlDbQuery]()
	return withInterceptors[[]*SqlDb](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SqlDbQuery) AllX(ctx context.Context) []*SqlDb {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SqlDb IDs.
func (_q *SqlDbQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(sqldb.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SqlDbQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SqlDbQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SqlDbQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SqlDbQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SqlDbQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *SqlDbQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SqlDbQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SqlDbQuery) Clone() *SqlDbQuery {
	if _q == nil {
		return nil
	}
	return &SqlDbQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]sqldb.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.SqlDb{}, _q.predicates...),
		withWorkspace:     _q.withWorkspace.Clone(),
		withVectorDb:      _q.withVectorDb.Clone(),
		withTables:        _q.withTables.Clone(),
		withRelationships: _q.withRelationships.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithWorkspace tells the query-builder to eager-load the nodes that are connected to
// the "workspace" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SqlDbQuery) WithWorkspace(opts ...func(*WorkspaceQuery)) *SqlDbQuery {
	query := (&WorkspaceClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withWorkspace = query
	return _q
}

// WithVectorDb tells the query-builder to eager-load the nodes that are connected to
// the "vector_db" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SqlDbQuery) WithVectorDb(opts ...func(*VectorDbQuery)) *SqlDbQuery {
	query := (&VectorDbClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withVectorDb = query
	return _q
}

// WithTables tells the query-builder to eager-load the nodes that are connected to
// the "tables" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SqlDbQuery) WithTables(opts ...func(*SqlTableQuery)) *SqlDbQuery {
	query := (&SqlTableClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTables = query
	return _q
}

// WithRelationships tells the query-builder to eager-load the nodes that are connected to
// the "relationships" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SqlDbQuery) WithRelationships(opts ...func(*RelationshipQuery)) *SqlDbQuery {
	query := (&RelationshipClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRelationships = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.SqlDb.Query().
//		GroupBy(sqldb.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SqlDbQuery) GroupBy(field string, fields ...string) *SqlDbGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SqlDbGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = sqldb.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.SqlDb.Query().
//		Select(sqldb.FieldName).
//		Scan(ctx, &v)
func (_q *SqlDbQuery) Select(fields ...string) *SqlDbSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SqlDbSelect{SqlDbQuery: _q}
	sbuild.label = sqldb.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SqlDbSelect configured with the given aggregations.
func (_q *SqlDbQuery) Aggregate(fns ...AggregateFunc) *SqlDbSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SqlDbQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !sqldb.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *SqlDbQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SqlDb, error) {
	var (
		nodes       = []*SqlDb{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withWorkspace != nil,
			_q.withVectorDb != nil,
			_q.withTables != nil,
			_q.withRelationships != nil,
		}
	)
	if _q.withWorkspace != nil || _q.withVectorDb != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, sqldb.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SqlDb).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SqlDb{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withWorkspace; query != nil {
		if err := _q.loadWorkspace(ctx, query, nodes, nil,
			func(n *SqlDb, e *Workspace) { n.Edges.Workspace = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withVectorDb; query != nil {
		if err := _q.loadVectorDb(ctx, query, nodes, nil,
			func(n *SqlDb, e *VectorDb) { n.Edges.VectorDb = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTables; query != nil {
		if err := _q.loadTables(ctx, query, nodes,
			func(n *SqlDb) { n.Edges.Tables = []*SqlTable{} },
			func(n *SqlDb, e *SqlTable) { n.Edges.Tables = append(n.Edges.Tables, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRelationships; query != nil {
		if err := _q.loadRelationships(ctx, query, nodes,
			func(n *SqlDb) { n.Edges.Relationships = []*Relationship{} },
			func(n *SqlDb, e *Relationship) { n.Edges.Relationships = append(n.Edges.Relationships, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SqlDbQuery) loadWorkspace(ctx context.Context, query *WorkspaceQuery, nodes []*SqlDb, init func(*SqlDb), assign func(*SqlDb, *Workspace)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*SqlDb)
	for i := range nodes {
		if nodes[i].workspace_sql_db == nil {
			continue
		}
		fk := *nodes[i].workspace_sql_db
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(workspace.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "workspace_sql_db" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *SqlDbQuery) loadVectorDb(ctx context.Context, query *VectorDbQuery, nodes []*SqlDb, init func(*SqlDb), assign func(*SqlDb, *VectorDb)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*SqlDb)
	for i := range nodes {
		if nodes[i].sql_db_vector_db == nil {
			continue
		}
		fk := *nodes[i].sql_db_vector_db
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(vectordb.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "sql_db_vector_db" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *SqlDbQuery) loadTables(ctx context.Context, query *SqlTableQuery, nodes []*SqlDb, init func(*SqlDb), assign func(*SqlDb, *SqlTable)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*SqlDb)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.SqlTable(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(sqldb.TablesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.sql_db_tables
		if fk == nil {
			return fmt.Errorf(`foreign-key "sql_db_tables" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "sql_db_tables" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SqlDbQuery) loadRelationships(ctx context.Context, query *RelationshipQuery, nodes []*SqlDb, init func(*SqlDb), assign func(*SqlDb, *Relationship)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*SqlDb)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.Relationship(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(sqldb.RelationshipsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.sql_db_relationships
		if fk == nil {
			return fmt.Errorf(`foreign-key "sql_db_relationships" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "sql_db_relationships" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *SqlDbQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SqlDbQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(sqldb.Table, sqldb.Columns, sqlgraph.NewFieldSpec(sqldb.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sqldb.FieldID)
		for i := range fields {
			if fields[i] != sqldb.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *SqlDbQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(sqldb.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = sqldb.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// SqlDbGroupBy is the group-by builder for SqlDb entities.
type SqlDbGroupBy struct {
	selector
	build *SqlDbQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SqlDbGroupBy) Aggregate(fns ...AggregateFunc) *SqlDbGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SqlDbGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SqlDbQuery, *SqlDbGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SqlDbGroupBy) sqlScan(ctx context.Context, root *SqlDbQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// SqlDbSelect is the builder for selecting fields of SqlDb entities.
type SqlDbSelect struct {
	*SqlDbQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SqlDbSelect) Aggregate(fns ...AggregateFunc) *SqlDbSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SqlDbSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SqlDbQuery, *SqlDbSelect](ctx, _s.SqlDbQuery, _s, _s.inters, v)
}

func (_s *SqlDbSelect) sqlScan(ctx context.Context, root *SqlDbQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
