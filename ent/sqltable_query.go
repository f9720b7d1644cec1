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
	"github.com/thoth-ai/thoth/ent/sqlcolumn"
	"github.com/thoth-ai/thoth/ent/sqldb"
	"github.com/thoth-ai/thoth/ent/sqltable"
)

// SqlTableQuery is the builder for querying SqlTable entities.
type SqlTableQuery struct {
	config
	ctx         *QueryContext
	order       []sqltable.OrderOption
	inters      []Interceptor
	predicates  []predicate.SqlTable
	withSQLDb   *SqlDbQuery
	withColumns *SqlColumnQuery
	withFKs     bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SqlTableQuery builder.
func (_q *SqlTableQuery) Where(ps ...predicate.SqlTable) *SqlTableQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SqlTableQuery) Limit(limit int) *SqlTableQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SqlTableQuery) Offset(offset int) *SqlTableQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SqlTableQuery) Unique(unique bool) *SqlTableQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SqlTableQuery) Order(o ...sqltable.OrderOption) *SqlTableQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySQLDb chains the current query on the "sql_db" edge.
func (_q *SqlTableQuery) QuerySQLDb() *SqlDbQuery {
	query := (&SqlDbClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(sqltable.Table, sqltable.FieldID, selector),
			sqlgraph.To(sqldb.Table, sqldb.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sqltable.SQLDbTable, sqltable.SQLDbColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryColumns chains the current query on the "columns" edge.
func (_q *SqlTableQuery) QueryColumns() *SqlColumnQuery {
	query := (&SqlColumnClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(sqltable.Table, sqltable.FieldID, selector),
			sqlgraph.To(sqlcolumn.Table, sqlcolumn.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sqltable.ColumnsTable, sqltable.ColumnsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first SqlTable entity from the query.
// Returns a *NotFoundError when no SqlTable was found.
func (_q *SqlTableQuery) First(ctx context.Context) (*SqlTable, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{sqltable.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SqlTableQuery) FirstX(ctx context.Context) *SqlTable {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SqlTable ID from the query.
// Returns a *NotFoundError when no SqlTable ID was found.
func (_q *SqlTableQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{sqltable.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SqlTableQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SqlTable entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SqlTable entity is found.
// Returns a *NotFoundError when no SqlTable entities are found.
func (_q *SqlTableQuery) Only(ctx context.Context) (*SqlTable, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{sqltable.Label}
	default:
		return nil, &NotSingularError{sqltable.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SqlTableQuery) OnlyX(ctx context.Context) *SqlTable {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SqlTable ID in the query.
// Returns a *NotSingularError when more than one SqlTable ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SqlTableQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{sqltable.Label}
	default:
		err = &NotSingularError{sqltable.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SqlTableQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SqlTables.
func (_q *SqlTableQuery) All(ctx context.Context) ([]*SqlTable, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SqlTable, *SqlTableQuery]()
	return withInterceptors[[]*SqlTable](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SqlTableQuery) AllX(ctx context.Context) []*SqlTable {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SqlTable IDs.
func (_q *SqlTableQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(sqltable.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SqlTableQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SqlTableQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SqlTableQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SqlTableQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SqlTableQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *SqlTableQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SqlTableQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SqlTableQuery) Clone() *SqlTableQuery {
	if _q == nil {
		return nil
	}
	return &SqlTableQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]sqltable.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.SqlTable{}, _q.predicates...),
		withSQLDb:   _q.withSQLDb.Clone(),
		withColumns: _q.withColumns.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSQLDb tells the query-builder to eager-load the nodes that are connected to
// the "sql_db" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SqlTableQuery) WithSQLDb(opts ...func(*SqlDbQuery)) *SqlTableQuery {
	query := (&SqlDbClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSQLDb = query
	return _q
}

// WithColumns tells the query-builder to eager-load the nodes that are connected to
// the "columns" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SqlTableQuery) WithColumns(opts ...func(*SqlColumnQuery)) *SqlTableQuery {
	query := (&SqlColumnClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withColumns = query
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
//	client.SqlTable.Query().
//		GroupBy(sqltable.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SqlTableQuery) GroupBy(field string, fields ...string) *SqlTableGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SqlTableGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = sqltable.Label
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
//	client.SqlTable.Query().
//		Select(sqltable.FieldName).
//		Scan(ctx, &v)
func (_q *SqlTableQuery) Select(fields ...string) *SqlTableSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SqlTableSelect{SqlTableQuery: _q}
	sbuild.label = sqltable.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SqlTableSelect configured with the given aggregations.
func (_q *SqlTableQuery) Aggregate(fns ...AggregateFunc) *SqlTableSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SqlTableQuery) prepareQuery(ctx context.Context) error {
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
		if !sqltable.ValidColumn(f) {
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

func (_q *SqlTableQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SqlTable, error) {
	var (
		nodes       = []*SqlTable{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withSQLDb != nil,
			_q.withColumns != nil,
		}
	)
	if _q.withSQLDb != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, sqltable.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SqlTable).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SqlTable{config: _q.config}
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
	if query := _q.withSQLDb; query != nil {
		if err := _q.loadSQLDb(ctx, query, nodes, nil,
			func(n *SqlTable, e *SqlDb) { n.Edges.SQLDb = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withColumns; query != nil {
		if err := _q.loadColumns(ctx, query, nodes,
			func(n *SqlTable) { n.Edges.Columns = []*SqlColumn{} },
			func(n *SqlTable, e *SqlColumn) { n.Edges.Columns = append(n.Edges.Columns, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SqlTableQuery) loadSQLDb(ctx context.Context, query *SqlDbQuery, nodes []*SqlTable, init func(*SqlTable), assign func(*SqlTable, *SqlDb)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*SqlTable)
	for i := range nodes {
		if nodes[i].sql_db_tables == nil {
			continue
		}
		fk := *nodes[i].sql_db_tables
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(sqldb.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "sql_db_tables" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *SqlTableQuery) loadColumns(ctx context.Context, query *SqlColumnQuery, nodes []*SqlTable, init func(*SqlTable), assign func(*SqlTable, *SqlColumn)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*SqlTable)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.SqlColumn(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(sqltable.ColumnsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.sql_table_columns
		if fk == nil {
			return fmt.Errorf(`foreign-key "sql_table_columns" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "sql_table_columns" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *SqlTableQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SqlTableQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(sqltable.Table, sqltable.Columns, sqlgraph.NewFieldSpec(sqltable.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sqltable.FieldID)
		for i := range fields {
			if fields[i] != sqltable.FieldID {
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

func (_q *SqlTableQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(sqltable.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = sqltable.Columns
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

// SqlTableGroupBy is the group-by builder for SqlTable entities.
type SqlTableGroupBy struct {
	selector
	build *SqlTableQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SqlTableGroupBy) Aggregate(fns ...AggregateFunc) *SqlTableGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SqlTableGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SqlTableQuery, *SqlTableGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SqlTableGroupBy) sqlScan(ctx context.Context, root *SqlTableQuery, v any) error {
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

// SqlTableSelect is the builder for selecting fields of SqlTable entities.
type SqlTableSelect struct {
	*SqlTableQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SqlTableSelect) Aggregate(fns ...AggregateFunc) *SqlTableSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SqlTableSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SqlTableQuery, *SqlTableSelect](ctx, _s.SqlTableQuery, _s, _s.inters, v)
}

func (_s *SqlTableSelect) sqlScan(ctx context.Context, root *SqlTableQuery, v any) error {
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
