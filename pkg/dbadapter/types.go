// Package dbadapter provides pluggable managers for the supported target
// database engines: schema introspection, example-value sampling, and
// paginated read-only execution. The factory hands out a single manager
// instance per (workspace, SqlDb) key, safe for concurrent paginated reads.
package dbadapter

import (
	"context"
	"errors"

	"github.com/thoth-ai/thoth/pkg/config"
)

// ErrDatabaseUnavailable signals that the target database cannot be reached.
// The pipeline propagates it as a CRITICAL_DB_ERROR sentinel.
var ErrDatabaseUnavailable = errors.New("target database unavailable")

// TableInfo describes one introspected table.
type TableInfo struct {
	Name   string `json:"name"`
	Schema string `json:"schema,omitempty"`
}

// ColumnInfo describes one introspected column.
type ColumnInfo struct {
	Name         string `json:"name"`
	DataType     string `json:"data_type"`
	Nullable     bool   `json:"nullable"`
	Default      string `json:"default,omitempty"`
	IsPrimaryKey bool   `json:"is_primary_key"`
}

// ForeignKey describes one introspected foreign-key edge.
type ForeignKey struct {
	Table        string `json:"table"`
	Column       string `json:"column"`
	TargetTable  string `json:"target_table"`
	TargetColumn string `json:"target_column"`
}

// SortField is one entry of a sort model for paginated execution.
type SortField struct {
	Column string `json:"column"`
	Desc   bool   `json:"desc"`
}

// Filter is one entry of a filter model for paginated execution.
// Op is one of "eq", "neq", "contains", "gt", "lt".
type Filter struct {
	Column string `json:"column"`
	Op     string `json:"op"`
	Value  string `json:"value"`
}

// Page is the result of one paginated execution.
type Page struct {
	Rows      []map[string]any `json:"rows"`
	TotalRows int64            `json:"total_rows"`
	Columns   []string         `json:"columns"`
	Error     string           `json:"error,omitempty"`
}

// Manager is the adapter contract for one target database.
type Manager interface {
	Dialect() config.Dialect

	// Tables lists all user tables.
	Tables(ctx context.Context) ([]TableInfo, error)

	// Columns lists the columns of one table.
	Columns(ctx context.Context, table string) ([]ColumnInfo, error)

	// ForeignKeys lists all foreign-key edges of the database.
	ForeignKeys(ctx context.Context) ([]ForeignKey, error)

	// TableSchema returns the table DDL where the engine exposes it, or a
	// human-readable structure rendered from Columns otherwise.
	TableSchema(ctx context.Context, table string) (string, error)

	// ExampleData samples up to k distinct values per column.
	ExampleData(ctx context.Context, table string, k int) (map[string][]string, error)

	// ExecutePaginated wraps sql in a paginated read with optional sorting
	// and filtering. page is 1-based.
	ExecutePaginated(ctx context.Context, sqlText string, page, pageSize int, sort []SortField, filter []Filter) (*Page, error)

	// HealthCheck reports whether the target database answers a ping.
	HealthCheck(ctx context.Context) bool

	// Close releases the connection pool.
	Close() error
}
