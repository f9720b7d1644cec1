package dbadapter

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/thoth-ai/thoth/pkg/config"
)

// introspector is the dialect-specific part of a manager.
type introspector interface {
	tables(ctx context.Context, db *sql.DB, schema string) ([]TableInfo, error)
	columns(ctx context.Context, db *sql.DB, schema, table string) ([]ColumnInfo, error)
	foreignKeys(ctx context.Context, db *sql.DB, schema string) ([]ForeignKey, error)
	// tableDDL returns the native DDL, or "" when the engine has none and
	// the rendered fallback should be used.
	tableDDL(ctx context.Context, db *sql.DB, schema, table string) (string, error)
	// quote wraps an identifier in the dialect's preferred delimiter.
	quote(ident string) string
}

// manager is the shared Manager implementation; dialect differences live in
// the introspector.
type manager struct {
	db      *sql.DB
	dialect config.Dialect
	schema  string
	intro   introspector
}

func (m *manager) Dialect() config.Dialect {
	return m.dialect
}

func (m *manager) Tables(ctx context.Context) ([]TableInfo, error) {
	tables, err := m.intro.tables(ctx, m.db, m.schema)
	if err != nil {
		return nil, wrapUnavailable(err)
	}
	return tables, nil
}

func (m *manager) Columns(ctx context.Context, table string) ([]ColumnInfo, error) {
	cols, err := m.intro.columns(ctx, m.db, m.schema, table)
	if err != nil {
		return nil, wrapUnavailable(err)
	}
	return cols, nil
}

func (m *manager) ForeignKeys(ctx context.Context) ([]ForeignKey, error) {
	fks, err := m.intro.foreignKeys(ctx, m.db, m.schema)
	if err != nil {
		return nil, wrapUnavailable(err)
	}
	return fks, nil
}

func (m *manager) TableSchema(ctx context.Context, table string) (string, error) {
	ddl, err := m.intro.tableDDL(ctx, m.db, m.schema, table)
	if err != nil {
		return "", wrapUnavailable(err)
	}
	if ddl != "" {
		return ddl, nil
	}

	// Fallback: render a human-readable structure from the columns.
	cols, err := m.Columns(ctx, table)
	if err != nil {
		return "", err
	}
	return RenderTableStructure(table, cols), nil
}

// RenderTableStructure renders a human-readable table description from
// column metadata. Used where the engine exposes no native DDL.
func RenderTableStructure(table string, cols []ColumnInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Table: %s\n", table)
	for _, col := range cols {
		fmt.Fprintf(&b, "  - %s %s", col.Name, col.DataType)
		if col.IsPrimaryKey {
			b.WriteString(" PRIMARY KEY")
		}
		if !col.Nullable {
			b.WriteString(" NOT NULL")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *manager) ExampleData(ctx context.Context, table string, k int) (map[string][]string, error) {
	cols, err := m.Columns(ctx, table)
	if err != nil {
		return nil, err
	}

	examples := make(map[string][]string, len(cols))
	for _, col := range cols {
		query := fmt.Sprintf("SELECT DISTINCT %s FROM %s WHERE %s IS NOT NULL",
			m.intro.quote(col.Name), m.intro.quote(table), m.intro.quote(col.Name))
		query = limitQuery(m.dialect, query, k)

		rows, err := m.db.QueryContext(ctx, query)
		if err != nil {
			// Individual column sampling may fail on exotic types; skip it.
			continue
		}
		values := make([]string, 0, k)
		for rows.Next() {
			var v sql.NullString
			if err := rows.Scan(&v); err != nil {
				continue
			}
			if v.Valid {
				values = append(values, v.String)
			}
		}
		_ = rows.Close()
		if err := rows.Err(); err != nil {
			continue
		}
		examples[col.Name] = values
	}
	return examples, nil
}

func (m *manager) HealthCheck(ctx context.Context) bool {
	return m.db.PingContext(ctx) == nil
}

func (m *manager) Close() error {
	return m.db.Close()
}

// limitQuery appends the dialect's row-limiting clause.
func limitQuery(dialect config.Dialect, query string, k int) string {
	switch dialect {
	case config.DialectSQLServer:
		// TOP must follow SELECT; rewrite the head of the query.
		return strings.Replace(query, "SELECT DISTINCT", fmt.Sprintf("SELECT DISTINCT TOP %d", k), 1)
	case config.DialectOracle:
		return fmt.Sprintf("%s FETCH FIRST %d ROWS ONLY", query, k)
	default:
		return fmt.Sprintf("%s LIMIT %d", query, k)
	}
}

// wrapUnavailable classifies connection-level failures as
// ErrDatabaseUnavailable so the pipeline can emit CRITICAL_DB_ERROR.
func wrapUnavailable(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	for _, needle := range []string{
		"connection refused", "no such host", "connection reset",
		"database is locked", "unable to open database", "i/o timeout",
		"bad connection", "connection closed",
	} {
		if strings.Contains(msg, needle) {
			return fmt.Errorf("%w: %v", ErrDatabaseUnavailable, err)
		}
	}
	return err
}
