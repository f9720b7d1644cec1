package dbadapter

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoth-ai/thoth/pkg/config"
)

func newTestManager(t *testing.T) Manager {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// Keep the in-memory database on a single pooled connection.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	stmts := []string{
		`CREATE TABLE districts (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE schools (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			county TEXT,
			district_id INTEGER REFERENCES districts (id)
		)`,
		`INSERT INTO districts (id, name) VALUES (1, 'Oakland Unified'), (2, 'Fresno Unified')`,
		`INSERT INTO schools (id, name, county, district_id) VALUES
			(1, 'Lincoln High', 'Alameda', 1),
			(2, 'Fremont High', 'Alameda', 1),
			(3, 'Sunset Elementary', 'Fresno', 2),
			(4, 'Hilltop Middle', NULL, 2),
			(5, 'Bayview High', 'Alameda', 1)`,
	}
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	return NewManagerFromDB(db, config.DialectSQLite, "")
}

func TestManager_Tables(t *testing.T) {
	mgr := newTestManager(t)
	tables, err := mgr.Tables(context.Background())
	require.NoError(t, err)

	var names []string
	for _, tbl := range tables {
		names = append(names, tbl.Name)
	}
	assert.Equal(t, []string{"districts", "schools"}, names)
}

func TestManager_Columns(t *testing.T) {
	mgr := newTestManager(t)
	cols, err := mgr.Columns(context.Background(), "schools")
	require.NoError(t, err)
	require.Len(t, cols, 4)

	byName := make(map[string]ColumnInfo)
	for _, c := range cols {
		byName[c.Name] = c
	}
	assert.True(t, byName["id"].IsPrimaryKey)
	assert.False(t, byName["name"].Nullable)
	assert.True(t, byName["county"].Nullable)
	assert.Equal(t, "INTEGER", byName["district_id"].DataType)
}

func TestManager_ForeignKeys(t *testing.T) {
	mgr := newTestManager(t)
	fks, err := mgr.ForeignKeys(context.Background())
	require.NoError(t, err)
	require.Len(t, fks, 1)
	assert.Equal(t, "schools", fks[0].Table)
	assert.Equal(t, "district_id", fks[0].Column)
	assert.Equal(t, "districts", fks[0].TargetTable)
	assert.Equal(t, "id", fks[0].TargetColumn)
}

func TestManager_TableSchemaFallback(t *testing.T) {
	mgr := newTestManager(t)
	ddl, err := mgr.TableSchema(context.Background(), "districts")
	require.NoError(t, err)
	assert.Contains(t, ddl, "Table: districts")
	assert.Contains(t, ddl, "id INTEGER PRIMARY KEY")
	assert.Contains(t, ddl, "name TEXT NOT NULL")
}

func TestManager_ExampleData(t *testing.T) {
	mgr := newTestManager(t)
	examples, err := mgr.ExampleData(context.Background(), "schools", 2)
	require.NoError(t, err)

	assert.Len(t, examples["county"], 2)
	for _, v := range examples["county"] {
		assert.NotEmpty(t, v)
	}
	// NULLs are never sampled; the column with a NULL still yields values.
	assert.NotContains(t, examples["county"], "")
}

func TestExecutePaginated_Envelope(t *testing.T) {
	mgr := newTestManager(t)
	page, err := mgr.ExecutePaginated(context.Background(),
		"SELECT id, name FROM schools;", 1, 2, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(5), page.TotalRows)
	assert.Equal(t, []string{"id", "name"}, page.Columns)
	assert.Len(t, page.Rows, 2)
	assert.Empty(t, page.Error)
}

func TestExecutePaginated_SecondPage(t *testing.T) {
	mgr := newTestManager(t)
	sort := []SortField{{Column: "id"}}

	page, err := mgr.ExecutePaginated(context.Background(),
		"SELECT id FROM schools", 3, 2, sort, nil)
	require.NoError(t, err)

	require.Len(t, page.Rows, 1)
	assert.EqualValues(t, 5, page.Rows[0]["id"])
}

func TestExecutePaginated_SortDesc(t *testing.T) {
	mgr := newTestManager(t)
	page, err := mgr.ExecutePaginated(context.Background(),
		"SELECT id FROM schools", 1, 10, []SortField{{Column: "id", Desc: true}}, nil)
	require.NoError(t, err)

	require.Len(t, page.Rows, 5)
	assert.EqualValues(t, 5, page.Rows[0]["id"])
	assert.EqualValues(t, 1, page.Rows[4]["id"])
}

func TestExecutePaginated_Filter(t *testing.T) {
	mgr := newTestManager(t)

	page, err := mgr.ExecutePaginated(context.Background(),
		"SELECT id, county FROM schools", 1, 10, nil,
		[]Filter{{Column: "county", Op: "eq", Value: "Fresno"}})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.TotalRows)

	page, err = mgr.ExecutePaginated(context.Background(),
		"SELECT id, name FROM schools", 1, 10, nil,
		[]Filter{{Column: "name", Op: "contains", Value: "High"}})
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.TotalRows)
}

func TestExecutePaginated_UnsupportedFilterOp(t *testing.T) {
	mgr := newTestManager(t)
	_, err := mgr.ExecutePaginated(context.Background(),
		"SELECT id FROM schools", 1, 10, nil,
		[]Filter{{Column: "id", Op: "between", Value: "1"}})
	assert.Error(t, err)
}

func TestExecutePaginated_BadSQLReturnsErrorPage(t *testing.T) {
	mgr := newTestManager(t)
	page, err := mgr.ExecutePaginated(context.Background(),
		"SELECT nope FROM missing_table", 1, 10, nil, nil)
	require.Error(t, err)
	require.NotNil(t, page)
	assert.NotEmpty(t, page.Error)
}

func TestExecutePaginated_DefaultsPageAndSize(t *testing.T) {
	mgr := newTestManager(t)
	page, err := mgr.ExecutePaginated(context.Background(),
		"SELECT id FROM schools", 0, 0, nil, nil)
	require.NoError(t, err)
	assert.Len(t, page.Rows, 5)
	assert.EqualValues(t, 5, page.TotalRows)
}

func TestRenderTableStructure(t *testing.T) {
	out := RenderTableStructure("t", []ColumnInfo{
		{Name: "id", DataType: "INTEGER", IsPrimaryKey: true, Nullable: false},
		{Name: "note", DataType: "TEXT", Nullable: true},
	})
	assert.Equal(t, "Table: t\n  - id INTEGER PRIMARY KEY NOT NULL\n  - note TEXT\n", out)
}

func TestWrapUnavailable(t *testing.T) {
	assert.NoError(t, wrapUnavailable(nil))

	err := wrapUnavailable(assert.AnError)
	assert.NotErrorIs(t, err, ErrDatabaseUnavailable)

	err = wrapUnavailable(&connErr{"dial tcp 10.0.0.1:5432: connection refused"})
	assert.ErrorIs(t, err, ErrDatabaseUnavailable)
}

type connErr struct{ msg string }

func (e *connErr) Error() string { return e.msg }
