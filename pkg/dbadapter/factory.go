package dbadapter

import (
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"sync"

	_ "github.com/go-sql-driver/mysql"   // MySQL / MariaDB driver
	_ "github.com/jackc/pgx/v5/stdlib"   // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"      // SQLite driver
	_ "github.com/microsoft/go-mssqldb"  // SQL Server driver
	_ "github.com/sijms/go-ora/v2"       // Oracle driver

	"github.com/thoth-ai/thoth/pkg/apperrors"
	"github.com/thoth-ai/thoth/pkg/config"
)

// ConnectionSpec carries the connection coordinates of one SqlDb.
type ConnectionSpec struct {
	Dialect  config.Dialect
	Name     string
	Host     string
	Port     int
	Database string
	Username string
	Password string
	Schema   string
}

// Factory hands out Manager instances, one per key. A key is typically
// "{workspace_id}/{sqldb_id}". Managers are cached until invalidated.
type Factory struct {
	dbRoot string
	mode   string

	mu       sync.Mutex
	managers map[string]Manager
}

// NewFactory creates a Factory rooted at the configured database directory.
func NewFactory(dbRoot, mode string) *Factory {
	return &Factory{
		dbRoot:   dbRoot,
		mode:     mode,
		managers: make(map[string]Manager),
	}
}

// Get returns the cached manager for key, creating it on first use.
func (f *Factory) Get(key string, spec ConnectionSpec) (Manager, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if m, ok := f.managers[key]; ok {
		return m, nil
	}

	m, err := f.open(spec)
	if err != nil {
		return nil, err
	}
	f.managers[key] = m
	return m, nil
}

// Invalidate closes and removes the cached manager for key.
func (f *Factory) Invalidate(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if m, ok := f.managers[key]; ok {
		_ = m.Close()
		delete(f.managers, key)
	}
}

// Close releases every cached manager.
func (f *Factory) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for key, m := range f.managers {
		_ = m.Close()
		delete(f.managers, key)
	}
}

// SQLitePath returns the canonical file path of a file-backed database:
// {db_root}/{mode}_databases/{name}/{name}.sqlite
func (f *Factory) SQLitePath(name string) string {
	return filepath.Join(f.dbRoot, f.mode+"_databases", name, name+".sqlite")
}

func (f *Factory) open(spec ConnectionSpec) (Manager, error) {
	var (
		driver string
		dsn    string
		intro  introspector
	)

	switch spec.Dialect {
	case config.DialectSQLite:
		driver = "sqlite3"
		dsn = "file:" + f.SQLitePath(spec.Name) + "?mode=ro"
		intro = sqliteIntrospector{}
	case config.DialectPostgreSQL:
		driver = "pgx"
		dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			spec.Host, spec.Port, spec.Username, spec.Password, spec.Database)
		intro = postgresIntrospector{}
	case config.DialectMySQL, config.DialectMariaDB:
		driver = "mysql"
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s",
			spec.Username, spec.Password, spec.Host, spec.Port, spec.Database)
		intro = mysqlIntrospector{}
	case config.DialectSQLServer:
		driver = "sqlserver"
		dsn = fmt.Sprintf("sqlserver://%s:%s@%s:%d?database=%s",
			url.QueryEscape(spec.Username), url.QueryEscape(spec.Password),
			spec.Host, spec.Port, url.QueryEscape(spec.Database))
		intro = mssqlIntrospector{}
	case config.DialectOracle:
		driver = "oracle"
		dsn = fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
			url.QueryEscape(spec.Username), url.QueryEscape(spec.Password),
			spec.Host, spec.Port, url.QueryEscape(spec.Database))
		intro = oracleIntrospector{}
	default:
		return nil, apperrors.Critical(apperrors.CategoryConfiguration,
			fmt.Sprintf("unsupported dialect: %s", spec.Dialect))
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryDatabase, apperrors.SeverityCritical,
			fmt.Sprintf("failed to open %s connection", spec.Dialect), err)
	}

	// Paginated reads fan out; keep the pool small but concurrent.
	db.SetMaxOpenConns(8)
	db.SetMaxIdleConns(2)

	return &manager{
		db:      db,
		dialect: spec.Dialect,
		schema:  spec.Schema,
		intro:   intro,
	}, nil
}

// NewManagerFromDB wraps an existing *sql.DB (useful for testing).
func NewManagerFromDB(db *sql.DB, dialect config.Dialect, schema string) Manager {
	var intro introspector
	switch dialect {
	case config.DialectPostgreSQL:
		intro = postgresIntrospector{}
	case config.DialectMySQL, config.DialectMariaDB:
		intro = mysqlIntrospector{}
	case config.DialectSQLServer:
		intro = mssqlIntrospector{}
	case config.DialectOracle:
		intro = oracleIntrospector{}
	default:
		intro = sqliteIntrospector{}
	}
	return &manager{db: db, dialect: dialect, schema: schema, intro: intro}
}
