package dbadapter

import (
	"context"
	"database/sql"
)

// postgresIntrospector introspects PostgreSQL via information_schema.
type postgresIntrospector struct{}

func schemaOrPublic(schema string) string {
	if schema == "" {
		return "public"
	}
	return schema
}

func (postgresIntrospector) tables(ctx context.Context, db *sql.DB, schema string) ([]TableInfo, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT table_name, table_schema
		 FROM information_schema.tables
		 WHERE table_schema = $1 AND table_type = 'BASE TABLE'
		 ORDER BY table_name`, schemaOrPublic(schema))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []TableInfo
	for rows.Next() {
		var t TableInfo
		if err := rows.Scan(&t.Name, &t.Schema); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

func (postgresIntrospector) columns(ctx context.Context, db *sql.DB, schema, table string) ([]ColumnInfo, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT c.column_name, c.data_type, c.is_nullable = 'YES', COALESCE(c.column_default, ''),
		        EXISTS (
		          SELECT 1 FROM information_schema.key_column_usage kcu
		          JOIN information_schema.table_constraints tc
		            ON tc.constraint_name = kcu.constraint_name AND tc.table_schema = kcu.table_schema
		          WHERE tc.constraint_type = 'PRIMARY KEY'
		            AND kcu.table_schema = c.table_schema
		            AND kcu.table_name = c.table_name
		            AND kcu.column_name = c.column_name
		        )
		 FROM information_schema.columns c
		 WHERE c.table_schema = $1 AND c.table_name = $2
		 ORDER BY c.ordinal_position`, schemaOrPublic(schema), table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []ColumnInfo
	for rows.Next() {
		var col ColumnInfo
		if err := rows.Scan(&col.Name, &col.DataType, &col.Nullable, &col.Default, &col.IsPrimaryKey); err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return cols, rows.Err()
}

func (postgresIntrospector) foreignKeys(ctx context.Context, db *sql.DB, schema string) ([]ForeignKey, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT kcu.table_name, kcu.column_name, ccu.table_name, ccu.column_name
		 FROM information_schema.table_constraints tc
		 JOIN information_schema.key_column_usage kcu
		   ON tc.constraint_name = kcu.constraint_name AND tc.table_schema = kcu.table_schema
		 JOIN information_schema.constraint_column_usage ccu
		   ON tc.constraint_name = ccu.constraint_name AND tc.table_schema = ccu.table_schema
		 WHERE tc.constraint_type = 'FOREIGN KEY' AND tc.table_schema = $1`, schemaOrPublic(schema))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fks []ForeignKey
	for rows.Next() {
		var fk ForeignKey
		if err := rows.Scan(&fk.Table, &fk.Column, &fk.TargetTable, &fk.TargetColumn); err != nil {
			return nil, err
		}
		fks = append(fks, fk)
	}
	return fks, rows.Err()
}

// tableDDL returns "". PostgreSQL exposes no SHOW CREATE TABLE; the rendered
// fallback is used instead.
func (postgresIntrospector) tableDDL(_ context.Context, _ *sql.DB, _, _ string) (string, error) {
	return "", nil
}

func (postgresIntrospector) quote(ident string) string {
	return `"` + ident + `"`
}
