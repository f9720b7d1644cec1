package dbadapter

import (
	"context"
	"database/sql"
)

// mysqlIntrospector introspects MySQL and MariaDB via information_schema.
type mysqlIntrospector struct{}

func (mysqlIntrospector) tables(ctx context.Context, db *sql.DB, _ string) ([]TableInfo, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT table_name FROM information_schema.tables
		 WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE'
		 ORDER BY table_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []TableInfo
	for rows.Next() {
		var t TableInfo
		if err := rows.Scan(&t.Name); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

func (mysqlIntrospector) columns(ctx context.Context, db *sql.DB, _, table string) ([]ColumnInfo, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT column_name, column_type, is_nullable = 'YES', COALESCE(column_default, ''),
		        column_key = 'PRI'
		 FROM information_schema.columns
		 WHERE table_schema = DATABASE() AND table_name = ?
		 ORDER BY ordinal_position`, table)
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

func (mysqlIntrospector) foreignKeys(ctx context.Context, db *sql.DB, _ string) ([]ForeignKey, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT table_name, column_name, referenced_table_name, referenced_column_name
		 FROM information_schema.key_column_usage
		 WHERE table_schema = DATABASE() AND referenced_table_name IS NOT NULL`)
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

func (m mysqlIntrospector) tableDDL(ctx context.Context, db *sql.DB, _, table string) (string, error) {
	var name, ddl string
	err := db.QueryRowContext(ctx, "SHOW CREATE TABLE "+m.quote(table)).Scan(&name, &ddl)
	if err != nil {
		return "", err
	}
	return ddl, nil
}

func (mysqlIntrospector) quote(ident string) string {
	return "`" + ident + "`"
}
