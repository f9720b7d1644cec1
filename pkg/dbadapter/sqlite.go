package dbadapter

import (
	"context"
	"database/sql"
)

// sqliteIntrospector introspects SQLite via the pragma table-valued functions.
type sqliteIntrospector struct{}

func (sqliteIntrospector) tables(ctx context.Context, db *sql.DB, _ string) ([]TableInfo, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []TableInfo
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, TableInfo{Name: name})
	}
	return tables, rows.Err()
}

func (sqliteIntrospector) columns(ctx context.Context, db *sql.DB, _, table string) ([]ColumnInfo, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT name, type, "notnull", COALESCE(dflt_value, ''), pk FROM pragma_table_info(?)`, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []ColumnInfo
	for rows.Next() {
		var (
			col     ColumnInfo
			notNull int
			pk      int
		)
		if err := rows.Scan(&col.Name, &col.DataType, &notNull, &col.Default, &pk); err != nil {
			return nil, err
		}
		col.Nullable = notNull == 0
		col.IsPrimaryKey = pk > 0
		cols = append(cols, col)
	}
	return cols, rows.Err()
}

func (s sqliteIntrospector) foreignKeys(ctx context.Context, db *sql.DB, schema string) ([]ForeignKey, error) {
	tables, err := s.tables(ctx, db, schema)
	if err != nil {
		return nil, err
	}

	var fks []ForeignKey
	for _, t := range tables {
		rows, err := db.QueryContext(ctx,
			`SELECT "table", "from", "to" FROM pragma_foreign_key_list(?)`, t.Name)
		if err != nil {
			return nil, err
		}
		for rows.Next() {
			fk := ForeignKey{Table: t.Name}
			var to sql.NullString
			if err := rows.Scan(&fk.TargetTable, &fk.Column, &to); err != nil {
				_ = rows.Close()
				return nil, err
			}
			// "to" is NULL when the FK references the target's primary key.
			fk.TargetColumn = to.String
			fks = append(fks, fk)
		}
		if err := rows.Err(); err != nil {
			_ = rows.Close()
			return nil, err
		}
		_ = rows.Close()
	}
	return fks, nil
}

// tableDDL returns "" so the rendered fallback is used: SQLite stores raw
// CREATE text only, which is frequently stale after ALTERs.
func (sqliteIntrospector) tableDDL(_ context.Context, _ *sql.DB, _, _ string) (string, error) {
	return "", nil
}

func (sqliteIntrospector) quote(ident string) string {
	return "`" + ident + "`"
}
