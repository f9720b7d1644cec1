package dbadapter

import (
	"context"
	"database/sql"
)

// mssqlIntrospector introspects SQL Server via information_schema and sys views.
type mssqlIntrospector struct{}

func schemaOrDbo(schema string) string {
	if schema == "" {
		return "dbo"
	}
	return schema
}

func (mssqlIntrospector) tables(ctx context.Context, db *sql.DB, schema string) ([]TableInfo, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT table_name, table_schema
		 FROM information_schema.tables
		 WHERE table_schema = @p1 AND table_type = 'BASE TABLE'
		 ORDER BY table_name`, schemaOrDbo(schema))
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

func (mssqlIntrospector) columns(ctx context.Context, db *sql.DB, schema, table string) ([]ColumnInfo, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT c.column_name, c.data_type,
		        CASE WHEN c.is_nullable = 'YES' THEN 1 ELSE 0 END,
		        COALESCE(c.column_default, ''),
		        CASE WHEN pk.column_name IS NULL THEN 0 ELSE 1 END
		 FROM information_schema.columns c
		 LEFT JOIN (
		   SELECT kcu.table_schema, kcu.table_name, kcu.column_name
		   FROM information_schema.key_column_usage kcu
		   JOIN information_schema.table_constraints tc
		     ON tc.constraint_name = kcu.constraint_name
		   WHERE tc.constraint_type = 'PRIMARY KEY'
		 ) pk ON pk.table_schema = c.table_schema AND pk.table_name = c.table_name AND pk.column_name = c.column_name
		 WHERE c.table_schema = @p1 AND c.table_name = @p2
		 ORDER BY c.ordinal_position`, schemaOrDbo(schema), table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []ColumnInfo
	for rows.Next() {
		var (
			col      ColumnInfo
			nullable int
			pk       int
		)
		if err := rows.Scan(&col.Name, &col.DataType, &nullable, &col.Default, &pk); err != nil {
			return nil, err
		}
		col.Nullable = nullable == 1
		col.IsPrimaryKey = pk == 1
		cols = append(cols, col)
	}
	return cols, rows.Err()
}

func (mssqlIntrospector) foreignKeys(ctx context.Context, db *sql.DB, _ string) ([]ForeignKey, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT tp.name, cp.name, tr.name, cr.name
		 FROM sys.foreign_key_columns fkc
		 JOIN sys.tables tp ON fkc.parent_object_id = tp.object_id
		 JOIN sys.columns cp ON fkc.parent_object_id = cp.object_id AND fkc.parent_column_id = cp.column_id
		 JOIN sys.tables tr ON fkc.referenced_object_id = tr.object_id
		 JOIN sys.columns cr ON fkc.referenced_object_id = cr.object_id AND fkc.referenced_column_id = cr.column_id`)
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

// tableDDL returns "". SQL Server has no SHOW CREATE TABLE equivalent
// without sp_helptext gymnastics; the rendered fallback is used.
func (mssqlIntrospector) tableDDL(_ context.Context, _ *sql.DB, _, _ string) (string, error) {
	return "", nil
}

func (mssqlIntrospector) quote(ident string) string {
	return "[" + ident + "]"
}
