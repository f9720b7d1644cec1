package dbadapter

import (
	"context"
	"database/sql"
	"strings"
)

// oracleIntrospector introspects Oracle via the user_* data dictionary views.
type oracleIntrospector struct{}

func (oracleIntrospector) tables(ctx context.Context, db *sql.DB, _ string) ([]TableInfo, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT table_name FROM user_tables ORDER BY table_name`)
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

func (oracleIntrospector) columns(ctx context.Context, db *sql.DB, _, table string) ([]ColumnInfo, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT tc.column_name, tc.data_type, tc.nullable, COALESCE(tc.data_default, ' '),
		        CASE WHEN pk.column_name IS NULL THEN 0 ELSE 1 END
		 FROM user_tab_columns tc
		 LEFT JOIN (
		   SELECT cc.table_name, cc.column_name
		   FROM user_cons_columns cc
		   JOIN user_constraints c ON cc.constraint_name = c.constraint_name
		   WHERE c.constraint_type = 'P'
		 ) pk ON pk.table_name = tc.table_name AND pk.column_name = tc.column_name
		 WHERE tc.table_name = :1
		 ORDER BY tc.column_id`, strings.ToUpper(table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []ColumnInfo
	for rows.Next() {
		var (
			col      ColumnInfo
			nullable string
			pk       int
		)
		if err := rows.Scan(&col.Name, &col.DataType, &nullable, &col.Default, &pk); err != nil {
			return nil, err
		}
		col.Nullable = nullable == "Y"
		col.IsPrimaryKey = pk == 1
		col.Default = strings.TrimSpace(col.Default)
		cols = append(cols, col)
	}
	return cols, rows.Err()
}

func (oracleIntrospector) foreignKeys(ctx context.Context, db *sql.DB, _ string) ([]ForeignKey, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT a.table_name, a.column_name, c_pk.table_name, b.column_name
		 FROM user_cons_columns a
		 JOIN user_constraints c ON a.constraint_name = c.constraint_name
		 JOIN user_constraints c_pk ON c.r_constraint_name = c_pk.constraint_name
		 JOIN user_cons_columns b ON c_pk.constraint_name = b.constraint_name AND b.position = a.position
		 WHERE c.constraint_type = 'R'`)
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

func (oracleIntrospector) tableDDL(ctx context.Context, db *sql.DB, _, table string) (string, error) {
	var ddl string
	err := db.QueryRowContext(ctx,
		`SELECT DBMS_METADATA.GET_DDL('TABLE', :1) FROM dual`, strings.ToUpper(table)).Scan(&ddl)
	if err != nil {
		// Dictionary access may be restricted; fall back to the rendered form.
		return "", nil
	}
	return ddl, nil
}

func (oracleIntrospector) quote(ident string) string {
	return `"` + strings.ToUpper(ident) + `"`
}
