package dbadapter

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/thoth-ai/thoth/pkg/config"
)

// ExecutePaginated wraps sqlText in an outer paginated SELECT built with
// squirrel, applying the sort and filter models. page is 1-based.
func (m *manager) ExecutePaginated(ctx context.Context, sqlText string, page, pageSize int, sort []SortField, filter []Filter) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	inner := strings.TrimRight(strings.TrimSpace(sqlText), ";")

	builder := sq.Select("*").
		From(fmt.Sprintf("(%s) AS thoth_q", inner)).
		PlaceholderFormat(placeholderFor(m.dialect))
	countBuilder := sq.Select("COUNT(*)").
		From(fmt.Sprintf("(%s) AS thoth_q", inner)).
		PlaceholderFormat(placeholderFor(m.dialect))

	for _, f := range filter {
		pred, err := filterPredicate(m.intro, f)
		if err != nil {
			return nil, err
		}
		builder = builder.Where(pred)
		countBuilder = countBuilder.Where(pred)
	}

	orderBy := make([]string, 0, len(sort))
	for _, s := range sort {
		dir := "ASC"
		if s.Desc {
			dir = "DESC"
		}
		orderBy = append(orderBy, fmt.Sprintf("%s %s", m.intro.quote(s.Column), dir))
	}
	if len(orderBy) > 0 {
		builder = builder.OrderBy(orderBy...)
	} else if m.dialect == config.DialectSQLServer {
		// SQL Server requires ORDER BY for OFFSET/FETCH.
		builder = builder.OrderBy("(SELECT NULL)")
	}

	offset := uint64((page - 1) * pageSize)
	switch m.dialect {
	case config.DialectSQLServer, config.DialectOracle:
		builder = builder.Suffix(fmt.Sprintf("OFFSET %d ROWS FETCH NEXT %d ROWS ONLY", offset, pageSize))
	default:
		builder = builder.Limit(uint64(pageSize)).Offset(offset)
	}

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build count query: %w", err)
	}
	var total int64
	if err := m.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return &Page{Error: err.Error()}, wrapUnavailable(err)
	}

	pageSQL, pageArgs, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build page query: %w", err)
	}
	rows, err := m.db.QueryContext(ctx, pageSQL, pageArgs...)
	if err != nil {
		return &Page{Error: err.Error()}, wrapUnavailable(err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &Page{TotalRows: total, Columns: columns, Rows: []map[string]any{}}
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = normalizeValue(values[i])
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapUnavailable(err)
	}

	return result, nil
}

// filterPredicate maps a filter-model entry onto a squirrel predicate.
func filterPredicate(intro introspector, f Filter) (sq.Sqlizer, error) {
	col := intro.quote(f.Column)
	switch f.Op {
	case "eq", "":
		return sq.Eq{col: f.Value}, nil
	case "neq":
		return sq.NotEq{col: f.Value}, nil
	case "contains":
		return sq.Like{col: "%" + f.Value + "%"}, nil
	case "gt":
		return sq.Gt{col: f.Value}, nil
	case "lt":
		return sq.Lt{col: f.Value}, nil
	default:
		return nil, fmt.Errorf("unsupported filter op: %q", f.Op)
	}
}

// placeholderFor selects the bind-parameter style of the dialect.
func placeholderFor(dialect config.Dialect) sq.PlaceholderFormat {
	switch dialect {
	case config.DialectPostgreSQL:
		return sq.Dollar
	case config.DialectSQLServer:
		return sq.AtP
	case config.DialectOracle:
		return sq.Colon
	default:
		return sq.Question
	}
}

// normalizeValue converts driver-specific scan results into JSON-friendly values.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case sql.RawBytes:
		return string(val)
	default:
		return v
	}
}
