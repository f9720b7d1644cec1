package jobs

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/thoth-ai/thoth/ent"
	"github.com/thoth-ai/thoth/ent/relationship"
	"github.com/thoth-ai/thoth/ent/sqlcolumn"
	"github.com/thoth-ai/thoth/ent/sqldb"
	"github.com/thoth-ai/thoth/ent/sqltable"
	"github.com/thoth-ai/thoth/pkg/dbadapter"
)

// TriggerCreateElements starts the catalog creation job for a SqlDb and
// returns its task ID.
func (r *Runner) TriggerCreateElements(ctx context.Context, sqlDbID string) (string, error) {
	if _, err := r.loadSqlDb(ctx, sqlDbID); err != nil {
		return "", err
	}
	taskID := r.spawn(JobDBElements, func(ctx context.Context, taskID string) {
		r.runCreateElements(ctx, sqlDbID, taskID)
	})
	return taskID, nil
}

func (r *Runner) runCreateElements(ctx context.Context, sqlDbID, taskID string) {
	log := r.logger.With("job", JobDBElements, "sql_db_id", sqlDbID, "task_id", taskID)
	if err := r.markRunning(ctx, sqlDbID, JobDBElements, taskID); err != nil {
		log.Error("failed to mark job running", "error", err)
		return
	}

	summary, err := r.createElements(ctx, sqlDbID)
	if err != nil {
		log.Error("elements creation failed", "error", err)
		_ = r.markFinished(ctx, sqlDbID, JobDBElements, err.Error(), true)
		return
	}
	log.Info("elements creation completed", "summary", summary)
	_ = r.markFinished(ctx, sqlDbID, JobDBElements, summary, false)
}

// createElements introspects the target database and upserts the SqlTable,
// SqlColumn and Relationship catalog.
func (r *Runner) createElements(ctx context.Context, sqlDbID string) (string, error) {
	db, err := r.loadSqlDb(ctx, sqlDbID)
	if err != nil {
		return "", err
	}
	mgr, err := r.managerFor(db)
	if err != nil {
		return "", err
	}

	tables, err := mgr.Tables(ctx)
	if err != nil {
		return "", fmt.Errorf("table introspection failed: %w", err)
	}

	var tableCount, columnCount int
	for _, t := range tables {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if _, err := r.upsertTable(ctx, db, mgr, t.Name); err != nil {
			return "", err
		}
		tableCount++
		cols, err := mgr.Columns(ctx, t.Name)
		if err != nil {
			return "", fmt.Errorf("column introspection failed for %s: %w", t.Name, err)
		}
		columnCount += len(cols)
	}

	fks, err := mgr.ForeignKeys(ctx)
	if err != nil {
		return "", fmt.Errorf("foreign key introspection failed: %w", err)
	}
	relCount := 0
	for _, fk := range fks {
		if err := r.upsertRelationship(ctx, db, mgr, fk); err != nil {
			return "", err
		}
		relCount++
	}

	return fmt.Sprintf("tables=%d columns=%d relationships=%d", tableCount, columnCount, relCount), nil
}

// upsertTable creates or refreshes one SqlTable row and its columns.
func (r *Runner) upsertTable(ctx context.Context, db *ent.SqlDb, mgr dbadapter.Manager, tableName string) (*ent.SqlTable, error) {
	table, err := r.client.SqlTable.Query().
		Where(
			sqltable.NameEQ(tableName),
			sqltable.HasSQLDbWith(sqldb.IDEQ(db.ID)),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		table, err = r.client.SqlTable.Create().
			SetID(uuid.New().String()).
			SetName(tableName).
			SetSQLDbID(db.ID).
			Save(ctx)
	}
	if err != nil {
		return nil, err
	}

	cols, err := mgr.Columns(ctx, tableName)
	if err != nil {
		return nil, err
	}
	for _, col := range cols {
		if err := r.upsertColumn(ctx, table, col); err != nil {
			return nil, err
		}
	}
	return table, nil
}

func (r *Runner) upsertColumn(ctx context.Context, table *ent.SqlTable, col dbadapter.ColumnInfo) error {
	pk := ""
	if col.IsPrimaryKey {
		pk = "PK"
	}
	existing, err := r.client.SqlColumn.Query().
		Where(
			sqlcolumn.OriginalNameEQ(col.Name),
			sqlcolumn.HasSQLTableWith(sqltable.IDEQ(table.ID)),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return r.client.SqlColumn.Create().
			SetID(uuid.New().String()).
			SetOriginalName(col.Name).
			SetNormalizedName(normalizeName(col.Name)).
			SetDataFormat(col.DataType).
			SetPrimaryKey(pk).
			SetSQLTableID(table.ID).
			Exec(ctx)
	}
	if err != nil {
		return err
	}
	return existing.Update().
		SetDataFormat(col.DataType).
		SetPrimaryKey(pk).
		Exec(ctx)
}

// upsertRelationship creates the FK edge, re-introspecting the owning table
// when a referenced column is missing from the catalog.
func (r *Runner) upsertRelationship(ctx context.Context, db *ent.SqlDb, mgr dbadapter.Manager, fk dbadapter.ForeignKey) error {
	for _, end := range []struct{ table, column string }{
		{fk.Table, fk.Column},
		{fk.TargetTable, fk.TargetColumn},
	} {
		ok, err := r.columnExists(ctx, db.ID, end.table, end.column)
		if err != nil {
			return err
		}
		if !ok {
			if _, err := r.upsertTable(ctx, db, mgr, end.table); err != nil {
				return err
			}
		}
		if err := r.markForeignKey(ctx, db.ID, end.table, end.column); err != nil {
			return err
		}
	}

	exists, err := r.client.Relationship.Query().
		Where(
			relationship.SourceTableEQ(fk.Table),
			relationship.SourceColumnEQ(fk.Column),
			relationship.TargetTableEQ(fk.TargetTable),
			relationship.TargetColumnEQ(fk.TargetColumn),
			relationship.HasSQLDbWith(sqldb.IDEQ(db.ID)),
		).
		Exist(ctx)
	if err != nil || exists {
		return err
	}
	return r.client.Relationship.Create().
		SetID(uuid.New().String()).
		SetSourceTable(fk.Table).
		SetSourceColumn(fk.Column).
		SetTargetTable(fk.TargetTable).
		SetTargetColumn(fk.TargetColumn).
		SetSQLDbID(db.ID).
		Exec(ctx)
}

func (r *Runner) columnExists(ctx context.Context, sqlDbID, tableName, columnName string) (bool, error) {
	return r.client.SqlColumn.Query().
		Where(
			sqlcolumn.OriginalNameEQ(columnName),
			sqlcolumn.HasSQLTableWith(
				sqltable.NameEQ(tableName),
				sqltable.HasSQLDbWith(sqldb.IDEQ(sqlDbID)),
			),
		).
		Exist(ctx)
}

func (r *Runner) markForeignKey(ctx context.Context, sqlDbID, tableName, columnName string) error {
	_, err := r.client.SqlColumn.Update().
		Where(
			sqlcolumn.OriginalNameEQ(columnName),
			sqlcolumn.HasSQLTableWith(
				sqltable.NameEQ(tableName),
				sqltable.HasSQLDbWith(sqldb.IDEQ(sqlDbID)),
			),
		).
		SetForeignKey("FK").
		Save(ctx)
	return err
}

func normalizeName(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}
