package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/thoth-ai/thoth/ent"
	"github.com/thoth-ai/thoth/ent/sqlcolumn"
	"github.com/thoth-ai/thoth/ent/sqltable"
	"github.com/thoth-ai/thoth/pkg/dbadapter"
	"github.com/thoth-ai/thoth/pkg/llm"
)

// commentGenerator produces LLM comments for catalog entities of one SqlDb.
// It composes the database adapter (for DDL and example values) with a plain
// LLM client; chunking keeps individual prompts bounded.
type commentGenerator struct {
	mgr       dbadapter.Manager
	client    llm.Client
	chunkSize int
}

// TriggerTableComments starts comment generation for the given tables. The
// tables are grouped by owning SqlDb and one job is spawned per group; the
// result maps SqlDb ID to task ID.
func (r *Runner) TriggerTableComments(ctx context.Context, tableIDs []string, modelName string) (map[string]string, error) {
	client, err := r.commentClient(ctx, modelName)
	if err != nil {
		return nil, err
	}

	groups, err := r.groupTablesByDb(ctx, tableIDs)
	if err != nil {
		return nil, err
	}

	tasks := make(map[string]string, len(groups))
	for dbID, tables := range groups {
		dbID, tables := dbID, tables
		tasks[dbID] = r.spawn(JobTableComment, func(ctx context.Context, taskID string) {
			r.runCommentJob(ctx, dbID, taskID, JobTableComment, func(ctx context.Context, gen *commentGenerator) (string, error) {
				return r.generateTableComments(ctx, gen, tables)
			}, client)
		})
	}
	return tasks, nil
}

// TriggerColumnComments starts comment generation for the given columns,
// grouped by owning SqlDb through the column's table edge.
func (r *Runner) TriggerColumnComments(ctx context.Context, columnIDs []string, modelName string) (map[string]string, error) {
	client, err := r.commentClient(ctx, modelName)
	if err != nil {
		return nil, err
	}

	groups, err := r.groupColumnsByDb(ctx, columnIDs)
	if err != nil {
		return nil, err
	}

	tasks := make(map[string]string, len(groups))
	for dbID, cols := range groups {
		dbID, cols := dbID, cols
		tasks[dbID] = r.spawn(JobColumnComment, func(ctx context.Context, taskID string) {
			r.runCommentJob(ctx, dbID, taskID, JobColumnComment, func(ctx context.Context, gen *commentGenerator) (string, error) {
				return r.generateColumnComments(ctx, gen, cols)
			}, client)
		})
	}
	return tasks, nil
}

func (r *Runner) commentClient(ctx context.Context, modelName string) (llm.Client, error) {
	spec, err := r.models.Get(modelName)
	if err != nil {
		return nil, err
	}
	return llm.New(ctx, spec)
}

func (r *Runner) runCommentJob(ctx context.Context, sqlDbID, taskID string, kind JobKind,
	fn func(ctx context.Context, gen *commentGenerator) (string, error), client llm.Client) {
	log := r.logger.With("job", kind, "sql_db_id", sqlDbID, "task_id", taskID)
	if err := r.markRunning(ctx, sqlDbID, kind, taskID); err != nil {
		log.Error("failed to mark job running", "error", err)
		return
	}

	db, err := r.loadSqlDb(ctx, sqlDbID)
	if err != nil {
		_ = r.markFinished(ctx, sqlDbID, kind, err.Error(), true)
		return
	}
	mgr, err := r.managerFor(db)
	if err != nil {
		_ = r.markFinished(ctx, sqlDbID, kind, err.Error(), true)
		return
	}

	gen := &commentGenerator{mgr: mgr, client: client, chunkSize: r.cfg.CommentChunkSize}
	summary, err := fn(ctx, gen)
	if err != nil {
		log.Error("comment generation failed", "error", err)
		_ = r.markFinished(ctx, sqlDbID, kind, err.Error(), true)
		return
	}
	log.Info("comment generation completed", "summary", summary)
	_ = r.markFinished(ctx, sqlDbID, kind, summary, false)
}

func (r *Runner) groupTablesByDb(ctx context.Context, tableIDs []string) (map[string][]*ent.SqlTable, error) {
	tables, err := r.client.SqlTable.Query().
		Where(sqltable.IDIn(tableIDs...)).
		WithSQLDb().
		All(ctx)
	if err != nil {
		return nil, err
	}
	groups := make(map[string][]*ent.SqlTable)
	for _, t := range tables {
		owner := t.Edges.SQLDb
		if owner == nil {
			continue
		}
		groups[owner.ID] = append(groups[owner.ID], t)
	}
	return groups, nil
}

func (r *Runner) groupColumnsByDb(ctx context.Context, columnIDs []string) (map[string][]*ent.SqlColumn, error) {
	cols, err := r.client.SqlColumn.Query().
		Where(sqlcolumn.IDIn(columnIDs...)).
		WithSQLTable(func(q *ent.SqlTableQuery) {
			q.WithSQLDb()
		}).
		All(ctx)
	if err != nil {
		return nil, err
	}
	groups := make(map[string][]*ent.SqlColumn)
	for _, c := range cols {
		table := c.Edges.SQLTable
		if table == nil || table.Edges.SQLDb == nil {
			continue
		}
		groups[table.Edges.SQLDb.ID] = append(groups[table.Edges.SQLDb.ID], c)
	}
	return groups, nil
}

// generateTableComments fills ai_description and generated_comment for each
// table, one LLM call per chunk.
func (r *Runner) generateTableComments(ctx context.Context, gen *commentGenerator, tables []*ent.SqlTable) (string, error) {
	done := 0
	for start := 0; start < len(tables); start += gen.chunkSize {
		end := min(start+gen.chunkSize, len(tables))
		chunk := tables[start:end]

		comments, err := gen.tableComments(ctx, chunk)
		if err != nil {
			return "", err
		}
		for _, t := range chunk {
			comment, ok := comments[t.Name]
			if !ok || comment == "" {
				continue
			}
			if err := t.Update().
				SetAiDescription(comment).
				SetGeneratedComment(comment).
				Exec(ctx); err != nil {
				return "", err
			}
			done++
		}
	}
	return fmt.Sprintf("commented %d/%d tables", done, len(tables)), nil
}

func (r *Runner) generateColumnComments(ctx context.Context, gen *commentGenerator, cols []*ent.SqlColumn) (string, error) {
	done := 0
	for start := 0; start < len(cols); start += gen.chunkSize {
		end := min(start+gen.chunkSize, len(cols))
		chunk := cols[start:end]

		comments, err := gen.columnComments(ctx, chunk)
		if err != nil {
			return "", err
		}
		for _, c := range chunk {
			key := columnKey(c)
			comment, ok := comments[key]
			if !ok || comment == "" {
				continue
			}
			if err := c.Update().
				SetAiDescription(comment).
				SetGeneratedComment(comment).
				Exec(ctx); err != nil {
				return "", err
			}
			done++
		}
	}
	return fmt.Sprintf("commented %d/%d columns", done, len(cols)), nil
}

// tableComments prompts for one chunk of tables and returns name->comment.
func (g *commentGenerator) tableComments(ctx context.Context, tables []*ent.SqlTable) (map[string]string, error) {
	var b strings.Builder
	b.WriteString("You are a database documentation assistant. For each table below, " +
		"write a one-sentence business description of what the table stores.\n" +
		"Respond with a JSON object mapping table name to description.\n\n")
	for _, t := range tables {
		ddl, err := g.mgr.TableSchema(ctx, t.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema of %s: %w", t.Name, err)
		}
		b.WriteString("### Table: " + t.Name + "\n")
		if ddl != "" {
			b.WriteString(ddl + "\n")
		}
		if t.Description != "" {
			b.WriteString("Existing note: " + t.Description + "\n")
		}
		b.WriteString("\n")
	}
	return g.call(ctx, b.String())
}

// columnComments prompts for one chunk of columns. Keys are
// "table.column" because column names repeat across tables.
func (g *commentGenerator) columnComments(ctx context.Context, cols []*ent.SqlColumn) (map[string]string, error) {
	var b strings.Builder
	b.WriteString("You are a database documentation assistant. For each column below, " +
		"write a one-sentence description of its meaning, using the sample values as hints.\n" +
		"Respond with a JSON object mapping \"table.column\" to description.\n\n")

	samples := map[string]map[string][]string{}
	for _, c := range cols {
		table := c.Edges.SQLTable
		if table == nil {
			continue
		}
		if _, ok := samples[table.Name]; !ok {
			data, err := g.mgr.ExampleData(ctx, table.Name, 3)
			if err != nil {
				data = nil
			}
			samples[table.Name] = data
		}
		b.WriteString(fmt.Sprintf("### Column: %s.%s (%s)\n", table.Name, c.OriginalName, c.DataFormat))
		if vals := samples[table.Name][c.OriginalName]; len(vals) > 0 {
			b.WriteString("Sample values: " + strings.Join(vals, ", ") + "\n")
		}
		if c.Description != "" {
			b.WriteString("Existing note: " + c.Description + "\n")
		}
		b.WriteString("\n")
	}
	return g.call(ctx, b.String())
}

func (g *commentGenerator) call(ctx context.Context, prompt string) (map[string]string, error) {
	res, err := g.client.Generate(ctx, &llm.GenerateRequest{
		Prompt:   prompt,
		JSONMode: true,
	})
	if err != nil {
		return nil, err
	}
	out := map[string]string{}
	raw := strings.TrimSpace(res.Content)
	if i := strings.Index(raw, "{"); i > 0 {
		raw = raw[i:]
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("comment response was not a JSON object: %w", err)
	}
	return out, nil
}

func columnKey(c *ent.SqlColumn) string {
	if t := c.Edges.SQLTable; t != nil {
		return t.Name + "." + c.OriginalName
	}
	return c.OriginalName
}
