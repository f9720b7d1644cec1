// Package jobs runs the background administrative tasks attached to a SqlDb
// or workspace: catalog element creation, LLM comment generation, vector
// document uploads, and preprocessing. Jobs run on detached workers and
// communicate strictly through persisted status fields and the progress
// tracker; the admin UI polls status endpoints.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/thoth-ai/thoth/ent"
	"github.com/thoth-ai/thoth/ent/sqldb"
	"github.com/thoth-ai/thoth/pkg/config"
	"github.com/thoth-ai/thoth/pkg/dbadapter"
	"github.com/thoth-ai/thoth/pkg/progress"
	"github.com/thoth-ai/thoth/pkg/services"
	"github.com/thoth-ai/thoth/pkg/vectorstore"
)

// JobKind identifies a job family. The first three carry per-DB status
// quintuples on the SqlDb row.
type JobKind string

const (
	JobDBElements      JobKind = "db_elements"
	JobTableComment    JobKind = "table_comment"
	JobColumnComment   JobKind = "column_comment"
	JobUploadEvidence  JobKind = "upload_evidence"
	JobUploadQuestions JobKind = "upload_questions"
	JobPreprocess      JobKind = "preprocess"
)

// CacheInvalidator drops warmed sessions after admin changes.
type CacheInvalidator interface {
	InvalidateWorkspace(workspaceID string)
}

// Runner spawns one detached worker per triggered job.
type Runner struct {
	client     *ent.Client
	cfg        *config.JobsConfig
	sys        *config.SystemConfig
	factory    *dbadapter.Factory
	models     *config.ModelRegistry
	tracker    progress.Tracker
	workspaces *services.WorkspaceService
	cache      CacheInvalidator
	logger     *slog.Logger

	wg sync.WaitGroup
}

// NewRunner creates a Runner. cache may be nil (no session invalidation).
func NewRunner(client *ent.Client, cfg *config.JobsConfig, sys *config.SystemConfig,
	factory *dbadapter.Factory, models *config.ModelRegistry, tracker progress.Tracker,
	workspaces *services.WorkspaceService, cache CacheInvalidator, logger *slog.Logger) *Runner {
	return &Runner{
		client:     client,
		cfg:        cfg,
		sys:        sys,
		factory:    factory,
		models:     models,
		tracker:    tracker,
		workspaces: workspaces,
		cache:      cache,
		logger:     logger.With("component", "jobs"),
	}
}

// Shutdown waits for every in-flight job to finish.
func (r *Runner) Shutdown() {
	r.wg.Wait()
}

// spawn runs fn on a detached worker with the configured job timeout. The
// returned task ID identifies the job in status fields and logs.
func (r *Runner) spawn(kind JobKind, fn func(ctx context.Context, taskID string)) string {
	taskID := uuid.New().String()
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				r.logger.Error("job panicked", "kind", kind, "task_id", taskID, "panic", rec)
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), r.cfg.JobTimeout)
		defer cancel()
		fn(ctx, taskID)
	}()
	return taskID
}

// managerFor opens the adapter for a SqlDb row.
func (r *Runner) managerFor(db *ent.SqlDb) (dbadapter.Manager, error) {
	return r.factory.Get("db/"+db.ID, dbadapter.ConnectionSpec{
		Dialect:  config.Dialect(db.Dialect),
		Name:     db.Name,
		Host:     db.Host,
		Port:     db.Port,
		Database: db.Database,
		Username: db.Username,
		Password: db.Password,
		Schema:   db.DbSchema,
	})
}

// LoadSqlDb fetches the SqlDb row; status endpoints read the per-DB job
// quintuples off it.
func (r *Runner) LoadSqlDb(ctx context.Context, sqlDbID string) (*ent.SqlDb, error) {
	return r.loadSqlDb(ctx, sqlDbID)
}

// loadSqlDb fetches the SqlDb row.
func (r *Runner) loadSqlDb(ctx context.Context, sqlDbID string) (*ent.SqlDb, error) {
	db, err := r.client.SqlDb.Query().
		Where(sqldb.IDEQ(sqlDbID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: sql db %s", services.ErrNotFound, sqlDbID)
	}
	return db, err
}

// storeForWorkspace opens the vector store of the workspace's database.
func (r *Runner) storeForWorkspace(ctx context.Context, workspaceID string) (*vectorstore.Store, *ent.SqlDb, error) {
	ws, err := r.workspaces.GetWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, nil, err
	}
	db, err := ws.QuerySQLDb().Only(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("workspace %s has no SQL database: %w", workspaceID, err)
	}
	vdb, err := db.QueryVectorDb().Only(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("workspace %s has no vector database: %w", workspaceID, err)
	}

	url := vdb.Host
	if !strings.Contains(url, "://") {
		url = "http://" + url
	}
	if vdb.Port > 0 && !strings.Contains(strings.TrimPrefix(url, "http://"), ":") {
		url = fmt.Sprintf("%s:%d", url, vdb.Port)
	}
	store, err := vectorstore.New(ctx, vectorstore.BackendConfig{
		Backend:    config.VectorBackend(vdb.Backend),
		URL:        url,
		APIKey:     vdb.APIKey,
		Collection: vdb.Collection,
	}, r.sys.Embedding, r.client, r.logger)
	if err != nil {
		return nil, nil, err
	}
	return store, db, nil
}

func (r *Runner) invalidate(workspaceID string) {
	if r.cache != nil {
		r.cache.InvalidateWorkspace(workspaceID)
	}
}
