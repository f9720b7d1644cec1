package jobs

import (
	"context"
	"fmt"

	"github.com/thoth-ai/thoth/pkg/lsh"
	"github.com/thoth-ai/thoth/pkg/progress"
)

// TriggerPreprocess starts the preprocessing job for a workspace: builds the
// MinHash LSH index over the target database's values and persists it where
// the pipeline loads it from.
func (r *Runner) TriggerPreprocess(ctx context.Context, workspaceID string) (string, error) {
	if _, err := r.workspaces.GetWorkspace(ctx, workspaceID); err != nil {
		return "", err
	}
	return r.spawn(JobPreprocess, func(ctx context.Context, taskID string) {
		r.runPreprocess(ctx, workspaceID)
	}), nil
}

func (r *Runner) runPreprocess(ctx context.Context, workspaceID string) {
	log := r.logger.With("job", JobPreprocess, "workspace_id", workspaceID)
	if err := r.tracker.Init(ctx, workspaceID, string(JobPreprocess), 0); err != nil {
		log.Warn("failed to init progress", "error", err)
	}

	if err := r.preprocess(ctx, workspaceID); err != nil {
		log.Error("preprocessing failed", "error", err)
		r.failProgress(ctx, workspaceID, JobPreprocess, err)
		return
	}

	if err := r.workspaces.TouchPreprocess(ctx, workspaceID); err != nil {
		log.Warn("failed to record preprocess timestamp", "error", err)
	}
	r.invalidate(workspaceID)

	_ = r.tracker.Update(ctx, workspaceID, string(JobPreprocess), progress.Entry{
		Status:   progress.StatusCompleted,
		Progress: 100,
	})
	log.Info("preprocessing completed")
}

func (r *Runner) preprocess(ctx context.Context, workspaceID string) error {
	ws, err := r.workspaces.GetWorkspace(ctx, workspaceID)
	if err != nil {
		return err
	}
	db, err := ws.QuerySQLDb().Only(ctx)
	if err != nil {
		return fmt.Errorf("workspace %s has no SQL database: %w", workspaceID, err)
	}
	mgr, err := r.managerFor(db)
	if err != nil {
		return err
	}

	index, err := lsh.Build(ctx, mgr, r.logger)
	if err != nil {
		return fmt.Errorf("LSH build failed: %w", err)
	}

	path := lsh.IndexPath(r.sys.DBRoot, db.Name)
	if err := index.Save(path); err != nil {
		return fmt.Errorf("failed to persist LSH index: %w", err)
	}
	r.logger.Info("LSH index persisted", "path", path, "entries", index.Len())
	return nil
}
