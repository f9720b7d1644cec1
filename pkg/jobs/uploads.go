package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/thoth-ai/thoth/pkg/progress"
	"github.com/thoth-ai/thoth/pkg/vectorstore"
)

// manifestEntry is one row of an upload manifest. Evidence manifests carry
// db_id and evidence; question manifests carry db_id, question, sql and an
// optional evidence note. Rows whose db_id differs from the workspace's
// database name are skipped.
type manifestEntry struct {
	DBID     string `json:"db_id"`
	Evidence string `json:"evidence,omitempty"`
	Question string `json:"question,omitempty"`
	SQL      string `json:"sql,omitempty"`
}

// TriggerUploadEvidence starts the evidence upload job for a workspace and
// returns its task ID.
func (r *Runner) TriggerUploadEvidence(ctx context.Context, workspaceID, manifestPath string) (string, error) {
	entries, err := readManifest(manifestPath)
	if err != nil {
		return "", err
	}
	if _, err := r.workspaces.GetWorkspace(ctx, workspaceID); err != nil {
		return "", err
	}
	return r.spawn(JobUploadEvidence, func(ctx context.Context, taskID string) {
		r.runUpload(ctx, workspaceID, JobUploadEvidence, entries)
	}), nil
}

// TriggerUploadQuestions starts the question corpus upload job.
func (r *Runner) TriggerUploadQuestions(ctx context.Context, workspaceID, manifestPath string) (string, error) {
	entries, err := readManifest(manifestPath)
	if err != nil {
		return "", err
	}
	if _, err := r.workspaces.GetWorkspace(ctx, workspaceID); err != nil {
		return "", err
	}
	return r.spawn(JobUploadQuestions, func(ctx context.Context, taskID string) {
		r.runUpload(ctx, workspaceID, JobUploadQuestions, entries)
	}), nil
}

func readManifest(path string) ([]manifestEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var entries []manifestEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("manifest is not a JSON array: %w", err)
	}
	return entries, nil
}

func (r *Runner) runUpload(ctx context.Context, workspaceID string, kind JobKind, entries []manifestEntry) {
	log := r.logger.With("job", kind, "workspace_id", workspaceID)

	store, db, err := r.storeForWorkspace(ctx, workspaceID)
	if err != nil {
		log.Error("upload setup failed", "error", err)
		r.failProgress(ctx, workspaceID, kind, err)
		return
	}

	kept := make([]manifestEntry, 0, len(entries))
	for _, e := range entries {
		if e.DBID == db.Name {
			kept = append(kept, e)
		}
	}

	if err := r.tracker.Init(ctx, workspaceID, string(kind), len(kept)); err != nil {
		log.Warn("failed to init progress", "error", err)
	}

	var uploadErr error
	switch kind {
	case JobUploadEvidence:
		uploadErr = r.uploadEvidence(ctx, workspaceID, store, kept)
	case JobUploadQuestions:
		uploadErr = r.uploadQuestions(ctx, workspaceID, store, kept)
	}
	if uploadErr != nil {
		log.Error("upload failed", "error", uploadErr)
		r.failProgress(ctx, workspaceID, kind, uploadErr)
		return
	}

	touch := r.workspaces.TouchEvidenceLoad
	if kind == JobUploadQuestions {
		touch = r.workspaces.TouchSQLLoad
	}
	if err := touch(ctx, workspaceID); err != nil {
		log.Warn("failed to record upload timestamp", "error", err)
	}
	r.invalidate(workspaceID)

	_ = r.tracker.Update(ctx, workspaceID, string(kind), progress.Entry{
		Status:    progress.StatusCompleted,
		Progress:  100,
		Processed: len(kept),
		Total:     len(kept),
		Message:   fmt.Sprintf("uploaded %d documents", len(kept)),
	})
	log.Info("upload completed", "documents", len(kept))
}

// uploadEvidence wipes the evidence family and re-adds it in batches,
// reporting progress per batch.
func (r *Runner) uploadEvidence(ctx context.Context, workspaceID string, store *vectorstore.Store, entries []manifestEntry) error {
	if err := store.ReplaceEvidence(ctx, nil); err != nil {
		return err
	}
	for start := 0; start < len(entries); start += r.cfg.UploadBatchSize {
		end := min(start+r.cfg.UploadBatchSize, len(entries))
		batch := make([]vectorstore.EvidenceDocument, 0, end-start)
		for _, e := range entries[start:end] {
			if e.Evidence == "" {
				continue
			}
			batch = append(batch, vectorstore.EvidenceDocument{Evidence: e.Evidence})
		}
		if err := store.AddEvidence(ctx, batch); err != nil {
			return err
		}
		r.reportProgress(ctx, workspaceID, JobUploadEvidence, end, len(entries))
	}
	return nil
}

func (r *Runner) uploadQuestions(ctx context.Context, workspaceID string, store *vectorstore.Store, entries []manifestEntry) error {
	if err := store.ReplaceSQLPairs(ctx, nil); err != nil {
		return err
	}
	for start := 0; start < len(entries); start += r.cfg.UploadBatchSize {
		end := min(start+r.cfg.UploadBatchSize, len(entries))
		batch := make([]vectorstore.SQLPairDocument, 0, end-start)
		for _, e := range entries[start:end] {
			if e.Question == "" || e.SQL == "" {
				continue
			}
			batch = append(batch, vectorstore.SQLPairDocument{
				Question: e.Question,
				SQL:      e.SQL,
				Evidence: e.Evidence,
			})
		}
		if err := store.AddSQLPairs(ctx, batch); err != nil {
			return err
		}
		r.reportProgress(ctx, workspaceID, JobUploadQuestions, end, len(entries))
	}
	return nil
}

func (r *Runner) reportProgress(ctx context.Context, workspaceID string, kind JobKind, processed, total int) {
	_ = r.tracker.Update(ctx, workspaceID, string(kind), progress.Entry{
		Status:    progress.StatusRunning,
		Progress:  progress.Percent(processed, total),
		Processed: processed,
		Total:     total,
	})
}

func (r *Runner) failProgress(ctx context.Context, workspaceID string, kind JobKind, err error) {
	_ = r.tracker.Update(ctx, workspaceID, string(kind), progress.Entry{
		Status: progress.StatusFailed,
		Error:  err.Error(),
	})
}
