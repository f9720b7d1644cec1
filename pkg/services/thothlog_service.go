package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/thoth-ai/thoth/ent"
	"github.com/thoth-ai/thoth/ent/thothlog"
	"github.com/thoth-ai/thoth/ent/workspace"
	"github.com/thoth-ai/thoth/pkg/pipeline"
)

// ThothLogService persists pipeline run records. Rows are immutable.
type ThothLogService struct {
	client *ent.Client
}

// NewThothLogService creates a new ThothLogService.
func NewThothLogService(client *ent.Client) *ThothLogService {
	return &ThothLogService{client: client}
}

// WriteRun implements pipeline.RunLogger.
func (s *ThothLogService) WriteRun(ctx context.Context, rec *pipeline.RunRecord) error {
	if rec.WorkspaceID == "" {
		return NewValidationError("workspace_id", "required")
	}
	if rec.Question == "" {
		return NewValidationError("question", "required")
	}

	// Run records must land even when the request context is gone.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	var passRate float64
	for _, r := range rec.PassRates {
		if r > passRate {
			passRate = r
		}
	}

	_, err := s.client.ThothLog.Create().
		SetID(uuid.New().String()).
		SetQuestion(rec.Question).
		SetSQL(rec.SQL).
		SetUsername(rec.Username).
		SetAgentName(rec.Agent).
		SetSQLStatus(thothlog.SQLStatus(rec.SQLStatus)).
		SetEvaluationCase(string(rec.Case)).
		SetPassRate(passRate).
		SetPassRates(rec.PassRates).
		SetTestsUsed(rec.TestsUsed).
		SetEvidenceUsed(rec.EvidenceUsed).
		SetStartedAt(rec.StartedAt).
		SetDurationMs(rec.Duration.Milliseconds()).
		SetWorkspaceID(rec.WorkspaceID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to write run record: %w", err)
	}
	return nil
}

// GetWorkspaceRuns lists run records for a workspace, newest first.
func (s *ThothLogService) GetWorkspaceRuns(ctx context.Context, workspaceID string, limit int) ([]*ent.ThothLog, error) {
	if limit <= 0 {
		limit = 50
	}
	logs, err := s.client.ThothLog.Query().
		Where(thothlog.HasWorkspaceWith(workspace.IDEQ(workspaceID))).
		Order(ent.Desc(thothlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get run records: %w", err)
	}
	return logs, nil
}

// PurgeOldRuns deletes run records older than retentionDays. Returns the
// number of deleted rows.
func (s *ThothLogService) PurgeOldRuns(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, NewValidationError("retention_days", "must be positive")
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	count, err := s.client.ThothLog.Delete().
		Where(thothlog.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge run records: %w", err)
	}
	return count, nil
}
