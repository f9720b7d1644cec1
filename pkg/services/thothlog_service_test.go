package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoth-ai/thoth/pkg/pipeline"
	testutil "github.com/thoth-ai/thoth/test/util"
)

func newLogFixture(t *testing.T) (*ThothLogService, string) {
	t.Helper()
	client := testutil.NewEntClient(t)
	ws, err := NewWorkspaceService(client).CreateWorkspace(context.Background(),
		CreateWorkspaceRequest{Name: "w", DefaultModel: "m"})
	require.NoError(t, err)
	return NewThothLogService(client), ws.ID
}

func TestWriteRun(t *testing.T) {
	svc, wsID := newLogFixture(t)
	ctx := context.Background()

	rec := &pipeline.RunRecord{
		Question:    "How many schools are in Alameda county?",
		SQL:         "SELECT COUNT(*) FROM schools WHERE county = 'Alameda'",
		WorkspaceID: wsID,
		Username:    "alice",
		StartedAt:   time.Now().Add(-2 * time.Second),
		Duration:    1500 * time.Millisecond,
		Agent:       "sql_generator",
		SQLStatus:   pipeline.StatusGold,
		Case:        "A",
		PassRates:   []float64{0.5, 1.0, 0.75},
		TestsUsed:   []string{"row count is positive"},
	}
	require.NoError(t, svc.WriteRun(ctx, rec))

	runs, err := svc.GetWorkspaceRuns(ctx, wsID, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	row := runs[0]
	assert.Equal(t, rec.Question, row.Question)
	assert.Equal(t, rec.SQL, row.SQL)
	assert.Equal(t, "GOLD", string(row.SQLStatus))
	assert.Equal(t, "A", row.EvaluationCase)
	// The stored pass rate is the best rate across candidates.
	assert.Equal(t, 1.0, row.PassRate)
	assert.Equal(t, int64(1500), row.DurationMs)
}

func TestWriteRun_Validation(t *testing.T) {
	svc, wsID := newLogFixture(t)
	ctx := context.Background()

	err := svc.WriteRun(ctx, &pipeline.RunRecord{Question: "q", SQLStatus: pipeline.StatusFailed})
	assert.True(t, IsValidationError(err))

	err = svc.WriteRun(ctx, &pipeline.RunRecord{WorkspaceID: wsID, SQLStatus: pipeline.StatusFailed})
	assert.True(t, IsValidationError(err))
}

func TestWriteRun_SurvivesCancelledContext(t *testing.T) {
	svc, wsID := newLogFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.WriteRun(ctx, &pipeline.RunRecord{
		Question:    "q",
		SQL:         "ERROR: generation failed",
		WorkspaceID: wsID,
		StartedAt:   time.Now(),
		SQLStatus:   pipeline.StatusFailed,
	})
	require.NoError(t, err)

	runs, err := svc.GetWorkspaceRuns(context.Background(), wsID, 10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestGetWorkspaceRuns_NewestFirstAndLimited(t *testing.T) {
	svc, wsID := newLogFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.WriteRun(ctx, &pipeline.RunRecord{
			Question:    "q",
			SQL:         "SELECT 1",
			WorkspaceID: wsID,
			StartedAt:   time.Now(),
			SQLStatus:   pipeline.StatusGold,
		}))
	}

	runs, err := svc.GetWorkspaceRuns(ctx, wsID, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	// A non-positive limit falls back to the default.
	runs, err = svc.GetWorkspaceRuns(ctx, wsID, 0)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestPurgeOldRuns_RejectsNonPositiveRetention(t *testing.T) {
	svc, _ := newLogFixture(t)
	_, err := svc.PurgeOldRuns(context.Background(), 0)
	assert.True(t, IsValidationError(err))
}
