package jobs

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoth-ai/thoth/ent"
	"github.com/thoth-ai/thoth/ent/sqldb"
	"github.com/thoth-ai/thoth/pkg/config"
	"github.com/thoth-ai/thoth/pkg/dbadapter"
	"github.com/thoth-ai/thoth/pkg/progress"
	"github.com/thoth-ai/thoth/pkg/services"
	testutil "github.com/thoth-ai/thoth/test/util"
)

func newTestRunner(t *testing.T) (*Runner, *ent.Client) {
	t.Helper()
	client := testutil.NewEntClient(t)
	runner := NewRunner(client,
		config.DefaultJobsConfig(),
		config.DefaultSystemConfig(),
		dbadapter.NewFactory(t.TempDir(), "dev"),
		config.NewModelRegistry(nil),
		progress.NewMemoryTracker(),
		services.NewWorkspaceService(client),
		nil,
		slog.Default())
	return runner, client
}

func newSqlDb(t *testing.T, client *ent.Client) *ent.SqlDb {
	t.Helper()
	db, err := client.SqlDb.Create().
		SetID(uuid.New().String()).
		SetName("california_schools").
		SetDialect(sqldb.DialectSQLite).
		Save(context.Background())
	require.NoError(t, err)
	return db
}

func TestMarkRunningThenFinished(t *testing.T) {
	runner, client := newTestRunner(t)
	ctx := context.Background()
	db := newSqlDb(t, client)

	require.NoError(t, runner.markRunning(ctx, db.ID, JobDBElements, "task-1"))

	row, err := runner.LoadSqlDb(ctx, db.ID)
	require.NoError(t, err)
	status := StatusOf(row, JobDBElements)
	assert.Equal(t, "RUNNING", status.Status)
	assert.Equal(t, "task-1", status.TaskID)
	assert.NotNil(t, status.StartTime)
	assert.Nil(t, status.EndTime)

	require.NoError(t, runner.markFinished(ctx, db.ID, JobDBElements, "tables=3 columns=12 relationships=2", false))

	row, err = runner.LoadSqlDb(ctx, db.ID)
	require.NoError(t, err)
	status = StatusOf(row, JobDBElements)
	assert.Equal(t, "COMPLETED", status.Status)
	assert.Equal(t, "tables=3 columns=12 relationships=2", status.Log)
	assert.NotNil(t, status.EndTime)
}

func TestMarkFinished_Failed(t *testing.T) {
	runner, client := newTestRunner(t)
	ctx := context.Background()
	db := newSqlDb(t, client)

	require.NoError(t, runner.markRunning(ctx, db.ID, JobTableComment, "task-2"))
	require.NoError(t, runner.markFinished(ctx, db.ID, JobTableComment, "model unavailable", true))

	row, err := runner.LoadSqlDb(ctx, db.ID)
	require.NoError(t, err)
	status := StatusOf(row, JobTableComment)
	assert.Equal(t, "FAILED", status.Status)
	assert.Equal(t, "model unavailable", status.Log)
}

func TestMarkFinished_SurvivesCancelledContext(t *testing.T) {
	runner, client := newTestRunner(t)
	db := newSqlDb(t, client)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, runner.markRunning(ctx, db.ID, JobColumnComment, "task-3"))
	cancel()

	require.NoError(t, runner.markFinished(ctx, db.ID, JobColumnComment, "done", false))

	row, err := runner.LoadSqlDb(context.Background(), db.ID)
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", StatusOf(row, JobColumnComment).Status)
}

func TestJobKindsAreIndependent(t *testing.T) {
	runner, client := newTestRunner(t)
	ctx := context.Background()
	db := newSqlDb(t, client)

	require.NoError(t, runner.markRunning(ctx, db.ID, JobDBElements, "task-a"))

	row, err := runner.LoadSqlDb(ctx, db.ID)
	require.NoError(t, err)
	assert.Equal(t, "RUNNING", StatusOf(row, JobDBElements).Status)
	assert.Equal(t, "IDLE", StatusOf(row, JobTableComment).Status)
	assert.Equal(t, "IDLE", StatusOf(row, JobColumnComment).Status)
}

func TestLoadSqlDb_NotFound(t *testing.T) {
	runner, _ := newTestRunner(t)
	_, err := runner.LoadSqlDb(context.Background(), "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "school_name", normalizeName("School Name"))
	assert.Equal(t, "county", normalizeName("COUNTY"))
	assert.Equal(t, "already_fine", normalizeName("already_fine"))
}
