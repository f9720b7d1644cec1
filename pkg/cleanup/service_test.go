package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoth-ai/thoth/ent"
	"github.com/thoth-ai/thoth/ent/thothlog"
	"github.com/thoth-ai/thoth/pkg/config"
	"github.com/thoth-ai/thoth/pkg/services"
	testutil "github.com/thoth-ai/thoth/test/util"
)

func setupLogService(t *testing.T) (*ent.Client, *services.ThothLogService) {
	t.Helper()
	client := testutil.NewEntClient(t)
	return client, services.NewThothLogService(client)
}

func writeRun(t *testing.T, client *ent.Client, workspaceID string, age time.Duration) string {
	t.Helper()
	ctx := context.Background()

	id := uuid.New().String()
	err := client.ThothLog.Create().
		SetID(id).
		SetQuestion("how many orders shipped last month").
		SetSQL("SELECT COUNT(*) FROM orders").
		SetSQLStatus(thothlog.SQLStatusGOLD).
		SetStartedAt(time.Now().Add(-age)).
		SetCreatedAt(time.Now().Add(-age)).
		SetWorkspaceID(workspaceID).
		Exec(ctx)
	require.NoError(t, err)
	return id
}

func createWorkspace(t *testing.T, client *ent.Client) string {
	t.Helper()
	ws, err := client.Workspace.Create().
		SetID(uuid.New().String()).
		SetName("retention-test").
		SetDefaultModel("default").
		Save(context.Background())
	require.NoError(t, err)
	return ws.ID
}

func TestService_PurgesOldRunRecords(t *testing.T) {
	client, logService := setupLogService(t)
	ctx := context.Background()
	wsID := createWorkspace(t, client)

	oldID := writeRun(t, client, wsID, 400*24*time.Hour)
	recentID := writeRun(t, client, wsID, time.Hour)

	cfg := &config.RetentionConfig{
		LogRetentionDays: 365,
		CleanupInterval:  time.Hour,
	}
	svc := NewService(cfg, logService)
	svc.purgeOldRuns(ctx)

	_, err := client.ThothLog.Get(ctx, oldID)
	assert.True(t, ent.IsNotFound(err), "old record should be deleted")

	_, err = client.ThothLog.Get(ctx, recentID)
	assert.NoError(t, err, "recent record should be preserved")
}

func TestService_StartStop(t *testing.T) {
	_, logService := setupLogService(t)

	cfg := &config.RetentionConfig{
		LogRetentionDays: 365,
		CleanupInterval:  time.Hour,
	}
	svc := NewService(cfg, logService)
	svc.Start(context.Background())
	svc.Stop()
}
