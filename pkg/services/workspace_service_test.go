package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoth-ai/thoth/ent"
	"github.com/thoth-ai/thoth/ent/sqldb"
	testutil "github.com/thoth-ai/thoth/test/util"
)

func createSqlDb(t *testing.T, client *ent.Client, name string) *ent.SqlDb {
	t.Helper()
	db, err := client.SqlDb.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetDialect(sqldb.DialectSQLite).
		Save(context.Background())
	require.NoError(t, err)
	return db
}

func createVectorDb(t *testing.T, client *ent.Client, collection string) *ent.VectorDb {
	t.Helper()
	vdb, err := client.VectorDb.Create().
		SetID(uuid.New().String()).
		SetBackend("Chroma").
		SetHost("localhost").
		SetPort(8000).
		SetCollection(collection).
		Save(context.Background())
	require.NoError(t, err)
	return vdb
}

func TestCreateWorkspace(t *testing.T) {
	client := testutil.NewEntClient(t)
	svc := NewWorkspaceService(client)
	ctx := context.Background()

	ws, err := svc.CreateWorkspace(ctx, CreateWorkspaceRequest{
		Name:         "analytics",
		DefaultModel: "default",
		AgentSlots:   map[string]string{"sql_generator": "fast"},
		Users:        []string{"alice"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ws.ID)
	assert.Equal(t, "analytics", ws.Name)
	assert.Equal(t, "English", ws.Language)
	assert.Equal(t, "fast", ws.AgentSlots["sql_generator"])
}

func TestCreateWorkspace_Validation(t *testing.T) {
	client := testutil.NewEntClient(t)
	svc := NewWorkspaceService(client)
	ctx := context.Background()

	_, err := svc.CreateWorkspace(ctx, CreateWorkspaceRequest{DefaultModel: "m"})
	assert.True(t, IsValidationError(err))

	_, err = svc.CreateWorkspace(ctx, CreateWorkspaceRequest{Name: "w"})
	assert.True(t, IsValidationError(err))
}

func TestCreateWorkspace_DuplicateName(t *testing.T) {
	client := testutil.NewEntClient(t)
	svc := NewWorkspaceService(client)
	ctx := context.Background()

	_, err := svc.CreateWorkspace(ctx, CreateWorkspaceRequest{Name: "dup", DefaultModel: "m"})
	require.NoError(t, err)

	_, err = svc.CreateWorkspace(ctx, CreateWorkspaceRequest{Name: "dup", DefaultModel: "m"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestGetWorkspace_NotFound(t *testing.T) {
	client := testutil.NewEntClient(t)
	svc := NewWorkspaceService(client)

	_, err := svc.GetWorkspace(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListWorkspaces_OrderedByName(t *testing.T) {
	client := testutil.NewEntClient(t)
	svc := NewWorkspaceService(client)
	ctx := context.Background()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := svc.CreateWorkspace(ctx, CreateWorkspaceRequest{Name: name, DefaultModel: "m"})
		require.NoError(t, err)
	}

	all, err := svc.ListWorkspaces(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "alpha", all[0].Name)
	assert.Equal(t, "mid", all[1].Name)
	assert.Equal(t, "zeta", all[2].Name)
}

func TestAttachSqlDb(t *testing.T) {
	client := testutil.NewEntClient(t)
	svc := NewWorkspaceService(client)
	ctx := context.Background()

	ws, err := svc.CreateWorkspace(ctx, CreateWorkspaceRequest{Name: "w", DefaultModel: "m"})
	require.NoError(t, err)
	db := createSqlDb(t, client, "california_schools")

	require.NoError(t, svc.AttachSqlDb(ctx, ws.ID, db.ID))

	attached, err := client.Workspace.GetX(ctx, ws.ID).QuerySQLDb().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, db.ID, attached.ID)
}

func TestAttachSqlDb_StealsVectorDbOwnership(t *testing.T) {
	client := testutil.NewEntClient(t)
	svc := NewWorkspaceService(client)
	ctx := context.Background()

	vdb := createVectorDb(t, client, "shared")
	oldOwner := createSqlDb(t, client, "old")
	require.NoError(t, oldOwner.Update().SetVectorDb(vdb).Exec(ctx))

	newOwner := createSqlDb(t, client, "new")
	require.NoError(t, newOwner.Update().SetVectorDb(vdb).Exec(ctx))

	ws, err := svc.CreateWorkspace(ctx, CreateWorkspaceRequest{Name: "w", DefaultModel: "m"})
	require.NoError(t, err)
	require.NoError(t, svc.AttachSqlDb(ctx, ws.ID, newOwner.ID))

	// The previous owner no longer references the vector db.
	prev, err := client.SqlDb.Get(ctx, oldOwner.ID)
	require.NoError(t, err)
	linked, err := prev.QueryVectorDb().Exist(ctx)
	require.NoError(t, err)
	assert.False(t, linked)

	kept, err := client.SqlDb.Get(ctx, newOwner.ID)
	require.NoError(t, err)
	stillLinked, err := kept.QueryVectorDb().Exist(ctx)
	require.NoError(t, err)
	assert.True(t, stillLinked)
}

func TestAttachSqlDb_MissingEntities(t *testing.T) {
	client := testutil.NewEntClient(t)
	svc := NewWorkspaceService(client)
	ctx := context.Background()

	err := svc.AttachSqlDb(ctx, "ws", "missing-db")
	assert.ErrorIs(t, err, ErrNotFound)

	db := createSqlDb(t, client, "d")
	err = svc.AttachSqlDb(ctx, "missing-ws", db.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTouchTimestamps(t *testing.T) {
	client := testutil.NewEntClient(t)
	svc := NewWorkspaceService(client)
	ctx := context.Background()

	ws, err := svc.CreateWorkspace(ctx, CreateWorkspaceRequest{Name: "w", DefaultModel: "m"})
	require.NoError(t, err)
	assert.Nil(t, ws.LastPreprocess)

	require.NoError(t, svc.TouchPreprocess(ctx, ws.ID))
	require.NoError(t, svc.TouchEvidenceLoad(ctx, ws.ID))
	require.NoError(t, svc.TouchSQLLoad(ctx, ws.ID))

	got, err := svc.GetWorkspace(ctx, ws.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.LastPreprocess)
	assert.NotNil(t, got.LastEvidenceLoad)
	assert.NotNil(t, got.LastSQLLoaded)

	assert.ErrorIs(t, svc.TouchPreprocess(ctx, "missing"), ErrNotFound)
}
