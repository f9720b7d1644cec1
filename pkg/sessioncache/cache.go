// Package sessioncache keeps the warmed per-workspace resource bundles:
// agent pool, DB manager, vector store, cell value index, and introspected
// schema. It is process-local and not a consistency layer; callers handle
// stale resources and explicit invalidation on admin changes.
package sessioncache

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/thoth-ai/thoth/ent"
	"github.com/thoth-ai/thoth/ent/workspace"
	"github.com/thoth-ai/thoth/pkg/agents"
	"github.com/thoth-ai/thoth/pkg/apperrors"
	"github.com/thoth-ai/thoth/pkg/config"
	"github.com/thoth-ai/thoth/pkg/dbadapter"
	"github.com/thoth-ai/thoth/pkg/lsh"
	"github.com/thoth-ai/thoth/pkg/mschema"
	"github.com/thoth-ai/thoth/pkg/pipeline"
	"github.com/thoth-ai/thoth/pkg/vectorstore"
)

// session is one warmed entry.
type session struct {
	resources *pipeline.Resources
	warmedAt  time.Time
}

// Cache warms and serves per-workspace resources keyed by an explicit
// session ID or, absent one, the workspace ID.
type Cache struct {
	db      *ent.Client
	cfg     *config.Config
	factory *dbadapter.Factory
	logger  *slog.Logger

	mu         sync.RWMutex
	sessions   map[string]*session
	lastStates map[string]*pipeline.State
}

// New creates an empty cache.
func New(db *ent.Client, cfg *config.Config, factory *dbadapter.Factory, logger *slog.Logger) *Cache {
	return &Cache{
		db:         db,
		cfg:        cfg,
		factory:    factory,
		logger:     logger.With("component", "sessioncache"),
		sessions:   make(map[string]*session),
		lastStates: make(map[string]*pipeline.State),
	}
}

// Key resolves the cache key: the explicit session ID when present,
// otherwise the workspace ID.
func Key(sessionID, workspaceID string) string {
	if sessionID != "" {
		return sessionID
	}
	return workspaceID
}

// Get returns the warmed resources for the key, warming on miss.
func (c *Cache) Get(ctx context.Context, key, workspaceID string) (*pipeline.Resources, error) {
	c.mu.RLock()
	if s, ok := c.sessions[key]; ok {
		c.mu.RUnlock()
		return s.resources, nil
	}
	c.mu.RUnlock()

	res, err := c.warm(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.sessions[key] = &session{resources: res, warmedAt: time.Now()}
	c.mu.Unlock()
	return res, nil
}

// Invalidate drops one session entry.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, key)
}

// InvalidateWorkspace drops every session warmed for the workspace.
func (c *Cache) InvalidateWorkspace(workspaceID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, s := range c.sessions {
		if s.resources.Workspace.ID == workspaceID {
			delete(c.sessions, key)
		}
	}
	delete(c.lastStates, workspaceID)
}

// StoreState records the completed run state for the workspace; the feedback
// endpoint reads it back.
func (c *Cache) StoreState(workspaceID string, state *pipeline.State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastStates[workspaceID] = state
}

// LastState returns the last completed run state for the workspace, or nil.
func (c *Cache) LastState(workspaceID string) *pipeline.State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastStates[workspaceID]
}

// warm loads the workspace graph and opens every resource the pipeline needs.
func (c *Cache) warm(ctx context.Context, workspaceID string) (*pipeline.Resources, error) {
	ws, err := c.db.Workspace.Query().
		Where(workspace.IDEQ(workspaceID)).
		Only(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryConfiguration, apperrors.SeverityCritical,
			fmt.Sprintf("workspace %s not found", workspaceID), err)
	}

	sqlDB, err := ws.QuerySQLDb().Only(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryConfiguration, apperrors.SeverityCritical,
			fmt.Sprintf("workspace %s has no SQL database", workspaceID), err)
	}

	dialect := config.Dialect(sqlDB.Dialect)
	mgr, err := c.factory.Get(workspaceID+"/"+sqlDB.ID, dbadapter.ConnectionSpec{
		Dialect:  dialect,
		Name:     sqlDB.Name,
		Host:     sqlDB.Host,
		Port:     sqlDB.Port,
		Database: sqlDB.Database,
		Username: sqlDB.Username,
		Password: sqlDB.Password,
		Schema:   sqlDB.DbSchema,
	})
	if err != nil {
		return nil, err
	}

	pool, err := agents.NewPool(ctx, ws.DefaultModel, ws.AgentSlots, c.cfg.Models, c.logger)
	if err != nil {
		return nil, err
	}

	fullSchema, err := mschema.Build(ctx, mgr, sqlDB.Name)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryDatabase, apperrors.SeverityCritical,
			"schema introspection failed", err)
	}

	var store *vectorstore.Store
	if vdb, err := sqlDB.QueryVectorDb().Only(ctx); err == nil {
		store, err = vectorstore.New(ctx, vectorBackendConfig(vdb), c.cfg.System.Embedding, c.db, c.logger)
		if err != nil {
			return nil, err
		}
	} else if !ent.IsNotFound(err) {
		return nil, err
	}

	var index *lsh.Index
	if ix, err := lsh.Load(lsh.IndexPath(c.cfg.System.DBRoot, sqlDB.Name)); err == nil {
		index = ix
	} else {
		c.logger.Warn("cell value index unavailable",
			"workspace_id", workspaceID, "db_name", sqlDB.Name, "error", err)
	}

	c.logger.Info("workspace warmed",
		"workspace_id", workspaceID, "db_name", sqlDB.Name, "dialect", dialect)

	return &pipeline.Resources{
		Workspace: pipeline.WorkspaceInfo{
			ID:           ws.ID,
			DBName:       sqlDB.Name,
			Dialect:      dialect,
			Language:     ws.Language,
			DefaultModel: ws.DefaultModel,
		},
		Agents:     pool,
		DB:         mgr,
		Vector:     store,
		Index:      index,
		FullSchema: fullSchema,
	}, nil
}

// vectorBackendConfig maps a VectorDb row to a backend connection config.
func vectorBackendConfig(vdb *ent.VectorDb) vectorstore.BackendConfig {
	url := vdb.Host
	if !strings.Contains(url, "://") {
		url = "http://" + url
	}
	if vdb.Port > 0 && !strings.Contains(strings.TrimPrefix(url, "http://"), ":") {
		url = fmt.Sprintf("%s:%d", url, vdb.Port)
	}
	return vectorstore.BackendConfig{
		Backend:    config.VectorBackend(vdb.Backend),
		URL:        url,
		APIKey:     vdb.APIKey,
		Collection: vdb.Collection,
	}
}
