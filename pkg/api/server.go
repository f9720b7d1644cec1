// Package api exposes the HTTP surface of the service: the streaming SQL
// generation endpoint, query execution, explanation, feedback, background
// job triggers and health.
package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/thoth-ai/thoth/pkg/config"
	"github.com/thoth-ai/thoth/pkg/database"
	"github.com/thoth-ai/thoth/pkg/jobs"
	"github.com/thoth-ai/thoth/pkg/pipeline"
	"github.com/thoth-ai/thoth/pkg/progress"
	"github.com/thoth-ai/thoth/pkg/services"
	"github.com/thoth-ai/thoth/pkg/sessioncache"
)

// sessionHeader optionally scopes the warmed resource cache to a client
// session instead of the whole workspace.
const sessionHeader = "X-Session-Id"

// Server wires the HTTP handlers to the application services.
type Server struct {
	cfg          *config.Config
	db           *database.Client
	cache        *sessioncache.Cache
	orchestrator *pipeline.Orchestrator
	runner       *jobs.Runner
	tracker      progress.Tracker
	workspaces   *services.WorkspaceService
	feedback     *services.FeedbackService
	logs         *services.ThothLogService
	logger       *slog.Logger
}

// NewServer creates the API server.
func NewServer(cfg *config.Config, db *database.Client, cache *sessioncache.Cache,
	orchestrator *pipeline.Orchestrator, runner *jobs.Runner, tracker progress.Tracker,
	workspaces *services.WorkspaceService, feedback *services.FeedbackService,
	logs *services.ThothLogService, logger *slog.Logger) *Server {
	return &Server{
		cfg:          cfg,
		db:           db,
		cache:        cache,
		orchestrator: orchestrator,
		runner:       runner,
		tracker:      tracker,
		workspaces:   workspaces,
		feedback:     feedback,
		logs:         logs,
		logger:       logger.With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(s.logger))

	v1 := r.Group("/api/v1")
	{
		v1.POST("/generate-sql", s.GenerateSQL)
		v1.POST("/execute-query", s.ExecuteQuery)
		v1.POST("/explain-sql", s.ExplainSQL)
		v1.POST("/save-sql-feedback", s.SaveFeedback)
		v1.GET("/health", s.Health)

		v1.POST("/workspaces/:id/jobs/:type", s.TriggerJob)
		v1.GET("/workspaces/:id/jobs/:type/status", s.JobStatus)
		v1.GET("/workspaces/:id/runs", s.WorkspaceRuns)
	}
	return r
}

// sessionKey resolves the cache key for a request: the session header when
// present, the workspace ID otherwise.
func sessionKey(c *gin.Context, workspaceID string) string {
	if sid := c.GetHeader(sessionHeader); sid != "" {
		return sessioncache.Key(sid, workspaceID)
	}
	return sessioncache.Key("", workspaceID)
}

// requestLogger logs one line per request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
		)
	}
}
