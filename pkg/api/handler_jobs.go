package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thoth-ai/thoth/pkg/jobs"
	"github.com/thoth-ai/thoth/pkg/progress"
)

// TriggerJobRequest is the body of POST /workspaces/:id/jobs/:type. The
// fields used depend on the job type.
type TriggerJobRequest struct {
	// SqlDbID targets the db_elements job. Defaults to the workspace's
	// attached database.
	SqlDbID string `json:"sql_db_id"`

	// TableIDs / ColumnIDs target the comment jobs.
	TableIDs  []string `json:"table_ids"`
	ColumnIDs []string `json:"column_ids"`

	// Model names the registry entry used by the comment generator.
	Model string `json:"model"`

	// ManifestPath locates the upload manifest for the upload jobs.
	ManifestPath string `json:"manifest_path"`
}

// TriggerJob handles POST /workspaces/:id/jobs/:type.
func (s *Server) TriggerJob(c *gin.Context) {
	workspaceID := c.Param("id")
	kind := jobs.JobKind(c.Param("type"))

	// Every field is optional; jobs without parameters accept an empty body.
	var req TriggerJobRequest
	_ = c.ShouldBindJSON(&req)

	ctx := c.Request.Context()
	switch kind {
	case jobs.JobDBElements:
		sqlDbID := req.SqlDbID
		if sqlDbID == "" {
			db, err := s.workspaceDb(c, workspaceID)
			if err != nil {
				abortWithServiceError(c, err)
				return
			}
			sqlDbID = db
		}
		taskID, err := s.runner.TriggerCreateElements(ctx, sqlDbID)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"task_id": taskID})

	case jobs.JobTableComment:
		tasks, err := s.runner.TriggerTableComments(ctx, req.TableIDs, req.Model)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"tasks": tasks})

	case jobs.JobColumnComment:
		tasks, err := s.runner.TriggerColumnComments(ctx, req.ColumnIDs, req.Model)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"tasks": tasks})

	case jobs.JobUploadEvidence:
		taskID, err := s.runner.TriggerUploadEvidence(ctx, workspaceID, req.ManifestPath)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"task_id": taskID})

	case jobs.JobUploadQuestions:
		taskID, err := s.runner.TriggerUploadQuestions(ctx, workspaceID, req.ManifestPath)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"task_id": taskID})

	case jobs.JobPreprocess:
		taskID, err := s.runner.TriggerPreprocess(ctx, workspaceID)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"task_id": taskID})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown job type"})
	}
}

// JobStatus handles GET /workspaces/:id/jobs/:type/status. Per-DB jobs read
// the status quintuple from the SqlDb row; workspace jobs read the progress
// tracker.
func (s *Server) JobStatus(c *gin.Context) {
	workspaceID := c.Param("id")
	kind := jobs.JobKind(c.Param("type"))

	switch kind {
	case jobs.JobDBElements, jobs.JobTableComment, jobs.JobColumnComment:
		sqlDbID, err := s.workspaceDb(c, workspaceID)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		db, err := s.runner.LoadSqlDb(c.Request.Context(), sqlDbID)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, jobs.StatusOf(db, kind))

	case jobs.JobUploadEvidence, jobs.JobUploadQuestions, jobs.JobPreprocess:
		entry, err := s.tracker.Get(c.Request.Context(), workspaceID, string(kind))
		if errors.Is(err, progress.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no progress recorded"})
			return
		}
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, entry)

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown job type"})
	}
}

// WorkspaceRuns handles GET /workspaces/:id/runs.
func (s *Server) WorkspaceRuns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	runs, err := s.logs.GetWorkspaceRuns(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs, "count": len(runs)})
}

// workspaceDb resolves the workspace's attached SqlDb ID.
func (s *Server) workspaceDb(c *gin.Context, workspaceID string) (string, error) {
	ws, err := s.workspaces.GetWorkspace(c.Request.Context(), workspaceID)
	if err != nil {
		return "", err
	}
	db, err := ws.QuerySQLDb().Only(c.Request.Context())
	if err != nil {
		return "", err
	}
	return db.ID, nil
}
