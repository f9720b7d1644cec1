package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thoth-ai/thoth/pkg/config"
	"github.com/thoth-ai/thoth/pkg/pipeline"
)

// GenerateSQLRequest is the body of POST /generate-sql.
type GenerateSQLRequest struct {
	Question           string         `json:"question" binding:"required"`
	WorkspaceID        string         `json:"workspace_id" binding:"required"`
	FunctionalityLevel string         `json:"functionality_level"`
	Flags              pipeline.Flags `json:"flags"`
	Username           string         `json:"username"`
}

// GenerateSQL handles POST /generate-sql. The response is a text/plain
// stream of newline-delimited frames; pipeline failures are reported in-band
// and never as an HTTP error.
func (s *Server) GenerateSQL(c *gin.Context) {
	var req GenerateSQLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	level := config.FunctionalityLevel(req.FunctionalityLevel)
	if req.FunctionalityLevel == "" {
		level = config.LevelBasic
	}
	if !level.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "functionality_level must be Basic, Advanced or Expert"})
		return
	}

	res, err := s.cache.Get(c.Request.Context(), sessionKey(c, req.WorkspaceID), req.WorkspaceID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header("Cache-Control", "no-cache")
	c.Status(http.StatusOK)

	w := c.Writer
	emitter := pipeline.EmitterFunc(func(frame pipeline.Frame) error {
		if _, err := w.WriteString(frame.Encode() + "\n"); err != nil {
			return err
		}
		w.Flush()
		return nil
	})

	state := s.orchestrator.RunWithEmitter(c.Request.Context(), res, pipeline.Request{
		Question:           req.Question,
		WorkspaceID:        req.WorkspaceID,
		FunctionalityLevel: level,
		Flags:              req.Flags,
		Username:           req.Username,
		StartedAt:          time.Now(),
	}, emitter)

	// The feedback endpoint reads the last state back.
	s.cache.StoreState(req.WorkspaceID, state)
}
