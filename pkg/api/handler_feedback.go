package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SaveFeedbackRequest is the body of POST /save-sql-feedback.
type SaveFeedbackRequest struct {
	WorkspaceID string `json:"workspace_id" binding:"required"`
}

// SaveFeedback handles POST /save-sql-feedback: the workspace's last
// generated SQL is persisted as a question/SQL example.
func (s *Server) SaveFeedback(c *gin.Context) {
	var req SaveFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.feedback.SaveFeedback(c.Request.Context(), req.WorkspaceID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}
