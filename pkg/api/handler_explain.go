package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thoth-ai/thoth/pkg/agents"
)

// ExplainSQLRequest is the body of POST /explain-sql.
type ExplainSQLRequest struct {
	WorkspaceID    string `json:"workspace_id" binding:"required"`
	Question       string `json:"question" binding:"required"`
	GeneratedSQL   string `json:"generated_sql" binding:"required"`
	DatabaseSchema string `json:"database_schema"`
	Evidence       string `json:"evidence"`
	ChainOfThought string `json:"chain_of_thought"`
	Language       string `json:"language"`
	Username       string `json:"username"`
}

// ExplainSQLResponse is the explanation envelope.
type ExplainSQLResponse struct {
	Explanation   string  `json:"explanation"`
	ExecutionTime float64 `json:"execution_time"`
	Success       bool    `json:"success"`
	Error         string  `json:"error,omitempty"`
	AgentUsed     string  `json:"agent_used,omitempty"`
}

// ExplainSQL handles POST /explain-sql.
func (s *Server) ExplainSQL(c *gin.Context) {
	var req ExplainSQLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := s.cache.Get(c.Request.Context(), sessionKey(c, req.WorkspaceID), req.WorkspaceID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	language := req.Language
	if language == "" {
		language = res.Workspace.Language
	}

	start := time.Now()
	explanation, err := res.Agents.Explain(c.Request.Context(), &agents.ExplainInput{
		Question:       req.Question,
		SQL:            req.GeneratedSQL,
		DatabaseSchema: req.DatabaseSchema,
		Evidence:       req.Evidence,
		ChainOfThought: req.ChainOfThought,
		Language:       language,
	})
	elapsed := time.Since(start).Seconds()
	if err != nil {
		c.JSON(http.StatusOK, ExplainSQLResponse{
			ExecutionTime: elapsed,
			Success:       false,
			Error:         err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, ExplainSQLResponse{
		Explanation:   explanation,
		ExecutionTime: elapsed,
		Success:       true,
		AgentUsed:     res.Agents.ModelFor(agents.SlotSQLExplainer),
	})
}
