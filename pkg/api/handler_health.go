package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thoth-ai/thoth/pkg/database"
	"github.com/thoth-ai/thoth/pkg/progress"
)

// Health handles GET /health. The service is unhealthy when the application
// database does not answer, degraded when progress tracking is memory-only
// (job progress is lost on restart).
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"message":  "application database is unreachable",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	status := "healthy"
	message := "all systems operational"
	if _, memOnly := s.tracker.(*progress.MemoryTracker); memOnly {
		status = "degraded"
		message = "progress tracking is memory-only"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   status,
		"message":  message,
		"database": dbHealth,
	})
}
