package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thoth-ai/thoth/pkg/dbadapter"
)

// ExecuteQueryRequest is the body of POST /execute-query.
type ExecuteQueryRequest struct {
	WorkspaceID string                `json:"workspace_id" binding:"required"`
	SQL         string                `json:"sql" binding:"required"`
	Page        int                   `json:"page"`
	PageSize    int                   `json:"page_size"`
	SortModel   []dbadapter.SortField `json:"sort_model"`
	FilterModel []dbadapter.Filter    `json:"filter_model"`
}

// ExecuteQueryResponse is the paginated result envelope.
type ExecuteQueryResponse struct {
	Data        []map[string]any `json:"data"`
	TotalRows   int64            `json:"total_rows"`
	Page        int              `json:"page"`
	PageSize    int              `json:"page_size"`
	HasNext     bool             `json:"has_next"`
	HasPrevious bool             `json:"has_previous"`
	Columns     []string         `json:"columns"`
	Error       string           `json:"error,omitempty"`
}

// ExecuteQuery handles POST /execute-query.
func (s *Server) ExecuteQuery(c *gin.Context) {
	var req ExecuteQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 50
	}

	res, err := s.cache.Get(c.Request.Context(), sessionKey(c, req.WorkspaceID), req.WorkspaceID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	page, err := res.DB.ExecutePaginated(c.Request.Context(), req.SQL, req.Page, req.PageSize, req.SortModel, req.FilterModel)
	if err != nil {
		// Execution errors are part of the envelope, not transport errors.
		c.JSON(http.StatusOK, ExecuteQueryResponse{
			Page:     req.Page,
			PageSize: req.PageSize,
			Error:    err.Error(),
		})
		return
	}

	offset := int64(req.Page-1) * int64(req.PageSize)
	c.JSON(http.StatusOK, ExecuteQueryResponse{
		Data:        page.Rows,
		TotalRows:   page.TotalRows,
		Page:        req.Page,
		PageSize:    req.PageSize,
		HasNext:     offset+int64(len(page.Rows)) < page.TotalRows,
		HasPrevious: req.Page > 1,
		Columns:     page.Columns,
		Error:       page.Error,
	})
}
