package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/thoth-ai/thoth/pkg/services"
)

func TestAbortWithServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation error", services.NewValidationError("name", "required"), http.StatusBadRequest},
		{"not found", fmt.Errorf("%w: workspace x", services.ErrNotFound), http.StatusNotFound},
		{"already exists", fmt.Errorf("%w: workspace x", services.ErrAlreadyExists), http.StatusConflict},
		{"invalid input", fmt.Errorf("%w: bad manifest", services.ErrInvalidInput), http.StatusBadRequest},
		{"unexpected", assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			abortWithServiceError(c, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestSessionKeyPrefersHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	assert.Equal(t, "W1", sessionKey(c, "W1"))

	c.Request.Header.Set(sessionHeader, "sess-42")
	assert.Equal(t, "sess-42", sessionKey(c, "W1"))
}
