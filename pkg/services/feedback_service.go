package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/thoth-ai/thoth/pkg/pipeline"
	"github.com/thoth-ai/thoth/pkg/sessioncache"
	"github.com/thoth-ai/thoth/pkg/vectorstore"
)

// FeedbackService persists user "Like" feedback: the last generated SQL of a
// workspace is stored as a question/SQL example in the vector store, where
// later runs retrieve it as a few-shot.
type FeedbackService struct {
	cache *sessioncache.Cache
}

// NewFeedbackService creates a new FeedbackService.
func NewFeedbackService(cache *sessioncache.Cache) *FeedbackService {
	return &FeedbackService{cache: cache}
}

// SaveFeedback stores the workspace's last completed run as a SqlDocument.
func (s *FeedbackService) SaveFeedback(ctx context.Context, workspaceID string) error {
	if workspaceID == "" {
		return NewValidationError("workspace_id", "required")
	}

	state := s.cache.LastState(workspaceID)
	if state == nil {
		return fmt.Errorf("%w: no cached run for workspace %s", ErrNotFound, workspaceID)
	}
	if state.Generation.LastSQL == "" || state.Execution.SQLStatus == pipeline.StatusFailed {
		return fmt.Errorf("%w: last run for workspace %s produced no SQL", ErrInvalidInput, workspaceID)
	}

	res, err := s.cache.Get(ctx, workspaceID, workspaceID)
	if err != nil {
		return err
	}
	if res.Vector == nil {
		return fmt.Errorf("%w: workspace %s has no vector database", ErrInvalidInput, workspaceID)
	}

	return res.Vector.AddSQLPairs(ctx, []vectorstore.SQLPairDocument{{
		Question: state.Question,
		SQL:      state.Generation.LastSQL,
		Evidence: strings.Join(state.Semantic.Evidence, "\n"),
	}})
}
