// Package progress persists background job progress so status endpoints can
// poll it across requests (and across restarts when Redis backs it).
package progress

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned when no progress row exists for the key.
var ErrNotFound = errors.New("progress entry not found")

// Status is the lifecycle phase of a tracked job.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Entry is one progress row.
type Entry struct {
	Status    Status `json:"status"`
	Progress  int    `json:"progress"`
	Processed int    `json:"processed"`
	Total     int    `json:"total"`
	Error     string `json:"error,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Tracker is the progress channel between job workers and status endpoints.
type Tracker interface {
	// Init creates a zeroed running entry.
	Init(ctx context.Context, workspaceID, jobType string, total int) error

	// Update overwrites the entry. Progress is clamped to [0, 100].
	Update(ctx context.Context, workspaceID, jobType string, entry Entry) error

	// Get reads the entry, or ErrNotFound.
	Get(ctx context.Context, workspaceID, jobType string) (*Entry, error)

	// Clear removes the entry.
	Clear(ctx context.Context, workspaceID, jobType string) error
}

func key(workspaceID, jobType string) string {
	return fmt.Sprintf("thoth:progress:%s:%s", workspaceID, jobType)
}

func clamp(entry *Entry) {
	if entry.Progress < 0 {
		entry.Progress = 0
	}
	if entry.Progress > 100 {
		entry.Progress = 100
	}
}

// Percent computes the progress percentage for processed/total.
func Percent(processed, total int) int {
	if total <= 0 {
		return 0
	}
	return processed * 100 / total
}
