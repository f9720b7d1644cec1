package progress

import (
	"context"
	"sync"
)

// MemoryTracker is the in-process fallback used when Redis is not configured.
// Rows do not survive a restart; readers must tolerate ErrNotFound.
type MemoryTracker struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryTracker creates an empty in-memory tracker.
func NewMemoryTracker() *MemoryTracker {
	return &MemoryTracker{entries: make(map[string]Entry)}
}

// Init implements Tracker.
func (t *MemoryTracker) Init(_ context.Context, workspaceID, jobType string, total int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[key(workspaceID, jobType)] = Entry{Status: StatusRunning, Total: total}
	return nil
}

// Update implements Tracker.
func (t *MemoryTracker) Update(_ context.Context, workspaceID, jobType string, entry Entry) error {
	clamp(&entry)
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[key(workspaceID, jobType)] = entry
	return nil
}

// Get implements Tracker.
func (t *MemoryTracker) Get(_ context.Context, workspaceID, jobType string) (*Entry, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	entry, ok := t.entries[key(workspaceID, jobType)]
	if !ok {
		return nil, ErrNotFound
	}
	return &entry, nil
}

// Clear implements Tracker.
func (t *MemoryTracker) Clear(_ context.Context, workspaceID, jobType string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, key(workspaceID, jobType))
	return nil
}
