package progress

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(0, 0))
	assert.Equal(t, 0, Percent(5, 0))
	assert.Equal(t, 0, Percent(5, -1))
	assert.Equal(t, 50, Percent(1, 2))
	assert.Equal(t, 100, Percent(400, 400))
	assert.Equal(t, 33, Percent(1, 3))
}

func TestMemoryTracker_Lifecycle(t *testing.T) {
	ctx := context.Background()
	tracker := NewMemoryTracker()

	_, err := tracker.Get(ctx, "W1", "preprocess")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, tracker.Init(ctx, "W1", "preprocess", 40))
	entry, err := tracker.Get(ctx, "W1", "preprocess")
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, entry.Status)
	assert.Equal(t, 0, entry.Progress)
	assert.Equal(t, 40, entry.Total)

	require.NoError(t, tracker.Update(ctx, "W1", "preprocess", Entry{
		Status:    StatusCompleted,
		Progress:  100,
		Processed: 40,
		Total:     40,
		Message:   "index built",
	}))
	entry, err = tracker.Get(ctx, "W1", "preprocess")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, entry.Status)
	assert.Equal(t, "index built", entry.Message)

	require.NoError(t, tracker.Clear(ctx, "W1", "preprocess"))
	_, err = tracker.Get(ctx, "W1", "preprocess")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryTracker_KeysAreScoped(t *testing.T) {
	ctx := context.Background()
	tracker := NewMemoryTracker()
	require.NoError(t, tracker.Init(ctx, "W1", "upload_evidence", 10))
	require.NoError(t, tracker.Init(ctx, "W1", "upload_questions", 20))
	require.NoError(t, tracker.Init(ctx, "W2", "upload_evidence", 30))

	entry, err := tracker.Get(ctx, "W1", "upload_questions")
	require.NoError(t, err)
	assert.Equal(t, 20, entry.Total)

	entry, err = tracker.Get(ctx, "W2", "upload_evidence")
	require.NoError(t, err)
	assert.Equal(t, 30, entry.Total)
}

func TestUpdate_ClampsProgress(t *testing.T) {
	ctx := context.Background()
	tracker := NewMemoryTracker()

	require.NoError(t, tracker.Update(ctx, "W1", "preprocess", Entry{Status: StatusRunning, Progress: 250}))
	entry, err := tracker.Get(ctx, "W1", "preprocess")
	require.NoError(t, err)
	assert.Equal(t, 100, entry.Progress)

	require.NoError(t, tracker.Update(ctx, "W1", "preprocess", Entry{Status: StatusRunning, Progress: -5}))
	entry, err = tracker.Get(ctx, "W1", "preprocess")
	require.NoError(t, err)
	assert.Equal(t, 0, entry.Progress)
}

func TestRedisTracker(t *testing.T) {
	srv := miniredis.RunT(t)
	ctx := context.Background()

	tracker, err := NewRedisTracker(ctx, srv.Addr(), "")
	require.NoError(t, err)
	defer tracker.Close()

	_, err = tracker.Get(ctx, "W1", "preprocess")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, tracker.Init(ctx, "W1", "preprocess", 12))
	require.NoError(t, tracker.Update(ctx, "W1", "preprocess", Entry{
		Status:    StatusFailed,
		Progress:  120,
		Processed: 7,
		Total:     12,
		Error:     "manifest unreadable",
	}))

	entry, err := tracker.Get(ctx, "W1", "preprocess")
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, entry.Status)
	assert.Equal(t, 100, entry.Progress)
	assert.Equal(t, "manifest unreadable", entry.Error)

	assert.True(t, srv.Exists("thoth:progress:W1:preprocess"))

	require.NoError(t, tracker.Clear(ctx, "W1", "preprocess"))
	_, err = tracker.Get(ctx, "W1", "preprocess")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewRedisTracker_BadAddr(t *testing.T) {
	_, err := NewRedisTracker(context.Background(), "127.0.0.1:1", "")
	assert.Error(t, err)
}
