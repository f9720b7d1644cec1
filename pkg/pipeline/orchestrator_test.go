package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoth-ai/thoth/pkg/config"
)

type recordingLogger struct {
	records []*RunRecord
}

func (l *recordingLogger) WriteRun(_ context.Context, rec *RunRecord) error {
	l.records = append(l.records, rec)
	return nil
}

func TestRun_CancelledBeforeStart(t *testing.T) {
	logs := &recordingLogger{}
	o := NewOrchestrator(config.DefaultPipelineConfig(), logs, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var frames []Frame
	emit := EmitterFunc(func(f Frame) error {
		frames = append(frames, f)
		return nil
	})

	state := o.RunWithEmitter(ctx, &Resources{}, Request{
		Question:           "How many schools?",
		WorkspaceID:        "W1",
		FunctionalityLevel: config.LevelBasic,
		StartedAt:          time.Now(),
	}, emit)
	require.NotNil(t, state)

	// Exactly one CANCELLED frame, after the initial log line, and no run
	// record is written for a cancelled run.
	var cancelled []string
	for _, f := range frames {
		if strings.HasPrefix(f.Encode(), "CANCELLED:") {
			cancelled = append(cancelled, f.Encode())
		}
	}
	require.Len(t, cancelled, 1)
	assert.Equal(t, "CANCELLED:Operation cancelled by user", cancelled[0])
	assert.Empty(t, logs.records)
}

func TestRun_DeadClientStopsEmission(t *testing.T) {
	o := NewOrchestrator(config.DefaultPipelineConfig(), nil, slog.Default())

	emitted := 0
	emit := EmitterFunc(func(Frame) error {
		emitted++
		return errors.New("client gone")
	})

	r := &run{o: o, state: NewState(Request{}), emit: emit}
	r.log("first")
	r.log("second")
	r.log("third")

	// The first failed emit flips the cancelled flag; nothing else is sent.
	assert.Equal(t, 1, emitted)
	assert.True(t, r.cancelled)
}

func TestNewState(t *testing.T) {
	state := NewState(Request{Question: "q", FunctionalityLevel: config.LevelAdvanced})
	assert.Equal(t, "q", state.Question)
	assert.Equal(t, -1, state.Execution.SelectedIndex)
	assert.Equal(t, config.LevelAdvanced, state.Level())
}
