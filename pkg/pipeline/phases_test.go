package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoth-ai/thoth/pkg/agents"
	"github.com/thoth-ai/thoth/pkg/config"
	"github.com/thoth-ai/thoth/pkg/dbadapter"
	"github.com/thoth-ai/thoth/pkg/llm"
	"github.com/thoth-ai/thoth/pkg/mschema"
)

// fakeClient scripts the LLM responses of one agent slot.
type fakeClient struct {
	generate func(req *llm.GenerateRequest) (string, error)
}

func (f *fakeClient) Generate(_ context.Context, req *llm.GenerateRequest) (*llm.GenerateResult, error) {
	content, err := f.generate(req)
	if err != nil {
		return nil, err
	}
	return &llm.GenerateResult{Content: content, Model: "fake"}, nil
}

func (f *fakeClient) CountTokens(text string) int { return len(text) / 4 }

func (f *fakeClient) ModelID() string { return "fake" }

// vettingManager records every statement handed to ExecutePaginated and
// rejects the ones the per-test reject function flags.
type vettingManager struct {
	mu       sync.Mutex
	executed []string
	reject   func(sqlText string) error
}

func (m *vettingManager) Dialect() config.Dialect { return config.DialectSQLite }

func (m *vettingManager) Tables(context.Context) ([]dbadapter.TableInfo, error) { return nil, nil }

func (m *vettingManager) Columns(context.Context, string) ([]dbadapter.ColumnInfo, error) {
	return nil, nil
}

func (m *vettingManager) ForeignKeys(context.Context) ([]dbadapter.ForeignKey, error) {
	return nil, nil
}

func (m *vettingManager) TableSchema(context.Context, string) (string, error) { return "", nil }

func (m *vettingManager) ExampleData(context.Context, string, int) (map[string][]string, error) {
	return nil, nil
}

func (m *vettingManager) ExecutePaginated(_ context.Context, sqlText string, _, _ int, _ []dbadapter.SortField, _ []dbadapter.Filter) (*dbadapter.Page, error) {
	m.mu.Lock()
	m.executed = append(m.executed, sqlText)
	m.mu.Unlock()
	if err := m.reject(sqlText); err != nil {
		return &dbadapter.Page{Error: err.Error()}, err
	}
	return &dbadapter.Page{TotalRows: 1}, nil
}

func (m *vettingManager) HealthCheck(context.Context) bool { return true }

func (m *vettingManager) Close() error { return nil }

func (m *vettingManager) executions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.executed...)
}

func candidateJSON(sql string) string {
	return fmt.Sprintf(`{"thinking": "t", "sql": %q, "success": true}`, sql)
}

func newGenerateRun(t *testing.T, gen *fakeClient, mgr dbadapter.Manager, cfg *config.PipelineConfig, logs RunLogger) (*run, *[]Frame) {
	t.Helper()
	pool := agents.NewStaticPool(
		map[agents.Slot]llm.Client{agents.SlotSQLBasic: gen},
		map[agents.Slot]string{agents.SlotSQLBasic: "basic-model"},
		slog.Default(),
	)
	frames := &[]Frame{}
	r := &run{
		o: NewOrchestrator(cfg, logs, slog.Default()),
		res: &Resources{
			Workspace: WorkspaceInfo{ID: "W1", DBName: "california_schools", Dialect: config.DialectSQLite},
			Agents:    pool,
			DB:        mgr,
		},
		state: NewState(Request{
			Question:           "How many schools?",
			WorkspaceID:        "W1",
			FunctionalityLevel: config.LevelBasic,
			StartedAt:          time.Now(),
		}),
		emit: EmitterFunc(func(f Frame) error {
			*frames = append(*frames, f)
			return nil
		}),
		usedSchema: &mschema.Schema{DBName: "california_schools", Dialect: config.DialectSQLite},
	}
	return r, frames
}

func TestPhaseGenerate_ResubmitsRejectedCandidate(t *testing.T) {
	cfg := config.DefaultPipelineConfig()
	cfg.NumSQLCandidates = 1
	cfg.MaxParallelSQLs = 1

	var calls atomic.Int32
	gen := &fakeClient{generate: func(req *llm.GenerateRequest) (string, error) {
		if calls.Add(1) == 1 {
			return candidateJSON("SELECT bad FROM schools"), nil
		}
		// The resubmission must carry the formatted correction block with
		// the category tag and the failing statement.
		if !strings.Contains(req.Prompt, "[SCHEMA_ERROR]") ||
			!strings.Contains(req.Prompt, "SELECT bad FROM schools") {
			return "", errors.New("correction block missing from resubmission prompt")
		}
		return candidateJSON("SELECT count(*) FROM schools"), nil
	}}
	mgr := &vettingManager{reject: func(sqlText string) error {
		if strings.Contains(sqlText, "bad") {
			return errors.New("no such column: bad")
		}
		return nil
	}}

	r, _ := newGenerateRun(t, gen, mgr, cfg, nil)
	require.True(t, r.phaseGenerate(context.Background()))

	require.Len(t, r.state.Generation.Candidates, 1)
	assert.Equal(t, "SELECT count(*) FROM schools", r.state.Generation.Candidates[0].SQL)

	require.Len(t, r.state.Generation.RetryEvents, 1)
	assert.Contains(t, r.state.Generation.RetryEvents[0], "SCHEMA_ERROR")
	assert.Contains(t, r.state.Generation.RetryEvents[0], "no such column")

	// Both the rejected and the corrected statement were dry-run.
	assert.Equal(t, []string{"SELECT bad FROM schools", "SELECT count(*) FROM schools"}, mgr.executions())
}

func TestPhaseGenerate_GivesUpAfterBoundedResubmissions(t *testing.T) {
	cfg := config.DefaultPipelineConfig()
	cfg.NumSQLCandidates = 1
	cfg.MaxParallelSQLs = 1

	gen := &fakeClient{generate: func(*llm.GenerateRequest) (string, error) {
		return candidateJSON("SELEC broken"), nil
	}}
	mgr := &vettingManager{reject: func(string) error {
		return errors.New(`syntax error near "SELEC"`)
	}}

	r, _ := newGenerateRun(t, gen, mgr, cfg, nil)
	require.True(t, r.phaseGenerate(context.Background()))

	// The candidate never passed vetting and is dropped, leaving the attempt
	// history as the only trace.
	assert.Empty(t, r.state.Generation.Candidates)
	assert.Len(t, r.state.Generation.RetryEvents, maxModelRetries+1)
	for _, ev := range r.state.Generation.RetryEvents {
		assert.Contains(t, ev, "SYNTAX_ERROR")
	}
}

func TestPhaseGenerate_DatabaseUnavailableAggregates(t *testing.T) {
	cfg := config.DefaultPipelineConfig()
	cfg.NumSQLCandidates = 3
	cfg.MaxParallelSQLs = 3

	gen := &fakeClient{generate: func(*llm.GenerateRequest) (string, error) {
		return candidateJSON("SELECT 1"), nil
	}}
	mgr := &vettingManager{reject: func(string) error {
		return fmt.Errorf("%w: dial tcp 10.0.0.5:5432: connection refused", dbadapter.ErrDatabaseUnavailable)
	}}

	logs := &recordingLogger{}
	r, frames := newGenerateRun(t, gen, mgr, cfg, logs)
	require.False(t, r.phaseGenerate(context.Background()))

	var criticals []string
	for _, f := range *frames {
		if f.Tag == TagCriticalError {
			criticals = append(criticals, f.Encode())
		}
	}
	require.Len(t, criticals, 1)
	assert.Contains(t, criticals[0], "sql_generation")
	assert.Contains(t, criticals[0], "unavailable")

	assert.Equal(t, StatusFailed, r.state.Execution.SQLStatus)
	require.Len(t, logs.records, 1)
	assert.Equal(t, StatusFailed, logs.records[0].SQLStatus)
	assert.True(t, strings.HasPrefix(logs.records[0].SQL, "ERROR:"))
}

func TestPhaseContext_MissingVectorManagerIsCritical(t *testing.T) {
	logs := &recordingLogger{}
	o := NewOrchestrator(config.DefaultPipelineConfig(), logs, slog.Default())

	var frames []Frame
	r := &run{
		o:     o,
		res:   &Resources{Workspace: WorkspaceInfo{ID: "W1"}},
		state: NewState(Request{Question: "q", WorkspaceID: "W1", StartedAt: time.Now()}),
		emit: EmitterFunc(func(f Frame) error {
			frames = append(frames, f)
			return nil
		}),
	}
	require.False(t, r.phaseContext(context.Background()))

	require.Len(t, frames, 1)
	assert.Equal(t, TagCriticalError, frames[0].Tag)
	assert.Contains(t, frames[0].Encode(), "vector_store")
	assert.Equal(t, StatusFailed, r.state.Execution.SQLStatus)
	assert.Len(t, logs.records, 1)
}

func TestFail_EmitsClarificationRequest(t *testing.T) {
	ask := &fakeClient{generate: func(*llm.GenerateRequest) (string, error) {
		return `{"question": "Which school year?", "reason": "the period is ambiguous", "options": ["2022", "2023"]}`, nil
	}}
	pool := agents.NewStaticPool(
		map[agents.Slot]llm.Client{agents.SlotAskHuman: ask}, nil, slog.Default())

	var frames []Frame
	r := &run{
		o:     NewOrchestrator(config.DefaultPipelineConfig(), nil, slog.Default()),
		res:   &Resources{Agents: pool},
		state: NewState(Request{Question: "How many?", StartedAt: time.Now()}),
		emit: EmitterFunc(func(f Frame) error {
			frames = append(frames, f)
			return nil
		}),
	}
	r.fail(context.Background(), "no candidate reached the pass threshold at level BASIC")

	var clarifications []string
	for _, f := range frames {
		if f.Tag == TagClarification {
			clarifications = append(clarifications, f.Encode())
		}
	}
	require.Len(t, clarifications, 1)
	assert.Contains(t, clarifications[0], "Which school year?")
	require.NotNil(t, r.state.Generation.Clarification)
	assert.Equal(t, []string{"2022", "2023"}, r.state.Generation.Clarification.Options)
}
