package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thoth-ai/thoth/pkg/agents"
	"github.com/thoth-ai/thoth/pkg/config"
	"github.com/thoth-ai/thoth/pkg/dbadapter"
	"github.com/thoth-ai/thoth/pkg/lsh"
	"github.com/thoth-ai/thoth/pkg/mschema"
	"github.com/thoth-ai/thoth/pkg/vectorstore"
)

const (
	evidenceTopK = 5
	shotsTopK    = 3
	lshTopN      = 5
	lshMinSim    = 0.3
)

// WorkspaceInfo is the slice of workspace configuration the pipeline needs.
type WorkspaceInfo struct {
	ID           string
	DBName       string
	Dialect      config.Dialect
	Language     string
	DefaultModel string
}

// Resources is the warmed per-workspace bundle the session cache hands to
// each run.
type Resources struct {
	Workspace WorkspaceInfo
	Agents    *agents.Pool
	DB        dbadapter.Manager
	// Vector is nil when the workspace has no vector database; phase 3
	// treats an absent manager as a critical failure.
	Vector *vectorstore.Store
	// Index is nil when preprocessing never built one; phase 3 treats that
	// as a critical failure.
	Index *lsh.Index
	// FullSchema is introspected at warm time.
	FullSchema *mschema.Schema
}

// RunRecord is the persisted summary of one pipeline run.
type RunRecord struct {
	Question     string
	SQL          string
	WorkspaceID  string
	Username     string
	StartedAt    time.Time
	Duration     time.Duration
	Agent        string
	SQLStatus    SQLStatus
	Case         Case
	PassRates    []float64
	TestsUsed    []string
	EvidenceUsed []string
}

// RunLogger persists run records. Implemented by the thoth log service.
type RunLogger interface {
	WriteRun(ctx context.Context, rec *RunRecord) error
}

// Orchestrator drives the six phases of one generation request.
type Orchestrator struct {
	cfg    *config.PipelineConfig
	logs   RunLogger
	logger *slog.Logger
}

// NewOrchestrator builds an orchestrator.
func NewOrchestrator(cfg *config.PipelineConfig, logs RunLogger, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{cfg: cfg, logs: logs, logger: logger.With("component", "pipeline")}
}

// run couples the state with the emitting side of one request.
type run struct {
	o     *Orchestrator
	res   *Resources
	state *State
	emit  Emitter

	usedSchema      *mschema.Schema
	escalationBlock string
	cancelled       bool
}

// Run executes the pipeline. The returned state carries the outcome; frames
// stream through emit as phases progress. On client disconnect exactly one
// CANCELLED frame is emitted and no run record is written.
func (o *Orchestrator) Run(ctx context.Context, res *Resources, req Request) *State {
	return o.RunWithEmitter(ctx, res, req, EmitterFunc(func(Frame) error { return nil }))
}

// RunWithEmitter executes the pipeline streaming frames through emit.
func (o *Orchestrator) RunWithEmitter(ctx context.Context, res *Resources, req Request, emit Emitter) *State {
	state := NewState(req)
	r := &run{o: o, res: res, state: state, emit: emit}

	r.log("Starting SQL generation for workspace %s", req.WorkspaceID)

	if !r.phaseValidate(ctx) {
		return state
	}
	if !r.phaseKeywords(ctx) {
		return state
	}
	if !r.phaseContext(ctx) {
		return state
	}

	attemptsAtLevel := 0
	for {
		if !r.phaseGenerate(ctx) {
			return state
		}
		if !r.phaseEvaluate(ctx) {
			return state
		}
		attemptsAtLevel++

		result := Classify(state.Execution.PassRates, candidateSQLs(state.Generation.Candidates), o.cfg.PassThreshold)
		state.Execution.EvaluationCase = result.Case

		if result.SelectedIndex >= 0 {
			state.Execution.SelectedIndex = result.SelectedIndex
			state.Execution.SelectedPassRate = state.Execution.PassRates[result.SelectedIndex]
			r.finalize(ctx)
			return state
		}

		noSQL := len(state.Generation.Candidates) == 0
		decision := DecideEscalation(state.Level(), result, attemptsAtLevel, noSQL, o.cfg)
		if decision.Escalate && len(state.Execution.EscalationHistory) < maxEscalations {
			ec := BuildEscalationContext(state, decision)
			state.Escalate(decision.Next)
			r.escalationBlock = ec.Render()
			attemptsAtLevel = 0
			r.log("Escalating to %s: %s", decision.Next, decision.Reason)
			continue
		}
		if attemptsAtLevel < o.cfg.MaxAttemptsPerLevel {
			r.log("Retrying at level %s (attempt %d)", state.Level(), attemptsAtLevel+1)
			continue
		}

		r.fail(ctx, fmt.Sprintf("no candidate reached the pass threshold at level %s", state.Level()))
		return state
	}
}

func candidateSQLs(candidates []agents.SQLCandidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.SQL
	}
	return out
}

// send emits one frame; a dead client flips the cancelled flag.
func (r *run) send(frame Frame) {
	if r.cancelled {
		return
	}
	if err := r.emit.Emit(frame); err != nil {
		r.cancelled = true
	}
}

func (r *run) log(format string, args ...any) {
	r.send(TextFrame(TagThothLog, fmt.Sprintf(format, args...)))
}

func (r *run) warn(component, message string) {
	r.send(JSONFrame(TagSystemWarning, warningBody{Component: component, Message: message}))
}

// checkCancelled watches the client-disconnect signal. Emits the single
// CANCELLED frame on first detection.
func (r *run) checkCancelled(ctx context.Context) bool {
	if r.cancelled || ctx.Err() != nil {
		if !r.cancelled {
			_ = r.emit.Emit(TextFrame(TagCancelled, "Operation cancelled by user"))
			r.cancelled = true
		}
		return true
	}
	return false
}

// critical emits a CRITICAL_ERROR frame, writes the failure run record, and
// marks the state failed.
func (r *run) critical(ctx context.Context, component, message string) {
	r.send(JSONFrame(TagCriticalError, criticalErrorBody{Component: component, Message: message}))
	r.state.Execution.SQLStatus = StatusFailed
	r.state.Execution.FailureMessage = message
	r.writeRecord(ctx, "ERROR: "+message)
}

// fail terminates the run as FAILED after evaluation exhausted every level.
func (r *run) fail(ctx context.Context, reason string) {
	r.state.Execution.SQLStatus = StatusFailed
	r.state.Execution.FailureMessage = reason
	r.log("SQL generation failed: %s", reason)
	r.askClarification(ctx, reason)
	r.send(JSONFrame(TagSQLReady, sqlReadyBody{
		WorkspaceID:    r.state.Request.WorkspaceID,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		Username:       r.state.Request.Username,
		Agent:          r.state.Execution.AgentUsed,
		SQLStatus:      string(StatusFailed),
		EvaluationCase: string(r.state.Execution.EvaluationCase),
	}))
	r.writeRecord(ctx, "ERROR: "+reason)
}

// askClarification runs the ask-human agent when one is configured, so the
// client can re-ask the user instead of showing a bare failure.
func (r *run) askClarification(ctx context.Context, reason string) {
	if r.res == nil || r.res.Agents == nil || !r.res.Agents.Has(agents.SlotAskHuman) {
		return
	}
	req, err := r.res.Agents.AskHuman(ctx, r.state.Question, reason)
	if err != nil {
		r.warn("ask_human", "clarification unavailable: "+err.Error())
		return
	}
	r.state.Generation.Clarification = req
	r.send(JSONFrame(TagClarification, clarificationBody{
		Question: req.Question,
		Reason:   req.Reason,
		Options:  req.Options,
	}))
}

func (r *run) writeRecord(ctx context.Context, sqlOrPlaceholder string) {
	if r.o.logs == nil {
		return
	}
	s := r.state
	rec := &RunRecord{
		Question:     s.Request.Question,
		SQL:          sqlOrPlaceholder,
		WorkspaceID:  s.Request.WorkspaceID,
		Username:     s.Request.Username,
		StartedAt:    s.Request.StartedAt,
		Duration:     time.Since(s.Request.StartedAt),
		Agent:        s.Execution.AgentUsed,
		SQLStatus:    s.Execution.SQLStatus,
		Case:         s.Execution.EvaluationCase,
		PassRates:    s.Execution.PassRates,
		TestsUsed:    s.Generation.FilteredTests,
		EvidenceUsed: s.Semantic.Evidence,
	}
	if err := r.o.logs.WriteRun(ctx, rec); err != nil {
		r.o.logger.Error("failed to write run record", "workspace_id", s.Request.WorkspaceID, "error", err)
	}
}
