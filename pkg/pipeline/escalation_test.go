package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thoth-ai/thoth/pkg/config"
)

func escalationCfg() *config.PipelineConfig {
	cfg := config.DefaultPipelineConfig()
	cfg.MaxAttemptsPerLevel = 2
	cfg.PassThreshold = 0.9
	return cfg
}

func TestDecideEscalation_NoSQL(t *testing.T) {
	d := DecideEscalation(config.LevelBasic, Classification{Case: CaseD}, 1, true, escalationCfg())
	assert.True(t, d.Escalate)
	assert.Equal(t, config.LevelAdvanced, d.Next)
}

func TestDecideEscalation_AttemptsExhausted(t *testing.T) {
	d := DecideEscalation(config.LevelAdvanced, Classification{Case: CaseC}, 2, false, escalationCfg())
	assert.True(t, d.Escalate)
	assert.Equal(t, config.LevelExpert, d.Next)
}

func TestDecideEscalation_CaseDBelowThreshold(t *testing.T) {
	d := DecideEscalation(config.LevelBasic, Classification{Case: CaseD, BestPassRate: 0.4}, 1, false, escalationCfg())
	assert.True(t, d.Escalate)
	assert.Equal(t, config.LevelAdvanced, d.Next)
}

func TestDecideEscalation_HoldsBelowLimits(t *testing.T) {
	d := DecideEscalation(config.LevelBasic, Classification{Case: CaseC, BestPassRate: 0.95}, 1, false, escalationCfg())
	assert.False(t, d.Escalate)
}

func TestDecideEscalation_NeverPastExpert(t *testing.T) {
	d := DecideEscalation(config.LevelExpert, Classification{Case: CaseD}, 5, true, escalationCfg())
	assert.False(t, d.Escalate)
}

func TestEscalation_MonotonicChain(t *testing.T) {
	// BASIC -> ADVANCED -> EXPERT, at most two hops.
	level := config.LevelBasic
	hops := 0
	for {
		d := DecideEscalation(level, Classification{Case: CaseD}, 2, false, escalationCfg())
		if !d.Escalate {
			break
		}
		assert.Greater(t, d.Next.Rank(), level.Rank(), "escalation must move up")
		level = d.Next
		hops++
	}
	assert.Equal(t, config.LevelExpert, level)
	assert.Equal(t, maxEscalations, hops)
}

func TestEscalationContext_RenderDeterministic(t *testing.T) {
	ec := &EscalationContext{
		Reason:            "best pass rate 0.40 below threshold 0.90",
		FromLevel:         config.LevelBasic,
		ToLevel:           config.LevelAdvanced,
		FailingSQLs:       []string{"SELECT 1", "SELECT 2"},
		EvaluationSummary: []string{"SQL #0: KO - wrong table", "SQL #1: KO - empty result"},
		FailureAnalysis:   "pass rates: 0.40, 0.20",
	}

	first := ec.Render()
	assert.Equal(t, first, ec.Render())
	assert.True(t, strings.HasPrefix(first, "Escalated from Basic to Advanced:"))
	assert.Contains(t, first, "  1. SELECT 1\n")
	assert.Contains(t, first, "Failure analysis: pass rates: 0.40, 0.20\n")
}

func TestStateEscalate_ClearsGeneration(t *testing.T) {
	state := NewState(Request{
		Question:           "q",
		WorkspaceID:        "w",
		FunctionalityLevel: config.LevelBasic,
	})
	state.Generation.LastSQL = "SELECT 1"
	state.Execution.PassRates = []float64{0.1}

	state.Escalate(config.LevelAdvanced)

	assert.Equal(t, config.LevelAdvanced, state.Level())
	assert.Empty(t, state.Generation.Candidates)
	assert.Empty(t, state.Execution.PassRates)
	assert.Len(t, state.Execution.EscalationHistory, 1)
}
