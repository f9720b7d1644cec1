package pipeline

import (
	"fmt"
	"strings"

	"github.com/thoth-ai/thoth/pkg/config"
)

// maxEscalations bounds the chain BASIC -> ADVANCED -> EXPERT.
const maxEscalations = 2

// EscalationContext is the failure context carried to the next level's
// generation prompt.
type EscalationContext struct {
	Reason            string
	FromLevel         config.FunctionalityLevel
	ToLevel           config.FunctionalityLevel
	FailingSQLs       []string
	EvaluationSummary []string
	FailureAnalysis   string
}

// Render produces the deterministic multi-line block consumed by the next
// level's SQL prompt.
func (ec *EscalationContext) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Escalated from %s to %s: %s\n", ec.FromLevel, ec.ToLevel, ec.Reason)
	if len(ec.FailingSQLs) > 0 {
		b.WriteString("Failing SQL candidates:\n")
		for i, sql := range ec.FailingSQLs {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, sql)
		}
	}
	if len(ec.EvaluationSummary) > 0 {
		b.WriteString("Evaluation summary:\n")
		for _, line := range ec.EvaluationSummary {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}
	if ec.FailureAnalysis != "" {
		fmt.Fprintf(&b, "Failure analysis: %s\n", ec.FailureAnalysis)
	}
	return b.String()
}

// EscalationDecision is the manager's verdict for one failed evaluation.
type EscalationDecision struct {
	Escalate bool
	Next     config.FunctionalityLevel
	Reason   string
}

// DecideEscalation applies the escalation policy. Escalate when attempts at
// the current level are exhausted, the evaluation is case D below threshold,
// or no SQL was generated at all. Never past EXPERT.
func DecideEscalation(level config.FunctionalityLevel, result Classification, attemptsAtLevel int, noSQL bool, cfg *config.PipelineConfig) EscalationDecision {
	next, ok := level.Next()
	if !ok {
		return EscalationDecision{}
	}

	switch {
	case noSQL:
		return EscalationDecision{Escalate: true, Next: next,
			Reason: "no SQL candidate was generated"}
	case attemptsAtLevel >= cfg.MaxAttemptsPerLevel:
		return EscalationDecision{Escalate: true, Next: next,
			Reason: fmt.Sprintf("exhausted %d attempts at level %s", attemptsAtLevel, level)}
	case result.Case == CaseD && result.BestPassRate < cfg.PassThreshold:
		return EscalationDecision{Escalate: true, Next: next,
			Reason: fmt.Sprintf("best pass rate %.2f below threshold %.2f", result.BestPassRate, cfg.PassThreshold)}
	default:
		return EscalationDecision{}
	}
}

// BuildEscalationContext assembles the context block from the failed state.
func BuildEscalationContext(s *State, decision EscalationDecision) *EscalationContext {
	ec := &EscalationContext{
		Reason:    decision.Reason,
		FromLevel: s.Level(),
		ToLevel:   decision.Next,
	}
	for _, c := range s.Generation.Candidates {
		ec.FailingSQLs = append(ec.FailingSQLs, c.SQL)
	}
	ec.EvaluationSummary = append(ec.EvaluationSummary, s.Generation.Verdicts...)
	if len(s.Execution.PassRates) > 0 {
		parts := make([]string, len(s.Execution.PassRates))
		for i, r := range s.Execution.PassRates {
			parts[i] = fmt.Sprintf("%.2f", r)
		}
		ec.FailureAnalysis = "pass rates: " + strings.Join(parts, ", ")
	}
	return ec
}
