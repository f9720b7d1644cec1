// Package agents holds the typed prompt-to-response agents of the pipeline:
// each agent is a prompt template, an LLM client, and a parsed result shape.
package agents

import (
	"github.com/thoth-ai/thoth/pkg/config"
)

// Slot names the nine configurable agent positions of a workspace plus the
// two implicit agents driven by the default model.
type Slot string

const (
	SlotKeywordSelector Slot = "keyword_selector"
	SlotSQLBasic        Slot = "sql_basic"
	SlotSQLAdvanced     Slot = "sql_advanced"
	SlotSQLExpert       Slot = "sql_expert"
	SlotTestGen1        Slot = "test_gen_1"
	SlotTestGen2        Slot = "test_gen_2"
	SlotTestExecutor    Slot = "test_executor"
	SlotSQLExplainer    Slot = "sql_explainer"
	SlotAskHuman        Slot = "ask_human"

	// Validator and translator run on the workspace default model.
	SlotValidator  Slot = "validator"
	SlotTranslator Slot = "translator"
)

// SQLSlotForLevel maps a functionality level to its generator slot.
func SQLSlotForLevel(level config.FunctionalityLevel) Slot {
	switch level {
	case config.LevelAdvanced:
		return SlotSQLAdvanced
	case config.LevelExpert:
		return SlotSQLExpert
	default:
		return SlotSQLBasic
	}
}

// ValidationResult is the question validator's verdict.
type ValidationResult struct {
	IsValid          bool   `json:"is_valid"`
	Message          string `json:"message"`
	OriginalLanguage string `json:"original_language,omitempty"`
}

// SQLCandidate is one generated SQL with its reasoning trace.
type SQLCandidate struct {
	SQL      string `json:"sql"`
	Thinking string `json:"thinking"`
	Success  bool   `json:"success"`

	// Method and Temperature record how the candidate was produced.
	Method      Method  `json:"method,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

// TestSet is one test generator's output.
type TestSet struct {
	Thinking string   `json:"thinking"`
	Answers  []string `json:"answers"`
}

// EvaluationSet is the evaluator's output for one SQL candidate: answer i
// holds the OK/KO verdict (with reason) for test i.
type EvaluationSet struct {
	Thinking string   `json:"thinking"`
	Answers  []string `json:"answers"`
}

// ClarificationRequest is the ask-human agent's structured payload.
type ClarificationRequest struct {
	Question string   `json:"question"`
	Reason   string   `json:"reason"`
	Options  []string `json:"options,omitempty"`
}
