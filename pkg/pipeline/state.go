package pipeline

import (
	"time"

	"github.com/thoth-ai/thoth/pkg/agents"
	"github.com/thoth-ai/thoth/pkg/config"
	"github.com/thoth-ai/thoth/pkg/lsh"
	"github.com/thoth-ai/thoth/pkg/mschema"
)

// SQLStatus is the terminal quality of a run.
type SQLStatus string

const (
	StatusGold   SQLStatus = "GOLD"
	StatusSilver SQLStatus = "SILVER"
	StatusFailed SQLStatus = "FAILED"
)

// Flags are the client-controlled pipeline switches.
type Flags struct {
	ExplainGeneratedQuery bool `json:"explain_generated_query"`
}

// Request holds the immutable request fields of one run.
type Request struct {
	Question           string
	WorkspaceID        string
	FunctionalityLevel config.FunctionalityLevel
	Flags              Flags
	Username           string
	StartedAt          time.Time
}

// Semantic holds the context accumulated by phases 1 to 3.
type Semantic struct {
	OriginalQuestion   string
	OriginalLanguage   string
	Keywords           []string
	Evidence           []string
	SQLShots           []agents.Shot
	SimilarColumns     []lsh.Match
	SchemaWithExamples *mschema.Schema
	FullMSchema        string
	ReducedMSchema     string
	UsedMSchema        string
	Strategy           mschema.Strategy
	Directives         []string
}

// Generation holds phase 4 and 5 outputs.
type Generation struct {
	Candidates    []agents.SQLCandidate
	Tests         []string
	FilteredTests []string
	Evaluations   []agents.EvaluationSet
	Verdicts      []string
	LastSQL       string
	Explanation   string

	// RetryEvents records one history line per corrected resubmission made
	// during candidate vetting.
	RetryEvents []string

	// Clarification is set when the ask-human agent produced a follow-up
	// question for a failed run.
	Clarification *agents.ClarificationRequest
}

// Execution holds the run bookkeeping.
type Execution struct {
	SQLStatus         SQLStatus
	EvaluationCase    Case
	PassRates         []float64
	SelectedIndex     int
	SelectedPassRate  float64
	FailureMessage    string
	EscalationHistory []config.FunctionalityLevel
	AgentUsed         string
}

// State is the per-request pipeline state. The request block is immutable
// after construction; the question may only be rewritten by the translator.
type State struct {
	Request    Request
	Question   string
	Semantic   Semantic
	Generation Generation
	Execution  Execution
}

// NewState builds a run state from the request.
func NewState(req Request) *State {
	return &State{
		Request:  req,
		Question: req.Question,
		Execution: Execution{
			SelectedIndex: -1,
		},
	}
}

// Level returns the current functionality level, accounting for escalations.
func (s *State) Level() config.FunctionalityLevel {
	if n := len(s.Execution.EscalationHistory); n > 0 {
		return s.Execution.EscalationHistory[n-1]
	}
	return s.Request.FunctionalityLevel
}

// Escalate moves the run to the next level, appends to the history, and
// clears the generation results so the new level starts clean.
func (s *State) Escalate(next config.FunctionalityLevel) {
	s.Execution.EscalationHistory = append(s.Execution.EscalationHistory, next)
	s.Generation = Generation{}
	s.Execution.PassRates = nil
	s.Execution.SelectedIndex = -1
	s.Execution.SelectedPassRate = 0
	s.Execution.EvaluationCase = ""
}
