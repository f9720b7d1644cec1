package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thoth-ai/thoth/pkg/agents"
)

func TestPassRate(t *testing.T) {
	tests := []struct {
		name      string
		answers   []string
		testCount int
		want      float64
	}{
		{"all pass", []string{"OK", "OK", "OK"}, 3, 1.0},
		{"half pass", []string{"OK", "KO - wrong join"}, 2, 0.5},
		{"case insensitive prefix", []string{"ok", "Ok - matches", "KO"}, 3, 2.0 / 3.0},
		{"empty set scores zero", nil, 0, 0},
		{"all fail", []string{"KO - syntax", "KO - empty result"}, 2, 0},
		{"truncated reply pads missing verdicts as KO", []string{"OK"}, 5, 0.2},
		{"no verdicts at all", nil, 4, 0},
		{"surplus verdicts are ignored", []string{"OK", "OK", "OK"}, 2, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PassRate(&agents.EvaluationSet{Answers: tt.answers}, tt.testCount), 1e-9)
		})
	}
}

func TestVerdictLine(t *testing.T) {
	line := VerdictLine(2, &agents.EvaluationSet{Answers: []string{"OK", "KO - wrong filter"}})
	assert.Equal(t, "SQL #2: OK, KO - wrong filter", line)
}

func TestClassify_TruthTable(t *testing.T) {
	const threshold = 0.9
	tests := []struct {
		name      string
		passRates []float64
		sqls      []string
		wantCase  Case
		wantIndex int
	}{
		{
			name:      "case A single perfect",
			passRates: []float64{0.5, 1.0, 0.8},
			sqls:      []string{"a", "b", "c"},
			wantCase:  CaseA,
			wantIndex: 1,
		},
		{
			// The one-candidate run is the degenerate form of A: a lone
			// perfect candidate classifies the same whether or not failed
			// siblings surround it.
			name:      "case A single candidate perfect",
			passRates: []float64{1.0},
			sqls:      []string{"SELECT 1"},
			wantCase:  CaseA,
			wantIndex: 0,
		},
		{
			name:      "case B shortest wins",
			passRates: []float64{1.0, 1.0},
			sqls:      []string{"SELECT id, name FROM t", "SELECT id FROM t"},
			wantCase:  CaseB,
			wantIndex: 1,
		},
		{
			name:      "case B lexicographic on equal length",
			passRates: []float64{1.0, 1.0},
			sqls:      []string{"SELECT b FROM t", "SELECT a FROM t"},
			wantCase:  CaseB,
			wantIndex: 1,
		},
		{
			name:      "case B lowest index on exact tie",
			passRates: []float64{1.0, 1.0},
			sqls:      []string{"SELECT 1", "SELECT 1"},
			wantCase:  CaseB,
			wantIndex: 0,
		},
		{
			name:      "case C best above threshold",
			passRates: []float64{0.92, 0.91, 0.80},
			sqls:      []string{"a", "b", "c"},
			wantCase:  CaseC,
			wantIndex: 0,
		},
		{
			name:      "case C threshold boundary inclusive",
			passRates: []float64{0.9},
			sqls:      []string{"a"},
			wantCase:  CaseC,
			wantIndex: 0,
		},
		{
			name:      "case D all below threshold",
			passRates: []float64{0.5, 0.2},
			sqls:      []string{"a", "b"},
			wantCase:  CaseD,
			wantIndex: -1,
		},
		{
			name:      "case D empty input",
			passRates: nil,
			sqls:      nil,
			wantCase:  CaseD,
			wantIndex: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.passRates, tt.sqls, threshold)
			assert.Equal(t, tt.wantCase, got.Case)
			assert.Equal(t, tt.wantIndex, got.SelectedIndex)
		})
	}
}

func TestClassify_BestPassRate(t *testing.T) {
	got := Classify([]float64{0.4, 0.7, 0.3}, []string{"a", "b", "c"}, 0.9)
	assert.Equal(t, CaseD, got.Case)
	assert.InDelta(t, 0.7, got.BestPassRate, 1e-9)
}

func TestDedupCandidates(t *testing.T) {
	in := []agents.SQLCandidate{
		{SQL: "SELECT 1", Success: true},
		{SQL: "", Success: true},
		{SQL: "SELECT 2", Success: false},
		{SQL: "SELECT 1", Success: true},
		{SQL: "SELECT 3", Success: true},
	}
	out := DedupCandidates(in)
	assert.Len(t, out, 2)
	assert.Equal(t, "SELECT 1", out[0].SQL)
	assert.Equal(t, "SELECT 3", out[1].SQL)
}

func TestDedupTests(t *testing.T) {
	sets := []agents.TestSet{
		{Answers: []string{"row count is 5", "  ", "result has column County"}},
		{Answers: []string{"row count is 5", "values are positive"}},
	}
	out := DedupTests(sets)
	assert.Equal(t, []string{"row count is 5", "result has column County", "values are positive"}, out)
}
