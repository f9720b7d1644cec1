package pipeline

import (
	"fmt"
	"strings"

	"github.com/thoth-ai/thoth/pkg/agents"
)

// Case is the evaluation outcome class.
type Case string

const (
	CaseA Case = "A" // single perfect candidate
	CaseB Case = "B" // multiple perfect candidates
	CaseC Case = "C" // best candidate above threshold, none perfect
	CaseD Case = "D" // all candidates below threshold
)

// VerdictLine renders the per-SQL verdict string from one evaluation set:
// "SQL #i: OK, KO - <reason>, OK, ...".
func VerdictLine(index int, set *agents.EvaluationSet) string {
	return fmt.Sprintf("SQL #%d: %s", index, strings.Join(set.Answers, ", "))
}

// PassRate computes ok/testCount over one evaluation set. The denominator is
// the number of tests the evaluator was given, not the number of verdicts it
// returned: a truncated reply counts its missing verdicts as KO, and verdicts
// beyond the test count are ignored. An empty test list scores 0.
func PassRate(set *agents.EvaluationSet, testCount int) float64 {
	if testCount <= 0 {
		return 0
	}
	ok := 0
	for i, a := range set.Answers {
		if i == testCount {
			break
		}
		if strings.HasPrefix(strings.TrimSpace(strings.ToUpper(a)), "OK") {
			ok++
		}
	}
	return float64(ok) / float64(testCount)
}

// Classification is the classifier output: the case plus the selected
// candidate, when one is selected.
type Classification struct {
	Case          Case
	SelectedIndex int
	BestPassRate  float64
}

// Classify partitions candidates by pass rate. Selection is deterministic:
// among perfect candidates the tie-break is highest pass rate (trivially
// equal), then shortest SQL, then lexicographic order.
func Classify(passRates []float64, sqls []string, threshold float64) Classification {
	best := -1
	var perfect []int
	for i, r := range passRates {
		if r == 1.0 {
			perfect = append(perfect, i)
		}
		if best < 0 || r > passRates[best] {
			best = i
		}
	}

	out := Classification{SelectedIndex: -1}
	if best >= 0 {
		out.BestPassRate = passRates[best]
	}

	switch {
	case len(perfect) == 1 && len(passRates) >= 1:
		out.Case = CaseA
		out.SelectedIndex = perfect[0]
	case len(perfect) >= 2:
		out.Case = CaseB
		out.SelectedIndex = tieBreak(perfect, sqls)
	case best >= 0 && passRates[best] >= threshold:
		out.Case = CaseC
		out.SelectedIndex = best
	default:
		out.Case = CaseD
	}
	return out
}

// tieBreak picks among equally perfect candidates: shortest SQL first, then
// lexicographically smallest, then lowest index.
func tieBreak(indices []int, sqls []string) int {
	winner := indices[0]
	for _, i := range indices[1:] {
		a, b := sqls[i], sqls[winner]
		if len(a) < len(b) || (len(a) == len(b) && a < b) {
			winner = i
		}
	}
	return winner
}

// DedupCandidates strips failed candidates and exact duplicate SQLs,
// preserving first-seen order.
func DedupCandidates(candidates []agents.SQLCandidate) []agents.SQLCandidate {
	seen := make(map[string]struct{})
	out := make([]agents.SQLCandidate, 0, len(candidates))
	for _, c := range candidates {
		if !c.Success || c.SQL == "" {
			continue
		}
		if _, dup := seen[c.SQL]; dup {
			continue
		}
		seen[c.SQL] = struct{}{}
		out = append(out, c)
	}
	return out
}

// DedupTests drops exact duplicate test strings, preserving order.
func DedupTests(sets []agents.TestSet) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, set := range sets {
		for _, t := range set.Answers {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}
