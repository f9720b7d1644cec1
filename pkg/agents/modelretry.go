package agents

import (
	"fmt"
	"strings"
)

// RetryCategory classifies why a generated SQL needs a corrected retry.
type RetryCategory string

const (
	RetrySyntaxError      RetryCategory = "SYNTAX_ERROR"
	RetryValidationFailed RetryCategory = "VALIDATION_FAILED"
	RetryExecutionError   RetryCategory = "EXECUTION_ERROR"
	RetryEmptyResult      RetryCategory = "EMPTY_RESULT"
	RetrySchemaError      RetryCategory = "SCHEMA_ERROR"
	RetryEvidenceMismatch RetryCategory = "EVIDENCE_MISMATCH"
)

// RetryContext carries everything the model needs to correct a failing SQL.
type RetryContext struct {
	Category RetryCategory
	Attempt  int
	Database string
	SQL      string
	Issue    string

	FailedChecks       []string
	DebuggingTips      []string
	SyntaxGuidance     []string
	EvidenceViolations []string
	PreviousAttempts   []string
	ActionItems        []string
}

// categoryGuidance is appended per category when the caller supplied no
// specific diagnostics.
var categoryGuidance = map[RetryCategory]string{
	RetrySyntaxError:      "Re-check quoting, keywords, and clause order for the target dialect.",
	RetryValidationFailed: "Address every failed check before regenerating.",
	RetryExecutionError:   "The statement was rejected by the engine; simplify and re-derive joins.",
	RetryEmptyResult:      "The statement ran but returned nothing; re-check filter values against the examples.",
	RetrySchemaError:      "A referenced table or column does not exist; use only schema identifiers.",
	RetryEvidenceMismatch: "The statement contradicts the provided evidence; align with it.",
}

// Format renders the deterministic retry block sent back to the model.
func (rc *RetryContext) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] Attempt %d on database %q\n", rc.Category, rc.Attempt, rc.Database)
	fmt.Fprintf(&b, "Failing SQL:\n%s\n", rc.SQL)
	fmt.Fprintf(&b, "Primary issue: %s\n", rc.Issue)

	writeList := func(header string, items []string) {
		if len(items) == 0 {
			return
		}
		b.WriteString(header + "\n")
		for _, it := range items {
			fmt.Fprintf(&b, "  - %s\n", it)
		}
	}
	writeList("Failed checks:", rc.FailedChecks)
	writeList("Debugging tips:", rc.DebuggingTips)
	writeList("Syntax guidance:", rc.SyntaxGuidance)
	writeList("Evidence violations:", rc.EvidenceViolations)
	writeList("Previous attempts:", rc.PreviousAttempts)

	items := rc.ActionItems
	if len(items) == 0 {
		items = []string{categoryGuidance[rc.Category]}
	}
	writeList("Action items:", items)
	return b.String()
}

// HistoryLine is the one-line summary appended to the attempt history that
// later retries include under "Previous attempts".
func (rc *RetryContext) HistoryLine() string {
	sql := rc.SQL
	if len(sql) > 120 {
		sql = sql[:117] + "..."
	}
	return fmt.Sprintf("attempt %d [%s]: %s | %s", rc.Attempt, rc.Category, rc.Issue, sql)
}
