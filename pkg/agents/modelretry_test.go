package agents

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRetryContextFormat_Deterministic(t *testing.T) {
	rc := &RetryContext{
		Category:      RetryValidationFailed,
		Attempt:       2,
		Database:      "california_schools",
		SQL:           "SELECT * FROM school",
		Issue:         "table school does not exist",
		FailedChecks:  []string{"table exists", "columns resolve"},
		DebuggingTips: []string{"the table is named schools"},
	}

	first := rc.Format()
	assert.Equal(t, first, rc.Format())
	assert.True(t, strings.HasPrefix(first, `[VALIDATION_FAILED] Attempt 2 on database "california_schools"`))
	assert.Contains(t, first, "Failed checks:\n  - table exists\n  - columns resolve\n")
	assert.Contains(t, first, "Debugging tips:\n  - the table is named schools\n")
}

func TestRetryContextFormat_DefaultActionItems(t *testing.T) {
	rc := &RetryContext{
		Category: RetrySchemaError,
		Attempt:  1,
		Database: "db",
		SQL:      "SELECT x FROM t",
		Issue:    "column x missing",
	}
	out := rc.Format()
	assert.Contains(t, out, "Action items:\n  - A referenced table or column does not exist")
}

func TestRetryContextHistoryLine_TruncatesSQL(t *testing.T) {
	long := strings.Repeat("SELECT a, b, c FROM t JOIN u ", 10)
	rc := &RetryContext{
		Category: RetryExecutionError,
		Attempt:  3,
		SQL:      long,
		Issue:    "timeout",
	}
	line := rc.HistoryLine()
	assert.Contains(t, line, "attempt 3 [EXECUTION_ERROR]: timeout | ")
	assert.True(t, strings.HasSuffix(line, "..."))
	assert.LessOrEqual(t, len(line), len("attempt 3 [EXECUTION_ERROR]: timeout | ")+120)
}

func TestParseJSON(t *testing.T) {
	type payload struct {
		SQL string `json:"sql"`
	}

	tests := []struct {
		name    string
		content string
		wantSQL string
		wantErr bool
	}{
		{"plain object", `{"sql":"SELECT 1"}`, "SELECT 1", false},
		{"fenced block", "```json\n{\"sql\":\"SELECT 2\"}\n```", "SELECT 2", false},
		{"leading prose", `Here is the result: {"sql":"SELECT 3"}`, "SELECT 3", false},
		{"not json", "sorry, cannot answer", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			err := parseJSON(tt.content, &p)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantSQL, p.SQL)
		})
	}
}
