package pipeline

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameEncode_Text(t *testing.T) {
	f := TextFrame(TagThothLog, "Starting SQL generation")
	assert.Equal(t, "THOTHLOG:Starting SQL generation", f.Encode())
}

func TestFrameEncode_JSON(t *testing.T) {
	f := JSONFrame(TagKeywords, keywordsBody{Keywords: []string{"schools", "county"}, Count: 2})
	line := f.Encode()

	prefix, payload, found := strings.Cut(line, ":")
	require.True(t, found)
	assert.Equal(t, "KEYWORDS", prefix)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &body))
	assert.Equal(t, float64(2), body["count"])
	assert.Equal(t, []any{"schools", "county"}, body["keywords"])
}

func TestFrameEncode_SingleLine(t *testing.T) {
	frames := []Frame{
		JSONFrame(TagSQLReady, sqlReadyBody{
			SQL:            "SELECT COUNT(*) FROM schools",
			WorkspaceID:    "W1",
			SQLStatus:      "GOLD",
			EvaluationCase: "A",
			PassRate:       1.0,
			IsGold:         true,
		}),
		JSONFrame(TagSimilarQueries, similarQueriesBody{SimilarQueries: []string{"q1"}, Method: "LSH"}),
		TextFrame(TagCancelled, "Operation cancelled by user"),
	}
	for _, f := range frames {
		assert.NotContains(t, f.Encode(), "\n")
	}
}

func TestFrameEncode_SQLReadyFields(t *testing.T) {
	line := JSONFrame(TagSQLReady, sqlReadyBody{
		SQL:         "SELECT 1",
		WorkspaceID: "W1",
		SQLStatus:   "SILVER",
		PassRate:    0.92,
		IsSilver:    true,
	}).Encode()

	_, payload, _ := strings.Cut(line, ":")
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &body))
	assert.Equal(t, "SILVER", body["sql_status"])
	assert.Equal(t, 0.92, body["pass_rate"])
	assert.Equal(t, true, body["is_silver"])
	assert.Equal(t, false, body["is_gold"])
}

func TestSimilarQueriesMethodIsLSH(t *testing.T) {
	line := JSONFrame(TagSimilarQueries, similarQueriesBody{Method: "LSH"}).Encode()
	assert.Contains(t, line, `"method":"LSH"`)
}
