package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSQL_ClausePerLine(t *testing.T) {
	in := "SELECT id, name FROM users WHERE age > 21 ORDER BY name LIMIT 10"
	want := "SELECT id, name\nFROM users\nWHERE age > 21\nORDER BY name\nLIMIT 10"
	assert.Equal(t, want, FormatSQL(in))
}

func TestFormatSQL_MultiWordClauses(t *testing.T) {
	in := "SELECT a FROM t LEFT JOIN u ON t.id = u.id GROUP BY a HAVING COUNT(*) > 1"
	want := "SELECT a\nFROM t\nLEFT JOIN u ON t.id = u.id\nGROUP BY a\nHAVING COUNT(*) > 1"
	assert.Equal(t, want, FormatSQL(in))
}

func TestFormatSQL_CollapsesWhitespace(t *testing.T) {
	in := "SELECT   a,\n\tb FROM   t"
	want := "SELECT a, b\nFROM t"
	assert.Equal(t, want, FormatSQL(in))
}

func TestFormatSQL_NeverTouchesQuotedSegments(t *testing.T) {
	in := "SELECT a FROM t WHERE note = 'from where order by'"
	want := "SELECT a\nFROM t\nWHERE note = 'from where order by'"
	assert.Equal(t, want, FormatSQL(in))
}

func TestSplitPreservingQuotes(t *testing.T) {
	tokens := splitPreservingQuotes(`SELECT "first name" FROM [my table] WHERE x = 'a b'`)
	assert.Equal(t, []string{"SELECT", `"first name"`, "FROM", "[my table]", "WHERE", "x", "=", "'a b'"}, tokens)
}
