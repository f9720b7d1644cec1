package vectorstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvidenceDocumentToSchema(t *testing.T) {
	doc := EvidenceDocument{Evidence: "Charter schools are flagged by charter = 1"}.toSchema()
	assert.Equal(t, "Charter schools are flagged by charter = 1", doc.PageContent)
	assert.Equal(t, "evidence", doc.Metadata[metaDocType])
}

func TestColumnDocumentToSchema(t *testing.T) {
	doc := ColumnDocument{
		Table:       "schools",
		Column:      "county",
		DataType:    "TEXT",
		Description: "County the school belongs to",
	}.toSchema()

	assert.Equal(t, "County the school belongs to", doc.PageContent)
	assert.Equal(t, "column", doc.Metadata[metaDocType])
	assert.Equal(t, "schools", doc.Metadata["table"])
	assert.Equal(t, "county", doc.Metadata["column"])
	assert.Equal(t, "TEXT", doc.Metadata["data_type"])
}

func TestColumnDocumentToSchema_FallsBackToQualifiedName(t *testing.T) {
	doc := ColumnDocument{Table: "schools", Column: "cdscode"}.toSchema()
	assert.Equal(t, "schools.cdscode", doc.PageContent)
}

func TestSQLPairDocumentToSchema(t *testing.T) {
	doc := SQLPairDocument{
		Question: "How many charter schools are there?",
		SQL:      "SELECT COUNT(*) FROM schools WHERE charter = 1",
		Evidence: "charter = 1 means charter school",
	}.toSchema()

	// The question is what gets embedded; SQL rides along as metadata.
	assert.Equal(t, "How many charter schools are there?", doc.PageContent)
	assert.Equal(t, "sql", doc.Metadata[metaDocType])
	assert.Equal(t, "SELECT COUNT(*) FROM schools WHERE charter = 1", doc.Metadata["sql"])
	assert.Equal(t, "charter = 1 means charter school", doc.Metadata["evidence"])
}

func TestMetaString(t *testing.T) {
	m := map[string]any{"a": "x", "b": 7}
	assert.Equal(t, "x", metaString(m, "a"))
	assert.Equal(t, "", metaString(m, "b"))
	assert.Equal(t, "", metaString(m, "missing"))
}
