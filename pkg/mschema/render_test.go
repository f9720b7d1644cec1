package mschema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoth-ai/thoth/pkg/config"
	"github.com/thoth-ai/thoth/pkg/dbadapter"
	"github.com/thoth-ai/thoth/pkg/lsh"
	"github.com/thoth-ai/thoth/pkg/vectorstore"
)

func sampleSchema() *Schema {
	return &Schema{
		DBName:  "california_schools",
		Dialect: config.DialectSQLite,
		Tables: []Table{
			{
				Name: "schools",
				Columns: []Column{
					{Name: "id", DataType: "INTEGER", PrimaryKey: true},
					{Name: "name", DataType: "TEXT", Nullable: false},
					{Name: "county", DataType: "TEXT", Nullable: true},
					{Name: "district_id", DataType: "INTEGER", Nullable: true},
				},
			},
			{
				Name: "districts",
				Columns: []Column{
					{Name: "id", DataType: "INTEGER", PrimaryKey: true},
					{Name: "name", DataType: "TEXT", Nullable: true},
				},
			},
		},
		ForeignKeys: []dbadapter.ForeignKey{
			{Table: "schools", Column: "district_id", TargetTable: "districts", TargetColumn: "id"},
		},
	}
}

func TestRender(t *testing.T) {
	out := Render(sampleSchema())

	assert.True(t, strings.HasPrefix(out, "DB: california_schools (SQLite)\n"))
	assert.Contains(t, out, "TABLE schools\n")
	assert.Contains(t, out, "  id INTEGER PK\n")
	assert.Contains(t, out, "  name TEXT NOT NULL\n")
	assert.Contains(t, out, "  county TEXT\n")
	assert.Contains(t, out, "FOREIGN KEYS\n  schools.district_id -> districts.id\n")
}

func TestRender_Annotations(t *testing.T) {
	schema := sampleSchema()
	schema.Tables[0].Description = "public schools"
	schema.Tables[0].Columns[2].Description = "county name"
	schema.Tables[0].Columns[2].Examples = []string{"Alameda", "Fresno"}

	out := Render(schema)
	assert.Contains(t, out, "TABLE schools -- public schools\n")
	assert.Contains(t, out, "  county TEXT -- county name; e.g. Alameda, Fresno\n")
}

func TestRenderShuffled_DeterministicPerCall(t *testing.T) {
	schema := sampleSchema()

	first := RenderShuffled(schema, 42, 0)
	assert.Equal(t, first, RenderShuffled(schema, 42, 0))

	// A different call index from the same seed permutes independently but
	// keeps the same content lines.
	other := RenderShuffled(schema, 42, 1)
	assert.ElementsMatch(t, strings.Split(first, "\n"), strings.Split(other, "\n"))
}

func TestRenderShuffled_DoesNotMutateInput(t *testing.T) {
	schema := sampleSchema()
	_ = RenderShuffled(schema, 7, 3)
	assert.Equal(t, "schools", schema.Tables[0].Name)
	assert.Equal(t, "id", schema.Tables[0].Columns[0].Name)
}

func TestAttachExamples(t *testing.T) {
	schema := sampleSchema()
	hit := AttachExamples(schema, []lsh.Match{
		{Table: "schools", Column: "county", Value: "Alameda", Similarity: 1.0},
		{Table: "schools", Column: "county", Value: "Alameda", Similarity: 1.0},
		{Table: "schools", Column: "county", Value: "Fresno", Similarity: 0.8},
		{Table: "districts", Column: "name", Value: "Oakland Unified", Similarity: 0.7},
		{Table: "missing", Column: "x", Value: "ignored", Similarity: 0.9},
	})

	assert.Equal(t, []string{"Alameda", "Fresno"}, schema.Tables[0].Columns[2].Examples)
	assert.Equal(t, []string{"Oakland Unified"}, schema.Tables[1].Columns[1].Examples)
	assert.Contains(t, hit["schools"], "county")
	assert.Contains(t, hit["districts"], "name")
}

func TestAttachExamples_CapsPerColumn(t *testing.T) {
	schema := sampleSchema()
	matches := []lsh.Match{
		{Table: "schools", Column: "county", Value: "a"},
		{Table: "schools", Column: "county", Value: "b"},
		{Table: "schools", Column: "county", Value: "c"},
		{Table: "schools", Column: "county", Value: "d"},
	}
	AttachExamples(schema, matches)
	assert.Len(t, schema.Tables[0].Columns[2].Examples, maxExamplesPerColumn)
}

func TestReduce(t *testing.T) {
	schema := sampleSchema()
	hit := map[string]map[string]struct{}{
		"schools": {"county": {}},
	}
	reduced := Reduce(schema, hit)

	require.Len(t, reduced.Tables, 1)
	assert.Equal(t, "schools", reduced.Tables[0].Name)

	var names []string
	for _, c := range reduced.Tables[0].Columns {
		names = append(names, c.Name)
	}
	// Matched column plus the primary key and the foreign key column survive.
	assert.Equal(t, []string{"id", "county", "district_id"}, names)

	// districts was not matched, so the cross-table FK is dropped.
	assert.Empty(t, reduced.ForeignKeys)
}

func TestReduce_KeepsForeignKeysBetweenKeptTables(t *testing.T) {
	schema := sampleSchema()
	hit := map[string]map[string]struct{}{
		"schools":   {"county": {}},
		"districts": {"name": {}},
	}
	reduced := Reduce(schema, hit)
	require.Len(t, reduced.Tables, 2)
	assert.Len(t, reduced.ForeignKeys, 1)
}

func TestReduce_NoHits(t *testing.T) {
	reduced := Reduce(sampleSchema(), nil)
	assert.True(t, reduced.IsEmpty())
	assert.Equal(t, "california_schools", reduced.DBName)
}

func TestChooseStrategy(t *testing.T) {
	full := sampleSchema()
	reduced := Reduce(full, map[string]map[string]struct{}{"schools": {"county": {}}})

	assert.Equal(t, WithoutSchemaLink, ChooseStrategy(&Schema{}, full, 5))
	assert.Equal(t, WithSchemaLink, ChooseStrategy(reduced, full, 3))
	assert.Equal(t, WithoutSchemaLink, ChooseStrategy(reduced, full, 2))

	big := &Schema{Tables: make([]Table, largeSchemaTables+1)}
	assert.Equal(t, WithSchemaLink, ChooseStrategy(reduced, big, 0))
}

func TestMergeDescriptions(t *testing.T) {
	schema := sampleSchema()
	schema.Tables[0].Columns[1].Description = "already set"

	merged := MergeDescriptions(schema, []vectorstore.ScoredColumn{
		{Table: "schools", Column: "county", Description: "county of the school"},
		{Table: "schools", Column: "name", Description: "must not overwrite"},
		{Table: "schools", Column: "nope", Description: "unknown column"},
		{Table: "schools", Column: "id", Description: ""},
	})

	assert.Equal(t, 1, merged)
	assert.Equal(t, "county of the school", schema.Tables[0].Columns[2].Description)
	assert.Equal(t, "already set", schema.Tables[0].Columns[1].Description)
}
