package mschema

import (
	"github.com/thoth-ai/thoth/pkg/vectorstore"
)

// MergeDescriptions attaches vector store column descriptions onto matching
// schema columns. Unknown (table, column) pairs are ignored; enrichment never
// adds structure, only annotations.
func MergeDescriptions(schema *Schema, hits []vectorstore.ScoredColumn) int {
	index := make(map[string]*Column)
	for ti := range schema.Tables {
		table := &schema.Tables[ti]
		for ci := range table.Columns {
			index[table.Name+"\x00"+table.Columns[ci].Name] = &table.Columns[ci]
		}
	}

	merged := 0
	for _, hit := range hits {
		col, ok := index[hit.Table+"\x00"+hit.Column]
		if !ok || hit.Description == "" {
			continue
		}
		if col.Description == "" {
			col.Description = hit.Description
			merged++
		}
	}
	return merged
}
