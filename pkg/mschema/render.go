package mschema

import (
	"fmt"
	"math/rand"
	"strings"
)

// shuffleStride spreads per-call seeds so consecutive call indices produce
// unrelated permutations from the same request seed.
const shuffleStride = 0x9E3779B9

// Render serializes the schema into the compact prompt representation.
func Render(schema *Schema) string {
	var b strings.Builder
	fmt.Fprintf(&b, "DB: %s (%s)\n", schema.DBName, schema.Dialect)
	for _, table := range schema.Tables {
		fmt.Fprintf(&b, "TABLE %s", table.Name)
		if table.Description != "" {
			fmt.Fprintf(&b, " -- %s", table.Description)
		}
		b.WriteByte('\n')
		for _, col := range table.Columns {
			fmt.Fprintf(&b, "  %s %s", col.Name, col.DataType)
			if col.PrimaryKey {
				b.WriteString(" PK")
			}
			if !col.Nullable && !col.PrimaryKey {
				b.WriteString(" NOT NULL")
			}
			var notes []string
			if col.Description != "" {
				notes = append(notes, col.Description)
			}
			if len(col.Examples) > 0 {
				notes = append(notes, "e.g. "+strings.Join(col.Examples, ", "))
			}
			if len(notes) > 0 {
				fmt.Fprintf(&b, " -- %s", strings.Join(notes, "; "))
			}
			b.WriteByte('\n')
		}
	}
	if len(schema.ForeignKeys) > 0 {
		b.WriteString("FOREIGN KEYS\n")
		for _, fk := range schema.ForeignKeys {
			fmt.Fprintf(&b, "  %s.%s -> %s.%s\n", fk.Table, fk.Column, fk.TargetTable, fk.TargetColumn)
		}
	}
	return b.String()
}

// RenderShuffled renders the schema with tables and columns permuted by a
// per-call deterministic source: the same (seed, callIndex) always yields the
// same text, while different call indices yield different permutations.
func RenderShuffled(schema *Schema, seed int64, callIndex int) string {
	rng := rand.New(rand.NewSource(seed + int64(callIndex)*shuffleStride))

	shuffled := schema.clone()
	rng.Shuffle(len(shuffled.Tables), func(i, j int) {
		shuffled.Tables[i], shuffled.Tables[j] = shuffled.Tables[j], shuffled.Tables[i]
	})
	for ti := range shuffled.Tables {
		cols := shuffled.Tables[ti].Columns
		rng.Shuffle(len(cols), func(i, j int) {
			cols[i], cols[j] = cols[j], cols[i]
		})
	}
	return Render(shuffled)
}
