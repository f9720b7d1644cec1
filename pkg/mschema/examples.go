package mschema

import (
	"github.com/thoth-ai/thoth/pkg/lsh"
)

// maxExamplesPerColumn caps how many sampled values are attached to one
// column in the rendered schema.
const maxExamplesPerColumn = 3

// AttachExamples merges LSH matches onto the schema as column examples.
// Returns the map of table to matched columns, which Reduce consumes.
func AttachExamples(schema *Schema, matches []lsh.Match) map[string]map[string]struct{} {
	hit := make(map[string]map[string]struct{})
	byColumn := make(map[string][]string)
	for _, m := range matches {
		key := m.Table + "\x00" + m.Column
		byColumn[key] = append(byColumn[key], m.Value)
		if hit[m.Table] == nil {
			hit[m.Table] = make(map[string]struct{})
		}
		hit[m.Table][m.Column] = struct{}{}
	}

	for ti := range schema.Tables {
		table := &schema.Tables[ti]
		for ci := range table.Columns {
			col := &table.Columns[ci]
			values := byColumn[table.Name+"\x00"+col.Name]
			if len(values) == 0 {
				continue
			}
			seen := make(map[string]struct{})
			for _, v := range values {
				if _, dup := seen[v]; dup {
					continue
				}
				seen[v] = struct{}{}
				col.Examples = append(col.Examples, v)
				if len(col.Examples) == maxExamplesPerColumn {
					break
				}
			}
		}
	}
	return hit
}

// Reduce projects the schema down to the tables that matched at least one
// keyword. Within a matched table it keeps matched columns, primary keys,
// and foreign key columns so joins stay expressible.
func Reduce(schema *Schema, hit map[string]map[string]struct{}) *Schema {
	if len(hit) == 0 {
		return &Schema{DBName: schema.DBName, Dialect: schema.Dialect}
	}

	fkCols := make(map[string]map[string]struct{})
	note := func(table, column string) {
		if fkCols[table] == nil {
			fkCols[table] = make(map[string]struct{})
		}
		fkCols[table][column] = struct{}{}
	}
	for _, fk := range schema.ForeignKeys {
		note(fk.Table, fk.Column)
		note(fk.TargetTable, fk.TargetColumn)
	}

	out := &Schema{DBName: schema.DBName, Dialect: schema.Dialect}
	kept := make(map[string]struct{})
	for _, table := range schema.Tables {
		matched, ok := hit[table.Name]
		if !ok {
			continue
		}
		nt := Table{Name: table.Name, Description: table.Description}
		for _, col := range table.Columns {
			_, isMatch := matched[col.Name]
			_, isFK := fkCols[table.Name][col.Name]
			if !isMatch && !isFK && !col.PrimaryKey {
				continue
			}
			nt.Columns = append(nt.Columns, col)
		}
		out.Tables = append(out.Tables, nt)
		kept[table.Name] = struct{}{}
	}

	for _, fk := range schema.ForeignKeys {
		if _, a := kept[fk.Table]; !a {
			continue
		}
		if _, b := kept[fk.TargetTable]; !b {
			continue
		}
		out.ForeignKeys = append(out.ForeignKeys, fk)
	}
	return out
}
