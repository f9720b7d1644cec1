// Package mschema builds and renders the compact serialized schema
// representation included in SQL generation prompts.
package mschema

import (
	"context"

	"github.com/thoth-ai/thoth/pkg/config"
	"github.com/thoth-ai/thoth/pkg/dbadapter"
)

// Column is one column of the projected schema. Examples come from cell
// value lookups; Description comes from vector store enrichment.
type Column struct {
	Name        string   `json:"name"`
	DataType    string   `json:"data_type"`
	PrimaryKey  bool     `json:"primary_key"`
	Nullable    bool     `json:"nullable"`
	Description string   `json:"description,omitempty"`
	Examples    []string `json:"examples,omitempty"`
}

// Table is one table of the projected schema.
type Table struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Columns     []Column `json:"columns"`
}

// Schema is the projected schema of one target database.
type Schema struct {
	DBName      string                 `json:"db_name"`
	Dialect     config.Dialect         `json:"dialect"`
	Tables      []Table                `json:"tables"`
	ForeignKeys []dbadapter.ForeignKey `json:"foreign_keys,omitempty"`
}

// TableCount returns the number of tables.
func (s *Schema) TableCount() int { return len(s.Tables) }

// IsEmpty reports whether the schema has no tables.
func (s *Schema) IsEmpty() bool { return s == nil || len(s.Tables) == 0 }

// Build introspects the full schema of the target database.
func Build(ctx context.Context, mgr dbadapter.Manager, dbName string) (*Schema, error) {
	tables, err := mgr.Tables(ctx)
	if err != nil {
		return nil, err
	}
	fks, err := mgr.ForeignKeys(ctx)
	if err != nil {
		return nil, err
	}

	schema := &Schema{DBName: dbName, Dialect: mgr.Dialect(), ForeignKeys: fks}
	for _, t := range tables {
		cols, err := mgr.Columns(ctx, t.Name)
		if err != nil {
			return nil, err
		}
		table := Table{Name: t.Name}
		for _, c := range cols {
			table.Columns = append(table.Columns, Column{
				Name:       c.Name,
				DataType:   c.DataType,
				PrimaryKey: c.IsPrimaryKey,
				Nullable:   c.Nullable,
			})
		}
		schema.Tables = append(schema.Tables, table)
	}
	return schema, nil
}

// clone deep-copies the schema so renders can reorder without aliasing.
func (s *Schema) clone() *Schema {
	out := &Schema{DBName: s.DBName, Dialect: s.Dialect}
	out.ForeignKeys = append(out.ForeignKeys, s.ForeignKeys...)
	for _, t := range s.Tables {
		nt := Table{Name: t.Name, Description: t.Description}
		nt.Columns = append(nt.Columns, t.Columns...)
		out.Tables = append(out.Tables, nt)
	}
	return out
}
