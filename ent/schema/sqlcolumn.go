package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SqlColumn holds the schema definition for one introspected column.
type SqlColumn struct {
	ent.Schema
}

// Fields of the SqlColumn.
func (SqlColumn) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("original_name").
			Comment("Column name as it appears in the target database"),
		field.String("normalized_name").
			Comment("Lower-cased, underscore-normalized name used in prompts"),
		field.String("data_format").
			Optional().
			Comment("Declared column type, e.g. INTEGER, VARCHAR(40)"),
		field.Text("description").
			Optional(),
		field.Text("ai_description").
			Optional(),
		field.Text("value_description").
			Optional().
			Comment("Explanation of value semantics, e.g. code lists"),
		field.String("primary_key").
			Optional().
			Comment("Non-empty when the column is part of the primary key"),
		field.String("foreign_key").
			Optional().
			Comment("Non-empty when the column participates in a foreign key"),
		field.Text("generated_comment").
			Optional(),
	}
}

// Edges of the SqlColumn.
func (SqlColumn) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("sql_table", SqlTable.Type).
			Ref("columns").
			Unique().
			Required(),
	}
}

// Indexes of the SqlColumn.
func (SqlColumn) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("original_name"),
		index.Fields("normalized_name"),
	}
}
