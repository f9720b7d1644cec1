package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SqlTable holds the schema definition for one introspected table of a SqlDb.
type SqlTable struct {
	ent.Schema
}

// Fields of the SqlTable.
func (SqlTable) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Text("description").
			Optional().
			Comment("Human-authored description"),
		field.Text("ai_description").
			Optional().
			Comment("LLM-generated description"),
		field.Text("generated_comment").
			Optional().
			Comment("LLM-generated table comment from the comment job"),
	}
}

// Edges of the SqlTable.
func (SqlTable) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("sql_db", SqlDb.Type).
			Ref("tables").
			Unique().
			Required(),
		edge.To("columns", SqlColumn.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the SqlTable.
func (SqlTable) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
