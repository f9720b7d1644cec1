package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Relationship connects (source_table, source_column) to
// (target_table, target_column). All four endpoints must belong to the
// owning SqlDb; the elements-creation job enforces this on upsert.
type Relationship struct {
	ent.Schema
}

// Fields of the Relationship.
func (Relationship) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("source_table"),
		field.String("source_column"),
		field.String("target_table"),
		field.String("target_column"),
	}
}

// Edges of the Relationship.
func (Relationship) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("sql_db", SqlDb.Type).
			Ref("relationships").
			Unique().
			Required(),
	}
}

// Indexes of the Relationship.
func (Relationship) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_table", "source_column"),
		index.Fields("target_table", "target_column"),
	}
}
