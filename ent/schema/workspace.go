package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Workspace holds the schema definition for a named tenant configuration.
// A workspace owns exactly one SqlDb, a default model, and up to nine named
// agent slots resolved against the model registry.
type Workspace struct {
	ent.Schema
}

// Fields of the Workspace.
func (Workspace) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.String("default_model").
			Comment("Model registry key used when an agent slot has no override"),
		field.String("language").
			Default("English").
			Comment("Expected question language; mismatches go through the translator"),
		field.JSON("agent_slots", map[string]string{}).
			Optional().
			Comment("Agent slot name → model registry key"),
		field.Time("last_preprocess").
			Optional().
			Nillable(),
		field.Time("last_evidence_load").
			Optional().
			Nillable(),
		field.Time("last_sql_loaded").
			Optional().
			Nillable(),
		field.JSON("users", []string{}).
			Optional().
			Comment("Usernames with access (many-to-many kept as a flat list; auth is external)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Workspace.
func (Workspace) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sql_db", SqlDb.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.To("thoth_logs", ThothLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Workspace.
func (Workspace) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
