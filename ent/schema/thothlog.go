package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ThothLog holds the persisted summary of one pipeline run.
// Rows are immutable after write.
type ThothLog struct {
	ent.Schema
}

// Fields of the ThothLog.
func (ThothLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Text("question").
			Immutable(),
		field.Text("sql").
			Immutable().
			Comment("Chosen SQL, or 'ERROR: <reason>' placeholder on failure"),
		field.String("username").
			Optional().
			Immutable(),
		field.String("agent_name").
			Optional().
			Immutable().
			Comment("Agent slot that produced the selected SQL"),
		field.Enum("sql_status").
			Values("GOLD", "SILVER", "FAILED").
			Immutable(),
		field.String("evaluation_case").
			Optional().
			Immutable().
			Comment("A, B, C or D"),
		field.Float("pass_rate").
			Default(0).
			Immutable(),
		field.JSON("pass_rates", []float64{}).
			Optional().
			Immutable(),
		field.JSON("tests_used", []string{}).
			Optional().
			Immutable(),
		field.JSON("evidence_used", []string{}).
			Optional().
			Immutable(),
		field.Time("started_at").
			Immutable(),
		field.Int64("duration_ms").
			Default(0).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ThothLog.
func (ThothLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("thoth_logs").
			Unique().
			Required(),
	}
}

// Indexes of the ThothLog.
func (ThothLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sql_status"),
		index.Fields("created_at"),
	}
}
