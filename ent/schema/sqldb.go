package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// jobStatusValues are the states of a per-DB async job.
var jobStatusValues = []string{"IDLE", "RUNNING", "COMPLETED", "FAILED"}

// SqlDb holds the schema definition for a declared connection to a target
// database. Carries the per-DB async-job status quintuples for db_elements,
// table_comment and column_comment.
type SqlDb struct {
	ent.Schema
}

// Fields of the SqlDb.
func (SqlDb) Fields() []ent.Field {
	fields := []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			Comment("Logical database name; also the vector-store collection key"),
		field.Enum("dialect").
			Values("PostgreSQL", "MySQL", "MariaDB", "SQLite", "SQLServer", "Oracle"),
		field.String("host").
			Optional(),
		field.Int("port").
			Optional(),
		field.String("database").
			Optional(),
		field.String("username").
			Optional(),
		field.String("password").
			Optional().
			Sensitive(),
		field.String("db_schema").
			Optional().
			Comment("Optional schema qualifier (Postgres/SQL Server/Oracle)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}

	// Status quintuple per async job type.
	for _, job := range []string{"db_elements", "table_comment", "column_comment"} {
		fields = append(fields,
			field.Enum(job+"_status").
				Values(jobStatusValues...).
				Default("IDLE"),
			field.String(job+"_task_id").
				Optional(),
			field.Text(job+"_log").
				Optional(),
			field.Time(job+"_start_time").
				Optional().
				Nillable(),
			field.Time(job+"_end_time").
				Optional().
				Nillable(),
		)
	}

	return fields
}

// Edges of the SqlDb.
func (SqlDb) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("sql_db").
			Unique(),
		edge.To("vector_db", VectorDb.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.To("tables", SqlTable.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("relationships", Relationship.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the SqlDb.
func (SqlDb) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
		index.Fields("dialect"),
	}
}
