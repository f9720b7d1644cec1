package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// VectorDb holds the schema definition for a connection to a vector store.
// A VectorDb may be referenced by at most one SqlDb at a time; the import
// path unsets the previous owner before reassigning.
type VectorDb struct {
	ent.Schema
}

// Fields of the VectorDb.
func (VectorDb) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Enum("backend").
			Values("Qdrant", "Chroma", "PGVector", "Milvus"),
		field.String("host"),
		field.Int("port").
			Optional(),
		field.String("username").
			Optional(),
		field.String("password").
			Optional().
			Sensitive(),
		field.String("api_key").
			Optional().
			Sensitive(),
		field.String("tenant").
			Optional(),
		field.String("collection").
			Comment("Logical collection name; defaults to the owning SqlDb's name"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
