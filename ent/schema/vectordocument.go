package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// VectorDocument is the relational catalog of documents uploaded to a
// vector-store collection. The embedding itself lives in the vector backend;
// the catalog gives get_document, get_all_* and per-type counts without
// backend scroll APIs.
type VectorDocument struct {
	ent.Schema
}

// Fields of the VectorDocument.
func (VectorDocument) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("Stable document ID, also stored as metadata in the backend"),
		field.String("collection"),
		field.Enum("doc_type").
			Values("evidence", "column", "sql"),
		field.Text("content").
			Comment("Text that was embedded"),
		field.JSON("fields", map[string]any{}).
			Optional().
			Comment("Typed payload: evidence/column/sql specific fields"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the VectorDocument.
func (VectorDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("collection", "doc_type"),
	}
}
