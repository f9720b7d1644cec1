package vectorstore

import (
	"fmt"

	"github.com/tmc/langchaingo/schema"
)

// DocType discriminates the three document families stored in one collection.
type DocType string

const (
	DocTypeEvidence DocType = "evidence"
	DocTypeColumn   DocType = "column"
	DocTypeSQL      DocType = "sql"
)

const metaDocType = "doc_type"

// EvidenceDocument is a free-text domain hint uploaded by operators.
type EvidenceDocument struct {
	Evidence string
}

func (d EvidenceDocument) toSchema() schema.Document {
	return schema.Document{
		PageContent: d.Evidence,
		Metadata: map[string]any{
			metaDocType: string(DocTypeEvidence),
		},
	}
}

// ColumnDocument describes one column; the description is what gets embedded.
type ColumnDocument struct {
	Table       string
	Column      string
	DataType    string
	Description string
}

func (d ColumnDocument) toSchema() schema.Document {
	content := d.Description
	if content == "" {
		content = fmt.Sprintf("%s.%s", d.Table, d.Column)
	}
	return schema.Document{
		PageContent: content,
		Metadata: map[string]any{
			metaDocType: string(DocTypeColumn),
			"table":     d.Table,
			"column":    d.Column,
			"data_type": d.DataType,
		},
	}
}

// SQLPairDocument is a curated question/SQL pair with optional evidence;
// the question is embedded.
type SQLPairDocument struct {
	Question string
	SQL      string
	Evidence string
}

func (d SQLPairDocument) toSchema() schema.Document {
	return schema.Document{
		PageContent: d.Question,
		Metadata: map[string]any{
			metaDocType: string(DocTypeSQL),
			"sql":       d.SQL,
			"evidence":  d.Evidence,
		},
	}
}

// ScoredEvidence is an evidence hit with its similarity score.
type ScoredEvidence struct {
	Evidence string
	Score    float32
}

// ScoredColumn is a column-description hit with its similarity score.
type ScoredColumn struct {
	Table       string
	Column      string
	DataType    string
	Description string
	Score       float32
}

// ScoredSQLPair is a question/SQL hit with its similarity score.
type ScoredSQLPair struct {
	Question string
	SQL      string
	Evidence string
	Score    float32
}

func metaString(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
