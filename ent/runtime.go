// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/thoth-ai/thoth/ent/schema"
	"github.com/thoth-ai/thoth/ent/sqldb"
	"github.com/thoth-ai/thoth/ent/thothlog"
	"github.com/thoth-ai/thoth/ent/vectordb"
	"github.com/thoth-ai/thoth/ent/vectordocument"
	"github.com/thoth-ai/thoth/ent/workspace"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	sqldbFields := schema.SqlDb{}.Fields()
	_ = sqldbFields
	// sqldbDescCreatedAt is the schema descriptor for created_at field.
	sqldbDescCreatedAt := sqldbFields[9].Descriptor()
	// sqldb.DefaultCreatedAt holds the default value on creation for the created_at field.
	sqldb.DefaultCreatedAt = sqldbDescCreatedAt.Default.(func() time.Time)
	thothlogFields := schema.ThothLog{}.Fields()
	_ = thothlogFields
	// thothlogDescPassRate is the schema descriptor for pass_rate field.
	thothlogDescPassRate := thothlogFields[7].Descriptor()
	// thothlog.DefaultPassRate holds the default value on creation for the pass_rate field.
	thothlog.DefaultPassRate = thothlogDescPassRate.Default.(float64)
	// thothlogDescDurationMs is the schema descriptor for duration_ms field.
	thothlogDescDurationMs := thothlogFields[12].Descriptor()
	// thothlog.DefaultDurationMs holds the default value on creation for the duration_ms field.
	thothlog.DefaultDurationMs = thothlogDescDurationMs.Default.(int64)
	// thothlogDescCreatedAt is the schema descriptor for created_at field.
	thothlogDescCreatedAt := thothlogFields[13].Descriptor()
	// thothlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	thothlog.DefaultCreatedAt = thothlogDescCreatedAt.Default.(func() time.Time)
	vectordbFields := schema.VectorDb{}.Fields()
	_ = vectordbFields
	// vectordbDescCreatedAt is the schema descriptor for created_at field.
	vectordbDescCreatedAt := vectordbFields[9].Descriptor()
	// vectordb.DefaultCreatedAt holds the default value on creation for the created_at field.
	vectordb.DefaultCreatedAt = vectordbDescCreatedAt.Default.(func() time.Time)
	vectordocumentFields := schema.VectorDocument{}.Fields()
	_ = vectordocumentFields
	// vectordocumentDescCreatedAt is the schema descriptor for created_at field.
	vectordocumentDescCreatedAt := vectordocumentFields[5].Descriptor()
	// vectordocument.DefaultCreatedAt holds the default value on creation for the created_at field.
	vectordocument.DefaultCreatedAt = vectordocumentDescCreatedAt.Default.(func() time.Time)
	workspaceFields := schema.Workspace{}.Fields()
	_ = workspaceFields
	// workspaceDescLanguage is the schema descriptor for language field.
	workspaceDescLanguage := workspaceFields[3].Descriptor()
	// workspace.DefaultLanguage holds the default value on creation for the language field.
	workspace.DefaultLanguage = workspaceDescLanguage.Default.(string)
	// workspaceDescCreatedAt is the schema descriptor for created_at field.
	workspaceDescCreatedAt := workspaceFields[9].Descriptor()
	// workspace.DefaultCreatedAt holds the default value on creation for the created_at field.
	workspace.DefaultCreatedAt = workspaceDescCreatedAt.Default.(func() time.Time)
	// workspaceDescUpdatedAt is the schema descriptor for updated_at field.
	workspaceDescUpdatedAt := workspaceFields[10].Descriptor()
	// workspace.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workspace.DefaultUpdatedAt = workspaceDescUpdatedAt.Default.(func() time.Time)
	// workspace.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workspace.UpdateDefaultUpdatedAt = workspaceDescUpdatedAt.UpdateDefault.(func() time.Time)
}
