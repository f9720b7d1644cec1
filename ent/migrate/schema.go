// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// RelationshipsColumns holds the columns for the "relationships" table.
	RelationshipsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "source_table", Type: field.TypeString},
		{Name: "source_column", Type: field.TypeString},
		{Name: "target_table", Type: field.TypeString},
		{Name: "target_column", Type: field.TypeString},
		{Name: "sql_db_relationships", Type: field.TypeString},
	}
	// RelationshipsTable holds the schema information for the "relationships" table.
	RelationshipsTable = &schema.Table{
		Name:       "relationships",
		Columns:    RelationshipsColumns,
		PrimaryKey: []*schema.Column{RelationshipsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "relationships_sql_dbs_relationships",
				Columns:    []*schema.Column{RelationshipsColumns[5]},
				RefColumns: []*schema.Column{SQLDbsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "relationship_source_table_source_column",
				Unique:  false,
				Columns: []*schema.Column{RelationshipsColumns[1], RelationshipsColumns[2]},
			},
			{
				Name:    "relationship_target_table_target_column",
				Unique:  false,
				Columns: []*schema.Column{RelationshipsColumns[3], RelationshipsColumns[4]},
			},
		},
	}
	// SQLColumnsColumns holds the columns for the "sql_columns" table.
	SQLColumnsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "original_name", Type: field.TypeString},
		{Name: "normalized_name", Type: field.TypeString},
		{Name: "data_format", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "ai_description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "value_description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "primary_key", Type: field.TypeString, Nullable: true},
		{Name: "foreign_key", Type: field.TypeString, Nullable: true},
		{Name: "generated_comment", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "sql_table_columns", Type: field.TypeString},
	}
	// SQLColumnsTable holds the schema information for the "sql_columns" table.
	SQLColumnsTable = &schema.Table{
		Name:       "sql_columns",
		Columns:    SQLColumnsColumns,
		PrimaryKey: []*schema.Column{SQLColumnsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sql_columns_sql_tables_columns",
				Columns:    []*schema.Column{SQLColumnsColumns[10]},
				RefColumns: []*schema.Column{SQLTablesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sqlcolumn_original_name",
				Unique:  false,
				Columns: []*schema.Column{SQLColumnsColumns[1]},
			},
			{
				Name:    "sqlcolumn_normalized_name",
				Unique:  false,
				Columns: []*schema.Column{SQLColumnsColumns[2]},
			},
		},
	}
	// SQLDbsColumns holds the columns for the "sql_dbs" table.
	SQLDbsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "dialect", Type: field.TypeEnum, Enums: []string{"PostgreSQL", "MySQL", "MariaDB", "SQLite", "SQLServer", "Oracle"}},
		{Name: "host", Type: field.TypeString, Nullable: true},
		{Name: "port", Type: field.TypeInt, Nullable: true},
		{Name: "database", Type: field.TypeString, Nullable: true},
		{Name: "username", Type: field.TypeString, Nullable: true},
		{Name: "password", Type: field.TypeString, Nullable: true},
		{Name: "db_schema", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "db_elements_status", Type: field.TypeEnum, Enums: []string{"IDLE", "RUNNING", "COMPLETED", "FAILED"}, Default: "IDLE"},
		{Name: "db_elements_task_id", Type: field.TypeString, Nullable: true},
		{Name: "db_elements_log", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "db_elements_start_time", Type: field.TypeTime, Nullable: true},
		{Name: "db_elements_end_time", Type: field.TypeTime, Nullable: true},
		{Name: "table_comment_status", Type: field.TypeEnum, Enums: []string{"IDLE", "RUNNING", "COMPLETED", "FAILED"}, Default: "IDLE"},
		{Name: "table_comment_task_id", Type: field.TypeString, Nullable: true},
		{Name: "table_comment_log", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "table_comment_start_time", Type: field.TypeTime, Nullable: true},
		{Name: "table_comment_end_time", Type: field.TypeTime, Nullable: true},
		{Name: "column_comment_status", Type: field.TypeEnum, Enums: []string{"IDLE", "RUNNING", "COMPLETED", "FAILED"}, Default: "IDLE"},
		{Name: "column_comment_task_id", Type: field.TypeString, Nullable: true},
		{Name: "column_comment_log", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "column_comment_start_time", Type: field.TypeTime, Nullable: true},
		{Name: "column_comment_end_time", Type: field.TypeTime, Nullable: true},
		{Name: "sql_db_vector_db", Type: field.TypeString, Nullable: true},
		{Name: "workspace_sql_db", Type: field.TypeString, Unique: true, Nullable: true},
	}
	// SQLDbsTable holds the schema information for the "sql_dbs" table.
	SQLDbsTable = &schema.Table{
		Name:       "sql_dbs",
		Columns:    SQLDbsColumns,
		PrimaryKey: []*schema.Column{SQLDbsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sql_dbs_vector_dbs_vector_db",
				Columns:    []*schema.Column{SQLDbsColumns[25]},
				RefColumns: []*schema.Column{VectorDbsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "sql_dbs_workspaces_sql_db",
				Columns:    []*schema.Column{SQLDbsColumns[26]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sqldb_name",
				Unique:  false,
				Columns: []*schema.Column{SQLDbsColumns[1]},
			},
			{
				Name:    "sqldb_dialect",
				Unique:  false,
				Columns: []*schema.Column{SQLDbsColumns[2]},
			},
		},
	}
	// SQLTablesColumns holds the columns for the "sql_tables" table.
	SQLTablesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "ai_description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "generated_comment", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "sql_db_tables", Type: field.TypeString},
	}
	// SQLTablesTable holds the schema information for the "sql_tables" table.
	SQLTablesTable = &schema.Table{
		Name:       "sql_tables",
		Columns:    SQLTablesColumns,
		PrimaryKey: []*schema.Column{SQLTablesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sql_tables_sql_dbs_tables",
				Columns:    []*schema.Column{SQLTablesColumns[5]},
				RefColumns: []*schema.Column{SQLDbsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sqltable_name",
				Unique:  false,
				Columns: []*schema.Column{SQLTablesColumns[1]},
			},
		},
	}
	// ThothLogsColumns holds the columns for the "thoth_logs" table.
	ThothLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "sql", Type: field.TypeString, Size: 2147483647},
		{Name: "username", Type: field.TypeString, Nullable: true},
		{Name: "agent_name", Type: field.TypeString, Nullable: true},
		{Name: "sql_status", Type: field.TypeEnum, Enums: []string{"GOLD", "SILVER", "FAILED"}},
		{Name: "evaluation_case", Type: field.TypeString, Nullable: true},
		{Name: "pass_rate", Type: field.TypeFloat64, Default: 0},
		{Name: "pass_rates", Type: field.TypeJSON, Nullable: true},
		{Name: "tests_used", Type: field.TypeJSON, Nullable: true},
		{Name: "evidence_used", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workspace_thoth_logs", Type: field.TypeString},
	}
	// ThothLogsTable holds the schema information for the "thoth_logs" table.
	ThothLogsTable = &schema.Table{
		Name:       "thoth_logs",
		Columns:    ThothLogsColumns,
		PrimaryKey: []*schema.Column{ThothLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "thoth_logs_workspaces_thoth_logs",
				Columns:    []*schema.Column{ThothLogsColumns[14]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "thothlog_sql_status",
				Unique:  false,
				Columns: []*schema.Column{ThothLogsColumns[5]},
			},
			{
				Name:    "thothlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{ThothLogsColumns[13]},
			},
		},
	}
	// VectorDbsColumns holds the columns for the "vector_dbs" table.
	VectorDbsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "backend", Type: field.TypeEnum, Enums: []string{"Qdrant", "Chroma", "PGVector", "Milvus"}},
		{Name: "host", Type: field.TypeString},
		{Name: "port", Type: field.TypeInt, Nullable: true},
		{Name: "username", Type: field.TypeString, Nullable: true},
		{Name: "password", Type: field.TypeString, Nullable: true},
		{Name: "api_key", Type: field.TypeString, Nullable: true},
		{Name: "tenant", Type: field.TypeString, Nullable: true},
		{Name: "collection", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// VectorDbsTable holds the schema information for the "vector_dbs" table.
	VectorDbsTable = &schema.Table{
		Name:       "vector_dbs",
		Columns:    VectorDbsColumns,
		PrimaryKey: []*schema.Column{VectorDbsColumns[0]},
	}
	// VectorDocumentsColumns holds the columns for the "vector_documents" table.
	VectorDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "collection", Type: field.TypeString},
		{Name: "doc_type", Type: field.TypeEnum, Enums: []string{"evidence", "column", "sql"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "fields", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// VectorDocumentsTable holds the schema information for the "vector_documents" table.
	VectorDocumentsTable = &schema.Table{
		Name:       "vector_documents",
		Columns:    VectorDocumentsColumns,
		PrimaryKey: []*schema.Column{VectorDocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vectordocument_collection_doc_type",
				Unique:  false,
				Columns: []*schema.Column{VectorDocumentsColumns[1], VectorDocumentsColumns[2]},
			},
		},
	}
	// WorkspacesColumns holds the columns for the "workspaces" table.
	WorkspacesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "default_model", Type: field.TypeString},
		{Name: "language", Type: field.TypeString, Default: "English"},
		{Name: "agent_slots", Type: field.TypeJSON, Nullable: true},
		{Name: "last_preprocess", Type: field.TypeTime, Nullable: true},
		{Name: "last_evidence_load", Type: field.TypeTime, Nullable: true},
		{Name: "last_sql_loaded", Type: field.TypeTime, Nullable: true},
		{Name: "users", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkspacesTable holds the schema information for the "workspaces" table.
	WorkspacesTable = &schema.Table{
		Name:       "workspaces",
		Columns:    WorkspacesColumns,
		PrimaryKey: []*schema.Column{WorkspacesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workspace_name",
				Unique:  false,
				Columns: []*schema.Column{WorkspacesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		RelationshipsTable,
		SQLColumnsTable,
		SQLDbsTable,
		SQLTablesTable,
		ThothLogsTable,
		VectorDbsTable,
		VectorDocumentsTable,
		WorkspacesTable,
	}
)

func init() {
	RelationshipsTable.ForeignKeys[0].RefTable = SQLDbsTable
	SQLColumnsTable.ForeignKeys[0].RefTable = SQLTablesTable
	SQLDbsTable.ForeignKeys[0].RefTable = VectorDbsTable
	SQLDbsTable.ForeignKeys[1].RefTable = WorkspacesTable
	SQLTablesTable.ForeignKeys[0].RefTable = SQLDbsTable
	ThothLogsTable.ForeignKeys[0].RefTable = WorkspacesTable
}
