// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/thoth-ai/thoth/ent/sqldb"
	"github.com/thoth-ai/thoth/ent/vectordb"
	"github.com/thoth-ai/thoth/ent/workspace"
)

// SqlDb is the model entity for the SqlDb schema.
type SqlDb struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Logical database name; also the vector-store collection key
	Name string `json:"name,omitempty"`
	// Dialect holds the value of the "dialect" field.
	Dialect sqldb.Dialect `json:"dialect,omitempty"`
	// Host holds the value of the "host" field.
	Host string `json:"host,omitempty"`
	// Port holds the value of the "port" field.
	Port int `json:"port,omitempty"`
	// Database holds the value of the "database" field.
	Database string `json:"database,omitempty"`
	// Username holds the value of the "username" field.
	Username string `json:"username,omitempty"`
	// Password holds the value of the "password" field.
	Password string `json:"-"`
	// Optional schema qualifier (Postgres/SQL Server/Oracle)
	DbSchema string `json:"db_schema,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// DbElementsStatus holds the value of the "db_elements_status" field.
	DbElementsStatus sqldb.DbElementsStatus `json:"db_elements_status,omitempty"`
	// DbElementsTaskID holds the value of the "db_elements_task_id" field.
	DbElementsTaskID string `json:"db_elements_task_id,omitempty"`
	// DbElementsLog holds the value of the "db_elements_log" field.
	DbElementsLog string `json:"db_elements_log,omitempty"`
	// DbElementsStartTime holds the value of the "db_elements_start_time" field.
	DbElementsStartTime *time.Time `json:"db_elements_start_time,omitempty"`
	// DbElementsEndTime holds the value of the "db_elements_end_time" field.
	DbElementsEndTime *time.Time `json:"db_elements_end_time,omitempty"`
	// TableCommentStatus holds the value of the "table_comment_status" field.
	TableCommentStatus sqldb.TableCommentStatus `json:"table_comment_status,omitempty"`
	// TableCommentTaskID holds the value of the "table_comment_task_id" field.
	TableCommentTaskID string `json:"table_comment_task_id,omitempty"`
	// TableCommentLog holds the value of the "table_comment_log" field.
	TableCommentLog string `json:"table_comment_log,omitempty"`
	// TableCommentStartTime holds the value of the "table_comment_start_time" field.
	TableCommentStartTime *time.Time `json:"table_comment_start_time,omitempty"`
	// TableCommentEndTime holds the value of the "table_comment_end_time" field.
	TableCommentEndTime *time.Time `json:"table_comment_end_time,omitempty"`
	// ColumnCommentStatus holds the value of the "column_comment_status" field.
	ColumnCommentStatus sqldb.ColumnCommentStatus `json:"column_comment_status,omitempty"`
	// ColumnCommentTaskID holds the value of the "column_comment_task_id" field.
	ColumnCommentTaskID string `json:"column_comment_task_id,omitempty"`
	// ColumnCommentLog holds the value of the "column_comment_log" field.
	ColumnCommentLog string `json:"column_comment_log,omitempty"`
	// ColumnCommentStartTime holds the value of the "column_comment_start_time" field.
	ColumnCommentStartTime *time.Time `json:"column_comment_start_time,omitempty"`
	// ColumnCommentEndTime holds the value of the "column_comment_end_time" field.
	ColumnCommentEndTime *time.Time `json:"column_comment_end_time,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SqlDbQuery when eager-loading is set.
	Edges            SqlDbEdges `json:"edges"`
	sql_db_vector_db *string
	workspace_sql_db *string
	selectValues     sql.SelectValues
}

// SqlDbEdges holds the relations/edges for other nodes in the graph.
type SqlDbEdges struct {
	// Workspace holds the value of the workspace edge.
	Workspace *Workspace `json:"workspace,omitempty"`
	// VectorDb holds the value of the vector_db edge.
	VectorDb *VectorDb `json:"vector_db,omitempty"`
	// Tables holds the value of the tables edge.
	Tables []*SqlTable `json:"tables,omitempty"`
	// Relationships holds the value of the relationships edge.
	Relationships []*Relationship `json:"relationships,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// WorkspaceOrErr returns the Workspace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SqlDbEdges) WorkspaceOrErr() (*Workspace, error) {
	if e.Workspace != nil {
		return e.Workspace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workspace.Label}
	}
	return nil, &NotLoadedError{edge: "workspace"}
}

// VectorDbOrErr returns the VectorDb value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SqlDbEdges) VectorDbOrErr() (*VectorDb, error) {
	if e.VectorDb != nil {
		return e.VectorDb, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: vectordb.Label}
	}
	return nil, &NotLoadedError{edge: "vector_db"}
}

// TablesOrErr returns the Tables value or an error if the edge
// was not loaded in eager-loading.
func (e SqlDbEdges) TablesOrErr() ([]*SqlTable, error) {
	if e.loadedTypes[2] {
		return e.Tables, nil
	}
	return nil, &NotLoadedError{edge: "tables"}
}

// RelationshipsOrErr returns the Relationships value or an error if the edge
// was not loaded in eager-loading.
func (e SqlDbEdges) RelationshipsOrErr() ([]*Relationship, error) {
	if e.loadedTypes[3] {
		return e.Relationships, nil
	}
	return nil, &NotLoadedError{edge: "relationships"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SqlDb) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sqldb.FieldPort:
			values[i] = new(sql.NullInt64)
		case sqldb.FieldID, sqldb.FieldName, sqldb.FieldDialect, sqldb.FieldHost, sqldb.FieldDatabase, sqldb.FieldUsername, sqldb.FieldPassword, sqldb.FieldDbSchema, sqldb.FieldDbElementsStatus, sqldb.FieldDbElementsTaskID, sqldb.FieldDbElementsLog, sqldb.FieldTableCommentStatus, sqldb.FieldTableCommentTaskID, sqldb.FieldTableCommentLog, sqldb.FieldColumnCommentStatus, sqldb.FieldColumnCommentTaskID, sqldb.FieldColumnCommentLog:
			values[i] = new(sql.NullString)
		case sqldb.FieldCreatedAt, sqldb.FieldDbElementsStartTime, sqldb.FieldDbElementsEndTime, sqldb.FieldTableCommentStartTime, sqldb.FieldTableCommentEndTime, sqldb.FieldColumnCommentStartTime, sqldb.FieldColumnCommentEndTime:
			values[i] = new(sql.NullTime)
		case sqldb.ForeignKeys[0]: // sql_db_vector_db
			values[i] = new(sql.NullString)
		case sqldb.ForeignKeys[1]: // workspace_sql_db
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SqlDb fields.
func (_m *SqlDb) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sqldb.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sqldb.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case sqldb.FieldDialect:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dialect", values[i])
			} else if value.Valid {
				_m.Dialect = sqldb.Dialect(value.String)
			}
		case sqldb.FieldHost:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field host", values[i])
			} else if value.Valid {
				_m.Host = value.String
			}
		case sqldb.FieldPort:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field port", values[i])
			} else if value.Valid {
				_m.Port = int(value.Int64)
			}
		case sqldb.FieldDatabase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field database", values[i])
			} else if value.Valid {
				_m.Database = value.String
			}
		case sqldb.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		case sqldb.FieldPassword:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field password", values[i])
			} else if value.Valid {
				_m.Password = value.String
			}
		case sqldb.FieldDbSchema:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field db_schema", values[i])
			} else if value.Valid {
				_m.DbSchema = value.String
			}
		case sqldb.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sqldb.FieldDbElementsStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field db_elements_status", values[i])
			} else if value.Valid {
				_m.DbElementsStatus = sqldb.DbElementsStatus(value.String)
			}
		case sqldb.FieldDbElementsTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field db_elements_task_id", values[i])
			} else if value.Valid {
				_m.DbElementsTaskID = value.String
			}
		case sqldb.FieldDbElementsLog:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field db_elements_log", values[i])
			} else if value.Valid {
				_m.DbElementsLog = value.String
			}
		case sqldb.FieldDbElementsStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field db_elements_start_time", values[i])
			} else if value.Valid {
				_m.DbElementsStartTime = new(time.Time)
				*_m.DbElementsStartTime = value.Time
			}
		case sqldb.FieldDbElementsEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field db_elements_end_time", values[i])
			} else if value.Valid {
				_m.DbElementsEndTime = new(time.Time)
				*_m.DbElementsEndTime = value.Time
			}
		case sqldb.FieldTableCommentStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field table_comment_status", values[i])
			} else if value.Valid {
				_m.TableCommentStatus = sqldb.TableCommentStatus(value.String)
			}
		case sqldb.FieldTableCommentTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field table_comment_task_id", values[i])
			} else if value.Valid {
				_m.TableCommentTaskID = value.String
			}
		case sqldb.FieldTableCommentLog:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field table_comment_log", values[i])
			} else if value.Valid {
				_m.TableCommentLog = value.String
			}
		case sqldb.FieldTableCommentStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field table_comment_start_time", values[i])
			} else if value.Valid {
				_m.TableCommentStartTime = new(time.Time)
				*_m.TableCommentStartTime = value.Time
			}
		case sqldb.FieldTableCommentEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field table_comment_end_time", values[i])
			} else if value.Valid {
				_m.TableCommentEndTime = new(time.Time)
				*_m.TableCommentEndTime = value.Time
			}
		case sqldb.FieldColumnCommentStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field column_comment_status", values[i])
			} else if value.Valid {
				_m.ColumnCommentStatus = sqldb.ColumnCommentStatus(value.String)
			}
		case sqldb.FieldColumnCommentTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field column_comment_task_id", values[i])
			} else if value.Valid {
				_m.ColumnCommentTaskID = value.String
			}
		case sqldb.FieldColumnCommentLog:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field column_comment_log", values[i])
			} else if value.Valid {
				_m.ColumnCommentLog = value.String
			}
		case sqldb.FieldColumnCommentStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field column_comment_start_time", values[i])
			} else if value.Valid {
				_m.ColumnCommentStartTime = new(time.Time)
				*_m.ColumnCommentStartTime = value.Time
			}
		case sqldb.FieldColumnCommentEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field column_comment_end_time", values[i])
			} else if value.Valid {
				_m.ColumnCommentEndTime = new(time.Time)
				*_m.ColumnCommentEndTime = value.Time
			}
		case sqldb.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sql_db_vector_db", values[i])
			} else if value.Valid {
				_m.sql_db_vector_db = new(string)
				*_m.sql_db_vector_db = value.String
			}
		case sqldb.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_sql_db", values[i])
			} else if value.Valid {
				_m.workspace_sql_db = new(string)
				*_m.workspace_sql_db = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SqlDb.
// This includes values selected through modifiers, order, etc.
func (_m *SqlDb) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkspace queries the "workspace" edge of the SqlDb entity.
func (_m *SqlDb) QueryWorkspace() *WorkspaceQuery {
	return NewSqlDbClient(_m.config).QueryWorkspace(_m)
}

// QueryVectorDb queries the "vector_db" edge of the SqlDb entity.
func (_m *SqlDb) QueryVectorDb() *VectorDbQuery {
	return NewSqlDbClient(_m.config).QueryVectorDb(_m)
}

// QueryTables queries the "tables" edge of the SqlDb entity.
func (_m *SqlDb) QueryTables() *SqlTableQuery {
	return NewSqlDbClient(_m.config).QueryTables(_m)
}

// QueryRelationships queries the "relationships" edge of the SqlDb entity.
func (_m *SqlDb) QueryRelationships() *RelationshipQuery {
	return NewSqlDbClient(_m.config).QueryRelationships(_m)
}

// Update returns a builder for updating this SqlDb.
// Note that you need to call SqlDb.Unwrap() before calling this method if this SqlDb
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SqlDb) Update() *SqlDbUpdateOne {
	return NewSqlDbClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SqlDb entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SqlDb) Unwrap() *SqlDb {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SqlDb is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SqlDb) String() string {
	var builder strings.Builder
	builder.WriteString("SqlDb(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("dialect=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dialect))
	builder.WriteString(", ")
	builder.WriteString("host=")
	builder.WriteString(_m.Host)
	builder.WriteString(", ")
	builder.WriteString("port=")
	builder.WriteString(fmt.Sprintf("%v", _m.Port))
	builder.WriteString(", ")
	builder.WriteString("database=")
	builder.WriteString(_m.Database)
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteString(", ")
	builder.WriteString("password=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("db_schema=")
	builder.WriteString(_m.DbSchema)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("db_elements_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.DbElementsStatus))
	builder.WriteString(", ")
	builder.WriteString("db_elements_task_id=")
	builder.WriteString(_m.DbElementsTaskID)
	builder.WriteString(", ")
	builder.WriteString("db_elements_log=")
	builder.WriteString(_m.DbElementsLog)
	builder.WriteString(", ")
	if v := _m.DbElementsStartTime; v != nil {
		builder.WriteString("db_elements_start_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DbElementsEndTime; v != nil {
		builder.WriteString("db_elements_end_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("table_comment_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.TableCommentStatus))
	builder.WriteString(", ")
	builder.WriteString("table_comment_task_id=")
	builder.WriteString(_m.TableCommentTaskID)
	builder.WriteString(", ")
	builder.WriteString("table_comment_log=")
	builder.WriteString(_m.TableCommentLog)
	builder.WriteString(", ")
	if v := _m.TableCommentStartTime; v != nil {
		builder.WriteString("table_comment_start_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TableCommentEndTime; v != nil {
		builder.WriteString("table_comment_end_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("column_comment_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ColumnCommentStatus))
	builder.WriteString(", ")
	builder.WriteString("column_comment_task_id=")
	builder.WriteString(_m.ColumnCommentTaskID)
	builder.WriteString(", ")
	builder.WriteString("column_comment_log=")
	builder.WriteString(_m.ColumnCommentLog)
	builder.WriteString(", ")
	if v := _m.ColumnCommentStartTime; v != nil {
		builder.WriteString("column_comment_start_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ColumnCommentEndTime; v != nil {
		builder.WriteString("column_comment_end_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// SqlDbs is a parsable slice of SqlDb.
type SqlDbs []*SqlDb
