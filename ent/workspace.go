// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/thoth-ai/thoth/ent/sqldb"
	"github.com/thoth-ai/thoth/ent/workspace"
)

// Workspace is the model entity for the Workspace schema.
type Workspace struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Model registry key used when an agent slot has no override
	DefaultModel string `json:"default_model,omitempty"`
	// Expected question language; mismatches go through the translator
	Language string `json:"language,omitempty"`
	// Agent slot name → model registry key
	AgentSlots map[string]string `json:"agent_slots,omitempty"`
	// LastPreprocess holds the value of the "last_preprocess" field.
	LastPreprocess *time.Time `json:"last_preprocess,omitempty"`
	// LastEvidenceLoad holds the value of the "last_evidence_load" field.
	LastEvidenceLoad *time.Time `json:"last_evidence_load,omitempty"`
	// LastSQLLoaded holds the value of the "last_sql_loaded" field.
	LastSQLLoaded *time.Time `json:"last_sql_loaded,omitempty"`
	// Usernames with access (many-to-many kept as a flat list; auth is external)
	Users []string `json:"users,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkspaceQuery when eager-loading is set.
	Edges        WorkspaceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkspaceEdges holds the relations/edges for other nodes in the graph.
type WorkspaceEdges struct {
	// SQLDb holds the value of the sql_db edge.
	SQLDb *SqlDb `json:"sql_db,omitempty"`
	// ThothLogs holds the value of the thoth_logs edge.
	ThothLogs []*ThothLog `json:"thoth_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SQLDbOrErr returns the SQLDb value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkspaceEdges) SQLDbOrErr() (*SqlDb, error) {
	if e.SQLDb != nil {
		return e.SQLDb, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: sqldb.Label}
	}
	return nil, &NotLoadedError{edge: "sql_db"}
}

// ThothLogsOrErr returns the ThothLogs value or an error if the edge
// was not loaded in eager-loading.
func (e WorkspaceEdges) ThothLogsOrErr() ([]*ThothLog, error) {
	if e.loadedTypes[1] {
		return e.ThothLogs, nil
	}
	return nil, &NotLoadedError{edge: "thoth_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Workspace) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workspace.FieldAgentSlots, workspace.FieldUsers:
			values[i] = new([]byte)
		case workspace.FieldID, workspace.FieldName, workspace.FieldDefaultModel, workspace.FieldLanguage:
			values[i] = new(sql.NullString)
		case workspace.FieldLastPreprocess, workspace.FieldLastEvidenceLoad, workspace.FieldLastSQLLoaded, workspace.FieldCreatedAt, workspace.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Workspace fields.
func (_m *Workspace) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workspace.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case workspace.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case workspace.FieldDefaultModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field default_model", values[i])
			} else if value.Valid {
				_m.DefaultModel = value.String
			}
		case workspace.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case workspace.FieldAgentSlots:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field agent_slots", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AgentSlots); err != nil {
					return fmt.Errorf("unmarshal field agent_slots: %w", err)
				}
			}
		case workspace.FieldLastPreprocess:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_preprocess", values[i])
			} else if value.Valid {
				_m.LastPreprocess = new(time.Time)
				*_m.LastPreprocess = value.Time
			}
		case workspace.FieldLastEvidenceLoad:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_evidence_load", values[i])
			} else if value.Valid {
				_m.LastEvidenceLoad = new(time.Time)
				*_m.LastEvidenceLoad = value.Time
			}
		case workspace.FieldLastSQLLoaded:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_sql_loaded", values[i])
			} else if value.Valid {
				_m.LastSQLLoaded = new(time.Time)
				*_m.LastSQLLoaded = value.Time
			}
		case workspace.FieldUsers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field users", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Users); err != nil {
					return fmt.Errorf("unmarshal field users: %w", err)
				}
			}
		case workspace.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workspace.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Workspace.
// This includes values selected through modifiers, order, etc.
func (_m *Workspace) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySQLDb queries the "sql_db" edge of the Workspace entity.
func (_m *Workspace) QuerySQLDb() *SqlDbQuery {
	return NewWorkspaceClient(_m.config).QuerySQLDb(_m)
}

// QueryThothLogs queries the "thoth_logs" edge of the Workspace entity.
func (_m *Workspace) QueryThothLogs() *ThothLogQuery {
	return NewWorkspaceClient(_m.config).QueryThothLogs(_m)
}

// Update returns a builder for updating this Workspace.
// Note that you need to call Workspace.Unwrap() before calling this method if this Workspace
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Workspace) Update() *WorkspaceUpdateOne {
	return NewWorkspaceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Workspace entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Workspace) Unwrap() *Workspace {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Workspace is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Workspace) String() string {
	var builder strings.Builder
	builder.WriteString("Workspace(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("default_model=")
	builder.WriteString(_m.DefaultModel)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("agent_slots=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentSlots))
	builder.WriteString(", ")
	if v := _m.LastPreprocess; v != nil {
		builder.WriteString("last_preprocess=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastEvidenceLoad; v != nil {
		builder.WriteString("last_evidence_load=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastSQLLoaded; v != nil {
		builder.WriteString("last_sql_loaded=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("users=")
	builder.WriteString(fmt.Sprintf("%v", _m.Users))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Workspaces is a parsable slice of Workspace.
type Workspaces []*Workspace
