// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/thoth-ai/thoth/ent/thothlog"
	"github.com/thoth-ai/thoth/ent/workspace"
)

// ThothLog is the model entity for the ThothLog schema.
type ThothLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Question holds the value of the "question" field.
	Question string `json:"question,omitempty"`
	// Chosen SQL, or 'ERROR: <reason>' placeholder on failure
	SQL string `json:"sql,omitempty"`
	// Username holds the value of the "username" field.
	Username string `json:"username,omitempty"`
	// Agent slot that produced the selected SQL
	AgentName string `json:"agent_name,omitempty"`
	// SQLStatus holds the value of the "sql_status" field.
	SQLStatus thothlog.SQLStatus `json:"sql_status,omitempty"`
	// A, B, C or D
	EvaluationCase string `json:"evaluation_case,omitempty"`
	// PassRate holds the value of the "pass_rate" field.
	PassRate float64 `json:"pass_rate,omitempty"`
	// PassRates holds the value of the "pass_rates" field.
	PassRates []float64 `json:"pass_rates,omitempty"`
	// TestsUsed holds the value of the "tests_used" field.
	TestsUsed []string `json:"tests_used,omitempty"`
	// EvidenceUsed holds the value of the "evidence_used" field.
	EvidenceUsed []string `json:"evidence_used,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int64 `json:"duration_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ThothLogQuery when eager-loading is set.
	Edges                ThothLogEdges `json:"edges"`
	workspace_thoth_logs *string
	selectValues         sql.SelectValues
}

// ThothLogEdges holds the relations/edges for other nodes in the graph.
type ThothLogEdges struct {
	// Workspace holds the value of the workspace edge.
	Workspace *Workspace `json:"workspace,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkspaceOrErr returns the Workspace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ThothLogEdges) WorkspaceOrErr() (*Workspace, error) {
	if e.Workspace != nil {
		return e.Workspace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workspace.Label}
	}
	return nil, &NotLoadedError{edge: "workspace"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ThothLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case thothlog.FieldPassRates, thothlog.FieldTestsUsed, thothlog.FieldEvidenceUsed:
			values[i] = new([]byte)
		case thothlog.FieldPassRate:
			values[i] = new(sql.NullFloat64)
		case thothlog.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case thothlog.FieldID, thothlog.FieldQuestion, thothlog.FieldSQL, thothlog.FieldUsername, thothlog.FieldAgentName, thothlog.FieldSQLStatus, thothlog.FieldEvaluationCase:
			values[i] = new(sql.NullString)
		case thothlog.FieldStartedAt, thothlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case thothlog.ForeignKeys[0]: // workspace_thoth_logs
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ThothLog fields.
func (_m *ThothLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case thothlog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case thothlog.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case thothlog.FieldSQL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sql", values[i])
			} else if value.Valid {
				_m.SQL = value.String
			}
		case thothlog.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		case thothlog.FieldAgentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_name", values[i])
			} else if value.Valid {
				_m.AgentName = value.String
			}
		case thothlog.FieldSQLStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sql_status", values[i])
			} else if value.Valid {
				_m.SQLStatus = thothlog.SQLStatus(value.String)
			}
		case thothlog.FieldEvaluationCase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evaluation_case", values[i])
			} else if value.Valid {
				_m.EvaluationCase = value.String
			}
		case thothlog.FieldPassRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pass_rate", values[i])
			} else if value.Valid {
				_m.PassRate = value.Float64
			}
		case thothlog.FieldPassRates:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pass_rates", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PassRates); err != nil {
					return fmt.Errorf("unmarshal field pass_rates: %w", err)
				}
			}
		case thothlog.FieldTestsUsed:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tests_used", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TestsUsed); err != nil {
					return fmt.Errorf("unmarshal field tests_used: %w", err)
				}
			}
		case thothlog.FieldEvidenceUsed:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_used", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EvidenceUsed); err != nil {
					return fmt.Errorf("unmarshal field evidence_used: %w", err)
				}
			}
		case thothlog.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case thothlog.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case thothlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case thothlog.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_thoth_logs", values[i])
			} else if value.Valid {
				_m.workspace_thoth_logs = new(string)
				*_m.workspace_thoth_logs = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ThothLog.
// This includes values selected through modifiers, order, etc.
func (_m *ThothLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkspace queries the "workspace" edge of the ThothLog entity.
func (_m *ThothLog) QueryWorkspace() *WorkspaceQuery {
	return NewThothLogClient(_m.config).QueryWorkspace(_m)
}

// Update returns a builder for updating this ThothLog.
// Note that you need to call ThothLog.Unwrap() before calling this method if this ThothLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ThothLog) Update() *ThothLogUpdateOne {
	return NewThothLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ThothLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ThothLog) Unwrap() *ThothLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ThothLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ThothLog) String() string {
	var builder strings.Builder
	builder.WriteString("ThothLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("sql=")
	builder.WriteString(_m.SQL)
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteString(", ")
	builder.WriteString("agent_name=")
	builder.WriteString(_m.AgentName)
	builder.WriteString(", ")
	builder.WriteString("sql_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.SQLStatus))
	builder.WriteString(", ")
	builder.WriteString("evaluation_case=")
	builder.WriteString(_m.EvaluationCase)
	builder.WriteString(", ")
	builder.WriteString("pass_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.PassRate))
	builder.WriteString(", ")
	builder.WriteString("pass_rates=")
	builder.WriteString(fmt.Sprintf("%v", _m.PassRates))
	builder.WriteString(", ")
	builder.WriteString("tests_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestsUsed))
	builder.WriteString(", ")
	builder.WriteString("evidence_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.EvidenceUsed))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ThothLogs is a parsable slice of ThothLog.
type ThothLogs []*ThothLog
