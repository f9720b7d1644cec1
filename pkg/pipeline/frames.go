// Package pipeline implements the six-phase SQL generation state machine and
// its newline-delimited streaming frame protocol.
package pipeline

import (
	"encoding/json"
	"fmt"
)

// FrameTag is the prefix of one streamed line. Clients treat unknown tags as
// informational.
type FrameTag string

const (
	TagThothLog       FrameTag = "THOTHLOG"
	TagKeywords       FrameTag = "KEYWORDS"
	TagSchemaContext  FrameTag = "SCHEMA_CONTEXT"
	TagSimilarQueries FrameTag = "SIMILAR_QUERIES"
	TagSQLCandidates  FrameTag = "SQL_CANDIDATES"
	TagTestsGenerated FrameTag = "TESTS_GENERATED"
	TagEvaluationDone FrameTag = "EVALUATION_COMPLETE"
	TagSQLFormatted   FrameTag = "SQL_FORMATTED"
	TagSQLReady       FrameTag = "SQL_READY"
	TagSQLExplanation FrameTag = "SQL_EXPLANATION"
	TagClarification  FrameTag = "CLARIFICATION_REQUEST"
	TagSystemWarning  FrameTag = "SYSTEM_WARNING"
	TagCriticalError  FrameTag = "CRITICAL_ERROR"
	TagCancelled      FrameTag = "CANCELLED"
)

// Frame is one line of the stream: a tag and either raw text or a JSON body.
type Frame struct {
	Tag  FrameTag
	Text string
	Body any
}

// Encode renders the frame as a single line without the trailing newline.
func (f Frame) Encode() string {
	if f.Body != nil {
		data, err := json.Marshal(f.Body)
		if err != nil {
			return fmt.Sprintf("%s:%s", TagSystemWarning, `{"message":"frame encoding failed"}`)
		}
		return fmt.Sprintf("%s:%s", f.Tag, data)
	}
	return fmt.Sprintf("%s:%s", f.Tag, f.Text)
}

// TextFrame builds a plain-text frame.
func TextFrame(tag FrameTag, text string) Frame {
	return Frame{Tag: tag, Text: text}
}

// JSONFrame builds a JSON-bodied frame.
func JSONFrame(tag FrameTag, body any) Frame {
	return Frame{Tag: tag, Body: body}
}

// Emitter receives frames in orchestrator order. Emit returns an error when
// the client is gone; the orchestrator treats that as a disconnect.
type Emitter interface {
	Emit(frame Frame) error
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(frame Frame) error

// Emit implements Emitter.
func (fn EmitterFunc) Emit(frame Frame) error { return fn(frame) }

// Frame body shapes for the JSON-carrying tags.

type keywordsBody struct {
	Keywords []string `json:"keywords"`
	Count    int      `json:"count"`
}

type schemaContextBody struct {
	Tables   []string            `json:"tables"`
	Examples map[string][]string `json:"examples"`
}

type similarQueriesBody struct {
	SimilarQueries []string `json:"similar_queries"`
	Method         string   `json:"method"`
}

type sqlCandidatesBody struct {
	Count int      `json:"count"`
	SQLs  []string `json:"sqls"`
}

type testsGeneratedBody struct {
	TestCount int `json:"test_count"`
}

type evaluationCompleteBody struct {
	Evaluated bool `json:"evaluated"`
}

type sqlFormattedBody struct {
	SQL string `json:"sql"`
}

type sqlReadyBody struct {
	SQL            string  `json:"sql"`
	WorkspaceID    string  `json:"workspace_id"`
	Timestamp      string  `json:"timestamp"`
	Username       string  `json:"username"`
	Agent          string  `json:"agent"`
	SQLStatus      string  `json:"sql_status"`
	EvaluationCase string  `json:"evaluation_case"`
	PassRate       float64 `json:"pass_rate"`
	IsSilver       bool    `json:"is_silver"`
	IsGold         bool    `json:"is_gold"`
}

type sqlExplanationBody struct {
	Explanation string `json:"explanation"`
	Language    string `json:"language"`
}

type clarificationBody struct {
	Question string   `json:"question"`
	Reason   string   `json:"reason"`
	Options  []string `json:"options,omitempty"`
}

type warningBody struct {
	Component string `json:"component"`
	Message   string `json:"message"`
}

type criticalErrorBody struct {
	Component string `json:"component"`
	Message   string `json:"message"`
	Category  string `json:"category,omitempty"`
}
