// Code generated by ent, DO NOT EDIT.

package thothlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/thoth-ai/thoth/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldContainsFold(FieldID, id))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEQ(FieldQuestion, v))
}

// SQL applies equality check predicate on the "sql" field. It's identical to SQLEQ.
func SQL(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEQ(FieldSQL, v))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEQ(FieldUsername, v))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEQ(FieldAgentName, v))
}

// EvaluationCase applies equality check predicate on the "evaluation_case" field. It's identical to EvaluationCaseEQ.
func EvaluationCase(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEQ(FieldEvaluationCase, v))
}

// PassRate applies equality check predicate on the "pass_rate" field. It's identical to PassRateEQ.
func PassRate(v float64) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEQ(FieldPassRate, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEQ(FieldStartedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEQ(FieldDurationMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEQ(FieldCreatedAt, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldContainsFold(FieldQuestion, v))
}

// SQLEQ applies the EQ predicate on the "sql" field.
func SQLEQ(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEQ(FieldSQL, v))
}

// SQLNEQ applies the NEQ predicate on the "sql" field.
func SQLNEQ(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNEQ(FieldSQL, v))
}

// SQLIn applies the In predicate on the "sql" field.
func SQLIn(vs ...string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldIn(FieldSQL, vs...))
}

// SQLNotIn applies the NotIn predicate on the "sql" field.
func SQLNotIn(vs ...string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNotIn(FieldSQL, vs...))
}

// SQLGT applies the GT predicate on the "sql" field.
func SQLGT(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldGT(FieldSQL, v))
}

// SQLGTE applies the GTE predicate on the "sql" field.
func SQLGTE(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldGTE(FieldSQL, v))
}

// SQLLT applies the LT predicate on the "sql" field.
func SQLLT(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldLT(FieldSQL, v))
}

// SQLLTE applies the LTE predicate on the "sql" field.
func SQLLTE(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldLTE(FieldSQL, v))
}

// SQLContains applies the Contains predicate on the "sql" field.
func SQLContains(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldContains(FieldSQL, v))
}

// SQLHasPrefix applies the HasPrefix predicate on the "sql" field.
func SQLHasPrefix(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldHasPrefix(FieldSQL, v))
}

// SQLHasSuffix applies the HasSuffix predicate on the "sql" field.
func SQLHasSuffix(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldHasSuffix(FieldSQL, v))
}

// SQLEqualFold applies the EqualFold predicate on the "sql" field.
func SQLEqualFold(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEqualFold(FieldSQL, v))
}

// SQLContainsFold applies the ContainsFold predicate on the "sql" field.
func SQLContainsFold(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldContainsFold(FieldSQL, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameIsNil applies the IsNil predicate on the "username" field.
func UsernameIsNil() predicate.ThothLog {
	return predicate.ThothLog(sql.FieldIsNull(FieldUsername))
}

// UsernameNotNil applies the NotNil predicate on the "username" field.
func UsernameNotNil() predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNotNull(FieldUsername))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldContainsFold(FieldUsername, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameIsNil applies the IsNil predicate on the "agent_name" field.
func AgentNameIsNil() predicate.ThothLog {
	return predicate.ThothLog(sql.FieldIsNull(FieldAgentName))
}

// AgentNameNotNil applies the NotNil predicate on the "agent_name" field.
func AgentNameNotNil() predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNotNull(FieldAgentName))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldContainsFold(FieldAgentName, v))
}

// SQLStatusEQ applies the EQ predicate on the "sql_status" field.
func SQLStatusEQ(v SQLStatus) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEQ(FieldSQLStatus, v))
}

// SQLStatusNEQ applies the NEQ predicate on the "sql_status" field.
func SQLStatusNEQ(v SQLStatus) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNEQ(FieldSQLStatus, v))
}

// SQLStatusIn applies the In predicate on the "sql_status" field.
func SQLStatusIn(vs ...SQLStatus) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldIn(FieldSQLStatus, vs...))
}

// SQLStatusNotIn applies the NotIn predicate on the "sql_status" field.
func SQLStatusNotIn(vs ...SQLStatus) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNotIn(FieldSQLStatus, vs...))
}

// EvaluationCaseEQ applies the EQ predicate on the "evaluation_case" field.
func EvaluationCaseEQ(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEQ(FieldEvaluationCase, v))
}

// EvaluationCaseNEQ applies the NEQ predicate on the "evaluation_case" field.
func EvaluationCaseNEQ(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNEQ(FieldEvaluationCase, v))
}

// EvaluationCaseIn applies the In predicate on the "evaluation_case" field.
func EvaluationCaseIn(vs ...string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldIn(FieldEvaluationCase, vs...))
}

// EvaluationCaseNotIn applies the NotIn predicate on the "evaluation_case" field.
func EvaluationCaseNotIn(vs ...string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNotIn(FieldEvaluationCase, vs...))
}

// EvaluationCaseGT applies the GT predicate on the "evaluation_case" field.
func EvaluationCaseGT(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldGT(FieldEvaluationCase, v))
}

// EvaluationCaseGTE applies the GTE predicate on the "evaluation_case" field.
func EvaluationCaseGTE(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldGTE(FieldEvaluationCase, v))
}

// EvaluationCaseLT applies the LT predicate on the "evaluation_case" field.
func EvaluationCaseLT(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldLT(FieldEvaluationCase, v))
}

// EvaluationCaseLTE applies the LTE predicate on the "evaluation_case" field.
func EvaluationCaseLTE(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldLTE(FieldEvaluationCase, v))
}

// EvaluationCaseContains applies the Contains predicate on the "evaluation_case" field.
func EvaluationCaseContains(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldContains(FieldEvaluationCase, v))
}

// EvaluationCaseHasPrefix applies the HasPrefix predicate on the "evaluation_case" field.
func EvaluationCaseHasPrefix(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldHasPrefix(FieldEvaluationCase, v))
}

// EvaluationCaseHasSuffix applies the HasSuffix predicate on the "evaluation_case" field.
func EvaluationCaseHasSuffix(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldHasSuffix(FieldEvaluationCase, v))
}

// EvaluationCaseIsNil applies the IsNil predicate on the "evaluation_case" field.
func EvaluationCaseIsNil() predicate.ThothLog {
	return predicate.ThothLog(sql.FieldIsNull(FieldEvaluationCase))
}

// EvaluationCaseNotNil applies the NotNil predicate on the "evaluation_case" field.
func EvaluationCaseNotNil() predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNotNull(FieldEvaluationCase))
}

// EvaluationCaseEqualFold applies the EqualFold predicate on the "evaluation_case" field.
func EvaluationCaseEqualFold(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEqualFold(FieldEvaluationCase, v))
}

// EvaluationCaseContainsFold applies the ContainsFold predicate on the "evaluation_case" field.
func EvaluationCaseContainsFold(v string) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldContainsFold(FieldEvaluationCase, v))
}

// PassRateEQ applies the EQ predicate on the "pass_rate" field.
func PassRateEQ(v float64) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEQ(FieldPassRate, v))
}

// PassRateNEQ applies the NEQ predicate on the "pass_rate" field.
func PassRateNEQ(v float64) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNEQ(FieldPassRate, v))
}

// PassRateIn applies the In predicate on the "pass_rate" field.
func PassRateIn(vs ...float64) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldIn(FieldPassRate, vs...))
}

// PassRateNotIn applies the NotIn predicate on the "pass_rate" field.
func PassRateNotIn(vs ...float64) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNotIn(FieldPassRate, vs...))
}

// PassRateGT applies the GT predicate on the "pass_rate" field.
func PassRateGT(v float64) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldGT(FieldPassRate, v))
}

// PassRateGTE applies the GTE predicate on the "pass_rate" field.
func PassRateGTE(v float64) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldGTE(FieldPassRate, v))
}

// PassRateLT applies the LT predicate on the "pass_rate" field.
func PassRateLT(v float64) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldLT(FieldPassRate, v))
}

// PassRateLTE applies the LTE predicate on the "pass_rate" field.
func PassRateLTE(v float64) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldLTE(FieldPassRate, v))
}

// PassRatesIsNil applies the IsNil predicate on the "pass_rates" field.
func PassRatesIsNil() predicate.ThothLog {
	return predicate.ThothLog(sql.FieldIsNull(FieldPassRates))
}

// PassRatesNotNil applies the NotNil predicate on the "pass_rates" field.
func PassRatesNotNil() predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNotNull(FieldPassRates))
}

// TestsUsedIsNil applies the IsNil predicate on the "tests_used" field.
func TestsUsedIsNil() predicate.ThothLog {
	return predicate.ThothLog(sql.FieldIsNull(FieldTestsUsed))
}

// TestsUsedNotNil applies the NotNil predicate on the "tests_used" field.
func TestsUsedNotNil() predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNotNull(FieldTestsUsed))
}

// EvidenceUsedIsNil applies the IsNil predicate on the "evidence_used" field.
func EvidenceUsedIsNil() predicate.ThothLog {
	return predicate.ThothLog(sql.FieldIsNull(FieldEvidenceUsed))
}

// EvidenceUsedNotNil applies the NotNil predicate on the "evidence_used" field.
func EvidenceUsedNotNil() predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNotNull(FieldEvidenceUsed))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldLTE(FieldStartedAt, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldLTE(FieldDurationMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ThothLog {
	return predicate.ThothLog(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWorkspace applies the HasEdge predicate on the "workspace" edge.
func HasWorkspace() predicate.ThothLog {
	return predicate.ThothLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkspaceWith applies the HasEdge predicate on the "workspace" edge with a given conditions (other predicates).
func HasWorkspaceWith(preds ...predicate.Workspace) predicate.ThothLog {
	return predicate.ThothLog(func(s *sql.Selector) {
		step := newWorkspaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ThothLog) predicate.ThothLog {
	return predicate.ThothLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ThothLog) predicate.ThothLog {
	return predicate.ThothLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ThothLog) predicate.ThothLog {
	return predicate.ThothLog(sql.NotPredicates(p))
}
