// Code generated by ent, DO NOT EDIT.

package workspace

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/thoth-ai/thoth/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldName, v))
}

// DefaultModel applies equality check predicate on the "default_model" field. It's identical to DefaultModelEQ.
func DefaultModel(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldDefaultModel, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldLanguage, v))
}

// LastPreprocess applies equality check predicate on the "last_preprocess" field. It's identical to LastPreprocessEQ.
func LastPreprocess(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldLastPreprocess, v))
}

// LastEvidenceLoad applies equality check predicate on the "last_evidence_load" field. It's identical to LastEvidenceLoadEQ.
func LastEvidenceLoad(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldLastEvidenceLoad, v))
}

// LastSQLLoaded applies equality check predicate on the "last_sql_loaded" field. It's identical to LastSQLLoadedEQ.
func LastSQLLoaded(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldLastSQLLoaded, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContainsFold(FieldName, v))
}

// DefaultModelEQ applies the EQ predicate on the "default_model" field.
func DefaultModelEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldDefaultModel, v))
}

// DefaultModelNEQ applies the NEQ predicate on the "default_model" field.
func DefaultModelNEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldDefaultModel, v))
}

// DefaultModelIn applies the In predicate on the "default_model" field.
func DefaultModelIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldDefaultModel, vs...))
}

// DefaultModelNotIn applies the NotIn predicate on the "default_model" field.
func DefaultModelNotIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldDefaultModel, vs...))
}

// DefaultModelGT applies the GT predicate on the "default_model" field.
func DefaultModelGT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldDefaultModel, v))
}

// DefaultModelGTE applies the GTE predicate on the "default_model" field.
func DefaultModelGTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldDefaultModel, v))
}

// DefaultModelLT applies the LT predicate on the "default_model" field.
func DefaultModelLT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldDefaultModel, v))
}

// DefaultModelLTE applies the LTE predicate on the "default_model" field.
func DefaultModelLTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldDefaultModel, v))
}

// DefaultModelContains applies the Contains predicate on the "default_model" field.
func DefaultModelContains(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContains(FieldDefaultModel, v))
}

// DefaultModelHasPrefix applies the HasPrefix predicate on the "default_model" field.
func DefaultModelHasPrefix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasPrefix(FieldDefaultModel, v))
}

// DefaultModelHasSuffix applies the HasSuffix predicate on the "default_model" field.
func DefaultModelHasSuffix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasSuffix(FieldDefaultModel, v))
}

// DefaultModelEqualFold applies the EqualFold predicate on the "default_model" field.
func DefaultModelEqualFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEqualFold(FieldDefaultModel, v))
}

// DefaultModelContainsFold applies the ContainsFold predicate on the "default_model" field.
func DefaultModelContainsFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContainsFold(FieldDefaultModel, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContainsFold(FieldLanguage, v))
}

// AgentSlotsIsNil applies the IsNil predicate on the "agent_slots" field.
func AgentSlotsIsNil() predicate.Workspace {
	return predicate.Workspace(sql.FieldIsNull(FieldAgentSlots))
}

// AgentSlotsNotNil applies the NotNil predicate on the "agent_slots" field.
func AgentSlotsNotNil() predicate.Workspace {
	return predicate.Workspace(sql.FieldNotNull(FieldAgentSlots))
}

// LastPreprocessEQ applies the EQ predicate on the "last_preprocess" field.
func LastPreprocessEQ(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldLastPreprocess, v))
}

// LastPreprocessNEQ applies the NEQ predicate on the "last_preprocess" field.
func LastPreprocessNEQ(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldLastPreprocess, v))
}

// LastPreprocessIn applies the In predicate on the "last_preprocess" field.
func LastPreprocessIn(vs ...time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldLastPreprocess, vs...))
}

// LastPreprocessNotIn applies the NotIn predicate on the "last_preprocess" field.
func LastPreprocessNotIn(vs ...time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldLastPreprocess, vs...))
}

// LastPreprocessGT applies the GT predicate on the "last_preprocess" field.
func LastPreprocessGT(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldLastPreprocess, v))
}

// LastPreprocessGTE applies the GTE predicate on the "last_preprocess" field.
func LastPreprocessGTE(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldLastPreprocess, v))
}

// LastPreprocessLT applies the LT predicate on the "last_preprocess" field.
func LastPreprocessLT(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldLastPreprocess, v))
}

// LastPreprocessLTE applies the LTE predicate on the "last_preprocess" field.
func LastPreprocessLTE(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldLastPreprocess, v))
}

// LastPreprocessIsNil applies the IsNil predicate on the "last_preprocess" field.
func LastPreprocessIsNil() predicate.Workspace {
	return predicate.Workspace(sql.FieldIsNull(FieldLastPreprocess))
}

// LastPreprocessNotNil applies the NotNil predicate on the "last_preprocess" field.
func LastPreprocessNotNil() predicate.Workspace {
	return predicate.Workspace(sql.FieldNotNull(FieldLastPreprocess))
}

// LastEvidenceLoadEQ applies the EQ predicate on the "last_evidence_load" field.
func LastEvidenceLoadEQ(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldLastEvidenceLoad, v))
}

// LastEvidenceLoadNEQ applies the NEQ predicate on the "last_evidence_load" field.
func LastEvidenceLoadNEQ(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldLastEvidenceLoad, v))
}

// LastEvidenceLoadIn applies the In predicate on the "last_evidence_load" field.
func LastEvidenceLoadIn(vs ...time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldLastEvidenceLoad, vs...))
}

// LastEvidenceLoadNotIn applies the NotIn predicate on the "last_evidence_load" field.
func LastEvidenceLoadNotIn(vs ...time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldLastEvidenceLoad, vs...))
}

// LastEvidenceLoadGT applies the GT predicate on the "last_evidence_load" field.
func LastEvidenceLoadGT(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldLastEvidenceLoad, v))
}

// LastEvidenceLoadGTE applies the GTE predicate on the "last_evidence_load" field.
func LastEvidenceLoadGTE(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldLastEvidenceLoad, v))
}

// LastEvidenceLoadLT applies the LT predicate on the "last_evidence_load" field.
func LastEvidenceLoadLT(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldLastEvidenceLoad, v))
}

// LastEvidenceLoadLTE applies the LTE predicate on the "last_evidence_load" field.
func LastEvidenceLoadLTE(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldLastEvidenceLoad, v))
}

// LastEvidenceLoadIsNil applies the IsNil predicate on the "last_evidence_load" field.
func LastEvidenceLoadIsNil() predicate.Workspace {
	return predicate.Workspace(sql.FieldIsNull(FieldLastEvidenceLoad))
}

// LastEvidenceLoadNotNil applies the NotNil predicate on the "last_evidence_load" field.
func LastEvidenceLoadNotNil() predicate.Workspace {
	return predicate.Workspace(sql.FieldNotNull(FieldLastEvidenceLoad))
}

// LastSQLLoadedEQ applies the EQ predicate on the "last_sql_loaded" field.
func LastSQLLoadedEQ(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldLastSQLLoaded, v))
}

// LastSQLLoadedNEQ applies the NEQ predicate on the "last_sql_loaded" field.
func LastSQLLoadedNEQ(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldLastSQLLoaded, v))
}

// LastSQLLoadedIn applies the In predicate on the "last_sql_loaded" field.
func LastSQLLoadedIn(vs ...time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldLastSQLLoaded, vs...))
}

// LastSQLLoadedNotIn applies the NotIn predicate on the "last_sql_loaded" field.
func LastSQLLoadedNotIn(vs ...time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldLastSQLLoaded, vs...))
}

// LastSQLLoadedGT applies the GT predicate on the "last_sql_loaded" field.
func LastSQLLoadedGT(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldLastSQLLoaded, v))
}

// LastSQLLoadedGTE applies the GTE predicate on the "last_sql_loaded" field.
func LastSQLLoadedGTE(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldLastSQLLoaded, v))
}

// LastSQLLoadedLT applies the LT predicate on the "last_sql_loaded" field.
func LastSQLLoadedLT(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldLastSQLLoaded, v))
}

// LastSQLLoadedLTE applies the LTE predicate on the "last_sql_loaded" field.
func LastSQLLoadedLTE(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldLastSQLLoaded, v))
}

// LastSQLLoadedIsNil applies the IsNil predicate on the "last_sql_loaded" field.
func LastSQLLoadedIsNil() predicate.Workspace {
	return predicate.Workspace(sql.FieldIsNull(FieldLastSQLLoaded))
}

// LastSQLLoadedNotNil applies the NotNil predicate on the "last_sql_loaded" field.
func LastSQLLoadedNotNil() predicate.Workspace {
	return predicate.Workspace(sql.FieldNotNull(FieldLastSQLLoaded))
}

// UsersIsNil applies the IsNil predicate on the "users" field.
func UsersIsNil() predicate.Workspace {
	return predicate.Workspace(sql.FieldIsNull(FieldUsers))
}

// UsersNotNil applies the NotNil predicate on the "users" field.
func UsersNotNil() predicate.Workspace {
	return predicate.Workspace(sql.FieldNotNull(FieldUsers))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSQLDb applies the HasEdge predicate on the "sql_db" edge.
func HasSQLDb() predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, SQLDbTable, SQLDbColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSQLDbWith applies the HasEdge predicate on the "sql_db" edge with a given conditions (other predicates).
func HasSQLDbWith(preds ...predicate.SqlDb) predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := newSQLDbStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasThothLogs applies the HasEdge predicate on the "thoth_logs" edge.
func HasThothLogs() predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ThothLogsTable, ThothLogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasThothLogsWith applies the HasEdge predicate on the "thoth_logs" edge with a given conditions (other predicates).
func HasThothLogsWith(preds ...predicate.ThothLog) predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := newThothLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Workspace) predicate.Workspace {
	return predicate.Workspace(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Workspace) predicate.Workspace {
	return predicate.Workspace(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Workspace) predicate.Workspace {
	return predicate.Workspace(sql.NotPredicates(p))
}
