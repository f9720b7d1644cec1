// Code generated by ent, DO NOT EDIT.

package sqltable

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/thoth-ai/thoth/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldEQ(FieldDescription, v))
}

// AiDescription applies equality check predicate on the "ai_description" field. It's identical to AiDescriptionEQ.
func AiDescription(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldEQ(FieldAiDescription, v))
}

// GeneratedComment applies equality check predicate on the "generated_comment" field. It's identical to GeneratedCommentEQ.
func GeneratedComment(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldEQ(FieldGeneratedComment, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.SqlTable {
	return predicate.SqlTable(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.SqlTable {
	return predicate.SqlTable(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldContainsFold(FieldDescription, v))
}

// AiDescriptionEQ applies the EQ predicate on the "ai_description" field.
func AiDescriptionEQ(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldEQ(FieldAiDescription, v))
}

// AiDescriptionNEQ applies the NEQ predicate on the "ai_description" field.
func AiDescriptionNEQ(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldNEQ(FieldAiDescription, v))
}

// AiDescriptionIn applies the In predicate on the "ai_description" field.
func AiDescriptionIn(vs ...string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldIn(FieldAiDescription, vs...))
}

// AiDescriptionNotIn applies the NotIn predicate on the "ai_description" field.
func AiDescriptionNotIn(vs ...string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldNotIn(FieldAiDescription, vs...))
}

// AiDescriptionGT applies the GT predicate on the "ai_description" field.
func AiDescriptionGT(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldGT(FieldAiDescription, v))
}

// AiDescriptionGTE applies the GTE predicate on the "ai_description" field.
func AiDescriptionGTE(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldGTE(FieldAiDescription, v))
}

// AiDescriptionLT applies the LT predicate on the "ai_description" field.
func AiDescriptionLT(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldLT(FieldAiDescription, v))
}

// AiDescriptionLTE applies the LTE predicate on the "ai_description" field.
func AiDescriptionLTE(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldLTE(FieldAiDescription, v))
}

// AiDescriptionContains applies the Contains predicate on the "ai_description" field.
func AiDescriptionContains(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldContains(FieldAiDescription, v))
}

// AiDescriptionHasPrefix applies the HasPrefix predicate on the "ai_description" field.
func AiDescriptionHasPrefix(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldHasPrefix(FieldAiDescription, v))
}

// AiDescriptionHasSuffix applies the HasSuffix predicate on the "ai_description" field.
func AiDescriptionHasSuffix(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldHasSuffix(FieldAiDescription, v))
}

// AiDescriptionIsNil applies the IsNil predicate on the "ai_description" field.
func AiDescriptionIsNil() predicate.SqlTable {
	return predicate.SqlTable(sql.FieldIsNull(FieldAiDescription))
}

// AiDescriptionNotNil applies the NotNil predicate on the "ai_description" field.
func AiDescriptionNotNil() predicate.SqlTable {
	return predicate.SqlTable(sql.FieldNotNull(FieldAiDescription))
}

// AiDescriptionEqualFold applies the EqualFold predicate on the "ai_description" field.
func AiDescriptionEqualFold(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldEqualFold(FieldAiDescription, v))
}

// AiDescriptionContainsFold applies the ContainsFold predicate on the "ai_description" field.
func AiDescriptionContainsFold(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldContainsFold(FieldAiDescription, v))
}

// GeneratedCommentEQ applies the EQ predicate on the "generated_comment" field.
func GeneratedCommentEQ(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldEQ(FieldGeneratedComment, v))
}

// GeneratedCommentNEQ applies the NEQ predicate on the "generated_comment" field.
func GeneratedCommentNEQ(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldNEQ(FieldGeneratedComment, v))
}

// GeneratedCommentIn applies the In predicate on the "generated_comment" field.
func GeneratedCommentIn(vs ...string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldIn(FieldGeneratedComment, vs...))
}

// GeneratedCommentNotIn applies the NotIn predicate on the "generated_comment" field.
func GeneratedCommentNotIn(vs ...string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldNotIn(FieldGeneratedComment, vs...))
}

// GeneratedCommentGT applies the GT predicate on the "generated_comment" field.
func GeneratedCommentGT(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldGT(FieldGeneratedComment, v))
}

// GeneratedCommentGTE applies the GTE predicate on the "generated_comment" field.
func GeneratedCommentGTE(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldGTE(FieldGeneratedComment, v))
}

// GeneratedCommentLT applies the LT predicate on the "generated_comment" field.
func GeneratedCommentLT(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldLT(FieldGeneratedComment, v))
}

// GeneratedCommentLTE applies the LTE predicate on the "generated_comment" field.
func GeneratedCommentLTE(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldLTE(FieldGeneratedComment, v))
}

// GeneratedCommentContains applies the Contains predicate on the "generated_comment" field.
func GeneratedCommentContains(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldContains(FieldGeneratedComment, v))
}

// GeneratedCommentHasPrefix applies the HasPrefix predicate on the "generated_comment" field.
func GeneratedCommentHasPrefix(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldHasPrefix(FieldGeneratedComment, v))
}

// GeneratedCommentHasSuffix applies the HasSuffix predicate on the "generated_comment" field.
func GeneratedCommentHasSuffix(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldHasSuffix(FieldGeneratedComment, v))
}

// GeneratedCommentIsNil applies the IsNil predicate on the "generated_comment" field.
func GeneratedCommentIsNil() predicate.SqlTable {
	return predicate.SqlTable(sql.FieldIsNull(FieldGeneratedComment))
}

// GeneratedCommentNotNil applies the NotNil predicate on the "generated_comment" field.
func GeneratedCommentNotNil() predicate.SqlTable {
	return predicate.SqlTable(sql.FieldNotNull(FieldGeneratedComment))
}

// GeneratedCommentEqualFold applies the EqualFold predicate on the "generated_comment" field.
func GeneratedCommentEqualFold(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldEqualFold(FieldGeneratedComment, v))
}

// GeneratedCommentContainsFold applies the ContainsFold predicate on the "generated_comment" field.
func GeneratedCommentContainsFold(v string) predicate.SqlTable {
	return predicate.SqlTable(sql.FieldContainsFold(FieldGeneratedComment, v))
}

// HasSQLDb applies the HasEdge predicate on the "sql_db" edge.
func HasSQLDb() predicate.SqlTable {
	return predicate.SqlTable(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SQLDbTable, SQLDbColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSQLDbWith applies the HasEdge predicate on the "sql_db" edge with a given conditions (other predicates).
func HasSQLDbWith(preds ...predicate.SqlDb) predicate.SqlTable {
	return predicate.SqlTable(func(s *sql.Selector) {
		step := newSQLDbStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasColumns applies the HasEdge predicate on the "columns" edge.
func HasColumns() predicate.SqlTable {
	return predicate.SqlTable(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ColumnsTable, ColumnsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasColumnsWith applies the HasEdge predicate on the "columns" edge with a given conditions (other predicates).
func HasColumnsWith(preds ...predicate.SqlColumn) predicate.SqlTable {
	return predicate.SqlTable(func(s *sql.Selector) {
		step := newColumnsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SqlTable) predicate.SqlTable {
	return predicate.SqlTable(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SqlTable) predicate.SqlTable {
	return predicate.SqlTable(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SqlTable) predicate.SqlTable {
	return predicate.SqlTable(sql.NotPredicates(p))
}
