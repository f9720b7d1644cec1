// Code generated by ent, DO NOT EDIT.

package relationship

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/thoth-ai/thoth/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldContainsFold(FieldID, id))
}

// SourceTable applies equality check predicate on the "source_table" field. It's identical to SourceTableEQ.
func SourceTable(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldSourceTable, v))
}

// SourceColumn applies equality check predicate on the "source_column" field. It's identical to SourceColumnEQ.
func SourceColumn(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldSourceColumn, v))
}

// TargetTable applies equality check predicate on the "target_table" field. It's identical to TargetTableEQ.
func TargetTable(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldTargetTable, v))
}

// TargetColumn applies equality check predicate on the "target_column" field. It's identical to TargetColumnEQ.
func TargetColumn(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldTargetColumn, v))
}

// SourceTableEQ applies the EQ predicate on the "source_table" field.
func SourceTableEQ(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldSourceTable, v))
}

// SourceTableNEQ applies the NEQ predicate on the "source_table" field.
func SourceTableNEQ(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNEQ(FieldSourceTable, v))
}

// SourceTableIn applies the In predicate on the "source_table" field.
func SourceTableIn(vs ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldIn(FieldSourceTable, vs...))
}

// SourceTableNotIn applies the NotIn predicate on the "source_table" field.
func SourceTableNotIn(vs ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNotIn(FieldSourceTable, vs...))
}

// SourceTableGT applies the GT predicate on the "source_table" field.
func SourceTableGT(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGT(FieldSourceTable, v))
}

// SourceTableGTE applies the GTE predicate on the "source_table" field.
func SourceTableGTE(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGTE(FieldSourceTable, v))
}

// SourceTableLT applies the LT predicate on the "source_table" field.
func SourceTableLT(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLT(FieldSourceTable, v))
}

// SourceTableLTE applies the LTE predicate on the "source_table" field.
func SourceTableLTE(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLTE(FieldSourceTable, v))
}

// SourceTableContains applies the Contains predicate on the "source_table" field.
func SourceTableContains(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldContains(FieldSourceTable, v))
}

// SourceTableHasPrefix applies the HasPrefix predicate on the "source_table" field.
func SourceTableHasPrefix(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldHasPrefix(FieldSourceTable, v))
}

// SourceTableHasSuffix applies the HasSuffix predicate on the "source_table" field.
func SourceTableHasSuffix(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldHasSuffix(FieldSourceTable, v))
}

// SourceTableEqualFold applies the EqualFold predicate on the "source_table" field.
func SourceTableEqualFold(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEqualFold(FieldSourceTable, v))
}

// SourceTableContainsFold applies the ContainsFold predicate on the "source_table" field.
func SourceTableContainsFold(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldContainsFold(FieldSourceTable, v))
}

// SourceColumnEQ applies the EQ predicate on the "source_column" field.
func SourceColumnEQ(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldSourceColumn, v))
}

// SourceColumnNEQ applies the NEQ predicate on the "source_column" field.
func SourceColumnNEQ(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNEQ(FieldSourceColumn, v))
}

// SourceColumnIn applies the In predicate on the "source_column" field.
func SourceColumnIn(vs ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldIn(FieldSourceColumn, vs...))
}

// SourceColumnNotIn applies the NotIn predicate on the "source_column" field.
func SourceColumnNotIn(vs ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNotIn(FieldSourceColumn, vs...))
}

// SourceColumnGT applies the GT predicate on the "source_column" field.
func SourceColumnGT(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGT(FieldSourceColumn, v))
}

// SourceColumnGTE applies the GTE predicate on the "source_column" field.
func SourceColumnGTE(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGTE(FieldSourceColumn, v))
}

// SourceColumnLT applies the LT predicate on the "source_column" field.
func SourceColumnLT(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLT(FieldSourceColumn, v))
}

// SourceColumnLTE applies the LTE predicate on the "source_column" field.
func SourceColumnLTE(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLTE(FieldSourceColumn, v))
}

// SourceColumnContains applies the Contains predicate on the "source_column" field.
func SourceColumnContains(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldContains(FieldSourceColumn, v))
}

// SourceColumnHasPrefix applies the HasPrefix predicate on the "source_column" field.
func SourceColumnHasPrefix(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldHasPrefix(FieldSourceColumn, v))
}

// SourceColumnHasSuffix applies the HasSuffix predicate on the "source_column" field.
func SourceColumnHasSuffix(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldHasSuffix(FieldSourceColumn, v))
}

// SourceColumnEqualFold applies the EqualFold predicate on the "source_column" field.
func SourceColumnEqualFold(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEqualFold(FieldSourceColumn, v))
}

// SourceColumnContainsFold applies the ContainsFold predicate on the "source_column" field.
func SourceColumnContainsFold(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldContainsFold(FieldSourceColumn, v))
}

// TargetTableEQ applies the EQ predicate on the "target_table" field.
func TargetTableEQ(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldTargetTable, v))
}

// TargetTableNEQ applies the NEQ predicate on the "target_table" field.
func TargetTableNEQ(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNEQ(FieldTargetTable, v))
}

// TargetTableIn applies the In predicate on the "target_table" field.
func TargetTableIn(vs ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldIn(FieldTargetTable, vs...))
}

// TargetTableNotIn applies the NotIn predicate on the "target_table" field.
func TargetTableNotIn(vs ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNotIn(FieldTargetTable, vs...))
}

// TargetTableGT applies the GT predicate on the "target_table" field.
func TargetTableGT(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGT(FieldTargetTable, v))
}

// TargetTableGTE applies the GTE predicate on the "target_table" field.
func TargetTableGTE(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGTE(FieldTargetTable, v))
}

// TargetTableLT applies the LT predicate on the "target_table" field.
func TargetTableLT(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLT(FieldTargetTable, v))
}

// TargetTableLTE applies the LTE predicate on the "target_table" field.
func TargetTableLTE(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLTE(FieldTargetTable, v))
}

// TargetTableContains applies the Contains predicate on the "target_table" field.
func TargetTableContains(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldContains(FieldTargetTable, v))
}

// TargetTableHasPrefix applies the HasPrefix predicate on the "target_table" field.
func TargetTableHasPrefix(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldHasPrefix(FieldTargetTable, v))
}

// TargetTableHasSuffix applies the HasSuffix predicate on the "target_table" field.
func TargetTableHasSuffix(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldHasSuffix(FieldTargetTable, v))
}

// TargetTableEqualFold applies the EqualFold predicate on the "target_table" field.
func TargetTableEqualFold(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEqualFold(FieldTargetTable, v))
}

// TargetTableContainsFold applies the ContainsFold predicate on the "target_table" field.
func TargetTableContainsFold(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldContainsFold(FieldTargetTable, v))
}

// TargetColumnEQ applies the EQ predicate on the "target_column" field.
func TargetColumnEQ(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldTargetColumn, v))
}

// TargetColumnNEQ applies the NEQ predicate on the "target_column" field.
func TargetColumnNEQ(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNEQ(FieldTargetColumn, v))
}

// TargetColumnIn applies the In predicate on the "target_column" field.
func TargetColumnIn(vs ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldIn(FieldTargetColumn, vs...))
}

// TargetColumnNotIn applies the NotIn predicate on the "target_column" field.
func TargetColumnNotIn(vs ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNotIn(FieldTargetColumn, vs...))
}

// TargetColumnGT applies the GT predicate on the "target_column" field.
func TargetColumnGT(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGT(FieldTargetColumn, v))
}

// TargetColumnGTE applies the GTE predicate on the "target_column" field.
func TargetColumnGTE(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGTE(FieldTargetColumn, v))
}

// TargetColumnLT applies the LT predicate on the "target_column" field.
func TargetColumnLT(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLT(FieldTargetColumn, v))
}

// TargetColumnLTE applies the LTE predicate on the "target_column" field.
func TargetColumnLTE(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLTE(FieldTargetColumn, v))
}

// TargetColumnContains applies the Contains predicate on the "target_column" field.
func TargetColumnContains(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldContains(FieldTargetColumn, v))
}

// TargetColumnHasPrefix applies the HasPrefix predicate on the "target_column" field.
func TargetColumnHasPrefix(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldHasPrefix(FieldTargetColumn, v))
}

// TargetColumnHasSuffix applies the HasSuffix predicate on the "target_column" field.
func TargetColumnHasSuffix(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldHasSuffix(FieldTargetColumn, v))
}

// TargetColumnEqualFold applies the EqualFold predicate on the "target_column" field.
func TargetColumnEqualFold(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEqualFold(FieldTargetColumn, v))
}

// TargetColumnContainsFold applies the ContainsFold predicate on the "target_column" field.
func TargetColumnContainsFold(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldContainsFold(FieldTargetColumn, v))
}

// HasSQLDb applies the HasEdge predicate on the "sql_db" edge.
func HasSQLDb() predicate.Relationship {
	return predicate.Relationship(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SQLDbTable, SQLDbColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSQLDbWith applies the HasEdge predicate on the "sql_db" edge with a given conditions (other predicates).
func HasSQLDbWith(preds ...predicate.SqlDb) predicate.Relationship {
	return predicate.Relationship(func(s *sql.Selector) {
		step := newSQLDbStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Relationship) predicate.Relationship {
	return predicate.Relationship(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Relationship) predicate.Relationship {
	return predicate.Relationship(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Relationship) predicate.Relationship {
	return predicate.Relationship(sql.NotPredicates(p))
}
