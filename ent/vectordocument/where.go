// Code generated by ent, DO NOT EDIT.

package vectordocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/thoth-ai/thoth/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldContainsFold(FieldID, id))
}

// Collection applies equality check predicate on the "collection" field. It's identical to CollectionEQ.
func Collection(v string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldEQ(FieldCollection, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldEQ(FieldContent, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldEQ(FieldCreatedAt, v))
}

// CollectionEQ applies the EQ predicate on the "collection" field.
func CollectionEQ(v string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldEQ(FieldCollection, v))
}

// CollectionNEQ applies the NEQ predicate on the "collection" field.
func CollectionNEQ(v string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldNEQ(FieldCollection, v))
}

// CollectionIn applies the In predicate on the "collection" field.
func CollectionIn(vs ...string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldIn(FieldCollection, vs...))
}

// CollectionNotIn applies the NotIn predicate on the "collection" field.
func CollectionNotIn(vs ...string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldNotIn(FieldCollection, vs...))
}

// CollectionGT applies the GT predicate on the "collection" field.
func CollectionGT(v string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldGT(FieldCollection, v))
}

// CollectionGTE applies the GTE predicate on the "collection" field.
func CollectionGTE(v string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldGTE(FieldCollection, v))
}

// CollectionLT applies the LT predicate on the "collection" field.
func CollectionLT(v string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldLT(FieldCollection, v))
}

// CollectionLTE applies the LTE predicate on the "collection" field.
func CollectionLTE(v string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldLTE(FieldCollection, v))
}

// CollectionContains applies the Contains predicate on the "collection" field.
func CollectionContains(v string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldContains(FieldCollection, v))
}

// CollectionHasPrefix applies the HasPrefix predicate on the "collection" field.
func CollectionHasPrefix(v string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldHasPrefix(FieldCollection, v))
}

// CollectionHasSuffix applies the HasSuffix predicate on the "collection" field.
func CollectionHasSuffix(v string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldHasSuffix(FieldCollection, v))
}

// CollectionEqualFold applies the EqualFold predicate on the "collection" field.
func CollectionEqualFold(v string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldEqualFold(FieldCollection, v))
}

// CollectionContainsFold applies the ContainsFold predicate on the "collection" field.
func CollectionContainsFold(v string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldContainsFold(FieldCollection, v))
}

// DocTypeEQ applies the EQ predicate on the "doc_type" field.
func DocTypeEQ(v DocType) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldEQ(FieldDocType, v))
}

// DocTypeNEQ applies the NEQ predicate on the "doc_type" field.
func DocTypeNEQ(v DocType) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldNEQ(FieldDocType, v))
}

// DocTypeIn applies the In predicate on the "doc_type" field.
func DocTypeIn(vs ...DocType) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldIn(FieldDocType, vs...))
}

// DocTypeNotIn applies the NotIn predicate on the "doc_type" field.
func DocTypeNotIn(vs ...DocType) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldNotIn(FieldDocType, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldContainsFold(FieldContent, v))
}

// FieldsIsNil applies the IsNil predicate on the "fields" field.
func FieldsIsNil() predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldIsNull(FieldFields))
}

// FieldsNotNil applies the NotNil predicate on the "fields" field.
func FieldsNotNil() predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldNotNull(FieldFields))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VectorDocument {
	return predicate.VectorDocument(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VectorDocument) predicate.VectorDocument {
	return predicate.VectorDocument(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VectorDocument) predicate.VectorDocument {
	return predicate.VectorDocument(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VectorDocument) predicate.VectorDocument {
	return predicate.VectorDocument(sql.NotPredicates(p))
}
