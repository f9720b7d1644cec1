// Code generated by ent, DO NOT EDIT.

package sqlcolumn

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/thoth-ai/thoth/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldContainsFold(FieldID, id))
}

// OriginalName applies equality check predicate on the "original_name" field. It's identical to OriginalNameEQ.
func OriginalName(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEQ(FieldOriginalName, v))
}

// NormalizedName applies equality check predicate on the "normalized_name" field. It's identical to NormalizedNameEQ.
func NormalizedName(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEQ(FieldNormalizedName, v))
}

// DataFormat applies equality check predicate on the "data_format" field. It's identical to DataFormatEQ.
func DataFormat(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEQ(FieldDataFormat, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEQ(FieldDescription, v))
}

// AiDescription applies equality check predicate on the "ai_description" field. It's identical to AiDescriptionEQ.
func AiDescription(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEQ(FieldAiDescription, v))
}

// ValueDescription applies equality check predicate on the "value_description" field. It's identical to ValueDescriptionEQ.
func ValueDescription(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEQ(FieldValueDescription, v))
}

// PrimaryKey applies equality check predicate on the "primary_key" field. It's identical to PrimaryKeyEQ.
func PrimaryKey(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEQ(FieldPrimaryKey, v))
}

// ForeignKey applies equality check predicate on the "foreign_key" field. It's identical to ForeignKeyEQ.
func ForeignKey(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEQ(FieldForeignKey, v))
}

// GeneratedComment applies equality check predicate on the "generated_comment" field. It's identical to GeneratedCommentEQ.
func GeneratedComment(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEQ(FieldGeneratedComment, v))
}

// OriginalNameEQ applies the EQ predicate on the "original_name" field.
func OriginalNameEQ(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEQ(FieldOriginalName, v))
}

// OriginalNameNEQ applies the NEQ predicate on the "original_name" field.
func OriginalNameNEQ(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNEQ(FieldOriginalName, v))
}

// OriginalNameIn applies the In predicate on the "original_name" field.
func OriginalNameIn(vs ...string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldIn(FieldOriginalName, vs...))
}

// OriginalNameNotIn applies the NotIn predicate on the "original_name" field.
func OriginalNameNotIn(vs ...string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNotIn(FieldOriginalName, vs...))
}

// OriginalNameGT applies the GT predicate on the "original_name" field.
func OriginalNameGT(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldGT(FieldOriginalName, v))
}

// OriginalNameGTE applies the GTE predicate on the "original_name" field.
func OriginalNameGTE(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldGTE(FieldOriginalName, v))
}

// OriginalNameLT applies the LT predicate on the "original_name" field.
func OriginalNameLT(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldLT(FieldOriginalName, v))
}

// OriginalNameLTE applies the LTE predicate on the "original_name" field.
func OriginalNameLTE(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldLTE(FieldOriginalName, v))
}

// OriginalNameContains applies the Contains predicate on the "original_name" field.
func OriginalNameContains(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldContains(FieldOriginalName, v))
}

// OriginalNameHasPrefix applies the HasPrefix predicate on the "original_name" field.
func OriginalNameHasPrefix(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldHasPrefix(FieldOriginalName, v))
}

// OriginalNameHasSuffix applies the HasSuffix predicate on the "original_name" field.
func OriginalNameHasSuffix(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldHasSuffix(FieldOriginalName, v))
}

// OriginalNameEqualFold applies the EqualFold predicate on the "original_name" field.
func OriginalNameEqualFold(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEqualFold(FieldOriginalName, v))
}

// OriginalNameContainsFold applies the ContainsFold predicate on the "original_name" field.
func OriginalNameContainsFold(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldContainsFold(FieldOriginalName, v))
}

// NormalizedNameEQ applies the EQ predicate on the "normalized_name" field.
func NormalizedNameEQ(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEQ(FieldNormalizedName, v))
}

// NormalizedNameNEQ applies the NEQ predicate on the "normalized_name" field.
func NormalizedNameNEQ(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNEQ(FieldNormalizedName, v))
}

// NormalizedNameIn applies the In predicate on the "normalized_name" field.
func NormalizedNameIn(vs ...string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldIn(FieldNormalizedName, vs...))
}

// NormalizedNameNotIn applies the NotIn predicate on the "normalized_name" field.
func NormalizedNameNotIn(vs ...string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNotIn(FieldNormalizedName, vs...))
}

// NormalizedNameGT applies the GT predicate on the "normalized_name" field.
func NormalizedNameGT(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldGT(FieldNormalizedName, v))
}

// NormalizedNameGTE applies the GTE predicate on the "normalized_name" field.
func NormalizedNameGTE(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldGTE(FieldNormalizedName, v))
}

// NormalizedNameLT applies the LT predicate on the "normalized_name" field.
func NormalizedNameLT(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldLT(FieldNormalizedName, v))
}

// NormalizedNameLTE applies the LTE predicate on the "normalized_name" field.
func NormalizedNameLTE(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldLTE(FieldNormalizedName, v))
}

// NormalizedNameContains applies the Contains predicate on the "normalized_name" field.
func NormalizedNameContains(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldContains(FieldNormalizedName, v))
}

// NormalizedNameHasPrefix applies the HasPrefix predicate on the "normalized_name" field.
func NormalizedNameHasPrefix(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldHasPrefix(FieldNormalizedName, v))
}

// NormalizedNameHasSuffix applies the HasSuffix predicate on the "normalized_name" field.
func NormalizedNameHasSuffix(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldHasSuffix(FieldNormalizedName, v))
}

// NormalizedNameEqualFold applies the EqualFold predicate on the "normalized_name" field.
func NormalizedNameEqualFold(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEqualFold(FieldNormalizedName, v))
}

// NormalizedNameContainsFold applies the ContainsFold predicate on the "normalized_name" field.
func NormalizedNameContainsFold(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldContainsFold(FieldNormalizedName, v))
}

// DataFormatEQ applies the EQ predicate on the "data_format" field.
func DataFormatEQ(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEQ(FieldDataFormat, v))
}

// DataFormatNEQ applies the NEQ predicate on the "data_format" field.
func DataFormatNEQ(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNEQ(FieldDataFormat, v))
}

// DataFormatIn applies the In predicate on the "data_format" field.
func DataFormatIn(vs ...string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldIn(FieldDataFormat, vs...))
}

// DataFormatNotIn applies the NotIn predicate on the "data_format" field.
func DataFormatNotIn(vs ...string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNotIn(FieldDataFormat, vs...))
}

// DataFormatGT applies the GT predicate on the "data_format" field.
func DataFormatGT(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldGT(FieldDataFormat, v))
}

// DataFormatGTE applies the GTE predicate on the "data_format" field.
func DataFormatGTE(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldGTE(FieldDataFormat, v))
}

// DataFormatLT applies the LT predicate on the "data_format" field.
func DataFormatLT(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldLT(FieldDataFormat, v))
}

// DataFormatLTE applies the LTE predicate on the "data_format" field.
func DataFormatLTE(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldLTE(FieldDataFormat, v))
}

// DataFormatContains applies the Contains predicate on the "data_format" field.
func DataFormatContains(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldContains(FieldDataFormat, v))
}

// DataFormatHasPrefix applies the HasPrefix predicate on the "data_format" field.
func DataFormatHasPrefix(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldHasPrefix(FieldDataFormat, v))
}

// DataFormatHasSuffix applies the HasSuffix predicate on the "data_format" field.
func DataFormatHasSuffix(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldHasSuffix(FieldDataFormat, v))
}

// DataFormatIsNil applies the IsNil predicate on the "data_format" field.
func DataFormatIsNil() predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldIsNull(FieldDataFormat))
}

// DataFormatNotNil applies the NotNil predicate on the "data_format" field.
func DataFormatNotNil() predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNotNull(FieldDataFormat))
}

// DataFormatEqualFold applies the EqualFold predicate on the "data_format" field.
func DataFormatEqualFold(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEqualFold(FieldDataFormat, v))
}

// DataFormatContainsFold applies the ContainsFold predicate on the "data_format" field.
func DataFormatContainsFold(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldContainsFold(FieldDataFormat, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldContainsFold(FieldDescription, v))
}

// AiDescriptionEQ applies the EQ predicate on the "ai_description" field.
func AiDescriptionEQ(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEQ(FieldAiDescription, v))
}

// AiDescriptionNEQ applies the NEQ predicate on the "ai_description" field.
func AiDescriptionNEQ(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNEQ(FieldAiDescription, v))
}

// AiDescriptionIn applies the In predicate on the "ai_description" field.
func AiDescriptionIn(vs ...string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldIn(FieldAiDescription, vs...))
}

// AiDescriptionNotIn applies the NotIn predicate on the "ai_description" field.
func AiDescriptionNotIn(vs ...string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNotIn(FieldAiDescription, vs...))
}

// AiDescriptionGT applies the GT predicate on the "ai_description" field.
func AiDescriptionGT(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldGT(FieldAiDescription, v))
}

// AiDescriptionGTE applies the GTE predicate on the "ai_description" field.
func AiDescriptionGTE(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldGTE(FieldAiDescription, v))
}

// AiDescriptionLT applies the LT predicate on the "ai_description" field.
func AiDescriptionLT(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldLT(FieldAiDescription, v))
}

// AiDescriptionLTE applies the LTE predicate on the "ai_description" field.
func AiDescriptionLTE(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldLTE(FieldAiDescription, v))
}

// AiDescriptionContains applies the Contains predicate on the "ai_description" field.
func AiDescriptionContains(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldContains(FieldAiDescription, v))
}

// AiDescriptionHasPrefix applies the HasPrefix predicate on the "ai_description" field.
func AiDescriptionHasPrefix(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldHasPrefix(FieldAiDescription, v))
}

// AiDescriptionHasSuffix applies the HasSuffix predicate on the "ai_description" field.
func AiDescriptionHasSuffix(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldHasSuffix(FieldAiDescription, v))
}

// AiDescriptionIsNil applies the IsNil predicate on the "ai_description" field.
func AiDescriptionIsNil() predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldIsNull(FieldAiDescription))
}

// AiDescriptionNotNil applies the NotNil predicate on the "ai_description" field.
func AiDescriptionNotNil() predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNotNull(FieldAiDescription))
}

// AiDescriptionEqualFold applies the EqualFold predicate on the "ai_description" field.
func AiDescriptionEqualFold(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEqualFold(FieldAiDescription, v))
}

// AiDescriptionContainsFold applies the ContainsFold predicate on the "ai_description" field.
func AiDescriptionContainsFold(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldContainsFold(FieldAiDescription, v))
}

// ValueDescriptionEQ applies the EQ predicate on the "value_description" field.
func ValueDescriptionEQ(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEQ(FieldValueDescription, v))
}

// ValueDescriptionNEQ applies the NEQ predicate on the "value_description" field.
func ValueDescriptionNEQ(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNEQ(FieldValueDescription, v))
}

// ValueDescriptionIn applies the In predicate on the "value_description" field.
func ValueDescriptionIn(vs ...string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldIn(FieldValueDescription, vs...))
}

// ValueDescriptionNotIn applies the NotIn predicate on the "value_description" field.
func ValueDescriptionNotIn(vs ...string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNotIn(FieldValueDescription, vs...))
}

// ValueDescriptionGT applies the GT predicate on the "value_description" field.
func ValueDescriptionGT(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldGT(FieldValueDescription, v))
}

// ValueDescriptionGTE applies the GTE predicate on the "value_description" field.
func ValueDescriptionGTE(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldGTE(FieldValueDescription, v))
}

// ValueDescriptionLT applies the LT predicate on the "value_description" field.
func ValueDescriptionLT(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldLT(FieldValueDescription, v))
}

// ValueDescriptionLTE applies the LTE predicate on the "value_description" field.
func ValueDescriptionLTE(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldLTE(FieldValueDescription, v))
}

// ValueDescriptionContains applies the Contains predicate on the "value_description" field.
func ValueDescriptionContains(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldContains(FieldValueDescription, v))
}

// ValueDescriptionHasPrefix applies the HasPrefix predicate on the "value_description" field.
func ValueDescriptionHasPrefix(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldHasPrefix(FieldValueDescription, v))
}

// ValueDescriptionHasSuffix applies the HasSuffix predicate on the "value_description" field.
func ValueDescriptionHasSuffix(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldHasSuffix(FieldValueDescription, v))
}

// ValueDescriptionIsNil applies the IsNil predicate on the "value_description" field.
func ValueDescriptionIsNil() predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldIsNull(FieldValueDescription))
}

// ValueDescriptionNotNil applies the NotNil predicate on the "value_description" field.
func ValueDescriptionNotNil() predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNotNull(FieldValueDescription))
}

// ValueDescriptionEqualFold applies the EqualFold predicate on the "value_description" field.
func ValueDescriptionEqualFold(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEqualFold(FieldValueDescription, v))
}

// ValueDescriptionContainsFold applies the ContainsFold predicate on the "value_description" field.
func ValueDescriptionContainsFold(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldContainsFold(FieldValueDescription, v))
}

// PrimaryKeyEQ applies the EQ predicate on the "primary_key" field.
func PrimaryKeyEQ(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEQ(FieldPrimaryKey, v))
}

// PrimaryKeyNEQ applies the NEQ predicate on the "primary_key" field.
func PrimaryKeyNEQ(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNEQ(FieldPrimaryKey, v))
}

// PrimaryKeyIn applies the In predicate on the "primary_key" field.
func PrimaryKeyIn(vs ...string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldIn(FieldPrimaryKey, vs...))
}

// PrimaryKeyNotIn applies the NotIn predicate on the "primary_key" field.
func PrimaryKeyNotIn(vs ...string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNotIn(FieldPrimaryKey, vs...))
}

// PrimaryKeyGT applies the GT predicate on the "primary_key" field.
func PrimaryKeyGT(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldGT(FieldPrimaryKey, v))
}

// PrimaryKeyGTE applies the GTE predicate on the "primary_key" field.
func PrimaryKeyGTE(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldGTE(FieldPrimaryKey, v))
}

// PrimaryKeyLT applies the LT predicate on the "primary_key" field.
func PrimaryKeyLT(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldLT(FieldPrimaryKey, v))
}

// PrimaryKeyLTE applies the LTE predicate on the "primary_key" field.
func PrimaryKeyLTE(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldLTE(FieldPrimaryKey, v))
}

// PrimaryKeyContains applies the Contains predicate on the "primary_key" field.
func PrimaryKeyContains(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldContains(FieldPrimaryKey, v))
}

// PrimaryKeyHasPrefix applies the HasPrefix predicate on the "primary_key" field.
func PrimaryKeyHasPrefix(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldHasPrefix(FieldPrimaryKey, v))
}

// PrimaryKeyHasSuffix applies the HasSuffix predicate on the "primary_key" field.
func PrimaryKeyHasSuffix(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldHasSuffix(FieldPrimaryKey, v))
}

// PrimaryKeyIsNil applies the IsNil predicate on the "primary_key" field.
func PrimaryKeyIsNil() predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldIsNull(FieldPrimaryKey))
}

// PrimaryKeyNotNil applies the NotNil predicate on the "primary_key" field.
func PrimaryKeyNotNil() predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNotNull(FieldPrimaryKey))
}

// PrimaryKeyEqualFold applies the EqualFold predicate on the "primary_key" field.
func PrimaryKeyEqualFold(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEqualFold(FieldPrimaryKey, v))
}

// PrimaryKeyContainsFold applies the ContainsFold predicate on the "primary_key" field.
func PrimaryKeyContainsFold(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldContainsFold(FieldPrimaryKey, v))
}

// ForeignKeyEQ applies the EQ predicate on the "foreign_key" field.
func ForeignKeyEQ(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEQ(FieldForeignKey, v))
}

// ForeignKeyNEQ applies the NEQ predicate on the "foreign_key" field.
func ForeignKeyNEQ(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNEQ(FieldForeignKey, v))
}

// ForeignKeyIn applies the In predicate on the "foreign_key" field.
func ForeignKeyIn(vs ...string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldIn(FieldForeignKey, vs...))
}

// ForeignKeyNotIn applies the NotIn predicate on the "foreign_key" field.
func ForeignKeyNotIn(vs ...string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNotIn(FieldForeignKey, vs...))
}

// ForeignKeyGT applies the GT predicate on the "foreign_key" field.
func ForeignKeyGT(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldGT(FieldForeignKey, v))
}

// ForeignKeyGTE applies the GTE predicate on the "foreign_key" field.
func ForeignKeyGTE(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldGTE(FieldForeignKey, v))
}

// ForeignKeyLT applies the LT predicate on the "foreign_key" field.
func ForeignKeyLT(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldLT(FieldForeignKey, v))
}

// ForeignKeyLTE applies the LTE predicate on the "foreign_key" field.
func ForeignKeyLTE(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldLTE(FieldForeignKey, v))
}

// ForeignKeyContains applies the Contains predicate on the "foreign_key" field.
func ForeignKeyContains(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldContains(FieldForeignKey, v))
}

// ForeignKeyHasPrefix applies the HasPrefix predicate on the "foreign_key" field.
func ForeignKeyHasPrefix(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldHasPrefix(FieldForeignKey, v))
}

// ForeignKeyHasSuffix applies the HasSuffix predicate on the "foreign_key" field.
func ForeignKeyHasSuffix(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldHasSuffix(FieldForeignKey, v))
}

// ForeignKeyIsNil applies the IsNil predicate on the "foreign_key" field.
func ForeignKeyIsNil() predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldIsNull(FieldForeignKey))
}

// ForeignKeyNotNil applies the NotNil predicate on the "foreign_key" field.
func ForeignKeyNotNil() predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNotNull(FieldForeignKey))
}

// ForeignKeyEqualFold applies the EqualFold predicate on the "foreign_key" field.
func ForeignKeyEqualFold(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEqualFold(FieldForeignKey, v))
}

// ForeignKeyContainsFold applies the ContainsFold predicate on the "foreign_key" field.
func ForeignKeyContainsFold(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldContainsFold(FieldForeignKey, v))
}

// GeneratedCommentEQ applies the EQ predicate on the "generated_comment" field.
func GeneratedCommentEQ(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEQ(FieldGeneratedComment, v))
}

// GeneratedCommentNEQ applies the NEQ predicate on the "generated_comment" field.
func GeneratedCommentNEQ(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNEQ(FieldGeneratedComment, v))
}

// GeneratedCommentIn applies the In predicate on the "generated_comment" field.
func GeneratedCommentIn(vs ...string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldIn(FieldGeneratedComment, vs...))
}

// GeneratedCommentNotIn applies the NotIn predicate on the "generated_comment" field.
func GeneratedCommentNotIn(vs ...string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNotIn(FieldGeneratedComment, vs...))
}

// GeneratedCommentGT applies the GT predicate on the "generated_comment" field.
func GeneratedCommentGT(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldGT(FieldGeneratedComment, v))
}

// GeneratedCommentGTE applies the GTE predicate on the "generated_comment" field.
func GeneratedCommentGTE(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldGTE(FieldGeneratedComment, v))
}

// GeneratedCommentLT applies the LT predicate on the "generated_comment" field.
func GeneratedCommentLT(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldLT(FieldGeneratedComment, v))
}

// GeneratedCommentLTE applies the LTE predicate on the "generated_comment" field.
func GeneratedCommentLTE(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldLTE(FieldGeneratedComment, v))
}

// GeneratedCommentContains applies the Contains predicate on the "generated_comment" field.
func GeneratedCommentContains(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldContains(FieldGeneratedComment, v))
}

// GeneratedCommentHasPrefix applies the HasPrefix predicate on the "generated_comment" field.
func GeneratedCommentHasPrefix(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldHasPrefix(FieldGeneratedComment, v))
}

// GeneratedCommentHasSuffix applies the HasSuffix predicate on the "generated_comment" field.
func GeneratedCommentHasSuffix(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldHasSuffix(FieldGeneratedComment, v))
}

// GeneratedCommentIsNil applies the IsNil predicate on the "generated_comment" field.
func GeneratedCommentIsNil() predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldIsNull(FieldGeneratedComment))
}

// GeneratedCommentNotNil applies the NotNil predicate on the "generated_comment" field.
func GeneratedCommentNotNil() predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldNotNull(FieldGeneratedComment))
}

// GeneratedCommentEqualFold applies the EqualFold predicate on the "generated_comment" field.
func GeneratedCommentEqualFold(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldEqualFold(FieldGeneratedComment, v))
}

// GeneratedCommentContainsFold applies the ContainsFold predicate on the "generated_comment" field.
func GeneratedCommentContainsFold(v string) predicate.SqlColumn {
	return predicate.SqlColumn(sql.FieldContainsFold(FieldGeneratedComment, v))
}

// HasSQLTable applies the HasEdge predicate on the "sql_table" edge.
func HasSQLTable() predicate.SqlColumn {
	return predicate.SqlColumn(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SQLTableTable, SQLTableColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSQLTableWith applies the HasEdge predicate on the "sql_table" edge with a given conditions (other predicates).
func HasSQLTableWith(preds ...predicate.SqlTable) predicate.SqlColumn {
	return predicate.SqlColumn(func(s *sql.Selector) {
		step := newSQLTableStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SqlColumn) predicate.SqlColumn {
	return predicate.SqlColumn(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SqlColumn) predicate.SqlColumn {
	return predicate.SqlColumn(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SqlColumn) predicate.SqlColumn {
	return predicate.SqlColumn(sql.NotPredicates(p))
}
