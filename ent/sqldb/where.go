// Code generated by ent, DO NOT EDIT.

package sqldb

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/thoth-ai/thoth/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldName, v))
}

// Host applies equality check predicate on the "host" field. It's identical to HostEQ.
func Host(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldHost, v))
}

// Port applies equality check predicate on the "port" field. It's identical to PortEQ.
func Port(v int) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldPort, v))
}

// Database applies equality check predicate on the "database" field. It's identical to DatabaseEQ.
func Database(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldDatabase, v))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldUsername, v))
}

// Password applies equality check predicate on the "password" field. It's identical to PasswordEQ.
func Password(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldPassword, v))
}

// DbSchema applies equality check predicate on the "db_schema" field. It's identical to DbSchemaEQ.
func DbSchema(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldDbSchema, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldCreatedAt, v))
}

// DbElementsTaskID applies equality check predicate on the "db_elements_task_id" field. It's identical to DbElementsTaskIDEQ.
func DbElementsTaskID(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldDbElementsTaskID, v))
}

// DbElementsLog applies equality check predicate on the "db_elements_log" field. It's identical to DbElementsLogEQ.
func DbElementsLog(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldDbElementsLog, v))
}

// DbElementsStartTime applies equality check predicate on the "db_elements_start_time" field. It's identical to DbElementsStartTimeEQ.
func DbElementsStartTime(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldDbElementsStartTime, v))
}

// DbElementsEndTime applies equality check predicate on the "db_elements_end_time" field. It's identical to DbElementsEndTimeEQ.
func DbElementsEndTime(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldDbElementsEndTime, v))
}

// TableCommentTaskID applies equality check predicate on the "table_comment_task_id" field. It's identical to TableCommentTaskIDEQ.
func TableCommentTaskID(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldTableCommentTaskID, v))
}

// TableCommentLog applies equality check predicate on the "table_comment_log" field. It's identical to TableCommentLogEQ.
func TableCommentLog(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldTableCommentLog, v))
}

// TableCommentStartTime applies equality check predicate on the "table_comment_start_time" field. It's identical to TableCommentStartTimeEQ.
func TableCommentStartTime(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldTableCommentStartTime, v))
}

// TableCommentEndTime applies equality check predicate on the "table_comment_end_time" field. It's identical to TableCommentEndTimeEQ.
func TableCommentEndTime(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldTableCommentEndTime, v))
}

// ColumnCommentTaskID applies equality check predicate on the "column_comment_task_id" field. It's identical to ColumnCommentTaskIDEQ.
func ColumnCommentTaskID(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldColumnCommentTaskID, v))
}

// ColumnCommentLog applies equality check predicate on the "column_comment_log" field. It's identical to ColumnCommentLogEQ.
func ColumnCommentLog(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldColumnCommentLog, v))
}

// ColumnCommentStartTime applies equality check predicate on the "column_comment_start_time" field. It's identical to ColumnCommentStartTimeEQ.
func ColumnCommentStartTime(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldColumnCommentStartTime, v))
}

// ColumnCommentEndTime applies equality check predicate on the "column_comment_end_time" field. It's identical to ColumnCommentEndTimeEQ.
func ColumnCommentEndTime(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldColumnCommentEndTime, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContainsFold(FieldName, v))
}

// DialectEQ applies the EQ predicate on the "dialect" field.
func DialectEQ(v Dialect) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldDialect, v))
}

// DialectNEQ applies the NEQ predicate on the "dialect" field.
func DialectNEQ(v Dialect) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldDialect, v))
}

// DialectIn applies the In predicate on the "dialect" field.
func DialectIn(vs ...Dialect) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldDialect, vs...))
}

// DialectNotIn applies the NotIn predicate on the "dialect" field.
func DialectNotIn(vs ...Dialect) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldDialect, vs...))
}

// HostEQ applies the EQ predicate on the "host" field.
func HostEQ(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldHost, v))
}

// HostNEQ applies the NEQ predicate on the "host" field.
func HostNEQ(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldHost, v))
}

// HostIn applies the In predicate on the "host" field.
func HostIn(vs ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldHost, vs...))
}

// HostNotIn applies the NotIn predicate on the "host" field.
func HostNotIn(vs ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldHost, vs...))
}

// HostGT applies the GT predicate on the "host" field.
func HostGT(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGT(FieldHost, v))
}

// HostGTE applies the GTE predicate on the "host" field.
func HostGTE(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGTE(FieldHost, v))
}

// HostLT applies the LT predicate on the "host" field.
func HostLT(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLT(FieldHost, v))
}

// HostLTE applies the LTE predicate on the "host" field.
func HostLTE(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLTE(FieldHost, v))
}

// HostContains applies the Contains predicate on the "host" field.
func HostContains(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContains(FieldHost, v))
}

// HostHasPrefix applies the HasPrefix predicate on the "host" field.
func HostHasPrefix(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldHasPrefix(FieldHost, v))
}

// HostHasSuffix applies the HasSuffix predicate on the "host" field.
func HostHasSuffix(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldHasSuffix(FieldHost, v))
}

// HostIsNil applies the IsNil predicate on the "host" field.
func HostIsNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIsNull(FieldHost))
}

// HostNotNil applies the NotNil predicate on the "host" field.
func HostNotNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotNull(FieldHost))
}

// HostEqualFold applies the EqualFold predicate on the "host" field.
func HostEqualFold(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEqualFold(FieldHost, v))
}

// HostContainsFold applies the ContainsFold predicate on the "host" field.
func HostContainsFold(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContainsFold(FieldHost, v))
}

// PortEQ applies the EQ predicate on the "port" field.
func PortEQ(v int) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldPort, v))
}

// PortNEQ applies the NEQ predicate on the "port" field.
func PortNEQ(v int) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldPort, v))
}

// PortIn applies the In predicate on the "port" field.
func PortIn(vs ...int) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldPort, vs...))
}

// PortNotIn applies the NotIn predicate on the "port" field.
func PortNotIn(vs ...int) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldPort, vs...))
}

// PortGT applies the GT predicate on the "port" field.
func PortGT(v int) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGT(FieldPort, v))
}

// PortGTE applies the GTE predicate on the "port" field.
func PortGTE(v int) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGTE(FieldPort, v))
}

// PortLT applies the LT predicate on the "port" field.
func PortLT(v int) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLT(FieldPort, v))
}

// PortLTE applies the LTE predicate on the "port" field.
func PortLTE(v int) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLTE(FieldPort, v))
}

// PortIsNil applies the IsNil predicate on the "port" field.
func PortIsNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIsNull(FieldPort))
}

// PortNotNil applies the NotNil predicate on the "port" field.
func PortNotNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotNull(FieldPort))
}

// DatabaseEQ applies the EQ predicate on the "database" field.
func DatabaseEQ(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldDatabase, v))
}

// DatabaseNEQ applies the NEQ predicate on the "database" field.
func DatabaseNEQ(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldDatabase, v))
}

// DatabaseIn applies the In predicate on the "database" field.
func DatabaseIn(vs ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldDatabase, vs...))
}

// DatabaseNotIn applies the NotIn predicate on the "database" field.
func DatabaseNotIn(vs ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldDatabase, vs...))
}

// DatabaseGT applies the GT predicate on the "database" field.
func DatabaseGT(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGT(FieldDatabase, v))
}

// DatabaseGTE applies the GTE predicate on the "database" field.
func DatabaseGTE(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGTE(FieldDatabase, v))
}

// DatabaseLT applies the LT predicate on the "database" field.
func DatabaseLT(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLT(FieldDatabase, v))
}

// DatabaseLTE applies the LTE predicate on the "database" field.
func DatabaseLTE(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLTE(FieldDatabase, v))
}

// DatabaseContains applies the Contains predicate on the "database" field.
func DatabaseContains(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContains(FieldDatabase, v))
}

// DatabaseHasPrefix applies the HasPrefix predicate on the "database" field.
func DatabaseHasPrefix(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldHasPrefix(FieldDatabase, v))
}

// DatabaseHasSuffix applies the HasSuffix predicate on the "database" field.
func DatabaseHasSuffix(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldHasSuffix(FieldDatabase, v))
}

// DatabaseIsNil applies the IsNil predicate on the "database" field.
func DatabaseIsNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIsNull(FieldDatabase))
}

// DatabaseNotNil applies the NotNil predicate on the "database" field.
func DatabaseNotNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotNull(FieldDatabase))
}

// DatabaseEqualFold applies the EqualFold predicate on the "database" field.
func DatabaseEqualFold(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEqualFold(FieldDatabase, v))
}

// DatabaseContainsFold applies the ContainsFold predicate on the "database" field.
func DatabaseContainsFold(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContainsFold(FieldDatabase, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameIsNil applies the IsNil predicate on the "username" field.
func UsernameIsNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIsNull(FieldUsername))
}

// UsernameNotNil applies the NotNil predicate on the "username" field.
func UsernameNotNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotNull(FieldUsername))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContainsFold(FieldUsername, v))
}

// PasswordEQ applies the EQ predicate on the "password" field.
func PasswordEQ(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldPassword, v))
}

// PasswordNEQ applies the NEQ predicate on the "password" field.
func PasswordNEQ(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldPassword, v))
}

// PasswordIn applies the In predicate on the "password" field.
func PasswordIn(vs ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldPassword, vs...))
}

// PasswordNotIn applies the NotIn predicate on the "password" field.
func PasswordNotIn(vs ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldPassword, vs...))
}

// PasswordGT applies the GT predicate on the "password" field.
func PasswordGT(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGT(FieldPassword, v))
}

// PasswordGTE applies the GTE predicate on the "password" field.
func PasswordGTE(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGTE(FieldPassword, v))
}

// PasswordLT applies the LT predicate on the "password" field.
func PasswordLT(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLT(FieldPassword, v))
}

// PasswordLTE applies the LTE predicate on the "password" field.
func PasswordLTE(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLTE(FieldPassword, v))
}

// PasswordContains applies the Contains predicate on the "password" field.
func PasswordContains(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContains(FieldPassword, v))
}

// PasswordHasPrefix applies the HasPrefix predicate on the "password" field.
func PasswordHasPrefix(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldHasPrefix(FieldPassword, v))
}

// PasswordHasSuffix applies the HasSuffix predicate on the "password" field.
func PasswordHasSuffix(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldHasSuffix(FieldPassword, v))
}

// PasswordIsNil applies the IsNil predicate on the "password" field.
func PasswordIsNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIsNull(FieldPassword))
}

// PasswordNotNil applies the NotNil predicate on the "password" field.
func PasswordNotNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotNull(FieldPassword))
}

// PasswordEqualFold applies the EqualFold predicate on the "password" field.
func PasswordEqualFold(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEqualFold(FieldPassword, v))
}

// PasswordContainsFold applies the ContainsFold predicate on the "password" field.
func PasswordContainsFold(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContainsFold(FieldPassword, v))
}

// DbSchemaEQ applies the EQ predicate on the "db_schema" field.
func DbSchemaEQ(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldDbSchema, v))
}

// DbSchemaNEQ applies the NEQ predicate on the "db_schema" field.
func DbSchemaNEQ(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldDbSchema, v))
}

// DbSchemaIn applies the In predicate on the "db_schema" field.
func DbSchemaIn(vs ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldDbSchema, vs...))
}

// DbSchemaNotIn applies the NotIn predicate on the "db_schema" field.
func DbSchemaNotIn(vs ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldDbSchema, vs...))
}

// DbSchemaGT applies the GT predicate on the "db_schema" field.
func DbSchemaGT(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGT(FieldDbSchema, v))
}

// DbSchemaGTE applies the GTE predicate on the "db_schema" field.
func DbSchemaGTE(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGTE(FieldDbSchema, v))
}

// DbSchemaLT applies the LT predicate on the "db_schema" field.
func DbSchemaLT(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLT(FieldDbSchema, v))
}

// DbSchemaLTE applies the LTE predicate on the "db_schema" field.
func DbSchemaLTE(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLTE(FieldDbSchema, v))
}

// DbSchemaContains applies the Contains predicate on the "db_schema" field.
func DbSchemaContains(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContains(FieldDbSchema, v))
}

// DbSchemaHasPrefix applies the HasPrefix predicate on the "db_schema" field.
func DbSchemaHasPrefix(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldHasPrefix(FieldDbSchema, v))
}

// DbSchemaHasSuffix applies the HasSuffix predicate on the "db_schema" field.
func DbSchemaHasSuffix(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldHasSuffix(FieldDbSchema, v))
}

// DbSchemaIsNil applies the IsNil predicate on the "db_schema" field.
func DbSchemaIsNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIsNull(FieldDbSchema))
}

// DbSchemaNotNil applies the NotNil predicate on the "db_schema" field.
func DbSchemaNotNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotNull(FieldDbSchema))
}

// DbSchemaEqualFold applies the EqualFold predicate on the "db_schema" field.
func DbSchemaEqualFold(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEqualFold(FieldDbSchema, v))
}

// DbSchemaContainsFold applies the ContainsFold predicate on the "db_schema" field.
func DbSchemaContainsFold(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContainsFold(FieldDbSchema, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLTE(FieldCreatedAt, v))
}

// DbElementsStatusEQ applies the EQ predicate on the "db_elements_status" field.
func DbElementsStatusEQ(v DbElementsStatus) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldDbElementsStatus, v))
}

// DbElementsStatusNEQ applies the NEQ predicate on the "db_elements_status" field.
func DbElementsStatusNEQ(v DbElementsStatus) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldDbElementsStatus, v))
}

// DbElementsStatusIn applies the In predicate on the "db_elements_status" field.
func DbElementsStatusIn(vs ...DbElementsStatus) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldDbElementsStatus, vs...))
}

// DbElementsStatusNotIn applies the NotIn predicate on the "db_elements_status" field.
func DbElementsStatusNotIn(vs ...DbElementsStatus) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldDbElementsStatus, vs...))
}

// DbElementsTaskIDEQ applies the EQ predicate on the "db_elements_task_id" field.
func DbElementsTaskIDEQ(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldDbElementsTaskID, v))
}

// DbElementsTaskIDNEQ applies the NEQ predicate on the "db_elements_task_id" field.
func DbElementsTaskIDNEQ(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldDbElementsTaskID, v))
}

// DbElementsTaskIDIn applies the In predicate on the "db_elements_task_id" field.
func DbElementsTaskIDIn(vs ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldDbElementsTaskID, vs...))
}

// DbElementsTaskIDNotIn applies the NotIn predicate on the "db_elements_task_id" field.
func DbElementsTaskIDNotIn(vs ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldDbElementsTaskID, vs...))
}

// DbElementsTaskIDGT applies the GT predicate on the "db_elements_task_id" field.
func DbElementsTaskIDGT(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGT(FieldDbElementsTaskID, v))
}

// DbElementsTaskIDGTE applies the GTE predicate on the "db_elements_task_id" field.
func DbElementsTaskIDGTE(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGTE(FieldDbElementsTaskID, v))
}

// DbElementsTaskIDLT applies the LT predicate on the "db_elements_task_id" field.
func DbElementsTaskIDLT(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLT(FieldDbElementsTaskID, v))
}

// DbElementsTaskIDLTE applies the LTE predicate on the "db_elements_task_id" field.
func DbElementsTaskIDLTE(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLTE(FieldDbElementsTaskID, v))
}

// DbElementsTaskIDContains applies the Contains predicate on the "db_elements_task_id" field.
func DbElementsTaskIDContains(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContains(FieldDbElementsTaskID, v))
}

// DbElementsTaskIDHasPrefix applies the HasPrefix predicate on the "db_elements_task_id" field.
func DbElementsTaskIDHasPrefix(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldHasPrefix(FieldDbElementsTaskID, v))
}

// DbElementsTaskIDHasSuffix applies the HasSuffix predicate on the "db_elements_task_id" field.
func DbElementsTaskIDHasSuffix(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldHasSuffix(FieldDbElementsTaskID, v))
}

// DbElementsTaskIDIsNil applies the IsNil predicate on the "db_elements_task_id" field.
func DbElementsTaskIDIsNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIsNull(FieldDbElementsTaskID))
}

// DbElementsTaskIDNotNil applies the NotNil predicate on the "db_elements_task_id" field.
func DbElementsTaskIDNotNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotNull(FieldDbElementsTaskID))
}

// DbElementsTaskIDEqualFold applies the EqualFold predicate on the "db_elements_task_id" field.
func DbElementsTaskIDEqualFold(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEqualFold(FieldDbElementsTaskID, v))
}

// DbElementsTaskIDContainsFold applies the ContainsFold predicate on the "db_elements_task_id" field.
func DbElementsTaskIDContainsFold(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContainsFold(FieldDbElementsTaskID, v))
}

// DbElementsLogEQ applies the EQ predicate on the "db_elements_log" field.
func DbElementsLogEQ(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldDbElementsLog, v))
}

// DbElementsLogNEQ applies the NEQ predicate on the "db_elements_log" field.
func DbElementsLogNEQ(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldDbElementsLog, v))
}

// DbElementsLogIn applies the In predicate on the "db_elements_log" field.
func DbElementsLogIn(vs ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldDbElementsLog, vs...))
}

// DbElementsLogNotIn applies the NotIn predicate on the "db_elements_log" field.
func DbElementsLogNotIn(vs ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldDbElementsLog, vs...))
}

// DbElementsLogGT applies the GT predicate on the "db_elements_log" field.
func DbElementsLogGT(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGT(FieldDbElementsLog, v))
}

// DbElementsLogGTE applies the GTE predicate on the "db_elements_log" field.
func DbElementsLogGTE(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGTE(FieldDbElementsLog, v))
}

// DbElementsLogLT applies the LT predicate on the "db_elements_log" field.
func DbElementsLogLT(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLT(FieldDbElementsLog, v))
}

// DbElementsLogLTE applies the LTE predicate on the "db_elements_log" field.
func DbElementsLogLTE(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLTE(FieldDbElementsLog, v))
}

// DbElementsLogContains applies the Contains predicate on the "db_elements_log" field.
func DbElementsLogContains(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContains(FieldDbElementsLog, v))
}

// DbElementsLogHasPrefix applies the HasPrefix predicate on the "db_elements_log" field.
func DbElementsLogHasPrefix(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldHasPrefix(FieldDbElementsLog, v))
}

// DbElementsLogHasSuffix applies the HasSuffix predicate on the "db_elements_log" field.
func DbElementsLogHasSuffix(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldHasSuffix(FieldDbElementsLog, v))
}

// DbElementsLogIsNil applies the IsNil predicate on the "db_elements_log" field.
func DbElementsLogIsNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIsNull(FieldDbElementsLog))
}

// DbElementsLogNotNil applies the NotNil predicate on the "db_elements_log" field.
func DbElementsLogNotNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotNull(FieldDbElementsLog))
}

// DbElementsLogEqualFold applies the EqualFold predicate on the "db_elements_log" field.
func DbElementsLogEqualFold(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEqualFold(FieldDbElementsLog, v))
}

// DbElementsLogContainsFold applies the ContainsFold predicate on the "db_elements_log" field.
func DbElementsLogContainsFold(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContainsFold(FieldDbElementsLog, v))
}

// DbElementsStartTimeEQ applies the EQ predicate on the "db_elements_start_time" field.
func DbElementsStartTimeEQ(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldDbElementsStartTime, v))
}

// DbElementsStartTimeNEQ applies the NEQ predicate on the "db_elements_start_time" field.
func DbElementsStartTimeNEQ(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldDbElementsStartTime, v))
}

// DbElementsStartTimeIn applies the In predicate on the "db_elements_start_time" field.
func DbElementsStartTimeIn(vs ...time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldDbElementsStartTime, vs...))
}

// DbElementsStartTimeNotIn applies the NotIn predicate on the "db_elements_start_time" field.
func DbElementsStartTimeNotIn(vs ...time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldDbElementsStartTime, vs...))
}

// DbElementsStartTimeGT applies the GT predicate on the "db_elements_start_time" field.
func DbElementsStartTimeGT(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGT(FieldDbElementsStartTime, v))
}

// DbElementsStartTimeGTE applies the GTE predicate on the "db_elements_start_time" field.
func DbElementsStartTimeGTE(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGTE(FieldDbElementsStartTime, v))
}

// DbElementsStartTimeLT applies the LT predicate on the "db_elements_start_time" field.
func DbElementsStartTimeLT(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLT(FieldDbElementsStartTime, v))
}

// DbElementsStartTimeLTE applies the LTE predicate on the "db_elements_start_time" field.
func DbElementsStartTimeLTE(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLTE(FieldDbElementsStartTime, v))
}

// DbElementsStartTimeIsNil applies the IsNil predicate on the "db_elements_start_time" field.
func DbElementsStartTimeIsNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIsNull(FieldDbElementsStartTime))
}

// DbElementsStartTimeNotNil applies the NotNil predicate on the "db_elements_start_time" field.
func DbElementsStartTimeNotNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotNull(FieldDbElementsStartTime))
}

// DbElementsEndTimeEQ applies the EQ predicate on the "db_elements_end_time" field.
func DbElementsEndTimeEQ(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldDbElementsEndTime, v))
}

// DbElementsEndTimeNEQ applies the NEQ predicate on the "db_elements_end_time" field.
func DbElementsEndTimeNEQ(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldDbElementsEndTime, v))
}

// DbElementsEndTimeIn applies the In predicate on the "db_elements_end_time" field.
func DbElementsEndTimeIn(vs ...time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldDbElementsEndTime, vs...))
}

// DbElementsEndTimeNotIn applies the NotIn predicate on the "db_elements_end_time" field.
func DbElementsEndTimeNotIn(vs ...time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldDbElementsEndTime, vs...))
}

// DbElementsEndTimeGT applies the GT predicate on the "db_elements_end_time" field.
func DbElementsEndTimeGT(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGT(FieldDbElementsEndTime, v))
}

// DbElementsEndTimeGTE applies the GTE predicate on the "db_elements_end_time" field.
func DbElementsEndTimeGTE(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGTE(FieldDbElementsEndTime, v))
}

// DbElementsEndTimeLT applies the LT predicate on the "db_elements_end_time" field.
func DbElementsEndTimeLT(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLT(FieldDbElementsEndTime, v))
}

// DbElementsEndTimeLTE applies the LTE predicate on the "db_elements_end_time" field.
func DbElementsEndTimeLTE(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLTE(FieldDbElementsEndTime, v))
}

// DbElementsEndTimeIsNil applies the IsNil predicate on the "db_elements_end_time" field.
func DbElementsEndTimeIsNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIsNull(FieldDbElementsEndTime))
}

// DbElementsEndTimeNotNil applies the NotNil predicate on the "db_elements_end_time" field.
func DbElementsEndTimeNotNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotNull(FieldDbElementsEndTime))
}

// TableCommentStatusEQ applies the EQ predicate on the "table_comment_status" field.
func TableCommentStatusEQ(v TableCommentStatus) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldTableCommentStatus, v))
}

// TableCommentStatusNEQ applies the NEQ predicate on the "table_comment_status" field.
func TableCommentStatusNEQ(v TableCommentStatus) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldTableCommentStatus, v))
}

// TableCommentStatusIn applies the In predicate on the "table_comment_status" field.
func TableCommentStatusIn(vs ...TableCommentStatus) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldTableCommentStatus, vs...))
}

// TableCommentStatusNotIn applies the NotIn predicate on the "table_comment_status" field.
func TableCommentStatusNotIn(vs ...TableCommentStatus) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldTableCommentStatus, vs...))
}

// TableCommentTaskIDEQ applies the EQ predicate on the "table_comment_task_id" field.
func TableCommentTaskIDEQ(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldTableCommentTaskID, v))
}

// TableCommentTaskIDNEQ applies the NEQ predicate on the "table_comment_task_id" field.
func TableCommentTaskIDNEQ(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldTableCommentTaskID, v))
}

// TableCommentTaskIDIn applies the In predicate on the "table_comment_task_id" field.
func TableCommentTaskIDIn(vs ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldTableCommentTaskID, vs...))
}

// TableCommentTaskIDNotIn applies the NotIn predicate on the "table_comment_task_id" field.
func TableCommentTaskIDNotIn(vs ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldTableCommentTaskID, vs...))
}

// TableCommentTaskIDGT applies the GT predicate on the "table_comment_task_id" field.
func TableCommentTaskIDGT(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGT(FieldTableCommentTaskID, v))
}

// TableCommentTaskIDGTE applies the GTE predicate on the "table_comment_task_id" field.
func TableCommentTaskIDGTE(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGTE(FieldTableCommentTaskID, v))
}

// TableCommentTaskIDLT applies the LT predicate on the "table_comment_task_id" field.
func TableCommentTaskIDLT(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLT(FieldTableCommentTaskID, v))
}

// TableCommentTaskIDLTE applies the LTE predicate on the "table_comment_task_id" field.
func TableCommentTaskIDLTE(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLTE(FieldTableCommentTaskID, v))
}

// TableCommentTaskIDContains applies the Contains predicate on the "table_comment_task_id" field.
func TableCommentTaskIDContains(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContains(FieldTableCommentTaskID, v))
}

// TableCommentTaskIDHasPrefix applies the HasPrefix predicate on the "table_comment_task_id" field.
func TableCommentTaskIDHasPrefix(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldHasPrefix(FieldTableCommentTaskID, v))
}

// TableCommentTaskIDHasSuffix applies the HasSuffix predicate on the "table_comment_task_id" field.
func TableCommentTaskIDHasSuffix(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldHasSuffix(FieldTableCommentTaskID, v))
}

// TableCommentTaskIDIsNil applies the IsNil predicate on the "table_comment_task_id" field.
func TableCommentTaskIDIsNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIsNull(FieldTableCommentTaskID))
}

// TableCommentTaskIDNotNil applies the NotNil predicate on the "table_comment_task_id" field.
func TableCommentTaskIDNotNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotNull(FieldTableCommentTaskID))
}

// TableCommentTaskIDEqualFold applies the EqualFold predicate on the "table_comment_task_id" field.
func TableCommentTaskIDEqualFold(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEqualFold(FieldTableCommentTaskID, v))
}

// TableCommentTaskIDContainsFold applies the ContainsFold predicate on the "table_comment_task_id" field.
func TableCommentTaskIDContainsFold(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContainsFold(FieldTableCommentTaskID, v))
}

// TableCommentLogEQ applies the EQ predicate on the "table_comment_log" field.
func TableCommentLogEQ(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldTableCommentLog, v))
}

// TableCommentLogNEQ applies the NEQ predicate on the "table_comment_log" field.
func TableCommentLogNEQ(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldTableCommentLog, v))
}

// TableCommentLogIn applies the In predicate on the "table_comment_log" field.
func TableCommentLogIn(vs ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldTableCommentLog, vs...))
}

// TableCommentLogNotIn applies the NotIn predicate on the "table_comment_log" field.
func TableCommentLogNotIn(vs ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldTableCommentLog, vs...))
}

// TableCommentLogGT applies the GT predicate on the "table_comment_log" field.
func TableCommentLogGT(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGT(FieldTableCommentLog, v))
}

// TableCommentLogGTE applies the GTE predicate on the "table_comment_log" field.
func TableCommentLogGTE(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGTE(FieldTableCommentLog, v))
}

// TableCommentLogLT applies the LT predicate on the "table_comment_log" field.
func TableCommentLogLT(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLT(FieldTableCommentLog, v))
}

// TableCommentLogLTE applies the LTE predicate on the "table_comment_log" field.
func TableCommentLogLTE(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLTE(FieldTableCommentLog, v))
}

// TableCommentLogContains applies the Contains predicate on the "table_comment_log" field.
func TableCommentLogContains(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContains(FieldTableCommentLog, v))
}

// TableCommentLogHasPrefix applies the HasPrefix predicate on the "table_comment_log" field.
func TableCommentLogHasPrefix(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldHasPrefix(FieldTableCommentLog, v))
}

// TableCommentLogHasSuffix applies the HasSuffix predicate on the "table_comment_log" field.
func TableCommentLogHasSuffix(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldHasSuffix(FieldTableCommentLog, v))
}

// TableCommentLogIsNil applies the IsNil predicate on the "table_comment_log" field.
func TableCommentLogIsNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIsNull(FieldTableCommentLog))
}

// TableCommentLogNotNil applies the NotNil predicate on the "table_comment_log" field.
func TableCommentLogNotNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotNull(FieldTableCommentLog))
}

// TableCommentLogEqualFold applies the EqualFold predicate on the "table_comment_log" field.
func TableCommentLogEqualFold(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEqualFold(FieldTableCommentLog, v))
}

// TableCommentLogContainsFold applies the ContainsFold predicate on the "table_comment_log" field.
func TableCommentLogContainsFold(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContainsFold(FieldTableCommentLog, v))
}

// TableCommentStartTimeEQ applies the EQ predicate on the "table_comment_start_time" field.
func TableCommentStartTimeEQ(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldTableCommentStartTime, v))
}

// TableCommentStartTimeNEQ applies the NEQ predicate on the "table_comment_start_time" field.
func TableCommentStartTimeNEQ(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldTableCommentStartTime, v))
}

// TableCommentStartTimeIn applies the In predicate on the "table_comment_start_time" field.
func TableCommentStartTimeIn(vs ...time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldTableCommentStartTime, vs...))
}

// TableCommentStartTimeNotIn applies the NotIn predicate on the "table_comment_start_time" field.
func TableCommentStartTimeNotIn(vs ...time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldTableCommentStartTime, vs...))
}

// TableCommentStartTimeGT applies the GT predicate on the "table_comment_start_time" field.
func TableCommentStartTimeGT(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGT(FieldTableCommentStartTime, v))
}

// TableCommentStartTimeGTE applies the GTE predicate on the "table_comment_start_time" field.
func TableCommentStartTimeGTE(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGTE(FieldTableCommentStartTime, v))
}

// TableCommentStartTimeLT applies the LT predicate on the "table_comment_start_time" field.
func TableCommentStartTimeLT(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLT(FieldTableCommentStartTime, v))
}

// TableCommentStartTimeLTE applies the LTE predicate on the "table_comment_start_time" field.
func TableCommentStartTimeLTE(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLTE(FieldTableCommentStartTime, v))
}

// TableCommentStartTimeIsNil applies the IsNil predicate on the "table_comment_start_time" field.
func TableCommentStartTimeIsNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIsNull(FieldTableCommentStartTime))
}

// TableCommentStartTimeNotNil applies the NotNil predicate on the "table_comment_start_time" field.
func TableCommentStartTimeNotNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotNull(FieldTableCommentStartTime))
}

// TableCommentEndTimeEQ applies the EQ predicate on the "table_comment_end_time" field.
func TableCommentEndTimeEQ(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldTableCommentEndTime, v))
}

// TableCommentEndTimeNEQ applies the NEQ predicate on the "table_comment_end_time" field.
func TableCommentEndTimeNEQ(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldTableCommentEndTime, v))
}

// TableCommentEndTimeIn applies the In predicate on the "table_comment_end_time" field.
func TableCommentEndTimeIn(vs ...time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldTableCommentEndTime, vs...))
}

// TableCommentEndTimeNotIn applies the NotIn predicate on the "table_comment_end_time" field.
func TableCommentEndTimeNotIn(vs ...time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldTableCommentEndTime, vs...))
}

// TableCommentEndTimeGT applies the GT predicate on the "table_comment_end_time" field.
func TableCommentEndTimeGT(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGT(FieldTableCommentEndTime, v))
}

// TableCommentEndTimeGTE applies the GTE predicate on the "table_comment_end_time" field.
func TableCommentEndTimeGTE(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGTE(FieldTableCommentEndTime, v))
}

// TableCommentEndTimeLT applies the LT predicate on the "table_comment_end_time" field.
func TableCommentEndTimeLT(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLT(FieldTableCommentEndTime, v))
}

// TableCommentEndTimeLTE applies the LTE predicate on the "table_comment_end_time" field.
func TableCommentEndTimeLTE(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLTE(FieldTableCommentEndTime, v))
}

// TableCommentEndTimeIsNil applies the IsNil predicate on the "table_comment_end_time" field.
func TableCommentEndTimeIsNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIsNull(FieldTableCommentEndTime))
}

// TableCommentEndTimeNotNil applies the NotNil predicate on the "table_comment_end_time" field.
func TableCommentEndTimeNotNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotNull(FieldTableCommentEndTime))
}

// ColumnCommentStatusEQ applies the EQ predicate on the "column_comment_status" field.
func ColumnCommentStatusEQ(v ColumnCommentStatus) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldColumnCommentStatus, v))
}

// ColumnCommentStatusNEQ applies the NEQ predicate on the "column_comment_status" field.
func ColumnCommentStatusNEQ(v ColumnCommentStatus) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldColumnCommentStatus, v))
}

// ColumnCommentStatusIn applies the In predicate on the "column_comment_status" field.
func ColumnCommentStatusIn(vs ...ColumnCommentStatus) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldColumnCommentStatus, vs...))
}

// ColumnCommentStatusNotIn applies the NotIn predicate on the "column_comment_status" field.
func ColumnCommentStatusNotIn(vs ...ColumnCommentStatus) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldColumnCommentStatus, vs...))
}

// ColumnCommentTaskIDEQ applies the EQ predicate on the "column_comment_task_id" field.
func ColumnCommentTaskIDEQ(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldColumnCommentTaskID, v))
}

// ColumnCommentTaskIDNEQ applies the NEQ predicate on the "column_comment_task_id" field.
func ColumnCommentTaskIDNEQ(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldColumnCommentTaskID, v))
}

// ColumnCommentTaskIDIn applies the In predicate on the "column_comment_task_id" field.
func ColumnCommentTaskIDIn(vs ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldColumnCommentTaskID, vs...))
}

// ColumnCommentTaskIDNotIn applies the NotIn predicate on the "column_comment_task_id" field.
func ColumnCommentTaskIDNotIn(vs ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldColumnCommentTaskID, vs...))
}

// ColumnCommentTaskIDGT applies the GT predicate on the "column_comment_task_id" field.
func ColumnCommentTaskIDGT(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGT(FieldColumnCommentTaskID, v))
}

// ColumnCommentTaskIDGTE applies the GTE predicate on the "column_comment_task_id" field.
func ColumnCommentTaskIDGTE(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGTE(FieldColumnCommentTaskID, v))
}

// ColumnCommentTaskIDLT applies the LT predicate on the "column_comment_task_id" field.
func ColumnCommentTaskIDLT(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLT(FieldColumnCommentTaskID, v))
}

// ColumnCommentTaskIDLTE applies the LTE predicate on the "column_comment_task_id" field.
func ColumnCommentTaskIDLTE(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLTE(FieldColumnCommentTaskID, v))
}

// ColumnCommentTaskIDContains applies the Contains predicate on the "column_comment_task_id" field.
func ColumnCommentTaskIDContains(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContains(FieldColumnCommentTaskID, v))
}

// ColumnCommentTaskIDHasPrefix applies the HasPrefix predicate on the "column_comment_task_id" field.
func ColumnCommentTaskIDHasPrefix(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldHasPrefix(FieldColumnCommentTaskID, v))
}

// ColumnCommentTaskIDHasSuffix applies the HasSuffix predicate on the "column_comment_task_id" field.
func ColumnCommentTaskIDHasSuffix(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldHasSuffix(FieldColumnCommentTaskID, v))
}

// ColumnCommentTaskIDIsNil applies the IsNil predicate on the "column_comment_task_id" field.
func ColumnCommentTaskIDIsNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIsNull(FieldColumnCommentTaskID))
}

// ColumnCommentTaskIDNotNil applies the NotNil predicate on the "column_comment_task_id" field.
func ColumnCommentTaskIDNotNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotNull(FieldColumnCommentTaskID))
}

// ColumnCommentTaskIDEqualFold applies the EqualFold predicate on the "column_comment_task_id" field.
func ColumnCommentTaskIDEqualFold(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEqualFold(FieldColumnCommentTaskID, v))
}

// ColumnCommentTaskIDContainsFold applies the ContainsFold predicate on the "column_comment_task_id" field.
func ColumnCommentTaskIDContainsFold(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContainsFold(FieldColumnCommentTaskID, v))
}

// ColumnCommentLogEQ applies the EQ predicate on the "column_comment_log" field.
func ColumnCommentLogEQ(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldColumnCommentLog, v))
}

// ColumnCommentLogNEQ applies the NEQ predicate on the "column_comment_log" field.
func ColumnCommentLogNEQ(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldColumnCommentLog, v))
}

// ColumnCommentLogIn applies the In predicate on the "column_comment_log" field.
func ColumnCommentLogIn(vs ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldColumnCommentLog, vs...))
}

// ColumnCommentLogNotIn applies the NotIn predicate on the "column_comment_log" field.
func ColumnCommentLogNotIn(vs ...string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldColumnCommentLog, vs...))
}

// ColumnCommentLogGT applies the GT predicate on the "column_comment_log" field.
func ColumnCommentLogGT(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGT(FieldColumnCommentLog, v))
}

// ColumnCommentLogGTE applies the GTE predicate on the "column_comment_log" field.
func ColumnCommentLogGTE(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGTE(FieldColumnCommentLog, v))
}

// ColumnCommentLogLT applies the LT predicate on the "column_comment_log" field.
func ColumnCommentLogLT(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLT(FieldColumnCommentLog, v))
}

// ColumnCommentLogLTE applies the LTE predicate on the "column_comment_log" field.
func ColumnCommentLogLTE(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLTE(FieldColumnCommentLog, v))
}

// ColumnCommentLogContains applies the Contains predicate on the "column_comment_log" field.
func ColumnCommentLogContains(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContains(FieldColumnCommentLog, v))
}

// ColumnCommentLogHasPrefix applies the HasPrefix predicate on the "column_comment_log" field.
func ColumnCommentLogHasPrefix(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldHasPrefix(FieldColumnCommentLog, v))
}

// ColumnCommentLogHasSuffix applies the HasSuffix predicate on the "column_comment_log" field.
func ColumnCommentLogHasSuffix(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldHasSuffix(FieldColumnCommentLog, v))
}

// ColumnCommentLogIsNil applies the IsNil predicate on the "column_comment_log" field.
func ColumnCommentLogIsNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIsNull(FieldColumnCommentLog))
}

// ColumnCommentLogNotNil applies the NotNil predicate on the "column_comment_log" field.
func ColumnCommentLogNotNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotNull(FieldColumnCommentLog))
}

// ColumnCommentLogEqualFold applies the EqualFold predicate on the "column_comment_log" field.
func ColumnCommentLogEqualFold(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEqualFold(FieldColumnCommentLog, v))
}

// ColumnCommentLogContainsFold applies the ContainsFold predicate on the "column_comment_log" field.
func ColumnCommentLogContainsFold(v string) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldContainsFold(FieldColumnCommentLog, v))
}

// ColumnCommentStartTimeEQ applies the EQ predicate on the "column_comment_start_time" field.
func ColumnCommentStartTimeEQ(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldColumnCommentStartTime, v))
}

// ColumnCommentStartTimeNEQ applies the NEQ predicate on the "column_comment_start_time" field.
func ColumnCommentStartTimeNEQ(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldColumnCommentStartTime, v))
}

// ColumnCommentStartTimeIn applies the In predicate on the "column_comment_start_time" field.
func ColumnCommentStartTimeIn(vs ...time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldColumnCommentStartTime, vs...))
}

// ColumnCommentStartTimeNotIn applies the NotIn predicate on the "column_comment_start_time" field.
func ColumnCommentStartTimeNotIn(vs ...time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldColumnCommentStartTime, vs...))
}

// ColumnCommentStartTimeGT applies the GT predicate on the "column_comment_start_time" field.
func ColumnCommentStartTimeGT(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGT(FieldColumnCommentStartTime, v))
}

// ColumnCommentStartTimeGTE applies the GTE predicate on the "column_comment_start_time" field.
func ColumnCommentStartTimeGTE(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGTE(FieldColumnCommentStartTime, v))
}

// ColumnCommentStartTimeLT applies the LT predicate on the "column_comment_start_time" field.
func ColumnCommentStartTimeLT(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLT(FieldColumnCommentStartTime, v))
}

// ColumnCommentStartTimeLTE applies the LTE predicate on the "column_comment_start_time" field.
func ColumnCommentStartTimeLTE(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLTE(FieldColumnCommentStartTime, v))
}

// ColumnCommentStartTimeIsNil applies the IsNil predicate on the "column_comment_start_time" field.
func ColumnCommentStartTimeIsNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIsNull(FieldColumnCommentStartTime))
}

// ColumnCommentStartTimeNotNil applies the NotNil predicate on the "column_comment_start_time" field.
func ColumnCommentStartTimeNotNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotNull(FieldColumnCommentStartTime))
}

// ColumnCommentEndTimeEQ applies the EQ predicate on the "column_comment_end_time" field.
func ColumnCommentEndTimeEQ(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldEQ(FieldColumnCommentEndTime, v))
}

// ColumnCommentEndTimeNEQ applies the NEQ predicate on the "column_comment_end_time" field.
func ColumnCommentEndTimeNEQ(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNEQ(FieldColumnCommentEndTime, v))
}

// ColumnCommentEndTimeIn applies the In predicate on the "column_comment_end_time" field.
func ColumnCommentEndTimeIn(vs ...time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIn(FieldColumnCommentEndTime, vs...))
}

// ColumnCommentEndTimeNotIn applies the NotIn predicate on the "column_comment_end_time" field.
func ColumnCommentEndTimeNotIn(vs ...time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotIn(FieldColumnCommentEndTime, vs...))
}

// ColumnCommentEndTimeGT applies the GT predicate on the "column_comment_end_time" field.
func ColumnCommentEndTimeGT(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGT(FieldColumnCommentEndTime, v))
}

// ColumnCommentEndTimeGTE applies the GTE predicate on the "column_comment_end_time" field.
func ColumnCommentEndTimeGTE(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldGTE(FieldColumnCommentEndTime, v))
}

// ColumnCommentEndTimeLT applies the LT predicate on the "column_comment_end_time" field.
func ColumnCommentEndTimeLT(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLT(FieldColumnCommentEndTime, v))
}

// ColumnCommentEndTimeLTE applies the LTE predicate on the "column_comment_end_time" field.
func ColumnCommentEndTimeLTE(v time.Time) predicate.SqlDb {
	return predicate.SqlDb(sql.FieldLTE(FieldColumnCommentEndTime, v))
}

// ColumnCommentEndTimeIsNil applies the IsNil predicate on the "column_comment_end_time" field.
func ColumnCommentEndTimeIsNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldIsNull(FieldColumnCommentEndTime))
}

// ColumnCommentEndTimeNotNil applies the NotNil predicate on the "column_comment_end_time" field.
func ColumnCommentEndTimeNotNil() predicate.SqlDb {
	return predicate.SqlDb(sql.FieldNotNull(FieldColumnCommentEndTime))
}

// HasWorkspace applies the HasEdge predicate on the "workspace" edge.
func HasWorkspace() predicate.SqlDb {
	return predicate.SqlDb(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, WorkspaceTable, WorkspaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkspaceWith applies the HasEdge predicate on the "workspace" edge with a given conditions (other predicates).
func HasWorkspaceWith(preds ...predicate.Workspace) predicate.SqlDb {
	return predicate.SqlDb(func(s *sql.Selector) {
		step := newWorkspaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVectorDb applies the HasEdge predicate on the "vector_db" edge.
func HasVectorDb() predicate.SqlDb {
	return predicate.SqlDb(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, VectorDbTable, VectorDbColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVectorDbWith applies the HasEdge predicate on the "vector_db" edge with a given conditions (other predicates).
func HasVectorDbWith(preds ...predicate.VectorDb) predicate.SqlDb {
	return predicate.SqlDb(func(s *sql.Selector) {
		step := newVectorDbStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTables applies the HasEdge predicate on the "tables" edge.
func HasTables() predicate.SqlDb {
	return predicate.SqlDb(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TablesTable, TablesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTablesWith applies the HasEdge predicate on the "tables" edge with a given conditions (other predicates).
func HasTablesWith(preds ...predicate.SqlTable) predicate.SqlDb {
	return predicate.SqlDb(func(s *sql.Selector) {
		step := newTablesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRelationships applies the HasEdge predicate on the "relationships" edge.
func HasRelationships() predicate.SqlDb {
	return predicate.SqlDb(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RelationshipsTable, RelationshipsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRelationshipsWith applies the HasEdge predicate on the "relationships" edge with a given conditions (other predicates).
func HasRelationshipsWith(preds ...predicate.Relationship) predicate.SqlDb {
	return predicate.SqlDb(func(s *sql.Selector) {
		step := newRelationshipsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SqlDb) predicate.SqlDb {
	return predicate.SqlDb(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SqlDb) predicate.SqlDb {
	return predicate.SqlDb(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SqlDb) predicate.SqlDb {
	return predicate.SqlDb(sql.NotPredicates(p))
}
