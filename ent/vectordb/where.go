// Code generated by ent, DO NOT EDIT.

package vectordb

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/thoth-ai/thoth/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldContainsFold(FieldID, id))
}

// Host applies equality check predicate on the "host" field. It's identical to HostEQ.
func Host(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEQ(FieldHost, v))
}

// Port applies equality check predicate on the "port" field. It's identical to PortEQ.
func Port(v int) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEQ(FieldPort, v))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEQ(FieldUsername, v))
}

// Password applies equality check predicate on the "password" field. It's identical to PasswordEQ.
func Password(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEQ(FieldPassword, v))
}

// APIKey applies equality check predicate on the "api_key" field. It's identical to APIKeyEQ.
func APIKey(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEQ(FieldAPIKey, v))
}

// Tenant applies equality check predicate on the "tenant" field. It's identical to TenantEQ.
func Tenant(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEQ(FieldTenant, v))
}

// Collection applies equality check predicate on the "collection" field. It's identical to CollectionEQ.
func Collection(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEQ(FieldCollection, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEQ(FieldCreatedAt, v))
}

// BackendEQ applies the EQ predicate on the "backend" field.
func BackendEQ(v Backend) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEQ(FieldBackend, v))
}

// BackendNEQ applies the NEQ predicate on the "backend" field.
func BackendNEQ(v Backend) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNEQ(FieldBackend, v))
}

// BackendIn applies the In predicate on the "backend" field.
func BackendIn(vs ...Backend) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldIn(FieldBackend, vs...))
}

// BackendNotIn applies the NotIn predicate on the "backend" field.
func BackendNotIn(vs ...Backend) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNotIn(FieldBackend, vs...))
}

// HostEQ applies the EQ predicate on the "host" field.
func HostEQ(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEQ(FieldHost, v))
}

// HostNEQ applies the NEQ predicate on the "host" field.
func HostNEQ(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNEQ(FieldHost, v))
}

// HostIn applies the In predicate on the "host" field.
func HostIn(vs ...string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldIn(FieldHost, vs...))
}

// HostNotIn applies the NotIn predicate on the "host" field.
func HostNotIn(vs ...string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNotIn(FieldHost, vs...))
}

// HostGT applies the GT predicate on the "host" field.
func HostGT(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldGT(FieldHost, v))
}

// HostGTE applies the GTE predicate on the "host" field.
func HostGTE(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldGTE(FieldHost, v))
}

// HostLT applies the LT predicate on the "host" field.
func HostLT(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldLT(FieldHost, v))
}

// HostLTE applies the LTE predicate on the "host" field.
func HostLTE(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldLTE(FieldHost, v))
}

// HostContains applies the Contains predicate on the "host" field.
func HostContains(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldContains(FieldHost, v))
}

// HostHasPrefix applies the HasPrefix predicate on the "host" field.
func HostHasPrefix(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldHasPrefix(FieldHost, v))
}

// HostHasSuffix applies the HasSuffix predicate on the "host" field.
func HostHasSuffix(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldHasSuffix(FieldHost, v))
}

// HostEqualFold applies the EqualFold predicate on the "host" field.
func HostEqualFold(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEqualFold(FieldHost, v))
}

// HostContainsFold applies the ContainsFold predicate on the "host" field.
func HostContainsFold(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldContainsFold(FieldHost, v))
}

// PortEQ applies the EQ predicate on the "port" field.
func PortEQ(v int) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEQ(FieldPort, v))
}

// PortNEQ applies the NEQ predicate on the "port" field.
func PortNEQ(v int) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNEQ(FieldPort, v))
}

// PortIn applies the In predicate on the "port" field.
func PortIn(vs ...int) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldIn(FieldPort, vs...))
}

// PortNotIn applies the NotIn predicate on the "port" field.
func PortNotIn(vs ...int) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNotIn(FieldPort, vs...))
}

// PortGT applies the GT predicate on the "port" field.
func PortGT(v int) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldGT(FieldPort, v))
}

// PortGTE applies the GTE predicate on the "port" field.
func PortGTE(v int) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldGTE(FieldPort, v))
}

// PortLT applies the LT predicate on the "port" field.
func PortLT(v int) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldLT(FieldPort, v))
}

// PortLTE applies the LTE predicate on the "port" field.
func PortLTE(v int) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldLTE(FieldPort, v))
}

// PortIsNil applies the IsNil predicate on the "port" field.
func PortIsNil() predicate.VectorDb {
	return predicate.VectorDb(sql.FieldIsNull(FieldPort))
}

// PortNotNil applies the NotNil predicate on the "port" field.
func PortNotNil() predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNotNull(FieldPort))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameIsNil applies the IsNil predicate on the "username" field.
func UsernameIsNil() predicate.VectorDb {
	return predicate.VectorDb(sql.FieldIsNull(FieldUsername))
}

// UsernameNotNil applies the NotNil predicate on the "username" field.
func UsernameNotNil() predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNotNull(FieldUsername))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldContainsFold(FieldUsername, v))
}

// PasswordEQ applies the EQ predicate on the "password" field.
func PasswordEQ(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEQ(FieldPassword, v))
}

// PasswordNEQ applies the NEQ predicate on the "password" field.
func PasswordNEQ(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNEQ(FieldPassword, v))
}

// PasswordIn applies the In predicate on the "password" field.
func PasswordIn(vs ...string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldIn(FieldPassword, vs...))
}

// PasswordNotIn applies the NotIn predicate on the "password" field.
func PasswordNotIn(vs ...string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNotIn(FieldPassword, vs...))
}

// PasswordGT applies the GT predicate on the "password" field.
func PasswordGT(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldGT(FieldPassword, v))
}

// PasswordGTE applies the GTE predicate on the "password" field.
func PasswordGTE(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldGTE(FieldPassword, v))
}

// PasswordLT applies the LT predicate on the "password" field.
func PasswordLT(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldLT(FieldPassword, v))
}

// PasswordLTE applies the LTE predicate on the "password" field.
func PasswordLTE(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldLTE(FieldPassword, v))
}

// PasswordContains applies the Contains predicate on the "password" field.
func PasswordContains(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldContains(FieldPassword, v))
}

// PasswordHasPrefix applies the HasPrefix predicate on the "password" field.
func PasswordHasPrefix(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldHasPrefix(FieldPassword, v))
}

// PasswordHasSuffix applies the HasSuffix predicate on the "password" field.
func PasswordHasSuffix(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldHasSuffix(FieldPassword, v))
}

// PasswordIsNil applies the IsNil predicate on the "password" field.
func PasswordIsNil() predicate.VectorDb {
	return predicate.VectorDb(sql.FieldIsNull(FieldPassword))
}

// PasswordNotNil applies the NotNil predicate on the "password" field.
func PasswordNotNil() predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNotNull(FieldPassword))
}

// PasswordEqualFold applies the EqualFold predicate on the "password" field.
func PasswordEqualFold(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEqualFold(FieldPassword, v))
}

// PasswordContainsFold applies the ContainsFold predicate on the "password" field.
func PasswordContainsFold(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldContainsFold(FieldPassword, v))
}

// APIKeyEQ applies the EQ predicate on the "api_key" field.
func APIKeyEQ(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEQ(FieldAPIKey, v))
}

// APIKeyNEQ applies the NEQ predicate on the "api_key" field.
func APIKeyNEQ(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNEQ(FieldAPIKey, v))
}

// APIKeyIn applies the In predicate on the "api_key" field.
func APIKeyIn(vs ...string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldIn(FieldAPIKey, vs...))
}

// APIKeyNotIn applies the NotIn predicate on the "api_key" field.
func APIKeyNotIn(vs ...string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNotIn(FieldAPIKey, vs...))
}

// APIKeyGT applies the GT predicate on the "api_key" field.
func APIKeyGT(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldGT(FieldAPIKey, v))
}

// APIKeyGTE applies the GTE predicate on the "api_key" field.
func APIKeyGTE(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldGTE(FieldAPIKey, v))
}

// APIKeyLT applies the LT predicate on the "api_key" field.
func APIKeyLT(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldLT(FieldAPIKey, v))
}

// APIKeyLTE applies the LTE predicate on the "api_key" field.
func APIKeyLTE(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldLTE(FieldAPIKey, v))
}

// APIKeyContains applies the Contains predicate on the "api_key" field.
func APIKeyContains(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldContains(FieldAPIKey, v))
}

// APIKeyHasPrefix applies the HasPrefix predicate on the "api_key" field.
func APIKeyHasPrefix(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldHasPrefix(FieldAPIKey, v))
}

// APIKeyHasSuffix applies the HasSuffix predicate on the "api_key" field.
func APIKeyHasSuffix(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldHasSuffix(FieldAPIKey, v))
}

// APIKeyIsNil applies the IsNil predicate on the "api_key" field.
func APIKeyIsNil() predicate.VectorDb {
	return predicate.VectorDb(sql.FieldIsNull(FieldAPIKey))
}

// APIKeyNotNil applies the NotNil predicate on the "api_key" field.
func APIKeyNotNil() predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNotNull(FieldAPIKey))
}

// APIKeyEqualFold applies the EqualFold predicate on the "api_key" field.
func APIKeyEqualFold(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEqualFold(FieldAPIKey, v))
}

// APIKeyContainsFold applies the ContainsFold predicate on the "api_key" field.
func APIKeyContainsFold(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldContainsFold(FieldAPIKey, v))
}

// TenantEQ applies the EQ predicate on the "tenant" field.
func TenantEQ(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEQ(FieldTenant, v))
}

// TenantNEQ applies the NEQ predicate on the "tenant" field.
func TenantNEQ(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNEQ(FieldTenant, v))
}

// TenantIn applies the In predicate on the "tenant" field.
func TenantIn(vs ...string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldIn(FieldTenant, vs...))
}

// TenantNotIn applies the NotIn predicate on the "tenant" field.
func TenantNotIn(vs ...string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNotIn(FieldTenant, vs...))
}

// TenantGT applies the GT predicate on the "tenant" field.
func TenantGT(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldGT(FieldTenant, v))
}

// TenantGTE applies the GTE predicate on the "tenant" field.
func TenantGTE(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldGTE(FieldTenant, v))
}

// TenantLT applies the LT predicate on the "tenant" field.
func TenantLT(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldLT(FieldTenant, v))
}

// TenantLTE applies the LTE predicate on the "tenant" field.
func TenantLTE(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldLTE(FieldTenant, v))
}

// TenantContains applies the Contains predicate on the "tenant" field.
func TenantContains(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldContains(FieldTenant, v))
}

// TenantHasPrefix applies the HasPrefix predicate on the "tenant" field.
func TenantHasPrefix(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldHasPrefix(FieldTenant, v))
}

// TenantHasSuffix applies the HasSuffix predicate on the "tenant" field.
func TenantHasSuffix(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldHasSuffix(FieldTenant, v))
}

// TenantIsNil applies the IsNil predicate on the "tenant" field.
func TenantIsNil() predicate.VectorDb {
	return predicate.VectorDb(sql.FieldIsNull(FieldTenant))
}

// TenantNotNil applies the NotNil predicate on the "tenant" field.
func TenantNotNil() predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNotNull(FieldTenant))
}

// TenantEqualFold applies the EqualFold predicate on the "tenant" field.
func TenantEqualFold(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEqualFold(FieldTenant, v))
}

// TenantContainsFold applies the ContainsFold predicate on the "tenant" field.
func TenantContainsFold(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldContainsFold(FieldTenant, v))
}

// CollectionEQ applies the EQ predicate on the "collection" field.
func CollectionEQ(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEQ(FieldCollection, v))
}

// CollectionNEQ applies the NEQ predicate on the "collection" field.
func CollectionNEQ(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNEQ(FieldCollection, v))
}

// CollectionIn applies the In predicate on the "collection" field.
func CollectionIn(vs ...string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldIn(FieldCollection, vs...))
}

// CollectionNotIn applies the NotIn predicate on the "collection" field.
func CollectionNotIn(vs ...string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNotIn(FieldCollection, vs...))
}

// CollectionGT applies the GT predicate on the "collection" field.
func CollectionGT(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldGT(FieldCollection, v))
}

// CollectionGTE applies the GTE predicate on the "collection" field.
func CollectionGTE(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldGTE(FieldCollection, v))
}

// CollectionLT applies the LT predicate on the "collection" field.
func CollectionLT(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldLT(FieldCollection, v))
}

// CollectionLTE applies the LTE predicate on the "collection" field.
func CollectionLTE(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldLTE(FieldCollection, v))
}

// CollectionContains applies the Contains predicate on the "collection" field.
func CollectionContains(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldContains(FieldCollection, v))
}

// CollectionHasPrefix applies the HasPrefix predicate on the "collection" field.
func CollectionHasPrefix(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldHasPrefix(FieldCollection, v))
}

// CollectionHasSuffix applies the HasSuffix predicate on the "collection" field.
func CollectionHasSuffix(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldHasSuffix(FieldCollection, v))
}

// CollectionEqualFold applies the EqualFold predicate on the "collection" field.
func CollectionEqualFold(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEqualFold(FieldCollection, v))
}

// CollectionContainsFold applies the ContainsFold predicate on the "collection" field.
func CollectionContainsFold(v string) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldContainsFold(FieldCollection, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VectorDb {
	return predicate.VectorDb(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VectorDb) predicate.VectorDb {
	return predicate.VectorDb(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VectorDb) predicate.VectorDb {
	return predicate.VectorDb(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VectorDb) predicate.VectorDb {
	return predicate.VectorDb(sql.NotPredicates(p))
}
