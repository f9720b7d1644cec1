// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thoth-ai/thoth/ent/predicate"
	"github.com/thoth-ai/thoth/ent/vectordb"
)

// VectorDbUpdate is the builder for updating VectorDb entities.
type VectorDbUpdate struct {
	config
	hooks    []Hook
	mutation *VectorDbMutation
}

// Where appends a list predicates to the VectorDbUpdate builder.
func (_u *VectorDbUpdate) Where(ps ...predicate.VectorDb) *VectorDbUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBackend sets the "backend" field.
func (_u *VectorDbUpdate) SetBackend(v vectordb.Backend) *VectorDbUpdate {
	_u.mutation.SetBackend(v)
	return _u
}

// SetNillableBackend sets the "backend" field if the given value is not nil.
func (_u *VectorDbUpdate) SetNillableBackend(v *vectordb.Backend) *VectorDbUpdate {
	if v != nil {
		_u.SetBackend(*v)
	}
	return _u
}

// SetHost sets the "host" field.
func (_u *VectorDbUpdate) SetHost(v string) *VectorDbUpdate {
	_u.mutation.SetHost(v)
	return _u
}

// SetNillableHost sets the "host" field if the given value is not nil.
func (_u *VectorDbUpdate) SetNillableHost(v *string) *VectorDbUpdate {
	if v != nil {
		_u.SetHost(*v)
	}
	return _u
}

// SetPort sets the "port" field.
func (_u *VectorDbUpdate) SetPort(v int) *VectorDbUpdate {
	_u.mutation.ResetPort()
	_u.mutation.SetPort(v)
	return _u
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_u *VectorDbUpdate) SetNillablePort(v *int) *VectorDbUpdate {
	if v != nil {
		_u.SetPort(*v)
	}
	return _u
}

// AddPort adds value to the "port" field.
func (_u *VectorDbUpdate) AddPort(v int) *VectorDbUpdate {
	_u.mutation.AddPort(v)
	return _u
}

// ClearPort clears the value of the "port" field.
func (_u *VectorDbUpdate) ClearPort() *VectorDbUpdate {
	_u.mutation.ClearPort()
	return _u
}

// SetUsername sets the "username" field.
func (_u *VectorDbUpdate) SetUsername(v string) *VectorDbUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *VectorDbUpdate) SetNillableUsername(v *string) *VectorDbUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// ClearUsername clears the value of the "username" field.
func (_u *VectorDbUpdate) ClearUsername() *VectorDbUpdate {
	_u.mutation.ClearUsername()
	return _u
}

// SetPassword sets the "password" field.
func (_u *VectorDbUpdate) SetPassword(v string) *VectorDbUpdate {
	_u.mutation.SetPassword(v)
	return _u
}

// SetNillablePassword sets the "password" field if the given value is not nil.
func (_u *VectorDbUpdate) SetNillablePassword(v *string) *VectorDbUpdate {
	if v != nil {
		_u.SetPassword(*v)
	}
	return _u
}

// ClearPassword clears the value of the "password" field.
func (_u *VectorDbUpdate) ClearPassword() *VectorDbUpdate {
	_u.mutation.ClearPassword()
	return _u
}

// SetAPIKey sets the "api_key" field.
func (_u *VectorDbUpdate) SetAPIKey(v string) *VectorDbUpdate {
	_u.mutation.SetAPIKey(v)
	return _u
}

// SetNillableAPIKey sets the "api_key" field if the given value is not nil.
func (_u *VectorDbUpdate) SetNillableAPIKey(v *string) *VectorDbUpdate {
	if v != nil {
		_u.SetAPIKey(*v)
	}
	return _u
}

// ClearAPIKey clears the value of the "api_key" field.
func (_u *VectorDbUpdate) ClearAPIKey() *VectorDbUpdate {
	_u.mutation.ClearAPIKey()
	return _u
}

// SetTenant sets the "tenant" field.
func (_u *VectorDbUpdate) SetTenant(v string) *VectorDbUpdate {
	_u.mutation.SetTenant(v)
	return _u
}

// SetNillableTenant sets the "tenant" field if the given value is not nil.
func (_u *VectorDbUpdate) SetNillableTenant(v *string) *VectorDbUpdate {
	if v != nil {
		_u.SetTenant(*v)
	}
	return _u
}

// ClearTenant clears the value of the "tenant" field.
func (_u *VectorDbUpdate) ClearTenant() *VectorDbUpdate {
	_u.mutation.ClearTenant()
	return _u
}

// SetCollection sets the "collection" field.
func (_u *VectorDbUpdate) SetCollection(v string) *VectorDbUpdate {
	_u.mutation.SetCollection(v)
	return _u
}

// SetNillableCollection sets the "collection" field if the given value is not nil.
func (_u *VectorDbUpdate) SetNillableCollection(v *string) *VectorDbUpdate {
	if v != nil {
		_u.SetCollection(*v)
	}
	return _u
}

// Mutation returns the VectorDbMutation object of the builder.
func (_u *VectorDbUpdate) Mutation() *VectorDbMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VectorDbUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VectorDbUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VectorDbUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VectorDbUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VectorDbUpdate) check() error {
	if v, ok := _u.mutation.Backend(); ok {
		if err := vectordb.BackendValidator(v); err != nil {
			return &ValidationError{Name: "backend", err: fmt.Errorf(`ent: validator failed for field "VectorDb.backend": %w`, err)}
		}
	}
	return nil
}

func (_u *VectorDbUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vectordb.Table, vectordb.Columns, sqlgraph.NewFieldSpec(vectordb.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Backend(); ok {
		_spec.SetField(vectordb.FieldBackend, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Host(); ok {
		_spec.SetField(vectordb.FieldHost, field.TypeString, value)
	}
	if value, ok := _u.mutation.Port(); ok {
		_spec.SetField(vectordb.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPort(); ok {
		_spec.AddField(vectordb.FieldPort, field.TypeInt, value)
	}
	if _u.mutation.PortCleared() {
		_spec.ClearField(vectordb.FieldPort, field.TypeInt)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(vectordb.FieldUsername, field.TypeString, value)
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(vectordb.FieldUsername, field.TypeString)
	}
	if value, ok := _u.mutation.Password(); ok {
		_spec.SetField(vectordb.FieldPassword, field.TypeString, value)
	}
	if _u.mutation.PasswordCleared() {
		_spec.ClearField(vectordb.FieldPassword, field.TypeString)
	}
	if value, ok := _u.mutation.APIKey(); ok {
		_spec.SetField(vectordb.FieldAPIKey, field.TypeString, value)
	}
	if _u.mutation.APIKeyCleared() {
		_spec.ClearField(vectordb.FieldAPIKey, field.TypeString)
	}
	if value, ok := _u.mutation.Tenant(); ok {
		_spec.SetField(vectordb.FieldTenant, field.TypeString, value)
	}
	if _u.mutation.TenantCleared() {
		_spec.ClearField(vectordb.FieldTenant, field.TypeString)
	}
	if value, ok := _u.mutation.Collection(); ok {
		_spec.SetField(vectordb.FieldCollection, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vectordb.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VectorDbUpdateOne is the builder for updating a single VectorDb entity.
type VectorDbUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VectorDbMutation
}

// SetBackend sets the "backend" field.
func (_u *VectorDbUpdateOne) SetBackend(v vectordb.Backend) *VectorDbUpdateOne {
	_u.mutation.SetBackend(v)
	return _u
}

// SetNillableBackend sets the "backend" field if the given value is not nil.
func (_u *VectorDbUpdateOne) SetNillableBackend(v *vectordb.Backend) *VectorDbUpdateOne {
	if v != nil {
		_u.SetBackend(*v)
	}
	return _u
}

// SetHost sets the "host" field.
func (_u *VectorDbUpdateOne) SetHost(v string) *VectorDbUpdateOne {
	_u.mutation.SetHost(v)
	return _u
}

// SetNillableHost sets the "host" field if the given value is not nil.
func (_u *VectorDbUpdateOne) SetNillableHost(v *string) *VectorDbUpdateOne {
	if v != nil {
		_u.SetHost(*v)
	}
	return _u
}

// SetPort sets the "port" field.
func (_u *VectorDbUpdateOne) SetPort(v int) *VectorDbUpdateOne {
	_u.mutation.ResetPort()
	_u.mutation.SetPort(v)
	return _u
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_u *VectorDbUpdateOne) SetNillablePort(v *int) *VectorDbUpdateOne {
	if v != nil {
		_u.SetPort(*v)
	}
	return _u
}

// AddPort adds value to the "port" field.
func (_u *VectorDbUpdateOne) AddPort(v int) *VectorDbUpdateOne {
	_u.mutation.AddPort(v)
	return _u
}

// ClearPort clears the value of the "port" field.
func (_u *VectorDbUpdateOne) ClearPort() *VectorDbUpdateOne {
	_u.mutation.ClearPort()
	return _u
}

// SetUsername sets the "username" field.
func (_u *VectorDbUpdateOne) SetUsername(v string) *VectorDbUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *VectorDbUpdateOne) SetNillableUsername(v *string) *VectorDbUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// ClearUsername clears the value of the "username" field.
func (_u *VectorDbUpdateOne) ClearUsername() *VectorDbUpdateOne {
	_u.mutation.ClearUsername()
	return _u
}

// SetPassword sets the "password" field.
func (_u *VectorDbUpdateOne) SetPassword(v string) *VectorDbUpdateOne {
	_u.mutation.SetPassword(v)
	return _u
}

// SetNillablePassword sets the "password" field if the given value is not nil.
func (_u *VectorDbUpdateOne) SetNillablePassword(v *string) *VectorDbUpdateOne {
	if v != nil {
		_u.SetPassword(*v)
	}
	return _u
}

// ClearPassword clears the value of the "password" field.
func (_u *VectorDbUpdateOne) ClearPassword() *VectorDbUpdateOne {
	_u.mutation.ClearPassword()
	return _u
}

// SetAPIKey sets the "api_key" field.
func (_u *VectorDbUpdateOne) SetAPIKey(v string) *VectorDbUpdateOne {
	_u.mutation.SetAPIKey(v)
	return _u
}

// SetNillableAPIKey sets the "api_key" field if the given value is not nil.
func (_u *VectorDbUpdateOne) SetNillableAPIKey(v *string) *VectorDbUpdateOne {
	if v != nil {
		_u.SetAPIKey(*v)
	}
	return _u
}

// ClearAPIKey clears the value of the "api_key" field.
func (_u *VectorDbUpdateOne) ClearAPIKey() *VectorDbUpdateOne {
	_u.mutation.ClearAPIKey()
	return _u
}

// SetTenant sets the "tenant" field.
func (_u *VectorDbUpdateOne) SetTenant(v string) *VectorDbUpdateOne {
	_u.mutation.SetTenant(v)
	return _u
}

// SetNillableTenant sets the "tenant" field if the given value is not nil.
func (_u *VectorDbUpdateOne) SetNillableTenant(v *string) *VectorDbUpdateOne {
	if v != nil {
		_u.SetTenant(*v)
	}
	return _u
}

// ClearTenant clears the value of the "tenant" field.
func (_u *VectorDbUpdateOne) ClearTenant() *VectorDbUpdateOne {
	_u.mutation.ClearTenant()
	return _u
}

// SetCollection sets the "collection" field.
func (_u *VectorDbUpdateOne) SetCollection(v string) *VectorDbUpdateOne {
	_u.mutation.SetCollection(v)
	return _u
}

// SetNillableCollection sets the "collection" field if the given value is not nil.
func (_u *VectorDbUpdateOne) SetNillableCollection(v *string) *VectorDbUpdateOne {
	if v != nil {
		_u.SetCollection(*v)
	}
	return _u
}

// Mutation returns the VectorDbMutation object of the builder.
func (_u *VectorDbUpdateOne) Mutation() *VectorDbMutation {
	return _u.mutation
}

// Where appends a list predicates to the VectorDbUpdate builder.
func (_u *VectorDbUpdateOne) Where(ps ...predicate.VectorDb) *VectorDbUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VectorDbUpdateOne) Select(field string, fields ...string) *VectorDbUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VectorDb entity.
func (_u *VectorDbUpdateOne) Save(ctx context.Context) (*VectorDb, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VectorDbUpdateOne) SaveX(ctx context.Context) *VectorDb {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VectorDbUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VectorDbUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VectorDbUpdateOne) check() error {
	if v, ok := _u.mutation.Backend(); ok {
		if err := vectordb.BackendValidator(v); err != nil {
			return &ValidationError{Name: "backend", err: fmt.Errorf(`ent: validator failed for field "VectorDb.backend": %w`, err)}
		}
	}
	return nil
}

func (_u *VectorDbUpdateOne) sqlSave(ctx context.Context) (_node *VectorDb, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vectordb.Table, vectordb.Columns, sqlgraph.NewFieldSpec(vectordb.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VectorDb.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vectordb.FieldID)
		for _, f := range fields {
			if !vectordb.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vectordb.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Backend(); ok {
		_spec.SetField(vectordb.FieldBackend, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Host(); ok {
		_spec.SetField(vectordb.FieldHost, field.TypeString, value)
	}
	if value, ok := _u.mutation.Port(); ok {
		_spec.SetField(vectordb.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPort(); ok {
		_spec.AddField(vectordb.FieldPort, field.TypeInt, value)
	}
	if _u.mutation.PortCleared() {
		_spec.ClearField(vectordb.FieldPort, field.TypeInt)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(vectordb.FieldUsername, field.TypeString, value)
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(vectordb.FieldUsername, field.TypeString)
	}
	if value, ok := _u.mutation.Password(); ok {
		_spec.SetField(vectordb.FieldPassword, field.TypeString, value)
	}
	if _u.mutation.PasswordCleared() {
		_spec.ClearField(vectordb.FieldPassword, field.TypeString)
	}
	if value, ok := _u.mutation.APIKey(); ok {
		_spec.SetField(vectordb.FieldAPIKey, field.TypeString, value)
	}
	if _u.mutation.APIKeyCleared() {
		_spec.ClearField(vectordb.FieldAPIKey, field.TypeString)
	}
	if value, ok := _u.mutation.Tenant(); ok {
		_spec.SetField(vectordb.FieldTenant, field.TypeString, value)
	}
	if _u.mutation.TenantCleared() {
		_spec.ClearField(vectordb.FieldTenant, field.TypeString)
	}
	if value, ok := _u.mutation.Collection(); ok {
		_spec.SetField(vectordb.FieldCollection, field.TypeString, value)
	}
	_node = &VectorDb{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vectordb.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
