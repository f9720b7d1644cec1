// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thoth-ai/thoth/ent/vectordb"
)

// VectorDbCreate is the builder for creating a VectorDb entity.
type VectorDbCreate struct {
	config
	mutation *VectorDbMutation
	hooks    []Hook
}

// SetBackend sets the "backend" field.
func (_c *VectorDbCreate) SetBackend(v vectordb.Backend) *VectorDbCreate {
	_c.mutation.SetBackend(v)
	return _c
}

// SetHost sets the "host" field.
func (_c *VectorDbCreate) SetHost(v string) *VectorDbCreate {
	_c.mutation.SetHost(v)
	return _c
}

// SetPort sets the "port" field.
func (_c *VectorDbCreate) SetPort(v int) *VectorDbCreate {
	_c.mutation.SetPort(v)
	return _c
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_c *VectorDbCreate) SetNillablePort(v *int) *VectorDbCreate {
	if v != nil {
		_c.SetPort(*v)
	}
	return _c
}

// SetUsername sets the "username" field.
func (_c *VectorDbCreate) SetUsername(v string) *VectorDbCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_c *VectorDbCreate) SetNillableUsername(v *string) *VectorDbCreate {
	if v != nil {
		_c.SetUsername(*v)
	}
	return _c
}

// SetPassword sets the "password" field.
func (_c *VectorDbCreate) SetPassword(v string) *VectorDbCreate {
	_c.mutation.SetPassword(v)
	return _c
}

// SetNillablePassword sets the "password" field if the given value is not nil.
func (_c *VectorDbCreate) SetNillablePassword(v *string) *VectorDbCreate {
	if v != nil {
		_c.SetPassword(*v)
	}
	return _c
}

// SetAPIKey sets the "api_key" field.
func (_c *VectorDbCreate) SetAPIKey(v string) *VectorDbCreate {
	_c.mutation.SetAPIKey(v)
	return _c
}

// SetNillableAPIKey sets the "api_key" field if the given value is not nil.
func (_c *VectorDbCreate) SetNillableAPIKey(v *string) *VectorDbCreate {
	if v != nil {
		_c.SetAPIKey(*v)
	}
	return _c
}

// SetTenant sets the "tenant" field.
func (_c *VectorDbCreate) SetTenant(v string) *VectorDbCreate {
	_c.mutation.SetTenant(v)
	return _c
}

// SetNillableTenant sets the "tenant" field if the given value is not nil.
func (_c *VectorDbCreate) SetNillableTenant(v *string) *VectorDbCreate {
	if v != nil {
		_c.SetTenant(*v)
	}
	return _c
}

// SetCollection sets the "collection" field.
func (_c *VectorDbCreate) SetCollection(v string) *VectorDbCreate {
	_c.mutation.SetCollection(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VectorDbCreate) SetCreatedAt(v time.Time) *VectorDbCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VectorDbCreate) SetNillableCreatedAt(v *time.Time) *VectorDbCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VectorDbCreate) SetID(v string) *VectorDbCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the VectorDbMutation object of the builder.
func (_c *VectorDbCreate) Mutation() *VectorDbMutation {
	return _c.mutation
}

// Save creates the VectorDb in the database.
func (_c *VectorDbCreate) Save(ctx context.Context) (*VectorDb, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VectorDbCreate) SaveX(ctx context.Context) *VectorDb {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VectorDbCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VectorDbCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VectorDbCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vectordb.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VectorDbCreate) check() error {
	if _, ok := _c.mutation.Backend(); !ok {
		return &ValidationError{Name: "backend", err: errors.New(`ent: missing required field "VectorDb.backend"`)}
	}
	if v, ok := _c.mutation.Backend(); ok {
		if err := vectordb.BackendValidator(v); err != nil {
			return &ValidationError{Name: "backend", err: fmt.Errorf(`ent: validator failed for field "VectorDb.backend": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Host(); !ok {
		return &ValidationError{Name: "host", err: errors.New(`ent: missing required field "VectorDb.host"`)}
	}
	if _, ok := _c.mutation.Collection(); !ok {
		return &ValidationError{Name: "collection", err: errors.New(`ent: missing required field "VectorDb.collection"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VectorDb.created_at"`)}
	}
	return nil
}

func (_c *VectorDbCreate) sqlSave(ctx context.Context) (*VectorDb, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected VectorDb.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VectorDbCreate) createSpec() (*VectorDb, *sqlgraph.CreateSpec) {
	var (
		_node = &VectorDb{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vectordb.Table, sqlgraph.NewFieldSpec(vectordb.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Backend(); ok {
		_spec.SetField(vectordb.FieldBackend, field.TypeEnum, value)
		_node.Backend = value
	}
	if value, ok := _c.mutation.Host(); ok {
		_spec.SetField(vectordb.FieldHost, field.TypeString, value)
		_node.Host = value
	}
	if value, ok := _c.mutation.Port(); ok {
		_spec.SetField(vectordb.FieldPort, field.TypeInt, value)
		_node.Port = value
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(vectordb.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.Password(); ok {
		_spec.SetField(vectordb.FieldPassword, field.TypeString, value)
		_node.Password = value
	}
	if value, ok := _c.mutation.APIKey(); ok {
		_spec.SetField(vectordb.FieldAPIKey, field.TypeString, value)
		_node.APIKey = value
	}
	if value, ok := _c.mutation.Tenant(); ok {
		_spec.SetField(vectordb.FieldTenant, field.TypeString, value)
		_node.Tenant = value
	}
	if value, ok := _c.mutation.Collection(); ok {
		_spec.SetField(vectordb.FieldCollection, field.TypeString, value)
		_node.Collection = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vectordb.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// VectorDbCreateBulk is the builder for creating many VectorDb entities in bulk.
type VectorDbCreateBulk struct {
	config
	err      error
	builders []*VectorDbCreate
}

// Save creates the VectorDb entities in the database.
func (_c *VectorDbCreateBulk) Save(ctx context.Context) ([]*VectorDb, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VectorDb, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VectorDbMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *VectorDbCreateBulk) SaveX(ctx context.Context) []*VectorDb {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VectorDbCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VectorDbCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
